// Command bearerctl issues and inspects bearer tokens and seals settings strings.
//
// Usage:
//
//	bearerctl <command> [flags] [args]
//
// Commands:
//
//	encrypt [-legacy-token] <text>   seal a settings string
//	decrypt [-legacy-token] <text>   open a settings string
//	issue-player -user <id> -brand <id> [-name n] [-external e]
//	issue-brand -brand <id>
//	issue-admin -user <id> [-name n] [-external e]
//	inspect [-ignore-expiry] <token> decode a token and print it as JSON
//	md5 <text>                       print the MD5 hex digest
//	sha512 <text>                    print the base64 SHA-512 digest
//
// Codec settings come from BEARER_* environment variables or a .env file; LOG_LEVEL
// sets the log level.
package main

import (
	"fmt"
	"os"

	goBearer "github.com/MrEthical07/goBearer"
	"github.com/caarlos0/env/v11"
)

type config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	codecCfg, err := goBearer.LoadConfigFromEnv("BEARER_")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(2)
	}

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "parse env: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	app := &app{
		codecConfig: codecCfg,
		logger:      logger,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}
	os.Exit(app.run(os.Args[1:]))
}
