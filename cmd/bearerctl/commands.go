package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"time"

	goBearer "github.com/MrEthical07/goBearer"
	"github.com/MrEthical07/goBearer/base62"
	"github.com/MrEthical07/goBearer/symmetric"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var errUsage = errors.New("usage")

type app struct {
	codecConfig goBearer.Config
	now         func() time.Time
	logger      *zap.Logger
	stdout      io.Writer
	stderr      io.Writer
}

type command struct {
	summary string
	run     func(a *app, args []string) error
}

var commands = map[string]command{
	"encrypt":      {"seal a settings string", (*app).encrypt},
	"decrypt":      {"open a settings string", (*app).decrypt},
	"issue-player": {"issue a player token", (*app).issuePlayer},
	"issue-brand":  {"issue a brand token", (*app).issueBrand},
	"issue-admin":  {"issue an admin token", (*app).issueAdmin},
	"inspect":      {"decode a token and print it as JSON", (*app).inspect},
	"md5":          {"print the MD5 hex digest of a string", (*app).md5},
	"sha512":       {"print the base64 SHA-512 digest of a string", (*app).sha512},
}

// run dispatches args and returns the process exit code.
func (a *app) run(args []string) int {
	if len(args) == 0 {
		a.usage()
		return 2
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(a.stderr, "unknown command %q\n", args[0])
		a.usage()
		return 2
	}

	if err := cmd.run(a, args[1:]); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			return 2
		}
		a.logger.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		return 1
	}
	return 0
}

func (a *app) usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.stderr, "usage: bearerctl <command> [flags] [args]")
	for _, name := range names {
		fmt.Fprintf(a.stderr, "  %-13s %s\n", name, commands[name].summary)
	}
}

func (a *app) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

func (a *app) codec() (*goBearer.Codec, error) {
	return goBearer.New().WithConfig(a.codecConfig).WithClock(a.now).Build()
}

// oneArg parses fs and requires exactly one positional argument.
func oneArg(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(fs.Output(), "%s takes exactly one argument\n", fs.Name())
		return "", errUsage
	}
	return fs.Arg(0), nil
}

/*
====================================
SETTINGS STRINGS
====================================
*/

func textCipher(legacyToken bool) (*symmetric.TextCipher, error) {
	if legacyToken {
		return symmetric.NewTextCipher(symmetric.LegacyToken(), base62.BitPack)
	}
	return symmetric.NewTextCipher(symmetric.LegacySettings(), base62.BigInt)
}

func (a *app) encrypt(args []string) error {
	fs := a.flagSet("encrypt")
	legacy := fs.Bool("legacy-token", false, "use the token key with 6-bit packing")
	plain, err := oneArg(fs, args)
	if err != nil {
		return err
	}

	tc, err := textCipher(*legacy)
	if err != nil {
		return err
	}
	out, err := tc.EncryptString(plain)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, out)
	return nil
}

func (a *app) decrypt(args []string) error {
	fs := a.flagSet("decrypt")
	legacy := fs.Bool("legacy-token", false, "use the token key with 6-bit packing")
	text, err := oneArg(fs, args)
	if err != nil {
		return err
	}

	tc, err := textCipher(*legacy)
	if err != nil {
		return err
	}
	out, err := tc.DecryptString(text)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, out)
	return nil
}

func (a *app) md5(args []string) error {
	s, err := oneArg(a.flagSet("md5"), args)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, symmetric.MD5Hex(s))
	return nil
}

func (a *app) sha512(args []string) error {
	s, err := oneArg(a.flagSet("sha512"), args)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, symmetric.SHA512Base64(s))
	return nil
}

/*
====================================
TOKENS
====================================
*/

func parseID(fs *flag.FlagSet, name, value string) (uuid.UUID, error) {
	if value == "" {
		fmt.Fprintf(fs.Output(), "-%s is required\n", name)
		return uuid.Nil, errUsage
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("-%s: %w", name, err)
	}
	return id, nil
}

func (a *app) issuePlayer(args []string) error {
	fs := a.flagSet("issue-player")
	user := fs.String("user", "", "user identifier (GUID)")
	brand := fs.String("brand", "", "brand identifier (GUID)")
	name := fs.String("name", "", "display name")
	external := fs.String("external", "", "external identifier")
	if err := fs.Parse(args); err != nil {
		return err
	}

	userID, err := parseID(fs, "user", *user)
	if err != nil {
		return err
	}
	brandID, err := parseID(fs, "brand", *brand)
	if err != nil {
		return err
	}

	c, err := a.codec()
	if err != nil {
		return err
	}
	text, data, err := c.IssuePlayer(userID, brandID, *name, *external)
	if err != nil {
		return err
	}
	a.logIssued(data)
	fmt.Fprintln(a.stdout, text)
	return nil
}

func (a *app) issueBrand(args []string) error {
	fs := a.flagSet("issue-brand")
	brand := fs.String("brand", "", "brand identifier (GUID)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	brandID, err := parseID(fs, "brand", *brand)
	if err != nil {
		return err
	}

	c, err := a.codec()
	if err != nil {
		return err
	}
	text, data, err := c.IssueBrand(brandID)
	if err != nil {
		return err
	}
	a.logIssued(data)
	fmt.Fprintln(a.stdout, text)
	return nil
}

func (a *app) issueAdmin(args []string) error {
	fs := a.flagSet("issue-admin")
	user := fs.String("user", "", "user identifier (GUID)")
	name := fs.String("name", "", "display name")
	external := fs.String("external", "", "external identifier")
	if err := fs.Parse(args); err != nil {
		return err
	}

	userID, err := parseID(fs, "user", *user)
	if err != nil {
		return err
	}

	c, err := a.codec()
	if err != nil {
		return err
	}
	text, data, err := c.IssueAdmin(userID, *name, *external)
	if err != nil {
		return err
	}
	a.logIssued(data)
	fmt.Fprintln(a.stdout, text)
	return nil
}

func (a *app) logIssued(data goBearer.TokenData) {
	a.logger.Info("token issued",
		zap.Stringer("kind", data.Kind()),
		zap.Stringer("token_id", data.ID()),
		zap.Time("created_on", data.IssuedAt()),
	)
}

type inspection struct {
	Kind      string             `json:"kind"`
	Format    string             `json:"format"`
	Expired   bool               `json:"expired"`
	ExpiresAt time.Time          `json:"expires_at"`
	Token     goBearer.TokenData `json:"token"`
}

func (a *app) inspect(args []string) error {
	fs := a.flagSet("inspect")
	ignoreExpiry := fs.Bool("ignore-expiry", false, "print expired tokens instead of failing")
	text, err := oneArg(fs, args)
	if err != nil {
		return err
	}

	c, err := a.codec()
	if err != nil {
		return err
	}
	kind, format, err := c.Inspect(text)
	if err != nil {
		return err
	}

	var data goBearer.TokenData
	switch kind {
	case goBearer.KindBrand:
		data, err = c.DecodeBrand(text, goBearer.IgnoreExpiry())
	default:
		data, err = c.DecodeUser(text, goBearer.IgnoreExpiry())
	}
	if err != nil {
		return err
	}

	policy := c.Policy()
	out := inspection{
		Kind:      kind.String(),
		Format:    format.String(),
		Expired:   policy.IsExpired(kind, data.IssuedAt()),
		ExpiresAt: policy.ExpiresAt(kind, data.IssuedAt()),
		Token:     data,
	}
	if out.Expired && !*ignoreExpiry {
		return &goBearer.ExpiredTokenError{Kind: kind, IssuedAt: data.IssuedAt(), ExpiredAt: out.ExpiresAt}
	}

	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
