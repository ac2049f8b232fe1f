package goBearer

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config controls which formats a Codec issues and accepts, and its metrics.
//
// Config values are intended to be set during initialization and then treated as
// immutable.
type Config struct {
	Format  FormatConfig  `envPrefix:"FORMAT_"`
	Metrics MetricsConfig `envPrefix:"METRICS_"`
}

/*
====================================
FORMAT CONFIG
====================================
*/

// FormatConfig selects token format versions by number.
//
// Version 1 is the untagged legacy format and is always registered; other versions
// come from Builder.WithFormat.
type FormatConfig struct {
	IssueVersion uint8 `env:"ISSUE_VERSION"`
	// AcceptVersions lists the versions decode tries. Empty means every registered
	// version.
	AcceptVersions []int `env:"ACCEPT_VERSIONS" envSeparator:","`
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig toggles codec counters and the decode latency histogram.
type MetricsConfig struct {
	Enabled                 bool `env:"ENABLED"`
	EnableLatencyHistograms bool `env:"LATENCY_HISTOGRAMS"`
}

/*
====================================
DEFAULT CONFIG
====================================
*/

// DefaultConfig returns the configuration used by New.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		Format: FormatConfig{
			IssueVersion:   LegacyFormatVersion,
			AcceptVersions: nil,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	if cfg.Format.AcceptVersions != nil {
		out.Format.AcceptVersions = append([]int(nil), cfg.Format.AcceptVersions...)
	}
	return out
}

/*
====================================
ENVIRONMENT
====================================
*/

// LoadConfigFromEnv overlays environment variables named prefix+FORMAT_ISSUE_VERSION,
// prefix+FORMAT_ACCEPT_VERSIONS, prefix+METRICS_ENABLED and
// prefix+METRICS_LATENCY_HISTOGRAMS onto DefaultConfig. A .env file in the working
// directory is read first when present; variables already set take precedence.
func LoadConfigFromEnv(prefix string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := defaultConfig()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: prefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

/*
====================================
VALIDATION
====================================
*/

// Validate checks internal consistency. Whether the versions are registered is
// checked by Builder.Build.
func (c *Config) Validate() error {
	if c.Format.IssueVersion == 0 {
		return errors.New("Format IssueVersion must be > 0")
	}

	seen := make(map[int]bool, len(c.Format.AcceptVersions))
	issueAccepted := len(c.Format.AcceptVersions) == 0
	for _, v := range c.Format.AcceptVersions {
		if v < 1 || v > 255 {
			return fmt.Errorf("Format AcceptVersions entry %d out of range", v)
		}
		if seen[v] {
			return fmt.Errorf("Format AcceptVersions lists %d twice", v)
		}
		seen[v] = true
		if v == int(c.Format.IssueVersion) {
			issueAccepted = true
		}
	}
	if !issueAccepted {
		return errors.New("Format AcceptVersions must include IssueVersion")
	}

	if c.Metrics.EnableLatencyHistograms && !c.Metrics.Enabled {
		return errors.New("Metrics EnableLatencyHistograms requires Metrics Enabled")
	}
	return nil
}
