// ABOUTME: Process configuration loaded once at startup
// ABOUTME: Merges defaults, an optional TOML file, and PERPLEXITY_* environment overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"
)

const (
	DefaultModel   = "sonar"
	DefaultBaseURL = "https://api.perplexity.ai"
)

// KnownModels lists model names the upstream API is known to accept.
// It is advisory only; any value is passed through.
var KnownModels = []string{
	"sonar",
	"sonar-pro",
	"sonar-reasoning",
	"sonar-reasoning-pro",
	"sonar-deep-research",
}

// ErrMissingAPIKey is returned by Validate when no API key is configured.
var ErrMissingAPIKey = errors.New("PERPLEXITY_API_KEY environment variable is required")

// ConfigurationError marks a problem that must stop the process before
// any session starts.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Config holds everything read from the file and environment.
type Config struct {
	APIKey           string        `toml:"api_key" env:"PERPLEXITY_API_KEY"`
	Model            string        `toml:"model" env:"PERPLEXITY_MODEL"`
	BaseURL          string        `toml:"base_url" env:"PERPLEXITY_BASE_URL"`
	Timeout          time.Duration `toml:"timeout" env:"PERPLEXITY_TIMEOUT"`
	RateLimit        float64       `toml:"rate_limit" env:"PERPLEXITY_RATE_LIMIT"`
	LogLevel         string        `toml:"log_level" env:"PERPLEXITY_LOG_LEVEL"`
	Transcript       bool          `toml:"transcript" env:"PERPLEXITY_TRANSCRIPT"`
	TranscriptDir    string        `toml:"transcript_dir" env:"PERPLEXITY_TRANSCRIPT_DIR"`
	TranscriptFormat string        `toml:"transcript_format" env:"PERPLEXITY_TRANSCRIPT_FORMAT"`
}

// Default returns a Config with every optional field set.
func Default() *Config {
	return &Config{
		Model:            DefaultModel,
		BaseURL:          DefaultBaseURL,
		LogLevel:         "info",
		TranscriptFormat: "markdown",
	}
}

// Load builds the configuration from path (DefaultPath when empty) and the
// environment. A missing file is not an error. Environment values win.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, &ConfigurationError{Err: fmt.Errorf("parse %s: %w", path, err)}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, &ConfigurationError{Err: fmt.Errorf("environment: %w", err)}
	}

	// An explicit empty value in the file should not blank out the defaults.
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	if cfg.Transcript && cfg.TranscriptDir == "" {
		cfg.TranscriptDir = DefaultTranscriptDir()
	}

	return cfg, nil
}

// Validate checks preconditions that must hold before serving.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return &ConfigurationError{Err: ErrMissingAPIKey}
	}
	if c.RateLimit < 0 {
		return &ConfigurationError{Err: fmt.Errorf("rate_limit must not be negative, got %v", c.RateLimit)}
	}
	switch c.TranscriptFormat {
	case "", "markdown", "json":
	default:
		return &ConfigurationError{Err: fmt.Errorf("unknown transcript_format %q", c.TranscriptFormat)}
	}
	return nil
}

// MaskedAPIKey returns the key with everything but the last four
// characters hidden, for display.
func (c *Config) MaskedAPIKey() string {
	if c.APIKey == "" {
		return ""
	}
	if len(c.APIKey) <= 4 {
		return "****"
	}
	return "****" + c.APIKey[len(c.APIKey)-4:]
}
