// ABOUTME: Shared wiring for commands that talk to Perplexity
// ABOUTME: Turns the loaded config into a logger and dispatcher
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/harper/perplexity-mcp/internal/capability"
	"github.com/harper/perplexity-mcp/internal/config"
	"github.com/harper/perplexity-mcp/internal/dispatch"
	"github.com/harper/perplexity-mcp/internal/logging"
	"github.com/harper/perplexity-mcp/internal/perplexity"
)

// loadConfig reads and validates the configuration. A missing API key
// fails here, before any session starts.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newDispatcher(cfg *config.Config, logger *log.Logger) *dispatch.Dispatcher {
	client := perplexity.NewClient(cfg.APIKey,
		perplexity.WithBaseURL(cfg.BaseURL),
		perplexity.WithModel(cfg.Model),
		perplexity.WithTimeout(cfg.Timeout),
		perplexity.WithRateLimit(cfg.RateLimit),
	)

	opts := []dispatch.Option{
		dispatch.WithLogger(logger),
		dispatch.WithModel(client.Model()),
	}
	if cfg.TranscriptDir != "" {
		opts = append(opts, dispatch.WithTranscript(logging.NewTranscript(cfg.TranscriptDir, cfg.TranscriptFormat)))
	}

	return dispatch.New(capability.NewRegistry(), client, opts...)
}

func newLogger(w io.Writer, cfg *config.Config) *log.Logger {
	return logging.New(w, cfg.LogLevel)
}
