// ABOUTME: Config command for inspecting resolved settings
// ABOUTME: Shows where values come from without revealing the API key
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/harper/perplexity-mcp/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(out, "Config file: %s\n", path)
		} else {
			fmt.Fprintf(out, "Config file: %s %s\n", path, color.YellowString("(not found)"))
		}

		if cfg.APIKey == "" {
			fmt.Fprintf(out, "API key:     %s\n", color.RedString("missing (set PERPLEXITY_API_KEY)"))
		} else {
			fmt.Fprintf(out, "API key:     %s\n", color.GreenString(cfg.MaskedAPIKey()))
		}

		fmt.Fprintf(out, "Model:       %s\n", cfg.Model)
		if !knownModel(cfg.Model) {
			fmt.Fprintf(out, "             %s\n", color.YellowString("unrecognized; known models: %s", strings.Join(config.KnownModels, ", ")))
		}
		fmt.Fprintf(out, "Base URL:    %s\n", cfg.BaseURL)

		timeout := "none"
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout.String()
		}
		fmt.Fprintf(out, "Timeout:     %s\n", timeout)

		rateLimit := "off"
		if cfg.RateLimit > 0 {
			rateLimit = fmt.Sprintf("%g req/s", cfg.RateLimit)
		}
		fmt.Fprintf(out, "Rate limit:  %s\n", rateLimit)
		fmt.Fprintf(out, "Log level:   %s\n", cfg.LogLevel)

		if cfg.TranscriptDir == "" {
			fmt.Fprintln(out, "Transcript:  off")
		} else {
			fmt.Fprintf(out, "Transcript:  %s (%s)\n", cfg.TranscriptDir, cfg.TranscriptFormat)
		}

		return nil
	},
}

func knownModel(model string) bool {
	for _, m := range config.KnownModels {
		if m == model {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(configCmd)
}
