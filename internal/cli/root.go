// ABOUTME: Root command definition and CLI setup
// ABOUTME: Handles the global config flag and defaults to the MCP server
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "perplexity-mcp",
	Short:         "Perplexity web search over MCP",
	Long:          `perplexity-mcp bridges MCP clients to the Perplexity search API, exposing a web search tool with recency filtering.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	// MCP clients launch the binary with no arguments
	if len(os.Args) == 1 {
		os.Args = append(os.Args, mcpCmd.Name())
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.toml (default $XDG_CONFIG_HOME/perplexity-mcp/config.toml)")
}
