// ABOUTME: MCP subcommand for running the perplexity-mcp server
// ABOUTME: Handles stdio transport initialization and server lifecycle
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harper/perplexity-mcp/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:     "mcp",
	Aliases: []string{"serve"},
	Short:   "Run the MCP server on stdio",
	Long:    `Start the Model Context Protocol server so AI assistants can search the web through Perplexity over stdio.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger := newLogger(cmd.ErrOrStderr(), cfg)
		logger.Debug("configuration loaded", "model", cfg.Model, "base_url", cfg.BaseURL)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		server := mcp.NewServer(newDispatcher(cfg, logger), logger)
		return server.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
