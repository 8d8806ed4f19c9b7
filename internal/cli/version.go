// ABOUTME: Version subcommand
// ABOUTME: Prints the version advertised in the MCP handshake
package cli

import (
	"fmt"

	"github.com/harper/perplexity-mcp/internal/mcp"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mcp.ServerName, mcp.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
