// ABOUTME: Search command for one-shot queries from the terminal
// ABOUTME: Runs the same tool call the MCP server exposes and prints the answer
package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/fatih/color"
	"github.com/harper/perplexity-mcp/internal/capability"
	"github.com/spf13/cobra"
)

var (
	searchRecency string
	searchSince   string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the web from the command line",
	Long: `Search the web through Perplexity and print the answer with citations.

Examples:
  perplexity-mcp search "latest Go release"
  perplexity-mcp search "kubernetes CVEs" --recency week
  perplexity-mcp search "rust 2024 edition" --since "2024-10-01"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if searchRecency != "" && searchSince != "" {
			return fmt.Errorf("--recency and --since are mutually exclusive")
		}

		recency := searchRecency
		if searchSince != "" {
			since, err := dateparse.ParseAny(searchSince)
			if err != nil {
				return fmt.Errorf("invalid --since date: %w", err)
			}
			recency = recencyForSince(since, time.Now())
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		d := newDispatcher(cfg, newLogger(cmd.ErrOrStderr(), cfg))

		toolArgs := map[string]any{"query": args[0]}
		if recency != "" {
			toolArgs["recency"] = recency
		}

		res, err := d.CallTool(cmd.Context(), capability.SearchWeb, toolArgs)
		if err != nil {
			return err
		}

		for _, c := range res.Content {
			printAnswer(cmd.OutOrStdout(), c.Text)
		}
		return nil
	},
}

// recencyForSince picks the narrowest recency window that still reaches
// back to since.
func recencyForSince(since, now time.Time) string {
	age := now.Sub(since)
	switch {
	case age <= 24*time.Hour:
		return "day"
	case age <= 7*24*time.Hour:
		return "week"
	case !since.Before(now.AddDate(0, -1, 0)):
		return "month"
	default:
		return "year"
	}
}

// printAnswer writes the tool text, highlighting the citation block.
func printAnswer(w io.Writer, text string) {
	answer, citations, found := strings.Cut(text, "\n\nCitations:\n")
	fmt.Fprintln(w, answer)
	if !found {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, color.New(color.Bold).Sprint("Citations:"))
	for _, line := range strings.Split(citations, "\n") {
		fmt.Fprintln(w, color.CyanString(line))
	}
}

func init() {
	searchCmd.Flags().StringVarP(&searchRecency, "recency", "r", "", "Recency filter: day, week, month, year (default month)")
	searchCmd.Flags().StringVar(&searchSince, "since", "", "Oldest acceptable result date (natural language or ISO); picks the recency window")
	rootCmd.AddCommand(searchCmd)
}
