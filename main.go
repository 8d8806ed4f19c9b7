// ABOUTME: perplexity-mcp entry point
// ABOUTME: Runs the CLI; configuration errors exit non-zero before any session starts
package main

import (
	"fmt"
	"os"

	"github.com/harper/perplexity-mcp/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
