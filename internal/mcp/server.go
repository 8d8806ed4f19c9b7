// ABOUTME: MCP server implementation for perplexity-mcp
// ABOUTME: Performs the capability handshake and serves prompts and tools over stdio
package mcp

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/harper/perplexity-mcp/internal/dispatch"
	"github.com/harper/perplexity-mcp/internal/logging"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const ServerName = "perplexity-mcp"

// Version is reported in the initialize handshake. Overridden at build
// time with -ldflags "-X github.com/harper/perplexity-mcp/internal/mcp.Version=...".
var Version = "0.2.0"

const serverInstructions = `perplexity-mcp searches the web through Perplexity AI. ` +
	`Call perplexity_search_web with a query and an optional recency ` +
	`(day, week, month, year; default month) when you need current ` +
	`information with source citations.`

// Server wraps the MCP server with the search dispatcher.
type Server struct {
	mcpServer  *mcp.Server
	dispatcher *dispatch.Dispatcher
	logger     *log.Logger
}

// NewServer creates a server advertising everything the dispatcher exposes.
func NewServer(d *dispatch.Dispatcher, logger *log.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}

	impl := &mcp.Implementation{
		Name:    ServerName,
		Version: Version,
	}

	server := &Server{
		mcpServer: mcp.NewServer(impl, &mcp.ServerOptions{
			Instructions: serverInstructions,
		}),
		dispatcher: d,
		logger:     logger,
	}

	// Register components
	server.registerPrompts()
	server.registerTools()

	return server
}

// Run serves over stdio until the client disconnects or ctx is done.
func (s *Server) Run(ctx context.Context) error {
	return s.Serve(ctx, &mcp.StdioTransport{})
}

// Serve runs a single session over transport.
func (s *Server) Serve(ctx context.Context, transport mcp.Transport) error {
	s.logger.Info("session starting", "version", Version)
	err := s.mcpServer.Run(ctx, transport)
	if err != nil {
		s.logger.Error("session ended", "err", err)
		return err
	}
	s.logger.Info("session ended")
	return nil
}
