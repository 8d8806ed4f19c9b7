// ABOUTME: MCP tool registration for perplexity-mcp
// ABOUTME: Decodes tool arguments and maps dispatcher failures onto protocol results
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harper/perplexity-mcp/internal/dispatch"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerTools adds every dispatcher tool to the MCP server.
func (s *Server) registerTools() {
	for _, t := range s.dispatcher.ListTools() {
		tool := &mcp.Tool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema(),
		}
		s.mcpServer.AddTool(tool, s.handleCallTool)
	}
}

// handleCallTool implements tools/call. Invalid invocations are protocol
// errors; failed searches are tool results with isError set, so the
// session keeps going either way.
func (s *Server) handleCallTool(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args map[string]any
	if len(req.Params.Arguments) > 0 {
		if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
			return nil, fmt.Errorf("%w: arguments must be an object: %v", dispatch.ErrInvalidArgument, err)
		}
	}

	res, err := s.dispatcher.CallTool(ctx, req.Params.Name, args)
	switch {
	case errors.Is(err, dispatch.ErrUnknownCapability),
		errors.Is(err, dispatch.ErrMissingRequiredArgument),
		errors.Is(err, dispatch.ErrInvalidArgument):
		s.logger.Warn("rejected tool call", "tool", req.Params.Name, "err", err)
		return nil, err
	case err != nil:
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Error: %v", err)},
			},
		}, nil
	}

	result := &mcp.CallToolResult{}
	for _, c := range res.Content {
		result.Content = append(result.Content, &mcp.TextContent{Text: c.Text})
	}
	return result, nil
}
