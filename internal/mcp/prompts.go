// ABOUTME: MCP prompt registration for perplexity-mcp
// ABOUTME: Renders the search prompt template through the dispatcher
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerPrompts adds every dispatcher prompt to the MCP server.
func (s *Server) registerPrompts() {
	for _, p := range s.dispatcher.ListPrompts() {
		prompt := &mcp.Prompt{
			Name:        p.Name,
			Description: p.Description,
		}
		for _, arg := range p.Arguments {
			prompt.Arguments = append(prompt.Arguments, &mcp.PromptArgument{
				Name:        arg.Name,
				Description: arg.Description,
				Required:    arg.Required,
			})
		}
		s.mcpServer.AddPrompt(prompt, s.handleGetPrompt)
	}
}

// handleGetPrompt implements prompts/get. Errors become protocol errors.
func (s *Server) handleGetPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	rendered, err := s.dispatcher.GetPrompt(req.Params.Name, req.Params.Arguments)
	if err != nil {
		s.logger.Warn("get prompt failed", "prompt", req.Params.Name, "err", err)
		return nil, err
	}

	result := &mcp.GetPromptResult{
		Description: rendered.Description,
	}
	for _, m := range rendered.Messages {
		result.Messages = append(result.Messages, &mcp.PromptMessage{
			Role:    mcp.Role(m.Role),
			Content: &mcp.TextContent{Text: m.Content.Text},
		})
	}

	return result, nil
}
