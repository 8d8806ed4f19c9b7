// ABOUTME: Protocol-facing message handlers for prompts and tools
// ABOUTME: Validates invocations against the registry and routes searches to the API client
package dispatch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/harper/perplexity-mcp/internal/capability"
	"github.com/harper/perplexity-mcp/internal/logging"
	"github.com/harper/perplexity-mcp/internal/perplexity"
)

// ContentText is the only content block type this server produces.
const ContentText = "text"

// Searcher performs one upstream search.
type Searcher interface {
	Search(ctx context.Context, req perplexity.SearchRequest) (*perplexity.SearchResult, error)
}

// TranscriptWriter receives every successful search.
type TranscriptWriter interface {
	Write(entry logging.TranscriptEntry) error
}

// Content is one block of a response.
type Content struct {
	Type string
	Text string
}

// ToolResult is the response to a tool invocation.
type ToolResult struct {
	Content []Content
}

// PromptMessage is one role-tagged message of a rendered prompt.
type PromptMessage struct {
	Role    string
	Content Content
}

// PromptResult is a rendered prompt.
type PromptResult struct {
	Description string
	Messages    []PromptMessage
}

// Dispatcher handles the four request types. It keeps no state between
// calls apart from its immutable collaborators.
type Dispatcher struct {
	registry   *capability.Registry
	searcher   Searcher
	logger     *log.Logger
	transcript TranscriptWriter
	model      string
	now        func() time.Time
	newID      func() string
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for per-call lines.
func WithLogger(logger *log.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithTranscript records every successful search to w.
func WithTranscript(w TranscriptWriter) Option {
	return func(d *Dispatcher) {
		d.transcript = w
	}
}

// WithModel names the upstream model in logs and transcripts.
func WithModel(model string) Option {
	return func(d *Dispatcher) {
		d.model = model
	}
}

// WithClock replaces time.Now for transcript timestamps.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		d.now = now
	}
}

// New creates a dispatcher over registry that sends searches to searcher.
func New(registry *capability.Registry, searcher Searcher, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		searcher: searcher,
		logger:   logging.Discard(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ListPrompts returns the registered prompts.
func (d *Dispatcher) ListPrompts() []capability.Prompt {
	return d.registry.ListPrompts()
}

// ListTools returns the registered tools.
func (d *Dispatcher) ListTools() []capability.Tool {
	return d.registry.ListTools()
}

// GetPrompt renders the named prompt. Argument values are substituted
// as-is, without escaping.
func (d *Dispatcher) GetPrompt(name string, args map[string]string) (*PromptResult, error) {
	if _, ok := d.registry.Prompt(name); !ok {
		return nil, fmt.Errorf("%w: prompt %q", ErrUnknownCapability, name)
	}

	query := args["query"]
	recency := perplexity.DefaultRecency
	if v, ok := args["recency"]; ok {
		recency = v
	} else if v, ok := args["timeframe"]; ok {
		recency = v
	}

	return &PromptResult{
		Description: "Search the web for the query",
		Messages: []PromptMessage{
			{
				Role:    "user",
				Content: Content{Type: ContentText, Text: "Search the web for the query: " + query},
			},
			{
				Role:    "user",
				Content: Content{Type: ContentText, Text: "Search for the last: " + recency},
			},
		},
	}, nil
}

// CallTool validates args, runs the search and wraps the answer as a
// single text block.
func (d *Dispatcher) CallTool(ctx context.Context, name string, args map[string]any) (*ToolResult, error) {
	tool, ok := d.registry.Tool(name)
	if !ok {
		return nil, fmt.Errorf("%w: tool %q", ErrUnknownCapability, name)
	}

	req, err := searchRequest(tool, args)
	if err != nil {
		return nil, err
	}

	requestID := d.newID()
	logger := d.logger.With("request", requestID, "tool", name)
	logger.Info("search started", "recency", req.Recency)

	start := d.now()
	result, err := d.searcher.Search(ctx, req)
	if err != nil {
		logger.Error("search failed", "err", err)
		return nil, fmt.Errorf("search: %w", err)
	}
	logger.Info("search finished", "citations", len(result.Citations), "elapsed", d.now().Sub(start))

	if d.transcript != nil {
		entry := logging.TranscriptEntry{
			RequestID: requestID,
			Timestamp: start,
			Model:     d.model,
			Query:     req.Query,
			Recency:   req.Recency,
			Answer:    result.Answer,
			Citations: result.Citations,
		}
		if err := d.transcript.Write(entry); err != nil {
			logger.Warn("failed to write transcript", "err", err)
		}
	}

	return &ToolResult{
		Content: []Content{{Type: ContentText, Text: result.Text()}},
	}, nil
}

// searchRequest derives the upstream request from raw tool arguments.
// A missing query is an error; a missing recency takes the tool default,
// and an unrecognized recency is passed through.
func searchRequest(tool capability.Tool, args map[string]any) (perplexity.SearchRequest, error) {
	raw, ok := args["query"]
	if !ok || raw == nil {
		return perplexity.SearchRequest{}, fmt.Errorf("%w: query", ErrMissingRequiredArgument)
	}
	query, ok := raw.(string)
	if !ok {
		return perplexity.SearchRequest{}, fmt.Errorf("%w: query must be a string, got %T", ErrInvalidArgument, raw)
	}
	if strings.TrimSpace(query) == "" {
		return perplexity.SearchRequest{}, fmt.Errorf("%w: query is empty", ErrMissingRequiredArgument)
	}

	recency := ""
	for _, key := range []string{"recency", "timeframe"} {
		v, ok := args[key]
		if !ok || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return perplexity.SearchRequest{}, fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidArgument, key, v)
		}
		recency = s
		break
	}
	if recency == "" {
		recency = perplexity.DefaultRecency
		if p, ok := tool.Param("recency"); ok && p.Default != "" {
			recency = p.Default
		}
	}

	return perplexity.SearchRequest{Query: query, Recency: recency}, nil
}
