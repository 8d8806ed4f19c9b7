// ABOUTME: HTTP client for the Perplexity chat-completions search API
// ABOUTME: Builds one request per search and reshapes the answer plus citations into text
package perplexity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public API root; the client posts to
	// DefaultBaseURL + "/chat/completions".
	DefaultBaseURL = "https://api.perplexity.ai"
	DefaultModel   = "sonar"

	// DefaultRecency applies when the caller gives no recency filter.
	DefaultRecency = "month"

	systemPrompt = "Be precise and concise."
	maxTokens    = 512
	temperature  = 0.2
	topP         = 0.9

	// maxErrorBody bounds how much of a failed response is kept in an
	// UpstreamError.
	maxErrorBody = 64 << 10
)

// Recency values the upstream API documents. The client does not enforce
// them; see SearchRequest.
var Recencies = []string{"day", "week", "month", "year"}

// SearchRequest is one outbound search.
type SearchRequest struct {
	Query string
	// Recency is sent verbatim as search_recency_filter. Empty means
	// DefaultRecency. Unrecognized values are passed through unchanged.
	Recency string
}

// SearchResult is the answer text and the ordered citation URLs.
type SearchResult struct {
	Answer    string
	Citations []string
}

// Text renders the result as a single text payload: the answer, followed
// by a citation block when there are citations.
func (r *SearchResult) Text() string {
	if len(r.Citations) == 0 {
		return r.Answer
	}

	var sb strings.Builder
	sb.WriteString(r.Answer)
	sb.WriteString("\n\nCitations:")
	for i, url := range r.Citations {
		fmt.Fprintf(&sb, "\n[%d] %s", i+1, url)
	}
	return sb.String()
}

// Client issues search requests. It holds no per-request state and is
// safe for concurrent use.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithModel sets the model identifier sent with each request.
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithBaseURL points the client at a different API root.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets a timeout on the default HTTP client. Zero means none.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: d}
	}
}

// WithRateLimit caps outbound requests per second. Zero or less disables it.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a client authenticating with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		model:      DefaultModel,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the model identifier in use.
func (c *Client) Model() string {
	return c.model
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type webSearchOptions struct {
	SearchContextSize string `json:"search_context_size"`
}

type chatRequest struct {
	Model                  string           `json:"model"`
	Messages               []message        `json:"messages"`
	MaxTokens              int              `json:"max_tokens"`
	Temperature            float64          `json:"temperature"`
	TopP                   float64          `json:"top_p"`
	ReturnCitations        bool             `json:"return_citations"`
	ReturnImages           bool             `json:"return_images"`
	ReturnRelatedQuestions bool             `json:"return_related_questions"`
	SearchRecencyFilter    string           `json:"search_recency_filter"`
	TopK                   int              `json:"top_k"`
	Stream                 bool             `json:"stream"`
	PresencePenalty        float64          `json:"presence_penalty"`
	FrequencyPenalty       float64          `json:"frequency_penalty"`
	WebSearchOptions       webSearchOptions `json:"web_search_options"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Citations []string `json:"citations"`
}

func (c *Client) newRequestBody(req SearchRequest) chatRequest {
	recency := req.Recency
	if recency == "" {
		recency = DefaultRecency
	}

	return chatRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: req.Query},
		},
		MaxTokens:           maxTokens,
		Temperature:         temperature,
		TopP:                topP,
		ReturnCitations:     true,
		SearchRecencyFilter: recency,
		FrequencyPenalty:    1,
		WebSearchOptions:    webSearchOptions{SearchContextSize: "low"},
	}
}

// Search performs one search. It never retries: a non-2xx status is an
// *UpstreamError and a body without an answer is ErrMalformedResponse.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	body, err := json.Marshal(c.newRequestBody(req))
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("post chat completion: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	return decodeResponse(resp.Body)
}

func decodeResponse(r io.Reader) (*SearchResult, error) {
	var payload chatResponse
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if len(payload.Choices) == 0 || payload.Choices[0].Message.Content == nil {
		return nil, fmt.Errorf("%w: missing choices[0].message.content", ErrMalformedResponse)
	}

	return &SearchResult{
		Answer:    *payload.Choices[0].Message.Content,
		Citations: payload.Citations,
	}, nil
}
