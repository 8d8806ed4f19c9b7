// ABOUTME: Error types returned by the Perplexity client
// ABOUTME: Distinguishes HTTP failures from unusable response bodies
package perplexity

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstream matches every *UpstreamError via errors.Is.
	ErrUpstream = errors.New("upstream error")

	// ErrMalformedResponse means a 2xx body did not carry an answer.
	ErrMalformedResponse = errors.New("malformed upstream response")
)

// UpstreamError is a non-success HTTP status from the API.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned HTTP %d: %s", e.StatusCode, e.Body)
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}
