// ABOUTME: Per-call errors reported by the dispatcher
// ABOUTME: None of these end the session
package dispatch

import "errors"

var (
	ErrUnknownCapability       = errors.New("unknown capability")
	ErrMissingRequiredArgument = errors.New("missing required argument")
	ErrInvalidArgument         = errors.New("invalid argument")
)
