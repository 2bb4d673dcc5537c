package domain

import (
	"errors"
	"fmt"
)

// RequestFailureMessage is the only error text shown to users for a failed run
const RequestFailureMessage = "An error occurred. The API key might be invalid or the service is unavailable."

var (
	// ErrNothingToDispatch is returned when a tool/input pair maps to no request
	ErrNothingToDispatch = errors.New("no request applies to this tool and input")
	// ErrMissingCredential is returned by generators built without an API key
	ErrMissingCredential = errors.New("generation API key is not configured")
)

// RequestFailure wraps any file, credential, network or service error
// raised while running a tool
type RequestFailure struct {
	ToolID string
	Err    error
}

// Error implements the error interface
func (e *RequestFailure) Error() string {
	return fmt.Sprintf("run of tool %q failed: %v", e.ToolID, e.Err)
}

// Unwrap exposes the underlying cause
func (e *RequestFailure) Unwrap() error {
	return e.Err
}

// UserMessage returns the generic text rendered in the card
func (e *RequestFailure) UserMessage() string {
	return RequestFailureMessage
}
