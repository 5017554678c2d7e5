package hvac

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure kinds. Callers above the gateway never branch on these; they exist
// so tests and logs can tell transport problems from server rejections.
type FailureKind int

const (
	FailureUnknown FailureKind = iota
	FailureTransport
	FailureServer
)

const (
	transportMessage = "Unable to reach the server. Please check your connection."
	unknownMessage   = "An unexpected error occurred"
)

// APIError is the gateway's normalized failure. Whatever went wrong on the
// wire, the rest of the application only ever displays UserMsg.
type APIError struct {
	Kind       FailureKind
	StatusCode int // zero unless Kind is FailureServer
	UserMsg    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMsg, e.Err)
	}
	return e.UserMsg
}

func (e *APIError) Unwrap() error { return e.Err }

// NotFound reports whether the server rejected the request with a 404.
func (e *APIError) NotFound() bool {
	return e.Kind == FailureServer && e.StatusCode == http.StatusNotFound
}

func transportError(err error) *APIError {
	return &APIError{Kind: FailureTransport, UserMsg: transportMessage, Err: err}
}

func serverError(status int, message string, err error) *APIError {
	if message == "" {
		message = fmt.Sprintf("Server error: %d", status)
	}
	return &APIError{Kind: FailureServer, StatusCode: status, UserMsg: message, Err: err}
}

func unknownError(err error) *APIError {
	return &APIError{Kind: FailureUnknown, UserMsg: unknownMessage, Err: err}
}

// UserMessage extracts the normalized user-facing message from err, falling
// back to the given message when err did not come through the gateway.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.UserMsg != "" {
		return apiErr.UserMsg
	}
	return fallback
}
