package apierr

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ServiceError is the base interface for all remote-service errors.
type ServiceError interface {
	error
	IsServiceError() bool
}

// Compile-time verification that all error types implement ServiceError.
var (
	_ ServiceError = (*RequestError)(nil)
	_ ServiceError = (*StatusError)(nil)
)

// Sentinel errors for invalid inputs, checked before any remote call.
var (
	// ErrEmptyEntity indicates an empty entity name was supplied.
	ErrEmptyEntity = errors.New("entity name is empty")

	// ErrNoCuries indicates an empty CURIE batch was supplied where at
	// least one CURIE is required.
	ErrNoCuries = errors.New("no CURIEs provided")
)

// RequestError indicates a remote call failed before a response was
// received (connection refused, DNS failure, timeout).
type RequestError struct {
	Service string
	URL     string
	Err     error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s request to %s failed: %v", e.Service, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsServiceError implements ServiceError.
func (e *RequestError) IsServiceError() bool { return true }

// StatusError indicates a remote call returned a non-success HTTP status.
// Body holds a snippet of the response body for diagnostics.
type StatusError struct {
	Service    string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s returned status %d for %s", e.Service, e.StatusCode, e.URL)
	}

	return fmt.Sprintf("%s returned status %d for %s: %s", e.Service, e.StatusCode, e.URL, e.Body)
}

// IsServiceError implements ServiceError.
func (e *StatusError) IsServiceError() bool { return true }

// BodySnippet captures up to 512 bytes of an error response body for
// inclusion in a StatusError.
func BodySnippet(r io.Reader) string {
	snippet, err := io.ReadAll(io.LimitReader(r, 512))
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(snippet))
}
