package graphql

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the executor. Callers distinguish them with
// errors.Is.
var (
	ErrTransport   = errors.New("transport failure")
	ErrHTTPStatus  = errors.New("unexpected HTTP status")
	ErrMalformed   = errors.New("malformed response")
	ErrUnsupported = errors.New("operation not supported")
)

// RequestError is the error record produced when a request cannot be
// completed. StatusCode and Body are populated only when the server
// actually answered. The struct marshals to the JSON error record that
// unraidctl prints to stdout.
type RequestError struct {
	Message    string `json:"error"`
	StatusCode int    `json:"status,omitempty"`
	Body       string `json:"body,omitempty"`

	kind error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

// Unwrap exposes the error kind so errors.Is(err, ErrTransport) and
// friends work on wrapped RequestErrors.
func (e *RequestError) Unwrap() error {
	return e.kind
}

// NewTransportError records a connection-level failure: no status code,
// no body.
func NewTransportError(err error) *RequestError {
	return &RequestError{
		Message: fmt.Sprintf("request failed: %v", err),
		kind:    ErrTransport,
	}
}

// NewHTTPStatusError records a non-2xx response together with the raw
// body text for diagnosis.
func NewHTTPStatusError(status int, body string) *RequestError {
	return &RequestError{
		Message:    fmt.Sprintf("server returned HTTP %d", status),
		StatusCode: status,
		Body:       body,
		kind:       ErrHTTPStatus,
	}
}

// NewMalformedError records a 2xx response whose body failed to parse as
// JSON.
func NewMalformedError(err error, body string) *RequestError {
	return &RequestError{
		Message: fmt.Sprintf("malformed response: %v", err),
		Body:    body,
		kind:    ErrMalformed,
	}
}

// NewUnsupportedError records an operation the remote schema does not
// implement. No network call is made for these.
func NewUnsupportedError(msg string) *RequestError {
	return &RequestError{
		Message: msg,
		kind:    ErrUnsupported,
	}
}
