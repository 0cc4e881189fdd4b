package github

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoData     = errors.New("No data returned")
	ErrNoUserData = errors.New("No user data returned")
)

// TransportError is a connection, TLS, timeout or body read failure.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("Request error: %v", e.Err) }

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError means the body is not a GraphQL envelope of the expected shape.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("JSON parse error: %v", e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// APIError carries the messages of a non-empty "errors" array.
type APIError struct {
	Messages []string
}

func (e *APIError) Error() string {
	return "API errors: " + strings.Join(e.Messages, ", ")
}

// MissingDataError means the envelope decoded but holds no usable payload.
// Err is ErrNoData or ErrNoUserData.
type MissingDataError struct {
	Err error
}

func (e *MissingDataError) Error() string { return e.Err.Error() }

func (e *MissingDataError) Unwrap() error { return e.Err }

// Kind names the error class for logs and history.
func Kind(err error) string {
	var (
		transport *TransportError
		parse     *ParseError
		api       *APIError
		missing   *MissingDataError
	)
	switch {
	case err == nil:
		return "none"
	case errors.As(err, &transport):
		return "transport"
	case errors.As(err, &parse):
		return "parse"
	case errors.As(err, &api):
		return "api"
	case errors.As(err, &missing):
		return "missing_data"
	default:
		return "unknown"
	}
}
