package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped from transport and HTTP failures. Callers match
// them with [errors.Is].
var (
	// ErrTransport marks a network or I/O failure that occurred before
	// any server response was obtained.
	ErrTransport = errors.New("transport error")

	// ErrBadRequest maps HTTP 400.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized maps HTTP 401.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound maps HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrConflict maps HTTP 409 on vault updates: the version carried by
	// the request no longer matches the server's counter. Elevated to
	// its own sentinel because callers must react differently (refetch
	// and reconcile) than to any other HTTP failure.
	ErrConflict = errors.New("vault version conflict")

	// ErrInternalServerError maps HTTP 500.
	ErrInternalServerError = errors.New("internal server error")
)

// APIError carries the machine-readable error code and human message of a
// non-2xx server response. Code is the service-provided code when the
// body contains one, otherwise "http_<status>". Retrieve it from a
// returned error chain with [errors.As].
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Code is the machine-readable error code.
	Code string

	// Message is the human-readable description.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
