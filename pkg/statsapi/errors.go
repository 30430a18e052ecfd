package statsapi

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestFailed wraps transport failures (connection refused, timeout).
	ErrRequestFailed = errors.New("statsapi: request failed")
	// ErrMalformedResponse is returned when a 2xx body cannot be decoded or lacks required fields.
	ErrMalformedResponse = errors.New("statsapi: malformed response")
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("statsapi: %s returned status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("statsapi: %s returned status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

func malformed(endpoint, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrMalformedResponse, endpoint, reason)
}
