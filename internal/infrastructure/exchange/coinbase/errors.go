package coinbase

import (
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody bounds how much of an error response body is kept for diagnostics.
const maxErrorBody = 512

// APIError is a non-2xx response from the upstream API. It carries the
// status line and a bounded slice of the body so callers can surface upstream
// detail without re-reading the response.
type APIError struct {
	Status     int
	StatusText string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("coinbase API responded HTTP %d %s: %s", e.Status, e.StatusText, e.Body)
	}
	return fmt.Sprintf("coinbase API responded HTTP %d %s", e.Status, e.StatusText)
}

// newAPIError builds an APIError from a response, consuming part of its body.
func newAPIError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &APIError{
		Status:     resp.StatusCode,
		StatusText: http.StatusText(resp.StatusCode),
		Body:       string(body),
	}
}
