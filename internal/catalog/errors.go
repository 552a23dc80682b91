package catalog

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidResponse indicates the API returned a body that is not a movie list
	ErrInvalidResponse = errors.New("invalid response from catalog API")
	// ErrRequestFailed indicates the request could not be sent or read
	ErrRequestFailed = errors.New("catalog request failed")
)

// APIError represents a non-success catalog API response
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("catalog API error: status %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsUnauthorized checks if the error indicates a rejected API key
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}
