package fakturoid

import (
	"errors"
	"fmt"
	"strings"
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired            = errors.New("config is required")
	ErrSlugRequired              = errors.New("account slug is required")
	ErrClientCredentialsRequired = errors.New("client ID and client secret are required")
	ErrEntityRequired            = errors.New("entity is required")
	ErrNoMoreItems               = errors.New("no more items")
)

// NotFoundError is returned when a detail fetch answers HTTP 404. It is a
// distinct type so callers can branch on "does not exist" vs. "request
// failed".
type NotFoundError struct {
	URL string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return "resource not found: " + e.URL
}

// APIError is returned for any other non-2xx response. It carries the status
// code and the raw response body for diagnostics.
type APIError struct {
	StatusCode int
	URL        string
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s (%s)", e.StatusCode, e.Body, e.URL)
}

// AuthenticationError is returned when the OAuth2 token exchange fails. It is
// fatal and never retried by the client.
type AuthenticationError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("token exchange failed with status %d: %s", e.StatusCode, e.Body)
}

// RouteError is returned when a route template placeholder cannot be
// resolved. It is a programming or configuration error, not a network
// condition, and names the missing parameter and the parameters that were
// available.
type RouteError struct {
	Template  string
	Parameter string
	Available []string
}

// Error implements the error interface.
func (e *RouteError) Error() string {
	available := "none"
	if len(e.Available) > 0 {
		available = strings.Join(e.Available, ", ")
	}

	return fmt.Sprintf("resolving route %q: missing parameter %q (available: %s)", e.Template, e.Parameter, available)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	notFound := &NotFoundError{}

	return errors.As(err, &notFound)
}

// IsAuthenticationFailed checks if the error is a failed token exchange.
func IsAuthenticationFailed(err error) bool {
	authErr := &AuthenticationError{}

	return errors.As(err, &authErr)
}

// IsAPIError extracts an APIError from the error chain, if present.
func IsAPIError(err error) (*APIError, bool) {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}
