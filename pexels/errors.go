package pexels

import (
	"errors"
	"fmt"
)

// Common errors returned by the Pexels client.
var (
	// ErrMissingAPIKey is returned when no API key is configured.
	ErrMissingAPIKey = errors.New("pexels API key is required")

	// ErrRateLimited is returned when the API responds with HTTP 429.
	ErrRateLimited = errors.New("pexels API rate limit exceeded")

	// ErrInvalidMediaType is returned when parsing an unknown media type value.
	ErrInvalidMediaType = errors.New("invalid media type value")

	// ErrInvalidMediaSort is returned when parsing an unknown sort value.
	ErrInvalidMediaSort = errors.New("invalid media sort value")

	// ErrInvalidOrientation is returned when parsing an unknown orientation value.
	ErrInvalidOrientation = errors.New("invalid orientation value")

	// ErrInvalidSize is returned when parsing an unknown size value.
	ErrInvalidSize = errors.New("invalid size value")

	// ErrInvalidLocale is returned when parsing an unsupported locale tag.
	ErrInvalidLocale = errors.New("invalid locale value")

	// ErrInvalidColor is returned when parsing an unknown named color.
	ErrInvalidColor = errors.New("invalid color value")
)

// RequestError wraps a transport-level failure (DNS, TLS, timeout, ...).
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("failed to send HTTP request: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Is compares by rendered message because the underlying transport
// error types are not comparable.
func (e *RequestError) Is(target error) bool {
	t, ok := target.(*RequestError)
	return ok && t.Err.Error() == e.Err.Error()
}

// DecodeError wraps a JSON deserialization failure. It is distinct from
// HTTP-level errors: the response arrived but did not match the expected
// schema.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse JSON response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	return ok && t.Err.Error() == e.Err.Error()
}

// URLError wraps a failure to assemble a request URL.
type URLError struct {
	Err error
}

func (e *URLError) Error() string {
	return fmt.Sprintf("failed to parse URL: %v", e.Err)
}

func (e *URLError) Unwrap() error { return e.Err }

func (e *URLError) Is(target error) bool {
	t, ok := target.(*URLError)
	return ok && t.Err.Error() == e.Err.Error()
}

// HexColorError indicates a color filter value that is not a valid
// six-digit hex color code.
type HexColorError struct {
	Value string
}

func (e *HexColorError) Error() string {
	return fmt.Sprintf("invalid hex color code: %s", e.Value)
}

func (e *HexColorError) Is(target error) bool {
	t, ok := target.(*HexColorError)
	return ok && t.Value == e.Value
}

// AuthError indicates the API rejected the request with HTTP 401.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	return ok && t.Message == e.Message
}

// NotFoundError indicates the requested resource does not exist (HTTP 404).
// The requested identifier is carried in the message.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	return ok && t.Resource == e.Resource && t.ID == e.ID
}

// APIError represents any other non-200 response from the Pexels API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pexels API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.StatusCode == e.StatusCode && t.Message == e.Message
}
