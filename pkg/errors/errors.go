package errors

import "errors"

// HTTPError is a domain error carrying the HTTP status it should map to.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// StatusOf returns the HTTP status carried by err, or fallback when err is
// not an HTTPError.
func StatusOf(err error, fallback int) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return fallback
}
