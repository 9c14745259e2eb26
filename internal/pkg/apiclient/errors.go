package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable       = errors.New("upstream API is unavailable")
	ErrMalformedResponse = errors.New("upstream API returned a malformed response")
)

// Error is a non-2xx answer from the upstream API. Message carries the
// server's own wording so it can be shown to the user unchanged.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("upstream %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an upstream *Error with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// IsUnauthorized reports whether the upstream rejected the bearer token.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}
