package client

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned for any non-2xx answer. Message is the fixed text of
// the call unless the response body carried a "message" member.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsNotFound returns true if the error is a 404 answer.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// ErrNotSignedIn is returned by session operations that need a user.
var ErrNotSignedIn = errors.New("not signed in")

func networkError(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}
