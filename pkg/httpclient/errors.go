package httpclient

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse menandai body response yang gagal di-decode.
var ErrMalformedResponse = errors.New("malformed response body")

// APIError adalah error non-2xx dari server, membawa message server bila ada.
type APIError struct {
	Status  int
	Message string
	Path    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request to %s failed with status %d", e.Path, e.Status)
}

// AsAPIError unwraps err ke *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == status
}

// Message returns the server-provided message when present, else fallback.
func Message(err error, fallback string) string {
	if apiErr, ok := AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
