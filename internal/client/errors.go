package client

import "errors"

// APIError is the single error shape gateway calls return. Message is
// always human-readable: the server's own message when the response body
// carried one, otherwise the caller's fallback string.
type APIError struct {
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether the error happened before any response
// arrived (DNS, connect, timeout).
func (e *APIError) IsTransport() bool {
	return e.StatusCode == 0
}

// Message extracts the displayable message from any error returned by a
// gateway call. Non-APIError values fall back to their Error() string.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
