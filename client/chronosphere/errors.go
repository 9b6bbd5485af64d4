package chronosphere

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingToken is returned by NewClient when no API token is configured.
	ErrMissingToken = errors.New("chronosphere: API token not set")
	// ErrMissingBaseURL is returned by NewClient when no tenant URL is configured.
	ErrMissingBaseURL = errors.New("chronosphere: base URL not set")
	// ErrPollTimeout is returned when a logs query does not complete within
	// the maximum number of poll attempts.
	ErrPollTimeout = errors.New("chronosphere: logs query did not complete within the maximum polling time")
)

// ValidationError reports caller input that could not be parsed or mapped
// onto a query.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "chronosphere: " + e.Msg
}

// ProtocolError reports a response missing a field the exchange requires.
type ProtocolError struct {
	Endpoint string
	Field    string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("chronosphere: %s response is missing %q", e.Endpoint, e.Field)
}

// HTTPError reports a non-2xx response. Body holds the decoded error body
// when the service returned one, and the wrapped error carries the status
// reported by the transport layer.
type HTTPError struct {
	Endpoint string
	Body     Result
	Err      error
}

func (e *HTTPError) Error() string {
	if len(e.Body) > 0 {
		return fmt.Sprintf("chronosphere: %s failed: %v: %v", e.Endpoint, e.Err, e.Body)
	}
	return fmt.Sprintf("chronosphere: %s failed: %v", e.Endpoint, e.Err)
}

// Unwrap exposes the transport error for errors.Is/As.
func (e *HTTPError) Unwrap() error {
	return e.Err
}
