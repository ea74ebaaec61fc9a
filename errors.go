package sendsculpt

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration indicates a contradictory or incomplete request or client setup.
	// It is always returned before any network I/O.
	ErrConfiguration = errors.New("sendsculpt: invalid configuration")

	// ErrMissingAPIKey is returned by New when the API key is empty.
	ErrMissingAPIKey = fmt.Errorf("%w: api key is required", ErrConfiguration)

	// ErrInvalidEnvironment is returned by New when the environment is neither live nor sandbox.
	ErrInvalidEnvironment = fmt.Errorf("%w: environment must be %q or %q", ErrConfiguration, EnvironmentLive, EnvironmentSandbox)

	// ErrResourceNotFound indicates an attachment file does not exist on disk.
	ErrResourceNotFound = errors.New("sendsculpt: resource not found")

	// ErrHTTP indicates the API returned a non-success status.
	// Use errors.As with *HTTPError to inspect the status code and body.
	ErrHTTP = errors.New("sendsculpt: request returned non-success status")

	// ErrDecodeFailed indicates a success response whose body is not a JSON object.
	ErrDecodeFailed = errors.New("sendsculpt: failed to decode response")
)

// HTTPError is returned when the API responds with a non-2xx status.
type HTTPError struct {
	// RequestID is the X-Request-ID sent with the failed request.
	RequestID string

	// Body is the raw response body.
	Body []byte

	// StatusCode is the HTTP status code (e.g., 400, 401, 500).
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("sendsculpt: API error [%d]: %s", e.StatusCode, e.Body)
}

// Is reports whether target is ErrHTTP, so callers can match without errors.As.
func (e *HTTPError) Is(target error) bool {
	return target == ErrHTTP
}

func configError(msg string) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, msg)
}
