package sendsculpt

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Option configures the client.
type Option func(*options)

type options struct {
	httpClient  *http.Client
	logger      *slog.Logger
	newID       func() string
	environment Environment
	baseURL     string
	timeout     time.Duration
}

// WithEnvironment sets the environment tag sent with every request.
// Defaults to EnvironmentLive.
func WithEnvironment(env Environment) Option {
	return func(o *options) {
		if env != "" {
			o.environment = env
		}
	}
}

// WithBaseURL overrides the API root (e.g., for a proxy or a test server).
// A trailing slash is trimmed. Defaults to DefaultBaseURL.
func WithBaseURL(url string) Option {
	return func(o *options) {
		if url = strings.TrimRight(strings.TrimSpace(url), "/"); url != "" {
			o.baseURL = url
		}
	}
}

// WithHTTPClient sets a custom HTTP client for API requests.
// This is useful for testing with httptest servers or injecting
// custom transports. WithTimeout has no effect when a client is set.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithTimeout sets the timeout of the default HTTP client.
// Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithLogger sets the client logger.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRequestIDGenerator sets the function that generates X-Request-ID values
// for requests whose context carries none. Defaults to UUIDv4.
func WithRequestIDGenerator(gen func() string) Option {
	return func(o *options) {
		if gen != nil {
			o.newID = gen
		}
	}
}
