package sendsculpt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/sendsculpt/pkg/logger"
)

const (
	apiKeyHeader    = "x-sendsculpt-key"
	contentTypeJSON = "application/json"
	sendPath        = "/send"
)

// Client sends emails through the SendSculpt API.
// Configuration is fixed at construction; a Client is safe for concurrent use.
type Client struct {
	httpClient  *http.Client
	logger      *slog.Logger
	newID       func() string
	apiKey      string
	environment Environment
	baseURL     string
}

// New creates a client authenticated with apiKey.
// Returns ErrMissingAPIKey if apiKey is empty and ErrInvalidEnvironment
// if WithEnvironment was given an unknown value.
func New(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	o := options{
		environment: EnvironmentLive,
		baseURL:     DefaultBaseURL,
		timeout:     DefaultTimeout,
		logger:      logger.NewNope(),
		newID:       newUUID,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if !o.environment.Valid() {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidEnvironment, o.environment)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	return &Client{
		httpClient:  httpClient,
		logger:      slog.New(logger.NewLogHandlerDecorator(o.logger.Handler(), RequestIDExtractor())),
		newID:       o.newID,
		apiKey:      apiKey,
		environment: o.environment,
		baseURL:     o.baseURL,
	}, nil
}

// NewFromConfig creates a client from cfg.
// Options passed explicitly take precedence over config values.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	return New(cfg.APIKey, append(cfg.options(), opts...)...)
}

// Environment returns the environment tag sent with every request.
func (c *Client) Environment() Environment {
	return c.environment
}

// BaseURL returns the API root the client posts to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Send validates req, normalizes its attachments and posts it to the API.
// All validation and attachment reads happen before any network I/O.
//
// Errors:
//   - ErrConfiguration: missing required fields or conflicting template/body fields
//   - ErrResourceNotFound: an attachment file does not exist
//   - *HTTPError (matches ErrHTTP): the API returned a non-2xx status
//   - ErrDecodeFailed: a 2xx body that is not a JSON object
//
// Transport errors from the HTTP client are returned as-is.
func (c *Client) Send(ctx context.Context, req *SendEmailRequest) (SendEmailResult, error) {
	if req == nil {
		return nil, configError("request is nil")
	}

	body, err := req.buildPayload(c.environment)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("sendsculpt: encode request: %w", err)
	}

	reqID := RequestIDFromContext(ctx)
	if reqID == "" {
		reqID = c.newID()
		ctx = ContextWithRequestID(ctx, reqID)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("sendsculpt: build request: %w", err)
	}
	httpReq.Header.Set(apiKeyHeader, c.apiKey)
	httpReq.Header.Set("Content-Type", contentTypeJSON)
	httpReq.Header.Set("Accept", contentTypeJSON)
	httpReq.Header.Set(RequestIDHeader, reqID)

	c.logger.DebugContext(ctx, "sending email",
		slog.String("environment", string(c.environment)),
		slog.Int("recipients", len(req.To)),
		slog.Int("attachments", len(body.Attachments)),
	)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WarnContext(ctx, "email rejected", slog.Int("status_code", resp.StatusCode))
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       respBody,
			RequestID:  reqID,
		}
	}

	result, err := decodeResult(respBody)
	if err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "email sent",
		slog.String("message_id", result.MessageID()),
		slog.String("status", result.Status()),
	)

	return result, nil
}

// SendEmail is an alias for Send.
func (c *Client) SendEmail(ctx context.Context, req *SendEmailRequest) (SendEmailResult, error) {
	return c.Send(ctx, req)
}

func decodeResult(data []byte) (SendEmailResult, error) {
	result := SendEmailResult{}
	if len(bytes.TrimSpace(data)) == 0 {
		return result, nil
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, errors.Join(ErrDecodeFailed, err)
	}
	if result == nil {
		// Body was the JSON literal null.
		result = SendEmailResult{}
	}
	return result, nil
}
