package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	headers    map[string]string
	logger     zerolog.Logger
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHeader sets a default header sent with every request.
// It overrides the built-in default for the same key.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithLogger sets the logger used for request debug logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a new API client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: "https://api.verifykit.io/v2",
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		headers: map[string]string{
			"Content-Type": "application/json",
		},
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// Result is the outcome of a successful HTTP attempt. Body holds the
// decoded JSON value, or nil when the body could not be decoded.
type Result struct {
	StatusCode int
	Body       any
}

// Get issues a single GET request to the given endpoint with the given
// query parameters. There are no retries; every call is fire-once.
//
// Transport-level failures are returned as *NetworkError, HTTP status
// codes >= 400 as *StatusError. A 2xx response with an undecodable body
// yields a Result with a nil Body.
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values) (*Result, error) {
	u := c.baseURL + "/" + endpoint
	if encoded := query.Encode(); encoded != "" {
		u += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	// Log the endpoint only; the query string carries the API key.
	c.logger.Debug().Str("endpoint", endpoint).Msg("dispatching verification request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: c.baseURL + "/" + endpoint}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: c.baseURL + "/" + endpoint}
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Msg("verification response received")

	if resp.StatusCode >= 400 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		// Undecodable success bodies coalesce to an empty payload.
		decoded = nil
	}

	return &Result{
		StatusCode: resp.StatusCode,
		Body:       decoded,
	}, nil
}
