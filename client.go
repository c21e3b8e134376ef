package verifykit

import (
	"context"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/verifykit/client-go/internal/api"
)

// Endpoint codes for the four verification services.
const (
	endpointEmail    = "ev"
	endpointPhone    = "pv"
	endpointAddress  = "av"
	endpointCombined = "aio"
)

// Params carries extra query parameters for a verification call.
// A nil Params is valid.
type Params map[string]string

// Client is the VerifyKit verification client. It is safe for
// concurrent use: all configuration is fixed at construction and each
// call only allocates per-call data.
type Client struct {
	apiKey    string
	domain    string
	apiClient *api.Client
}

// New creates a new VerifyKit client for the given API key and domain.
// Construction performs no I/O.
func New(apiKey, domain string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if domain == "" {
		return nil, ErrMissingDomain
	}

	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
		headers: make(map[string]string),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
		api.WithTimeout(cfg.timeout),
		api.WithLogger(cfg.logger),
	}
	for key, value := range cfg.headers {
		apiOpts = append(apiOpts, api.WithHeader(key, value))
	}

	apiClient := api.New(apiOpts...)
	if cfg.httpClient != nil {
		apiClient.SetHTTPClient(cfg.httpClient)
	}

	return &Client{
		apiKey:    apiKey,
		domain:    domain,
		apiClient: apiClient,
	}, nil
}

// VerifyEmail verifies a single email address. Extra query parameters
// may be passed via opts. An empty email yields a local validation
// error without any network call.
func (c *Client) VerifyEmail(ctx context.Context, email string, opts Params) Response {
	if email == "" {
		return validationFailure()
	}

	params := make(Params, len(opts)+1)
	for key, value := range opts {
		params[key] = value
	}
	params["email"] = email

	return c.dispatch(ctx, endpointEmail, params)
}

// VerifyPhone verifies a single phone number. Extra query parameters
// may be passed via opts. An empty phone yields a local validation
// error without any network call.
func (c *Client) VerifyPhone(ctx context.Context, phone string, opts Params) Response {
	if phone == "" {
		return validationFailure()
	}

	params := make(Params, len(opts)+1)
	for key, value := range opts {
		params[key] = value
	}
	params["phone"] = phone

	return c.dispatch(ctx, endpointPhone, params)
}

// VerifyAddress verifies a postal address. The params must contain
// "address1" and at least one of "city" or "zip"; otherwise a local
// validation error is returned without any network call.
func (c *Client) VerifyAddress(ctx context.Context, params Params) Response {
	if params["address1"] == "" || (params["city"] == "" && params["zip"] == "") {
		return validationFailure()
	}

	merged := make(Params, len(params)+2)
	for key, value := range params {
		merged[key] = value
	}
	// Credentials are injected again at dispatch; kept here so address
	// calls carry them even if the dispatch path changes.
	merged["api_key"] = c.apiKey
	merged["domain"] = c.domain

	return c.dispatch(ctx, endpointAddress, merged)
}

// VerifyCombined runs the all-in-one verification. The params must
// contain at least one of "email", "phone" or "address1"; otherwise a
// local validation error is returned without any network call.
func (c *Client) VerifyCombined(ctx context.Context, params Params) Response {
	if params["email"] == "" && params["phone"] == "" && params["address1"] == "" {
		return validationFailure()
	}

	return c.dispatch(ctx, endpointCombined, params)
}

// dispatch merges the credentials into the query and issues a single
// GET. The constructor-supplied api_key and domain always win over
// caller-supplied values of the same name.
func (c *Client) dispatch(ctx context.Context, endpoint string, params Params) Response {
	query := url.Values{}
	for key, value := range params {
		query.Set(key, value)
	}
	query.Set("api_key", c.apiKey)
	query.Set("domain", c.domain)

	res, err := c.apiClient.Get(ctx, endpoint, query)
	return formatResult(res, err)
}
