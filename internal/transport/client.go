package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bigmonlabs/bigmonctl/pkg/constants"
	"github.com/bigmonlabs/bigmonctl/pkg/errors"
	"github.com/bigmonlabs/bigmonctl/pkg/logging"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client provides HTTP client functionality with authentication.
type Client struct {
	http *http.Client
	auth Authenticator
}

// Option configures a transport client.
type Option func(*config)

type config struct {
	timeout       time.Duration
	validateCerts bool
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithCertValidation toggles TLS certificate validation. Disable only for
// controllers using self-signed certificates.
func WithCertValidation(validate bool) Option {
	return func(c *config) {
		c.validateCerts = validate
	}
}

// New creates a new transport client with the specified authenticator.
func New(auth Authenticator, opts ...Option) *Client {
	cfg := &config{
		timeout:       DefaultHTTPTimeout,
		validateCerts: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Client{
		http: newHTTPClient(cfg),
		auth: auth,
	}
}

// newHTTPClient builds the underlying HTTP client for a configuration.
func newHTTPClient(cfg *config) *http.Client {
	dialer := &net.Dialer{
		Timeout:   constants.DialTimeout,
		KeepAlive: constants.KeepAliveInterval,
	}

	transport := &http.Transport{
		DialContext:  dialer.DialContext,
		MaxIdleConns: constants.MaxIdleConnections,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: !cfg.validateCerts,
		},
	}

	return &http.Client{
		Timeout:   cfg.timeout,
		Transport: transport,
	}
}

// Do performs an HTTP request against the controller and returns its reply.
// The access token is applied by the authenticator and never logged. A
// non-nil body is sent as JSON.
func (c *Client) Do(ctx context.Context, method, rawURL string, query url.Values, body any, token string) (*Response, error) {
	op := strings.ToLower(method)

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.WrapParse("json", "request body", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, errors.WrapTransport(op, rawURL, err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	if token != "" {
		c.auth.Apply(req, token)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	log := logging.Ctx(ctx)
	log.Debug().
		Str("method", method).
		Str("url", req.URL.Redacted()).
		Str("request_id", requestID).
		Msg("controller request")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapTransport(op, rawURL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapTransport(op, rawURL, err)
	}

	log.Debug().
		Int("status", resp.StatusCode).
		Str("request_id", requestID).
		Msg("controller response")

	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, rawURL string, query url.Values, token string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, rawURL, query, nil, token)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, rawURL string, body any, token string) (*Response, error) {
	return c.Do(ctx, http.MethodPut, rawURL, nil, body, token)
}

// Delete performs a DELETE request. The controller expects an empty JSON
// object body on deletes.
func (c *Client) Delete(ctx context.Context, rawURL string, body any, token string) (*Response, error) {
	if body == nil {
		body = map[string]any{}
	}
	return c.Do(ctx, http.MethodDelete, rawURL, nil, body, token)
}
