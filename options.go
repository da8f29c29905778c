package bigmonctl

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/bigmonlabs/bigmonctl/pkg/constants"
	"github.com/bigmonlabs/bigmonctl/pkg/logging"
	"github.com/bigmonlabs/bigmonctl/pkg/reconcile"
)

// Option is a function that configures a Client instance.
type Option func(*options)

// options are the configured options for a Client.
type options struct {
	accessToken   string
	validateCerts bool
	timeout       time.Duration
	dryRun        bool
	logger        *zerolog.Logger
	baseURL       string
	service       reconcile.PolicyService
}

// defaults returns the default client options.
func defaults() *options {
	return &options{
		validateCerts: true,
		timeout:       constants.DefaultHTTPTimeout,
		logger:        logging.Default(),
	}
}

// apply applies the given options in order.
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithAccessToken sets the session access token used to authenticate against
// the controller. When empty, the BIGSWITCH_ACCESS_TOKEN environment variable
// is consulted instead.
func WithAccessToken(token string) Option {
	return func(o *options) {
		o.accessToken = token
	}
}

// WithCertValidation toggles TLS certificate validation for controller
// connections. Validation is on unless explicitly disabled.
func WithCertValidation(enabled bool) Option {
	return func(o *options) {
		o.validateCerts = enabled
	}
}

// WithTimeout bounds each reconciliation call chain.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithDryRun reports the corrective action without calling the controller.
func WithDryRun(enabled bool) Option {
	return func(o *options) {
		o.dryRun = enabled
	}
}

// WithLogger sets the logger used by the client.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithBaseURL overrides the controller base URL derived from the controller
// address.
func WithBaseURL(u string) Option {
	return func(o *options) {
		o.baseURL = u
	}
}

// WithPolicyService replaces the controller-backed policy service.
func WithPolicyService(service reconcile.PolicyService) Option {
	return func(o *options) {
		o.service = service
	}
}
