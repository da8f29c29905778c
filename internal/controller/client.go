// Package controller implements the REST client for the bigtap application
// on a Big Monitoring Fabric controller. It exposes the policy collection
// operations the reconciler needs: listing the configured policies and
// creating or deleting a single policy keyed by name.
package controller

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bigmonlabs/bigmonctl/internal/transport"
	"github.com/bigmonlabs/bigmonctl/pkg/bigtap"
	"github.com/bigmonlabs/bigmonctl/pkg/constants"
	"github.com/bigmonlabs/bigmonctl/pkg/errors"
	"github.com/bigmonlabs/bigmonctl/pkg/logging"
)

// Client talks to one controller's bigtap policy collection.
type Client struct {
	controller string
	token      string
	baseURL    string
	http       *transport.Client
}

// Option configures a controller client.
type Option func(*Client)

// WithTransport sets the transport used for controller requests.
func WithTransport(t *transport.Client) Option {
	return func(c *Client) {
		c.http = t
	}
}

// WithBaseURL overrides the resolved API root. Used by tests and by
// deployments serving the API on a non-standard scheme or path.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// New creates a client for the given controller address and access token.
// The address may carry an explicit port; otherwise the controller's
// default HTTPS port is assumed.
func New(controller, token string, opts ...Option) *Client {
	c := &Client{
		controller: controller,
		token:      token,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = transport.New(&transport.SessionCookieAuth{})
	}
	if c.baseURL == "" {
		c.baseURL = BaseURL(controller)
	}
	return c
}

// BaseURL resolves the bigtap API root for a controller address.
func BaseURL(controller string) string {
	host := controller
	if _, _, err := net.SplitHostPort(controller); err != nil {
		host = net.JoinHostPort(controller, strconv.Itoa(constants.DefaultControllerPort))
	}
	return constants.DefaultControllerScheme + "://" + host + constants.BigtapBasePath
}

// ListPolicies fetches the full set of configured policies.
func (c *Client) ListPolicies(ctx context.Context) ([]bigtap.Policy, error) {
	query := url.Values{"config": []string{"true"}}

	resp, err := c.http.Get(ctx, c.baseURL+"/policy", query, c.token)
	if err != nil {
		return nil, errors.WrapFetch(c.controller, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewConfigFetchError(c.controller, resp.StatusCode, resp.Description())
	}

	var policies []bigtap.Policy
	if err := resp.JSON(&policies); err != nil {
		return nil, errors.WrapFetch(c.controller, err)
	}

	logging.Ctx(ctx).Debug().
		Str("controller", c.controller).
		Int("policies", len(policies)).
		Msg("fetched policy config")

	return policies, nil
}

// UpsertPolicy creates or replaces the policy entry keyed by its name.
// The controller replies 204 on success; anything else is a write failure
// carrying the controller's description.
func (c *Client) UpsertPolicy(ctx context.Context, policy bigtap.Policy) error {
	resp, err := c.http.Put(ctx, c.policyURL(policy.Name), policy, c.token)
	if err != nil {
		return errors.WrapWrite("create", policy.Name, err)
	}
	if resp.StatusCode != http.StatusNoContent {
		return errors.NewPolicyWriteError("create", policy.Name, resp.StatusCode, resp.Description())
	}

	logging.Ctx(ctx).Debug().
		Str("controller", c.controller).
		Str("policy", policy.Name).
		Msg("policy written")

	return nil
}

// DeletePolicy removes the policy entry keyed by name. The controller
// replies 204 on success.
func (c *Client) DeletePolicy(ctx context.Context, name string) error {
	resp, err := c.http.Delete(ctx, c.policyURL(name), nil, c.token)
	if err != nil {
		return errors.WrapWrite("delete", name, err)
	}
	if resp.StatusCode != http.StatusNoContent {
		return errors.NewPolicyWriteError("delete", name, resp.StatusCode, resp.Description())
	}

	logging.Ctx(ctx).Debug().
		Str("controller", c.controller).
		Str("policy", name).
		Msg("policy deleted")

	return nil
}

// policyURL addresses a single collection entry with the controller's name
// predicate syntax. The URL layer percent-encodes the quotes on the wire.
func (c *Client) policyURL(name string) string {
	return c.baseURL + `/policy[name="` + name + `"]`
}
