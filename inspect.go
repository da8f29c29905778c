package bigmonctl

import (
	"context"

	"github.com/bigmonlabs/bigmonctl/pkg/bigtap"
	"github.com/bigmonlabs/bigmonctl/pkg/errors"
	"github.com/bigmonlabs/bigmonctl/pkg/logging"
	"github.com/bigmonlabs/bigmonctl/pkg/reconcile"
)

// Compile-time interface check to ensure proper implementation.
var _ Inspector = (*client)(nil)

// Inspector reads the policies configured on the controller.
type Inspector interface {
	// Policies returns every policy configured on the controller.
	Policies(ctx context.Context) ([]bigtap.Policy, error)

	// Policy returns the configured policy with the given name.
	Policy(ctx context.Context, name string) (*bigtap.Policy, error)
}

// Policies returns every policy configured on the controller.
func (c *client) Policies(ctx context.Context) ([]bigtap.Policy, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := c.bound(ctx)
	defer cancel()

	return c.service.ListPolicies(logging.WithController(ctx, c.controller))
}

// Policy returns the configured policy with the given name.
func (c *client) Policy(ctx context.Context, name string) (*bigtap.Policy, error) {
	if name == "" {
		return nil, errors.NewValidationError("name", name, "policy name is required")
	}

	policies, err := c.Policies(ctx)
	if err != nil {
		return nil, err
	}

	if policy := reconcile.FindByName(policies, name); policy != nil {
		return policy, nil
	}
	return nil, errors.NewNotFoundError("policy", name)
}
