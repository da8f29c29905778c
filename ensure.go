package bigmonctl

import (
	"context"

	"github.com/bigmonlabs/bigmonctl/pkg/bigtap"
	"github.com/bigmonlabs/bigmonctl/pkg/logging"
	"github.com/bigmonlabs/bigmonctl/pkg/reconcile"
)

// Compile-time interface check to ensure proper implementation.
var _ Ensurer = (*client)(nil)

// Ensurer drives desired policy records toward a target state.
type Ensurer interface {
	// Ensure reconciles the desired policy toward the given state.
	Ensure(ctx context.Context, desired bigtap.Policy, state bigtap.State) (*reconcile.Result, error)

	// Apply ensures the desired policy is present on the controller.
	Apply(ctx context.Context, desired bigtap.Policy) (*reconcile.Result, error)

	// Remove ensures no policy matching the desired record remains.
	Remove(ctx context.Context, desired bigtap.Policy) (*reconcile.Result, error)
}

// Ensure reconciles the desired policy toward the given state.
func (c *client) Ensure(ctx context.Context, desired bigtap.Policy, state bigtap.State) (*reconcile.Result, error) {
	// Step 0: Set context
	if ctx == nil {
		ctx = context.Background()
	}

	// Step 1: Bound the whole reconciliation
	ctx, cancel := c.bound(ctx)
	defer cancel()

	// Step 2: Tag the logger for downstream calls
	ctx = logging.WithController(ctx, c.controller)
	ctx = logging.WithPolicy(ctx, desired.Name)

	// Step 3: Reconcile
	return c.reconciler.Reconcile(ctx, desired, state)
}

// Apply ensures the desired policy is present on the controller.
func (c *client) Apply(ctx context.Context, desired bigtap.Policy) (*reconcile.Result, error) {
	return c.Ensure(ctx, desired, bigtap.StatePresent)
}

// Remove ensures no policy matching the desired record remains.
func (c *client) Remove(ctx context.Context, desired bigtap.Policy) (*reconcile.Result, error) {
	return c.Ensure(ctx, desired, bigtap.StateAbsent)
}

// bound applies the configured timeout to the context.
func (c *client) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.options.timeout > 0 {
		return context.WithTimeout(ctx, c.options.timeout)
	}
	return ctx, func() {}
}
