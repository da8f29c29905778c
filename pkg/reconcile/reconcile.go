package reconcile

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bigmonlabs/bigmonctl/pkg/bigtap"
	"github.com/bigmonlabs/bigmonctl/pkg/errors"
	"github.com/bigmonlabs/bigmonctl/pkg/logging"
)

// PolicyService is the slice of the controller API a reconciliation consumes.
type PolicyService interface {
	// ListPolicies returns every policy configured on the controller.
	ListPolicies(ctx context.Context) ([]bigtap.Policy, error)

	// UpsertPolicy creates or replaces the policy keyed by its name.
	UpsertPolicy(ctx context.Context, policy bigtap.Policy) error

	// DeletePolicy removes the policy keyed by name.
	DeletePolicy(ctx context.Context, name string) error
}

// Reconciler drives a desired policy record toward its target state.
type Reconciler interface {
	// Reconcile compares the desired record against the controller's
	// configured policies and issues at most one mutating call.
	Reconcile(ctx context.Context, desired bigtap.Policy, state bigtap.State) (*Result, error)
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	service PolicyService
	logger  *zerolog.Logger
	dryRun  bool
}

// Option configures a Reconciler.
type Option func(*reconciler) error

// New creates a new Reconciler backed by the given policy service.
func New(service PolicyService, opts ...Option) (Reconciler, error) {
	if service == nil {
		return nil, errors.NewConfigError("reconcile", "policy service cannot be nil", nil)
	}

	r := &reconciler{
		service: service,
		logger:  logging.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Reconcile fetches the configured policies, decides whether the desired
// record is already satisfied, and otherwise issues the single corrective
// call. Running it twice with identical inputs never mutates twice.
func (r *reconciler) Reconcile(ctx context.Context, desired bigtap.Policy, state bigtap.State) (*Result, error) {
	if !state.Valid() {
		return nil, errors.NewValidationError("state", state.String(), "must be one of: present, absent")
	}
	if desired.Name == "" {
		return nil, errors.NewValidationError("name", desired.Name, "policy name is required")
	}

	desired.Normalize()
	if state == bigtap.StatePresent {
		if err := desired.Validate(); err != nil {
			return nil, err
		}
	}

	log := r.logger.With().
		Str("policy", desired.Name).
		Str("state", state.String()).
		Logger()

	builder := NewResultBuilder().
		WithDesired(desired).
		WithState(state).
		WithDryRun(r.dryRun)

	configured, err := r.service.ListPolicies(ctx)
	if err != nil {
		return nil, err
	}
	builder.WithExamined(len(configured))

	match := FindMatch(configured, desired)
	if match == nil {
		if current := FindByName(configured, desired.Name); current != nil {
			builder.WithDiff(Diff(*current, desired))
		}
	}

	switch {
	case state == bigtap.StatePresent && match != nil:
		log.Debug().Msg("policy already matches desired state")
		return builder.WithOp(OpNone).WithMatched(match).Build(), nil

	case state == bigtap.StateAbsent && match == nil:
		log.Debug().Msg("no matching policy configured")
		return builder.WithOp(OpNone).Build(), nil

	case state == bigtap.StatePresent:
		builder.WithOp(OpUpsert).WithChanged(true)
		if r.dryRun {
			log.Info().Msg("dry run, skipping policy upsert")
			return builder.Build(), nil
		}
		if err := r.service.UpsertPolicy(ctx, desired); err != nil {
			return nil, err
		}
		log.Info().Msg("policy pushed to controller")
		return builder.Build(), nil

	default:
		builder.WithOp(OpDelete).WithChanged(true).WithMatched(match)
		if r.dryRun {
			log.Info().Msg("dry run, skipping policy delete")
			return builder.Build(), nil
		}
		if err := r.service.DeletePolicy(ctx, desired.Name); err != nil {
			return nil, err
		}
		log.Info().Msg("policy deleted from controller")
		return builder.Build(), nil
	}
}

// Option Functions
// ================

// WithDryRun makes Reconcile report the corrective action without calling
// the controller.
func WithDryRun(enabled bool) Option {
	return func(r *reconciler) error {
		r.dryRun = enabled
		return nil
	}
}

// WithLogger sets the logger used for reconciliation progress.
func WithLogger(logger *zerolog.Logger) Option {
	return func(r *reconciler) error {
		if logger == nil {
			return errors.NewConfigError("reconcile", "logger cannot be nil", nil)
		}
		r.logger = logger
		return nil
	}
}
