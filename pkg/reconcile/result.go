package reconcile

import (
	"fmt"
	"time"

	"github.com/agentstation/utc"

	"github.com/bigmonlabs/bigmonctl/pkg/bigtap"
)

// Op identifies the corrective action a reconciliation decided on.
type Op string

// Reconciliation operations.
const (
	OpNone   Op = "none"   // desired state already satisfied
	OpUpsert Op = "upsert" // create or replace keyed by policy name
	OpDelete Op = "delete" // remove keyed by policy name
)

// String returns the string representation of an op.
func (o Op) String() string {
	return string(o)
}

// Result represents the outcome of a reconciliation run.
type Result struct {
	// Changed indicates whether a mutating call was issued, or would
	// have been issued for a dry run.
	Changed bool `json:"changed" yaml:"changed"`

	// Op is the corrective action the run decided on.
	Op Op `json:"op" yaml:"op"`

	// State is the requested target state.
	State bigtap.State `json:"state" yaml:"state"`

	// Desired is the normalized desired policy record.
	Desired bigtap.Policy `json:"desired" yaml:"desired"`

	// Matched is the configured policy that satisfied the match, if any.
	Matched *bigtap.Policy `json:"matched,omitempty" yaml:"matched,omitempty"`

	// Diff lists field-level differences between the configured policy
	// with the desired name and the desired record. Empty when no policy
	// with that name exists or when it already matches.
	Diff []string `json:"diff,omitempty" yaml:"diff,omitempty"`

	// Metadata about the reconciliation run.
	Metadata ResultMetadata `json:"metadata" yaml:"metadata"`
}

// ResultMetadata contains metadata about the reconciliation run.
type ResultMetadata struct {
	// StartTime when reconciliation started
	StartTime utc.Time `json:"start_time" yaml:"start_time"`

	// EndTime when reconciliation completed
	EndTime utc.Time `json:"end_time" yaml:"end_time"`

	// Duration of the reconciliation
	Duration time.Duration `json:"duration" yaml:"duration"`

	// Examined is the number of configured policies fetched and compared
	Examined int `json:"examined" yaml:"examined"`

	// DryRun indicates if this was a dry run
	DryRun bool `json:"dry_run" yaml:"dry_run"`
}

// HasDiff returns true if a same-named policy exists with drifted fields.
func (r *Result) HasDiff() bool {
	return len(r.Diff) > 0
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	if r.Metadata.DryRun {
		switch r.Op {
		case OpUpsert:
			return fmt.Sprintf("Dry run: policy '%s' would be pushed to the controller.", r.Desired.Name)
		case OpDelete:
			return fmt.Sprintf("Dry run: policy '%s' would be deleted.", r.Desired.Name)
		default:
			return "Dry run: no changes required."
		}
	}

	switch r.Op {
	case OpUpsert:
		return fmt.Sprintf("Policy '%s' pushed to the controller.", r.Desired.Name)
	case OpDelete:
		return fmt.Sprintf("Policy '%s' deleted.", r.Desired.Name)
	}

	if r.State == bigtap.StateAbsent {
		return fmt.Sprintf("Policy '%s' is already absent.", r.Desired.Name)
	}
	return fmt.Sprintf("Policy '%s' already matches the desired state.", r.Desired.Name)
}

// ResultBuilder helps construct Result objects.
type ResultBuilder struct {
	result *Result
}

// NewResultBuilder creates a new ResultBuilder.
func NewResultBuilder() *ResultBuilder {
	return &ResultBuilder{
		result: &Result{
			Op: OpNone,
			Metadata: ResultMetadata{
				StartTime: utc.Now(),
			},
		},
	}
}

// WithDesired sets the desired policy record.
func (b *ResultBuilder) WithDesired(desired bigtap.Policy) *ResultBuilder {
	b.result.Desired = desired
	return b
}

// WithState sets the requested target state.
func (b *ResultBuilder) WithState(state bigtap.State) *ResultBuilder {
	b.result.State = state
	return b
}

// WithOp sets the corrective action.
func (b *ResultBuilder) WithOp(op Op) *ResultBuilder {
	b.result.Op = op
	return b
}

// WithChanged marks the run as having issued (or simulated) a mutation.
func (b *ResultBuilder) WithChanged(changed bool) *ResultBuilder {
	b.result.Changed = changed
	return b
}

// WithMatched sets the configured policy that satisfied the match.
func (b *ResultBuilder) WithMatched(matched *bigtap.Policy) *ResultBuilder {
	b.result.Matched = matched
	return b
}

// WithDiff sets the field-level differences against the same-named policy.
func (b *ResultBuilder) WithDiff(diff []string) *ResultBuilder {
	b.result.Diff = diff
	return b
}

// WithExamined sets the number of configured policies compared.
func (b *ResultBuilder) WithExamined(count int) *ResultBuilder {
	b.result.Metadata.Examined = count
	return b
}

// WithDryRun marks this as a dry run.
func (b *ResultBuilder) WithDryRun(dryRun bool) *ResultBuilder {
	b.result.Metadata.DryRun = dryRun
	return b
}

// Build finalizes and returns the Result.
func (b *ResultBuilder) Build() *Result {
	b.result.Metadata.EndTime = utc.Now()
	b.result.Metadata.Duration = b.result.Metadata.EndTime.Sub(b.result.Metadata.StartTime)
	return b.result
}
