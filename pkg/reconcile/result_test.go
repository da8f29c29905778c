package reconcile_test

import (
	"testing"

	"github.com/bigmonlabs/bigmonctl/pkg/bigtap"
	"github.com/bigmonlabs/bigmonctl/pkg/reconcile"
)

func TestResultSummary(t *testing.T) {
	tests := []struct {
		name  string
		build func(*reconcile.ResultBuilder) *reconcile.ResultBuilder
		want  string
	}{
		{
			name: "upsert",
			build: func(b *reconcile.ResultBuilder) *reconcile.ResultBuilder {
				return b.WithState(bigtap.StatePresent).WithOp(reconcile.OpUpsert).WithChanged(true)
			},
			want: "Policy 'policy1' pushed to the controller.",
		},
		{
			name: "delete",
			build: func(b *reconcile.ResultBuilder) *reconcile.ResultBuilder {
				return b.WithState(bigtap.StateAbsent).WithOp(reconcile.OpDelete).WithChanged(true)
			},
			want: "Policy 'policy1' deleted.",
		},
		{
			name: "present no-op",
			build: func(b *reconcile.ResultBuilder) *reconcile.ResultBuilder {
				return b.WithState(bigtap.StatePresent).WithOp(reconcile.OpNone)
			},
			want: "Policy 'policy1' already matches the desired state.",
		},
		{
			name: "absent no-op",
			build: func(b *reconcile.ResultBuilder) *reconcile.ResultBuilder {
				return b.WithState(bigtap.StateAbsent).WithOp(reconcile.OpNone)
			},
			want: "Policy 'policy1' is already absent.",
		},
		{
			name: "dry run upsert",
			build: func(b *reconcile.ResultBuilder) *reconcile.ResultBuilder {
				return b.WithState(bigtap.StatePresent).WithOp(reconcile.OpUpsert).WithChanged(true).WithDryRun(true)
			},
			want: "Dry run: policy 'policy1' would be pushed to the controller.",
		},
		{
			name: "dry run delete",
			build: func(b *reconcile.ResultBuilder) *reconcile.ResultBuilder {
				return b.WithState(bigtap.StateAbsent).WithOp(reconcile.OpDelete).WithChanged(true).WithDryRun(true)
			},
			want: "Dry run: policy 'policy1' would be deleted.",
		},
		{
			name: "dry run no-op",
			build: func(b *reconcile.ResultBuilder) *reconcile.ResultBuilder {
				return b.WithState(bigtap.StatePresent).WithOp(reconcile.OpNone).WithDryRun(true)
			},
			want: "Dry run: no changes required.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			builder := reconcile.NewResultBuilder().WithDesired(createTestPolicy())
			result := tc.build(builder).Build()
			if got := result.Summary(); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestResultBuilderTiming(t *testing.T) {
	result := reconcile.NewResultBuilder().WithExamined(3).Build()

	if result.Metadata.StartTime.IsZero() || result.Metadata.EndTime.IsZero() {
		t.Error("Expected start and end times to be recorded")
	}
	if result.Metadata.Duration < 0 {
		t.Errorf("Expected a non-negative duration, got %v", result.Metadata.Duration)
	}
	if want := result.Metadata.EndTime.Sub(result.Metadata.StartTime); result.Metadata.Duration != want {
		t.Errorf("Expected duration %v to span start to end, got %v", want, result.Metadata.Duration)
	}
	if result.Metadata.Examined != 3 {
		t.Errorf("Expected 3 examined, got %d", result.Metadata.Examined)
	}
	if result.Op != reconcile.OpNone {
		t.Errorf("Expected the zero op to be %q, got %q", reconcile.OpNone, result.Op)
	}
}

func TestResultHasDiff(t *testing.T) {
	configured := createTestPolicy()
	configured.Priority = 50

	result := reconcile.NewResultBuilder().
		WithDesired(createTestPolicy()).
		WithDiff(reconcile.Diff(configured, createTestPolicy())).
		Build()

	if !result.HasDiff() {
		t.Error("Expected HasDiff to report drift")
	}

	empty := reconcile.NewResultBuilder().Build()
	if empty.HasDiff() {
		t.Error("Expected no drift on an empty result")
	}
}
