package reconcile_test

import (
	"context"
	"testing"

	"github.com/bigmonlabs/bigmonctl/pkg/bigtap"
	"github.com/bigmonlabs/bigmonctl/pkg/errors"
	"github.com/bigmonlabs/bigmonctl/pkg/logging"
	"github.com/bigmonlabs/bigmonctl/pkg/reconcile"
)

// fakeService is an in-memory PolicyService that records every call.
type fakeService struct {
	policies []bigtap.Policy

	listErr   error
	upsertErr error
	deleteErr error

	listCalls   int
	upsertCalls int
	deleteCalls int
	lastDeleted string
}

func (f *fakeService) ListPolicies(_ context.Context) ([]bigtap.Policy, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]bigtap.Policy(nil), f.policies...), nil
}

func (f *fakeService) UpsertPolicy(_ context.Context, policy bigtap.Policy) error {
	f.upsertCalls++
	if f.upsertErr != nil {
		return f.upsertErr
	}
	for i := range f.policies {
		if f.policies[i].Name == policy.Name {
			f.policies[i] = policy
			return nil
		}
	}
	f.policies = append(f.policies, policy)
	return nil
}

func (f *fakeService) DeletePolicy(_ context.Context, name string) error {
	f.deleteCalls++
	f.lastDeleted = name
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.policies {
		if f.policies[i].Name == name {
			f.policies = append(f.policies[:i], f.policies[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeService) mutations() int {
	return f.upsertCalls + f.deleteCalls
}

// Helper function to create the desired test policy
func createTestPolicy() bigtap.Policy {
	return bigtap.Policy{
		Name:                "policy1",
		Description:         "DC 1 traffic policy",
		Action:              bigtap.ActionDrop,
		Priority:            100,
		Duration:            0,
		StartTime:           "2017-01-13T23:10:41+00:00",
		DeliveryPacketCount: 0,
	}
}

func newReconciler(t *testing.T, service reconcile.PolicyService, opts ...reconcile.Option) reconcile.Reconciler {
	t.Helper()
	logger := logging.NewNopLogger()
	opts = append([]reconcile.Option{reconcile.WithLogger(logger)}, opts...)
	r, err := reconcile.New(service, opts...)
	if err != nil {
		t.Fatalf("Failed to create reconciler: %v", err)
	}
	return r
}

func TestReconcilePresent(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a missing policy", func(t *testing.T) {
		service := &fakeService{}
		r := newReconciler(t, service)

		result, err := r.Reconcile(ctx, createTestPolicy(), bigtap.StatePresent)
		if err != nil {
			t.Fatalf("Reconcile failed: %v", err)
		}

		if !result.Changed {
			t.Error("Expected changed=true for a missing policy")
		}
		if result.Op != reconcile.OpUpsert {
			t.Errorf("Expected op %q, got %q", reconcile.OpUpsert, result.Op)
		}
		if service.upsertCalls != 1 {
			t.Errorf("Expected 1 upsert call, got %d", service.upsertCalls)
		}
		if service.deleteCalls != 0 {
			t.Errorf("Expected 0 delete calls, got %d", service.deleteCalls)
		}
		if len(service.policies) != 1 {
			t.Fatalf("Expected policy to be stored, got %d records", len(service.policies))
		}
	})

	t.Run("no-op when the policy already matches", func(t *testing.T) {
		service := &fakeService{policies: []bigtap.Policy{createTestPolicy()}}
		r := newReconciler(t, service)

		result, err := r.Reconcile(ctx, createTestPolicy(), bigtap.StatePresent)
		if err != nil {
			t.Fatalf("Reconcile failed: %v", err)
		}

		if result.Changed {
			t.Error("Expected changed=false for a matching policy")
		}
		if result.Op != reconcile.OpNone {
			t.Errorf("Expected op %q, got %q", reconcile.OpNone, result.Op)
		}
		if result.Matched == nil {
			t.Error("Expected the matching record on the result")
		}
		if service.mutations() != 0 {
			t.Errorf("Expected no mutating calls, got %d", service.mutations())
		}
	})

	t.Run("a different start time alone never forces a write", func(t *testing.T) {
		existing := createTestPolicy()
		existing.StartTime = "2020-06-01T00:00:00+00:00"
		service := &fakeService{policies: []bigtap.Policy{existing}}
		r := newReconciler(t, service)

		result, err := r.Reconcile(ctx, createTestPolicy(), bigtap.StatePresent)
		if err != nil {
			t.Fatalf("Reconcile failed: %v", err)
		}

		if result.Changed {
			t.Error("Expected changed=false when only start time differs")
		}
		if service.mutations() != 0 {
			t.Errorf("Expected no mutating calls, got %d", service.mutations())
		}
	})

	t.Run("replaces a drifted policy", func(t *testing.T) {
		drifted := createTestPolicy()
		drifted.Priority = 50
		service := &fakeService{policies: []bigtap.Policy{drifted}}
		r := newReconciler(t, service)

		result, err := r.Reconcile(ctx, createTestPolicy(), bigtap.StatePresent)
		if err != nil {
			t.Fatalf("Reconcile failed: %v", err)
		}

		if !result.Changed {
			t.Error("Expected changed=true for a drifted policy")
		}
		if result.Op != reconcile.OpUpsert {
			t.Errorf("Expected op %q, got %q", reconcile.OpUpsert, result.Op)
		}
		if !result.HasDiff() {
			t.Error("Expected field differences on the result")
		}
		if service.upsertCalls != 1 {
			t.Errorf("Expected 1 upsert call, got %d", service.upsertCalls)
		}
	})

	t.Run("applying twice mutates once", func(t *testing.T) {
		service := &fakeService{}
		r := newReconciler(t, service)

		first, err := r.Reconcile(ctx, createTestPolicy(), bigtap.StatePresent)
		if err != nil {
			t.Fatalf("First reconcile failed: %v", err)
		}
		second, err := r.Reconcile(ctx, createTestPolicy(), bigtap.StatePresent)
		if err != nil {
			t.Fatalf("Second reconcile failed: %v", err)
		}

		if !first.Changed || second.Changed {
			t.Errorf("Expected changed=true then changed=false, got %v then %v",
				first.Changed, second.Changed)
		}
		if service.mutations() != 1 {
			t.Errorf("Expected exactly 1 mutating call, got %d", service.mutations())
		}
	})
}

func TestReconcileAbsent(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes a matching policy", func(t *testing.T) {
		service := &fakeService{policies: []bigtap.Policy{createTestPolicy()}}
		r := newReconciler(t, service)

		result, err := r.Reconcile(ctx, createTestPolicy(), bigtap.StateAbsent)
		if err != nil {
			t.Fatalf("Reconcile failed: %v", err)
		}

		if !result.Changed {
			t.Error("Expected changed=true when deleting a matching policy")
		}
		if result.Op != reconcile.OpDelete {
			t.Errorf("Expected op %q, got %q", reconcile.OpDelete, result.Op)
		}
		if service.deleteCalls != 1 {
			t.Errorf("Expected 1 delete call, got %d", service.deleteCalls)
		}
		if service.lastDeleted != "policy1" {
			t.Errorf("Expected delete keyed by name, got %q", service.lastDeleted)
		}
		if len(service.policies) != 0 {
			t.Errorf("Expected policy to be removed, %d records remain", len(service.policies))
		}
	})

	t.Run("no-op when nothing matches", func(t *testing.T) {
		service := &fakeService{}
		r := newReconciler(t, service)

		result, err := r.Reconcile(ctx, createTestPolicy(), bigtap.StateAbsent)
		if err != nil {
			t.Fatalf("Reconcile failed: %v", err)
		}

		if result.Changed {
			t.Error("Expected changed=false when nothing matches")
		}
		if service.mutations() != 0 {
			t.Errorf("Expected no mutating calls, got %d", service.mutations())
		}
	})

	t.Run("leaves a drifted record alone", func(t *testing.T) {
		// Absence is keyed on the full match, not the name. A record that
		// shares the name but differs in any matched field stays untouched.
		drifted := createTestPolicy()
		drifted.Priority = 50
		service := &fakeService{policies: []bigtap.Policy{drifted}}
		r := newReconciler(t, service)

		result, err := r.Reconcile(ctx, createTestPolicy(), bigtap.StateAbsent)
		if err != nil {
			t.Fatalf("Reconcile failed: %v", err)
		}

		if result.Changed {
			t.Error("Expected changed=false for a drifted record")
		}
		if service.deleteCalls != 0 {
			t.Errorf("Expected 0 delete calls, got %d", service.deleteCalls)
		}
		if len(service.policies) != 1 {
			t.Errorf("Expected the record to survive, got %d records", len(service.policies))
		}
	})

	t.Run("removing twice mutates once", func(t *testing.T) {
		service := &fakeService{policies: []bigtap.Policy{createTestPolicy()}}
		r := newReconciler(t, service)

		first, err := r.Reconcile(ctx, createTestPolicy(), bigtap.StateAbsent)
		if err != nil {
			t.Fatalf("First reconcile failed: %v", err)
		}
		second, err := r.Reconcile(ctx, createTestPolicy(), bigtap.StateAbsent)
		if err != nil {
			t.Fatalf("Second reconcile failed: %v", err)
		}

		if !first.Changed || second.Changed {
			t.Errorf("Expected changed=true then changed=false, got %v then %v",
				first.Changed, second.Changed)
		}
		if service.mutations() != 1 {
			t.Errorf("Expected exactly 1 mutating call, got %d", service.mutations())
		}
	})
}

func TestReconcileDryRun(t *testing.T) {
	ctx := context.Background()

	service := &fakeService{}
	r := newReconciler(t, service, reconcile.WithDryRun(true))

	result, err := r.Reconcile(ctx, createTestPolicy(), bigtap.StatePresent)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if !result.Changed {
		t.Error("Expected changed=true from a dry run that would upsert")
	}
	if result.Op != reconcile.OpUpsert {
		t.Errorf("Expected op %q, got %q", reconcile.OpUpsert, result.Op)
	}
	if !result.Metadata.DryRun {
		t.Error("Expected dry run metadata")
	}
	if service.mutations() != 0 {
		t.Errorf("Expected no mutating calls during a dry run, got %d", service.mutations())
	}
	if service.listCalls != 1 {
		t.Errorf("Expected the fetch to still happen, got %d list calls", service.listCalls)
	}
}

func TestReconcileErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("fetch failure stops the run", func(t *testing.T) {
		service := &fakeService{
			listErr: errors.NewConfigFetchError("192.168.86.221", 403, "session expired"),
		}
		r := newReconciler(t, service)

		_, err := r.Reconcile(ctx, createTestPolicy(), bigtap.StatePresent)
		if err == nil {
			t.Fatal("Expected an error from a failed fetch")
		}
		if !errors.IsFetchError(err) {
			t.Errorf("Expected a fetch error, got %v", err)
		}
		if service.mutations() != 0 {
			t.Errorf("Expected no mutating calls after a failed fetch, got %d", service.mutations())
		}
	})

	t.Run("upsert failure surfaces the write error", func(t *testing.T) {
		service := &fakeService{
			upsertErr: errors.NewPolicyWriteError("create", "policy1", 400, "delivery interface not configured"),
		}
		r := newReconciler(t, service)

		_, err := r.Reconcile(ctx, createTestPolicy(), bigtap.StatePresent)
		if err == nil {
			t.Fatal("Expected an error from a failed upsert")
		}
		want := "error creating policy 'policy1': delivery interface not configured"
		if err.Error() != want {
			t.Errorf("Expected %q, got %q", want, err.Error())
		}
	})

	t.Run("delete failure surfaces the write error", func(t *testing.T) {
		service := &fakeService{
			policies:  []bigtap.Policy{createTestPolicy()},
			deleteErr: errors.NewPolicyWriteError("delete", "policy1", 409, "policy in use"),
		}
		r := newReconciler(t, service)

		_, err := r.Reconcile(ctx, createTestPolicy(), bigtap.StateAbsent)
		if err == nil {
			t.Fatal("Expected an error from a failed delete")
		}
		if !errors.IsWriteError(err) {
			t.Errorf("Expected a write error, got %v", err)
		}
	})
}

func TestReconcileValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*bigtap.Policy)
		state  bigtap.State
	}{
		{
			name:   "empty name",
			mutate: func(p *bigtap.Policy) { p.Name = "" },
			state:  bigtap.StatePresent,
		},
		{
			name:   "empty name for absent",
			mutate: func(p *bigtap.Policy) { p.Name = "" },
			state:  bigtap.StateAbsent,
		},
		{
			name:   "unknown action",
			mutate: func(p *bigtap.Policy) { p.Action = "mirror" },
			state:  bigtap.StatePresent,
		},
		{
			name:   "negative duration",
			mutate: func(p *bigtap.Policy) { p.Duration = -1 },
			state:  bigtap.StatePresent,
		},
		{
			name:   "invalid state",
			mutate: func(*bigtap.Policy) {},
			state:  bigtap.State("paused"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service := &fakeService{}
			r := newReconciler(t, service)

			desired := createTestPolicy()
			tc.mutate(&desired)

			_, err := r.Reconcile(ctx, desired, tc.state)
			if err == nil {
				t.Fatal("Expected a validation error")
			}
			if !errors.IsValidationError(err) {
				t.Errorf("Expected a validation error, got %v", err)
			}
			if service.listCalls != 0 {
				t.Errorf("Expected validation before any controller call, got %d list calls", service.listCalls)
			}
		})
	}
}

func TestReconcileNormalizesDesired(t *testing.T) {
	ctx := context.Background()

	service := &fakeService{}
	r := newReconciler(t, service)

	desired := bigtap.Policy{Name: "policy1"}
	result, err := r.Reconcile(ctx, desired, bigtap.StatePresent)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if result.Desired.Action != bigtap.ActionForward {
		t.Errorf("Expected default action %q, got %q", bigtap.ActionForward, result.Desired.Action)
	}
	if result.Desired.StartTime == "" {
		t.Error("Expected a default start time")
	}
	if service.policies[0].Action != bigtap.ActionForward {
		t.Errorf("Expected the pushed record to carry the default action, got %q", service.policies[0].Action)
	}
}

func TestNew(t *testing.T) {
	t.Run("requires a service", func(t *testing.T) {
		_, err := reconcile.New(nil)
		if err == nil {
			t.Fatal("Expected an error for a nil service")
		}
	})

	t.Run("rejects a nil logger", func(t *testing.T) {
		_, err := reconcile.New(&fakeService{}, reconcile.WithLogger(nil))
		if err == nil {
			t.Fatal("Expected an error for a nil logger")
		}
	})
}
