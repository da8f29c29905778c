//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/bigmonlabs/bigmonctl --repository.default-branch master --repository.path /pkg/reconcile

// Package reconcile implements idempotent policy reconciliation against a
// Big Monitoring Fabric controller: compare a desired record with the
// configured policies and issue at most one corrective call.
package reconcile
