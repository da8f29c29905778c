//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/bigmonlabs/bigmonctl --repository.default-branch master --repository.path /

// Package bigmonctl reconciles Big Monitoring Fabric policies against a
// BigSwitch controller over its bigtap REST API.
package bigmonctl
