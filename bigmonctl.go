// Package bigmonctl provides the main entry point for reconciling Big
// Monitoring Fabric policies against a BigSwitch controller.
//
// It wraps the controller's bigtap REST API with idempotent apply/remove
// semantics:
// - At most one mutating call per reconciliation
// - Matching on the fields that define a policy, never its start time
// - Credential fallback to the BIGSWITCH_ACCESS_TOKEN environment variable
// - A TLS certificate validation toggle for lab controllers
//
// Example usage:
//
//	// Create a client for a controller
//	client, err := bigmonctl.New("192.168.86.221",
//	    bigmonctl.WithAccessToken(token),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Describe the desired policy
//	policy := bigtap.NewPolicy("policy1")
//	policy.Action = bigtap.ActionDrop
//	policy.Description = "DC 1 traffic policy"
//
//	// Drive it to the controller; reruns are no-ops
//	result, err := client.Apply(ctx, policy)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary())
//
//	// Take it back off
//	result, err = client.Remove(ctx, policy)
package bigmonctl

import (
	"os"

	ctrl "github.com/bigmonlabs/bigmonctl/internal/controller"
	"github.com/bigmonlabs/bigmonctl/internal/transport"
	"github.com/bigmonlabs/bigmonctl/pkg/constants"
	"github.com/bigmonlabs/bigmonctl/pkg/errors"
	"github.com/bigmonlabs/bigmonctl/pkg/reconcile"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Client manages policies on a Big Monitoring Fabric controller.
type Client interface {

	// Ensurer drives desired policy records toward a target state
	Ensurer

	// Inspector reads the policies configured on the controller
	Inspector
}

// client is the internal implementation of the Client interface.
type client struct {

	// options are the configured options for the client
	options *options

	// controller is the address of the controller
	controller string

	// service answers policy reads and writes on the controller
	service reconcile.PolicyService

	// reconciler drives desired records toward their target state
	reconciler reconcile.Reconciler
}

// New creates a new Client for the given controller address.
//
// The access token is resolved before any controller call: an explicit
// WithAccessToken value wins, otherwise the BIGSWITCH_ACCESS_TOKEN
// environment variable is consulted. Without either, New fails.
func New(controller string, opts ...Option) (Client, error) {
	if controller == "" {
		return nil, errors.NewValidationError("controller", controller, "controller address is required")
	}

	// configured options for the client
	options := defaults().apply(opts...)

	// resolve the access token before touching the network
	token := options.accessToken
	if token == "" {
		token = os.Getenv(constants.AccessTokenEnvVar)
	}
	if token == "" {
		return nil, errors.NewCredentialError(constants.AccessTokenEnvVar, "missing access token")
	}

	// build the controller-backed policy service unless one was injected
	service := options.service
	if service == nil {
		tr := transport.New(&transport.SessionCookieAuth{},
			transport.WithTimeout(options.timeout),
			transport.WithCertValidation(options.validateCerts),
		)

		ctrlOpts := []ctrl.Option{ctrl.WithTransport(tr)}
		if options.baseURL != "" {
			ctrlOpts = append(ctrlOpts, ctrl.WithBaseURL(options.baseURL))
		}
		service = ctrl.New(controller, token, ctrlOpts...)
	}

	// build the reconciler on top of the service
	reconciler, err := reconcile.New(service,
		reconcile.WithDryRun(options.dryRun),
		reconcile.WithLogger(options.logger),
	)
	if err != nil {
		return nil, err
	}

	return &client{
		options:    options,
		controller: controller,
		service:    service,
		reconciler: reconciler,
	}, nil
}
