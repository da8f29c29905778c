// Package policy implements the policy command tree for managing bigtap
// policies on a Big Monitoring Fabric controller.
package policy

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bigmonlabs/bigmonctl"
)

// AppContext defines the interface that policy commands need from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	Client() (bigmonctl.Client, error)
	Logger() *zerolog.Logger
	Format() string
}

// NewCommand creates the policy command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Manage bigtap policies on the controller",
		Long: `Policy reconciles bigtap policies against the connected controller.

Available subcommands:
  apply   - push a policy when it is missing or drifted
  delete  - remove a policy that matches the declared fields
  list    - list configured policies
  get     - show a single policy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to help if no subcommand
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown subcommand: %s", args[0])
		},
	}

	// Add subcommands using the app context
	cmd.AddCommand(NewApplyCommand(app))
	cmd.AddCommand(NewDeleteCommand(app))
	cmd.AddCommand(NewListCommand(app))
	cmd.AddCommand(NewGetCommand(app))

	return cmd
}
