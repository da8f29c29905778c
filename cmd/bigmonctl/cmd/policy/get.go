package policy

import (
	"github.com/spf13/cobra"

	"github.com/bigmonlabs/bigmonctl/internal/cmdout"
)

// NewGetCommand creates the policy get subcommand using app context.
func NewGetCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show a single policy from the controller",
		Args:  cobra.ExactArgs(1),
		Example: `  bigmonctl policy get policy1
  bigmonctl policy get policy1 -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			policy, err := client.Policy(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return cmdout.FormatPolicy(cmd.OutOrStdout(), *policy, cmdout.Format(app.Format()))
		},
	}
}
