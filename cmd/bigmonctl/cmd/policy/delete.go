package policy

import (
	"github.com/spf13/cobra"

	"github.com/bigmonlabs/bigmonctl/internal/cmdout"
)

// NewDeleteCommand creates the policy delete subcommand using app context.
func NewDeleteCommand(app AppContext) *cobra.Command {
	var flags *Flags

	cmd := &cobra.Command{
		Use:     "delete <name>",
		Short:   "Remove a policy that matches the declared fields",
		Aliases: []string{"remove"},
		Args:    cobra.ExactArgs(1),
		Long: `Delete removes a policy from the controller, but only when a configured
policy matches every declared field. A policy that exists under the same
name with different fields is left alone, and deleting an absent policy
is a no-op.`,
		Example: `  bigmonctl policy delete policy1 --action drop --priority 100
  bigmonctl policy delete policy1 --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			desired, err := flags.Policy(args[0])
			if err != nil {
				return err
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			result, err := client.Remove(cmd.Context(), desired)
			if err != nil {
				return err
			}

			return cmdout.FormatResult(cmd.OutOrStdout(), result, cmdout.Format(app.Format()))
		},
	}

	// Add policy field flags
	flags = addPolicyFlags(cmd)

	return cmd
}
