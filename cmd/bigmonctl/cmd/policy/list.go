package policy

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/bigmonlabs/bigmonctl/internal/cmdout"
)

// NewListCommand creates the policy list subcommand using app context.
func NewListCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List policies configured on the controller",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Example: `  bigmonctl policy list
  bigmonctl policy list -o wide   # Include packet counts and start time
  bigmonctl policy list -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			policies, err := client.Policies(cmd.Context())
			if err != nil {
				return err
			}

			// Sort policies for stable output
			sort.Slice(policies, func(i, j int) bool {
				return policies[i].Name < policies[j].Name
			})

			app.Logger().Debug().Int("count", len(policies)).Msg("Fetched policies")

			return cmdout.FormatPolicies(cmd.OutOrStdout(), policies, cmdout.Format(app.Format()))
		},
	}
}
