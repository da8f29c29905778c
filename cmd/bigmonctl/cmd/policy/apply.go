package policy

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/bigmonlabs/bigmonctl/internal/cmdout"
	"github.com/bigmonlabs/bigmonctl/pkg/bigtap"
	"github.com/bigmonlabs/bigmonctl/pkg/errors"
)

// NewApplyCommand creates the policy apply subcommand using app context.
func NewApplyCommand(app AppContext) *cobra.Command {
	var flags *Flags
	var file string

	cmd := &cobra.Command{
		Use:   "apply [name]",
		Short: "Push a policy when it is missing or drifted",
		Args:  cobra.MaximumNArgs(1),
		Long: `Apply declares that a policy should exist on the controller.

If a configured policy already matches the declared fields the controller
is left untouched. Otherwise the policy is pushed in a single write.
Start time is informational and never triggers a rewrite on its own.`,
		Example: `  bigmonctl policy apply policy1 --action drop --priority 100
  bigmonctl policy apply policy1 --description "DC 1 traffic policy"
  bigmonctl policy apply -f policies.yaml   # Apply every policy in the file
  bigmonctl policy apply policy1 --dry-run  # Preview the decision`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			desired, err := desiredPolicies(flags, file, args)
			if err != nil {
				return err
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			for _, policy := range desired {
				result, err := client.Apply(ctx, policy)
				if err != nil {
					return err
				}
				if err := cmdout.FormatResult(cmd.OutOrStdout(), result, cmdout.Format(app.Format())); err != nil {
					return err
				}
			}

			return nil
		},
	}

	// Add policy field flags
	flags = addPolicyFlags(cmd)
	cmd.Flags().StringVarP(&file, "file", "f", "",
		"YAML file holding one policy or a list of policies")

	return cmd
}

// desiredPolicies resolves the policies to apply from a file or from the
// name argument plus field flags.
func desiredPolicies(flags *Flags, file string, args []string) ([]bigtap.Policy, error) {
	if file != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("cannot combine --file with a policy name")
		}
		return readPolicyFile(file)
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("requires a policy name or --file")
	}

	policy, err := flags.Policy(args[0])
	if err != nil {
		return nil, err
	}

	return []bigtap.Policy{policy}, nil
}

// filePolicy decodes a YAML policy document on top of the controller's
// defaults, so a file that omits priority still pushes 100, not 0.
type filePolicy struct {
	bigtap.Policy
}

// UnmarshalYAML implements yaml.BytesUnmarshaler.
func (p *filePolicy) UnmarshalYAML(data []byte) error {
	policy := bigtap.NewPolicy("")
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return err
	}
	p.Policy = policy
	return nil
}

// readPolicyFile loads policies from a YAML file holding either a single
// policy document or a list of policies. Field names follow the
// controller's wire format (name, action, priority, duration,
// delivery-packet-count, start-time, policy-description). Omitted fields
// take the same defaults as the flags.
func readPolicyFile(path string) ([]bigtap.Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy file: %w", err)
	}

	var entries []filePolicy
	if err := yaml.Unmarshal(data, &entries); err != nil {
		var single filePolicy
		if err := yaml.Unmarshal(data, &single); err != nil {
			return nil, errors.WrapParse("yaml", path, err)
		}
		entries = []filePolicy{single}
	}

	policies := make([]bigtap.Policy, len(entries))
	for i, entry := range entries {
		policies[i] = entry.Policy
	}
	return policies, nil
}
