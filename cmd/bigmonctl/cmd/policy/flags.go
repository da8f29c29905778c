package policy

import (
	"github.com/spf13/cobra"

	"github.com/bigmonlabs/bigmonctl/pkg/bigtap"
	"github.com/bigmonlabs/bigmonctl/pkg/constants"
)

// Flags holds the policy field flags shared by apply and delete.
type Flags struct {
	Description         string
	Action              string
	Priority            int
	Duration            int
	DeliveryPacketCount int
	StartTime           string
}

// addPolicyFlags adds the policy field flags to a command.
func addPolicyFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	cmd.Flags().StringVar(&flags.Description, "description", "",
		"Policy description")
	cmd.Flags().StringVar(&flags.Action, "action", constants.DefaultPolicyAction,
		"Policy action: forward, drop, capture, flow-gen")
	cmd.Flags().IntVar(&flags.Priority, "priority", constants.DefaultPolicyPriority,
		"Policy priority")
	cmd.Flags().IntVar(&flags.Duration, "duration", constants.DefaultPolicyDuration,
		"Seconds the policy runs, 0 means unbounded")
	cmd.Flags().IntVar(&flags.DeliveryPacketCount, "delivery-packet-count", constants.DefaultDeliveryPacketCount,
		"Packets to deliver before the policy stops, 0 means unbounded")
	cmd.Flags().StringVar(&flags.StartTime, "start-time", "",
		"ISO 8601 start time (defaults to now)")

	return flags
}

// Policy builds the desired policy from the parsed flags. Defaults for
// unset fields are filled during reconciliation.
func (f *Flags) Policy(name string) (bigtap.Policy, error) {
	action, err := bigtap.ParseAction(f.Action)
	if err != nil {
		return bigtap.Policy{}, err
	}

	return bigtap.Policy{
		Name:                name,
		Description:         f.Description,
		Action:              action,
		Priority:            f.Priority,
		Duration:            f.Duration,
		StartTime:           f.StartTime,
		DeliveryPacketCount: f.DeliveryPacketCount,
	}, nil
}
