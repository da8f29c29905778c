package reconcile

import (
	"github.com/go-test/deep"

	"github.com/bigmonlabs/bigmonctl/pkg/bigtap"
)

// matchFields is the projection of a policy that participates in match
// decisions. Start time never takes part.
type matchFields struct {
	Name                string
	Description         string
	Action              bigtap.Action
	Priority            int
	Duration            int
	DeliveryPacketCount int
}

func matchView(p bigtap.Policy) matchFields {
	return matchFields{
		Name:                p.Name,
		Description:         p.Description,
		Action:              p.Action,
		Priority:            p.Priority,
		Duration:            p.Duration,
		DeliveryPacketCount: p.DeliveryPacketCount,
	}
}

// Diff returns the field-level differences between a configured policy and
// the desired record, restricted to fields that participate in matching.
// A nil result means the two match.
func Diff(configured, desired bigtap.Policy) []string {
	return deep.Equal(matchView(configured), matchView(desired))
}

// FindMatch returns the first configured policy matching the desired record,
// or nil when none matches.
func FindMatch(configured []bigtap.Policy, desired bigtap.Policy) *bigtap.Policy {
	for i := range configured {
		if configured[i].Matches(desired) {
			return &configured[i]
		}
	}
	return nil
}

// FindByName returns the configured policy with the given name, or nil.
func FindByName(configured []bigtap.Policy, name string) *bigtap.Policy {
	for i := range configured {
		if configured[i].Name == name {
			return &configured[i]
		}
	}
	return nil
}
