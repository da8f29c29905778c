// Package bigtap defines the policy resource exposed by a Big Monitoring
// Fabric controller's bigtap application, along with the match and
// validation semantics used when reconciling desired state against the
// controller.
package bigtap

import (
	"github.com/agentstation/utc"

	"github.com/bigmonlabs/bigmonctl/pkg/constants"
	"github.com/bigmonlabs/bigmonctl/pkg/errors"
)

// StartTimeFormat renders policy start times the way the controller's API
// expects them.
const StartTimeFormat = "2006-01-02T15:04:05-07:00"

// Policy represents a traffic-handling rule on the controller. Field names
// follow the controller's wire format.
type Policy struct {
	Name                string `json:"name" yaml:"name"`                                   // Unique policy name, the resource key
	Description         string `json:"policy-description" yaml:"policy-description"`       // Free-form description
	Action              Action `json:"action" yaml:"action"`                               // What the policy does with matched traffic
	Priority            int    `json:"priority" yaml:"priority"`                           // Relative precedence among overlapping policies
	Duration            int    `json:"duration" yaml:"duration"`                           // Run time bound in seconds, 0 means unbounded
	StartTime           string `json:"start-time" yaml:"start-time"`                       // When the policy becomes active, ISO 8601
	DeliveryPacketCount int    `json:"delivery-packet-count" yaml:"delivery-packet-count"` // Packet delivery bound, 0 means unbounded
}

// NewPolicy returns a policy named name with the controller's defaults
// filled in: forward action, priority 100, unbounded duration and packet
// count, start time now.
func NewPolicy(name string) Policy {
	return Policy{
		Name:                name,
		Action:              ActionForward,
		Priority:            constants.DefaultPolicyPriority,
		Duration:            constants.DefaultPolicyDuration,
		StartTime:           utc.Now().Format(StartTimeFormat),
		DeliveryPacketCount: constants.DefaultDeliveryPacketCount,
	}
}

// Normalize fills defaults for fields left empty. Numeric fields are left
// alone so an explicit zero survives.
func (p *Policy) Normalize() {
	if p.Action == "" {
		p.Action = ActionForward
	}
	if p.StartTime == "" {
		p.StartTime = utc.Now().Format(StartTimeFormat)
	}
}

// Validate reports whether the policy can be sent to a controller.
func (p Policy) Validate() error {
	if p.Name == "" {
		return errors.NewValidationError("name", p.Name, "name cannot be empty")
	}
	if !p.Action.Valid() {
		return errors.NewValidationError("action", p.Action.String(), "must be one of "+actionList())
	}
	if p.Duration < 0 {
		return errors.NewValidationError("duration", p.Duration, "must not be negative")
	}
	if p.DeliveryPacketCount < 0 {
		return errors.NewValidationError("delivery-packet-count", p.DeliveryPacketCount, "must not be negative")
	}
	return nil
}

// Matches reports whether other describes the same policy. Equality covers
// name, duration, delivery packet count, description, action, and priority.
// Start time is deliberately excluded: two otherwise identical policies
// created at different times are the same policy.
func (p Policy) Matches(other Policy) bool {
	return p.Name == other.Name &&
		p.Duration == other.Duration &&
		p.DeliveryPacketCount == other.DeliveryPacketCount &&
		p.Description == other.Description &&
		p.Action == other.Action &&
		p.Priority == other.Priority
}
