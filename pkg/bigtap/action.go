package bigtap

import (
	"strings"

	"github.com/bigmonlabs/bigmonctl/pkg/errors"
)

// Action represents what a policy does with the traffic it matches.
type Action string

// String returns the string representation of an Action.
func (a Action) String() string {
	return string(a)
}

// Policy actions.
const (
	ActionForward Action = "forward"  // Deliver matched traffic to the delivery interfaces
	ActionDrop    Action = "drop"     // Discard matched traffic
	ActionCapture Action = "capture"  // Record matched traffic on the controller
	ActionFlowGen Action = "flow-gen" // Generate test flows for the policy
)

// Actions returns every recognized policy action.
func Actions() []Action {
	return []Action{ActionForward, ActionDrop, ActionCapture, ActionFlowGen}
}

// Valid reports whether a is a recognized action.
func (a Action) Valid() bool {
	switch a {
	case ActionForward, ActionDrop, ActionCapture, ActionFlowGen:
		return true
	}
	return false
}

// ParseAction converts s into an Action, rejecting unrecognized values.
func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", errors.NewValidationError("action", s, "must be one of "+actionList())
	}
	return a, nil
}

func actionList() string {
	all := Actions()
	names := make([]string, len(all))
	for i, a := range all {
		names[i] = a.String()
	}
	return strings.Join(names, ", ")
}
