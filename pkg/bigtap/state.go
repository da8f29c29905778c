package bigtap

import (
	"strings"

	"github.com/bigmonlabs/bigmonctl/pkg/errors"
)

// State represents the desired presence of a policy on the controller.
type State string

// Desired states.
const (
	StatePresent State = "present" // The policy should exist with the given fields
	StateAbsent  State = "absent"  // No policy matching the given fields should exist
)

// String returns the string representation of a State.
func (s State) String() string {
	return string(s)
}

// Valid reports whether s is a recognized state.
func (s State) Valid() bool {
	return s == StatePresent || s == StateAbsent
}

// ParseState converts s into a State, rejecting unrecognized values.
func ParseState(s string) (State, error) {
	st := State(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", errors.NewValidationError("state", s, "must be present or absent")
	}
	return st, nil
}
