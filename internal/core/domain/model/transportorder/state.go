package transportorder

import (
	"fmt"

	"transportation/internal/pkg/errs"
)

// State represents the lifecycle state of a transport order.
//
// State transitions:
//
//	Created ──> Initialized ──> Started ──┬──> Finished
//	   │             │            │       ├──> OnFailure
//	   │             ├────────────│───────┘
//	   └───────────  └────────────┴──────────> Canceled
//
// Finished, OnFailure and Canceled are terminal. The declared order of the
// constants is the lifecycle order; it is used to tell a backward request
// apart from an otherwise illegal one. Which transitions are permitted is
// defined by the explicit transition table, not by the ordering.
type State int

const (
	// Unknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	Unknown State = iota

	// Created is the initial state of every transport order. The order may
	// still be missing its transport unit and targets.
	Created

	// Initialized means the order is complete and ready to be started.
	Initialized

	// Started means the transport unit is moving. At most one order per
	// transport unit may be in this state.
	Started

	// Finished means the order completed successfully. Terminal.
	Finished

	// OnFailure means the order ended with an error. Terminal.
	OnFailure

	// Canceled means the order was aborted. Terminal.
	Canceled
)

// getStateStrings returns a map of State values to their string representations.
func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:     "Unknown",
		Created:     "Created",
		Initialized: "Initialized",
		Started:     "Started",
		Finished:    "Finished",
		OnFailure:   "OnFailure",
		Canceled:    "Canceled",
	}
}

// getNextStates returns the directed transition table: for each state the set
// of states it may move to. Terminal states map to an empty set. Started may
// move to every terminal state and nothing else; that row is deliberately
// exhaustive rather than derived from the constant ordering.
func getNextStates() map[State][]State {
	return map[State][]State{
		Created:     {Initialized, Canceled},
		Initialized: {Started, Canceled, OnFailure},
		Started:     {Finished, OnFailure, Canceled},
		Finished:    {},
		OnFailure:   {},
		Canceled:    {},
	}
}

// Validate checks that the State is one of the known lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s State) Validate() error {
	if _, ok := getNextStates()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state",
			fmt.Errorf("%d is not a valid transport order state", int(s)))
	}
	return nil
}

// String returns the human-readable name of the state. It implements
// fmt.Stringer and is safe on any value, including invalid ones.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is permitted from s.
func (s State) IsTerminal() bool {
	return s == Finished || s == OnFailure || s == Canceled
}

// CanTransitionTo reports whether the transition table permits moving from s
// directly to next.
func (s State) CanTransitionTo(next State) bool {
	for _, allowed := range getNextStates()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// comesBefore reports whether s is ordered earlier than other in the
// lifecycle. Used only to classify a rejected request as backward.
func (s State) comesBefore(other State) bool {
	return s < other
}
