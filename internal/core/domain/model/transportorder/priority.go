package transportorder

import (
	"fmt"

	"transportation/internal/pkg/errs"
)

// PriorityLevel affects how soon a transport order is executed. Orders with a
// higher priority are processed before those with a lower one; the priority
// has no influence on which state transitions are legal.
type PriorityLevel int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown PriorityLevel = iota

	// PriorityLowest is the lowest execution priority.
	PriorityLowest

	// PriorityLow is a below-normal execution priority.
	PriorityLow

	// PriorityNormal is the default execution priority.
	PriorityNormal

	// PriorityHigh is an above-normal execution priority.
	PriorityHigh

	// PriorityHighest is the highest execution priority.
	PriorityHighest
)

func getPriorityStrings() map[PriorityLevel]string {
	return map[PriorityLevel]string{
		PriorityUnknown: "Unknown",
		PriorityLowest:  "Lowest",
		PriorityLow:     "Low",
		PriorityNormal:  "Normal",
		PriorityHigh:    "High",
		PriorityHighest: "Highest",
	}
}

// Validate checks that the PriorityLevel is one of the defined levels.
func (p PriorityLevel) Validate() error {
	if p < PriorityLowest || p > PriorityHighest {
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%d is not a valid priority level", int(p)))
	}
	return nil
}

// String returns the human-readable name of the priority level.
func (p PriorityLevel) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
