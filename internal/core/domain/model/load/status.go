package load

import (
	"fmt"

	"livehaul/internal/pkg/errs"
)

// Status represents the lifecycle state of a load.
//
// State transitions:
//
//	posted ──> matched ──> in_transit ──> completed
//	               └────────────────────────┘
//	          (ePOD may complete a matched load directly)
//
// A load is never physically deleted; terminal or retired loads are
// soft-deleted instead.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Posted is the initial status: the load is on the marketplace board
	// waiting for a carrier to win it.
	Posted

	// Matched indicates a carrier has won the load and a trip exists.
	Matched

	// InTransit indicates the trip for the load is under way.
	InTransit

	// Completed indicates delivery has been proven. Final state.
	Completed
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Posted:    "posted",
		Matched:   "matched",
		InTransit: "in_transit",
		Completed: "completed",
	}
}

// StatusFromString parses a persisted status string.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("load status",
		fmt.Errorf("%q is not a valid load status", s))
}

// Validate checks that the status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s <= Unknown || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("load status",
			fmt.Errorf("%d is not a valid load status", s))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed
}
