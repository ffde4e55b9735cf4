package trip

import (
	"strings"

	"livehaul/internal/pkg/errs"
)

// Status represents the lifecycle state of a trip.
//
// State transitions:
//
//	planned ──> assigned ──> en_route ──> completed
//	    │           │            │
//	    └───────────┴────────────┴──> cancelled
//
// completed and cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPlanned is the initial status set by the trip provisioner.
	StatusPlanned

	// StatusAssigned indicates the carrier has confirmed truck and driver.
	StatusAssigned

	// StatusEnRoute indicates the trip is under way.
	StatusEnRoute

	// StatusCompleted indicates delivery is done. Terminal.
	StatusCompleted

	// StatusCancelled indicates the trip was abandoned. Terminal.
	StatusCancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPlanned:   "planned",
		StatusAssigned:  "assigned",
		StatusEnRoute:   "en_route",
		StatusCompleted: "completed",
		StatusCancelled: "cancelled",
	}
}

// statusSynonyms maps the spellings callers actually send to canonical names.
func statusSynonyms() map[string]string {
	return map[string]string{
		"in_progress": "en_route",
		"in_transit":  "en_route",
		"enroute":     "en_route",
		"started":     "en_route",
		"done":        "completed",
		"complete":    "completed",
		"delivered":   "completed",
		"canceled":    "cancelled",
		"cancel":      "cancelled",
	}
}

// ParseTarget normalizes a caller-supplied transition target into a Status.
// Common synonyms are accepted; anything unrecognized is an InvalidStatus
// error. "planned" is not a valid target; trips only start there.
func ParseTarget(target string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(target))
	if canonical, ok := statusSynonyms()[normalized]; ok {
		normalized = canonical
	}

	for status, str := range statusStrings() {
		if str == normalized && status != StatusUnknown && status != StatusPlanned {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewInvalidStatusError(target)
}

// StatusFromString parses a persisted status string.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewInvalidStatusError(s)
}

// Validate checks that the status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusCancelled {
		return errs.NewInvalidStatusError(s.String())
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
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether the state machine permits moving from s to
// target. Cancellation is reachable from any non-terminal state; the forward
// path is strictly planned → assigned → en_route → completed, with skipping
// ahead allowed (a planned trip may go straight en_route or be completed by
// delivery proof).
func (s Status) CanTransitionTo(target Status) bool {
	if s.IsTerminal() {
		return false
	}
	if target == StatusCancelled {
		return true
	}
	return target > s && target <= StatusCompleted
}
