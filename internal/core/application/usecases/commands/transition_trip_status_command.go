package commands

import (
	"errors"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/trip"
	"livehaul/internal/pkg/errs"
	"livehaul/internal/pkg/guard"
)

var ErrTransitionTripStatusCommandIsNotConstructed = errors.New(
	"TransitionTripStatusCommand must be created via NewTransitionTripStatusCommand constructor",
)

// TransitionTripStatusCommand moves a trip along its lifecycle. The target
// arrives as the raw string the caller sent; synonym normalization and
// validation happen here so the handler only ever sees a defined status.
type TransitionTripStatusCommand struct { //nolint:recvcheck //using for validation
	tripID kernel.UUID
	target trip.Status

	guard guard.ConstructorGuard
}

// NewTransitionTripStatusCommand creates a command to transition a trip.
// An unrecognized target is rejected with an InvalidStatus error before any
// storage is touched.
func NewTransitionTripStatusCommand(tripID kernel.UUID, target string) (TransitionTripStatusCommand, error) {
	if err := tripID.Validate(); err != nil {
		return TransitionTripStatusCommand{}, errs.NewValueIsRequiredErrorWithCause("trip id", err)
	}

	parsed, err := trip.ParseTarget(target)
	if err != nil {
		return TransitionTripStatusCommand{}, err
	}

	return TransitionTripStatusCommand{
		tripID: tripID,
		target: parsed,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionTripStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionTripStatusCommandIsNotConstructed)
}

// TripID returns the trip being transitioned.
func (c TransitionTripStatusCommand) TripID() kernel.UUID { return c.tripID }

// Target returns the normalized target status.
func (c TransitionTripStatusCommand) Target() trip.Status { return c.target }
