package commands

import (
	"errors"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/pkg/errs"
	"livehaul/internal/pkg/guard"
)

var ErrCapturePreTripCheckCommandIsNotConstructed = errors.New(
	"CapturePreTripCheckCommand must be created via NewCapturePreTripCheckCommand constructor",
)

// CapturePreTripCheckCommand records the pre-departure safety checklist for a
// trip. The driver and truck on the check default to the ones assigned to the
// trip; a carrier attesting different resources passes them explicitly.
type CapturePreTripCheckCommand struct { //nolint:recvcheck //using for validation
	tripID     kernel.UUID
	driverID   *kernel.UUID
	truckID    *kernel.UUID
	roadworthy bool
	animalsFit bool
	notes      string

	guard guard.ConstructorGuard
}

// NewCapturePreTripCheckCommand creates a command to capture a checklist.
// driverID and truckID are optional overrides; nil means "the trip's own".
func NewCapturePreTripCheckCommand(
	tripID kernel.UUID,
	driverID, truckID *kernel.UUID,
	roadworthy, animalsFit bool,
	notes string,
) (CapturePreTripCheckCommand, error) {
	if err := tripID.Validate(); err != nil {
		return CapturePreTripCheckCommand{}, errs.NewValueIsRequiredErrorWithCause("trip id", err)
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return CapturePreTripCheckCommand{}, errs.NewValueIsInvalidErrorWithCause("driver id", err)
		}
	}
	if truckID != nil {
		if err := truckID.Validate(); err != nil {
			return CapturePreTripCheckCommand{}, errs.NewValueIsInvalidErrorWithCause("truck id", err)
		}
	}

	return CapturePreTripCheckCommand{
		tripID:     tripID,
		driverID:   driverID,
		truckID:    truckID,
		roadworthy: roadworthy,
		animalsFit: animalsFit,
		notes:      notes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CapturePreTripCheckCommand) Validate() error {
	return c.guard.Validate(ErrCapturePreTripCheckCommandIsNotConstructed)
}

// TripID returns the trip being checked.
func (c CapturePreTripCheckCommand) TripID() kernel.UUID { return c.tripID }

// DriverID returns the driver override, nil when the trip's driver applies.
func (c CapturePreTripCheckCommand) DriverID() *kernel.UUID { return c.driverID }

// TruckID returns the truck override, nil when the trip's truck applies.
func (c CapturePreTripCheckCommand) TruckID() *kernel.UUID { return c.truckID }

// Roadworthy reports the vehicle attestation.
func (c CapturePreTripCheckCommand) Roadworthy() bool { return c.roadworthy }

// AnimalsFit reports the animal-fitness attestation.
func (c CapturePreTripCheckCommand) AnimalsFit() bool { return c.animalsFit }

// Notes returns the free-form inspection notes.
func (c CapturePreTripCheckCommand) Notes() string { return c.notes }
