package commands

import (
	"errors"
	"time"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/pkg/errs"
	"livehaul/internal/pkg/guard"
)

var ErrCaptureEpodCommandIsNotConstructed = errors.New(
	"CaptureEpodCommand must be created via NewCaptureEpodCommand constructor",
)

// CaptureEpodCommand records the electronic proof of delivery for a trip.
// The actor is whoever captured the proof; they become the releasing actor
// on the payment when the release goes through.
type CaptureEpodCommand struct { //nolint:recvcheck //using for validation
	tripID       kernel.UUID
	actorID      kernel.UUID
	deliveredAt  time.Time
	receiverName string
	photoURL     string
	notes        string

	guard guard.ConstructorGuard
}

// NewCaptureEpodCommand creates a command to capture a proof of delivery.
func NewCaptureEpodCommand(
	tripID, actorID kernel.UUID,
	deliveredAt time.Time,
	receiverName, photoURL, notes string,
) (CaptureEpodCommand, error) {
	cmd := CaptureEpodCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := actorID.Validate(); err != nil {
		return CaptureEpodCommand{}, errs.NewUnauthorizedError("capture epod")
	}
	if err := tripID.Validate(); err != nil {
		return CaptureEpodCommand{}, errs.NewValueIsRequiredErrorWithCause("trip id", err)
	}
	if receiverName == "" {
		return CaptureEpodCommand{}, errs.NewValueIsRequiredError("receiver name")
	}
	if deliveredAt.IsZero() {
		return CaptureEpodCommand{}, errs.NewValueIsRequiredError("delivered at")
	}

	cmd.tripID = tripID
	cmd.actorID = actorID
	cmd.deliveredAt = deliveredAt
	cmd.receiverName = receiverName
	cmd.photoURL = photoURL
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CaptureEpodCommand) Validate() error {
	return c.guard.Validate(ErrCaptureEpodCommandIsNotConstructed)
}

// TripID returns the delivered trip.
func (c CaptureEpodCommand) TripID() kernel.UUID { return c.tripID }

// ActorID returns the capturing actor.
func (c CaptureEpodCommand) ActorID() kernel.UUID { return c.actorID }

// DeliveredAt returns when delivery happened.
func (c CaptureEpodCommand) DeliveredAt() time.Time { return c.deliveredAt }

// ReceiverName returns who signed for the animals.
func (c CaptureEpodCommand) ReceiverName() string { return c.receiverName }

// PhotoURL returns the opaque photo reference, possibly empty.
func (c CaptureEpodCommand) PhotoURL() string { return c.photoURL }

// Notes returns the free-form delivery notes.
func (c CaptureEpodCommand) Notes() string { return c.notes }
