package commands

import (
	"errors"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/pkg/errs"
	"livehaul/internal/pkg/guard"
)

var ErrOpenDisputeCommandIsNotConstructed = errors.New(
	"OpenDisputeCommand must be created via NewOpenDisputeCommand constructor",
)

// OpenDisputeCommand raises a dispute against a payment.
type OpenDisputeCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	actorID   kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewOpenDisputeCommand creates a command to open a dispute.
func NewOpenDisputeCommand(paymentID, actorID kernel.UUID, reason string) (OpenDisputeCommand, error) {
	if err := actorID.Validate(); err != nil {
		return OpenDisputeCommand{}, errs.NewUnauthorizedError("open dispute")
	}
	if err := paymentID.Validate(); err != nil {
		return OpenDisputeCommand{}, errs.NewValueIsRequiredErrorWithCause("payment id", err)
	}
	if reason == "" {
		return OpenDisputeCommand{}, errs.NewValueIsRequiredError("reason")
	}

	return OpenDisputeCommand{
		paymentID: paymentID,
		actorID:   actorID,
		reason:    reason,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenDisputeCommand) Validate() error {
	return c.guard.Validate(ErrOpenDisputeCommandIsNotConstructed)
}

// PaymentID returns the disputed payment.
func (c OpenDisputeCommand) PaymentID() kernel.UUID { return c.paymentID }

// ActorID returns who raised the dispute.
func (c OpenDisputeCommand) ActorID() kernel.UUID { return c.actorID }

// Reason returns the stated grievance.
func (c OpenDisputeCommand) Reason() string { return c.reason }
