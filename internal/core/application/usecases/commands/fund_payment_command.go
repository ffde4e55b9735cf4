package commands

import (
	"errors"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/pkg/errs"
	"livehaul/internal/pkg/guard"
)

var ErrFundPaymentCommandIsNotConstructed = errors.New(
	"FundPaymentCommand must be created via NewFundPaymentCommand constructor",
)

// FundPaymentCommand moves a shipper's funds into escrow for a payment.
type FundPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	actorID   kernel.UUID
	actorRole kernel.Role

	guard guard.ConstructorGuard
}

// NewFundPaymentCommand creates a command to fund a payment.
func NewFundPaymentCommand(paymentID, actorID kernel.UUID, actorRole kernel.Role) (FundPaymentCommand, error) {
	if err := actorID.Validate(); err != nil {
		return FundPaymentCommand{}, errs.NewUnauthorizedError("fund payment")
	}
	if err := paymentID.Validate(); err != nil {
		return FundPaymentCommand{}, errs.NewValueIsRequiredErrorWithCause("payment id", err)
	}
	if err := actorRole.Validate(); err != nil {
		return FundPaymentCommand{}, err
	}

	return FundPaymentCommand{
		paymentID: paymentID,
		actorID:   actorID,
		actorRole: actorRole,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FundPaymentCommand) Validate() error {
	return c.guard.Validate(ErrFundPaymentCommandIsNotConstructed)
}

// PaymentID returns the payment being funded.
func (c FundPaymentCommand) PaymentID() kernel.UUID { return c.paymentID }

// ActorID returns the funding actor.
func (c FundPaymentCommand) ActorID() kernel.UUID { return c.actorID }

// ActorRole returns the funding actor's role.
func (c FundPaymentCommand) ActorRole() kernel.Role { return c.actorRole }
