package commands

import (
	"errors"
	"fmt"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/payment"
	"livehaul/internal/pkg/errs"
	"livehaul/internal/pkg/guard"
)

var ErrResolveDisputeCommandIsNotConstructed = errors.New(
	"ResolveDisputeCommand must be created via NewResolveDisputeCommand constructor",
)

// ResolveDisputeCommand settles a dispute with one of the defined
// resolutions. Split amounts are only meaningful for a split resolution;
// refund and release-to-carrier derive theirs from the payment.
type ResolveDisputeCommand struct { //nolint:recvcheck //using for validation
	disputeID   kernel.UUID
	actorID     kernel.UUID
	actorRole   kernel.Role
	resolution  payment.DisputeStatus
	payeeAmount float64
	payerRefund float64

	guard guard.ConstructorGuard
}

// NewResolveDisputeCommand creates a command to resolve a dispute.
func NewResolveDisputeCommand(
	disputeID, actorID kernel.UUID,
	actorRole kernel.Role,
	resolution string,
	payeeAmount, payerRefund float64,
) (ResolveDisputeCommand, error) {
	if err := actorID.Validate(); err != nil {
		return ResolveDisputeCommand{}, errs.NewUnauthorizedError("resolve dispute")
	}
	if err := disputeID.Validate(); err != nil {
		return ResolveDisputeCommand{}, errs.NewValueIsRequiredErrorWithCause("dispute id", err)
	}
	if err := actorRole.Validate(); err != nil {
		return ResolveDisputeCommand{}, err
	}

	kind := payment.DisputeStatus(resolution)
	switch kind {
	case payment.DisputeResolvedSplit, payment.DisputeResolvedRefund, payment.DisputeResolvedToCarrier:
	default:
		return ResolveDisputeCommand{}, errs.NewValueIsInvalidErrorWithCause("resolution",
			fmt.Errorf("%q is not a valid dispute resolution", resolution))
	}

	return ResolveDisputeCommand{
		disputeID:   disputeID,
		actorID:     actorID,
		actorRole:   actorRole,
		resolution:  kind,
		payeeAmount: payeeAmount,
		payerRefund: payerRefund,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveDisputeCommand) Validate() error {
	return c.guard.Validate(ErrResolveDisputeCommandIsNotConstructed)
}

// DisputeID returns the dispute being resolved.
func (c ResolveDisputeCommand) DisputeID() kernel.UUID { return c.disputeID }

// ActorID returns the resolving actor.
func (c ResolveDisputeCommand) ActorID() kernel.UUID { return c.actorID }

// ActorRole returns the resolving actor's role.
func (c ResolveDisputeCommand) ActorRole() kernel.Role { return c.actorRole }

// Resolution returns the chosen resolution kind.
func (c ResolveDisputeCommand) Resolution() payment.DisputeStatus { return c.resolution }

// PayeeAmount returns the split amount going to the carrier.
func (c ResolveDisputeCommand) PayeeAmount() float64 { return c.payeeAmount }

// PayerRefund returns the split amount refunded to the shipper.
func (c ResolveDisputeCommand) PayerRefund() float64 { return c.payerRefund }
