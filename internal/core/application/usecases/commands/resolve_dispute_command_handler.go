package commands

import (
	"context"
	"time"

	"livehaul/internal/core/domain/model/payment"
	"livehaul/internal/pkg/errs"
)

// ResolveDisputeCommandHandler settles a dispute. Resolution is an operator
// action: only admins may do it. A split must conserve the payment amount;
// the payment row itself is never rewritten.
type ResolveDisputeCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewResolveDisputeCommandHandler creates a handler for dispute resolution.
func NewResolveDisputeCommandHandler(uowFactory PaymentUoWFactory) ResolveDisputeCommandHandler {
	return ResolveDisputeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resolution command.
func (h ResolveDisputeCommandHandler) Handle(ctx context.Context, cmd ResolveDisputeCommand) (*payment.Dispute, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if !cmd.ActorRole().IsAdmin() {
		return nil, errs.NewForbiddenError("resolve dispute")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()

	dispute, err := paymentRepo.GetDispute(ctx, cmd.DisputeID())
	if err != nil {
		return nil, err
	}

	entry, err := paymentRepo.Get(ctx, dispute.PaymentID)
	if err != nil {
		return nil, err
	}

	err = dispute.Resolve(
		cmd.Resolution(), cmd.PayeeAmount(), cmd.PayerRefund(),
		entry.Amount(), cmd.ActorID(), time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = paymentRepo.UpdateDispute(ctx, dispute); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return dispute, nil
}
