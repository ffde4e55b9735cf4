package commands

import (
	"context"
	"time"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/payment"
)

// OpenDisputeCommandHandler records a new dispute against a payment. Opening
// a dispute never touches the payment itself; the overlay only changes what
// reads report once it is resolved.
type OpenDisputeCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewOpenDisputeCommandHandler creates a handler for opening disputes.
func NewOpenDisputeCommandHandler(uowFactory PaymentUoWFactory) OpenDisputeCommandHandler {
	return OpenDisputeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispute command.
func (h OpenDisputeCommandHandler) Handle(ctx context.Context, cmd OpenDisputeCommand) (*payment.Dispute, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()

	entry, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return nil, err
	}

	dispute, err := payment.NewDispute(
		kernel.NewUUID(), entry.ID(), cmd.ActorID(),
		cmd.Reason(), time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = paymentRepo.AddDispute(ctx, dispute); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return dispute, nil
}
