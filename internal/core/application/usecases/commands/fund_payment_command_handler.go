package commands

import (
	"context"
	"time"

	"livehaul/internal/core/domain/model/payment"
	"livehaul/internal/pkg/errs"
)

// FundPaymentCommandHandler locks shipper funds into escrow. Only the shipper
// who owes the payment (or an admin) may fund it, and only while it is still
// waiting on funds. Funding an advanced ledger entry is a conflict, never a
// silent rewrite.
type FundPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewFundPaymentCommandHandler creates a handler for payment funding.
func NewFundPaymentCommandHandler(uowFactory PaymentUoWFactory) FundPaymentCommandHandler {
	return FundPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the funding command.
// Ownership is checked against the load's shipper; a non-owner gets Forbidden
// without learning anything else about the payment.
func (h FundPaymentCommandHandler) Handle(ctx context.Context, cmd FundPaymentCommand) (*payment.Payment, error) {
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

	if !cmd.ActorRole().IsAdmin() && !entry.PayerID().IsEqual(cmd.ActorID()) {
		return nil, errs.NewForbiddenError("fund payment")
	}

	if err = entry.Fund(cmd.ActorID(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = paymentRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}
