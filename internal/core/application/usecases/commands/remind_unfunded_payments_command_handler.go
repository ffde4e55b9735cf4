package commands

import (
	"context"
	"time"

	"livehaul/internal/core/ports"
)

// RemindUnfundedPaymentsCommandHandler publishes a funding_overdue event for
// every payment still pending past the grace period. Pure notification: no
// ledger state changes, no retries.
type RemindUnfundedPaymentsCommandHandler struct {
	uowFactory PaymentUoWFactory
	publisher  ports.EventPublisher
}

// NewRemindUnfundedPaymentsCommandHandler creates a handler for funding reminders.
func NewRemindUnfundedPaymentsCommandHandler(
	uowFactory PaymentUoWFactory,
	publisher ports.EventPublisher,
) RemindUnfundedPaymentsCommandHandler {
	return RemindUnfundedPaymentsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the reminder command.
func (h RemindUnfundedPaymentsCommandHandler) Handle(ctx context.Context, cmd RemindUnfundedPaymentsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()

	overdue, err := uow.PaymentRepository().GetAllPendingFundingBefore(ctx, now.Add(-cmd.OlderThan()))
	if err != nil {
		return err
	}

	for _, entry := range overdue {
		if err = h.publisher.Publish(ctx, ports.Envelope{
			Kind: ports.EventPaymentFundingOverdue,
			Payload: map[string]any{
				"payment_id": entry.ID().String(),
				"load_id":    entry.LoadID().String(),
				"payer_id":   entry.PayerID().String(),
				"amount":     entry.Amount(),
				"currency":   entry.Currency(),
			},
			OccurredAt: now,
		}); err != nil {
			return err
		}
	}

	return nil
}
