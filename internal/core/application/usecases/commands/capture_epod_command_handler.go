package commands

import (
	"context"
	"errors"
	"time"

	"livehaul/internal/core/domain/model/payment"
	"livehaul/internal/core/domain/model/trip"
	"livehaul/internal/core/ports"
	"livehaul/internal/pkg/errs"
)

// CaptureEpodResult is everything the capture settled in one transaction:
// the stored proof, the completed trip and the payment as it stands after
// release. Payment is nil when the load never opened one.
type CaptureEpodResult struct {
	Epod    *trip.Epod
	Trip    *trip.Trip
	Payment *payment.Payment
}

// CaptureEpodCommandHandler records proof of delivery and settles the
// aftermath: the trip is forced to completed, the load follows, and the
// escrow payment is released when it was funded. Delivery proof is the
// source of truth: it lands even when the trip's bookkeeping lagged behind,
// and an unfunded payment never blocks it.
//
// The whole capture runs in its own transaction, separate from whatever
// status transitions came before it.
type CaptureEpodCommandHandler struct {
	uowFactory TripUoWFactory
	publisher  ports.EventPublisher
}

// NewCaptureEpodCommandHandler creates a handler for ePOD capture.
func NewCaptureEpodCommandHandler(
	uowFactory TripUoWFactory,
	publisher ports.EventPublisher,
) CaptureEpodCommandHandler {
	return CaptureEpodCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the ePOD capture.
// Upserts the proof, completes the trip and load, releases a funded payment,
// commits, then publishes one trip.completed event.
func (h CaptureEpodCommandHandler) Handle(ctx context.Context, cmd CaptureEpodCommand) (CaptureEpodResult, error) {
	if err := cmd.Validate(); err != nil {
		return CaptureEpodResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CaptureEpodResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tripRepo := uow.TripRepository()

	aggregate, err := tripRepo.Get(ctx, cmd.TripID())
	if err != nil {
		return CaptureEpodResult{}, err
	}

	epod, err := trip.NewEpod(aggregate.ID(), cmd.DeliveredAt(), cmd.ReceiverName(), cmd.PhotoURL(), cmd.Notes())
	if err != nil {
		return CaptureEpodResult{}, err
	}
	if err = tripRepo.UpsertEpod(ctx, epod); err != nil {
		return CaptureEpodResult{}, err
	}

	if err = aggregate.ForceComplete(); err != nil {
		return CaptureEpodResult{}, err
	}
	if err = tripRepo.Update(ctx, aggregate); err != nil {
		return CaptureEpodResult{}, err
	}

	now := time.Now().UTC()
	if err = h.completeLoad(ctx, uow, aggregate, now); err != nil {
		return CaptureEpodResult{}, err
	}

	entry, err := h.releasePayment(ctx, uow, aggregate, cmd, now)
	if err != nil {
		return CaptureEpodResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CaptureEpodResult{}, err
	}

	_ = h.publisher.Publish(ctx, ports.Envelope{
		Kind: ports.EventTripCompleted,
		Payload: map[string]any{
			"trip_id": aggregate.ID().String(),
			"load_id": aggregate.LoadID().String(),
		},
		OccurredAt: now,
	})

	return CaptureEpodResult{Epod: epod, Trip: aggregate, Payment: entry}, nil
}

func (h CaptureEpodCommandHandler) completeLoad(
	ctx context.Context,
	uow TripUoW,
	aggregate *trip.Trip,
	now time.Time,
) error {
	loadRepo := uow.LoadRepository()

	owned, err := loadRepo.Get(ctx, aggregate.LoadID())
	if err != nil {
		return err
	}
	if err = owned.MarkCompleted(now); err != nil {
		return err
	}
	return loadRepo.Update(ctx, owned)
}

// releasePayment is best effort: no payment or an unfunded payment leaves the
// ePOD capture untouched. Only a storage failure propagates. The returned
// entry reflects the payment as the caller should report it, nil when the
// trip has no payment at all.
func (h CaptureEpodCommandHandler) releasePayment(
	ctx context.Context,
	uow TripUoW,
	aggregate *trip.Trip,
	cmd CaptureEpodCommand,
	now time.Time,
) (*payment.Payment, error) {
	paymentRepo := uow.PaymentRepository()

	entry, err := paymentRepo.GetByTrip(ctx, aggregate.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !entry.CanRelease() {
		return entry, nil
	}

	if err = entry.Release(cmd.ActorID(), now); err != nil {
		return nil, err
	}
	if err = paymentRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
