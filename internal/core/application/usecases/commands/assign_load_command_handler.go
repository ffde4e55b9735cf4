package commands

import (
	"context"
	"errors"
	"time"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/load"
	"livehaul/internal/core/domain/model/payment"
	"livehaul/internal/core/domain/model/trip"
	"livehaul/internal/core/ports"
	"livehaul/internal/pkg/errs"
)

// AssignLoadResult carries the state produced by a (possibly idempotent)
// assignment: the load, its trip, and the payment when one exists.
type AssignLoadResult struct {
	Load    *load.Load
	Trip    *trip.Trip
	Payment *payment.Payment
}

// AssignLoadCommandHandler orchestrates handing a posted load to a carrier.
// The whole assignment runs in one transaction behind a row lock on the load,
// so concurrent attempts against the same load serialize and exactly one
// caller wins; the rest see a conflict. Replaying the winning assignment is a
// no-op that re-reads the existing state without opening a second payment or
// publishing a second event.
//
// Example:
//
//	handler := NewAssignLoadCommandHandler(uowFactory, publisher, 10)
//	cmd, _ := NewAssignLoadCommand(loadID, shipperID, kernel.RoleShipper, carrierID)
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // another carrier already won this load
//	}
type AssignLoadCommandHandler struct {
	uowFactory        UoWFactory
	publisher         ports.EventPublisher
	commissionRatePct float64
}

// NewAssignLoadCommandHandler creates a handler for load assignment.
// commissionRatePct is the platform's cut recorded on every payment it opens.
func NewAssignLoadCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	commissionRatePct float64,
) AssignLoadCommandHandler {
	return AssignLoadCommandHandler{
		uowFactory:        uowFactory,
		publisher:         publisher,
		commissionRatePct: commissionRatePct,
	}
}

// Handle processes the assignment command.
// Authorization comes first: only a shipper or admin may assign, and a
// non-admin must own the load. The load row is then locked for the rest of
// the transaction, carrier resources are provisioned, the trip is ensured,
// the load moves to matched, and a payment opens when the fresh trip carries
// a positive escrow offer. One load.matched event is published after commit;
// a replayed assignment publishes nothing.
func (h AssignLoadCommandHandler) Handle(ctx context.Context, cmd AssignLoadCommand) (AssignLoadResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignLoadResult{}, err
	}
	if cmd.ActorRole() != kernel.RoleShipper && !cmd.ActorRole().IsAdmin() {
		return AssignLoadResult{}, errs.NewForbiddenError("assign load")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignLoadResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadRepo := uow.LoadRepository()

	aggregate, err := loadRepo.GetForUpdate(ctx, cmd.LoadID())
	if err != nil {
		return AssignLoadResult{}, err
	}
	if !cmd.ActorRole().IsAdmin() && !aggregate.IsOwnedBy(cmd.ActorID()) {
		return AssignLoadResult{}, errs.NewForbiddenError("assign load")
	}

	if aggregate.IsAssignedTo(cmd.CarrierUserID()) {
		return h.replay(ctx, uow, aggregate)
	}

	now := time.Now().UTC()

	resources, err := ensureCarrierResources(ctx, uow.CarrierRepository(), cmd.CarrierUserID(), now)
	if err != nil {
		return AssignLoadResult{}, err
	}

	provisioned, err := ensureTrip(ctx, uow.TripRepository(), aggregate, resources)
	if err != nil {
		return AssignLoadResult{}, err
	}

	if err = aggregate.Assign(cmd.CarrierUserID(), now); err != nil {
		return AssignLoadResult{}, err
	}
	if err = loadRepo.Update(ctx, aggregate); err != nil {
		return AssignLoadResult{}, err
	}

	var ledgerEntry *payment.Payment
	if provisioned.fresh && h.shouldOpenPayment(aggregate) {
		ledgerEntry, err = h.openPayment(ctx, uow.PaymentRepository(), aggregate, provisioned.trip, cmd.CarrierUserID())
		if err != nil {
			return AssignLoadResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignLoadResult{}, err
	}

	// Best effort after commit: the assignment stands even if delivery fails.
	_ = h.publisher.Publish(ctx, ports.Envelope{
		Kind: ports.EventLoadMatched,
		Payload: map[string]any{
			"load_id":    aggregate.ID().String(),
			"carrier_id": cmd.CarrierUserID().String(),
			"trip_id":    provisioned.trip.ID().String(),
		},
		OccurredAt: now,
	})

	return AssignLoadResult{Load: aggregate, Trip: provisioned.trip, Payment: ledgerEntry}, nil
}

// replay serves an assignment the same carrier already won: re-read the trip
// and payment, change nothing, publish nothing.
func (h AssignLoadCommandHandler) replay(
	ctx context.Context,
	uow UoW,
	aggregate *load.Load,
) (AssignLoadResult, error) {
	existingTrip, err := uow.TripRepository().GetByLoad(ctx, aggregate.ID())
	if err != nil {
		return AssignLoadResult{}, err
	}

	existingPayment, err := uow.PaymentRepository().GetByTrip(ctx, existingTrip.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return AssignLoadResult{}, err
	}

	return AssignLoadResult{Load: aggregate, Trip: existingTrip, Payment: existingPayment}, nil
}

func (h AssignLoadCommandHandler) shouldOpenPayment(aggregate *load.Load) bool {
	return aggregate.HasPositiveOffer() && aggregate.Terms().Mode == load.PaymentModeEscrow
}

func (h AssignLoadCommandHandler) openPayment(
	ctx context.Context,
	repo ports.PaymentRepository,
	aggregate *load.Load,
	provisioned *trip.Trip,
	carrierUserID kernel.UUID,
) (*payment.Payment, error) {
	entry, err := payment.NewPayment(
		kernel.NewUUID(), aggregate.ID(), provisioned.ID(),
		aggregate.ShipperID(), carrierUserID,
		aggregate.Terms().OfferAmount, aggregate.Terms().Currency,
		h.commissionRatePct,
	)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
