package commands

import (
	"context"
	"time"

	"livehaul/internal/core/domain/model/load"
	"livehaul/internal/core/domain/model/trip"
	"livehaul/internal/core/ports"
)

// TransitionTripStatusCommandHandler moves a trip through its state machine
// and keeps the owning load's status in step: departure marks the load
// in_transit, arrival completes it. Trip and load are updated in the same
// transaction so the two never drift apart.
type TransitionTripStatusCommandHandler struct {
	uowFactory TripUoWFactory
	publisher  ports.EventPublisher
}

// NewTransitionTripStatusCommandHandler creates a handler for trip transitions.
func NewTransitionTripStatusCommandHandler(
	uowFactory TripUoWFactory,
	publisher ports.EventPublisher,
) TransitionTripStatusCommandHandler {
	return TransitionTripStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the transition command.
// A transition to the trip's current status is a no-op and publishes nothing.
// Completing the trip publishes one trip.completed event after commit.
func (h TransitionTripStatusCommandHandler) Handle(ctx context.Context, cmd TransitionTripStatusCommand) (*trip.Trip, error) {
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

	tripRepo := uow.TripRepository()

	aggregate, err := tripRepo.Get(ctx, cmd.TripID())
	if err != nil {
		return nil, err
	}

	if aggregate.Status() == cmd.Target() {
		return aggregate, nil
	}

	if err = aggregate.TransitionTo(cmd.Target()); err != nil {
		return nil, err
	}
	if err = tripRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err = h.syncLoad(ctx, uow, aggregate, cmd.Target(), now); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if cmd.Target() == trip.StatusCompleted {
		_ = h.publisher.Publish(ctx, ports.Envelope{
			Kind: ports.EventTripCompleted,
			Payload: map[string]any{
				"trip_id": aggregate.ID().String(),
				"load_id": aggregate.LoadID().String(),
			},
			OccurredAt: now,
		})
	}

	return aggregate, nil
}

// syncLoad mirrors the trip's progress onto the load. The load may already be
// ahead (delivery proof can land before anyone recorded departure), so the
// sync only moves it forward when the move is still legal.
func (h TransitionTripStatusCommandHandler) syncLoad(
	ctx context.Context,
	uow TripUoW,
	aggregate *trip.Trip,
	target trip.Status,
	now time.Time,
) error {
	loadRepo := uow.LoadRepository()

	owned, err := loadRepo.Get(ctx, aggregate.LoadID())
	if err != nil {
		return err
	}

	switch target {
	case trip.StatusEnRoute:
		if owned.Status() != load.Matched {
			return nil
		}
		if err = owned.MarkInTransit(now); err != nil {
			return err
		}
	case trip.StatusCompleted:
		if err = owned.MarkCompleted(now); err != nil {
			return err
		}
	default:
		return nil
	}

	return loadRepo.Update(ctx, owned)
}
