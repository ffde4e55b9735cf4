package commands

import (
	"context"
	"time"

	"livehaul/internal/core/domain/model/trip"
)

// CapturePreTripCheckCommandHandler stores the pre-departure checklist for a
// trip. A trip holds at most one checklist; a repeat capture replaces it.
type CapturePreTripCheckCommandHandler struct {
	uowFactory TripUoWFactory
}

// NewCapturePreTripCheckCommandHandler creates a handler for checklist capture.
func NewCapturePreTripCheckCommandHandler(uowFactory TripUoWFactory) CapturePreTripCheckCommandHandler {
	return CapturePreTripCheckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checklist capture. The driver and truck ids default
// to the trip's own, which guarantees they resolve: the provisioner never
// creates a trip without both. Explicit overrides on the command win.
func (h CapturePreTripCheckCommandHandler) Handle(ctx context.Context, cmd CapturePreTripCheckCommand) (*trip.PreTripCheck, error) {
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

	driverID := aggregate.DriverID()
	if id := cmd.DriverID(); id != nil {
		driverID = *id
	}
	truckID := aggregate.TruckID()
	if id := cmd.TruckID(); id != nil {
		truckID = *id
	}

	check, err := trip.NewPreTripCheck(
		aggregate.ID(), driverID, truckID,
		cmd.Roadworthy(), cmd.AnimalsFit(), cmd.Notes(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = tripRepo.AddPreTripCheck(ctx, check); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return check, nil
}
