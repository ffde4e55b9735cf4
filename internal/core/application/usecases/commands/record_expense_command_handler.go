package commands

import (
	"context"
	"errors"
	"time"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/trip"
	"livehaul/internal/pkg/errs"
)

// RecordExpenseCommandHandler appends an expense to a trip's ledger.
type RecordExpenseCommandHandler struct {
	uowFactory TripUoWFactory
}

// NewRecordExpenseCommandHandler creates a handler for expense recording.
func NewRecordExpenseCommandHandler(uowFactory TripUoWFactory) RecordExpenseCommandHandler {
	return RecordExpenseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expense command.
// The submitted driver is resolved against the trip's hauler; an id that does
// not resolve is dropped and the expense stored without a driver. Expenses
// are operational paperwork; a typo in the driver field must not lose the
// receipt.
func (h RecordExpenseCommandHandler) Handle(ctx context.Context, cmd RecordExpenseCommand) (*trip.Expense, error) {
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

	driverID, err := h.resolveDriver(ctx, uow, aggregate, cmd.DriverUserID())
	if err != nil {
		return nil, err
	}

	expense, err := trip.NewExpense(
		kernel.NewUUID(), aggregate.ID(), driverID,
		cmd.Category(), cmd.Amount(), cmd.Currency(), cmd.Note(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = tripRepo.AddExpense(ctx, expense); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return expense, nil
}

func (h RecordExpenseCommandHandler) resolveDriver(
	ctx context.Context,
	uow TripUoW,
	aggregate *trip.Trip,
	driverUserID *kernel.UUID,
) (*kernel.UUID, error) {
	if driverUserID == nil {
		return nil, nil
	}

	carrierRepo := uow.CarrierRepository()

	hauler, err := carrierRepo.GetHaulerByUser(ctx, aggregate.CarrierID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	driver, err := carrierRepo.GetDriverByUser(ctx, hauler.ID, *driverUserID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &driver.ID, nil
}
