package commands_test

import (
	"math"
	"testing"
	"time"

	"livehaul/internal/core/application/usecases/commands"
	"livehaul/internal/core/domain/model/carrier"
	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRecordExpenseCommand_Validation(t *testing.T) {
	tripID := kernel.NewUUID()

	t.Run("NaN amount is malformed input", func(t *testing.T) {
		_, err := commands.NewRecordExpenseCommand(tripID, nil, "fuel", math.NaN(), "USD", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("infinite amount is malformed input", func(t *testing.T) {
		_, err := commands.NewRecordExpenseCommand(tripID, nil, "fuel", math.Inf(1), "USD", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("category is required", func(t *testing.T) {
		_, err := commands.NewRecordExpenseCommand(tripID, nil, "", 50, "USD", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRecordExpenseCommandHandler_Handle_ResolvesDriver(t *testing.T) {
	ctx := t.Context()
	carrierUserID := kernel.NewUUID()
	driverUserID := kernel.NewUUID()
	owned := newMatchedLoad(t, kernel.NewUUID(), carrierUserID, 1000)
	aggregate := newTripFor(t, owned, carrierUserID)

	hauler, err := carrier.NewHauler(kernel.NewUUID(), carrierUserID, "Overberg Hauliers", time.Now())
	require.NoError(t, err)
	driver, err := carrier.NewDriver(kernel.NewUUID(), hauler.ID, "P. Mokoena", "DL-881", time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewRecordExpenseCommand(aggregate.ID(), &driverUserID, "fuel", 820.50, "ZAR", "N1 fill-up")
	require.NoError(t, err)

	tripRepo := new(MockTripRepository)
	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("TripRepository").Return(tripRepo)
	uow.On("CarrierRepository").Return(carrierRepo)
	tripRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
	carrierRepo.On("GetHaulerByUser", mock.Anything, carrierUserID).Return(hauler, nil)
	carrierRepo.On("GetDriverByUser", mock.Anything, hauler.ID, driverUserID).Return(driver, nil)
	tripRepo.On("AddExpense", mock.Anything, mock.AnythingOfType("*trip.Expense")).Return(nil)

	factory := new(MockTripUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewRecordExpenseCommandHandler(factory)
	expense, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, expense.DriverID)
	assert.True(t, expense.DriverID.IsEqual(driver.ID))
	assert.Equal(t, 820.50, expense.Amount)
}

func TestRecordExpenseCommandHandler_Handle_UnresolvableDriverIsDropped(t *testing.T) {
	ctx := t.Context()
	carrierUserID := kernel.NewUUID()
	strangerID := kernel.NewUUID()
	owned := newMatchedLoad(t, kernel.NewUUID(), carrierUserID, 1000)
	aggregate := newTripFor(t, owned, carrierUserID)

	hauler, err := carrier.NewHauler(kernel.NewUUID(), carrierUserID, "Overberg Hauliers", time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewRecordExpenseCommand(aggregate.ID(), &strangerID, "tolls", 95, "ZAR", "")
	require.NoError(t, err)

	tripRepo := new(MockTripRepository)
	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("TripRepository").Return(tripRepo)
	uow.On("CarrierRepository").Return(carrierRepo)
	tripRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
	carrierRepo.On("GetHaulerByUser", mock.Anything, carrierUserID).Return(hauler, nil)
	carrierRepo.On("GetDriverByUser", mock.Anything, hauler.ID, strangerID).Return(nil, notFound("driver"))
	tripRepo.On("AddExpense", mock.Anything, mock.AnythingOfType("*trip.Expense")).Return(nil)

	factory := new(MockTripUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewRecordExpenseCommandHandler(factory)
	expense, err := h.Handle(ctx, cmd)

	// The receipt is kept; only the driver reference is dropped.
	require.NoError(t, err)
	assert.Nil(t, expense.DriverID)
}
