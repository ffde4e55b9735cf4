package commands_test

import (
	"testing"

	"livehaul/internal/core/application/usecases/commands"
	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/trip"
	"livehaul/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func capturePreTripCheck(
	t *testing.T,
	aggregate *trip.Trip,
	cmd commands.CapturePreTripCheckCommand,
) (*trip.PreTripCheck, *trip.PreTripCheck) {
	t.Helper()
	ctx := t.Context()

	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	var stored *trip.PreTripCheck
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("TripRepository").Return(tripRepo)
	tripRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
	tripRepo.On("AddPreTripCheck", mock.Anything, mock.AnythingOfType("*trip.PreTripCheck")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*trip.PreTripCheck)
		}).
		Return(nil)

	factory := new(MockTripUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewCapturePreTripCheckCommandHandler(factory)
	check, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	return check, stored
}

func TestCapturePreTripCheckCommandHandler_Handle_DerivesTripResources(t *testing.T) {
	carrierID := kernel.NewUUID()
	owned := newMatchedLoad(t, kernel.NewUUID(), carrierID, 1000)
	aggregate := newTripFor(t, owned, carrierID)

	cmd, err := commands.NewCapturePreTripCheckCommand(
		aggregate.ID(), nil, nil, true, true, "ramps and partitions secure")
	require.NoError(t, err)

	check, stored := capturePreTripCheck(t, aggregate, cmd)

	assert.True(t, check.DriverID.IsEqual(aggregate.DriverID()))
	assert.True(t, check.TruckID.IsEqual(aggregate.TruckID()))
	assert.True(t, check.Roadworthy)
	assert.True(t, check.AnimalsFitToLoad)
	assert.Same(t, check, stored)
}

func TestCapturePreTripCheckCommandHandler_Handle_ExplicitResourcesWin(t *testing.T) {
	carrierID := kernel.NewUUID()
	owned := newMatchedLoad(t, kernel.NewUUID(), carrierID, 1000)
	aggregate := newTripFor(t, owned, carrierID)

	// The carrier attests a different driver and truck than the ones the
	// trip was provisioned with.
	actualDriver := kernel.NewUUID()
	actualTruck := kernel.NewUUID()

	cmd, err := commands.NewCapturePreTripCheckCommand(
		aggregate.ID(), &actualDriver, &actualTruck, true, false, "one ewe refusing to load")
	require.NoError(t, err)

	check, _ := capturePreTripCheck(t, aggregate, cmd)

	assert.True(t, check.DriverID.IsEqual(actualDriver))
	assert.True(t, check.TruckID.IsEqual(actualTruck))
	assert.False(t, check.DriverID.IsEqual(aggregate.DriverID()))
	assert.False(t, check.AnimalsFitToLoad)
}

func TestNewCapturePreTripCheckCommand_Validation(t *testing.T) {
	t.Run("missing trip id", func(t *testing.T) {
		_, err := commands.NewCapturePreTripCheckCommand(
			kernel.UUID{}, nil, nil, true, true, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero driver override is invalid", func(t *testing.T) {
		zero := kernel.UUID{}
		_, err := commands.NewCapturePreTripCheckCommand(
			kernel.NewUUID(), &zero, nil, true, true, "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
