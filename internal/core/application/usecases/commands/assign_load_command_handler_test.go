package commands_test

import (
	"testing"
	"time"

	"livehaul/internal/core/application/usecases/commands"
	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/load"
	"livehaul/internal/core/domain/model/payment"
	"livehaul/internal/core/domain/model/trip"
	"livehaul/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func newPostedLoad(t *testing.T, shipperID kernel.UUID, offer float64) *load.Load {
	t.Helper()
	l, err := load.NewLoad(
		kernel.NewUUID(), shipperID,
		load.Cargo{Species: "cattle", HeadCount: 40, WeightKg: 18000},
		load.Route{Pickup: "Brandfort feedlot", Dropoff: "Bloemfontein abattoir", DistanceKm: floatPtr(900)},
		load.Terms{OfferAmount: offer, Currency: "USD", Mode: load.PaymentModeEscrow},
	)
	require.NoError(t, err)
	return l
}

func newMatchedLoad(t *testing.T, shipperID, carrierID kernel.UUID, offer float64) *load.Load {
	t.Helper()
	l := newPostedLoad(t, shipperID, offer)
	require.NoError(t, l.Assign(carrierID, time.Now()))
	return l
}

func newTripFor(t *testing.T, l *load.Load, carrierID kernel.UUID) *trip.Trip {
	t.Helper()
	tr, err := trip.NewTrip(
		kernel.NewUUID(), l.ID(), carrierID, kernel.NewUUID(), kernel.NewUUID(),
		l.Route().DistanceKm, nil,
	)
	require.NoError(t, err)
	return tr
}

func notFound(param string) error {
	return errs.NewObjectNotFoundError(param, kernel.NewUUID())
}

func TestAssignLoadCommandHandler_Handle_FreshAssignment(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	aggregate := newPostedLoad(t, shipperID, 1000)
	cmd, err := commands.NewAssignLoadCommand(aggregate.ID(), shipperID, kernel.RoleShipper, carrierID)
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	tripRepo := new(MockTripRepository)
	paymentRepo := new(MockPaymentRepository)
	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		loadRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("CarrierRepository").Return(carrierRepo).Once(),
		carrierRepo.On("GetHaulerByUser", mock.Anything, carrierID).Return(nil, notFound("hauler")).Once(),
		carrierRepo.On("AddHauler", mock.Anything, mock.Anything).Return(nil).Once(),
		carrierRepo.On("GetLatestTruck", mock.Anything, mock.Anything).Return(nil, notFound("truck")).Once(),
		carrierRepo.On("AddTruck", mock.Anything, mock.Anything).Return(nil).Once(),
		carrierRepo.On("GetLatestDriver", mock.Anything, mock.Anything).Return(nil, notFound("driver")).Once(),
		carrierRepo.On("AddDriver", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		tripRepo.On("GetByLoad", mock.Anything, aggregate.ID()).Return(nil, notFound("trip")).Once(),
		tripRepo.On("Add", mock.Anything, mock.AnythingOfType("*trip.Trip")).Return(nil).Once(),
		loadRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("Add", mock.Anything, mock.AnythingOfType("*payment.Payment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignLoadCommandHandler(factory, publisher, 10)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, load.Matched, result.Load.Status())
	assert.True(t, result.Load.IsAssignedTo(carrierID))
	require.NotNil(t, result.Trip)
	assert.Equal(t, trip.StatusPlanned, result.Trip.Status())
	assert.Len(t, result.Trip.RestStops(), 2)
	require.NotNil(t, result.Payment)
	assert.Equal(t, payment.StatusPendingFunding, result.Payment.Status())
	assert.Equal(t, 100.00, result.Payment.CommissionAmount())
	uow.AssertExpectations(t)
	loadRepo.AssertExpectations(t)
	tripRepo.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
	carrierRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestAssignLoadCommandHandler_Handle_ZeroOfferOpensNoPayment(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	aggregate := newPostedLoad(t, shipperID, 0)
	cmd, err := commands.NewAssignLoadCommand(aggregate.ID(), shipperID, kernel.RoleShipper, carrierID)
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	tripRepo := new(MockTripRepository)
	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("LoadRepository").Return(loadRepo)
	uow.On("TripRepository").Return(tripRepo)
	uow.On("CarrierRepository").Return(carrierRepo)
	loadRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil)
	loadRepo.On("Update", mock.Anything, aggregate).Return(nil)
	carrierRepo.On("GetHaulerByUser", mock.Anything, carrierID).Return(nil, notFound("hauler"))
	carrierRepo.On("AddHauler", mock.Anything, mock.Anything).Return(nil)
	carrierRepo.On("GetLatestTruck", mock.Anything, mock.Anything).Return(nil, notFound("truck"))
	carrierRepo.On("AddTruck", mock.Anything, mock.Anything).Return(nil)
	carrierRepo.On("GetLatestDriver", mock.Anything, mock.Anything).Return(nil, notFound("driver"))
	carrierRepo.On("AddDriver", mock.Anything, mock.Anything).Return(nil)
	tripRepo.On("GetByLoad", mock.Anything, aggregate.ID()).Return(nil, notFound("trip"))
	tripRepo.On("Add", mock.Anything, mock.Anything).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewAssignLoadCommandHandler(factory, publisher, 10)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Nil(t, result.Payment)
}

func TestAssignLoadCommandHandler_Handle_IdempotentReplay(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	aggregate := newMatchedLoad(t, shipperID, carrierID, 1000)
	existingTrip := newTripFor(t, aggregate, carrierID)
	cmd, err := commands.NewAssignLoadCommand(aggregate.ID(), shipperID, kernel.RoleShipper, carrierID)
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	tripRepo := new(MockTripRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("LoadRepository").Return(loadRepo)
	uow.On("TripRepository").Return(tripRepo)
	uow.On("PaymentRepository").Return(paymentRepo)
	loadRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil)
	tripRepo.On("GetByLoad", mock.Anything, aggregate.ID()).Return(existingTrip, nil)
	paymentRepo.On("GetByTrip", mock.Anything, existingTrip.ID()).Return(nil, notFound("payment"))

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewAssignLoadCommandHandler(factory, publisher, 10)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, existingTrip, result.Trip)
	// A replay opens no second payment and publishes no second event.
	paymentRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	loadRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAssignLoadCommandHandler_Handle_AlreadyWonByAnotherCarrier(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()
	winner := kernel.NewUUID()
	challenger := kernel.NewUUID()
	aggregate := newMatchedLoad(t, shipperID, winner, 1000)
	cmd, err := commands.NewAssignLoadCommand(aggregate.ID(), shipperID, kernel.RoleShipper, challenger)
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	tripRepo := new(MockTripRepository)
	carrierRepo := new(MockCarrierRepository)
	existingTrip := newTripFor(t, aggregate, winner)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("LoadRepository").Return(loadRepo)
	uow.On("CarrierRepository").Return(carrierRepo)
	uow.On("TripRepository").Return(tripRepo)
	loadRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil)
	carrierRepo.On("GetHaulerByUser", mock.Anything, challenger).Return(nil, notFound("hauler"))
	carrierRepo.On("AddHauler", mock.Anything, mock.Anything).Return(nil)
	carrierRepo.On("GetLatestTruck", mock.Anything, mock.Anything).Return(nil, notFound("truck"))
	carrierRepo.On("AddTruck", mock.Anything, mock.Anything).Return(nil)
	carrierRepo.On("GetLatestDriver", mock.Anything, mock.Anything).Return(nil, notFound("driver"))
	carrierRepo.On("AddDriver", mock.Anything, mock.Anything).Return(nil)
	tripRepo.On("GetByLoad", mock.Anything, aggregate.ID()).Return(existingTrip, nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewAssignLoadCommandHandler(factory, publisher, 10)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestAssignLoadCommandHandler_Handle_Authorization(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	aggregate := newPostedLoad(t, shipperID, 1000)
	publisher := new(MockEventPublisher)

	t.Run("carrier role cannot assign", func(t *testing.T) {
		cmd, err := commands.NewAssignLoadCommand(aggregate.ID(), carrierID, kernel.RoleCarrier, carrierID)
		require.NoError(t, err)

		h := commands.NewAssignLoadCommandHandler(new(MockUoWFactory), publisher, 10)
		_, err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("shipper cannot assign someone else's load", func(t *testing.T) {
		stranger := kernel.NewUUID()
		cmd, err := commands.NewAssignLoadCommand(aggregate.ID(), stranger, kernel.RoleShipper, carrierID)
		require.NoError(t, err)

		loadRepo := new(MockLoadRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)
		uow.On("LoadRepository").Return(loadRepo)
		loadRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil)

		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow)

		h := commands.NewAssignLoadCommandHandler(factory, publisher, 10)
		_, err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("missing actor id is unauthorized", func(t *testing.T) {
		_, err := commands.NewAssignLoadCommand(aggregate.ID(), kernel.UUID{}, kernel.RoleShipper, carrierID)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestAssignLoadCommandHandler_Handle_LoadNotFound(t *testing.T) {
	ctx := t.Context()
	loadID := kernel.NewUUID()
	cmd, err := commands.NewAssignLoadCommand(loadID, kernel.NewUUID(), kernel.RoleAdmin, kernel.NewUUID())
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("LoadRepository").Return(loadRepo)
	loadRepo.On("GetForUpdate", mock.Anything, loadID).Return(nil, notFound("load"))

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewAssignLoadCommandHandler(factory, new(MockEventPublisher), 10)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
