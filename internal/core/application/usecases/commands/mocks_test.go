package commands_test

import (
	"context"
	"time"

	"livehaul/internal/core/application/usecases/commands"
	"livehaul/internal/core/domain/model/carrier"
	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/load"
	"livehaul/internal/core/domain/model/payment"
	"livehaul/internal/core/domain/model/trip"
	"livehaul/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockLoadRepository struct{ mock.Mock }

func (m *MockLoadRepository) Add(ctx context.Context, aggregate *load.Load) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockLoadRepository) Update(ctx context.Context, aggregate *load.Load) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.Load), args.Error(1)
}

func (m *MockLoadRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.Load), args.Error(1)
}

func (m *MockLoadRepository) GetAllPosted(ctx context.Context) ([]*load.Load, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*load.Load), args.Error(1)
}

type MockTripRepository struct{ mock.Mock }

func (m *MockTripRepository) Add(ctx context.Context, aggregate *trip.Trip) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTripRepository) Update(ctx context.Context, aggregate *trip.Trip) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTripRepository) Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

func (m *MockTripRepository) GetByLoad(ctx context.Context, loadID kernel.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, loadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

func (m *MockTripRepository) AddPreTripCheck(ctx context.Context, check *trip.PreTripCheck) error {
	args := m.Called(ctx, check)
	return args.Error(0)
}

func (m *MockTripRepository) UpsertEpod(ctx context.Context, epod *trip.Epod) error {
	args := m.Called(ctx, epod)
	return args.Error(0)
}

func (m *MockTripRepository) GetEpod(ctx context.Context, tripID kernel.UUID) (*trip.Epod, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Epod), args.Error(1)
}

func (m *MockTripRepository) AddExpense(ctx context.Context, expense *trip.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByTrip(ctx context.Context, tripID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetAllPendingFundingBefore(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) AddDispute(ctx context.Context, dispute *payment.Dispute) error {
	args := m.Called(ctx, dispute)
	return args.Error(0)
}

func (m *MockPaymentRepository) UpdateDispute(ctx context.Context, dispute *payment.Dispute) error {
	args := m.Called(ctx, dispute)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetDispute(ctx context.Context, id kernel.UUID) (*payment.Dispute, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Dispute), args.Error(1)
}

func (m *MockPaymentRepository) GetLatestDispute(ctx context.Context, paymentID kernel.UUID) (*payment.Dispute, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Dispute), args.Error(1)
}

type MockCarrierRepository struct{ mock.Mock }

func (m *MockCarrierRepository) AddHauler(ctx context.Context, hauler *carrier.Hauler) error {
	args := m.Called(ctx, hauler)
	return args.Error(0)
}

func (m *MockCarrierRepository) GetHaulerByUser(ctx context.Context, userID kernel.UUID) (*carrier.Hauler, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.Hauler), args.Error(1)
}

func (m *MockCarrierRepository) AddTruck(ctx context.Context, truck *carrier.Truck) error {
	args := m.Called(ctx, truck)
	return args.Error(0)
}

func (m *MockCarrierRepository) GetLatestTruck(ctx context.Context, haulerID kernel.UUID) (*carrier.Truck, error) {
	args := m.Called(ctx, haulerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.Truck), args.Error(1)
}

func (m *MockCarrierRepository) AddDriver(ctx context.Context, driver *carrier.Driver) error {
	args := m.Called(ctx, driver)
	return args.Error(0)
}

func (m *MockCarrierRepository) GetLatestDriver(ctx context.Context, haulerID kernel.UUID) (*carrier.Driver, error) {
	args := m.Called(ctx, haulerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.Driver), args.Error(1)
}

func (m *MockCarrierRepository) GetDriverByUser(ctx context.Context, haulerID, userID kernel.UUID) (*carrier.Driver, error) {
	args := m.Called(ctx, haulerID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.Driver), args.Error(1)
}

// MockUoW serves every unit of work interface the handlers consume.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) LoadRepository() ports.LoadRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadRepository)
}

func (m *MockUoW) TripRepository() ports.TripRepository {
	args := m.Called()
	return args.Get(0).(ports.TripRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

func (m *MockUoW) CarrierRepository() ports.CarrierRepository {
	args := m.Called()
	return args.Get(0).(ports.CarrierRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockTripUoWFactory struct{ mock.Mock }

func (m *MockTripUoWFactory) Create() commands.TripUoW {
	args := m.Called()
	return args.Get(0).(commands.TripUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event ports.Envelope) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
