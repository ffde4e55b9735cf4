package commands_test

import (
	"context"
	"testing"
	"time"

	"livehaul/internal/core/application/usecases/commands"
	"livehaul/internal/core/domain/model/carrier"
	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/load"
	"livehaul/internal/core/domain/model/payment"
	"livehaul/internal/core/domain/model/trip"
	"livehaul/internal/core/ports"
	"livehaul/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is a naive in-memory backing store shared by the fake repositories.
// It exists to run full command flows without a database; transactionality is
// not simulated.
type memStore struct {
	loads    map[string]*load.Load
	trips    map[string]*trip.Trip
	payments map[string]*payment.Payment
	disputes map[string]*payment.Dispute
	haulers  map[string]*carrier.Hauler
	trucks   map[string]*carrier.Truck
	drivers  map[string]*carrier.Driver
	epods    map[string]*trip.Epod
	checks   map[string]*trip.PreTripCheck
	expenses []*trip.Expense
	events   []ports.Envelope
}

func newMemStore() *memStore {
	return &memStore{
		loads:    map[string]*load.Load{},
		trips:    map[string]*trip.Trip{},
		payments: map[string]*payment.Payment{},
		disputes: map[string]*payment.Dispute{},
		haulers:  map[string]*carrier.Hauler{},
		trucks:   map[string]*carrier.Truck{},
		drivers:  map[string]*carrier.Driver{},
		epods:    map[string]*trip.Epod{},
		checks:   map[string]*trip.PreTripCheck{},
	}
}

type memUoW struct{ s *memStore }

func (u memUoW) Begin(context.Context) error    { return nil }
func (u memUoW) Commit(context.Context) error   { return nil }
func (u memUoW) Rollback(context.Context) error { return nil }

func (u memUoW) LoadRepository() ports.LoadRepository       { return memLoadRepo{u.s} }
func (u memUoW) TripRepository() ports.TripRepository       { return memTripRepo{u.s} }
func (u memUoW) PaymentRepository() ports.PaymentRepository { return memPaymentRepo{u.s} }
func (u memUoW) CarrierRepository() ports.CarrierRepository { return memCarrierRepo{u.s} }

type memUoWFactory struct{ s *memStore }

func (f memUoWFactory) Create() commands.UoW { return memUoW{f.s} }

type memTripUoWFactory struct{ s *memStore }

func (f memTripUoWFactory) Create() commands.TripUoW { return memUoW{f.s} }

type memPaymentUoWFactory struct{ s *memStore }

func (f memPaymentUoWFactory) Create() commands.PaymentUoW { return memUoW{f.s} }

type memLoadRepo struct{ s *memStore }

func (r memLoadRepo) Add(_ context.Context, a *load.Load) error {
	r.s.loads[a.ID().String()] = a
	return nil
}

func (r memLoadRepo) Update(_ context.Context, a *load.Load) error {
	r.s.loads[a.ID().String()] = a
	return nil
}

func (r memLoadRepo) Get(_ context.Context, id kernel.UUID) (*load.Load, error) {
	if a, ok := r.s.loads[id.String()]; ok && !a.IsDeleted() {
		return a, nil
	}
	return nil, errs.NewObjectNotFoundError("load", id)
}

func (r memLoadRepo) GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	return r.Get(ctx, id)
}

func (r memLoadRepo) GetAllPosted(context.Context) ([]*load.Load, error) {
	var out []*load.Load
	for _, a := range r.s.loads {
		if a.Status() == load.Posted && !a.IsDeleted() {
			out = append(out, a)
		}
	}
	return out, nil
}

type memTripRepo struct{ s *memStore }

func (r memTripRepo) Add(_ context.Context, a *trip.Trip) error {
	r.s.trips[a.ID().String()] = a
	return nil
}

func (r memTripRepo) Update(_ context.Context, a *trip.Trip) error {
	r.s.trips[a.ID().String()] = a
	return nil
}

func (r memTripRepo) Get(_ context.Context, id kernel.UUID) (*trip.Trip, error) {
	if a, ok := r.s.trips[id.String()]; ok {
		return a, nil
	}
	return nil, errs.NewObjectNotFoundError("trip", id)
}

func (r memTripRepo) GetByLoad(_ context.Context, loadID kernel.UUID) (*trip.Trip, error) {
	for _, a := range r.s.trips {
		if a.LoadID().IsEqual(loadID) {
			return a, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("trip", loadID)
}

func (r memTripRepo) AddPreTripCheck(_ context.Context, c *trip.PreTripCheck) error {
	r.s.checks[c.TripID.String()] = c
	return nil
}

func (r memTripRepo) UpsertEpod(_ context.Context, e *trip.Epod) error {
	r.s.epods[e.TripID.String()] = e
	return nil
}

func (r memTripRepo) GetEpod(_ context.Context, tripID kernel.UUID) (*trip.Epod, error) {
	if e, ok := r.s.epods[tripID.String()]; ok {
		return e, nil
	}
	return nil, errs.NewObjectNotFoundError("epod", tripID)
}

func (r memTripRepo) AddExpense(_ context.Context, e *trip.Expense) error {
	r.s.expenses = append(r.s.expenses, e)
	return nil
}

type memPaymentRepo struct{ s *memStore }

func (r memPaymentRepo) Add(_ context.Context, a *payment.Payment) error {
	r.s.payments[a.ID().String()] = a
	return nil
}

func (r memPaymentRepo) Update(_ context.Context, a *payment.Payment) error {
	r.s.payments[a.ID().String()] = a
	return nil
}

func (r memPaymentRepo) Get(_ context.Context, id kernel.UUID) (*payment.Payment, error) {
	if a, ok := r.s.payments[id.String()]; ok {
		return a, nil
	}
	return nil, errs.NewObjectNotFoundError("payment", id)
}

func (r memPaymentRepo) GetByTrip(_ context.Context, tripID kernel.UUID) (*payment.Payment, error) {
	for _, a := range r.s.payments {
		if a.TripID().IsEqual(tripID) {
			return a, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("payment", tripID)
}

func (r memPaymentRepo) GetAllPendingFundingBefore(context.Context, time.Time) ([]*payment.Payment, error) {
	var out []*payment.Payment
	for _, a := range r.s.payments {
		if a.Status() == payment.StatusPendingFunding {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r memPaymentRepo) AddDispute(_ context.Context, d *payment.Dispute) error {
	r.s.disputes[d.ID.String()] = d
	return nil
}

func (r memPaymentRepo) UpdateDispute(_ context.Context, d *payment.Dispute) error {
	r.s.disputes[d.ID.String()] = d
	return nil
}

func (r memPaymentRepo) GetDispute(_ context.Context, id kernel.UUID) (*payment.Dispute, error) {
	if d, ok := r.s.disputes[id.String()]; ok {
		return d, nil
	}
	return nil, errs.NewObjectNotFoundError("dispute", id)
}

func (r memPaymentRepo) GetLatestDispute(_ context.Context, paymentID kernel.UUID) (*payment.Dispute, error) {
	var latest *payment.Dispute
	for _, d := range r.s.disputes {
		if !d.PaymentID.IsEqual(paymentID) {
			continue
		}
		if latest == nil || d.CreatedAt.After(latest.CreatedAt) {
			latest = d
		}
	}
	return latest, nil
}

type memCarrierRepo struct{ s *memStore }

func (r memCarrierRepo) AddHauler(_ context.Context, h *carrier.Hauler) error {
	r.s.haulers[h.ID.String()] = h
	return nil
}

func (r memCarrierRepo) GetHaulerByUser(_ context.Context, userID kernel.UUID) (*carrier.Hauler, error) {
	for _, h := range r.s.haulers {
		if h.UserID.IsEqual(userID) {
			return h, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("hauler", userID)
}

func (r memCarrierRepo) AddTruck(_ context.Context, tr *carrier.Truck) error {
	r.s.trucks[tr.ID.String()] = tr
	return nil
}

func (r memCarrierRepo) GetLatestTruck(_ context.Context, haulerID kernel.UUID) (*carrier.Truck, error) {
	var latest *carrier.Truck
	for _, tr := range r.s.trucks {
		if !tr.HaulerID.IsEqual(haulerID) {
			continue
		}
		if latest == nil || tr.UpdatedAt.After(latest.UpdatedAt) {
			latest = tr
		}
	}
	if latest == nil {
		return nil, errs.NewObjectNotFoundError("truck", haulerID)
	}
	return latest, nil
}

func (r memCarrierRepo) AddDriver(_ context.Context, d *carrier.Driver) error {
	r.s.drivers[d.ID.String()] = d
	return nil
}

func (r memCarrierRepo) GetLatestDriver(_ context.Context, haulerID kernel.UUID) (*carrier.Driver, error) {
	var latest *carrier.Driver
	for _, d := range r.s.drivers {
		if !d.HaulerID.IsEqual(haulerID) {
			continue
		}
		if latest == nil || d.UpdatedAt.After(latest.UpdatedAt) {
			latest = d
		}
	}
	if latest == nil {
		return nil, errs.NewObjectNotFoundError("driver", haulerID)
	}
	return latest, nil
}

func (r memCarrierRepo) GetDriverByUser(_ context.Context, haulerID, userID kernel.UUID) (*carrier.Driver, error) {
	return nil, errs.NewObjectNotFoundError("driver", userID)
}

type memPublisher struct{ s *memStore }

func (p memPublisher) Publish(_ context.Context, e ports.Envelope) error {
	p.s.events = append(p.s.events, e)
	return nil
}

// TestMarketplaceScenario walks a load through the happy path: assignment
// opens escrow at a 10% commission, the shipper funds it, and proof of
// delivery completes the trip and releases 900.00 of the 1000.00 offer.
func TestMarketplaceScenario(t *testing.T) {
	ctx := t.Context()
	store := newMemStore()
	publisher := memPublisher{store}

	shipperID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	aggregate := newPostedLoad(t, shipperID, 1000)
	store.loads[aggregate.ID().String()] = aggregate

	assignHandler := commands.NewAssignLoadCommandHandler(memUoWFactory{store}, publisher, 10)
	fundHandler := commands.NewFundPaymentCommandHandler(memPaymentUoWFactory{store})
	epodHandler := commands.NewCaptureEpodCommandHandler(memTripUoWFactory{store}, publisher)

	assignCmd, err := commands.NewAssignLoadCommand(aggregate.ID(), shipperID, kernel.RoleShipper, carrierID)
	require.NoError(t, err)
	result, err := assignHandler.Handle(ctx, assignCmd)
	require.NoError(t, err)
	require.NotNil(t, result.Payment)
	assert.Len(t, result.Trip.RestStops(), 2)
	assert.Len(t, store.events, 1)
	assert.Equal(t, ports.EventLoadMatched, store.events[0].Kind)

	// Replaying the assignment changes nothing and stays silent.
	replay, err := assignHandler.Handle(ctx, assignCmd)
	require.NoError(t, err)
	assert.True(t, replay.Trip.ID().IsEqual(result.Trip.ID()))
	assert.Len(t, store.payments, 1)
	assert.Len(t, store.events, 1)

	fundCmd, err := commands.NewFundPaymentCommand(result.Payment.ID(), shipperID, kernel.RoleShipper)
	require.NoError(t, err)
	funded, err := fundHandler.Handle(ctx, fundCmd)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusFunded, funded.Status())

	epodCmd, err := commands.NewCaptureEpodCommand(
		result.Trip.ID(), carrierID, time.Now(), "S. Ndlovu", "uploads/pod.jpg", "")
	require.NoError(t, err)
	_, err = epodHandler.Handle(ctx, epodCmd)
	require.NoError(t, err)

	settled := store.payments[result.Payment.ID().String()]
	assert.Equal(t, payment.StatusReleased, settled.Status())
	assert.Equal(t, 100.00, settled.CommissionAmount())
	assert.Equal(t, 900.00, settled.PayoutAmount())
	assert.Equal(t, settled.Amount(), settled.PayoutAmount()+settled.CommissionAmount())

	assert.Equal(t, load.Completed, store.loads[aggregate.ID().String()].Status())
	assert.Equal(t, trip.StatusCompleted, store.trips[result.Trip.ID().String()].Status())
	assert.Len(t, store.events, 2)
	assert.Equal(t, ports.EventTripCompleted, store.events[1].Kind)
}
