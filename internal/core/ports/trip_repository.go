package ports

import (
	"context"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/trip"
)

// TripRepository defines the persistence contract for trip aggregates and the
// operational records captured against them.
type TripRepository interface {
	// Add persists a new trip aggregate, including its rest stop plan.
	Add(ctx context.Context, aggregate *trip.Trip) error

	// Update persists changes to an existing trip aggregate.
	Update(ctx context.Context, aggregate *trip.Trip) error

	// Get retrieves a trip aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error)

	// GetByLoad retrieves the trip keyed to the given load, or an
	// ObjectNotFoundError when the load has never been provisioned.
	GetByLoad(ctx context.Context, loadID kernel.UUID) (*trip.Trip, error)

	// AddPreTripCheck records a pre-departure inspection for a trip.
	AddPreTripCheck(ctx context.Context, check *trip.PreTripCheck) error

	// UpsertEpod stores the proof of delivery for a trip. A trip carries at
	// most one ePOD; a repeated capture overwrites the previous one.
	UpsertEpod(ctx context.Context, epod *trip.Epod) error

	// GetEpod retrieves the proof of delivery for a trip, or an
	// ObjectNotFoundError when none was captured.
	GetEpod(ctx context.Context, tripID kernel.UUID) (*trip.Epod, error)

	// AddExpense records an en-route expense against a trip.
	AddExpense(ctx context.Context, expense *trip.Expense) error
}
