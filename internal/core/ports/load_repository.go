// Package ports defines repository and messaging interfaces for the freight
// marketplace domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/load"
)

// LoadRepository defines the persistence contract for load aggregates.
type LoadRepository interface {
	// Add persists a new load aggregate to storage.
	Add(ctx context.Context, aggregate *load.Load) error

	// Update persists changes to an existing load aggregate.
	Update(ctx context.Context, aggregate *load.Load) error

	// Get retrieves a load aggregate by its unique identifier.
	// Soft-deleted loads are not returned.
	Get(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// GetForUpdate retrieves a load and row-locks it for the duration of the
	// surrounding transaction. Concurrent assignment attempts against the same
	// load serialize on this lock, so exactly one of them sees the load still
	// open for matching.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// GetAllPosted retrieves all open loads still waiting for a carrier,
	// newest first.
	GetAllPosted(ctx context.Context) ([]*load.Load, error)
}
