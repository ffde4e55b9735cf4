package ports

import (
	"context"

	"livehaul/internal/core/domain/model/carrier"
	"livehaul/internal/core/domain/model/kernel"
)

// CarrierRepository defines the persistence contract for carrier resources.
// Lookups that pick "the" hauler, truck or driver resolve ties by most
// recently updated record, matching how the provisioner chooses resources
// when a carrier has several registered.
type CarrierRepository interface {
	// AddHauler persists a new hauler record.
	AddHauler(ctx context.Context, hauler *carrier.Hauler) error

	// GetHaulerByUser retrieves the hauler owned by the given user, or an
	// ObjectNotFoundError when the user has none registered.
	GetHaulerByUser(ctx context.Context, userID kernel.UUID) (*carrier.Hauler, error)

	// AddTruck persists a new truck record.
	AddTruck(ctx context.Context, truck *carrier.Truck) error

	// GetLatestTruck retrieves the hauler's most recently updated truck, or an
	// ObjectNotFoundError when the hauler has no trucks.
	GetLatestTruck(ctx context.Context, haulerID kernel.UUID) (*carrier.Truck, error)

	// AddDriver persists a new driver record.
	AddDriver(ctx context.Context, driver *carrier.Driver) error

	// GetLatestDriver retrieves the hauler's most recently updated driver, or
	// an ObjectNotFoundError when the hauler has no drivers.
	GetLatestDriver(ctx context.Context, haulerID kernel.UUID) (*carrier.Driver, error)

	// GetDriverByUser retrieves the driver record belonging to the given user
	// within the hauler, or an ObjectNotFoundError when there is none.
	GetDriverByUser(ctx context.Context, haulerID, userID kernel.UUID) (*carrier.Driver, error)
}
