package commands

import (
	"context"
	"errors"
	"time"

	"livehaul/internal/core/domain/model/carrier"
	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/load"
	"livehaul/internal/core/domain/model/trip"
	"livehaul/internal/core/domain/services"
	"livehaul/internal/core/ports"
	"livehaul/internal/pkg/errs"
)

// carrierResources is the hauler/truck/driver trio a trip is provisioned with.
type carrierResources struct {
	hauler *carrier.Hauler
	truck  *carrier.Truck
	driver *carrier.Driver
}

// ensureCarrierResources resolves the carrier user's hauler, truck and driver,
// creating placeholder records for anything missing. A carrier who never set
// up a profile can still win a load; the marketplace fills the gaps.
func ensureCarrierResources(
	ctx context.Context,
	repo ports.CarrierRepository,
	carrierUserID kernel.UUID,
	now time.Time,
) (carrierResources, error) {
	hauler, err := repo.GetHaulerByUser(ctx, carrierUserID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		if hauler, err = carrier.NewPlaceholderHauler(carrierUserID, now); err != nil {
			return carrierResources{}, err
		}
		err = repo.AddHauler(ctx, hauler)
	}
	if err != nil {
		return carrierResources{}, err
	}

	truck, err := repo.GetLatestTruck(ctx, hauler.ID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		if truck, err = carrier.NewPlaceholderTruck(hauler.ID, now); err != nil {
			return carrierResources{}, err
		}
		err = repo.AddTruck(ctx, truck)
	}
	if err != nil {
		return carrierResources{}, err
	}

	driver, err := repo.GetLatestDriver(ctx, hauler.ID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		if driver, err = carrier.NewPlaceholderDriver(hauler.ID, now); err != nil {
			return carrierResources{}, err
		}
		err = repo.AddDriver(ctx, driver)
	}
	if err != nil {
		return carrierResources{}, err
	}

	return carrierResources{hauler: hauler, truck: truck, driver: driver}, nil
}

// provisionedTrip is the outcome of EnsureTrip: the trip plus whether this
// call created it. Only a fresh trip opens a payment and publishes an event.
type provisionedTrip struct {
	trip  *trip.Trip
	fresh bool
}

// ensureTrip returns the existing trip for the load unchanged, or inserts a
// planned trip carrying the rest-stop plan for the load's route.
func ensureTrip(
	ctx context.Context,
	repo ports.TripRepository,
	l *load.Load,
	resources carrierResources,
) (provisionedTrip, error) {
	existing, err := repo.GetByLoad(ctx, l.ID())
	if err == nil {
		return provisionedTrip{trip: existing}, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return provisionedTrip{}, err
	}

	stops := services.NewRestStopPlanner().Plan(l.Route().DistanceKm)
	fresh, err := trip.NewTrip(
		kernel.NewUUID(), l.ID(),
		resources.hauler.UserID, resources.truck.ID, resources.driver.ID,
		l.Route().DistanceKm, stops,
	)
	if err != nil {
		return provisionedTrip{}, err
	}

	if err = repo.Add(ctx, fresh); err != nil {
		return provisionedTrip{}, err
	}
	return provisionedTrip{trip: fresh, fresh: true}, nil
}
