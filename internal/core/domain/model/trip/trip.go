// Package trip contains the Trip aggregate: the operational record of a
// carrier fulfilling a load, together with its rest-stop plan and the
// sub-records captured during the trip (pre-trip check, ePOD, expenses).
package trip

import (
	"errors"
	"fmt"
	"time"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/pkg/errs"
	"livehaul/internal/pkg/guard"
)

// ErrTripIsNotConstructed is returned when a Trip was not created through
// NewTrip or RestoreTrip.
var ErrTripIsNotConstructed = errors.New("Trip must be created via NewTrip or RestoreTrip")

// RestStop is one mandatory welfare stop on the route. Stops are ordered by
// Seq and positioned at fixed offsets from the pickup point.
type RestStop struct {
	Seq      int
	OffsetKm float64
	Note     string
}

// Trip is the aggregate root for the operational side of a won load.
// Exactly one active trip exists per load; the provisioner enforces this.
type Trip struct {
	id        kernel.UUID
	loadID    kernel.UUID
	carrierID kernel.UUID
	truckID   kernel.UUID
	driverID  kernel.UUID

	status       Status
	plannedStart *time.Time
	plannedEnd   *time.Time
	distanceKm   *float64
	restStops    []RestStop

	guard guard.ConstructorGuard
}

// NewTrip creates a planned trip for a load won by a carrier.
// The rest-stop plan is computed by the caller (the provisioner) and may be
// empty when the load's distance is unknown.
func NewTrip(
	id, loadID, carrierID, truckID, driverID kernel.UUID,
	distanceKm *float64,
	restStops []RestStop,
) (*Trip, error) {
	t := &Trip{
		status: StatusPlanned,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setLoadID(loadID),
		t.setCarrierID(carrierID),
		t.setTruckID(truckID),
		t.setDriverID(driverID),
	); err != nil {
		return nil, err
	}

	t.distanceKm = distanceKm
	t.restStops = restStops
	return t, nil
}

// RestoreTrip reconstructs a trip from persistence.
func RestoreTrip(
	id, loadID, carrierID, truckID, driverID kernel.UUID,
	status Status,
	plannedStart, plannedEnd *time.Time,
	distanceKm *float64,
	restStops []RestStop,
) (*Trip, error) {
	t, err := NewTrip(id, loadID, carrierID, truckID, driverID, distanceKm, restStops)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	t.status = status
	t.plannedStart = plannedStart
	t.plannedEnd = plannedEnd
	return t, nil
}

// Validate ensures the trip was built through a constructor.
func (t *Trip) Validate() error {
	if t == nil {
		return ErrTripIsNotConstructed
	}
	return t.guard.Validate(ErrTripIsNotConstructed)
}

// ID returns the trip's unique identifier.
func (t *Trip) ID() kernel.UUID { return t.id }

// LoadID returns the load this trip fulfills.
func (t *Trip) LoadID() kernel.UUID { return t.loadID }

// CarrierID returns the hauler fulfilling the trip.
func (t *Trip) CarrierID() kernel.UUID { return t.carrierID }

// TruckID returns the assigned truck.
func (t *Trip) TruckID() kernel.UUID { return t.truckID }

// DriverID returns the assigned driver.
func (t *Trip) DriverID() kernel.UUID { return t.driverID }

// Status returns the current lifecycle status.
func (t *Trip) Status() Status { return t.status }

// PlannedStart returns the planned departure time, or nil.
func (t *Trip) PlannedStart() *time.Time { return t.plannedStart }

// PlannedEnd returns the planned arrival time, or nil.
func (t *Trip) PlannedEnd() *time.Time { return t.plannedEnd }

// DistanceKm returns the planned route distance, or nil when unknown.
func (t *Trip) DistanceKm() *float64 { return t.distanceKm }

// RestStops returns the ordered welfare stop plan.
func (t *Trip) RestStops() []RestStop { return t.restStops }

// SchedulePlanned sets the planned start/end window.
func (t *Trip) SchedulePlanned(start, end *time.Time) {
	t.plannedStart = start
	t.plannedEnd = end
}

// TransitionTo moves the trip to the target status, enforcing the state
// machine. An unreachable target yields a Conflict; an undefined one should
// have been rejected earlier by ParseTarget.
func (t *Trip) TransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if t.status == target {
		return nil
	}
	if !t.status.CanTransitionTo(target) {
		return errs.NewConflictError("trip",
			fmt.Sprintf("cannot transition from %q to %q", t.status, target))
	}

	t.status = target
	return nil
}

// ForceComplete marks the trip completed regardless of its current forward
// position. Delivery proof wins over bookkeeping: an ePOD on a planned trip
// still completes it. Only a cancelled trip refuses.
func (t *Trip) ForceComplete() error {
	if t.status == StatusCancelled {
		return errs.NewConflictError("trip", "cannot complete a cancelled trip")
	}

	t.status = StatusCompleted
	return nil
}

func (t *Trip) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Trip) setLoadID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("load id", err)
	}
	t.loadID = id
	return nil
}

func (t *Trip) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("carrier id", err)
	}
	t.carrierID = id
	return nil
}

func (t *Trip) setTruckID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("truck id", err)
	}
	t.truckID = id
	return nil
}

func (t *Trip) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driver id", err)
	}
	t.driverID = id
	return nil
}
