// Package load contains the Load aggregate: a posted freight request that
// carriers compete to win. The aggregate owns the status lifecycle and the
// assignment invariant (at most one carrier can ever hold a load).
package load

import (
	"errors"
	"fmt"
	"time"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/pkg/errs"
	"livehaul/internal/pkg/guard"
)

// ErrLoadIsNotConstructed is returned when a Load was not created through
// NewLoad or RestoreLoad.
var ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad or RestoreLoad")

// PaymentMode selects how the shipper pays the carrier.
type PaymentMode string

const (
	// PaymentModeEscrow routes funds through the platform's escrow ledger.
	PaymentModeEscrow PaymentMode = "ESCROW"
	// PaymentModeDirect settles outside the platform; no Payment is opened.
	PaymentModeDirect PaymentMode = "DIRECT"
)

// Validate checks the payment mode against the known values.
func (m PaymentMode) Validate() error {
	if m != PaymentModeEscrow && m != PaymentModeDirect {
		return errs.NewValueIsInvalidErrorWithCause("payment mode",
			fmt.Errorf("%q is not a valid payment mode", string(m)))
	}
	return nil
}

// Cargo describes the livestock being moved.
type Cargo struct {
	Species   string
	HeadCount int
	WeightKg  float64
}

// Route describes the pickup and dropoff endpoints. DistanceKm is nil when
// the shipper did not provide a planned distance; an unknown distance is a
// documented, legal state (it yields an empty rest-stop plan, not an error).
type Route struct {
	Pickup     string
	Dropoff    string
	DistanceKm *float64
}

// Terms carries the shipper's price offer.
type Terms struct {
	OfferAmount float64
	Currency    string
	Mode        PaymentMode
}

// Load is the aggregate root for a freight request.
type Load struct {
	id        kernel.UUID
	shipperID kernel.UUID
	cargo     Cargo
	route     Route
	terms     Terms

	status      Status
	carrierID   *kernel.UUID
	assignedAt  *time.Time
	startedAt   *time.Time
	completedAt *time.Time
	deleted     bool

	guard guard.ConstructorGuard
}

// NewLoad creates a freshly posted load. All invariants are validated here;
// this and RestoreLoad are the only ways to obtain a valid Load.
func NewLoad(id, shipperID kernel.UUID, cargo Cargo, route Route, terms Terms) (*Load, error) {
	l := &Load{
		status: Posted,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setShipperID(shipperID),
		l.setCargo(cargo),
		l.setRoute(route),
		l.setTerms(terms),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLoad reconstructs a load from persistence, including its assignment
// state and lifecycle timestamps.
func RestoreLoad(
	id, shipperID kernel.UUID,
	cargo Cargo,
	route Route,
	terms Terms,
	status Status,
	carrierID *kernel.UUID,
	assignedAt, startedAt, completedAt *time.Time,
	deleted bool,
) (*Load, error) {
	l, err := NewLoad(id, shipperID, cargo, route, terms)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if carrierID != nil {
		if err = carrierID.Validate(); err != nil {
			return nil, err
		}
	}

	l.status = status
	l.carrierID = carrierID
	l.assignedAt = assignedAt
	l.startedAt = startedAt
	l.completedAt = completedAt
	l.deleted = deleted
	return l, nil
}

// Validate ensures the load was built through a constructor.
func (l *Load) Validate() error {
	if l == nil {
		return ErrLoadIsNotConstructed
	}
	return l.guard.Validate(ErrLoadIsNotConstructed)
}

// ID returns the load's unique identifier.
func (l *Load) ID() kernel.UUID { return l.id }

// ShipperID returns the owning shipper's identifier.
func (l *Load) ShipperID() kernel.UUID { return l.shipperID }

// Cargo returns the livestock description.
func (l *Load) Cargo() Cargo { return l.cargo }

// Route returns the pickup/dropoff descriptors and optional distance.
func (l *Load) Route() Route { return l.route }

// Terms returns the shipper's price offer.
func (l *Load) Terms() Terms { return l.terms }

// Status returns the current lifecycle status.
func (l *Load) Status() Status { return l.status }

// CarrierID returns the winning carrier's user id, or nil while unassigned.
func (l *Load) CarrierID() *kernel.UUID { return l.carrierID }

// AssignedAt returns when the load was matched, or nil.
func (l *Load) AssignedAt() *time.Time { return l.assignedAt }

// StartedAt returns when transit began, or nil.
func (l *Load) StartedAt() *time.Time { return l.startedAt }

// CompletedAt returns when delivery was proven, or nil.
func (l *Load) CompletedAt() *time.Time { return l.completedAt }

// IsDeleted reports the soft-delete flag.
func (l *Load) IsDeleted() bool { return l.deleted }

// IsOwnedBy reports whether the given actor is the load's shipper.
func (l *Load) IsOwnedBy(actorID kernel.UUID) bool {
	return l.shipperID.IsEqual(actorID)
}

// IsAssignedTo reports whether the load is already held by the given carrier.
func (l *Load) IsAssignedTo(carrierID kernel.UUID) bool {
	return l.carrierID != nil && l.carrierID.IsEqual(carrierID)
}

// HasPositiveOffer reports whether a payment should be opened on assignment.
func (l *Load) HasPositiveOffer() bool {
	return l.terms.OfferAmount > 0
}

// Assign records the winning carrier and moves the load to matched.
// Only a posted load can be assigned; anything else is a conflict. Callers
// that want idempotent re-assignment must check IsAssignedTo first.
func (l *Load) Assign(carrierID kernel.UUID, at time.Time) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}
	if l.status != Posted {
		return errs.NewConflictError("load",
			fmt.Sprintf("cannot assign a load in status %q", l.status))
	}

	l.status = Matched
	l.carrierID = &carrierID
	l.assignedAt = &at
	return nil
}

// MarkInTransit moves a matched load to in_transit when its trip departs.
func (l *Load) MarkInTransit(at time.Time) error {
	if l.status != Matched {
		return errs.NewConflictError("load",
			fmt.Sprintf("cannot start transit for a load in status %q", l.status))
	}

	l.status = InTransit
	l.startedAt = &at
	return nil
}

// MarkCompleted finalizes the load once delivery is proven. Delivery proof may
// arrive before anyone recorded departure, so matched is accepted as well as
// in_transit. Completing an already-completed load is a no-op.
func (l *Load) MarkCompleted(at time.Time) error {
	if l.status == Completed {
		return nil
	}
	if l.status != Matched && l.status != InTransit {
		return errs.NewConflictError("load",
			fmt.Sprintf("cannot complete a load in status %q", l.status))
	}

	l.status = Completed
	l.completedAt = &at
	return nil
}

// SoftDelete retires the load from the marketplace without removing the row.
func (l *Load) SoftDelete() {
	l.deleted = true
}

func (l *Load) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Load) setShipperID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipper id", err)
	}
	l.shipperID = id
	return nil
}

func (l *Load) setCargo(cargo Cargo) error {
	if cargo.Species == "" {
		return errs.NewValueIsRequiredError("species")
	}
	if cargo.HeadCount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("head count",
			fmt.Errorf("%d is not greater than 0", cargo.HeadCount))
	}
	if cargo.WeightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is not greater than 0", cargo.WeightKg))
	}
	l.cargo = cargo
	return nil
}

func (l *Load) setRoute(route Route) error {
	if route.Pickup == "" {
		return errs.NewValueIsRequiredError("pickup")
	}
	if route.Dropoff == "" {
		return errs.NewValueIsRequiredError("dropoff")
	}
	l.route = route
	return nil
}

func (l *Load) setTerms(terms Terms) error {
	if terms.OfferAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("offer amount",
			fmt.Errorf("%v is negative", terms.OfferAmount))
	}
	if terms.OfferAmount > 0 && terms.Currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	if err := terms.Mode.Validate(); err != nil {
		return err
	}
	l.terms = terms
	return nil
}
