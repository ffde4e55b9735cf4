// Package carrier contains the carrier-side resources: the Hauler (the
// carrier business itself) and its Trucks and Drivers. A hauler may have
// nothing registered; the provisioner auto-creates placeholder records so a
// trip can always be formed.
package carrier

import (
	"fmt"
	"time"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/pkg/errs"
)

// Hauler is a carrier account on the marketplace, keyed by the owning user.
type Hauler struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	CompanyName string
	UpdatedAt   time.Time
}

// NewHauler creates a hauler record for a carrier user.
func NewHauler(id, userID kernel.UUID, companyName string, at time.Time) (*Hauler, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := userID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("user id", err)
	}
	if companyName == "" {
		return nil, errs.NewValueIsRequiredError("company name")
	}

	return &Hauler{ID: id, UserID: userID, CompanyName: companyName, UpdatedAt: at}, nil
}

// NewPlaceholderHauler creates the stand-in hauler the provisioner registers
// for a carrier user who has never set up a profile.
func NewPlaceholderHauler(userID kernel.UUID, at time.Time) (*Hauler, error) {
	id := kernel.NewUUID()
	name := fmt.Sprintf("Hauler %s", shortID(userID))
	return NewHauler(id, userID, name, at)
}

// Truck is one vehicle registered to a hauler.
type Truck struct {
	ID           kernel.UUID
	HaulerID     kernel.UUID
	Registration string
	CapacityHead int
	UpdatedAt    time.Time
}

// NewTruck creates a truck record.
func NewTruck(id, haulerID kernel.UUID, registration string, capacityHead int, at time.Time) (*Truck, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := haulerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("hauler id", err)
	}
	if registration == "" {
		return nil, errs.NewValueIsRequiredError("registration")
	}
	if capacityHead < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("capacity",
			fmt.Errorf("%d is negative", capacityHead))
	}

	return &Truck{
		ID:           id,
		HaulerID:     haulerID,
		Registration: registration,
		CapacityHead: capacityHead,
		UpdatedAt:    at,
	}, nil
}

// NewPlaceholderTruck creates the stand-in truck used when a hauler has no
// vehicles registered yet. Capacity 0 means "unknown".
func NewPlaceholderTruck(haulerID kernel.UUID, at time.Time) (*Truck, error) {
	id := kernel.NewUUID()
	registration := fmt.Sprintf("UNREGISTERED-%s", shortID(id))
	return NewTruck(id, haulerID, registration, 0, at)
}

// Driver is one driver registered to a hauler. UserID links the driver to a
// marketplace user account when they have one; placeholder drivers do not.
type Driver struct {
	ID        kernel.UUID
	HaulerID  kernel.UUID
	UserID    *kernel.UUID
	Name      string
	LicenceNo string
	UpdatedAt time.Time
}

// NewDriver creates a driver record.
func NewDriver(id, haulerID kernel.UUID, name, licenceNo string, at time.Time) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := haulerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("hauler id", err)
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Driver{ID: id, HaulerID: haulerID, Name: name, LicenceNo: licenceNo, UpdatedAt: at}, nil
}

// NewPlaceholderDriver creates the stand-in driver used when a hauler has no
// drivers registered yet.
func NewPlaceholderDriver(haulerID kernel.UUID, at time.Time) (*Driver, error) {
	id := kernel.NewUUID()
	name := fmt.Sprintf("Unassigned Driver %s", shortID(id))
	return NewDriver(id, haulerID, name, "", at)
}

func shortID(id kernel.UUID) string {
	return id.String()[:8]
}
