// Package carrierrepo provides data transfer objects and mapping functions
// for carrier resources: haulers, trucks and drivers. These are flat records
// rather than a rich aggregate; the provisioner reads and seeds them when a
// carrier wins a load.
package carrierrepo

import (
	"time"

	"livehaul/internal/core/domain/model/carrier"
	"livehaul/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// HaulerDTO represents the database structure for hauler records. Each user
// owns at most one hauler.
type HaulerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CompanyName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for hauler records.
func (HaulerDTO) TableName() string {
	return "haulers"
}

// TruckDTO represents the database structure for truck records.
type TruckDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	HaulerID     uuid.UUID `gorm:"type:uuid;index"`
	Registration string
	CapacityHead int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for truck records.
func (TruckDTO) TableName() string {
	return "trucks"
}

// DriverDTO represents the database structure for driver records. UserID is
// null for placeholder drivers that have no account behind them.
type DriverDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	HaulerID  uuid.UUID  `gorm:"type:uuid;index"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	LicenceNo string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for driver records.
func (DriverDTO) TableName() string {
	return "drivers"
}

func haulerFromDomain(hauler *carrier.Hauler) HaulerDTO {
	return HaulerDTO{
		ID:          hauler.ID.Bytes(),
		UserID:      hauler.UserID.Bytes(),
		CompanyName: hauler.CompanyName,
		UpdatedAt:   hauler.UpdatedAt,
	}
}

func haulerToDomain(dto HaulerDTO) (*carrier.Hauler, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return &carrier.Hauler{
		ID:          id,
		UserID:      userID,
		CompanyName: dto.CompanyName,
		UpdatedAt:   dto.UpdatedAt,
	}, nil
}

func truckFromDomain(truck *carrier.Truck) TruckDTO {
	return TruckDTO{
		ID:           truck.ID.Bytes(),
		HaulerID:     truck.HaulerID.Bytes(),
		Registration: truck.Registration,
		CapacityHead: truck.CapacityHead,
		UpdatedAt:    truck.UpdatedAt,
	}
}

func truckToDomain(dto TruckDTO) (*carrier.Truck, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	haulerID, err := kernel.UUIDFromBytes(dto.HaulerID[:])
	if err != nil {
		return nil, err
	}

	return &carrier.Truck{
		ID:           id,
		HaulerID:     haulerID,
		Registration: dto.Registration,
		CapacityHead: dto.CapacityHead,
		UpdatedAt:    dto.UpdatedAt,
	}, nil
}

func driverFromDomain(driver *carrier.Driver) DriverDTO {
	var userID *uuid.UUID
	if id := driver.UserID; id != nil {
		raw := id.Bytes()
		userID = &raw
	}

	return DriverDTO{
		ID:        driver.ID.Bytes(),
		HaulerID:  driver.HaulerID.Bytes(),
		UserID:    userID,
		Name:      driver.Name,
		LicenceNo: driver.LicenceNo,
		UpdatedAt: driver.UpdatedAt,
	}
}

func driverToDomain(dto DriverDTO) (*carrier.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	haulerID, err := kernel.UUIDFromBytes(dto.HaulerID[:])
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		uID, userErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if userErr != nil {
			return nil, userErr
		}

		userID = &uID
	}

	return &carrier.Driver{
		ID:        id,
		HaulerID:  haulerID,
		UserID:    userID,
		Name:      dto.Name,
		LicenceNo: dto.LicenceNo,
		UpdatedAt: dto.UpdatedAt,
	}, nil
}
