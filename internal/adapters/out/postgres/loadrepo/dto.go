// Package loadrepo provides data transfer objects and mapping functions for
// load persistence. It implements the repository pattern for the load domain
// aggregate, handling the conversion between domain entities and database
// representations.
package loadrepo

import (
	"time"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/load"

	"github.com/google/uuid"
)

// LoadDTO represents the database structure for persisting load aggregates.
// Statuses are stored as their wire strings so the table is readable and the
// board query can filter on them directly.
type LoadDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipperID   uuid.UUID `gorm:"type:uuid;index"`
	Species     string
	HeadCount   int
	WeightKg    float64
	Pickup      string
	Dropoff     string
	DistanceKm  *float64
	OfferAmount float64
	Currency    string
	PaymentMode string
	Status      string     `gorm:"index"`
	CarrierID   *uuid.UUID `gorm:"type:uuid;index"`
	AssignedAt  *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for load entities.
func (LoadDTO) TableName() string {
	return "loads"
}

// fromDomain converts a load domain aggregate to its database representation.
func fromDomain(aggregate *load.Load) LoadDTO {
	var carrierID *uuid.UUID
	if id := aggregate.CarrierID(); id != nil {
		raw := id.Bytes()
		carrierID = &raw
	}

	cargo := aggregate.Cargo()
	route := aggregate.Route()
	terms := aggregate.Terms()

	return LoadDTO{
		ID:          aggregate.ID().Bytes(),
		ShipperID:   aggregate.ShipperID().Bytes(),
		Species:     cargo.Species,
		HeadCount:   cargo.HeadCount,
		WeightKg:    cargo.WeightKg,
		Pickup:      route.Pickup,
		Dropoff:     route.Dropoff,
		DistanceKm:  route.DistanceKm,
		OfferAmount: terms.OfferAmount,
		Currency:    terms.Currency,
		PaymentMode: string(terms.Mode),
		Status:      aggregate.Status().String(),
		CarrierID:   carrierID,
		AssignedAt:  aggregate.AssignedAt(),
		StartedAt:   aggregate.StartedAt(),
		CompletedAt: aggregate.CompletedAt(),
		IsDeleted:   aggregate.IsDeleted(),
	}
}

// toDomain converts a database DTO to a load domain aggregate using
// RestoreLoad, reconstructing assignment state and lifecycle timestamps.
func toDomain(dto LoadDTO) (*load.Load, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipperID, err := kernel.UUIDFromBytes(dto.ShipperID[:])
	if err != nil {
		return nil, err
	}

	var carrierID *kernel.UUID
	if dto.CarrierID != nil {
		cID, carrierErr := kernel.UUIDFromBytes((*dto.CarrierID)[:])
		if carrierErr != nil {
			return nil, carrierErr
		}

		carrierID = &cID
	}

	status, err := load.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return load.RestoreLoad(
		id, shipperID,
		load.Cargo{
			Species:   dto.Species,
			HeadCount: dto.HeadCount,
			WeightKg:  dto.WeightKg,
		},
		load.Route{
			Pickup:     dto.Pickup,
			Dropoff:    dto.Dropoff,
			DistanceKm: dto.DistanceKm,
		},
		load.Terms{
			OfferAmount: dto.OfferAmount,
			Currency:    dto.Currency,
			Mode:        load.PaymentMode(dto.PaymentMode),
		},
		status,
		carrierID,
		dto.AssignedAt, dto.StartedAt, dto.CompletedAt,
		dto.IsDeleted,
	)
}
