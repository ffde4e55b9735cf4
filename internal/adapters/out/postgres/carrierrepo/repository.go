package carrierrepo

import (
	"context"
	"errors"

	"livehaul/internal/core/domain/model/carrier"
	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCarrierRepository implements CarrierRepository using GORM.
type GormCarrierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCarrierRepository creates a new GORM carrier repository.
func NewGormCarrierRepository(db *gorm.DB, tracker aggregateTracker) *GormCarrierRepository {
	return &GormCarrierRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddHauler persists a new hauler record.
func (r *GormCarrierRepository) AddHauler(ctx context.Context, hauler *carrier.Hauler) error {
	dto := haulerFromDomain(hauler)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(hauler.ID, hauler)
	return nil
}

// GetHaulerByUser retrieves the hauler owned by the given user.
func (r *GormCarrierRepository) GetHaulerByUser(ctx context.Context, userID kernel.UUID) (*carrier.Hauler, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto HaulerDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("hauler for user", userID.String())
		}
		return nil, err
	}

	return haulerToDomain(dto)
}

// AddTruck persists a new truck record.
func (r *GormCarrierRepository) AddTruck(ctx context.Context, truck *carrier.Truck) error {
	dto := truckFromDomain(truck)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(truck.ID, truck)
	return nil
}

// GetLatestTruck retrieves the hauler's most recently updated truck.
func (r *GormCarrierRepository) GetLatestTruck(ctx context.Context, haulerID kernel.UUID) (*carrier.Truck, error) {
	if err := haulerID.Validate(); err != nil {
		return nil, err
	}

	var dto TruckDTO
	err := r.db.WithContext(ctx).
		Where("hauler_id = ?", haulerID.Bytes()).
		Order("updated_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("truck for hauler", haulerID.String())
		}
		return nil, err
	}

	return truckToDomain(dto)
}

// AddDriver persists a new driver record.
func (r *GormCarrierRepository) AddDriver(ctx context.Context, driver *carrier.Driver) error {
	dto := driverFromDomain(driver)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(driver.ID, driver)
	return nil
}

// GetLatestDriver retrieves the hauler's most recently updated driver.
func (r *GormCarrierRepository) GetLatestDriver(ctx context.Context, haulerID kernel.UUID) (*carrier.Driver, error) {
	if err := haulerID.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	err := r.db.WithContext(ctx).
		Where("hauler_id = ?", haulerID.Bytes()).
		Order("updated_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver for hauler", haulerID.String())
		}
		return nil, err
	}

	return driverToDomain(dto)
}

// GetDriverByUser retrieves the driver record belonging to the given user
// within the hauler.
func (r *GormCarrierRepository) GetDriverByUser(ctx context.Context, haulerID, userID kernel.UUID) (*carrier.Driver, error) {
	if err := haulerID.Validate(); err != nil {
		return nil, err
	}
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	err := r.db.WithContext(ctx).
		First(&dto, "hauler_id = ? AND user_id = ?", haulerID.Bytes(), userID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver for user", userID.String())
		}
		return nil, err
	}

	return driverToDomain(dto)
}
