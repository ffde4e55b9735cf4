package triprepo

import (
	"context"
	"errors"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/trip"
	"livehaul/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTripRepository implements TripRepository using GORM.
type GormTripRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTripRepository creates a new GORM trip repository.
func NewGormTripRepository(db *gorm.DB, tracker aggregateTracker) *GormTripRepository {
	return &GormTripRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new trip together with its rest-stop plan.
func (r *GormTripRepository) Add(ctx context.Context, aggregate *trip.Trip) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing trip. The rest-stop plan is immutable after
// provisioning and is never rewritten here.
func (r *GormTripRepository) Update(ctx context.Context, aggregate *trip.Trip) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.RestStops = nil

	result := r.db.WithContext(ctx).Model(&TripDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a trip by ID, including its rest-stop plan.
func (r *GormTripRepository) Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TripDTO
	err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trip", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByLoad retrieves the trip keyed to the given load.
func (r *GormTripRepository) GetByLoad(ctx context.Context, loadID kernel.UUID) (*trip.Trip, error) {
	if err := loadID.Validate(); err != nil {
		return nil, err
	}

	var dto TripDTO
	err := r.preloaded(ctx).First(&dto, "load_id = ?", loadID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trip for load", loadID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddPreTripCheck stores the pre-departure checklist snapshot. A repeated
// capture replaces the previous snapshot in place.
func (r *GormTripRepository) AddPreTripCheck(ctx context.Context, check *trip.PreTripCheck) error {
	dto := checkFromDomain(check)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "trip_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// UpsertEpod stores the proof of delivery, overwriting any previous capture.
func (r *GormTripRepository) UpsertEpod(ctx context.Context, epod *trip.Epod) error {
	dto := epodFromDomain(epod)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "trip_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// GetEpod retrieves the proof of delivery for a trip.
func (r *GormTripRepository) GetEpod(ctx context.Context, tripID kernel.UUID) (*trip.Epod, error) {
	if err := tripID.Validate(); err != nil {
		return nil, err
	}

	var dto EpodDTO
	err := r.db.WithContext(ctx).First(&dto, "trip_id = ?", tripID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("epod", tripID.String())
		}
		return nil, err
	}

	return epodToDomain(dto)
}

// AddExpense appends one expense row to the trip's ledger.
func (r *GormTripRepository) AddExpense(ctx context.Context, expense *trip.Expense) error {
	dto := expenseFromDomain(expense)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormTripRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("RestStops", func(db *gorm.DB) *gorm.DB {
		return db.Order("seq ASC")
	})
}
