package paymentrepo

import (
	"context"
	"errors"
	"time"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/payment"
	"livehaul/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment entry. A duplicate trip surfaces as a conflict via
// the unique index rather than a bare driver error.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("payment",
				"a payment already exists for this trip", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing payment. The write is guarded on the exact status
// the aggregate transitioned from, so at most one writer moves a ledger entry
// through any transition. A write that matches no row lost that race (or
// replayed against an already advanced entry) and is a conflict; it must not
// overwrite who funded or released.
func (r *GormPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	prior := string(priorStatus(aggregate.Status()))

	result := r.db.WithContext(ctx).Model(&PaymentDTO{}).
		Where("id = ? AND status = ?", dto.ID, prior).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("payment", "ledger entry already advanced")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a payment by ID.
func (r *GormPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrip retrieves the payment keyed to the given trip.
func (r *GormPaymentRepository) GetByTrip(ctx context.Context, tripID kernel.UUID) (*payment.Payment, error) {
	if err := tripID.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "trip_id = ?", tripID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment for trip", tripID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingFundingBefore retrieves payments still waiting on shipper
// funds that were opened before the cutoff, oldest first.
func (r *GormPaymentRepository) GetAllPendingFundingBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*payment.Payment, error) {
	var dtos []PaymentDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", string(payment.StatusPendingFunding), cutoff).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	payments := make([]*payment.Payment, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, nil
}

// AddDispute records a new dispute against a payment.
func (r *GormPaymentRepository) AddDispute(ctx context.Context, dispute *payment.Dispute) error {
	dto := disputeFromDomain(dispute)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateDispute persists a dispute resolution.
func (r *GormPaymentRepository) UpdateDispute(ctx context.Context, dispute *payment.Dispute) error {
	dto := disputeFromDomain(dispute)
	result := r.db.WithContext(ctx).Model(&DisputeDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetDispute retrieves a dispute by ID.
func (r *GormPaymentRepository) GetDispute(ctx context.Context, id kernel.UUID) (*payment.Dispute, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DisputeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dispute", id.String())
		}
		return nil, err
	}

	return disputeToDomain(dto)
}

// GetLatestDispute retrieves the most recently raised dispute for a payment.
// No dispute is not an error; the overlay is simply absent.
func (r *GormPaymentRepository) GetLatestDispute(
	ctx context.Context,
	paymentID kernel.UUID,
) (*payment.Dispute, error) {
	if err := paymentID.Validate(); err != nil {
		return nil, err
	}

	var dto DisputeDTO
	err := r.db.WithContext(ctx).
		Where("payment_id = ?", paymentID.Bytes()).
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return disputeToDomain(dto)
}

// priorStatus returns the ledger state a payment in the given status must
// have transitioned from. PENDING_FUNDING is the entry state and maps to
// itself.
func priorStatus(s payment.Status) payment.Status {
	switch s {
	case payment.StatusFunded:
		return payment.StatusPendingFunding
	case payment.StatusReleased:
		return payment.StatusFunded
	default:
		return s
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation"
}
