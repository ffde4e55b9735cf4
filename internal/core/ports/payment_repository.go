package ports

import (
	"context"
	"time"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for the escrow ledger
// and its dispute overlay.
type PaymentRepository interface {
	// Add persists a new payment entry to the ledger.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment. Status moves are
	// guarded: the row is only written when it still holds the status the
	// aggregate transitioned from. A write that matches no row, whether a
	// lost race or a replay against an already advanced entry, is a
	// ConflictError and leaves the row untouched.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByTrip retrieves the payment keyed to the given trip, or an
	// ObjectNotFoundError when the trip never opened one.
	GetByTrip(ctx context.Context, tripID kernel.UUID) (*payment.Payment, error)

	// GetAllPendingFundingBefore retrieves payments still waiting on shipper
	// funds that were opened before the cutoff.
	GetAllPendingFundingBefore(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error)

	// AddDispute records a new dispute against a payment.
	AddDispute(ctx context.Context, dispute *payment.Dispute) error

	// UpdateDispute persists a dispute resolution.
	UpdateDispute(ctx context.Context, dispute *payment.Dispute) error

	// GetDispute retrieves a dispute by its unique identifier.
	GetDispute(ctx context.Context, id kernel.UUID) (*payment.Dispute, error)

	// GetLatestDispute retrieves the most recently raised dispute for a
	// payment, or nil with no error when the payment has none.
	GetLatestDispute(ctx context.Context, paymentID kernel.UUID) (*payment.Dispute, error)
}
