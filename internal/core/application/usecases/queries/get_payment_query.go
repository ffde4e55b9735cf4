// Package queries contains read-only operations over the marketplace store.
// Query handlers bypass the aggregates' repositories and read with raw SQL,
// shaping results for the HTTP layer.
package queries

import (
	"errors"
	"time"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/payment"
	"livehaul/internal/pkg/errs"
	"livehaul/internal/pkg/guard"
)

var ErrGetPaymentQueryIsNotConstructed = errors.New(
	"GetPaymentQuery must be created via a NewGetPaymentQuery constructor",
)

// GetPaymentQuery retrieves one payment, addressed either by its own id or by
// the trip it settles. Exactly one of the two lookups is set.
type GetPaymentQuery struct {
	paymentID *kernel.UUID
	tripID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPaymentQueryByID creates a query addressed by payment id.
func NewGetPaymentQueryByID(paymentID kernel.UUID) (GetPaymentQuery, error) {
	if err := paymentID.Validate(); err != nil {
		return GetPaymentQuery{}, errs.NewValueIsRequiredErrorWithCause("payment id", err)
	}

	return GetPaymentQuery{
		paymentID: &paymentID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewGetPaymentQueryByTrip creates a query addressed by trip id.
func NewGetPaymentQueryByTrip(tripID kernel.UUID) (GetPaymentQuery, error) {
	if err := tripID.Validate(); err != nil {
		return GetPaymentQuery{}, errs.NewValueIsRequiredErrorWithCause("trip id", err)
	}

	return GetPaymentQuery{
		tripID: &tripID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetPaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentQueryIsNotConstructed)
}

// PaymentID returns the payment id lookup, or nil.
func (q GetPaymentQuery) PaymentID() *kernel.UUID { return q.paymentID }

// TripID returns the trip id lookup, or nil.
func (q GetPaymentQuery) TripID() *kernel.UUID { return q.tripID }

// GetPaymentQueryResponse is the externally reported view of a payment. The
// Settlement block carries the dispute overlay when one applies; the ledger
// fields above it are always the canonical row.
type GetPaymentQueryResponse struct {
	ID               kernel.UUID
	LoadID           kernel.UUID
	TripID           kernel.UUID
	PayerID          kernel.UUID
	PayeeID          kernel.UUID
	Amount           float64
	Currency         string
	Status           payment.Status
	CommissionRate   float64
	CommissionAmount float64
	PayoutAmount     float64
	FundedAt         *time.Time
	ReleasedAt       *time.Time

	Settlement payment.Settlement
	Disputed   bool
}
