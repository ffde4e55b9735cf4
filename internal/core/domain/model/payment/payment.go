// Package payment contains the escrow ledger: the Payment aggregate tracking
// funds owed from shipper to carrier for a trip, the commission arithmetic,
// and the dispute overlay that can redirect settlement at read time.
package payment

import (
	"errors"
	"fmt"
	"math"
	"time"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/pkg/errs"
	"livehaul/internal/pkg/guard"
)

// ErrPaymentIsNotConstructed is returned when a Payment was not created
// through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Status is the escrow ledger state. Transitions are monotonic:
// PENDING_FUNDING → FUNDED → RELEASED. Disputes never rewrite the status;
// they decorate the reported settlement instead.
type Status string

const (
	StatusPendingFunding Status = "PENDING_FUNDING"
	StatusFunded         Status = "FUNDED"
	StatusReleased       Status = "RELEASED"
)

// Validate checks the status against the known ledger states.
func (s Status) Validate() error {
	switch s {
	case StatusPendingFunding, StatusFunded, StatusReleased:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%q is not a valid payment status", string(s)))
	}
}

// ComputeCommission returns the platform's cut for the given amount and
// percentage rate, rounded to 2 decimal places.
func ComputeCommission(amount, ratePct float64) float64 {
	return round2(amount * ratePct / 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Payment is the aggregate root for one escrow ledger entry. Exactly one
// payment is ever created per trip, and only when the load carried a
// positive price offer.
type Payment struct {
	id      kernel.UUID
	loadID  kernel.UUID
	tripID  kernel.UUID
	payerID kernel.UUID
	payeeID kernel.UUID

	amount   float64
	currency string
	status   Status

	commissionRate   float64
	commissionAmount float64
	payoutAmount     float64

	fundedBy   *kernel.UUID
	fundedAt   *time.Time
	releasedBy *kernel.UUID
	releasedAt *time.Time

	guard guard.ConstructorGuard
}

// NewPayment opens a payment in PENDING_FUNDING. Amount must be positive;
// the orchestrator only opens payments for loads with a positive offer, and
// the constructor enforces it regardless. Commission is computed up front at
// the recorded rate so the pending entry already shows the platform's cut.
func NewPayment(
	id, loadID, tripID, payerID, payeeID kernel.UUID,
	amount float64,
	currency string,
	commissionRatePct float64,
) (*Payment, error) {
	p := &Payment{
		status: StatusPendingFunding,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setParties(loadID, tripID, payerID, payeeID),
		p.setAmount(amount, currency),
		p.setCommissionRate(commissionRatePct),
	); err != nil {
		return nil, err
	}

	p.commissionAmount = ComputeCommission(amount, commissionRatePct)
	return p, nil
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(
	id, loadID, tripID, payerID, payeeID kernel.UUID,
	amount float64,
	currency string,
	status Status,
	commissionRatePct, commissionAmount, payoutAmount float64,
	fundedBy *kernel.UUID, fundedAt *time.Time,
	releasedBy *kernel.UUID, releasedAt *time.Time,
) (*Payment, error) {
	p, err := NewPayment(id, loadID, tripID, payerID, payeeID, amount, currency, commissionRatePct)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	p.status = status
	p.commissionAmount = commissionAmount
	p.payoutAmount = payoutAmount
	p.fundedBy = fundedBy
	p.fundedAt = fundedAt
	p.releasedBy = releasedBy
	p.releasedAt = releasedAt
	return p, nil
}

// Validate ensures the payment was built through a constructor.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID { return p.id }

// LoadID returns the load this payment settles.
func (p *Payment) LoadID() kernel.UUID { return p.loadID }

// TripID returns the trip this payment is keyed to.
func (p *Payment) TripID() kernel.UUID { return p.tripID }

// PayerID returns the shipper owing the funds.
func (p *Payment) PayerID() kernel.UUID { return p.payerID }

// PayeeID returns the carrier receiving the payout.
func (p *Payment) PayeeID() kernel.UUID { return p.payeeID }

// Amount returns the canonical escrow amount. Never rewritten by disputes.
func (p *Payment) Amount() float64 { return p.amount }

// Currency returns the payment currency.
func (p *Payment) Currency() string { return p.currency }

// Status returns the current ledger state.
func (p *Payment) Status() Status { return p.status }

// CommissionRate returns the recorded commission percentage.
func (p *Payment) CommissionRate() float64 { return p.commissionRate }

// CommissionAmount returns the platform's cut at the recorded rate.
func (p *Payment) CommissionAmount() float64 { return p.commissionAmount }

// PayoutAmount returns the carrier payout fixed at release, 0 before that.
func (p *Payment) PayoutAmount() float64 { return p.payoutAmount }

// FundedBy returns the funding actor, or nil.
func (p *Payment) FundedBy() *kernel.UUID { return p.fundedBy }

// FundedAt returns the funding time, or nil.
func (p *Payment) FundedAt() *time.Time { return p.fundedAt }

// ReleasedBy returns the releasing actor, or nil.
func (p *Payment) ReleasedBy() *kernel.UUID { return p.releasedBy }

// ReleasedAt returns the release time, or nil.
func (p *Payment) ReleasedAt() *time.Time { return p.releasedAt }

// CanFund reports whether the payment is exactly in PENDING_FUNDING.
func (p *Payment) CanFund() bool {
	return p.status == StatusPendingFunding
}

// CanRelease reports whether the payment is exactly in FUNDED.
func (p *Payment) CanRelease() bool {
	return p.status == StatusFunded
}

// IsReleased reports whether the payment reached its terminal state.
func (p *Payment) IsReleased() bool {
	return p.status == StatusReleased
}

// Fund moves PENDING_FUNDING → FUNDED, recording the actor and time.
// Callers wanting "no-op, not an error" semantics check CanFund first;
// calling Fund out of state is a conflict.
func (p *Payment) Fund(actorID kernel.UUID, at time.Time) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if p.status != StatusPendingFunding {
		return errs.NewConflictError("payment",
			fmt.Sprintf("cannot fund a payment in status %q", p.status))
	}

	p.status = StatusFunded
	p.fundedBy = &actorID
	p.fundedAt = &at
	return nil
}

// Release moves FUNDED → RELEASED, fixing commission at the recorded rate and
// the payout as amount − commission. Releasing an already-released payment is
// a no-op (idempotent on terminal state); releasing an unfunded one is a
// conflict; callers translate that into "nothing to release".
func (p *Payment) Release(actorID kernel.UUID, at time.Time) error {
	if p.status == StatusReleased {
		return nil
	}
	if err := actorID.Validate(); err != nil {
		return err
	}
	if p.status != StatusFunded {
		return errs.NewConflictError("payment",
			fmt.Sprintf("cannot release a payment in status %q", p.status))
	}

	p.commissionAmount = ComputeCommission(p.amount, p.commissionRate)
	p.payoutAmount = round2(p.amount - p.commissionAmount)
	p.status = StatusReleased
	p.releasedBy = &actorID
	p.releasedAt = &at
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setParties(loadID, tripID, payerID, payeeID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("load id", err)
	}
	if err := tripID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("trip id", err)
	}
	if err := payerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("payer id", err)
	}
	if err := payeeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("payee id", err)
	}
	p.loadID = loadID
	p.tripID = tripID
	p.payerID = payerID
	p.payeeID = payeeID
	return nil
}

func (p *Payment) setAmount(amount float64, currency string) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not greater than 0", amount))
	}
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	p.amount = amount
	p.currency = currency
	return nil
}

func (p *Payment) setCommissionRate(ratePct float64) error {
	if ratePct < 0 || ratePct > 100 {
		return errs.NewValueIsInvalidErrorWithCause("commission rate",
			fmt.Errorf("%v is not between 0 and 100", ratePct))
	}
	p.commissionRate = ratePct
	return nil
}
