package payment

import (
	"fmt"
	"math"
	"time"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/pkg/errs"
)

// DisputeStatus is the resolution state of a dispute.
type DisputeStatus string

const (
	DisputeOpen              DisputeStatus = "OPEN"
	DisputeResolvedSplit     DisputeStatus = "RESOLVED_SPLIT"
	DisputeResolvedRefund    DisputeStatus = "RESOLVED_REFUND_TO_SHIPPER"
	DisputeResolvedToCarrier DisputeStatus = "RESOLVED_RELEASE_TO_CARRIER"
)

// Dispute is a post-hoc overlay keyed to a payment. Its resolution redirects
// the reported settlement amounts without ever rewriting the canonical
// payment row; when several disputes exist, the most recent one wins.
type Dispute struct {
	ID        kernel.UUID
	PaymentID kernel.UUID
	RaisedBy  kernel.UUID
	Reason    string
	Status    DisputeStatus

	// Resolved amounts; nil until the dispute is resolved.
	PayeeAmount *float64
	PayerRefund *float64

	CreatedAt  time.Time
	ResolvedBy *kernel.UUID
	ResolvedAt *time.Time
}

// NewDispute opens a dispute against a payment.
func NewDispute(id, paymentID, raisedBy kernel.UUID, reason string, at time.Time) (*Dispute, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := paymentID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("payment id", err)
	}
	if err := raisedBy.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("raised by", err)
	}
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}

	return &Dispute{
		ID:        id,
		PaymentID: paymentID,
		RaisedBy:  raisedBy,
		Reason:    reason,
		Status:    DisputeOpen,
		CreatedAt: at,
	}, nil
}

// IsResolved reports whether the dispute carries a settlement override.
func (d *Dispute) IsResolved() bool {
	return d != nil && d.Status != DisputeOpen
}

// Resolve closes the dispute with a settlement override. For a split the
// supplied amounts must conserve the payment total; refund and
// release-to-carrier resolutions derive their amounts from the payment.
// A dispute can only be resolved once.
func (d *Dispute) Resolve(
	kind DisputeStatus,
	payeeAmount, payerRefund float64,
	paymentAmount float64,
	by kernel.UUID,
	at time.Time,
) error {
	if d.Status != DisputeOpen {
		return errs.NewConflictError("dispute",
			fmt.Sprintf("dispute already resolved as %q", string(d.Status)))
	}
	if err := by.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("resolved by", err)
	}

	switch kind {
	case DisputeResolvedSplit:
		if payeeAmount < 0 || payerRefund < 0 {
			return errs.NewValueIsInvalidError("split amounts must not be negative")
		}
		if math.Abs((payeeAmount+payerRefund)-paymentAmount) > 0.005 {
			return errs.NewValueIsInvalidErrorWithCause("split amounts",
				fmt.Errorf("%v + %v does not equal the payment amount %v",
					payeeAmount, payerRefund, paymentAmount))
		}
	case DisputeResolvedRefund:
		payeeAmount = 0
		payerRefund = paymentAmount
	case DisputeResolvedToCarrier:
		payeeAmount = paymentAmount
		payerRefund = 0
	default:
		return errs.NewValueIsInvalidErrorWithCause("resolution",
			fmt.Errorf("%q is not a valid dispute resolution", string(kind)))
	}

	d.Status = kind
	d.PayeeAmount = &payeeAmount
	d.PayerRefund = &payerRefund
	d.ResolvedBy = &by
	d.ResolvedAt = &at
	return nil
}

// Settlement is the externally reported view of where the money goes.
// It is computed at serialization time; the canonical payment is untouched.
type Settlement struct {
	PayeeAmount float64
	PayerRefund float64
	Commission  float64
	Overridden  bool
}

// SettlementWith returns the settlement to report for the payment, applying
// the dispute overlay when the dispute is resolved. With no (resolved)
// dispute the default figures are the payment's own payout and commission.
func (p *Payment) SettlementWith(d *Dispute) Settlement {
	if d.IsResolved() && d.PaymentID.IsEqual(p.id) {
		return Settlement{
			PayeeAmount: *d.PayeeAmount,
			PayerRefund: *d.PayerRefund,
			Commission:  p.commissionAmount,
			Overridden:  true,
		}
	}

	payout := p.payoutAmount
	if !p.IsReleased() {
		// Pre-release the payout is prospective: amount less commission.
		payout = round2(p.amount - p.commissionAmount)
	}
	return Settlement{
		PayeeAmount: payout,
		PayerRefund: 0,
		Commission:  p.commissionAmount,
	}
}
