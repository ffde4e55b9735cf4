package queries

import (
	"context"
	"database/sql"
	"time"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/payment"
	"livehaul/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPaymentQueryHandler reads one payment row together with its most recent
// dispute and reports the settlement view. The overlay is applied here, at
// read time: a resolved dispute changes what is reported, never what is
// stored.
type GetPaymentQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentQueryHandler creates a handler for payment reads.
func NewGetPaymentQueryHandler(db *gorm.DB) GetPaymentQueryHandler {
	return GetPaymentQueryHandler{db: db}
}

// Handle executes the payment read.
func (h GetPaymentQueryHandler) Handle(ctx context.Context, query GetPaymentQuery) (GetPaymentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPaymentQueryResponse{}, err
	}

	entry, err := h.fetchPayment(ctx, query)
	if err != nil {
		return GetPaymentQueryResponse{}, err
	}

	dispute, err := h.fetchLatestDispute(ctx, entry.ID())
	if err != nil {
		return GetPaymentQueryResponse{}, err
	}

	return GetPaymentQueryResponse{
		ID:               entry.ID(),
		LoadID:           entry.LoadID(),
		TripID:           entry.TripID(),
		PayerID:          entry.PayerID(),
		PayeeID:          entry.PayeeID(),
		Amount:           entry.Amount(),
		Currency:         entry.Currency(),
		Status:           entry.Status(),
		CommissionRate:   entry.CommissionRate(),
		CommissionAmount: entry.CommissionAmount(),
		PayoutAmount:     entry.PayoutAmount(),
		FundedAt:         entry.FundedAt(),
		ReleasedAt:       entry.ReleasedAt(),
		Settlement:       entry.SettlementWith(dispute),
		Disputed:         dispute != nil,
	}, nil
}

func (h GetPaymentQueryHandler) fetchPayment(ctx context.Context, query GetPaymentQuery) (*payment.Payment, error) {
	const selectPayment = `
		SELECT
			id, load_id, trip_id, payer_id, payee_id,
			amount, currency, status,
			commission_rate, commission_amount, payout_amount,
			funded_by, funded_at, released_by, released_at
		FROM payments
	`

	var row *gorm.DB
	if query.PaymentID() != nil {
		row = h.db.WithContext(ctx).Raw(selectPayment+"WHERE id = ?", query.PaymentID().Bytes())
	} else {
		row = h.db.WithContext(ctx).Raw(selectPayment+"WHERE trip_id = ?", query.TripID().Bytes())
	}

	var (
		id, loadID, tripID, payerID, payeeID uuid.UUID
		amount, rate, commission, payout     float64
		currency, status                     string
		fundedBy, releasedBy                 uuid.NullUUID
		fundedAt, releasedAt                 sql.NullTime
	)

	rows, err := row.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		if query.PaymentID() != nil {
			return nil, errs.NewObjectNotFoundError("payment", query.PaymentID().String())
		}
		return nil, errs.NewObjectNotFoundError("payment for trip", query.TripID().String())
	}

	err = rows.Scan(
		&id, &loadID, &tripID, &payerID, &payeeID,
		&amount, &currency, &status,
		&rate, &commission, &payout,
		&fundedBy, &fundedAt, &releasedBy, &releasedAt,
	)
	if err != nil {
		return nil, err
	}

	return restorePaymentRow(
		id, loadID, tripID, payerID, payeeID,
		amount, currency, status, rate, commission, payout,
		fundedBy, fundedAt, releasedBy, releasedAt,
	)
}

func (h GetPaymentQueryHandler) fetchLatestDispute(ctx context.Context, paymentID kernel.UUID) (*payment.Dispute, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, payment_id, raised_by, reason, status,
			payee_amount, payer_refund,
			created_at, resolved_by, resolved_at
		FROM payment_disputes
		WHERE payment_id = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, paymentID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var (
		id, payID, raisedBy      uuid.UUID
		reason, status           string
		payeeAmount, payerRefund sql.NullFloat64
		createdAt                sql.NullTime
		resolvedBy               uuid.NullUUID
		resolvedAt               sql.NullTime
	)

	err = rows.Scan(
		&id, &payID, &raisedBy, &reason, &status,
		&payeeAmount, &payerRefund,
		&createdAt, &resolvedBy, &resolvedAt,
	)
	if err != nil {
		return nil, err
	}

	return restoreDisputeRow(
		id, payID, raisedBy, reason, status,
		payeeAmount, payerRefund, createdAt, resolvedBy, resolvedAt,
	)
}

func restorePaymentRow(
	id, loadID, tripID, payerID, payeeID uuid.UUID,
	amount float64,
	currency, status string,
	rate, commission, payout float64,
	fundedBy uuid.NullUUID, fundedAt sql.NullTime,
	releasedBy uuid.NullUUID, releasedAt sql.NullTime,
) (*payment.Payment, error) {
	ids := make([]kernel.UUID, 0, 5)
	for _, raw := range []uuid.UUID{id, loadID, tripID, payerID, payeeID} {
		parsed, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, parsed)
	}

	return payment.RestorePayment(
		ids[0], ids[1], ids[2], ids[3], ids[4],
		amount, currency, payment.Status(status),
		rate, commission, payout,
		nullableUUID(fundedBy), nullableTime(fundedAt),
		nullableUUID(releasedBy), nullableTime(releasedAt),
	)
}

func restoreDisputeRow(
	id, paymentID, raisedBy uuid.UUID,
	reason, status string,
	payeeAmount, payerRefund sql.NullFloat64,
	createdAt sql.NullTime,
	resolvedBy uuid.NullUUID,
	resolvedAt sql.NullTime,
) (*payment.Dispute, error) {
	disputeID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	payID, err := kernel.UUIDFromBytes(paymentID[:])
	if err != nil {
		return nil, err
	}
	raiserID, err := kernel.UUIDFromBytes(raisedBy[:])
	if err != nil {
		return nil, err
	}

	dispute := &payment.Dispute{
		ID:        disputeID,
		PaymentID: payID,
		RaisedBy:  raiserID,
		Reason:    reason,
		Status:    payment.DisputeStatus(status),
		CreatedAt: createdAt.Time,
	}
	if payeeAmount.Valid {
		dispute.PayeeAmount = &payeeAmount.Float64
	}
	if payerRefund.Valid {
		dispute.PayerRefund = &payerRefund.Float64
	}
	dispute.ResolvedBy = nullableUUID(resolvedBy)
	dispute.ResolvedAt = nullableTime(resolvedAt)
	return dispute, nil
}

func nullableUUID(v uuid.NullUUID) *kernel.UUID {
	if !v.Valid {
		return nil
	}
	parsed, err := kernel.UUIDFromBytes(v.UUID[:])
	if err != nil {
		return nil
	}
	return &parsed
}

func nullableTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
