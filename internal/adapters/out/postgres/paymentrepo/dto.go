// Package paymentrepo provides data transfer objects and mapping functions
// for the escrow ledger: payment rows and their dispute overlay. Payment rows
// are append-mostly; status moves are guarded so a replayed command never
// rewinds an advanced entry.
package paymentrepo

import (
	"time"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payment
// aggregates. The unique index on TripID enforces the one-payment-per-trip
// invariant at the storage level.
type PaymentDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	LoadID           uuid.UUID `gorm:"type:uuid;index"`
	TripID           uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	PayerID          uuid.UUID `gorm:"type:uuid;index"`
	PayeeID          uuid.UUID `gorm:"type:uuid;index"`
	Amount           float64
	Currency         string
	Status           string `gorm:"index"`
	CommissionRate   float64
	CommissionAmount float64
	PayoutAmount     float64
	FundedBy         *uuid.UUID `gorm:"type:uuid"`
	FundedAt         *time.Time
	ReleasedBy       *uuid.UUID `gorm:"type:uuid"`
	ReleasedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// DisputeDTO is one dispute raised against a payment. Several may exist; the
// read side picks the most recent.
type DisputeDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PaymentID   uuid.UUID `gorm:"type:uuid;index"`
	RaisedBy    uuid.UUID `gorm:"type:uuid"`
	Reason      string
	Status      string
	PayeeAmount *float64
	PayerRefund *float64
	CreatedAt   time.Time
	ResolvedBy  *uuid.UUID `gorm:"type:uuid"`
	ResolvedAt  *time.Time
}

// TableName specifies the database table name for dispute rows.
func (DisputeDTO) TableName() string {
	return "payment_disputes"
}

// fromDomain converts a payment domain aggregate to its database
// representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:               aggregate.ID().Bytes(),
		LoadID:           aggregate.LoadID().Bytes(),
		TripID:           aggregate.TripID().Bytes(),
		PayerID:          aggregate.PayerID().Bytes(),
		PayeeID:          aggregate.PayeeID().Bytes(),
		Amount:           aggregate.Amount(),
		Currency:         aggregate.Currency(),
		Status:           string(aggregate.Status()),
		CommissionRate:   aggregate.CommissionRate(),
		CommissionAmount: aggregate.CommissionAmount(),
		PayoutAmount:     aggregate.PayoutAmount(),
		FundedBy:         rawUUID(aggregate.FundedBy()),
		FundedAt:         aggregate.FundedAt(),
		ReleasedBy:       rawUUID(aggregate.ReleasedBy()),
		ReleasedAt:       aggregate.ReleasedAt(),
	}
}

// toDomain converts a database DTO to a payment domain aggregate using
// RestorePayment.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	ids := make([]kernel.UUID, 0, 5)
	for _, raw := range []uuid.UUID{dto.ID, dto.LoadID, dto.TripID, dto.PayerID, dto.PayeeID} {
		parsed, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, parsed)
	}

	fundedBy, err := domainUUID(dto.FundedBy)
	if err != nil {
		return nil, err
	}
	releasedBy, err := domainUUID(dto.ReleasedBy)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		ids[0], ids[1], ids[2], ids[3], ids[4],
		dto.Amount, dto.Currency, payment.Status(dto.Status),
		dto.CommissionRate, dto.CommissionAmount, dto.PayoutAmount,
		fundedBy, dto.FundedAt,
		releasedBy, dto.ReleasedAt,
	)
}

// disputeFromDomain converts a dispute to its database representation.
func disputeFromDomain(dispute *payment.Dispute) DisputeDTO {
	return DisputeDTO{
		ID:          dispute.ID.Bytes(),
		PaymentID:   dispute.PaymentID.Bytes(),
		RaisedBy:    dispute.RaisedBy.Bytes(),
		Reason:      dispute.Reason,
		Status:      string(dispute.Status),
		PayeeAmount: dispute.PayeeAmount,
		PayerRefund: dispute.PayerRefund,
		CreatedAt:   dispute.CreatedAt,
		ResolvedBy:  rawUUID(dispute.ResolvedBy),
		ResolvedAt:  dispute.ResolvedAt,
	}
}

// disputeToDomain converts a database DTO back to a dispute.
func disputeToDomain(dto DisputeDTO) (*payment.Dispute, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	paymentID, err := kernel.UUIDFromBytes(dto.PaymentID[:])
	if err != nil {
		return nil, err
	}
	raisedBy, err := kernel.UUIDFromBytes(dto.RaisedBy[:])
	if err != nil {
		return nil, err
	}
	resolvedBy, err := domainUUID(dto.ResolvedBy)
	if err != nil {
		return nil, err
	}

	return &payment.Dispute{
		ID:          id,
		PaymentID:   paymentID,
		RaisedBy:    raisedBy,
		Reason:      dto.Reason,
		Status:      payment.DisputeStatus(dto.Status),
		PayeeAmount: dto.PayeeAmount,
		PayerRefund: dto.PayerRefund,
		CreatedAt:   dto.CreatedAt,
		ResolvedBy:  resolvedBy,
		ResolvedAt:  dto.ResolvedAt,
	}, nil
}

func rawUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func domainUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
