package trip

import (
	"fmt"
	"math"
	"time"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/pkg/errs"
)

// PreTripCheck is the pre-departure safety checklist snapshot. At most one
// exists per trip; repeated captures replace the previous snapshot in place.
type PreTripCheck struct {
	TripID           kernel.UUID
	DriverID         kernel.UUID
	TruckID          kernel.UUID
	Roadworthy       bool
	AnimalsFitToLoad bool
	Notes            string
	CheckedAt        time.Time
}

// NewPreTripCheck validates and builds a checklist snapshot.
func NewPreTripCheck(
	tripID, driverID, truckID kernel.UUID,
	roadworthy, animalsFit bool,
	notes string,
	checkedAt time.Time,
) (*PreTripCheck, error) {
	if err := tripID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("trip id", err)
	}
	if err := driverID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("driver id", err)
	}
	if err := truckID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("truck id", err)
	}

	return &PreTripCheck{
		TripID:           tripID,
		DriverID:         driverID,
		TruckID:          truckID,
		Roadworthy:       roadworthy,
		AnimalsFitToLoad: animalsFit,
		Notes:            notes,
		CheckedAt:        checkedAt,
	}, nil
}

// Epod is the electronic proof of delivery. At most one exists per trip;
// capturing it is the trigger for payment release. PhotoURL is an opaque
// string produced by the external upload layer.
type Epod struct {
	TripID       kernel.UUID
	DeliveredAt  time.Time
	ReceiverName string
	PhotoURL     string
	Notes        string
}

// NewEpod validates and builds a proof-of-delivery record.
func NewEpod(tripID kernel.UUID, deliveredAt time.Time, receiverName, photoURL, notes string) (*Epod, error) {
	if err := tripID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("trip id", err)
	}
	if receiverName == "" {
		return nil, errs.NewValueIsRequiredError("receiver name")
	}
	if deliveredAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("delivered at")
	}

	return &Epod{
		TripID:       tripID,
		DeliveredAt:  deliveredAt,
		ReceiverName: receiverName,
		PhotoURL:     photoURL,
		Notes:        notes,
	}, nil
}

// Expense is one incidental cost recorded against a trip. The expense ledger
// is append-only. DriverID is nil when the submitted driver did not resolve;
// dropping it is a documented leniency, not a data-integrity requirement.
type Expense struct {
	ID         kernel.UUID
	TripID     kernel.UUID
	DriverID   *kernel.UUID
	Category   string
	Amount     float64
	Currency   string
	Note       string
	RecordedAt time.Time
}

// NewExpense validates and builds an expense entry. Amount must be a real,
// positive number; NaN and infinities are malformed input.
func NewExpense(
	id, tripID kernel.UUID,
	driverID *kernel.UUID,
	category string,
	amount float64,
	currency, note string,
	recordedAt time.Time,
) (*Expense, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := tripID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("trip id", err)
	}
	if category == "" {
		return nil, errs.NewValueIsRequiredError("category")
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not a number", amount))
	}
	if amount <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not greater than 0", amount))
	}

	return &Expense{
		ID:         id,
		TripID:     tripID,
		DriverID:   driverID,
		Category:   category,
		Amount:     amount,
		Currency:   currency,
		Note:       note,
		RecordedAt: recordedAt,
	}, nil
}
