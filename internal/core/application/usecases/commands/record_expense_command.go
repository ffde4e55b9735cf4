package commands

import (
	"errors"
	"fmt"
	"math"

	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/pkg/errs"
	"livehaul/internal/pkg/guard"
)

var ErrRecordExpenseCommandIsNotConstructed = errors.New(
	"RecordExpenseCommand must be created via NewRecordExpenseCommand constructor",
)

// RecordExpenseCommand appends an en-route cost to a trip's expense ledger.
// DriverUserID is optional; when it does not resolve to a registered driver
// the expense is stored without one.
type RecordExpenseCommand struct { //nolint:recvcheck //using for validation
	tripID       kernel.UUID
	driverUserID *kernel.UUID
	category     string
	amount       float64
	currency     string
	note         string

	guard guard.ConstructorGuard
}

// NewRecordExpenseCommand creates a command to record a trip expense.
// Amount must be a real positive number; NaN and infinities are rejected as
// malformed input, never stored.
func NewRecordExpenseCommand(
	tripID kernel.UUID,
	driverUserID *kernel.UUID,
	category string,
	amount float64,
	currency, note string,
) (RecordExpenseCommand, error) {
	if err := tripID.Validate(); err != nil {
		return RecordExpenseCommand{}, errs.NewValueIsRequiredErrorWithCause("trip id", err)
	}
	if category == "" {
		return RecordExpenseCommand{}, errs.NewValueIsRequiredError("category")
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return RecordExpenseCommand{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not a number", amount))
	}
	if amount <= 0 {
		return RecordExpenseCommand{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not greater than 0", amount))
	}

	return RecordExpenseCommand{
		tripID:       tripID,
		driverUserID: driverUserID,
		category:     category,
		amount:       amount,
		currency:     currency,
		note:         note,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordExpenseCommand) Validate() error {
	return c.guard.Validate(ErrRecordExpenseCommandIsNotConstructed)
}

// TripID returns the trip the expense belongs to.
func (c RecordExpenseCommand) TripID() kernel.UUID { return c.tripID }

// DriverUserID returns the submitting driver's user id, or nil.
func (c RecordExpenseCommand) DriverUserID() *kernel.UUID { return c.driverUserID }

// Category returns the expense category.
func (c RecordExpenseCommand) Category() string { return c.category }

// Amount returns the expense amount.
func (c RecordExpenseCommand) Amount() float64 { return c.amount }

// Currency returns the expense currency.
func (c RecordExpenseCommand) Currency() string { return c.currency }

// Note returns the free-form note.
func (c RecordExpenseCommand) Note() string { return c.note }
