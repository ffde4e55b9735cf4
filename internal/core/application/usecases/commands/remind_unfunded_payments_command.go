package commands

import (
	"errors"
	"fmt"
	"time"

	"livehaul/internal/pkg/errs"
	"livehaul/internal/pkg/guard"
)

var ErrRemindUnfundedPaymentsCommandIsNotConstructed = errors.New(
	"RemindUnfundedPaymentsCommand must be created via NewRemindUnfundedPaymentsCommand constructor",
)

// RemindUnfundedPaymentsCommand triggers overdue-funding notifications for
// payments still waiting on shipper funds past the grace period.
type RemindUnfundedPaymentsCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewRemindUnfundedPaymentsCommand creates a reminder command for payments
// pending longer than the given grace period.
func NewRemindUnfundedPaymentsCommand(olderThan time.Duration) (RemindUnfundedPaymentsCommand, error) {
	if olderThan <= 0 {
		return RemindUnfundedPaymentsCommand{}, errs.NewValueIsInvalidErrorWithCause("older than",
			fmt.Errorf("%v is not greater than 0", olderThan))
	}

	return RemindUnfundedPaymentsCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemindUnfundedPaymentsCommand) Validate() error {
	return c.guard.Validate(ErrRemindUnfundedPaymentsCommandIsNotConstructed)
}

// OlderThan returns the funding grace period.
func (c RemindUnfundedPaymentsCommand) OlderThan() time.Duration { return c.olderThan }
