package ports

import (
	"context"
	"time"
)

// Event kinds emitted by the marketplace. At most one event is published per
// successful state change; no-ops and failed commands publish nothing.
const (
	EventLoadMatched           = "load.matched"
	EventTripCompleted         = "trip.completed"
	EventPaymentFundingOverdue = "payment.funding_overdue"
)

// Envelope carries one domain event to the publisher.
type Envelope struct {
	Kind       string
	Payload    map[string]any
	OccurredAt time.Time
}

// EventPublisher delivers domain events to interested parties. Publishing is
// best effort from the caller's point of view: handlers publish after commit
// and a delivery failure never rolls back the state change.
type EventPublisher interface {
	Publish(ctx context.Context, event Envelope) error
}
