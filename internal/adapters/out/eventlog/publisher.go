// Package eventlog provides a structured-log implementation of the event
// publisher port. Domain events are emitted as slog records; downstream
// consumers tail the log instead of a broker. Publishing never fails, which
// matches the best-effort contract of the port.
package eventlog

import (
	"context"
	"log/slog"

	"livehaul/internal/core/ports"
)

// SlogEventPublisher publishes domain events to a structured logger.
type SlogEventPublisher struct {
	logger *slog.Logger
}

// NewSlogEventPublisher creates a publisher writing to the given logger.
func NewSlogEventPublisher(logger *slog.Logger) *SlogEventPublisher {
	return &SlogEventPublisher{
		logger: logger.With("component", "event_publisher"),
	}
}

// Publish emits one event as an info record carrying the envelope kind, the
// occurrence time and the flattened payload.
func (p *SlogEventPublisher) Publish(ctx context.Context, event ports.Envelope) error {
	attrs := make([]any, 0, 4+2*len(event.Payload))
	attrs = append(attrs, "kind", event.Kind, "occurred_at", event.OccurredAt)
	for key, value := range event.Payload {
		attrs = append(attrs, key, value)
	}

	p.logger.InfoContext(ctx, "domain event", attrs...)
	return nil
}
