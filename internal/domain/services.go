package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CurrentTimeProvider abstracts the clock so use cases stay deterministic in tests.
type CurrentTimeProvider interface {
	Now() time.Time
}

// EventPublisher defines the interface for publishing events to the bus.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}

// CacheInvalidator drops cached entries for an aggregate after a write.
// Invalidation is best-effort: failures are logged by callers and never
// change the reported outcome of the write.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, entity EntityType, id uuid.UUID) error
}
