package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/evolvehq/evolve-backend/internal/telemetry"
	"github.com/google/uuid"
)

var (
	outboxEventFields = []string{
		"id",
		"entity_type",
		"entity_id",
		"topic",
		"event_type",
		"payload",
		"retry_count",
		"max_retries",
		"last_error",
		"created_at",
	}
)

// OutboxRepository persists domain events awaiting publication. It always
// runs on the unit of work's transaction so recorded events become durable
// atomically with the write that produced them.
type OutboxRepository struct {
	sb squirrel.StatementBuilderType
}

// NewOutboxRepository creates a new instance of OutboxRepository.
func NewOutboxRepository(br squirrel.BaseRunner) OutboxRepository {
	return OutboxRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// RecordEvent records a domain event in the outbox.
func (op OutboxRepository) RecordEvent(ctx context.Context, event domain.DomainEvent) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	outboxEvent, err := domain.NewOutboxEvent(event)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	_, err = op.sb.Insert("outbox_events").
		Columns(
			outboxEventFields...,
		).
		Values(
			outboxEvent.ID,
			string(outboxEvent.EntityType),
			outboxEvent.EntityID,
			string(outboxEvent.Topic),
			string(outboxEvent.EventType),
			outboxEvent.Payload,
			0,
			outboxEvent.MaxRetries,
			nil,
			outboxEvent.CreatedAt,
		).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}

	return nil
}

// FetchPendingEvents retrieves a batch of pending outbox events, locking them
// against concurrent relay workers.
func (op OutboxRepository) FetchPendingEvents(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	rows, err := op.sb.
		Select(
			outboxEventFields...,
		).
		From("outbox_events").
		Where(squirrel.Eq{"status": string(domain.OutboxStatus_Pending)}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		QueryContext(ctx)

	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var events []domain.OutboxEvent
	for rows.Next() {
		var oe domain.OutboxEvent
		err := rows.Scan(
			&oe.ID,
			&oe.EntityType,
			&oe.EntityID,
			&oe.Topic,
			&oe.EventType,
			&oe.Payload,
			&oe.RetryCount,
			&oe.MaxRetries,
			&oe.LastError,
			&oe.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		events = append(events, oe)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// UpdateEvent updates the status, retry count, and last error of an outbox event.
func (op OutboxRepository) UpdateEvent(ctx context.Context, eventID uuid.UUID, status domain.OutboxStatus, retryCount int, lastError string) error {
	_, err := op.sb.
		Update("outbox_events").
		Set("status", string(status)).
		Set("retry_count", retryCount).
		Set("last_error", lastError).
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(ctx)

	return err
}

// DeleteEvent deletes an outbox event from the database.
func (op OutboxRepository) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	_, err := op.sb.
		Delete("outbox_events").
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(ctx)

	return err
}
