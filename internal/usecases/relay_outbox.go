package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/evolvehq/evolve-backend/internal/telemetry"
	"go.uber.org/zap"
)

const relayBatchSize = 100

// RelayOutbox defines the interface for the RelayOutbox use case.
type RelayOutbox interface {
	Execute(ctx context.Context) error
}

// RelayOutboxImpl is the implementation of the RelayOutbox use case.
type RelayOutboxImpl struct {
	uow       domain.UnitOfWork
	publisher domain.EventPublisher
	log       *zap.Logger
}

// NewRelayOutboxImpl creates a new instance of RelayOutboxImpl.
func NewRelayOutboxImpl(uow domain.UnitOfWork, publisher domain.EventPublisher, log *zap.Logger) RelayOutboxImpl {
	return RelayOutboxImpl{
		uow:       uow,
		publisher: publisher,
		log:       log,
	}
}

// Execute drains one batch of pending outbox events, publishing each to the
// event bus. Published events are deleted; failed ones accumulate retries
// until MaxRetries, after which they are parked as FAILED.
func (roi RelayOutboxImpl) Execute(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := roi.uow.Execute(spanCtx, func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
		events, err := uow.Outbox().FetchPendingEvents(spanCtx, relayBatchSize)
		if err != nil {
			return domain.TxOutcome{}, err
		}
		for _, event := range events {
			if err := roi.relayEvent(spanCtx, uow, event); err != nil {
				return domain.TxOutcome{}, err
			}
		}
		return domain.TxOutcome{}, nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

func (roi RelayOutboxImpl) relayEvent(ctx context.Context, uow domain.UnitOfWork, event domain.OutboxEvent) error {
	if err := roi.publisher.PublishEvent(ctx, event); err != nil {
		roi.log.Warn("Failed to publish outbox event",
			zap.String("event_id", event.ID.String()),
			zap.String("event_type", string(event.EventType)),
			zap.Int("retry_count", event.RetryCount+1),
			zap.Error(err),
		)
		status := domain.OutboxStatus_Pending
		if event.RetryCount+1 >= event.MaxRetries {
			status = domain.OutboxStatus_Failed
		}
		return uow.Outbox().UpdateEvent(ctx, event.ID, status, event.RetryCount+1, err.Error())
	}
	return uow.Outbox().DeleteEvent(ctx, event.ID)
}

// InitRelayOutbox initializes the RelayOutbox use case.
type InitRelayOutbox struct {
	Uow       domain.UnitOfWork     `resolve:""`
	Publisher domain.EventPublisher `resolve:""`
	Logger    *zap.Logger           `resolve:""`
}

// Initialize registers the RelayOutboxImpl use case in the dependency container.
func (iro InitRelayOutbox) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RelayOutbox](NewRelayOutboxImpl(iro.Uow, iro.Publisher, iro.Logger))
	return ctx, nil
}
