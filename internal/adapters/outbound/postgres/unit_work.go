package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"go.uber.org/zap"
)

// DeliveryMode selects how committed domain events reach the event bus.
type DeliveryMode string

const (
	// DeliverOutbox records events in the outbox table inside the same
	// transaction; a background relay publishes them with bounded retries.
	DeliverOutbox DeliveryMode = "outbox"
	// DeliverDirect publishes events straight to the bus after commit,
	// best-effort and in insertion order.
	DeliverDirect DeliveryMode = "direct"
)

// UnitOfWork implements the domain.UnitOfWork interface for Postgres.
//
// Execute is the transaction runner: it opens a transaction, runs the unit
// of work, and commits or rolls back. Cache invalidation and event
// publication happen if and only if the commit succeeded. A transient
// failure anywhere before the commit retries the whole unit of work, so
// post-commit hooks never run for an attempt that did not commit.
type UnitOfWork struct {
	db          *sql.DB
	tx          *sql.Tx
	publisher   domain.EventPublisher
	invalidator domain.CacheInvalidator
	mode        DeliveryMode
	retry       retryPolicy
	log         *zap.Logger
}

// NewUnitOfWork creates a new instance of UnitOfWork.
func NewUnitOfWork(db *sql.DB, publisher domain.EventPublisher, invalidator domain.CacheInvalidator, mode DeliveryMode, log *zap.Logger) *UnitOfWork {
	return &UnitOfWork{
		db:          db,
		publisher:   publisher,
		invalidator: invalidator,
		mode:        mode,
		retry:       newRetryPolicy(defaultMaxRetries, log),
		log:         log,
	}
}

// Execute runs the provided function within a database transaction and, on
// successful commit only, runs the post-commit hooks described by the
// returned TxOutcome. Hook failures are logged and never surface to the
// caller: a committed write is always reported as success.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(uow domain.UnitOfWork) (domain.TxOutcome, error)) error {
	var outcome domain.TxOutcome
	err := u.retry.Do(ctx, "transaction", func() error {
		var txErr error
		outcome, txErr = u.runTransaction(ctx, fn)
		return txErr
	})
	if err != nil {
		return err
	}

	u.runPostCommitHooks(ctx, outcome)
	return nil
}

// runTransaction performs one begin/work/commit attempt.
func (u *UnitOfWork) runTransaction(ctx context.Context, fn func(uow domain.UnitOfWork) (domain.TxOutcome, error)) (domain.TxOutcome, error) {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.TxOutcome{}, err
	}

	txUow := &UnitOfWork{
		db:          u.db,
		tx:          tx,
		publisher:   u.publisher,
		invalidator: u.invalidator,
		mode:        u.mode,
		retry:       u.retry,
		log:         u.log,
	}

	outcome, err := fn(txUow)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.TxOutcome{}, fmt.Errorf("transaction rollback error: %v, original error: %w", rbErr, err)
		}
		return domain.TxOutcome{}, err
	}

	if u.mode == DeliverOutbox {
		// events become durable in the same transaction as the write
		for _, event := range outcome.Events {
			if err := txUow.Outbox().RecordEvent(ctx, event); err != nil {
				if rbErr := tx.Rollback(); rbErr != nil {
					return domain.TxOutcome{}, fmt.Errorf("transaction rollback error: %v, original error: %w", rbErr, err)
				}
				return domain.TxOutcome{}, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.TxOutcome{}, err
	}
	return outcome, nil
}

// runPostCommitHooks invalidates caches and, in direct mode, publishes
// events sequentially in insertion order. A failure on one event is logged
// and the remaining events are still attempted.
func (u *UnitOfWork) runPostCommitHooks(ctx context.Context, outcome domain.TxOutcome) {
	if u.invalidator != nil {
		for _, invalidation := range outcome.Invalidations {
			if err := u.invalidator.Invalidate(ctx, invalidation.Entity, invalidation.ID); err != nil {
				u.log.Error("cache invalidation failed",
					zap.String("entity", string(invalidation.Entity)),
					zap.String("id", invalidation.ID.String()),
					zap.Error(err),
				)
			}
		}
	}

	if u.mode != DeliverDirect || u.publisher == nil {
		return
	}
	for _, event := range outcome.Events {
		outboxEvent, err := domain.NewOutboxEvent(event)
		if err != nil {
			u.log.Error("event envelope failed",
				zap.String("event_type", string(event.Type)),
				zap.Error(err),
			)
			continue
		}
		if err := u.publisher.PublishEvent(ctx, outboxEvent); err != nil {
			u.log.Error("post-commit event publish failed",
				zap.String("event_type", string(event.Type)),
				zap.String("entity_id", event.EntityID.String()),
				zap.Error(err),
			)
		}
	}
}

// User returns the UserRepository for this UnitOfWork.
func (u *UnitOfWork) User() domain.UserRepository {
	return NewUserRepository(u.getRunner(), u.log)
}

// Challenge returns the ChallengeRepository for this UnitOfWork.
func (u *UnitOfWork) Challenge() domain.ChallengeRepository {
	return NewChallengeRepository(u.getRunner(), u.log)
}

// Evaluation returns the EvaluationRepository for this UnitOfWork.
func (u *UnitOfWork) Evaluation() domain.EvaluationRepository {
	return NewEvaluationRepository(u.getRunner(), u.log)
}

// PersonalityProfile returns the PersonalityProfileRepository for this UnitOfWork.
func (u *UnitOfWork) PersonalityProfile() domain.PersonalityProfileRepository {
	return NewPersonalityProfileRepository(u.getRunner(), u.log)
}

// FocusArea returns the FocusAreaRepository for this UnitOfWork.
func (u *UnitOfWork) FocusArea() domain.FocusAreaRepository {
	return NewFocusAreaRepository(u.getRunner(), u.log)
}

// Outbox returns the OutboxRepository for this UnitOfWork.
func (u *UnitOfWork) Outbox() domain.OutboxRepository {
	return NewOutboxRepository(u.getRunner())
}

// getRunner returns the appropriate runner (transaction or DB) for the UnitOfWork.
func (u *UnitOfWork) getRunner() runner {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// InitUnitOfWork is responsible for initializing the UnitOfWork dependency.
type InitUnitOfWork struct {
	DB           *sql.DB                 `resolve:""`
	Publisher    domain.EventPublisher   `resolve:""`
	Invalidator  domain.CacheInvalidator `resolve:""`
	Logger       *zap.Logger             `resolve:""`
	DeliveryMode string                  `config:"EVENT_DELIVERY_MODE" default:"outbox"`
}

// Initialize registers the UnitOfWork in the dependency container.
func (iuw InitUnitOfWork) Initialize(ctx context.Context) (context.Context, error) {
	mode := DeliveryMode(iuw.DeliveryMode)
	if mode != DeliverOutbox && mode != DeliverDirect {
		return ctx, fmt.Errorf("unknown event delivery mode %q", iuw.DeliveryMode)
	}
	depend.Register[domain.UnitOfWork](NewUnitOfWork(iuw.DB, iuw.Publisher, iuw.Invalidator, mode, iuw.Logger))
	return ctx, nil
}
