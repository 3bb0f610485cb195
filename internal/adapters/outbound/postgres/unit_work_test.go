package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	domain_mocks "github.com/evolvehq/evolve-backend/internal/domain/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestUnitOfWork_Execute(t *testing.T) {
	eventID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	tests := map[string]struct {
		setupMock   func(sqlmock.Sqlmock)
		fn          func(uow domain.UnitOfWork) (domain.TxOutcome, error)
		expectedErr string
	}{
		"success-commit": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("DELETE FROM outbox_events WHERE id = $1").
					WithArgs(eventID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
			fn: func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
				return domain.TxOutcome{}, uow.Outbox().DeleteEvent(context.Background(), eventID)
			},
		},
		"rollback-on-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("DELETE FROM outbox_events WHERE id = $1").
					WithArgs(eventID).
					WillReturnError(errors.New("delete error"))
				m.ExpectRollback()
			},
			fn: func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
				return domain.TxOutcome{}, uow.Outbox().DeleteEvent(context.Background(), eventID)
			},
			expectedErr: "delete error",
		},
		"begin-transaction-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin().WillReturnError(errors.New("begin error"))
			},
			fn: func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
				return domain.TxOutcome{}, nil
			},
			expectedErr: "begin error",
		},
		"commit-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("DELETE FROM outbox_events WHERE id = $1").
					WithArgs(eventID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit().WillReturnError(errors.New("commit error"))
			},
			fn: func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
				return domain.TxOutcome{}, uow.Outbox().DeleteEvent(context.Background(), eventID)
			},
			expectedErr: "commit error",
		},
		"rollback-error-with-original-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("DELETE FROM outbox_events WHERE id = $1").
					WithArgs(eventID).
					WillReturnError(errors.New("delete error"))
				m.ExpectRollback().WillReturnError(errors.New("rollback error"))
			},
			fn: func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
				return domain.TxOutcome{}, uow.Outbox().DeleteEvent(context.Background(), eventID)
			},
			expectedErr: "transaction rollback error: rollback error, original error: delete error",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, dbMock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setupMock(dbMock)

			uow := NewUnitOfWork(db, nil, nil, DeliverOutbox, zap.NewNop())
			err = uow.Execute(context.Background(), tt.fn)

			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, dbMock.ExpectationsWereMet())
		})
	}
}

func TestUnitOfWork_Execute_RetriesTransientFailures(t *testing.T) {
	eventID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	db, dbMock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	// first attempt rolls back on a transient failure, second commits
	dbMock.ExpectBegin()
	dbMock.ExpectExec("DELETE FROM outbox_events WHERE id = $1").
		WithArgs(eventID).
		WillReturnError(driver.ErrBadConn)
	dbMock.ExpectRollback()
	dbMock.ExpectBegin()
	dbMock.ExpectExec("DELETE FROM outbox_events WHERE id = $1").
		WithArgs(eventID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectCommit()

	uow := NewUnitOfWork(db, nil, nil, DeliverOutbox, zap.NewNop())
	uow.retry.initialDelay = time.Millisecond

	attempts := 0
	err = uow.Execute(context.Background(), func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
		attempts++
		return domain.TxOutcome{}, uow.Outbox().DeleteEvent(context.Background(), eventID)
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestUnitOfWork_Execute_OutboxModeRecordsEventsInTransaction(t *testing.T) {
	entityID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	db, dbMock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	dbMock.ExpectBegin()
	dbMock.ExpectExec("INSERT INTO outbox_events (id,entity_type,entity_id,topic,event_type,payload,retry_count,max_retries,last_error,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)").
		WithArgs(
			sqlmock.AnyArg(),
			"User",
			entityID,
			"Users",
			"USER.CREATED",
			sqlmock.AnyArg(),
			0,
			5,
			nil,
			fixedTime,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))
	dbMock.ExpectCommit()

	uow := NewUnitOfWork(db, nil, nil, DeliverOutbox, zap.NewNop())
	err = uow.Execute(context.Background(), func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
		return domain.TxOutcome{
			Events: []domain.DomainEvent{
				domain.NewDomainEvent(domain.EventType_USER_CREATED, domain.EntityType_User, entityID, map[string]any{
					"email": "ada@example.com",
				}, fixedTime),
			},
		}, nil
	})

	assert.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestUnitOfWork_Execute_DirectModePublishesAfterCommit(t *testing.T) {
	entityID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	secondID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	db, dbMock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	publisher := domain_mocks.NewMockEventPublisher(t)
	// first publish fails, the second is still attempted and Execute reports success
	publisher.On("PublishEvent", mock.Anything, mock.MatchedBy(func(oe domain.OutboxEvent) bool {
		return oe.EntityID == entityID
	})).Return(errors.New("publish error"))
	publisher.On("PublishEvent", mock.Anything, mock.MatchedBy(func(oe domain.OutboxEvent) bool {
		return oe.EntityID == secondID
	})).Return(nil)

	invalidator := domain_mocks.NewMockCacheInvalidator(t)
	invalidator.On("Invalidate", mock.Anything, domain.EntityType_User, entityID).
		Return(nil)

	uow := NewUnitOfWork(db, publisher, invalidator, DeliverDirect, zap.NewNop())
	err = uow.Execute(context.Background(), func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
		return domain.TxOutcome{
			Events: []domain.DomainEvent{
				domain.NewDomainEvent(domain.EventType_USER_CREATED, domain.EntityType_User, entityID, nil, fixedTime),
				domain.NewDomainEvent(domain.EventType_USER_UPDATED, domain.EntityType_User, secondID, nil, fixedTime),
			},
			Invalidations: []domain.Invalidation{{Entity: domain.EntityType_User, ID: entityID}},
		}, nil
	})

	assert.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestUnitOfWork_Execute_NoHooksWithoutCommit(t *testing.T) {
	entityID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	db, dbMock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	dbMock.ExpectBegin()
	dbMock.ExpectCommit().WillReturnError(errors.New("commit error"))

	// no expectations registered: any publish or invalidate call fails the test
	publisher := domain_mocks.NewMockEventPublisher(t)
	invalidator := domain_mocks.NewMockCacheInvalidator(t)

	uow := NewUnitOfWork(db, publisher, invalidator, DeliverDirect, zap.NewNop())
	err = uow.Execute(context.Background(), func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
		return domain.TxOutcome{
			Events: []domain.DomainEvent{
				domain.NewDomainEvent(domain.EventType_USER_CREATED, domain.EntityType_User, entityID, nil, fixedTime),
			},
			Invalidations: []domain.Invalidation{{Entity: domain.EntityType_User, ID: entityID}},
		}, nil
	})

	assert.EqualError(t, err, "commit error")
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestUnitOfWork_Execute_NilHooksSkipped(t *testing.T) {
	entityID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	db, dbMock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	uow := NewUnitOfWork(db, nil, nil, DeliverDirect, zap.NewNop())
	err = uow.Execute(context.Background(), func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
		return domain.TxOutcome{
			Events: []domain.DomainEvent{
				domain.NewDomainEvent(domain.EventType_USER_CREATED, domain.EntityType_User, entityID, nil, fixedTime),
			},
			Invalidations: []domain.Invalidation{{Entity: domain.EntityType_User, ID: entityID}},
		}, nil
	})

	assert.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestUnitOfWork_Repositories(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	uow := NewUnitOfWork(db, nil, nil, DeliverOutbox, zap.NewNop())

	assert.IsType(t, UserRepository{}, uow.User())
	assert.IsType(t, ChallengeRepository{}, uow.Challenge())
	assert.IsType(t, EvaluationRepository{}, uow.Evaluation())
	assert.IsType(t, PersonalityProfileRepository{}, uow.PersonalityProfile())
	assert.IsType(t, FocusAreaRepository{}, uow.FocusArea())
	assert.IsType(t, OutboxRepository{}, uow.Outbox())
}

func TestUnitOfWork_getRunner(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	t.Run("returns-db-when-no-transaction", func(t *testing.T) {
		uow := NewUnitOfWork(db, nil, nil, DeliverOutbox, zap.NewNop())
		assert.Equal(t, runner(db), uow.getRunner())
	})

	t.Run("returns-tx-when-in-transaction", func(t *testing.T) {
		dbMock.ExpectBegin()

		tx, err := db.Begin()
		assert.NoError(t, err)

		uow := &UnitOfWork{db: db, tx: tx}
		assert.Equal(t, runner(tx), uow.getRunner())

		dbMock.ExpectRollback()
		_ = tx.Rollback()
	})
}

func TestInitUnitOfWork_Initialize(t *testing.T) {
	i := &InitUnitOfWork{
		DB:           &sql.DB{},
		Logger:       zap.NewNop(),
		DeliveryMode: "outbox",
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.UnitOfWork]()
	assert.NoError(t, err)

	bad := &InitUnitOfWork{
		DB:           &sql.DB{},
		Logger:       zap.NewNop(),
		DeliveryMode: "broadcast",
	}
	_, err = bad.Initialize(context.Background())
	assert.EqualError(t, err, `unknown event delivery mode "broadcast"`)
}
