package domain

import (
	"context"

	"github.com/google/uuid"
)

// Invalidation names one cache entry to drop after a successful commit.
type Invalidation struct {
	Entity EntityType
	ID     uuid.UUID
}

// TxOutcome is the value a unit of work hands back to the transaction
// runner. Events are published and cache entries invalidated if and only if
// the surrounding transaction commits, in the order they appear here.
type TxOutcome struct {
	Events        []DomainEvent
	Invalidations []Invalidation
}

// UnitOfWork represents a unit of work for managing repositories and transactions.
type UnitOfWork interface {
	// User returns the repository for managing users.
	User() UserRepository
	// Challenge returns the repository for managing challenges.
	Challenge() ChallengeRepository
	// Evaluation returns the repository for managing evaluations.
	Evaluation() EvaluationRepository
	// PersonalityProfile returns the repository for managing personality profiles.
	PersonalityProfile() PersonalityProfileRepository
	// FocusArea returns the repository for managing focus areas.
	FocusArea() FocusAreaRepository
	// Outbox returns the repository for managing outbox events.
	Outbox() OutboxRepository

	// Execute runs a function within the context of a unit of work. The
	// function's TxOutcome is acted on only after a successful commit: cache
	// invalidations run first, then events are published sequentially in
	// insertion order. Post-commit failures are logged and never surface to
	// the caller; a committed write is always reported as success. If the
	// function returns an error the transaction rolls back and the error
	// propagates untouched.
	Execute(ctx context.Context, fn func(uow UnitOfWork) (TxOutcome, error)) error
}
