package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ChallengeStatus represents the lifecycle status of a challenge.
type ChallengeStatus string

const (
	// ChallengeStatus_ACTIVE indicates the challenge is in progress.
	ChallengeStatus_ACTIVE ChallengeStatus = "ACTIVE"
	// ChallengeStatus_COMPLETED indicates the challenge was finished.
	ChallengeStatus_COMPLETED ChallengeStatus = "COMPLETED"
	// ChallengeStatus_ABANDONED indicates the challenge was given up.
	ChallengeStatus_ABANDONED ChallengeStatus = "ABANDONED"
)

// Challenge represents a growth challenge assigned to a user.
type Challenge struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	FocusAreaID uuid.UUID // uuid.Nil when the challenge is not tied to a focus area
	Title       string
	Description string
	Difficulty  int
	Status      ChallengeStatus
	DueDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the challenge's fields.
func (c Challenge) Validate() error {
	if c.UserID == uuid.Nil {
		return NewValidationErr(EntityType_Challenge, "user_id cannot be empty")
	}
	if len(c.Title) < 3 || len(c.Title) > 200 {
		return NewValidationErr(EntityType_Challenge, "title must be between 3 and 200 characters")
	}
	if c.Difficulty < 1 || c.Difficulty > 5 {
		return NewValidationErr(EntityType_Challenge, "difficulty must be between 1 and 5")
	}
	if c.Status != ChallengeStatus_ACTIVE && c.Status != ChallengeStatus_COMPLETED && c.Status != ChallengeStatus_ABANDONED {
		return NewValidationErr(EntityType_Challenge, "status must be one of ACTIVE, COMPLETED, ABANDONED")
	}
	if c.DueDate.IsZero() {
		return NewValidationErr(EntityType_Challenge, "due_date cannot be empty")
	}
	return nil
}

// Complete marks the challenge as completed and returns the updated
// aggregate with the resulting event.
func (c Challenge) Complete(now time.Time) (Challenge, DomainEvent, error) {
	if c.Status != ChallengeStatus_ACTIVE {
		return c, DomainEvent{}, NewValidationErr(EntityType_Challenge, "only active challenges can be completed")
	}
	c.Status = ChallengeStatus_COMPLETED
	c.UpdatedAt = now
	event := NewDomainEvent(EventType_CHALLENGE_COMPLETED, EntityType_Challenge, c.ID, map[string]any{
		"user_id": c.UserID.String(),
	}, now)
	return c, event, nil
}

// Abandon marks the challenge as abandoned.
func (c Challenge) Abandon(now time.Time) (Challenge, DomainEvent, error) {
	if c.Status != ChallengeStatus_ACTIVE {
		return c, DomainEvent{}, NewValidationErr(EntityType_Challenge, "only active challenges can be abandoned")
	}
	c.Status = ChallengeStatus_ABANDONED
	c.UpdatedAt = now
	event := NewDomainEvent(EventType_CHALLENGE_ABANDONED, EntityType_Challenge, c.ID, map[string]any{
		"user_id": c.UserID.String(),
	}, now)
	return c, event, nil
}

// Reschedule moves the challenge's due date.
func (c Challenge) Reschedule(dueDate time.Time, now time.Time) (Challenge, DomainEvent) {
	c.DueDate = dueDate
	c.UpdatedAt = now
	event := NewDomainEvent(EventType_CHALLENGE_UPDATED, EntityType_Challenge, c.ID, map[string]any{
		"due_date": dueDate.Format(time.RFC3339),
	}, now)
	return c, event
}

// ChallengeSearch holds the filters and options for searching challenges.
type ChallengeSearch struct {
	UserID      *uuid.UUID
	FocusAreaID *uuid.UUID
	Status      *ChallengeStatus
	DueAfter    *time.Time
	DueBefore   *time.Time
	SortBy      *SortBy
	Page        PageRequest
}

// ChallengeRepository defines the interface for persisting challenges.
type ChallengeRepository interface {
	// Save upserts the challenge and returns the persisted aggregate.
	Save(ctx context.Context, challenge Challenge) (Challenge, error)

	// GetByID retrieves a challenge by its identifier.
	GetByID(ctx context.Context, id uuid.UUID) (Challenge, bool, error)

	// GetByIDs retrieves challenges matching the given identifiers in one
	// query. An empty input short-circuits without a storage call.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Challenge, error)

	// Delete removes the challenge and returns the deleted aggregate.
	// Fails with NotFoundErr before issuing any delete statement when the
	// challenge does not exist.
	Delete(ctx context.Context, id uuid.UUID) (Challenge, error)

	// Search returns a filtered, sorted, paginated page of challenges.
	Search(ctx context.Context, query ChallengeSearch) (SearchResult[Challenge], error)
}
