package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Evaluation represents a scored review of a user's completed challenge.
type Evaluation struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ChallengeID  uuid.UUID
	Score        int
	Strengths    []string
	Improvements []string
	Summary      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the evaluation's fields.
func (e Evaluation) Validate() error {
	if e.UserID == uuid.Nil {
		return NewValidationErr(EntityType_Evaluation, "user_id cannot be empty")
	}
	if e.ChallengeID == uuid.Nil {
		return NewValidationErr(EntityType_Evaluation, "challenge_id cannot be empty")
	}
	if e.Score < 0 || e.Score > 100 {
		return NewValidationErr(EntityType_Evaluation, "score must be between 0 and 100")
	}
	if e.Summary == "" {
		return NewValidationErr(EntityType_Evaluation, "summary cannot be empty")
	}
	return nil
}

// Revise replaces the evaluation's score and summary.
func (e Evaluation) Revise(score int, summary string, now time.Time) (Evaluation, DomainEvent) {
	e.Score = score
	e.Summary = summary
	e.UpdatedAt = now
	event := NewDomainEvent(EventType_EVALUATION_UPDATED, EntityType_Evaluation, e.ID, map[string]any{
		"challenge_id": e.ChallengeID.String(),
		"score":        score,
	}, now)
	return e, event
}

// EvaluationSearch holds the filters and options for searching evaluations.
type EvaluationSearch struct {
	UserID      *uuid.UUID
	ChallengeID *uuid.UUID
	MinScore    *int
	MaxScore    *int
	SortBy      *SortBy
	Page        PageRequest
}

// EvaluationRepository defines the interface for persisting evaluations.
type EvaluationRepository interface {
	// Save upserts the evaluation and returns the persisted aggregate.
	Save(ctx context.Context, evaluation Evaluation) (Evaluation, error)

	// GetByID retrieves an evaluation by its identifier.
	GetByID(ctx context.Context, id uuid.UUID) (Evaluation, bool, error)

	// GetByIDs retrieves evaluations matching the given identifiers in one
	// query. An empty input short-circuits without a storage call.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Evaluation, error)

	// Delete removes the evaluation and returns the deleted aggregate.
	Delete(ctx context.Context, id uuid.UUID) (Evaluation, error)

	// Search returns a filtered, sorted, paginated page of evaluations.
	Search(ctx context.Context, query EvaluationSearch) (SearchResult[Evaluation], error)
}
