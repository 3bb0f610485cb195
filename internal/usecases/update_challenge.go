package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/evolvehq/evolve-backend/internal/telemetry"
	"github.com/google/uuid"
)

// UpdateChallenge defines the interface for the UpdateChallenge use case.
type UpdateChallenge interface {
	Execute(ctx context.Context, id uuid.UUID, title, description *string, difficulty *int, dueDate *time.Time) (domain.Challenge, error)
}

// UpdateChallengeImpl is the implementation of the UpdateChallenge use case.
type UpdateChallengeImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewUpdateChallengeImpl creates a new instance of UpdateChallengeImpl.
func NewUpdateChallengeImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) UpdateChallengeImpl {
	return UpdateChallengeImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute updates an existing challenge with the provided fields. Only active
// challenges can be updated.
func (uci UpdateChallengeImpl) Execute(ctx context.Context, id uuid.UUID, title, description *string, difficulty *int, dueDate *time.Time) (domain.Challenge, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := uci.timeProvider.Now()

	var saved domain.Challenge
	err := uci.uow.Execute(spanCtx, func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
		challenge, found, err := uow.Challenge().GetByID(spanCtx, id)
		if err != nil {
			return domain.TxOutcome{}, err
		}
		if !found {
			return domain.TxOutcome{}, domain.NewNotFoundErr(domain.EntityType_Challenge, "challenge not found")
		}
		if challenge.Status != domain.ChallengeStatus_ACTIVE {
			return domain.TxOutcome{}, domain.NewValidationErr(domain.EntityType_Challenge, "only active challenges can be updated")
		}

		events := make([]domain.DomainEvent, 0, 2)
		if title != nil {
			challenge.Title = *title
		}
		if description != nil {
			challenge.Description = *description
		}
		if difficulty != nil {
			challenge.Difficulty = *difficulty
		}
		if dueDate != nil {
			var event domain.DomainEvent
			challenge, event = challenge.Reschedule(*dueDate, now)
			events = append(events, event)
		}
		challenge.UpdatedAt = now

		if err := challenge.Validate(); err != nil {
			return domain.TxOutcome{}, err
		}

		saved, err = uow.Challenge().Save(spanCtx, challenge)
		if err != nil {
			return domain.TxOutcome{}, err
		}

		if len(events) == 0 {
			events = append(events, domain.NewDomainEvent(domain.EventType_CHALLENGE_UPDATED, domain.EntityType_Challenge, saved.ID, map[string]any{
				"title": saved.Title,
			}, now))
		}

		return domain.TxOutcome{
			Events:        events,
			Invalidations: []domain.Invalidation{{Entity: domain.EntityType_Challenge, ID: saved.ID}},
		}, nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Challenge{}, err
	}

	return saved, nil
}

// InitUpdateChallenge initializes the UpdateChallenge use case.
type InitUpdateChallenge struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the UpdateChallengeImpl use case in the dependency container.
func (iuc InitUpdateChallenge) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UpdateChallenge](NewUpdateChallengeImpl(iuc.Uow, iuc.TimeService))
	return ctx, nil
}
