package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/evolvehq/evolve-backend/internal/telemetry"
	"github.com/google/uuid"
)

// DeleteChallenge defines the interface for the DeleteChallenge use case.
type DeleteChallenge interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

// DeleteChallengeImpl is the implementation of the DeleteChallenge use case.
type DeleteChallengeImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewDeleteChallengeImpl creates a new instance of DeleteChallengeImpl.
func NewDeleteChallengeImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) DeleteChallengeImpl {
	return DeleteChallengeImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute deletes a challenge by its ID.
func (dci DeleteChallengeImpl) Execute(ctx context.Context, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := dci.timeProvider.Now()

	err := dci.uow.Execute(spanCtx, func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
		deleted, err := uow.Challenge().Delete(spanCtx, id)
		if err != nil {
			return domain.TxOutcome{}, err
		}

		return domain.TxOutcome{
			Events: []domain.DomainEvent{
				domain.NewDomainEvent(domain.EventType_CHALLENGE_DELETED, domain.EntityType_Challenge, deleted.ID, map[string]any{
					"user_id": deleted.UserID.String(),
				}, now),
			},
			Invalidations: []domain.Invalidation{{Entity: domain.EntityType_Challenge, ID: deleted.ID}},
		}, nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitDeleteChallenge initializes the DeleteChallenge use case.
type InitDeleteChallenge struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the DeleteChallengeImpl use case in the dependency container.
func (idc InitDeleteChallenge) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeleteChallenge](NewDeleteChallengeImpl(idc.Uow, idc.TimeService))
	return ctx, nil
}
