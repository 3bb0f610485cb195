package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/evolvehq/evolve-backend/internal/telemetry"
	"github.com/google/uuid"
)

// CompleteChallenge defines the interface for the CompleteChallenge use case.
type CompleteChallenge interface {
	Execute(ctx context.Context, challengeID uuid.UUID) (domain.Challenge, error)
}

// AbandonChallenge defines the interface for the AbandonChallenge use case.
type AbandonChallenge interface {
	Execute(ctx context.Context, challengeID uuid.UUID) (domain.Challenge, error)
}

// CompleteChallengeImpl is the implementation of the CompleteChallenge use case.
type CompleteChallengeImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewCompleteChallengeImpl creates a new instance of CompleteChallengeImpl.
func NewCompleteChallengeImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) CompleteChallengeImpl {
	return CompleteChallengeImpl{uow: uow, timeProvider: timeProvider}
}

// Execute marks an active challenge as completed.
func (cci CompleteChallengeImpl) Execute(ctx context.Context, challengeID uuid.UUID) (domain.Challenge, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	saved, err := transitionChallenge(spanCtx, cci.uow, challengeID, cci.timeProvider.Now(), domain.Challenge.Complete)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Challenge{}, err
	}
	return saved, nil
}

// AbandonChallengeImpl is the implementation of the AbandonChallenge use case.
type AbandonChallengeImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewAbandonChallengeImpl creates a new instance of AbandonChallengeImpl.
func NewAbandonChallengeImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) AbandonChallengeImpl {
	return AbandonChallengeImpl{uow: uow, timeProvider: timeProvider}
}

// Execute marks an active challenge as abandoned.
func (aci AbandonChallengeImpl) Execute(ctx context.Context, challengeID uuid.UUID) (domain.Challenge, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	saved, err := transitionChallenge(spanCtx, aci.uow, challengeID, aci.timeProvider.Now(), domain.Challenge.Abandon)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Challenge{}, err
	}
	return saved, nil
}

// transitionChallenge loads the challenge, applies the status transition and
// persists the result with its event.
func transitionChallenge(
	ctx context.Context,
	uw domain.UnitOfWork,
	challengeID uuid.UUID,
	now time.Time,
	transition func(domain.Challenge, time.Time) (domain.Challenge, domain.DomainEvent, error),
) (domain.Challenge, error) {
	var saved domain.Challenge
	err := uw.Execute(ctx, func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
		challenge, found, err := uow.Challenge().GetByID(ctx, challengeID)
		if err != nil {
			return domain.TxOutcome{}, err
		}
		if !found {
			return domain.TxOutcome{}, domain.NewNotFoundErr(domain.EntityType_Challenge, "challenge not found")
		}

		updated, event, err := transition(challenge, now)
		if err != nil {
			return domain.TxOutcome{}, err
		}

		saved, err = uow.Challenge().Save(ctx, updated)
		if err != nil {
			return domain.TxOutcome{}, err
		}

		return domain.TxOutcome{
			Events:        []domain.DomainEvent{event},
			Invalidations: []domain.Invalidation{{Entity: domain.EntityType_Challenge, ID: saved.ID}},
		}, nil
	})
	if err != nil {
		return domain.Challenge{}, err
	}
	return saved, nil
}

// InitCompleteChallenge initializes the CompleteChallenge use case.
type InitCompleteChallenge struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the CompleteChallengeImpl use case in the dependency container.
func (icc InitCompleteChallenge) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CompleteChallenge](NewCompleteChallengeImpl(icc.Uow, icc.TimeService))
	return ctx, nil
}

// InitAbandonChallenge initializes the AbandonChallenge use case.
type InitAbandonChallenge struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the AbandonChallengeImpl use case in the dependency container.
func (iac InitAbandonChallenge) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AbandonChallenge](NewAbandonChallengeImpl(iac.Uow, iac.TimeService))
	return ctx, nil
}
