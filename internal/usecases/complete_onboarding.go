package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/evolvehq/evolve-backend/internal/telemetry"
	"github.com/google/uuid"
)

// CompleteOnboarding defines the interface for the CompleteOnboarding use case.
type CompleteOnboarding interface {
	Execute(ctx context.Context, userID uuid.UUID) (domain.User, error)
}

// CompleteOnboardingImpl is the implementation of the CompleteOnboarding use case.
type CompleteOnboardingImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewCompleteOnboardingImpl creates a new instance of CompleteOnboardingImpl.
func NewCompleteOnboardingImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) CompleteOnboardingImpl {
	return CompleteOnboardingImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute marks the user's onboarding as finished.
func (coi CompleteOnboardingImpl) Execute(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := coi.timeProvider.Now()

	var saved domain.User
	err := coi.uow.Execute(spanCtx, func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
		user, found, err := uow.User().GetByID(spanCtx, userID)
		if err != nil {
			return domain.TxOutcome{}, err
		}
		if !found {
			return domain.TxOutcome{}, domain.NewNotFoundErr(domain.EntityType_User, "user not found")
		}

		updated, event := user.CompleteOnboarding(now)
		saved, err = uow.User().Save(spanCtx, updated)
		if err != nil {
			return domain.TxOutcome{}, err
		}

		return domain.TxOutcome{
			Events:        []domain.DomainEvent{event},
			Invalidations: []domain.Invalidation{{Entity: domain.EntityType_User, ID: saved.ID}},
		}, nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}

	return saved, nil
}

// InitCompleteOnboarding initializes the CompleteOnboarding use case.
type InitCompleteOnboarding struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the CompleteOnboardingImpl use case in the dependency container.
func (ico InitCompleteOnboarding) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CompleteOnboarding](NewCompleteOnboardingImpl(ico.Uow, ico.TimeService))
	return ctx, nil
}
