package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/evolvehq/evolve-backend/internal/telemetry"
	"github.com/google/uuid"
)

// EvolveProfile defines the interface for the EvolveProfile use case.
type EvolveProfile interface {
	Execute(ctx context.Context, userID uuid.UUID, traits map[string]float64, summary string) (domain.PersonalityProfile, error)
}

// EvolveProfileImpl is the implementation of the EvolveProfile use case.
type EvolveProfileImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
	createUUID   func() uuid.UUID
}

// NewEvolveProfileImpl creates a new instance of EvolveProfileImpl.
func NewEvolveProfileImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) EvolveProfileImpl {
	return EvolveProfileImpl{
		uow:          uow,
		timeProvider: timeProvider,
		createUUID:   uuid.New,
	}
}

// Execute merges new trait observations into the user's profile, creating the
// first version when no profile exists yet.
func (epi EvolveProfileImpl) Execute(ctx context.Context, userID uuid.UUID, traits map[string]float64, summary string) (domain.PersonalityProfile, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := epi.timeProvider.Now()

	var saved domain.PersonalityProfile
	err := epi.uow.Execute(spanCtx, func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
		_, found, err := uow.User().GetByID(spanCtx, userID)
		if err != nil {
			return domain.TxOutcome{}, err
		}
		if !found {
			return domain.TxOutcome{}, domain.NewNotFoundErr(domain.EntityType_User, "user not found")
		}

		profile, exists, err := uow.PersonalityProfile().GetByUserID(spanCtx, userID)
		if err != nil {
			return domain.TxOutcome{}, err
		}

		var event domain.DomainEvent
		if exists {
			profile, event = profile.Evolve(traits, summary, now)
		} else {
			profile = domain.PersonalityProfile{
				ID:        epi.createUUID(),
				UserID:    userID,
				Traits:    traits,
				Summary:   summary,
				Version:   1,
				CreatedAt: now,
				UpdatedAt: now,
			}
			event = domain.NewDomainEvent(domain.EventType_PROFILE_UPSERTED, domain.EntityType_PersonalityProfile, profile.ID, map[string]any{
				"user_id": userID.String(),
				"version": 1,
			}, now)
		}
		if err := profile.Validate(); err != nil {
			return domain.TxOutcome{}, err
		}

		saved, err = uow.PersonalityProfile().Save(spanCtx, profile)
		if err != nil {
			return domain.TxOutcome{}, err
		}

		events := domain.EnsureCreationEvent([]domain.DomainEvent{event}, domain.EntityType_PersonalityProfile, saved.ID, !exists, now)
		return domain.TxOutcome{
			Events:        events,
			Invalidations: []domain.Invalidation{{Entity: domain.EntityType_PersonalityProfile, ID: saved.ID}},
		}, nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.PersonalityProfile{}, err
	}

	return saved, nil
}

// InitEvolveProfile initializes the EvolveProfile use case.
type InitEvolveProfile struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the EvolveProfileImpl use case in the dependency container.
func (iep InitEvolveProfile) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[EvolveProfile](NewEvolveProfileImpl(iep.Uow, iep.TimeService))
	return ctx, nil
}
