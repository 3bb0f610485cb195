package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/evolvehq/evolve-backend/internal/telemetry"
	"github.com/google/uuid"
)

// GetProfile defines the interface for the GetProfile use case.
type GetProfile interface {
	Query(ctx context.Context, userID uuid.UUID) (domain.PersonalityProfile, error)
}

// GetProfileImpl is the implementation of the GetProfile use case.
type GetProfileImpl struct {
	profileRepo domain.PersonalityProfileRepository
}

// NewGetProfileImpl creates a new instance of GetProfileImpl.
func NewGetProfileImpl(profileRepo domain.PersonalityProfileRepository) GetProfileImpl {
	return GetProfileImpl{profileRepo: profileRepo}
}

// Query retrieves the personality profile belonging to the given user.
func (gpi GetProfileImpl) Query(ctx context.Context, userID uuid.UUID) (domain.PersonalityProfile, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	profile, found, err := gpi.profileRepo.GetByUserID(spanCtx, userID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.PersonalityProfile{}, err
	}
	if !found {
		err := domain.NewNotFoundErr(domain.EntityType_PersonalityProfile, "personality profile not found")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.PersonalityProfile{}, err
	}
	return profile, nil
}

// InitGetProfile initializes the GetProfile use case.
type InitGetProfile struct {
	ProfileRepo domain.PersonalityProfileRepository `resolve:""`
}

// Initialize registers the GetProfileImpl use case in the dependency container.
func (igp InitGetProfile) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetProfile](NewGetProfileImpl(igp.ProfileRepo))
	return ctx, nil
}
