package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/evolvehq/evolve-backend/internal/telemetry"
	"github.com/google/uuid"
)

// GetUserProgress defines the interface for the GetUserProgress use case.
type GetUserProgress interface {
	Query(ctx context.Context, userID uuid.UUID) (domain.UserProgressSummary, error)
}

// GetUserProgressImpl is the implementation of the GetUserProgress use case.
type GetUserProgressImpl struct {
	userRepo domain.UserRepository
}

// NewGetUserProgressImpl creates a new instance of GetUserProgressImpl.
func NewGetUserProgressImpl(userRepo domain.UserRepository) GetUserProgressImpl {
	return GetUserProgressImpl{userRepo: userRepo}
}

// Query returns the server-side progress aggregation for the given user.
func (gup GetUserProgressImpl) Query(ctx context.Context, userID uuid.UUID) (domain.UserProgressSummary, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, found, err := gup.userRepo.GetByID(spanCtx, userID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.UserProgressSummary{}, err
	}
	if !found {
		err := domain.NewNotFoundErr(domain.EntityType_User, "user not found")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.UserProgressSummary{}, err
	}

	summary, err := gup.userRepo.ProgressSummary(spanCtx, userID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.UserProgressSummary{}, err
	}
	return summary, nil
}

// InitGetUserProgress initializes the GetUserProgress use case.
type InitGetUserProgress struct {
	UserRepo domain.UserRepository `resolve:""`
}

// Initialize registers the GetUserProgressImpl use case in the dependency container.
func (igp InitGetUserProgress) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetUserProgress](NewGetUserProgressImpl(igp.UserRepo))
	return ctx, nil
}
