package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/evolvehq/evolve-backend/internal/telemetry"
	"github.com/google/uuid"
)

// DeleteUser defines the interface for the DeleteUser use case.
type DeleteUser interface {
	Execute(ctx context.Context, userID uuid.UUID) error
}

// DeleteUserImpl is the implementation of the DeleteUser use case.
type DeleteUserImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewDeleteUserImpl creates a new instance of DeleteUserImpl.
func NewDeleteUserImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) DeleteUserImpl {
	return DeleteUserImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute deletes a user. The dependent rows cascade at the storage level; the
// deletion event carries the user's email for downstream consumers.
func (dui DeleteUserImpl) Execute(ctx context.Context, userID uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := dui.timeProvider.Now()

	err := dui.uow.Execute(spanCtx, func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
		deleted, err := uow.User().Delete(spanCtx, userID)
		if err != nil {
			return domain.TxOutcome{}, err
		}

		return domain.TxOutcome{
			Events: []domain.DomainEvent{
				domain.NewDomainEvent(domain.EventType_USER_DELETED, domain.EntityType_User, deleted.ID, map[string]any{
					"email": deleted.Email,
				}, now),
			},
			Invalidations: []domain.Invalidation{{Entity: domain.EntityType_User, ID: deleted.ID}},
		}, nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitDeleteUser initializes the DeleteUser use case.
type InitDeleteUser struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the DeleteUserImpl use case in the dependency container.
func (idu InitDeleteUser) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeleteUser](NewDeleteUserImpl(idu.Uow, idu.TimeService))
	return ctx, nil
}
