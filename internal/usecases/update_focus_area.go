package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/evolvehq/evolve-backend/internal/telemetry"
	"github.com/google/uuid"
)

// UpdateFocusArea defines the interface for the UpdateFocusArea use case.
type UpdateFocusArea interface {
	Execute(ctx context.Context, id uuid.UUID, priority *int, deactivate bool) (domain.FocusArea, error)
}

// UpdateFocusAreaImpl is the implementation of the UpdateFocusArea use case.
type UpdateFocusAreaImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewUpdateFocusAreaImpl creates a new instance of UpdateFocusAreaImpl.
func NewUpdateFocusAreaImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) UpdateFocusAreaImpl {
	return UpdateFocusAreaImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute reprioritizes and/or deactivates a focus area.
func (ufi UpdateFocusAreaImpl) Execute(ctx context.Context, id uuid.UUID, priority *int, deactivate bool) (domain.FocusArea, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := ufi.timeProvider.Now()

	var saved domain.FocusArea
	err := ufi.uow.Execute(spanCtx, func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
		focusArea, found, err := uow.FocusArea().GetByID(spanCtx, id)
		if err != nil {
			return domain.TxOutcome{}, err
		}
		if !found {
			return domain.TxOutcome{}, domain.NewNotFoundErr(domain.EntityType_FocusArea, "focus area not found")
		}

		events := make([]domain.DomainEvent, 0, 2)
		if priority != nil {
			var event domain.DomainEvent
			focusArea, event = focusArea.Reprioritize(*priority, now)
			events = append(events, event)
		}
		if deactivate {
			var event domain.DomainEvent
			focusArea, event, err = focusArea.Deactivate(now)
			if err != nil {
				return domain.TxOutcome{}, err
			}
			events = append(events, event)
		}
		if len(events) == 0 {
			return domain.TxOutcome{}, domain.NewValidationErr(domain.EntityType_FocusArea, "nothing to update")
		}

		if err := focusArea.Validate(); err != nil {
			return domain.TxOutcome{}, err
		}

		saved, err = uow.FocusArea().Save(spanCtx, focusArea)
		if err != nil {
			return domain.TxOutcome{}, err
		}

		return domain.TxOutcome{
			Events:        events,
			Invalidations: []domain.Invalidation{{Entity: domain.EntityType_FocusArea, ID: saved.ID}},
		}, nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.FocusArea{}, err
	}

	return saved, nil
}

// InitUpdateFocusArea initializes the UpdateFocusArea use case.
type InitUpdateFocusArea struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the UpdateFocusAreaImpl use case in the dependency container.
func (iuf InitUpdateFocusArea) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UpdateFocusArea](NewUpdateFocusAreaImpl(iuf.Uow, iuf.TimeService))
	return ctx, nil
}
