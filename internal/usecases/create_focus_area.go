package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/evolvehq/evolve-backend/internal/telemetry"
	"github.com/google/uuid"
)

// CreateFocusArea defines the interface for the CreateFocusArea use case.
type CreateFocusArea interface {
	Execute(ctx context.Context, userID uuid.UUID, name, description string, priority int) (domain.FocusArea, error)
}

// CreateFocusAreaImpl is the implementation of the CreateFocusArea use case.
type CreateFocusAreaImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
	createUUID   func() uuid.UUID
}

// NewCreateFocusAreaImpl creates a new instance of CreateFocusAreaImpl.
func NewCreateFocusAreaImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) CreateFocusAreaImpl {
	return CreateFocusAreaImpl{
		uow:          uow,
		timeProvider: timeProvider,
		createUUID:   uuid.New,
	}
}

// Execute creates a new active focus area for a user.
func (cfi CreateFocusAreaImpl) Execute(ctx context.Context, userID uuid.UUID, name, description string, priority int) (domain.FocusArea, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := cfi.timeProvider.Now()
	focusArea := domain.FocusArea{
		ID:          cfi.createUUID(),
		UserID:      userID,
		Name:        name,
		Description: description,
		Priority:    priority,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := focusArea.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.FocusArea{}, err
	}

	var saved domain.FocusArea
	err := cfi.uow.Execute(spanCtx, func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
		_, found, err := uow.User().GetByID(spanCtx, userID)
		if err != nil {
			return domain.TxOutcome{}, err
		}
		if !found {
			return domain.TxOutcome{}, domain.NewNotFoundErr(domain.EntityType_User, "user not found")
		}

		saved, err = uow.FocusArea().Save(spanCtx, focusArea)
		if err != nil {
			return domain.TxOutcome{}, err
		}

		events := []domain.DomainEvent{
			domain.NewDomainEvent(domain.EventType_FOCUS_AREA_CREATED, domain.EntityType_FocusArea, saved.ID, map[string]any{
				"user_id": saved.UserID.String(),
				"name":    saved.Name,
			}, now),
		}
		return domain.TxOutcome{
			Events: domain.EnsureCreationEvent(events, domain.EntityType_FocusArea, saved.ID, true, now),
		}, nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.FocusArea{}, err
	}

	return saved, nil
}

// InitCreateFocusArea initializes the CreateFocusArea use case.
type InitCreateFocusArea struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the CreateFocusAreaImpl use case in the dependency container.
func (icf InitCreateFocusArea) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateFocusArea](NewCreateFocusAreaImpl(icf.Uow, icf.TimeService))
	return ctx, nil
}
