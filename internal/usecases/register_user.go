package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/evolvehq/evolve-backend/internal/telemetry"
	"github.com/google/uuid"
)

// RegisterUser defines the interface for the RegisterUser use case.
type RegisterUser interface {
	Execute(ctx context.Context, email, displayName, timezone string) (domain.User, error)
}

// RegisterUserImpl is the implementation of the RegisterUser use case.
type RegisterUserImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
	createUUID   func() uuid.UUID
}

// NewRegisterUserImpl creates a new instance of RegisterUserImpl.
func NewRegisterUserImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) RegisterUserImpl {
	return RegisterUserImpl{
		uow:          uow,
		timeProvider: timeProvider,
		createUUID:   uuid.New,
	}
}

// Execute registers a new user. Email addresses are unique across users.
func (rui RegisterUserImpl) Execute(ctx context.Context, email, displayName, timezone string) (domain.User, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := rui.timeProvider.Now()
	user := domain.User{
		ID:          rui.createUUID(),
		Email:       email,
		DisplayName: displayName,
		Timezone:    timezone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := user.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}

	var saved domain.User
	err := rui.uow.Execute(spanCtx, func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
		_, exists, err := uow.User().GetByEmail(spanCtx, email)
		if err != nil {
			return domain.TxOutcome{}, err
		}
		if exists {
			return domain.TxOutcome{}, domain.NewValidationErr(domain.EntityType_User, "email is already registered")
		}

		saved, err = uow.User().Save(spanCtx, user)
		if err != nil {
			return domain.TxOutcome{}, err
		}

		events := []domain.DomainEvent{
			domain.NewDomainEvent(domain.EventType_USER_CREATED, domain.EntityType_User, saved.ID, map[string]any{
				"email": saved.Email,
			}, now),
		}
		return domain.TxOutcome{
			Events: domain.EnsureCreationEvent(events, domain.EntityType_User, saved.ID, true, now),
		}, nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}

	return saved, nil
}

// InitRegisterUser initializes the RegisterUser use case and registers it in the dependency container.
type InitRegisterUser struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the RegisterUserImpl use case in the dependency container.
func (iru InitRegisterUser) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RegisterUser](NewRegisterUserImpl(iru.Uow, iru.TimeService))
	return ctx, nil
}
