package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/evolvehq/evolve-backend/internal/telemetry"
	"github.com/google/uuid"
)

// CreateChallengeParams holds the input for creating a challenge.
type CreateChallengeParams struct {
	UserID      uuid.UUID
	FocusAreaID uuid.UUID // uuid.Nil when the challenge is standalone
	Title       string
	Description string
	Difficulty  int
	DueDate     time.Time
}

// CreateChallenge defines the interface for the CreateChallenge use case.
type CreateChallenge interface {
	Execute(ctx context.Context, params CreateChallengeParams) (domain.Challenge, error)
}

// CreateChallengeImpl is the implementation of the CreateChallenge use case.
type CreateChallengeImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
	createUUID   func() uuid.UUID
}

// NewCreateChallengeImpl creates a new instance of CreateChallengeImpl.
func NewCreateChallengeImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) CreateChallengeImpl {
	return CreateChallengeImpl{
		uow:          uow,
		timeProvider: timeProvider,
		createUUID:   uuid.New,
	}
}

// Execute creates a new active challenge for a user. When a focus area is
// given it must exist, belong to the same user and still be active.
func (cci CreateChallengeImpl) Execute(ctx context.Context, params CreateChallengeParams) (domain.Challenge, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := cci.timeProvider.Now()
	challenge := domain.Challenge{
		ID:          cci.createUUID(),
		UserID:      params.UserID,
		FocusAreaID: params.FocusAreaID,
		Title:       params.Title,
		Description: params.Description,
		Difficulty:  params.Difficulty,
		Status:      domain.ChallengeStatus_ACTIVE,
		DueDate:     params.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := challenge.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Challenge{}, err
	}
	if challenge.DueDate.Before(now) {
		err := domain.NewValidationErr(domain.EntityType_Challenge, "due_date cannot be in the past")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Challenge{}, err
	}

	var saved domain.Challenge
	err := cci.uow.Execute(spanCtx, func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
		_, found, err := uow.User().GetByID(spanCtx, params.UserID)
		if err != nil {
			return domain.TxOutcome{}, err
		}
		if !found {
			return domain.TxOutcome{}, domain.NewNotFoundErr(domain.EntityType_User, "user not found")
		}

		if params.FocusAreaID != uuid.Nil {
			focusArea, found, err := uow.FocusArea().GetByID(spanCtx, params.FocusAreaID)
			if err != nil {
				return domain.TxOutcome{}, err
			}
			if !found {
				return domain.TxOutcome{}, domain.NewNotFoundErr(domain.EntityType_FocusArea, "focus area not found")
			}
			if focusArea.UserID != params.UserID {
				return domain.TxOutcome{}, domain.NewValidationErr(domain.EntityType_Challenge, "focus area belongs to another user")
			}
			if !focusArea.Active {
				return domain.TxOutcome{}, domain.NewValidationErr(domain.EntityType_Challenge, "focus area is inactive")
			}
		}

		saved, err = uow.Challenge().Save(spanCtx, challenge)
		if err != nil {
			return domain.TxOutcome{}, err
		}

		events := []domain.DomainEvent{
			domain.NewDomainEvent(domain.EventType_CHALLENGE_CREATED, domain.EntityType_Challenge, saved.ID, map[string]any{
				"user_id": saved.UserID.String(),
				"title":   saved.Title,
			}, now),
		}
		return domain.TxOutcome{
			Events: domain.EnsureCreationEvent(events, domain.EntityType_Challenge, saved.ID, true, now),
		}, nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Challenge{}, err
	}

	return saved, nil
}

// InitCreateChallenge initializes the CreateChallenge use case.
type InitCreateChallenge struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the CreateChallengeImpl use case in the dependency container.
func (icc InitCreateChallenge) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateChallenge](NewCreateChallengeImpl(icc.Uow, icc.TimeService))
	return ctx, nil
}
