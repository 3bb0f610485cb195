package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/evolvehq/evolve-backend/internal/telemetry"
	"github.com/google/uuid"
)

// RecordEvaluationParams holds the input for recording an evaluation.
type RecordEvaluationParams struct {
	ChallengeID  uuid.UUID
	Score        int
	Strengths    []string
	Improvements []string
	Summary      string
}

// RecordEvaluation defines the interface for the RecordEvaluation use case.
type RecordEvaluation interface {
	Execute(ctx context.Context, params RecordEvaluationParams) (domain.Evaluation, error)
}

// RecordEvaluationImpl is the implementation of the RecordEvaluation use case.
type RecordEvaluationImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
	createUUID   func() uuid.UUID
}

// NewRecordEvaluationImpl creates a new instance of RecordEvaluationImpl.
func NewRecordEvaluationImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) RecordEvaluationImpl {
	return RecordEvaluationImpl{
		uow:          uow,
		timeProvider: timeProvider,
		createUUID:   uuid.New,
	}
}

// Execute records a scored evaluation for a completed challenge.
func (rei RecordEvaluationImpl) Execute(ctx context.Context, params RecordEvaluationParams) (domain.Evaluation, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := rei.timeProvider.Now()

	var saved domain.Evaluation
	err := rei.uow.Execute(spanCtx, func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
		challenge, found, err := uow.Challenge().GetByID(spanCtx, params.ChallengeID)
		if err != nil {
			return domain.TxOutcome{}, err
		}
		if !found {
			return domain.TxOutcome{}, domain.NewNotFoundErr(domain.EntityType_Challenge, "challenge not found")
		}
		if challenge.Status != domain.ChallengeStatus_COMPLETED {
			return domain.TxOutcome{}, domain.NewValidationErr(domain.EntityType_Evaluation, "only completed challenges can be evaluated")
		}

		evaluation := domain.Evaluation{
			ID:           rei.createUUID(),
			UserID:       challenge.UserID,
			ChallengeID:  challenge.ID,
			Score:        params.Score,
			Strengths:    params.Strengths,
			Improvements: params.Improvements,
			Summary:      params.Summary,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := evaluation.Validate(); err != nil {
			return domain.TxOutcome{}, err
		}

		saved, err = uow.Evaluation().Save(spanCtx, evaluation)
		if err != nil {
			return domain.TxOutcome{}, err
		}

		events := []domain.DomainEvent{
			domain.NewDomainEvent(domain.EventType_EVALUATION_RECORDED, domain.EntityType_Evaluation, saved.ID, map[string]any{
				"challenge_id": saved.ChallengeID.String(),
				"score":        saved.Score,
			}, now),
		}
		return domain.TxOutcome{
			Events: domain.EnsureCreationEvent(events, domain.EntityType_Evaluation, saved.ID, true, now),
		}, nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Evaluation{}, err
	}

	return saved, nil
}

// InitRecordEvaluation initializes the RecordEvaluation use case.
type InitRecordEvaluation struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the RecordEvaluationImpl use case in the dependency container.
func (ire InitRecordEvaluation) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RecordEvaluation](NewRecordEvaluationImpl(ire.Uow, ire.TimeService))
	return ctx, nil
}
