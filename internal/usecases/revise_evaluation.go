package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/evolvehq/evolve-backend/internal/telemetry"
	"github.com/google/uuid"
)

// ReviseEvaluation defines the interface for the ReviseEvaluation use case.
type ReviseEvaluation interface {
	Execute(ctx context.Context, id uuid.UUID, score int, summary string) (domain.Evaluation, error)
}

// ReviseEvaluationImpl is the implementation of the ReviseEvaluation use case.
type ReviseEvaluationImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewReviseEvaluationImpl creates a new instance of ReviseEvaluationImpl.
func NewReviseEvaluationImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) ReviseEvaluationImpl {
	return ReviseEvaluationImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute replaces an evaluation's score and summary.
func (rei ReviseEvaluationImpl) Execute(ctx context.Context, id uuid.UUID, score int, summary string) (domain.Evaluation, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := rei.timeProvider.Now()

	var saved domain.Evaluation
	err := rei.uow.Execute(spanCtx, func(uow domain.UnitOfWork) (domain.TxOutcome, error) {
		evaluation, found, err := uow.Evaluation().GetByID(spanCtx, id)
		if err != nil {
			return domain.TxOutcome{}, err
		}
		if !found {
			return domain.TxOutcome{}, domain.NewNotFoundErr(domain.EntityType_Evaluation, "evaluation not found")
		}

		revised, event := evaluation.Revise(score, summary, now)
		if err := revised.Validate(); err != nil {
			return domain.TxOutcome{}, err
		}

		saved, err = uow.Evaluation().Save(spanCtx, revised)
		if err != nil {
			return domain.TxOutcome{}, err
		}

		return domain.TxOutcome{
			Events:        []domain.DomainEvent{event},
			Invalidations: []domain.Invalidation{{Entity: domain.EntityType_Evaluation, ID: saved.ID}},
		}, nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Evaluation{}, err
	}

	return saved, nil
}

// InitReviseEvaluation initializes the ReviseEvaluation use case.
type InitReviseEvaluation struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the ReviseEvaluationImpl use case in the dependency container.
func (ire InitReviseEvaluation) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ReviseEvaluation](NewReviseEvaluationImpl(ire.Uow, ire.TimeService))
	return ctx, nil
}
