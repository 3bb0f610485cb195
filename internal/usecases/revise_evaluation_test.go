package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/evolvehq/evolve-backend/internal/domain"
	domain_mocks "github.com/evolvehq/evolve-backend/internal/domain/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReviseEvaluationImpl_Execute(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	evaluation := domain.Evaluation{
		ID:          uuid.MustParse("423e4567-e89b-12d3-a456-426614174000"),
		UserID:      uuid.MustParse("223e4567-e89b-12d3-a456-426614174000"),
		ChallengeID: uuid.MustParse("323e4567-e89b-12d3-a456-426614174000"),
		Score:       70,
		Summary:     "Solid effort, inconsistent pacing",
		CreatedAt:   fixedTime.Add(-24 * time.Hour),
		UpdatedAt:   fixedTime.Add(-24 * time.Hour),
	}
	revised, _ := evaluation.Revise(90, "Strong finish after the first week", fixedTime)

	tests := map[string]struct {
		score           int
		summary         string
		setExpectations func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider)
		expected        domain.Evaluation
		expectedErr     error
	}{
		"success": {
			score:   90,
			summary: "Strong finish after the first week",
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)

				repo := domain_mocks.NewMockEvaluationRepository(t)
				uow.On("Evaluation").Return(repo)
				uow.Passthrough()

				repo.On("GetByID", mock.Anything, evaluation.ID).Return(evaluation, true, nil)
				repo.On("Save", mock.Anything, revised).Return(revised, nil)
			},
			expected:    revised,
			expectedErr: nil,
		},
		"evaluation-not-found": {
			score:   90,
			summary: "Strong finish after the first week",
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)

				repo := domain_mocks.NewMockEvaluationRepository(t)
				uow.On("Evaluation").Return(repo)
				uow.Passthrough()

				repo.On("GetByID", mock.Anything, evaluation.ID).Return(domain.Evaluation{}, false, nil)
			},
			expected:    domain.Evaluation{},
			expectedErr: domain.NewNotFoundErr(domain.EntityType_Evaluation, "evaluation not found"),
		},
		"validation-error-score": {
			score:   101,
			summary: "Strong finish after the first week",
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)

				repo := domain_mocks.NewMockEvaluationRepository(t)
				uow.On("Evaluation").Return(repo)
				uow.Passthrough()

				repo.On("GetByID", mock.Anything, evaluation.ID).Return(evaluation, true, nil)
			},
			expected:    domain.Evaluation{},
			expectedErr: domain.NewValidationErr(domain.EntityType_Evaluation, "score must be between 0 and 100"),
		},
		"repository-error": {
			score:   90,
			summary: "Strong finish after the first week",
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)

				repo := domain_mocks.NewMockEvaluationRepository(t)
				uow.On("Evaluation").Return(repo)
				uow.Passthrough()

				repo.On("GetByID", mock.Anything, evaluation.ID).Return(evaluation, true, nil)
				repo.On("Save", mock.Anything, revised).Return(domain.Evaluation{}, errors.New("database error"))
			},
			expected:    domain.Evaluation{},
			expectedErr: errors.New("database error"),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain_mocks.NewMockUnitOfWork(t)
			timeProvider := domain_mocks.NewMockCurrentTimeProvider(t)
			tt.setExpectations(uow, timeProvider)

			rei := NewReviseEvaluationImpl(uow, timeProvider)

			got, gotErr := rei.Execute(context.Background(), evaluation.ID, tt.score, tt.summary)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInitReviseEvaluation_Initialize(t *testing.T) {
	ire := InitReviseEvaluation{}

	_, err := ire.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[ReviseEvaluation]()
	assert.NoError(t, err)
}
