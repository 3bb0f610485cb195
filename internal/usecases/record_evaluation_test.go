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

func TestRecordEvaluationImpl_Execute(t *testing.T) {
	fixedUUID := func() uuid.UUID {
		return uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	}
	challengeID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	userID := uuid.MustParse("323e4567-e89b-12d3-a456-426614174000")
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	completedChallenge := domain.Challenge{
		ID:         challengeID,
		UserID:     userID,
		Title:      "Daily journaling",
		Difficulty: 2,
		Status:     domain.ChallengeStatus_COMPLETED,
		DueDate:    fixedTime,
	}
	evaluation := domain.Evaluation{
		ID:           fixedUUID(),
		UserID:       userID,
		ChallengeID:  challengeID,
		Score:        85,
		Strengths:    []string{"consistency"},
		Improvements: []string{"depth"},
		Summary:      "Strong week overall",
		CreatedAt:    fixedTime,
		UpdatedAt:    fixedTime,
	}
	params := RecordEvaluationParams{
		ChallengeID:  challengeID,
		Score:        85,
		Strengths:    []string{"consistency"},
		Improvements: []string{"depth"},
		Summary:      "Strong week overall",
	}

	tests := map[string]struct {
		setExpectations    func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider)
		params             RecordEvaluationParams
		expectedEvaluation domain.Evaluation
		expectedErr        error
	}{
		"success": {
			params: params,
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)

				challengeRepo := domain_mocks.NewMockChallengeRepository(t)
				evaluationRepo := domain_mocks.NewMockEvaluationRepository(t)
				uow.On("Challenge").Return(challengeRepo)
				uow.On("Evaluation").Return(evaluationRepo)
				uow.Passthrough()

				challengeRepo.On("GetByID", mock.Anything, challengeID).
					Return(completedChallenge, true, nil)
				evaluationRepo.On("Save", mock.Anything, evaluation).
					Return(evaluation, nil)
			},
			expectedEvaluation: evaluation,
			expectedErr:        nil,
		},
		"challenge-not-found": {
			params: params,
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)

				challengeRepo := domain_mocks.NewMockChallengeRepository(t)
				uow.On("Challenge").Return(challengeRepo)
				uow.Passthrough()

				challengeRepo.On("GetByID", mock.Anything, challengeID).
					Return(domain.Challenge{}, false, nil)
			},
			expectedEvaluation: domain.Evaluation{},
			expectedErr:        domain.NewNotFoundErr(domain.EntityType_Challenge, "challenge not found"),
		},
		"challenge-still-active": {
			params: params,
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)

				challengeRepo := domain_mocks.NewMockChallengeRepository(t)
				uow.On("Challenge").Return(challengeRepo)
				uow.Passthrough()

				activeChallenge := completedChallenge
				activeChallenge.Status = domain.ChallengeStatus_ACTIVE
				challengeRepo.On("GetByID", mock.Anything, challengeID).
					Return(activeChallenge, true, nil)
			},
			expectedEvaluation: domain.Evaluation{},
			expectedErr:        domain.NewValidationErr(domain.EntityType_Evaluation, "only completed challenges can be evaluated"),
		},
		"validation-error-score": {
			params: RecordEvaluationParams{
				ChallengeID: challengeID,
				Score:       101,
				Summary:     "Strong week overall",
			},
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)

				challengeRepo := domain_mocks.NewMockChallengeRepository(t)
				uow.On("Challenge").Return(challengeRepo)
				uow.Passthrough()

				challengeRepo.On("GetByID", mock.Anything, challengeID).
					Return(completedChallenge, true, nil)
			},
			expectedEvaluation: domain.Evaluation{},
			expectedErr:        domain.NewValidationErr(domain.EntityType_Evaluation, "score must be between 0 and 100"),
		},
		"repository-error": {
			params: params,
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)

				challengeRepo := domain_mocks.NewMockChallengeRepository(t)
				evaluationRepo := domain_mocks.NewMockEvaluationRepository(t)
				uow.On("Challenge").Return(challengeRepo)
				uow.On("Evaluation").Return(evaluationRepo)
				uow.Passthrough()

				challengeRepo.On("GetByID", mock.Anything, challengeID).
					Return(completedChallenge, true, nil)
				evaluationRepo.On("Save", mock.Anything, evaluation).
					Return(domain.Evaluation{}, errors.New("database error"))
			},
			expectedEvaluation: domain.Evaluation{},
			expectedErr:        errors.New("database error"),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain_mocks.NewMockUnitOfWork(t)
			timeProvider := domain_mocks.NewMockCurrentTimeProvider(t)
			if tt.setExpectations != nil {
				tt.setExpectations(uow, timeProvider)
			}

			rei := NewRecordEvaluationImpl(uow, timeProvider)
			rei.createUUID = fixedUUID

			got, gotErr := rei.Execute(context.Background(), tt.params)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedEvaluation, got)
		})
	}
}

func TestInitRecordEvaluation_Initialize(t *testing.T) {
	ire := InitRecordEvaluation{}

	ctx, err := ire.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[RecordEvaluation]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
