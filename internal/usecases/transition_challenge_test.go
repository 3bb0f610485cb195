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

func TestCompleteChallengeImpl_Execute(t *testing.T) {
	challengeID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	userID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	active := domain.Challenge{
		ID:         challengeID,
		UserID:     userID,
		Title:      "Daily journaling",
		Difficulty: 2,
		Status:     domain.ChallengeStatus_ACTIVE,
		DueDate:    fixedTime.Add(24 * time.Hour),
		CreatedAt:  fixedTime.Add(-24 * time.Hour),
		UpdatedAt:  fixedTime.Add(-24 * time.Hour),
	}
	completed := active
	completed.Status = domain.ChallengeStatus_COMPLETED
	completed.UpdatedAt = fixedTime

	tests := map[string]struct {
		setExpectations   func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider)
		expectedChallenge domain.Challenge
		expectedErr       error
	}{
		"success": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)

				repo := domain_mocks.NewMockChallengeRepository(t)
				uow.On("Challenge").Return(repo)
				uow.Passthrough()

				repo.On("GetByID", mock.Anything, challengeID).
					Return(active, true, nil)
				repo.On("Save", mock.Anything, completed).
					Return(completed, nil)
			},
			expectedChallenge: completed,
			expectedErr:       nil,
		},
		"not-found": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)

				repo := domain_mocks.NewMockChallengeRepository(t)
				uow.On("Challenge").Return(repo)
				uow.Passthrough()

				repo.On("GetByID", mock.Anything, challengeID).
					Return(domain.Challenge{}, false, nil)
			},
			expectedChallenge: domain.Challenge{},
			expectedErr:       domain.NewNotFoundErr(domain.EntityType_Challenge, "challenge not found"),
		},
		"already-completed": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)

				repo := domain_mocks.NewMockChallengeRepository(t)
				uow.On("Challenge").Return(repo)
				uow.Passthrough()

				repo.On("GetByID", mock.Anything, challengeID).
					Return(completed, true, nil)
			},
			expectedChallenge: domain.Challenge{},
			expectedErr:       domain.NewValidationErr(domain.EntityType_Challenge, "only active challenges can be completed"),
		},
		"repository-error": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)

				repo := domain_mocks.NewMockChallengeRepository(t)
				uow.On("Challenge").Return(repo)
				uow.Passthrough()

				repo.On("GetByID", mock.Anything, challengeID).
					Return(domain.Challenge{}, false, errors.New("database error"))
			},
			expectedChallenge: domain.Challenge{},
			expectedErr:       errors.New("database error"),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain_mocks.NewMockUnitOfWork(t)
			timeProvider := domain_mocks.NewMockCurrentTimeProvider(t)
			if tt.setExpectations != nil {
				tt.setExpectations(uow, timeProvider)
			}

			cci := NewCompleteChallengeImpl(uow, timeProvider)

			got, gotErr := cci.Execute(context.Background(), challengeID)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedChallenge, got)
		})
	}
}

func TestAbandonChallengeImpl_Execute(t *testing.T) {
	challengeID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	userID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	active := domain.Challenge{
		ID:         challengeID,
		UserID:     userID,
		Title:      "Daily journaling",
		Difficulty: 2,
		Status:     domain.ChallengeStatus_ACTIVE,
		DueDate:    fixedTime.Add(24 * time.Hour),
		CreatedAt:  fixedTime.Add(-24 * time.Hour),
		UpdatedAt:  fixedTime.Add(-24 * time.Hour),
	}
	abandoned := active
	abandoned.Status = domain.ChallengeStatus_ABANDONED
	abandoned.UpdatedAt = fixedTime

	tests := map[string]struct {
		setExpectations   func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider)
		expectedChallenge domain.Challenge
		expectedErr       error
	}{
		"success": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)

				repo := domain_mocks.NewMockChallengeRepository(t)
				uow.On("Challenge").Return(repo)
				uow.Passthrough()

				repo.On("GetByID", mock.Anything, challengeID).
					Return(active, true, nil)
				repo.On("Save", mock.Anything, abandoned).
					Return(abandoned, nil)
			},
			expectedChallenge: abandoned,
			expectedErr:       nil,
		},
		"already-abandoned": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)

				repo := domain_mocks.NewMockChallengeRepository(t)
				uow.On("Challenge").Return(repo)
				uow.Passthrough()

				repo.On("GetByID", mock.Anything, challengeID).
					Return(abandoned, true, nil)
			},
			expectedChallenge: domain.Challenge{},
			expectedErr:       domain.NewValidationErr(domain.EntityType_Challenge, "only active challenges can be abandoned"),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain_mocks.NewMockUnitOfWork(t)
			timeProvider := domain_mocks.NewMockCurrentTimeProvider(t)
			if tt.setExpectations != nil {
				tt.setExpectations(uow, timeProvider)
			}

			aci := NewAbandonChallengeImpl(uow, timeProvider)

			got, gotErr := aci.Execute(context.Background(), challengeID)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedChallenge, got)
		})
	}
}

func TestInitCompleteChallenge_Initialize(t *testing.T) {
	icc := InitCompleteChallenge{}

	ctx, err := icc.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[CompleteChallenge]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}

func TestInitAbandonChallenge_Initialize(t *testing.T) {
	iac := InitAbandonChallenge{}

	ctx, err := iac.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[AbandonChallenge]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
