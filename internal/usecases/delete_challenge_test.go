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

func TestDeleteChallengeImpl_Execute(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	challenge := domain.Challenge{
		ID:         uuid.MustParse("323e4567-e89b-12d3-a456-426614174000"),
		UserID:     uuid.MustParse("223e4567-e89b-12d3-a456-426614174000"),
		Title:      "Run three times this week",
		Difficulty: 2,
		Status:     domain.ChallengeStatus_ACTIVE,
		DueDate:    fixedTime.AddDate(0, 0, 7),
	}

	tests := map[string]struct {
		setExpectations func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider)
		expectedErr     error
	}{
		"success": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)

				repo := domain_mocks.NewMockChallengeRepository(t)
				uow.On("Challenge").Return(repo)
				uow.Passthrough()

				repo.On("Delete", mock.Anything, challenge.ID).Return(challenge, nil)
			},
			expectedErr: nil,
		},
		"challenge-not-found": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)

				repo := domain_mocks.NewMockChallengeRepository(t)
				uow.On("Challenge").Return(repo)
				uow.Passthrough()

				repo.On("Delete", mock.Anything, challenge.ID).
					Return(domain.Challenge{}, domain.NewNotFoundErr(domain.EntityType_Challenge, "challenge not found"))
			},
			expectedErr: domain.NewNotFoundErr(domain.EntityType_Challenge, "challenge not found"),
		},
		"repository-error": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)

				repo := domain_mocks.NewMockChallengeRepository(t)
				uow.On("Challenge").Return(repo)
				uow.Passthrough()

				repo.On("Delete", mock.Anything, challenge.ID).
					Return(domain.Challenge{}, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain_mocks.NewMockUnitOfWork(t)
			timeProvider := domain_mocks.NewMockCurrentTimeProvider(t)
			tt.setExpectations(uow, timeProvider)

			dci := NewDeleteChallengeImpl(uow, timeProvider)

			gotErr := dci.Execute(context.Background(), challenge.ID)
			assert.Equal(t, tt.expectedErr, gotErr)
		})
	}
}

func TestInitDeleteChallenge_Initialize(t *testing.T) {
	idc := InitDeleteChallenge{}

	_, err := idc.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[DeleteChallenge]()
	assert.NoError(t, err)
}
