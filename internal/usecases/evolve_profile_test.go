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

func TestEvolveProfileImpl_Execute(t *testing.T) {
	fixedUUID := func() uuid.UUID {
		return uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	}
	userID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	profileID := uuid.MustParse("323e4567-e89b-12d3-a456-426614174000")
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	traits := map[string]float64{"openness": 0.8}

	firstVersion := domain.PersonalityProfile{
		ID:        fixedUUID(),
		UserID:    userID,
		Traits:    traits,
		Summary:   "Curious and reflective",
		Version:   1,
		CreatedAt: fixedTime,
		UpdatedAt: fixedTime,
	}
	existing := domain.PersonalityProfile{
		ID:        profileID,
		UserID:    userID,
		Traits:    map[string]float64{"openness": 0.5, "grit": 0.6},
		Summary:   "Early read",
		Version:   3,
		CreatedAt: fixedTime.Add(-48 * time.Hour),
		UpdatedAt: fixedTime.Add(-24 * time.Hour),
	}
	evolved, _ := existing.Evolve(traits, "Curious and reflective", fixedTime)

	tests := map[string]struct {
		setExpectations func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider)
		expectedProfile domain.PersonalityProfile
		expectedErr     error
	}{
		"success-first-version": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)

				userRepo := domain_mocks.NewMockUserRepository(t)
				profileRepo := domain_mocks.NewMockPersonalityProfileRepository(t)
				uow.On("User").Return(userRepo)
				uow.On("PersonalityProfile").Return(profileRepo)
				uow.Passthrough()

				userRepo.On("GetByID", mock.Anything, userID).
					Return(domain.User{ID: userID}, true, nil)
				profileRepo.On("GetByUserID", mock.Anything, userID).
					Return(domain.PersonalityProfile{}, false, nil)
				profileRepo.On("Save", mock.Anything, firstVersion).
					Return(firstVersion, nil)
			},
			expectedProfile: firstVersion,
			expectedErr:     nil,
		},
		"success-evolve-existing": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)

				userRepo := domain_mocks.NewMockUserRepository(t)
				profileRepo := domain_mocks.NewMockPersonalityProfileRepository(t)
				uow.On("User").Return(userRepo)
				uow.On("PersonalityProfile").Return(profileRepo)
				uow.Passthrough()

				userRepo.On("GetByID", mock.Anything, userID).
					Return(domain.User{ID: userID}, true, nil)
				profileRepo.On("GetByUserID", mock.Anything, userID).
					Return(existing, true, nil)
				profileRepo.On("Save", mock.Anything, evolved).
					Return(evolved, nil)
			},
			expectedProfile: evolved,
			expectedErr:     nil,
		},
		"user-not-found": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)

				userRepo := domain_mocks.NewMockUserRepository(t)
				uow.On("User").Return(userRepo)
				uow.Passthrough()

				userRepo.On("GetByID", mock.Anything, userID).
					Return(domain.User{}, false, nil)
			},
			expectedProfile: domain.PersonalityProfile{},
			expectedErr:     domain.NewNotFoundErr(domain.EntityType_User, "user not found"),
		},
		"repository-error": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.On("Now").Return(fixedTime)

				userRepo := domain_mocks.NewMockUserRepository(t)
				profileRepo := domain_mocks.NewMockPersonalityProfileRepository(t)
				uow.On("User").Return(userRepo)
				uow.On("PersonalityProfile").Return(profileRepo)
				uow.Passthrough()

				userRepo.On("GetByID", mock.Anything, userID).
					Return(domain.User{ID: userID}, true, nil)
				profileRepo.On("GetByUserID", mock.Anything, userID).
					Return(domain.PersonalityProfile{}, false, errors.New("database error"))
			},
			expectedProfile: domain.PersonalityProfile{},
			expectedErr:     errors.New("database error"),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain_mocks.NewMockUnitOfWork(t)
			timeProvider := domain_mocks.NewMockCurrentTimeProvider(t)
			if tt.setExpectations != nil {
				tt.setExpectations(uow, timeProvider)
			}

			epi := NewEvolveProfileImpl(uow, timeProvider)
			epi.createUUID = fixedUUID

			got, gotErr := epi.Execute(context.Background(), userID, traits, "Curious and reflective")
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedProfile, got)
		})
	}
}

func TestInitEvolveProfile_Initialize(t *testing.T) {
	iep := InitEvolveProfile{}

	ctx, err := iep.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[EvolveProfile]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
