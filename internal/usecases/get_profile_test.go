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

func TestGetProfileImpl_Query(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	profile := domain.PersonalityProfile{
		ID:        uuid.MustParse("523e4567-e89b-12d3-a456-426614174000"),
		UserID:    userID,
		Traits:    map[string]float64{"discipline": 0.7, "curiosity": 0.9},
		Summary:   "Curious and steadily building discipline",
		Version:   3,
		CreatedAt: fixedTime.Add(-48 * time.Hour),
		UpdatedAt: fixedTime,
	}

	t.Run("success", func(t *testing.T) {
		repo := domain_mocks.NewMockPersonalityProfileRepository(t)
		repo.On("GetByUserID", mock.Anything, userID).Return(profile, true, nil)

		gpi := NewGetProfileImpl(repo)

		got, err := gpi.Query(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, profile, got)
	})

	t.Run("profile-not-found", func(t *testing.T) {
		repo := domain_mocks.NewMockPersonalityProfileRepository(t)
		repo.On("GetByUserID", mock.Anything, userID).Return(domain.PersonalityProfile{}, false, nil)

		gpi := NewGetProfileImpl(repo)

		_, err := gpi.Query(context.Background(), userID)
		assert.Equal(t, domain.NewNotFoundErr(domain.EntityType_PersonalityProfile, "personality profile not found"), err)
	})

	t.Run("repository-error", func(t *testing.T) {
		repo := domain_mocks.NewMockPersonalityProfileRepository(t)
		repo.On("GetByUserID", mock.Anything, userID).
			Return(domain.PersonalityProfile{}, false, errors.New("database error"))

		gpi := NewGetProfileImpl(repo)

		_, err := gpi.Query(context.Background(), userID)
		assert.Equal(t, errors.New("database error"), err)
	})
}

func TestInitGetProfile_Initialize(t *testing.T) {
	igp := InitGetProfile{}

	_, err := igp.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[GetProfile]()
	assert.NoError(t, err)
}
