package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PersonalityProfile represents the evolving trait profile of a user.
// Each user has at most one profile; Save replaces it and bumps the version.
type PersonalityProfile struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Traits    map[string]float64
	Summary   string
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the profile's fields.
func (p PersonalityProfile) Validate() error {
	if p.UserID == uuid.Nil {
		return NewValidationErr(EntityType_PersonalityProfile, "user_id cannot be empty")
	}
	if len(p.Traits) == 0 {
		return NewValidationErr(EntityType_PersonalityProfile, "traits cannot be empty")
	}
	for name, value := range p.Traits {
		if name == "" {
			return NewValidationErr(EntityType_PersonalityProfile, "trait names cannot be empty")
		}
		if value < 0 || value > 1 {
			return NewValidationErr(EntityType_PersonalityProfile, "trait values must be between 0 and 1")
		}
	}
	if p.Version < 1 {
		return NewValidationErr(EntityType_PersonalityProfile, "version must be at least 1")
	}
	return nil
}

// Evolve merges new trait observations into the profile and bumps its version.
func (p PersonalityProfile) Evolve(traits map[string]float64, summary string, now time.Time) (PersonalityProfile, DomainEvent) {
	merged := make(map[string]float64, len(p.Traits)+len(traits))
	for name, value := range p.Traits {
		merged[name] = value
	}
	for name, value := range traits {
		merged[name] = value
	}
	p.Traits = merged
	p.Summary = summary
	p.Version++
	p.UpdatedAt = now
	event := NewDomainEvent(EventType_PROFILE_UPSERTED, EntityType_PersonalityProfile, p.ID, map[string]any{
		"user_id": p.UserID.String(),
		"version": p.Version,
	}, now)
	return p, event
}

// PersonalityProfileSearch holds the filters and options for searching profiles.
type PersonalityProfileSearch struct {
	UserID     *uuid.UUID
	MinVersion *int
	SortBy     *SortBy
	Page       PageRequest
}

// PersonalityProfileRepository defines the interface for persisting profiles.
type PersonalityProfileRepository interface {
	// Save upserts the profile and returns the persisted aggregate.
	Save(ctx context.Context, profile PersonalityProfile) (PersonalityProfile, error)

	// GetByID retrieves a profile by its identifier.
	GetByID(ctx context.Context, id uuid.UUID) (PersonalityProfile, bool, error)

	// GetByIDs retrieves profiles matching the given identifiers in one
	// query. An empty input short-circuits without a storage call.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]PersonalityProfile, error)

	// GetByUserID retrieves the profile belonging to the given user.
	GetByUserID(ctx context.Context, userID uuid.UUID) (PersonalityProfile, bool, error)

	// Delete removes the profile and returns the deleted aggregate.
	Delete(ctx context.Context, id uuid.UUID) (PersonalityProfile, error)

	// Search returns a filtered, sorted, paginated page of profiles.
	Search(ctx context.Context, query PersonalityProfileSearch) (SearchResult[PersonalityProfile], error)
}
