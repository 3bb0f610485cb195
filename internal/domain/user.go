package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents an account holder working through growth challenges.
type User struct {
	ID                  uuid.UUID
	Email               string
	DisplayName         string
	Timezone            string
	OnboardingCompleted bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Validate checks the user's fields.
func (u User) Validate() error {
	if u.Email == "" {
		return NewValidationErr(EntityType_User, "email cannot be empty")
	}
	if !strings.Contains(u.Email, "@") {
		return NewValidationErr(EntityType_User, "email must be a valid address")
	}
	if len(u.DisplayName) < 2 || len(u.DisplayName) > 100 {
		return NewValidationErr(EntityType_User, "display_name must be between 2 and 100 characters")
	}
	if u.Timezone == "" {
		return NewValidationErr(EntityType_User, "timezone cannot be empty")
	}
	return nil
}

// CompleteOnboarding marks onboarding as finished and returns the updated
// user together with the resulting event.
func (u User) CompleteOnboarding(now time.Time) (User, DomainEvent) {
	u.OnboardingCompleted = true
	u.UpdatedAt = now
	return u, NewDomainEvent(EventType_USER_UPDATED, EntityType_User, u.ID, map[string]any{
		"onboarding_completed": true,
	}, now)
}

// Rename changes the user's display name.
func (u User) Rename(displayName string, now time.Time) (User, DomainEvent) {
	u.DisplayName = displayName
	u.UpdatedAt = now
	return u, NewDomainEvent(EventType_USER_UPDATED, EntityType_User, u.ID, map[string]any{
		"display_name": displayName,
	}, now)
}

// UserSearch holds the filters and options for searching users.
type UserSearch struct {
	EmailContains       *string
	OnboardingCompleted *bool
	SortBy              *SortBy
	Page                PageRequest
}

// UserProgressSummary is the result of the server-side progress aggregation.
type UserProgressSummary struct {
	UserID              uuid.UUID
	ActiveChallenges    int
	CompletedChallenges int
	AverageScore        float64
	ActiveFocusAreas    int
}

// UserRepository defines the interface for persisting users.
type UserRepository interface {
	// Save upserts the user and returns the persisted aggregate as hydrated
	// from storage, including storage-assigned defaults.
	Save(ctx context.Context, user User) (User, error)

	// GetByID retrieves a user by its identifier.
	GetByID(ctx context.Context, id uuid.UUID) (User, bool, error)

	// GetByIDs retrieves users matching the given identifiers in one query.
	// An empty input short-circuits to an empty result without a storage call.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]User, error)

	// GetByEmail retrieves a user by email address.
	GetByEmail(ctx context.Context, email string) (User, bool, error)

	// Delete removes the user and returns the deleted aggregate so callers
	// can source the deletion event from it. Fails with NotFoundErr if the
	// user does not exist.
	Delete(ctx context.Context, id uuid.UUID) (User, error)

	// Search returns a filtered, sorted, paginated page of users.
	Search(ctx context.Context, query UserSearch) (SearchResult[User], error)

	// ProgressSummary calls the server-side aggregation procedure for the
	// given user.
	ProgressSummary(ctx context.Context, userID uuid.UUID) (UserProgressSummary, error)
}
