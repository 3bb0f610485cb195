package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FocusArea represents a theme of personal growth a user works on.
type FocusArea struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	Priority    int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the focus area's fields.
func (f FocusArea) Validate() error {
	if f.UserID == uuid.Nil {
		return NewValidationErr(EntityType_FocusArea, "user_id cannot be empty")
	}
	if len(f.Name) < 2 || len(f.Name) > 100 {
		return NewValidationErr(EntityType_FocusArea, "name must be between 2 and 100 characters")
	}
	if f.Priority < 1 || f.Priority > 10 {
		return NewValidationErr(EntityType_FocusArea, "priority must be between 1 and 10")
	}
	return nil
}

// Deactivate retires the focus area.
func (f FocusArea) Deactivate(now time.Time) (FocusArea, DomainEvent, error) {
	if !f.Active {
		return f, DomainEvent{}, NewValidationErr(EntityType_FocusArea, "focus area is already inactive")
	}
	f.Active = false
	f.UpdatedAt = now
	event := NewDomainEvent(EventType_FOCUS_AREA_UPDATED, EntityType_FocusArea, f.ID, map[string]any{
		"active": false,
	}, now)
	return f, event, nil
}

// Reprioritize changes the focus area's priority.
func (f FocusArea) Reprioritize(priority int, now time.Time) (FocusArea, DomainEvent) {
	f.Priority = priority
	f.UpdatedAt = now
	event := NewDomainEvent(EventType_FOCUS_AREA_UPDATED, EntityType_FocusArea, f.ID, map[string]any{
		"priority": priority,
	}, now)
	return f, event
}

// FocusAreaSearch holds the filters and options for searching focus areas.
type FocusAreaSearch struct {
	UserID      *uuid.UUID
	Active      *bool
	MinPriority *int
	SortBy      *SortBy
	Page        PageRequest
}

// FocusAreaRepository defines the interface for persisting focus areas.
type FocusAreaRepository interface {
	// Save upserts the focus area and returns the persisted aggregate.
	Save(ctx context.Context, focusArea FocusArea) (FocusArea, error)

	// GetByID retrieves a focus area by its identifier.
	GetByID(ctx context.Context, id uuid.UUID) (FocusArea, bool, error)

	// GetByIDs retrieves focus areas matching the given identifiers in one
	// query. An empty input short-circuits without a storage call.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]FocusArea, error)

	// Delete removes the focus area and returns the deleted aggregate.
	Delete(ctx context.Context, id uuid.UUID) (FocusArea, error)

	// Search returns a filtered, sorted, paginated page of focus areas.
	Search(ctx context.Context, query FocusAreaSearch) (SearchResult[FocusArea], error)
}
