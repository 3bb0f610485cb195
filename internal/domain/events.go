package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType tags a domain event with the state change it describes.
type EventType string

const (
	// EventType_USER_CREATED represents the event when a user is created.
	EventType_USER_CREATED EventType = "USER.CREATED"
	// EventType_USER_UPDATED represents the event when a user is updated.
	EventType_USER_UPDATED EventType = "USER.UPDATED"
	// EventType_USER_DELETED represents the event when a user is deleted.
	EventType_USER_DELETED EventType = "USER.DELETED"

	// EventType_CHALLENGE_CREATED represents the event when a challenge is created.
	EventType_CHALLENGE_CREATED EventType = "CHALLENGE.CREATED"
	// EventType_CHALLENGE_UPDATED represents the event when a challenge is updated.
	EventType_CHALLENGE_UPDATED EventType = "CHALLENGE.UPDATED"
	// EventType_CHALLENGE_COMPLETED represents the event when a challenge is completed.
	EventType_CHALLENGE_COMPLETED EventType = "CHALLENGE.COMPLETED"
	// EventType_CHALLENGE_ABANDONED represents the event when a challenge is abandoned.
	EventType_CHALLENGE_ABANDONED EventType = "CHALLENGE.ABANDONED"
	// EventType_CHALLENGE_DELETED represents the event when a challenge is deleted.
	EventType_CHALLENGE_DELETED EventType = "CHALLENGE.DELETED"

	// EventType_EVALUATION_RECORDED represents the event when an evaluation is recorded.
	EventType_EVALUATION_RECORDED EventType = "EVALUATION.RECORDED"
	// EventType_EVALUATION_UPDATED represents the event when an evaluation is updated.
	EventType_EVALUATION_UPDATED EventType = "EVALUATION.UPDATED"
	// EventType_EVALUATION_DELETED represents the event when an evaluation is deleted.
	EventType_EVALUATION_DELETED EventType = "EVALUATION.DELETED"

	// EventType_PROFILE_UPSERTED represents the event when a personality profile is created or replaced.
	EventType_PROFILE_UPSERTED EventType = "PERSONALITY_PROFILE.UPSERTED"
	// EventType_PROFILE_DELETED represents the event when a personality profile is deleted.
	EventType_PROFILE_DELETED EventType = "PERSONALITY_PROFILE.DELETED"

	// EventType_FOCUS_AREA_CREATED represents the event when a focus area is created.
	EventType_FOCUS_AREA_CREATED EventType = "FOCUS_AREA.CREATED"
	// EventType_FOCUS_AREA_UPDATED represents the event when a focus area is updated.
	EventType_FOCUS_AREA_UPDATED EventType = "FOCUS_AREA.UPDATED"
	// EventType_FOCUS_AREA_DELETED represents the event when a focus area is deleted.
	EventType_FOCUS_AREA_DELETED EventType = "FOCUS_AREA.DELETED"
)

// DomainEvent is a fact describing a completed state change on one aggregate.
// Events are produced by aggregate business methods and returned explicitly
// alongside the updated aggregate; nothing buffers them on the aggregate
// itself. They are handed to the transaction runner through TxOutcome and
// only reach the event bus after the owning transaction commits.
type DomainEvent struct {
	Type       EventType
	Entity     EntityType
	EntityID   uuid.UUID
	Payload    map[string]any
	OccurredAt time.Time
}

// NewDomainEvent creates a DomainEvent for the given aggregate.
func NewDomainEvent(eventType EventType, entity EntityType, entityID uuid.UUID, payload map[string]any, occurredAt time.Time) DomainEvent {
	return DomainEvent{
		Type:       eventType,
		Entity:     entity,
		EntityID:   entityID,
		Payload:    payload,
		OccurredAt: occurredAt,
	}
}

// creationEventTypes maps each aggregate to its default creation event.
var creationEventTypes = map[EntityType]EventType{
	EntityType_User:               EventType_USER_CREATED,
	EntityType_Challenge:          EventType_CHALLENGE_CREATED,
	EntityType_Evaluation:         EventType_EVALUATION_RECORDED,
	EntityType_PersonalityProfile: EventType_PROFILE_UPSERTED,
	EntityType_FocusArea:          EventType_FOCUS_AREA_CREATED,
}

// EnsureCreationEvent guarantees that a freshly created aggregate always
// yields a creation signal: when created is true and the aggregate produced
// no events of its own, a default creation event is synthesized. Downstream
// consumers can therefore rely on observing exactly one creation event per
// new aggregate.
func EnsureCreationEvent(events []DomainEvent, entity EntityType, entityID uuid.UUID, created bool, now time.Time) []DomainEvent {
	if !created || len(events) > 0 {
		return events
	}
	eventType, ok := creationEventTypes[entity]
	if !ok {
		return events
	}
	return []DomainEvent{NewDomainEvent(eventType, entity, entityID, nil, now)}
}
