package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OutboxStatus represents the processing lifecycle status of an outbox event.
type OutboxStatus string

const (
	// OutboxStatus_Pending indicates the event is ready to be processed.
	OutboxStatus_Pending OutboxStatus = "PENDING"
	// OutboxStatus_Failed indicates the event exceeded retries and stopped processing.
	OutboxStatus_Failed OutboxStatus = "FAILED"
)

// OutboxTopic identifies the broker topic used for publishing outbox events.
type OutboxTopic string

const (
	// OutboxTopic_Users is the topic for user events.
	OutboxTopic_Users OutboxTopic = "Users"
	// OutboxTopic_Challenges is the topic for challenge and evaluation events.
	OutboxTopic_Challenges OutboxTopic = "Challenges"
	// OutboxTopic_Profiles is the topic for personality profile and focus area events.
	OutboxTopic_Profiles OutboxTopic = "Profiles"
)

// topicsByEntity routes each aggregate's events to its broker topic.
var topicsByEntity = map[EntityType]OutboxTopic{
	EntityType_User:               OutboxTopic_Users,
	EntityType_Challenge:          OutboxTopic_Challenges,
	EntityType_Evaluation:         OutboxTopic_Challenges,
	EntityType_PersonalityProfile: OutboxTopic_Profiles,
	EntityType_FocusArea:          OutboxTopic_Profiles,
}

// TopicForEntity returns the broker topic for the given aggregate.
func TopicForEntity(entity EntityType) OutboxTopic {
	topic, ok := topicsByEntity[entity]
	if !ok {
		return OutboxTopic_Users
	}
	return topic
}

// OutboxEvent represents an event stored in the outbox.
type OutboxEvent struct {
	ID          uuid.UUID
	EntityType  EntityType
	EntityID    uuid.UUID
	Topic       OutboxTopic
	EventType   EventType
	Payload     []byte
	Status      OutboxStatus
	RetryCount  int
	MaxRetries  int
	LastError   *string
	ProcessedAt *time.Time
	CreatedAt   time.Time
}

// NewOutboxEvent wraps a domain event in its outbox envelope, marshaling the
// payload to JSON.
func NewOutboxEvent(event DomainEvent) (OutboxEvent, error) {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return OutboxEvent{}, fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return OutboxEvent{
		ID:         uuid.New(),
		EntityType: event.Entity,
		EntityID:   event.EntityID,
		Topic:      TopicForEntity(event.Entity),
		EventType:  event.Type,
		Payload:    payload,
		Status:     OutboxStatus_Pending,
		MaxRetries: 5,
		CreatedAt:  event.OccurredAt,
	}, nil
}

// OutboxRepository defines the interface for managing outbox events.
type OutboxRepository interface {
	// RecordEvent records a domain event in the outbox.
	RecordEvent(ctx context.Context, event DomainEvent) error
	// FetchPendingEvents retrieves a batch of pending outbox events.
	FetchPendingEvents(ctx context.Context, limit int) ([]OutboxEvent, error)
	// UpdateEvent updates the status, retry count, and last error of an outbox event.
	UpdateEvent(ctx context.Context, eventID uuid.UUID, status OutboxStatus, retryCount int, lastError string) error
	// DeleteEvent deletes an event from the outbox.
	DeleteEvent(ctx context.Context, eventID uuid.UUID) error
}
