package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEnsureCreationEvent(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	entityID := uuid.MustParse("00000000-0000-0000-0000-000000000001")

	tests := map[string]struct {
		events     []DomainEvent
		entity     EntityType
		created    bool
		wantLen    int
		wantSynth  bool
		wantedType EventType
	}{
		"creation-without-events-synthesizes-one": {
			events:     nil,
			entity:     EntityType_Challenge,
			created:    true,
			wantLen:    1,
			wantSynth:  true,
			wantedType: EventType_CHALLENGE_CREATED,
		},
		"creation-with-events-keeps-them": {
			events: []DomainEvent{
				NewDomainEvent(EventType_CHALLENGE_COMPLETED, EntityType_Challenge, entityID, nil, now),
			},
			entity:     EntityType_Challenge,
			created:    true,
			wantLen:    1,
			wantedType: EventType_CHALLENGE_COMPLETED,
		},
		"update-without-events-stays-empty": {
			events:  nil,
			entity:  EntityType_Challenge,
			created: false,
			wantLen: 0,
		},
		"user-creation-event-type": {
			events:     nil,
			entity:     EntityType_User,
			created:    true,
			wantLen:    1,
			wantSynth:  true,
			wantedType: EventType_USER_CREATED,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := EnsureCreationEvent(tt.events, tt.entity, entityID, tt.created, now)
			assert.Len(t, got, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantedType, got[0].Type)
				assert.Equal(t, entityID, got[0].EntityID)
			}
			if tt.wantSynth {
				assert.Equal(t, now, got[0].OccurredAt)
			}
		})
	}
}

func TestNewOutboxEvent(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	entityID := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	event := NewDomainEvent(EventType_CHALLENGE_COMPLETED, EntityType_Challenge, entityID, map[string]any{
		"user_id": "abc",
	}, now)

	outboxEvent, err := NewOutboxEvent(event)
	assert.NoError(t, err)
	assert.Equal(t, EntityType_Challenge, outboxEvent.EntityType)
	assert.Equal(t, entityID, outboxEvent.EntityID)
	assert.Equal(t, OutboxTopic_Challenges, outboxEvent.Topic)
	assert.Equal(t, EventType_CHALLENGE_COMPLETED, outboxEvent.EventType)
	assert.Equal(t, OutboxStatus_Pending, outboxEvent.Status)
	assert.Equal(t, 5, outboxEvent.MaxRetries)
	assert.JSONEq(t, `{"user_id":"abc"}`, string(outboxEvent.Payload))
	assert.NotEqual(t, uuid.Nil, outboxEvent.ID)
}

func TestTopicForEntity(t *testing.T) {
	assert.Equal(t, OutboxTopic_Users, TopicForEntity(EntityType_User))
	assert.Equal(t, OutboxTopic_Challenges, TopicForEntity(EntityType_Evaluation))
	assert.Equal(t, OutboxTopic_Profiles, TopicForEntity(EntityType_FocusArea))
	assert.Equal(t, OutboxTopic_Users, TopicForEntity(EntityType("Unknown")))
}
