package mocks

import (
	"context"
	"time"

	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOutboxRepository is a mock implementation of domain.OutboxRepository.
type MockOutboxRepository struct {
	mock.Mock
}

// NewMockOutboxRepository creates a new MockOutboxRepository with expectation assertion on cleanup.
func NewMockOutboxRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOutboxRepository {
	m := &MockOutboxRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockOutboxRepository) RecordEvent(ctx context.Context, event domain.DomainEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockOutboxRepository) FetchPendingEvents(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	args := m.Called(ctx, limit)
	events, _ := args.Get(0).([]domain.OutboxEvent)
	return events, args.Error(1)
}

func (m *MockOutboxRepository) UpdateEvent(ctx context.Context, eventID uuid.UUID, status domain.OutboxStatus, retryCount int, lastError string) error {
	return m.Called(ctx, eventID, status, retryCount, lastError).Error(0)
}

func (m *MockOutboxRepository) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	return m.Called(ctx, eventID).Error(0)
}

// MockEventPublisher is a mock implementation of domain.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a new MockEventPublisher with expectation assertion on cleanup.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEventPublisher) PublishEvent(ctx context.Context, event domain.OutboxEvent) error {
	return m.Called(ctx, event).Error(0)
}

// MockCacheInvalidator is a mock implementation of domain.CacheInvalidator.
type MockCacheInvalidator struct {
	mock.Mock
}

// NewMockCacheInvalidator creates a new MockCacheInvalidator with expectation assertion on cleanup.
func NewMockCacheInvalidator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCacheInvalidator {
	m := &MockCacheInvalidator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCacheInvalidator) Invalidate(ctx context.Context, entity domain.EntityType, id uuid.UUID) error {
	return m.Called(ctx, entity, id).Error(0)
}

// MockCurrentTimeProvider is a mock implementation of domain.CurrentTimeProvider.
type MockCurrentTimeProvider struct {
	mock.Mock
}

// NewMockCurrentTimeProvider creates a new MockCurrentTimeProvider with expectation assertion on cleanup.
func NewMockCurrentTimeProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCurrentTimeProvider {
	m := &MockCurrentTimeProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCurrentTimeProvider) Now() time.Time {
	return m.Called().Get(0).(time.Time)
}
