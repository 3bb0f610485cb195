package mocks

import (
	"context"

	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of domain.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a new MockUserRepository with expectation assertion on cleanup.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.User, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Bool(1), args.Error(2)
}

func (m *MockUserRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	args := m.Called(ctx, ids)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (domain.User, bool, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Bool(1), args.Error(2)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) Search(ctx context.Context, query domain.UserSearch) (domain.SearchResult[domain.User], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.SearchResult[domain.User]), args.Error(1)
}

func (m *MockUserRepository) ProgressSummary(ctx context.Context, userID uuid.UUID) (domain.UserProgressSummary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.UserProgressSummary), args.Error(1)
}

// MockChallengeRepository is a mock implementation of domain.ChallengeRepository.
type MockChallengeRepository struct {
	mock.Mock
}

// NewMockChallengeRepository creates a new MockChallengeRepository with expectation assertion on cleanup.
func NewMockChallengeRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockChallengeRepository {
	m := &MockChallengeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockChallengeRepository) Save(ctx context.Context, challenge domain.Challenge) (domain.Challenge, error) {
	args := m.Called(ctx, challenge)
	return args.Get(0).(domain.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Challenge, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Challenge), args.Bool(1), args.Error(2)
}

func (m *MockChallengeRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Challenge, error) {
	args := m.Called(ctx, ids)
	challenges, _ := args.Get(0).([]domain.Challenge)
	return challenges, args.Error(1)
}

func (m *MockChallengeRepository) Delete(ctx context.Context, id uuid.UUID) (domain.Challenge, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) Search(ctx context.Context, query domain.ChallengeSearch) (domain.SearchResult[domain.Challenge], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.SearchResult[domain.Challenge]), args.Error(1)
}

// MockEvaluationRepository is a mock implementation of domain.EvaluationRepository.
type MockEvaluationRepository struct {
	mock.Mock
}

// NewMockEvaluationRepository creates a new MockEvaluationRepository with expectation assertion on cleanup.
func NewMockEvaluationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEvaluationRepository {
	m := &MockEvaluationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEvaluationRepository) Save(ctx context.Context, evaluation domain.Evaluation) (domain.Evaluation, error) {
	args := m.Called(ctx, evaluation)
	return args.Get(0).(domain.Evaluation), args.Error(1)
}

func (m *MockEvaluationRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Evaluation, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Evaluation), args.Bool(1), args.Error(2)
}

func (m *MockEvaluationRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Evaluation, error) {
	args := m.Called(ctx, ids)
	evaluations, _ := args.Get(0).([]domain.Evaluation)
	return evaluations, args.Error(1)
}

func (m *MockEvaluationRepository) Delete(ctx context.Context, id uuid.UUID) (domain.Evaluation, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Evaluation), args.Error(1)
}

func (m *MockEvaluationRepository) Search(ctx context.Context, query domain.EvaluationSearch) (domain.SearchResult[domain.Evaluation], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.SearchResult[domain.Evaluation]), args.Error(1)
}

// MockPersonalityProfileRepository is a mock implementation of domain.PersonalityProfileRepository.
type MockPersonalityProfileRepository struct {
	mock.Mock
}

// NewMockPersonalityProfileRepository creates a new MockPersonalityProfileRepository with expectation assertion on cleanup.
func NewMockPersonalityProfileRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPersonalityProfileRepository {
	m := &MockPersonalityProfileRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPersonalityProfileRepository) Save(ctx context.Context, profile domain.PersonalityProfile) (domain.PersonalityProfile, error) {
	args := m.Called(ctx, profile)
	return args.Get(0).(domain.PersonalityProfile), args.Error(1)
}

func (m *MockPersonalityProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.PersonalityProfile, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.PersonalityProfile), args.Bool(1), args.Error(2)
}

func (m *MockPersonalityProfileRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.PersonalityProfile, error) {
	args := m.Called(ctx, ids)
	profiles, _ := args.Get(0).([]domain.PersonalityProfile)
	return profiles, args.Error(1)
}

func (m *MockPersonalityProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (domain.PersonalityProfile, bool, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.PersonalityProfile), args.Bool(1), args.Error(2)
}

func (m *MockPersonalityProfileRepository) Delete(ctx context.Context, id uuid.UUID) (domain.PersonalityProfile, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.PersonalityProfile), args.Error(1)
}

func (m *MockPersonalityProfileRepository) Search(ctx context.Context, query domain.PersonalityProfileSearch) (domain.SearchResult[domain.PersonalityProfile], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.SearchResult[domain.PersonalityProfile]), args.Error(1)
}

// MockFocusAreaRepository is a mock implementation of domain.FocusAreaRepository.
type MockFocusAreaRepository struct {
	mock.Mock
}

// NewMockFocusAreaRepository creates a new MockFocusAreaRepository with expectation assertion on cleanup.
func NewMockFocusAreaRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFocusAreaRepository {
	m := &MockFocusAreaRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockFocusAreaRepository) Save(ctx context.Context, focusArea domain.FocusArea) (domain.FocusArea, error) {
	args := m.Called(ctx, focusArea)
	return args.Get(0).(domain.FocusArea), args.Error(1)
}

func (m *MockFocusAreaRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.FocusArea, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.FocusArea), args.Bool(1), args.Error(2)
}

func (m *MockFocusAreaRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.FocusArea, error) {
	args := m.Called(ctx, ids)
	focusAreas, _ := args.Get(0).([]domain.FocusArea)
	return focusAreas, args.Error(1)
}

func (m *MockFocusAreaRepository) Delete(ctx context.Context, id uuid.UUID) (domain.FocusArea, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.FocusArea), args.Error(1)
}

func (m *MockFocusAreaRepository) Search(ctx context.Context, query domain.FocusAreaSearch) (domain.SearchResult[domain.FocusArea], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.SearchResult[domain.FocusArea]), args.Error(1)
}
