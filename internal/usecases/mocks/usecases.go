package mocks

import (
	"context"
	"time"

	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/evolvehq/evolve-backend/internal/usecases"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRegisterUser is a mock implementation of usecases.RegisterUser.
type MockRegisterUser struct {
	mock.Mock
}

// NewMockRegisterUser creates a new MockRegisterUser with expectation assertion on cleanup.
func NewMockRegisterUser(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRegisterUser {
	m := &MockRegisterUser{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRegisterUser) Execute(ctx context.Context, email, displayName, timezone string) (domain.User, error) {
	args := m.Called(ctx, email, displayName, timezone)
	return args.Get(0).(domain.User), args.Error(1)
}

// MockCompleteOnboarding is a mock implementation of usecases.CompleteOnboarding.
type MockCompleteOnboarding struct {
	mock.Mock
}

// NewMockCompleteOnboarding creates a new MockCompleteOnboarding with expectation assertion on cleanup.
func NewMockCompleteOnboarding(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCompleteOnboarding {
	m := &MockCompleteOnboarding{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCompleteOnboarding) Execute(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

// MockDeleteUser is a mock implementation of usecases.DeleteUser.
type MockDeleteUser struct {
	mock.Mock
}

// NewMockDeleteUser creates a new MockDeleteUser with expectation assertion on cleanup.
func NewMockDeleteUser(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDeleteUser {
	m := &MockDeleteUser{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDeleteUser) Execute(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// MockGetUserProgress is a mock implementation of usecases.GetUserProgress.
type MockGetUserProgress struct {
	mock.Mock
}

// NewMockGetUserProgress creates a new MockGetUserProgress with expectation assertion on cleanup.
func NewMockGetUserProgress(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGetUserProgress {
	m := &MockGetUserProgress{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockGetUserProgress) Query(ctx context.Context, userID uuid.UUID) (domain.UserProgressSummary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.UserProgressSummary), args.Error(1)
}

// MockCreateChallenge is a mock implementation of usecases.CreateChallenge.
type MockCreateChallenge struct {
	mock.Mock
}

// NewMockCreateChallenge creates a new MockCreateChallenge with expectation assertion on cleanup.
func NewMockCreateChallenge(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCreateChallenge {
	m := &MockCreateChallenge{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCreateChallenge) Execute(ctx context.Context, params usecases.CreateChallengeParams) (domain.Challenge, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(domain.Challenge), args.Error(1)
}

// MockUpdateChallenge is a mock implementation of usecases.UpdateChallenge.
type MockUpdateChallenge struct {
	mock.Mock
}

// NewMockUpdateChallenge creates a new MockUpdateChallenge with expectation assertion on cleanup.
func NewMockUpdateChallenge(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUpdateChallenge {
	m := &MockUpdateChallenge{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUpdateChallenge) Execute(ctx context.Context, id uuid.UUID, title, description *string, difficulty *int, dueDate *time.Time) (domain.Challenge, error) {
	args := m.Called(ctx, id, title, description, difficulty, dueDate)
	return args.Get(0).(domain.Challenge), args.Error(1)
}

// MockDeleteChallenge is a mock implementation of usecases.DeleteChallenge.
type MockDeleteChallenge struct {
	mock.Mock
}

// NewMockDeleteChallenge creates a new MockDeleteChallenge with expectation assertion on cleanup.
func NewMockDeleteChallenge(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDeleteChallenge {
	m := &MockDeleteChallenge{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDeleteChallenge) Execute(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockListChallenges is a mock implementation of usecases.ListChallenges.
type MockListChallenges struct {
	mock.Mock
}

// NewMockListChallenges creates a new MockListChallenges with expectation assertion on cleanup.
func NewMockListChallenges(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockListChallenges {
	m := &MockListChallenges{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockListChallenges) Query(ctx context.Context, search domain.ChallengeSearch) (domain.SearchResult[domain.Challenge], error) {
	args := m.Called(ctx, search)
	return args.Get(0).(domain.SearchResult[domain.Challenge]), args.Error(1)
}

// MockCompleteChallenge is a mock implementation of usecases.CompleteChallenge.
type MockCompleteChallenge struct {
	mock.Mock
}

// NewMockCompleteChallenge creates a new MockCompleteChallenge with expectation assertion on cleanup.
func NewMockCompleteChallenge(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCompleteChallenge {
	m := &MockCompleteChallenge{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCompleteChallenge) Execute(ctx context.Context, challengeID uuid.UUID) (domain.Challenge, error) {
	args := m.Called(ctx, challengeID)
	return args.Get(0).(domain.Challenge), args.Error(1)
}

// MockAbandonChallenge is a mock implementation of usecases.AbandonChallenge.
type MockAbandonChallenge struct {
	mock.Mock
}

// NewMockAbandonChallenge creates a new MockAbandonChallenge with expectation assertion on cleanup.
func NewMockAbandonChallenge(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAbandonChallenge {
	m := &MockAbandonChallenge{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAbandonChallenge) Execute(ctx context.Context, challengeID uuid.UUID) (domain.Challenge, error) {
	args := m.Called(ctx, challengeID)
	return args.Get(0).(domain.Challenge), args.Error(1)
}

// MockRecordEvaluation is a mock implementation of usecases.RecordEvaluation.
type MockRecordEvaluation struct {
	mock.Mock
}

// NewMockRecordEvaluation creates a new MockRecordEvaluation with expectation assertion on cleanup.
func NewMockRecordEvaluation(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRecordEvaluation {
	m := &MockRecordEvaluation{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRecordEvaluation) Execute(ctx context.Context, params usecases.RecordEvaluationParams) (domain.Evaluation, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(domain.Evaluation), args.Error(1)
}

// MockReviseEvaluation is a mock implementation of usecases.ReviseEvaluation.
type MockReviseEvaluation struct {
	mock.Mock
}

// NewMockReviseEvaluation creates a new MockReviseEvaluation with expectation assertion on cleanup.
func NewMockReviseEvaluation(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReviseEvaluation {
	m := &MockReviseEvaluation{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockReviseEvaluation) Execute(ctx context.Context, id uuid.UUID, score int, summary string) (domain.Evaluation, error) {
	args := m.Called(ctx, id, score, summary)
	return args.Get(0).(domain.Evaluation), args.Error(1)
}

// MockEvolveProfile is a mock implementation of usecases.EvolveProfile.
type MockEvolveProfile struct {
	mock.Mock
}

// NewMockEvolveProfile creates a new MockEvolveProfile with expectation assertion on cleanup.
func NewMockEvolveProfile(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEvolveProfile {
	m := &MockEvolveProfile{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEvolveProfile) Execute(ctx context.Context, userID uuid.UUID, traits map[string]float64, summary string) (domain.PersonalityProfile, error) {
	args := m.Called(ctx, userID, traits, summary)
	return args.Get(0).(domain.PersonalityProfile), args.Error(1)
}

// MockGetProfile is a mock implementation of usecases.GetProfile.
type MockGetProfile struct {
	mock.Mock
}

// NewMockGetProfile creates a new MockGetProfile with expectation assertion on cleanup.
func NewMockGetProfile(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGetProfile {
	m := &MockGetProfile{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockGetProfile) Query(ctx context.Context, userID uuid.UUID) (domain.PersonalityProfile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.PersonalityProfile), args.Error(1)
}

// MockCreateFocusArea is a mock implementation of usecases.CreateFocusArea.
type MockCreateFocusArea struct {
	mock.Mock
}

// NewMockCreateFocusArea creates a new MockCreateFocusArea with expectation assertion on cleanup.
func NewMockCreateFocusArea(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCreateFocusArea {
	m := &MockCreateFocusArea{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCreateFocusArea) Execute(ctx context.Context, userID uuid.UUID, name, description string, priority int) (domain.FocusArea, error) {
	args := m.Called(ctx, userID, name, description, priority)
	return args.Get(0).(domain.FocusArea), args.Error(1)
}

// MockUpdateFocusArea is a mock implementation of usecases.UpdateFocusArea.
type MockUpdateFocusArea struct {
	mock.Mock
}

// NewMockUpdateFocusArea creates a new MockUpdateFocusArea with expectation assertion on cleanup.
func NewMockUpdateFocusArea(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUpdateFocusArea {
	m := &MockUpdateFocusArea{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUpdateFocusArea) Execute(ctx context.Context, id uuid.UUID, priority *int, deactivate bool) (domain.FocusArea, error) {
	args := m.Called(ctx, id, priority, deactivate)
	return args.Get(0).(domain.FocusArea), args.Error(1)
}

// MockListFocusAreas is a mock implementation of usecases.ListFocusAreas.
type MockListFocusAreas struct {
	mock.Mock
}

// NewMockListFocusAreas creates a new MockListFocusAreas with expectation assertion on cleanup.
func NewMockListFocusAreas(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockListFocusAreas {
	m := &MockListFocusAreas{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockListFocusAreas) Query(ctx context.Context, search domain.FocusAreaSearch) (domain.SearchResult[domain.FocusArea], error) {
	args := m.Called(ctx, search)
	return args.Get(0).(domain.SearchResult[domain.FocusArea]), args.Error(1)
}

// MockRelayOutbox is a mock implementation of usecases.RelayOutbox.
type MockRelayOutbox struct {
	mock.Mock
}

// NewMockRelayOutbox creates a new MockRelayOutbox with expectation assertion on cleanup.
func NewMockRelayOutbox(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRelayOutbox {
	m := &MockRelayOutbox{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRelayOutbox) Execute(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
