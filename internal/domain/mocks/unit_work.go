// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockUnitOfWork is a mock implementation of domain.UnitOfWork.
type MockUnitOfWork struct {
	mock.Mock
}

// NewMockUnitOfWork creates a new MockUnitOfWork with expectation assertion on cleanup.
func NewMockUnitOfWork(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUnitOfWork) User() domain.UserRepository {
	return m.Called().Get(0).(domain.UserRepository)
}

func (m *MockUnitOfWork) Challenge() domain.ChallengeRepository {
	return m.Called().Get(0).(domain.ChallengeRepository)
}

func (m *MockUnitOfWork) Evaluation() domain.EvaluationRepository {
	return m.Called().Get(0).(domain.EvaluationRepository)
}

func (m *MockUnitOfWork) PersonalityProfile() domain.PersonalityProfileRepository {
	return m.Called().Get(0).(domain.PersonalityProfileRepository)
}

func (m *MockUnitOfWork) FocusArea() domain.FocusAreaRepository {
	return m.Called().Get(0).(domain.FocusAreaRepository)
}

func (m *MockUnitOfWork) Outbox() domain.OutboxRepository {
	return m.Called().Get(0).(domain.OutboxRepository)
}

// Execute supports either a plain error return or a function return that
// receives the original arguments, mirroring RunAndReturn.
func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(domain.UnitOfWork) (domain.TxOutcome, error)) error {
	args := m.Called(ctx, fn)
	if run, ok := args.Get(0).(func(context.Context, func(domain.UnitOfWork) (domain.TxOutcome, error)) error); ok {
		return run(ctx, fn)
	}
	return args.Error(0)
}

// Passthrough configures Execute to run the work function against this mock
// and report its error, the way the real implementation runs it inside a
// transaction.
func (m *MockUnitOfWork) Passthrough() *mock.Call {
	return m.On("Execute", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(domain.UnitOfWork) (domain.TxOutcome, error)) error {
			_, err := fn(m)
			return err
		})
}
