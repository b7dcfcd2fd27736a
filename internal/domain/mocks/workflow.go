// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"flowlint.dev/pkg/flowlint/internal/domain"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a MockWorkflow registered with the test's cleanup.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
},
) *MockWorkflow {
	m := &MockWorkflow{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Check provides a mock function.
func (m *MockWorkflow) Check(ctx context.Context, args domain.CheckBatchArgs) error {
	ret := m.Called(ctx, args)
	return ret.Error(0)
}

// Coverage provides a mock function.
func (m *MockWorkflow) Coverage(ctx context.Context, args domain.CoverageRunArgs) error {
	ret := m.Called(ctx, args)
	return ret.Error(0)
}

// View provides a mock function.
func (m *MockWorkflow) View(ctx context.Context, args domain.ViewArgs) error {
	ret := m.Called(ctx, args)
	return ret.Error(0)
}
