// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"boundsmith.dev/pkg/boundsmith/internal/domain"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a MockWorkflow bound to the test's lifecycle.
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

// Scan implements domain.Workflow.
func (m *MockWorkflow) Scan(ctx context.Context, args domain.ScanArgs) error {
	ret := m.Called(ctx, args)
	return ret.Error(0)
}

// List implements domain.Workflow.
func (m *MockWorkflow) List(ctx context.Context, args domain.ListArgs) error {
	ret := m.Called(ctx, args)
	return ret.Error(0)
}

// View implements domain.Workflow.
func (m *MockWorkflow) View(ctx context.Context, args domain.ViewArgs) error {
	ret := m.Called(ctx, args)
	return ret.Error(0)
}

// Generate implements domain.Workflow.
func (m *MockWorkflow) Generate(ctx context.Context, args domain.GenerateArgs) error {
	ret := m.Called(ctx, args)
	return ret.Error(0)
}
