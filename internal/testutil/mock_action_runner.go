package testutil

import (
	"context"

	"rops/internal/core/domain"
	"rops/internal/ports"

	"github.com/stretchr/testify/mock"
)

// MockActionRunner satisfies core.ActionRunner without importing the core
// package.
type MockActionRunner struct {
	mock.Mock
}

func (m *MockActionRunner) Execute(_ context.Context, action domain.PlannedAction, ref domain.GitRef, opts ports.DeployOptions) error {
	args := m.Called(action, ref, opts)
	return args.Error(0)
}
