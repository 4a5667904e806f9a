package testutil

import (
	"rops/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockConfigRepository satisfies core.ConfigRepository without importing the
// core package, which would cycle through the core tests.
type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) LoadSettings() (*domain.Settings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockConfigRepository) LoadChartDefinitions() (map[string]domain.ChartDefinition, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.ChartDefinition), args.Error(1)
}

func (m *MockConfigRepository) BuildEnvironment(name string) (*domain.EnvironmentConfig, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EnvironmentConfig), args.Error(1)
}
