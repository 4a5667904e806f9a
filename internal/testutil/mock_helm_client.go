package testutil

import (
	"context"

	"rops/internal/core/domain"
	"rops/internal/ports"

	"github.com/stretchr/testify/mock"
)

// MockHelmClient provides a testify mock for ports.HelmClient
type MockHelmClient struct {
	mock.Mock
}

func (m *MockHelmClient) Upgrade(_ context.Context, chart domain.ChartTarget, opts ports.DeployOptions) error {
	args := m.Called(chart, opts)
	return args.Error(0)
}

var _ ports.HelmClient = (*MockHelmClient)(nil)
