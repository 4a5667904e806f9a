package testutil

import (
	"context"

	"rops/internal/ports"

	"github.com/stretchr/testify/mock"
)

// MockCluster provides a testify mock for ports.Cluster
type MockCluster struct {
	mock.Mock
}

func (m *MockCluster) CurrentContext() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockCluster) NamespaceExists(_ context.Context, namespace string) (bool, error) {
	args := m.Called(namespace)
	return args.Bool(0), args.Error(1)
}

var _ ports.Cluster = (*MockCluster)(nil)
