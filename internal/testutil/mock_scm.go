package testutil

import (
	"context"

	"rops/internal/core/domain"
	"rops/internal/ports"

	"github.com/stretchr/testify/mock"
)

// MockScm provides a testify mock for ports.Scm
type MockScm struct {
	mock.Mock
}

func (m *MockScm) CurrentRef(_ context.Context) (domain.GitRef, error) {
	args := m.Called()
	return args.Get(0).(domain.GitRef), args.Error(1)
}

var _ ports.Scm = (*MockScm)(nil)
