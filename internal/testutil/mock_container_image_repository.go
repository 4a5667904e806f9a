package testutil

import (
	"context"

	"rops/internal/core/domain"
	"rops/internal/ports"

	"github.com/stretchr/testify/mock"
)

// MockContainerImageRepository provides a testify mock for
// ports.ContainerImageRepository
type MockContainerImageRepository struct {
	mock.Mock
}

func (m *MockContainerImageRepository) BuildImage(_ context.Context, image domain.ImageTarget, tag string, ref domain.GitRef) error {
	args := m.Called(image, tag, ref)
	return args.Error(0)
}

func (m *MockContainerImageRepository) PushImage(_ context.Context, image domain.ImageTarget, tag string) error {
	args := m.Called(image, tag)
	return args.Error(0)
}

var _ ports.ContainerImageRepository = (*MockContainerImageRepository)(nil)
