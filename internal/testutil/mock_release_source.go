package testutil

import (
	"context"
	"io"

	"rops/internal/core/domain"
	"rops/internal/ports"

	"github.com/stretchr/testify/mock"
)

// MockReleaseSource provides a testify mock for ports.ReleaseSource
type MockReleaseSource struct {
	mock.Mock
}

func (m *MockReleaseSource) List(_ context.Context) ([]domain.Release, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Release), args.Error(1)
}

func (m *MockReleaseSource) Latest(_ context.Context) (domain.Release, error) {
	args := m.Called()
	return args.Get(0).(domain.Release), args.Error(1)
}

func (m *MockReleaseSource) Get(_ context.Context, tag string) (domain.Release, error) {
	args := m.Called(tag)
	return args.Get(0).(domain.Release), args.Error(1)
}

func (m *MockReleaseSource) DownloadAsset(_ context.Context, asset domain.ReleaseAsset) (io.ReadCloser, error) {
	args := m.Called(asset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

var _ ports.ReleaseSource = (*MockReleaseSource)(nil)
