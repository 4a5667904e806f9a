package testutil

import (
	"rops/internal/ports"

	"github.com/stretchr/testify/mock"
)

// MockFileSystem provides a testify mock for ports.FileSystem
type MockFileSystem struct {
	mock.Mock
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockFileSystem) FileExists(path string) (bool, error) {
	args := m.Called(path)
	return args.Bool(0), args.Error(1)
}

var _ ports.FileSystem = (*MockFileSystem)(nil)
