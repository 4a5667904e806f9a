package testutil

import (
	"context"

	"rops/internal/ports"

	"github.com/stretchr/testify/mock"
)

// MockCommandRunner provides a testify mock for ports.CommandRunner.
// Expectations are matched on command name and arguments; the context is
// deliberately left out of the call signature.
type MockCommandRunner struct {
	mock.Mock
}

func (m *MockCommandRunner) RunWithEnv(_ context.Context, env []string, name string, args ...string) ([]byte, error) {
	callArgs := m.Called(env, name, args)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}
	return callArgs.Get(0).([]byte), callArgs.Error(1)
}

func (m *MockCommandRunner) Capture(_ context.Context, name string, args ...string) (ports.ProcessOutcome, error) {
	callArgs := m.Called(name, args)
	return callArgs.Get(0).(ports.ProcessOutcome), callArgs.Error(1)
}

var _ ports.CommandRunner = (*MockCommandRunner)(nil)
