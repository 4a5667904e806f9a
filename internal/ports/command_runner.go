package ports

import "context"

// ProcessOutcome is the observed result of one external command. A non-zero
// exit code is data, not an error: callers classify it per target semantics.
type ProcessOutcome struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	TimedOut bool
}

// CommandRunner executes external commands (docker, helm, git). All methods
// honour context cancellation and deadlines; on expiry the child process is
// terminated.
type CommandRunner interface {
	// RunWithEnv executes a command with extra environment variables appended
	// to the inherited environment and returns its combined output. The
	// returned error is non-nil for non-zero exits and spawn failures.
	RunWithEnv(ctx context.Context, env []string, name string, args ...string) ([]byte, error)
	// Capture executes a command and reports exit code and separated output
	// streams. The returned error is non-nil only when the command could not
	// be started or the context expired.
	Capture(ctx context.Context, name string, args ...string) (ProcessOutcome, error)
}
