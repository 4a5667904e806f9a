package command_runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"rops/internal/core/domain"
	"rops/internal/ports"
)

// terminationGrace is how long a child gets between context cancellation and
// a hard kill.
const terminationGrace = 10 * time.Second

// OsCommandRunner executes external commands using os/exec, honouring
// context deadlines and cancellation.
type OsCommandRunner struct{}

func ProvideOsCommandRunner() *OsCommandRunner {
	return &OsCommandRunner{}
}

func (r *OsCommandRunner) RunWithEnv(ctx context.Context, env []string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = terminationGrace
	cmd.Env = append(os.Environ(), env...) // Extend environment instead of replacing
	output, err := cmd.CombinedOutput()
	return output, classifyContextError(ctx, err)
}

func (r *OsCommandRunner) Capture(ctx context.Context, name string, args ...string) (ports.ProcessOutcome, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = terminationGrace

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	outcome := ports.ProcessOutcome{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		outcome.TimedOut = true
		outcome.ExitCode = -1
		return outcome, fmt.Errorf("%s: %w", name, domain.ErrTimedOut)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			outcome.ExitCode = exitErr.ExitCode()
			return outcome, nil
		}
		return outcome, fmt.Errorf("failed to start %s: %w", name, err)
	}

	return outcome, nil
}

func classifyContextError(ctx context.Context, err error) error {
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domain.ErrTimedOut
	}
	return err
}

var _ ports.CommandRunner = (*OsCommandRunner)(nil)
