package scm

import (
	"context"
	"fmt"
	"strings"

	"rops/internal/core/domain"
	"rops/internal/ports"
)

// GitContext resolves the working repository's branch and commit by shelling
// out to git. It reads only local metadata; the ref is re-read on every
// command invocation and never cached across runs.
type GitContext struct {
	commandRunner ports.CommandRunner
}

func ProvideGitContext(commandRunner ports.CommandRunner) *GitContext {
	return &GitContext{commandRunner: commandRunner}
}

func (g *GitContext) CurrentRef(ctx context.Context) (domain.GitRef, error) {
	branch, err := g.revParse(ctx, "--abbrev-ref", "HEAD")
	if err != nil {
		return domain.GitRef{}, err
	}

	sha, err := g.revParse(ctx, "--short", "HEAD")
	if err != nil {
		return domain.GitRef{}, err
	}

	return domain.GitRef{Branch: branch, ShortSHA: sha}, nil
}

// notARepositoryExitCode is what git rev-parse exits with outside a work
// tree.
const notARepositoryExitCode = 128

func (g *GitContext) revParse(ctx context.Context, args ...string) (string, error) {
	outcome, err := g.commandRunner.Capture(ctx, "git", append([]string{"rev-parse"}, args...)...)
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	if outcome.ExitCode == notARepositoryExitCode {
		return "", domain.ErrNotARepository
	}
	if outcome.ExitCode != 0 {
		return "", fmt.Errorf("git rev-parse failed with exit code %d: %s",
			outcome.ExitCode, strings.TrimSpace(string(outcome.Stderr)))
	}
	return strings.TrimSpace(string(outcome.Stdout)), nil
}

var _ ports.Scm = (*GitContext)(nil)
