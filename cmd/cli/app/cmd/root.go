package cmd

import (
	"context"
	"errors"

	"rops/internal/cli/output"
	"rops/internal/core/domain"

	"github.com/spf13/cobra"
)

var environment *string

var rootCmd = &cobra.Command{
	Use:   "rops",
	Short: "Release operations tool for container-based deployments",
	Long: `Rops orchestrates releases: it builds and pushes Docker images and
upgrades Helm chart releases, driven by a declarative rops.toml.

The target environment is derived from the current git branch unless
--environment is given. Run 'rops plan' to see what a release would do
without executing anything.

Common workflows:
  rops plan                   Show the pipeline for the current branch
  rops update                 Build, push and deploy the current branch
  rops deploy --dry-run       Render chart upgrades without applying them
  rops self-update            Replace this binary with the latest release`,
}

// Exit codes: 0 success, 1 configuration or fatal error, 2 partial failure,
// 3 aborted by signal.
const (
	exitFatal           = 1
	exitPartiallyFailed = 2
	exitAborted         = 3
)

func init() {
	environment = rootCmd.PersistentFlags().StringP(
		"environment", "e", "",
		"Target environment (default: derived from the current git branch)",
	)
	_ = rootCmd.RegisterFlagCompletionFunc("environment", EnvironmentCompletion)

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		output.PrintError(err.Error())
		return exitCode(err)
	}
	return 0
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrRunPartiallyFailed):
		return exitPartiallyFailed
	case errors.Is(err, domain.ErrRunAborted):
		return exitAborted
	default:
		return exitFatal
	}
}
