package container_orchestrator

import (
	"context"
	"fmt"
	"strings"

	"rops/internal/core/domain"
	"rops/internal/ports"
)

var _ ports.HelmClient = (*HelmClient)(nil)

// HelmClient implements ports.HelmClient using the helm CLI.
type HelmClient struct {
	commandRunner ports.CommandRunner
}

func ProvideHelmClient(runner ports.CommandRunner) *HelmClient {
	return &HelmClient{
		commandRunner: runner,
	}
}

// Upgrade runs `helm upgrade --install` for a chart target.
func (h *HelmClient) Upgrade(ctx context.Context, chart domain.ChartTarget, opts ports.DeployOptions) error {
	cmdArgs := []string{
		"upgrade",
		"--install",
		"--labels", "managed-by=rops",
		chart.Release,
		chart.Chart,
	}

	if chart.Namespace != "" {
		cmdArgs = append(cmdArgs, "--namespace", chart.Namespace)
	}

	for _, values := range chart.Values {
		cmdArgs = append(cmdArgs, "-f", values)
	}

	for _, set := range opts.Set {
		cmdArgs = append(cmdArgs, "--set", set)
	}

	if opts.Wait {
		cmdArgs = append(cmdArgs, "--wait")
	}

	if opts.DryRun {
		cmdArgs = append(cmdArgs, "--dry-run")
	}

	outcome, err := h.commandRunner.Capture(ctx, "helm", cmdArgs...)
	if err != nil {
		return fmt.Errorf("helm upgrade of %s: %w", chart.Release, err)
	}
	if outcome.ExitCode != 0 {
		return fmt.Errorf("helm upgrade of %s failed with exit code %d: %s",
			chart.Release, outcome.ExitCode, strings.TrimSpace(string(outcome.Stderr)))
	}

	return nil
}
