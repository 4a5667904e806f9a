package handler

import (
	"context"
	"fmt"

	"rops/internal/cli/output"
	"rops/internal/cli/progress"
	"rops/internal/core"
	"rops/internal/core/domain"
	"rops/internal/ports"
)

// executePlan drives a plan through the orchestrator with live progress and
// prints the run summary. The orchestrator's error is passed through so the
// command layer can map it to an exit code.
func executePlan(
	ctx context.Context,
	orchestrator *core.Orchestrator,
	plan *domain.Plan,
	ref domain.GitRef,
	opts ports.DeployOptions,
) error {
	if plan.IsEmpty() {
		output.PrintInfo(fmt.Sprintf("nothing to do for environment %s", plan.Environment))
		return nil
	}

	names := make([]string, len(plan.Actions))
	for i, action := range plan.Actions {
		names[i] = action.ID
	}

	output.PrintHeader(fmt.Sprintf("Environment %s, %d %s", plan.Environment, len(plan.Actions),
		output.Plural(len(plan.Actions), "action", "actions")))

	tracker := progress.NewTracker(names)
	orchestrator.SetObserver(tracker)
	tracker.Start()
	report, err := orchestrator.Execute(ctx, plan, ref, opts)
	tracker.Stop()

	switch report.Status {
	case domain.RunCompleted:
		output.PrintSuccess(tracker.Summary())
	default:
		output.PrintError(tracker.Summary())
	}
	return err
}

// printNoEnvironment reports the intentional no-deploy case for a branch.
func printNoEnvironment(ref domain.GitRef) {
	output.PrintInfo(fmt.Sprintf("branch %s does not map to an environment, nothing to do", ref.Branch))
}
