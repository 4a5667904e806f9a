package handler

import (
	"context"
	"fmt"
	"strings"

	"rops/internal/cli/output"
	"rops/internal/core"
	"rops/internal/core/domain"
)

type PlanCommandHandler struct {
	selector core.EnvironmentSelector
	planner  *core.Planner
}

func ProvidePlanCommandHandler(
	selector core.EnvironmentSelector,
	planner *core.Planner,
) PlanCommandHandler {
	return PlanCommandHandler{selector: selector, planner: planner}
}

// Handle prints the full pipeline plan without executing anything.
func (h *PlanCommandHandler) Handle(ctx context.Context, environment string, version string) error {
	env, ref, err := h.selector.Resolve(ctx, environment)
	if err != nil {
		return err
	}
	if env == nil {
		printNoEnvironment(ref)
		return nil
	}

	plan, err := h.planner.Plan(env, ref, version, core.ScopeFull)
	if err != nil {
		return err
	}

	output.PrintHeader(fmt.Sprintf("Plan for environment %s (branch %s, commit %s)", plan.Environment, ref.Branch, ref.ShortSHA))
	if plan.IsEmpty() {
		output.PrintInfo("no actions")
		return nil
	}

	for i, action := range plan.Actions {
		fmt.Printf("  %2d. %s%s%s\n", i+1, action.ID, formatTag(action), formatDeps(plan, action))
	}
	return nil
}

func formatTag(action domain.PlannedAction) string {
	if action.Tag == "" {
		return ""
	}
	return output.Dim(fmt.Sprintf("  tag=%s", action.Tag))
}

func formatDeps(plan *domain.Plan, action domain.PlannedAction) string {
	if len(action.DependsOn) == 0 {
		return ""
	}
	names := make([]string, len(action.DependsOn))
	for i, dep := range action.DependsOn {
		names[i] = plan.Actions[dep].ID
	}
	return output.Dim(fmt.Sprintf("  after: %s", strings.Join(names, ", ")))
}
