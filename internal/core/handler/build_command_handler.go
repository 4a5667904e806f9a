package handler

import (
	"context"

	"rops/internal/core"
	"rops/internal/ports"
)

type BuildCommandHandler struct {
	selector     core.EnvironmentSelector
	planner      *core.Planner
	orchestrator *core.Orchestrator
}

func ProvideBuildCommandHandler(
	selector core.EnvironmentSelector,
	planner *core.Planner,
	orchestrator *core.Orchestrator,
) BuildCommandHandler {
	return BuildCommandHandler{
		selector:     selector,
		planner:      planner,
		orchestrator: orchestrator,
	}
}

// Handle builds the environment's Docker images. A non-empty images list
// narrows the run to those targets.
func (h *BuildCommandHandler) Handle(ctx context.Context, environment string, version string, images []string) error {
	env, ref, err := h.selector.Resolve(ctx, environment)
	if err != nil {
		return err
	}
	if env == nil {
		printNoEnvironment(ref)
		return nil
	}

	env, err = env.FilterImages(images)
	if err != nil {
		return err
	}

	plan, err := h.planner.Plan(env, ref, version, core.ScopeBuild)
	if err != nil {
		return err
	}

	return executePlan(ctx, h.orchestrator, plan, ref, ports.DeployOptions{})
}
