package handler

import (
	"context"

	"rops/internal/core"
	"rops/internal/ports"
)

type PushCommandHandler struct {
	selector     core.EnvironmentSelector
	planner      *core.Planner
	orchestrator *core.Orchestrator
}

func ProvidePushCommandHandler(
	selector core.EnvironmentSelector,
	planner *core.Planner,
	orchestrator *core.Orchestrator,
) PushCommandHandler {
	return PushCommandHandler{
		selector:     selector,
		planner:      planner,
		orchestrator: orchestrator,
	}
}

// Handle builds and pushes the selected environment's images. Pushing always
// rebuilds first so the registry never receives a stale local image. A
// non-empty images list narrows the run to those targets.
func (h *PushCommandHandler) Handle(ctx context.Context, environment string, version string, images []string) error {
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

	plan, err := h.planner.Plan(env, ref, version, core.ScopePush)
	if err != nil {
		return err
	}

	return executePlan(ctx, h.orchestrator, plan, ref, ports.DeployOptions{})
}
