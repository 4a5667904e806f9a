package handler

import (
	"context"

	"rops/internal/core"
	"rops/internal/ports"
)

type UpdateCommandHandler struct {
	selector     core.EnvironmentSelector
	planner      *core.Planner
	orchestrator *core.Orchestrator
	ensurer      core.EnvironmentEnsurer
}

func ProvideUpdateCommandHandler(
	selector core.EnvironmentSelector,
	planner *core.Planner,
	orchestrator *core.Orchestrator,
	ensurer core.EnvironmentEnsurer,
) UpdateCommandHandler {
	return UpdateCommandHandler{
		selector:     selector,
		planner:      planner,
		orchestrator: orchestrator,
		ensurer:      ensurer,
	}
}

// Handle runs the full pipeline: build and push every image, then upgrade
// every chart, with independent targets running concurrently.
func (h *UpdateCommandHandler) Handle(ctx context.Context, environment string, version string, opts ports.DeployOptions) error {
	env, ref, err := h.selector.Resolve(ctx, environment)
	if err != nil {
		return err
	}
	if env == nil {
		printNoEnvironment(ref)
		return nil
	}

	if len(env.Charts) > 0 {
		if err := h.ensurer.EnsureExpectedClusterIsSelected(env); err != nil {
			return err
		}
		if err := h.ensurer.EnsureNamespacesExist(ctx, env); err != nil {
			return err
		}
	}

	plan, err := h.planner.Plan(env, ref, version, core.ScopeFull)
	if err != nil {
		return err
	}

	return executePlan(ctx, h.orchestrator, plan, ref, opts)
}
