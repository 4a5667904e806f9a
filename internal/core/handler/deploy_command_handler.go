package handler

import (
	"context"

	"rops/internal/core"
	"rops/internal/ports"
)

type DeployCommandHandler struct {
	selector     core.EnvironmentSelector
	planner      *core.Planner
	orchestrator *core.Orchestrator
	ensurer      core.EnvironmentEnsurer
}

func ProvideDeployCommandHandler(
	selector core.EnvironmentSelector,
	planner *core.Planner,
	orchestrator *core.Orchestrator,
	ensurer core.EnvironmentEnsurer,
) DeployCommandHandler {
	return DeployCommandHandler{
		selector:     selector,
		planner:      planner,
		orchestrator: orchestrator,
		ensurer:      ensurer,
	}
}

// Handle upgrades the environment's chart releases with the images already
// in the registry. The cluster guard runs before any helm command. A
// non-empty charts list narrows the run to those releases.
func (h *DeployCommandHandler) Handle(ctx context.Context, environment string, charts []string, opts ports.DeployOptions) error {
	env, ref, err := h.selector.Resolve(ctx, environment)
	if err != nil {
		return err
	}
	if env == nil {
		printNoEnvironment(ref)
		return nil
	}

	env, err = env.FilterCharts(charts)
	if err != nil {
		return err
	}

	if err := h.ensurer.EnsureExpectedClusterIsSelected(env); err != nil {
		return err
	}
	if err := h.ensurer.EnsureNamespacesExist(ctx, env); err != nil {
		return err
	}

	plan, err := h.planner.Plan(env, ref, "", core.ScopeDeploy)
	if err != nil {
		return err
	}

	return executePlan(ctx, h.orchestrator, plan, ref, opts)
}
