package core

import (
	"context"
	"fmt"

	"rops/internal/core/domain"
	"rops/internal/ports"
)

// ReleaseActionRunner maps planned actions onto the container and chart
// adapters. It carries no per-run state; the ref and deploy options travel
// with each call.
type ReleaseActionRunner struct {
	images ports.ContainerImageRepository
	helm   ports.HelmClient
}

func ProvideReleaseActionRunner(
	images ports.ContainerImageRepository,
	helm ports.HelmClient,
) *ReleaseActionRunner {
	return &ReleaseActionRunner{images: images, helm: helm}
}

func (r *ReleaseActionRunner) Execute(ctx context.Context, action domain.PlannedAction, ref domain.GitRef, opts ports.DeployOptions) error {
	switch action.Kind {
	case domain.ActionBuildImage:
		return r.images.BuildImage(ctx, *action.Image, action.Tag, ref)
	case domain.ActionPushImage:
		return r.images.PushImage(ctx, *action.Image, action.Tag)
	case domain.ActionUpgradeChart:
		return r.helm.Upgrade(ctx, *action.Chart, opts)
	default:
		return fmt.Errorf("action %q has unknown kind %d", action.ID, action.Kind)
	}
}

var _ ActionRunner = (*ReleaseActionRunner)(nil)
