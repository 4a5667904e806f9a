package ports

import (
	"context"

	"rops/internal/core/domain"
)

// DeployOptions are operator-supplied helm passthrough options.
type DeployOptions struct {
	Set    []string
	Wait   bool
	DryRun bool
}

// HelmClient upgrades chart releases via the helm CLI.
type HelmClient interface {
	// Upgrade runs `helm upgrade --install` for a chart target.
	Upgrade(ctx context.Context, chart domain.ChartTarget, opts DeployOptions) error
}
