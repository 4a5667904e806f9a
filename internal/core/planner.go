package core

import (
	"fmt"

	"rops/internal/core/domain"
)

// PlanScope restricts which action kinds a plan contains.
type PlanScope int

const (
	// ScopeBuild plans image builds only.
	ScopeBuild PlanScope = iota
	// ScopePush plans builds and pushes.
	ScopePush
	// ScopeDeploy plans chart upgrades only.
	ScopeDeploy
	// ScopeFull plans builds, pushes and chart upgrades.
	ScopeFull
)

// Planner turns an environment's targets into an executable action list.
// Planning is deterministic: the same settings, ref and version always yield
// the same plan, and it touches neither the network nor the cluster.
type Planner struct {
	settings *domain.Settings
}

func ProvidePlanner(settings *domain.Settings) *Planner {
	return &Planner{settings: settings}
}

// ResolveTag derives the image tag for a ref. version is the --version flag
// value and is only consulted by the semver strategy.
func (p *Planner) ResolveTag(image domain.ImageTarget, ref domain.GitRef, version string) (string, error) {
	switch image.TagStrategy {
	case domain.TagStrategyGitSha:
		return ref.ShortSHA, nil
	case domain.TagStrategyBranch:
		return domain.SanitizeTag(ref.Branch), nil
	case domain.TagStrategySemVer:
		if version == "" {
			return "", fmt.Errorf("image %q uses the semver tag strategy: %w", image.Name, domain.ErrVersionRequired)
		}
		return version, nil
	default:
		return "", fmt.Errorf("image %q has unknown tag strategy %q", image.Name, image.TagStrategy)
	}
}

// Plan builds the action list for one environment. Actions are listed in a
// topological order: builds, then pushes, then chart upgrades, with explicit
// dependency edges between them.
func (p *Planner) Plan(env *domain.EnvironmentConfig, ref domain.GitRef, version string, scope PlanScope) (*domain.Plan, error) {
	plan := &domain.Plan{Environment: env.Name}

	buildIndex := map[string]int{}
	pushIndex := map[string]int{}

	if scope != ScopeDeploy {
		for i := range env.Images {
			image := &env.Images[i]
			tag, err := p.ResolveTag(*image, ref, version)
			if err != nil {
				return nil, err
			}

			buildIndex[image.Name] = len(plan.Actions)
			plan.Actions = append(plan.Actions, domain.PlannedAction{
				ID:    fmt.Sprintf("build %s", image.Name),
				Kind:  domain.ActionBuildImage,
				Image: image,
				Tag:   tag,
			})
		}
	}

	if scope == ScopePush || scope == ScopeFull {
		for i := range env.Images {
			image := &env.Images[i]
			pushIndex[image.Name] = len(plan.Actions)
			plan.Actions = append(plan.Actions, domain.PlannedAction{
				ID:        fmt.Sprintf("push %s", image.Name),
				Kind:      domain.ActionPushImage,
				Image:     image,
				Tag:       plan.Actions[buildIndex[image.Name]].Tag,
				DependsOn: []int{buildIndex[image.Name]},
			})
		}
	}

	if scope == ScopeDeploy || scope == ScopeFull {
		for i := range env.Charts {
			chart := &env.Charts[i]
			var deps []int
			for _, imageName := range chart.Images {
				if index, ok := pushIndex[imageName]; ok {
					deps = append(deps, index)
				}
			}
			plan.Actions = append(plan.Actions, domain.PlannedAction{
				ID:        fmt.Sprintf("deploy %s", chart.Name),
				Kind:      domain.ActionUpgradeChart,
				Chart:     chart,
				DependsOn: deps,
			})
		}
	}

	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("planned actions are inconsistent: %w", err)
	}
	return plan, nil
}
