package core

import (
	"fmt"
	"testing"

	"rops/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func plannerSettings() *domain.Settings {
	return &domain.Settings{
		Git:    domain.GitSettings{DefaultBranch: "main"},
		Docker: domain.DockerSettings{ImageRepoURL: "registry.example.com"},
	}
}

func TestPlanner_Plan_BuildPushDeployChain(t *testing.T) {
	env := &domain.EnvironmentConfig{
		Name: "production",
		Images: []domain.ImageTarget{
			{Name: "app", Repository: "acme/app", TagStrategy: domain.TagStrategyGitSha},
		},
		Charts: []domain.ChartTarget{
			{Name: "app-services", Release: "app-services-default", Chart: "charts/app", Images: []string{"app"}},
		},
	}
	sut := ProvidePlanner(plannerSettings())

	plan, err := sut.Plan(env, domain.GitRef{Branch: "main", ShortSHA: "ab12cd3"}, "", ScopeFull)

	require.NoError(t, err)
	require.Len(t, plan.Actions, 3)
	assert.Equal(t, "production", plan.Environment)

	assert.Equal(t, "build app", plan.Actions[0].ID)
	assert.Equal(t, domain.ActionBuildImage, plan.Actions[0].Kind)
	assert.Equal(t, "ab12cd3", plan.Actions[0].Tag)
	assert.Empty(t, plan.Actions[0].DependsOn)

	assert.Equal(t, "push app", plan.Actions[1].ID)
	assert.Equal(t, "ab12cd3", plan.Actions[1].Tag)
	assert.Equal(t, []int{0}, plan.Actions[1].DependsOn)

	assert.Equal(t, "deploy app-services", plan.Actions[2].ID)
	assert.Equal(t, domain.ActionUpgradeChart, plan.Actions[2].Kind)
	assert.Equal(t, []int{1}, plan.Actions[2].DependsOn)
}

func TestPlanner_Plan_ScopeBuildOmitsPushesAndCharts(t *testing.T) {
	env := &domain.EnvironmentConfig{
		Name: "staging",
		Images: []domain.ImageTarget{
			{Name: "app", TagStrategy: domain.TagStrategyBranch},
			{Name: "worker", TagStrategy: domain.TagStrategyBranch},
		},
		Charts: []domain.ChartTarget{
			{Name: "app-services", Chart: "charts/app", Images: []string{"app"}},
		},
	}
	sut := ProvidePlanner(plannerSettings())

	plan, err := sut.Plan(env, domain.GitRef{Branch: "feature/login", ShortSHA: "ab12cd3"}, "", ScopeBuild)

	require.NoError(t, err)
	require.Len(t, plan.Actions, 2)
	assert.Equal(t, domain.ActionBuildImage, plan.Actions[0].Kind)
	assert.Equal(t, "feature-login", plan.Actions[0].Tag)
	assert.Equal(t, domain.ActionBuildImage, plan.Actions[1].Kind)
}

func TestPlanner_Plan_ScopeDeployHasNoImageDependencies(t *testing.T) {
	env := &domain.EnvironmentConfig{
		Name: "production",
		Images: []domain.ImageTarget{
			{Name: "app", TagStrategy: domain.TagStrategyGitSha},
		},
		Charts: []domain.ChartTarget{
			{Name: "app-services", Chart: "charts/app", Images: []string{"app"}},
		},
	}
	sut := ProvidePlanner(plannerSettings())

	plan, err := sut.Plan(env, domain.GitRef{Branch: "main", ShortSHA: "ab12cd3"}, "", ScopeDeploy)

	require.NoError(t, err)
	require.Len(t, plan.Actions, 1)
	assert.Equal(t, domain.ActionUpgradeChart, plan.Actions[0].Kind)
	assert.Empty(t, plan.Actions[0].DependsOn)
}

func TestPlanner_Plan_EmptyEnvironmentYieldsEmptyPlan(t *testing.T) {
	sut := ProvidePlanner(plannerSettings())

	plan, err := sut.Plan(&domain.EnvironmentConfig{Name: "sandbox"}, domain.GitRef{Branch: "main"}, "", ScopeFull)

	require.NoError(t, err)
	assert.True(t, plan.IsEmpty())
}

func TestPlanner_ResolveTag(t *testing.T) {
	sut := ProvidePlanner(plannerSettings())
	ref := domain.GitRef{Branch: "feature/login#2", ShortSHA: "ab12cd3"}

	tag, err := sut.ResolveTag(domain.ImageTarget{Name: "app", TagStrategy: domain.TagStrategyGitSha}, ref, "")
	require.NoError(t, err)
	assert.Equal(t, "ab12cd3", tag)

	tag, err = sut.ResolveTag(domain.ImageTarget{Name: "app", TagStrategy: domain.TagStrategyBranch}, ref, "")
	require.NoError(t, err)
	assert.Equal(t, "feature-login-2", tag)

	tag, err = sut.ResolveTag(domain.ImageTarget{Name: "app", TagStrategy: domain.TagStrategySemVer}, ref, "1.4.0")
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", tag)
}

func TestPlanner_ResolveTag_SemVerWithoutVersion(t *testing.T) {
	sut := ProvidePlanner(plannerSettings())

	_, err := sut.ResolveTag(domain.ImageTarget{Name: "app", TagStrategy: domain.TagStrategySemVer}, domain.GitRef{Branch: "main"}, "")

	assert.ErrorIs(t, err, domain.ErrVersionRequired)
}

func TestPlanner_Plan_GeneratedEnvironmentsAreAlwaysValid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		imageCount := rapid.IntRange(0, 6).Draw(t, "imageCount")
		env := &domain.EnvironmentConfig{Name: "generated"}
		var imageNames []string
		for i := 0; i < imageCount; i++ {
			name := fmt.Sprintf("image-%d", i)
			imageNames = append(imageNames, name)
			env.Images = append(env.Images, domain.ImageTarget{
				Name:        name,
				TagStrategy: domain.TagStrategyGitSha,
			})
		}

		chartCount := rapid.IntRange(0, 4).Draw(t, "chartCount")
		for i := 0; i < chartCount; i++ {
			var refs []string
			if imageCount > 0 {
				refs = rapid.SliceOfNDistinct(
					rapid.SampledFrom(imageNames), 0, imageCount, rapid.ID[string],
				).Draw(t, fmt.Sprintf("chart-%d-images", i))
			}
			env.Charts = append(env.Charts, domain.ChartTarget{
				Name:   fmt.Sprintf("chart-%d", i),
				Chart:  fmt.Sprintf("charts/chart-%d", i),
				Images: refs,
			})
		}

		sut := ProvidePlanner(plannerSettings())
		plan, err := sut.Plan(env, domain.GitRef{Branch: "main", ShortSHA: "ab12cd3"}, "", ScopeFull)

		if err != nil {
			t.Fatalf("planning failed: %v", err)
		}
		if got, want := len(plan.Actions), 2*imageCount+chartCount; got != want {
			t.Fatalf("plan has %d actions, want %d", got, want)
		}
		if err := plan.Validate(); err != nil {
			t.Fatalf("generated plan is invalid: %v", err)
		}
		for i, action := range plan.Actions {
			for _, dep := range action.DependsOn {
				if dep >= i {
					t.Fatalf("action %d depends on later action %d", i, dep)
				}
			}
		}
	})
}
