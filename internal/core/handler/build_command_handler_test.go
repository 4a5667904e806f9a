package handler

import (
	"context"
	"errors"
	"testing"

	"rops/internal/core"
	"rops/internal/core/domain"
	"rops/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func pipelineSettings() *domain.Settings {
	return &domain.Settings{
		Git:    domain.GitSettings{DefaultBranch: "main", NonDefaultEnvironment: domain.NonDefaultEnvironmentNone},
		Docker: domain.DockerSettings{ImageRepoURL: "registry.example.com"},
		Environments: map[string]domain.EnvironmentSettings{
			"production": {Branch: domain.EnvironmentBranchDefault, KubeContext: "prod-cluster"},
		},
	}
}

func productionEnv() *domain.EnvironmentConfig {
	return &domain.EnvironmentConfig{
		Name:        "production",
		KubeContext: "prod-cluster",
		Images: []domain.ImageTarget{
			{Name: "app", TagStrategy: domain.TagStrategyGitSha},
		},
	}
}

type pipelineFixture struct {
	settings   *domain.Settings
	configRepo *testutil.MockConfigRepository
	scm        *testutil.MockScm
	images     *testutil.MockContainerImageRepository
	helm       *testutil.MockHelmClient
	cluster    *testutil.MockCluster
}

func newPipelineFixture(settings *domain.Settings) *pipelineFixture {
	return &pipelineFixture{
		settings:   settings,
		configRepo: new(testutil.MockConfigRepository),
		scm:        new(testutil.MockScm),
		images:     new(testutil.MockContainerImageRepository),
		helm:       new(testutil.MockHelmClient),
		cluster:    new(testutil.MockCluster),
	}
}

func (f *pipelineFixture) selector() core.EnvironmentSelector {
	return core.ProvideEnvironmentSelector(f.settings, f.configRepo, f.scm)
}

func (f *pipelineFixture) orchestrator() *core.Orchestrator {
	runner := core.ProvideReleaseActionRunner(f.images, f.helm)
	return core.ProvideOrchestrator(f.settings, runner)
}

func TestBuildCommandHandler_BuildsEnvironmentImages(t *testing.T) {
	fixture := newPipelineFixture(pipelineSettings())
	ref := domain.GitRef{Branch: "main", ShortSHA: "ab12cd3"}
	fixture.scm.On("CurrentRef").Return(ref, nil)
	fixture.configRepo.On("BuildEnvironment", "production").Return(productionEnv(), nil)
	fixture.images.On("BuildImage", mock.Anything, "ab12cd3", ref).Return(nil)

	sut := ProvideBuildCommandHandler(fixture.selector(), core.ProvidePlanner(fixture.settings), fixture.orchestrator())

	err := sut.Handle(context.Background(), "", "", nil)

	assert.NoError(t, err)
	fixture.images.AssertNumberOfCalls(t, "BuildImage", 1)
	fixture.images.AssertNotCalled(t, "PushImage", mock.Anything, mock.Anything)
}

func TestBuildCommandHandler_NonDefaultBranchDoesNothing(t *testing.T) {
	fixture := newPipelineFixture(pipelineSettings())
	fixture.scm.On("CurrentRef").Return(domain.GitRef{Branch: "feature/login", ShortSHA: "ab12cd3"}, nil)

	sut := ProvideBuildCommandHandler(fixture.selector(), core.ProvidePlanner(fixture.settings), fixture.orchestrator())

	err := sut.Handle(context.Background(), "", "", nil)

	assert.NoError(t, err)
	fixture.configRepo.AssertNotCalled(t, "BuildEnvironment", mock.Anything)
	fixture.images.AssertNotCalled(t, "BuildImage", mock.Anything, mock.Anything, mock.Anything)
}

func TestBuildCommandHandler_ExplicitEnvironmentOverridesBranch(t *testing.T) {
	fixture := newPipelineFixture(pipelineSettings())
	ref := domain.GitRef{Branch: "feature/login", ShortSHA: "ab12cd3"}
	fixture.scm.On("CurrentRef").Return(ref, nil)
	fixture.configRepo.On("BuildEnvironment", "production").Return(productionEnv(), nil)
	fixture.images.On("BuildImage", mock.Anything, "ab12cd3", ref).Return(nil)

	sut := ProvideBuildCommandHandler(fixture.selector(), core.ProvidePlanner(fixture.settings), fixture.orchestrator())

	err := sut.Handle(context.Background(), "production", "", nil)

	assert.NoError(t, err)
	fixture.images.AssertNumberOfCalls(t, "BuildImage", 1)
}

func TestBuildCommandHandler_ImageArgumentNarrowsRun(t *testing.T) {
	fixture := newPipelineFixture(pipelineSettings())
	ref := domain.GitRef{Branch: "main", ShortSHA: "ab12cd3"}
	env := productionEnv()
	env.Images = append(env.Images, domain.ImageTarget{Name: "worker", TagStrategy: domain.TagStrategyGitSha})
	fixture.scm.On("CurrentRef").Return(ref, nil)
	fixture.configRepo.On("BuildEnvironment", "production").Return(env, nil)
	fixture.images.On("BuildImage", mock.MatchedBy(func(image domain.ImageTarget) bool {
		return image.Name == "worker"
	}), "ab12cd3", ref).Return(nil)

	sut := ProvideBuildCommandHandler(fixture.selector(), core.ProvidePlanner(fixture.settings), fixture.orchestrator())

	err := sut.Handle(context.Background(), "", "", []string{"worker"})

	assert.NoError(t, err)
	fixture.images.AssertNumberOfCalls(t, "BuildImage", 1)
}

func TestBuildCommandHandler_UnknownImageArgument(t *testing.T) {
	fixture := newPipelineFixture(pipelineSettings())
	fixture.scm.On("CurrentRef").Return(domain.GitRef{Branch: "main", ShortSHA: "ab12cd3"}, nil)
	fixture.configRepo.On("BuildEnvironment", "production").Return(productionEnv(), nil)

	sut := ProvideBuildCommandHandler(fixture.selector(), core.ProvidePlanner(fixture.settings), fixture.orchestrator())

	err := sut.Handle(context.Background(), "", "", []string{"missing"})

	assert.Error(t, err)
	fixture.images.AssertNotCalled(t, "BuildImage", mock.Anything, mock.Anything, mock.Anything)
}

func TestBuildCommandHandler_OutsideRepository(t *testing.T) {
	fixture := newPipelineFixture(pipelineSettings())
	fixture.scm.On("CurrentRef").Return(domain.GitRef{}, domain.ErrNotARepository)

	sut := ProvideBuildCommandHandler(fixture.selector(), core.ProvidePlanner(fixture.settings), fixture.orchestrator())

	err := sut.Handle(context.Background(), "", "", nil)

	assert.ErrorIs(t, err, domain.ErrNotARepository)
}

func TestBuildCommandHandler_BuildFailure(t *testing.T) {
	fixture := newPipelineFixture(pipelineSettings())
	ref := domain.GitRef{Branch: "main", ShortSHA: "ab12cd3"}
	fixture.scm.On("CurrentRef").Return(ref, nil)
	fixture.configRepo.On("BuildEnvironment", "production").Return(productionEnv(), nil)
	fixture.images.On("BuildImage", mock.Anything, "ab12cd3", ref).Return(errors.New("unable to prepare context"))

	sut := ProvideBuildCommandHandler(fixture.selector(), core.ProvidePlanner(fixture.settings), fixture.orchestrator())

	err := sut.Handle(context.Background(), "", "", nil)

	assert.ErrorIs(t, err, domain.ErrRunPartiallyFailed)
}
