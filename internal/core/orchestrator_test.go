package core

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"rops/internal/core/domain"
	"rops/internal/ports"
	"rops/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orchestratorSettings() *domain.Settings {
	return &domain.Settings{
		Git:          domain.GitSettings{DefaultBranch: "main"},
		Orchestrator: domain.OrchestratorSettings{MaxParallel: 2},
	}
}

func actionWithID(id string) interface{} {
	return mock.MatchedBy(func(action domain.PlannedAction) bool {
		return action.ID == id
	})
}

func chainPlan() *domain.Plan {
	image := &domain.ImageTarget{Name: "app", Repository: "acme/app", TagStrategy: domain.TagStrategyGitSha}
	chart := &domain.ChartTarget{Name: "app-services", Chart: "charts/app", Images: []string{"app"}}
	return &domain.Plan{
		Environment: "production",
		Actions: []domain.PlannedAction{
			{ID: "build app", Kind: domain.ActionBuildImage, Image: image, Tag: "ab12cd3"},
			{ID: "push app", Kind: domain.ActionPushImage, Image: image, Tag: "ab12cd3", DependsOn: []int{0}},
			{ID: "deploy app-services", Kind: domain.ActionUpgradeChart, Chart: chart, DependsOn: []int{1}},
		},
	}
}

func TestOrchestrator_Execute_AllActionsSucceed(t *testing.T) {
	runner := new(testutil.MockActionRunner)
	runner.On("Execute", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	sut := ProvideOrchestrator(orchestratorSettings(), runner)

	report, err := sut.Execute(context.Background(), chainPlan(), domain.GitRef{Branch: "main", ShortSHA: "ab12cd3"}, ports.DeployOptions{})

	require.NoError(t, err)
	assert.Equal(t, domain.RunCompleted, report.Status)
	assert.Equal(t, StateCompleted, sut.State())
	require.Len(t, report.Results, 3)
	assert.Equal(t, "build app", report.Results[0].TargetID)
	assert.Equal(t, "push app", report.Results[1].TargetID)
	assert.Equal(t, "deploy app-services", report.Results[2].TargetID)
	for _, result := range report.Results {
		assert.Equal(t, domain.StatusSuccess, result.Status)
	}
	runner.AssertNumberOfCalls(t, "Execute", 3)
}

func TestOrchestrator_Execute_FailureSkipsDependents(t *testing.T) {
	runner := new(testutil.MockActionRunner)
	runner.On("Execute", actionWithID("build app"), mock.Anything, mock.Anything).Return(nil)
	runner.On("Execute", actionWithID("push app"), mock.Anything, mock.Anything).
		Return(errors.New("denied: requested access to the resource is denied"))

	sut := ProvideOrchestrator(orchestratorSettings(), runner)

	report, err := sut.Execute(context.Background(), chainPlan(), domain.GitRef{Branch: "main", ShortSHA: "ab12cd3"}, ports.DeployOptions{})

	assert.ErrorIs(t, err, domain.ErrRunPartiallyFailed)
	assert.ErrorContains(t, err, "2 of 3 actions did not succeed")
	assert.Equal(t, domain.RunPartiallyFailed, report.Status)
	assert.Equal(t, StatePartiallyFailed, sut.State())
	require.Len(t, report.Results, 3)
	assert.Equal(t, domain.StatusSuccess, report.Results[0].Status)
	assert.Equal(t, domain.StatusFailed, report.Results[1].Status)
	assert.Contains(t, report.Results[1].Detail, "denied")
	assert.Equal(t, domain.StatusSkipped, report.Results[2].Status)
	assert.Contains(t, report.Results[2].Detail, "push app")
	runner.AssertNotCalled(t, "Execute", actionWithID("deploy app-services"), mock.Anything, mock.Anything)
}

func TestOrchestrator_Execute_FailureDoesNotStopUnrelatedActions(t *testing.T) {
	app := &domain.ImageTarget{Name: "app", TagStrategy: domain.TagStrategyGitSha}
	worker := &domain.ImageTarget{Name: "worker", TagStrategy: domain.TagStrategyGitSha}
	plan := &domain.Plan{
		Environment: "staging",
		Actions: []domain.PlannedAction{
			{ID: "build app", Kind: domain.ActionBuildImage, Image: app, Tag: "ab12cd3"},
			{ID: "build worker", Kind: domain.ActionBuildImage, Image: worker, Tag: "ab12cd3"},
		},
	}

	runner := new(testutil.MockActionRunner)
	runner.On("Execute", actionWithID("build app"), mock.Anything, mock.Anything).
		Return(errors.New("unable to prepare context"))
	runner.On("Execute", actionWithID("build worker"), mock.Anything, mock.Anything).Return(nil)

	sut := ProvideOrchestrator(orchestratorSettings(), runner)

	report, err := sut.Execute(context.Background(), plan, domain.GitRef{Branch: "main", ShortSHA: "ab12cd3"}, ports.DeployOptions{})

	assert.ErrorIs(t, err, domain.ErrRunPartiallyFailed)
	require.Len(t, report.Results, 2)
	assert.Equal(t, domain.StatusFailed, report.Results[0].Status)
	assert.Equal(t, domain.StatusSuccess, report.Results[1].Status)
}

// staggeredRunner parks one action until another has finished, forcing the
// later plan entry to complete first.
type staggeredRunner struct {
	holdID    string
	releaseID string
	release   chan struct{}
}

func (r *staggeredRunner) Execute(ctx context.Context, action domain.PlannedAction, _ domain.GitRef, _ ports.DeployOptions) error {
	switch action.ID {
	case r.holdID:
		select {
		case <-r.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	case r.releaseID:
		defer close(r.release)
	}
	return nil
}

func TestOrchestrator_Execute_ResultsKeepPlanOrderUnderConcurrency(t *testing.T) {
	app := &domain.ImageTarget{Name: "app", TagStrategy: domain.TagStrategyGitSha}
	worker := &domain.ImageTarget{Name: "worker", TagStrategy: domain.TagStrategyGitSha}
	plan := &domain.Plan{
		Environment: "staging",
		Actions: []domain.PlannedAction{
			{ID: "build app", Kind: domain.ActionBuildImage, Image: app, Tag: "ab12cd3"},
			{ID: "build worker", Kind: domain.ActionBuildImage, Image: worker, Tag: "ab12cd3"},
		},
	}

	// "build app" is dispatched first but may only finish after
	// "build worker" has completed.
	runner := &staggeredRunner{holdID: "build app", releaseID: "build worker", release: make(chan struct{})}
	sut := ProvideOrchestrator(orchestratorSettings(), runner)

	report, err := sut.Execute(context.Background(), plan, domain.GitRef{Branch: "main", ShortSHA: "ab12cd3"}, ports.DeployOptions{})

	require.NoError(t, err)
	assert.Equal(t, domain.RunCompleted, report.Status)
	require.Len(t, report.Results, 2)
	assert.Equal(t, "build app", report.Results[0].TargetID)
	assert.Equal(t, "build worker", report.Results[1].TargetID)
	assert.Equal(t, domain.StatusSuccess, report.Results[0].Status)
	assert.Equal(t, domain.StatusSuccess, report.Results[1].Status)
}

func TestOrchestrator_Execute_EmptyPlanCompletes(t *testing.T) {
	runner := new(testutil.MockActionRunner)
	sut := ProvideOrchestrator(orchestratorSettings(), runner)

	report, err := sut.Execute(context.Background(), &domain.Plan{Environment: "sandbox"}, domain.GitRef{}, ports.DeployOptions{})

	require.NoError(t, err)
	assert.Equal(t, domain.RunCompleted, report.Status)
	assert.Empty(t, report.Results)
	runner.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
}

// blockingRunner parks every action until its context is cancelled.
type blockingRunner struct {
	once    sync.Once
	started chan struct{}
}

func newBlockingRunner() *blockingRunner {
	return &blockingRunner{started: make(chan struct{})}
}

func (r *blockingRunner) Execute(ctx context.Context, _ domain.PlannedAction, _ domain.GitRef, _ ports.DeployOptions) error {
	r.once.Do(func() { close(r.started) })
	<-ctx.Done()
	return ctx.Err()
}

func TestOrchestrator_Execute_CancellationAbortsRun(t *testing.T) {
	runner := newBlockingRunner()
	sut := ProvideOrchestrator(orchestratorSettings(), runner)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-runner.started
		cancel()
	}()

	report, err := sut.Execute(ctx, chainPlan(), domain.GitRef{Branch: "main", ShortSHA: "ab12cd3"}, ports.DeployOptions{})

	assert.ErrorIs(t, err, domain.ErrRunAborted)
	assert.Equal(t, domain.RunAborted, report.Status)
	assert.Equal(t, StateAborted, sut.State())
	require.Len(t, report.Results, 3)
	assert.Equal(t, domain.StatusFailed, report.Results[0].Status)
	assert.Equal(t, domain.StatusSkipped, report.Results[1].Status)
	assert.Equal(t, domain.StatusSkipped, report.Results[2].Status)
}

func TestOrchestrator_Execute_ActionTimeoutFailsAction(t *testing.T) {
	settings := orchestratorSettings()
	settings.Orchestrator.ActionTimeout = 10 * time.Millisecond

	runner := newBlockingRunner()
	sut := ProvideOrchestrator(settings, runner)

	plan := &domain.Plan{
		Environment: "staging",
		Actions: []domain.PlannedAction{
			{ID: "build app", Kind: domain.ActionBuildImage, Image: &domain.ImageTarget{Name: "app"}, Tag: "ab12cd3"},
		},
	}

	report, err := sut.Execute(context.Background(), plan, domain.GitRef{}, ports.DeployOptions{})

	assert.ErrorIs(t, err, domain.ErrRunPartiallyFailed)
	require.Len(t, report.Results, 1)
	assert.Equal(t, domain.StatusFailed, report.Results[0].Status)
	assert.Contains(t, report.Results[0].Detail, "deadline")
}
