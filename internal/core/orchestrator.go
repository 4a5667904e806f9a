package core

import (
	"context"
	"fmt"
	"sync"

	"rops/internal/core/domain"
	"rops/internal/ports"

	"golang.org/x/sync/errgroup"
)

// ActionRunner executes one planned action against the outside world. The
// orchestrator decides when an action runs; the runner decides how.
type ActionRunner interface {
	Execute(ctx context.Context, action domain.PlannedAction, ref domain.GitRef, opts ports.DeployOptions) error
}

// RunState is the orchestrator's lifecycle. Transitions are linear:
// Idle -> Executing -> one of the terminal states. A new call to Execute
// resets a terminal state back to Executing.
type RunState int

const (
	StateIdle RunState = iota
	StateExecuting
	StateCompleted
	StatePartiallyFailed
	StateAborted
)

func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateExecuting:
		return "executing"
	case StateCompleted:
		return "completed"
	case StatePartiallyFailed:
		return "partially-failed"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

const defaultMaxParallel = 4

// Orchestrator executes a plan's actions respecting their dependency edges.
// Independent actions run concurrently up to orchestrator.max_parallel; a
// failed action marks all transitive dependents as skipped without stopping
// unrelated actions. Results are reported in plan order regardless of
// completion order.
type Orchestrator struct {
	settings *domain.Settings
	runner   ActionRunner
	observer ExecutionObserver

	mu    sync.Mutex
	state RunState
}

func ProvideOrchestrator(settings *domain.Settings, runner ActionRunner) *Orchestrator {
	return &Orchestrator{settings: settings, runner: runner, observer: noopObserver{}, state: StateIdle}
}

func (o *Orchestrator) State() RunState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) setState(state RunState) {
	o.mu.Lock()
	o.state = state
	o.mu.Unlock()
}

type actionState int

const (
	actionPending actionState = iota
	actionRunning
	actionSucceeded
	actionFailed
	actionSkipped
)

type completion struct {
	index int
	err   error
}

// ExecutionObserver receives action lifecycle events during a run. Calls
// arrive from the dispatch loop, one at a time; the observer need not be
// safe for concurrent use. Indices refer to plan positions.
type ExecutionObserver interface {
	ActionStarted(index int)
	ActionCompleted(index int, result domain.OperationResult)
}

type noopObserver struct{}

func (noopObserver) ActionStarted(int) {}

func (noopObserver) ActionCompleted(int, domain.OperationResult) {}

// SetObserver attaches a progress observer for subsequent runs. Not safe to
// call while Execute is running.
func (o *Orchestrator) SetObserver(observer ExecutionObserver) {
	o.observer = observer
}

// Execute runs every action of the plan and returns one OperationResult per
// action, in plan order. The returned error is domain.ErrRunPartiallyFailed
// when any action failed, domain.ErrRunAborted when the context was cancelled
// before the plan finished, and nil otherwise.
func (o *Orchestrator) Execute(ctx context.Context, plan *domain.Plan, ref domain.GitRef, opts ports.DeployOptions) (domain.RunReport, error) {
	o.setState(StateExecuting)

	if plan.IsEmpty() {
		o.setState(StateCompleted)
		return domain.RunReport{Status: domain.RunCompleted}, nil
	}

	maxParallel := o.settings.Orchestrator.MaxParallel
	if maxParallel <= 0 {
		maxParallel = defaultMaxParallel
	}

	states := make([]actionState, len(plan.Actions))
	results := make([]domain.OperationResult, len(plan.Actions))
	for i, action := range plan.Actions {
		results[i] = domain.OperationResult{TargetID: action.ID, Status: domain.StatusSkipped}
	}

	var group errgroup.Group
	group.SetLimit(maxParallel)
	// Buffered so workers can always report and release their pool slot even
	// while the dispatch loop is blocked in group.Go.
	done := make(chan completion, len(plan.Actions))

	remaining := len(plan.Actions)
	inFlight := 0
	aborted := false

	dispatch := func(index int) {
		states[index] = actionRunning
		inFlight++
		o.observer.ActionStarted(index)
		action := plan.Actions[index]
		group.Go(func() error {
			actionCtx := ctx
			if timeout := o.settings.Orchestrator.ActionTimeout; timeout > 0 {
				var cancel context.CancelFunc
				actionCtx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			done <- completion{index: index, err: o.runner.Execute(actionCtx, action, ref, opts)}
			return nil
		})
	}

	record := func(c completion) {
		inFlight--
		remaining--
		if c.err != nil {
			states[c.index] = actionFailed
			results[c.index] = domain.OperationResult{
				TargetID: plan.Actions[c.index].ID,
				Status:   domain.StatusFailed,
				Detail:   c.err.Error(),
			}
			o.observer.ActionCompleted(c.index, results[c.index])
			return
		}
		states[c.index] = actionSucceeded
		results[c.index] = domain.OperationResult{
			TargetID: plan.Actions[c.index].ID,
			Status:   domain.StatusSuccess,
		}
		o.observer.ActionCompleted(c.index, results[c.index])
	}

	for remaining > 0 && !aborted {
		o.cascadeSkips(plan, states, results, &remaining)

		for i := range plan.Actions {
			if states[i] == actionPending && o.depsSucceeded(plan.Actions[i], states) {
				dispatch(i)
			}
		}

		if remaining == 0 {
			break
		}

		select {
		case c := <-done:
			record(c)
		case <-ctx.Done():
			aborted = true
		}
	}

	// Let in-flight actions observe the cancellation and report, then mark
	// everything that never ran.
	for inFlight > 0 {
		record(<-done)
	}
	_ = group.Wait()

	if aborted {
		for i := range plan.Actions {
			if states[i] == actionPending {
				states[i] = actionSkipped
				results[i] = domain.OperationResult{
					TargetID: plan.Actions[i].ID,
					Status:   domain.StatusSkipped,
					Detail:   "run aborted",
				}
				o.observer.ActionCompleted(i, results[i])
				remaining--
			}
		}
		o.setState(StateAborted)
		return domain.RunReport{Status: domain.RunAborted, Results: results}, domain.ErrRunAborted
	}

	report := domain.RunReport{Status: domain.RunCompleted, Results: results}
	notSucceeded := 0
	for _, result := range results {
		if result.Status != domain.StatusSuccess {
			notSucceeded++
		}
	}
	if notSucceeded > 0 {
		report.Status = domain.RunPartiallyFailed
		o.setState(StatePartiallyFailed)
		return report, fmt.Errorf("%d of %d actions did not succeed: %w", notSucceeded, len(results), domain.ErrRunPartiallyFailed)
	}

	o.setState(StateCompleted)
	return report, nil
}

// cascadeSkips marks every pending action with a failed or skipped dependency
// as skipped, repeating until no more actions change.
func (o *Orchestrator) cascadeSkips(plan *domain.Plan, states []actionState, results []domain.OperationResult, remaining *int) {
	for changed := true; changed; {
		changed = false
		for i, action := range plan.Actions {
			if states[i] != actionPending {
				continue
			}
			for _, dep := range action.DependsOn {
				if states[dep] == actionFailed || states[dep] == actionSkipped {
					states[i] = actionSkipped
					results[i] = domain.OperationResult{
						TargetID: action.ID,
						Status:   domain.StatusSkipped,
						Detail:   fmt.Sprintf("dependency %q did not succeed", plan.Actions[dep].ID),
					}
					o.observer.ActionCompleted(i, results[i])
					(*remaining)--
					changed = true
					break
				}
			}
		}
	}
}

func (o *Orchestrator) depsSucceeded(action domain.PlannedAction, states []actionState) bool {
	for _, dep := range action.DependsOn {
		if states[dep] != actionSucceeded {
			return false
		}
	}
	return true
}
