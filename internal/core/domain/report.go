package domain

// OperationStatus is the final state of one planned action.
type OperationStatus int

const (
	StatusSuccess OperationStatus = iota
	StatusFailed
	StatusSkipped
)

func (s OperationStatus) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// OperationResult records the outcome of one action. Results are created
// once per action per run and never mutated.
type OperationResult struct {
	TargetID string
	Status   OperationStatus
	Detail   string
}

// RunStatus is the terminal state of an orchestrated run.
type RunStatus int

const (
	RunCompleted RunStatus = iota
	RunPartiallyFailed
	RunAborted
)

func (s RunStatus) String() string {
	switch s {
	case RunCompleted:
		return "completed"
	case RunPartiallyFailed:
		return "partially failed"
	case RunAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// RunReport is the summary of one run. Results are ordered by plan index
// regardless of execution interleaving.
type RunReport struct {
	Status  RunStatus
	Results []OperationResult
}
