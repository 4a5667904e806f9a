package domain

import "fmt"

// ActionKind discriminates the units of orchestrated work.
type ActionKind int

const (
	ActionBuildImage ActionKind = iota
	ActionPushImage
	ActionUpgradeChart
)

func (k ActionKind) String() string {
	switch k {
	case ActionBuildImage:
		return "build"
	case ActionPushImage:
		return "push"
	case ActionUpgradeChart:
		return "deploy"
	default:
		return "unknown"
	}
}

// PlannedAction is one unit of work with explicit ordering dependencies.
// DependsOn holds indices into the owning Plan's action list; an action runs
// only after all its dependencies succeeded.
type PlannedAction struct {
	ID        string
	Kind      ActionKind
	Image     *ImageTarget
	Chart     *ChartTarget
	Tag       string
	DependsOn []int
}

// Plan is the ordered, immutable action list produced for a single run.
type Plan struct {
	Environment string
	Actions     []PlannedAction
}

func (p *Plan) IsEmpty() bool {
	return len(p.Actions) == 0
}

// Validate checks the plan's structural invariants independently of how it
// was constructed: dependencies point strictly backwards (the list is a
// topological order), every push depends on a build of the same image, and
// every chart upgrade depends on the push of each referenced image that is
// part of the plan. A chart may reference images with no planned push; those
// were published by an earlier run.
func (p *Plan) Validate() error {
	builds := map[string]int{}
	pushes := map[string]int{}

	for i, action := range p.Actions {
		for _, dep := range action.DependsOn {
			if dep < 0 || dep >= i {
				return fmt.Errorf("action %d (%s) has dependency %d outside [0, %d)", i, action.ID, dep, i)
			}
		}

		switch action.Kind {
		case ActionBuildImage:
			if action.Image == nil {
				return fmt.Errorf("action %d (%s) is a build without an image target", i, action.ID)
			}
			builds[action.Image.Name] = i
		case ActionPushImage:
			if action.Image == nil {
				return fmt.Errorf("action %d (%s) is a push without an image target", i, action.ID)
			}
			buildIndex, ok := builds[action.Image.Name]
			if !ok {
				return fmt.Errorf("push of %q at %d has no preceding build", action.Image.Name, i)
			}
			if !containsIndex(action.DependsOn, buildIndex) {
				return fmt.Errorf("push of %q at %d does not depend on its build at %d", action.Image.Name, i, buildIndex)
			}
			pushes[action.Image.Name] = i
		case ActionUpgradeChart:
			if action.Chart == nil {
				return fmt.Errorf("action %d (%s) is a chart upgrade without a chart target", i, action.ID)
			}
			for _, imageName := range action.Chart.Images {
				pushIndex, ok := pushes[imageName]
				if !ok {
					continue
				}
				if !containsIndex(action.DependsOn, pushIndex) {
					return fmt.Errorf("chart %q at %d does not depend on push of %q at %d", action.Chart.Name, i, imageName, pushIndex)
				}
			}
		}
	}

	return nil
}

func containsIndex(indices []int, want int) bool {
	for _, index := range indices {
		if index == want {
			return true
		}
	}
	return false
}
