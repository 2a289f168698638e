package workflow

import (
	"fmt"
	"sort"

	"github.com/mgx-dev/mgx/pkg/models"
)

// graph is the dependency view of a workflow, keyed by step name.
type graph struct {
	steps      map[string]*StepDef
	dependents map[string][]string
}

// buildGraph indexes steps and their reverse edges. Duplicate names and
// dangling references are reported by Validate, not here.
func buildGraph(steps []*StepDef) *graph {
	g := &graph{
		steps:      make(map[string]*StepDef, len(steps)),
		dependents: make(map[string][]string),
	}
	for _, s := range steps {
		g.steps[s.Name] = s
	}
	for _, s := range steps {
		for _, dep := range s.DependsOn {
			g.dependents[dep] = append(g.dependents[dep], s.Name)
		}
	}
	return g
}

// ValidateWorkflow checks the step graph: unique names, resolvable
// dependency and branch references, and acyclicity (Kahn's algorithm; any
// node left unqueued is part of a cycle). Returns every finding, not just
// the first.
func ValidateWorkflow(w *Workflow) []error {
	var errs []error

	seen := make(map[string]bool, len(w.Steps))
	for _, s := range w.Steps {
		if s.Name == "" {
			errs = append(errs, models.NewFailure(models.ErrKindInvalidInput, "step with empty name"))
			continue
		}
		if seen[s.Name] {
			errs = append(errs, models.NewFailure(models.ErrKindInvalidInput, "duplicate step name %q", s.Name))
		}
		seen[s.Name] = true
	}

	for _, s := range w.Steps {
		for _, dep := range s.DependsOn {
			if !seen[dep] {
				errs = append(errs, models.NewFailure(models.ErrKindInvalidInput,
					"step %q depends on unknown step %q", s.Name, dep))
			}
			if dep == s.Name {
				errs = append(errs, models.NewFailure(models.ErrKindInvalidInput,
					"step %q depends on itself", s.Name))
			}
		}
		if s.Condition != nil {
			for _, ref := range append(append([]string{}, s.Condition.TrueSteps...), s.Condition.FalseSteps...) {
				if !seen[ref] {
					errs = append(errs, models.NewFailure(models.ErrKindInvalidInput,
						"condition step %q selects unknown step %q", s.Name, ref))
				}
			}
		}
		for _, child := range s.Children {
			if !seen[child] {
				errs = append(errs, models.NewFailure(models.ErrKindInvalidInput,
					"parallel step %q groups unknown step %q", s.Name, child))
			}
		}
		if s.Type == StepTypeApproval && s.Approval == nil {
			errs = append(errs, models.NewFailure(models.ErrKindInvalidInput,
				"approval step %q has no approval config", s.Name))
		}
		if s.Type == StepTypeCondition && (s.Condition == nil || s.Condition.Expression == "") {
			errs = append(errs, models.NewFailure(models.ErrKindInvalidInput,
				"condition step %q has no expression", s.Name))
		}
	}
	if len(errs) > 0 {
		return errs
	}

	if cycle := findCycle(w.Steps); len(cycle) > 0 {
		errs = append(errs, models.NewFailure(models.ErrKindInvalidInput,
			"workflow contains a dependency cycle: %v", cycle))
	}
	return errs
}

// findCycle runs Kahn's algorithm and returns the names left unqueued,
// sorted for determinism. Empty means acyclic.
func findCycle(steps []*StepDef) []string {
	indegree := make(map[string]int, len(steps))
	dependents := make(map[string][]string)
	for _, s := range steps {
		indegree[s.Name] = len(s.DependsOn)
		for _, dep := range s.DependsOn {
			dependents[dep] = append(dependents[dep], s.Name)
		}
	}

	var queue []string
	for name, deg := range indegree {
		if deg == 0 {
			queue = append(queue, name)
		}
	}

	processed := 0
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		processed++
		for _, next := range dependents[name] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if processed == len(steps) {
		return nil
	}
	var cycle []string
	for name, deg := range indegree {
		if deg > 0 {
			cycle = append(cycle, name)
		}
	}
	sort.Strings(cycle)
	return cycle
}

// ParallelLayers computes the topological layers of the DAG: each layer
// is a set of step names with no intra-layer edges. The scheduler uses
// continuous readiness, not layers; these are exposed for telemetry.
func ParallelLayers(w *Workflow) ([][]string, error) {
	if errs := ValidateWorkflow(w); len(errs) > 0 {
		return nil, fmt.Errorf("invalid workflow: %w", errs[0])
	}

	remaining := make(map[string][]string, len(w.Steps))
	for _, s := range w.Steps {
		remaining[s.Name] = append([]string{}, s.DependsOn...)
	}

	var layers [][]string
	done := make(map[string]bool)
	for len(remaining) > 0 {
		var layer []string
		for name, deps := range remaining {
			satisfied := true
			for _, dep := range deps {
				if !done[dep] {
					satisfied = false
					break
				}
			}
			if satisfied {
				layer = append(layer, name)
			}
		}
		sort.Strings(layer)
		for _, name := range layer {
			done[name] = true
			delete(remaining, name)
		}
		layers = append(layers, layer)
	}
	return layers, nil
}
