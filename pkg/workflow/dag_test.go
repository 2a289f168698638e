package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgx-dev/mgx/pkg/models"
)

func step(name string, deps ...string) *StepDef {
	return &StepDef{Name: name, Type: StepTypeTask, DependsOn: deps}
}

func wf(steps ...*StepDef) *Workflow {
	return &Workflow{ID: "wf-1", WorkspaceID: "ws-1", Name: "test", Steps: steps}
}

func TestValidateWorkflowAcceptsDAG(t *testing.T) {
	w := wf(
		step("fetch"),
		step("build", "fetch"),
		step("test", "build"),
		step("lint", "fetch"),
		step("release", "test", "lint"),
	)
	assert.Empty(t, ValidateWorkflow(w))
}

func TestValidateWorkflowRejectsCycle(t *testing.T) {
	w := wf(
		step("a", "c"),
		step("b", "a"),
		step("c", "b"),
	)
	errs := ValidateWorkflow(w)
	require.Len(t, errs, 1)
	assert.True(t, models.IsKind(errs[0], models.ErrKindInvalidInput))
	assert.Contains(t, errs[0].Error(), "cycle")
}

func TestValidateWorkflowRejectsSelfDependency(t *testing.T) {
	w := wf(step("a", "a"))
	errs := ValidateWorkflow(w)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "depends on itself")
}

func TestValidateWorkflowReportsAllFindings(t *testing.T) {
	w := wf(
		step("a", "missing"),
		step("a"),
		&StepDef{Name: "gate", Type: StepTypeApproval},
		&StepDef{Name: "branch", Type: StepTypeCondition, Condition: &ConditionConfig{}},
	)
	errs := ValidateWorkflow(w)
	assert.GreaterOrEqual(t, len(errs), 4)
}

func TestValidateWorkflowRejectsUnknownBranchTargets(t *testing.T) {
	w := wf(
		step("a"),
		&StepDef{
			Name: "branch", Type: StepTypeCondition,
			DependsOn: []string{"a"},
			Condition: &ConditionConfig{Expression: "input.x", TrueSteps: []string{"ghost"}},
		},
	)
	errs := ValidateWorkflow(w)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "ghost")
}

func TestParallelLayers(t *testing.T) {
	w := wf(
		step("fetch"),
		step("build", "fetch"),
		step("lint", "fetch"),
		step("release", "build", "lint"),
	)
	layers, err := ParallelLayers(w)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"fetch"},
		{"build", "lint"},
		{"release"},
	}, layers)
}
