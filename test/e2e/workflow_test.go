package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgx-dev/mgx/pkg/models"
)

// TestWorkflowLinearAgentSteps drives a three-step agent chain to
// completion and checks the timeline.
func TestWorkflowLinearAgentSteps(t *testing.T) {
	app := NewTestApp(t)

	wsID := app.CreateWorkspace(t, "acme")
	projID := app.CreateProject(t, wsID, "shop", "")
	app.SeedCrew(t, wsID)

	wfID := app.CreateWorkflow(t, wsID, projID, "release-notes", []map[string]any{
		agentStep("collect", "planner", "List the changes shipped this week."),
		agentStep("draft", "engineer", "Draft release notes from the change list.", "collect"),
		agentStep("polish", "reviewer", "Polish the draft for publication.", "draft"),
	})

	execID := app.StartExecution(t, wfID, map[string]any{"week": "2026-W35"})
	app.WaitForExecutionStatus(t, execID, "completed")

	timeline := app.Timeline(t, execID)
	require.Len(t, timeline, 3)
	for _, name := range []string{"collect", "draft", "polish"} {
		assert.Equal(t, "completed", timeline[name]["status"], "step %s", name)
	}
	assert.Equal(t, 3, app.Completer.CallCount(RouteAgent))
}

// TestWorkflowFailureSkipsDownstream fails the middle step of a chain
// and expects its dependent to be skipped and the execution to fail.
func TestWorkflowFailureSkipsDownstream(t *testing.T) {
	app := NewTestApp(t)
	app.Completer.Queue(RouteAgent, "step one done")
	app.Completer.QueueError(RouteAgent,
		models.NewFailure(models.ErrKindLLMFailed, "model refused"))

	wsID := app.CreateWorkspace(t, "acme")
	projID := app.CreateProject(t, wsID, "shop", "")
	app.SeedCrew(t, wsID)

	wfID := app.CreateWorkflow(t, wsID, projID, "brittle-chain", []map[string]any{
		agentStep("one", "planner", "Do the first thing."),
		agentStep("two", "planner", "Do the second thing.", "one"),
		agentStep("three", "planner", "Do the third thing.", "two"),
	})

	execID := app.StartExecution(t, wfID, nil)
	app.WaitForExecutionStatus(t, execID, "failed")

	timeline := app.Timeline(t, execID)
	assert.Equal(t, "completed", timeline["one"]["status"])
	assert.Equal(t, "failed", timeline["two"]["status"])
	assert.Equal(t, "skipped", timeline["three"]["status"])
	assert.Contains(t, timeline["two"]["error"], "model refused")
}

// TestWorkflowDiamond fans out after the root and joins before the
// final step; all four steps complete.
func TestWorkflowDiamond(t *testing.T) {
	app := NewTestApp(t)

	wsID := app.CreateWorkspace(t, "acme")
	projID := app.CreateProject(t, wsID, "shop", "")
	app.SeedCrew(t, wsID)

	wfID := app.CreateWorkflow(t, wsID, projID, "diamond", []map[string]any{
		agentStep("root", "planner", "Split the work."),
		agentStep("left", "engineer", "Handle the left half.", "root"),
		agentStep("right", "tester", "Handle the right half.", "root"),
		agentStep("join", "reviewer", "Merge both halves.", "left", "right"),
	})

	execID := app.StartExecution(t, wfID, nil)
	app.WaitForExecutionStatus(t, execID, "completed")

	timeline := app.Timeline(t, execID)
	require.Len(t, timeline, 4)
	for name, step := range timeline {
		assert.Equal(t, "completed", step["status"], "step %s", name)
	}
}

// TestWorkflowTaskStep embeds a full task run as a workflow step.
func TestWorkflowTaskStep(t *testing.T) {
	app := NewTestApp(t)

	wsID := app.CreateWorkspace(t, "acme")
	projID := app.CreateProject(t, wsID, "shop", "https://git.example.test/acme/shop.git")
	app.SeedCrew(t, wsID)
	taskID := app.CreateTask(t, wsID, projID, "embedded", map[string]any{
		"auto_approve_plan": true,
	})

	wfID := app.CreateWorkflow(t, wsID, projID, "ship-it", []map[string]any{
		taskStep("build", taskID),
		agentStep("announce", "planner", "Summarize what was shipped.", "build"),
	})

	execID := app.StartExecution(t, wfID, nil)
	app.WaitForExecutionStatus(t, execID, "completed")

	timeline := app.Timeline(t, execID)
	assert.Equal(t, "completed", timeline["build"]["status"])
	assert.Equal(t, "completed", timeline["announce"]["status"])

	// The embedded run went through the whole lifecycle, PR included.
	assert.Equal(t, 1, app.Completer.CallCount(RouteReview))
	assert.Len(t, app.Git.PRs, 1)
}

// TestWorkflowApprovalStep resolves a human gate over HTTP and lets the
// execution continue.
func TestWorkflowApprovalStep(t *testing.T) {
	app := NewTestApp(t)

	wsID := app.CreateWorkspace(t, "acme")
	projID := app.CreateProject(t, wsID, "shop", "")
	app.SeedCrew(t, wsID)

	wfID := app.CreateWorkflow(t, wsID, projID, "gated-deploy", []map[string]any{
		agentStep("build", "engineer", "Prepare the release."),
		approvalStep("gate", map[string]any{"expires_after_s": 60}, "build"),
		agentStep("deploy", "engineer", "Roll out the release.", "gate"),
	})

	execID := app.StartExecution(t, wfID, nil)
	approvalID := app.WaitForPendingApproval(t, wsID)
	app.RespondApproval(t, approvalID, "approved", "ship it")

	app.WaitForExecutionStatus(t, execID, "completed")
	timeline := app.Timeline(t, execID)
	assert.Equal(t, "completed", timeline["gate"]["status"])
	assert.Equal(t, "completed", timeline["deploy"]["status"])
}

// TestWorkflowApprovalRejection fails the gate and skips the deploy.
func TestWorkflowApprovalRejection(t *testing.T) {
	app := NewTestApp(t)

	wsID := app.CreateWorkspace(t, "acme")
	projID := app.CreateProject(t, wsID, "shop", "")
	app.SeedCrew(t, wsID)

	wfID := app.CreateWorkflow(t, wsID, projID, "vetoed-deploy", []map[string]any{
		agentStep("build", "engineer", "Prepare the release."),
		approvalStep("gate", map[string]any{"expires_after_s": 60}, "build"),
		agentStep("deploy", "engineer", "Roll out the release.", "gate"),
	})

	execID := app.StartExecution(t, wfID, nil)
	approvalID := app.WaitForPendingApproval(t, wsID)
	app.RespondApproval(t, approvalID, "rejected", "not this week")

	app.WaitForExecutionStatus(t, execID, "failed")
	timeline := app.Timeline(t, execID)
	assert.Equal(t, "failed", timeline["gate"]["status"])
	assert.Equal(t, "skipped", timeline["deploy"]["status"])
}

// TestWorkflowApprovalTimeout lets the sweeper expire an unanswered
// gate.
func TestWorkflowApprovalTimeout(t *testing.T) {
	app := NewTestApp(t)

	wsID := app.CreateWorkspace(t, "acme")
	projID := app.CreateProject(t, wsID, "shop", "")
	app.SeedCrew(t, wsID)

	wfID := app.CreateWorkflow(t, wsID, projID, "ignored-gate", []map[string]any{
		approvalStep("gate", map[string]any{"expires_after_s": 1}),
		agentStep("after", "planner", "Never reached.", "gate"),
	})

	execID := app.StartExecution(t, wfID, nil)
	app.WaitForExecutionStatus(t, execID, "failed")

	timeline := app.Timeline(t, execID)
	assert.Equal(t, "failed", timeline["gate"]["status"])
	assert.Equal(t, "skipped", timeline["after"]["status"])
	assert.Equal(t, "deadline_exceeded", timeline["gate"]["error_kind"])
}

// TestWorkflowAutoApproval approves an unattended gate on the next
// sweep without human input.
func TestWorkflowAutoApproval(t *testing.T) {
	app := NewTestApp(t)

	wsID := app.CreateWorkspace(t, "acme")
	projID := app.CreateProject(t, wsID, "shop", "")
	app.SeedCrew(t, wsID)

	wfID := app.CreateWorkflow(t, wsID, projID, "unattended", []map[string]any{
		approvalStep("gate", map[string]any{
			"expires_after_s":      60,
			"auto_approve_after_s": 0,
		}),
		agentStep("after", "planner", "Reached automatically.", "gate"),
	})

	execID := app.StartExecution(t, wfID, nil)
	app.WaitForExecutionStatus(t, execID, "completed")

	timeline := app.Timeline(t, execID)
	assert.Equal(t, "completed", timeline["gate"]["status"])
	assert.Equal(t, "completed", timeline["after"]["status"])
}

// TestWorkflowCancellation cancels a running execution and cancels its
// pending approval with it.
func TestWorkflowCancellation(t *testing.T) {
	app := NewTestApp(t)

	wsID := app.CreateWorkspace(t, "acme")
	projID := app.CreateProject(t, wsID, "shop", "")
	app.SeedCrew(t, wsID)

	wfID := app.CreateWorkflow(t, wsID, projID, "abandoned", []map[string]any{
		approvalStep("gate", map[string]any{"expires_after_s": 300}),
		agentStep("after", "planner", "Never reached.", "gate"),
	})

	execID := app.StartExecution(t, wfID, nil)
	app.WaitForPendingApproval(t, wsID)

	status, body := app.postJSON(t, "/api/v1/executions/"+execID+"/cancel", map[string]any{})
	require.Equal(t, 202, status, "cancel execution: %v", body)

	app.WaitForExecutionStatus(t, execID, "cancelled")

	// No pending approvals remain.
	listStatus, listBody := app.getJSON(t, "/api/v1/approvals?workspace_id="+wsID)
	require.Equal(t, 200, listStatus)
	approvals, _ := listBody["approvals"].([]any)
	assert.Empty(t, approvals)
}
