package e2e

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunHappyPath drives one auto-approved run through every phase:
// analyze, plan, execute, review, git finalization with a draft PR.
func TestRunHappyPath(t *testing.T) {
	app := NewTestApp(t)

	wsID := app.CreateWorkspace(t, "acme")
	projID := app.CreateProject(t, wsID, "shop", "https://git.example.test/acme/shop.git")
	app.SeedCrew(t, wsID)
	taskID := app.CreateTask(t, wsID, projID, "add-endpoint", map[string]any{
		"auto_approve_plan": true,
	})

	app.StartRun(t, taskID)
	runID := app.WaitForRun(t, taskID)
	summary := app.WaitForRunStatus(t, runID, "completed")

	assert.Equal(t, "done", summary["phase"])
	assert.EqualValues(t, 1, summary["round_count"])
	assert.Equal(t, "pr_opened", summary["git_status"])
	assert.NotEmpty(t, summary["branch_name"])
	require.Len(t, app.Git.PRs, 1)
	assert.Equal(t, app.Git.PRs[0], summary["pr_url"])

	// One call per crew role.
	assert.Equal(t, 1, app.Completer.CallCount(RouteAnalyze))
	assert.Equal(t, 1, app.Completer.CallCount(RoutePlan))
	assert.Equal(t, 1, app.Completer.CallCount(RouteImplement))
	assert.Equal(t, 1, app.Completer.CallCount(RouteWriteTests))
	assert.Equal(t, 1, app.Completer.CallCount(RouteReview))
}

// TestRunRevisionRound has the reviewer request changes once; the second
// round's default review approves.
func TestRunRevisionRound(t *testing.T) {
	app := NewTestApp(t)
	app.Completer.Queue(RouteReview,
		`{"verdict": "changes_required", "notes": "handle the empty-cart case"}`)

	wsID := app.CreateWorkspace(t, "acme")
	projID := app.CreateProject(t, wsID, "shop", "")
	app.SeedCrew(t, wsID)
	taskID := app.CreateTask(t, wsID, projID, "checkout", map[string]any{
		"auto_approve_plan":   true,
		"max_revision_rounds": 2,
	})

	app.StartRun(t, taskID)
	runID := app.WaitForRun(t, taskID)
	summary := app.WaitForRunStatus(t, runID, "completed")

	assert.EqualValues(t, 2, summary["round_count"])
	assert.Equal(t, 2, app.Completer.CallCount(RouteImplement))
	assert.Equal(t, 2, app.Completer.CallCount(RouteReview))

	// The revision prompt carried the reviewer's feedback.
	var sawFeedback bool
	for _, req := range app.Completer.Requests() {
		if routeFor(req) != RouteImplement {
			continue
		}
		for _, msg := range req.Messages {
			if strings.Contains(msg.Content, "empty-cart") {
				sawFeedback = true
			}
		}
	}
	assert.True(t, sawFeedback, "revision round never saw reviewer feedback")
}

// TestRunRevisionBudgetExhausted fails the run when the reviewer still
// wants changes after the last allowed revision.
func TestRunRevisionBudgetExhausted(t *testing.T) {
	app := NewTestApp(t)
	app.Completer.Queue(RouteReview,
		`{"verdict": "changes_required", "notes": "missing input validation"}`)
	app.Completer.Queue(RouteReview,
		`{"verdict": "changes_required", "notes": "validation rejects valid input"}`)

	wsID := app.CreateWorkspace(t, "acme")
	projID := app.CreateProject(t, wsID, "shop", "")
	app.SeedCrew(t, wsID)
	taskID := app.CreateTask(t, wsID, projID, "validate-input", map[string]any{
		"auto_approve_plan":   true,
		"max_revision_rounds": 1,
	})

	app.StartRun(t, taskID)
	runID := app.WaitForRun(t, taskID)
	summary := app.WaitForRunStatus(t, runID, "failed")

	assert.EqualValues(t, 2, summary["round_count"])
	assert.Equal(t, "internal", summary["error_kind"])
	assert.Contains(t, summary["error"], "revision budget exhausted")
}

// TestRunStalledReviewStops ends the loop early when two consecutive
// reviews are identical, even with revision budget left.
func TestRunStalledReviewStops(t *testing.T) {
	app := NewTestApp(t)
	// M complexity grants a 3-round budget, so only the identical-review
	// halt can stop this run after two rounds.
	app.Completer.Queue(RouteAnalyze,
		`{"complexity": "M", "files": ["app/main.py"], "test_strategy": "Unit tests."}`)
	stalled := `{"verdict": "changes_required", "notes": "same complaint"}`
	app.Completer.Queue(RouteReview, stalled)
	app.Completer.Queue(RouteReview, stalled)

	wsID := app.CreateWorkspace(t, "acme")
	projID := app.CreateProject(t, wsID, "shop", "")
	app.SeedCrew(t, wsID)
	taskID := app.CreateTask(t, wsID, projID, "stalled", map[string]any{
		"auto_approve_plan":   true,
		"max_revision_rounds": 5,
	})

	app.StartRun(t, taskID)
	runID := app.WaitForRun(t, taskID)
	summary := app.WaitForRunStatus(t, runID, "failed")

	// Round 1 review, one revision, identical round 2 review, stop.
	assert.EqualValues(t, 2, summary["round_count"])
	assert.Equal(t, 2, app.Completer.CallCount(RouteReview))
}

// TestRunCountersTrackAllocation checks the task counters over two runs:
// total_runs counts allocated runs, so total_runs equals successful_runs
// plus failed_runs plus in-flight runs at every observation point.
func TestRunCountersTrackAllocation(t *testing.T) {
	app := NewTestApp(t)

	wsID := app.CreateWorkspace(t, "acme")
	projID := app.CreateProject(t, wsID, "shop", "")
	app.SeedCrew(t, wsID)
	taskID := app.CreateTask(t, wsID, projID, "counters", nil)

	counters := func() (total, succeeded, failed int) {
		t.Helper()
		status, body := app.getJSON(t, "/api/v1/tasks/"+taskID)
		require.Equal(t, 200, status, "get task: %v", body)
		n := func(key string) int {
			v, _ := body[key].(float64)
			return int(v)
		}
		return n("total_runs"), n("successful_runs"), n("failed_runs")
	}

	// First run parks at the plan gate: allocated but not settled.
	app.StartRun(t, taskID)
	runID := app.WaitForRun(t, taskID)
	app.WaitForRunPhase(t, runID, "awaiting_approval")

	total, succeeded, failed := counters()
	assert.Equal(t, 1, total)
	assert.Equal(t, 0, succeeded)
	assert.Equal(t, 0, failed)

	status, body := app.postJSON(t, "/api/v1/runs/"+runID+"/plan/approve", map[string]any{})
	require.Equal(t, 200, status, "approve plan: %v", body)
	app.WaitForRunStatus(t, runID, "completed")
	app.eventually(t, func() bool {
		total, succeeded, failed = counters()
		return total == 1 && succeeded == 1 && failed == 0
	}, "first run never settled: total=%d successful=%d failed=%d", total, succeeded, failed)

	// Second run is rejected at the gate and settles as failed.
	app.StartRun(t, taskID)
	var secondID string
	app.eventually(t, func() bool {
		secondID = app.WaitForRun(t, taskID)
		return secondID != runID
	}, "second run was never allocated for task %s", taskID)
	app.WaitForRunPhase(t, secondID, "awaiting_approval")

	total, succeeded, failed = counters()
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 0, failed)

	status, body = app.postJSON(t, "/api/v1/runs/"+secondID+"/plan/reject",
		map[string]any{"reason": "not now"})
	require.Equal(t, 200, status, "reject plan: %v", body)
	app.WaitForRunStatus(t, secondID, "failed")
	app.eventually(t, func() bool {
		total, succeeded, failed = counters()
		return total == 2 && succeeded == 1 && failed == 1
	}, "second run never settled: total=%d successful=%d failed=%d", total, succeeded, failed)
}

// TestRunSecondRunConflicts rejects a second enqueue while a run is in
// flight.
func TestRunSecondRunConflicts(t *testing.T) {
	app := NewTestApp(t)
	// Park the run in the execute phase.
	app.Completer.QueueDelayed(RouteImplement, "FILE: app/main.py\nprint('hi')\n", defaultWait)

	wsID := app.CreateWorkspace(t, "acme")
	projID := app.CreateProject(t, wsID, "shop", "")
	app.SeedCrew(t, wsID)
	taskID := app.CreateTask(t, wsID, projID, "slow", map[string]any{
		"auto_approve_plan": true,
	})

	app.StartRun(t, taskID)
	runID := app.WaitForRun(t, taskID)
	app.WaitForRunPhase(t, runID, "executing")

	status, body := app.postJSON(t, "/api/v1/tasks/"+taskID+"/runs", map[string]any{})
	assert.Equal(t, 409, status, "expected conflict, got: %v", body)

	// Release the parked run so shutdown doesn't wait out the delay.
	cancelStatus, _ := app.postJSON(t, "/api/v1/runs/"+runID+"/cancel", map[string]any{})
	require.Equal(t, 202, cancelStatus)
	app.WaitForRunStatus(t, runID, "cancelled")
}
