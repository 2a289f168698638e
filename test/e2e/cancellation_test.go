package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCancelDuringExecution cancels a run parked mid-round and expects
// the cancelled terminal status within the grace period.
func TestCancelDuringExecution(t *testing.T) {
	app := NewTestApp(t)
	app.Completer.QueueDelayed(RouteImplement, "FILE: app/main.py\nprint('hi')\n", defaultWait)

	wsID := app.CreateWorkspace(t, "acme")
	projID := app.CreateProject(t, wsID, "shop", "https://git.example.test/acme/shop.git")
	app.SeedCrew(t, wsID)
	taskID := app.CreateTask(t, wsID, projID, "long-haul", map[string]any{
		"auto_approve_plan": true,
	})

	app.StartRun(t, taskID)
	runID := app.WaitForRun(t, taskID)
	app.WaitForRunPhase(t, runID, "executing")

	started := time.Now()
	status, body := app.postJSON(t, "/api/v1/runs/"+runID+"/cancel", map[string]any{})
	require.Equal(t, 202, status, "cancel: %v", body)

	summary := app.WaitForRunStatus(t, runID, "cancelled")
	assert.Less(t, time.Since(started), app.Config.Executor.CancelGracePeriod,
		"cancellation exceeded the grace period")
	assert.Equal(t, "done", summary["phase"])

	// The branch was rolled back, never pushed.
	assert.Empty(t, app.Git.Pushed)
	assert.Empty(t, app.Git.PRs)

	// The task is claimable again.
	app.StartRun(t, taskID)
}

// TestCancelUnknownRunIs404 rejects cancellation of a run that does not
// exist.
func TestCancelUnknownRunIs404(t *testing.T) {
	app := NewTestApp(t)

	status, body := app.postJSON(t, "/api/v1/runs/does-not-exist/cancel", map[string]any{})
	assert.Equal(t, 404, status, "expected not found, got: %v", body)
}

// TestRoundTimeoutFinishesRun lets a round exceed its complexity-scaled
// deadline and expects the timeout terminal status.
func TestRoundTimeoutFinishesRun(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.Executor.ExecuteTimeoutPerRound = 500 * time.Millisecond

	app := NewTestApp(t, WithConfig(cfg))
	app.Completer.QueueDelayed(RouteImplement, "FILE: app/main.py\nprint('hi')\n", 10*time.Second)

	wsID := app.CreateWorkspace(t, "acme")
	projID := app.CreateProject(t, wsID, "shop", "")
	app.SeedCrew(t, wsID)
	taskID := app.CreateTask(t, wsID, projID, "too-slow", map[string]any{
		"auto_approve_plan": true,
	})

	app.StartRun(t, taskID)
	runID := app.WaitForRun(t, taskID)
	summary := app.WaitForRunStatus(t, runID, "timeout")

	assert.Equal(t, "deadline_exceeded", summary["error_kind"])
}
