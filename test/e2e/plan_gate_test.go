package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPlanApprovalFlow suspends the run at the plan gate, observes the
// plan_ready event, approves over HTTP, and sees the run finish.
func TestPlanApprovalFlow(t *testing.T) {
	app := NewTestApp(t)

	wsID := app.CreateWorkspace(t, "acme")
	projID := app.CreateProject(t, wsID, "shop", "")
	app.SeedCrew(t, wsID)
	taskID := app.CreateTask(t, wsID, projID, "gated", nil)

	ctx, cancel := context.WithTimeout(context.Background(), defaultWait)
	defer cancel()
	ws, err := WSConnect(ctx, app.WSURL)
	require.NoError(t, err)
	defer func() { _ = ws.Close() }()
	require.NoError(t, ws.Subscribe("workspace:"+wsID))

	app.StartRun(t, taskID)
	runID := app.WaitForRun(t, taskID)
	app.WaitForRunPhase(t, runID, "awaiting_approval")

	evt, err := ws.WaitForEventType("plan_ready", defaultWait)
	require.NoError(t, err)
	data := evt.Parsed["data"].(map[string]any)
	assert.EqualValues(t, 2, data["steps"])

	status, body := app.postJSON(t, "/api/v1/runs/"+runID+"/plan/approve",
		map[string]any{"reason": "looks right"})
	require.Equal(t, 200, status, "approve plan: %v", body)

	summary := app.WaitForRunStatus(t, runID, "completed")
	assert.Equal(t, "done", summary["phase"])
}

// TestPlanRejection fails the run with error_kind invalid_input without
// ever calling the engineer.
func TestPlanRejection(t *testing.T) {
	app := NewTestApp(t)

	wsID := app.CreateWorkspace(t, "acme")
	projID := app.CreateProject(t, wsID, "shop", "")
	app.SeedCrew(t, wsID)
	taskID := app.CreateTask(t, wsID, projID, "rejected", nil)

	app.StartRun(t, taskID)
	runID := app.WaitForRun(t, taskID)
	app.WaitForRunPhase(t, runID, "awaiting_approval")

	status, body := app.postJSON(t, "/api/v1/runs/"+runID+"/plan/reject",
		map[string]any{"reason": "wrong scope"})
	require.Equal(t, 200, status, "reject plan: %v", body)

	summary := app.WaitForRunStatus(t, runID, "failed")
	assert.Equal(t, "invalid_input", summary["error_kind"])
	assert.Contains(t, summary["error"], "wrong scope")
	assert.Equal(t, 0, app.Completer.CallCount(RouteImplement))
}

// TestPlanDecisionIsIdempotentlyGuarded rejects a second decision on an
// already-resolved plan.
func TestPlanDecisionIsIdempotentlyGuarded(t *testing.T) {
	app := NewTestApp(t)

	wsID := app.CreateWorkspace(t, "acme")
	projID := app.CreateProject(t, wsID, "shop", "")
	app.SeedCrew(t, wsID)
	taskID := app.CreateTask(t, wsID, projID, "double-decide", nil)

	app.StartRun(t, taskID)
	runID := app.WaitForRun(t, taskID)
	app.WaitForRunPhase(t, runID, "awaiting_approval")

	status, _ := app.postJSON(t, "/api/v1/runs/"+runID+"/plan/approve", map[string]any{})
	require.Equal(t, 200, status)
	app.WaitForRunStatus(t, runID, "completed")

	status, body := app.postJSON(t, "/api/v1/runs/"+runID+"/plan/reject", map[string]any{})
	assert.Equal(t, 409, status, "expected conflict, got: %v", body)

	// Give late NOTIFY deliveries a beat before teardown.
	time.Sleep(50 * time.Millisecond)
}
