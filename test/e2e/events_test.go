package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEventsLiveDelivery subscribes before a run starts and watches the
// lifecycle events stream in order.
func TestEventsLiveDelivery(t *testing.T) {
	app := NewTestApp(t)

	wsID := app.CreateWorkspace(t, "acme")
	projID := app.CreateProject(t, wsID, "shop", "")
	app.SeedCrew(t, wsID)
	taskID := app.CreateTask(t, wsID, projID, "checkout", map[string]any{
		"auto_approve_plan": true,
	})

	ctx, cancel := context.WithTimeout(context.Background(), defaultWait)
	defer cancel()
	ws, err := WSConnect(ctx, app.WSURL)
	require.NoError(t, err)
	defer func() { _ = ws.Close() }()
	require.NoError(t, ws.Subscribe("workspace:"+wsID))

	app.StartRun(t, taskID)
	runID := app.WaitForRun(t, taskID)
	app.WaitForRunStatus(t, runID, "completed")

	_, err = ws.WaitForEventType("task.completed", defaultWait)
	require.NoError(t, err)

	// started precedes every phase change, which precede completion.
	var startedAt, firstPhaseAt, completedAt int
	for i, ev := range ws.Events() {
		switch ev.Type {
		case "task.started":
			startedAt = i
		case "run.phase":
			if firstPhaseAt == 0 {
				firstPhaseAt = i
			}
		case "task.completed":
			completedAt = i
		}
	}
	assert.Less(t, startedAt, firstPhaseAt, "task.started before first run.phase")
	assert.Less(t, firstPhaseAt, completedAt, "run.phase before task.completed")
	assert.NotEmpty(t, ws.EventsByType("run.phase"))
}

// TestEventsCatchupForLateSubscriber connects after the run already
// finished; the stored history replays on subscribe.
func TestEventsCatchupForLateSubscriber(t *testing.T) {
	app := NewTestApp(t)

	wsID := app.CreateWorkspace(t, "acme")
	projID := app.CreateProject(t, wsID, "shop", "")
	app.SeedCrew(t, wsID)
	taskID := app.CreateTask(t, wsID, projID, "checkout", map[string]any{
		"auto_approve_plan": true,
	})
	app.StartRun(t, taskID)
	runID := app.WaitForRun(t, taskID)
	app.WaitForRunStatus(t, runID, "completed")

	ctx, cancel := context.WithTimeout(context.Background(), defaultWait)
	defer cancel()
	ws, err := WSConnect(ctx, app.WSURL)
	require.NoError(t, err)
	defer func() { _ = ws.Close() }()
	require.NoError(t, ws.Subscribe("workspace:"+wsID))

	ev, err := ws.WaitForEventType("task.completed", defaultWait)
	require.NoError(t, err)

	// Replayed events carry their persistence cursor.
	assert.NotNil(t, ev.Parsed["db_event_id"])
	started, err := ws.WaitForEventType("task.started", time.Second)
	require.NoError(t, err)
	assert.NotNil(t, started.Parsed["db_event_id"])
}
