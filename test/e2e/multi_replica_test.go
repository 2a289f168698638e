package e2e

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/mgx-dev/mgx/test/database"
)

// TestCrossReplicaEventDelivery runs two replicas against one schema.
// The run executes on pod-a (pod-b has no workers); a WebSocket client
// on pod-b still sees the whole lifecycle via NOTIFY/LISTEN.
func TestCrossReplicaEventDelivery(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	podA := NewTestApp(t, WithDBClient(shared.NewClient(t)), WithPodID("pod-a"))
	podB := NewTestApp(t, WithDBClient(shared.NewClient(t)), WithPodID("pod-b"), WithWorkerCount(0))

	wsID := podA.CreateWorkspace(t, "acme")
	projID := podA.CreateProject(t, wsID, "shop", "")
	podA.SeedCrew(t, wsID)
	taskID := podA.CreateTask(t, wsID, projID, "checkout", map[string]any{
		"auto_approve_plan": true,
	})

	ctx, cancel := context.WithTimeout(context.Background(), defaultWait)
	defer cancel()
	ws, err := WSConnect(ctx, podB.WSURL)
	require.NoError(t, err)
	defer func() { _ = ws.Close() }()
	require.NoError(t, ws.Subscribe("workspace:"+wsID))

	// Start through pod-b's API; only pod-a can claim the run.
	podB.StartRun(t, taskID)
	runID := podB.WaitForRun(t, taskID)
	podB.WaitForRunStatus(t, runID, "completed")

	_, err = ws.WaitForEventType("task.completed", defaultWait)
	require.NoError(t, err)
	assert.NotEmpty(t, ws.EventsByType("run.phase"))

	// The work landed on pod-a's executor.
	assert.Positive(t, podA.Completer.CallCount(RouteAnalyze))
	assert.Zero(t, podB.Completer.CallCount(RouteAnalyze))
}

// TestCrossReplicaEnqueueConflict shows the shared queue rejecting a
// duplicate enqueue no matter which replica receives it.
func TestCrossReplicaEnqueueConflict(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	podA := NewTestApp(t, WithDBClient(shared.NewClient(t)), WithPodID("pod-a"), WithWorkerCount(0))
	podB := NewTestApp(t, WithDBClient(shared.NewClient(t)), WithPodID("pod-b"), WithWorkerCount(0))

	wsID := podA.CreateWorkspace(t, "acme")
	projID := podA.CreateProject(t, wsID, "shop", "")
	podA.SeedCrew(t, wsID)
	taskID := podA.CreateTask(t, wsID, projID, "checkout", nil)

	podA.StartRun(t, taskID)

	// No worker has claimed it; the other replica still sees it pending.
	status, body := podB.postJSON(t, "/api/v1/tasks/"+taskID+"/runs", map[string]any{})
	assert.Equal(t, http.StatusConflict, status, "duplicate enqueue: %v", body)
}
