package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	entask "github.com/mgx-dev/mgx/ent/task"
	"github.com/mgx-dev/mgx/pkg/config"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             5,
		MaxConcurrentRuns:       5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		RunTimeout:              15 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond, "poll interval below minimum")
		assert.LessOrEqual(t, d, 1500*time.Millisecond, "poll interval above maximum")
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil)

	for i := 0; i < 10; i++ {
		d := w.pollInterval()
		assert.Equal(t, 1*time.Second, d, "poll interval should equal base when jitter is 0")
	}
}

func TestWorkerHealth(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("worker-1", "pod-1", nil, cfg, nil, nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentTaskID)
	assert.Equal(t, 0, h.TasksProcessed)

	// Simulate working state
	w.setStatus(WorkerStatusWorking, "task-abc")
	h = w.Health()
	assert.Equal(t, "working", h.Status)
	assert.Equal(t, "task-abc", h.CurrentTaskID)

	// Back to idle
	w.setStatus(WorkerStatusIdle, "")
	h = w.Health()
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentTaskID)
}

func TestWorkerSynthesizeResult(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("worker-1", "pod-1", nil, cfg, nil, nil)

	// Nil result with a live context becomes failed.
	result := w.synthesizeResult(nil, context.Background())
	assert.Equal(t, entask.StatusFailed, result.Status)
	assert.Error(t, result.Error)

	// Nil result after cancellation becomes cancelled.
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	result = w.synthesizeResult(nil, cancelled)
	assert.Equal(t, entask.StatusCancelled, result.Status)

	// Nil result after deadline becomes timeout.
	expired, cancelExpired := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancelExpired()
	result = w.synthesizeResult(nil, expired)
	assert.Equal(t, entask.StatusTimeout, result.Status)

	// Empty status on a deadline-expired context becomes timeout too.
	result = w.synthesizeResult(&ExecutionResult{RunID: "run-1"}, expired)
	assert.Equal(t, entask.StatusTimeout, result.Status)
	assert.Equal(t, "run-1", result.RunID)

	// A populated result passes through untouched.
	result = w.synthesizeResult(&ExecutionResult{Status: entask.StatusCompleted}, context.Background())
	assert.Equal(t, entask.StatusCompleted, result.Status)
	assert.NoError(t, result.Error)
}
