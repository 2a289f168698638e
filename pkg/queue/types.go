// Package queue provides task queue management and processing infrastructure.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/mgx-dev/mgx/ent"
	entask "github.com/mgx-dev/mgx/ent/task"
)

// Sentinel errors for queue operations.
var (
	// ErrNoTasksAvailable indicates no pending tasks are in the queue.
	ErrNoTasksAvailable = errors.New("no tasks available")

	// ErrAtCapacity indicates the global concurrent run limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// TaskExecutor is the interface for task processing.
//
// The executor owns the ENTIRE run lifecycle internally: it allocates the
// run record, drives the phase state machine to a terminal status, and
// writes run state progressively during execution. The worker only
// handles: claiming, heartbeat, and the task-level terminal bookkeeping
// (status plus success/failure counters).
type TaskExecutor interface {
	Execute(ctx context.Context, task *ent.Task) *ExecutionResult
}

// ExecutionResult is lightweight — just the terminal state. All
// intermediate state (the run record, phase transitions, git status) was
// already written to the database by the executor during processing.
type ExecutionResult struct {
	Status    entask.Status // completed, failed, cancelled, timeout
	RunID     string
	RunNumber int
	PRURL     string
	Error     error // Error details (if failed/timeout)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveRuns       int            `json:"active_runs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentTaskID  string    `json:"current_task_id,omitempty"`
	TasksProcessed int       `json:"tasks_processed"`
	LastActivity   time.Time `json:"last_activity"`
}
