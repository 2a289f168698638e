package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/mgx-dev/mgx/ent"
	entask "github.com/mgx-dev/mgx/ent/task"
	"github.com/mgx-dev/mgx/ent/taskrun"
	"github.com/mgx-dev/mgx/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes tasks.
type Worker struct {
	id           string
	podID        string
	client       *ent.Client
	config       *config.QueueConfig
	taskExecutor TaskExecutor
	pool         TaskRegistry
	stopCh       chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// TaskRegistry is the subset of WorkerPool used by Worker for task registration.
type TaskRegistry interface {
	RegisterTask(taskID string, cancel context.CancelFunc)
	UnregisterTask(taskID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor TaskExecutor, pool TaskRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		taskExecutor: executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a task, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.TaskRun.Query().
		Where(taskrun.StatusEQ(taskrun.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active runs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentRuns {
		return ErrAtCapacity
	}

	// 2. Claim next task
	task, err := w.claimNextTask(ctx)
	if err != nil {
		return err
	}

	log := slog.With("task_id", task.ID, "worker_id", w.id)
	log.Info("Task claimed")

	w.setStatus(WorkerStatusWorking, task.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create task context with timeout
	taskCtx, cancelTask := context.WithTimeout(ctx, w.config.RunTimeout)
	defer cancelTask()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterTask(task.ID, cancelTask)
	defer w.pool.UnregisterTask(task.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(taskCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, task.ID)

	// 6. Execute task
	result := w.taskExecutor.Execute(taskCtx, task)

	// 6a. Nil-guard: synthesize a safe result if executor returned nil
	result = w.synthesizeResult(result, taskCtx)

	// 7. Stop heartbeat
	cancelHeartbeat()

	// 8. Update terminal status (use background context — task ctx may be cancelled)
	if err := w.updateTaskTerminalStatus(context.Background(), task, result); err != nil {
		log.Error("Failed to update task terminal status", "error", err)
		return err
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	log.Info("Task processing complete", "status", result.Status, "run_id", result.RunID)
	return nil
}

// synthesizeResult fills in a terminal result when the executor returned
// nil or left the status empty after a context-driven exit.
func (w *Worker) synthesizeResult(result *ExecutionResult, taskCtx context.Context) *ExecutionResult {
	if result == nil {
		switch {
		case errors.Is(taskCtx.Err(), context.DeadlineExceeded):
			return &ExecutionResult{
				Status: entask.StatusTimeout,
				Error:  fmt.Errorf("task timed out after %v", w.config.RunTimeout),
			}
		case errors.Is(taskCtx.Err(), context.Canceled):
			return &ExecutionResult{
				Status: entask.StatusCancelled,
				Error:  context.Canceled,
			}
		default:
			return &ExecutionResult{
				Status: entask.StatusFailed,
				Error:  fmt.Errorf("executor returned nil result"),
			}
		}
	}
	if result.Status == "" {
		switch {
		case errors.Is(taskCtx.Err(), context.DeadlineExceeded):
			result.Status = entask.StatusTimeout
			result.Error = fmt.Errorf("task timed out after %v", w.config.RunTimeout)
		case errors.Is(taskCtx.Err(), context.Canceled):
			result.Status = entask.StatusCancelled
			result.Error = context.Canceled
		default:
			result.Status = entask.StatusFailed
			result.Error = fmt.Errorf("executor returned empty status")
		}
	}
	return result
}

// claimNextTask atomically claims the next pending task using FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextTask(ctx context.Context) (*ent.Task, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing
	task, err := tx.Task.Query().
		Where(entask.StatusEQ(entask.StatusPending)).
		Order(ent.Asc(entask.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoTasksAvailable
		}
		return nil, fmt.Errorf("failed to query pending task: %w", err)
	}

	// Claim: mark running. The executor allocates the run record with the
	// next run_number once it starts.
	task, err = task.Update().
		SetStatus(entask.StatusRunning).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return task, nil
}

// runHeartbeat periodically stamps the task's active run with this pod and
// a fresh last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, taskID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.TaskRun.Update().
				Where(
					taskrun.TaskIDEQ(taskID),
					taskrun.StatusEQ(taskrun.StatusRunning),
				).
				SetPodID(w.podID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "task_id", taskID, "error", err)
			}
		}
	}
}

// updateTaskTerminalStatus writes the task's final status and outcome
// counters. The run record itself was already finished by the executor,
// and total_runs was counted when the run was allocated.
func (w *Worker) updateTaskTerminalStatus(ctx context.Context, task *ent.Task, result *ExecutionResult) error {
	update := w.client.Task.UpdateOneID(task.ID).
		SetStatus(result.Status)

	if result.Status == entask.StatusCompleted {
		update = update.AddSuccessfulRuns(1)
	} else {
		update = update.AddFailedRuns(1)
	}

	return update.Exec(ctx)
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
