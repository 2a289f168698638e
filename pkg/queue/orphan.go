package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mgx-dev/mgx/ent"
	entask "github.com/mgx-dev/mgx/ent/task"
	"github.com/mgx-dev/mgx/ent/taskrun"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned runs.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running runs with stale heartbeats and
// marks them as timeout (terminal state). Runs that never produced a
// heartbeat count too, measured from their creation time.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.TaskRun.Query().
		Where(
			taskrun.StatusEQ(taskrun.StatusRunning),
			taskrun.Or(
				taskrun.And(
					taskrun.LastHeartbeatAtNotNil(),
					taskrun.LastHeartbeatAtLT(threshold),
				),
				taskrun.And(
					taskrun.LastHeartbeatAtIsNil(),
					taskrun.CreatedAtLT(threshold),
				),
			),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned runs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned runs", "count", len(orphans))

	recovered := 0
	for _, run := range orphans {
		if err := p.recoverOrphanedRun(ctx, run); err != nil {
			slog.Error("Failed to recover orphaned run",
				"run_id", run.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedRun marks a single orphaned run as timeout and settles
// the owning task's status and counters.
func (p *WorkerPool) recoverOrphanedRun(ctx context.Context, run *ent.TaskRun) error {
	log := slog.With("run_id", run.ID, "task_id", run.TaskID, "old_pod_id", run.PodID)

	now := time.Now()
	lastHeartbeat := "never"
	if run.LastHeartbeatAt != nil {
		lastHeartbeat = run.LastHeartbeatAt.Format(time.RFC3339)
	}

	podID := "unknown"
	if run.PodID != nil {
		podID = *run.PodID
	}

	// Mark run as timeout (terminal — no resume)
	err := run.Update().
		SetStatus(taskrun.StatusTimeout).
		SetCompletedAt(now).
		SetErrorKind("deadline_exceeded").
		SetErrorMessage(fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark run as timeout: %w", err)
	}

	// Settle the owning task so it does not stay running forever.
	err = p.client.Task.Update().
		Where(
			entask.IDEQ(run.TaskID),
			entask.StatusEQ(entask.StatusRunning),
		).
		SetStatus(entask.StatusTimeout).
		AddFailedRuns(1).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to settle orphaned task: %w", err)
	}

	log.Warn("Orphaned run marked as timeout", "last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans performs a one-time cleanup of runs owned by this
// pod that were running when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.TaskRun.Query().
		Where(
			taskrun.StatusEQ(taskrun.StatusRunning),
			taskrun.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	now := time.Now()
	for _, run := range orphans {
		err := run.Update().
			SetStatus(taskrun.StatusTimeout).
			SetCompletedAt(now).
			SetErrorKind("deadline_exceeded").
			SetErrorMessage(fmt.Sprintf("Orphaned: pod %s restarted while run was in progress", podID)).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to mark startup orphan",
				"run_id", run.ID,
				"error", err)
			continue
		}

		err = client.Task.Update().
			Where(
				entask.IDEQ(run.TaskID),
				entask.StatusEQ(entask.StatusRunning),
			).
			SetStatus(entask.StatusTimeout).
			AddFailedRuns(1).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to settle startup orphan task",
				"task_id", run.TaskID,
				"error", err)
			continue
		}

		slog.Info("Startup orphan recovered", "run_id", run.ID)
	}

	return nil
}
