// Package services implements the persistence-backed services over ent:
// task and run lifecycle, workflow definitions and executions, approvals,
// agent instances with memory and shared context, and the stored-event
// catchup queries. The engines in pkg/executor and pkg/workflow reach
// these through their narrow store interfaces.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mgx-dev/mgx/ent"
	entask "github.com/mgx-dev/mgx/ent/task"
	"github.com/mgx-dev/mgx/ent/taskrun"
	"github.com/mgx-dev/mgx/pkg/executor"
	"github.com/mgx-dev/mgx/pkg/models"
)

// planDecisionKey is where a resolved plan decision lands in the run's
// results column. Its presence is the persisted suspension marker
// AwaitPlanDecision polls for.
const planDecisionKey = "plan_decision"

// runInputKey stashes enqueue-time input on the task config until the
// claimed run picks it up.
const runInputKey = "run_input"

// decisionPollInterval is how often a suspended run re-checks its pending
// plan decision.
const decisionPollInterval = time.Second

// TaskService manages task and run lifecycle. It implements
// executor.RunStore for the run state machine.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService.
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// CreateTask creates a new task in pending status.
func (s *TaskService) CreateTask(httpCtx context.Context, req models.CreateTaskRequest) (*ent.Task, error) {
	if req.WorkspaceID == "" {
		return nil, models.NewFailure(models.ErrKindInvalidInput, "workspace_id required")
	}
	if req.ProjectID == "" {
		return nil, models.NewFailure(models.ErrKindInvalidInput, "project_id required")
	}
	if req.Name == "" {
		return nil, models.NewFailure(models.ErrKindInvalidInput, "name required")
	}
	if req.Description == "" {
		return nil, models.NewFailure(models.ErrKindInvalidInput, "description required")
	}

	// Reject malformed config at the door instead of at claim time.
	if _, err := models.TaskConfigFromMap(req.Config); err != nil {
		return nil, err
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Task.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(req.WorkspaceID).
		SetProjectID(req.ProjectID).
		SetName(req.Name).
		SetDescription(req.Description).
		SetStatus(entask.StatusPending)

	if req.Config != nil {
		builder.SetConfig(req.Config)
	}
	if req.MaxRounds != nil {
		builder.SetMaxRounds(*req.MaxRounds)
	}
	if req.MaxRevisionRounds != nil {
		builder.SetMaxRevisionRounds(*req.MaxRevisionRounds)
	}
	if req.BranchPrefix != nil {
		builder.SetBranchPrefix(*req.BranchPrefix)
	}
	if req.CommitTemplate != nil {
		builder.SetCommitTemplate(*req.CommitTemplate)
	}

	task, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, models.WrapFailure(models.ErrKindConflict, err, "task already exists")
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// GetTask retrieves a task by ID.
func (s *TaskService) GetTask(ctx context.Context, taskID string) (*ent.Task, error) {
	task, err := s.client.Task.Query().
		Where(entask.IDEQ(taskID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, models.NewFailure(models.ErrKindNotFound, "task %s not found", taskID)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// TaskFilters narrows ListTasks.
type TaskFilters struct {
	WorkspaceID string
	ProjectID   string
	Status      string
	Limit       int
	Offset      int
}

// ListTasks lists tasks with filtering and pagination, newest first.
func (s *TaskService) ListTasks(ctx context.Context, filters TaskFilters) ([]*ent.Task, int, error) {
	query := s.client.Task.Query()

	if filters.WorkspaceID != "" {
		query = query.Where(entask.WorkspaceIDEQ(filters.WorkspaceID))
	}
	if filters.ProjectID != "" {
		query = query.Where(entask.ProjectIDEQ(filters.ProjectID))
	}
	if filters.Status != "" {
		query = query.Where(entask.StatusEQ(entask.Status(filters.Status)))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	tasks, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(entask.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, totalCount, nil
}

// EnqueueRun marks the task pending so a worker claims it for a new run.
// Conflicts when a run is already queued or in flight.
func (s *TaskService) EnqueueRun(ctx context.Context, taskID string, input map[string]any) (*ent.Task, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	task, err := tx.Task.Query().
		Where(entask.IDEQ(taskID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, models.NewFailure(models.ErrKindNotFound, "task %s not found", taskID)
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}

	switch task.Status {
	case entask.StatusPending:
		return nil, models.NewFailure(models.ErrKindConflict, "task %s already queued", taskID)
	case entask.StatusRunning:
		return nil, models.NewFailure(models.ErrKindConflict, "task %s has a run in flight", taskID)
	}

	cfg := task.Config
	if cfg == nil {
		cfg = map[string]any{}
	}
	if input != nil {
		cfg[runInputKey] = input
	} else {
		delete(cfg, runInputKey)
	}

	task, err = task.Update().
		SetStatus(entask.StatusPending).
		SetConfig(cfg).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit enqueue: %w", err)
	}
	return task, nil
}

// GetRun retrieves one run.
func (s *TaskService) GetRun(ctx context.Context, runID string) (*ent.TaskRun, error) {
	run, err := s.client.TaskRun.Query().
		Where(taskrun.IDEQ(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, models.NewFailure(models.ErrKindNotFound, "run %s not found", runID)
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// ListRuns lists a task's runs, newest first.
func (s *TaskService) ListRuns(ctx context.Context, taskID string, limit int) ([]*ent.TaskRun, error) {
	if limit <= 0 {
		limit = 20
	}
	runs, err := s.client.TaskRun.Query().
		Where(taskrun.TaskIDEQ(taskID)).
		Order(ent.Desc(taskrun.FieldRunNumber)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// RunSummaryFromEnt projects a run row into the API shape.
func RunSummaryFromEnt(run *ent.TaskRun) *models.RunSummary {
	summary := &models.RunSummary{
		RunID:       run.ID,
		TaskID:      run.TaskID,
		RunNumber:   run.RunNumber,
		Status:      string(run.Status),
		Phase:       string(run.Phase),
		RoundCount:  run.RoundCount,
		GitStatus:   string(run.GitStatus),
		StartedAt:   run.StartedAt,
		CompletedAt: run.CompletedAt,
		DurationMS:  run.DurationMs,
	}
	if run.BranchName != nil {
		summary.BranchName = *run.BranchName
	}
	if run.PrURL != nil {
		summary.PRURL = *run.PrURL
	}
	if run.ErrorKind != nil {
		summary.ErrorKind = *run.ErrorKind
	}
	if run.ErrorMessage != nil {
		summary.Error = *run.ErrorMessage
	}
	return summary
}

// --- executor.RunStore ---

// AllocateRun creates the run record with the next run_number and marks
// the task running. Fails with conflict when a run is already active.
func (s *TaskService) AllocateRun(ctx context.Context, taskID string, input map[string]any) (*executor.Run, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	task, err := tx.Task.Query().
		Where(entask.IDEQ(taskID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, models.NewFailure(models.ErrKindNotFound, "task %s not found", taskID)
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}

	active, err := tx.TaskRun.Query().
		Where(
			taskrun.TaskIDEQ(taskID),
			taskrun.StatusEQ(taskrun.StatusRunning),
		).
		Exist(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to check active runs: %w", err)
	}
	if active {
		return nil, models.NewFailure(models.ErrKindConflict, "task %s already has an active run", taskID)
	}

	count, err := tx.TaskRun.Query().
		Where(taskrun.TaskIDEQ(taskID)).
		Count(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}

	now := time.Now()
	results := map[string]any{}
	if input != nil {
		results["input"] = input
	}

	row, err := tx.TaskRun.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetWorkspaceID(task.WorkspaceID).
		SetProjectID(task.ProjectID).
		SetRunNumber(count + 1).
		SetStatus(taskrun.StatusRunning).
		SetPhase(taskrun.PhaseCreated).
		SetResults(results).
		SetStartedAt(now).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	// total_runs counts allocated runs, not settled ones, so that
	// total_runs = successful_runs + failed_runs + in-flight holds while
	// the run is still executing.
	taskUpdate := task.Update().AddTotalRuns(1)
	if task.Status != entask.StatusRunning {
		taskUpdate.SetStatus(entask.StatusRunning)
	}
	if err := taskUpdate.Exec(writeCtx); err != nil {
		return nil, fmt.Errorf("failed to mark task running: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit run allocation: %w", err)
	}

	return &executor.Run{
		ID:        row.ID,
		TaskID:    taskID,
		Number:    row.RunNumber,
		Phase:     executor.PhaseCreated,
		StartedAt: now,
	}, nil
}

// SetPhase records a phase transition, rejecting edges the state machine
// does not allow.
func (s *TaskService) SetPhase(ctx context.Context, runID string, phase executor.Phase) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	run, err := tx.TaskRun.Query().
		Where(taskrun.IDEQ(runID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.NewFailure(models.ErrKindNotFound, "run %s not found", runID)
		}
		return fmt.Errorf("failed to load run: %w", err)
	}

	current := executor.Phase(run.Phase)
	if current == phase {
		return tx.Commit()
	}
	if err := executor.ValidateTransition(current, phase); err != nil {
		return err
	}

	if err := run.Update().SetPhase(taskrun.Phase(phase)).Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to persist phase: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit phase: %w", err)
	}
	return nil
}

// SetComplexity records the analysis complexity in the run results.
func (s *TaskService) SetComplexity(ctx context.Context, runID string, complexity models.Complexity) error {
	return s.mergeResults(runID, map[string]any{"complexity": string(complexity)})
}

// SetBranch records the run's git branch.
func (s *TaskService) SetBranch(ctx context.Context, runID, branch string) error {
	return s.updateRun(runID, func(u *ent.TaskRunUpdateOne) {
		u.SetBranchName(branch)
	})
}

// SetGitStatus advances the run's git lifecycle marker.
func (s *TaskService) SetGitStatus(ctx context.Context, runID, status string) error {
	// push_failed keeps the last successful marker; only the terminal
	// failure of the whole chain is recorded as failed.
	if status == "push_failed" {
		status = string(taskrun.GitStatusFailed)
	}
	return s.updateRun(runID, func(u *ent.TaskRunUpdateOne) {
		u.SetGitStatus(taskrun.GitStatus(status))
	})
}

// SetPRURL records the opened pull request URL.
func (s *TaskService) SetPRURL(ctx context.Context, runID, url string) error {
	return s.updateRun(runID, func(u *ent.TaskRunUpdateOne) {
		u.SetPrURL(url)
	})
}

// SetRoundCount records the revision rounds consumed so far.
func (s *TaskService) SetRoundCount(ctx context.Context, runID string, rounds int) error {
	return s.updateRun(runID, func(u *ent.TaskRunUpdateOne) {
		u.SetRoundCount(rounds)
	})
}

// Finish records the run's terminal status. The task-level bookkeeping is
// the queue worker's, not ours.
func (s *TaskService) Finish(ctx context.Context, runID string, status executor.Status, failure error) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	run, err := s.client.TaskRun.Query().
		Where(taskrun.IDEQ(runID)).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.NewFailure(models.ErrKindNotFound, "run %s not found", runID)
		}
		return fmt.Errorf("failed to load run: %w", err)
	}

	now := time.Now()
	update := run.Update().
		SetStatus(terminalRunStatus(status)).
		SetCompletedAt(now)
	if run.StartedAt != nil {
		update.SetDurationMs(int(now.Sub(*run.StartedAt).Milliseconds()))
	}

	if failure != nil {
		update.SetErrorKind(string(models.KindOf(failure))).
			SetErrorMessage(failure.Error())
	}

	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// terminalRunStatus maps the executor's terminal status onto the run
// status enum. A rejected plan fails the run with error_kind
// invalid_input; the phase history already shows the rejection.
func terminalRunStatus(status executor.Status) taskrun.Status {
	switch status {
	case executor.StatusCompleted:
		return taskrun.StatusCompleted
	case executor.StatusCancelled:
		return taskrun.StatusCancelled
	case executor.StatusTimeout:
		return taskrun.StatusTimeout
	default:
		return taskrun.StatusFailed
	}
}

// AwaitPlanDecision blocks until the pending plan is approved or
// rejected. The decision is a persisted marker in the run results, so the
// wait survives process restart; this is a poll, not a parked channel.
func (s *TaskService) AwaitPlanDecision(ctx context.Context, runID string) (*executor.PlanDecision, error) {
	ticker := time.NewTicker(decisionPollInterval)
	defer ticker.Stop()

	for {
		decision, err := s.lookupPlanDecision(ctx, runID)
		if err != nil {
			return nil, err
		}
		if decision != nil {
			return decision, nil
		}

		select {
		case <-ctx.Done():
			err := ctx.Err()
			return nil, models.WrapFailure(models.KindOf(err), err, "plan approval wait interrupted")
		case <-ticker.C:
		}
	}
}

func (s *TaskService) lookupPlanDecision(ctx context.Context, runID string) (*executor.PlanDecision, error) {
	run, err := s.client.TaskRun.Query().
		Where(taskrun.IDEQ(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, models.NewFailure(models.ErrKindNotFound, "run %s not found", runID)
		}
		return nil, fmt.Errorf("failed to load run: %w", err)
	}

	raw, ok := run.Results[planDecisionKey].(map[string]any)
	if !ok {
		return nil, nil
	}
	approved, _ := raw["approved"].(bool)
	reason, _ := raw["reason"].(string)
	return &executor.PlanDecision{Approved: approved, Reason: reason}, nil
}

// ApprovePlan resolves a pending plan as approved.
func (s *TaskService) ApprovePlan(ctx context.Context, runID, reason string) error {
	return s.decidePlan(ctx, runID, true, reason)
}

// RejectPlan resolves a pending plan as rejected.
func (s *TaskService) RejectPlan(ctx context.Context, runID, reason string) error {
	return s.decidePlan(ctx, runID, false, reason)
}

// decidePlan writes the plan decision marker under a row lock. Exactly
// one decision wins; later attempts conflict.
func (s *TaskService) decidePlan(ctx context.Context, runID string, approved bool, reason string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	run, err := tx.TaskRun.Query().
		Where(taskrun.IDEQ(runID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.NewFailure(models.ErrKindNotFound, "run %s not found", runID)
		}
		return fmt.Errorf("failed to load run: %w", err)
	}

	if run.Phase != taskrun.PhaseAwaitingApproval {
		return models.NewFailure(models.ErrKindConflict,
			"run %s is not awaiting plan approval (phase %s)", runID, run.Phase)
	}
	if _, decided := run.Results[planDecisionKey]; decided {
		return models.NewFailure(models.ErrKindConflict, "plan for run %s already decided", runID)
	}

	results := run.Results
	if results == nil {
		results = map[string]any{}
	}
	results[planDecisionKey] = map[string]any{
		"approved":   approved,
		"reason":     reason,
		"decided_at": time.Now().UTC().Format(time.RFC3339),
	}

	if err := run.Update().SetResults(results).Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to record plan decision: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit plan decision: %w", err)
	}
	return nil
}

// mergeResults read-modify-writes keys into the run's results column.
func (s *TaskService) mergeResults(runID string, patch map[string]any) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	run, err := s.client.TaskRun.Query().
		Where(taskrun.IDEQ(runID)).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.NewFailure(models.ErrKindNotFound, "run %s not found", runID)
		}
		return fmt.Errorf("failed to load run: %w", err)
	}

	results := run.Results
	if results == nil {
		results = map[string]any{}
	}
	for k, v := range patch {
		results[k] = v
	}
	if err := run.Update().SetResults(results).Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to update run results: %w", err)
	}
	return nil
}

func (s *TaskService) updateRun(runID string, apply func(*ent.TaskRunUpdateOne)) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.TaskRun.UpdateOneID(runID)
	apply(update)
	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return models.NewFailure(models.ErrKindNotFound, "run %s not found", runID)
		}
		return fmt.Errorf("failed to update run: %w", err)
	}
	return nil
}
