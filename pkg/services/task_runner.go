package services

import (
	"context"
	"log/slog"

	"github.com/mgx-dev/mgx/ent"
	"github.com/mgx-dev/mgx/ent/project"
	entask "github.com/mgx-dev/mgx/ent/task"
	"github.com/mgx-dev/mgx/pkg/executor"
	"github.com/mgx-dev/mgx/pkg/models"
	"github.com/mgx-dev/mgx/pkg/queue"
)

// TaskRunner bridges the queue to the run executor: it turns a claimed
// task row into the executor's task view and reports the terminal status
// back in the worker's shape.
type TaskRunner struct {
	client   *ent.Client
	executor *executor.Executor
}

// NewTaskRunner creates a TaskRunner.
func NewTaskRunner(client *ent.Client, exec *executor.Executor) *TaskRunner {
	return &TaskRunner{client: client, executor: exec}
}

// Execute drives one run of the claimed task to a terminal status.
func (r *TaskRunner) Execute(ctx context.Context, task *ent.Task) *queue.ExecutionResult {
	info, input, err := r.taskInfo(ctx, task)
	if err != nil {
		return &queue.ExecutionResult{Status: entask.StatusFailed, Error: err}
	}

	result, err := r.executor.RunTask(ctx, info, input)
	if err != nil {
		// Pre-run failure: nothing was allocated.
		return &queue.ExecutionResult{Status: entask.StatusFailed, Error: err}
	}

	return &queue.ExecutionResult{
		Status:    terminalTaskStatus(result.FinalStatus),
		RunID:     result.RunID,
		RunNumber: result.RunNumber,
	}
}

// CancelRun forwards an API cancellation to the executor.
func (r *TaskRunner) CancelRun(runID string) {
	r.executor.CancelRun(runID)
}

// taskInfo builds the executor's task view: decoded config layered over
// the project's git defaults, plus the enqueue-time run input.
func (r *TaskRunner) taskInfo(ctx context.Context, task *ent.Task) (*executor.TaskInfo, map[string]any, error) {
	cfg, err := models.TaskConfigFromMap(task.Config)
	if err != nil {
		return nil, nil, err
	}

	if cfg.MaxRounds == 0 {
		cfg.MaxRounds = task.MaxRounds
	}
	if cfg.MaxRevisionRounds == 0 {
		cfg.MaxRevisionRounds = task.MaxRevisionRounds
	}
	if cfg.BranchPrefix == "" && task.BranchPrefix != nil {
		cfg.BranchPrefix = *task.BranchPrefix
	}
	if cfg.CommitTemplate == "" && task.CommitTemplate != nil {
		cfg.CommitTemplate = *task.CommitTemplate
	}

	info := &executor.TaskInfo{
		ID:          task.ID,
		WorkspaceID: task.WorkspaceID,
		ProjectID:   task.ProjectID,
		Name:        task.Name,
		Description: task.Description,
		Config:      cfg,
	}

	proj, err := r.client.Project.Query().
		Where(project.IDEQ(task.ProjectID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return nil, nil, err
		}
		slog.Warn("Task project missing, git integration disabled", "task_id", task.ID)
	} else {
		if proj.RepoURL != nil {
			info.RepoURL = *proj.RepoURL
		}
		info.BaseBranch = proj.BaseBranch
		if cfg.BranchPrefix == "" {
			cfg.BranchPrefix = proj.BranchPrefix
		}
		if cfg.CommitTemplate == "" {
			cfg.CommitTemplate = proj.CommitTemplate
		}
	}

	var input map[string]any
	if raw, ok := task.Config[runInputKey].(map[string]any); ok {
		input = raw
	}
	return info, input, nil
}

// terminalTaskStatus maps the run's terminal status onto the task status
// enum. plan_rejected counts as failed at the task level.
func terminalTaskStatus(status executor.Status) entask.Status {
	switch status {
	case executor.StatusCompleted:
		return entask.StatusCompleted
	case executor.StatusCancelled:
		return entask.StatusCancelled
	case executor.StatusTimeout:
		return entask.StatusTimeout
	default:
		return entask.StatusFailed
	}
}
