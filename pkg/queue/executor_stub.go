package queue

import (
	"context"
	"log/slog"

	"github.com/mgx-dev/mgx/ent"
	entask "github.com/mgx-dev/mgx/ent/task"
)

// StubExecutor is a TaskExecutor that completes immediately without any
// agent execution. Used in dev mode and by queue tests that exercise
// claiming and terminal bookkeeping without an LLM backend.
type StubExecutor struct{}

// NewStubExecutor creates a new stub executor.
func NewStubExecutor() *StubExecutor {
	return &StubExecutor{}
}

// Execute returns a completed result immediately.
func (e *StubExecutor) Execute(ctx context.Context, task *ent.Task) *ExecutionResult {
	taskID := ""
	name := ""
	if task != nil {
		taskID = task.ID
		name = task.Name
	}
	slog.Info("Stub executor: task processing (no-op)",
		"task_id", taskID,
		"name", name,
	)

	// Check if context is already cancelled
	if ctx.Err() != nil {
		return &ExecutionResult{
			Status: entask.StatusCancelled,
			Error:  ctx.Err(),
		}
	}

	return &ExecutionResult{
		Status: entask.StatusCompleted,
	}
}
