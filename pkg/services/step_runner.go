package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	entask "github.com/mgx-dev/mgx/ent/task"
	"github.com/mgx-dev/mgx/pkg/agent"
	"github.com/mgx-dev/mgx/pkg/llm"
	"github.com/mgx-dev/mgx/pkg/models"
	"github.com/mgx-dev/mgx/pkg/workflow"
)

// WorkflowStepRunner executes the engine's task and agent steps. Task
// steps drive a full task run inline, bypassing the queue so the step's
// context owns cancellation. Agent steps are a single role-routed
// completion.
type WorkflowStepRunner struct {
	tasks     *TaskService
	runner    *TaskRunner
	agents    *AgentService
	completer llm.Completer
	logger    *slog.Logger
}

// NewWorkflowStepRunner creates a WorkflowStepRunner.
func NewWorkflowStepRunner(tasks *TaskService, runner *TaskRunner, agents *AgentService, completer llm.Completer, logger *slog.Logger) *WorkflowStepRunner {
	return &WorkflowStepRunner{
		tasks:     tasks,
		runner:    runner,
		agents:    agents,
		completer: completer,
		logger:    logger.With("component", "step_runner"),
	}
}

// RunStep implements workflow.StepRunner.
func (r *WorkflowStepRunner) RunStep(ctx context.Context, w *workflow.Workflow, exec *workflow.Execution, step *workflow.StepDef, input map[string]any) (map[string]any, error) {
	switch step.Type {
	case workflow.StepTypeTask:
		return r.runTaskStep(ctx, step, input)
	case workflow.StepTypeAgent:
		return r.runAgentStep(ctx, w, step, input)
	default:
		return nil, models.NewFailure(models.ErrKindInternal,
			"step %q of type %s is not runnable", step.Name, step.Type)
	}
}

// runTaskStep drives one run of the configured task to a terminal status.
// The step's output feeds downstream steps.
func (r *WorkflowStepRunner) runTaskStep(ctx context.Context, step *workflow.StepDef, input map[string]any) (map[string]any, error) {
	taskID, _ := step.Config["task_id"].(string)
	if taskID == "" {
		return nil, models.NewFailure(models.ErrKindInvalidInput,
			"task step %q has no task_id", step.Name)
	}

	task, err := r.tasks.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	// Thread the upstream outputs as run input on the in-memory row only;
	// the task is not enqueued, so no queue worker can double-claim it.
	if len(input) > 0 {
		if task.Config == nil {
			task.Config = map[string]any{}
		}
		task.Config[runInputKey] = input
	}

	result := r.runner.Execute(ctx, task)
	output := map[string]any{
		"task_id":    taskID,
		"run_id":     result.RunID,
		"run_number": result.RunNumber,
		"status":     string(result.Status),
	}
	if result.PRURL != "" {
		output["pr_url"] = result.PRURL
	}

	switch result.Status {
	case entask.StatusCompleted:
		return output, nil
	case entask.StatusCancelled:
		if result.Error != nil {
			return output, result.Error
		}
		return output, models.NewFailure(models.ErrKindCancelled, "task %s run cancelled", taskID)
	default:
		if result.Error != nil {
			return output, result.Error
		}
		return output, models.NewFailure(models.ErrKindInternal,
			"task %s run finished %s", taskID, result.Status)
	}
}

// runAgentStep routes one prompt to an instance of the configured role.
func (r *WorkflowStepRunner) runAgentStep(ctx context.Context, w *workflow.Workflow, step *workflow.StepDef, input map[string]any) (map[string]any, error) {
	roleName, _ := step.Config["role"].(string)
	role := agent.Role(roleName)
	if !role.Valid() {
		return nil, models.NewFailure(models.ErrKindInvalidInput,
			"agent step %q has unknown role %q", step.Name, roleName)
	}
	prompt, _ := step.Config["prompt"].(string)
	if prompt == "" {
		return nil, models.NewFailure(models.ErrKindInvalidInput,
			"agent step %q has no prompt", step.Name)
	}

	inst, err := r.agents.ChooseInstance(ctx, w.WorkspaceID, role, nil)
	if err != nil {
		return nil, err
	}
	defer r.agents.ReleaseInstance(ctx, inst.ID)

	content := prompt
	if len(input) > 0 {
		if extra, merr := json.Marshal(input); merr == nil {
			content = fmt.Sprintf("%s\n\nUpstream step outputs:\n%s", prompt, extra)
		}
	}
	req := &llm.Request{
		WorkspaceID: w.WorkspaceID,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: content}},
	}
	if def, derr := r.agents.InstanceDefinition(ctx, inst.ID); derr == nil {
		req.Model = def.Model
		req.SystemPrompt = def.SystemPrompt
	}

	resp, err := r.completer.Complete(ctx, req)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("agent step completed",
		"step", step.Name, "role", roleName, "instance_id", inst.ID, "tokens", resp.TotalTokens)

	return map[string]any{
		"text":        resp.Text,
		"instance_id": inst.ID,
		"tokens":      resp.TotalTokens,
	}, nil
}

var _ workflow.StepRunner = (*WorkflowStepRunner)(nil)
