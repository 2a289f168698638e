package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mgx-dev/mgx/ent"
	entworkflow "github.com/mgx-dev/mgx/ent/workflow"
	"github.com/mgx-dev/mgx/ent/workflowexecution"
	"github.com/mgx-dev/mgx/ent/workflowstep"
	"github.com/mgx-dev/mgx/ent/workflowstepexecution"
	"github.com/mgx-dev/mgx/pkg/models"
	"github.com/mgx-dev/mgx/pkg/workflow"
)

// WorkflowService manages workflow definitions and their executions. It
// implements workflow.ExecutionStore for the DAG engine.
type WorkflowService struct {
	client *ent.Client
}

// NewWorkflowService creates a new WorkflowService.
func NewWorkflowService(client *ent.Client) *WorkflowService {
	return &WorkflowService{client: client}
}

// CreateWorkflow validates and persists a workflow with its steps. The
// DAG is validated up front; an invalid graph never reaches the table.
func (s *WorkflowService) CreateWorkflow(httpCtx context.Context, req models.CreateWorkflowRequest) (*ent.Workflow, error) {
	if len(req.Steps) == 0 {
		return nil, models.NewFailure(models.ErrKindInvalidInput, "workflow needs at least one step")
	}

	// Assign step IDs before validation so references stay stable.
	for i := range req.Steps {
		if req.Steps[i].ID == "" {
			req.Steps[i].ID = uuid.New().String()
		}
	}

	decoded, err := decodeSteps(req.Steps)
	if err != nil {
		return nil, err
	}
	candidate := &workflow.Workflow{
		WorkspaceID: req.WorkspaceID,
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Steps:       decoded,
	}
	if errs := workflow.ValidateWorkflow(candidate); len(errs) > 0 {
		return nil, errs[0]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	w, err := tx.Workflow.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(req.WorkspaceID).
		SetProjectID(req.ProjectID).
		SetName(req.Name).
		SetDescription(req.Description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create workflow: %w", err)
	}

	for _, in := range req.Steps {
		builder := tx.WorkflowStep.Create().
			SetID(in.ID).
			SetWorkflowID(w.ID).
			SetName(in.Name).
			SetStepType(workflowstep.StepType(in.StepType)).
			SetStepOrder(in.StepOrder)
		if len(in.DependsOnSteps) > 0 {
			builder.SetDependsOnSteps(in.DependsOnSteps)
		}
		if in.Config != nil {
			builder.SetConfig(in.Config)
		}
		if in.RetryPolicy != nil {
			builder.SetRetryPolicy(in.RetryPolicy)
		}
		if _, err := builder.Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to create workflow step %s: %w", in.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit workflow: %w", err)
	}
	return w, nil
}

// GetWorkflow retrieves a workflow by ID.
func (s *WorkflowService) GetWorkflow(ctx context.Context, workflowID string) (*ent.Workflow, error) {
	w, err := s.client.Workflow.Query().
		Where(entworkflow.IDEQ(workflowID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, models.NewFailure(models.ErrKindNotFound, "workflow %s not found", workflowID)
		}
		return nil, fmt.Errorf("failed to get workflow: %w", err)
	}
	return w, nil
}

// ListWorkflows lists workflows in a workspace/project.
func (s *WorkflowService) ListWorkflows(ctx context.Context, workspaceID, projectID string) ([]*ent.Workflow, error) {
	query := s.client.Workflow.Query().
		Where(entworkflow.WorkspaceIDEQ(workspaceID))
	if projectID != "" {
		query = query.Where(entworkflow.ProjectIDEQ(projectID))
	}
	workflows, err := query.Order(ent.Desc(entworkflow.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}
	return workflows, nil
}

// EngineWorkflow loads a workflow and decodes it into the engine's view.
func (s *WorkflowService) EngineWorkflow(ctx context.Context, workflowID string) (*workflow.Workflow, error) {
	w, err := s.GetWorkflow(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	rows, err := s.client.WorkflowStep.Query().
		Where(workflowstep.WorkflowIDEQ(workflowID)).
		Order(ent.Asc(workflowstep.FieldStepOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load workflow steps: %w", err)
	}

	inputs := make([]models.WorkflowStepInput, len(rows))
	for i, row := range rows {
		inputs[i] = models.WorkflowStepInput{
			ID:             row.ID,
			Name:           row.Name,
			StepType:       string(row.StepType),
			StepOrder:      row.StepOrder,
			DependsOnSteps: row.DependsOnSteps,
			Config:         row.Config,
			RetryPolicy:    row.RetryPolicy,
		}
	}
	decoded, err := decodeSteps(inputs)
	if err != nil {
		return nil, err
	}
	return &workflow.Workflow{
		ID:          w.ID,
		WorkspaceID: w.WorkspaceID,
		ProjectID:   w.ProjectID,
		Name:        w.Name,
		Steps:       decoded,
	}, nil
}

// decodeSteps turns stored step rows into engine step definitions. A
// sequential step is desugared into a parallel group whose children are
// chained by implicit dependencies, so the engine needs no fourth
// grouping mode.
func decodeSteps(inputs []models.WorkflowStepInput) ([]*workflow.StepDef, error) {
	byName := make(map[string]*workflow.StepDef, len(inputs))
	defs := make([]*workflow.StepDef, 0, len(inputs))
	var sequentials []*workflow.StepDef

	for _, in := range inputs {
		def := &workflow.StepDef{
			ID:        in.ID,
			Name:      in.Name,
			Type:      workflow.StepType(in.StepType),
			StepOrder: in.StepOrder,
			DependsOn: in.DependsOnSteps,
			Config:    in.Config,
		}
		if err := decodeStepConfig(def, in.Config); err != nil {
			return nil, err
		}
		decodeRetryPolicy(def, in.RetryPolicy)

		if in.StepType == "sequential" {
			def.Type = workflow.StepTypeParallel
			sequentials = append(sequentials, def)
		}
		defs = append(defs, def)
		byName[def.Name] = def
	}

	// Chain sequential children: each child also depends on its
	// predecessor in the group.
	for _, group := range sequentials {
		for i := 1; i < len(group.Children); i++ {
			child := byName[group.Children[i]]
			if child == nil {
				continue // validation reports the dangling reference
			}
			child.DependsOn = appendUnique(child.DependsOn, group.Children[i-1])
		}
	}
	return defs, nil
}

// decodeStepConfig reads the recognized config keys into typed fields.
func decodeStepConfig(def *workflow.StepDef, cfg map[string]any) error {
	if cfg == nil {
		return nil
	}

	if v, ok := cfg["on_failure"].(string); ok {
		switch workflow.OnFailure(v) {
		case workflow.OnFailureAbort, workflow.OnFailureContinue:
			def.OnFailure = workflow.OnFailure(v)
		default:
			return models.NewFailure(models.ErrKindInvalidInput,
				"step %q: on_failure must be abort or continue", def.Name)
		}
	}
	if v, ok := cfg["skip_propagates"].(bool); ok {
		def.SkipPropagates = &v
	}
	if raw, ok := cfg["children"].([]any); ok {
		for _, c := range raw {
			if name, ok := c.(string); ok {
				def.Children = append(def.Children, name)
			}
		}
	}

	if raw, ok := cfg["condition"].(map[string]any); ok {
		cond := &workflow.ConditionConfig{}
		cond.Expression, _ = raw["expression"].(string)
		cond.TrueSteps = stringSlice(raw["true_steps"])
		cond.FalseSteps = stringSlice(raw["false_steps"])
		def.Condition = cond
	}

	if raw, ok := cfg["approval"].(map[string]any); ok {
		appr := &workflow.ApprovalConfig{}
		if v, ok := asFloat(raw["expires_after_s"]); ok {
			appr.ExpiresAfter = time.Duration(v * float64(time.Second))
		}
		if v, ok := asFloat(raw["auto_approve_after_s"]); ok {
			appr.AutoApproveAfter = time.Duration(v * float64(time.Second))
			if v == 0 {
				// Explicit zero means approve on the next sweep, not
				// "no auto-approval"; keep the field non-zero so the
				// two cases stay distinguishable.
				appr.AutoApproveAfter = time.Nanosecond
			}
		}
		if v, ok := asFloat(raw["max_revisions"]); ok {
			appr.MaxRevisions = int(v)
		}
		appr.RequiredApprovers = stringSlice(raw["required_approvers"])
		def.Approval = appr
	}
	return nil
}

func decodeRetryPolicy(def *workflow.StepDef, raw map[string]any) {
	if raw == nil {
		return
	}
	if v, ok := asFloat(raw["max_attempts"]); ok {
		def.Retry.MaxAttempts = int(v)
	}
	if v, ok := asFloat(raw["backoff_base_ms"]); ok {
		def.Retry.BackoffBase = time.Duration(v) * time.Millisecond
	}
	def.Retry.FatalErrors = stringSlice(raw["fatal_errors"])
}

// asFloat accepts the number representations JSON decoding produces.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func stringSlice(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func appendUnique(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}

// --- workflow.ExecutionStore ---

// CreateExecution persists a new execution with the next
// execution_number, allocated under the workflow's row lock.
func (s *WorkflowService) CreateExecution(ctx context.Context, w *workflow.Workflow, input map[string]any) (*workflow.Execution, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Workflow.Query().
		Where(entworkflow.IDEQ(w.ID)).
		ForUpdate().
		Only(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return nil, models.NewFailure(models.ErrKindNotFound, "workflow %s not found", w.ID)
		}
		return nil, fmt.Errorf("failed to lock workflow: %w", err)
	}

	count, err := tx.WorkflowExecution.Query().
		Where(workflowexecution.WorkflowIDEQ(w.ID)).
		Count(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to count executions: %w", err)
	}

	now := time.Now()
	builder := tx.WorkflowExecution.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(w.ID).
		SetWorkspaceID(w.WorkspaceID).
		SetProjectID(w.ProjectID).
		SetExecutionNumber(count + 1).
		SetStatus(workflowexecution.StatusRunning).
		SetStartedAt(now)
	if input != nil {
		builder.SetInputVariables(input)
	}
	row, err := builder.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create execution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit execution: %w", err)
	}

	return &workflow.Execution{
		ID:          row.ID,
		WorkflowID:  w.ID,
		WorkspaceID: w.WorkspaceID,
		Number:      row.ExecutionNumber,
		StartedAt:   now,
	}, nil
}

// FinishExecution records the execution's terminal status.
func (s *WorkflowService) FinishExecution(ctx context.Context, executionID string, status workflow.ExecutionStatus, failure error) error {
	row, err := s.client.WorkflowExecution.Query().
		Where(workflowexecution.IDEQ(executionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.NewFailure(models.ErrKindNotFound, "execution %s not found", executionID)
		}
		return fmt.Errorf("failed to load execution: %w", err)
	}

	now := time.Now()
	update := row.Update().
		SetStatus(workflowexecution.Status(status)).
		SetCompletedAt(now)
	if row.StartedAt != nil {
		update.SetDurationMs(int(now.Sub(*row.StartedAt).Milliseconds()))
	}
	if failure != nil {
		update.SetErrorKind(string(models.KindOf(failure))).
			SetErrorMessage(failure.Error())
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to finish execution: %w", err)
	}
	return nil
}

// CreateStepExecution creates (or, on a revision relaunch, resets) the
// step execution row. One row per (execution, step); retries and
// revisions reuse it so the timeline stays keyed by step.
func (s *WorkflowService) CreateStepExecution(ctx context.Context, executionID string, step *workflow.StepDef) (string, error) {
	now := time.Now()

	existing, err := s.client.WorkflowStepExecution.Query().
		Where(
			workflowstepexecution.ExecutionIDEQ(executionID),
			workflowstepexecution.StepIDEQ(step.ID),
		).
		Only(ctx)
	if err == nil {
		if err := existing.Update().
			SetStatus(workflowstepexecution.StatusRunning).
			SetStartedAt(now).
			ClearCompletedAt().
			ClearDurationMs().
			ClearErrorKind().
			ClearErrorMessage().
			Exec(ctx); err != nil {
			return "", fmt.Errorf("failed to reset step execution: %w", err)
		}
		return existing.ID, nil
	}
	if !ent.IsNotFound(err) {
		return "", fmt.Errorf("failed to query step execution: %w", err)
	}

	row, err := s.client.WorkflowStepExecution.Create().
		SetID(uuid.New().String()).
		SetExecutionID(executionID).
		SetStepID(step.ID).
		SetStatus(workflowstepexecution.StatusRunning).
		SetStartedAt(now).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create step execution: %w", err)
	}
	return row.ID, nil
}

// SetStepStatus records a step execution transition.
func (s *WorkflowService) SetStepStatus(ctx context.Context, stepExecutionID string, status workflow.StepStatus, output map[string]any, stepErr error) error {
	if stepExecutionID == "" {
		return nil
	}
	row, err := s.client.WorkflowStepExecution.Query().
		Where(workflowstepexecution.IDEQ(stepExecutionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.NewFailure(models.ErrKindNotFound, "step execution %s not found", stepExecutionID)
		}
		return fmt.Errorf("failed to load step execution: %w", err)
	}

	update := row.Update().SetStatus(workflowstepexecution.Status(status))
	if workflow.TerminalStep(status) {
		now := time.Now()
		update.SetCompletedAt(now)
		if row.StartedAt != nil {
			update.SetDurationMs(int(now.Sub(*row.StartedAt).Milliseconds()))
		}
	}
	if output != nil {
		update.SetOutput(output)
	}
	if stepErr != nil {
		update.SetErrorKind(string(models.KindOf(stepErr))).
			SetErrorMessage(stepErr.Error())
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update step execution: %w", err)
	}
	return nil
}

// SetStepRetry records the retry counter.
func (s *WorkflowService) SetStepRetry(ctx context.Context, stepExecutionID string, retryCount int) error {
	if stepExecutionID == "" {
		return nil
	}
	err := s.client.WorkflowStepExecution.UpdateOneID(stepExecutionID).
		SetRetryCount(retryCount).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.NewFailure(models.ErrKindNotFound, "step execution %s not found", stepExecutionID)
		}
		return fmt.Errorf("failed to update retry count: %w", err)
	}
	return nil
}

// --- API queries ---

// GetExecution retrieves one execution.
func (s *WorkflowService) GetExecution(ctx context.Context, executionID string) (*ent.WorkflowExecution, error) {
	row, err := s.client.WorkflowExecution.Query().
		Where(workflowexecution.IDEQ(executionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, models.NewFailure(models.ErrKindNotFound, "execution %s not found", executionID)
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}
	return row, nil
}

// ListExecutions lists a workflow's executions, newest first.
func (s *WorkflowService) ListExecutions(ctx context.Context, workflowID string, limit int) ([]*ent.WorkflowExecution, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.client.WorkflowExecution.Query().
		Where(workflowexecution.WorkflowIDEQ(workflowID)).
		Order(ent.Desc(workflowexecution.FieldExecutionNumber)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}
	return rows, nil
}

/// GetTimeline builds the detailed execution view: every step execution
// with its timestamps, duration, and retries, in step order.
func (s *WorkflowService) GetTimeline(ctx context.Context, executionID string) (*models.ExecutionTimeline, error) {
	exec, err := s.GetExecution(ctx, executionID)
	if err != nil {
		return nil, err
	}

	steps, err := s.client.WorkflowStep.Query().
		Where(workflowstep.WorkflowIDEQ(exec.WorkflowID)).
		Order(ent.Asc(workflowstep.FieldStepOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load steps: %w", err)
	}
	stepExecs, err := s.client.WorkflowStepExecution.Query().
		Where(workflowstepexecution.ExecutionIDEQ(executionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load step executions: %w", err)
	}
	byStep := make(map[string]*ent.WorkflowStepExecution, len(stepExecs))
	for _, se := range stepExecs {
		byStep[se.StepID] = se
	}

	timeline := &models.ExecutionTimeline{
		ExecutionID:     exec.ID,
		WorkflowID:      exec.WorkflowID,
		ExecutionNumber: exec.ExecutionNumber,
		Status:          string(exec.Status),
		StartedAt:       exec.StartedAt,
		CompletedAt:     exec.CompletedAt,
		DurationMS:      exec.DurationMs,
	}
	for _, step := range steps {
		entry := models.StepTimelineEntry{
			StepID:   step.ID,
			StepName: step.Name,
			StepType: string(step.StepType),
			Status:   string(workflowstepexecution.StatusPending),
		}
		if se, ok := byStep[step.ID]; ok {
			entry.StepExecutionID = se.ID
			entry.Status = string(se.Status)
			entry.StartedAt = se.StartedAt
			entry.CompletedAt = se.CompletedAt
			entry.DurationMS = se.DurationMs
			entry.RetryCount = se.RetryCount
			if se.ErrorKind != nil {
				entry.ErrorKind = *se.ErrorKind
			}
			if se.ErrorMessage != nil {
				entry.Error = *se.ErrorMessage
			}
		}
		timeline.Steps = append(timeline.Steps, entry)
	}
	return timeline, nil
}

// GetMetrics aggregates execution statistics for a workflow. Only
// terminal executions count; running ones are excluded from the averages.
func (s *WorkflowService) GetMetrics(ctx context.Context, workflowID string) (*models.WorkflowMetrics, error) {
	if _, err := s.GetWorkflow(ctx, workflowID); err != nil {
		return nil, err
	}

	rows, err := s.client.WorkflowExecution.Query().
		Where(
			workflowexecution.WorkflowIDEQ(workflowID),
			workflowexecution.StatusIn(
				workflowexecution.StatusCompleted,
				workflowexecution.StatusFailed,
				workflowexecution.StatusCancelled,
			),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load executions: %w", err)
	}

	metrics := &models.WorkflowMetrics{WorkflowID: workflowID}
	var totalMS float64
	counted := 0
	for _, row := range rows {
		metrics.ExecutionCount++
		if row.Status == workflowexecution.StatusCompleted {
			metrics.SuccessCount++
		} else {
			metrics.FailureCount++
		}
		if row.DurationMs == nil {
			continue
		}
		d := *row.DurationMs
		totalMS += float64(d)
		if counted == 0 || d < metrics.MinDurationMS {
			metrics.MinDurationMS = d
		}
		if d > metrics.MaxDurationMS {
			metrics.MaxDurationMS = d
		}
		counted++
	}
	if metrics.ExecutionCount > 0 {
		metrics.SuccessRate = float64(metrics.SuccessCount) / float64(metrics.ExecutionCount)
	}
	if counted > 0 {
		metrics.AvgDurationMS = totalMS / float64(counted)
	}
	return metrics, nil
}
