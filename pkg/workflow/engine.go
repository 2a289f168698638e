package workflow

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mgx-dev/mgx/pkg/config"
	"github.com/mgx-dev/mgx/pkg/events"
	"github.com/mgx-dev/mgx/pkg/models"
)

// defaultMaxRevisions bounds the request_changes loop when the approval
// config does not set its own limit.
const defaultMaxRevisions = 3

// ExecutionStore is the persistence surface for executions and step
// executions. Implemented by services.WorkflowService over ent.
type ExecutionStore interface {
	CreateExecution(ctx context.Context, w *Workflow, input map[string]any) (*Execution, error)
	FinishExecution(ctx context.Context, executionID string, status ExecutionStatus, failure error) error
	CreateStepExecution(ctx context.Context, executionID string, step *StepDef) (string, error)
	SetStepStatus(ctx context.Context, stepExecutionID string, status StepStatus, output map[string]any, stepErr error) error
	SetStepRetry(ctx context.Context, stepExecutionID string, retryCount int) error
}

// StepRunner executes task and agent steps: it obtains an instance from
// the agent controller, threads the execution context in, and returns the
// step's output.
type StepRunner interface {
	RunStep(ctx context.Context, w *Workflow, exec *Execution, step *StepDef, input map[string]any) (map[string]any, error)
}

// ApprovalGate creates and awaits approval records. AwaitApproval
// resolves when the record transitions, whether by human response or the
// sweeper; the wait is restart-safe (persisted marker, not a parked
// goroutine).
type ApprovalGate interface {
	CreateApproval(ctx context.Context, exec *Execution, stepExecutionID string, cfg *ApprovalConfig, parentApprovalID string, revisionCount int) (string, error)
	AwaitApproval(ctx context.Context, approvalID string) (*ApprovalResult, error)
}

// EventSink receives workflow lifecycle events. *events.Emitter satisfies it.
type EventSink interface {
	Emit(envelope *events.Envelope)
}

// Engine schedules workflow executions. One engine serves the process;
// each execution runs its own scheduler goroutine.
type Engine struct {
	cfg    *config.WorkflowConfig
	store  ExecutionStore
	runner StepRunner
	gate   ApprovalGate
	sink   EventSink

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

// NewEngine creates an Engine.
func NewEngine(cfg *config.WorkflowConfig, store ExecutionStore, runner StepRunner, gate ApprovalGate, sink EventSink) *Engine {
	return &Engine{
		cfg:     cfg,
		store:   store,
		runner:  runner,
		gate:    gate,
		sink:    sink,
		cancels: make(map[string]context.CancelFunc),
	}
}

// StartExecution validates the workflow, persists the execution, and
// begins scheduling in the background. Returns the execution immediately.
func (e *Engine) StartExecution(ctx context.Context, w *Workflow, input map[string]any) (*Execution, error) {
	if errs := ValidateWorkflow(w); len(errs) > 0 {
		return nil, errs[0]
	}
	exec, err := e.store.CreateExecution(ctx, w, input)
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	e.mu.Lock()
	e.cancels[exec.ID] = cancel
	e.mu.Unlock()

	go func() {
		defer func() {
			e.mu.Lock()
			delete(e.cancels, exec.ID)
			e.mu.Unlock()
			cancel()
		}()
		e.Execute(runCtx, w, exec, input)
	}()
	return exec, nil
}

// CancelExecution requests cancellation. Idempotent; unknown or finished
// executions are a no-op.
func (e *Engine) CancelExecution(executionID string) {
	e.mu.Lock()
	cancel := e.cancels[executionID]
	e.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Execute runs an already-persisted execution to a terminal status.
func (e *Engine) Execute(ctx context.Context, w *Workflow, exec *Execution, input map[string]any) ExecutionStatus {
	st := newRunState(w, exec, input)

	e.emit(st, events.EventWorkflowStarted, map[string]any{
		"execution_number": exec.Number,
		"steps":            len(w.Steps),
	})

	status := e.schedule(ctx, st)

	finishCtx, cancelFinish := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelFinish()
	if err := e.store.FinishExecution(finishCtx, exec.ID, status, st.failure); err != nil {
		slog.Error("Failed to record execution outcome", "execution_id", exec.ID, "error", err)
	}

	switch status {
	case ExecutionCompleted:
		e.emit(st, events.EventWorkflowCompleted, map[string]any{"status": string(status)})
	case ExecutionCancelled:
		e.emit(st, events.EventWorkflowCancelled, map[string]any{"status": string(status)})
	default:
		data := map[string]any{"status": string(status)}
		if st.failure != nil {
			data["error"] = st.failure.Error()
			data["error_kind"] = string(models.KindOf(st.failure))
		}
		e.emit(st, events.EventWorkflowFailed, data)
	}
	return status
}

// runState is one execution's in-memory scheduling state. The scheduler
// goroutine owns it; step goroutines report through the done channel.
type runState struct {
	w    *Workflow
	exec *Execution
	g    *graph

	status   map[string]StepStatus
	stepExec map[string]string // step name → step execution id
	feedback map[string]string // revision feedback per step name
	retries  map[string]int
	lineage  map[string]*revisionLineage // approval step name → lineage
	context  map[string]any
	failure  error
	anyFail  bool
}

type revisionLineage struct {
	parentApprovalID string
	revisionCount    int
}

func newRunState(w *Workflow, exec *Execution, input map[string]any) *runState {
	st := &runState{
		w:        w,
		exec:     exec,
		g:        buildGraph(w.Steps),
		status:   make(map[string]StepStatus, len(w.Steps)),
		stepExec: make(map[string]string, len(w.Steps)),
		feedback: make(map[string]string),
		retries:  make(map[string]int),
		lineage:  make(map[string]*revisionLineage),
		context: map[string]any{
			"input": input,
			"steps": map[string]any{},
		},
	}
	if input == nil {
		st.context["input"] = map[string]any{}
	}
	for _, s := range w.Steps {
		st.status[s.Name] = StepPending
	}
	return st
}

// stepDone is a step goroutine's report back to the scheduler.
type stepDone struct {
	step   *StepDef
	status StepStatus
	output map[string]any
	err    error

	// requestChanges carries an approval's request_changes payload;
	// approvalID is the resolved approval for revision lineage.
	requestChanges *ApprovalResult
	approvalID     string
}

// schedule is the continuous-readiness loop. Steps launch the moment
// their dependencies allow; layers are never used as barriers.
func (e *Engine) schedule(ctx context.Context, st *runState) ExecutionStatus {
	doneCh := make(chan stepDone)
	active := 0

	for {
		for _, step := range e.launchable(st, active) {
			st.status[step.Name] = StepRunning
			active++
			e.startStep(ctx, st, step, doneCh)
		}

		if active == 0 {
			break
		}

		select {
		case msg := <-doneCh:
			active--
			e.record(ctx, st, msg)
		case <-ctx.Done():
			// Drain running steps; their contexts are cancelled with ours.
			for active > 0 {
				msg := <-doneCh
				active--
				e.record(ctx, st, msg)
			}
			e.cancelRemaining(st)
			return ExecutionCancelled
		}
	}

	if ctx.Err() != nil {
		e.cancelRemaining(st)
		return ExecutionCancelled
	}
	if st.anyFail {
		return ExecutionFailed
	}
	return ExecutionCompleted
}

// launchable returns the pending steps whose dependencies are satisfied,
// applying skip propagation along the way. Respects the per-execution
// concurrency cap.
func (e *Engine) launchable(st *runState, active int) []*StepDef {
	var ready []*StepDef
	for {
		progressed := false
		for _, step := range st.w.Steps {
			if st.status[step.Name] != StepPending {
				continue
			}
			switch e.dependencyState(st, step) {
			case depsSatisfied:
				if !containsStep(ready, step) {
					ready = append(ready, step)
				}
			case depsSkip:
				st.status[step.Name] = StepSkipped
				e.persistStepStatus(st, step, StepSkipped, nil, nil)
				progressed = true
			}
		}
		// A skipped child may be a parallel group's last terminal member,
		// and a completed group may unblock downstream steps, so the
		// whole pass cascades; re-evaluate until stable.
		if e.completeParallelGroups(st) {
			progressed = true
		}
		if !progressed {
			break
		}
		ready = ready[:0]
	}

	if e.cfg.MaxParallelSteps > 0 {
		slots := e.cfg.MaxParallelSteps - active
		if slots < 0 {
			slots = 0
		}
		if len(ready) > slots {
			ready = ready[:slots]
		}
	}
	return ready
}

func containsStep(steps []*StepDef, step *StepDef) bool {
	for _, s := range steps {
		if s.Name == step.Name {
			return true
		}
	}
	return false
}

type depState int

const (
	depsWait depState = iota
	depsSatisfied
	depsSkip
)

// dependencyState classifies a pending step's dependencies. A dependency
// on a parallel group is satisfied once the group is running, so all
// children start together.
func (e *Engine) dependencyState(st *runState, step *StepDef) depState {
	for _, depName := range step.DependsOn {
		dep := st.g.steps[depName]
		switch st.status[depName] {
		case StepCompleted:
		case StepRunning, StepWaitingApproval:
			if dep != nil && dep.Type == StepTypeParallel {
				continue
			}
			return depsWait
		case StepSkipped:
			if dep != nil && !dep.propagatesSkip() {
				continue
			}
			return depsSkip
		case StepFailed, StepCancelled:
			return depsSkip
		default:
			return depsWait
		}
	}
	return depsSatisfied
}

// startStep launches one step's goroutine.
func (e *Engine) startStep(ctx context.Context, st *runState, step *StepDef, doneCh chan<- stepDone) {
	stepExecID, err := e.store.CreateStepExecution(ctx, st.exec.ID, step)
	if err != nil {
		slog.Error("Failed to create step execution", "step", step.Name, "error", err)
	}
	st.stepExec[step.Name] = stepExecID

	e.emit(st, events.EventWorkflowStepStarted, map[string]any{
		"step":      step.Name,
		"step_type": string(step.Type),
		"retry":     st.retries[step.Name],
	})

	// Snapshot what the goroutine needs; it must not touch runState.
	input := snapshotContext(st.context)
	if fb := st.feedback[step.Name]; fb != "" {
		input["revision_feedback"] = fb
	}
	lineage := st.lineage[step.Name]

	go func() {
		doneCh <- e.runStep(ctx, st.w, st.exec, step, stepExecID, input, lineage)
	}()
}

// runStep executes one step to a terminal report, honoring its retry
// policy for task/agent steps.
func (e *Engine) runStep(ctx context.Context, w *Workflow, exec *Execution, step *StepDef, stepExecID string, input map[string]any, lineage *revisionLineage) stepDone {
	switch step.Type {
	case StepTypeCondition:
		return e.runCondition(step, input)
	case StepTypeParallel:
		// The group itself does no work; the scheduler completes it when
		// its children are terminal.
		return stepDone{step: step, status: StepRunning}
	case StepTypeApproval:
		return e.runApproval(ctx, exec, step, stepExecID, lineage)
	default:
		return e.runWithRetries(ctx, w, exec, step, stepExecID, input)
	}
}

func (e *Engine) runCondition(step *StepDef, input map[string]any) stepDone {
	result, err := EvaluateCondition(step.Condition.Expression, input)
	if err != nil {
		return stepDone{step: step, status: StepFailed, err: err}
	}
	return stepDone{
		step:   step,
		status: StepCompleted,
		output: map[string]any{"result": result},
	}
}

func (e *Engine) runApproval(ctx context.Context, exec *Execution, step *StepDef, stepExecID string, lineage *revisionLineage) stepDone {
	cfg := step.Approval
	parentID := ""
	revision := 0
	if lineage != nil {
		parentID = lineage.parentApprovalID
		revision = lineage.revisionCount
	}

	approvalID, err := e.gate.CreateApproval(ctx, exec, stepExecID, cfg, parentID, revision)
	if err != nil {
		return stepDone{step: step, status: StepFailed, err: err}
	}
	if err := e.store.SetStepStatus(ctx, stepExecID, StepWaitingApproval, nil, nil); err != nil {
		slog.Warn("Failed to persist waiting_approval", "step", step.Name, "error", err)
	}
	e.emitApproval(exec, events.EventApprovalRequired, approvalID, step)

	result, err := e.gate.AwaitApproval(ctx, approvalID)
	if err != nil {
		return stepDone{step: step, status: StepFailed, err: err}
	}

	switch result.Decision {
	case DecisionApproved:
		e.emitApproval(exec, events.EventApprovalGranted, approvalID, step)
		return stepDone{step: step, status: StepCompleted, output: map[string]any{
			"approved": true,
			"approver": result.Approver,
		}}
	case DecisionRequestChanges:
		e.emitApproval(exec, events.EventChangesRequested, approvalID, step)
		return stepDone{
			step:           step,
			status:         StepFailed,
			requestChanges: result,
			approvalID:     approvalID,
			err: models.NewFailure(models.ErrKindInvalidInput,
				"changes requested: %s", result.Feedback),
		}
	case DecisionTimeout:
		e.emitApproval(exec, events.EventApprovalRejected, approvalID, step)
		return stepDone{step: step, status: StepFailed,
			err: models.NewFailure(models.ErrKindDeadlineExceeded, "approval expired")}
	case DecisionCancelled:
		return stepDone{step: step, status: StepCancelled,
			err: models.NewFailure(models.ErrKindCancelled, "approval cancelled")}
	default:
		e.emitApproval(exec, events.EventApprovalRejected, approvalID, step)
		return stepDone{step: step, status: StepFailed,
			err: models.NewFailure(models.ErrKindInvalidInput,
				"approval rejected: %s", result.Feedback)}
	}
}

// runWithRetries drives a task/agent step through its retry policy.
// Fatal error kinds fail immediately; other failures burn an attempt and
// back off exponentially.
func (e *Engine) runWithRetries(ctx context.Context, w *Workflow, exec *Execution, step *StepDef, stepExecID string, input map[string]any) stepDone {
	policy := step.Retry
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = e.cfg.DefaultRetryMaxAttempts
	}
	if policy.BackoffBase <= 0 {
		policy.BackoffBase = e.cfg.DefaultRetryBackoffBase
	}

	var lastErr error
	backoff := policy.BackoffBase
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		if attempt > 1 {
			if err := e.store.SetStepRetry(ctx, stepExecID, attempt-1); err != nil {
				slog.Warn("Failed to persist retry count", "step", step.Name, "error", err)
			}
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return stepDone{step: step, status: StepCancelled,
					err: models.WrapFailure(models.KindOf(ctx.Err()), ctx.Err(), "step interrupted")}
			}
			backoff *= 2
		}

		output, err := e.runner.RunStep(ctx, w, exec, step, input)
		if err == nil {
			return stepDone{step: step, status: StepCompleted, output: output}
		}
		lastErr = err

		kind := models.KindOf(err)
		if kind == models.ErrKindCancelled {
			return stepDone{step: step, status: StepCancelled, err: err}
		}
		for _, fatal := range policy.FatalErrors {
			if string(kind) == fatal {
				return stepDone{step: step, status: StepFailed, err: err}
			}
		}
	}
	return stepDone{step: step, status: StepFailed, err: lastErr}
}

// record applies a step report to the run state: context update, events,
// parallel group completion, failure policy, and revision routing.
func (e *Engine) record(ctx context.Context, st *runState, msg stepDone) {
	step := msg.step

	if msg.requestChanges != nil {
		if e.routeRevision(st, step, msg.approvalID, msg.requestChanges) {
			return
		}
		// Revision budget spent; the failure stands.
	}

	st.status[step.Name] = msg.status
	e.persistStepStatus(st, step, msg.status, msg.output, msg.err)

	switch msg.status {
	case StepCompleted:
		st.recordOutput(step.Name, msg.output)
		e.emit(st, events.EventWorkflowStepCompleted, map[string]any{"step": step.Name})
	case StepRunning:
		// A parallel group entering its grouping state; it completes when
		// its children are terminal.
	case StepFailed:
		st.anyFail = true
		if st.failure == nil {
			st.failure = msg.err
		}
		data := map[string]any{"step": step.Name}
		if msg.err != nil {
			data["error"] = msg.err.Error()
			data["error_kind"] = string(models.KindOf(msg.err))
		}
		e.emit(st, events.EventWorkflowStepFailed, data)
		if step.OnFailure != OnFailureContinue {
			e.skipRemaining(st)
		}
	case StepCancelled:
		if st.failure == nil {
			st.failure = msg.err
		}
	}

	if msg.status == StepCompleted && step.Type == StepTypeCondition {
		e.applyConditionResult(st, step, msg.output)
	}

	e.completeParallelGroups(st)
}

// routeRevision handles request_changes: the designated upstream agent
// step (nearest task/agent dependency) is re-queued with the feedback,
// its retry count bumped, and the approval re-created with lineage.
// Returns false when the revision budget is exhausted.
func (e *Engine) routeRevision(st *runState, approvalStep *StepDef, approvalID string, result *ApprovalResult) bool {
	lineage := st.lineage[approvalStep.Name]
	revision := 1
	if lineage != nil {
		revision = lineage.revisionCount + 1
	}
	maxRevisions := defaultMaxRevisions
	if approvalStep.Approval != nil && approvalStep.Approval.MaxRevisions > 0 {
		maxRevisions = approvalStep.Approval.MaxRevisions
	}
	if revision > maxRevisions {
		slog.Info("Revision budget exhausted", "step", approvalStep.Name, "revisions", revision-1)
		return false
	}

	upstream := e.upstreamAgentStep(st, approvalStep)
	if upstream == nil {
		slog.Warn("No upstream agent step for requested changes", "step", approvalStep.Name)
		return false
	}

	st.lineage[approvalStep.Name] = &revisionLineage{
		parentApprovalID: approvalID,
		revisionCount:    revision,
	}
	st.feedback[upstream.Name] = result.Feedback
	st.retries[upstream.Name]++
	st.status[upstream.Name] = StepPending
	st.status[approvalStep.Name] = StepPending

	// Steps between the agent step and the approval re-run too.
	for _, name := range e.between(st, upstream.Name, approvalStep.Name) {
		st.status[name] = StepPending
	}

	slog.Info("Routing requested changes upstream",
		"approval_step", approvalStep.Name, "agent_step", upstream.Name, "revision", revision)
	return true
}

// upstreamAgentStep finds the nearest task/agent dependency of a step,
// searching breadth-first through the dependency edges.
func (e *Engine) upstreamAgentStep(st *runState, step *StepDef) *StepDef {
	queue := append([]string{}, step.DependsOn...)
	visited := make(map[string]bool)
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if visited[name] {
			continue
		}
		visited[name] = true
		dep := st.g.steps[name]
		if dep == nil {
			continue
		}
		if dep.Type == StepTypeTask || dep.Type == StepTypeAgent {
			return dep
		}
		queue = append(queue, dep.DependsOn...)
	}
	return nil
}

// between lists step names downstream of from and upstream of to,
// exclusive of both.
func (e *Engine) between(st *runState, from, to string) []string {
	downstream := make(map[string]bool)
	queue := append([]string{}, st.g.dependents[from]...)
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if downstream[name] {
			continue
		}
		downstream[name] = true
		queue = append(queue, st.g.dependents[name]...)
	}

	upstream := make(map[string]bool)
	if toStep := st.g.steps[to]; toStep != nil {
		queue = append([]string{}, toStep.DependsOn...)
	}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if upstream[name] {
			continue
		}
		upstream[name] = true
		if dep := st.g.steps[name]; dep != nil {
			queue = append(queue, dep.DependsOn...)
		}
	}

	var names []string
	for name := range downstream {
		if upstream[name] && name != from && name != to {
			names = append(names, name)
		}
	}
	return names
}

// applyConditionResult skips the branch the condition did not select.
func (e *Engine) applyConditionResult(st *runState, step *StepDef, output map[string]any) {
	result, _ := output["result"].(bool)
	unselected := step.Condition.FalseSteps
	if !result {
		unselected = step.Condition.TrueSteps
	}
	for _, name := range unselected {
		if st.status[name] == StepPending {
			st.status[name] = StepSkipped
			if s := st.g.steps[name]; s != nil {
				e.persistStepStatus(st, s, StepSkipped, nil, nil)
			}
		}
	}
}

// completeParallelGroups finishes any running parallel group whose
// children are all terminal. Reports whether any group completed.
func (e *Engine) completeParallelGroups(st *runState) bool {
	completed := false
	for _, step := range st.w.Steps {
		if step.Type != StepTypeParallel || st.status[step.Name] != StepRunning {
			continue
		}
		allDone := true
		for _, child := range step.Children {
			if !TerminalStep(st.status[child]) {
				allDone = false
				break
			}
		}
		if allDone {
			st.status[step.Name] = StepCompleted
			e.persistStepStatus(st, step, StepCompleted, nil, nil)
			e.emit(st, events.EventWorkflowStepCompleted, map[string]any{"step": step.Name})
			completed = true
		}
	}
	return completed
}

// skipRemaining marks every still-pending step skipped (abort policy).
func (e *Engine) skipRemaining(st *runState) {
	for _, step := range st.w.Steps {
		if st.status[step.Name] == StepPending {
			st.status[step.Name] = StepSkipped
			e.persistStepStatus(st, step, StepSkipped, nil, nil)
		}
	}
}

// cancelRemaining marks non-terminal steps cancelled after an external
// cancel.
func (e *Engine) cancelRemaining(st *runState) {
	for _, step := range st.w.Steps {
		switch st.status[step.Name] {
		case StepPending, StepRunning, StepWaitingApproval:
			st.status[step.Name] = StepCancelled
			e.persistStepStatus(st, step, StepCancelled, nil, nil)
		}
	}
}

func (st *runState) recordOutput(stepName string, output map[string]any) {
	steps := st.context["steps"].(map[string]any)
	entry := map[string]any{}
	if output != nil {
		entry["output"] = output
	}
	steps[stepName] = entry
}

func (e *Engine) persistStepStatus(st *runState, step *StepDef, status StepStatus, output map[string]any, stepErr error) {
	id := st.stepExec[step.Name]
	if id == "" {
		// Step never started (skipped before launch); record it so the
		// timeline is complete.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		created, err := e.store.CreateStepExecution(ctx, st.exec.ID, step)
		if err != nil {
			slog.Warn("Failed to create step execution for skip", "step", step.Name, "error", err)
			return
		}
		id = created
		st.stepExec[step.Name] = id
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.store.SetStepStatus(ctx, id, status, output, stepErr); err != nil {
		slog.Warn("Failed to persist step status", "step", step.Name, "status", status, "error", err)
	}
}

// snapshotContext deep-copies the execution context map for a step
// goroutine.
func snapshotContext(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		if m, ok := v.(map[string]any); ok {
			dst[k] = snapshotContext(m)
			continue
		}
		dst[k] = v
	}
	return dst
}

func (e *Engine) emit(st *runState, eventType string, data map[string]any) {
	envelope := events.NewEnvelope(eventType, st.w.WorkspaceID, data)
	envelope.WorkflowID = st.w.ID
	envelope.ExecutionID = st.exec.ID
	e.sink.Emit(envelope)
}

func (e *Engine) emitApproval(exec *Execution, eventType, approvalID string, step *StepDef) {
	envelope := events.NewEnvelope(eventType, exec.WorkspaceID, map[string]any{
		"approval_id": approvalID,
		"step":        step.Name,
	})
	envelope.ExecutionID = exec.ID
	envelope.WorkflowID = exec.WorkflowID
	e.sink.Emit(envelope)
}
