package workflow

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgx-dev/mgx/pkg/config"
	"github.com/mgx-dev/mgx/pkg/events"
	"github.com/mgx-dev/mgx/pkg/models"
)

// memStore is an in-memory ExecutionStore keyed by step name.
type memStore struct {
	mu         sync.Mutex
	counter    int
	nameByID   map[string]string
	statuses   map[string][]StepStatus
	retries    map[string]int
	execStatus ExecutionStatus
	failure    error
	finished   bool
}

func newMemStore() *memStore {
	return &memStore{
		nameByID: make(map[string]string),
		statuses: make(map[string][]StepStatus),
		retries:  make(map[string]int),
	}
}

func (s *memStore) CreateExecution(ctx context.Context, w *Workflow, input map[string]any) (*Execution, error) {
	return &Execution{ID: "exec-1", WorkflowID: w.ID, WorkspaceID: w.WorkspaceID, Number: 1}, nil
}

func (s *memStore) FinishExecution(ctx context.Context, executionID string, status ExecutionStatus, failure error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.execStatus = status
	s.failure = failure
	s.finished = true
	return nil
}

func (s *memStore) CreateStepExecution(ctx context.Context, executionID string, step *StepDef) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++
	id := fmt.Sprintf("%s#%d", step.Name, s.counter)
	s.nameByID[id] = step.Name
	return id, nil
}

func (s *memStore) SetStepStatus(ctx context.Context, stepExecutionID string, status StepStatus, output map[string]any, stepErr error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := s.nameByID[stepExecutionID]
	s.statuses[name] = append(s.statuses[name], status)
	return nil
}

func (s *memStore) SetStepRetry(ctx context.Context, stepExecutionID string, retryCount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.retries[s.nameByID[stepExecutionID]] = retryCount
	return nil
}

func (s *memStore) lastStatus(name string) StepStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	hist := s.statuses[name]
	if len(hist) == 0 {
		return ""
	}
	return hist[len(hist)-1]
}

// fakeRunner scripts task/agent step behavior per step name.
type fakeRunner struct {
	mu       sync.Mutex
	calls    map[string]int
	inputs   map[string][]map[string]any
	behavior map[string]func(call int, input map[string]any) (map[string]any, error)

	concurrent    atomic.Int32
	maxConcurrent atomic.Int32
	stepDelay     time.Duration
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		calls:    make(map[string]int),
		inputs:   make(map[string][]map[string]any),
		behavior: make(map[string]func(int, map[string]any) (map[string]any, error)),
	}
}

func (r *fakeRunner) RunStep(ctx context.Context, w *Workflow, exec *Execution, step *StepDef, input map[string]any) (map[string]any, error) {
	cur := r.concurrent.Add(1)
	defer r.concurrent.Add(-1)
	for {
		max := r.maxConcurrent.Load()
		if cur <= max || r.maxConcurrent.CompareAndSwap(max, cur) {
			break
		}
	}
	if r.stepDelay > 0 {
		select {
		case <-time.After(r.stepDelay):
		case <-ctx.Done():
			return nil, models.WrapFailure(models.KindOf(ctx.Err()), ctx.Err(), "step interrupted")
		}
	}

	r.mu.Lock()
	r.calls[step.Name]++
	call := r.calls[step.Name]
	r.inputs[step.Name] = append(r.inputs[step.Name], input)
	fn := r.behavior[step.Name]
	r.mu.Unlock()

	if fn != nil {
		return fn(call, input)
	}
	return map[string]any{"ok": true}, nil
}

func (r *fakeRunner) callCount(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[name]
}

// fakeGate scripts approval resolutions in creation order.
type fakeGate struct {
	mu      sync.Mutex
	counter int
	created []gateCreate
	results []*ApprovalResult
}

type gateCreate struct {
	parentID string
	revision int
}

func (g *fakeGate) CreateApproval(ctx context.Context, exec *Execution, stepExecutionID string, cfg *ApprovalConfig, parentApprovalID string, revisionCount int) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	g.created = append(g.created, gateCreate{parentID: parentApprovalID, revision: revisionCount})
	return fmt.Sprintf("approval-%d", g.counter), nil
}

func (g *fakeGate) AwaitApproval(ctx context.Context, approvalID string) (*ApprovalResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.results) == 0 {
		return &ApprovalResult{Decision: DecisionApproved, Approver: "tester"}, nil
	}
	r := g.results[0]
	g.results = g.results[1:]
	return r, nil
}

type nullSink struct {
	mu    sync.Mutex
	types []string
}

func (n *nullSink) Emit(envelope *events.Envelope) {
	n.mu.Lock()
	n.types = append(n.types, envelope.EventType)
	n.mu.Unlock()
}

func (n *nullSink) has(eventType string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, t := range n.types {
		if t == eventType {
			return true
		}
	}
	return false
}

func newTestEngine(store ExecutionStore, runner StepRunner, gate ApprovalGate) (*Engine, *nullSink) {
	sink := &nullSink{}
	cfg := config.DefaultWorkflowConfig()
	cfg.DefaultRetryBackoffBase = time.Millisecond
	return NewEngine(cfg, store, runner, gate, sink), sink
}

func execute(t *testing.T, e *Engine, w *Workflow, input map[string]any) ExecutionStatus {
	t.Helper()
	exec := &Execution{ID: "exec-1", WorkflowID: w.ID, WorkspaceID: w.WorkspaceID, Number: 1}
	return e.Execute(context.Background(), w, exec, input)
}

func TestExecuteLinearWorkflow(t *testing.T) {
	store := newMemStore()
	runner := newFakeRunner()
	engine, sink := newTestEngine(store, runner, &fakeGate{})

	w := wf(step("a"), step("b", "a"), step("c", "b"))
	status := execute(t, engine, w, nil)

	assert.Equal(t, ExecutionCompleted, status)
	assert.Equal(t, ExecutionCompleted, store.execStatus)
	for _, name := range []string{"a", "b", "c"} {
		assert.Equal(t, StepCompleted, store.lastStatus(name), name)
	}
	assert.True(t, sink.has(events.EventWorkflowStarted))
	assert.True(t, sink.has(events.EventWorkflowCompleted))
}

func TestExecuteRunsIndependentStepsConcurrently(t *testing.T) {
	store := newMemStore()
	runner := newFakeRunner()
	runner.stepDelay = 50 * time.Millisecond
	engine, _ := newTestEngine(store, runner, &fakeGate{})

	w := wf(step("left"), step("right"), step("join", "left", "right"))
	status := execute(t, engine, w, nil)

	assert.Equal(t, ExecutionCompleted, status)
	assert.GreaterOrEqual(t, runner.maxConcurrent.Load(), int32(2))
}

func TestExecuteStepOutputsFlowIntoContext(t *testing.T) {
	store := newMemStore()
	runner := newFakeRunner()
	runner.behavior["producer"] = func(call int, input map[string]any) (map[string]any, error) {
		return map[string]any{"artifact": "v1"}, nil
	}
	engine, _ := newTestEngine(store, runner, &fakeGate{})

	w := wf(step("producer"), step("consumer", "producer"))
	status := execute(t, engine, w, map[string]any{"env": "ci"})
	require.Equal(t, ExecutionCompleted, status)

	runner.mu.Lock()
	consumerInput := runner.inputs["consumer"][0]
	runner.mu.Unlock()

	steps := consumerInput["steps"].(map[string]any)
	producer := steps["producer"].(map[string]any)
	assert.Equal(t, map[string]any{"artifact": "v1"}, producer["output"])
	assert.Equal(t, "ci", consumerInput["input"].(map[string]any)["env"])
}

func TestExecuteFailureAbortSkipsEverythingPending(t *testing.T) {
	store := newMemStore()
	runner := newFakeRunner()
	runner.behavior["boom"] = func(call int, input map[string]any) (map[string]any, error) {
		return nil, models.NewFailure(models.ErrKindInternal, "exploded")
	}
	engine, sink := newTestEngine(store, runner, &fakeGate{})

	w := wf(
		step("a"),
		step("boom", "a"),
		step("after", "boom"),
		step("sibling", "a"),
	)
	// Make the sibling slower than the failure so it is still pending.
	runner.behavior["sibling"] = func(call int, input map[string]any) (map[string]any, error) {
		time.Sleep(20 * time.Millisecond)
		return map[string]any{}, nil
	}

	status := execute(t, engine, w, nil)

	assert.Equal(t, ExecutionFailed, status)
	assert.Equal(t, StepFailed, store.lastStatus("boom"))
	assert.Equal(t, StepSkipped, store.lastStatus("after"))
	assert.True(t, sink.has(events.EventWorkflowStepFailed))
	assert.True(t, sink.has(events.EventWorkflowFailed))
	assert.True(t, models.IsKind(store.failure, models.ErrKindInternal))
}

func TestExecuteFailureContinueKeepsIndependentBranch(t *testing.T) {
	store := newMemStore()
	runner := newFakeRunner()
	runner.behavior["boom"] = func(call int, input map[string]any) (map[string]any, error) {
		return nil, models.NewFailure(models.ErrKindInternal, "exploded")
	}
	engine, _ := newTestEngine(store, runner, &fakeGate{})

	boom := step("boom", "a")
	boom.OnFailure = OnFailureContinue
	w := wf(
		step("a"),
		boom,
		step("after", "boom"),
		step("independent", "a"),
	)
	status := execute(t, engine, w, nil)

	assert.Equal(t, ExecutionFailed, status)
	assert.Equal(t, StepSkipped, store.lastStatus("after"))
	assert.Equal(t, StepCompleted, store.lastStatus("independent"))
}

func TestExecuteRetriesTransientFailures(t *testing.T) {
	store := newMemStore()
	runner := newFakeRunner()
	runner.behavior["flaky"] = func(call int, input map[string]any) (map[string]any, error) {
		if call < 3 {
			return nil, models.NewFailure(models.ErrKindLLMFailed, "transient")
		}
		return map[string]any{"ok": true}, nil
	}
	engine, _ := newTestEngine(store, runner, &fakeGate{})

	flaky := step("flaky")
	flaky.Retry = RetryPolicy{MaxAttempts: 3, BackoffBase: time.Millisecond}
	w := wf(flaky)

	status := execute(t, engine, w, nil)
	assert.Equal(t, ExecutionCompleted, status)
	assert.Equal(t, 3, runner.callCount("flaky"))
	assert.Equal(t, 2, store.retries["flaky"])
}

func TestExecuteFatalErrorsSkipRetries(t *testing.T) {
	store := newMemStore()
	runner := newFakeRunner()
	runner.behavior["strict"] = func(call int, input map[string]any) (map[string]any, error) {
		return nil, models.NewFailure(models.ErrKindInvalidInput, "bad config")
	}
	engine, _ := newTestEngine(store, runner, &fakeGate{})

	strict := step("strict")
	strict.Retry = RetryPolicy{
		MaxAttempts: 5,
		BackoffBase: time.Millisecond,
		FatalErrors: []string{"invalid_input"},
	}
	w := wf(strict)

	status := execute(t, engine, w, nil)
	assert.Equal(t, ExecutionFailed, status)
	assert.Equal(t, 1, runner.callCount("strict"))
}

func TestExecuteConditionSelectsBranch(t *testing.T) {
	store := newMemStore()
	runner := newFakeRunner()
	engine, _ := newTestEngine(store, runner, &fakeGate{})

	branch := &StepDef{
		Name: "branch", Type: StepTypeCondition,
		Condition: &ConditionConfig{
			Expression: `input.env == "production"`,
			TrueSteps:  []string{"deploy"},
			FalseSteps: []string{"dry-run"},
		},
	}
	w := wf(
		branch,
		step("deploy", "branch"),
		step("dry-run", "branch"),
	)

	status := execute(t, engine, w, map[string]any{"env": "production"})
	assert.Equal(t, ExecutionCompleted, status)
	assert.Equal(t, StepCompleted, store.lastStatus("deploy"))
	assert.Equal(t, StepSkipped, store.lastStatus("dry-run"))
	assert.Equal(t, 0, runner.callCount("dry-run"))
}

func TestExecuteParallelGroup(t *testing.T) {
	store := newMemStore()
	runner := newFakeRunner()
	runner.stepDelay = 30 * time.Millisecond
	engine, _ := newTestEngine(store, runner, &fakeGate{})

	group := &StepDef{
		Name: "fanout", Type: StepTypeParallel,
		DependsOn: []string{"prep"},
		Children:  []string{"w1", "w2", "w3"},
	}
	w := wf(
		step("prep"),
		group,
		step("w1", "fanout"),
		step("w2", "fanout"),
		step("w3", "fanout"),
		step("collect", "fanout"),
	)
	// collect depends on the group completing, which needs all children
	// terminal; make it also depend on the children being recorded.
	w.Steps[5].DependsOn = []string{"w1", "w2", "w3"}

	status := execute(t, engine, w, nil)
	assert.Equal(t, ExecutionCompleted, status)
	assert.Equal(t, StepCompleted, store.lastStatus("fanout"))
	assert.GreaterOrEqual(t, runner.maxConcurrent.Load(), int32(3))
}

func TestExecuteParallelGroupCompletesWhenChildSkipped(t *testing.T) {
	store := newMemStore()
	runner := newFakeRunner()
	runner.behavior["boom"] = func(call int, input map[string]any) (map[string]any, error) {
		time.Sleep(30 * time.Millisecond)
		return nil, models.NewFailure(models.ErrKindInternal, "exploded")
	}
	engine, _ := newTestEngine(store, runner, &fakeGate{})

	boom := step("boom")
	boom.OnFailure = OnFailureContinue
	group := &StepDef{
		Name: "fanout", Type: StepTypeParallel,
		Children: []string{"w1", "w2"},
	}
	// w1's last terminal transition is a skip applied during readiness
	// evaluation, not a step-done report; the group must still finish
	// rather than stay running forever.
	w := wf(
		boom,
		group,
		step("w1", "fanout", "boom"),
		step("w2", "fanout"),
	)

	status := execute(t, engine, w, nil)

	assert.Equal(t, ExecutionFailed, status)
	assert.Equal(t, StepSkipped, store.lastStatus("w1"))
	assert.Equal(t, StepCompleted, store.lastStatus("w2"))
	assert.Equal(t, StepCompleted, store.lastStatus("fanout"))
}

func TestExecuteApprovalApproved(t *testing.T) {
	store := newMemStore()
	runner := newFakeRunner()
	gate := &fakeGate{}
	engine, sink := newTestEngine(store, runner, gate)

	approval := &StepDef{
		Name: "gate", Type: StepTypeApproval,
		DependsOn: []string{"work"},
		Approval:  &ApprovalConfig{ExpiresAfter: time.Hour},
	}
	w := wf(step("work"), approval, step("ship", "gate"))

	status := execute(t, engine, w, nil)
	assert.Equal(t, ExecutionCompleted, status)
	assert.Equal(t, StepCompleted, store.lastStatus("ship"))
	assert.True(t, sink.has(events.EventApprovalRequired))
	assert.True(t, sink.has(events.EventApprovalGranted))
}

func TestExecuteApprovalTimeout(t *testing.T) {
	store := newMemStore()
	runner := newFakeRunner()
	gate := &fakeGate{results: []*ApprovalResult{{Decision: DecisionTimeout}}}
	engine, _ := newTestEngine(store, runner, gate)

	approval := &StepDef{
		Name: "gate", Type: StepTypeApproval,
		DependsOn: []string{"work"},
		Approval:  &ApprovalConfig{ExpiresAfter: time.Hour},
	}
	w := wf(step("work"), approval, step("ship", "gate"))

	status := execute(t, engine, w, nil)
	assert.Equal(t, ExecutionFailed, status)
	assert.Equal(t, StepSkipped, store.lastStatus("ship"))
	assert.True(t, models.IsKind(store.failure, models.ErrKindDeadlineExceeded))
}

func TestExecuteRequestChangesRoutesUpstream(t *testing.T) {
	store := newMemStore()
	runner := newFakeRunner()
	gate := &fakeGate{results: []*ApprovalResult{
		{Decision: DecisionRequestChanges, Feedback: "tighten validation"},
		{Decision: DecisionApproved, Approver: "lead"},
	}}
	engine, sink := newTestEngine(store, runner, gate)

	work := step("work")
	work.Type = StepTypeAgent
	approval := &StepDef{
		Name: "gate", Type: StepTypeApproval,
		DependsOn: []string{"work"},
		Approval:  &ApprovalConfig{ExpiresAfter: time.Hour},
	}
	w := wf(work, approval, step("ship", "gate"))

	status := execute(t, engine, w, nil)
	assert.Equal(t, ExecutionCompleted, status)

	// The agent step ran twice, the second time with the feedback.
	assert.Equal(t, 2, runner.callCount("work"))
	runner.mu.Lock()
	secondInput := runner.inputs["work"][1]
	runner.mu.Unlock()
	assert.Equal(t, "tighten validation", secondInput["revision_feedback"])

	// The second approval carries lineage.
	gate.mu.Lock()
	require.Len(t, gate.created, 2)
	assert.Equal(t, "", gate.created[0].parentID)
	assert.Equal(t, 0, gate.created[0].revision)
	assert.Equal(t, "approval-1", gate.created[1].parentID)
	assert.Equal(t, 1, gate.created[1].revision)
	gate.mu.Unlock()

	assert.True(t, sink.has(events.EventChangesRequested))
	assert.Equal(t, StepCompleted, store.lastStatus("ship"))
}

func TestExecuteRequestChangesBudgetExhausted(t *testing.T) {
	store := newMemStore()
	runner := newFakeRunner()
	change := &ApprovalResult{Decision: DecisionRequestChanges, Feedback: "again"}
	gate := &fakeGate{results: []*ApprovalResult{change, change, change}}
	engine, _ := newTestEngine(store, runner, gate)

	work := step("work")
	work.Type = StepTypeAgent
	approval := &StepDef{
		Name: "gate", Type: StepTypeApproval,
		DependsOn: []string{"work"},
		Approval:  &ApprovalConfig{ExpiresAfter: time.Hour, MaxRevisions: 2},
	}
	w := wf(work, approval)

	status := execute(t, engine, w, nil)
	assert.Equal(t, ExecutionFailed, status)
	// Initial run plus two revisions.
	assert.Equal(t, 3, runner.callCount("work"))
}

func TestExecuteSkipDoesNotPropagateWhenDisabled(t *testing.T) {
	store := newMemStore()
	runner := newFakeRunner()
	engine, _ := newTestEngine(store, runner, &fakeGate{})

	noProp := false
	optional := &StepDef{
		Name: "optional", Type: StepTypeTask,
		DependsOn:      []string{"branch"},
		SkipPropagates: &noProp,
	}
	branch := &StepDef{
		Name: "branch", Type: StepTypeCondition,
		Condition: &ConditionConfig{
			Expression: "input.enabled",
			TrueSteps:  []string{"optional"},
		},
	}
	w := wf(branch, optional, step("final", "optional"))

	status := execute(t, engine, w, map[string]any{"enabled": false})
	assert.Equal(t, ExecutionCompleted, status)
	assert.Equal(t, StepSkipped, store.lastStatus("optional"))
	// final still runs: optional's skip does not propagate.
	assert.Equal(t, StepCompleted, store.lastStatus("final"))
}

func TestStartExecutionAndCancel(t *testing.T) {
	store := newMemStore()
	runner := newFakeRunner()
	runner.behavior["slow"] = func(call int, input map[string]any) (map[string]any, error) {
		return nil, nil // unreachable; stepDelay blocks first
	}
	runner.stepDelay = 10 * time.Second
	engine, sink := newTestEngine(store, runner, &fakeGate{})

	w := wf(step("slow"), step("after", "slow"))
	exec, err := engine.StartExecution(context.Background(), w, nil)
	require.NoError(t, err)
	require.NotNil(t, exec)

	require.Eventually(t, func() bool {
		return runner.concurrent.Load() == 1
	}, 5*time.Second, 5*time.Millisecond)

	engine.CancelExecution(exec.ID)

	require.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return store.finished
	}, 5*time.Second, 5*time.Millisecond)

	assert.Equal(t, ExecutionCancelled, store.execStatus)
	assert.Equal(t, StepCancelled, store.lastStatus("after"))
	assert.True(t, sink.has(events.EventWorkflowCancelled))

	// Cancel after completion is a no-op.
	engine.CancelExecution(exec.ID)
}

func TestStartExecutionRejectsInvalidDAG(t *testing.T) {
	engine, _ := newTestEngine(newMemStore(), newFakeRunner(), &fakeGate{})
	w := wf(step("a", "b"), step("b", "a"))
	_, err := engine.StartExecution(context.Background(), w, nil)
	assert.True(t, models.IsKind(err, models.ErrKindInvalidInput))
}
