package executor

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgx-dev/mgx/pkg/config"
	"github.com/mgx-dev/mgx/pkg/events"
	"github.com/mgx-dev/mgx/pkg/gitops"
	"github.com/mgx-dev/mgx/pkg/llm"
	"github.com/mgx-dev/mgx/pkg/models"
	"github.com/mgx-dev/mgx/pkg/sandbox"
)

// fakeStore is an in-memory RunStore.
type fakeStore struct {
	mu          sync.Mutex
	phases      []Phase
	gitStatuses []string
	branch      string
	prURL       string
	rounds      int
	complexity  models.Complexity
	status      Status
	failure     error

	// decision resolves AwaitPlanDecision; nil blocks until ctx is done.
	decision *PlanDecision
}

func (s *fakeStore) AllocateRun(ctx context.Context, taskID string, input map[string]any) (*Run, error) {
	return &Run{ID: "run-1", TaskID: taskID, Number: 1, Phase: PhaseCreated}, nil
}

func (s *fakeStore) SetPhase(ctx context.Context, runID string, phase Phase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phases = append(s.phases, phase)
	return nil
}

func (s *fakeStore) SetComplexity(ctx context.Context, runID string, c models.Complexity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.complexity = c
	return nil
}

func (s *fakeStore) SetBranch(ctx context.Context, runID, branch string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.branch = branch
	return nil
}

func (s *fakeStore) SetGitStatus(ctx context.Context, runID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gitStatuses = append(s.gitStatuses, status)
	return nil
}

func (s *fakeStore) SetPRURL(ctx context.Context, runID, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prURL = url
	return nil
}

func (s *fakeStore) SetRoundCount(ctx context.Context, runID string, rounds int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rounds = rounds
	return nil
}

func (s *fakeStore) Finish(ctx context.Context, runID string, status Status, failure error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.failure = failure
	return nil
}

func (s *fakeStore) AwaitPlanDecision(ctx context.Context, runID string) (*PlanDecision, error) {
	if s.decision != nil {
		return s.decision, nil
	}
	<-ctx.Done()
	return nil, models.WrapFailure(models.KindOf(ctx.Err()), ctx.Err(), "plan wait interrupted")
}

// fakeCrew scripts the agent roles.
type fakeCrew struct {
	mu         sync.Mutex
	analysis   *Analysis
	analyzeErr error
	planErr    error
	manifests  []string
	tests      []string
	reviews    []*models.ReviewOutcome
	implCalls  []*RoundInput
	round      int
}

func (c *fakeCrew) Analyze(ctx context.Context, task *TaskInfo, input map[string]any) (*Analysis, error) {
	if c.analyzeErr != nil {
		return nil, c.analyzeErr
	}
	if c.analysis != nil {
		return c.analysis, nil
	}
	return &Analysis{Complexity: models.ComplexityS}, nil
}

func (c *fakeCrew) Plan(ctx context.Context, task *TaskInfo, analysis *Analysis) (*Plan, error) {
	if c.planErr != nil {
		return nil, c.planErr
	}
	return &Plan{Steps: []PlanStep{{Role: "engineer", Description: "build"}}}, nil
}

func (c *fakeCrew) Implement(ctx context.Context, task *TaskInfo, round *RoundInput) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.implCalls = append(c.implCalls, round)
	if len(c.manifests) > 0 {
		m := c.manifests[0]
		if len(c.manifests) > 1 {
			c.manifests = c.manifests[1:]
		}
		return m, nil
	}
	return "FILE: src/index.js\nconsole.log(1)\n", nil
}

func (c *fakeCrew) WriteTests(ctx context.Context, task *TaskInfo, round *RoundInput) (string, error) {
	if len(c.tests) > 0 {
		return c.tests[0], nil
	}
	return "FILE: test/index.test.js\ntest()\n", nil
}

func (c *fakeCrew) Review(ctx context.Context, task *TaskInfo, review *RoundReview) (*models.ReviewOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.round < len(c.reviews) {
		r := c.reviews[c.round]
		c.round++
		return r, nil
	}
	return &models.ReviewOutcome{Verdict: models.VerdictApproved}, nil
}

type fakeFactory struct{ crew *fakeCrew }

func (f *fakeFactory) ForRun(task *TaskInfo, run *Run, budget *llm.BudgetTracker) Crew {
	return f.crew
}

// fakeGit records the git lifecycle.
type fakeGit struct {
	mu         sync.Mutex
	dir        string
	prepareErr error
	commitSHA  string
	commitErr  error
	pushErr    error
	prErr      error
	calls      []string
	rolledBack bool
}

func (g *fakeGit) PrepareWorktree(ctx context.Context, repoURL, baseBranch, newBranch string) (string, error) {
	g.record("prepare")
	if g.prepareErr != nil {
		return "", g.prepareErr
	}
	return g.dir, nil
}

func (g *fakeGit) StageAndCommit(ctx context.Context, path, message string, files ...string) (string, error) {
	g.record("commit")
	return g.commitSHA, g.commitErr
}

func (g *fakeGit) Push(ctx context.Context, path, branch string) error {
	g.record("push")
	return g.pushErr
}

func (g *fakeGit) OpenPullRequest(ctx context.Context, path string, spec *gitops.PullRequestSpec) (string, error) {
	g.record("pr")
	if g.prErr != nil {
		return "", g.prErr
	}
	return "https://example.com/pr/1", nil
}

func (g *fakeGit) Rollback(ctx context.Context, path string) error {
	g.record("rollback")
	g.mu.Lock()
	g.rolledBack = true
	g.mu.Unlock()
	return nil
}

func (g *fakeGit) Cleanup(path string) { g.record("cleanup") }

func (g *fakeGit) record(op string) {
	g.mu.Lock()
	g.calls = append(g.calls, op)
	g.mu.Unlock()
}

// recordingSink collects emitted event types.
type recordingSink struct {
	mu     sync.Mutex
	events []*events.Envelope
}

func (r *recordingSink) Emit(envelope *events.Envelope) {
	r.mu.Lock()
	r.events = append(r.events, envelope)
	r.mu.Unlock()
}

func (r *recordingSink) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.EventType
	}
	return out
}

func testTask(cfg models.TaskConfig) *TaskInfo {
	if cfg.BudgetMultiplier == 0 {
		cfg.BudgetMultiplier = 1.0
	}
	if cfg.OutputMode == "" {
		cfg.OutputMode = models.OutputModeGenerateNew
	}
	return &TaskInfo{
		ID:          "task-1",
		WorkspaceID: "ws-1",
		ProjectID:   "proj-1",
		Name:        "Build API",
		BaseBranch:  "main",
		Config:      &cfg,
	}
}

func newTestExecutor(t *testing.T, store *fakeStore, crew *fakeCrew, git Git) (*Executor, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	cfg := config.DefaultExecutorConfig()
	cfg.CancelGracePeriod = 2 * time.Second
	return New(cfg, store, &fakeFactory{crew: crew}, git, nil, sink, t.TempDir()), sink
}

func TestRunTaskHappyPath(t *testing.T) {
	store := &fakeStore{}
	crew := &fakeCrew{}
	exec, sink := newTestExecutor(t, store, crew, nil)

	task := testTask(models.TaskConfig{AutoApprovePlan: true})
	result, err := exec.RunTask(context.Background(), task, nil)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, result.FinalStatus)
	assert.Equal(t, StatusCompleted, store.status)
	assert.Equal(t, models.ComplexityS, store.complexity)
	assert.Equal(t, 1, store.rounds)
	assert.Equal(t, []Phase{
		PhaseAnalyzing, PhasePlanning, PhaseAwaitingApproval,
		PhaseExecuting, PhaseReviewing, PhaseCompleting, PhaseDone,
	}, store.phases)

	types := sink.types()
	assert.Equal(t, events.EventTaskStarted, types[0])
	assert.Equal(t, events.EventTaskCompleted, types[len(types)-1])
}

func TestRunTaskPlanRejected(t *testing.T) {
	store := &fakeStore{decision: &PlanDecision{Approved: false, Reason: "too broad"}}
	crew := &fakeCrew{}
	exec, sink := newTestExecutor(t, store, crew, nil)

	result, err := exec.RunTask(context.Background(), testTask(models.TaskConfig{}), nil)
	require.NoError(t, err)

	assert.Equal(t, StatusPlanRejected, result.FinalStatus)
	assert.True(t, models.IsKind(store.failure, models.ErrKindInvalidInput))
	assert.Contains(t, sink.types(), events.EventPlanReady)
	assert.Contains(t, sink.types(), events.EventTaskFailed)
}

func TestRunTaskRevisionLoop(t *testing.T) {
	store := &fakeStore{}
	crew := &fakeCrew{
		reviews: []*models.ReviewOutcome{
			{Verdict: models.VerdictChangesRequired, Notes: "rename handler"},
			{Verdict: models.VerdictApproved},
		},
	}
	exec, _ := newTestExecutor(t, store, crew, nil)

	task := testTask(models.TaskConfig{AutoApprovePlan: true, MaxRevisionRounds: 3})
	result, err := exec.RunTask(context.Background(), task, nil)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, result.FinalStatus)
	assert.Equal(t, 2, store.rounds)
	require.Len(t, crew.implCalls, 2)
	assert.Empty(t, crew.implCalls[0].ReviewFeedback)
	assert.Equal(t, "rename handler", crew.implCalls[1].ReviewFeedback)
	assert.Contains(t, store.phases, PhaseRevising)
}

func TestRunTaskIdenticalReviewHaltsLoop(t *testing.T) {
	store := &fakeStore{}
	same := &models.ReviewOutcome{Verdict: models.VerdictChangesRequired, Notes: "still wrong"}
	crew := &fakeCrew{reviews: []*models.ReviewOutcome{same, same, same}}
	exec, _ := newTestExecutor(t, store, crew, nil)

	task := testTask(models.TaskConfig{AutoApprovePlan: true, MaxRevisionRounds: 10})
	result, err := exec.RunTask(context.Background(), task, nil)
	require.NoError(t, err)

	// Round 1 review, one revision, round 2 review identical: halt, fail.
	assert.Equal(t, StatusFailed, result.FinalStatus)
	assert.Equal(t, 2, store.rounds)
}

func TestRunTaskZeroRevisionRounds(t *testing.T) {
	store := &fakeStore{}
	crew := &fakeCrew{
		reviews: []*models.ReviewOutcome{
			{Verdict: models.VerdictChangesRequired, Notes: "nope"},
		},
	}
	exec, _ := newTestExecutor(t, store, crew, nil)

	task := testTask(models.TaskConfig{AutoApprovePlan: true, MaxRevisionRounds: 0})
	result, err := exec.RunTask(context.Background(), task, nil)
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, result.FinalStatus)
	assert.Equal(t, 1, store.rounds)
}

func TestRunTaskAnalyzeFailure(t *testing.T) {
	store := &fakeStore{}
	crew := &fakeCrew{
		analyzeErr: models.NewFailure(models.ErrKindLLMFailed, "provider down"),
	}
	exec, _ := newTestExecutor(t, store, crew, nil)

	result, err := exec.RunTask(context.Background(), testTask(models.TaskConfig{AutoApprovePlan: true}), nil)
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, result.FinalStatus)
	assert.True(t, models.IsKind(store.failure, models.ErrKindLLMFailed))
}

func TestRunTaskBudgetExhaustedFailsRun(t *testing.T) {
	store := &fakeStore{}
	crew := &fakeCrew{
		planErr: models.NewFailure(models.ErrKindBudgetExhausted, "spent 2.1 of 2.0"),
	}
	exec, _ := newTestExecutor(t, store, crew, nil)

	result, err := exec.RunTask(context.Background(), testTask(models.TaskConfig{AutoApprovePlan: true}), nil)
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, result.FinalStatus)
	assert.True(t, models.IsKind(store.failure, models.ErrKindBudgetExhausted))
}

func TestCancelRunDuringApprovalWait(t *testing.T) {
	store := &fakeStore{} // decision nil: AwaitPlanDecision blocks
	crew := &fakeCrew{}
	exec, _ := newTestExecutor(t, store, crew, nil)

	done := make(chan *RunResult, 1)
	go func() {
		result, err := exec.RunTask(context.Background(), testTask(models.TaskConfig{}), nil)
		require.NoError(t, err)
		done <- result
	}()

	// Wait for the run to reach the approval gate, then cancel it.
	require.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		for _, p := range store.phases {
			if p == PhaseAwaitingApproval {
				return true
			}
		}
		return false
	}, 5*time.Second, 10*time.Millisecond)

	exec.CancelRun("run-1")

	select {
	case result := <-done:
		assert.Equal(t, StatusCancelled, result.FinalStatus)
	case <-time.After(5 * time.Second):
		t.Fatal("cancelled run did not finish")
	}

	// A second cancel of a finished run is a no-op.
	exec.CancelRun("run-1")
}

func TestRunTaskGitLifecycle(t *testing.T) {
	store := &fakeStore{}
	crew := &fakeCrew{}
	git := &fakeGit{dir: t.TempDir(), commitSHA: "abc123"}
	exec, sink := newTestExecutor(t, store, crew, git)

	task := testTask(models.TaskConfig{AutoApprovePlan: true, BranchPrefix: "feature"})
	task.RepoURL = "https://example.com/repo.git"

	result, err := exec.RunTask(context.Background(), task, nil)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, result.FinalStatus)
	assert.Equal(t, "feature/build-api/run-1", store.branch)
	assert.Equal(t, "https://example.com/pr/1", store.prURL)
	assert.Equal(t, []string{"branch_created", "committed", "pushed", "pr_opened"}, store.gitStatuses)
	assert.Equal(t, []string{"prepare", "commit", "push", "pr", "cleanup"}, git.calls)

	types := sink.types()
	assert.Contains(t, types, events.EventGitBranchCreated)
	assert.Contains(t, types, events.EventGitCommitCreated)
	assert.Contains(t, types, events.EventGitPushSuccess)
	assert.Contains(t, types, events.EventPullRequestOpened)
}

func TestRunTaskGitSetupFailureIsNonFatal(t *testing.T) {
	store := &fakeStore{}
	crew := &fakeCrew{}
	git := &fakeGit{prepareErr: models.NewFailure(models.ErrKindGitFailed, "auth failed")}
	exec, sink := newTestExecutor(t, store, crew, git)

	task := testTask(models.TaskConfig{AutoApprovePlan: true})
	task.RepoURL = "https://example.com/repo.git"

	result, err := exec.RunTask(context.Background(), task, nil)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, result.FinalStatus)
	assert.Empty(t, store.branch)
	assert.Contains(t, sink.types(), events.EventGitOperationFailed)
}

func TestRunTaskPushFailureSkipsPR(t *testing.T) {
	store := &fakeStore{}
	crew := &fakeCrew{}
	git := &fakeGit{dir: t.TempDir(), commitSHA: "abc123",
		pushErr: models.NewFailure(models.ErrKindGitFailed, "remote rejected")}
	exec, sink := newTestExecutor(t, store, crew, git)

	task := testTask(models.TaskConfig{AutoApprovePlan: true})
	task.RepoURL = "https://example.com/repo.git"

	result, err := exec.RunTask(context.Background(), task, nil)
	require.NoError(t, err)

	// Push failure never fails the run.
	assert.Equal(t, StatusCompleted, result.FinalStatus)
	assert.Equal(t, []string{"branch_created", "committed", "push_failed"}, store.gitStatuses)
	assert.NotContains(t, git.calls, "pr")
	assert.Contains(t, sink.types(), events.EventGitPushFailed)
	assert.Empty(t, store.prURL)
}

func TestRunTaskGuardrailViolationBecomesFeedback(t *testing.T) {
	store := &fakeStore{}
	crew := &fakeCrew{
		manifests: []string{
			"FILE: ../escape.js\nbad\n",
			"FILE: src/ok.js\ngood\n",
		},
	}
	exec, _ := newTestExecutor(t, store, crew, nil)

	task := testTask(models.TaskConfig{AutoApprovePlan: true, MaxRevisionRounds: 2})
	result, err := exec.RunTask(context.Background(), task, nil)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, result.FinalStatus)
	require.Len(t, crew.implCalls, 2)
	assert.Contains(t, crew.implCalls[1].ReviewFeedback, "path_escape")
}

func TestRunTaskSandboxFailureIsRevisionFeedback(t *testing.T) {
	store := &fakeStore{}
	crew := &fakeCrew{
		reviews: []*models.ReviewOutcome{
			{Verdict: models.VerdictChangesRequired, Notes: "tests failing"},
			{Verdict: models.VerdictApproved},
		},
	}
	sink := &recordingSink{}
	cfg := config.DefaultExecutorConfig()
	runner := &fakeSandbox{result: &sandbox.Result{
		Status: sandbox.StatusFailed, ExitCode: 1, Stderr: "assertion error",
	}}
	exec := New(cfg, store, &fakeFactory{crew: crew}, nil, runner, sink, t.TempDir())

	task := testTask(models.TaskConfig{
		AutoApprovePlan: true, MaxRevisionRounds: 2, TargetStack: "express-ts",
	})
	// Minimal manifest satisfying the express-ts expected files.
	crew.manifests = []string{
		"FILE: package.json\n{\"name\":\"x\"}\nFILE: tsconfig.json\n{}\nFILE: src/index.ts\nexport {}\n",
	}

	result, err := exec.RunTask(context.Background(), task, nil)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, result.FinalStatus)
	require.Len(t, crew.implCalls, 2)
	assert.Contains(t, crew.implCalls[1].SandboxFeedback, "assertion error")
}

type fakeSandbox struct {
	result *sandbox.Result
}

func (f *fakeSandbox) Run(ctx context.Context, spec *sandbox.Spec) (*sandbox.Result, error) {
	return f.result, nil
}
