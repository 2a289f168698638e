package executor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mgx-dev/mgx/pkg/config"
	"github.com/mgx-dev/mgx/pkg/events"
	"github.com/mgx-dev/mgx/pkg/gitops"
	"github.com/mgx-dev/mgx/pkg/llm"
	"github.com/mgx-dev/mgx/pkg/models"
	"github.com/mgx-dev/mgx/pkg/sandbox"
	"github.com/mgx-dev/mgx/pkg/stack"
)

// defaultCommitTemplate is used when the task config leaves the commit
// template empty.
const defaultCommitTemplate = "{task_name} (run {run_number})"

// Executor drives task runs. One instance serves the whole process; each
// run executes on its own goroutine with its own cancellation scope.
type Executor struct {
	cfg     *config.ExecutorConfig
	store   RunStore
	crews   CrewFactory
	git     Git
	sandbox sandbox.Runner
	events  EventSink
	workDir string

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

// New creates an Executor. git may be nil when no git integration is
// configured; sandbox may be nil to skip test execution.
func New(cfg *config.ExecutorConfig, store RunStore, crews CrewFactory, git Git, runner sandbox.Runner, sink EventSink, workDir string) *Executor {
	return &Executor{
		cfg:     cfg,
		store:   store,
		crews:   crews,
		git:     git,
		sandbox: runner,
		events:  sink,
		workDir: workDir,
		cancels: make(map[string]context.CancelFunc),
	}
}

// RunTask executes one run of the task and blocks until it reaches a
// terminal status. The returned error is non-nil only for pre-run
// failures (allocation conflicts); failures inside the run are reported
// through the final status.
func (e *Executor) RunTask(ctx context.Context, task *TaskInfo, input map[string]any) (*RunResult, error) {
	run, err := e.store.AllocateRun(ctx, task.ID, input)
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	e.registerCancel(run.ID, cancel)
	defer e.unregisterCancel(run.ID)
	defer cancel()

	e.emit(task, run, events.EventTaskStarted, map[string]any{
		"run_number": run.Number,
	})

	status := e.executeRun(runCtx, task, run)

	e.emitTerminal(task, run, status)
	return &RunResult{RunID: run.ID, RunNumber: run.Number, FinalStatus: status}, nil
}

// CancelRun requests cancellation of an in-flight run. Idempotent: an
// unknown or already-finished run is a no-op.
func (e *Executor) CancelRun(runID string) {
	e.mu.Lock()
	cancel := e.cancels[runID]
	e.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (e *Executor) registerCancel(runID string, cancel context.CancelFunc) {
	e.mu.Lock()
	e.cancels[runID] = cancel
	e.mu.Unlock()
}

func (e *Executor) unregisterCancel(runID string) {
	e.mu.Lock()
	delete(e.cancels, runID)
	e.mu.Unlock()
}

// executeRun walks the phase machine to a terminal status. Failures after
// this point never propagate as errors; they become the final status.
func (e *Executor) executeRun(ctx context.Context, task *TaskInfo, run *Run) Status {
	budget := llm.NewBudgetTracker(e.cfg.BudgetBase, task.Config.BudgetMultiplier, models.ComplexityM)
	crew := e.crews.ForRun(task, run, budget)

	// Analyze.
	if st := e.transition(ctx, task, run, PhaseAnalyzing); st != "" {
		return e.finish(task, run, st, nil)
	}
	analysis, err := e.analyze(ctx, crew, task, run)
	if err != nil {
		return e.finish(task, run, statusForError(err), err)
	}
	budget.Retune(analysis.Complexity)

	// Plan.
	if st := e.transition(ctx, task, run, PhasePlanning); st != "" {
		return e.finish(task, run, st, nil)
	}
	plan, err := e.plan(ctx, crew, task, run, analysis)
	if err != nil {
		return e.finish(task, run, statusForError(err), err)
	}

	// Approval gate.
	if st := e.transition(ctx, task, run, PhaseAwaitingApproval); st != "" {
		return e.finish(task, run, st, nil)
	}
	decision, err := e.awaitApproval(ctx, task, run, plan)
	if err != nil {
		return e.finish(task, run, statusForError(err), err)
	}
	if !decision.Approved {
		return e.finish(task, run, StatusPlanRejected,
			models.NewFailure(models.ErrKindInvalidInput, "plan rejected: %s", decision.Reason))
	}

	// Git setup. Failures disable the git lifecycle but never fail the run.
	workspace := e.setupWorkspace(ctx, task, run)
	defer workspace.cleanup(e)

	// Execute / review / revise.
	outcome, failure := e.executeRounds(ctx, crew, task, run, analysis, plan, workspace)
	if failure != nil {
		if st := statusForError(failure); st == StatusCancelled || st == StatusTimeout {
			workspace.rollback(ctx, e)
			return e.finish(task, run, st, failure)
		}
		return e.finish(task, run, StatusFailed, failure)
	}

	// Finalize.
	if st := e.transition(ctx, task, run, PhaseCompleting); st != "" {
		return e.finish(task, run, st, nil)
	}
	if outcome.Approved() {
		e.finalizeGit(ctx, task, run, workspace)
		return e.finish(task, run, StatusCompleted, nil)
	}
	return e.finish(task, run, StatusFailed, models.NewFailure(models.ErrKindInternal,
		"revision budget exhausted with changes still required: %s", outcome.Notes))
}

func (e *Executor) analyze(ctx context.Context, crew Crew, task *TaskInfo, run *Run) (*Analysis, error) {
	phaseCtx, cancel := context.WithTimeout(ctx, e.cfg.AnalyzeTimeout)
	defer cancel()

	analysis, err := crew.Analyze(phaseCtx, task, nil)
	if err != nil {
		return nil, err
	}
	if !analysis.Complexity.Valid() {
		analysis.Complexity = models.ComplexityM
	}
	if err := e.store.SetComplexity(ctx, run.ID, analysis.Complexity); err != nil {
		return nil, err
	}
	return analysis, nil
}

func (e *Executor) plan(ctx context.Context, crew Crew, task *TaskInfo, run *Run, analysis *Analysis) (*Plan, error) {
	phaseCtx, cancel := context.WithTimeout(ctx, e.cfg.PlanTimeout)
	defer cancel()

	plan, err := crew.Plan(phaseCtx, task, analysis)
	if err != nil {
		return nil, err
	}
	plan.MaxRounds = analysis.Complexity.RoundBudget()
	if task.Config.MaxRounds > 0 && plan.MaxRounds > task.Config.MaxRounds {
		plan.MaxRounds = task.Config.MaxRounds
	}
	return plan, nil
}

// awaitApproval emits plan_ready and suspends until the plan is resolved,
// unless the task auto-approves.
func (e *Executor) awaitApproval(ctx context.Context, task *TaskInfo, run *Run, plan *Plan) (*PlanDecision, error) {
	if task.Config.AutoApprovePlan {
		return &PlanDecision{Approved: true}, nil
	}
	e.emit(task, run, events.EventPlanReady, map[string]any{
		"steps":      len(plan.Steps),
		"max_rounds": plan.MaxRounds,
	})
	return e.store.AwaitPlanDecision(ctx, run.ID)
}

// runWorkspace is where a run's files land: a git worktree when a repo is
// configured, otherwise a scratch directory.
type runWorkspace struct {
	dir        string
	gitEnabled bool
	branch     string
}

func (w *runWorkspace) cleanup(e *Executor) {
	if w.dir == "" {
		return
	}
	if w.gitEnabled {
		e.git.Cleanup(w.dir)
		return
	}
	if err := os.RemoveAll(w.dir); err != nil {
		slog.Warn("Run workspace cleanup failed", "dir", w.dir, "error", err)
	}
}

func (w *runWorkspace) rollback(ctx context.Context, e *Executor) {
	if !w.gitEnabled {
		return
	}
	if err := e.git.Rollback(ctx, w.dir); err != nil {
		slog.Warn("Worktree rollback failed", "dir", w.dir, "error", err)
	}
}

// setupWorkspace prepares the run's working directory and, when a repo is
// configured, the branch. Git failures emit git_operation_failed and fall
// back to a scratch directory.
func (e *Executor) setupWorkspace(ctx context.Context, task *TaskInfo, run *Run) *runWorkspace {
	if task.RepoURL == "" || e.git == nil {
		return e.scratchWorkspace(run)
	}

	prefix := task.Config.BranchPrefix
	if prefix == "" {
		prefix = "mgx"
	}
	branch := gitops.BranchName(prefix, task.Name, run.Number)

	dir, err := e.git.PrepareWorktree(ctx, task.RepoURL, task.BaseBranch, branch)
	if err != nil {
		e.emit(task, run, events.EventGitOperationFailed, map[string]any{
			"operation": "prepare_worktree",
			"error":     err.Error(),
		})
		return e.scratchWorkspace(run)
	}

	if err := e.store.SetBranch(ctx, run.ID, branch); err != nil {
		slog.Warn("Failed to record branch name", "run_id", run.ID, "error", err)
	}
	if err := e.store.SetGitStatus(ctx, run.ID, "branch_created"); err != nil {
		slog.Warn("Failed to record git status", "run_id", run.ID, "error", err)
	}
	run.BranchName = branch
	e.emit(task, run, events.EventGitBranchCreated, map[string]any{
		"branch": branch,
	})
	return &runWorkspace{dir: dir, gitEnabled: true, branch: branch}
}

func (e *Executor) scratchWorkspace(run *Run) *runWorkspace {
	dir, err := os.MkdirTemp(e.workDir, "run-*")
	if err != nil {
		slog.Error("Failed to create scratch workspace", "run_id", run.ID, "error", err)
		return &runWorkspace{}
	}
	return &runWorkspace{dir: dir}
}

// executeRounds runs the engineer/tester/reviewer loop until the reviewer
// approves, the revision budget is spent, or a fatal error occurs.
func (e *Executor) executeRounds(ctx context.Context, crew Crew, task *TaskInfo, run *Run, analysis *Analysis, plan *Plan, workspace *runWorkspace) (*models.ReviewOutcome, error) {
	stackSpec := e.lookupStack(task)
	constraints, advisory := stack.ParseConstraints(stackSpec, task.Config.Constraints)

	roundTimeout := time.Duration(float64(e.cfg.ExecuteTimeoutPerRound) * analysis.Complexity.Factor())

	// The complexity-tuned round budget caps total rounds; revisions may
	// not exceed it even when max_revision_rounds allows more.
	maxRevisions := task.Config.MaxRevisionRounds
	if plan.MaxRounds > 0 && maxRevisions > plan.MaxRounds-1 {
		maxRevisions = plan.MaxRounds - 1
	}

	var outcome *models.ReviewOutcome
	var prevHash string
	round := &RoundInput{Round: 1, Plan: plan, Analysis: analysis}

	for {
		if st := e.transition(ctx, task, run, PhaseExecuting); st != "" {
			return nil, interruption(ctx, st)
		}

		roundCtx, cancel := context.WithTimeout(ctx, roundTimeout)
		result, err := e.executeOneRound(roundCtx, crew, task, run, round, workspace, stackSpec, constraints)
		cancel()
		if err != nil {
			return nil, err
		}

		if st := e.transition(ctx, task, run, PhaseReviewing); st != "" {
			return nil, interruption(ctx, st)
		}

		if result.guardrailNotes != "" {
			// Blocked before writing; the violations themselves are the
			// review. No reviewer call spent.
			outcome = &models.ReviewOutcome{
				Verdict: models.VerdictChangesRequired,
				Notes:   result.guardrailNotes,
			}
		} else {
			review := &RoundReview{
				Round:         round.Round,
				Manifest:      result.manifest,
				Tests:         result.tests,
				SandboxResult: result.sandboxResult,
			}
			outcome, err = crew.Review(ctx, task, review)
			if err != nil {
				return nil, err
			}
			if len(advisory) > 0 && outcome.Notes != "" {
				outcome.Notes += "\nConstraints: " + strings.Join(advisory, "; ")
			}
		}

		run.RoundCount = round.Round
		if err := e.store.SetRoundCount(ctx, run.ID, run.RoundCount); err != nil {
			slog.Warn("Failed to record round count", "run_id", run.ID, "error", err)
		}

		currHash := ReviewHash(outcome)
		completedRevisions := round.Round - 1
		if !ShouldRevise(outcome, completedRevisions, maxRevisions, prevHash, currHash) {
			return outcome, nil
		}
		prevHash = currHash

		if st := e.transition(ctx, task, run, PhaseRevising); st != "" {
			return nil, interruption(ctx, st)
		}
		round = &RoundInput{
			Round:           round.Round + 1,
			Plan:            plan,
			Analysis:        analysis,
			ReviewFeedback:  outcome.Notes,
			SandboxFeedback: sandboxFeedback(result.sandboxResult),
		}
	}
}

// roundResult is one round's raw output before review.
type roundResult struct {
	manifest       string
	tests          string
	guardrailNotes string
	sandboxResult  *sandbox.Result
}

func (e *Executor) executeOneRound(ctx context.Context, crew Crew, task *TaskInfo, run *Run, round *RoundInput, workspace *runWorkspace, stackSpec *stack.Spec, constraints []stack.KeywordConstraint) (*roundResult, error) {
	manifestText, err := crew.Implement(ctx, task, round)
	if err != nil {
		return nil, err
	}
	if notes := e.materialize(task, workspace, manifestText, stackSpec, constraints); notes != "" {
		return &roundResult{manifest: manifestText, guardrailNotes: notes}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, models.WrapFailure(models.KindOf(err), err, "round interrupted")
	}

	testsText, err := crew.WriteTests(ctx, task, round)
	if err != nil {
		return nil, err
	}
	// Tester output skips stack-structure checks; path guardrails still apply.
	if notes := e.materialize(task, workspace, testsText, nil, nil); notes != "" {
		return &roundResult{manifest: manifestText, tests: testsText, guardrailNotes: notes}, nil
	}

	result := e.runSandbox(ctx, task, run, workspace, stackSpec)
	return &roundResult{manifest: manifestText, tests: testsText, sandboxResult: result}, nil
}

// materialize parses and writes a FILE manifest (or applies a unified
// diff in patch mode). A non-empty return is revision feedback; files are
// untouched on any blocking violation.
func (e *Executor) materialize(task *TaskInfo, workspace *runWorkspace, text string, stackSpec *stack.Spec, constraints []stack.KeywordConstraint) string {
	if workspace.dir == "" {
		return ""
	}

	if task.Config.OutputMode == models.OutputModePatchExisting {
		diffs, err := stack.ParseUnifiedDiff(text)
		if err != nil {
			return fmt.Sprintf("output is not a valid unified diff: %v", err)
		}
		report, err := stack.NewPatcher(workspace.dir).Apply(diffs, stack.ApplyAllOrNothing)
		if err != nil {
			var b strings.Builder
			fmt.Fprintf(&b, "diff did not apply cleanly: %v", err)
			for _, f := range report.Failed {
				fmt.Fprintf(&b, "\n  %s: %v", f.Path, f.Err)
			}
			return b.String()
		}
		return ""
	}

	files, err := stack.ParseManifest(text)
	if err != nil {
		return fmt.Sprintf("output is not a valid FILE manifest: %v", err)
	}
	violations, err := stack.CheckManifest(stackSpec, files, constraints)
	if err != nil {
		var b strings.Builder
		b.WriteString("guardrail violations:")
		for _, v := range violations {
			if v.Blocking {
				fmt.Fprintf(&b, "\n  [%s] %s: %s", v.Rule, v.Path, v.Message)
			}
		}
		return b.String()
	}
	if err := stack.WriteManifest(workspace.dir, files); err != nil {
		return fmt.Sprintf("failed to write files: %v", err)
	}
	return ""
}

// runSandbox executes the round's tests. Never fatal: infrastructure
// errors and failed results alike become revision feedback.
func (e *Executor) runSandbox(ctx context.Context, task *TaskInfo, run *Run, workspace *runWorkspace, stackSpec *stack.Spec) *sandbox.Result {
	if e.sandbox == nil || workspace.dir == "" || stackSpec == nil {
		return nil
	}

	spec := &sandbox.Spec{
		ExecutionID: run.ID,
		WorkspaceID: task.WorkspaceID,
		ProjectID:   task.ProjectID,
		Language:    stackSpec.Language,
		CodeDir:     workspace.dir,
	}
	switch stackSpec.Language {
	case "typescript":
		spec.Language = "node"
	case "dockerfile":
		return nil
	}

	result, err := e.sandbox.Run(ctx, spec)
	if err != nil {
		slog.Warn("Sandbox execution failed", "run_id", run.ID, "error", err)
		return &sandbox.Result{
			Status:       sandbox.StatusFailed,
			ErrorType:    sandbox.ErrorTypeInfra,
			ErrorMessage: err.Error(),
		}
	}
	return result
}

// sandboxFeedback condenses a sandbox result into revision input.
func sandboxFeedback(result *sandbox.Result) string {
	if result == nil || result.Status == sandbox.StatusCompleted {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "test run %s (exit %d)", result.Status, result.ExitCode)
	if result.ErrorMessage != "" {
		fmt.Fprintf(&b, ": %s", result.ErrorMessage)
	}
	if result.Stderr != "" {
		fmt.Fprintf(&b, "\nstderr:\n%s", tail(result.Stderr, 4000))
	}
	if result.Stdout != "" {
		fmt.Fprintf(&b, "\nstdout:\n%s", tail(result.Stdout, 4000))
	}
	return b.String()
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}

// finalizeGit stages, commits, pushes, and opens the draft PR. Every step
// is best-effort; git_status advances only past successful steps.
func (e *Executor) finalizeGit(ctx context.Context, task *TaskInfo, run *Run, workspace *runWorkspace) {
	if !workspace.gitEnabled {
		return
	}

	template := task.Config.CommitTemplate
	if template == "" {
		template = defaultCommitTemplate
	}
	message := gitops.CommitMessage(template, task.Name, run.Number)

	sha, err := e.git.StageAndCommit(ctx, workspace.dir, message)
	if err != nil {
		e.emit(task, run, events.EventGitOperationFailed, map[string]any{
			"operation": "commit", "error": err.Error(),
		})
		return
	}
	if sha == "" {
		slog.Info("No changes to commit", "run_id", run.ID)
		return
	}
	e.setGitStatus(ctx, run, "committed")
	e.emit(task, run, events.EventGitCommitCreated, map[string]any{
		"commit_sha": sha, "branch": workspace.branch,
	})

	if err := e.git.Push(ctx, workspace.dir, workspace.branch); err != nil {
		e.setGitStatus(ctx, run, "push_failed")
		e.emit(task, run, events.EventGitPushFailed, map[string]any{
			"branch": workspace.branch, "error": err.Error(),
		})
		return
	}
	e.setGitStatus(ctx, run, "pushed")
	e.emit(task, run, events.EventGitPushSuccess, map[string]any{
		"branch": workspace.branch,
	})

	prURL, err := e.git.OpenPullRequest(ctx, workspace.dir, &gitops.PullRequestSpec{
		Repo:   task.RepoURL,
		Branch: workspace.branch,
		Base:   task.BaseBranch,
		Title:  gitops.PullRequestTitle(task.Name, run.Number),
		Body:   fmt.Sprintf("Automated changes for task %q, run %d.", task.Name, run.Number),
	})
	if err != nil {
		e.emit(task, run, events.EventGitOperationFailed, map[string]any{
			"operation": "open_pr", "error": err.Error(),
		})
		return
	}
	run.PRURL = prURL
	e.setGitStatus(ctx, run, "pr_opened")
	if err := e.store.SetPRURL(ctx, run.ID, prURL); err != nil {
		slog.Warn("Failed to record PR URL", "run_id", run.ID, "error", err)
	}
	e.emit(task, run, events.EventPullRequestOpened, map[string]any{
		"pr_url": prURL, "branch": workspace.branch,
	})
}

func (e *Executor) setGitStatus(ctx context.Context, run *Run, status string) {
	if err := e.store.SetGitStatus(ctx, run.ID, status); err != nil {
		slog.Warn("Failed to record git status", "run_id", run.ID, "status", status, "error", err)
	}
}

func (e *Executor) lookupStack(task *TaskInfo) *stack.Spec {
	if task.Config.TargetStack == "" {
		return nil
	}
	spec, err := stack.Lookup(task.Config.TargetStack)
	if err != nil {
		slog.Warn("Unknown target stack, guardrails reduced to path checks",
			"task_id", task.ID, "stack", task.Config.TargetStack)
		return nil
	}
	return spec
}

// transition applies a phase edge. A non-empty return is the terminal
// status to finish with (cancellation detected at the boundary).
func (e *Executor) transition(ctx context.Context, task *TaskInfo, run *Run, to Phase) Status {
	if err := ctx.Err(); err != nil {
		return statusForError(models.WrapFailure(models.KindOf(err), err, "run interrupted"))
	}
	if err := ValidateTransition(run.Phase, to); err != nil {
		slog.Error("Phase transition rejected", "run_id", run.ID,
			"from", run.Phase, "to", to, "error", err)
		return StatusFailed
	}
	if err := e.store.SetPhase(ctx, run.ID, to); err != nil {
		slog.Error("Failed to persist phase", "run_id", run.ID, "phase", to, "error", err)
		return StatusFailed
	}
	run.Phase = to
	e.emit(task, run, events.EventRunPhase, map[string]any{
		"phase": string(to),
	})
	return ""
}

// finish records the terminal status exactly once and logs the outcome.
func (e *Executor) finish(task *TaskInfo, run *Run, status Status, failure error) Status {
	// Finishing must succeed even when the run's context is gone.
	ctx, cancel := context.WithTimeout(context.Background(), e.cfg.CancelGracePeriod)
	defer cancel()

	if run.Phase != PhaseDone {
		if run.Phase != PhaseCompleting {
			if err := e.store.SetPhase(ctx, run.ID, PhaseCompleting); err != nil {
				slog.Warn("Failed to persist completing phase", "run_id", run.ID, "error", err)
			}
		}
		if err := e.store.SetPhase(ctx, run.ID, PhaseDone); err != nil {
			slog.Warn("Failed to persist done phase", "run_id", run.ID, "error", err)
		}
		run.Phase = PhaseDone
	}

	if err := e.store.Finish(ctx, run.ID, status, failure); err != nil {
		slog.Error("Failed to record run outcome", "run_id", run.ID, "status", status, "error", err)
	}
	run.Status = status

	if failure != nil {
		slog.Info("Run finished", "run_id", run.ID, "status", status,
			"error_kind", models.KindOf(failure), "error", failure)
	} else {
		slog.Info("Run finished", "run_id", run.ID, "status", status)
	}
	return status
}

// emitTerminal publishes exactly one terminal event for the run.
func (e *Executor) emitTerminal(task *TaskInfo, run *Run, status Status) {
	data := map[string]any{
		"run_number": run.Number,
		"status":     string(status),
		"rounds":     run.RoundCount,
	}
	if run.PRURL != "" {
		data["pr_url"] = run.PRURL
	}
	switch status {
	case StatusCompleted:
		e.emit(task, run, events.EventTaskCompleted, data)
	case StatusCancelled:
		e.emit(task, run, events.EventTaskCancelled, data)
	default:
		e.emit(task, run, events.EventTaskFailed, data)
	}
}

func (e *Executor) emit(task *TaskInfo, run *Run, eventType string, data map[string]any) {
	envelope := events.NewEnvelope(eventType, task.WorkspaceID, data)
	envelope.TaskID = task.ID
	envelope.RunID = run.ID
	e.events.Emit(envelope)
}

// interruption converts a failed phase transition into the error the
// round loop reports upward.
func interruption(ctx context.Context, status Status) error {
	if err := ctx.Err(); err != nil {
		return models.WrapFailure(models.KindOf(err), err, "run interrupted")
	}
	return models.NewFailure(models.ErrKindInternal, "run aborted in status %s", status)
}

// statusForError maps an error's kind onto a terminal run status.
func statusForError(err error) Status {
	switch models.KindOf(err) {
	case models.ErrKindCancelled:
		return StatusCancelled
	case models.ErrKindDeadlineExceeded:
		return StatusTimeout
	default:
		return StatusFailed
	}
}
