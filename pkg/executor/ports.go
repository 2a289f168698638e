package executor

import (
	"context"

	"github.com/mgx-dev/mgx/pkg/events"
	"github.com/mgx-dev/mgx/pkg/gitops"
	"github.com/mgx-dev/mgx/pkg/llm"
	"github.com/mgx-dev/mgx/pkg/models"
)

// RunStore is the persistence surface the executor needs. Implemented by
// services.TaskService over ent.
type RunStore interface {
	// AllocateRun creates the run record with the next run_number and
	// marks the task running. Fails with conflict when a run is already
	// active for the task.
	AllocateRun(ctx context.Context, taskID string, input map[string]any) (*Run, error)

	// SetPhase records a phase transition. The store rejects edges the
	// state machine does not allow.
	SetPhase(ctx context.Context, runID string, phase Phase) error

	SetComplexity(ctx context.Context, runID string, complexity models.Complexity) error
	SetBranch(ctx context.Context, runID, branch string) error
	SetGitStatus(ctx context.Context, runID, status string) error
	SetPRURL(ctx context.Context, runID, url string) error
	SetRoundCount(ctx context.Context, runID string, rounds int) error

	// Finish records the terminal status and releases the task. failure
	// may be nil.
	Finish(ctx context.Context, runID string, status Status, failure error) error

	// AwaitPlanDecision blocks until ApprovePlan/RejectPlan resolves the
	// pending plan, honoring ctx cancellation. The wait survives process
	// restart: the pending marker is persisted, not parked in memory.
	AwaitPlanDecision(ctx context.Context, runID string) (*PlanDecision, error)
}

// Crew runs the LLM agent roles. Implementations select instances through
// the assignment policy, thread shared context between roles, and charge
// every completion to the run's budget tracker.
type Crew interface {
	Analyze(ctx context.Context, task *TaskInfo, input map[string]any) (*Analysis, error)
	Plan(ctx context.Context, task *TaskInfo, analysis *Analysis) (*Plan, error)

	// Implement returns the engineer's FILE manifest text for the round.
	Implement(ctx context.Context, task *TaskInfo, round *RoundInput) (string, error)

	// WriteTests returns the tester's FILE manifest text for the round.
	WriteTests(ctx context.Context, task *TaskInfo, round *RoundInput) (string, error)

	Review(ctx context.Context, task *TaskInfo, review *RoundReview) (*models.ReviewOutcome, error)
}

// CrewFactory builds a Crew bound to one run and its budget tracker.
type CrewFactory interface {
	ForRun(task *TaskInfo, run *Run, budget *llm.BudgetTracker) Crew
}

// Git is the slice of the git coordinator the executor calls. All
// failures are non-fatal to the run.
type Git interface {
	PrepareWorktree(ctx context.Context, repoURL, baseBranch, newBranch string) (string, error)
	StageAndCommit(ctx context.Context, path, message string, files ...string) (string, error)
	Push(ctx context.Context, path, branch string) error
	OpenPullRequest(ctx context.Context, path string, spec *gitops.PullRequestSpec) (string, error)
	Rollback(ctx context.Context, path string) error
	Cleanup(path string)
}

// EventSink receives run lifecycle events. *events.Emitter satisfies it.
type EventSink interface {
	Emit(envelope *events.Envelope)
}
