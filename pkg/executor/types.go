package executor

import (
	"time"

	"github.com/mgx-dev/mgx/pkg/agent"
	"github.com/mgx-dev/mgx/pkg/models"
	"github.com/mgx-dev/mgx/pkg/sandbox"
)

// TaskInfo is the executor's read view of a task. RepoURL empty means no
// git lifecycle for the run.
type TaskInfo struct {
	ID          string
	WorkspaceID string
	ProjectID   string
	Name        string
	Description string
	RepoURL     string
	BaseBranch  string
	Config      *models.TaskConfig
}

// Run is the mutable run record the executor drives.
type Run struct {
	ID         string
	TaskID     string
	Number     int
	Phase      Phase
	Status     Status
	RoundCount int
	BranchName string
	PRURL      string
	StartedAt  time.Time
}

// Analysis is the analyze phase's output.
type Analysis struct {
	Complexity   models.Complexity `json:"complexity"`
	Files        []string          `json:"files"`
	TestStrategy string            `json:"test_strategy"`
}

// PlanStep is one step of the produced plan.
type PlanStep struct {
	Role        agent.Role `json:"role"`
	Description string     `json:"description"`
}

// Plan is the plan phase's output.
type Plan struct {
	Steps     []PlanStep `json:"steps"`
	MaxRounds int        `json:"max_rounds"`
}

// PlanDecision is the human (or auto-approve) response to a pending plan.
type PlanDecision struct {
	Approved bool
	Reason   string
}

// RoundInput feeds one engineer/tester round. Feedback fields are empty
// on the first round and carry reviewer notes plus sandbox output on
// revision rounds.
type RoundInput struct {
	Round           int
	Plan            *Plan
	Analysis        *Analysis
	ReviewFeedback  string
	SandboxFeedback string
}

// RoundReview feeds the reviewer: what the round produced and how the
// tests fared.
type RoundReview struct {
	Round         int
	Manifest      string
	Tests         string
	SandboxResult *sandbox.Result
}

// RunResult is RunTask's return value.
type RunResult struct {
	RunID       string
	RunNumber   int
	FinalStatus Status
}
