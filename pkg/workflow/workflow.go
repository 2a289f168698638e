// Package workflow executes workflows as DAGs: validation via Kahn's
// algorithm, a continuous-readiness parallel scheduler, per-step retry
// policies, condition branching, approval gates with a background
// sweeper, and skip propagation on failure. Persistence and agent
// invocation come in through interfaces implemented in pkg/services.
package workflow

import (
	"time"
)

// StepType classifies workflow steps.
type StepType string

// Step types.
const (
	StepTypeTask      StepType = "task"
	StepTypeAgent     StepType = "agent"
	StepTypeApproval  StepType = "approval"
	StepTypeCondition StepType = "condition"
	StepTypeParallel  StepType = "parallel"
)

// StepStatus is a step execution's state.
type StepStatus string

// Step execution statuses.
const (
	StepPending         StepStatus = "pending"
	StepRunning         StepStatus = "running"
	StepWaitingApproval StepStatus = "waiting_approval"
	StepCompleted       StepStatus = "completed"
	StepFailed          StepStatus = "failed"
	StepSkipped         StepStatus = "skipped"
	StepCancelled       StepStatus = "cancelled"
)

// TerminalStep reports whether the status ends the step.
func TerminalStep(s StepStatus) bool {
	switch s {
	case StepCompleted, StepFailed, StepSkipped, StepCancelled:
		return true
	}
	return false
}

// ExecutionStatus is a workflow execution's state.
type ExecutionStatus string

// Execution statuses.
const (
	ExecutionRunning   ExecutionStatus = "running"
	ExecutionCompleted ExecutionStatus = "completed"
	ExecutionFailed    ExecutionStatus = "failed"
	ExecutionCancelled ExecutionStatus = "cancelled"
)

// OnFailure selects what a step's unrecovered failure does to the rest of
// the execution.
type OnFailure string

// Failure policies.
const (
	// OnFailureAbort skips everything still pending and fails the
	// execution. The default.
	OnFailureAbort OnFailure = "abort"

	// OnFailureContinue skips only the failed step's transitive
	// dependents; independent branches keep running.
	OnFailureContinue OnFailure = "continue"
)

// RetryPolicy bounds a step's attempts. Attempts count only against
// non-fatal failures; an error whose kind appears in FatalErrors fails
// the step immediately.
type RetryPolicy struct {
	MaxAttempts int           `json:"max_attempts"`
	BackoffBase time.Duration `json:"backoff_base_ms"`
	FatalErrors []string      `json:"fatal_errors,omitempty"`
}

// ApprovalConfig configures an approval step.
type ApprovalConfig struct {
	AutoApproveAfter  time.Duration `json:"auto_approve_after_s,omitempty"`
	ExpiresAfter      time.Duration `json:"expires_after_s"`
	RequiredApprovers []string      `json:"required_approvers,omitempty"`

	// MaxRevisions bounds the request_changes loop.
	MaxRevisions int `json:"max_revisions,omitempty"`
}

// ConditionConfig configures a condition step. The expression evaluates
// against the execution context; the boolean result selects TrueSteps or
// FalseSteps, the other branch is skipped.
type ConditionConfig struct {
	Expression string   `json:"expression"`
	TrueSteps  []string `json:"true_steps,omitempty"`
	FalseSteps []string `json:"false_steps,omitempty"`
}

// StepDef is one workflow step definition.
type StepDef struct {
	ID        string
	Name      string
	Type      StepType
	StepOrder int

	// DependsOn lists step names this step waits for.
	DependsOn []string

	// SkipPropagates controls whether this step being skipped also skips
	// its dependents. Defaults to true.
	SkipPropagates *bool

	OnFailure OnFailure
	Retry     RetryPolicy
	Approval  *ApprovalConfig
	Condition *ConditionConfig

	// Children names the steps grouped under a parallel step. They become
	// ready together when the group starts; the group completes when all
	// of them are terminal.
	Children []string

	Config map[string]any
}

// propagatesSkip resolves the SkipPropagates default.
func (s *StepDef) propagatesSkip() bool {
	return s.SkipPropagates == nil || *s.SkipPropagates
}

// Workflow is the engine's view of a workflow definition.
type Workflow struct {
	ID          string
	WorkspaceID string
	ProjectID   string
	Name        string
	Steps       []*StepDef
}

// Execution identifies one run of a workflow.
type Execution struct {
	ID          string
	WorkflowID  string
	WorkspaceID string
	Number      int
	StartedAt   time.Time
}

// Decision is a resolved approval outcome.
type Decision string

// Approval decisions.
const (
	DecisionApproved       Decision = "approved"
	DecisionRejected       Decision = "rejected"
	DecisionRequestChanges Decision = "request_changes"
	DecisionTimeout        Decision = "timeout"
	DecisionCancelled      Decision = "cancelled"
)

// ApprovalResult is what an awaited approval resolved to.
type ApprovalResult struct {
	Decision Decision
	Approver string
	Feedback string
}
