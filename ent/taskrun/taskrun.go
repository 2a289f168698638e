// Code generated by ent, DO NOT EDIT.

package taskrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the taskrun type in the database.
	Label = "task_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldRunNumber holds the string denoting the run_number field in the database.
	FieldRunNumber = "run_number"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldPlan holds the string denoting the plan field in the database.
	FieldPlan = "plan"
	// FieldResults holds the string denoting the results field in the database.
	FieldResults = "results"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldErrorKind holds the string denoting the error_kind field in the database.
	FieldErrorKind = "error_kind"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldRoundCount holds the string denoting the round_count field in the database.
	FieldRoundCount = "round_count"
	// FieldBranchName holds the string denoting the branch_name field in the database.
	FieldBranchName = "branch_name"
	// FieldCommitSha holds the string denoting the commit_sha field in the database.
	FieldCommitSha = "commit_sha"
	// FieldPrURL holds the string denoting the pr_url field in the database.
	FieldPrURL = "pr_url"
	// FieldGitStatus holds the string denoting the git_status field in the database.
	FieldGitStatus = "git_status"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// EdgeSandboxExecutions holds the string denoting the sandbox_executions edge name in mutations.
	EdgeSandboxExecutions = "sandbox_executions"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// SandboxExecutionFieldID holds the string denoting the ID field of the SandboxExecution.
	SandboxExecutionFieldID = "sandbox_execution_id"
	// Table holds the table name of the taskrun in the database.
	Table = "task_runs"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "task_runs"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
	// SandboxExecutionsTable is the table that holds the sandbox_executions relation/edge.
	SandboxExecutionsTable = "sandbox_executions"
	// SandboxExecutionsInverseTable is the table name for the SandboxExecution entity.
	// It exists in this package in order to avoid circular dependency with the "sandboxexecution" package.
	SandboxExecutionsInverseTable = "sandbox_executions"
	// SandboxExecutionsColumn is the table column denoting the sandbox_executions relation/edge.
	SandboxExecutionsColumn = "run_id"
)

// Columns holds all SQL columns for taskrun fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldWorkspaceID,
	FieldProjectID,
	FieldRunNumber,
	FieldStatus,
	FieldPhase,
	FieldPlan,
	FieldResults,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDurationMs,
	FieldErrorKind,
	FieldErrorMessage,
	FieldRoundCount,
	FieldBranchName,
	FieldCommitSha,
	FieldPrURL,
	FieldGitStatus,
	FieldPodID,
	FieldLastHeartbeatAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRoundCount holds the default value on creation for the "round_count" field.
	DefaultRoundCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
	StatusTimeout   Status = "timeout"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed, StatusCancelled, StatusTimeout:
		return nil
	default:
		return fmt.Errorf("taskrun: invalid enum value for status field: %q", s)
	}
}

// Phase defines the type for the "phase" enum field.
type Phase string

// PhaseCreated is the default value of the Phase enum.
const DefaultPhase = PhaseCreated

// Phase values.
const (
	PhaseCreated          Phase = "created"
	PhaseAnalyzing        Phase = "analyzing"
	PhasePlanning         Phase = "planning"
	PhaseAwaitingApproval Phase = "awaiting_approval"
	PhaseExecuting        Phase = "executing"
	PhaseReviewing        Phase = "reviewing"
	PhaseRevising         Phase = "revising"
	PhaseCompleting       Phase = "completing"
	PhaseDone             Phase = "done"
)

func (ph Phase) String() string {
	return string(ph)
}

// PhaseValidator is a validator for the "phase" field enum values. It is called by the builders before save.
func PhaseValidator(ph Phase) error {
	switch ph {
	case PhaseCreated, PhaseAnalyzing, PhasePlanning, PhaseAwaitingApproval, PhaseExecuting, PhaseReviewing, PhaseRevising, PhaseCompleting, PhaseDone:
		return nil
	default:
		return fmt.Errorf("taskrun: invalid enum value for phase field: %q", ph)
	}
}

// GitStatus defines the type for the "git_status" enum field.
type GitStatus string

// GitStatusPending is the default value of the GitStatus enum.
const DefaultGitStatus = GitStatusPending

// GitStatus values.
const (
	GitStatusPending       GitStatus = "pending"
	GitStatusBranchCreated GitStatus = "branch_created"
	GitStatusCommitted     GitStatus = "committed"
	GitStatusPushed        GitStatus = "pushed"
	GitStatusPrOpened      GitStatus = "pr_opened"
	GitStatusFailed        GitStatus = "failed"
)

func (gs GitStatus) String() string {
	return string(gs)
}

// GitStatusValidator is a validator for the "git_status" field enum values. It is called by the builders before save.
func GitStatusValidator(gs GitStatus) error {
	switch gs {
	case GitStatusPending, GitStatusBranchCreated, GitStatusCommitted, GitStatusPushed, GitStatusPrOpened, GitStatusFailed:
		return nil
	default:
		return fmt.Errorf("taskrun: invalid enum value for git_status field: %q", gs)
	}
}

// OrderOption defines the ordering options for the TaskRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByRunNumber orders the results by the run_number field.
func ByRunNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunNumber, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByErrorKind orders the results by the error_kind field.
func ByErrorKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorKind, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByRoundCount orders the results by the round_count field.
func ByRoundCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundCount, opts...).ToFunc()
}

// ByBranchName orders the results by the branch_name field.
func ByBranchName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchName, opts...).ToFunc()
}

// ByCommitSha orders the results by the commit_sha field.
func ByCommitSha(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommitSha, opts...).ToFunc()
}

// ByPrURL orders the results by the pr_url field.
func ByPrURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrURL, opts...).ToFunc()
}

// ByGitStatus orders the results by the git_status field.
func ByGitStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGitStatus, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}

// BySandboxExecutionsCount orders the results by sandbox_executions count.
func BySandboxExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSandboxExecutionsStep(), opts...)
	}
}

// BySandboxExecutions orders the results by sandbox_executions terms.
func BySandboxExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSandboxExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}
func newSandboxExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SandboxExecutionsInverseTable, SandboxExecutionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SandboxExecutionsTable, SandboxExecutionsColumn),
	)
}
