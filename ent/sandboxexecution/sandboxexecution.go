// Code generated by ent, DO NOT EDIT.

package sandboxexecution

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the sandboxexecution type in the database.
	Label = "sandbox_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "sandbox_execution_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldCommand holds the string denoting the command field in the database.
	FieldCommand = "command"
	// FieldCodeLocation holds the string denoting the code_location field in the database.
	FieldCodeLocation = "code_location"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStdout holds the string denoting the stdout field in the database.
	FieldStdout = "stdout"
	// FieldStderr holds the string denoting the stderr field in the database.
	FieldStderr = "stderr"
	// FieldExitCode holds the string denoting the exit_code field in the database.
	FieldExitCode = "exit_code"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldPeakMemoryMB holds the string denoting the peak_memory_mb field in the database.
	FieldPeakMemoryMB = "peak_memory_mb"
	// FieldCPUPercent holds the string denoting the cpu_percent field in the database.
	FieldCPUPercent = "cpu_percent"
	// FieldContainerID holds the string denoting the container_id field in the database.
	FieldContainerID = "container_id"
	// FieldTimeoutSeconds holds the string denoting the timeout_seconds field in the database.
	FieldTimeoutSeconds = "timeout_seconds"
	// FieldMemoryLimitMB holds the string denoting the memory_limit_mb field in the database.
	FieldMemoryLimitMB = "memory_limit_mb"
	// FieldErrorType holds the string denoting the error_type field in the database.
	FieldErrorType = "error_type"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// TaskRunFieldID holds the string denoting the ID field of the TaskRun.
	TaskRunFieldID = "run_id"
	// Table holds the table name of the sandboxexecution in the database.
	Table = "sandbox_executions"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "sandbox_executions"
	// RunInverseTable is the table name for the TaskRun entity.
	// It exists in this package in order to avoid circular dependency with the "taskrun" package.
	RunInverseTable = "task_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for sandboxexecution fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldWorkspaceID,
	FieldProjectID,
	FieldLanguage,
	FieldCommand,
	FieldCodeLocation,
	FieldStatus,
	FieldStdout,
	FieldStderr,
	FieldExitCode,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDurationMs,
	FieldPeakMemoryMB,
	FieldCPUPercent,
	FieldContainerID,
	FieldTimeoutSeconds,
	FieldMemoryLimitMB,
	FieldErrorType,
	FieldErrorMessage,
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
	// DefaultTimeoutSeconds holds the default value on creation for the "timeout_seconds" field.
	DefaultTimeoutSeconds int
	// DefaultMemoryLimitMB holds the default value on creation for the "memory_limit_mb" field.
	DefaultMemoryLimitMB int
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
	StatusTimeout   Status = "timeout"
	StatusKilled    Status = "killed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed, StatusTimeout, StatusKilled:
		return nil
	default:
		return fmt.Errorf("sandboxexecution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the SandboxExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByCommand orders the results by the command field.
func ByCommand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommand, opts...).ToFunc()
}

// ByCodeLocation orders the results by the code_location field.
func ByCodeLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCodeLocation, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStdout orders the results by the stdout field.
func ByStdout(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStdout, opts...).ToFunc()
}

// ByStderr orders the results by the stderr field.
func ByStderr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStderr, opts...).ToFunc()
}

// ByExitCode orders the results by the exit_code field.
func ByExitCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExitCode, opts...).ToFunc()
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

// ByPeakMemoryMB orders the results by the peak_memory_mb field.
func ByPeakMemoryMB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeakMemoryMB, opts...).ToFunc()
}

// ByCPUPercent orders the results by the cpu_percent field.
func ByCPUPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCPUPercent, opts...).ToFunc()
}

// ByContainerID orders the results by the container_id field.
func ByContainerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContainerID, opts...).ToFunc()
}

// ByTimeoutSeconds orders the results by the timeout_seconds field.
func ByTimeoutSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutSeconds, opts...).ToFunc()
}

// ByMemoryLimitMB orders the results by the memory_limit_mb field.
func ByMemoryLimitMB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoryLimitMB, opts...).ToFunc()
}

// ByErrorType orders the results by the error_type field.
func ByErrorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorType, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, TaskRunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
