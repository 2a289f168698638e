// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMaxRounds holds the string denoting the max_rounds field in the database.
	FieldMaxRounds = "max_rounds"
	// FieldMaxRevisionRounds holds the string denoting the max_revision_rounds field in the database.
	FieldMaxRevisionRounds = "max_revision_rounds"
	// FieldBranchPrefix holds the string denoting the branch_prefix field in the database.
	FieldBranchPrefix = "branch_prefix"
	// FieldCommitTemplate holds the string denoting the commit_template field in the database.
	FieldCommitTemplate = "commit_template"
	// FieldTotalRuns holds the string denoting the total_runs field in the database.
	FieldTotalRuns = "total_runs"
	// FieldSuccessfulRuns holds the string denoting the successful_runs field in the database.
	FieldSuccessfulRuns = "successful_runs"
	// FieldFailedRuns holds the string denoting the failed_runs field in the database.
	FieldFailedRuns = "failed_runs"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeRuns holds the string denoting the runs edge name in mutations.
	EdgeRuns = "runs"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// TaskRunFieldID holds the string denoting the ID field of the TaskRun.
	TaskRunFieldID = "run_id"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "tasks"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// RunsTable is the table that holds the runs relation/edge.
	RunsTable = "task_runs"
	// RunsInverseTable is the table name for the TaskRun entity.
	// It exists in this package in order to avoid circular dependency with the "taskrun" package.
	RunsInverseTable = "task_runs"
	// RunsColumn is the table column denoting the runs relation/edge.
	RunsColumn = "task_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldProjectID,
	FieldName,
	FieldDescription,
	FieldConfig,
	FieldStatus,
	FieldMaxRounds,
	FieldMaxRevisionRounds,
	FieldBranchPrefix,
	FieldCommitTemplate,
	FieldTotalRuns,
	FieldSuccessfulRuns,
	FieldFailedRuns,
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
	// DefaultMaxRounds holds the default value on creation for the "max_rounds" field.
	DefaultMaxRounds int
	// DefaultMaxRevisionRounds holds the default value on creation for the "max_revision_rounds" field.
	DefaultMaxRevisionRounds int
	// DefaultTotalRuns holds the default value on creation for the "total_runs" field.
	DefaultTotalRuns int
	// DefaultSuccessfulRuns holds the default value on creation for the "successful_runs" field.
	DefaultSuccessfulRuns int
	// DefaultFailedRuns holds the default value on creation for the "failed_runs" field.
	DefaultFailedRuns int
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
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByMaxRounds orders the results by the max_rounds field.
func ByMaxRounds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRounds, opts...).ToFunc()
}

// ByMaxRevisionRounds orders the results by the max_revision_rounds field.
func ByMaxRevisionRounds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRevisionRounds, opts...).ToFunc()
}

// ByBranchPrefix orders the results by the branch_prefix field.
func ByBranchPrefix(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchPrefix, opts...).ToFunc()
}

// ByCommitTemplate orders the results by the commit_template field.
func ByCommitTemplate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommitTemplate, opts...).ToFunc()
}

// ByTotalRuns orders the results by the total_runs field.
func ByTotalRuns(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalRuns, opts...).ToFunc()
}

// BySuccessfulRuns orders the results by the successful_runs field.
func BySuccessfulRuns(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessfulRuns, opts...).ToFunc()
}

// ByFailedRuns orders the results by the failed_runs field.
func ByFailedRuns(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedRuns, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByRunsCount orders the results by runs count.
func ByRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRunsStep(), opts...)
	}
}

// ByRuns orders the results by runs terms.
func ByRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunsInverseTable, TaskRunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
	)
}
