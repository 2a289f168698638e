// Code generated by ent, DO NOT EDIT.

package stepapproval

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the stepapproval type in the database.
	Label = "step_approval"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "approval_id"
	// FieldStepExecutionID holds the string denoting the step_execution_id field in the database.
	FieldStepExecutionID = "step_execution_id"
	// FieldExecutionID holds the string denoting the execution_id field in the database.
	FieldExecutionID = "execution_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldApprovalData holds the string denoting the approval_data field in the database.
	FieldApprovalData = "approval_data"
	// FieldApprover holds the string denoting the approver field in the database.
	FieldApprover = "approver"
	// FieldFeedback holds the string denoting the feedback field in the database.
	FieldFeedback = "feedback"
	// FieldResponseData holds the string denoting the response_data field in the database.
	FieldResponseData = "response_data"
	// FieldRequestedAt holds the string denoting the requested_at field in the database.
	FieldRequestedAt = "requested_at"
	// FieldRespondedAt holds the string denoting the responded_at field in the database.
	FieldRespondedAt = "responded_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldAutoApproveAfterSeconds holds the string denoting the auto_approve_after_seconds field in the database.
	FieldAutoApproveAfterSeconds = "auto_approve_after_seconds"
	// FieldRequiredApprovers holds the string denoting the required_approvers field in the database.
	FieldRequiredApprovers = "required_approvers"
	// FieldRevisionCount holds the string denoting the revision_count field in the database.
	FieldRevisionCount = "revision_count"
	// FieldParentApprovalID holds the string denoting the parent_approval_id field in the database.
	FieldParentApprovalID = "parent_approval_id"
	// EdgeExecution holds the string denoting the execution edge name in mutations.
	EdgeExecution = "execution"
	// WorkflowExecutionFieldID holds the string denoting the ID field of the WorkflowExecution.
	WorkflowExecutionFieldID = "execution_id"
	// Table holds the table name of the stepapproval in the database.
	Table = "workflow_step_approvals"
	// ExecutionTable is the table that holds the execution relation/edge.
	ExecutionTable = "workflow_step_approvals"
	// ExecutionInverseTable is the table name for the WorkflowExecution entity.
	// It exists in this package in order to avoid circular dependency with the "workflowexecution" package.
	ExecutionInverseTable = "workflow_executions"
	// ExecutionColumn is the table column denoting the execution relation/edge.
	ExecutionColumn = "execution_id"
)

// Columns holds all SQL columns for stepapproval fields.
var Columns = []string{
	FieldID,
	FieldStepExecutionID,
	FieldExecutionID,
	FieldStatus,
	FieldTitle,
	FieldDescription,
	FieldApprovalData,
	FieldApprover,
	FieldFeedback,
	FieldResponseData,
	FieldRequestedAt,
	FieldRespondedAt,
	FieldExpiresAt,
	FieldAutoApproveAfterSeconds,
	FieldRequiredApprovers,
	FieldRevisionCount,
	FieldParentApprovalID,
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
	// DefaultRequestedAt holds the default value on creation for the "requested_at" field.
	DefaultRequestedAt func() time.Time
	// DefaultRevisionCount holds the default value on creation for the "revision_count" field.
	DefaultRevisionCount int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending        Status = "pending"
	StatusApproved       Status = "approved"
	StatusRejected       Status = "rejected"
	StatusRequestChanges Status = "request_changes"
	StatusCancelled      Status = "cancelled"
	StatusTimeout        Status = "timeout"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusRequestChanges, StatusCancelled, StatusTimeout:
		return nil
	default:
		return fmt.Errorf("stepapproval: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the StepApproval queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStepExecutionID orders the results by the step_execution_id field.
func ByStepExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepExecutionID, opts...).ToFunc()
}

// ByExecutionID orders the results by the execution_id field.
func ByExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByApprover orders the results by the approver field.
func ByApprover(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprover, opts...).ToFunc()
}

// ByFeedback orders the results by the feedback field.
func ByFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedback, opts...).ToFunc()
}

// ByRequestedAt orders the results by the requested_at field.
func ByRequestedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedAt, opts...).ToFunc()
}

// ByRespondedAt orders the results by the responded_at field.
func ByRespondedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRespondedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByAutoApproveAfterSeconds orders the results by the auto_approve_after_seconds field.
func ByAutoApproveAfterSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoApproveAfterSeconds, opts...).ToFunc()
}

// ByRevisionCount orders the results by the revision_count field.
func ByRevisionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevisionCount, opts...).ToFunc()
}

// ByParentApprovalID orders the results by the parent_approval_id field.
func ByParentApprovalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentApprovalID, opts...).ToFunc()
}

// ByExecutionField orders the results by execution field.
func ByExecutionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionStep(), sql.OrderByField(field, opts...))
	}
}
func newExecutionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionInverseTable, WorkflowExecutionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
	)
}
