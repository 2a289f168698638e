// Code generated by ent, DO NOT EDIT.

package workflowstep

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workflowstep type in the database.
	Label = "workflow_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "step_id"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStepType holds the string denoting the step_type field in the database.
	FieldStepType = "step_type"
	// FieldStepOrder holds the string denoting the step_order field in the database.
	FieldStepOrder = "step_order"
	// FieldDependsOnSteps holds the string denoting the depends_on_steps field in the database.
	FieldDependsOnSteps = "depends_on_steps"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldRetryPolicy holds the string denoting the retry_policy field in the database.
	FieldRetryPolicy = "retry_policy"
	// EdgeWorkflow holds the string denoting the workflow edge name in mutations.
	EdgeWorkflow = "workflow"
	// WorkflowFieldID holds the string denoting the ID field of the Workflow.
	WorkflowFieldID = "workflow_id"
	// Table holds the table name of the workflowstep in the database.
	Table = "workflow_steps"
	// WorkflowTable is the table that holds the workflow relation/edge.
	WorkflowTable = "workflow_steps"
	// WorkflowInverseTable is the table name for the Workflow entity.
	// It exists in this package in order to avoid circular dependency with the "workflow" package.
	WorkflowInverseTable = "workflows"
	// WorkflowColumn is the table column denoting the workflow relation/edge.
	WorkflowColumn = "workflow_id"
)

// Columns holds all SQL columns for workflowstep fields.
var Columns = []string{
	FieldID,
	FieldWorkflowID,
	FieldName,
	FieldStepType,
	FieldStepOrder,
	FieldDependsOnSteps,
	FieldConfig,
	FieldRetryPolicy,
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

// StepType defines the type for the "step_type" enum field.
type StepType string

// StepType values.
const (
	StepTypeTask       StepType = "task"
	StepTypeCondition  StepType = "condition"
	StepTypeParallel   StepType = "parallel"
	StepTypeSequential StepType = "sequential"
	StepTypeAgent      StepType = "agent"
	StepTypeApproval   StepType = "approval"
)

func (st StepType) String() string {
	return string(st)
}

// StepTypeValidator is a validator for the "step_type" field enum values. It is called by the builders before save.
func StepTypeValidator(st StepType) error {
	switch st {
	case StepTypeTask, StepTypeCondition, StepTypeParallel, StepTypeSequential, StepTypeAgent, StepTypeApproval:
		return nil
	default:
		return fmt.Errorf("workflowstep: invalid enum value for step_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the WorkflowStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStepType orders the results by the step_type field.
func ByStepType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepType, opts...).ToFunc()
}

// ByStepOrder orders the results by the step_order field.
func ByStepOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepOrder, opts...).ToFunc()
}

// ByWorkflowField orders the results by workflow field.
func ByWorkflowField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkflowStep(), sql.OrderByField(field, opts...))
	}
}
func newWorkflowStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkflowInverseTable, WorkflowFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
	)
}
