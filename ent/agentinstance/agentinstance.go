// Code generated by ent, DO NOT EDIT.

package agentinstance

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentinstance type in the database.
	Label = "agent_instance"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_instance_id"
	// FieldAgentDefinitionID holds the string denoting the agent_definition_id field in the database.
	FieldAgentDefinitionID = "agent_definition_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldActiveSteps holds the string denoting the active_steps field in the database.
	FieldActiveSteps = "active_steps"
	// FieldLastAssignedAt holds the string denoting the last_assigned_at field in the database.
	FieldLastAssignedAt = "last_assigned_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDefinition holds the string denoting the definition edge name in mutations.
	EdgeDefinition = "definition"
	// AgentDefinitionFieldID holds the string denoting the ID field of the AgentDefinition.
	AgentDefinitionFieldID = "agent_definition_id"
	// Table holds the table name of the agentinstance in the database.
	Table = "agent_instances"
	// DefinitionTable is the table that holds the definition relation/edge.
	DefinitionTable = "agent_instances"
	// DefinitionInverseTable is the table name for the AgentDefinition entity.
	// It exists in this package in order to avoid circular dependency with the "agentdefinition" package.
	DefinitionInverseTable = "agent_definitions"
	// DefinitionColumn is the table column denoting the definition relation/edge.
	DefinitionColumn = "agent_definition_id"
)

// Columns holds all SQL columns for agentinstance fields.
var Columns = []string{
	FieldID,
	FieldAgentDefinitionID,
	FieldWorkspaceID,
	FieldStatus,
	FieldActiveSteps,
	FieldLastAssignedAt,
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
	// DefaultActiveSteps holds the default value on creation for the "active_steps" field.
	DefaultActiveSteps int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusAvailable is the default value of the Status enum.
const DefaultStatus = StatusAvailable

// Status values.
const (
	StatusAvailable Status = "available"
	StatusBusy      Status = "busy"
	StatusOffline   Status = "offline"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusAvailable, StatusBusy, StatusOffline:
		return nil
	default:
		return fmt.Errorf("agentinstance: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AgentInstance queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentDefinitionID orders the results by the agent_definition_id field.
func ByAgentDefinitionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentDefinitionID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByActiveSteps orders the results by the active_steps field.
func ByActiveSteps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveSteps, opts...).ToFunc()
}

// ByLastAssignedAt orders the results by the last_assigned_at field.
func ByLastAssignedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAssignedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDefinitionField orders the results by definition field.
func ByDefinitionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDefinitionStep(), sql.OrderByField(field, opts...))
	}
}
func newDefinitionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DefinitionInverseTable, AgentDefinitionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DefinitionTable, DefinitionColumn),
	)
}
