// Code generated by ent, DO NOT EDIT.

package agentcontextversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentcontextversion type in the database.
	Label = "agent_context_version"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "context_version_id"
	// FieldContextID holds the string denoting the context_id field in the database.
	FieldContextID = "context_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldWrittenBy holds the string denoting the written_by field in the database.
	FieldWrittenBy = "written_by"
	// FieldRolledBackFrom holds the string denoting the rolled_back_from field in the database.
	FieldRolledBackFrom = "rolled_back_from"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeContext holds the string denoting the context edge name in mutations.
	EdgeContext = "context"
	// AgentContextFieldID holds the string denoting the ID field of the AgentContext.
	AgentContextFieldID = "context_id"
	// Table holds the table name of the agentcontextversion in the database.
	Table = "agent_context_versions"
	// ContextTable is the table that holds the context relation/edge.
	ContextTable = "agent_context_versions"
	// ContextInverseTable is the table name for the AgentContext entity.
	// It exists in this package in order to avoid circular dependency with the "agentcontext" package.
	ContextInverseTable = "agent_contexts"
	// ContextColumn is the table column denoting the context relation/edge.
	ContextColumn = "context_id"
)

// Columns holds all SQL columns for agentcontextversion fields.
var Columns = []string{
	FieldID,
	FieldContextID,
	FieldVersion,
	FieldData,
	FieldWrittenBy,
	FieldRolledBackFrom,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the AgentContextVersion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContextID orders the results by the context_id field.
func ByContextID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByWrittenBy orders the results by the written_by field.
func ByWrittenBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWrittenBy, opts...).ToFunc()
}

// ByRolledBackFrom orders the results by the rolled_back_from field.
func ByRolledBackFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRolledBackFrom, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByContextField orders the results by context field.
func ByContextField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContextStep(), sql.OrderByField(field, opts...))
	}
}
func newContextStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContextInverseTable, AgentContextFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ContextTable, ContextColumn),
	)
}
