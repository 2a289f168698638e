// Code generated by ent, DO NOT EDIT.

package agentmemoryentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agentmemoryentry type in the database.
	Label = "agent_memory_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "memory_entry_id"
	// FieldAgentInstanceID holds the string denoting the agent_instance_id field in the database.
	FieldAgentInstanceID = "agent_instance_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldSizeBytes holds the string denoting the size_bytes field in the database.
	FieldSizeBytes = "size_bytes"
	// FieldReceivedFrom holds the string denoting the received_from field in the database.
	FieldReceivedFrom = "received_from"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldAccessedAt holds the string denoting the accessed_at field in the database.
	FieldAccessedAt = "accessed_at"
	// Table holds the table name of the agentmemoryentry in the database.
	Table = "agent_memory_entries"
)

// Columns holds all SQL columns for agentmemoryentry fields.
var Columns = []string{
	FieldID,
	FieldAgentInstanceID,
	FieldWorkspaceID,
	FieldKey,
	FieldValue,
	FieldSizeBytes,
	FieldReceivedFrom,
	FieldCreatedAt,
	FieldAccessedAt,
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
	// DefaultAccessedAt holds the default value on creation for the "accessed_at" field.
	DefaultAccessedAt func() time.Time
)

// OrderOption defines the ordering options for the AgentMemoryEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentInstanceID orders the results by the agent_instance_id field.
func ByAgentInstanceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentInstanceID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}

// BySizeBytes orders the results by the size_bytes field.
func BySizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSizeBytes, opts...).ToFunc()
}

// ByReceivedFrom orders the results by the received_from field.
func ByReceivedFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceivedFrom, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAccessedAt orders the results by the accessed_at field.
func ByAccessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccessedAt, opts...).ToFunc()
}
