// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mgx-dev/mgx/ent/agentmemoryentry"
)

// AgentMemoryEntry is the model entity for the AgentMemoryEntry schema.
type AgentMemoryEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentInstanceID holds the value of the "agent_instance_id" field.
	AgentInstanceID string `json:"agent_instance_id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// Key holds the value of the "key" field.
	Key string `json:"key,omitempty"`
	// Opaque JSON payload
	Value []byte `json:"value,omitempty"`
	// SizeBytes holds the value of the "size_bytes" field.
	SizeBytes int `json:"size_bytes,omitempty"`
	// Source instance when the entry arrived via handoff
	ReceivedFrom *string `json:"received_from,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// LRU recency; bumped on read
	AccessedAt   time.Time `json:"accessed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentMemoryEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentmemoryentry.FieldValue:
			values[i] = new([]byte)
		case agentmemoryentry.FieldSizeBytes:
			values[i] = new(sql.NullInt64)
		case agentmemoryentry.FieldID, agentmemoryentry.FieldAgentInstanceID, agentmemoryentry.FieldWorkspaceID, agentmemoryentry.FieldKey, agentmemoryentry.FieldReceivedFrom:
			values[i] = new(sql.NullString)
		case agentmemoryentry.FieldCreatedAt, agentmemoryentry.FieldAccessedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentMemoryEntry fields.
func (_m *AgentMemoryEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentmemoryentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentmemoryentry.FieldAgentInstanceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_instance_id", values[i])
			} else if value.Valid {
				_m.AgentInstanceID = value.String
			}
		case agentmemoryentry.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case agentmemoryentry.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case agentmemoryentry.FieldValue:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value != nil {
				_m.Value = *value
			}
		case agentmemoryentry.FieldSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size_bytes", values[i])
			} else if value.Valid {
				_m.SizeBytes = int(value.Int64)
			}
		case agentmemoryentry.FieldReceivedFrom:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field received_from", values[i])
			} else if value.Valid {
				_m.ReceivedFrom = new(string)
				*_m.ReceivedFrom = value.String
			}
		case agentmemoryentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentmemoryentry.FieldAccessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field accessed_at", values[i])
			} else if value.Valid {
				_m.AccessedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the AgentMemoryEntry.
// This includes values selected through modifiers, order, etc.
func (_m *AgentMemoryEntry) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AgentMemoryEntry.
// Note that you need to call AgentMemoryEntry.Unwrap() before calling this method if this AgentMemoryEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentMemoryEntry) Update() *AgentMemoryEntryUpdateOne {
	return NewAgentMemoryEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentMemoryEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentMemoryEntry) Unwrap() *AgentMemoryEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentMemoryEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentMemoryEntry) String() string {
	var builder strings.Builder
	builder.WriteString("AgentMemoryEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_instance_id=")
	builder.WriteString(_m.AgentInstanceID)
	builder.WriteString(", ")
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(fmt.Sprintf("%v", _m.Value))
	builder.WriteString(", ")
	builder.WriteString("size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.SizeBytes))
	builder.WriteString(", ")
	if v := _m.ReceivedFrom; v != nil {
		builder.WriteString("received_from=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("accessed_at=")
	builder.WriteString(_m.AccessedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentMemoryEntries is a parsable slice of AgentMemoryEntry.
type AgentMemoryEntries []*AgentMemoryEntry
