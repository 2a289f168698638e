// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mgx-dev/mgx/ent/agentcontext"
	"github.com/mgx-dev/mgx/ent/agentcontextversion"
)

// AgentContextVersion is the model entity for the AgentContextVersion schema.
type AgentContextVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ContextID holds the value of the "context_id" field.
	ContextID string `json:"context_id,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// Data holds the value of the "data" field.
	Data map[string]interface{} `json:"data,omitempty"`
	// Agent instance that produced this version
	WrittenBy string `json:"written_by,omitempty"`
	// Set when this version was created by a rollback to that version
	RolledBackFrom *int `json:"rolled_back_from,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentContextVersionQuery when eager-loading is set.
	Edges        AgentContextVersionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentContextVersionEdges holds the relations/edges for other nodes in the graph.
type AgentContextVersionEdges struct {
	// Context holds the value of the context edge.
	Context *AgentContext `json:"context,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ContextOrErr returns the Context value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentContextVersionEdges) ContextOrErr() (*AgentContext, error) {
	if e.Context != nil {
		return e.Context, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agentcontext.Label}
	}
	return nil, &NotLoadedError{edge: "context"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentContextVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentcontextversion.FieldData:
			values[i] = new([]byte)
		case agentcontextversion.FieldVersion, agentcontextversion.FieldRolledBackFrom:
			values[i] = new(sql.NullInt64)
		case agentcontextversion.FieldID, agentcontextversion.FieldContextID, agentcontextversion.FieldWrittenBy:
			values[i] = new(sql.NullString)
		case agentcontextversion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentContextVersion fields.
func (_m *AgentContextVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentcontextversion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentcontextversion.FieldContextID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context_id", values[i])
			} else if value.Valid {
				_m.ContextID = value.String
			}
		case agentcontextversion.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case agentcontextversion.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case agentcontextversion.FieldWrittenBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field written_by", values[i])
			} else if value.Valid {
				_m.WrittenBy = value.String
			}
		case agentcontextversion.FieldRolledBackFrom:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rolled_back_from", values[i])
			} else if value.Valid {
				_m.RolledBackFrom = new(int)
				*_m.RolledBackFrom = int(value.Int64)
			}
		case agentcontextversion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentContextVersion.
// This includes values selected through modifiers, order, etc.
func (_m *AgentContextVersion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContext queries the "context" edge of the AgentContextVersion entity.
func (_m *AgentContextVersion) QueryContext() *AgentContextQuery {
	return NewAgentContextVersionClient(_m.config).QueryContext(_m)
}

// Update returns a builder for updating this AgentContextVersion.
// Note that you need to call AgentContextVersion.Unwrap() before calling this method if this AgentContextVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentContextVersion) Update() *AgentContextVersionUpdateOne {
	return NewAgentContextVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentContextVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentContextVersion) Unwrap() *AgentContextVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentContextVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentContextVersion) String() string {
	var builder strings.Builder
	builder.WriteString("AgentContextVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("context_id=")
	builder.WriteString(_m.ContextID)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteString(", ")
	builder.WriteString("written_by=")
	builder.WriteString(_m.WrittenBy)
	builder.WriteString(", ")
	if v := _m.RolledBackFrom; v != nil {
		builder.WriteString("rolled_back_from=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentContextVersions is a parsable slice of AgentContextVersion.
type AgentContextVersions []*AgentContextVersion
