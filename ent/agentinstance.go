// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mgx-dev/mgx/ent/agentdefinition"
	"github.com/mgx-dev/mgx/ent/agentinstance"
)

// AgentInstance is the model entity for the AgentInstance schema.
type AgentInstance struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentDefinitionID holds the value of the "agent_definition_id" field.
	AgentDefinitionID string `json:"agent_definition_id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// Status holds the value of the "status" field.
	Status agentinstance.Status `json:"status,omitempty"`
	// Reserved step executions; incremented on assignment, decremented on terminal transition
	ActiveSteps int `json:"active_steps,omitempty"`
	// LastAssignedAt holds the value of the "last_assigned_at" field.
	LastAssignedAt *time.Time `json:"last_assigned_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentInstanceQuery when eager-loading is set.
	Edges        AgentInstanceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentInstanceEdges holds the relations/edges for other nodes in the graph.
type AgentInstanceEdges struct {
	// Definition holds the value of the definition edge.
	Definition *AgentDefinition `json:"definition,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DefinitionOrErr returns the Definition value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentInstanceEdges) DefinitionOrErr() (*AgentDefinition, error) {
	if e.Definition != nil {
		return e.Definition, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agentdefinition.Label}
	}
	return nil, &NotLoadedError{edge: "definition"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentInstance) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentinstance.FieldActiveSteps:
			values[i] = new(sql.NullInt64)
		case agentinstance.FieldID, agentinstance.FieldAgentDefinitionID, agentinstance.FieldWorkspaceID, agentinstance.FieldStatus:
			values[i] = new(sql.NullString)
		case agentinstance.FieldLastAssignedAt, agentinstance.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentInstance fields.
func (_m *AgentInstance) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentinstance.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentinstance.FieldAgentDefinitionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_definition_id", values[i])
			} else if value.Valid {
				_m.AgentDefinitionID = value.String
			}
		case agentinstance.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case agentinstance.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agentinstance.Status(value.String)
			}
		case agentinstance.FieldActiveSteps:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field active_steps", values[i])
			} else if value.Valid {
				_m.ActiveSteps = int(value.Int64)
			}
		case agentinstance.FieldLastAssignedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_assigned_at", values[i])
			} else if value.Valid {
				_m.LastAssignedAt = new(time.Time)
				*_m.LastAssignedAt = value.Time
			}
		case agentinstance.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentInstance.
// This includes values selected through modifiers, order, etc.
func (_m *AgentInstance) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDefinition queries the "definition" edge of the AgentInstance entity.
func (_m *AgentInstance) QueryDefinition() *AgentDefinitionQuery {
	return NewAgentInstanceClient(_m.config).QueryDefinition(_m)
}

// Update returns a builder for updating this AgentInstance.
// Note that you need to call AgentInstance.Unwrap() before calling this method if this AgentInstance
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentInstance) Update() *AgentInstanceUpdateOne {
	return NewAgentInstanceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentInstance entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentInstance) Unwrap() *AgentInstance {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentInstance is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentInstance) String() string {
	var builder strings.Builder
	builder.WriteString("AgentInstance(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_definition_id=")
	builder.WriteString(_m.AgentDefinitionID)
	builder.WriteString(", ")
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("active_steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActiveSteps))
	builder.WriteString(", ")
	if v := _m.LastAssignedAt; v != nil {
		builder.WriteString("last_assigned_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentInstances is a parsable slice of AgentInstance.
type AgentInstances []*AgentInstance
