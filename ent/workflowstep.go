// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mgx-dev/mgx/ent/workflow"
	"github.com/mgx-dev/mgx/ent/workflowstep"
)

// WorkflowStep is the model entity for the WorkflowStep schema.
type WorkflowStep struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID string `json:"workflow_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// StepType holds the value of the "step_type" field.
	StepType workflowstep.StepType `json:"step_type,omitempty"`
	// Tie-breaker only; DAG order is authoritative
	StepOrder int `json:"step_order,omitempty"`
	// DependsOnSteps holds the value of the "depends_on_steps" field.
	DependsOnSteps []string `json:"depends_on_steps,omitempty"`
	// Step-type specific config: task_id, condition expression, approval settings, on_failure
	Config map[string]interface{} `json:"config,omitempty"`
	// max_attempts, backoff_base_ms, fatal_errors
	RetryPolicy map[string]interface{} `json:"retry_policy,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkflowStepQuery when eager-loading is set.
	Edges        WorkflowStepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkflowStepEdges holds the relations/edges for other nodes in the graph.
type WorkflowStepEdges struct {
	// Workflow holds the value of the workflow edge.
	Workflow *Workflow `json:"workflow,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkflowOrErr returns the Workflow value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkflowStepEdges) WorkflowOrErr() (*Workflow, error) {
	if e.Workflow != nil {
		return e.Workflow, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflow.Label}
	}
	return nil, &NotLoadedError{edge: "workflow"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkflowStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflowstep.FieldDependsOnSteps, workflowstep.FieldConfig, workflowstep.FieldRetryPolicy:
			values[i] = new([]byte)
		case workflowstep.FieldStepOrder:
			values[i] = new(sql.NullInt64)
		case workflowstep.FieldID, workflowstep.FieldWorkflowID, workflowstep.FieldName, workflowstep.FieldStepType:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkflowStep fields.
func (_m *WorkflowStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflowstep.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workflowstep.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case workflowstep.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case workflowstep.FieldStepType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_type", values[i])
			} else if value.Valid {
				_m.StepType = workflowstep.StepType(value.String)
			}
		case workflowstep.FieldStepOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_order", values[i])
			} else if value.Valid {
				_m.StepOrder = int(value.Int64)
			}
		case workflowstep.FieldDependsOnSteps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field depends_on_steps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DependsOnSteps); err != nil {
					return fmt.Errorf("unmarshal field depends_on_steps: %w", err)
				}
			}
		case workflowstep.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case workflowstep.FieldRetryPolicy:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field retry_policy", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RetryPolicy); err != nil {
					return fmt.Errorf("unmarshal field retry_policy: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkflowStep.
// This includes values selected through modifiers, order, etc.
func (_m *WorkflowStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkflow queries the "workflow" edge of the WorkflowStep entity.
func (_m *WorkflowStep) QueryWorkflow() *WorkflowQuery {
	return NewWorkflowStepClient(_m.config).QueryWorkflow(_m)
}

// Update returns a builder for updating this WorkflowStep.
// Note that you need to call WorkflowStep.Unwrap() before calling this method if this WorkflowStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkflowStep) Update() *WorkflowStepUpdateOne {
	return NewWorkflowStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkflowStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkflowStep) Unwrap() *WorkflowStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkflowStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkflowStep) String() string {
	var builder strings.Builder
	builder.WriteString("WorkflowStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("step_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepType))
	builder.WriteString(", ")
	builder.WriteString("step_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepOrder))
	builder.WriteString(", ")
	builder.WriteString("depends_on_steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.DependsOnSteps))
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("retry_policy=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryPolicy))
	builder.WriteByte(')')
	return builder.String()
}

// WorkflowSteps is a parsable slice of WorkflowStep.
type WorkflowSteps []*WorkflowStep
