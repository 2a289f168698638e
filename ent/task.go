// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mgx-dev/mgx/ent/project"
	"github.com/mgx-dev/mgx/ent/task"
)

// Task is the model entity for the Task schema.
type Task struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Recognized task options: max_rounds, budget_multiplier, auto_approve_plan, target_stack, output_mode, constraints, ...
	Config map[string]interface{} `json:"config,omitempty"`
	// Status holds the value of the "status" field.
	Status task.Status `json:"status,omitempty"`
	// MaxRounds holds the value of the "max_rounds" field.
	MaxRounds int `json:"max_rounds,omitempty"`
	// MaxRevisionRounds holds the value of the "max_revision_rounds" field.
	MaxRevisionRounds int `json:"max_revision_rounds,omitempty"`
	// Overrides the project default when set
	BranchPrefix *string `json:"branch_prefix,omitempty"`
	// CommitTemplate holds the value of the "commit_template" field.
	CommitTemplate *string `json:"commit_template,omitempty"`
	// TotalRuns holds the value of the "total_runs" field.
	TotalRuns int `json:"total_runs,omitempty"`
	// SuccessfulRuns holds the value of the "successful_runs" field.
	SuccessfulRuns int `json:"successful_runs,omitempty"`
	// FailedRuns holds the value of the "failed_runs" field.
	FailedRuns int `json:"failed_runs,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskQuery when eager-loading is set.
	Edges        TaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskEdges holds the relations/edges for other nodes in the graph.
type TaskEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Runs holds the value of the runs edge.
	Runs []*TaskRun `json:"runs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// RunsOrErr returns the Runs value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) RunsOrErr() ([]*TaskRun, error) {
	if e.loadedTypes[1] {
		return e.Runs, nil
	}
	return nil, &NotLoadedError{edge: "runs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Task) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case task.FieldConfig:
			values[i] = new([]byte)
		case task.FieldMaxRounds, task.FieldMaxRevisionRounds, task.FieldTotalRuns, task.FieldSuccessfulRuns, task.FieldFailedRuns:
			values[i] = new(sql.NullInt64)
		case task.FieldID, task.FieldWorkspaceID, task.FieldProjectID, task.FieldName, task.FieldDescription, task.FieldStatus, task.FieldBranchPrefix, task.FieldCommitTemplate:
			values[i] = new(sql.NullString)
		case task.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Task fields.
func (_m *Task) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case task.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case task.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case task.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case task.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case task.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case task.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case task.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = task.Status(value.String)
			}
		case task.FieldMaxRounds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_rounds", values[i])
			} else if value.Valid {
				_m.MaxRounds = int(value.Int64)
			}
		case task.FieldMaxRevisionRounds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_revision_rounds", values[i])
			} else if value.Valid {
				_m.MaxRevisionRounds = int(value.Int64)
			}
		case task.FieldBranchPrefix:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch_prefix", values[i])
			} else if value.Valid {
				_m.BranchPrefix = new(string)
				*_m.BranchPrefix = value.String
			}
		case task.FieldCommitTemplate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field commit_template", values[i])
			} else if value.Valid {
				_m.CommitTemplate = new(string)
				*_m.CommitTemplate = value.String
			}
		case task.FieldTotalRuns:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_runs", values[i])
			} else if value.Valid {
				_m.TotalRuns = int(value.Int64)
			}
		case task.FieldSuccessfulRuns:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field successful_runs", values[i])
			} else if value.Valid {
				_m.SuccessfulRuns = int(value.Int64)
			}
		case task.FieldFailedRuns:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_runs", values[i])
			} else if value.Valid {
				_m.FailedRuns = int(value.Int64)
			}
		case task.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Task.
// This includes values selected through modifiers, order, etc.
func (_m *Task) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Task entity.
func (_m *Task) QueryProject() *ProjectQuery {
	return NewTaskClient(_m.config).QueryProject(_m)
}

// QueryRuns queries the "runs" edge of the Task entity.
func (_m *Task) QueryRuns() *TaskRunQuery {
	return NewTaskClient(_m.config).QueryRuns(_m)
}

// Update returns a builder for updating this Task.
// Note that you need to call Task.Unwrap() before calling this method if this Task
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Task) Update() *TaskUpdateOne {
	return NewTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Task entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Task) Unwrap() *Task {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Task is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Task) String() string {
	var builder strings.Builder
	builder.WriteString("Task(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("max_rounds=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxRounds))
	builder.WriteString(", ")
	builder.WriteString("max_revision_rounds=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxRevisionRounds))
	builder.WriteString(", ")
	if v := _m.BranchPrefix; v != nil {
		builder.WriteString("branch_prefix=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CommitTemplate; v != nil {
		builder.WriteString("commit_template=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("total_runs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalRuns))
	builder.WriteString(", ")
	builder.WriteString("successful_runs=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessfulRuns))
	builder.WriteString(", ")
	builder.WriteString("failed_runs=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedRuns))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tasks is a parsable slice of Task.
type Tasks []*Task
