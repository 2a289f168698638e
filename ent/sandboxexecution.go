// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mgx-dev/mgx/ent/sandboxexecution"
	"github.com/mgx-dev/mgx/ent/taskrun"
)

// SandboxExecution is the model entity for the SandboxExecution schema.
type SandboxExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// Command holds the value of the "command" field.
	Command string `json:"command,omitempty"`
	// CodeLocation holds the value of the "code_location" field.
	CodeLocation string `json:"code_location,omitempty"`
	// Status holds the value of the "status" field.
	Status sandboxexecution.Status `json:"status,omitempty"`
	// Stdout holds the value of the "stdout" field.
	Stdout string `json:"stdout,omitempty"`
	// Stderr holds the value of the "stderr" field.
	Stderr string `json:"stderr,omitempty"`
	// ExitCode holds the value of the "exit_code" field.
	ExitCode *int `json:"exit_code,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int `json:"duration_ms,omitempty"`
	// PeakMemoryMB holds the value of the "peak_memory_mb" field.
	PeakMemoryMB *int `json:"peak_memory_mb,omitempty"`
	// CPUPercent holds the value of the "cpu_percent" field.
	CPUPercent *float64 `json:"cpu_percent,omitempty"`
	// ContainerID holds the value of the "container_id" field.
	ContainerID *string `json:"container_id,omitempty"`
	// TimeoutSeconds holds the value of the "timeout_seconds" field.
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`
	// MemoryLimitMB holds the value of the "memory_limit_mb" field.
	MemoryLimitMB int `json:"memory_limit_mb,omitempty"`
	// ErrorType holds the value of the "error_type" field.
	ErrorType *string `json:"error_type,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SandboxExecutionQuery when eager-loading is set.
	Edges        SandboxExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SandboxExecutionEdges holds the relations/edges for other nodes in the graph.
type SandboxExecutionEdges struct {
	// Run holds the value of the run edge.
	Run *TaskRun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SandboxExecutionEdges) RunOrErr() (*TaskRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: taskrun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SandboxExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sandboxexecution.FieldCPUPercent:
			values[i] = new(sql.NullFloat64)
		case sandboxexecution.FieldExitCode, sandboxexecution.FieldDurationMs, sandboxexecution.FieldPeakMemoryMB, sandboxexecution.FieldTimeoutSeconds, sandboxexecution.FieldMemoryLimitMB:
			values[i] = new(sql.NullInt64)
		case sandboxexecution.FieldID, sandboxexecution.FieldRunID, sandboxexecution.FieldWorkspaceID, sandboxexecution.FieldProjectID, sandboxexecution.FieldLanguage, sandboxexecution.FieldCommand, sandboxexecution.FieldCodeLocation, sandboxexecution.FieldStatus, sandboxexecution.FieldStdout, sandboxexecution.FieldStderr, sandboxexecution.FieldContainerID, sandboxexecution.FieldErrorType, sandboxexecution.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case sandboxexecution.FieldStartedAt, sandboxexecution.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SandboxExecution fields.
func (_m *SandboxExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sandboxexecution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sandboxexecution.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case sandboxexecution.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case sandboxexecution.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case sandboxexecution.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case sandboxexecution.FieldCommand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field command", values[i])
			} else if value.Valid {
				_m.Command = value.String
			}
		case sandboxexecution.FieldCodeLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code_location", values[i])
			} else if value.Valid {
				_m.CodeLocation = value.String
			}
		case sandboxexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = sandboxexecution.Status(value.String)
			}
		case sandboxexecution.FieldStdout:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stdout", values[i])
			} else if value.Valid {
				_m.Stdout = value.String
			}
		case sandboxexecution.FieldStderr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stderr", values[i])
			} else if value.Valid {
				_m.Stderr = value.String
			}
		case sandboxexecution.FieldExitCode:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exit_code", values[i])
			} else if value.Valid {
				_m.ExitCode = new(int)
				*_m.ExitCode = int(value.Int64)
			}
		case sandboxexecution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case sandboxexecution.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case sandboxexecution.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int)
				*_m.DurationMs = int(value.Int64)
			}
		case sandboxexecution.FieldPeakMemoryMB:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field peak_memory_mb", values[i])
			} else if value.Valid {
				_m.PeakMemoryMB = new(int)
				*_m.PeakMemoryMB = int(value.Int64)
			}
		case sandboxexecution.FieldCPUPercent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cpu_percent", values[i])
			} else if value.Valid {
				_m.CPUPercent = new(float64)
				*_m.CPUPercent = value.Float64
			}
		case sandboxexecution.FieldContainerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field container_id", values[i])
			} else if value.Valid {
				_m.ContainerID = new(string)
				*_m.ContainerID = value.String
			}
		case sandboxexecution.FieldTimeoutSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_seconds", values[i])
			} else if value.Valid {
				_m.TimeoutSeconds = int(value.Int64)
			}
		case sandboxexecution.FieldMemoryLimitMB:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field memory_limit_mb", values[i])
			} else if value.Valid {
				_m.MemoryLimitMB = int(value.Int64)
			}
		case sandboxexecution.FieldErrorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_type", values[i])
			} else if value.Valid {
				_m.ErrorType = new(string)
				*_m.ErrorType = value.String
			}
		case sandboxexecution.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SandboxExecution.
// This includes values selected through modifiers, order, etc.
func (_m *SandboxExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the SandboxExecution entity.
func (_m *SandboxExecution) QueryRun() *TaskRunQuery {
	return NewSandboxExecutionClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this SandboxExecution.
// Note that you need to call SandboxExecution.Unwrap() before calling this method if this SandboxExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SandboxExecution) Update() *SandboxExecutionUpdateOne {
	return NewSandboxExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SandboxExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SandboxExecution) Unwrap() *SandboxExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SandboxExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SandboxExecution) String() string {
	var builder strings.Builder
	builder.WriteString("SandboxExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("command=")
	builder.WriteString(_m.Command)
	builder.WriteString(", ")
	builder.WriteString("code_location=")
	builder.WriteString(_m.CodeLocation)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("stdout=")
	builder.WriteString(_m.Stdout)
	builder.WriteString(", ")
	builder.WriteString("stderr=")
	builder.WriteString(_m.Stderr)
	builder.WriteString(", ")
	if v := _m.ExitCode; v != nil {
		builder.WriteString("exit_code=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PeakMemoryMB; v != nil {
		builder.WriteString("peak_memory_mb=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CPUPercent; v != nil {
		builder.WriteString("cpu_percent=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ContainerID; v != nil {
		builder.WriteString("container_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("timeout_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeoutSeconds))
	builder.WriteString(", ")
	builder.WriteString("memory_limit_mb=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemoryLimitMB))
	builder.WriteString(", ")
	if v := _m.ErrorType; v != nil {
		builder.WriteString("error_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// SandboxExecutions is a parsable slice of SandboxExecution.
type SandboxExecutions []*SandboxExecution
