// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mgx-dev/mgx/ent/task"
	"github.com/mgx-dev/mgx/ent/taskrun"
)

// TaskRun is the model entity for the TaskRun schema.
type TaskRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// RunNumber holds the value of the "run_number" field.
	RunNumber int `json:"run_number,omitempty"`
	// Status holds the value of the "status" field.
	Status taskrun.Status `json:"status,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase taskrun.Phase `json:"phase,omitempty"`
	// Plan holds the value of the "plan" field.
	Plan map[string]interface{} `json:"plan,omitempty"`
	// Results holds the value of the "results" field.
	Results map[string]interface{} `json:"results,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int `json:"duration_ms,omitempty"`
	// ErrorKind holds the value of the "error_kind" field.
	ErrorKind *string `json:"error_kind,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Revision rounds consumed
	RoundCount int `json:"round_count,omitempty"`
	// BranchName holds the value of the "branch_name" field.
	BranchName *string `json:"branch_name,omitempty"`
	// CommitSha holds the value of the "commit_sha" field.
	CommitSha *string `json:"commit_sha,omitempty"`
	// PrURL holds the value of the "pr_url" field.
	PrURL *string `json:"pr_url,omitempty"`
	// GitStatus holds the value of the "git_status" field.
	GitStatus taskrun.GitStatus `json:"git_status,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskRunQuery when eager-loading is set.
	Edges        TaskRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskRunEdges holds the relations/edges for other nodes in the graph.
type TaskRunEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// SandboxExecutions holds the value of the sandbox_executions edge.
	SandboxExecutions []*SandboxExecution `json:"sandbox_executions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskRunEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// SandboxExecutionsOrErr returns the SandboxExecutions value or an error if the edge
// was not loaded in eager-loading.
func (e TaskRunEdges) SandboxExecutionsOrErr() ([]*SandboxExecution, error) {
	if e.loadedTypes[1] {
		return e.SandboxExecutions, nil
	}
	return nil, &NotLoadedError{edge: "sandbox_executions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskrun.FieldPlan, taskrun.FieldResults:
			values[i] = new([]byte)
		case taskrun.FieldRunNumber, taskrun.FieldDurationMs, taskrun.FieldRoundCount:
			values[i] = new(sql.NullInt64)
		case taskrun.FieldID, taskrun.FieldTaskID, taskrun.FieldWorkspaceID, taskrun.FieldProjectID, taskrun.FieldStatus, taskrun.FieldPhase, taskrun.FieldErrorKind, taskrun.FieldErrorMessage, taskrun.FieldBranchName, taskrun.FieldCommitSha, taskrun.FieldPrURL, taskrun.FieldGitStatus, taskrun.FieldPodID:
			values[i] = new(sql.NullString)
		case taskrun.FieldStartedAt, taskrun.FieldCompletedAt, taskrun.FieldLastHeartbeatAt, taskrun.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskRun fields.
func (_m *TaskRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case taskrun.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case taskrun.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case taskrun.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case taskrun.FieldRunNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field run_number", values[i])
			} else if value.Valid {
				_m.RunNumber = int(value.Int64)
			}
		case taskrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = taskrun.Status(value.String)
			}
		case taskrun.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = taskrun.Phase(value.String)
			}
		case taskrun.FieldPlan:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field plan", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Plan); err != nil {
					return fmt.Errorf("unmarshal field plan: %w", err)
				}
			}
		case taskrun.FieldResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Results); err != nil {
					return fmt.Errorf("unmarshal field results: %w", err)
				}
			}
		case taskrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case taskrun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case taskrun.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int)
				*_m.DurationMs = int(value.Int64)
			}
		case taskrun.FieldErrorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_kind", values[i])
			} else if value.Valid {
				_m.ErrorKind = new(string)
				*_m.ErrorKind = value.String
			}
		case taskrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case taskrun.FieldRoundCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field round_count", values[i])
			} else if value.Valid {
				_m.RoundCount = int(value.Int64)
			}
		case taskrun.FieldBranchName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch_name", values[i])
			} else if value.Valid {
				_m.BranchName = new(string)
				*_m.BranchName = value.String
			}
		case taskrun.FieldCommitSha:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field commit_sha", values[i])
			} else if value.Valid {
				_m.CommitSha = new(string)
				*_m.CommitSha = value.String
			}
		case taskrun.FieldPrURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pr_url", values[i])
			} else if value.Valid {
				_m.PrURL = new(string)
				*_m.PrURL = value.String
			}
		case taskrun.FieldGitStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field git_status", values[i])
			} else if value.Valid {
				_m.GitStatus = taskrun.GitStatus(value.String)
			}
		case taskrun.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case taskrun.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case taskrun.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TaskRun.
// This includes values selected through modifiers, order, etc.
func (_m *TaskRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the TaskRun entity.
func (_m *TaskRun) QueryTask() *TaskQuery {
	return NewTaskRunClient(_m.config).QueryTask(_m)
}

// QuerySandboxExecutions queries the "sandbox_executions" edge of the TaskRun entity.
func (_m *TaskRun) QuerySandboxExecutions() *SandboxExecutionQuery {
	return NewTaskRunClient(_m.config).QuerySandboxExecutions(_m)
}

// Update returns a builder for updating this TaskRun.
// Note that you need to call TaskRun.Unwrap() before calling this method if this TaskRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskRun) Update() *TaskRunUpdateOne {
	return NewTaskRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskRun) Unwrap() *TaskRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskRun) String() string {
	var builder strings.Builder
	builder.WriteString("TaskRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("run_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunNumber))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	builder.WriteString("plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.Plan))
	builder.WriteString(", ")
	builder.WriteString("results=")
	builder.WriteString(fmt.Sprintf("%v", _m.Results))
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
	if v := _m.ErrorKind; v != nil {
		builder.WriteString("error_kind=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("round_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoundCount))
	builder.WriteString(", ")
	if v := _m.BranchName; v != nil {
		builder.WriteString("branch_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CommitSha; v != nil {
		builder.WriteString("commit_sha=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PrURL; v != nil {
		builder.WriteString("pr_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("git_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.GitStatus))
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TaskRuns is a parsable slice of TaskRun.
type TaskRuns []*TaskRun
