// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mgx-dev/mgx/ent/stepapproval"
	"github.com/mgx-dev/mgx/ent/workflowexecution"
)

// StepApproval is the model entity for the StepApproval schema.
type StepApproval struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// StepExecutionID holds the value of the "step_execution_id" field.
	StepExecutionID string `json:"step_execution_id,omitempty"`
	// ExecutionID holds the value of the "execution_id" field.
	ExecutionID string `json:"execution_id,omitempty"`
	// Status holds the value of the "status" field.
	Status stepapproval.Status `json:"status,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// ApprovalData holds the value of the "approval_data" field.
	ApprovalData map[string]interface{} `json:"approval_data,omitempty"`
	// Approver holds the value of the "approver" field.
	Approver *string `json:"approver,omitempty"`
	// Feedback holds the value of the "feedback" field.
	Feedback *string `json:"feedback,omitempty"`
	// ResponseData holds the value of the "response_data" field.
	ResponseData map[string]interface{} `json:"response_data,omitempty"`
	// RequestedAt holds the value of the "requested_at" field.
	RequestedAt time.Time `json:"requested_at,omitempty"`
	// RespondedAt holds the value of the "responded_at" field.
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// AutoApproveAfterSeconds holds the value of the "auto_approve_after_seconds" field.
	AutoApproveAfterSeconds *int `json:"auto_approve_after_seconds,omitempty"`
	// RequiredApprovers holds the value of the "required_approvers" field.
	RequiredApprovers []string `json:"required_approvers,omitempty"`
	// RevisionCount holds the value of the "revision_count" field.
	RevisionCount int `json:"revision_count,omitempty"`
	// ParentApprovalID holds the value of the "parent_approval_id" field.
	ParentApprovalID *string `json:"parent_approval_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StepApprovalQuery when eager-loading is set.
	Edges        StepApprovalEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StepApprovalEdges holds the relations/edges for other nodes in the graph.
type StepApprovalEdges struct {
	// Execution holds the value of the execution edge.
	Execution *WorkflowExecution `json:"execution,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExecutionOrErr returns the Execution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StepApprovalEdges) ExecutionOrErr() (*WorkflowExecution, error) {
	if e.Execution != nil {
		return e.Execution, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflowexecution.Label}
	}
	return nil, &NotLoadedError{edge: "execution"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StepApproval) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stepapproval.FieldApprovalData, stepapproval.FieldResponseData, stepapproval.FieldRequiredApprovers:
			values[i] = new([]byte)
		case stepapproval.FieldAutoApproveAfterSeconds, stepapproval.FieldRevisionCount:
			values[i] = new(sql.NullInt64)
		case stepapproval.FieldID, stepapproval.FieldStepExecutionID, stepapproval.FieldExecutionID, stepapproval.FieldStatus, stepapproval.FieldTitle, stepapproval.FieldDescription, stepapproval.FieldApprover, stepapproval.FieldFeedback, stepapproval.FieldParentApprovalID:
			values[i] = new(sql.NullString)
		case stepapproval.FieldRequestedAt, stepapproval.FieldRespondedAt, stepapproval.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StepApproval fields.
func (_m *StepApproval) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stepapproval.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case stepapproval.FieldStepExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_execution_id", values[i])
			} else if value.Valid {
				_m.StepExecutionID = value.String
			}
		case stepapproval.FieldExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_id", values[i])
			} else if value.Valid {
				_m.ExecutionID = value.String
			}
		case stepapproval.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = stepapproval.Status(value.String)
			}
		case stepapproval.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case stepapproval.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case stepapproval.FieldApprovalData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field approval_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ApprovalData); err != nil {
					return fmt.Errorf("unmarshal field approval_data: %w", err)
				}
			}
		case stepapproval.FieldApprover:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approver", values[i])
			} else if value.Valid {
				_m.Approver = new(string)
				*_m.Approver = value.String
			}
		case stepapproval.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = new(string)
				*_m.Feedback = value.String
			}
		case stepapproval.FieldResponseData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResponseData); err != nil {
					return fmt.Errorf("unmarshal field response_data: %w", err)
				}
			}
		case stepapproval.FieldRequestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field requested_at", values[i])
			} else if value.Valid {
				_m.RequestedAt = value.Time
			}
		case stepapproval.FieldRespondedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field responded_at", values[i])
			} else if value.Valid {
				_m.RespondedAt = new(time.Time)
				*_m.RespondedAt = value.Time
			}
		case stepapproval.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case stepapproval.FieldAutoApproveAfterSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field auto_approve_after_seconds", values[i])
			} else if value.Valid {
				_m.AutoApproveAfterSeconds = new(int)
				*_m.AutoApproveAfterSeconds = int(value.Int64)
			}
		case stepapproval.FieldRequiredApprovers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field required_approvers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequiredApprovers); err != nil {
					return fmt.Errorf("unmarshal field required_approvers: %w", err)
				}
			}
		case stepapproval.FieldRevisionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field revision_count", values[i])
			} else if value.Valid {
				_m.RevisionCount = int(value.Int64)
			}
		case stepapproval.FieldParentApprovalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_approval_id", values[i])
			} else if value.Valid {
				_m.ParentApprovalID = new(string)
				*_m.ParentApprovalID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StepApproval.
// This includes values selected through modifiers, order, etc.
func (_m *StepApproval) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExecution queries the "execution" edge of the StepApproval entity.
func (_m *StepApproval) QueryExecution() *WorkflowExecutionQuery {
	return NewStepApprovalClient(_m.config).QueryExecution(_m)
}

// Update returns a builder for updating this StepApproval.
// Note that you need to call StepApproval.Unwrap() before calling this method if this StepApproval
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StepApproval) Update() *StepApprovalUpdateOne {
	return NewStepApprovalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StepApproval entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StepApproval) Unwrap() *StepApproval {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StepApproval is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StepApproval) String() string {
	var builder strings.Builder
	builder.WriteString("StepApproval(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("step_execution_id=")
	builder.WriteString(_m.StepExecutionID)
	builder.WriteString(", ")
	builder.WriteString("execution_id=")
	builder.WriteString(_m.ExecutionID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("approval_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApprovalData))
	builder.WriteString(", ")
	if v := _m.Approver; v != nil {
		builder.WriteString("approver=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Feedback; v != nil {
		builder.WriteString("feedback=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("response_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseData))
	builder.WriteString(", ")
	builder.WriteString("requested_at=")
	builder.WriteString(_m.RequestedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.RespondedAt; v != nil {
		builder.WriteString("responded_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.AutoApproveAfterSeconds; v != nil {
		builder.WriteString("auto_approve_after_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("required_approvers=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiredApprovers))
	builder.WriteString(", ")
	builder.WriteString("revision_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RevisionCount))
	builder.WriteString(", ")
	if v := _m.ParentApprovalID; v != nil {
		builder.WriteString("parent_approval_id=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// StepApprovals is a parsable slice of StepApproval.
type StepApprovals []*StepApproval
