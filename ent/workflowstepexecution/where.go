// Code generated by ent, DO NOT EDIT.

package workflowstepexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mgx-dev/mgx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldContainsFold(FieldID, id))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEQ(FieldExecutionID, v))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEQ(FieldStepID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEQ(FieldDurationMs, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEQ(FieldRetryCount, v))
}

// WaitingApprovalID applies equality check predicate on the "waiting_approval_id" field. It's identical to WaitingApprovalIDEQ.
func WaitingApprovalID(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEQ(FieldWaitingApprovalID, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldContainsFold(FieldExecutionID, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNotIn(FieldStepID, vs...))
}

// StepIDGT applies the GT predicate on the "step_id" field.
func StepIDGT(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldGT(FieldStepID, v))
}

// StepIDGTE applies the GTE predicate on the "step_id" field.
func StepIDGTE(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldGTE(FieldStepID, v))
}

// StepIDLT applies the LT predicate on the "step_id" field.
func StepIDLT(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldLT(FieldStepID, v))
}

// StepIDLTE applies the LTE predicate on the "step_id" field.
func StepIDLTE(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldLTE(FieldStepID, v))
}

// StepIDContains applies the Contains predicate on the "step_id" field.
func StepIDContains(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldContains(FieldStepID, v))
}

// StepIDHasPrefix applies the HasPrefix predicate on the "step_id" field.
func StepIDHasPrefix(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldHasPrefix(FieldStepID, v))
}

// StepIDHasSuffix applies the HasSuffix predicate on the "step_id" field.
func StepIDHasSuffix(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldHasSuffix(FieldStepID, v))
}

// StepIDEqualFold applies the EqualFold predicate on the "step_id" field.
func StepIDEqualFold(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEqualFold(FieldStepID, v))
}

// StepIDContainsFold applies the ContainsFold predicate on the "step_id" field.
func StepIDContainsFold(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldContainsFold(FieldStepID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNotNull(FieldCompletedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNotNull(FieldDurationMs))
}

// InputIsNil applies the IsNil predicate on the "input" field.
func InputIsNil() predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldIsNull(FieldInput))
}

// InputNotNil applies the NotNil predicate on the "input" field.
func InputNotNil() predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNotNull(FieldInput))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNotNull(FieldOutput))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldLTE(FieldRetryCount, v))
}

// WaitingApprovalIDEQ applies the EQ predicate on the "waiting_approval_id" field.
func WaitingApprovalIDEQ(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEQ(FieldWaitingApprovalID, v))
}

// WaitingApprovalIDNEQ applies the NEQ predicate on the "waiting_approval_id" field.
func WaitingApprovalIDNEQ(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNEQ(FieldWaitingApprovalID, v))
}

// WaitingApprovalIDIn applies the In predicate on the "waiting_approval_id" field.
func WaitingApprovalIDIn(vs ...string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldIn(FieldWaitingApprovalID, vs...))
}

// WaitingApprovalIDNotIn applies the NotIn predicate on the "waiting_approval_id" field.
func WaitingApprovalIDNotIn(vs ...string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNotIn(FieldWaitingApprovalID, vs...))
}

// WaitingApprovalIDGT applies the GT predicate on the "waiting_approval_id" field.
func WaitingApprovalIDGT(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldGT(FieldWaitingApprovalID, v))
}

// WaitingApprovalIDGTE applies the GTE predicate on the "waiting_approval_id" field.
func WaitingApprovalIDGTE(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldGTE(FieldWaitingApprovalID, v))
}

// WaitingApprovalIDLT applies the LT predicate on the "waiting_approval_id" field.
func WaitingApprovalIDLT(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldLT(FieldWaitingApprovalID, v))
}

// WaitingApprovalIDLTE applies the LTE predicate on the "waiting_approval_id" field.
func WaitingApprovalIDLTE(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldLTE(FieldWaitingApprovalID, v))
}

// WaitingApprovalIDContains applies the Contains predicate on the "waiting_approval_id" field.
func WaitingApprovalIDContains(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldContains(FieldWaitingApprovalID, v))
}

// WaitingApprovalIDHasPrefix applies the HasPrefix predicate on the "waiting_approval_id" field.
func WaitingApprovalIDHasPrefix(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldHasPrefix(FieldWaitingApprovalID, v))
}

// WaitingApprovalIDHasSuffix applies the HasSuffix predicate on the "waiting_approval_id" field.
func WaitingApprovalIDHasSuffix(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldHasSuffix(FieldWaitingApprovalID, v))
}

// WaitingApprovalIDIsNil applies the IsNil predicate on the "waiting_approval_id" field.
func WaitingApprovalIDIsNil() predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldIsNull(FieldWaitingApprovalID))
}

// WaitingApprovalIDNotNil applies the NotNil predicate on the "waiting_approval_id" field.
func WaitingApprovalIDNotNil() predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNotNull(FieldWaitingApprovalID))
}

// WaitingApprovalIDEqualFold applies the EqualFold predicate on the "waiting_approval_id" field.
func WaitingApprovalIDEqualFold(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEqualFold(FieldWaitingApprovalID, v))
}

// WaitingApprovalIDContainsFold applies the ContainsFold predicate on the "waiting_approval_id" field.
func WaitingApprovalIDContainsFold(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldContainsFold(FieldWaitingApprovalID, v))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldContainsFold(FieldErrorKind, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasExecution applies the HasEdge predicate on the "execution" edge.
func HasExecution() predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionWith applies the HasEdge predicate on the "execution" edge with a given conditions (other predicates).
func HasExecutionWith(preds ...predicate.WorkflowExecution) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(func(s *sql.Selector) {
		step := newExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowStepExecution) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowStepExecution) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowStepExecution) predicate.WorkflowStepExecution {
	return predicate.WorkflowStepExecution(sql.NotPredicates(p))
}
