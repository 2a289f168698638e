// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mgx-dev/mgx/ent/predicate"
	"github.com/mgx-dev/mgx/ent/workflowstepexecution"
)

// WorkflowStepExecutionUpdate is the builder for updating WorkflowStepExecution entities.
type WorkflowStepExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowStepExecutionMutation
}

// Where appends a list predicates to the WorkflowStepExecutionUpdate builder.
func (_u *WorkflowStepExecutionUpdate) Where(ps ...predicate.WorkflowStepExecution) *WorkflowStepExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowStepExecutionUpdate) SetStatus(v workflowstepexecution.Status) *WorkflowStepExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowStepExecutionUpdate) SetNillableStatus(v *workflowstepexecution.Status) *WorkflowStepExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowStepExecutionUpdate) SetStartedAt(v time.Time) *WorkflowStepExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowStepExecutionUpdate) SetNillableStartedAt(v *time.Time) *WorkflowStepExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowStepExecutionUpdate) ClearStartedAt() *WorkflowStepExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowStepExecutionUpdate) SetCompletedAt(v time.Time) *WorkflowStepExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowStepExecutionUpdate) SetNillableCompletedAt(v *time.Time) *WorkflowStepExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowStepExecutionUpdate) ClearCompletedAt() *WorkflowStepExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *WorkflowStepExecutionUpdate) SetDurationMs(v int) *WorkflowStepExecutionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *WorkflowStepExecutionUpdate) SetNillableDurationMs(v *int) *WorkflowStepExecutionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *WorkflowStepExecutionUpdate) AddDurationMs(v int) *WorkflowStepExecutionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *WorkflowStepExecutionUpdate) ClearDurationMs() *WorkflowStepExecutionUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetInput sets the "input" field.
func (_u *WorkflowStepExecutionUpdate) SetInput(v map[string]interface{}) *WorkflowStepExecutionUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *WorkflowStepExecutionUpdate) ClearInput() *WorkflowStepExecutionUpdate {
	_u.mutation.ClearInput()
	return _u
}

// SetOutput sets the "output" field.
func (_u *WorkflowStepExecutionUpdate) SetOutput(v map[string]interface{}) *WorkflowStepExecutionUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *WorkflowStepExecutionUpdate) ClearOutput() *WorkflowStepExecutionUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *WorkflowStepExecutionUpdate) SetRetryCount(v int) *WorkflowStepExecutionUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *WorkflowStepExecutionUpdate) SetNillableRetryCount(v *int) *WorkflowStepExecutionUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *WorkflowStepExecutionUpdate) AddRetryCount(v int) *WorkflowStepExecutionUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetWaitingApprovalID sets the "waiting_approval_id" field.
func (_u *WorkflowStepExecutionUpdate) SetWaitingApprovalID(v string) *WorkflowStepExecutionUpdate {
	_u.mutation.SetWaitingApprovalID(v)
	return _u
}

// SetNillableWaitingApprovalID sets the "waiting_approval_id" field if the given value is not nil.
func (_u *WorkflowStepExecutionUpdate) SetNillableWaitingApprovalID(v *string) *WorkflowStepExecutionUpdate {
	if v != nil {
		_u.SetWaitingApprovalID(*v)
	}
	return _u
}

// ClearWaitingApprovalID clears the value of the "waiting_approval_id" field.
func (_u *WorkflowStepExecutionUpdate) ClearWaitingApprovalID() *WorkflowStepExecutionUpdate {
	_u.mutation.ClearWaitingApprovalID()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *WorkflowStepExecutionUpdate) SetErrorKind(v string) *WorkflowStepExecutionUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *WorkflowStepExecutionUpdate) SetNillableErrorKind(v *string) *WorkflowStepExecutionUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *WorkflowStepExecutionUpdate) ClearErrorKind() *WorkflowStepExecutionUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowStepExecutionUpdate) SetErrorMessage(v string) *WorkflowStepExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowStepExecutionUpdate) SetNillableErrorMessage(v *string) *WorkflowStepExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowStepExecutionUpdate) ClearErrorMessage() *WorkflowStepExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the WorkflowStepExecutionMutation object of the builder.
func (_u *WorkflowStepExecutionUpdate) Mutation() *WorkflowStepExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowStepExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowStepExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowStepExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowStepExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowStepExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowstepexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowStepExecution.status": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowStepExecution.execution"`)
	}
	return nil
}

func (_u *WorkflowStepExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowstepexecution.Table, workflowstepexecution.Columns, sqlgraph.NewFieldSpec(workflowstepexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowstepexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflowstepexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflowstepexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowstepexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowstepexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(workflowstepexecution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(workflowstepexecution.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(workflowstepexecution.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(workflowstepexecution.FieldInput, field.TypeJSON, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(workflowstepexecution.FieldInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(workflowstepexecution.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(workflowstepexecution.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(workflowstepexecution.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(workflowstepexecution.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WaitingApprovalID(); ok {
		_spec.SetField(workflowstepexecution.FieldWaitingApprovalID, field.TypeString, value)
	}
	if _u.mutation.WaitingApprovalIDCleared() {
		_spec.ClearField(workflowstepexecution.FieldWaitingApprovalID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(workflowstepexecution.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(workflowstepexecution.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowstepexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowstepexecution.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowstepexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowStepExecutionUpdateOne is the builder for updating a single WorkflowStepExecution entity.
type WorkflowStepExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowStepExecutionMutation
}

// SetStatus sets the "status" field.
func (_u *WorkflowStepExecutionUpdateOne) SetStatus(v workflowstepexecution.Status) *WorkflowStepExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowStepExecutionUpdateOne) SetNillableStatus(v *workflowstepexecution.Status) *WorkflowStepExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowStepExecutionUpdateOne) SetStartedAt(v time.Time) *WorkflowStepExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowStepExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *WorkflowStepExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowStepExecutionUpdateOne) ClearStartedAt() *WorkflowStepExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowStepExecutionUpdateOne) SetCompletedAt(v time.Time) *WorkflowStepExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowStepExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *WorkflowStepExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowStepExecutionUpdateOne) ClearCompletedAt() *WorkflowStepExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *WorkflowStepExecutionUpdateOne) SetDurationMs(v int) *WorkflowStepExecutionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *WorkflowStepExecutionUpdateOne) SetNillableDurationMs(v *int) *WorkflowStepExecutionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *WorkflowStepExecutionUpdateOne) AddDurationMs(v int) *WorkflowStepExecutionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *WorkflowStepExecutionUpdateOne) ClearDurationMs() *WorkflowStepExecutionUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetInput sets the "input" field.
func (_u *WorkflowStepExecutionUpdateOne) SetInput(v map[string]interface{}) *WorkflowStepExecutionUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *WorkflowStepExecutionUpdateOne) ClearInput() *WorkflowStepExecutionUpdateOne {
	_u.mutation.ClearInput()
	return _u
}

// SetOutput sets the "output" field.
func (_u *WorkflowStepExecutionUpdateOne) SetOutput(v map[string]interface{}) *WorkflowStepExecutionUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *WorkflowStepExecutionUpdateOne) ClearOutput() *WorkflowStepExecutionUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *WorkflowStepExecutionUpdateOne) SetRetryCount(v int) *WorkflowStepExecutionUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *WorkflowStepExecutionUpdateOne) SetNillableRetryCount(v *int) *WorkflowStepExecutionUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *WorkflowStepExecutionUpdateOne) AddRetryCount(v int) *WorkflowStepExecutionUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetWaitingApprovalID sets the "waiting_approval_id" field.
func (_u *WorkflowStepExecutionUpdateOne) SetWaitingApprovalID(v string) *WorkflowStepExecutionUpdateOne {
	_u.mutation.SetWaitingApprovalID(v)
	return _u
}

// SetNillableWaitingApprovalID sets the "waiting_approval_id" field if the given value is not nil.
func (_u *WorkflowStepExecutionUpdateOne) SetNillableWaitingApprovalID(v *string) *WorkflowStepExecutionUpdateOne {
	if v != nil {
		_u.SetWaitingApprovalID(*v)
	}
	return _u
}

// ClearWaitingApprovalID clears the value of the "waiting_approval_id" field.
func (_u *WorkflowStepExecutionUpdateOne) ClearWaitingApprovalID() *WorkflowStepExecutionUpdateOne {
	_u.mutation.ClearWaitingApprovalID()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *WorkflowStepExecutionUpdateOne) SetErrorKind(v string) *WorkflowStepExecutionUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *WorkflowStepExecutionUpdateOne) SetNillableErrorKind(v *string) *WorkflowStepExecutionUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *WorkflowStepExecutionUpdateOne) ClearErrorKind() *WorkflowStepExecutionUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowStepExecutionUpdateOne) SetErrorMessage(v string) *WorkflowStepExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowStepExecutionUpdateOne) SetNillableErrorMessage(v *string) *WorkflowStepExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowStepExecutionUpdateOne) ClearErrorMessage() *WorkflowStepExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the WorkflowStepExecutionMutation object of the builder.
func (_u *WorkflowStepExecutionUpdateOne) Mutation() *WorkflowStepExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowStepExecutionUpdate builder.
func (_u *WorkflowStepExecutionUpdateOne) Where(ps ...predicate.WorkflowStepExecution) *WorkflowStepExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowStepExecutionUpdateOne) Select(field string, fields ...string) *WorkflowStepExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowStepExecution entity.
func (_u *WorkflowStepExecutionUpdateOne) Save(ctx context.Context) (*WorkflowStepExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowStepExecutionUpdateOne) SaveX(ctx context.Context) *WorkflowStepExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowStepExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowStepExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowStepExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowstepexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowStepExecution.status": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowStepExecution.execution"`)
	}
	return nil
}

func (_u *WorkflowStepExecutionUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowStepExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowstepexecution.Table, workflowstepexecution.Columns, sqlgraph.NewFieldSpec(workflowstepexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowStepExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowstepexecution.FieldID)
		for _, f := range fields {
			if !workflowstepexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowstepexecution.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowstepexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflowstepexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflowstepexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowstepexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowstepexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(workflowstepexecution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(workflowstepexecution.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(workflowstepexecution.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(workflowstepexecution.FieldInput, field.TypeJSON, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(workflowstepexecution.FieldInput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(workflowstepexecution.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(workflowstepexecution.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(workflowstepexecution.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(workflowstepexecution.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WaitingApprovalID(); ok {
		_spec.SetField(workflowstepexecution.FieldWaitingApprovalID, field.TypeString, value)
	}
	if _u.mutation.WaitingApprovalIDCleared() {
		_spec.ClearField(workflowstepexecution.FieldWaitingApprovalID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(workflowstepexecution.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(workflowstepexecution.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowstepexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowstepexecution.FieldErrorMessage, field.TypeString)
	}
	_node = &WorkflowStepExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowstepexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
