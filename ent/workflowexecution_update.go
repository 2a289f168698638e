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
	"github.com/mgx-dev/mgx/ent/stepapproval"
	"github.com/mgx-dev/mgx/ent/workflowexecution"
	"github.com/mgx-dev/mgx/ent/workflowstepexecution"
)

// WorkflowExecutionUpdate is the builder for updating WorkflowExecution entities.
type WorkflowExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowExecutionMutation
}

// Where appends a list predicates to the WorkflowExecutionUpdate builder.
func (_u *WorkflowExecutionUpdate) Where(ps ...predicate.WorkflowExecution) *WorkflowExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowExecutionUpdate) SetStatus(v workflowexecution.Status) *WorkflowExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableStatus(v *workflowexecution.Status) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowExecutionUpdate) SetStartedAt(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableStartedAt(v *time.Time) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowExecutionUpdate) ClearStartedAt() *WorkflowExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowExecutionUpdate) SetCompletedAt(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableCompletedAt(v *time.Time) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowExecutionUpdate) ClearCompletedAt() *WorkflowExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *WorkflowExecutionUpdate) SetDurationMs(v int) *WorkflowExecutionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableDurationMs(v *int) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *WorkflowExecutionUpdate) AddDurationMs(v int) *WorkflowExecutionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *WorkflowExecutionUpdate) ClearDurationMs() *WorkflowExecutionUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetInputVariables sets the "input_variables" field.
func (_u *WorkflowExecutionUpdate) SetInputVariables(v map[string]interface{}) *WorkflowExecutionUpdate {
	_u.mutation.SetInputVariables(v)
	return _u
}

// ClearInputVariables clears the value of the "input_variables" field.
func (_u *WorkflowExecutionUpdate) ClearInputVariables() *WorkflowExecutionUpdate {
	_u.mutation.ClearInputVariables()
	return _u
}

// SetResults sets the "results" field.
func (_u *WorkflowExecutionUpdate) SetResults(v map[string]interface{}) *WorkflowExecutionUpdate {
	_u.mutation.SetResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *WorkflowExecutionUpdate) ClearResults() *WorkflowExecutionUpdate {
	_u.mutation.ClearResults()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *WorkflowExecutionUpdate) SetErrorKind(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableErrorKind(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *WorkflowExecutionUpdate) ClearErrorKind() *WorkflowExecutionUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowExecutionUpdate) SetErrorMessage(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableErrorMessage(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowExecutionUpdate) ClearErrorMessage() *WorkflowExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddStepExecutionIDs adds the "step_executions" edge to the WorkflowStepExecution entity by IDs.
func (_u *WorkflowExecutionUpdate) AddStepExecutionIDs(ids ...string) *WorkflowExecutionUpdate {
	_u.mutation.AddStepExecutionIDs(ids...)
	return _u
}

// AddStepExecutions adds the "step_executions" edges to the WorkflowStepExecution entity.
func (_u *WorkflowExecutionUpdate) AddStepExecutions(v ...*WorkflowStepExecution) *WorkflowExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepExecutionIDs(ids...)
}

// AddApprovalIDs adds the "approvals" edge to the StepApproval entity by IDs.
func (_u *WorkflowExecutionUpdate) AddApprovalIDs(ids ...string) *WorkflowExecutionUpdate {
	_u.mutation.AddApprovalIDs(ids...)
	return _u
}

// AddApprovals adds the "approvals" edges to the StepApproval entity.
func (_u *WorkflowExecutionUpdate) AddApprovals(v ...*StepApproval) *WorkflowExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalIDs(ids...)
}

// Mutation returns the WorkflowExecutionMutation object of the builder.
func (_u *WorkflowExecutionUpdate) Mutation() *WorkflowExecutionMutation {
	return _u.mutation
}

// ClearStepExecutions clears all "step_executions" edges to the WorkflowStepExecution entity.
func (_u *WorkflowExecutionUpdate) ClearStepExecutions() *WorkflowExecutionUpdate {
	_u.mutation.ClearStepExecutions()
	return _u
}

// RemoveStepExecutionIDs removes the "step_executions" edge to WorkflowStepExecution entities by IDs.
func (_u *WorkflowExecutionUpdate) RemoveStepExecutionIDs(ids ...string) *WorkflowExecutionUpdate {
	_u.mutation.RemoveStepExecutionIDs(ids...)
	return _u
}

// RemoveStepExecutions removes "step_executions" edges to WorkflowStepExecution entities.
func (_u *WorkflowExecutionUpdate) RemoveStepExecutions(v ...*WorkflowStepExecution) *WorkflowExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepExecutionIDs(ids...)
}

// ClearApprovals clears all "approvals" edges to the StepApproval entity.
func (_u *WorkflowExecutionUpdate) ClearApprovals() *WorkflowExecutionUpdate {
	_u.mutation.ClearApprovals()
	return _u
}

// RemoveApprovalIDs removes the "approvals" edge to StepApproval entities by IDs.
func (_u *WorkflowExecutionUpdate) RemoveApprovalIDs(ids ...string) *WorkflowExecutionUpdate {
	_u.mutation.RemoveApprovalIDs(ids...)
	return _u
}

// RemoveApprovals removes "approvals" edges to StepApproval entities.
func (_u *WorkflowExecutionUpdate) RemoveApprovals(v ...*StepApproval) *WorkflowExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.status": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowExecution.workflow"`)
	}
	return nil
}

func (_u *WorkflowExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowexecution.Table, workflowexecution.Columns, sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflowexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflowexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(workflowexecution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(workflowexecution.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(workflowexecution.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.InputVariables(); ok {
		_spec.SetField(workflowexecution.FieldInputVariables, field.TypeJSON, value)
	}
	if _u.mutation.InputVariablesCleared() {
		_spec.ClearField(workflowexecution.FieldInputVariables, field.TypeJSON)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(workflowexecution.FieldResults, field.TypeJSON, value)
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(workflowexecution.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(workflowexecution.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(workflowexecution.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowexecution.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.StepExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.StepExecutionsTable,
			Columns: []string{workflowexecution.StepExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstepexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepExecutionsIDs(); len(nodes) > 0 && !_u.mutation.StepExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.StepExecutionsTable,
			Columns: []string{workflowexecution.StepExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstepexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.StepExecutionsTable,
			Columns: []string{workflowexecution.StepExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstepexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.ApprovalsTable,
			Columns: []string{workflowexecution.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepapproval.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApprovalsIDs(); len(nodes) > 0 && !_u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.ApprovalsTable,
			Columns: []string{workflowexecution.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepapproval.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApprovalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.ApprovalsTable,
			Columns: []string{workflowexecution.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepapproval.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowExecutionUpdateOne is the builder for updating a single WorkflowExecution entity.
type WorkflowExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowExecutionMutation
}

// SetStatus sets the "status" field.
func (_u *WorkflowExecutionUpdateOne) SetStatus(v workflowexecution.Status) *WorkflowExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableStatus(v *workflowexecution.Status) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowExecutionUpdateOne) SetStartedAt(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowExecutionUpdateOne) ClearStartedAt() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowExecutionUpdateOne) SetCompletedAt(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowExecutionUpdateOne) ClearCompletedAt() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *WorkflowExecutionUpdateOne) SetDurationMs(v int) *WorkflowExecutionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableDurationMs(v *int) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *WorkflowExecutionUpdateOne) AddDurationMs(v int) *WorkflowExecutionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *WorkflowExecutionUpdateOne) ClearDurationMs() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetInputVariables sets the "input_variables" field.
func (_u *WorkflowExecutionUpdateOne) SetInputVariables(v map[string]interface{}) *WorkflowExecutionUpdateOne {
	_u.mutation.SetInputVariables(v)
	return _u
}

// ClearInputVariables clears the value of the "input_variables" field.
func (_u *WorkflowExecutionUpdateOne) ClearInputVariables() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearInputVariables()
	return _u
}

// SetResults sets the "results" field.
func (_u *WorkflowExecutionUpdateOne) SetResults(v map[string]interface{}) *WorkflowExecutionUpdateOne {
	_u.mutation.SetResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *WorkflowExecutionUpdateOne) ClearResults() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *WorkflowExecutionUpdateOne) SetErrorKind(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableErrorKind(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *WorkflowExecutionUpdateOne) ClearErrorKind() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowExecutionUpdateOne) SetErrorMessage(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableErrorMessage(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowExecutionUpdateOne) ClearErrorMessage() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddStepExecutionIDs adds the "step_executions" edge to the WorkflowStepExecution entity by IDs.
func (_u *WorkflowExecutionUpdateOne) AddStepExecutionIDs(ids ...string) *WorkflowExecutionUpdateOne {
	_u.mutation.AddStepExecutionIDs(ids...)
	return _u
}

// AddStepExecutions adds the "step_executions" edges to the WorkflowStepExecution entity.
func (_u *WorkflowExecutionUpdateOne) AddStepExecutions(v ...*WorkflowStepExecution) *WorkflowExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepExecutionIDs(ids...)
}

// AddApprovalIDs adds the "approvals" edge to the StepApproval entity by IDs.
func (_u *WorkflowExecutionUpdateOne) AddApprovalIDs(ids ...string) *WorkflowExecutionUpdateOne {
	_u.mutation.AddApprovalIDs(ids...)
	return _u
}

// AddApprovals adds the "approvals" edges to the StepApproval entity.
func (_u *WorkflowExecutionUpdateOne) AddApprovals(v ...*StepApproval) *WorkflowExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalIDs(ids...)
}

// Mutation returns the WorkflowExecutionMutation object of the builder.
func (_u *WorkflowExecutionUpdateOne) Mutation() *WorkflowExecutionMutation {
	return _u.mutation
}

// ClearStepExecutions clears all "step_executions" edges to the WorkflowStepExecution entity.
func (_u *WorkflowExecutionUpdateOne) ClearStepExecutions() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearStepExecutions()
	return _u
}

// RemoveStepExecutionIDs removes the "step_executions" edge to WorkflowStepExecution entities by IDs.
func (_u *WorkflowExecutionUpdateOne) RemoveStepExecutionIDs(ids ...string) *WorkflowExecutionUpdateOne {
	_u.mutation.RemoveStepExecutionIDs(ids...)
	return _u
}

// RemoveStepExecutions removes "step_executions" edges to WorkflowStepExecution entities.
func (_u *WorkflowExecutionUpdateOne) RemoveStepExecutions(v ...*WorkflowStepExecution) *WorkflowExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepExecutionIDs(ids...)
}

// ClearApprovals clears all "approvals" edges to the StepApproval entity.
func (_u *WorkflowExecutionUpdateOne) ClearApprovals() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearApprovals()
	return _u
}

// RemoveApprovalIDs removes the "approvals" edge to StepApproval entities by IDs.
func (_u *WorkflowExecutionUpdateOne) RemoveApprovalIDs(ids ...string) *WorkflowExecutionUpdateOne {
	_u.mutation.RemoveApprovalIDs(ids...)
	return _u
}

// RemoveApprovals removes "approvals" edges to StepApproval entities.
func (_u *WorkflowExecutionUpdateOne) RemoveApprovals(v ...*StepApproval) *WorkflowExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalIDs(ids...)
}

// Where appends a list predicates to the WorkflowExecutionUpdate builder.
func (_u *WorkflowExecutionUpdateOne) Where(ps ...predicate.WorkflowExecution) *WorkflowExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowExecutionUpdateOne) Select(field string, fields ...string) *WorkflowExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowExecution entity.
func (_u *WorkflowExecutionUpdateOne) Save(ctx context.Context) (*WorkflowExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowExecutionUpdateOne) SaveX(ctx context.Context) *WorkflowExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.status": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowExecution.workflow"`)
	}
	return nil
}

func (_u *WorkflowExecutionUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowexecution.Table, workflowexecution.Columns, sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowexecution.FieldID)
		for _, f := range fields {
			if !workflowexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowexecution.FieldID {
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
		_spec.SetField(workflowexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflowexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflowexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(workflowexecution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(workflowexecution.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(workflowexecution.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.InputVariables(); ok {
		_spec.SetField(workflowexecution.FieldInputVariables, field.TypeJSON, value)
	}
	if _u.mutation.InputVariablesCleared() {
		_spec.ClearField(workflowexecution.FieldInputVariables, field.TypeJSON)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(workflowexecution.FieldResults, field.TypeJSON, value)
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(workflowexecution.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(workflowexecution.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(workflowexecution.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowexecution.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.StepExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.StepExecutionsTable,
			Columns: []string{workflowexecution.StepExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstepexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepExecutionsIDs(); len(nodes) > 0 && !_u.mutation.StepExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.StepExecutionsTable,
			Columns: []string{workflowexecution.StepExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstepexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.StepExecutionsTable,
			Columns: []string{workflowexecution.StepExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstepexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.ApprovalsTable,
			Columns: []string{workflowexecution.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepapproval.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApprovalsIDs(); len(nodes) > 0 && !_u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.ApprovalsTable,
			Columns: []string{workflowexecution.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepapproval.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApprovalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.ApprovalsTable,
			Columns: []string{workflowexecution.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepapproval.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkflowExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
