// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mgx-dev/mgx/ent/predicate"
	"github.com/mgx-dev/mgx/ent/workflowstep"
)

// WorkflowStepUpdate is the builder for updating WorkflowStep entities.
type WorkflowStepUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowStepMutation
}

// Where appends a list predicates to the WorkflowStepUpdate builder.
func (_u *WorkflowStepUpdate) Where(ps ...predicate.WorkflowStep) *WorkflowStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *WorkflowStepUpdate) SetName(v string) *WorkflowStepUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableName(v *string) *WorkflowStepUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStepType sets the "step_type" field.
func (_u *WorkflowStepUpdate) SetStepType(v workflowstep.StepType) *WorkflowStepUpdate {
	_u.mutation.SetStepType(v)
	return _u
}

// SetNillableStepType sets the "step_type" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableStepType(v *workflowstep.StepType) *WorkflowStepUpdate {
	if v != nil {
		_u.SetStepType(*v)
	}
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *WorkflowStepUpdate) SetStepOrder(v int) *WorkflowStepUpdate {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableStepOrder(v *int) *WorkflowStepUpdate {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *WorkflowStepUpdate) AddStepOrder(v int) *WorkflowStepUpdate {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetDependsOnSteps sets the "depends_on_steps" field.
func (_u *WorkflowStepUpdate) SetDependsOnSteps(v []string) *WorkflowStepUpdate {
	_u.mutation.SetDependsOnSteps(v)
	return _u
}

// AppendDependsOnSteps appends value to the "depends_on_steps" field.
func (_u *WorkflowStepUpdate) AppendDependsOnSteps(v []string) *WorkflowStepUpdate {
	_u.mutation.AppendDependsOnSteps(v)
	return _u
}

// ClearDependsOnSteps clears the value of the "depends_on_steps" field.
func (_u *WorkflowStepUpdate) ClearDependsOnSteps() *WorkflowStepUpdate {
	_u.mutation.ClearDependsOnSteps()
	return _u
}

// SetConfig sets the "config" field.
func (_u *WorkflowStepUpdate) SetConfig(v map[string]interface{}) *WorkflowStepUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *WorkflowStepUpdate) ClearConfig() *WorkflowStepUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetRetryPolicy sets the "retry_policy" field.
func (_u *WorkflowStepUpdate) SetRetryPolicy(v map[string]interface{}) *WorkflowStepUpdate {
	_u.mutation.SetRetryPolicy(v)
	return _u
}

// ClearRetryPolicy clears the value of the "retry_policy" field.
func (_u *WorkflowStepUpdate) ClearRetryPolicy() *WorkflowStepUpdate {
	_u.mutation.ClearRetryPolicy()
	return _u
}

// Mutation returns the WorkflowStepMutation object of the builder.
func (_u *WorkflowStepUpdate) Mutation() *WorkflowStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowStepUpdate) check() error {
	if v, ok := _u.mutation.StepType(); ok {
		if err := workflowstep.StepTypeValidator(v); err != nil {
			return &ValidationError{Name: "step_type", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.step_type": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowStep.workflow"`)
	}
	return nil
}

func (_u *WorkflowStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowstep.Table, workflowstep.Columns, sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workflowstep.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepType(); ok {
		_spec.SetField(workflowstep.FieldStepType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(workflowstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(workflowstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DependsOnSteps(); ok {
		_spec.SetField(workflowstep.FieldDependsOnSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOnSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowstep.FieldDependsOnSteps, value)
		})
	}
	if _u.mutation.DependsOnStepsCleared() {
		_spec.ClearField(workflowstep.FieldDependsOnSteps, field.TypeJSON)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(workflowstep.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(workflowstep.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.RetryPolicy(); ok {
		_spec.SetField(workflowstep.FieldRetryPolicy, field.TypeJSON, value)
	}
	if _u.mutation.RetryPolicyCleared() {
		_spec.ClearField(workflowstep.FieldRetryPolicy, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowStepUpdateOne is the builder for updating a single WorkflowStep entity.
type WorkflowStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowStepMutation
}

// SetName sets the "name" field.
func (_u *WorkflowStepUpdateOne) SetName(v string) *WorkflowStepUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableName(v *string) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStepType sets the "step_type" field.
func (_u *WorkflowStepUpdateOne) SetStepType(v workflowstep.StepType) *WorkflowStepUpdateOne {
	_u.mutation.SetStepType(v)
	return _u
}

// SetNillableStepType sets the "step_type" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableStepType(v *workflowstep.StepType) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetStepType(*v)
	}
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *WorkflowStepUpdateOne) SetStepOrder(v int) *WorkflowStepUpdateOne {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableStepOrder(v *int) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *WorkflowStepUpdateOne) AddStepOrder(v int) *WorkflowStepUpdateOne {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetDependsOnSteps sets the "depends_on_steps" field.
func (_u *WorkflowStepUpdateOne) SetDependsOnSteps(v []string) *WorkflowStepUpdateOne {
	_u.mutation.SetDependsOnSteps(v)
	return _u
}

// AppendDependsOnSteps appends value to the "depends_on_steps" field.
func (_u *WorkflowStepUpdateOne) AppendDependsOnSteps(v []string) *WorkflowStepUpdateOne {
	_u.mutation.AppendDependsOnSteps(v)
	return _u
}

// ClearDependsOnSteps clears the value of the "depends_on_steps" field.
func (_u *WorkflowStepUpdateOne) ClearDependsOnSteps() *WorkflowStepUpdateOne {
	_u.mutation.ClearDependsOnSteps()
	return _u
}

// SetConfig sets the "config" field.
func (_u *WorkflowStepUpdateOne) SetConfig(v map[string]interface{}) *WorkflowStepUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *WorkflowStepUpdateOne) ClearConfig() *WorkflowStepUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetRetryPolicy sets the "retry_policy" field.
func (_u *WorkflowStepUpdateOne) SetRetryPolicy(v map[string]interface{}) *WorkflowStepUpdateOne {
	_u.mutation.SetRetryPolicy(v)
	return _u
}

// ClearRetryPolicy clears the value of the "retry_policy" field.
func (_u *WorkflowStepUpdateOne) ClearRetryPolicy() *WorkflowStepUpdateOne {
	_u.mutation.ClearRetryPolicy()
	return _u
}

// Mutation returns the WorkflowStepMutation object of the builder.
func (_u *WorkflowStepUpdateOne) Mutation() *WorkflowStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowStepUpdate builder.
func (_u *WorkflowStepUpdateOne) Where(ps ...predicate.WorkflowStep) *WorkflowStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowStepUpdateOne) Select(field string, fields ...string) *WorkflowStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowStep entity.
func (_u *WorkflowStepUpdateOne) Save(ctx context.Context) (*WorkflowStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowStepUpdateOne) SaveX(ctx context.Context) *WorkflowStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowStepUpdateOne) check() error {
	if v, ok := _u.mutation.StepType(); ok {
		if err := workflowstep.StepTypeValidator(v); err != nil {
			return &ValidationError{Name: "step_type", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.step_type": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowStep.workflow"`)
	}
	return nil
}

func (_u *WorkflowStepUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowstep.Table, workflowstep.Columns, sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowstep.FieldID)
		for _, f := range fields {
			if !workflowstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowstep.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workflowstep.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepType(); ok {
		_spec.SetField(workflowstep.FieldStepType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(workflowstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(workflowstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DependsOnSteps(); ok {
		_spec.SetField(workflowstep.FieldDependsOnSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOnSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowstep.FieldDependsOnSteps, value)
		})
	}
	if _u.mutation.DependsOnStepsCleared() {
		_spec.ClearField(workflowstep.FieldDependsOnSteps, field.TypeJSON)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(workflowstep.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(workflowstep.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.RetryPolicy(); ok {
		_spec.SetField(workflowstep.FieldRetryPolicy, field.TypeJSON, value)
	}
	if _u.mutation.RetryPolicyCleared() {
		_spec.ClearField(workflowstep.FieldRetryPolicy, field.TypeJSON)
	}
	_node = &WorkflowStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
