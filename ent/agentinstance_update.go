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
	"github.com/mgx-dev/mgx/ent/agentinstance"
	"github.com/mgx-dev/mgx/ent/predicate"
)

// AgentInstanceUpdate is the builder for updating AgentInstance entities.
type AgentInstanceUpdate struct {
	config
	hooks    []Hook
	mutation *AgentInstanceMutation
}

// Where appends a list predicates to the AgentInstanceUpdate builder.
func (_u *AgentInstanceUpdate) Where(ps ...predicate.AgentInstance) *AgentInstanceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentInstanceUpdate) SetStatus(v agentinstance.Status) *AgentInstanceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentInstanceUpdate) SetNillableStatus(v *agentinstance.Status) *AgentInstanceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetActiveSteps sets the "active_steps" field.
func (_u *AgentInstanceUpdate) SetActiveSteps(v int) *AgentInstanceUpdate {
	_u.mutation.ResetActiveSteps()
	_u.mutation.SetActiveSteps(v)
	return _u
}

// SetNillableActiveSteps sets the "active_steps" field if the given value is not nil.
func (_u *AgentInstanceUpdate) SetNillableActiveSteps(v *int) *AgentInstanceUpdate {
	if v != nil {
		_u.SetActiveSteps(*v)
	}
	return _u
}

// AddActiveSteps adds value to the "active_steps" field.
func (_u *AgentInstanceUpdate) AddActiveSteps(v int) *AgentInstanceUpdate {
	_u.mutation.AddActiveSteps(v)
	return _u
}

// SetLastAssignedAt sets the "last_assigned_at" field.
func (_u *AgentInstanceUpdate) SetLastAssignedAt(v time.Time) *AgentInstanceUpdate {
	_u.mutation.SetLastAssignedAt(v)
	return _u
}

// SetNillableLastAssignedAt sets the "last_assigned_at" field if the given value is not nil.
func (_u *AgentInstanceUpdate) SetNillableLastAssignedAt(v *time.Time) *AgentInstanceUpdate {
	if v != nil {
		_u.SetLastAssignedAt(*v)
	}
	return _u
}

// ClearLastAssignedAt clears the value of the "last_assigned_at" field.
func (_u *AgentInstanceUpdate) ClearLastAssignedAt() *AgentInstanceUpdate {
	_u.mutation.ClearLastAssignedAt()
	return _u
}

// Mutation returns the AgentInstanceMutation object of the builder.
func (_u *AgentInstanceUpdate) Mutation() *AgentInstanceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentInstanceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentInstanceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentInstanceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentInstanceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentInstanceUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentinstance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentInstance.status": %w`, err)}
		}
	}
	if _u.mutation.DefinitionCleared() && len(_u.mutation.DefinitionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentInstance.definition"`)
	}
	return nil
}

func (_u *AgentInstanceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentinstance.Table, agentinstance.Columns, sqlgraph.NewFieldSpec(agentinstance.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentinstance.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActiveSteps(); ok {
		_spec.SetField(agentinstance.FieldActiveSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActiveSteps(); ok {
		_spec.AddField(agentinstance.FieldActiveSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAssignedAt(); ok {
		_spec.SetField(agentinstance.FieldLastAssignedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAssignedAtCleared() {
		_spec.ClearField(agentinstance.FieldLastAssignedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentinstance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentInstanceUpdateOne is the builder for updating a single AgentInstance entity.
type AgentInstanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentInstanceMutation
}

// SetStatus sets the "status" field.
func (_u *AgentInstanceUpdateOne) SetStatus(v agentinstance.Status) *AgentInstanceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentInstanceUpdateOne) SetNillableStatus(v *agentinstance.Status) *AgentInstanceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetActiveSteps sets the "active_steps" field.
func (_u *AgentInstanceUpdateOne) SetActiveSteps(v int) *AgentInstanceUpdateOne {
	_u.mutation.ResetActiveSteps()
	_u.mutation.SetActiveSteps(v)
	return _u
}

// SetNillableActiveSteps sets the "active_steps" field if the given value is not nil.
func (_u *AgentInstanceUpdateOne) SetNillableActiveSteps(v *int) *AgentInstanceUpdateOne {
	if v != nil {
		_u.SetActiveSteps(*v)
	}
	return _u
}

// AddActiveSteps adds value to the "active_steps" field.
func (_u *AgentInstanceUpdateOne) AddActiveSteps(v int) *AgentInstanceUpdateOne {
	_u.mutation.AddActiveSteps(v)
	return _u
}

// SetLastAssignedAt sets the "last_assigned_at" field.
func (_u *AgentInstanceUpdateOne) SetLastAssignedAt(v time.Time) *AgentInstanceUpdateOne {
	_u.mutation.SetLastAssignedAt(v)
	return _u
}

// SetNillableLastAssignedAt sets the "last_assigned_at" field if the given value is not nil.
func (_u *AgentInstanceUpdateOne) SetNillableLastAssignedAt(v *time.Time) *AgentInstanceUpdateOne {
	if v != nil {
		_u.SetLastAssignedAt(*v)
	}
	return _u
}

// ClearLastAssignedAt clears the value of the "last_assigned_at" field.
func (_u *AgentInstanceUpdateOne) ClearLastAssignedAt() *AgentInstanceUpdateOne {
	_u.mutation.ClearLastAssignedAt()
	return _u
}

// Mutation returns the AgentInstanceMutation object of the builder.
func (_u *AgentInstanceUpdateOne) Mutation() *AgentInstanceMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentInstanceUpdate builder.
func (_u *AgentInstanceUpdateOne) Where(ps ...predicate.AgentInstance) *AgentInstanceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentInstanceUpdateOne) Select(field string, fields ...string) *AgentInstanceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentInstance entity.
func (_u *AgentInstanceUpdateOne) Save(ctx context.Context) (*AgentInstance, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentInstanceUpdateOne) SaveX(ctx context.Context) *AgentInstance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentInstanceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentInstanceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentInstanceUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentinstance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentInstance.status": %w`, err)}
		}
	}
	if _u.mutation.DefinitionCleared() && len(_u.mutation.DefinitionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentInstance.definition"`)
	}
	return nil
}

func (_u *AgentInstanceUpdateOne) sqlSave(ctx context.Context) (_node *AgentInstance, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentinstance.Table, agentinstance.Columns, sqlgraph.NewFieldSpec(agentinstance.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentInstance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentinstance.FieldID)
		for _, f := range fields {
			if !agentinstance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentinstance.FieldID {
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
		_spec.SetField(agentinstance.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActiveSteps(); ok {
		_spec.SetField(agentinstance.FieldActiveSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActiveSteps(); ok {
		_spec.AddField(agentinstance.FieldActiveSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAssignedAt(); ok {
		_spec.SetField(agentinstance.FieldLastAssignedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAssignedAtCleared() {
		_spec.ClearField(agentinstance.FieldLastAssignedAt, field.TypeTime)
	}
	_node = &AgentInstance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentinstance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
