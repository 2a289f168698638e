// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mgx-dev/mgx/ent/agentcontextversion"
	"github.com/mgx-dev/mgx/ent/predicate"
)

// AgentContextVersionUpdate is the builder for updating AgentContextVersion entities.
type AgentContextVersionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentContextVersionMutation
}

// Where appends a list predicates to the AgentContextVersionUpdate builder.
func (_u *AgentContextVersionUpdate) Where(ps ...predicate.AgentContextVersion) *AgentContextVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the AgentContextVersionMutation object of the builder.
func (_u *AgentContextVersionUpdate) Mutation() *AgentContextVersionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentContextVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentContextVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentContextVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentContextVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentContextVersionUpdate) check() error {
	if _u.mutation.ContextCleared() && len(_u.mutation.ContextIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentContextVersion.context"`)
	}
	return nil
}

func (_u *AgentContextVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentcontextversion.Table, agentcontextversion.Columns, sqlgraph.NewFieldSpec(agentcontextversion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.WrittenByCleared() {
		_spec.ClearField(agentcontextversion.FieldWrittenBy, field.TypeString)
	}
	if _u.mutation.RolledBackFromCleared() {
		_spec.ClearField(agentcontextversion.FieldRolledBackFrom, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentcontextversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentContextVersionUpdateOne is the builder for updating a single AgentContextVersion entity.
type AgentContextVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentContextVersionMutation
}

// Mutation returns the AgentContextVersionMutation object of the builder.
func (_u *AgentContextVersionUpdateOne) Mutation() *AgentContextVersionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentContextVersionUpdate builder.
func (_u *AgentContextVersionUpdateOne) Where(ps ...predicate.AgentContextVersion) *AgentContextVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentContextVersionUpdateOne) Select(field string, fields ...string) *AgentContextVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentContextVersion entity.
func (_u *AgentContextVersionUpdateOne) Save(ctx context.Context) (*AgentContextVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentContextVersionUpdateOne) SaveX(ctx context.Context) *AgentContextVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentContextVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentContextVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentContextVersionUpdateOne) check() error {
	if _u.mutation.ContextCleared() && len(_u.mutation.ContextIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentContextVersion.context"`)
	}
	return nil
}

func (_u *AgentContextVersionUpdateOne) sqlSave(ctx context.Context) (_node *AgentContextVersion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentcontextversion.Table, agentcontextversion.Columns, sqlgraph.NewFieldSpec(agentcontextversion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentContextVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentcontextversion.FieldID)
		for _, f := range fields {
			if !agentcontextversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentcontextversion.FieldID {
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
	if _u.mutation.WrittenByCleared() {
		_spec.ClearField(agentcontextversion.FieldWrittenBy, field.TypeString)
	}
	if _u.mutation.RolledBackFromCleared() {
		_spec.ClearField(agentcontextversion.FieldRolledBackFrom, field.TypeInt)
	}
	_node = &AgentContextVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentcontextversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
