// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mgx-dev/mgx/ent/agentcontextversion"
	"github.com/mgx-dev/mgx/ent/predicate"
)

// AgentContextVersionDelete is the builder for deleting a AgentContextVersion entity.
type AgentContextVersionDelete struct {
	config
	hooks    []Hook
	mutation *AgentContextVersionMutation
}

// Where appends a list predicates to the AgentContextVersionDelete builder.
func (_d *AgentContextVersionDelete) Where(ps ...predicate.AgentContextVersion) *AgentContextVersionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AgentContextVersionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AgentContextVersionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AgentContextVersionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(agentcontextversion.Table, sqlgraph.NewFieldSpec(agentcontextversion.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AgentContextVersionDeleteOne is the builder for deleting a single AgentContextVersion entity.
type AgentContextVersionDeleteOne struct {
	_d *AgentContextVersionDelete
}

// Where appends a list predicates to the AgentContextVersionDelete builder.
func (_d *AgentContextVersionDeleteOne) Where(ps ...predicate.AgentContextVersion) *AgentContextVersionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AgentContextVersionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{agentcontextversion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AgentContextVersionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
