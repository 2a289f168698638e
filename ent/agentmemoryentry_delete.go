// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mgx-dev/mgx/ent/agentmemoryentry"
	"github.com/mgx-dev/mgx/ent/predicate"
)

// AgentMemoryEntryDelete is the builder for deleting a AgentMemoryEntry entity.
type AgentMemoryEntryDelete struct {
	config
	hooks    []Hook
	mutation *AgentMemoryEntryMutation
}

// Where appends a list predicates to the AgentMemoryEntryDelete builder.
func (_d *AgentMemoryEntryDelete) Where(ps ...predicate.AgentMemoryEntry) *AgentMemoryEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AgentMemoryEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AgentMemoryEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AgentMemoryEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(agentmemoryentry.Table, sqlgraph.NewFieldSpec(agentmemoryentry.FieldID, field.TypeString))
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

// AgentMemoryEntryDeleteOne is the builder for deleting a single AgentMemoryEntry entity.
type AgentMemoryEntryDeleteOne struct {
	_d *AgentMemoryEntryDelete
}

// Where appends a list predicates to the AgentMemoryEntryDelete builder.
func (_d *AgentMemoryEntryDeleteOne) Where(ps ...predicate.AgentMemoryEntry) *AgentMemoryEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AgentMemoryEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{agentmemoryentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AgentMemoryEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
