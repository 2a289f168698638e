// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mgx-dev/mgx/ent/predicate"
	"github.com/mgx-dev/mgx/ent/sandboxexecution"
)

// SandboxExecutionDelete is the builder for deleting a SandboxExecution entity.
type SandboxExecutionDelete struct {
	config
	hooks    []Hook
	mutation *SandboxExecutionMutation
}

// Where appends a list predicates to the SandboxExecutionDelete builder.
func (_d *SandboxExecutionDelete) Where(ps ...predicate.SandboxExecution) *SandboxExecutionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SandboxExecutionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SandboxExecutionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SandboxExecutionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(sandboxexecution.Table, sqlgraph.NewFieldSpec(sandboxexecution.FieldID, field.TypeString))
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

// SandboxExecutionDeleteOne is the builder for deleting a single SandboxExecution entity.
type SandboxExecutionDeleteOne struct {
	_d *SandboxExecutionDelete
}

// Where appends a list predicates to the SandboxExecutionDelete builder.
func (_d *SandboxExecutionDeleteOne) Where(ps ...predicate.SandboxExecution) *SandboxExecutionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SandboxExecutionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{sandboxexecution.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SandboxExecutionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
