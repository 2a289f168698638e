// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mgx-dev/mgx/ent/workflowexecution"
	"github.com/mgx-dev/mgx/ent/workflowstepexecution"
)

// WorkflowStepExecutionCreate is the builder for creating a WorkflowStepExecution entity.
type WorkflowStepExecutionCreate struct {
	config
	mutation *WorkflowStepExecutionMutation
	hooks    []Hook
}

// SetExecutionID sets the "execution_id" field.
func (_c *WorkflowStepExecutionCreate) SetExecutionID(v string) *WorkflowStepExecutionCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *WorkflowStepExecutionCreate) SetStepID(v string) *WorkflowStepExecutionCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkflowStepExecutionCreate) SetStatus(v workflowstepexecution.Status) *WorkflowStepExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkflowStepExecutionCreate) SetNillableStatus(v *workflowstepexecution.Status) *WorkflowStepExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *WorkflowStepExecutionCreate) SetStartedAt(v time.Time) *WorkflowStepExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *WorkflowStepExecutionCreate) SetNillableStartedAt(v *time.Time) *WorkflowStepExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *WorkflowStepExecutionCreate) SetCompletedAt(v time.Time) *WorkflowStepExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *WorkflowStepExecutionCreate) SetNillableCompletedAt(v *time.Time) *WorkflowStepExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *WorkflowStepExecutionCreate) SetDurationMs(v int) *WorkflowStepExecutionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *WorkflowStepExecutionCreate) SetNillableDurationMs(v *int) *WorkflowStepExecutionCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetInput sets the "input" field.
func (_c *WorkflowStepExecutionCreate) SetInput(v map[string]interface{}) *WorkflowStepExecutionCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *WorkflowStepExecutionCreate) SetOutput(v map[string]interface{}) *WorkflowStepExecutionCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *WorkflowStepExecutionCreate) SetRetryCount(v int) *WorkflowStepExecutionCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *WorkflowStepExecutionCreate) SetNillableRetryCount(v *int) *WorkflowStepExecutionCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetWaitingApprovalID sets the "waiting_approval_id" field.
func (_c *WorkflowStepExecutionCreate) SetWaitingApprovalID(v string) *WorkflowStepExecutionCreate {
	_c.mutation.SetWaitingApprovalID(v)
	return _c
}

// SetNillableWaitingApprovalID sets the "waiting_approval_id" field if the given value is not nil.
func (_c *WorkflowStepExecutionCreate) SetNillableWaitingApprovalID(v *string) *WorkflowStepExecutionCreate {
	if v != nil {
		_c.SetWaitingApprovalID(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *WorkflowStepExecutionCreate) SetErrorKind(v string) *WorkflowStepExecutionCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *WorkflowStepExecutionCreate) SetNillableErrorKind(v *string) *WorkflowStepExecutionCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *WorkflowStepExecutionCreate) SetErrorMessage(v string) *WorkflowStepExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *WorkflowStepExecutionCreate) SetNillableErrorMessage(v *string) *WorkflowStepExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowStepExecutionCreate) SetID(v string) *WorkflowStepExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetExecution sets the "execution" edge to the WorkflowExecution entity.
func (_c *WorkflowStepExecutionCreate) SetExecution(v *WorkflowExecution) *WorkflowStepExecutionCreate {
	return _c.SetExecutionID(v.ID)
}

// Mutation returns the WorkflowStepExecutionMutation object of the builder.
func (_c *WorkflowStepExecutionCreate) Mutation() *WorkflowStepExecutionMutation {
	return _c.mutation
}

// Save creates the WorkflowStepExecution in the database.
func (_c *WorkflowStepExecutionCreate) Save(ctx context.Context) (*WorkflowStepExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowStepExecutionCreate) SaveX(ctx context.Context) *WorkflowStepExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowStepExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowStepExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowStepExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := workflowstepexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := workflowstepexecution.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowStepExecutionCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "WorkflowStepExecution.execution_id"`)}
	}
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "WorkflowStepExecution.step_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkflowStepExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workflowstepexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowStepExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "WorkflowStepExecution.retry_count"`)}
	}
	if len(_c.mutation.ExecutionIDs()) == 0 {
		return &ValidationError{Name: "execution", err: errors.New(`ent: missing required edge "WorkflowStepExecution.execution"`)}
	}
	return nil
}

func (_c *WorkflowStepExecutionCreate) sqlSave(ctx context.Context) (*WorkflowStepExecution, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected WorkflowStepExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowStepExecutionCreate) createSpec() (*WorkflowStepExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowStepExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowstepexecution.Table, sqlgraph.NewFieldSpec(workflowstepexecution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(workflowstepexecution.FieldStepID, field.TypeString, value)
		_node.StepID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workflowstepexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(workflowstepexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(workflowstepexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(workflowstepexecution.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(workflowstepexecution.FieldInput, field.TypeJSON, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(workflowstepexecution.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(workflowstepexecution.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.WaitingApprovalID(); ok {
		_spec.SetField(workflowstepexecution.FieldWaitingApprovalID, field.TypeString, value)
		_node.WaitingApprovalID = &value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(workflowstepexecution.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowstepexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.ExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowstepexecution.ExecutionTable,
			Columns: []string{workflowstepexecution.ExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ExecutionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkflowStepExecutionCreateBulk is the builder for creating many WorkflowStepExecution entities in bulk.
type WorkflowStepExecutionCreateBulk struct {
	config
	err      error
	builders []*WorkflowStepExecutionCreate
}

// Save creates the WorkflowStepExecution entities in the database.
func (_c *WorkflowStepExecutionCreateBulk) Save(ctx context.Context) ([]*WorkflowStepExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowStepExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowStepExecutionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WorkflowStepExecutionCreateBulk) SaveX(ctx context.Context) []*WorkflowStepExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowStepExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowStepExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
