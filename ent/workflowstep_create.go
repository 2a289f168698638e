// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mgx-dev/mgx/ent/workflow"
	"github.com/mgx-dev/mgx/ent/workflowstep"
)

// WorkflowStepCreate is the builder for creating a WorkflowStep entity.
type WorkflowStepCreate struct {
	config
	mutation *WorkflowStepMutation
	hooks    []Hook
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *WorkflowStepCreate) SetWorkflowID(v string) *WorkflowStepCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *WorkflowStepCreate) SetName(v string) *WorkflowStepCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStepType sets the "step_type" field.
func (_c *WorkflowStepCreate) SetStepType(v workflowstep.StepType) *WorkflowStepCreate {
	_c.mutation.SetStepType(v)
	return _c
}

// SetStepOrder sets the "step_order" field.
func (_c *WorkflowStepCreate) SetStepOrder(v int) *WorkflowStepCreate {
	_c.mutation.SetStepOrder(v)
	return _c
}

// SetDependsOnSteps sets the "depends_on_steps" field.
func (_c *WorkflowStepCreate) SetDependsOnSteps(v []string) *WorkflowStepCreate {
	_c.mutation.SetDependsOnSteps(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *WorkflowStepCreate) SetConfig(v map[string]interface{}) *WorkflowStepCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetRetryPolicy sets the "retry_policy" field.
func (_c *WorkflowStepCreate) SetRetryPolicy(v map[string]interface{}) *WorkflowStepCreate {
	_c.mutation.SetRetryPolicy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowStepCreate) SetID(v string) *WorkflowStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_c *WorkflowStepCreate) SetWorkflow(v *Workflow) *WorkflowStepCreate {
	return _c.SetWorkflowID(v.ID)
}

// Mutation returns the WorkflowStepMutation object of the builder.
func (_c *WorkflowStepCreate) Mutation() *WorkflowStepMutation {
	return _c.mutation
}

// Save creates the WorkflowStep in the database.
func (_c *WorkflowStepCreate) Save(ctx context.Context) (*WorkflowStep, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowStepCreate) SaveX(ctx context.Context) *WorkflowStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowStepCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "WorkflowStep.workflow_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "WorkflowStep.name"`)}
	}
	if _, ok := _c.mutation.StepType(); !ok {
		return &ValidationError{Name: "step_type", err: errors.New(`ent: missing required field "WorkflowStep.step_type"`)}
	}
	if v, ok := _c.mutation.StepType(); ok {
		if err := workflowstep.StepTypeValidator(v); err != nil {
			return &ValidationError{Name: "step_type", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.step_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepOrder(); !ok {
		return &ValidationError{Name: "step_order", err: errors.New(`ent: missing required field "WorkflowStep.step_order"`)}
	}
	if len(_c.mutation.WorkflowIDs()) == 0 {
		return &ValidationError{Name: "workflow", err: errors.New(`ent: missing required edge "WorkflowStep.workflow"`)}
	}
	return nil
}

func (_c *WorkflowStepCreate) sqlSave(ctx context.Context) (*WorkflowStep, error) {
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
			return nil, fmt.Errorf("unexpected WorkflowStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowStepCreate) createSpec() (*WorkflowStep, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowstep.Table, sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(workflowstep.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.StepType(); ok {
		_spec.SetField(workflowstep.FieldStepType, field.TypeEnum, value)
		_node.StepType = value
	}
	if value, ok := _c.mutation.StepOrder(); ok {
		_spec.SetField(workflowstep.FieldStepOrder, field.TypeInt, value)
		_node.StepOrder = value
	}
	if value, ok := _c.mutation.DependsOnSteps(); ok {
		_spec.SetField(workflowstep.FieldDependsOnSteps, field.TypeJSON, value)
		_node.DependsOnSteps = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(workflowstep.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.RetryPolicy(); ok {
		_spec.SetField(workflowstep.FieldRetryPolicy, field.TypeJSON, value)
		_node.RetryPolicy = value
	}
	if nodes := _c.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowstep.WorkflowTable,
			Columns: []string{workflowstep.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkflowID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkflowStepCreateBulk is the builder for creating many WorkflowStep entities in bulk.
type WorkflowStepCreateBulk struct {
	config
	err      error
	builders []*WorkflowStepCreate
}

// Save creates the WorkflowStep entities in the database.
func (_c *WorkflowStepCreateBulk) Save(ctx context.Context) ([]*WorkflowStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowStepMutation)
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
func (_c *WorkflowStepCreateBulk) SaveX(ctx context.Context) []*WorkflowStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
