// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mgx-dev/mgx/ent/agentdefinition"
	"github.com/mgx-dev/mgx/ent/agentinstance"
)

// AgentInstanceCreate is the builder for creating a AgentInstance entity.
type AgentInstanceCreate struct {
	config
	mutation *AgentInstanceMutation
	hooks    []Hook
}

// SetAgentDefinitionID sets the "agent_definition_id" field.
func (_c *AgentInstanceCreate) SetAgentDefinitionID(v string) *AgentInstanceCreate {
	_c.mutation.SetAgentDefinitionID(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *AgentInstanceCreate) SetWorkspaceID(v string) *AgentInstanceCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentInstanceCreate) SetStatus(v agentinstance.Status) *AgentInstanceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentInstanceCreate) SetNillableStatus(v *agentinstance.Status) *AgentInstanceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetActiveSteps sets the "active_steps" field.
func (_c *AgentInstanceCreate) SetActiveSteps(v int) *AgentInstanceCreate {
	_c.mutation.SetActiveSteps(v)
	return _c
}

// SetNillableActiveSteps sets the "active_steps" field if the given value is not nil.
func (_c *AgentInstanceCreate) SetNillableActiveSteps(v *int) *AgentInstanceCreate {
	if v != nil {
		_c.SetActiveSteps(*v)
	}
	return _c
}

// SetLastAssignedAt sets the "last_assigned_at" field.
func (_c *AgentInstanceCreate) SetLastAssignedAt(v time.Time) *AgentInstanceCreate {
	_c.mutation.SetLastAssignedAt(v)
	return _c
}

// SetNillableLastAssignedAt sets the "last_assigned_at" field if the given value is not nil.
func (_c *AgentInstanceCreate) SetNillableLastAssignedAt(v *time.Time) *AgentInstanceCreate {
	if v != nil {
		_c.SetLastAssignedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentInstanceCreate) SetCreatedAt(v time.Time) *AgentInstanceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentInstanceCreate) SetNillableCreatedAt(v *time.Time) *AgentInstanceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentInstanceCreate) SetID(v string) *AgentInstanceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDefinitionID sets the "definition" edge to the AgentDefinition entity by ID.
func (_c *AgentInstanceCreate) SetDefinitionID(id string) *AgentInstanceCreate {
	_c.mutation.SetDefinitionID(id)
	return _c
}

// SetDefinition sets the "definition" edge to the AgentDefinition entity.
func (_c *AgentInstanceCreate) SetDefinition(v *AgentDefinition) *AgentInstanceCreate {
	return _c.SetDefinitionID(v.ID)
}

// Mutation returns the AgentInstanceMutation object of the builder.
func (_c *AgentInstanceCreate) Mutation() *AgentInstanceMutation {
	return _c.mutation
}

// Save creates the AgentInstance in the database.
func (_c *AgentInstanceCreate) Save(ctx context.Context) (*AgentInstance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentInstanceCreate) SaveX(ctx context.Context) *AgentInstance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentInstanceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentInstanceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentInstanceCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentinstance.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ActiveSteps(); !ok {
		v := agentinstance.DefaultActiveSteps
		_c.mutation.SetActiveSteps(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentinstance.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentInstanceCreate) check() error {
	if _, ok := _c.mutation.AgentDefinitionID(); !ok {
		return &ValidationError{Name: "agent_definition_id", err: errors.New(`ent: missing required field "AgentInstance.agent_definition_id"`)}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "AgentInstance.workspace_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentInstance.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentinstance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentInstance.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActiveSteps(); !ok {
		return &ValidationError{Name: "active_steps", err: errors.New(`ent: missing required field "AgentInstance.active_steps"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentInstance.created_at"`)}
	}
	if len(_c.mutation.DefinitionIDs()) == 0 {
		return &ValidationError{Name: "definition", err: errors.New(`ent: missing required edge "AgentInstance.definition"`)}
	}
	return nil
}

func (_c *AgentInstanceCreate) sqlSave(ctx context.Context) (*AgentInstance, error) {
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
			return nil, fmt.Errorf("unexpected AgentInstance.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentInstanceCreate) createSpec() (*AgentInstance, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentInstance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentinstance.Table, sqlgraph.NewFieldSpec(agentinstance.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(agentinstance.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentinstance.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ActiveSteps(); ok {
		_spec.SetField(agentinstance.FieldActiveSteps, field.TypeInt, value)
		_node.ActiveSteps = value
	}
	if value, ok := _c.mutation.LastAssignedAt(); ok {
		_spec.SetField(agentinstance.FieldLastAssignedAt, field.TypeTime, value)
		_node.LastAssignedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentinstance.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DefinitionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentinstance.DefinitionTable,
			Columns: []string{agentinstance.DefinitionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentdefinition.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentDefinitionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentInstanceCreateBulk is the builder for creating many AgentInstance entities in bulk.
type AgentInstanceCreateBulk struct {
	config
	err      error
	builders []*AgentInstanceCreate
}

// Save creates the AgentInstance entities in the database.
func (_c *AgentInstanceCreateBulk) Save(ctx context.Context) ([]*AgentInstance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentInstance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentInstanceMutation)
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
func (_c *AgentInstanceCreateBulk) SaveX(ctx context.Context) []*AgentInstance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentInstanceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentInstanceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
