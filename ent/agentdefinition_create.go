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

// AgentDefinitionCreate is the builder for creating a AgentDefinition entity.
type AgentDefinitionCreate struct {
	config
	mutation *AgentDefinitionMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *AgentDefinitionCreate) SetWorkspaceID(v string) *AgentDefinitionCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AgentDefinitionCreate) SetName(v string) *AgentDefinitionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *AgentDefinitionCreate) SetRole(v agentdefinition.Role) *AgentDefinitionCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetCapabilities sets the "capabilities" field.
func (_c *AgentDefinitionCreate) SetCapabilities(v []string) *AgentDefinitionCreate {
	_c.mutation.SetCapabilities(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *AgentDefinitionCreate) SetModel(v string) *AgentDefinitionCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *AgentDefinitionCreate) SetNillableModel(v *string) *AgentDefinitionCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *AgentDefinitionCreate) SetSystemPrompt(v string) *AgentDefinitionCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_c *AgentDefinitionCreate) SetNillableSystemPrompt(v *string) *AgentDefinitionCreate {
	if v != nil {
		_c.SetSystemPrompt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentDefinitionCreate) SetCreatedAt(v time.Time) *AgentDefinitionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentDefinitionCreate) SetNillableCreatedAt(v *time.Time) *AgentDefinitionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentDefinitionCreate) SetID(v string) *AgentDefinitionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddInstanceIDs adds the "instances" edge to the AgentInstance entity by IDs.
func (_c *AgentDefinitionCreate) AddInstanceIDs(ids ...string) *AgentDefinitionCreate {
	_c.mutation.AddInstanceIDs(ids...)
	return _c
}

// AddInstances adds the "instances" edges to the AgentInstance entity.
func (_c *AgentDefinitionCreate) AddInstances(v ...*AgentInstance) *AgentDefinitionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInstanceIDs(ids...)
}

// Mutation returns the AgentDefinitionMutation object of the builder.
func (_c *AgentDefinitionCreate) Mutation() *AgentDefinitionMutation {
	return _c.mutation
}

// Save creates the AgentDefinition in the database.
func (_c *AgentDefinitionCreate) Save(ctx context.Context) (*AgentDefinition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentDefinitionCreate) SaveX(ctx context.Context) *AgentDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentDefinitionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentDefinitionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentDefinitionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentdefinition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentDefinitionCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "AgentDefinition.workspace_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AgentDefinition.name"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "AgentDefinition.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := agentdefinition.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "AgentDefinition.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentDefinition.created_at"`)}
	}
	return nil
}

func (_c *AgentDefinitionCreate) sqlSave(ctx context.Context) (*AgentDefinition, error) {
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
			return nil, fmt.Errorf("unexpected AgentDefinition.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentDefinitionCreate) createSpec() (*AgentDefinition, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentDefinition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentdefinition.Table, sqlgraph.NewFieldSpec(agentdefinition.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(agentdefinition.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(agentdefinition.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(agentdefinition.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Capabilities(); ok {
		_spec.SetField(agentdefinition.FieldCapabilities, field.TypeJSON, value)
		_node.Capabilities = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(agentdefinition.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(agentdefinition.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentdefinition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.InstancesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentdefinition.InstancesTable,
			Columns: []string{agentdefinition.InstancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentinstance.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentDefinitionCreateBulk is the builder for creating many AgentDefinition entities in bulk.
type AgentDefinitionCreateBulk struct {
	config
	err      error
	builders []*AgentDefinitionCreate
}

// Save creates the AgentDefinition entities in the database.
func (_c *AgentDefinitionCreateBulk) Save(ctx context.Context) ([]*AgentDefinition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentDefinition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentDefinitionMutation)
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
func (_c *AgentDefinitionCreateBulk) SaveX(ctx context.Context) []*AgentDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentDefinitionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentDefinitionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
