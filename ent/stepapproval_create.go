// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mgx-dev/mgx/ent/stepapproval"
	"github.com/mgx-dev/mgx/ent/workflowexecution"
)

// StepApprovalCreate is the builder for creating a StepApproval entity.
type StepApprovalCreate struct {
	config
	mutation *StepApprovalMutation
	hooks    []Hook
}

// SetStepExecutionID sets the "step_execution_id" field.
func (_c *StepApprovalCreate) SetStepExecutionID(v string) *StepApprovalCreate {
	_c.mutation.SetStepExecutionID(v)
	return _c
}

// SetExecutionID sets the "execution_id" field.
func (_c *StepApprovalCreate) SetExecutionID(v string) *StepApprovalCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *StepApprovalCreate) SetStatus(v stepapproval.Status) *StepApprovalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StepApprovalCreate) SetNillableStatus(v *stepapproval.Status) *StepApprovalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *StepApprovalCreate) SetTitle(v string) *StepApprovalCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *StepApprovalCreate) SetDescription(v string) *StepApprovalCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *StepApprovalCreate) SetNillableDescription(v *string) *StepApprovalCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetApprovalData sets the "approval_data" field.
func (_c *StepApprovalCreate) SetApprovalData(v map[string]interface{}) *StepApprovalCreate {
	_c.mutation.SetApprovalData(v)
	return _c
}

// SetApprover sets the "approver" field.
func (_c *StepApprovalCreate) SetApprover(v string) *StepApprovalCreate {
	_c.mutation.SetApprover(v)
	return _c
}

// SetNillableApprover sets the "approver" field if the given value is not nil.
func (_c *StepApprovalCreate) SetNillableApprover(v *string) *StepApprovalCreate {
	if v != nil {
		_c.SetApprover(*v)
	}
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *StepApprovalCreate) SetFeedback(v string) *StepApprovalCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *StepApprovalCreate) SetNillableFeedback(v *string) *StepApprovalCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetResponseData sets the "response_data" field.
func (_c *StepApprovalCreate) SetResponseData(v map[string]interface{}) *StepApprovalCreate {
	_c.mutation.SetResponseData(v)
	return _c
}

// SetRequestedAt sets the "requested_at" field.
func (_c *StepApprovalCreate) SetRequestedAt(v time.Time) *StepApprovalCreate {
	_c.mutation.SetRequestedAt(v)
	return _c
}

// SetNillableRequestedAt sets the "requested_at" field if the given value is not nil.
func (_c *StepApprovalCreate) SetNillableRequestedAt(v *time.Time) *StepApprovalCreate {
	if v != nil {
		_c.SetRequestedAt(*v)
	}
	return _c
}

// SetRespondedAt sets the "responded_at" field.
func (_c *StepApprovalCreate) SetRespondedAt(v time.Time) *StepApprovalCreate {
	_c.mutation.SetRespondedAt(v)
	return _c
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_c *StepApprovalCreate) SetNillableRespondedAt(v *time.Time) *StepApprovalCreate {
	if v != nil {
		_c.SetRespondedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *StepApprovalCreate) SetExpiresAt(v time.Time) *StepApprovalCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetAutoApproveAfterSeconds sets the "auto_approve_after_seconds" field.
func (_c *StepApprovalCreate) SetAutoApproveAfterSeconds(v int) *StepApprovalCreate {
	_c.mutation.SetAutoApproveAfterSeconds(v)
	return _c
}

// SetNillableAutoApproveAfterSeconds sets the "auto_approve_after_seconds" field if the given value is not nil.
func (_c *StepApprovalCreate) SetNillableAutoApproveAfterSeconds(v *int) *StepApprovalCreate {
	if v != nil {
		_c.SetAutoApproveAfterSeconds(*v)
	}
	return _c
}

// SetRequiredApprovers sets the "required_approvers" field.
func (_c *StepApprovalCreate) SetRequiredApprovers(v []string) *StepApprovalCreate {
	_c.mutation.SetRequiredApprovers(v)
	return _c
}

// SetRevisionCount sets the "revision_count" field.
func (_c *StepApprovalCreate) SetRevisionCount(v int) *StepApprovalCreate {
	_c.mutation.SetRevisionCount(v)
	return _c
}

// SetNillableRevisionCount sets the "revision_count" field if the given value is not nil.
func (_c *StepApprovalCreate) SetNillableRevisionCount(v *int) *StepApprovalCreate {
	if v != nil {
		_c.SetRevisionCount(*v)
	}
	return _c
}

// SetParentApprovalID sets the "parent_approval_id" field.
func (_c *StepApprovalCreate) SetParentApprovalID(v string) *StepApprovalCreate {
	_c.mutation.SetParentApprovalID(v)
	return _c
}

// SetNillableParentApprovalID sets the "parent_approval_id" field if the given value is not nil.
func (_c *StepApprovalCreate) SetNillableParentApprovalID(v *string) *StepApprovalCreate {
	if v != nil {
		_c.SetParentApprovalID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StepApprovalCreate) SetID(v string) *StepApprovalCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetExecution sets the "execution" edge to the WorkflowExecution entity.
func (_c *StepApprovalCreate) SetExecution(v *WorkflowExecution) *StepApprovalCreate {
	return _c.SetExecutionID(v.ID)
}

// Mutation returns the StepApprovalMutation object of the builder.
func (_c *StepApprovalCreate) Mutation() *StepApprovalMutation {
	return _c.mutation
}

// Save creates the StepApproval in the database.
func (_c *StepApprovalCreate) Save(ctx context.Context) (*StepApproval, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepApprovalCreate) SaveX(ctx context.Context) *StepApproval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepApprovalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepApprovalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepApprovalCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := stepapproval.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RequestedAt(); !ok {
		v := stepapproval.DefaultRequestedAt()
		_c.mutation.SetRequestedAt(v)
	}
	if _, ok := _c.mutation.RevisionCount(); !ok {
		v := stepapproval.DefaultRevisionCount
		_c.mutation.SetRevisionCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepApprovalCreate) check() error {
	if _, ok := _c.mutation.StepExecutionID(); !ok {
		return &ValidationError{Name: "step_execution_id", err: errors.New(`ent: missing required field "StepApproval.step_execution_id"`)}
	}
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "StepApproval.execution_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StepApproval.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := stepapproval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepApproval.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "StepApproval.title"`)}
	}
	if _, ok := _c.mutation.RequestedAt(); !ok {
		return &ValidationError{Name: "requested_at", err: errors.New(`ent: missing required field "StepApproval.requested_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "StepApproval.expires_at"`)}
	}
	if _, ok := _c.mutation.RevisionCount(); !ok {
		return &ValidationError{Name: "revision_count", err: errors.New(`ent: missing required field "StepApproval.revision_count"`)}
	}
	if len(_c.mutation.ExecutionIDs()) == 0 {
		return &ValidationError{Name: "execution", err: errors.New(`ent: missing required edge "StepApproval.execution"`)}
	}
	return nil
}

func (_c *StepApprovalCreate) sqlSave(ctx context.Context) (*StepApproval, error) {
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
			return nil, fmt.Errorf("unexpected StepApproval.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StepApprovalCreate) createSpec() (*StepApproval, *sqlgraph.CreateSpec) {
	var (
		_node = &StepApproval{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stepapproval.Table, sqlgraph.NewFieldSpec(stepapproval.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepExecutionID(); ok {
		_spec.SetField(stepapproval.FieldStepExecutionID, field.TypeString, value)
		_node.StepExecutionID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(stepapproval.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(stepapproval.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(stepapproval.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ApprovalData(); ok {
		_spec.SetField(stepapproval.FieldApprovalData, field.TypeJSON, value)
		_node.ApprovalData = value
	}
	if value, ok := _c.mutation.Approver(); ok {
		_spec.SetField(stepapproval.FieldApprover, field.TypeString, value)
		_node.Approver = &value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(stepapproval.FieldFeedback, field.TypeString, value)
		_node.Feedback = &value
	}
	if value, ok := _c.mutation.ResponseData(); ok {
		_spec.SetField(stepapproval.FieldResponseData, field.TypeJSON, value)
		_node.ResponseData = value
	}
	if value, ok := _c.mutation.RequestedAt(); ok {
		_spec.SetField(stepapproval.FieldRequestedAt, field.TypeTime, value)
		_node.RequestedAt = value
	}
	if value, ok := _c.mutation.RespondedAt(); ok {
		_spec.SetField(stepapproval.FieldRespondedAt, field.TypeTime, value)
		_node.RespondedAt = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(stepapproval.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.AutoApproveAfterSeconds(); ok {
		_spec.SetField(stepapproval.FieldAutoApproveAfterSeconds, field.TypeInt, value)
		_node.AutoApproveAfterSeconds = &value
	}
	if value, ok := _c.mutation.RequiredApprovers(); ok {
		_spec.SetField(stepapproval.FieldRequiredApprovers, field.TypeJSON, value)
		_node.RequiredApprovers = value
	}
	if value, ok := _c.mutation.RevisionCount(); ok {
		_spec.SetField(stepapproval.FieldRevisionCount, field.TypeInt, value)
		_node.RevisionCount = value
	}
	if value, ok := _c.mutation.ParentApprovalID(); ok {
		_spec.SetField(stepapproval.FieldParentApprovalID, field.TypeString, value)
		_node.ParentApprovalID = &value
	}
	if nodes := _c.mutation.ExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stepapproval.ExecutionTable,
			Columns: []string{stepapproval.ExecutionColumn},
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

// StepApprovalCreateBulk is the builder for creating many StepApproval entities in bulk.
type StepApprovalCreateBulk struct {
	config
	err      error
	builders []*StepApprovalCreate
}

// Save creates the StepApproval entities in the database.
func (_c *StepApprovalCreateBulk) Save(ctx context.Context) ([]*StepApproval, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StepApproval, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepApprovalMutation)
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
func (_c *StepApprovalCreateBulk) SaveX(ctx context.Context) []*StepApproval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepApprovalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepApprovalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
