// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mgx-dev/mgx/ent/sandboxexecution"
	"github.com/mgx-dev/mgx/ent/taskrun"
)

// SandboxExecutionCreate is the builder for creating a SandboxExecution entity.
type SandboxExecutionCreate struct {
	config
	mutation *SandboxExecutionMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *SandboxExecutionCreate) SetRunID(v string) *SandboxExecutionCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *SandboxExecutionCreate) SetWorkspaceID(v string) *SandboxExecutionCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *SandboxExecutionCreate) SetProjectID(v string) *SandboxExecutionCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *SandboxExecutionCreate) SetLanguage(v string) *SandboxExecutionCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetCommand sets the "command" field.
func (_c *SandboxExecutionCreate) SetCommand(v string) *SandboxExecutionCreate {
	_c.mutation.SetCommand(v)
	return _c
}

// SetCodeLocation sets the "code_location" field.
func (_c *SandboxExecutionCreate) SetCodeLocation(v string) *SandboxExecutionCreate {
	_c.mutation.SetCodeLocation(v)
	return _c
}

// SetNillableCodeLocation sets the "code_location" field if the given value is not nil.
func (_c *SandboxExecutionCreate) SetNillableCodeLocation(v *string) *SandboxExecutionCreate {
	if v != nil {
		_c.SetCodeLocation(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SandboxExecutionCreate) SetStatus(v sandboxexecution.Status) *SandboxExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SandboxExecutionCreate) SetNillableStatus(v *sandboxexecution.Status) *SandboxExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStdout sets the "stdout" field.
func (_c *SandboxExecutionCreate) SetStdout(v string) *SandboxExecutionCreate {
	_c.mutation.SetStdout(v)
	return _c
}

// SetNillableStdout sets the "stdout" field if the given value is not nil.
func (_c *SandboxExecutionCreate) SetNillableStdout(v *string) *SandboxExecutionCreate {
	if v != nil {
		_c.SetStdout(*v)
	}
	return _c
}

// SetStderr sets the "stderr" field.
func (_c *SandboxExecutionCreate) SetStderr(v string) *SandboxExecutionCreate {
	_c.mutation.SetStderr(v)
	return _c
}

// SetNillableStderr sets the "stderr" field if the given value is not nil.
func (_c *SandboxExecutionCreate) SetNillableStderr(v *string) *SandboxExecutionCreate {
	if v != nil {
		_c.SetStderr(*v)
	}
	return _c
}

// SetExitCode sets the "exit_code" field.
func (_c *SandboxExecutionCreate) SetExitCode(v int) *SandboxExecutionCreate {
	_c.mutation.SetExitCode(v)
	return _c
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_c *SandboxExecutionCreate) SetNillableExitCode(v *int) *SandboxExecutionCreate {
	if v != nil {
		_c.SetExitCode(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SandboxExecutionCreate) SetStartedAt(v time.Time) *SandboxExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SandboxExecutionCreate) SetNillableStartedAt(v *time.Time) *SandboxExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SandboxExecutionCreate) SetCompletedAt(v time.Time) *SandboxExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SandboxExecutionCreate) SetNillableCompletedAt(v *time.Time) *SandboxExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *SandboxExecutionCreate) SetDurationMs(v int) *SandboxExecutionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *SandboxExecutionCreate) SetNillableDurationMs(v *int) *SandboxExecutionCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetPeakMemoryMB sets the "peak_memory_mb" field.
func (_c *SandboxExecutionCreate) SetPeakMemoryMB(v int) *SandboxExecutionCreate {
	_c.mutation.SetPeakMemoryMB(v)
	return _c
}

// SetNillablePeakMemoryMB sets the "peak_memory_mb" field if the given value is not nil.
func (_c *SandboxExecutionCreate) SetNillablePeakMemoryMB(v *int) *SandboxExecutionCreate {
	if v != nil {
		_c.SetPeakMemoryMB(*v)
	}
	return _c
}

// SetCPUPercent sets the "cpu_percent" field.
func (_c *SandboxExecutionCreate) SetCPUPercent(v float64) *SandboxExecutionCreate {
	_c.mutation.SetCPUPercent(v)
	return _c
}

// SetNillableCPUPercent sets the "cpu_percent" field if the given value is not nil.
func (_c *SandboxExecutionCreate) SetNillableCPUPercent(v *float64) *SandboxExecutionCreate {
	if v != nil {
		_c.SetCPUPercent(*v)
	}
	return _c
}

// SetContainerID sets the "container_id" field.
func (_c *SandboxExecutionCreate) SetContainerID(v string) *SandboxExecutionCreate {
	_c.mutation.SetContainerID(v)
	return _c
}

// SetNillableContainerID sets the "container_id" field if the given value is not nil.
func (_c *SandboxExecutionCreate) SetNillableContainerID(v *string) *SandboxExecutionCreate {
	if v != nil {
		_c.SetContainerID(*v)
	}
	return _c
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_c *SandboxExecutionCreate) SetTimeoutSeconds(v int) *SandboxExecutionCreate {
	_c.mutation.SetTimeoutSeconds(v)
	return _c
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_c *SandboxExecutionCreate) SetNillableTimeoutSeconds(v *int) *SandboxExecutionCreate {
	if v != nil {
		_c.SetTimeoutSeconds(*v)
	}
	return _c
}

// SetMemoryLimitMB sets the "memory_limit_mb" field.
func (_c *SandboxExecutionCreate) SetMemoryLimitMB(v int) *SandboxExecutionCreate {
	_c.mutation.SetMemoryLimitMB(v)
	return _c
}

// SetNillableMemoryLimitMB sets the "memory_limit_mb" field if the given value is not nil.
func (_c *SandboxExecutionCreate) SetNillableMemoryLimitMB(v *int) *SandboxExecutionCreate {
	if v != nil {
		_c.SetMemoryLimitMB(*v)
	}
	return _c
}

// SetErrorType sets the "error_type" field.
func (_c *SandboxExecutionCreate) SetErrorType(v string) *SandboxExecutionCreate {
	_c.mutation.SetErrorType(v)
	return _c
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_c *SandboxExecutionCreate) SetNillableErrorType(v *string) *SandboxExecutionCreate {
	if v != nil {
		_c.SetErrorType(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SandboxExecutionCreate) SetErrorMessage(v string) *SandboxExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SandboxExecutionCreate) SetNillableErrorMessage(v *string) *SandboxExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SandboxExecutionCreate) SetID(v string) *SandboxExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the TaskRun entity.
func (_c *SandboxExecutionCreate) SetRun(v *TaskRun) *SandboxExecutionCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the SandboxExecutionMutation object of the builder.
func (_c *SandboxExecutionCreate) Mutation() *SandboxExecutionMutation {
	return _c.mutation
}

// Save creates the SandboxExecution in the database.
func (_c *SandboxExecutionCreate) Save(ctx context.Context) (*SandboxExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SandboxExecutionCreate) SaveX(ctx context.Context) *SandboxExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SandboxExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SandboxExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SandboxExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := sandboxexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TimeoutSeconds(); !ok {
		v := sandboxexecution.DefaultTimeoutSeconds
		_c.mutation.SetTimeoutSeconds(v)
	}
	if _, ok := _c.mutation.MemoryLimitMB(); !ok {
		v := sandboxexecution.DefaultMemoryLimitMB
		_c.mutation.SetMemoryLimitMB(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SandboxExecutionCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "SandboxExecution.run_id"`)}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "SandboxExecution.workspace_id"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "SandboxExecution.project_id"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "SandboxExecution.language"`)}
	}
	if _, ok := _c.mutation.Command(); !ok {
		return &ValidationError{Name: "command", err: errors.New(`ent: missing required field "SandboxExecution.command"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SandboxExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sandboxexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SandboxExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeoutSeconds(); !ok {
		return &ValidationError{Name: "timeout_seconds", err: errors.New(`ent: missing required field "SandboxExecution.timeout_seconds"`)}
	}
	if _, ok := _c.mutation.MemoryLimitMB(); !ok {
		return &ValidationError{Name: "memory_limit_mb", err: errors.New(`ent: missing required field "SandboxExecution.memory_limit_mb"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "SandboxExecution.run"`)}
	}
	return nil
}

func (_c *SandboxExecutionCreate) sqlSave(ctx context.Context) (*SandboxExecution, error) {
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
			return nil, fmt.Errorf("unexpected SandboxExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SandboxExecutionCreate) createSpec() (*SandboxExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &SandboxExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sandboxexecution.Table, sqlgraph.NewFieldSpec(sandboxexecution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(sandboxexecution.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(sandboxexecution.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(sandboxexecution.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Command(); ok {
		_spec.SetField(sandboxexecution.FieldCommand, field.TypeString, value)
		_node.Command = value
	}
	if value, ok := _c.mutation.CodeLocation(); ok {
		_spec.SetField(sandboxexecution.FieldCodeLocation, field.TypeString, value)
		_node.CodeLocation = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sandboxexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Stdout(); ok {
		_spec.SetField(sandboxexecution.FieldStdout, field.TypeString, value)
		_node.Stdout = value
	}
	if value, ok := _c.mutation.Stderr(); ok {
		_spec.SetField(sandboxexecution.FieldStderr, field.TypeString, value)
		_node.Stderr = value
	}
	if value, ok := _c.mutation.ExitCode(); ok {
		_spec.SetField(sandboxexecution.FieldExitCode, field.TypeInt, value)
		_node.ExitCode = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(sandboxexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(sandboxexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(sandboxexecution.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.PeakMemoryMB(); ok {
		_spec.SetField(sandboxexecution.FieldPeakMemoryMB, field.TypeInt, value)
		_node.PeakMemoryMB = &value
	}
	if value, ok := _c.mutation.CPUPercent(); ok {
		_spec.SetField(sandboxexecution.FieldCPUPercent, field.TypeFloat64, value)
		_node.CPUPercent = &value
	}
	if value, ok := _c.mutation.ContainerID(); ok {
		_spec.SetField(sandboxexecution.FieldContainerID, field.TypeString, value)
		_node.ContainerID = &value
	}
	if value, ok := _c.mutation.TimeoutSeconds(); ok {
		_spec.SetField(sandboxexecution.FieldTimeoutSeconds, field.TypeInt, value)
		_node.TimeoutSeconds = value
	}
	if value, ok := _c.mutation.MemoryLimitMB(); ok {
		_spec.SetField(sandboxexecution.FieldMemoryLimitMB, field.TypeInt, value)
		_node.MemoryLimitMB = value
	}
	if value, ok := _c.mutation.ErrorType(); ok {
		_spec.SetField(sandboxexecution.FieldErrorType, field.TypeString, value)
		_node.ErrorType = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(sandboxexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sandboxexecution.RunTable,
			Columns: []string{sandboxexecution.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SandboxExecutionCreateBulk is the builder for creating many SandboxExecution entities in bulk.
type SandboxExecutionCreateBulk struct {
	config
	err      error
	builders []*SandboxExecutionCreate
}

// Save creates the SandboxExecution entities in the database.
func (_c *SandboxExecutionCreateBulk) Save(ctx context.Context) ([]*SandboxExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SandboxExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SandboxExecutionMutation)
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
func (_c *SandboxExecutionCreateBulk) SaveX(ctx context.Context) []*SandboxExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SandboxExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SandboxExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
