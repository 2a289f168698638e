// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mgx-dev/mgx/ent/predicate"
	"github.com/mgx-dev/mgx/ent/sandboxexecution"
)

// SandboxExecutionUpdate is the builder for updating SandboxExecution entities.
type SandboxExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *SandboxExecutionMutation
}

// Where appends a list predicates to the SandboxExecutionUpdate builder.
func (_u *SandboxExecutionUpdate) Where(ps ...predicate.SandboxExecution) *SandboxExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLanguage sets the "language" field.
func (_u *SandboxExecutionUpdate) SetLanguage(v string) *SandboxExecutionUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *SandboxExecutionUpdate) SetNillableLanguage(v *string) *SandboxExecutionUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetCommand sets the "command" field.
func (_u *SandboxExecutionUpdate) SetCommand(v string) *SandboxExecutionUpdate {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *SandboxExecutionUpdate) SetNillableCommand(v *string) *SandboxExecutionUpdate {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// SetCodeLocation sets the "code_location" field.
func (_u *SandboxExecutionUpdate) SetCodeLocation(v string) *SandboxExecutionUpdate {
	_u.mutation.SetCodeLocation(v)
	return _u
}

// SetNillableCodeLocation sets the "code_location" field if the given value is not nil.
func (_u *SandboxExecutionUpdate) SetNillableCodeLocation(v *string) *SandboxExecutionUpdate {
	if v != nil {
		_u.SetCodeLocation(*v)
	}
	return _u
}

// ClearCodeLocation clears the value of the "code_location" field.
func (_u *SandboxExecutionUpdate) ClearCodeLocation() *SandboxExecutionUpdate {
	_u.mutation.ClearCodeLocation()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SandboxExecutionUpdate) SetStatus(v sandboxexecution.Status) *SandboxExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SandboxExecutionUpdate) SetNillableStatus(v *sandboxexecution.Status) *SandboxExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStdout sets the "stdout" field.
func (_u *SandboxExecutionUpdate) SetStdout(v string) *SandboxExecutionUpdate {
	_u.mutation.SetStdout(v)
	return _u
}

// SetNillableStdout sets the "stdout" field if the given value is not nil.
func (_u *SandboxExecutionUpdate) SetNillableStdout(v *string) *SandboxExecutionUpdate {
	if v != nil {
		_u.SetStdout(*v)
	}
	return _u
}

// ClearStdout clears the value of the "stdout" field.
func (_u *SandboxExecutionUpdate) ClearStdout() *SandboxExecutionUpdate {
	_u.mutation.ClearStdout()
	return _u
}

// SetStderr sets the "stderr" field.
func (_u *SandboxExecutionUpdate) SetStderr(v string) *SandboxExecutionUpdate {
	_u.mutation.SetStderr(v)
	return _u
}

// SetNillableStderr sets the "stderr" field if the given value is not nil.
func (_u *SandboxExecutionUpdate) SetNillableStderr(v *string) *SandboxExecutionUpdate {
	if v != nil {
		_u.SetStderr(*v)
	}
	return _u
}

// ClearStderr clears the value of the "stderr" field.
func (_u *SandboxExecutionUpdate) ClearStderr() *SandboxExecutionUpdate {
	_u.mutation.ClearStderr()
	return _u
}

// SetExitCode sets the "exit_code" field.
func (_u *SandboxExecutionUpdate) SetExitCode(v int) *SandboxExecutionUpdate {
	_u.mutation.ResetExitCode()
	_u.mutation.SetExitCode(v)
	return _u
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_u *SandboxExecutionUpdate) SetNillableExitCode(v *int) *SandboxExecutionUpdate {
	if v != nil {
		_u.SetExitCode(*v)
	}
	return _u
}

// AddExitCode adds value to the "exit_code" field.
func (_u *SandboxExecutionUpdate) AddExitCode(v int) *SandboxExecutionUpdate {
	_u.mutation.AddExitCode(v)
	return _u
}

// ClearExitCode clears the value of the "exit_code" field.
func (_u *SandboxExecutionUpdate) ClearExitCode() *SandboxExecutionUpdate {
	_u.mutation.ClearExitCode()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SandboxExecutionUpdate) SetStartedAt(v time.Time) *SandboxExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SandboxExecutionUpdate) SetNillableStartedAt(v *time.Time) *SandboxExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SandboxExecutionUpdate) ClearStartedAt() *SandboxExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SandboxExecutionUpdate) SetCompletedAt(v time.Time) *SandboxExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SandboxExecutionUpdate) SetNillableCompletedAt(v *time.Time) *SandboxExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SandboxExecutionUpdate) ClearCompletedAt() *SandboxExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *SandboxExecutionUpdate) SetDurationMs(v int) *SandboxExecutionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *SandboxExecutionUpdate) SetNillableDurationMs(v *int) *SandboxExecutionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *SandboxExecutionUpdate) AddDurationMs(v int) *SandboxExecutionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *SandboxExecutionUpdate) ClearDurationMs() *SandboxExecutionUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetPeakMemoryMB sets the "peak_memory_mb" field.
func (_u *SandboxExecutionUpdate) SetPeakMemoryMB(v int) *SandboxExecutionUpdate {
	_u.mutation.ResetPeakMemoryMB()
	_u.mutation.SetPeakMemoryMB(v)
	return _u
}

// SetNillablePeakMemoryMB sets the "peak_memory_mb" field if the given value is not nil.
func (_u *SandboxExecutionUpdate) SetNillablePeakMemoryMB(v *int) *SandboxExecutionUpdate {
	if v != nil {
		_u.SetPeakMemoryMB(*v)
	}
	return _u
}

// AddPeakMemoryMB adds value to the "peak_memory_mb" field.
func (_u *SandboxExecutionUpdate) AddPeakMemoryMB(v int) *SandboxExecutionUpdate {
	_u.mutation.AddPeakMemoryMB(v)
	return _u
}

// ClearPeakMemoryMB clears the value of the "peak_memory_mb" field.
func (_u *SandboxExecutionUpdate) ClearPeakMemoryMB() *SandboxExecutionUpdate {
	_u.mutation.ClearPeakMemoryMB()
	return _u
}

// SetCPUPercent sets the "cpu_percent" field.
func (_u *SandboxExecutionUpdate) SetCPUPercent(v float64) *SandboxExecutionUpdate {
	_u.mutation.ResetCPUPercent()
	_u.mutation.SetCPUPercent(v)
	return _u
}

// SetNillableCPUPercent sets the "cpu_percent" field if the given value is not nil.
func (_u *SandboxExecutionUpdate) SetNillableCPUPercent(v *float64) *SandboxExecutionUpdate {
	if v != nil {
		_u.SetCPUPercent(*v)
	}
	return _u
}

// AddCPUPercent adds value to the "cpu_percent" field.
func (_u *SandboxExecutionUpdate) AddCPUPercent(v float64) *SandboxExecutionUpdate {
	_u.mutation.AddCPUPercent(v)
	return _u
}

// ClearCPUPercent clears the value of the "cpu_percent" field.
func (_u *SandboxExecutionUpdate) ClearCPUPercent() *SandboxExecutionUpdate {
	_u.mutation.ClearCPUPercent()
	return _u
}

// SetContainerID sets the "container_id" field.
func (_u *SandboxExecutionUpdate) SetContainerID(v string) *SandboxExecutionUpdate {
	_u.mutation.SetContainerID(v)
	return _u
}

// SetNillableContainerID sets the "container_id" field if the given value is not nil.
func (_u *SandboxExecutionUpdate) SetNillableContainerID(v *string) *SandboxExecutionUpdate {
	if v != nil {
		_u.SetContainerID(*v)
	}
	return _u
}

// ClearContainerID clears the value of the "container_id" field.
func (_u *SandboxExecutionUpdate) ClearContainerID() *SandboxExecutionUpdate {
	_u.mutation.ClearContainerID()
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *SandboxExecutionUpdate) SetTimeoutSeconds(v int) *SandboxExecutionUpdate {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *SandboxExecutionUpdate) SetNillableTimeoutSeconds(v *int) *SandboxExecutionUpdate {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *SandboxExecutionUpdate) AddTimeoutSeconds(v int) *SandboxExecutionUpdate {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// SetMemoryLimitMB sets the "memory_limit_mb" field.
func (_u *SandboxExecutionUpdate) SetMemoryLimitMB(v int) *SandboxExecutionUpdate {
	_u.mutation.ResetMemoryLimitMB()
	_u.mutation.SetMemoryLimitMB(v)
	return _u
}

// SetNillableMemoryLimitMB sets the "memory_limit_mb" field if the given value is not nil.
func (_u *SandboxExecutionUpdate) SetNillableMemoryLimitMB(v *int) *SandboxExecutionUpdate {
	if v != nil {
		_u.SetMemoryLimitMB(*v)
	}
	return _u
}

// AddMemoryLimitMB adds value to the "memory_limit_mb" field.
func (_u *SandboxExecutionUpdate) AddMemoryLimitMB(v int) *SandboxExecutionUpdate {
	_u.mutation.AddMemoryLimitMB(v)
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *SandboxExecutionUpdate) SetErrorType(v string) *SandboxExecutionUpdate {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *SandboxExecutionUpdate) SetNillableErrorType(v *string) *SandboxExecutionUpdate {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// ClearErrorType clears the value of the "error_type" field.
func (_u *SandboxExecutionUpdate) ClearErrorType() *SandboxExecutionUpdate {
	_u.mutation.ClearErrorType()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SandboxExecutionUpdate) SetErrorMessage(v string) *SandboxExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SandboxExecutionUpdate) SetNillableErrorMessage(v *string) *SandboxExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SandboxExecutionUpdate) ClearErrorMessage() *SandboxExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the SandboxExecutionMutation object of the builder.
func (_u *SandboxExecutionUpdate) Mutation() *SandboxExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SandboxExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SandboxExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SandboxExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SandboxExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SandboxExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sandboxexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SandboxExecution.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SandboxExecution.run"`)
	}
	return nil
}

func (_u *SandboxExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sandboxexecution.Table, sandboxexecution.Columns, sqlgraph.NewFieldSpec(sandboxexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(sandboxexecution.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(sandboxexecution.FieldCommand, field.TypeString, value)
	}
	if value, ok := _u.mutation.CodeLocation(); ok {
		_spec.SetField(sandboxexecution.FieldCodeLocation, field.TypeString, value)
	}
	if _u.mutation.CodeLocationCleared() {
		_spec.ClearField(sandboxexecution.FieldCodeLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sandboxexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Stdout(); ok {
		_spec.SetField(sandboxexecution.FieldStdout, field.TypeString, value)
	}
	if _u.mutation.StdoutCleared() {
		_spec.ClearField(sandboxexecution.FieldStdout, field.TypeString)
	}
	if value, ok := _u.mutation.Stderr(); ok {
		_spec.SetField(sandboxexecution.FieldStderr, field.TypeString, value)
	}
	if _u.mutation.StderrCleared() {
		_spec.ClearField(sandboxexecution.FieldStderr, field.TypeString)
	}
	if value, ok := _u.mutation.ExitCode(); ok {
		_spec.SetField(sandboxexecution.FieldExitCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExitCode(); ok {
		_spec.AddField(sandboxexecution.FieldExitCode, field.TypeInt, value)
	}
	if _u.mutation.ExitCodeCleared() {
		_spec.ClearField(sandboxexecution.FieldExitCode, field.TypeInt)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sandboxexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(sandboxexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(sandboxexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(sandboxexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(sandboxexecution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(sandboxexecution.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(sandboxexecution.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.PeakMemoryMB(); ok {
		_spec.SetField(sandboxexecution.FieldPeakMemoryMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPeakMemoryMB(); ok {
		_spec.AddField(sandboxexecution.FieldPeakMemoryMB, field.TypeInt, value)
	}
	if _u.mutation.PeakMemoryMBCleared() {
		_spec.ClearField(sandboxexecution.FieldPeakMemoryMB, field.TypeInt)
	}
	if value, ok := _u.mutation.CPUPercent(); ok {
		_spec.SetField(sandboxexecution.FieldCPUPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCPUPercent(); ok {
		_spec.AddField(sandboxexecution.FieldCPUPercent, field.TypeFloat64, value)
	}
	if _u.mutation.CPUPercentCleared() {
		_spec.ClearField(sandboxexecution.FieldCPUPercent, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ContainerID(); ok {
		_spec.SetField(sandboxexecution.FieldContainerID, field.TypeString, value)
	}
	if _u.mutation.ContainerIDCleared() {
		_spec.ClearField(sandboxexecution.FieldContainerID, field.TypeString)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(sandboxexecution.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(sandboxexecution.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MemoryLimitMB(); ok {
		_spec.SetField(sandboxexecution.FieldMemoryLimitMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoryLimitMB(); ok {
		_spec.AddField(sandboxexecution.FieldMemoryLimitMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(sandboxexecution.FieldErrorType, field.TypeString, value)
	}
	if _u.mutation.ErrorTypeCleared() {
		_spec.ClearField(sandboxexecution.FieldErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(sandboxexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(sandboxexecution.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sandboxexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SandboxExecutionUpdateOne is the builder for updating a single SandboxExecution entity.
type SandboxExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SandboxExecutionMutation
}

// SetLanguage sets the "language" field.
func (_u *SandboxExecutionUpdateOne) SetLanguage(v string) *SandboxExecutionUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *SandboxExecutionUpdateOne) SetNillableLanguage(v *string) *SandboxExecutionUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetCommand sets the "command" field.
func (_u *SandboxExecutionUpdateOne) SetCommand(v string) *SandboxExecutionUpdateOne {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *SandboxExecutionUpdateOne) SetNillableCommand(v *string) *SandboxExecutionUpdateOne {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// SetCodeLocation sets the "code_location" field.
func (_u *SandboxExecutionUpdateOne) SetCodeLocation(v string) *SandboxExecutionUpdateOne {
	_u.mutation.SetCodeLocation(v)
	return _u
}

// SetNillableCodeLocation sets the "code_location" field if the given value is not nil.
func (_u *SandboxExecutionUpdateOne) SetNillableCodeLocation(v *string) *SandboxExecutionUpdateOne {
	if v != nil {
		_u.SetCodeLocation(*v)
	}
	return _u
}

// ClearCodeLocation clears the value of the "code_location" field.
func (_u *SandboxExecutionUpdateOne) ClearCodeLocation() *SandboxExecutionUpdateOne {
	_u.mutation.ClearCodeLocation()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SandboxExecutionUpdateOne) SetStatus(v sandboxexecution.Status) *SandboxExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SandboxExecutionUpdateOne) SetNillableStatus(v *sandboxexecution.Status) *SandboxExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStdout sets the "stdout" field.
func (_u *SandboxExecutionUpdateOne) SetStdout(v string) *SandboxExecutionUpdateOne {
	_u.mutation.SetStdout(v)
	return _u
}

// SetNillableStdout sets the "stdout" field if the given value is not nil.
func (_u *SandboxExecutionUpdateOne) SetNillableStdout(v *string) *SandboxExecutionUpdateOne {
	if v != nil {
		_u.SetStdout(*v)
	}
	return _u
}

// ClearStdout clears the value of the "stdout" field.
func (_u *SandboxExecutionUpdateOne) ClearStdout() *SandboxExecutionUpdateOne {
	_u.mutation.ClearStdout()
	return _u
}

// SetStderr sets the "stderr" field.
func (_u *SandboxExecutionUpdateOne) SetStderr(v string) *SandboxExecutionUpdateOne {
	_u.mutation.SetStderr(v)
	return _u
}

// SetNillableStderr sets the "stderr" field if the given value is not nil.
func (_u *SandboxExecutionUpdateOne) SetNillableStderr(v *string) *SandboxExecutionUpdateOne {
	if v != nil {
		_u.SetStderr(*v)
	}
	return _u
}

// ClearStderr clears the value of the "stderr" field.
func (_u *SandboxExecutionUpdateOne) ClearStderr() *SandboxExecutionUpdateOne {
	_u.mutation.ClearStderr()
	return _u
}

// SetExitCode sets the "exit_code" field.
func (_u *SandboxExecutionUpdateOne) SetExitCode(v int) *SandboxExecutionUpdateOne {
	_u.mutation.ResetExitCode()
	_u.mutation.SetExitCode(v)
	return _u
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_u *SandboxExecutionUpdateOne) SetNillableExitCode(v *int) *SandboxExecutionUpdateOne {
	if v != nil {
		_u.SetExitCode(*v)
	}
	return _u
}

// AddExitCode adds value to the "exit_code" field.
func (_u *SandboxExecutionUpdateOne) AddExitCode(v int) *SandboxExecutionUpdateOne {
	_u.mutation.AddExitCode(v)
	return _u
}

// ClearExitCode clears the value of the "exit_code" field.
func (_u *SandboxExecutionUpdateOne) ClearExitCode() *SandboxExecutionUpdateOne {
	_u.mutation.ClearExitCode()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SandboxExecutionUpdateOne) SetStartedAt(v time.Time) *SandboxExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SandboxExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *SandboxExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SandboxExecutionUpdateOne) ClearStartedAt() *SandboxExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SandboxExecutionUpdateOne) SetCompletedAt(v time.Time) *SandboxExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SandboxExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *SandboxExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SandboxExecutionUpdateOne) ClearCompletedAt() *SandboxExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *SandboxExecutionUpdateOne) SetDurationMs(v int) *SandboxExecutionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *SandboxExecutionUpdateOne) SetNillableDurationMs(v *int) *SandboxExecutionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *SandboxExecutionUpdateOne) AddDurationMs(v int) *SandboxExecutionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *SandboxExecutionUpdateOne) ClearDurationMs() *SandboxExecutionUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetPeakMemoryMB sets the "peak_memory_mb" field.
func (_u *SandboxExecutionUpdateOne) SetPeakMemoryMB(v int) *SandboxExecutionUpdateOne {
	_u.mutation.ResetPeakMemoryMB()
	_u.mutation.SetPeakMemoryMB(v)
	return _u
}

// SetNillablePeakMemoryMB sets the "peak_memory_mb" field if the given value is not nil.
func (_u *SandboxExecutionUpdateOne) SetNillablePeakMemoryMB(v *int) *SandboxExecutionUpdateOne {
	if v != nil {
		_u.SetPeakMemoryMB(*v)
	}
	return _u
}

// AddPeakMemoryMB adds value to the "peak_memory_mb" field.
func (_u *SandboxExecutionUpdateOne) AddPeakMemoryMB(v int) *SandboxExecutionUpdateOne {
	_u.mutation.AddPeakMemoryMB(v)
	return _u
}

// ClearPeakMemoryMB clears the value of the "peak_memory_mb" field.
func (_u *SandboxExecutionUpdateOne) ClearPeakMemoryMB() *SandboxExecutionUpdateOne {
	_u.mutation.ClearPeakMemoryMB()
	return _u
}

// SetCPUPercent sets the "cpu_percent" field.
func (_u *SandboxExecutionUpdateOne) SetCPUPercent(v float64) *SandboxExecutionUpdateOne {
	_u.mutation.ResetCPUPercent()
	_u.mutation.SetCPUPercent(v)
	return _u
}

// SetNillableCPUPercent sets the "cpu_percent" field if the given value is not nil.
func (_u *SandboxExecutionUpdateOne) SetNillableCPUPercent(v *float64) *SandboxExecutionUpdateOne {
	if v != nil {
		_u.SetCPUPercent(*v)
	}
	return _u
}

// AddCPUPercent adds value to the "cpu_percent" field.
func (_u *SandboxExecutionUpdateOne) AddCPUPercent(v float64) *SandboxExecutionUpdateOne {
	_u.mutation.AddCPUPercent(v)
	return _u
}

// ClearCPUPercent clears the value of the "cpu_percent" field.
func (_u *SandboxExecutionUpdateOne) ClearCPUPercent() *SandboxExecutionUpdateOne {
	_u.mutation.ClearCPUPercent()
	return _u
}

// SetContainerID sets the "container_id" field.
func (_u *SandboxExecutionUpdateOne) SetContainerID(v string) *SandboxExecutionUpdateOne {
	_u.mutation.SetContainerID(v)
	return _u
}

// SetNillableContainerID sets the "container_id" field if the given value is not nil.
func (_u *SandboxExecutionUpdateOne) SetNillableContainerID(v *string) *SandboxExecutionUpdateOne {
	if v != nil {
		_u.SetContainerID(*v)
	}
	return _u
}

// ClearContainerID clears the value of the "container_id" field.
func (_u *SandboxExecutionUpdateOne) ClearContainerID() *SandboxExecutionUpdateOne {
	_u.mutation.ClearContainerID()
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *SandboxExecutionUpdateOne) SetTimeoutSeconds(v int) *SandboxExecutionUpdateOne {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *SandboxExecutionUpdateOne) SetNillableTimeoutSeconds(v *int) *SandboxExecutionUpdateOne {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *SandboxExecutionUpdateOne) AddTimeoutSeconds(v int) *SandboxExecutionUpdateOne {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// SetMemoryLimitMB sets the "memory_limit_mb" field.
func (_u *SandboxExecutionUpdateOne) SetMemoryLimitMB(v int) *SandboxExecutionUpdateOne {
	_u.mutation.ResetMemoryLimitMB()
	_u.mutation.SetMemoryLimitMB(v)
	return _u
}

// SetNillableMemoryLimitMB sets the "memory_limit_mb" field if the given value is not nil.
func (_u *SandboxExecutionUpdateOne) SetNillableMemoryLimitMB(v *int) *SandboxExecutionUpdateOne {
	if v != nil {
		_u.SetMemoryLimitMB(*v)
	}
	return _u
}

// AddMemoryLimitMB adds value to the "memory_limit_mb" field.
func (_u *SandboxExecutionUpdateOne) AddMemoryLimitMB(v int) *SandboxExecutionUpdateOne {
	_u.mutation.AddMemoryLimitMB(v)
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *SandboxExecutionUpdateOne) SetErrorType(v string) *SandboxExecutionUpdateOne {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *SandboxExecutionUpdateOne) SetNillableErrorType(v *string) *SandboxExecutionUpdateOne {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// ClearErrorType clears the value of the "error_type" field.
func (_u *SandboxExecutionUpdateOne) ClearErrorType() *SandboxExecutionUpdateOne {
	_u.mutation.ClearErrorType()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SandboxExecutionUpdateOne) SetErrorMessage(v string) *SandboxExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SandboxExecutionUpdateOne) SetNillableErrorMessage(v *string) *SandboxExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SandboxExecutionUpdateOne) ClearErrorMessage() *SandboxExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the SandboxExecutionMutation object of the builder.
func (_u *SandboxExecutionUpdateOne) Mutation() *SandboxExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SandboxExecutionUpdate builder.
func (_u *SandboxExecutionUpdateOne) Where(ps ...predicate.SandboxExecution) *SandboxExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SandboxExecutionUpdateOne) Select(field string, fields ...string) *SandboxExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SandboxExecution entity.
func (_u *SandboxExecutionUpdateOne) Save(ctx context.Context) (*SandboxExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SandboxExecutionUpdateOne) SaveX(ctx context.Context) *SandboxExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SandboxExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SandboxExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SandboxExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sandboxexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SandboxExecution.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SandboxExecution.run"`)
	}
	return nil
}

func (_u *SandboxExecutionUpdateOne) sqlSave(ctx context.Context) (_node *SandboxExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sandboxexecution.Table, sandboxexecution.Columns, sqlgraph.NewFieldSpec(sandboxexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SandboxExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sandboxexecution.FieldID)
		for _, f := range fields {
			if !sandboxexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sandboxexecution.FieldID {
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
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(sandboxexecution.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(sandboxexecution.FieldCommand, field.TypeString, value)
	}
	if value, ok := _u.mutation.CodeLocation(); ok {
		_spec.SetField(sandboxexecution.FieldCodeLocation, field.TypeString, value)
	}
	if _u.mutation.CodeLocationCleared() {
		_spec.ClearField(sandboxexecution.FieldCodeLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sandboxexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Stdout(); ok {
		_spec.SetField(sandboxexecution.FieldStdout, field.TypeString, value)
	}
	if _u.mutation.StdoutCleared() {
		_spec.ClearField(sandboxexecution.FieldStdout, field.TypeString)
	}
	if value, ok := _u.mutation.Stderr(); ok {
		_spec.SetField(sandboxexecution.FieldStderr, field.TypeString, value)
	}
	if _u.mutation.StderrCleared() {
		_spec.ClearField(sandboxexecution.FieldStderr, field.TypeString)
	}
	if value, ok := _u.mutation.ExitCode(); ok {
		_spec.SetField(sandboxexecution.FieldExitCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExitCode(); ok {
		_spec.AddField(sandboxexecution.FieldExitCode, field.TypeInt, value)
	}
	if _u.mutation.ExitCodeCleared() {
		_spec.ClearField(sandboxexecution.FieldExitCode, field.TypeInt)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sandboxexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(sandboxexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(sandboxexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(sandboxexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(sandboxexecution.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(sandboxexecution.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(sandboxexecution.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.PeakMemoryMB(); ok {
		_spec.SetField(sandboxexecution.FieldPeakMemoryMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPeakMemoryMB(); ok {
		_spec.AddField(sandboxexecution.FieldPeakMemoryMB, field.TypeInt, value)
	}
	if _u.mutation.PeakMemoryMBCleared() {
		_spec.ClearField(sandboxexecution.FieldPeakMemoryMB, field.TypeInt)
	}
	if value, ok := _u.mutation.CPUPercent(); ok {
		_spec.SetField(sandboxexecution.FieldCPUPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCPUPercent(); ok {
		_spec.AddField(sandboxexecution.FieldCPUPercent, field.TypeFloat64, value)
	}
	if _u.mutation.CPUPercentCleared() {
		_spec.ClearField(sandboxexecution.FieldCPUPercent, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ContainerID(); ok {
		_spec.SetField(sandboxexecution.FieldContainerID, field.TypeString, value)
	}
	if _u.mutation.ContainerIDCleared() {
		_spec.ClearField(sandboxexecution.FieldContainerID, field.TypeString)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(sandboxexecution.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(sandboxexecution.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MemoryLimitMB(); ok {
		_spec.SetField(sandboxexecution.FieldMemoryLimitMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemoryLimitMB(); ok {
		_spec.AddField(sandboxexecution.FieldMemoryLimitMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(sandboxexecution.FieldErrorType, field.TypeString, value)
	}
	if _u.mutation.ErrorTypeCleared() {
		_spec.ClearField(sandboxexecution.FieldErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(sandboxexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(sandboxexecution.FieldErrorMessage, field.TypeString)
	}
	_node = &SandboxExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sandboxexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
