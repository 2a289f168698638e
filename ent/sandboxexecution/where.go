// Code generated by ent, DO NOT EDIT.

package sandboxexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mgx-dev/mgx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldRunID, v))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldWorkspaceID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldProjectID, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldLanguage, v))
}

// Command applies equality check predicate on the "command" field. It's identical to CommandEQ.
func Command(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldCommand, v))
}

// CodeLocation applies equality check predicate on the "code_location" field. It's identical to CodeLocationEQ.
func CodeLocation(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldCodeLocation, v))
}

// Stdout applies equality check predicate on the "stdout" field. It's identical to StdoutEQ.
func Stdout(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldStdout, v))
}

// Stderr applies equality check predicate on the "stderr" field. It's identical to StderrEQ.
func Stderr(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldStderr, v))
}

// ExitCode applies equality check predicate on the "exit_code" field. It's identical to ExitCodeEQ.
func ExitCode(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldExitCode, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldDurationMs, v))
}

// PeakMemoryMB applies equality check predicate on the "peak_memory_mb" field. It's identical to PeakMemoryMBEQ.
func PeakMemoryMB(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldPeakMemoryMB, v))
}

// CPUPercent applies equality check predicate on the "cpu_percent" field. It's identical to CPUPercentEQ.
func CPUPercent(v float64) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldCPUPercent, v))
}

// ContainerID applies equality check predicate on the "container_id" field. It's identical to ContainerIDEQ.
func ContainerID(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldContainerID, v))
}

// TimeoutSeconds applies equality check predicate on the "timeout_seconds" field. It's identical to TimeoutSecondsEQ.
func TimeoutSeconds(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldTimeoutSeconds, v))
}

// MemoryLimitMB applies equality check predicate on the "memory_limit_mb" field. It's identical to MemoryLimitMBEQ.
func MemoryLimitMB(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldMemoryLimitMB, v))
}

// ErrorType applies equality check predicate on the "error_type" field. It's identical to ErrorTypeEQ.
func ErrorType(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldErrorType, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContainsFold(FieldRunID, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContainsFold(FieldProjectID, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContainsFold(FieldLanguage, v))
}

// CommandEQ applies the EQ predicate on the "command" field.
func CommandEQ(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldCommand, v))
}

// CommandNEQ applies the NEQ predicate on the "command" field.
func CommandNEQ(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNEQ(FieldCommand, v))
}

// CommandIn applies the In predicate on the "command" field.
func CommandIn(vs ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIn(FieldCommand, vs...))
}

// CommandNotIn applies the NotIn predicate on the "command" field.
func CommandNotIn(vs ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotIn(FieldCommand, vs...))
}

// CommandGT applies the GT predicate on the "command" field.
func CommandGT(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGT(FieldCommand, v))
}

// CommandGTE applies the GTE predicate on the "command" field.
func CommandGTE(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGTE(FieldCommand, v))
}

// CommandLT applies the LT predicate on the "command" field.
func CommandLT(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLT(FieldCommand, v))
}

// CommandLTE applies the LTE predicate on the "command" field.
func CommandLTE(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLTE(FieldCommand, v))
}

// CommandContains applies the Contains predicate on the "command" field.
func CommandContains(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContains(FieldCommand, v))
}

// CommandHasPrefix applies the HasPrefix predicate on the "command" field.
func CommandHasPrefix(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldHasPrefix(FieldCommand, v))
}

// CommandHasSuffix applies the HasSuffix predicate on the "command" field.
func CommandHasSuffix(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldHasSuffix(FieldCommand, v))
}

// CommandEqualFold applies the EqualFold predicate on the "command" field.
func CommandEqualFold(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEqualFold(FieldCommand, v))
}

// CommandContainsFold applies the ContainsFold predicate on the "command" field.
func CommandContainsFold(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContainsFold(FieldCommand, v))
}

// CodeLocationEQ applies the EQ predicate on the "code_location" field.
func CodeLocationEQ(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldCodeLocation, v))
}

// CodeLocationNEQ applies the NEQ predicate on the "code_location" field.
func CodeLocationNEQ(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNEQ(FieldCodeLocation, v))
}

// CodeLocationIn applies the In predicate on the "code_location" field.
func CodeLocationIn(vs ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIn(FieldCodeLocation, vs...))
}

// CodeLocationNotIn applies the NotIn predicate on the "code_location" field.
func CodeLocationNotIn(vs ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotIn(FieldCodeLocation, vs...))
}

// CodeLocationGT applies the GT predicate on the "code_location" field.
func CodeLocationGT(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGT(FieldCodeLocation, v))
}

// CodeLocationGTE applies the GTE predicate on the "code_location" field.
func CodeLocationGTE(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGTE(FieldCodeLocation, v))
}

// CodeLocationLT applies the LT predicate on the "code_location" field.
func CodeLocationLT(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLT(FieldCodeLocation, v))
}

// CodeLocationLTE applies the LTE predicate on the "code_location" field.
func CodeLocationLTE(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLTE(FieldCodeLocation, v))
}

// CodeLocationContains applies the Contains predicate on the "code_location" field.
func CodeLocationContains(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContains(FieldCodeLocation, v))
}

// CodeLocationHasPrefix applies the HasPrefix predicate on the "code_location" field.
func CodeLocationHasPrefix(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldHasPrefix(FieldCodeLocation, v))
}

// CodeLocationHasSuffix applies the HasSuffix predicate on the "code_location" field.
func CodeLocationHasSuffix(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldHasSuffix(FieldCodeLocation, v))
}

// CodeLocationIsNil applies the IsNil predicate on the "code_location" field.
func CodeLocationIsNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIsNull(FieldCodeLocation))
}

// CodeLocationNotNil applies the NotNil predicate on the "code_location" field.
func CodeLocationNotNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotNull(FieldCodeLocation))
}

// CodeLocationEqualFold applies the EqualFold predicate on the "code_location" field.
func CodeLocationEqualFold(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEqualFold(FieldCodeLocation, v))
}

// CodeLocationContainsFold applies the ContainsFold predicate on the "code_location" field.
func CodeLocationContainsFold(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContainsFold(FieldCodeLocation, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// StdoutEQ applies the EQ predicate on the "stdout" field.
func StdoutEQ(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldStdout, v))
}

// StdoutNEQ applies the NEQ predicate on the "stdout" field.
func StdoutNEQ(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNEQ(FieldStdout, v))
}

// StdoutIn applies the In predicate on the "stdout" field.
func StdoutIn(vs ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIn(FieldStdout, vs...))
}

// StdoutNotIn applies the NotIn predicate on the "stdout" field.
func StdoutNotIn(vs ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotIn(FieldStdout, vs...))
}

// StdoutGT applies the GT predicate on the "stdout" field.
func StdoutGT(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGT(FieldStdout, v))
}

// StdoutGTE applies the GTE predicate on the "stdout" field.
func StdoutGTE(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGTE(FieldStdout, v))
}

// StdoutLT applies the LT predicate on the "stdout" field.
func StdoutLT(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLT(FieldStdout, v))
}

// StdoutLTE applies the LTE predicate on the "stdout" field.
func StdoutLTE(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLTE(FieldStdout, v))
}

// StdoutContains applies the Contains predicate on the "stdout" field.
func StdoutContains(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContains(FieldStdout, v))
}

// StdoutHasPrefix applies the HasPrefix predicate on the "stdout" field.
func StdoutHasPrefix(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldHasPrefix(FieldStdout, v))
}

// StdoutHasSuffix applies the HasSuffix predicate on the "stdout" field.
func StdoutHasSuffix(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldHasSuffix(FieldStdout, v))
}

// StdoutIsNil applies the IsNil predicate on the "stdout" field.
func StdoutIsNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIsNull(FieldStdout))
}

// StdoutNotNil applies the NotNil predicate on the "stdout" field.
func StdoutNotNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotNull(FieldStdout))
}

// StdoutEqualFold applies the EqualFold predicate on the "stdout" field.
func StdoutEqualFold(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEqualFold(FieldStdout, v))
}

// StdoutContainsFold applies the ContainsFold predicate on the "stdout" field.
func StdoutContainsFold(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContainsFold(FieldStdout, v))
}

// StderrEQ applies the EQ predicate on the "stderr" field.
func StderrEQ(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldStderr, v))
}

// StderrNEQ applies the NEQ predicate on the "stderr" field.
func StderrNEQ(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNEQ(FieldStderr, v))
}

// StderrIn applies the In predicate on the "stderr" field.
func StderrIn(vs ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIn(FieldStderr, vs...))
}

// StderrNotIn applies the NotIn predicate on the "stderr" field.
func StderrNotIn(vs ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotIn(FieldStderr, vs...))
}

// StderrGT applies the GT predicate on the "stderr" field.
func StderrGT(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGT(FieldStderr, v))
}

// StderrGTE applies the GTE predicate on the "stderr" field.
func StderrGTE(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGTE(FieldStderr, v))
}

// StderrLT applies the LT predicate on the "stderr" field.
func StderrLT(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLT(FieldStderr, v))
}

// StderrLTE applies the LTE predicate on the "stderr" field.
func StderrLTE(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLTE(FieldStderr, v))
}

// StderrContains applies the Contains predicate on the "stderr" field.
func StderrContains(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContains(FieldStderr, v))
}

// StderrHasPrefix applies the HasPrefix predicate on the "stderr" field.
func StderrHasPrefix(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldHasPrefix(FieldStderr, v))
}

// StderrHasSuffix applies the HasSuffix predicate on the "stderr" field.
func StderrHasSuffix(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldHasSuffix(FieldStderr, v))
}

// StderrIsNil applies the IsNil predicate on the "stderr" field.
func StderrIsNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIsNull(FieldStderr))
}

// StderrNotNil applies the NotNil predicate on the "stderr" field.
func StderrNotNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotNull(FieldStderr))
}

// StderrEqualFold applies the EqualFold predicate on the "stderr" field.
func StderrEqualFold(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEqualFold(FieldStderr, v))
}

// StderrContainsFold applies the ContainsFold predicate on the "stderr" field.
func StderrContainsFold(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContainsFold(FieldStderr, v))
}

// ExitCodeEQ applies the EQ predicate on the "exit_code" field.
func ExitCodeEQ(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldExitCode, v))
}

// ExitCodeNEQ applies the NEQ predicate on the "exit_code" field.
func ExitCodeNEQ(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNEQ(FieldExitCode, v))
}

// ExitCodeIn applies the In predicate on the "exit_code" field.
func ExitCodeIn(vs ...int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIn(FieldExitCode, vs...))
}

// ExitCodeNotIn applies the NotIn predicate on the "exit_code" field.
func ExitCodeNotIn(vs ...int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotIn(FieldExitCode, vs...))
}

// ExitCodeGT applies the GT predicate on the "exit_code" field.
func ExitCodeGT(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGT(FieldExitCode, v))
}

// ExitCodeGTE applies the GTE predicate on the "exit_code" field.
func ExitCodeGTE(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGTE(FieldExitCode, v))
}

// ExitCodeLT applies the LT predicate on the "exit_code" field.
func ExitCodeLT(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLT(FieldExitCode, v))
}

// ExitCodeLTE applies the LTE predicate on the "exit_code" field.
func ExitCodeLTE(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLTE(FieldExitCode, v))
}

// ExitCodeIsNil applies the IsNil predicate on the "exit_code" field.
func ExitCodeIsNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIsNull(FieldExitCode))
}

// ExitCodeNotNil applies the NotNil predicate on the "exit_code" field.
func ExitCodeNotNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotNull(FieldExitCode))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotNull(FieldCompletedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotNull(FieldDurationMs))
}

// PeakMemoryMBEQ applies the EQ predicate on the "peak_memory_mb" field.
func PeakMemoryMBEQ(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldPeakMemoryMB, v))
}

// PeakMemoryMBNEQ applies the NEQ predicate on the "peak_memory_mb" field.
func PeakMemoryMBNEQ(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNEQ(FieldPeakMemoryMB, v))
}

// PeakMemoryMBIn applies the In predicate on the "peak_memory_mb" field.
func PeakMemoryMBIn(vs ...int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIn(FieldPeakMemoryMB, vs...))
}

// PeakMemoryMBNotIn applies the NotIn predicate on the "peak_memory_mb" field.
func PeakMemoryMBNotIn(vs ...int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotIn(FieldPeakMemoryMB, vs...))
}

// PeakMemoryMBGT applies the GT predicate on the "peak_memory_mb" field.
func PeakMemoryMBGT(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGT(FieldPeakMemoryMB, v))
}

// PeakMemoryMBGTE applies the GTE predicate on the "peak_memory_mb" field.
func PeakMemoryMBGTE(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGTE(FieldPeakMemoryMB, v))
}

// PeakMemoryMBLT applies the LT predicate on the "peak_memory_mb" field.
func PeakMemoryMBLT(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLT(FieldPeakMemoryMB, v))
}

// PeakMemoryMBLTE applies the LTE predicate on the "peak_memory_mb" field.
func PeakMemoryMBLTE(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLTE(FieldPeakMemoryMB, v))
}

// PeakMemoryMBIsNil applies the IsNil predicate on the "peak_memory_mb" field.
func PeakMemoryMBIsNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIsNull(FieldPeakMemoryMB))
}

// PeakMemoryMBNotNil applies the NotNil predicate on the "peak_memory_mb" field.
func PeakMemoryMBNotNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotNull(FieldPeakMemoryMB))
}

// CPUPercentEQ applies the EQ predicate on the "cpu_percent" field.
func CPUPercentEQ(v float64) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldCPUPercent, v))
}

// CPUPercentNEQ applies the NEQ predicate on the "cpu_percent" field.
func CPUPercentNEQ(v float64) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNEQ(FieldCPUPercent, v))
}

// CPUPercentIn applies the In predicate on the "cpu_percent" field.
func CPUPercentIn(vs ...float64) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIn(FieldCPUPercent, vs...))
}

// CPUPercentNotIn applies the NotIn predicate on the "cpu_percent" field.
func CPUPercentNotIn(vs ...float64) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotIn(FieldCPUPercent, vs...))
}

// CPUPercentGT applies the GT predicate on the "cpu_percent" field.
func CPUPercentGT(v float64) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGT(FieldCPUPercent, v))
}

// CPUPercentGTE applies the GTE predicate on the "cpu_percent" field.
func CPUPercentGTE(v float64) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGTE(FieldCPUPercent, v))
}

// CPUPercentLT applies the LT predicate on the "cpu_percent" field.
func CPUPercentLT(v float64) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLT(FieldCPUPercent, v))
}

// CPUPercentLTE applies the LTE predicate on the "cpu_percent" field.
func CPUPercentLTE(v float64) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLTE(FieldCPUPercent, v))
}

// CPUPercentIsNil applies the IsNil predicate on the "cpu_percent" field.
func CPUPercentIsNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIsNull(FieldCPUPercent))
}

// CPUPercentNotNil applies the NotNil predicate on the "cpu_percent" field.
func CPUPercentNotNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotNull(FieldCPUPercent))
}

// ContainerIDEQ applies the EQ predicate on the "container_id" field.
func ContainerIDEQ(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldContainerID, v))
}

// ContainerIDNEQ applies the NEQ predicate on the "container_id" field.
func ContainerIDNEQ(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNEQ(FieldContainerID, v))
}

// ContainerIDIn applies the In predicate on the "container_id" field.
func ContainerIDIn(vs ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIn(FieldContainerID, vs...))
}

// ContainerIDNotIn applies the NotIn predicate on the "container_id" field.
func ContainerIDNotIn(vs ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotIn(FieldContainerID, vs...))
}

// ContainerIDGT applies the GT predicate on the "container_id" field.
func ContainerIDGT(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGT(FieldContainerID, v))
}

// ContainerIDGTE applies the GTE predicate on the "container_id" field.
func ContainerIDGTE(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGTE(FieldContainerID, v))
}

// ContainerIDLT applies the LT predicate on the "container_id" field.
func ContainerIDLT(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLT(FieldContainerID, v))
}

// ContainerIDLTE applies the LTE predicate on the "container_id" field.
func ContainerIDLTE(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLTE(FieldContainerID, v))
}

// ContainerIDContains applies the Contains predicate on the "container_id" field.
func ContainerIDContains(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContains(FieldContainerID, v))
}

// ContainerIDHasPrefix applies the HasPrefix predicate on the "container_id" field.
func ContainerIDHasPrefix(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldHasPrefix(FieldContainerID, v))
}

// ContainerIDHasSuffix applies the HasSuffix predicate on the "container_id" field.
func ContainerIDHasSuffix(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldHasSuffix(FieldContainerID, v))
}

// ContainerIDIsNil applies the IsNil predicate on the "container_id" field.
func ContainerIDIsNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIsNull(FieldContainerID))
}

// ContainerIDNotNil applies the NotNil predicate on the "container_id" field.
func ContainerIDNotNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotNull(FieldContainerID))
}

// ContainerIDEqualFold applies the EqualFold predicate on the "container_id" field.
func ContainerIDEqualFold(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEqualFold(FieldContainerID, v))
}

// ContainerIDContainsFold applies the ContainsFold predicate on the "container_id" field.
func ContainerIDContainsFold(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContainsFold(FieldContainerID, v))
}

// TimeoutSecondsEQ applies the EQ predicate on the "timeout_seconds" field.
func TimeoutSecondsEQ(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldTimeoutSeconds, v))
}

// TimeoutSecondsNEQ applies the NEQ predicate on the "timeout_seconds" field.
func TimeoutSecondsNEQ(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNEQ(FieldTimeoutSeconds, v))
}

// TimeoutSecondsIn applies the In predicate on the "timeout_seconds" field.
func TimeoutSecondsIn(vs ...int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIn(FieldTimeoutSeconds, vs...))
}

// TimeoutSecondsNotIn applies the NotIn predicate on the "timeout_seconds" field.
func TimeoutSecondsNotIn(vs ...int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotIn(FieldTimeoutSeconds, vs...))
}

// TimeoutSecondsGT applies the GT predicate on the "timeout_seconds" field.
func TimeoutSecondsGT(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGT(FieldTimeoutSeconds, v))
}

// TimeoutSecondsGTE applies the GTE predicate on the "timeout_seconds" field.
func TimeoutSecondsGTE(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGTE(FieldTimeoutSeconds, v))
}

// TimeoutSecondsLT applies the LT predicate on the "timeout_seconds" field.
func TimeoutSecondsLT(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLT(FieldTimeoutSeconds, v))
}

// TimeoutSecondsLTE applies the LTE predicate on the "timeout_seconds" field.
func TimeoutSecondsLTE(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLTE(FieldTimeoutSeconds, v))
}

// MemoryLimitMBEQ applies the EQ predicate on the "memory_limit_mb" field.
func MemoryLimitMBEQ(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldMemoryLimitMB, v))
}

// MemoryLimitMBNEQ applies the NEQ predicate on the "memory_limit_mb" field.
func MemoryLimitMBNEQ(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNEQ(FieldMemoryLimitMB, v))
}

// MemoryLimitMBIn applies the In predicate on the "memory_limit_mb" field.
func MemoryLimitMBIn(vs ...int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIn(FieldMemoryLimitMB, vs...))
}

// MemoryLimitMBNotIn applies the NotIn predicate on the "memory_limit_mb" field.
func MemoryLimitMBNotIn(vs ...int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotIn(FieldMemoryLimitMB, vs...))
}

// MemoryLimitMBGT applies the GT predicate on the "memory_limit_mb" field.
func MemoryLimitMBGT(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGT(FieldMemoryLimitMB, v))
}

// MemoryLimitMBGTE applies the GTE predicate on the "memory_limit_mb" field.
func MemoryLimitMBGTE(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGTE(FieldMemoryLimitMB, v))
}

// MemoryLimitMBLT applies the LT predicate on the "memory_limit_mb" field.
func MemoryLimitMBLT(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLT(FieldMemoryLimitMB, v))
}

// MemoryLimitMBLTE applies the LTE predicate on the "memory_limit_mb" field.
func MemoryLimitMBLTE(v int) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLTE(FieldMemoryLimitMB, v))
}

// ErrorTypeEQ applies the EQ predicate on the "error_type" field.
func ErrorTypeEQ(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldErrorType, v))
}

// ErrorTypeNEQ applies the NEQ predicate on the "error_type" field.
func ErrorTypeNEQ(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNEQ(FieldErrorType, v))
}

// ErrorTypeIn applies the In predicate on the "error_type" field.
func ErrorTypeIn(vs ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIn(FieldErrorType, vs...))
}

// ErrorTypeNotIn applies the NotIn predicate on the "error_type" field.
func ErrorTypeNotIn(vs ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotIn(FieldErrorType, vs...))
}

// ErrorTypeGT applies the GT predicate on the "error_type" field.
func ErrorTypeGT(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGT(FieldErrorType, v))
}

// ErrorTypeGTE applies the GTE predicate on the "error_type" field.
func ErrorTypeGTE(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGTE(FieldErrorType, v))
}

// ErrorTypeLT applies the LT predicate on the "error_type" field.
func ErrorTypeLT(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLT(FieldErrorType, v))
}

// ErrorTypeLTE applies the LTE predicate on the "error_type" field.
func ErrorTypeLTE(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLTE(FieldErrorType, v))
}

// ErrorTypeContains applies the Contains predicate on the "error_type" field.
func ErrorTypeContains(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContains(FieldErrorType, v))
}

// ErrorTypeHasPrefix applies the HasPrefix predicate on the "error_type" field.
func ErrorTypeHasPrefix(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldHasPrefix(FieldErrorType, v))
}

// ErrorTypeHasSuffix applies the HasSuffix predicate on the "error_type" field.
func ErrorTypeHasSuffix(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldHasSuffix(FieldErrorType, v))
}

// ErrorTypeIsNil applies the IsNil predicate on the "error_type" field.
func ErrorTypeIsNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIsNull(FieldErrorType))
}

// ErrorTypeNotNil applies the NotNil predicate on the "error_type" field.
func ErrorTypeNotNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotNull(FieldErrorType))
}

// ErrorTypeEqualFold applies the EqualFold predicate on the "error_type" field.
func ErrorTypeEqualFold(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEqualFold(FieldErrorType, v))
}

// ErrorTypeContainsFold applies the ContainsFold predicate on the "error_type" field.
func ErrorTypeContainsFold(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContainsFold(FieldErrorType, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.SandboxExecution {
	return predicate.SandboxExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.TaskRun) predicate.SandboxExecution {
	return predicate.SandboxExecution(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SandboxExecution) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SandboxExecution) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SandboxExecution) predicate.SandboxExecution {
	return predicate.SandboxExecution(sql.NotPredicates(p))
}
