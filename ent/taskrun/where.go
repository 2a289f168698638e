// Code generated by ent, DO NOT EDIT.

package taskrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mgx-dev/mgx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldTaskID, v))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldWorkspaceID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldProjectID, v))
}

// RunNumber applies equality check predicate on the "run_number" field. It's identical to RunNumberEQ.
func RunNumber(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldRunNumber, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldDurationMs, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldErrorMessage, v))
}

// RoundCount applies equality check predicate on the "round_count" field. It's identical to RoundCountEQ.
func RoundCount(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldRoundCount, v))
}

// BranchName applies equality check predicate on the "branch_name" field. It's identical to BranchNameEQ.
func BranchName(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldBranchName, v))
}

// CommitSha applies equality check predicate on the "commit_sha" field. It's identical to CommitShaEQ.
func CommitSha(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldCommitSha, v))
}

// PrURL applies equality check predicate on the "pr_url" field. It's identical to PrURLEQ.
func PrURL(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldPrURL, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldPodID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContainsFold(FieldTaskID, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContainsFold(FieldProjectID, v))
}

// RunNumberEQ applies the EQ predicate on the "run_number" field.
func RunNumberEQ(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldRunNumber, v))
}

// RunNumberNEQ applies the NEQ predicate on the "run_number" field.
func RunNumberNEQ(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldRunNumber, v))
}

// RunNumberIn applies the In predicate on the "run_number" field.
func RunNumberIn(vs ...int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldRunNumber, vs...))
}

// RunNumberNotIn applies the NotIn predicate on the "run_number" field.
func RunNumberNotIn(vs ...int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldRunNumber, vs...))
}

// RunNumberGT applies the GT predicate on the "run_number" field.
func RunNumberGT(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldRunNumber, v))
}

// RunNumberGTE applies the GTE predicate on the "run_number" field.
func RunNumberGTE(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldRunNumber, v))
}

// RunNumberLT applies the LT predicate on the "run_number" field.
func RunNumberLT(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldRunNumber, v))
}

// RunNumberLTE applies the LTE predicate on the "run_number" field.
func RunNumberLTE(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldRunNumber, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldStatus, vs...))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v Phase) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v Phase) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...Phase) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...Phase) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldPhase, vs...))
}

// PlanIsNil applies the IsNil predicate on the "plan" field.
func PlanIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldPlan))
}

// PlanNotNil applies the NotNil predicate on the "plan" field.
func PlanNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldPlan))
}

// ResultsIsNil applies the IsNil predicate on the "results" field.
func ResultsIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldResults))
}

// ResultsNotNil applies the NotNil predicate on the "results" field.
func ResultsNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldResults))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldCompletedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldDurationMs))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContainsFold(FieldErrorKind, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RoundCountEQ applies the EQ predicate on the "round_count" field.
func RoundCountEQ(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldRoundCount, v))
}

// RoundCountNEQ applies the NEQ predicate on the "round_count" field.
func RoundCountNEQ(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldRoundCount, v))
}

// RoundCountIn applies the In predicate on the "round_count" field.
func RoundCountIn(vs ...int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldRoundCount, vs...))
}

// RoundCountNotIn applies the NotIn predicate on the "round_count" field.
func RoundCountNotIn(vs ...int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldRoundCount, vs...))
}

// RoundCountGT applies the GT predicate on the "round_count" field.
func RoundCountGT(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldRoundCount, v))
}

// RoundCountGTE applies the GTE predicate on the "round_count" field.
func RoundCountGTE(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldRoundCount, v))
}

// RoundCountLT applies the LT predicate on the "round_count" field.
func RoundCountLT(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldRoundCount, v))
}

// RoundCountLTE applies the LTE predicate on the "round_count" field.
func RoundCountLTE(v int) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldRoundCount, v))
}

// BranchNameEQ applies the EQ predicate on the "branch_name" field.
func BranchNameEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldBranchName, v))
}

// BranchNameNEQ applies the NEQ predicate on the "branch_name" field.
func BranchNameNEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldBranchName, v))
}

// BranchNameIn applies the In predicate on the "branch_name" field.
func BranchNameIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldBranchName, vs...))
}

// BranchNameNotIn applies the NotIn predicate on the "branch_name" field.
func BranchNameNotIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldBranchName, vs...))
}

// BranchNameGT applies the GT predicate on the "branch_name" field.
func BranchNameGT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldBranchName, v))
}

// BranchNameGTE applies the GTE predicate on the "branch_name" field.
func BranchNameGTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldBranchName, v))
}

// BranchNameLT applies the LT predicate on the "branch_name" field.
func BranchNameLT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldBranchName, v))
}

// BranchNameLTE applies the LTE predicate on the "branch_name" field.
func BranchNameLTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldBranchName, v))
}

// BranchNameContains applies the Contains predicate on the "branch_name" field.
func BranchNameContains(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContains(FieldBranchName, v))
}

// BranchNameHasPrefix applies the HasPrefix predicate on the "branch_name" field.
func BranchNameHasPrefix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasPrefix(FieldBranchName, v))
}

// BranchNameHasSuffix applies the HasSuffix predicate on the "branch_name" field.
func BranchNameHasSuffix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasSuffix(FieldBranchName, v))
}

// BranchNameIsNil applies the IsNil predicate on the "branch_name" field.
func BranchNameIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldBranchName))
}

// BranchNameNotNil applies the NotNil predicate on the "branch_name" field.
func BranchNameNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldBranchName))
}

// BranchNameEqualFold applies the EqualFold predicate on the "branch_name" field.
func BranchNameEqualFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEqualFold(FieldBranchName, v))
}

// BranchNameContainsFold applies the ContainsFold predicate on the "branch_name" field.
func BranchNameContainsFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContainsFold(FieldBranchName, v))
}

// CommitShaEQ applies the EQ predicate on the "commit_sha" field.
func CommitShaEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldCommitSha, v))
}

// CommitShaNEQ applies the NEQ predicate on the "commit_sha" field.
func CommitShaNEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldCommitSha, v))
}

// CommitShaIn applies the In predicate on the "commit_sha" field.
func CommitShaIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldCommitSha, vs...))
}

// CommitShaNotIn applies the NotIn predicate on the "commit_sha" field.
func CommitShaNotIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldCommitSha, vs...))
}

// CommitShaGT applies the GT predicate on the "commit_sha" field.
func CommitShaGT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldCommitSha, v))
}

// CommitShaGTE applies the GTE predicate on the "commit_sha" field.
func CommitShaGTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldCommitSha, v))
}

// CommitShaLT applies the LT predicate on the "commit_sha" field.
func CommitShaLT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldCommitSha, v))
}

// CommitShaLTE applies the LTE predicate on the "commit_sha" field.
func CommitShaLTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldCommitSha, v))
}

// CommitShaContains applies the Contains predicate on the "commit_sha" field.
func CommitShaContains(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContains(FieldCommitSha, v))
}

// CommitShaHasPrefix applies the HasPrefix predicate on the "commit_sha" field.
func CommitShaHasPrefix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasPrefix(FieldCommitSha, v))
}

// CommitShaHasSuffix applies the HasSuffix predicate on the "commit_sha" field.
func CommitShaHasSuffix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasSuffix(FieldCommitSha, v))
}

// CommitShaIsNil applies the IsNil predicate on the "commit_sha" field.
func CommitShaIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldCommitSha))
}

// CommitShaNotNil applies the NotNil predicate on the "commit_sha" field.
func CommitShaNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldCommitSha))
}

// CommitShaEqualFold applies the EqualFold predicate on the "commit_sha" field.
func CommitShaEqualFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEqualFold(FieldCommitSha, v))
}

// CommitShaContainsFold applies the ContainsFold predicate on the "commit_sha" field.
func CommitShaContainsFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContainsFold(FieldCommitSha, v))
}

// PrURLEQ applies the EQ predicate on the "pr_url" field.
func PrURLEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldPrURL, v))
}

// PrURLNEQ applies the NEQ predicate on the "pr_url" field.
func PrURLNEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldPrURL, v))
}

// PrURLIn applies the In predicate on the "pr_url" field.
func PrURLIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldPrURL, vs...))
}

// PrURLNotIn applies the NotIn predicate on the "pr_url" field.
func PrURLNotIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldPrURL, vs...))
}

// PrURLGT applies the GT predicate on the "pr_url" field.
func PrURLGT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldPrURL, v))
}

// PrURLGTE applies the GTE predicate on the "pr_url" field.
func PrURLGTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldPrURL, v))
}

// PrURLLT applies the LT predicate on the "pr_url" field.
func PrURLLT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldPrURL, v))
}

// PrURLLTE applies the LTE predicate on the "pr_url" field.
func PrURLLTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldPrURL, v))
}

// PrURLContains applies the Contains predicate on the "pr_url" field.
func PrURLContains(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContains(FieldPrURL, v))
}

// PrURLHasPrefix applies the HasPrefix predicate on the "pr_url" field.
func PrURLHasPrefix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasPrefix(FieldPrURL, v))
}

// PrURLHasSuffix applies the HasSuffix predicate on the "pr_url" field.
func PrURLHasSuffix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasSuffix(FieldPrURL, v))
}

// PrURLIsNil applies the IsNil predicate on the "pr_url" field.
func PrURLIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldPrURL))
}

// PrURLNotNil applies the NotNil predicate on the "pr_url" field.
func PrURLNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldPrURL))
}

// PrURLEqualFold applies the EqualFold predicate on the "pr_url" field.
func PrURLEqualFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEqualFold(FieldPrURL, v))
}

// PrURLContainsFold applies the ContainsFold predicate on the "pr_url" field.
func PrURLContainsFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContainsFold(FieldPrURL, v))
}

// GitStatusEQ applies the EQ predicate on the "git_status" field.
func GitStatusEQ(v GitStatus) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldGitStatus, v))
}

// GitStatusNEQ applies the NEQ predicate on the "git_status" field.
func GitStatusNEQ(v GitStatus) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldGitStatus, v))
}

// GitStatusIn applies the In predicate on the "git_status" field.
func GitStatusIn(vs ...GitStatus) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldGitStatus, vs...))
}

// GitStatusNotIn applies the NotIn predicate on the "git_status" field.
func GitStatusNotIn(vs ...GitStatus) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldGitStatus, vs...))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldContainsFold(FieldPodID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TaskRun {
	return predicate.TaskRun(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.TaskRun {
	return predicate.TaskRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.TaskRun {
	return predicate.TaskRun(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSandboxExecutions applies the HasEdge predicate on the "sandbox_executions" edge.
func HasSandboxExecutions() predicate.TaskRun {
	return predicate.TaskRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SandboxExecutionsTable, SandboxExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSandboxExecutionsWith applies the HasEdge predicate on the "sandbox_executions" edge with a given conditions (other predicates).
func HasSandboxExecutionsWith(preds ...predicate.SandboxExecution) predicate.TaskRun {
	return predicate.TaskRun(func(s *sql.Selector) {
		step := newSandboxExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskRun) predicate.TaskRun {
	return predicate.TaskRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskRun) predicate.TaskRun {
	return predicate.TaskRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskRun) predicate.TaskRun {
	return predicate.TaskRun(sql.NotPredicates(p))
}
