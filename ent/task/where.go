// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mgx-dev/mgx/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldWorkspaceID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldProjectID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// MaxRounds applies equality check predicate on the "max_rounds" field. It's identical to MaxRoundsEQ.
func MaxRounds(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldMaxRounds, v))
}

// MaxRevisionRounds applies equality check predicate on the "max_revision_rounds" field. It's identical to MaxRevisionRoundsEQ.
func MaxRevisionRounds(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldMaxRevisionRounds, v))
}

// BranchPrefix applies equality check predicate on the "branch_prefix" field. It's identical to BranchPrefixEQ.
func BranchPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldBranchPrefix, v))
}

// CommitTemplate applies equality check predicate on the "commit_template" field. It's identical to CommitTemplateEQ.
func CommitTemplate(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCommitTemplate, v))
}

// TotalRuns applies equality check predicate on the "total_runs" field. It's identical to TotalRunsEQ.
func TotalRuns(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTotalRuns, v))
}

// SuccessfulRuns applies equality check predicate on the "successful_runs" field. It's identical to SuccessfulRunsEQ.
func SuccessfulRuns(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldSuccessfulRuns, v))
}

// FailedRuns applies equality check predicate on the "failed_runs" field. It's identical to FailedRunsEQ.
func FailedRuns(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldFailedRuns, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldProjectID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldDescription, v))
}

// ConfigIsNil applies the IsNil predicate on the "config" field.
func ConfigIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldConfig))
}

// ConfigNotNil applies the NotNil predicate on the "config" field.
func ConfigNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldConfig))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStatus, vs...))
}

// MaxRoundsEQ applies the EQ predicate on the "max_rounds" field.
func MaxRoundsEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldMaxRounds, v))
}

// MaxRoundsNEQ applies the NEQ predicate on the "max_rounds" field.
func MaxRoundsNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldMaxRounds, v))
}

// MaxRoundsIn applies the In predicate on the "max_rounds" field.
func MaxRoundsIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldMaxRounds, vs...))
}

// MaxRoundsNotIn applies the NotIn predicate on the "max_rounds" field.
func MaxRoundsNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldMaxRounds, vs...))
}

// MaxRoundsGT applies the GT predicate on the "max_rounds" field.
func MaxRoundsGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldMaxRounds, v))
}

// MaxRoundsGTE applies the GTE predicate on the "max_rounds" field.
func MaxRoundsGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldMaxRounds, v))
}

// MaxRoundsLT applies the LT predicate on the "max_rounds" field.
func MaxRoundsLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldMaxRounds, v))
}

// MaxRoundsLTE applies the LTE predicate on the "max_rounds" field.
func MaxRoundsLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldMaxRounds, v))
}

// MaxRevisionRoundsEQ applies the EQ predicate on the "max_revision_rounds" field.
func MaxRevisionRoundsEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldMaxRevisionRounds, v))
}

// MaxRevisionRoundsNEQ applies the NEQ predicate on the "max_revision_rounds" field.
func MaxRevisionRoundsNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldMaxRevisionRounds, v))
}

// MaxRevisionRoundsIn applies the In predicate on the "max_revision_rounds" field.
func MaxRevisionRoundsIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldMaxRevisionRounds, vs...))
}

// MaxRevisionRoundsNotIn applies the NotIn predicate on the "max_revision_rounds" field.
func MaxRevisionRoundsNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldMaxRevisionRounds, vs...))
}

// MaxRevisionRoundsGT applies the GT predicate on the "max_revision_rounds" field.
func MaxRevisionRoundsGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldMaxRevisionRounds, v))
}

// MaxRevisionRoundsGTE applies the GTE predicate on the "max_revision_rounds" field.
func MaxRevisionRoundsGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldMaxRevisionRounds, v))
}

// MaxRevisionRoundsLT applies the LT predicate on the "max_revision_rounds" field.
func MaxRevisionRoundsLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldMaxRevisionRounds, v))
}

// MaxRevisionRoundsLTE applies the LTE predicate on the "max_revision_rounds" field.
func MaxRevisionRoundsLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldMaxRevisionRounds, v))
}

// BranchPrefixEQ applies the EQ predicate on the "branch_prefix" field.
func BranchPrefixEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldBranchPrefix, v))
}

// BranchPrefixNEQ applies the NEQ predicate on the "branch_prefix" field.
func BranchPrefixNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldBranchPrefix, v))
}

// BranchPrefixIn applies the In predicate on the "branch_prefix" field.
func BranchPrefixIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldBranchPrefix, vs...))
}

// BranchPrefixNotIn applies the NotIn predicate on the "branch_prefix" field.
func BranchPrefixNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldBranchPrefix, vs...))
}

// BranchPrefixGT applies the GT predicate on the "branch_prefix" field.
func BranchPrefixGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldBranchPrefix, v))
}

// BranchPrefixGTE applies the GTE predicate on the "branch_prefix" field.
func BranchPrefixGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldBranchPrefix, v))
}

// BranchPrefixLT applies the LT predicate on the "branch_prefix" field.
func BranchPrefixLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldBranchPrefix, v))
}

// BranchPrefixLTE applies the LTE predicate on the "branch_prefix" field.
func BranchPrefixLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldBranchPrefix, v))
}

// BranchPrefixContains applies the Contains predicate on the "branch_prefix" field.
func BranchPrefixContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldBranchPrefix, v))
}

// BranchPrefixHasPrefix applies the HasPrefix predicate on the "branch_prefix" field.
func BranchPrefixHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldBranchPrefix, v))
}

// BranchPrefixHasSuffix applies the HasSuffix predicate on the "branch_prefix" field.
func BranchPrefixHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldBranchPrefix, v))
}

// BranchPrefixIsNil applies the IsNil predicate on the "branch_prefix" field.
func BranchPrefixIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldBranchPrefix))
}

// BranchPrefixNotNil applies the NotNil predicate on the "branch_prefix" field.
func BranchPrefixNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldBranchPrefix))
}

// BranchPrefixEqualFold applies the EqualFold predicate on the "branch_prefix" field.
func BranchPrefixEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldBranchPrefix, v))
}

// BranchPrefixContainsFold applies the ContainsFold predicate on the "branch_prefix" field.
func BranchPrefixContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldBranchPrefix, v))
}

// CommitTemplateEQ applies the EQ predicate on the "commit_template" field.
func CommitTemplateEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCommitTemplate, v))
}

// CommitTemplateNEQ applies the NEQ predicate on the "commit_template" field.
func CommitTemplateNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCommitTemplate, v))
}

// CommitTemplateIn applies the In predicate on the "commit_template" field.
func CommitTemplateIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCommitTemplate, vs...))
}

// CommitTemplateNotIn applies the NotIn predicate on the "commit_template" field.
func CommitTemplateNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCommitTemplate, vs...))
}

// CommitTemplateGT applies the GT predicate on the "commit_template" field.
func CommitTemplateGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCommitTemplate, v))
}

// CommitTemplateGTE applies the GTE predicate on the "commit_template" field.
func CommitTemplateGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCommitTemplate, v))
}

// CommitTemplateLT applies the LT predicate on the "commit_template" field.
func CommitTemplateLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCommitTemplate, v))
}

// CommitTemplateLTE applies the LTE predicate on the "commit_template" field.
func CommitTemplateLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCommitTemplate, v))
}

// CommitTemplateContains applies the Contains predicate on the "commit_template" field.
func CommitTemplateContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldCommitTemplate, v))
}

// CommitTemplateHasPrefix applies the HasPrefix predicate on the "commit_template" field.
func CommitTemplateHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldCommitTemplate, v))
}

// CommitTemplateHasSuffix applies the HasSuffix predicate on the "commit_template" field.
func CommitTemplateHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldCommitTemplate, v))
}

// CommitTemplateIsNil applies the IsNil predicate on the "commit_template" field.
func CommitTemplateIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCommitTemplate))
}

// CommitTemplateNotNil applies the NotNil predicate on the "commit_template" field.
func CommitTemplateNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCommitTemplate))
}

// CommitTemplateEqualFold applies the EqualFold predicate on the "commit_template" field.
func CommitTemplateEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldCommitTemplate, v))
}

// CommitTemplateContainsFold applies the ContainsFold predicate on the "commit_template" field.
func CommitTemplateContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldCommitTemplate, v))
}

// TotalRunsEQ applies the EQ predicate on the "total_runs" field.
func TotalRunsEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTotalRuns, v))
}

// TotalRunsNEQ applies the NEQ predicate on the "total_runs" field.
func TotalRunsNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTotalRuns, v))
}

// TotalRunsIn applies the In predicate on the "total_runs" field.
func TotalRunsIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTotalRuns, vs...))
}

// TotalRunsNotIn applies the NotIn predicate on the "total_runs" field.
func TotalRunsNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTotalRuns, vs...))
}

// TotalRunsGT applies the GT predicate on the "total_runs" field.
func TotalRunsGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTotalRuns, v))
}

// TotalRunsGTE applies the GTE predicate on the "total_runs" field.
func TotalRunsGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTotalRuns, v))
}

// TotalRunsLT applies the LT predicate on the "total_runs" field.
func TotalRunsLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTotalRuns, v))
}

// TotalRunsLTE applies the LTE predicate on the "total_runs" field.
func TotalRunsLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTotalRuns, v))
}

// SuccessfulRunsEQ applies the EQ predicate on the "successful_runs" field.
func SuccessfulRunsEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldSuccessfulRuns, v))
}

// SuccessfulRunsNEQ applies the NEQ predicate on the "successful_runs" field.
func SuccessfulRunsNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldSuccessfulRuns, v))
}

// SuccessfulRunsIn applies the In predicate on the "successful_runs" field.
func SuccessfulRunsIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldSuccessfulRuns, vs...))
}

// SuccessfulRunsNotIn applies the NotIn predicate on the "successful_runs" field.
func SuccessfulRunsNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldSuccessfulRuns, vs...))
}

// SuccessfulRunsGT applies the GT predicate on the "successful_runs" field.
func SuccessfulRunsGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldSuccessfulRuns, v))
}

// SuccessfulRunsGTE applies the GTE predicate on the "successful_runs" field.
func SuccessfulRunsGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldSuccessfulRuns, v))
}

// SuccessfulRunsLT applies the LT predicate on the "successful_runs" field.
func SuccessfulRunsLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldSuccessfulRuns, v))
}

// SuccessfulRunsLTE applies the LTE predicate on the "successful_runs" field.
func SuccessfulRunsLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldSuccessfulRuns, v))
}

// FailedRunsEQ applies the EQ predicate on the "failed_runs" field.
func FailedRunsEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldFailedRuns, v))
}

// FailedRunsNEQ applies the NEQ predicate on the "failed_runs" field.
func FailedRunsNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldFailedRuns, v))
}

// FailedRunsIn applies the In predicate on the "failed_runs" field.
func FailedRunsIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldFailedRuns, vs...))
}

// FailedRunsNotIn applies the NotIn predicate on the "failed_runs" field.
func FailedRunsNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldFailedRuns, vs...))
}

// FailedRunsGT applies the GT predicate on the "failed_runs" field.
func FailedRunsGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldFailedRuns, v))
}

// FailedRunsGTE applies the GTE predicate on the "failed_runs" field.
func FailedRunsGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldFailedRuns, v))
}

// FailedRunsLT applies the LT predicate on the "failed_runs" field.
func FailedRunsLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldFailedRuns, v))
}

// FailedRunsLTE applies the LTE predicate on the "failed_runs" field.
func FailedRunsLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldFailedRuns, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRuns applies the HasEdge predicate on the "runs" edge.
func HasRuns() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunsWith applies the HasEdge predicate on the "runs" edge with a given conditions (other predicates).
func HasRunsWith(preds ...predicate.TaskRun) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
