// Code generated by ent, DO NOT EDIT.

package versionedrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/recapd/recapd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldLTE(FieldID, id))
}

// ResourceID applies equality check predicate on the "resource_id" field. It's identical to ResourceIDEQ.
func ResourceID(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEQ(FieldResourceID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEQ(FieldVersion, v))
}

// WorkflowRunID applies equality check predicate on the "workflow_run_id" field. It's identical to WorkflowRunIDEQ.
func WorkflowRunID(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEQ(FieldWorkflowRunID, v))
}

// Namespace applies equality check predicate on the "namespace" field. It's identical to NamespaceEQ.
func Namespace(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEQ(FieldNamespace, v))
}

// AdditionalInstructions applies equality check predicate on the "additional_instructions" field. It's identical to AdditionalInstructionsEQ.
func AdditionalInstructions(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEQ(FieldAdditionalInstructions, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// ResourceKindEQ applies the EQ predicate on the "resource_kind" field.
func ResourceKindEQ(v ResourceKind) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEQ(FieldResourceKind, v))
}

// ResourceKindNEQ applies the NEQ predicate on the "resource_kind" field.
func ResourceKindNEQ(v ResourceKind) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNEQ(FieldResourceKind, v))
}

// ResourceKindIn applies the In predicate on the "resource_kind" field.
func ResourceKindIn(vs ...ResourceKind) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldIn(FieldResourceKind, vs...))
}

// ResourceKindNotIn applies the NotIn predicate on the "resource_kind" field.
func ResourceKindNotIn(vs ...ResourceKind) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNotIn(FieldResourceKind, vs...))
}

// ResourceIDEQ applies the EQ predicate on the "resource_id" field.
func ResourceIDEQ(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEQ(FieldResourceID, v))
}

// ResourceIDNEQ applies the NEQ predicate on the "resource_id" field.
func ResourceIDNEQ(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNEQ(FieldResourceID, v))
}

// ResourceIDIn applies the In predicate on the "resource_id" field.
func ResourceIDIn(vs ...string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldIn(FieldResourceID, vs...))
}

// ResourceIDNotIn applies the NotIn predicate on the "resource_id" field.
func ResourceIDNotIn(vs ...string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNotIn(FieldResourceID, vs...))
}

// ResourceIDGT applies the GT predicate on the "resource_id" field.
func ResourceIDGT(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldGT(FieldResourceID, v))
}

// ResourceIDGTE applies the GTE predicate on the "resource_id" field.
func ResourceIDGTE(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldGTE(FieldResourceID, v))
}

// ResourceIDLT applies the LT predicate on the "resource_id" field.
func ResourceIDLT(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldLT(FieldResourceID, v))
}

// ResourceIDLTE applies the LTE predicate on the "resource_id" field.
func ResourceIDLTE(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldLTE(FieldResourceID, v))
}

// ResourceIDContains applies the Contains predicate on the "resource_id" field.
func ResourceIDContains(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldContains(FieldResourceID, v))
}

// ResourceIDHasPrefix applies the HasPrefix predicate on the "resource_id" field.
func ResourceIDHasPrefix(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldHasPrefix(FieldResourceID, v))
}

// ResourceIDHasSuffix applies the HasSuffix predicate on the "resource_id" field.
func ResourceIDHasSuffix(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldHasSuffix(FieldResourceID, v))
}

// ResourceIDEqualFold applies the EqualFold predicate on the "resource_id" field.
func ResourceIDEqualFold(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEqualFold(FieldResourceID, v))
}

// ResourceIDContainsFold applies the ContainsFold predicate on the "resource_id" field.
func ResourceIDContainsFold(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldContainsFold(FieldResourceID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldLTE(FieldVersion, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNotIn(FieldStatus, vs...))
}

// WorkflowRunIDEQ applies the EQ predicate on the "workflow_run_id" field.
func WorkflowRunIDEQ(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEQ(FieldWorkflowRunID, v))
}

// WorkflowRunIDNEQ applies the NEQ predicate on the "workflow_run_id" field.
func WorkflowRunIDNEQ(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNEQ(FieldWorkflowRunID, v))
}

// WorkflowRunIDIn applies the In predicate on the "workflow_run_id" field.
func WorkflowRunIDIn(vs ...string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldIn(FieldWorkflowRunID, vs...))
}

// WorkflowRunIDNotIn applies the NotIn predicate on the "workflow_run_id" field.
func WorkflowRunIDNotIn(vs ...string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNotIn(FieldWorkflowRunID, vs...))
}

// WorkflowRunIDGT applies the GT predicate on the "workflow_run_id" field.
func WorkflowRunIDGT(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldGT(FieldWorkflowRunID, v))
}

// WorkflowRunIDGTE applies the GTE predicate on the "workflow_run_id" field.
func WorkflowRunIDGTE(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldGTE(FieldWorkflowRunID, v))
}

// WorkflowRunIDLT applies the LT predicate on the "workflow_run_id" field.
func WorkflowRunIDLT(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldLT(FieldWorkflowRunID, v))
}

// WorkflowRunIDLTE applies the LTE predicate on the "workflow_run_id" field.
func WorkflowRunIDLTE(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldLTE(FieldWorkflowRunID, v))
}

// WorkflowRunIDContains applies the Contains predicate on the "workflow_run_id" field.
func WorkflowRunIDContains(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldContains(FieldWorkflowRunID, v))
}

// WorkflowRunIDHasPrefix applies the HasPrefix predicate on the "workflow_run_id" field.
func WorkflowRunIDHasPrefix(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldHasPrefix(FieldWorkflowRunID, v))
}

// WorkflowRunIDHasSuffix applies the HasSuffix predicate on the "workflow_run_id" field.
func WorkflowRunIDHasSuffix(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldHasSuffix(FieldWorkflowRunID, v))
}

// WorkflowRunIDIsNil applies the IsNil predicate on the "workflow_run_id" field.
func WorkflowRunIDIsNil() predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldIsNull(FieldWorkflowRunID))
}

// WorkflowRunIDNotNil applies the NotNil predicate on the "workflow_run_id" field.
func WorkflowRunIDNotNil() predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNotNull(FieldWorkflowRunID))
}

// WorkflowRunIDEqualFold applies the EqualFold predicate on the "workflow_run_id" field.
func WorkflowRunIDEqualFold(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEqualFold(FieldWorkflowRunID, v))
}

// WorkflowRunIDContainsFold applies the ContainsFold predicate on the "workflow_run_id" field.
func WorkflowRunIDContainsFold(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldContainsFold(FieldWorkflowRunID, v))
}

// NamespaceEQ applies the EQ predicate on the "namespace" field.
func NamespaceEQ(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEQ(FieldNamespace, v))
}

// NamespaceNEQ applies the NEQ predicate on the "namespace" field.
func NamespaceNEQ(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNEQ(FieldNamespace, v))
}

// NamespaceIn applies the In predicate on the "namespace" field.
func NamespaceIn(vs ...string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldIn(FieldNamespace, vs...))
}

// NamespaceNotIn applies the NotIn predicate on the "namespace" field.
func NamespaceNotIn(vs ...string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNotIn(FieldNamespace, vs...))
}

// NamespaceGT applies the GT predicate on the "namespace" field.
func NamespaceGT(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldGT(FieldNamespace, v))
}

// NamespaceGTE applies the GTE predicate on the "namespace" field.
func NamespaceGTE(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldGTE(FieldNamespace, v))
}

// NamespaceLT applies the LT predicate on the "namespace" field.
func NamespaceLT(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldLT(FieldNamespace, v))
}

// NamespaceLTE applies the LTE predicate on the "namespace" field.
func NamespaceLTE(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldLTE(FieldNamespace, v))
}

// NamespaceContains applies the Contains predicate on the "namespace" field.
func NamespaceContains(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldContains(FieldNamespace, v))
}

// NamespaceHasPrefix applies the HasPrefix predicate on the "namespace" field.
func NamespaceHasPrefix(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldHasPrefix(FieldNamespace, v))
}

// NamespaceHasSuffix applies the HasSuffix predicate on the "namespace" field.
func NamespaceHasSuffix(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldHasSuffix(FieldNamespace, v))
}

// NamespaceIsNil applies the IsNil predicate on the "namespace" field.
func NamespaceIsNil() predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldIsNull(FieldNamespace))
}

// NamespaceNotNil applies the NotNil predicate on the "namespace" field.
func NamespaceNotNil() predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNotNull(FieldNamespace))
}

// NamespaceEqualFold applies the EqualFold predicate on the "namespace" field.
func NamespaceEqualFold(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEqualFold(FieldNamespace, v))
}

// NamespaceContainsFold applies the ContainsFold predicate on the "namespace" field.
func NamespaceContainsFold(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldContainsFold(FieldNamespace, v))
}

// AdditionalInstructionsEQ applies the EQ predicate on the "additional_instructions" field.
func AdditionalInstructionsEQ(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEQ(FieldAdditionalInstructions, v))
}

// AdditionalInstructionsNEQ applies the NEQ predicate on the "additional_instructions" field.
func AdditionalInstructionsNEQ(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNEQ(FieldAdditionalInstructions, v))
}

// AdditionalInstructionsIn applies the In predicate on the "additional_instructions" field.
func AdditionalInstructionsIn(vs ...string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldIn(FieldAdditionalInstructions, vs...))
}

// AdditionalInstructionsNotIn applies the NotIn predicate on the "additional_instructions" field.
func AdditionalInstructionsNotIn(vs ...string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNotIn(FieldAdditionalInstructions, vs...))
}

// AdditionalInstructionsGT applies the GT predicate on the "additional_instructions" field.
func AdditionalInstructionsGT(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldGT(FieldAdditionalInstructions, v))
}

// AdditionalInstructionsGTE applies the GTE predicate on the "additional_instructions" field.
func AdditionalInstructionsGTE(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldGTE(FieldAdditionalInstructions, v))
}

// AdditionalInstructionsLT applies the LT predicate on the "additional_instructions" field.
func AdditionalInstructionsLT(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldLT(FieldAdditionalInstructions, v))
}

// AdditionalInstructionsLTE applies the LTE predicate on the "additional_instructions" field.
func AdditionalInstructionsLTE(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldLTE(FieldAdditionalInstructions, v))
}

// AdditionalInstructionsContains applies the Contains predicate on the "additional_instructions" field.
func AdditionalInstructionsContains(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldContains(FieldAdditionalInstructions, v))
}

// AdditionalInstructionsHasPrefix applies the HasPrefix predicate on the "additional_instructions" field.
func AdditionalInstructionsHasPrefix(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldHasPrefix(FieldAdditionalInstructions, v))
}

// AdditionalInstructionsHasSuffix applies the HasSuffix predicate on the "additional_instructions" field.
func AdditionalInstructionsHasSuffix(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldHasSuffix(FieldAdditionalInstructions, v))
}

// AdditionalInstructionsIsNil applies the IsNil predicate on the "additional_instructions" field.
func AdditionalInstructionsIsNil() predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldIsNull(FieldAdditionalInstructions))
}

// AdditionalInstructionsNotNil applies the NotNil predicate on the "additional_instructions" field.
func AdditionalInstructionsNotNil() predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNotNull(FieldAdditionalInstructions))
}

// AdditionalInstructionsEqualFold applies the EqualFold predicate on the "additional_instructions" field.
func AdditionalInstructionsEqualFold(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEqualFold(FieldAdditionalInstructions, v))
}

// AdditionalInstructionsContainsFold applies the ContainsFold predicate on the "additional_instructions" field.
func AdditionalInstructionsContainsFold(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldContainsFold(FieldAdditionalInstructions, v))
}

// ResultJSONIsNil applies the IsNil predicate on the "result_json" field.
func ResultJSONIsNil() predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldIsNull(FieldResultJSON))
}

// ResultJSONNotNil applies the NotNil predicate on the "result_json" field.
func ResultJSONNotNil() predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNotNull(FieldResultJSON))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.VersionedRun {
	return predicate.VersionedRun(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VersionedRun) predicate.VersionedRun {
	return predicate.VersionedRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VersionedRun) predicate.VersionedRun {
	return predicate.VersionedRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VersionedRun) predicate.VersionedRun {
	return predicate.VersionedRun(sql.NotPredicates(p))
}
