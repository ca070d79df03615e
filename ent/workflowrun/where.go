// Code generated by ent, DO NOT EDIT.

package workflowrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recapd/recapd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldContainsFold(FieldID, id))
}

// WorkflowName applies equality check predicate on the "workflow_name" field. It's identical to WorkflowNameEQ.
func WorkflowName(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldWorkflowName, v))
}

// ArgsDigest applies equality check predicate on the "args_digest" field. It's identical to ArgsDigestEQ.
func ArgsDigest(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldArgsDigest, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldErrorMessage, v))
}

// CancelRequested applies equality check predicate on the "cancel_requested" field. It's identical to CancelRequestedEQ.
func CancelRequested(v bool) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldCancelRequested, v))
}

// PauseRequested applies equality check predicate on the "pause_requested" field. It's identical to PauseRequestedEQ.
func PauseRequested(v bool) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldPauseRequested, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldPodID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// RecoveryAttempts applies equality check predicate on the "recovery_attempts" field. It's identical to RecoveryAttemptsEQ.
func RecoveryAttempts(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldRecoveryAttempts, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldCompletedAt, v))
}

// WorkflowNameEQ applies the EQ predicate on the "workflow_name" field.
func WorkflowNameEQ(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldWorkflowName, v))
}

// WorkflowNameNEQ applies the NEQ predicate on the "workflow_name" field.
func WorkflowNameNEQ(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldWorkflowName, v))
}

// WorkflowNameIn applies the In predicate on the "workflow_name" field.
func WorkflowNameIn(vs ...string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIn(FieldWorkflowName, vs...))
}

// WorkflowNameNotIn applies the NotIn predicate on the "workflow_name" field.
func WorkflowNameNotIn(vs ...string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotIn(FieldWorkflowName, vs...))
}

// WorkflowNameGT applies the GT predicate on the "workflow_name" field.
func WorkflowNameGT(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGT(FieldWorkflowName, v))
}

// WorkflowNameGTE applies the GTE predicate on the "workflow_name" field.
func WorkflowNameGTE(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGTE(FieldWorkflowName, v))
}

// WorkflowNameLT applies the LT predicate on the "workflow_name" field.
func WorkflowNameLT(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLT(FieldWorkflowName, v))
}

// WorkflowNameLTE applies the LTE predicate on the "workflow_name" field.
func WorkflowNameLTE(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLTE(FieldWorkflowName, v))
}

// WorkflowNameContains applies the Contains predicate on the "workflow_name" field.
func WorkflowNameContains(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldContains(FieldWorkflowName, v))
}

// WorkflowNameHasPrefix applies the HasPrefix predicate on the "workflow_name" field.
func WorkflowNameHasPrefix(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldHasPrefix(FieldWorkflowName, v))
}

// WorkflowNameHasSuffix applies the HasSuffix predicate on the "workflow_name" field.
func WorkflowNameHasSuffix(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldHasSuffix(FieldWorkflowName, v))
}

// WorkflowNameEqualFold applies the EqualFold predicate on the "workflow_name" field.
func WorkflowNameEqualFold(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEqualFold(FieldWorkflowName, v))
}

// WorkflowNameContainsFold applies the ContainsFold predicate on the "workflow_name" field.
func WorkflowNameContainsFold(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldContainsFold(FieldWorkflowName, v))
}

// ArgsDigestEQ applies the EQ predicate on the "args_digest" field.
func ArgsDigestEQ(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldArgsDigest, v))
}

// ArgsDigestNEQ applies the NEQ predicate on the "args_digest" field.
func ArgsDigestNEQ(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldArgsDigest, v))
}

// ArgsDigestIn applies the In predicate on the "args_digest" field.
func ArgsDigestIn(vs ...string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIn(FieldArgsDigest, vs...))
}

// ArgsDigestNotIn applies the NotIn predicate on the "args_digest" field.
func ArgsDigestNotIn(vs ...string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotIn(FieldArgsDigest, vs...))
}

// ArgsDigestGT applies the GT predicate on the "args_digest" field.
func ArgsDigestGT(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGT(FieldArgsDigest, v))
}

// ArgsDigestGTE applies the GTE predicate on the "args_digest" field.
func ArgsDigestGTE(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGTE(FieldArgsDigest, v))
}

// ArgsDigestLT applies the LT predicate on the "args_digest" field.
func ArgsDigestLT(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLT(FieldArgsDigest, v))
}

// ArgsDigestLTE applies the LTE predicate on the "args_digest" field.
func ArgsDigestLTE(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLTE(FieldArgsDigest, v))
}

// ArgsDigestContains applies the Contains predicate on the "args_digest" field.
func ArgsDigestContains(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldContains(FieldArgsDigest, v))
}

// ArgsDigestHasPrefix applies the HasPrefix predicate on the "args_digest" field.
func ArgsDigestHasPrefix(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldHasPrefix(FieldArgsDigest, v))
}

// ArgsDigestHasSuffix applies the HasSuffix predicate on the "args_digest" field.
func ArgsDigestHasSuffix(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldHasSuffix(FieldArgsDigest, v))
}

// ArgsDigestEqualFold applies the EqualFold predicate on the "args_digest" field.
func ArgsDigestEqualFold(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEqualFold(FieldArgsDigest, v))
}

// ArgsDigestContainsFold applies the ContainsFold predicate on the "args_digest" field.
func ArgsDigestContainsFold(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldContainsFold(FieldArgsDigest, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotIn(FieldState, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotNull(FieldResult))
}

// CancelRequestedEQ applies the EQ predicate on the "cancel_requested" field.
func CancelRequestedEQ(v bool) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldCancelRequested, v))
}

// CancelRequestedNEQ applies the NEQ predicate on the "cancel_requested" field.
func CancelRequestedNEQ(v bool) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldCancelRequested, v))
}

// PauseRequestedEQ applies the EQ predicate on the "pause_requested" field.
func PauseRequestedEQ(v bool) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldPauseRequested, v))
}

// PauseRequestedNEQ applies the NEQ predicate on the "pause_requested" field.
func PauseRequestedNEQ(v bool) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldPauseRequested, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldContainsFold(FieldPodID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// RecoveryAttemptsEQ applies the EQ predicate on the "recovery_attempts" field.
func RecoveryAttemptsEQ(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldRecoveryAttempts, v))
}

// RecoveryAttemptsNEQ applies the NEQ predicate on the "recovery_attempts" field.
func RecoveryAttemptsNEQ(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldRecoveryAttempts, v))
}

// RecoveryAttemptsIn applies the In predicate on the "recovery_attempts" field.
func RecoveryAttemptsIn(vs ...int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIn(FieldRecoveryAttempts, vs...))
}

// RecoveryAttemptsNotIn applies the NotIn predicate on the "recovery_attempts" field.
func RecoveryAttemptsNotIn(vs ...int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotIn(FieldRecoveryAttempts, vs...))
}

// RecoveryAttemptsGT applies the GT predicate on the "recovery_attempts" field.
func RecoveryAttemptsGT(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGT(FieldRecoveryAttempts, v))
}

// RecoveryAttemptsGTE applies the GTE predicate on the "recovery_attempts" field.
func RecoveryAttemptsGTE(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGTE(FieldRecoveryAttempts, v))
}

// RecoveryAttemptsLT applies the LT predicate on the "recovery_attempts" field.
func RecoveryAttemptsLT(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLT(FieldRecoveryAttempts, v))
}

// RecoveryAttemptsLTE applies the LTE predicate on the "recovery_attempts" field.
func RecoveryAttemptsLTE(v int) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLTE(FieldRecoveryAttempts, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLTE(FieldUpdatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.FieldNotNull(FieldCompletedAt))
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.WorkflowRun {
	return predicate.WorkflowRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.RunEvent) predicate.WorkflowRun {
	return predicate.WorkflowRun(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowRun) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowRun) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowRun) predicate.WorkflowRun {
	return predicate.WorkflowRun(sql.NotPredicates(p))
}
