// Code generated by ent, DO NOT EDIT.

package versionedrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the versionedrun type in the database.
	Label = "versioned_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldResourceKind holds the string denoting the resource_kind field in the database.
	FieldResourceKind = "resource_kind"
	// FieldResourceID holds the string denoting the resource_id field in the database.
	FieldResourceID = "resource_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldWorkflowRunID holds the string denoting the workflow_run_id field in the database.
	FieldWorkflowRunID = "workflow_run_id"
	// FieldNamespace holds the string denoting the namespace field in the database.
	FieldNamespace = "namespace"
	// FieldAdditionalInstructions holds the string denoting the additional_instructions field in the database.
	FieldAdditionalInstructions = "additional_instructions"
	// FieldResultJSON holds the string denoting the result_json field in the database.
	FieldResultJSON = "result_json"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the versionedrun in the database.
	Table = "versioned_runs"
)

// Columns holds all SQL columns for versionedrun fields.
var Columns = []string{
	FieldID,
	FieldResourceKind,
	FieldResourceID,
	FieldVersion,
	FieldStatus,
	FieldWorkflowRunID,
	FieldNamespace,
	FieldAdditionalInstructions,
	FieldResultJSON,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ResourceKind defines the type for the "resource_kind" enum field.
type ResourceKind string

// ResourceKind values.
const (
	ResourceKindVideo      ResourceKind = "video"
	ResourceKindTranscript ResourceKind = "transcript"
	ResourceKindSuper      ResourceKind = "super"
)

func (rk ResourceKind) String() string {
	return string(rk)
}

// ResourceKindValidator is a validator for the "resource_kind" field enum values. It is called by the builders before save.
func ResourceKindValidator(rk ResourceKind) error {
	switch rk {
	case ResourceKindVideo, ResourceKindTranscript, ResourceKindSuper:
		return nil
	default:
		return fmt.Errorf("versionedrun: invalid enum value for resource_kind field: %q", rk)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusStreaming is the default value of the Status enum.
const DefaultStatus = StatusStreaming

// Status values.
const (
	StatusStreaming Status = "streaming"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusStreaming, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("versionedrun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the VersionedRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByResourceKind orders the results by the resource_kind field.
func ByResourceKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResourceKind, opts...).ToFunc()
}

// ByResourceID orders the results by the resource_id field.
func ByResourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResourceID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByWorkflowRunID orders the results by the workflow_run_id field.
func ByWorkflowRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowRunID, opts...).ToFunc()
}

// ByNamespace orders the results by the namespace field.
func ByNamespace(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNamespace, opts...).ToFunc()
}

// ByAdditionalInstructions orders the results by the additional_instructions field.
func ByAdditionalInstructions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdditionalInstructions, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
