// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recapd/recapd/ent/versionedrun"
)

// VersionedRun is the model entity for the VersionedRun schema.
type VersionedRun struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ResourceKind holds the value of the "resource_kind" field.
	ResourceKind versionedrun.ResourceKind `json:"resource_kind,omitempty"`
	// ResourceID holds the value of the "resource_id" field.
	ResourceID string `json:"resource_id,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// Status holds the value of the "status" field.
	Status versionedrun.Status `json:"status,omitempty"`
	// Backing engine run; written after the run is started
	WorkflowRunID *string `json:"workflow_run_id,omitempty"`
	// Sub-stream label when the backing run is shared (process)
	Namespace string `json:"namespace,omitempty"`
	// AdditionalInstructions holds the value of the "additional_instructions" field.
	AdditionalInstructions string `json:"additional_instructions,omitempty"`
	// ResultJSON holds the value of the "result_json" field.
	ResultJSON json.RawMessage `json:"result_json,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VersionedRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case versionedrun.FieldResultJSON:
			values[i] = new([]byte)
		case versionedrun.FieldID, versionedrun.FieldVersion:
			values[i] = new(sql.NullInt64)
		case versionedrun.FieldResourceKind, versionedrun.FieldResourceID, versionedrun.FieldStatus, versionedrun.FieldWorkflowRunID, versionedrun.FieldNamespace, versionedrun.FieldAdditionalInstructions, versionedrun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case versionedrun.FieldCreatedAt, versionedrun.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VersionedRun fields.
func (_m *VersionedRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case versionedrun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case versionedrun.FieldResourceKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resource_kind", values[i])
			} else if value.Valid {
				_m.ResourceKind = versionedrun.ResourceKind(value.String)
			}
		case versionedrun.FieldResourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resource_id", values[i])
			} else if value.Valid {
				_m.ResourceID = value.String
			}
		case versionedrun.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case versionedrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = versionedrun.Status(value.String)
			}
		case versionedrun.FieldWorkflowRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_run_id", values[i])
			} else if value.Valid {
				_m.WorkflowRunID = new(string)
				*_m.WorkflowRunID = value.String
			}
		case versionedrun.FieldNamespace:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field namespace", values[i])
			} else if value.Valid {
				_m.Namespace = value.String
			}
		case versionedrun.FieldAdditionalInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field additional_instructions", values[i])
			} else if value.Valid {
				_m.AdditionalInstructions = value.String
			}
		case versionedrun.FieldResultJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResultJSON); err != nil {
					return fmt.Errorf("unmarshal field result_json: %w", err)
				}
			}
		case versionedrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case versionedrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case versionedrun.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VersionedRun.
// This includes values selected through modifiers, order, etc.
func (_m *VersionedRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this VersionedRun.
// Note that you need to call VersionedRun.Unwrap() before calling this method if this VersionedRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VersionedRun) Update() *VersionedRunUpdateOne {
	return NewVersionedRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VersionedRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VersionedRun) Unwrap() *VersionedRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VersionedRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VersionedRun) String() string {
	var builder strings.Builder
	builder.WriteString("VersionedRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("resource_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResourceKind))
	builder.WriteString(", ")
	builder.WriteString("resource_id=")
	builder.WriteString(_m.ResourceID)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.WorkflowRunID; v != nil {
		builder.WriteString("workflow_run_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("namespace=")
	builder.WriteString(_m.Namespace)
	builder.WriteString(", ")
	builder.WriteString("additional_instructions=")
	builder.WriteString(_m.AdditionalInstructions)
	builder.WriteString(", ")
	builder.WriteString("result_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultJSON))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VersionedRuns is a parsable slice of VersionedRun.
type VersionedRuns []*VersionedRun
