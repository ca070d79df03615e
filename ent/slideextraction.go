// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recapd/recapd/ent/slideextraction"
)

// SlideExtraction is the model entity for the SlideExtraction schema.
type SlideExtraction struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// VideoID holds the value of the "video_id" field.
	VideoID string `json:"video_id,omitempty"`
	// Status holds the value of the "status" field.
	Status slideextraction.Status `json:"status,omitempty"`
	// Claim placeholder, then the real engine run id
	RunID *string `json:"run_id,omitempty"`
	// TotalSlides holds the value of the "total_slides" field.
	TotalSlides int `json:"total_slides,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SlideExtraction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case slideextraction.FieldID, slideextraction.FieldTotalSlides:
			values[i] = new(sql.NullInt64)
		case slideextraction.FieldVideoID, slideextraction.FieldStatus, slideextraction.FieldRunID, slideextraction.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case slideextraction.FieldCreatedAt, slideextraction.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SlideExtraction fields.
func (_m *SlideExtraction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case slideextraction.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case slideextraction.FieldVideoID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field video_id", values[i])
			} else if value.Valid {
				_m.VideoID = value.String
			}
		case slideextraction.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = slideextraction.Status(value.String)
			}
		case slideextraction.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = new(string)
				*_m.RunID = value.String
			}
		case slideextraction.FieldTotalSlides:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_slides", values[i])
			} else if value.Valid {
				_m.TotalSlides = int(value.Int64)
			}
		case slideextraction.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case slideextraction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case slideextraction.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SlideExtraction.
// This includes values selected through modifiers, order, etc.
func (_m *SlideExtraction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SlideExtraction.
// Note that you need to call SlideExtraction.Unwrap() before calling this method if this SlideExtraction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SlideExtraction) Update() *SlideExtractionUpdateOne {
	return NewSlideExtractionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SlideExtraction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SlideExtraction) Unwrap() *SlideExtraction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SlideExtraction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SlideExtraction) String() string {
	var builder strings.Builder
	builder.WriteString("SlideExtraction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("video_id=")
	builder.WriteString(_m.VideoID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.RunID; v != nil {
		builder.WriteString("run_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("total_slides=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalSlides))
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

// SlideExtractions is a parsable slice of SlideExtraction.
type SlideExtractions []*SlideExtraction
