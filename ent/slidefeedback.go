// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recapd/recapd/ent/slidefeedback"
)

// SlideFeedback is the model entity for the SlideFeedback schema.
type SlideFeedback struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// VideoID holds the value of the "video_id" field.
	VideoID string `json:"video_id,omitempty"`
	// SlideNumber holds the value of the "slide_number" field.
	SlideNumber int `json:"slide_number,omitempty"`
	// IsFirstFramePicked holds the value of the "is_first_frame_picked" field.
	IsFirstFramePicked bool `json:"is_first_frame_picked,omitempty"`
	// IsLastFramePicked holds the value of the "is_last_frame_picked" field.
	IsLastFramePicked bool `json:"is_last_frame_picked,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SlideFeedback) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case slidefeedback.FieldIsFirstFramePicked, slidefeedback.FieldIsLastFramePicked:
			values[i] = new(sql.NullBool)
		case slidefeedback.FieldID, slidefeedback.FieldSlideNumber:
			values[i] = new(sql.NullInt64)
		case slidefeedback.FieldVideoID:
			values[i] = new(sql.NullString)
		case slidefeedback.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SlideFeedback fields.
func (_m *SlideFeedback) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case slidefeedback.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case slidefeedback.FieldVideoID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field video_id", values[i])
			} else if value.Valid {
				_m.VideoID = value.String
			}
		case slidefeedback.FieldSlideNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field slide_number", values[i])
			} else if value.Valid {
				_m.SlideNumber = int(value.Int64)
			}
		case slidefeedback.FieldIsFirstFramePicked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_first_frame_picked", values[i])
			} else if value.Valid {
				_m.IsFirstFramePicked = value.Bool
			}
		case slidefeedback.FieldIsLastFramePicked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_last_frame_picked", values[i])
			} else if value.Valid {
				_m.IsLastFramePicked = value.Bool
			}
		case slidefeedback.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SlideFeedback.
// This includes values selected through modifiers, order, etc.
func (_m *SlideFeedback) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SlideFeedback.
// Note that you need to call SlideFeedback.Unwrap() before calling this method if this SlideFeedback
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SlideFeedback) Update() *SlideFeedbackUpdateOne {
	return NewSlideFeedbackClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SlideFeedback entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SlideFeedback) Unwrap() *SlideFeedback {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SlideFeedback is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SlideFeedback) String() string {
	var builder strings.Builder
	builder.WriteString("SlideFeedback(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("video_id=")
	builder.WriteString(_m.VideoID)
	builder.WriteString(", ")
	builder.WriteString("slide_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.SlideNumber))
	builder.WriteString(", ")
	builder.WriteString("is_first_frame_picked=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsFirstFramePicked))
	builder.WriteString(", ")
	builder.WriteString("is_last_frame_picked=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsLastFramePicked))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SlideFeedbacks is a parsable slice of SlideFeedback.
type SlideFeedbacks []*SlideFeedback
