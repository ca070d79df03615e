// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recapd/recapd/ent/slideanalysis"
)

// SlideAnalysis is the model entity for the SlideAnalysis schema.
type SlideAnalysis struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// VideoID holds the value of the "video_id" field.
	VideoID string `json:"video_id,omitempty"`
	// SlideNumber holds the value of the "slide_number" field.
	SlideNumber int `json:"slide_number,omitempty"`
	// FramePosition holds the value of the "frame_position" field.
	FramePosition slideanalysis.FramePosition `json:"frame_position,omitempty"`
	// Markdown holds the value of the "markdown" field.
	Markdown string `json:"markdown,omitempty"`
	// Model that produced the markdown
	Model string `json:"model,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SlideAnalysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case slideanalysis.FieldID, slideanalysis.FieldSlideNumber:
			values[i] = new(sql.NullInt64)
		case slideanalysis.FieldVideoID, slideanalysis.FieldFramePosition, slideanalysis.FieldMarkdown, slideanalysis.FieldModel:
			values[i] = new(sql.NullString)
		case slideanalysis.FieldCreatedAt, slideanalysis.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SlideAnalysis fields.
func (_m *SlideAnalysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case slideanalysis.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case slideanalysis.FieldVideoID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field video_id", values[i])
			} else if value.Valid {
				_m.VideoID = value.String
			}
		case slideanalysis.FieldSlideNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field slide_number", values[i])
			} else if value.Valid {
				_m.SlideNumber = int(value.Int64)
			}
		case slideanalysis.FieldFramePosition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field frame_position", values[i])
			} else if value.Valid {
				_m.FramePosition = slideanalysis.FramePosition(value.String)
			}
		case slideanalysis.FieldMarkdown:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field markdown", values[i])
			} else if value.Valid {
				_m.Markdown = value.String
			}
		case slideanalysis.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case slideanalysis.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case slideanalysis.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SlideAnalysis.
// This includes values selected through modifiers, order, etc.
func (_m *SlideAnalysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SlideAnalysis.
// Note that you need to call SlideAnalysis.Unwrap() before calling this method if this SlideAnalysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SlideAnalysis) Update() *SlideAnalysisUpdateOne {
	return NewSlideAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SlideAnalysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SlideAnalysis) Unwrap() *SlideAnalysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SlideAnalysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SlideAnalysis) String() string {
	var builder strings.Builder
	builder.WriteString("SlideAnalysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("video_id=")
	builder.WriteString(_m.VideoID)
	builder.WriteString(", ")
	builder.WriteString("slide_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.SlideNumber))
	builder.WriteString(", ")
	builder.WriteString("frame_position=")
	builder.WriteString(fmt.Sprintf("%v", _m.FramePosition))
	builder.WriteString(", ")
	builder.WriteString("markdown=")
	builder.WriteString(_m.Markdown)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SlideAnalyses is a parsable slice of SlideAnalysis.
type SlideAnalyses []*SlideAnalysis
