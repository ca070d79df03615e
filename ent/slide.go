// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recapd/recapd/ent/slide"
)

// Slide is the model entity for the Slide schema.
type Slide struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// VideoID holds the value of the "video_id" field.
	VideoID string `json:"video_id,omitempty"`
	// Zero-based position within the video
	SlideNumber int `json:"slide_number,omitempty"`
	// StartSeconds holds the value of the "start_seconds" field.
	StartSeconds float64 `json:"start_seconds,omitempty"`
	// EndSeconds holds the value of the "end_seconds" field.
	EndSeconds float64 `json:"end_seconds,omitempty"`
	// Public URL after upload; nil when the upload failed
	FirstImageURL *string `json:"first_image_url,omitempty"`
	// FirstSourceURI holds the value of the "first_source_uri" field.
	FirstSourceURI string `json:"first_source_uri,omitempty"`
	// FirstHasText holds the value of the "first_has_text" field.
	FirstHasText bool `json:"first_has_text,omitempty"`
	// FirstTextConfidence holds the value of the "first_text_confidence" field.
	FirstTextConfidence *float64 `json:"first_text_confidence,omitempty"`
	// FirstUploadError holds the value of the "first_upload_error" field.
	FirstUploadError *string `json:"first_upload_error,omitempty"`
	// Must reference an earlier slide_number
	FirstDuplicateOfSlide *int `json:"first_duplicate_of_slide,omitempty"`
	// FirstDuplicateOfFrame holds the value of the "first_duplicate_of_frame" field.
	FirstDuplicateOfFrame *string `json:"first_duplicate_of_frame,omitempty"`
	// LastImageURL holds the value of the "last_image_url" field.
	LastImageURL *string `json:"last_image_url,omitempty"`
	// LastSourceURI holds the value of the "last_source_uri" field.
	LastSourceURI string `json:"last_source_uri,omitempty"`
	// LastHasText holds the value of the "last_has_text" field.
	LastHasText bool `json:"last_has_text,omitempty"`
	// LastTextConfidence holds the value of the "last_text_confidence" field.
	LastTextConfidence *float64 `json:"last_text_confidence,omitempty"`
	// LastUploadError holds the value of the "last_upload_error" field.
	LastUploadError *string `json:"last_upload_error,omitempty"`
	// LastDuplicateOfSlide holds the value of the "last_duplicate_of_slide" field.
	LastDuplicateOfSlide *int `json:"last_duplicate_of_slide,omitempty"`
	// LastDuplicateOfFrame holds the value of the "last_duplicate_of_frame" field.
	LastDuplicateOfFrame *string `json:"last_duplicate_of_frame,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Slide) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case slide.FieldFirstHasText, slide.FieldLastHasText:
			values[i] = new(sql.NullBool)
		case slide.FieldStartSeconds, slide.FieldEndSeconds, slide.FieldFirstTextConfidence, slide.FieldLastTextConfidence:
			values[i] = new(sql.NullFloat64)
		case slide.FieldID, slide.FieldSlideNumber, slide.FieldFirstDuplicateOfSlide, slide.FieldLastDuplicateOfSlide:
			values[i] = new(sql.NullInt64)
		case slide.FieldVideoID, slide.FieldFirstImageURL, slide.FieldFirstSourceURI, slide.FieldFirstUploadError, slide.FieldFirstDuplicateOfFrame, slide.FieldLastImageURL, slide.FieldLastSourceURI, slide.FieldLastUploadError, slide.FieldLastDuplicateOfFrame:
			values[i] = new(sql.NullString)
		case slide.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Slide fields.
func (_m *Slide) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case slide.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case slide.FieldVideoID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field video_id", values[i])
			} else if value.Valid {
				_m.VideoID = value.String
			}
		case slide.FieldSlideNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field slide_number", values[i])
			} else if value.Valid {
				_m.SlideNumber = int(value.Int64)
			}
		case slide.FieldStartSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field start_seconds", values[i])
			} else if value.Valid {
				_m.StartSeconds = value.Float64
			}
		case slide.FieldEndSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field end_seconds", values[i])
			} else if value.Valid {
				_m.EndSeconds = value.Float64
			}
		case slide.FieldFirstImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_image_url", values[i])
			} else if value.Valid {
				_m.FirstImageURL = new(string)
				*_m.FirstImageURL = value.String
			}
		case slide.FieldFirstSourceURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_source_uri", values[i])
			} else if value.Valid {
				_m.FirstSourceURI = value.String
			}
		case slide.FieldFirstHasText:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field first_has_text", values[i])
			} else if value.Valid {
				_m.FirstHasText = value.Bool
			}
		case slide.FieldFirstTextConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field first_text_confidence", values[i])
			} else if value.Valid {
				_m.FirstTextConfidence = new(float64)
				*_m.FirstTextConfidence = value.Float64
			}
		case slide.FieldFirstUploadError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_upload_error", values[i])
			} else if value.Valid {
				_m.FirstUploadError = new(string)
				*_m.FirstUploadError = value.String
			}
		case slide.FieldFirstDuplicateOfSlide:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field first_duplicate_of_slide", values[i])
			} else if value.Valid {
				_m.FirstDuplicateOfSlide = new(int)
				*_m.FirstDuplicateOfSlide = int(value.Int64)
			}
		case slide.FieldFirstDuplicateOfFrame:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_duplicate_of_frame", values[i])
			} else if value.Valid {
				_m.FirstDuplicateOfFrame = new(string)
				*_m.FirstDuplicateOfFrame = value.String
			}
		case slide.FieldLastImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_image_url", values[i])
			} else if value.Valid {
				_m.LastImageURL = new(string)
				*_m.LastImageURL = value.String
			}
		case slide.FieldLastSourceURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_source_uri", values[i])
			} else if value.Valid {
				_m.LastSourceURI = value.String
			}
		case slide.FieldLastHasText:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field last_has_text", values[i])
			} else if value.Valid {
				_m.LastHasText = value.Bool
			}
		case slide.FieldLastTextConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field last_text_confidence", values[i])
			} else if value.Valid {
				_m.LastTextConfidence = new(float64)
				*_m.LastTextConfidence = value.Float64
			}
		case slide.FieldLastUploadError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_upload_error", values[i])
			} else if value.Valid {
				_m.LastUploadError = new(string)
				*_m.LastUploadError = value.String
			}
		case slide.FieldLastDuplicateOfSlide:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_duplicate_of_slide", values[i])
			} else if value.Valid {
				_m.LastDuplicateOfSlide = new(int)
				*_m.LastDuplicateOfSlide = int(value.Int64)
			}
		case slide.FieldLastDuplicateOfFrame:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_duplicate_of_frame", values[i])
			} else if value.Valid {
				_m.LastDuplicateOfFrame = new(string)
				*_m.LastDuplicateOfFrame = value.String
			}
		case slide.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Slide.
// This includes values selected through modifiers, order, etc.
func (_m *Slide) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Slide.
// Note that you need to call Slide.Unwrap() before calling this method if this Slide
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Slide) Update() *SlideUpdateOne {
	return NewSlideClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Slide entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Slide) Unwrap() *Slide {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Slide is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Slide) String() string {
	var builder strings.Builder
	builder.WriteString("Slide(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("video_id=")
	builder.WriteString(_m.VideoID)
	builder.WriteString(", ")
	builder.WriteString("slide_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.SlideNumber))
	builder.WriteString(", ")
	builder.WriteString("start_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartSeconds))
	builder.WriteString(", ")
	builder.WriteString("end_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.EndSeconds))
	builder.WriteString(", ")
	if v := _m.FirstImageURL; v != nil {
		builder.WriteString("first_image_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("first_source_uri=")
	builder.WriteString(_m.FirstSourceURI)
	builder.WriteString(", ")
	builder.WriteString("first_has_text=")
	builder.WriteString(fmt.Sprintf("%v", _m.FirstHasText))
	builder.WriteString(", ")
	if v := _m.FirstTextConfidence; v != nil {
		builder.WriteString("first_text_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FirstUploadError; v != nil {
		builder.WriteString("first_upload_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FirstDuplicateOfSlide; v != nil {
		builder.WriteString("first_duplicate_of_slide=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FirstDuplicateOfFrame; v != nil {
		builder.WriteString("first_duplicate_of_frame=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastImageURL; v != nil {
		builder.WriteString("last_image_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("last_source_uri=")
	builder.WriteString(_m.LastSourceURI)
	builder.WriteString(", ")
	builder.WriteString("last_has_text=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastHasText))
	builder.WriteString(", ")
	if v := _m.LastTextConfidence; v != nil {
		builder.WriteString("last_text_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LastUploadError; v != nil {
		builder.WriteString("last_upload_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastDuplicateOfSlide; v != nil {
		builder.WriteString("last_duplicate_of_slide=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LastDuplicateOfFrame; v != nil {
		builder.WriteString("last_duplicate_of_frame=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Slides is a parsable slice of Slide.
type Slides []*Slide
