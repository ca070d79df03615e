// Code generated by ent, DO NOT EDIT.

package slideanalysis

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the slideanalysis type in the database.
	Label = "slide_analysis"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVideoID holds the string denoting the video_id field in the database.
	FieldVideoID = "video_id"
	// FieldSlideNumber holds the string denoting the slide_number field in the database.
	FieldSlideNumber = "slide_number"
	// FieldFramePosition holds the string denoting the frame_position field in the database.
	FieldFramePosition = "frame_position"
	// FieldMarkdown holds the string denoting the markdown field in the database.
	FieldMarkdown = "markdown"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the slideanalysis in the database.
	Table = "slide_analyses"
)

// Columns holds all SQL columns for slideanalysis fields.
var Columns = []string{
	FieldID,
	FieldVideoID,
	FieldSlideNumber,
	FieldFramePosition,
	FieldMarkdown,
	FieldModel,
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

// FramePosition defines the type for the "frame_position" enum field.
type FramePosition string

// FramePosition values.
const (
	FramePositionFirst FramePosition = "first"
	FramePositionLast  FramePosition = "last"
)

func (fp FramePosition) String() string {
	return string(fp)
}

// FramePositionValidator is a validator for the "frame_position" field enum values. It is called by the builders before save.
func FramePositionValidator(fp FramePosition) error {
	switch fp {
	case FramePositionFirst, FramePositionLast:
		return nil
	default:
		return fmt.Errorf("slideanalysis: invalid enum value for frame_position field: %q", fp)
	}
}

// OrderOption defines the ordering options for the SlideAnalysis queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVideoID orders the results by the video_id field.
func ByVideoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVideoID, opts...).ToFunc()
}

// BySlideNumber orders the results by the slide_number field.
func BySlideNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlideNumber, opts...).ToFunc()
}

// ByFramePosition orders the results by the frame_position field.
func ByFramePosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFramePosition, opts...).ToFunc()
}

// ByMarkdown orders the results by the markdown field.
func ByMarkdown(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarkdown, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
