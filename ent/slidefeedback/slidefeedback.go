// Code generated by ent, DO NOT EDIT.

package slidefeedback

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the slidefeedback type in the database.
	Label = "slide_feedback"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVideoID holds the string denoting the video_id field in the database.
	FieldVideoID = "video_id"
	// FieldSlideNumber holds the string denoting the slide_number field in the database.
	FieldSlideNumber = "slide_number"
	// FieldIsFirstFramePicked holds the string denoting the is_first_frame_picked field in the database.
	FieldIsFirstFramePicked = "is_first_frame_picked"
	// FieldIsLastFramePicked holds the string denoting the is_last_frame_picked field in the database.
	FieldIsLastFramePicked = "is_last_frame_picked"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the slidefeedback in the database.
	Table = "slide_feedbacks"
)

// Columns holds all SQL columns for slidefeedback fields.
var Columns = []string{
	FieldID,
	FieldVideoID,
	FieldSlideNumber,
	FieldIsFirstFramePicked,
	FieldIsLastFramePicked,
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
	// DefaultIsFirstFramePicked holds the default value on creation for the "is_first_frame_picked" field.
	DefaultIsFirstFramePicked bool
	// DefaultIsLastFramePicked holds the default value on creation for the "is_last_frame_picked" field.
	DefaultIsLastFramePicked bool
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the SlideFeedback queries.
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

// ByIsFirstFramePicked orders the results by the is_first_frame_picked field.
func ByIsFirstFramePicked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsFirstFramePicked, opts...).ToFunc()
}

// ByIsLastFramePicked orders the results by the is_last_frame_picked field.
func ByIsLastFramePicked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsLastFramePicked, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
