// Code generated by ent, DO NOT EDIT.

package slide

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the slide type in the database.
	Label = "slide"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVideoID holds the string denoting the video_id field in the database.
	FieldVideoID = "video_id"
	// FieldSlideNumber holds the string denoting the slide_number field in the database.
	FieldSlideNumber = "slide_number"
	// FieldStartSeconds holds the string denoting the start_seconds field in the database.
	FieldStartSeconds = "start_seconds"
	// FieldEndSeconds holds the string denoting the end_seconds field in the database.
	FieldEndSeconds = "end_seconds"
	// FieldFirstImageURL holds the string denoting the first_image_url field in the database.
	FieldFirstImageURL = "first_image_url"
	// FieldFirstSourceURI holds the string denoting the first_source_uri field in the database.
	FieldFirstSourceURI = "first_source_uri"
	// FieldFirstHasText holds the string denoting the first_has_text field in the database.
	FieldFirstHasText = "first_has_text"
	// FieldFirstTextConfidence holds the string denoting the first_text_confidence field in the database.
	FieldFirstTextConfidence = "first_text_confidence"
	// FieldFirstUploadError holds the string denoting the first_upload_error field in the database.
	FieldFirstUploadError = "first_upload_error"
	// FieldFirstDuplicateOfSlide holds the string denoting the first_duplicate_of_slide field in the database.
	FieldFirstDuplicateOfSlide = "first_duplicate_of_slide"
	// FieldFirstDuplicateOfFrame holds the string denoting the first_duplicate_of_frame field in the database.
	FieldFirstDuplicateOfFrame = "first_duplicate_of_frame"
	// FieldLastImageURL holds the string denoting the last_image_url field in the database.
	FieldLastImageURL = "last_image_url"
	// FieldLastSourceURI holds the string denoting the last_source_uri field in the database.
	FieldLastSourceURI = "last_source_uri"
	// FieldLastHasText holds the string denoting the last_has_text field in the database.
	FieldLastHasText = "last_has_text"
	// FieldLastTextConfidence holds the string denoting the last_text_confidence field in the database.
	FieldLastTextConfidence = "last_text_confidence"
	// FieldLastUploadError holds the string denoting the last_upload_error field in the database.
	FieldLastUploadError = "last_upload_error"
	// FieldLastDuplicateOfSlide holds the string denoting the last_duplicate_of_slide field in the database.
	FieldLastDuplicateOfSlide = "last_duplicate_of_slide"
	// FieldLastDuplicateOfFrame holds the string denoting the last_duplicate_of_frame field in the database.
	FieldLastDuplicateOfFrame = "last_duplicate_of_frame"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the slide in the database.
	Table = "slides"
)

// Columns holds all SQL columns for slide fields.
var Columns = []string{
	FieldID,
	FieldVideoID,
	FieldSlideNumber,
	FieldStartSeconds,
	FieldEndSeconds,
	FieldFirstImageURL,
	FieldFirstSourceURI,
	FieldFirstHasText,
	FieldFirstTextConfidence,
	FieldFirstUploadError,
	FieldFirstDuplicateOfSlide,
	FieldFirstDuplicateOfFrame,
	FieldLastImageURL,
	FieldLastSourceURI,
	FieldLastHasText,
	FieldLastTextConfidence,
	FieldLastUploadError,
	FieldLastDuplicateOfSlide,
	FieldLastDuplicateOfFrame,
	FieldCreatedAt,
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
	// DefaultFirstHasText holds the default value on creation for the "first_has_text" field.
	DefaultFirstHasText bool
	// DefaultLastHasText holds the default value on creation for the "last_has_text" field.
	DefaultLastHasText bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Slide queries.
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

// ByStartSeconds orders the results by the start_seconds field.
func ByStartSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartSeconds, opts...).ToFunc()
}

// ByEndSeconds orders the results by the end_seconds field.
func ByEndSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndSeconds, opts...).ToFunc()
}

// ByFirstImageURL orders the results by the first_image_url field.
func ByFirstImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstImageURL, opts...).ToFunc()
}

// ByFirstSourceURI orders the results by the first_source_uri field.
func ByFirstSourceURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSourceURI, opts...).ToFunc()
}

// ByFirstHasText orders the results by the first_has_text field.
func ByFirstHasText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstHasText, opts...).ToFunc()
}

// ByFirstTextConfidence orders the results by the first_text_confidence field.
func ByFirstTextConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstTextConfidence, opts...).ToFunc()
}

// ByFirstUploadError orders the results by the first_upload_error field.
func ByFirstUploadError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstUploadError, opts...).ToFunc()
}

// ByFirstDuplicateOfSlide orders the results by the first_duplicate_of_slide field.
func ByFirstDuplicateOfSlide(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstDuplicateOfSlide, opts...).ToFunc()
}

// ByFirstDuplicateOfFrame orders the results by the first_duplicate_of_frame field.
func ByFirstDuplicateOfFrame(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstDuplicateOfFrame, opts...).ToFunc()
}

// ByLastImageURL orders the results by the last_image_url field.
func ByLastImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastImageURL, opts...).ToFunc()
}

// ByLastSourceURI orders the results by the last_source_uri field.
func ByLastSourceURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSourceURI, opts...).ToFunc()
}

// ByLastHasText orders the results by the last_has_text field.
func ByLastHasText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHasText, opts...).ToFunc()
}

// ByLastTextConfidence orders the results by the last_text_confidence field.
func ByLastTextConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastTextConfidence, opts...).ToFunc()
}

// ByLastUploadError orders the results by the last_upload_error field.
func ByLastUploadError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUploadError, opts...).ToFunc()
}

// ByLastDuplicateOfSlide orders the results by the last_duplicate_of_slide field.
func ByLastDuplicateOfSlide(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastDuplicateOfSlide, opts...).ToFunc()
}

// ByLastDuplicateOfFrame orders the results by the last_duplicate_of_frame field.
func ByLastDuplicateOfFrame(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastDuplicateOfFrame, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
