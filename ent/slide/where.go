// Code generated by ent, DO NOT EDIT.

package slide

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/recapd/recapd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldID, id))
}

// VideoID applies equality check predicate on the "video_id" field. It's identical to VideoIDEQ.
func VideoID(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldVideoID, v))
}

// SlideNumber applies equality check predicate on the "slide_number" field. It's identical to SlideNumberEQ.
func SlideNumber(v int) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldSlideNumber, v))
}

// StartSeconds applies equality check predicate on the "start_seconds" field. It's identical to StartSecondsEQ.
func StartSeconds(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldStartSeconds, v))
}

// EndSeconds applies equality check predicate on the "end_seconds" field. It's identical to EndSecondsEQ.
func EndSeconds(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldEndSeconds, v))
}

// FirstImageURL applies equality check predicate on the "first_image_url" field. It's identical to FirstImageURLEQ.
func FirstImageURL(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldFirstImageURL, v))
}

// FirstSourceURI applies equality check predicate on the "first_source_uri" field. It's identical to FirstSourceURIEQ.
func FirstSourceURI(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldFirstSourceURI, v))
}

// FirstHasText applies equality check predicate on the "first_has_text" field. It's identical to FirstHasTextEQ.
func FirstHasText(v bool) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldFirstHasText, v))
}

// FirstTextConfidence applies equality check predicate on the "first_text_confidence" field. It's identical to FirstTextConfidenceEQ.
func FirstTextConfidence(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldFirstTextConfidence, v))
}

// FirstUploadError applies equality check predicate on the "first_upload_error" field. It's identical to FirstUploadErrorEQ.
func FirstUploadError(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldFirstUploadError, v))
}

// FirstDuplicateOfSlide applies equality check predicate on the "first_duplicate_of_slide" field. It's identical to FirstDuplicateOfSlideEQ.
func FirstDuplicateOfSlide(v int) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldFirstDuplicateOfSlide, v))
}

// FirstDuplicateOfFrame applies equality check predicate on the "first_duplicate_of_frame" field. It's identical to FirstDuplicateOfFrameEQ.
func FirstDuplicateOfFrame(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldFirstDuplicateOfFrame, v))
}

// LastImageURL applies equality check predicate on the "last_image_url" field. It's identical to LastImageURLEQ.
func LastImageURL(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldLastImageURL, v))
}

// LastSourceURI applies equality check predicate on the "last_source_uri" field. It's identical to LastSourceURIEQ.
func LastSourceURI(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldLastSourceURI, v))
}

// LastHasText applies equality check predicate on the "last_has_text" field. It's identical to LastHasTextEQ.
func LastHasText(v bool) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldLastHasText, v))
}

// LastTextConfidence applies equality check predicate on the "last_text_confidence" field. It's identical to LastTextConfidenceEQ.
func LastTextConfidence(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldLastTextConfidence, v))
}

// LastUploadError applies equality check predicate on the "last_upload_error" field. It's identical to LastUploadErrorEQ.
func LastUploadError(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldLastUploadError, v))
}

// LastDuplicateOfSlide applies equality check predicate on the "last_duplicate_of_slide" field. It's identical to LastDuplicateOfSlideEQ.
func LastDuplicateOfSlide(v int) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldLastDuplicateOfSlide, v))
}

// LastDuplicateOfFrame applies equality check predicate on the "last_duplicate_of_frame" field. It's identical to LastDuplicateOfFrameEQ.
func LastDuplicateOfFrame(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldLastDuplicateOfFrame, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldCreatedAt, v))
}

// VideoIDEQ applies the EQ predicate on the "video_id" field.
func VideoIDEQ(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldVideoID, v))
}

// VideoIDNEQ applies the NEQ predicate on the "video_id" field.
func VideoIDNEQ(v string) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldVideoID, v))
}

// VideoIDIn applies the In predicate on the "video_id" field.
func VideoIDIn(vs ...string) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldVideoID, vs...))
}

// VideoIDNotIn applies the NotIn predicate on the "video_id" field.
func VideoIDNotIn(vs ...string) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldVideoID, vs...))
}

// VideoIDGT applies the GT predicate on the "video_id" field.
func VideoIDGT(v string) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldVideoID, v))
}

// VideoIDGTE applies the GTE predicate on the "video_id" field.
func VideoIDGTE(v string) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldVideoID, v))
}

// VideoIDLT applies the LT predicate on the "video_id" field.
func VideoIDLT(v string) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldVideoID, v))
}

// VideoIDLTE applies the LTE predicate on the "video_id" field.
func VideoIDLTE(v string) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldVideoID, v))
}

// VideoIDContains applies the Contains predicate on the "video_id" field.
func VideoIDContains(v string) predicate.Slide {
	return predicate.Slide(sql.FieldContains(FieldVideoID, v))
}

// VideoIDHasPrefix applies the HasPrefix predicate on the "video_id" field.
func VideoIDHasPrefix(v string) predicate.Slide {
	return predicate.Slide(sql.FieldHasPrefix(FieldVideoID, v))
}

// VideoIDHasSuffix applies the HasSuffix predicate on the "video_id" field.
func VideoIDHasSuffix(v string) predicate.Slide {
	return predicate.Slide(sql.FieldHasSuffix(FieldVideoID, v))
}

// VideoIDEqualFold applies the EqualFold predicate on the "video_id" field.
func VideoIDEqualFold(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEqualFold(FieldVideoID, v))
}

// VideoIDContainsFold applies the ContainsFold predicate on the "video_id" field.
func VideoIDContainsFold(v string) predicate.Slide {
	return predicate.Slide(sql.FieldContainsFold(FieldVideoID, v))
}

// SlideNumberEQ applies the EQ predicate on the "slide_number" field.
func SlideNumberEQ(v int) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldSlideNumber, v))
}

// SlideNumberNEQ applies the NEQ predicate on the "slide_number" field.
func SlideNumberNEQ(v int) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldSlideNumber, v))
}

// SlideNumberIn applies the In predicate on the "slide_number" field.
func SlideNumberIn(vs ...int) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldSlideNumber, vs...))
}

// SlideNumberNotIn applies the NotIn predicate on the "slide_number" field.
func SlideNumberNotIn(vs ...int) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldSlideNumber, vs...))
}

// SlideNumberGT applies the GT predicate on the "slide_number" field.
func SlideNumberGT(v int) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldSlideNumber, v))
}

// SlideNumberGTE applies the GTE predicate on the "slide_number" field.
func SlideNumberGTE(v int) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldSlideNumber, v))
}

// SlideNumberLT applies the LT predicate on the "slide_number" field.
func SlideNumberLT(v int) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldSlideNumber, v))
}

// SlideNumberLTE applies the LTE predicate on the "slide_number" field.
func SlideNumberLTE(v int) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldSlideNumber, v))
}

// StartSecondsEQ applies the EQ predicate on the "start_seconds" field.
func StartSecondsEQ(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldStartSeconds, v))
}

// StartSecondsNEQ applies the NEQ predicate on the "start_seconds" field.
func StartSecondsNEQ(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldStartSeconds, v))
}

// StartSecondsIn applies the In predicate on the "start_seconds" field.
func StartSecondsIn(vs ...float64) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldStartSeconds, vs...))
}

// StartSecondsNotIn applies the NotIn predicate on the "start_seconds" field.
func StartSecondsNotIn(vs ...float64) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldStartSeconds, vs...))
}

// StartSecondsGT applies the GT predicate on the "start_seconds" field.
func StartSecondsGT(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldStartSeconds, v))
}

// StartSecondsGTE applies the GTE predicate on the "start_seconds" field.
func StartSecondsGTE(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldStartSeconds, v))
}

// StartSecondsLT applies the LT predicate on the "start_seconds" field.
func StartSecondsLT(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldStartSeconds, v))
}

// StartSecondsLTE applies the LTE predicate on the "start_seconds" field.
func StartSecondsLTE(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldStartSeconds, v))
}

// EndSecondsEQ applies the EQ predicate on the "end_seconds" field.
func EndSecondsEQ(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldEndSeconds, v))
}

// EndSecondsNEQ applies the NEQ predicate on the "end_seconds" field.
func EndSecondsNEQ(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldEndSeconds, v))
}

// EndSecondsIn applies the In predicate on the "end_seconds" field.
func EndSecondsIn(vs ...float64) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldEndSeconds, vs...))
}

// EndSecondsNotIn applies the NotIn predicate on the "end_seconds" field.
func EndSecondsNotIn(vs ...float64) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldEndSeconds, vs...))
}

// EndSecondsGT applies the GT predicate on the "end_seconds" field.
func EndSecondsGT(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldEndSeconds, v))
}

// EndSecondsGTE applies the GTE predicate on the "end_seconds" field.
func EndSecondsGTE(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldEndSeconds, v))
}

// EndSecondsLT applies the LT predicate on the "end_seconds" field.
func EndSecondsLT(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldEndSeconds, v))
}

// EndSecondsLTE applies the LTE predicate on the "end_seconds" field.
func EndSecondsLTE(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldEndSeconds, v))
}

// FirstImageURLEQ applies the EQ predicate on the "first_image_url" field.
func FirstImageURLEQ(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldFirstImageURL, v))
}

// FirstImageURLNEQ applies the NEQ predicate on the "first_image_url" field.
func FirstImageURLNEQ(v string) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldFirstImageURL, v))
}

// FirstImageURLIn applies the In predicate on the "first_image_url" field.
func FirstImageURLIn(vs ...string) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldFirstImageURL, vs...))
}

// FirstImageURLNotIn applies the NotIn predicate on the "first_image_url" field.
func FirstImageURLNotIn(vs ...string) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldFirstImageURL, vs...))
}

// FirstImageURLGT applies the GT predicate on the "first_image_url" field.
func FirstImageURLGT(v string) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldFirstImageURL, v))
}

// FirstImageURLGTE applies the GTE predicate on the "first_image_url" field.
func FirstImageURLGTE(v string) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldFirstImageURL, v))
}

// FirstImageURLLT applies the LT predicate on the "first_image_url" field.
func FirstImageURLLT(v string) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldFirstImageURL, v))
}

// FirstImageURLLTE applies the LTE predicate on the "first_image_url" field.
func FirstImageURLLTE(v string) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldFirstImageURL, v))
}

// FirstImageURLContains applies the Contains predicate on the "first_image_url" field.
func FirstImageURLContains(v string) predicate.Slide {
	return predicate.Slide(sql.FieldContains(FieldFirstImageURL, v))
}

// FirstImageURLHasPrefix applies the HasPrefix predicate on the "first_image_url" field.
func FirstImageURLHasPrefix(v string) predicate.Slide {
	return predicate.Slide(sql.FieldHasPrefix(FieldFirstImageURL, v))
}

// FirstImageURLHasSuffix applies the HasSuffix predicate on the "first_image_url" field.
func FirstImageURLHasSuffix(v string) predicate.Slide {
	return predicate.Slide(sql.FieldHasSuffix(FieldFirstImageURL, v))
}

// FirstImageURLIsNil applies the IsNil predicate on the "first_image_url" field.
func FirstImageURLIsNil() predicate.Slide {
	return predicate.Slide(sql.FieldIsNull(FieldFirstImageURL))
}

// FirstImageURLNotNil applies the NotNil predicate on the "first_image_url" field.
func FirstImageURLNotNil() predicate.Slide {
	return predicate.Slide(sql.FieldNotNull(FieldFirstImageURL))
}

// FirstImageURLEqualFold applies the EqualFold predicate on the "first_image_url" field.
func FirstImageURLEqualFold(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEqualFold(FieldFirstImageURL, v))
}

// FirstImageURLContainsFold applies the ContainsFold predicate on the "first_image_url" field.
func FirstImageURLContainsFold(v string) predicate.Slide {
	return predicate.Slide(sql.FieldContainsFold(FieldFirstImageURL, v))
}

// FirstSourceURIEQ applies the EQ predicate on the "first_source_uri" field.
func FirstSourceURIEQ(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldFirstSourceURI, v))
}

// FirstSourceURINEQ applies the NEQ predicate on the "first_source_uri" field.
func FirstSourceURINEQ(v string) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldFirstSourceURI, v))
}

// FirstSourceURIIn applies the In predicate on the "first_source_uri" field.
func FirstSourceURIIn(vs ...string) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldFirstSourceURI, vs...))
}

// FirstSourceURINotIn applies the NotIn predicate on the "first_source_uri" field.
func FirstSourceURINotIn(vs ...string) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldFirstSourceURI, vs...))
}

// FirstSourceURIGT applies the GT predicate on the "first_source_uri" field.
func FirstSourceURIGT(v string) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldFirstSourceURI, v))
}

// FirstSourceURIGTE applies the GTE predicate on the "first_source_uri" field.
func FirstSourceURIGTE(v string) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldFirstSourceURI, v))
}

// FirstSourceURILT applies the LT predicate on the "first_source_uri" field.
func FirstSourceURILT(v string) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldFirstSourceURI, v))
}

// FirstSourceURILTE applies the LTE predicate on the "first_source_uri" field.
func FirstSourceURILTE(v string) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldFirstSourceURI, v))
}

// FirstSourceURIContains applies the Contains predicate on the "first_source_uri" field.
func FirstSourceURIContains(v string) predicate.Slide {
	return predicate.Slide(sql.FieldContains(FieldFirstSourceURI, v))
}

// FirstSourceURIHasPrefix applies the HasPrefix predicate on the "first_source_uri" field.
func FirstSourceURIHasPrefix(v string) predicate.Slide {
	return predicate.Slide(sql.FieldHasPrefix(FieldFirstSourceURI, v))
}

// FirstSourceURIHasSuffix applies the HasSuffix predicate on the "first_source_uri" field.
func FirstSourceURIHasSuffix(v string) predicate.Slide {
	return predicate.Slide(sql.FieldHasSuffix(FieldFirstSourceURI, v))
}

// FirstSourceURIIsNil applies the IsNil predicate on the "first_source_uri" field.
func FirstSourceURIIsNil() predicate.Slide {
	return predicate.Slide(sql.FieldIsNull(FieldFirstSourceURI))
}

// FirstSourceURINotNil applies the NotNil predicate on the "first_source_uri" field.
func FirstSourceURINotNil() predicate.Slide {
	return predicate.Slide(sql.FieldNotNull(FieldFirstSourceURI))
}

// FirstSourceURIEqualFold applies the EqualFold predicate on the "first_source_uri" field.
func FirstSourceURIEqualFold(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEqualFold(FieldFirstSourceURI, v))
}

// FirstSourceURIContainsFold applies the ContainsFold predicate on the "first_source_uri" field.
func FirstSourceURIContainsFold(v string) predicate.Slide {
	return predicate.Slide(sql.FieldContainsFold(FieldFirstSourceURI, v))
}

// FirstHasTextEQ applies the EQ predicate on the "first_has_text" field.
func FirstHasTextEQ(v bool) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldFirstHasText, v))
}

// FirstHasTextNEQ applies the NEQ predicate on the "first_has_text" field.
func FirstHasTextNEQ(v bool) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldFirstHasText, v))
}

// FirstTextConfidenceEQ applies the EQ predicate on the "first_text_confidence" field.
func FirstTextConfidenceEQ(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldFirstTextConfidence, v))
}

// FirstTextConfidenceNEQ applies the NEQ predicate on the "first_text_confidence" field.
func FirstTextConfidenceNEQ(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldFirstTextConfidence, v))
}

// FirstTextConfidenceIn applies the In predicate on the "first_text_confidence" field.
func FirstTextConfidenceIn(vs ...float64) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldFirstTextConfidence, vs...))
}

// FirstTextConfidenceNotIn applies the NotIn predicate on the "first_text_confidence" field.
func FirstTextConfidenceNotIn(vs ...float64) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldFirstTextConfidence, vs...))
}

// FirstTextConfidenceGT applies the GT predicate on the "first_text_confidence" field.
func FirstTextConfidenceGT(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldFirstTextConfidence, v))
}

// FirstTextConfidenceGTE applies the GTE predicate on the "first_text_confidence" field.
func FirstTextConfidenceGTE(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldFirstTextConfidence, v))
}

// FirstTextConfidenceLT applies the LT predicate on the "first_text_confidence" field.
func FirstTextConfidenceLT(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldFirstTextConfidence, v))
}

// FirstTextConfidenceLTE applies the LTE predicate on the "first_text_confidence" field.
func FirstTextConfidenceLTE(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldFirstTextConfidence, v))
}

// FirstTextConfidenceIsNil applies the IsNil predicate on the "first_text_confidence" field.
func FirstTextConfidenceIsNil() predicate.Slide {
	return predicate.Slide(sql.FieldIsNull(FieldFirstTextConfidence))
}

// FirstTextConfidenceNotNil applies the NotNil predicate on the "first_text_confidence" field.
func FirstTextConfidenceNotNil() predicate.Slide {
	return predicate.Slide(sql.FieldNotNull(FieldFirstTextConfidence))
}

// FirstUploadErrorEQ applies the EQ predicate on the "first_upload_error" field.
func FirstUploadErrorEQ(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldFirstUploadError, v))
}

// FirstUploadErrorNEQ applies the NEQ predicate on the "first_upload_error" field.
func FirstUploadErrorNEQ(v string) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldFirstUploadError, v))
}

// FirstUploadErrorIn applies the In predicate on the "first_upload_error" field.
func FirstUploadErrorIn(vs ...string) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldFirstUploadError, vs...))
}

// FirstUploadErrorNotIn applies the NotIn predicate on the "first_upload_error" field.
func FirstUploadErrorNotIn(vs ...string) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldFirstUploadError, vs...))
}

// FirstUploadErrorGT applies the GT predicate on the "first_upload_error" field.
func FirstUploadErrorGT(v string) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldFirstUploadError, v))
}

// FirstUploadErrorGTE applies the GTE predicate on the "first_upload_error" field.
func FirstUploadErrorGTE(v string) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldFirstUploadError, v))
}

// FirstUploadErrorLT applies the LT predicate on the "first_upload_error" field.
func FirstUploadErrorLT(v string) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldFirstUploadError, v))
}

// FirstUploadErrorLTE applies the LTE predicate on the "first_upload_error" field.
func FirstUploadErrorLTE(v string) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldFirstUploadError, v))
}

// FirstUploadErrorContains applies the Contains predicate on the "first_upload_error" field.
func FirstUploadErrorContains(v string) predicate.Slide {
	return predicate.Slide(sql.FieldContains(FieldFirstUploadError, v))
}

// FirstUploadErrorHasPrefix applies the HasPrefix predicate on the "first_upload_error" field.
func FirstUploadErrorHasPrefix(v string) predicate.Slide {
	return predicate.Slide(sql.FieldHasPrefix(FieldFirstUploadError, v))
}

// FirstUploadErrorHasSuffix applies the HasSuffix predicate on the "first_upload_error" field.
func FirstUploadErrorHasSuffix(v string) predicate.Slide {
	return predicate.Slide(sql.FieldHasSuffix(FieldFirstUploadError, v))
}

// FirstUploadErrorIsNil applies the IsNil predicate on the "first_upload_error" field.
func FirstUploadErrorIsNil() predicate.Slide {
	return predicate.Slide(sql.FieldIsNull(FieldFirstUploadError))
}

// FirstUploadErrorNotNil applies the NotNil predicate on the "first_upload_error" field.
func FirstUploadErrorNotNil() predicate.Slide {
	return predicate.Slide(sql.FieldNotNull(FieldFirstUploadError))
}

// FirstUploadErrorEqualFold applies the EqualFold predicate on the "first_upload_error" field.
func FirstUploadErrorEqualFold(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEqualFold(FieldFirstUploadError, v))
}

// FirstUploadErrorContainsFold applies the ContainsFold predicate on the "first_upload_error" field.
func FirstUploadErrorContainsFold(v string) predicate.Slide {
	return predicate.Slide(sql.FieldContainsFold(FieldFirstUploadError, v))
}

// FirstDuplicateOfSlideEQ applies the EQ predicate on the "first_duplicate_of_slide" field.
func FirstDuplicateOfSlideEQ(v int) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldFirstDuplicateOfSlide, v))
}

// FirstDuplicateOfSlideNEQ applies the NEQ predicate on the "first_duplicate_of_slide" field.
func FirstDuplicateOfSlideNEQ(v int) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldFirstDuplicateOfSlide, v))
}

// FirstDuplicateOfSlideIn applies the In predicate on the "first_duplicate_of_slide" field.
func FirstDuplicateOfSlideIn(vs ...int) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldFirstDuplicateOfSlide, vs...))
}

// FirstDuplicateOfSlideNotIn applies the NotIn predicate on the "first_duplicate_of_slide" field.
func FirstDuplicateOfSlideNotIn(vs ...int) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldFirstDuplicateOfSlide, vs...))
}

// FirstDuplicateOfSlideGT applies the GT predicate on the "first_duplicate_of_slide" field.
func FirstDuplicateOfSlideGT(v int) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldFirstDuplicateOfSlide, v))
}

// FirstDuplicateOfSlideGTE applies the GTE predicate on the "first_duplicate_of_slide" field.
func FirstDuplicateOfSlideGTE(v int) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldFirstDuplicateOfSlide, v))
}

// FirstDuplicateOfSlideLT applies the LT predicate on the "first_duplicate_of_slide" field.
func FirstDuplicateOfSlideLT(v int) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldFirstDuplicateOfSlide, v))
}

// FirstDuplicateOfSlideLTE applies the LTE predicate on the "first_duplicate_of_slide" field.
func FirstDuplicateOfSlideLTE(v int) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldFirstDuplicateOfSlide, v))
}

// FirstDuplicateOfSlideIsNil applies the IsNil predicate on the "first_duplicate_of_slide" field.
func FirstDuplicateOfSlideIsNil() predicate.Slide {
	return predicate.Slide(sql.FieldIsNull(FieldFirstDuplicateOfSlide))
}

// FirstDuplicateOfSlideNotNil applies the NotNil predicate on the "first_duplicate_of_slide" field.
func FirstDuplicateOfSlideNotNil() predicate.Slide {
	return predicate.Slide(sql.FieldNotNull(FieldFirstDuplicateOfSlide))
}

// FirstDuplicateOfFrameEQ applies the EQ predicate on the "first_duplicate_of_frame" field.
func FirstDuplicateOfFrameEQ(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldFirstDuplicateOfFrame, v))
}

// FirstDuplicateOfFrameNEQ applies the NEQ predicate on the "first_duplicate_of_frame" field.
func FirstDuplicateOfFrameNEQ(v string) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldFirstDuplicateOfFrame, v))
}

// FirstDuplicateOfFrameIn applies the In predicate on the "first_duplicate_of_frame" field.
func FirstDuplicateOfFrameIn(vs ...string) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldFirstDuplicateOfFrame, vs...))
}

// FirstDuplicateOfFrameNotIn applies the NotIn predicate on the "first_duplicate_of_frame" field.
func FirstDuplicateOfFrameNotIn(vs ...string) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldFirstDuplicateOfFrame, vs...))
}

// FirstDuplicateOfFrameGT applies the GT predicate on the "first_duplicate_of_frame" field.
func FirstDuplicateOfFrameGT(v string) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldFirstDuplicateOfFrame, v))
}

// FirstDuplicateOfFrameGTE applies the GTE predicate on the "first_duplicate_of_frame" field.
func FirstDuplicateOfFrameGTE(v string) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldFirstDuplicateOfFrame, v))
}

// FirstDuplicateOfFrameLT applies the LT predicate on the "first_duplicate_of_frame" field.
func FirstDuplicateOfFrameLT(v string) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldFirstDuplicateOfFrame, v))
}

// FirstDuplicateOfFrameLTE applies the LTE predicate on the "first_duplicate_of_frame" field.
func FirstDuplicateOfFrameLTE(v string) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldFirstDuplicateOfFrame, v))
}

// FirstDuplicateOfFrameContains applies the Contains predicate on the "first_duplicate_of_frame" field.
func FirstDuplicateOfFrameContains(v string) predicate.Slide {
	return predicate.Slide(sql.FieldContains(FieldFirstDuplicateOfFrame, v))
}

// FirstDuplicateOfFrameHasPrefix applies the HasPrefix predicate on the "first_duplicate_of_frame" field.
func FirstDuplicateOfFrameHasPrefix(v string) predicate.Slide {
	return predicate.Slide(sql.FieldHasPrefix(FieldFirstDuplicateOfFrame, v))
}

// FirstDuplicateOfFrameHasSuffix applies the HasSuffix predicate on the "first_duplicate_of_frame" field.
func FirstDuplicateOfFrameHasSuffix(v string) predicate.Slide {
	return predicate.Slide(sql.FieldHasSuffix(FieldFirstDuplicateOfFrame, v))
}

// FirstDuplicateOfFrameIsNil applies the IsNil predicate on the "first_duplicate_of_frame" field.
func FirstDuplicateOfFrameIsNil() predicate.Slide {
	return predicate.Slide(sql.FieldIsNull(FieldFirstDuplicateOfFrame))
}

// FirstDuplicateOfFrameNotNil applies the NotNil predicate on the "first_duplicate_of_frame" field.
func FirstDuplicateOfFrameNotNil() predicate.Slide {
	return predicate.Slide(sql.FieldNotNull(FieldFirstDuplicateOfFrame))
}

// FirstDuplicateOfFrameEqualFold applies the EqualFold predicate on the "first_duplicate_of_frame" field.
func FirstDuplicateOfFrameEqualFold(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEqualFold(FieldFirstDuplicateOfFrame, v))
}

// FirstDuplicateOfFrameContainsFold applies the ContainsFold predicate on the "first_duplicate_of_frame" field.
func FirstDuplicateOfFrameContainsFold(v string) predicate.Slide {
	return predicate.Slide(sql.FieldContainsFold(FieldFirstDuplicateOfFrame, v))
}

// LastImageURLEQ applies the EQ predicate on the "last_image_url" field.
func LastImageURLEQ(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldLastImageURL, v))
}

// LastImageURLNEQ applies the NEQ predicate on the "last_image_url" field.
func LastImageURLNEQ(v string) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldLastImageURL, v))
}

// LastImageURLIn applies the In predicate on the "last_image_url" field.
func LastImageURLIn(vs ...string) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldLastImageURL, vs...))
}

// LastImageURLNotIn applies the NotIn predicate on the "last_image_url" field.
func LastImageURLNotIn(vs ...string) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldLastImageURL, vs...))
}

// LastImageURLGT applies the GT predicate on the "last_image_url" field.
func LastImageURLGT(v string) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldLastImageURL, v))
}

// LastImageURLGTE applies the GTE predicate on the "last_image_url" field.
func LastImageURLGTE(v string) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldLastImageURL, v))
}

// LastImageURLLT applies the LT predicate on the "last_image_url" field.
func LastImageURLLT(v string) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldLastImageURL, v))
}

// LastImageURLLTE applies the LTE predicate on the "last_image_url" field.
func LastImageURLLTE(v string) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldLastImageURL, v))
}

// LastImageURLContains applies the Contains predicate on the "last_image_url" field.
func LastImageURLContains(v string) predicate.Slide {
	return predicate.Slide(sql.FieldContains(FieldLastImageURL, v))
}

// LastImageURLHasPrefix applies the HasPrefix predicate on the "last_image_url" field.
func LastImageURLHasPrefix(v string) predicate.Slide {
	return predicate.Slide(sql.FieldHasPrefix(FieldLastImageURL, v))
}

// LastImageURLHasSuffix applies the HasSuffix predicate on the "last_image_url" field.
func LastImageURLHasSuffix(v string) predicate.Slide {
	return predicate.Slide(sql.FieldHasSuffix(FieldLastImageURL, v))
}

// LastImageURLIsNil applies the IsNil predicate on the "last_image_url" field.
func LastImageURLIsNil() predicate.Slide {
	return predicate.Slide(sql.FieldIsNull(FieldLastImageURL))
}

// LastImageURLNotNil applies the NotNil predicate on the "last_image_url" field.
func LastImageURLNotNil() predicate.Slide {
	return predicate.Slide(sql.FieldNotNull(FieldLastImageURL))
}

// LastImageURLEqualFold applies the EqualFold predicate on the "last_image_url" field.
func LastImageURLEqualFold(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEqualFold(FieldLastImageURL, v))
}

// LastImageURLContainsFold applies the ContainsFold predicate on the "last_image_url" field.
func LastImageURLContainsFold(v string) predicate.Slide {
	return predicate.Slide(sql.FieldContainsFold(FieldLastImageURL, v))
}

// LastSourceURIEQ applies the EQ predicate on the "last_source_uri" field.
func LastSourceURIEQ(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldLastSourceURI, v))
}

// LastSourceURINEQ applies the NEQ predicate on the "last_source_uri" field.
func LastSourceURINEQ(v string) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldLastSourceURI, v))
}

// LastSourceURIIn applies the In predicate on the "last_source_uri" field.
func LastSourceURIIn(vs ...string) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldLastSourceURI, vs...))
}

// LastSourceURINotIn applies the NotIn predicate on the "last_source_uri" field.
func LastSourceURINotIn(vs ...string) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldLastSourceURI, vs...))
}

// LastSourceURIGT applies the GT predicate on the "last_source_uri" field.
func LastSourceURIGT(v string) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldLastSourceURI, v))
}

// LastSourceURIGTE applies the GTE predicate on the "last_source_uri" field.
func LastSourceURIGTE(v string) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldLastSourceURI, v))
}

// LastSourceURILT applies the LT predicate on the "last_source_uri" field.
func LastSourceURILT(v string) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldLastSourceURI, v))
}

// LastSourceURILTE applies the LTE predicate on the "last_source_uri" field.
func LastSourceURILTE(v string) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldLastSourceURI, v))
}

// LastSourceURIContains applies the Contains predicate on the "last_source_uri" field.
func LastSourceURIContains(v string) predicate.Slide {
	return predicate.Slide(sql.FieldContains(FieldLastSourceURI, v))
}

// LastSourceURIHasPrefix applies the HasPrefix predicate on the "last_source_uri" field.
func LastSourceURIHasPrefix(v string) predicate.Slide {
	return predicate.Slide(sql.FieldHasPrefix(FieldLastSourceURI, v))
}

// LastSourceURIHasSuffix applies the HasSuffix predicate on the "last_source_uri" field.
func LastSourceURIHasSuffix(v string) predicate.Slide {
	return predicate.Slide(sql.FieldHasSuffix(FieldLastSourceURI, v))
}

// LastSourceURIIsNil applies the IsNil predicate on the "last_source_uri" field.
func LastSourceURIIsNil() predicate.Slide {
	return predicate.Slide(sql.FieldIsNull(FieldLastSourceURI))
}

// LastSourceURINotNil applies the NotNil predicate on the "last_source_uri" field.
func LastSourceURINotNil() predicate.Slide {
	return predicate.Slide(sql.FieldNotNull(FieldLastSourceURI))
}

// LastSourceURIEqualFold applies the EqualFold predicate on the "last_source_uri" field.
func LastSourceURIEqualFold(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEqualFold(FieldLastSourceURI, v))
}

// LastSourceURIContainsFold applies the ContainsFold predicate on the "last_source_uri" field.
func LastSourceURIContainsFold(v string) predicate.Slide {
	return predicate.Slide(sql.FieldContainsFold(FieldLastSourceURI, v))
}

// LastHasTextEQ applies the EQ predicate on the "last_has_text" field.
func LastHasTextEQ(v bool) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldLastHasText, v))
}

// LastHasTextNEQ applies the NEQ predicate on the "last_has_text" field.
func LastHasTextNEQ(v bool) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldLastHasText, v))
}

// LastTextConfidenceEQ applies the EQ predicate on the "last_text_confidence" field.
func LastTextConfidenceEQ(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldLastTextConfidence, v))
}

// LastTextConfidenceNEQ applies the NEQ predicate on the "last_text_confidence" field.
func LastTextConfidenceNEQ(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldLastTextConfidence, v))
}

// LastTextConfidenceIn applies the In predicate on the "last_text_confidence" field.
func LastTextConfidenceIn(vs ...float64) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldLastTextConfidence, vs...))
}

// LastTextConfidenceNotIn applies the NotIn predicate on the "last_text_confidence" field.
func LastTextConfidenceNotIn(vs ...float64) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldLastTextConfidence, vs...))
}

// LastTextConfidenceGT applies the GT predicate on the "last_text_confidence" field.
func LastTextConfidenceGT(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldLastTextConfidence, v))
}

// LastTextConfidenceGTE applies the GTE predicate on the "last_text_confidence" field.
func LastTextConfidenceGTE(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldLastTextConfidence, v))
}

// LastTextConfidenceLT applies the LT predicate on the "last_text_confidence" field.
func LastTextConfidenceLT(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldLastTextConfidence, v))
}

// LastTextConfidenceLTE applies the LTE predicate on the "last_text_confidence" field.
func LastTextConfidenceLTE(v float64) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldLastTextConfidence, v))
}

// LastTextConfidenceIsNil applies the IsNil predicate on the "last_text_confidence" field.
func LastTextConfidenceIsNil() predicate.Slide {
	return predicate.Slide(sql.FieldIsNull(FieldLastTextConfidence))
}

// LastTextConfidenceNotNil applies the NotNil predicate on the "last_text_confidence" field.
func LastTextConfidenceNotNil() predicate.Slide {
	return predicate.Slide(sql.FieldNotNull(FieldLastTextConfidence))
}

// LastUploadErrorEQ applies the EQ predicate on the "last_upload_error" field.
func LastUploadErrorEQ(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldLastUploadError, v))
}

// LastUploadErrorNEQ applies the NEQ predicate on the "last_upload_error" field.
func LastUploadErrorNEQ(v string) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldLastUploadError, v))
}

// LastUploadErrorIn applies the In predicate on the "last_upload_error" field.
func LastUploadErrorIn(vs ...string) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldLastUploadError, vs...))
}

// LastUploadErrorNotIn applies the NotIn predicate on the "last_upload_error" field.
func LastUploadErrorNotIn(vs ...string) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldLastUploadError, vs...))
}

// LastUploadErrorGT applies the GT predicate on the "last_upload_error" field.
func LastUploadErrorGT(v string) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldLastUploadError, v))
}

// LastUploadErrorGTE applies the GTE predicate on the "last_upload_error" field.
func LastUploadErrorGTE(v string) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldLastUploadError, v))
}

// LastUploadErrorLT applies the LT predicate on the "last_upload_error" field.
func LastUploadErrorLT(v string) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldLastUploadError, v))
}

// LastUploadErrorLTE applies the LTE predicate on the "last_upload_error" field.
func LastUploadErrorLTE(v string) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldLastUploadError, v))
}

// LastUploadErrorContains applies the Contains predicate on the "last_upload_error" field.
func LastUploadErrorContains(v string) predicate.Slide {
	return predicate.Slide(sql.FieldContains(FieldLastUploadError, v))
}

// LastUploadErrorHasPrefix applies the HasPrefix predicate on the "last_upload_error" field.
func LastUploadErrorHasPrefix(v string) predicate.Slide {
	return predicate.Slide(sql.FieldHasPrefix(FieldLastUploadError, v))
}

// LastUploadErrorHasSuffix applies the HasSuffix predicate on the "last_upload_error" field.
func LastUploadErrorHasSuffix(v string) predicate.Slide {
	return predicate.Slide(sql.FieldHasSuffix(FieldLastUploadError, v))
}

// LastUploadErrorIsNil applies the IsNil predicate on the "last_upload_error" field.
func LastUploadErrorIsNil() predicate.Slide {
	return predicate.Slide(sql.FieldIsNull(FieldLastUploadError))
}

// LastUploadErrorNotNil applies the NotNil predicate on the "last_upload_error" field.
func LastUploadErrorNotNil() predicate.Slide {
	return predicate.Slide(sql.FieldNotNull(FieldLastUploadError))
}

// LastUploadErrorEqualFold applies the EqualFold predicate on the "last_upload_error" field.
func LastUploadErrorEqualFold(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEqualFold(FieldLastUploadError, v))
}

// LastUploadErrorContainsFold applies the ContainsFold predicate on the "last_upload_error" field.
func LastUploadErrorContainsFold(v string) predicate.Slide {
	return predicate.Slide(sql.FieldContainsFold(FieldLastUploadError, v))
}

// LastDuplicateOfSlideEQ applies the EQ predicate on the "last_duplicate_of_slide" field.
func LastDuplicateOfSlideEQ(v int) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldLastDuplicateOfSlide, v))
}

// LastDuplicateOfSlideNEQ applies the NEQ predicate on the "last_duplicate_of_slide" field.
func LastDuplicateOfSlideNEQ(v int) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldLastDuplicateOfSlide, v))
}

// LastDuplicateOfSlideIn applies the In predicate on the "last_duplicate_of_slide" field.
func LastDuplicateOfSlideIn(vs ...int) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldLastDuplicateOfSlide, vs...))
}

// LastDuplicateOfSlideNotIn applies the NotIn predicate on the "last_duplicate_of_slide" field.
func LastDuplicateOfSlideNotIn(vs ...int) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldLastDuplicateOfSlide, vs...))
}

// LastDuplicateOfSlideGT applies the GT predicate on the "last_duplicate_of_slide" field.
func LastDuplicateOfSlideGT(v int) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldLastDuplicateOfSlide, v))
}

// LastDuplicateOfSlideGTE applies the GTE predicate on the "last_duplicate_of_slide" field.
func LastDuplicateOfSlideGTE(v int) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldLastDuplicateOfSlide, v))
}

// LastDuplicateOfSlideLT applies the LT predicate on the "last_duplicate_of_slide" field.
func LastDuplicateOfSlideLT(v int) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldLastDuplicateOfSlide, v))
}

// LastDuplicateOfSlideLTE applies the LTE predicate on the "last_duplicate_of_slide" field.
func LastDuplicateOfSlideLTE(v int) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldLastDuplicateOfSlide, v))
}

// LastDuplicateOfSlideIsNil applies the IsNil predicate on the "last_duplicate_of_slide" field.
func LastDuplicateOfSlideIsNil() predicate.Slide {
	return predicate.Slide(sql.FieldIsNull(FieldLastDuplicateOfSlide))
}

// LastDuplicateOfSlideNotNil applies the NotNil predicate on the "last_duplicate_of_slide" field.
func LastDuplicateOfSlideNotNil() predicate.Slide {
	return predicate.Slide(sql.FieldNotNull(FieldLastDuplicateOfSlide))
}

// LastDuplicateOfFrameEQ applies the EQ predicate on the "last_duplicate_of_frame" field.
func LastDuplicateOfFrameEQ(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldLastDuplicateOfFrame, v))
}

// LastDuplicateOfFrameNEQ applies the NEQ predicate on the "last_duplicate_of_frame" field.
func LastDuplicateOfFrameNEQ(v string) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldLastDuplicateOfFrame, v))
}

// LastDuplicateOfFrameIn applies the In predicate on the "last_duplicate_of_frame" field.
func LastDuplicateOfFrameIn(vs ...string) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldLastDuplicateOfFrame, vs...))
}

// LastDuplicateOfFrameNotIn applies the NotIn predicate on the "last_duplicate_of_frame" field.
func LastDuplicateOfFrameNotIn(vs ...string) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldLastDuplicateOfFrame, vs...))
}

// LastDuplicateOfFrameGT applies the GT predicate on the "last_duplicate_of_frame" field.
func LastDuplicateOfFrameGT(v string) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldLastDuplicateOfFrame, v))
}

// LastDuplicateOfFrameGTE applies the GTE predicate on the "last_duplicate_of_frame" field.
func LastDuplicateOfFrameGTE(v string) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldLastDuplicateOfFrame, v))
}

// LastDuplicateOfFrameLT applies the LT predicate on the "last_duplicate_of_frame" field.
func LastDuplicateOfFrameLT(v string) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldLastDuplicateOfFrame, v))
}

// LastDuplicateOfFrameLTE applies the LTE predicate on the "last_duplicate_of_frame" field.
func LastDuplicateOfFrameLTE(v string) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldLastDuplicateOfFrame, v))
}

// LastDuplicateOfFrameContains applies the Contains predicate on the "last_duplicate_of_frame" field.
func LastDuplicateOfFrameContains(v string) predicate.Slide {
	return predicate.Slide(sql.FieldContains(FieldLastDuplicateOfFrame, v))
}

// LastDuplicateOfFrameHasPrefix applies the HasPrefix predicate on the "last_duplicate_of_frame" field.
func LastDuplicateOfFrameHasPrefix(v string) predicate.Slide {
	return predicate.Slide(sql.FieldHasPrefix(FieldLastDuplicateOfFrame, v))
}

// LastDuplicateOfFrameHasSuffix applies the HasSuffix predicate on the "last_duplicate_of_frame" field.
func LastDuplicateOfFrameHasSuffix(v string) predicate.Slide {
	return predicate.Slide(sql.FieldHasSuffix(FieldLastDuplicateOfFrame, v))
}

// LastDuplicateOfFrameIsNil applies the IsNil predicate on the "last_duplicate_of_frame" field.
func LastDuplicateOfFrameIsNil() predicate.Slide {
	return predicate.Slide(sql.FieldIsNull(FieldLastDuplicateOfFrame))
}

// LastDuplicateOfFrameNotNil applies the NotNil predicate on the "last_duplicate_of_frame" field.
func LastDuplicateOfFrameNotNil() predicate.Slide {
	return predicate.Slide(sql.FieldNotNull(FieldLastDuplicateOfFrame))
}

// LastDuplicateOfFrameEqualFold applies the EqualFold predicate on the "last_duplicate_of_frame" field.
func LastDuplicateOfFrameEqualFold(v string) predicate.Slide {
	return predicate.Slide(sql.FieldEqualFold(FieldLastDuplicateOfFrame, v))
}

// LastDuplicateOfFrameContainsFold applies the ContainsFold predicate on the "last_duplicate_of_frame" field.
func LastDuplicateOfFrameContainsFold(v string) predicate.Slide {
	return predicate.Slide(sql.FieldContainsFold(FieldLastDuplicateOfFrame, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Slide {
	return predicate.Slide(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Slide {
	return predicate.Slide(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Slide {
	return predicate.Slide(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Slide {
	return predicate.Slide(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Slide {
	return predicate.Slide(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Slide {
	return predicate.Slide(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Slide {
	return predicate.Slide(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Slide {
	return predicate.Slide(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Slide) predicate.Slide {
	return predicate.Slide(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Slide) predicate.Slide {
	return predicate.Slide(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Slide) predicate.Slide {
	return predicate.Slide(sql.NotPredicates(p))
}
