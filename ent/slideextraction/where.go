// Code generated by ent, DO NOT EDIT.

package slideextraction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/recapd/recapd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldLTE(FieldID, id))
}

// VideoID applies equality check predicate on the "video_id" field. It's identical to VideoIDEQ.
func VideoID(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldEQ(FieldVideoID, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldEQ(FieldRunID, v))
}

// TotalSlides applies equality check predicate on the "total_slides" field. It's identical to TotalSlidesEQ.
func TotalSlides(v int) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldEQ(FieldTotalSlides, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldEQ(FieldUpdatedAt, v))
}

// VideoIDEQ applies the EQ predicate on the "video_id" field.
func VideoIDEQ(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldEQ(FieldVideoID, v))
}

// VideoIDNEQ applies the NEQ predicate on the "video_id" field.
func VideoIDNEQ(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldNEQ(FieldVideoID, v))
}

// VideoIDIn applies the In predicate on the "video_id" field.
func VideoIDIn(vs ...string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldIn(FieldVideoID, vs...))
}

// VideoIDNotIn applies the NotIn predicate on the "video_id" field.
func VideoIDNotIn(vs ...string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldNotIn(FieldVideoID, vs...))
}

// VideoIDGT applies the GT predicate on the "video_id" field.
func VideoIDGT(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldGT(FieldVideoID, v))
}

// VideoIDGTE applies the GTE predicate on the "video_id" field.
func VideoIDGTE(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldGTE(FieldVideoID, v))
}

// VideoIDLT applies the LT predicate on the "video_id" field.
func VideoIDLT(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldLT(FieldVideoID, v))
}

// VideoIDLTE applies the LTE predicate on the "video_id" field.
func VideoIDLTE(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldLTE(FieldVideoID, v))
}

// VideoIDContains applies the Contains predicate on the "video_id" field.
func VideoIDContains(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldContains(FieldVideoID, v))
}

// VideoIDHasPrefix applies the HasPrefix predicate on the "video_id" field.
func VideoIDHasPrefix(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldHasPrefix(FieldVideoID, v))
}

// VideoIDHasSuffix applies the HasSuffix predicate on the "video_id" field.
func VideoIDHasSuffix(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldHasSuffix(FieldVideoID, v))
}

// VideoIDEqualFold applies the EqualFold predicate on the "video_id" field.
func VideoIDEqualFold(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldEqualFold(FieldVideoID, v))
}

// VideoIDContainsFold applies the ContainsFold predicate on the "video_id" field.
func VideoIDContainsFold(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldContainsFold(FieldVideoID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldNotIn(FieldStatus, vs...))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDIsNil applies the IsNil predicate on the "run_id" field.
func RunIDIsNil() predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldIsNull(FieldRunID))
}

// RunIDNotNil applies the NotNil predicate on the "run_id" field.
func RunIDNotNil() predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldNotNull(FieldRunID))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldContainsFold(FieldRunID, v))
}

// TotalSlidesEQ applies the EQ predicate on the "total_slides" field.
func TotalSlidesEQ(v int) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldEQ(FieldTotalSlides, v))
}

// TotalSlidesNEQ applies the NEQ predicate on the "total_slides" field.
func TotalSlidesNEQ(v int) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldNEQ(FieldTotalSlides, v))
}

// TotalSlidesIn applies the In predicate on the "total_slides" field.
func TotalSlidesIn(vs ...int) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldIn(FieldTotalSlides, vs...))
}

// TotalSlidesNotIn applies the NotIn predicate on the "total_slides" field.
func TotalSlidesNotIn(vs ...int) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldNotIn(FieldTotalSlides, vs...))
}

// TotalSlidesGT applies the GT predicate on the "total_slides" field.
func TotalSlidesGT(v int) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldGT(FieldTotalSlides, v))
}

// TotalSlidesGTE applies the GTE predicate on the "total_slides" field.
func TotalSlidesGTE(v int) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldGTE(FieldTotalSlides, v))
}

// TotalSlidesLT applies the LT predicate on the "total_slides" field.
func TotalSlidesLT(v int) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldLT(FieldTotalSlides, v))
}

// TotalSlidesLTE applies the LTE predicate on the "total_slides" field.
func TotalSlidesLTE(v int) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldLTE(FieldTotalSlides, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SlideExtraction) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SlideExtraction) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SlideExtraction) predicate.SlideExtraction {
	return predicate.SlideExtraction(sql.NotPredicates(p))
}
