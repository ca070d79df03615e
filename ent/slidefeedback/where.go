// Code generated by ent, DO NOT EDIT.

package slidefeedback

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/recapd/recapd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldLTE(FieldID, id))
}

// VideoID applies equality check predicate on the "video_id" field. It's identical to VideoIDEQ.
func VideoID(v string) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldEQ(FieldVideoID, v))
}

// SlideNumber applies equality check predicate on the "slide_number" field. It's identical to SlideNumberEQ.
func SlideNumber(v int) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldEQ(FieldSlideNumber, v))
}

// IsFirstFramePicked applies equality check predicate on the "is_first_frame_picked" field. It's identical to IsFirstFramePickedEQ.
func IsFirstFramePicked(v bool) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldEQ(FieldIsFirstFramePicked, v))
}

// IsLastFramePicked applies equality check predicate on the "is_last_frame_picked" field. It's identical to IsLastFramePickedEQ.
func IsLastFramePicked(v bool) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldEQ(FieldIsLastFramePicked, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldEQ(FieldUpdatedAt, v))
}

// VideoIDEQ applies the EQ predicate on the "video_id" field.
func VideoIDEQ(v string) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldEQ(FieldVideoID, v))
}

// VideoIDNEQ applies the NEQ predicate on the "video_id" field.
func VideoIDNEQ(v string) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldNEQ(FieldVideoID, v))
}

// VideoIDIn applies the In predicate on the "video_id" field.
func VideoIDIn(vs ...string) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldIn(FieldVideoID, vs...))
}

// VideoIDNotIn applies the NotIn predicate on the "video_id" field.
func VideoIDNotIn(vs ...string) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldNotIn(FieldVideoID, vs...))
}

// VideoIDGT applies the GT predicate on the "video_id" field.
func VideoIDGT(v string) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldGT(FieldVideoID, v))
}

// VideoIDGTE applies the GTE predicate on the "video_id" field.
func VideoIDGTE(v string) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldGTE(FieldVideoID, v))
}

// VideoIDLT applies the LT predicate on the "video_id" field.
func VideoIDLT(v string) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldLT(FieldVideoID, v))
}

// VideoIDLTE applies the LTE predicate on the "video_id" field.
func VideoIDLTE(v string) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldLTE(FieldVideoID, v))
}

// VideoIDContains applies the Contains predicate on the "video_id" field.
func VideoIDContains(v string) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldContains(FieldVideoID, v))
}

// VideoIDHasPrefix applies the HasPrefix predicate on the "video_id" field.
func VideoIDHasPrefix(v string) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldHasPrefix(FieldVideoID, v))
}

// VideoIDHasSuffix applies the HasSuffix predicate on the "video_id" field.
func VideoIDHasSuffix(v string) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldHasSuffix(FieldVideoID, v))
}

// VideoIDEqualFold applies the EqualFold predicate on the "video_id" field.
func VideoIDEqualFold(v string) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldEqualFold(FieldVideoID, v))
}

// VideoIDContainsFold applies the ContainsFold predicate on the "video_id" field.
func VideoIDContainsFold(v string) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldContainsFold(FieldVideoID, v))
}

// SlideNumberEQ applies the EQ predicate on the "slide_number" field.
func SlideNumberEQ(v int) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldEQ(FieldSlideNumber, v))
}

// SlideNumberNEQ applies the NEQ predicate on the "slide_number" field.
func SlideNumberNEQ(v int) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldNEQ(FieldSlideNumber, v))
}

// SlideNumberIn applies the In predicate on the "slide_number" field.
func SlideNumberIn(vs ...int) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldIn(FieldSlideNumber, vs...))
}

// SlideNumberNotIn applies the NotIn predicate on the "slide_number" field.
func SlideNumberNotIn(vs ...int) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldNotIn(FieldSlideNumber, vs...))
}

// SlideNumberGT applies the GT predicate on the "slide_number" field.
func SlideNumberGT(v int) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldGT(FieldSlideNumber, v))
}

// SlideNumberGTE applies the GTE predicate on the "slide_number" field.
func SlideNumberGTE(v int) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldGTE(FieldSlideNumber, v))
}

// SlideNumberLT applies the LT predicate on the "slide_number" field.
func SlideNumberLT(v int) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldLT(FieldSlideNumber, v))
}

// SlideNumberLTE applies the LTE predicate on the "slide_number" field.
func SlideNumberLTE(v int) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldLTE(FieldSlideNumber, v))
}

// IsFirstFramePickedEQ applies the EQ predicate on the "is_first_frame_picked" field.
func IsFirstFramePickedEQ(v bool) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldEQ(FieldIsFirstFramePicked, v))
}

// IsFirstFramePickedNEQ applies the NEQ predicate on the "is_first_frame_picked" field.
func IsFirstFramePickedNEQ(v bool) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldNEQ(FieldIsFirstFramePicked, v))
}

// IsLastFramePickedEQ applies the EQ predicate on the "is_last_frame_picked" field.
func IsLastFramePickedEQ(v bool) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldEQ(FieldIsLastFramePicked, v))
}

// IsLastFramePickedNEQ applies the NEQ predicate on the "is_last_frame_picked" field.
func IsLastFramePickedNEQ(v bool) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldNEQ(FieldIsLastFramePicked, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SlideFeedback) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SlideFeedback) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SlideFeedback) predicate.SlideFeedback {
	return predicate.SlideFeedback(sql.NotPredicates(p))
}
