// Code generated by ent, DO NOT EDIT.

package slideanalysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/recapd/recapd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldLTE(FieldID, id))
}

// VideoID applies equality check predicate on the "video_id" field. It's identical to VideoIDEQ.
func VideoID(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldEQ(FieldVideoID, v))
}

// SlideNumber applies equality check predicate on the "slide_number" field. It's identical to SlideNumberEQ.
func SlideNumber(v int) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldEQ(FieldSlideNumber, v))
}

// Markdown applies equality check predicate on the "markdown" field. It's identical to MarkdownEQ.
func Markdown(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldEQ(FieldMarkdown, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldEQ(FieldModel, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldEQ(FieldUpdatedAt, v))
}

// VideoIDEQ applies the EQ predicate on the "video_id" field.
func VideoIDEQ(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldEQ(FieldVideoID, v))
}

// VideoIDNEQ applies the NEQ predicate on the "video_id" field.
func VideoIDNEQ(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldNEQ(FieldVideoID, v))
}

// VideoIDIn applies the In predicate on the "video_id" field.
func VideoIDIn(vs ...string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldIn(FieldVideoID, vs...))
}

// VideoIDNotIn applies the NotIn predicate on the "video_id" field.
func VideoIDNotIn(vs ...string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldNotIn(FieldVideoID, vs...))
}

// VideoIDGT applies the GT predicate on the "video_id" field.
func VideoIDGT(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldGT(FieldVideoID, v))
}

// VideoIDGTE applies the GTE predicate on the "video_id" field.
func VideoIDGTE(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldGTE(FieldVideoID, v))
}

// VideoIDLT applies the LT predicate on the "video_id" field.
func VideoIDLT(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldLT(FieldVideoID, v))
}

// VideoIDLTE applies the LTE predicate on the "video_id" field.
func VideoIDLTE(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldLTE(FieldVideoID, v))
}

// VideoIDContains applies the Contains predicate on the "video_id" field.
func VideoIDContains(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldContains(FieldVideoID, v))
}

// VideoIDHasPrefix applies the HasPrefix predicate on the "video_id" field.
func VideoIDHasPrefix(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldHasPrefix(FieldVideoID, v))
}

// VideoIDHasSuffix applies the HasSuffix predicate on the "video_id" field.
func VideoIDHasSuffix(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldHasSuffix(FieldVideoID, v))
}

// VideoIDEqualFold applies the EqualFold predicate on the "video_id" field.
func VideoIDEqualFold(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldEqualFold(FieldVideoID, v))
}

// VideoIDContainsFold applies the ContainsFold predicate on the "video_id" field.
func VideoIDContainsFold(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldContainsFold(FieldVideoID, v))
}

// SlideNumberEQ applies the EQ predicate on the "slide_number" field.
func SlideNumberEQ(v int) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldEQ(FieldSlideNumber, v))
}

// SlideNumberNEQ applies the NEQ predicate on the "slide_number" field.
func SlideNumberNEQ(v int) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldNEQ(FieldSlideNumber, v))
}

// SlideNumberIn applies the In predicate on the "slide_number" field.
func SlideNumberIn(vs ...int) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldIn(FieldSlideNumber, vs...))
}

// SlideNumberNotIn applies the NotIn predicate on the "slide_number" field.
func SlideNumberNotIn(vs ...int) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldNotIn(FieldSlideNumber, vs...))
}

// SlideNumberGT applies the GT predicate on the "slide_number" field.
func SlideNumberGT(v int) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldGT(FieldSlideNumber, v))
}

// SlideNumberGTE applies the GTE predicate on the "slide_number" field.
func SlideNumberGTE(v int) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldGTE(FieldSlideNumber, v))
}

// SlideNumberLT applies the LT predicate on the "slide_number" field.
func SlideNumberLT(v int) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldLT(FieldSlideNumber, v))
}

// SlideNumberLTE applies the LTE predicate on the "slide_number" field.
func SlideNumberLTE(v int) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldLTE(FieldSlideNumber, v))
}

// FramePositionEQ applies the EQ predicate on the "frame_position" field.
func FramePositionEQ(v FramePosition) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldEQ(FieldFramePosition, v))
}

// FramePositionNEQ applies the NEQ predicate on the "frame_position" field.
func FramePositionNEQ(v FramePosition) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldNEQ(FieldFramePosition, v))
}

// FramePositionIn applies the In predicate on the "frame_position" field.
func FramePositionIn(vs ...FramePosition) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldIn(FieldFramePosition, vs...))
}

// FramePositionNotIn applies the NotIn predicate on the "frame_position" field.
func FramePositionNotIn(vs ...FramePosition) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldNotIn(FieldFramePosition, vs...))
}

// MarkdownEQ applies the EQ predicate on the "markdown" field.
func MarkdownEQ(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldEQ(FieldMarkdown, v))
}

// MarkdownNEQ applies the NEQ predicate on the "markdown" field.
func MarkdownNEQ(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldNEQ(FieldMarkdown, v))
}

// MarkdownIn applies the In predicate on the "markdown" field.
func MarkdownIn(vs ...string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldIn(FieldMarkdown, vs...))
}

// MarkdownNotIn applies the NotIn predicate on the "markdown" field.
func MarkdownNotIn(vs ...string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldNotIn(FieldMarkdown, vs...))
}

// MarkdownGT applies the GT predicate on the "markdown" field.
func MarkdownGT(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldGT(FieldMarkdown, v))
}

// MarkdownGTE applies the GTE predicate on the "markdown" field.
func MarkdownGTE(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldGTE(FieldMarkdown, v))
}

// MarkdownLT applies the LT predicate on the "markdown" field.
func MarkdownLT(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldLT(FieldMarkdown, v))
}

// MarkdownLTE applies the LTE predicate on the "markdown" field.
func MarkdownLTE(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldLTE(FieldMarkdown, v))
}

// MarkdownContains applies the Contains predicate on the "markdown" field.
func MarkdownContains(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldContains(FieldMarkdown, v))
}

// MarkdownHasPrefix applies the HasPrefix predicate on the "markdown" field.
func MarkdownHasPrefix(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldHasPrefix(FieldMarkdown, v))
}

// MarkdownHasSuffix applies the HasSuffix predicate on the "markdown" field.
func MarkdownHasSuffix(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldHasSuffix(FieldMarkdown, v))
}

// MarkdownEqualFold applies the EqualFold predicate on the "markdown" field.
func MarkdownEqualFold(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldEqualFold(FieldMarkdown, v))
}

// MarkdownContainsFold applies the ContainsFold predicate on the "markdown" field.
func MarkdownContainsFold(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldContainsFold(FieldMarkdown, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldContainsFold(FieldModel, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SlideAnalysis) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SlideAnalysis) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SlideAnalysis) predicate.SlideAnalysis {
	return predicate.SlideAnalysis(sql.NotPredicates(p))
}
