// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recapd/recapd/ent/predicate"
	"github.com/recapd/recapd/ent/slide"
)

// SlideUpdate is the builder for updating Slide entities.
type SlideUpdate struct {
	config
	hooks    []Hook
	mutation *SlideMutation
}

// Where appends a list predicates to the SlideUpdate builder.
func (_u *SlideUpdate) Where(ps ...predicate.Slide) *SlideUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStartSeconds sets the "start_seconds" field.
func (_u *SlideUpdate) SetStartSeconds(v float64) *SlideUpdate {
	_u.mutation.ResetStartSeconds()
	_u.mutation.SetStartSeconds(v)
	return _u
}

// SetNillableStartSeconds sets the "start_seconds" field if the given value is not nil.
func (_u *SlideUpdate) SetNillableStartSeconds(v *float64) *SlideUpdate {
	if v != nil {
		_u.SetStartSeconds(*v)
	}
	return _u
}

// AddStartSeconds adds value to the "start_seconds" field.
func (_u *SlideUpdate) AddStartSeconds(v float64) *SlideUpdate {
	_u.mutation.AddStartSeconds(v)
	return _u
}

// SetEndSeconds sets the "end_seconds" field.
func (_u *SlideUpdate) SetEndSeconds(v float64) *SlideUpdate {
	_u.mutation.ResetEndSeconds()
	_u.mutation.SetEndSeconds(v)
	return _u
}

// SetNillableEndSeconds sets the "end_seconds" field if the given value is not nil.
func (_u *SlideUpdate) SetNillableEndSeconds(v *float64) *SlideUpdate {
	if v != nil {
		_u.SetEndSeconds(*v)
	}
	return _u
}

// AddEndSeconds adds value to the "end_seconds" field.
func (_u *SlideUpdate) AddEndSeconds(v float64) *SlideUpdate {
	_u.mutation.AddEndSeconds(v)
	return _u
}

// SetFirstImageURL sets the "first_image_url" field.
func (_u *SlideUpdate) SetFirstImageURL(v string) *SlideUpdate {
	_u.mutation.SetFirstImageURL(v)
	return _u
}

// SetNillableFirstImageURL sets the "first_image_url" field if the given value is not nil.
func (_u *SlideUpdate) SetNillableFirstImageURL(v *string) *SlideUpdate {
	if v != nil {
		_u.SetFirstImageURL(*v)
	}
	return _u
}

// ClearFirstImageURL clears the value of the "first_image_url" field.
func (_u *SlideUpdate) ClearFirstImageURL() *SlideUpdate {
	_u.mutation.ClearFirstImageURL()
	return _u
}

// SetFirstSourceURI sets the "first_source_uri" field.
func (_u *SlideUpdate) SetFirstSourceURI(v string) *SlideUpdate {
	_u.mutation.SetFirstSourceURI(v)
	return _u
}

// SetNillableFirstSourceURI sets the "first_source_uri" field if the given value is not nil.
func (_u *SlideUpdate) SetNillableFirstSourceURI(v *string) *SlideUpdate {
	if v != nil {
		_u.SetFirstSourceURI(*v)
	}
	return _u
}

// ClearFirstSourceURI clears the value of the "first_source_uri" field.
func (_u *SlideUpdate) ClearFirstSourceURI() *SlideUpdate {
	_u.mutation.ClearFirstSourceURI()
	return _u
}

// SetFirstHasText sets the "first_has_text" field.
func (_u *SlideUpdate) SetFirstHasText(v bool) *SlideUpdate {
	_u.mutation.SetFirstHasText(v)
	return _u
}

// SetNillableFirstHasText sets the "first_has_text" field if the given value is not nil.
func (_u *SlideUpdate) SetNillableFirstHasText(v *bool) *SlideUpdate {
	if v != nil {
		_u.SetFirstHasText(*v)
	}
	return _u
}

// SetFirstTextConfidence sets the "first_text_confidence" field.
func (_u *SlideUpdate) SetFirstTextConfidence(v float64) *SlideUpdate {
	_u.mutation.ResetFirstTextConfidence()
	_u.mutation.SetFirstTextConfidence(v)
	return _u
}

// SetNillableFirstTextConfidence sets the "first_text_confidence" field if the given value is not nil.
func (_u *SlideUpdate) SetNillableFirstTextConfidence(v *float64) *SlideUpdate {
	if v != nil {
		_u.SetFirstTextConfidence(*v)
	}
	return _u
}

// AddFirstTextConfidence adds value to the "first_text_confidence" field.
func (_u *SlideUpdate) AddFirstTextConfidence(v float64) *SlideUpdate {
	_u.mutation.AddFirstTextConfidence(v)
	return _u
}

// ClearFirstTextConfidence clears the value of the "first_text_confidence" field.
func (_u *SlideUpdate) ClearFirstTextConfidence() *SlideUpdate {
	_u.mutation.ClearFirstTextConfidence()
	return _u
}

// SetFirstUploadError sets the "first_upload_error" field.
func (_u *SlideUpdate) SetFirstUploadError(v string) *SlideUpdate {
	_u.mutation.SetFirstUploadError(v)
	return _u
}

// SetNillableFirstUploadError sets the "first_upload_error" field if the given value is not nil.
func (_u *SlideUpdate) SetNillableFirstUploadError(v *string) *SlideUpdate {
	if v != nil {
		_u.SetFirstUploadError(*v)
	}
	return _u
}

// ClearFirstUploadError clears the value of the "first_upload_error" field.
func (_u *SlideUpdate) ClearFirstUploadError() *SlideUpdate {
	_u.mutation.ClearFirstUploadError()
	return _u
}

// SetFirstDuplicateOfSlide sets the "first_duplicate_of_slide" field.
func (_u *SlideUpdate) SetFirstDuplicateOfSlide(v int) *SlideUpdate {
	_u.mutation.ResetFirstDuplicateOfSlide()
	_u.mutation.SetFirstDuplicateOfSlide(v)
	return _u
}

// SetNillableFirstDuplicateOfSlide sets the "first_duplicate_of_slide" field if the given value is not nil.
func (_u *SlideUpdate) SetNillableFirstDuplicateOfSlide(v *int) *SlideUpdate {
	if v != nil {
		_u.SetFirstDuplicateOfSlide(*v)
	}
	return _u
}

// AddFirstDuplicateOfSlide adds value to the "first_duplicate_of_slide" field.
func (_u *SlideUpdate) AddFirstDuplicateOfSlide(v int) *SlideUpdate {
	_u.mutation.AddFirstDuplicateOfSlide(v)
	return _u
}

// ClearFirstDuplicateOfSlide clears the value of the "first_duplicate_of_slide" field.
func (_u *SlideUpdate) ClearFirstDuplicateOfSlide() *SlideUpdate {
	_u.mutation.ClearFirstDuplicateOfSlide()
	return _u
}

// SetFirstDuplicateOfFrame sets the "first_duplicate_of_frame" field.
func (_u *SlideUpdate) SetFirstDuplicateOfFrame(v string) *SlideUpdate {
	_u.mutation.SetFirstDuplicateOfFrame(v)
	return _u
}

// SetNillableFirstDuplicateOfFrame sets the "first_duplicate_of_frame" field if the given value is not nil.
func (_u *SlideUpdate) SetNillableFirstDuplicateOfFrame(v *string) *SlideUpdate {
	if v != nil {
		_u.SetFirstDuplicateOfFrame(*v)
	}
	return _u
}

// ClearFirstDuplicateOfFrame clears the value of the "first_duplicate_of_frame" field.
func (_u *SlideUpdate) ClearFirstDuplicateOfFrame() *SlideUpdate {
	_u.mutation.ClearFirstDuplicateOfFrame()
	return _u
}

// SetLastImageURL sets the "last_image_url" field.
func (_u *SlideUpdate) SetLastImageURL(v string) *SlideUpdate {
	_u.mutation.SetLastImageURL(v)
	return _u
}

// SetNillableLastImageURL sets the "last_image_url" field if the given value is not nil.
func (_u *SlideUpdate) SetNillableLastImageURL(v *string) *SlideUpdate {
	if v != nil {
		_u.SetLastImageURL(*v)
	}
	return _u
}

// ClearLastImageURL clears the value of the "last_image_url" field.
func (_u *SlideUpdate) ClearLastImageURL() *SlideUpdate {
	_u.mutation.ClearLastImageURL()
	return _u
}

// SetLastSourceURI sets the "last_source_uri" field.
func (_u *SlideUpdate) SetLastSourceURI(v string) *SlideUpdate {
	_u.mutation.SetLastSourceURI(v)
	return _u
}

// SetNillableLastSourceURI sets the "last_source_uri" field if the given value is not nil.
func (_u *SlideUpdate) SetNillableLastSourceURI(v *string) *SlideUpdate {
	if v != nil {
		_u.SetLastSourceURI(*v)
	}
	return _u
}

// ClearLastSourceURI clears the value of the "last_source_uri" field.
func (_u *SlideUpdate) ClearLastSourceURI() *SlideUpdate {
	_u.mutation.ClearLastSourceURI()
	return _u
}

// SetLastHasText sets the "last_has_text" field.
func (_u *SlideUpdate) SetLastHasText(v bool) *SlideUpdate {
	_u.mutation.SetLastHasText(v)
	return _u
}

// SetNillableLastHasText sets the "last_has_text" field if the given value is not nil.
func (_u *SlideUpdate) SetNillableLastHasText(v *bool) *SlideUpdate {
	if v != nil {
		_u.SetLastHasText(*v)
	}
	return _u
}

// SetLastTextConfidence sets the "last_text_confidence" field.
func (_u *SlideUpdate) SetLastTextConfidence(v float64) *SlideUpdate {
	_u.mutation.ResetLastTextConfidence()
	_u.mutation.SetLastTextConfidence(v)
	return _u
}

// SetNillableLastTextConfidence sets the "last_text_confidence" field if the given value is not nil.
func (_u *SlideUpdate) SetNillableLastTextConfidence(v *float64) *SlideUpdate {
	if v != nil {
		_u.SetLastTextConfidence(*v)
	}
	return _u
}

// AddLastTextConfidence adds value to the "last_text_confidence" field.
func (_u *SlideUpdate) AddLastTextConfidence(v float64) *SlideUpdate {
	_u.mutation.AddLastTextConfidence(v)
	return _u
}

// ClearLastTextConfidence clears the value of the "last_text_confidence" field.
func (_u *SlideUpdate) ClearLastTextConfidence() *SlideUpdate {
	_u.mutation.ClearLastTextConfidence()
	return _u
}

// SetLastUploadError sets the "last_upload_error" field.
func (_u *SlideUpdate) SetLastUploadError(v string) *SlideUpdate {
	_u.mutation.SetLastUploadError(v)
	return _u
}

// SetNillableLastUploadError sets the "last_upload_error" field if the given value is not nil.
func (_u *SlideUpdate) SetNillableLastUploadError(v *string) *SlideUpdate {
	if v != nil {
		_u.SetLastUploadError(*v)
	}
	return _u
}

// ClearLastUploadError clears the value of the "last_upload_error" field.
func (_u *SlideUpdate) ClearLastUploadError() *SlideUpdate {
	_u.mutation.ClearLastUploadError()
	return _u
}

// SetLastDuplicateOfSlide sets the "last_duplicate_of_slide" field.
func (_u *SlideUpdate) SetLastDuplicateOfSlide(v int) *SlideUpdate {
	_u.mutation.ResetLastDuplicateOfSlide()
	_u.mutation.SetLastDuplicateOfSlide(v)
	return _u
}

// SetNillableLastDuplicateOfSlide sets the "last_duplicate_of_slide" field if the given value is not nil.
func (_u *SlideUpdate) SetNillableLastDuplicateOfSlide(v *int) *SlideUpdate {
	if v != nil {
		_u.SetLastDuplicateOfSlide(*v)
	}
	return _u
}

// AddLastDuplicateOfSlide adds value to the "last_duplicate_of_slide" field.
func (_u *SlideUpdate) AddLastDuplicateOfSlide(v int) *SlideUpdate {
	_u.mutation.AddLastDuplicateOfSlide(v)
	return _u
}

// ClearLastDuplicateOfSlide clears the value of the "last_duplicate_of_slide" field.
func (_u *SlideUpdate) ClearLastDuplicateOfSlide() *SlideUpdate {
	_u.mutation.ClearLastDuplicateOfSlide()
	return _u
}

// SetLastDuplicateOfFrame sets the "last_duplicate_of_frame" field.
func (_u *SlideUpdate) SetLastDuplicateOfFrame(v string) *SlideUpdate {
	_u.mutation.SetLastDuplicateOfFrame(v)
	return _u
}

// SetNillableLastDuplicateOfFrame sets the "last_duplicate_of_frame" field if the given value is not nil.
func (_u *SlideUpdate) SetNillableLastDuplicateOfFrame(v *string) *SlideUpdate {
	if v != nil {
		_u.SetLastDuplicateOfFrame(*v)
	}
	return _u
}

// ClearLastDuplicateOfFrame clears the value of the "last_duplicate_of_frame" field.
func (_u *SlideUpdate) ClearLastDuplicateOfFrame() *SlideUpdate {
	_u.mutation.ClearLastDuplicateOfFrame()
	return _u
}

// Mutation returns the SlideMutation object of the builder.
func (_u *SlideUpdate) Mutation() *SlideMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SlideUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SlideUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SlideUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SlideUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SlideUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(slide.Table, slide.Columns, sqlgraph.NewFieldSpec(slide.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StartSeconds(); ok {
		_spec.SetField(slide.FieldStartSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStartSeconds(); ok {
		_spec.AddField(slide.FieldStartSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EndSeconds(); ok {
		_spec.SetField(slide.FieldEndSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEndSeconds(); ok {
		_spec.AddField(slide.FieldEndSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FirstImageURL(); ok {
		_spec.SetField(slide.FieldFirstImageURL, field.TypeString, value)
	}
	if _u.mutation.FirstImageURLCleared() {
		_spec.ClearField(slide.FieldFirstImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.FirstSourceURI(); ok {
		_spec.SetField(slide.FieldFirstSourceURI, field.TypeString, value)
	}
	if _u.mutation.FirstSourceURICleared() {
		_spec.ClearField(slide.FieldFirstSourceURI, field.TypeString)
	}
	if value, ok := _u.mutation.FirstHasText(); ok {
		_spec.SetField(slide.FieldFirstHasText, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FirstTextConfidence(); ok {
		_spec.SetField(slide.FieldFirstTextConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFirstTextConfidence(); ok {
		_spec.AddField(slide.FieldFirstTextConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.FirstTextConfidenceCleared() {
		_spec.ClearField(slide.FieldFirstTextConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FirstUploadError(); ok {
		_spec.SetField(slide.FieldFirstUploadError, field.TypeString, value)
	}
	if _u.mutation.FirstUploadErrorCleared() {
		_spec.ClearField(slide.FieldFirstUploadError, field.TypeString)
	}
	if value, ok := _u.mutation.FirstDuplicateOfSlide(); ok {
		_spec.SetField(slide.FieldFirstDuplicateOfSlide, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFirstDuplicateOfSlide(); ok {
		_spec.AddField(slide.FieldFirstDuplicateOfSlide, field.TypeInt, value)
	}
	if _u.mutation.FirstDuplicateOfSlideCleared() {
		_spec.ClearField(slide.FieldFirstDuplicateOfSlide, field.TypeInt)
	}
	if value, ok := _u.mutation.FirstDuplicateOfFrame(); ok {
		_spec.SetField(slide.FieldFirstDuplicateOfFrame, field.TypeString, value)
	}
	if _u.mutation.FirstDuplicateOfFrameCleared() {
		_spec.ClearField(slide.FieldFirstDuplicateOfFrame, field.TypeString)
	}
	if value, ok := _u.mutation.LastImageURL(); ok {
		_spec.SetField(slide.FieldLastImageURL, field.TypeString, value)
	}
	if _u.mutation.LastImageURLCleared() {
		_spec.ClearField(slide.FieldLastImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.LastSourceURI(); ok {
		_spec.SetField(slide.FieldLastSourceURI, field.TypeString, value)
	}
	if _u.mutation.LastSourceURICleared() {
		_spec.ClearField(slide.FieldLastSourceURI, field.TypeString)
	}
	if value, ok := _u.mutation.LastHasText(); ok {
		_spec.SetField(slide.FieldLastHasText, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastTextConfidence(); ok {
		_spec.SetField(slide.FieldLastTextConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLastTextConfidence(); ok {
		_spec.AddField(slide.FieldLastTextConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.LastTextConfidenceCleared() {
		_spec.ClearField(slide.FieldLastTextConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LastUploadError(); ok {
		_spec.SetField(slide.FieldLastUploadError, field.TypeString, value)
	}
	if _u.mutation.LastUploadErrorCleared() {
		_spec.ClearField(slide.FieldLastUploadError, field.TypeString)
	}
	if value, ok := _u.mutation.LastDuplicateOfSlide(); ok {
		_spec.SetField(slide.FieldLastDuplicateOfSlide, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastDuplicateOfSlide(); ok {
		_spec.AddField(slide.FieldLastDuplicateOfSlide, field.TypeInt, value)
	}
	if _u.mutation.LastDuplicateOfSlideCleared() {
		_spec.ClearField(slide.FieldLastDuplicateOfSlide, field.TypeInt)
	}
	if value, ok := _u.mutation.LastDuplicateOfFrame(); ok {
		_spec.SetField(slide.FieldLastDuplicateOfFrame, field.TypeString, value)
	}
	if _u.mutation.LastDuplicateOfFrameCleared() {
		_spec.ClearField(slide.FieldLastDuplicateOfFrame, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slide.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SlideUpdateOne is the builder for updating a single Slide entity.
type SlideUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SlideMutation
}

// SetStartSeconds sets the "start_seconds" field.
func (_u *SlideUpdateOne) SetStartSeconds(v float64) *SlideUpdateOne {
	_u.mutation.ResetStartSeconds()
	_u.mutation.SetStartSeconds(v)
	return _u
}

// SetNillableStartSeconds sets the "start_seconds" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillableStartSeconds(v *float64) *SlideUpdateOne {
	if v != nil {
		_u.SetStartSeconds(*v)
	}
	return _u
}

// AddStartSeconds adds value to the "start_seconds" field.
func (_u *SlideUpdateOne) AddStartSeconds(v float64) *SlideUpdateOne {
	_u.mutation.AddStartSeconds(v)
	return _u
}

// SetEndSeconds sets the "end_seconds" field.
func (_u *SlideUpdateOne) SetEndSeconds(v float64) *SlideUpdateOne {
	_u.mutation.ResetEndSeconds()
	_u.mutation.SetEndSeconds(v)
	return _u
}

// SetNillableEndSeconds sets the "end_seconds" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillableEndSeconds(v *float64) *SlideUpdateOne {
	if v != nil {
		_u.SetEndSeconds(*v)
	}
	return _u
}

// AddEndSeconds adds value to the "end_seconds" field.
func (_u *SlideUpdateOne) AddEndSeconds(v float64) *SlideUpdateOne {
	_u.mutation.AddEndSeconds(v)
	return _u
}

// SetFirstImageURL sets the "first_image_url" field.
func (_u *SlideUpdateOne) SetFirstImageURL(v string) *SlideUpdateOne {
	_u.mutation.SetFirstImageURL(v)
	return _u
}

// SetNillableFirstImageURL sets the "first_image_url" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillableFirstImageURL(v *string) *SlideUpdateOne {
	if v != nil {
		_u.SetFirstImageURL(*v)
	}
	return _u
}

// ClearFirstImageURL clears the value of the "first_image_url" field.
func (_u *SlideUpdateOne) ClearFirstImageURL() *SlideUpdateOne {
	_u.mutation.ClearFirstImageURL()
	return _u
}

// SetFirstSourceURI sets the "first_source_uri" field.
func (_u *SlideUpdateOne) SetFirstSourceURI(v string) *SlideUpdateOne {
	_u.mutation.SetFirstSourceURI(v)
	return _u
}

// SetNillableFirstSourceURI sets the "first_source_uri" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillableFirstSourceURI(v *string) *SlideUpdateOne {
	if v != nil {
		_u.SetFirstSourceURI(*v)
	}
	return _u
}

// ClearFirstSourceURI clears the value of the "first_source_uri" field.
func (_u *SlideUpdateOne) ClearFirstSourceURI() *SlideUpdateOne {
	_u.mutation.ClearFirstSourceURI()
	return _u
}

// SetFirstHasText sets the "first_has_text" field.
func (_u *SlideUpdateOne) SetFirstHasText(v bool) *SlideUpdateOne {
	_u.mutation.SetFirstHasText(v)
	return _u
}

// SetNillableFirstHasText sets the "first_has_text" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillableFirstHasText(v *bool) *SlideUpdateOne {
	if v != nil {
		_u.SetFirstHasText(*v)
	}
	return _u
}

// SetFirstTextConfidence sets the "first_text_confidence" field.
func (_u *SlideUpdateOne) SetFirstTextConfidence(v float64) *SlideUpdateOne {
	_u.mutation.ResetFirstTextConfidence()
	_u.mutation.SetFirstTextConfidence(v)
	return _u
}

// SetNillableFirstTextConfidence sets the "first_text_confidence" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillableFirstTextConfidence(v *float64) *SlideUpdateOne {
	if v != nil {
		_u.SetFirstTextConfidence(*v)
	}
	return _u
}

// AddFirstTextConfidence adds value to the "first_text_confidence" field.
func (_u *SlideUpdateOne) AddFirstTextConfidence(v float64) *SlideUpdateOne {
	_u.mutation.AddFirstTextConfidence(v)
	return _u
}

// ClearFirstTextConfidence clears the value of the "first_text_confidence" field.
func (_u *SlideUpdateOne) ClearFirstTextConfidence() *SlideUpdateOne {
	_u.mutation.ClearFirstTextConfidence()
	return _u
}

// SetFirstUploadError sets the "first_upload_error" field.
func (_u *SlideUpdateOne) SetFirstUploadError(v string) *SlideUpdateOne {
	_u.mutation.SetFirstUploadError(v)
	return _u
}

// SetNillableFirstUploadError sets the "first_upload_error" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillableFirstUploadError(v *string) *SlideUpdateOne {
	if v != nil {
		_u.SetFirstUploadError(*v)
	}
	return _u
}

// ClearFirstUploadError clears the value of the "first_upload_error" field.
func (_u *SlideUpdateOne) ClearFirstUploadError() *SlideUpdateOne {
	_u.mutation.ClearFirstUploadError()
	return _u
}

// SetFirstDuplicateOfSlide sets the "first_duplicate_of_slide" field.
func (_u *SlideUpdateOne) SetFirstDuplicateOfSlide(v int) *SlideUpdateOne {
	_u.mutation.ResetFirstDuplicateOfSlide()
	_u.mutation.SetFirstDuplicateOfSlide(v)
	return _u
}

// SetNillableFirstDuplicateOfSlide sets the "first_duplicate_of_slide" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillableFirstDuplicateOfSlide(v *int) *SlideUpdateOne {
	if v != nil {
		_u.SetFirstDuplicateOfSlide(*v)
	}
	return _u
}

// AddFirstDuplicateOfSlide adds value to the "first_duplicate_of_slide" field.
func (_u *SlideUpdateOne) AddFirstDuplicateOfSlide(v int) *SlideUpdateOne {
	_u.mutation.AddFirstDuplicateOfSlide(v)
	return _u
}

// ClearFirstDuplicateOfSlide clears the value of the "first_duplicate_of_slide" field.
func (_u *SlideUpdateOne) ClearFirstDuplicateOfSlide() *SlideUpdateOne {
	_u.mutation.ClearFirstDuplicateOfSlide()
	return _u
}

// SetFirstDuplicateOfFrame sets the "first_duplicate_of_frame" field.
func (_u *SlideUpdateOne) SetFirstDuplicateOfFrame(v string) *SlideUpdateOne {
	_u.mutation.SetFirstDuplicateOfFrame(v)
	return _u
}

// SetNillableFirstDuplicateOfFrame sets the "first_duplicate_of_frame" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillableFirstDuplicateOfFrame(v *string) *SlideUpdateOne {
	if v != nil {
		_u.SetFirstDuplicateOfFrame(*v)
	}
	return _u
}

// ClearFirstDuplicateOfFrame clears the value of the "first_duplicate_of_frame" field.
func (_u *SlideUpdateOne) ClearFirstDuplicateOfFrame() *SlideUpdateOne {
	_u.mutation.ClearFirstDuplicateOfFrame()
	return _u
}

// SetLastImageURL sets the "last_image_url" field.
func (_u *SlideUpdateOne) SetLastImageURL(v string) *SlideUpdateOne {
	_u.mutation.SetLastImageURL(v)
	return _u
}

// SetNillableLastImageURL sets the "last_image_url" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillableLastImageURL(v *string) *SlideUpdateOne {
	if v != nil {
		_u.SetLastImageURL(*v)
	}
	return _u
}

// ClearLastImageURL clears the value of the "last_image_url" field.
func (_u *SlideUpdateOne) ClearLastImageURL() *SlideUpdateOne {
	_u.mutation.ClearLastImageURL()
	return _u
}

// SetLastSourceURI sets the "last_source_uri" field.
func (_u *SlideUpdateOne) SetLastSourceURI(v string) *SlideUpdateOne {
	_u.mutation.SetLastSourceURI(v)
	return _u
}

// SetNillableLastSourceURI sets the "last_source_uri" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillableLastSourceURI(v *string) *SlideUpdateOne {
	if v != nil {
		_u.SetLastSourceURI(*v)
	}
	return _u
}

// ClearLastSourceURI clears the value of the "last_source_uri" field.
func (_u *SlideUpdateOne) ClearLastSourceURI() *SlideUpdateOne {
	_u.mutation.ClearLastSourceURI()
	return _u
}

// SetLastHasText sets the "last_has_text" field.
func (_u *SlideUpdateOne) SetLastHasText(v bool) *SlideUpdateOne {
	_u.mutation.SetLastHasText(v)
	return _u
}

// SetNillableLastHasText sets the "last_has_text" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillableLastHasText(v *bool) *SlideUpdateOne {
	if v != nil {
		_u.SetLastHasText(*v)
	}
	return _u
}

// SetLastTextConfidence sets the "last_text_confidence" field.
func (_u *SlideUpdateOne) SetLastTextConfidence(v float64) *SlideUpdateOne {
	_u.mutation.ResetLastTextConfidence()
	_u.mutation.SetLastTextConfidence(v)
	return _u
}

// SetNillableLastTextConfidence sets the "last_text_confidence" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillableLastTextConfidence(v *float64) *SlideUpdateOne {
	if v != nil {
		_u.SetLastTextConfidence(*v)
	}
	return _u
}

// AddLastTextConfidence adds value to the "last_text_confidence" field.
func (_u *SlideUpdateOne) AddLastTextConfidence(v float64) *SlideUpdateOne {
	_u.mutation.AddLastTextConfidence(v)
	return _u
}

// ClearLastTextConfidence clears the value of the "last_text_confidence" field.
func (_u *SlideUpdateOne) ClearLastTextConfidence() *SlideUpdateOne {
	_u.mutation.ClearLastTextConfidence()
	return _u
}

// SetLastUploadError sets the "last_upload_error" field.
func (_u *SlideUpdateOne) SetLastUploadError(v string) *SlideUpdateOne {
	_u.mutation.SetLastUploadError(v)
	return _u
}

// SetNillableLastUploadError sets the "last_upload_error" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillableLastUploadError(v *string) *SlideUpdateOne {
	if v != nil {
		_u.SetLastUploadError(*v)
	}
	return _u
}

// ClearLastUploadError clears the value of the "last_upload_error" field.
func (_u *SlideUpdateOne) ClearLastUploadError() *SlideUpdateOne {
	_u.mutation.ClearLastUploadError()
	return _u
}

// SetLastDuplicateOfSlide sets the "last_duplicate_of_slide" field.
func (_u *SlideUpdateOne) SetLastDuplicateOfSlide(v int) *SlideUpdateOne {
	_u.mutation.ResetLastDuplicateOfSlide()
	_u.mutation.SetLastDuplicateOfSlide(v)
	return _u
}

// SetNillableLastDuplicateOfSlide sets the "last_duplicate_of_slide" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillableLastDuplicateOfSlide(v *int) *SlideUpdateOne {
	if v != nil {
		_u.SetLastDuplicateOfSlide(*v)
	}
	return _u
}

// AddLastDuplicateOfSlide adds value to the "last_duplicate_of_slide" field.
func (_u *SlideUpdateOne) AddLastDuplicateOfSlide(v int) *SlideUpdateOne {
	_u.mutation.AddLastDuplicateOfSlide(v)
	return _u
}

// ClearLastDuplicateOfSlide clears the value of the "last_duplicate_of_slide" field.
func (_u *SlideUpdateOne) ClearLastDuplicateOfSlide() *SlideUpdateOne {
	_u.mutation.ClearLastDuplicateOfSlide()
	return _u
}

// SetLastDuplicateOfFrame sets the "last_duplicate_of_frame" field.
func (_u *SlideUpdateOne) SetLastDuplicateOfFrame(v string) *SlideUpdateOne {
	_u.mutation.SetLastDuplicateOfFrame(v)
	return _u
}

// SetNillableLastDuplicateOfFrame sets the "last_duplicate_of_frame" field if the given value is not nil.
func (_u *SlideUpdateOne) SetNillableLastDuplicateOfFrame(v *string) *SlideUpdateOne {
	if v != nil {
		_u.SetLastDuplicateOfFrame(*v)
	}
	return _u
}

// ClearLastDuplicateOfFrame clears the value of the "last_duplicate_of_frame" field.
func (_u *SlideUpdateOne) ClearLastDuplicateOfFrame() *SlideUpdateOne {
	_u.mutation.ClearLastDuplicateOfFrame()
	return _u
}

// Mutation returns the SlideMutation object of the builder.
func (_u *SlideUpdateOne) Mutation() *SlideMutation {
	return _u.mutation
}

// Where appends a list predicates to the SlideUpdate builder.
func (_u *SlideUpdateOne) Where(ps ...predicate.Slide) *SlideUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SlideUpdateOne) Select(field string, fields ...string) *SlideUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Slide entity.
func (_u *SlideUpdateOne) Save(ctx context.Context) (*Slide, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SlideUpdateOne) SaveX(ctx context.Context) *Slide {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SlideUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SlideUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SlideUpdateOne) sqlSave(ctx context.Context) (_node *Slide, err error) {
	_spec := sqlgraph.NewUpdateSpec(slide.Table, slide.Columns, sqlgraph.NewFieldSpec(slide.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Slide.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, slide.FieldID)
		for _, f := range fields {
			if !slide.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != slide.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StartSeconds(); ok {
		_spec.SetField(slide.FieldStartSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStartSeconds(); ok {
		_spec.AddField(slide.FieldStartSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EndSeconds(); ok {
		_spec.SetField(slide.FieldEndSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEndSeconds(); ok {
		_spec.AddField(slide.FieldEndSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FirstImageURL(); ok {
		_spec.SetField(slide.FieldFirstImageURL, field.TypeString, value)
	}
	if _u.mutation.FirstImageURLCleared() {
		_spec.ClearField(slide.FieldFirstImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.FirstSourceURI(); ok {
		_spec.SetField(slide.FieldFirstSourceURI, field.TypeString, value)
	}
	if _u.mutation.FirstSourceURICleared() {
		_spec.ClearField(slide.FieldFirstSourceURI, field.TypeString)
	}
	if value, ok := _u.mutation.FirstHasText(); ok {
		_spec.SetField(slide.FieldFirstHasText, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FirstTextConfidence(); ok {
		_spec.SetField(slide.FieldFirstTextConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFirstTextConfidence(); ok {
		_spec.AddField(slide.FieldFirstTextConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.FirstTextConfidenceCleared() {
		_spec.ClearField(slide.FieldFirstTextConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FirstUploadError(); ok {
		_spec.SetField(slide.FieldFirstUploadError, field.TypeString, value)
	}
	if _u.mutation.FirstUploadErrorCleared() {
		_spec.ClearField(slide.FieldFirstUploadError, field.TypeString)
	}
	if value, ok := _u.mutation.FirstDuplicateOfSlide(); ok {
		_spec.SetField(slide.FieldFirstDuplicateOfSlide, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFirstDuplicateOfSlide(); ok {
		_spec.AddField(slide.FieldFirstDuplicateOfSlide, field.TypeInt, value)
	}
	if _u.mutation.FirstDuplicateOfSlideCleared() {
		_spec.ClearField(slide.FieldFirstDuplicateOfSlide, field.TypeInt)
	}
	if value, ok := _u.mutation.FirstDuplicateOfFrame(); ok {
		_spec.SetField(slide.FieldFirstDuplicateOfFrame, field.TypeString, value)
	}
	if _u.mutation.FirstDuplicateOfFrameCleared() {
		_spec.ClearField(slide.FieldFirstDuplicateOfFrame, field.TypeString)
	}
	if value, ok := _u.mutation.LastImageURL(); ok {
		_spec.SetField(slide.FieldLastImageURL, field.TypeString, value)
	}
	if _u.mutation.LastImageURLCleared() {
		_spec.ClearField(slide.FieldLastImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.LastSourceURI(); ok {
		_spec.SetField(slide.FieldLastSourceURI, field.TypeString, value)
	}
	if _u.mutation.LastSourceURICleared() {
		_spec.ClearField(slide.FieldLastSourceURI, field.TypeString)
	}
	if value, ok := _u.mutation.LastHasText(); ok {
		_spec.SetField(slide.FieldLastHasText, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastTextConfidence(); ok {
		_spec.SetField(slide.FieldLastTextConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLastTextConfidence(); ok {
		_spec.AddField(slide.FieldLastTextConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.LastTextConfidenceCleared() {
		_spec.ClearField(slide.FieldLastTextConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LastUploadError(); ok {
		_spec.SetField(slide.FieldLastUploadError, field.TypeString, value)
	}
	if _u.mutation.LastUploadErrorCleared() {
		_spec.ClearField(slide.FieldLastUploadError, field.TypeString)
	}
	if value, ok := _u.mutation.LastDuplicateOfSlide(); ok {
		_spec.SetField(slide.FieldLastDuplicateOfSlide, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastDuplicateOfSlide(); ok {
		_spec.AddField(slide.FieldLastDuplicateOfSlide, field.TypeInt, value)
	}
	if _u.mutation.LastDuplicateOfSlideCleared() {
		_spec.ClearField(slide.FieldLastDuplicateOfSlide, field.TypeInt)
	}
	if value, ok := _u.mutation.LastDuplicateOfFrame(); ok {
		_spec.SetField(slide.FieldLastDuplicateOfFrame, field.TypeString, value)
	}
	if _u.mutation.LastDuplicateOfFrameCleared() {
		_spec.ClearField(slide.FieldLastDuplicateOfFrame, field.TypeString)
	}
	_node = &Slide{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slide.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
