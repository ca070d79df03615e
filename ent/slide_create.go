// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recapd/recapd/ent/slide"
)

// SlideCreate is the builder for creating a Slide entity.
type SlideCreate struct {
	config
	mutation *SlideMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetVideoID sets the "video_id" field.
func (_c *SlideCreate) SetVideoID(v string) *SlideCreate {
	_c.mutation.SetVideoID(v)
	return _c
}

// SetSlideNumber sets the "slide_number" field.
func (_c *SlideCreate) SetSlideNumber(v int) *SlideCreate {
	_c.mutation.SetSlideNumber(v)
	return _c
}

// SetStartSeconds sets the "start_seconds" field.
func (_c *SlideCreate) SetStartSeconds(v float64) *SlideCreate {
	_c.mutation.SetStartSeconds(v)
	return _c
}

// SetEndSeconds sets the "end_seconds" field.
func (_c *SlideCreate) SetEndSeconds(v float64) *SlideCreate {
	_c.mutation.SetEndSeconds(v)
	return _c
}

// SetFirstImageURL sets the "first_image_url" field.
func (_c *SlideCreate) SetFirstImageURL(v string) *SlideCreate {
	_c.mutation.SetFirstImageURL(v)
	return _c
}

// SetNillableFirstImageURL sets the "first_image_url" field if the given value is not nil.
func (_c *SlideCreate) SetNillableFirstImageURL(v *string) *SlideCreate {
	if v != nil {
		_c.SetFirstImageURL(*v)
	}
	return _c
}

// SetFirstSourceURI sets the "first_source_uri" field.
func (_c *SlideCreate) SetFirstSourceURI(v string) *SlideCreate {
	_c.mutation.SetFirstSourceURI(v)
	return _c
}

// SetNillableFirstSourceURI sets the "first_source_uri" field if the given value is not nil.
func (_c *SlideCreate) SetNillableFirstSourceURI(v *string) *SlideCreate {
	if v != nil {
		_c.SetFirstSourceURI(*v)
	}
	return _c
}

// SetFirstHasText sets the "first_has_text" field.
func (_c *SlideCreate) SetFirstHasText(v bool) *SlideCreate {
	_c.mutation.SetFirstHasText(v)
	return _c
}

// SetNillableFirstHasText sets the "first_has_text" field if the given value is not nil.
func (_c *SlideCreate) SetNillableFirstHasText(v *bool) *SlideCreate {
	if v != nil {
		_c.SetFirstHasText(*v)
	}
	return _c
}

// SetFirstTextConfidence sets the "first_text_confidence" field.
func (_c *SlideCreate) SetFirstTextConfidence(v float64) *SlideCreate {
	_c.mutation.SetFirstTextConfidence(v)
	return _c
}

// SetNillableFirstTextConfidence sets the "first_text_confidence" field if the given value is not nil.
func (_c *SlideCreate) SetNillableFirstTextConfidence(v *float64) *SlideCreate {
	if v != nil {
		_c.SetFirstTextConfidence(*v)
	}
	return _c
}

// SetFirstUploadError sets the "first_upload_error" field.
func (_c *SlideCreate) SetFirstUploadError(v string) *SlideCreate {
	_c.mutation.SetFirstUploadError(v)
	return _c
}

// SetNillableFirstUploadError sets the "first_upload_error" field if the given value is not nil.
func (_c *SlideCreate) SetNillableFirstUploadError(v *string) *SlideCreate {
	if v != nil {
		_c.SetFirstUploadError(*v)
	}
	return _c
}

// SetFirstDuplicateOfSlide sets the "first_duplicate_of_slide" field.
func (_c *SlideCreate) SetFirstDuplicateOfSlide(v int) *SlideCreate {
	_c.mutation.SetFirstDuplicateOfSlide(v)
	return _c
}

// SetNillableFirstDuplicateOfSlide sets the "first_duplicate_of_slide" field if the given value is not nil.
func (_c *SlideCreate) SetNillableFirstDuplicateOfSlide(v *int) *SlideCreate {
	if v != nil {
		_c.SetFirstDuplicateOfSlide(*v)
	}
	return _c
}

// SetFirstDuplicateOfFrame sets the "first_duplicate_of_frame" field.
func (_c *SlideCreate) SetFirstDuplicateOfFrame(v string) *SlideCreate {
	_c.mutation.SetFirstDuplicateOfFrame(v)
	return _c
}

// SetNillableFirstDuplicateOfFrame sets the "first_duplicate_of_frame" field if the given value is not nil.
func (_c *SlideCreate) SetNillableFirstDuplicateOfFrame(v *string) *SlideCreate {
	if v != nil {
		_c.SetFirstDuplicateOfFrame(*v)
	}
	return _c
}

// SetLastImageURL sets the "last_image_url" field.
func (_c *SlideCreate) SetLastImageURL(v string) *SlideCreate {
	_c.mutation.SetLastImageURL(v)
	return _c
}

// SetNillableLastImageURL sets the "last_image_url" field if the given value is not nil.
func (_c *SlideCreate) SetNillableLastImageURL(v *string) *SlideCreate {
	if v != nil {
		_c.SetLastImageURL(*v)
	}
	return _c
}

// SetLastSourceURI sets the "last_source_uri" field.
func (_c *SlideCreate) SetLastSourceURI(v string) *SlideCreate {
	_c.mutation.SetLastSourceURI(v)
	return _c
}

// SetNillableLastSourceURI sets the "last_source_uri" field if the given value is not nil.
func (_c *SlideCreate) SetNillableLastSourceURI(v *string) *SlideCreate {
	if v != nil {
		_c.SetLastSourceURI(*v)
	}
	return _c
}

// SetLastHasText sets the "last_has_text" field.
func (_c *SlideCreate) SetLastHasText(v bool) *SlideCreate {
	_c.mutation.SetLastHasText(v)
	return _c
}

// SetNillableLastHasText sets the "last_has_text" field if the given value is not nil.
func (_c *SlideCreate) SetNillableLastHasText(v *bool) *SlideCreate {
	if v != nil {
		_c.SetLastHasText(*v)
	}
	return _c
}

// SetLastTextConfidence sets the "last_text_confidence" field.
func (_c *SlideCreate) SetLastTextConfidence(v float64) *SlideCreate {
	_c.mutation.SetLastTextConfidence(v)
	return _c
}

// SetNillableLastTextConfidence sets the "last_text_confidence" field if the given value is not nil.
func (_c *SlideCreate) SetNillableLastTextConfidence(v *float64) *SlideCreate {
	if v != nil {
		_c.SetLastTextConfidence(*v)
	}
	return _c
}

// SetLastUploadError sets the "last_upload_error" field.
func (_c *SlideCreate) SetLastUploadError(v string) *SlideCreate {
	_c.mutation.SetLastUploadError(v)
	return _c
}

// SetNillableLastUploadError sets the "last_upload_error" field if the given value is not nil.
func (_c *SlideCreate) SetNillableLastUploadError(v *string) *SlideCreate {
	if v != nil {
		_c.SetLastUploadError(*v)
	}
	return _c
}

// SetLastDuplicateOfSlide sets the "last_duplicate_of_slide" field.
func (_c *SlideCreate) SetLastDuplicateOfSlide(v int) *SlideCreate {
	_c.mutation.SetLastDuplicateOfSlide(v)
	return _c
}

// SetNillableLastDuplicateOfSlide sets the "last_duplicate_of_slide" field if the given value is not nil.
func (_c *SlideCreate) SetNillableLastDuplicateOfSlide(v *int) *SlideCreate {
	if v != nil {
		_c.SetLastDuplicateOfSlide(*v)
	}
	return _c
}

// SetLastDuplicateOfFrame sets the "last_duplicate_of_frame" field.
func (_c *SlideCreate) SetLastDuplicateOfFrame(v string) *SlideCreate {
	_c.mutation.SetLastDuplicateOfFrame(v)
	return _c
}

// SetNillableLastDuplicateOfFrame sets the "last_duplicate_of_frame" field if the given value is not nil.
func (_c *SlideCreate) SetNillableLastDuplicateOfFrame(v *string) *SlideCreate {
	if v != nil {
		_c.SetLastDuplicateOfFrame(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SlideCreate) SetCreatedAt(v time.Time) *SlideCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SlideCreate) SetNillableCreatedAt(v *time.Time) *SlideCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the SlideMutation object of the builder.
func (_c *SlideCreate) Mutation() *SlideMutation {
	return _c.mutation
}

// Save creates the Slide in the database.
func (_c *SlideCreate) Save(ctx context.Context) (*Slide, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SlideCreate) SaveX(ctx context.Context) *Slide {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SlideCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SlideCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SlideCreate) defaults() {
	if _, ok := _c.mutation.FirstHasText(); !ok {
		v := slide.DefaultFirstHasText
		_c.mutation.SetFirstHasText(v)
	}
	if _, ok := _c.mutation.LastHasText(); !ok {
		v := slide.DefaultLastHasText
		_c.mutation.SetLastHasText(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := slide.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SlideCreate) check() error {
	if _, ok := _c.mutation.VideoID(); !ok {
		return &ValidationError{Name: "video_id", err: errors.New(`ent: missing required field "Slide.video_id"`)}
	}
	if _, ok := _c.mutation.SlideNumber(); !ok {
		return &ValidationError{Name: "slide_number", err: errors.New(`ent: missing required field "Slide.slide_number"`)}
	}
	if _, ok := _c.mutation.StartSeconds(); !ok {
		return &ValidationError{Name: "start_seconds", err: errors.New(`ent: missing required field "Slide.start_seconds"`)}
	}
	if _, ok := _c.mutation.EndSeconds(); !ok {
		return &ValidationError{Name: "end_seconds", err: errors.New(`ent: missing required field "Slide.end_seconds"`)}
	}
	if _, ok := _c.mutation.FirstHasText(); !ok {
		return &ValidationError{Name: "first_has_text", err: errors.New(`ent: missing required field "Slide.first_has_text"`)}
	}
	if _, ok := _c.mutation.LastHasText(); !ok {
		return &ValidationError{Name: "last_has_text", err: errors.New(`ent: missing required field "Slide.last_has_text"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Slide.created_at"`)}
	}
	return nil
}

func (_c *SlideCreate) sqlSave(ctx context.Context) (*Slide, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SlideCreate) createSpec() (*Slide, *sqlgraph.CreateSpec) {
	var (
		_node = &Slide{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(slide.Table, sqlgraph.NewFieldSpec(slide.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.VideoID(); ok {
		_spec.SetField(slide.FieldVideoID, field.TypeString, value)
		_node.VideoID = value
	}
	if value, ok := _c.mutation.SlideNumber(); ok {
		_spec.SetField(slide.FieldSlideNumber, field.TypeInt, value)
		_node.SlideNumber = value
	}
	if value, ok := _c.mutation.StartSeconds(); ok {
		_spec.SetField(slide.FieldStartSeconds, field.TypeFloat64, value)
		_node.StartSeconds = value
	}
	if value, ok := _c.mutation.EndSeconds(); ok {
		_spec.SetField(slide.FieldEndSeconds, field.TypeFloat64, value)
		_node.EndSeconds = value
	}
	if value, ok := _c.mutation.FirstImageURL(); ok {
		_spec.SetField(slide.FieldFirstImageURL, field.TypeString, value)
		_node.FirstImageURL = &value
	}
	if value, ok := _c.mutation.FirstSourceURI(); ok {
		_spec.SetField(slide.FieldFirstSourceURI, field.TypeString, value)
		_node.FirstSourceURI = value
	}
	if value, ok := _c.mutation.FirstHasText(); ok {
		_spec.SetField(slide.FieldFirstHasText, field.TypeBool, value)
		_node.FirstHasText = value
	}
	if value, ok := _c.mutation.FirstTextConfidence(); ok {
		_spec.SetField(slide.FieldFirstTextConfidence, field.TypeFloat64, value)
		_node.FirstTextConfidence = &value
	}
	if value, ok := _c.mutation.FirstUploadError(); ok {
		_spec.SetField(slide.FieldFirstUploadError, field.TypeString, value)
		_node.FirstUploadError = &value
	}
	if value, ok := _c.mutation.FirstDuplicateOfSlide(); ok {
		_spec.SetField(slide.FieldFirstDuplicateOfSlide, field.TypeInt, value)
		_node.FirstDuplicateOfSlide = &value
	}
	if value, ok := _c.mutation.FirstDuplicateOfFrame(); ok {
		_spec.SetField(slide.FieldFirstDuplicateOfFrame, field.TypeString, value)
		_node.FirstDuplicateOfFrame = &value
	}
	if value, ok := _c.mutation.LastImageURL(); ok {
		_spec.SetField(slide.FieldLastImageURL, field.TypeString, value)
		_node.LastImageURL = &value
	}
	if value, ok := _c.mutation.LastSourceURI(); ok {
		_spec.SetField(slide.FieldLastSourceURI, field.TypeString, value)
		_node.LastSourceURI = value
	}
	if value, ok := _c.mutation.LastHasText(); ok {
		_spec.SetField(slide.FieldLastHasText, field.TypeBool, value)
		_node.LastHasText = value
	}
	if value, ok := _c.mutation.LastTextConfidence(); ok {
		_spec.SetField(slide.FieldLastTextConfidence, field.TypeFloat64, value)
		_node.LastTextConfidence = &value
	}
	if value, ok := _c.mutation.LastUploadError(); ok {
		_spec.SetField(slide.FieldLastUploadError, field.TypeString, value)
		_node.LastUploadError = &value
	}
	if value, ok := _c.mutation.LastDuplicateOfSlide(); ok {
		_spec.SetField(slide.FieldLastDuplicateOfSlide, field.TypeInt, value)
		_node.LastDuplicateOfSlide = &value
	}
	if value, ok := _c.mutation.LastDuplicateOfFrame(); ok {
		_spec.SetField(slide.FieldLastDuplicateOfFrame, field.TypeString, value)
		_node.LastDuplicateOfFrame = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(slide.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Slide.Create().
//		SetVideoID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SlideUpsert) {
//			SetVideoID(v+v).
//		}).
//		Exec(ctx)
func (_c *SlideCreate) OnConflict(opts ...sql.ConflictOption) *SlideUpsertOne {
	_c.conflict = opts
	return &SlideUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Slide.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SlideCreate) OnConflictColumns(columns ...string) *SlideUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SlideUpsertOne{
		create: _c,
	}
}

type (
	// SlideUpsertOne is the builder for "upsert"-ing
	//  one Slide node.
	SlideUpsertOne struct {
		create *SlideCreate
	}

	// SlideUpsert is the "OnConflict" setter.
	SlideUpsert struct {
		*sql.UpdateSet
	}
)

// SetStartSeconds sets the "start_seconds" field.
func (u *SlideUpsert) SetStartSeconds(v float64) *SlideUpsert {
	u.Set(slide.FieldStartSeconds, v)
	return u
}

// UpdateStartSeconds sets the "start_seconds" field to the value that was provided on create.
func (u *SlideUpsert) UpdateStartSeconds() *SlideUpsert {
	u.SetExcluded(slide.FieldStartSeconds)
	return u
}

// AddStartSeconds adds v to the "start_seconds" field.
func (u *SlideUpsert) AddStartSeconds(v float64) *SlideUpsert {
	u.Add(slide.FieldStartSeconds, v)
	return u
}

// SetEndSeconds sets the "end_seconds" field.
func (u *SlideUpsert) SetEndSeconds(v float64) *SlideUpsert {
	u.Set(slide.FieldEndSeconds, v)
	return u
}

// UpdateEndSeconds sets the "end_seconds" field to the value that was provided on create.
func (u *SlideUpsert) UpdateEndSeconds() *SlideUpsert {
	u.SetExcluded(slide.FieldEndSeconds)
	return u
}

// AddEndSeconds adds v to the "end_seconds" field.
func (u *SlideUpsert) AddEndSeconds(v float64) *SlideUpsert {
	u.Add(slide.FieldEndSeconds, v)
	return u
}

// SetFirstImageURL sets the "first_image_url" field.
func (u *SlideUpsert) SetFirstImageURL(v string) *SlideUpsert {
	u.Set(slide.FieldFirstImageURL, v)
	return u
}

// UpdateFirstImageURL sets the "first_image_url" field to the value that was provided on create.
func (u *SlideUpsert) UpdateFirstImageURL() *SlideUpsert {
	u.SetExcluded(slide.FieldFirstImageURL)
	return u
}

// ClearFirstImageURL clears the value of the "first_image_url" field.
func (u *SlideUpsert) ClearFirstImageURL() *SlideUpsert {
	u.SetNull(slide.FieldFirstImageURL)
	return u
}

// SetFirstSourceURI sets the "first_source_uri" field.
func (u *SlideUpsert) SetFirstSourceURI(v string) *SlideUpsert {
	u.Set(slide.FieldFirstSourceURI, v)
	return u
}

// UpdateFirstSourceURI sets the "first_source_uri" field to the value that was provided on create.
func (u *SlideUpsert) UpdateFirstSourceURI() *SlideUpsert {
	u.SetExcluded(slide.FieldFirstSourceURI)
	return u
}

// ClearFirstSourceURI clears the value of the "first_source_uri" field.
func (u *SlideUpsert) ClearFirstSourceURI() *SlideUpsert {
	u.SetNull(slide.FieldFirstSourceURI)
	return u
}

// SetFirstHasText sets the "first_has_text" field.
func (u *SlideUpsert) SetFirstHasText(v bool) *SlideUpsert {
	u.Set(slide.FieldFirstHasText, v)
	return u
}

// UpdateFirstHasText sets the "first_has_text" field to the value that was provided on create.
func (u *SlideUpsert) UpdateFirstHasText() *SlideUpsert {
	u.SetExcluded(slide.FieldFirstHasText)
	return u
}

// SetFirstTextConfidence sets the "first_text_confidence" field.
func (u *SlideUpsert) SetFirstTextConfidence(v float64) *SlideUpsert {
	u.Set(slide.FieldFirstTextConfidence, v)
	return u
}

// UpdateFirstTextConfidence sets the "first_text_confidence" field to the value that was provided on create.
func (u *SlideUpsert) UpdateFirstTextConfidence() *SlideUpsert {
	u.SetExcluded(slide.FieldFirstTextConfidence)
	return u
}

// AddFirstTextConfidence adds v to the "first_text_confidence" field.
func (u *SlideUpsert) AddFirstTextConfidence(v float64) *SlideUpsert {
	u.Add(slide.FieldFirstTextConfidence, v)
	return u
}

// ClearFirstTextConfidence clears the value of the "first_text_confidence" field.
func (u *SlideUpsert) ClearFirstTextConfidence() *SlideUpsert {
	u.SetNull(slide.FieldFirstTextConfidence)
	return u
}

// SetFirstUploadError sets the "first_upload_error" field.
func (u *SlideUpsert) SetFirstUploadError(v string) *SlideUpsert {
	u.Set(slide.FieldFirstUploadError, v)
	return u
}

// UpdateFirstUploadError sets the "first_upload_error" field to the value that was provided on create.
func (u *SlideUpsert) UpdateFirstUploadError() *SlideUpsert {
	u.SetExcluded(slide.FieldFirstUploadError)
	return u
}

// ClearFirstUploadError clears the value of the "first_upload_error" field.
func (u *SlideUpsert) ClearFirstUploadError() *SlideUpsert {
	u.SetNull(slide.FieldFirstUploadError)
	return u
}

// SetFirstDuplicateOfSlide sets the "first_duplicate_of_slide" field.
func (u *SlideUpsert) SetFirstDuplicateOfSlide(v int) *SlideUpsert {
	u.Set(slide.FieldFirstDuplicateOfSlide, v)
	return u
}

// UpdateFirstDuplicateOfSlide sets the "first_duplicate_of_slide" field to the value that was provided on create.
func (u *SlideUpsert) UpdateFirstDuplicateOfSlide() *SlideUpsert {
	u.SetExcluded(slide.FieldFirstDuplicateOfSlide)
	return u
}

// AddFirstDuplicateOfSlide adds v to the "first_duplicate_of_slide" field.
func (u *SlideUpsert) AddFirstDuplicateOfSlide(v int) *SlideUpsert {
	u.Add(slide.FieldFirstDuplicateOfSlide, v)
	return u
}

// ClearFirstDuplicateOfSlide clears the value of the "first_duplicate_of_slide" field.
func (u *SlideUpsert) ClearFirstDuplicateOfSlide() *SlideUpsert {
	u.SetNull(slide.FieldFirstDuplicateOfSlide)
	return u
}

// SetFirstDuplicateOfFrame sets the "first_duplicate_of_frame" field.
func (u *SlideUpsert) SetFirstDuplicateOfFrame(v string) *SlideUpsert {
	u.Set(slide.FieldFirstDuplicateOfFrame, v)
	return u
}

// UpdateFirstDuplicateOfFrame sets the "first_duplicate_of_frame" field to the value that was provided on create.
func (u *SlideUpsert) UpdateFirstDuplicateOfFrame() *SlideUpsert {
	u.SetExcluded(slide.FieldFirstDuplicateOfFrame)
	return u
}

// ClearFirstDuplicateOfFrame clears the value of the "first_duplicate_of_frame" field.
func (u *SlideUpsert) ClearFirstDuplicateOfFrame() *SlideUpsert {
	u.SetNull(slide.FieldFirstDuplicateOfFrame)
	return u
}

// SetLastImageURL sets the "last_image_url" field.
func (u *SlideUpsert) SetLastImageURL(v string) *SlideUpsert {
	u.Set(slide.FieldLastImageURL, v)
	return u
}

// UpdateLastImageURL sets the "last_image_url" field to the value that was provided on create.
func (u *SlideUpsert) UpdateLastImageURL() *SlideUpsert {
	u.SetExcluded(slide.FieldLastImageURL)
	return u
}

// ClearLastImageURL clears the value of the "last_image_url" field.
func (u *SlideUpsert) ClearLastImageURL() *SlideUpsert {
	u.SetNull(slide.FieldLastImageURL)
	return u
}

// SetLastSourceURI sets the "last_source_uri" field.
func (u *SlideUpsert) SetLastSourceURI(v string) *SlideUpsert {
	u.Set(slide.FieldLastSourceURI, v)
	return u
}

// UpdateLastSourceURI sets the "last_source_uri" field to the value that was provided on create.
func (u *SlideUpsert) UpdateLastSourceURI() *SlideUpsert {
	u.SetExcluded(slide.FieldLastSourceURI)
	return u
}

// ClearLastSourceURI clears the value of the "last_source_uri" field.
func (u *SlideUpsert) ClearLastSourceURI() *SlideUpsert {
	u.SetNull(slide.FieldLastSourceURI)
	return u
}

// SetLastHasText sets the "last_has_text" field.
func (u *SlideUpsert) SetLastHasText(v bool) *SlideUpsert {
	u.Set(slide.FieldLastHasText, v)
	return u
}

// UpdateLastHasText sets the "last_has_text" field to the value that was provided on create.
func (u *SlideUpsert) UpdateLastHasText() *SlideUpsert {
	u.SetExcluded(slide.FieldLastHasText)
	return u
}

// SetLastTextConfidence sets the "last_text_confidence" field.
func (u *SlideUpsert) SetLastTextConfidence(v float64) *SlideUpsert {
	u.Set(slide.FieldLastTextConfidence, v)
	return u
}

// UpdateLastTextConfidence sets the "last_text_confidence" field to the value that was provided on create.
func (u *SlideUpsert) UpdateLastTextConfidence() *SlideUpsert {
	u.SetExcluded(slide.FieldLastTextConfidence)
	return u
}

// AddLastTextConfidence adds v to the "last_text_confidence" field.
func (u *SlideUpsert) AddLastTextConfidence(v float64) *SlideUpsert {
	u.Add(slide.FieldLastTextConfidence, v)
	return u
}

// ClearLastTextConfidence clears the value of the "last_text_confidence" field.
func (u *SlideUpsert) ClearLastTextConfidence() *SlideUpsert {
	u.SetNull(slide.FieldLastTextConfidence)
	return u
}

// SetLastUploadError sets the "last_upload_error" field.
func (u *SlideUpsert) SetLastUploadError(v string) *SlideUpsert {
	u.Set(slide.FieldLastUploadError, v)
	return u
}

// UpdateLastUploadError sets the "last_upload_error" field to the value that was provided on create.
func (u *SlideUpsert) UpdateLastUploadError() *SlideUpsert {
	u.SetExcluded(slide.FieldLastUploadError)
	return u
}

// ClearLastUploadError clears the value of the "last_upload_error" field.
func (u *SlideUpsert) ClearLastUploadError() *SlideUpsert {
	u.SetNull(slide.FieldLastUploadError)
	return u
}

// SetLastDuplicateOfSlide sets the "last_duplicate_of_slide" field.
func (u *SlideUpsert) SetLastDuplicateOfSlide(v int) *SlideUpsert {
	u.Set(slide.FieldLastDuplicateOfSlide, v)
	return u
}

// UpdateLastDuplicateOfSlide sets the "last_duplicate_of_slide" field to the value that was provided on create.
func (u *SlideUpsert) UpdateLastDuplicateOfSlide() *SlideUpsert {
	u.SetExcluded(slide.FieldLastDuplicateOfSlide)
	return u
}

// AddLastDuplicateOfSlide adds v to the "last_duplicate_of_slide" field.
func (u *SlideUpsert) AddLastDuplicateOfSlide(v int) *SlideUpsert {
	u.Add(slide.FieldLastDuplicateOfSlide, v)
	return u
}

// ClearLastDuplicateOfSlide clears the value of the "last_duplicate_of_slide" field.
func (u *SlideUpsert) ClearLastDuplicateOfSlide() *SlideUpsert {
	u.SetNull(slide.FieldLastDuplicateOfSlide)
	return u
}

// SetLastDuplicateOfFrame sets the "last_duplicate_of_frame" field.
func (u *SlideUpsert) SetLastDuplicateOfFrame(v string) *SlideUpsert {
	u.Set(slide.FieldLastDuplicateOfFrame, v)
	return u
}

// UpdateLastDuplicateOfFrame sets the "last_duplicate_of_frame" field to the value that was provided on create.
func (u *SlideUpsert) UpdateLastDuplicateOfFrame() *SlideUpsert {
	u.SetExcluded(slide.FieldLastDuplicateOfFrame)
	return u
}

// ClearLastDuplicateOfFrame clears the value of the "last_duplicate_of_frame" field.
func (u *SlideUpsert) ClearLastDuplicateOfFrame() *SlideUpsert {
	u.SetNull(slide.FieldLastDuplicateOfFrame)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Slide.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SlideUpsertOne) UpdateNewValues() *SlideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.VideoID(); exists {
			s.SetIgnore(slide.FieldVideoID)
		}
		if _, exists := u.create.mutation.SlideNumber(); exists {
			s.SetIgnore(slide.FieldSlideNumber)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(slide.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Slide.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SlideUpsertOne) Ignore() *SlideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SlideUpsertOne) DoNothing() *SlideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SlideCreate.OnConflict
// documentation for more info.
func (u *SlideUpsertOne) Update(set func(*SlideUpsert)) *SlideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SlideUpsert{UpdateSet: update})
	}))
	return u
}

// SetStartSeconds sets the "start_seconds" field.
func (u *SlideUpsertOne) SetStartSeconds(v float64) *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.SetStartSeconds(v)
	})
}

// AddStartSeconds adds v to the "start_seconds" field.
func (u *SlideUpsertOne) AddStartSeconds(v float64) *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.AddStartSeconds(v)
	})
}

// UpdateStartSeconds sets the "start_seconds" field to the value that was provided on create.
func (u *SlideUpsertOne) UpdateStartSeconds() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateStartSeconds()
	})
}

// SetEndSeconds sets the "end_seconds" field.
func (u *SlideUpsertOne) SetEndSeconds(v float64) *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.SetEndSeconds(v)
	})
}

// AddEndSeconds adds v to the "end_seconds" field.
func (u *SlideUpsertOne) AddEndSeconds(v float64) *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.AddEndSeconds(v)
	})
}

// UpdateEndSeconds sets the "end_seconds" field to the value that was provided on create.
func (u *SlideUpsertOne) UpdateEndSeconds() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateEndSeconds()
	})
}

// SetFirstImageURL sets the "first_image_url" field.
func (u *SlideUpsertOne) SetFirstImageURL(v string) *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.SetFirstImageURL(v)
	})
}

// UpdateFirstImageURL sets the "first_image_url" field to the value that was provided on create.
func (u *SlideUpsertOne) UpdateFirstImageURL() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateFirstImageURL()
	})
}

// ClearFirstImageURL clears the value of the "first_image_url" field.
func (u *SlideUpsertOne) ClearFirstImageURL() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.ClearFirstImageURL()
	})
}

// SetFirstSourceURI sets the "first_source_uri" field.
func (u *SlideUpsertOne) SetFirstSourceURI(v string) *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.SetFirstSourceURI(v)
	})
}

// UpdateFirstSourceURI sets the "first_source_uri" field to the value that was provided on create.
func (u *SlideUpsertOne) UpdateFirstSourceURI() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateFirstSourceURI()
	})
}

// ClearFirstSourceURI clears the value of the "first_source_uri" field.
func (u *SlideUpsertOne) ClearFirstSourceURI() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.ClearFirstSourceURI()
	})
}

// SetFirstHasText sets the "first_has_text" field.
func (u *SlideUpsertOne) SetFirstHasText(v bool) *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.SetFirstHasText(v)
	})
}

// UpdateFirstHasText sets the "first_has_text" field to the value that was provided on create.
func (u *SlideUpsertOne) UpdateFirstHasText() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateFirstHasText()
	})
}

// SetFirstTextConfidence sets the "first_text_confidence" field.
func (u *SlideUpsertOne) SetFirstTextConfidence(v float64) *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.SetFirstTextConfidence(v)
	})
}

// AddFirstTextConfidence adds v to the "first_text_confidence" field.
func (u *SlideUpsertOne) AddFirstTextConfidence(v float64) *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.AddFirstTextConfidence(v)
	})
}

// UpdateFirstTextConfidence sets the "first_text_confidence" field to the value that was provided on create.
func (u *SlideUpsertOne) UpdateFirstTextConfidence() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateFirstTextConfidence()
	})
}

// ClearFirstTextConfidence clears the value of the "first_text_confidence" field.
func (u *SlideUpsertOne) ClearFirstTextConfidence() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.ClearFirstTextConfidence()
	})
}

// SetFirstUploadError sets the "first_upload_error" field.
func (u *SlideUpsertOne) SetFirstUploadError(v string) *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.SetFirstUploadError(v)
	})
}

// UpdateFirstUploadError sets the "first_upload_error" field to the value that was provided on create.
func (u *SlideUpsertOne) UpdateFirstUploadError() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateFirstUploadError()
	})
}

// ClearFirstUploadError clears the value of the "first_upload_error" field.
func (u *SlideUpsertOne) ClearFirstUploadError() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.ClearFirstUploadError()
	})
}

// SetFirstDuplicateOfSlide sets the "first_duplicate_of_slide" field.
func (u *SlideUpsertOne) SetFirstDuplicateOfSlide(v int) *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.SetFirstDuplicateOfSlide(v)
	})
}

// AddFirstDuplicateOfSlide adds v to the "first_duplicate_of_slide" field.
func (u *SlideUpsertOne) AddFirstDuplicateOfSlide(v int) *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.AddFirstDuplicateOfSlide(v)
	})
}

// UpdateFirstDuplicateOfSlide sets the "first_duplicate_of_slide" field to the value that was provided on create.
func (u *SlideUpsertOne) UpdateFirstDuplicateOfSlide() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateFirstDuplicateOfSlide()
	})
}

// ClearFirstDuplicateOfSlide clears the value of the "first_duplicate_of_slide" field.
func (u *SlideUpsertOne) ClearFirstDuplicateOfSlide() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.ClearFirstDuplicateOfSlide()
	})
}

// SetFirstDuplicateOfFrame sets the "first_duplicate_of_frame" field.
func (u *SlideUpsertOne) SetFirstDuplicateOfFrame(v string) *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.SetFirstDuplicateOfFrame(v)
	})
}

// UpdateFirstDuplicateOfFrame sets the "first_duplicate_of_frame" field to the value that was provided on create.
func (u *SlideUpsertOne) UpdateFirstDuplicateOfFrame() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateFirstDuplicateOfFrame()
	})
}

// ClearFirstDuplicateOfFrame clears the value of the "first_duplicate_of_frame" field.
func (u *SlideUpsertOne) ClearFirstDuplicateOfFrame() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.ClearFirstDuplicateOfFrame()
	})
}

// SetLastImageURL sets the "last_image_url" field.
func (u *SlideUpsertOne) SetLastImageURL(v string) *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.SetLastImageURL(v)
	})
}

// UpdateLastImageURL sets the "last_image_url" field to the value that was provided on create.
func (u *SlideUpsertOne) UpdateLastImageURL() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateLastImageURL()
	})
}

// ClearLastImageURL clears the value of the "last_image_url" field.
func (u *SlideUpsertOne) ClearLastImageURL() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.ClearLastImageURL()
	})
}

// SetLastSourceURI sets the "last_source_uri" field.
func (u *SlideUpsertOne) SetLastSourceURI(v string) *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.SetLastSourceURI(v)
	})
}

// UpdateLastSourceURI sets the "last_source_uri" field to the value that was provided on create.
func (u *SlideUpsertOne) UpdateLastSourceURI() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateLastSourceURI()
	})
}

// ClearLastSourceURI clears the value of the "last_source_uri" field.
func (u *SlideUpsertOne) ClearLastSourceURI() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.ClearLastSourceURI()
	})
}

// SetLastHasText sets the "last_has_text" field.
func (u *SlideUpsertOne) SetLastHasText(v bool) *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.SetLastHasText(v)
	})
}

// UpdateLastHasText sets the "last_has_text" field to the value that was provided on create.
func (u *SlideUpsertOne) UpdateLastHasText() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateLastHasText()
	})
}

// SetLastTextConfidence sets the "last_text_confidence" field.
func (u *SlideUpsertOne) SetLastTextConfidence(v float64) *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.SetLastTextConfidence(v)
	})
}

// AddLastTextConfidence adds v to the "last_text_confidence" field.
func (u *SlideUpsertOne) AddLastTextConfidence(v float64) *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.AddLastTextConfidence(v)
	})
}

// UpdateLastTextConfidence sets the "last_text_confidence" field to the value that was provided on create.
func (u *SlideUpsertOne) UpdateLastTextConfidence() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateLastTextConfidence()
	})
}

// ClearLastTextConfidence clears the value of the "last_text_confidence" field.
func (u *SlideUpsertOne) ClearLastTextConfidence() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.ClearLastTextConfidence()
	})
}

// SetLastUploadError sets the "last_upload_error" field.
func (u *SlideUpsertOne) SetLastUploadError(v string) *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.SetLastUploadError(v)
	})
}

// UpdateLastUploadError sets the "last_upload_error" field to the value that was provided on create.
func (u *SlideUpsertOne) UpdateLastUploadError() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateLastUploadError()
	})
}

// ClearLastUploadError clears the value of the "last_upload_error" field.
func (u *SlideUpsertOne) ClearLastUploadError() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.ClearLastUploadError()
	})
}

// SetLastDuplicateOfSlide sets the "last_duplicate_of_slide" field.
func (u *SlideUpsertOne) SetLastDuplicateOfSlide(v int) *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.SetLastDuplicateOfSlide(v)
	})
}

// AddLastDuplicateOfSlide adds v to the "last_duplicate_of_slide" field.
func (u *SlideUpsertOne) AddLastDuplicateOfSlide(v int) *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.AddLastDuplicateOfSlide(v)
	})
}

// UpdateLastDuplicateOfSlide sets the "last_duplicate_of_slide" field to the value that was provided on create.
func (u *SlideUpsertOne) UpdateLastDuplicateOfSlide() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateLastDuplicateOfSlide()
	})
}

// ClearLastDuplicateOfSlide clears the value of the "last_duplicate_of_slide" field.
func (u *SlideUpsertOne) ClearLastDuplicateOfSlide() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.ClearLastDuplicateOfSlide()
	})
}

// SetLastDuplicateOfFrame sets the "last_duplicate_of_frame" field.
func (u *SlideUpsertOne) SetLastDuplicateOfFrame(v string) *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.SetLastDuplicateOfFrame(v)
	})
}

// UpdateLastDuplicateOfFrame sets the "last_duplicate_of_frame" field to the value that was provided on create.
func (u *SlideUpsertOne) UpdateLastDuplicateOfFrame() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateLastDuplicateOfFrame()
	})
}

// ClearLastDuplicateOfFrame clears the value of the "last_duplicate_of_frame" field.
func (u *SlideUpsertOne) ClearLastDuplicateOfFrame() *SlideUpsertOne {
	return u.Update(func(s *SlideUpsert) {
		s.ClearLastDuplicateOfFrame()
	})
}

// Exec executes the query.
func (u *SlideUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SlideCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SlideUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SlideUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SlideUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SlideCreateBulk is the builder for creating many Slide entities in bulk.
type SlideCreateBulk struct {
	config
	err      error
	builders []*SlideCreate
	conflict []sql.ConflictOption
}

// Save creates the Slide entities in the database.
func (_c *SlideCreateBulk) Save(ctx context.Context) ([]*Slide, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Slide, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SlideMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SlideCreateBulk) SaveX(ctx context.Context) []*Slide {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SlideCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SlideCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Slide.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SlideUpsert) {
//			SetVideoID(v+v).
//		}).
//		Exec(ctx)
func (_c *SlideCreateBulk) OnConflict(opts ...sql.ConflictOption) *SlideUpsertBulk {
	_c.conflict = opts
	return &SlideUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Slide.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SlideCreateBulk) OnConflictColumns(columns ...string) *SlideUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SlideUpsertBulk{
		create: _c,
	}
}

// SlideUpsertBulk is the builder for "upsert"-ing
// a bulk of Slide nodes.
type SlideUpsertBulk struct {
	create *SlideCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Slide.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SlideUpsertBulk) UpdateNewValues() *SlideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.VideoID(); exists {
				s.SetIgnore(slide.FieldVideoID)
			}
			if _, exists := b.mutation.SlideNumber(); exists {
				s.SetIgnore(slide.FieldSlideNumber)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(slide.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Slide.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SlideUpsertBulk) Ignore() *SlideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SlideUpsertBulk) DoNothing() *SlideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SlideCreateBulk.OnConflict
// documentation for more info.
func (u *SlideUpsertBulk) Update(set func(*SlideUpsert)) *SlideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SlideUpsert{UpdateSet: update})
	}))
	return u
}

// SetStartSeconds sets the "start_seconds" field.
func (u *SlideUpsertBulk) SetStartSeconds(v float64) *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.SetStartSeconds(v)
	})
}

// AddStartSeconds adds v to the "start_seconds" field.
func (u *SlideUpsertBulk) AddStartSeconds(v float64) *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.AddStartSeconds(v)
	})
}

// UpdateStartSeconds sets the "start_seconds" field to the value that was provided on create.
func (u *SlideUpsertBulk) UpdateStartSeconds() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateStartSeconds()
	})
}

// SetEndSeconds sets the "end_seconds" field.
func (u *SlideUpsertBulk) SetEndSeconds(v float64) *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.SetEndSeconds(v)
	})
}

// AddEndSeconds adds v to the "end_seconds" field.
func (u *SlideUpsertBulk) AddEndSeconds(v float64) *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.AddEndSeconds(v)
	})
}

// UpdateEndSeconds sets the "end_seconds" field to the value that was provided on create.
func (u *SlideUpsertBulk) UpdateEndSeconds() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateEndSeconds()
	})
}

// SetFirstImageURL sets the "first_image_url" field.
func (u *SlideUpsertBulk) SetFirstImageURL(v string) *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.SetFirstImageURL(v)
	})
}

// UpdateFirstImageURL sets the "first_image_url" field to the value that was provided on create.
func (u *SlideUpsertBulk) UpdateFirstImageURL() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateFirstImageURL()
	})
}

// ClearFirstImageURL clears the value of the "first_image_url" field.
func (u *SlideUpsertBulk) ClearFirstImageURL() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.ClearFirstImageURL()
	})
}

// SetFirstSourceURI sets the "first_source_uri" field.
func (u *SlideUpsertBulk) SetFirstSourceURI(v string) *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.SetFirstSourceURI(v)
	})
}

// UpdateFirstSourceURI sets the "first_source_uri" field to the value that was provided on create.
func (u *SlideUpsertBulk) UpdateFirstSourceURI() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateFirstSourceURI()
	})
}

// ClearFirstSourceURI clears the value of the "first_source_uri" field.
func (u *SlideUpsertBulk) ClearFirstSourceURI() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.ClearFirstSourceURI()
	})
}

// SetFirstHasText sets the "first_has_text" field.
func (u *SlideUpsertBulk) SetFirstHasText(v bool) *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.SetFirstHasText(v)
	})
}

// UpdateFirstHasText sets the "first_has_text" field to the value that was provided on create.
func (u *SlideUpsertBulk) UpdateFirstHasText() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateFirstHasText()
	})
}

// SetFirstTextConfidence sets the "first_text_confidence" field.
func (u *SlideUpsertBulk) SetFirstTextConfidence(v float64) *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.SetFirstTextConfidence(v)
	})
}

// AddFirstTextConfidence adds v to the "first_text_confidence" field.
func (u *SlideUpsertBulk) AddFirstTextConfidence(v float64) *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.AddFirstTextConfidence(v)
	})
}

// UpdateFirstTextConfidence sets the "first_text_confidence" field to the value that was provided on create.
func (u *SlideUpsertBulk) UpdateFirstTextConfidence() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateFirstTextConfidence()
	})
}

// ClearFirstTextConfidence clears the value of the "first_text_confidence" field.
func (u *SlideUpsertBulk) ClearFirstTextConfidence() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.ClearFirstTextConfidence()
	})
}

// SetFirstUploadError sets the "first_upload_error" field.
func (u *SlideUpsertBulk) SetFirstUploadError(v string) *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.SetFirstUploadError(v)
	})
}

// UpdateFirstUploadError sets the "first_upload_error" field to the value that was provided on create.
func (u *SlideUpsertBulk) UpdateFirstUploadError() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateFirstUploadError()
	})
}

// ClearFirstUploadError clears the value of the "first_upload_error" field.
func (u *SlideUpsertBulk) ClearFirstUploadError() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.ClearFirstUploadError()
	})
}

// SetFirstDuplicateOfSlide sets the "first_duplicate_of_slide" field.
func (u *SlideUpsertBulk) SetFirstDuplicateOfSlide(v int) *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.SetFirstDuplicateOfSlide(v)
	})
}

// AddFirstDuplicateOfSlide adds v to the "first_duplicate_of_slide" field.
func (u *SlideUpsertBulk) AddFirstDuplicateOfSlide(v int) *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.AddFirstDuplicateOfSlide(v)
	})
}

// UpdateFirstDuplicateOfSlide sets the "first_duplicate_of_slide" field to the value that was provided on create.
func (u *SlideUpsertBulk) UpdateFirstDuplicateOfSlide() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateFirstDuplicateOfSlide()
	})
}

// ClearFirstDuplicateOfSlide clears the value of the "first_duplicate_of_slide" field.
func (u *SlideUpsertBulk) ClearFirstDuplicateOfSlide() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.ClearFirstDuplicateOfSlide()
	})
}

// SetFirstDuplicateOfFrame sets the "first_duplicate_of_frame" field.
func (u *SlideUpsertBulk) SetFirstDuplicateOfFrame(v string) *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.SetFirstDuplicateOfFrame(v)
	})
}

// UpdateFirstDuplicateOfFrame sets the "first_duplicate_of_frame" field to the value that was provided on create.
func (u *SlideUpsertBulk) UpdateFirstDuplicateOfFrame() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateFirstDuplicateOfFrame()
	})
}

// ClearFirstDuplicateOfFrame clears the value of the "first_duplicate_of_frame" field.
func (u *SlideUpsertBulk) ClearFirstDuplicateOfFrame() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.ClearFirstDuplicateOfFrame()
	})
}

// SetLastImageURL sets the "last_image_url" field.
func (u *SlideUpsertBulk) SetLastImageURL(v string) *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.SetLastImageURL(v)
	})
}

// UpdateLastImageURL sets the "last_image_url" field to the value that was provided on create.
func (u *SlideUpsertBulk) UpdateLastImageURL() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateLastImageURL()
	})
}

// ClearLastImageURL clears the value of the "last_image_url" field.
func (u *SlideUpsertBulk) ClearLastImageURL() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.ClearLastImageURL()
	})
}

// SetLastSourceURI sets the "last_source_uri" field.
func (u *SlideUpsertBulk) SetLastSourceURI(v string) *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.SetLastSourceURI(v)
	})
}

// UpdateLastSourceURI sets the "last_source_uri" field to the value that was provided on create.
func (u *SlideUpsertBulk) UpdateLastSourceURI() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateLastSourceURI()
	})
}

// ClearLastSourceURI clears the value of the "last_source_uri" field.
func (u *SlideUpsertBulk) ClearLastSourceURI() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.ClearLastSourceURI()
	})
}

// SetLastHasText sets the "last_has_text" field.
func (u *SlideUpsertBulk) SetLastHasText(v bool) *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.SetLastHasText(v)
	})
}

// UpdateLastHasText sets the "last_has_text" field to the value that was provided on create.
func (u *SlideUpsertBulk) UpdateLastHasText() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateLastHasText()
	})
}

// SetLastTextConfidence sets the "last_text_confidence" field.
func (u *SlideUpsertBulk) SetLastTextConfidence(v float64) *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.SetLastTextConfidence(v)
	})
}

// AddLastTextConfidence adds v to the "last_text_confidence" field.
func (u *SlideUpsertBulk) AddLastTextConfidence(v float64) *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.AddLastTextConfidence(v)
	})
}

// UpdateLastTextConfidence sets the "last_text_confidence" field to the value that was provided on create.
func (u *SlideUpsertBulk) UpdateLastTextConfidence() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateLastTextConfidence()
	})
}

// ClearLastTextConfidence clears the value of the "last_text_confidence" field.
func (u *SlideUpsertBulk) ClearLastTextConfidence() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.ClearLastTextConfidence()
	})
}

// SetLastUploadError sets the "last_upload_error" field.
func (u *SlideUpsertBulk) SetLastUploadError(v string) *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.SetLastUploadError(v)
	})
}

// UpdateLastUploadError sets the "last_upload_error" field to the value that was provided on create.
func (u *SlideUpsertBulk) UpdateLastUploadError() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateLastUploadError()
	})
}

// ClearLastUploadError clears the value of the "last_upload_error" field.
func (u *SlideUpsertBulk) ClearLastUploadError() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.ClearLastUploadError()
	})
}

// SetLastDuplicateOfSlide sets the "last_duplicate_of_slide" field.
func (u *SlideUpsertBulk) SetLastDuplicateOfSlide(v int) *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.SetLastDuplicateOfSlide(v)
	})
}

// AddLastDuplicateOfSlide adds v to the "last_duplicate_of_slide" field.
func (u *SlideUpsertBulk) AddLastDuplicateOfSlide(v int) *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.AddLastDuplicateOfSlide(v)
	})
}

// UpdateLastDuplicateOfSlide sets the "last_duplicate_of_slide" field to the value that was provided on create.
func (u *SlideUpsertBulk) UpdateLastDuplicateOfSlide() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateLastDuplicateOfSlide()
	})
}

// ClearLastDuplicateOfSlide clears the value of the "last_duplicate_of_slide" field.
func (u *SlideUpsertBulk) ClearLastDuplicateOfSlide() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.ClearLastDuplicateOfSlide()
	})
}

// SetLastDuplicateOfFrame sets the "last_duplicate_of_frame" field.
func (u *SlideUpsertBulk) SetLastDuplicateOfFrame(v string) *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.SetLastDuplicateOfFrame(v)
	})
}

// UpdateLastDuplicateOfFrame sets the "last_duplicate_of_frame" field to the value that was provided on create.
func (u *SlideUpsertBulk) UpdateLastDuplicateOfFrame() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.UpdateLastDuplicateOfFrame()
	})
}

// ClearLastDuplicateOfFrame clears the value of the "last_duplicate_of_frame" field.
func (u *SlideUpsertBulk) ClearLastDuplicateOfFrame() *SlideUpsertBulk {
	return u.Update(func(s *SlideUpsert) {
		s.ClearLastDuplicateOfFrame()
	})
}

// Exec executes the query.
func (u *SlideUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SlideCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SlideCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SlideUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
