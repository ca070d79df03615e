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
	"github.com/recapd/recapd/ent/predicate"
	"github.com/recapd/recapd/ent/slideextraction"
)

// SlideExtractionUpdate is the builder for updating SlideExtraction entities.
type SlideExtractionUpdate struct {
	config
	hooks    []Hook
	mutation *SlideExtractionMutation
}

// Where appends a list predicates to the SlideExtractionUpdate builder.
func (_u *SlideExtractionUpdate) Where(ps ...predicate.SlideExtraction) *SlideExtractionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SlideExtractionUpdate) SetStatus(v slideextraction.Status) *SlideExtractionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SlideExtractionUpdate) SetNillableStatus(v *slideextraction.Status) *SlideExtractionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *SlideExtractionUpdate) SetRunID(v string) *SlideExtractionUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *SlideExtractionUpdate) SetNillableRunID(v *string) *SlideExtractionUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *SlideExtractionUpdate) ClearRunID() *SlideExtractionUpdate {
	_u.mutation.ClearRunID()
	return _u
}

// SetTotalSlides sets the "total_slides" field.
func (_u *SlideExtractionUpdate) SetTotalSlides(v int) *SlideExtractionUpdate {
	_u.mutation.ResetTotalSlides()
	_u.mutation.SetTotalSlides(v)
	return _u
}

// SetNillableTotalSlides sets the "total_slides" field if the given value is not nil.
func (_u *SlideExtractionUpdate) SetNillableTotalSlides(v *int) *SlideExtractionUpdate {
	if v != nil {
		_u.SetTotalSlides(*v)
	}
	return _u
}

// AddTotalSlides adds value to the "total_slides" field.
func (_u *SlideExtractionUpdate) AddTotalSlides(v int) *SlideExtractionUpdate {
	_u.mutation.AddTotalSlides(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SlideExtractionUpdate) SetErrorMessage(v string) *SlideExtractionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SlideExtractionUpdate) SetNillableErrorMessage(v *string) *SlideExtractionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SlideExtractionUpdate) ClearErrorMessage() *SlideExtractionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SlideExtractionUpdate) SetUpdatedAt(v time.Time) *SlideExtractionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SlideExtractionMutation object of the builder.
func (_u *SlideExtractionUpdate) Mutation() *SlideExtractionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SlideExtractionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SlideExtractionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SlideExtractionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SlideExtractionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SlideExtractionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := slideextraction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SlideExtractionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := slideextraction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SlideExtraction.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SlideExtractionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(slideextraction.Table, slideextraction.Columns, sqlgraph.NewFieldSpec(slideextraction.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(slideextraction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(slideextraction.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(slideextraction.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.TotalSlides(); ok {
		_spec.SetField(slideextraction.FieldTotalSlides, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSlides(); ok {
		_spec.AddField(slideextraction.FieldTotalSlides, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(slideextraction.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(slideextraction.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(slideextraction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slideextraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SlideExtractionUpdateOne is the builder for updating a single SlideExtraction entity.
type SlideExtractionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SlideExtractionMutation
}

// SetStatus sets the "status" field.
func (_u *SlideExtractionUpdateOne) SetStatus(v slideextraction.Status) *SlideExtractionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SlideExtractionUpdateOne) SetNillableStatus(v *slideextraction.Status) *SlideExtractionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *SlideExtractionUpdateOne) SetRunID(v string) *SlideExtractionUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *SlideExtractionUpdateOne) SetNillableRunID(v *string) *SlideExtractionUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *SlideExtractionUpdateOne) ClearRunID() *SlideExtractionUpdateOne {
	_u.mutation.ClearRunID()
	return _u
}

// SetTotalSlides sets the "total_slides" field.
func (_u *SlideExtractionUpdateOne) SetTotalSlides(v int) *SlideExtractionUpdateOne {
	_u.mutation.ResetTotalSlides()
	_u.mutation.SetTotalSlides(v)
	return _u
}

// SetNillableTotalSlides sets the "total_slides" field if the given value is not nil.
func (_u *SlideExtractionUpdateOne) SetNillableTotalSlides(v *int) *SlideExtractionUpdateOne {
	if v != nil {
		_u.SetTotalSlides(*v)
	}
	return _u
}

// AddTotalSlides adds value to the "total_slides" field.
func (_u *SlideExtractionUpdateOne) AddTotalSlides(v int) *SlideExtractionUpdateOne {
	_u.mutation.AddTotalSlides(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SlideExtractionUpdateOne) SetErrorMessage(v string) *SlideExtractionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SlideExtractionUpdateOne) SetNillableErrorMessage(v *string) *SlideExtractionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SlideExtractionUpdateOne) ClearErrorMessage() *SlideExtractionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SlideExtractionUpdateOne) SetUpdatedAt(v time.Time) *SlideExtractionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SlideExtractionMutation object of the builder.
func (_u *SlideExtractionUpdateOne) Mutation() *SlideExtractionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SlideExtractionUpdate builder.
func (_u *SlideExtractionUpdateOne) Where(ps ...predicate.SlideExtraction) *SlideExtractionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SlideExtractionUpdateOne) Select(field string, fields ...string) *SlideExtractionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SlideExtraction entity.
func (_u *SlideExtractionUpdateOne) Save(ctx context.Context) (*SlideExtraction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SlideExtractionUpdateOne) SaveX(ctx context.Context) *SlideExtraction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SlideExtractionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SlideExtractionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SlideExtractionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := slideextraction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SlideExtractionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := slideextraction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SlideExtraction.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SlideExtractionUpdateOne) sqlSave(ctx context.Context) (_node *SlideExtraction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(slideextraction.Table, slideextraction.Columns, sqlgraph.NewFieldSpec(slideextraction.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SlideExtraction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, slideextraction.FieldID)
		for _, f := range fields {
			if !slideextraction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != slideextraction.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(slideextraction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(slideextraction.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(slideextraction.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.TotalSlides(); ok {
		_spec.SetField(slideextraction.FieldTotalSlides, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSlides(); ok {
		_spec.AddField(slideextraction.FieldTotalSlides, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(slideextraction.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(slideextraction.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(slideextraction.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SlideExtraction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slideextraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
