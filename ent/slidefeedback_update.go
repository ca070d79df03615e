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
	"github.com/recapd/recapd/ent/slidefeedback"
)

// SlideFeedbackUpdate is the builder for updating SlideFeedback entities.
type SlideFeedbackUpdate struct {
	config
	hooks    []Hook
	mutation *SlideFeedbackMutation
}

// Where appends a list predicates to the SlideFeedbackUpdate builder.
func (_u *SlideFeedbackUpdate) Where(ps ...predicate.SlideFeedback) *SlideFeedbackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIsFirstFramePicked sets the "is_first_frame_picked" field.
func (_u *SlideFeedbackUpdate) SetIsFirstFramePicked(v bool) *SlideFeedbackUpdate {
	_u.mutation.SetIsFirstFramePicked(v)
	return _u
}

// SetNillableIsFirstFramePicked sets the "is_first_frame_picked" field if the given value is not nil.
func (_u *SlideFeedbackUpdate) SetNillableIsFirstFramePicked(v *bool) *SlideFeedbackUpdate {
	if v != nil {
		_u.SetIsFirstFramePicked(*v)
	}
	return _u
}

// SetIsLastFramePicked sets the "is_last_frame_picked" field.
func (_u *SlideFeedbackUpdate) SetIsLastFramePicked(v bool) *SlideFeedbackUpdate {
	_u.mutation.SetIsLastFramePicked(v)
	return _u
}

// SetNillableIsLastFramePicked sets the "is_last_frame_picked" field if the given value is not nil.
func (_u *SlideFeedbackUpdate) SetNillableIsLastFramePicked(v *bool) *SlideFeedbackUpdate {
	if v != nil {
		_u.SetIsLastFramePicked(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SlideFeedbackUpdate) SetUpdatedAt(v time.Time) *SlideFeedbackUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SlideFeedbackMutation object of the builder.
func (_u *SlideFeedbackUpdate) Mutation() *SlideFeedbackMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SlideFeedbackUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SlideFeedbackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SlideFeedbackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SlideFeedbackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SlideFeedbackUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := slidefeedback.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SlideFeedbackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(slidefeedback.Table, slidefeedback.Columns, sqlgraph.NewFieldSpec(slidefeedback.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IsFirstFramePicked(); ok {
		_spec.SetField(slidefeedback.FieldIsFirstFramePicked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsLastFramePicked(); ok {
		_spec.SetField(slidefeedback.FieldIsLastFramePicked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(slidefeedback.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slidefeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SlideFeedbackUpdateOne is the builder for updating a single SlideFeedback entity.
type SlideFeedbackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SlideFeedbackMutation
}

// SetIsFirstFramePicked sets the "is_first_frame_picked" field.
func (_u *SlideFeedbackUpdateOne) SetIsFirstFramePicked(v bool) *SlideFeedbackUpdateOne {
	_u.mutation.SetIsFirstFramePicked(v)
	return _u
}

// SetNillableIsFirstFramePicked sets the "is_first_frame_picked" field if the given value is not nil.
func (_u *SlideFeedbackUpdateOne) SetNillableIsFirstFramePicked(v *bool) *SlideFeedbackUpdateOne {
	if v != nil {
		_u.SetIsFirstFramePicked(*v)
	}
	return _u
}

// SetIsLastFramePicked sets the "is_last_frame_picked" field.
func (_u *SlideFeedbackUpdateOne) SetIsLastFramePicked(v bool) *SlideFeedbackUpdateOne {
	_u.mutation.SetIsLastFramePicked(v)
	return _u
}

// SetNillableIsLastFramePicked sets the "is_last_frame_picked" field if the given value is not nil.
func (_u *SlideFeedbackUpdateOne) SetNillableIsLastFramePicked(v *bool) *SlideFeedbackUpdateOne {
	if v != nil {
		_u.SetIsLastFramePicked(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SlideFeedbackUpdateOne) SetUpdatedAt(v time.Time) *SlideFeedbackUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SlideFeedbackMutation object of the builder.
func (_u *SlideFeedbackUpdateOne) Mutation() *SlideFeedbackMutation {
	return _u.mutation
}

// Where appends a list predicates to the SlideFeedbackUpdate builder.
func (_u *SlideFeedbackUpdateOne) Where(ps ...predicate.SlideFeedback) *SlideFeedbackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SlideFeedbackUpdateOne) Select(field string, fields ...string) *SlideFeedbackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SlideFeedback entity.
func (_u *SlideFeedbackUpdateOne) Save(ctx context.Context) (*SlideFeedback, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SlideFeedbackUpdateOne) SaveX(ctx context.Context) *SlideFeedback {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SlideFeedbackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SlideFeedbackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SlideFeedbackUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := slidefeedback.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SlideFeedbackUpdateOne) sqlSave(ctx context.Context) (_node *SlideFeedback, err error) {
	_spec := sqlgraph.NewUpdateSpec(slidefeedback.Table, slidefeedback.Columns, sqlgraph.NewFieldSpec(slidefeedback.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SlideFeedback.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, slidefeedback.FieldID)
		for _, f := range fields {
			if !slidefeedback.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != slidefeedback.FieldID {
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
	if value, ok := _u.mutation.IsFirstFramePicked(); ok {
		_spec.SetField(slidefeedback.FieldIsFirstFramePicked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsLastFramePicked(); ok {
		_spec.SetField(slidefeedback.FieldIsLastFramePicked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(slidefeedback.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SlideFeedback{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slidefeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
