// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recapd/recapd/ent/externaltranscript"
	"github.com/recapd/recapd/ent/predicate"
)

// ExternalTranscriptUpdate is the builder for updating ExternalTranscript entities.
type ExternalTranscriptUpdate struct {
	config
	hooks    []Hook
	mutation *ExternalTranscriptMutation
}

// Where appends a list predicates to the ExternalTranscriptUpdate builder.
func (_u *ExternalTranscriptUpdate) Where(ps ...predicate.ExternalTranscript) *ExternalTranscriptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ExternalTranscriptUpdate) SetTitle(v string) *ExternalTranscriptUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ExternalTranscriptUpdate) SetNillableTitle(v *string) *ExternalTranscriptUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ExternalTranscriptUpdate) ClearTitle() *ExternalTranscriptUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetContent sets the "content" field.
func (_u *ExternalTranscriptUpdate) SetContent(v string) *ExternalTranscriptUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ExternalTranscriptUpdate) SetNillableContent(v *string) *ExternalTranscriptUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// Mutation returns the ExternalTranscriptMutation object of the builder.
func (_u *ExternalTranscriptUpdate) Mutation() *ExternalTranscriptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExternalTranscriptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExternalTranscriptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExternalTranscriptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExternalTranscriptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExternalTranscriptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(externaltranscript.Table, externaltranscript.Columns, sqlgraph.NewFieldSpec(externaltranscript.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(externaltranscript.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(externaltranscript.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(externaltranscript.FieldContent, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{externaltranscript.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExternalTranscriptUpdateOne is the builder for updating a single ExternalTranscript entity.
type ExternalTranscriptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExternalTranscriptMutation
}

// SetTitle sets the "title" field.
func (_u *ExternalTranscriptUpdateOne) SetTitle(v string) *ExternalTranscriptUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ExternalTranscriptUpdateOne) SetNillableTitle(v *string) *ExternalTranscriptUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ExternalTranscriptUpdateOne) ClearTitle() *ExternalTranscriptUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetContent sets the "content" field.
func (_u *ExternalTranscriptUpdateOne) SetContent(v string) *ExternalTranscriptUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ExternalTranscriptUpdateOne) SetNillableContent(v *string) *ExternalTranscriptUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// Mutation returns the ExternalTranscriptMutation object of the builder.
func (_u *ExternalTranscriptUpdateOne) Mutation() *ExternalTranscriptMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExternalTranscriptUpdate builder.
func (_u *ExternalTranscriptUpdateOne) Where(ps ...predicate.ExternalTranscript) *ExternalTranscriptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExternalTranscriptUpdateOne) Select(field string, fields ...string) *ExternalTranscriptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExternalTranscript entity.
func (_u *ExternalTranscriptUpdateOne) Save(ctx context.Context) (*ExternalTranscript, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExternalTranscriptUpdateOne) SaveX(ctx context.Context) *ExternalTranscript {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExternalTranscriptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExternalTranscriptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExternalTranscriptUpdateOne) sqlSave(ctx context.Context) (_node *ExternalTranscript, err error) {
	_spec := sqlgraph.NewUpdateSpec(externaltranscript.Table, externaltranscript.Columns, sqlgraph.NewFieldSpec(externaltranscript.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExternalTranscript.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, externaltranscript.FieldID)
		for _, f := range fields {
			if !externaltranscript.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != externaltranscript.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(externaltranscript.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(externaltranscript.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(externaltranscript.FieldContent, field.TypeString, value)
	}
	_node = &ExternalTranscript{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{externaltranscript.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
