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
	"github.com/recapd/recapd/ent/slideanalysis"
)

// SlideAnalysisUpdate is the builder for updating SlideAnalysis entities.
type SlideAnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *SlideAnalysisMutation
}

// Where appends a list predicates to the SlideAnalysisUpdate builder.
func (_u *SlideAnalysisUpdate) Where(ps ...predicate.SlideAnalysis) *SlideAnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMarkdown sets the "markdown" field.
func (_u *SlideAnalysisUpdate) SetMarkdown(v string) *SlideAnalysisUpdate {
	_u.mutation.SetMarkdown(v)
	return _u
}

// SetNillableMarkdown sets the "markdown" field if the given value is not nil.
func (_u *SlideAnalysisUpdate) SetNillableMarkdown(v *string) *SlideAnalysisUpdate {
	if v != nil {
		_u.SetMarkdown(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *SlideAnalysisUpdate) SetModel(v string) *SlideAnalysisUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *SlideAnalysisUpdate) SetNillableModel(v *string) *SlideAnalysisUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *SlideAnalysisUpdate) ClearModel() *SlideAnalysisUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SlideAnalysisUpdate) SetUpdatedAt(v time.Time) *SlideAnalysisUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SlideAnalysisMutation object of the builder.
func (_u *SlideAnalysisUpdate) Mutation() *SlideAnalysisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SlideAnalysisUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SlideAnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SlideAnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SlideAnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SlideAnalysisUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := slideanalysis.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SlideAnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(slideanalysis.Table, slideanalysis.Columns, sqlgraph.NewFieldSpec(slideanalysis.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Markdown(); ok {
		_spec.SetField(slideanalysis.FieldMarkdown, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(slideanalysis.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(slideanalysis.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(slideanalysis.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slideanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SlideAnalysisUpdateOne is the builder for updating a single SlideAnalysis entity.
type SlideAnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SlideAnalysisMutation
}

// SetMarkdown sets the "markdown" field.
func (_u *SlideAnalysisUpdateOne) SetMarkdown(v string) *SlideAnalysisUpdateOne {
	_u.mutation.SetMarkdown(v)
	return _u
}

// SetNillableMarkdown sets the "markdown" field if the given value is not nil.
func (_u *SlideAnalysisUpdateOne) SetNillableMarkdown(v *string) *SlideAnalysisUpdateOne {
	if v != nil {
		_u.SetMarkdown(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *SlideAnalysisUpdateOne) SetModel(v string) *SlideAnalysisUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *SlideAnalysisUpdateOne) SetNillableModel(v *string) *SlideAnalysisUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *SlideAnalysisUpdateOne) ClearModel() *SlideAnalysisUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SlideAnalysisUpdateOne) SetUpdatedAt(v time.Time) *SlideAnalysisUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SlideAnalysisMutation object of the builder.
func (_u *SlideAnalysisUpdateOne) Mutation() *SlideAnalysisMutation {
	return _u.mutation
}

// Where appends a list predicates to the SlideAnalysisUpdate builder.
func (_u *SlideAnalysisUpdateOne) Where(ps ...predicate.SlideAnalysis) *SlideAnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SlideAnalysisUpdateOne) Select(field string, fields ...string) *SlideAnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SlideAnalysis entity.
func (_u *SlideAnalysisUpdateOne) Save(ctx context.Context) (*SlideAnalysis, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SlideAnalysisUpdateOne) SaveX(ctx context.Context) *SlideAnalysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SlideAnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SlideAnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SlideAnalysisUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := slideanalysis.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SlideAnalysisUpdateOne) sqlSave(ctx context.Context) (_node *SlideAnalysis, err error) {
	_spec := sqlgraph.NewUpdateSpec(slideanalysis.Table, slideanalysis.Columns, sqlgraph.NewFieldSpec(slideanalysis.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SlideAnalysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, slideanalysis.FieldID)
		for _, f := range fields {
			if !slideanalysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != slideanalysis.FieldID {
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
	if value, ok := _u.mutation.Markdown(); ok {
		_spec.SetField(slideanalysis.FieldMarkdown, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(slideanalysis.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(slideanalysis.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(slideanalysis.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SlideAnalysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slideanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
