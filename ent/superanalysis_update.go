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
	"github.com/recapd/recapd/ent/superanalysis"
)

// SuperAnalysisUpdate is the builder for updating SuperAnalysis entities.
type SuperAnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *SuperAnalysisMutation
}

// Where appends a list predicates to the SuperAnalysisUpdate builder.
func (_u *SuperAnalysisUpdate) Where(ps ...predicate.SuperAnalysis) *SuperAnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMarkdown sets the "markdown" field.
func (_u *SuperAnalysisUpdate) SetMarkdown(v string) *SuperAnalysisUpdate {
	_u.mutation.SetMarkdown(v)
	return _u
}

// SetNillableMarkdown sets the "markdown" field if the given value is not nil.
func (_u *SuperAnalysisUpdate) SetNillableMarkdown(v *string) *SuperAnalysisUpdate {
	if v != nil {
		_u.SetMarkdown(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *SuperAnalysisUpdate) SetModel(v string) *SuperAnalysisUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *SuperAnalysisUpdate) SetNillableModel(v *string) *SuperAnalysisUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *SuperAnalysisUpdate) ClearModel() *SuperAnalysisUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SuperAnalysisUpdate) SetUpdatedAt(v time.Time) *SuperAnalysisUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SuperAnalysisMutation object of the builder.
func (_u *SuperAnalysisUpdate) Mutation() *SuperAnalysisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SuperAnalysisUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SuperAnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SuperAnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SuperAnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SuperAnalysisUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := superanalysis.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SuperAnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(superanalysis.Table, superanalysis.Columns, sqlgraph.NewFieldSpec(superanalysis.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Markdown(); ok {
		_spec.SetField(superanalysis.FieldMarkdown, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(superanalysis.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(superanalysis.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(superanalysis.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{superanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SuperAnalysisUpdateOne is the builder for updating a single SuperAnalysis entity.
type SuperAnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SuperAnalysisMutation
}

// SetMarkdown sets the "markdown" field.
func (_u *SuperAnalysisUpdateOne) SetMarkdown(v string) *SuperAnalysisUpdateOne {
	_u.mutation.SetMarkdown(v)
	return _u
}

// SetNillableMarkdown sets the "markdown" field if the given value is not nil.
func (_u *SuperAnalysisUpdateOne) SetNillableMarkdown(v *string) *SuperAnalysisUpdateOne {
	if v != nil {
		_u.SetMarkdown(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *SuperAnalysisUpdateOne) SetModel(v string) *SuperAnalysisUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *SuperAnalysisUpdateOne) SetNillableModel(v *string) *SuperAnalysisUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *SuperAnalysisUpdateOne) ClearModel() *SuperAnalysisUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SuperAnalysisUpdateOne) SetUpdatedAt(v time.Time) *SuperAnalysisUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SuperAnalysisMutation object of the builder.
func (_u *SuperAnalysisUpdateOne) Mutation() *SuperAnalysisMutation {
	return _u.mutation
}

// Where appends a list predicates to the SuperAnalysisUpdate builder.
func (_u *SuperAnalysisUpdateOne) Where(ps ...predicate.SuperAnalysis) *SuperAnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SuperAnalysisUpdateOne) Select(field string, fields ...string) *SuperAnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SuperAnalysis entity.
func (_u *SuperAnalysisUpdateOne) Save(ctx context.Context) (*SuperAnalysis, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SuperAnalysisUpdateOne) SaveX(ctx context.Context) *SuperAnalysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SuperAnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SuperAnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SuperAnalysisUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := superanalysis.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SuperAnalysisUpdateOne) sqlSave(ctx context.Context) (_node *SuperAnalysis, err error) {
	_spec := sqlgraph.NewUpdateSpec(superanalysis.Table, superanalysis.Columns, sqlgraph.NewFieldSpec(superanalysis.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SuperAnalysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, superanalysis.FieldID)
		for _, f := range fields {
			if !superanalysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != superanalysis.FieldID {
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
		_spec.SetField(superanalysis.FieldMarkdown, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(superanalysis.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(superanalysis.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(superanalysis.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SuperAnalysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{superanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
