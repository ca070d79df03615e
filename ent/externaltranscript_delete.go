// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recapd/recapd/ent/externaltranscript"
	"github.com/recapd/recapd/ent/predicate"
)

// ExternalTranscriptDelete is the builder for deleting a ExternalTranscript entity.
type ExternalTranscriptDelete struct {
	config
	hooks    []Hook
	mutation *ExternalTranscriptMutation
}

// Where appends a list predicates to the ExternalTranscriptDelete builder.
func (_d *ExternalTranscriptDelete) Where(ps ...predicate.ExternalTranscript) *ExternalTranscriptDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExternalTranscriptDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExternalTranscriptDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExternalTranscriptDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(externaltranscript.Table, sqlgraph.NewFieldSpec(externaltranscript.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ExternalTranscriptDeleteOne is the builder for deleting a single ExternalTranscript entity.
type ExternalTranscriptDeleteOne struct {
	_d *ExternalTranscriptDelete
}

// Where appends a list predicates to the ExternalTranscriptDelete builder.
func (_d *ExternalTranscriptDeleteOne) Where(ps ...predicate.ExternalTranscript) *ExternalTranscriptDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExternalTranscriptDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{externaltranscript.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExternalTranscriptDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
