// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/recapd/recapd/ent/predicate"
	"github.com/recapd/recapd/ent/transcript"
	"github.com/recapd/recapd/pkg/models"
)

// TranscriptUpdate is the builder for updating Transcript entities.
type TranscriptUpdate struct {
	config
	hooks    []Hook
	mutation *TranscriptMutation
}

// Where appends a list predicates to the TranscriptUpdate builder.
func (_u *TranscriptUpdate) Where(ps ...predicate.Transcript) *TranscriptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TranscriptUpdate) SetTitle(v string) *TranscriptUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableTitle(v *string) *TranscriptUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetChannelName sets the "channel_name" field.
func (_u *TranscriptUpdate) SetChannelName(v string) *TranscriptUpdate {
	_u.mutation.SetChannelName(v)
	return _u
}

// SetNillableChannelName sets the "channel_name" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableChannelName(v *string) *TranscriptUpdate {
	if v != nil {
		_u.SetChannelName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TranscriptUpdate) SetDescription(v string) *TranscriptUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableDescription(v *string) *TranscriptUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TranscriptUpdate) ClearDescription() *TranscriptUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSegments sets the "segments" field.
func (_u *TranscriptUpdate) SetSegments(v []models.TranscriptSegment) *TranscriptUpdate {
	_u.mutation.SetSegments(v)
	return _u
}

// AppendSegments appends value to the "segments" field.
func (_u *TranscriptUpdate) AppendSegments(v []models.TranscriptSegment) *TranscriptUpdate {
	_u.mutation.AppendSegments(v)
	return _u
}

// SetFetchedAt sets the "fetched_at" field.
func (_u *TranscriptUpdate) SetFetchedAt(v time.Time) *TranscriptUpdate {
	_u.mutation.SetFetchedAt(v)
	return _u
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableFetchedAt(v *time.Time) *TranscriptUpdate {
	if v != nil {
		_u.SetFetchedAt(*v)
	}
	return _u
}

// Mutation returns the TranscriptMutation object of the builder.
func (_u *TranscriptUpdate) Mutation() *TranscriptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TranscriptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TranscriptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TranscriptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(transcript.Table, transcript.Columns, sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(transcript.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChannelName(); ok {
		_spec.SetField(transcript.FieldChannelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(transcript.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(transcript.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Segments(); ok {
		_spec.SetField(transcript.FieldSegments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSegments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, transcript.FieldSegments, value)
		})
	}
	if value, ok := _u.mutation.FetchedAt(); ok {
		_spec.SetField(transcript.FieldFetchedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcript.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TranscriptUpdateOne is the builder for updating a single Transcript entity.
type TranscriptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TranscriptMutation
}

// SetTitle sets the "title" field.
func (_u *TranscriptUpdateOne) SetTitle(v string) *TranscriptUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableTitle(v *string) *TranscriptUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetChannelName sets the "channel_name" field.
func (_u *TranscriptUpdateOne) SetChannelName(v string) *TranscriptUpdateOne {
	_u.mutation.SetChannelName(v)
	return _u
}

// SetNillableChannelName sets the "channel_name" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableChannelName(v *string) *TranscriptUpdateOne {
	if v != nil {
		_u.SetChannelName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TranscriptUpdateOne) SetDescription(v string) *TranscriptUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableDescription(v *string) *TranscriptUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TranscriptUpdateOne) ClearDescription() *TranscriptUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSegments sets the "segments" field.
func (_u *TranscriptUpdateOne) SetSegments(v []models.TranscriptSegment) *TranscriptUpdateOne {
	_u.mutation.SetSegments(v)
	return _u
}

// AppendSegments appends value to the "segments" field.
func (_u *TranscriptUpdateOne) AppendSegments(v []models.TranscriptSegment) *TranscriptUpdateOne {
	_u.mutation.AppendSegments(v)
	return _u
}

// SetFetchedAt sets the "fetched_at" field.
func (_u *TranscriptUpdateOne) SetFetchedAt(v time.Time) *TranscriptUpdateOne {
	_u.mutation.SetFetchedAt(v)
	return _u
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableFetchedAt(v *time.Time) *TranscriptUpdateOne {
	if v != nil {
		_u.SetFetchedAt(*v)
	}
	return _u
}

// Mutation returns the TranscriptMutation object of the builder.
func (_u *TranscriptUpdateOne) Mutation() *TranscriptMutation {
	return _u.mutation
}

// Where appends a list predicates to the TranscriptUpdate builder.
func (_u *TranscriptUpdateOne) Where(ps ...predicate.Transcript) *TranscriptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TranscriptUpdateOne) Select(field string, fields ...string) *TranscriptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Transcript entity.
func (_u *TranscriptUpdateOne) Save(ctx context.Context) (*Transcript, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptUpdateOne) SaveX(ctx context.Context) *Transcript {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TranscriptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TranscriptUpdateOne) sqlSave(ctx context.Context) (_node *Transcript, err error) {
	_spec := sqlgraph.NewUpdateSpec(transcript.Table, transcript.Columns, sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Transcript.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transcript.FieldID)
		for _, f := range fields {
			if !transcript.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transcript.FieldID {
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
		_spec.SetField(transcript.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChannelName(); ok {
		_spec.SetField(transcript.FieldChannelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(transcript.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(transcript.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Segments(); ok {
		_spec.SetField(transcript.FieldSegments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSegments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, transcript.FieldSegments, value)
		})
	}
	if value, ok := _u.mutation.FetchedAt(); ok {
		_spec.SetField(transcript.FieldFetchedAt, field.TypeTime, value)
	}
	_node = &Transcript{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcript.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
