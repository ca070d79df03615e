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
	"github.com/recapd/recapd/ent/transcript"
	"github.com/recapd/recapd/pkg/models"
)

// TranscriptCreate is the builder for creating a Transcript entity.
type TranscriptCreate struct {
	config
	mutation *TranscriptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetVideoID sets the "video_id" field.
func (_c *TranscriptCreate) SetVideoID(v string) *TranscriptCreate {
	_c.mutation.SetVideoID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *TranscriptCreate) SetTitle(v string) *TranscriptCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetChannelName sets the "channel_name" field.
func (_c *TranscriptCreate) SetChannelName(v string) *TranscriptCreate {
	_c.mutation.SetChannelName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TranscriptCreate) SetDescription(v string) *TranscriptCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableDescription(v *string) *TranscriptCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSegments sets the "segments" field.
func (_c *TranscriptCreate) SetSegments(v []models.TranscriptSegment) *TranscriptCreate {
	_c.mutation.SetSegments(v)
	return _c
}

// SetFetchedAt sets the "fetched_at" field.
func (_c *TranscriptCreate) SetFetchedAt(v time.Time) *TranscriptCreate {
	_c.mutation.SetFetchedAt(v)
	return _c
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableFetchedAt(v *time.Time) *TranscriptCreate {
	if v != nil {
		_c.SetFetchedAt(*v)
	}
	return _c
}

// Mutation returns the TranscriptMutation object of the builder.
func (_c *TranscriptCreate) Mutation() *TranscriptMutation {
	return _c.mutation
}

// Save creates the Transcript in the database.
func (_c *TranscriptCreate) Save(ctx context.Context) (*Transcript, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranscriptCreate) SaveX(ctx context.Context) *Transcript {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TranscriptCreate) defaults() {
	if _, ok := _c.mutation.FetchedAt(); !ok {
		v := transcript.DefaultFetchedAt()
		_c.mutation.SetFetchedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranscriptCreate) check() error {
	if _, ok := _c.mutation.VideoID(); !ok {
		return &ValidationError{Name: "video_id", err: errors.New(`ent: missing required field "Transcript.video_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Transcript.title"`)}
	}
	if _, ok := _c.mutation.ChannelName(); !ok {
		return &ValidationError{Name: "channel_name", err: errors.New(`ent: missing required field "Transcript.channel_name"`)}
	}
	if _, ok := _c.mutation.Segments(); !ok {
		return &ValidationError{Name: "segments", err: errors.New(`ent: missing required field "Transcript.segments"`)}
	}
	if _, ok := _c.mutation.FetchedAt(); !ok {
		return &ValidationError{Name: "fetched_at", err: errors.New(`ent: missing required field "Transcript.fetched_at"`)}
	}
	return nil
}

func (_c *TranscriptCreate) sqlSave(ctx context.Context) (*Transcript, error) {
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

func (_c *TranscriptCreate) createSpec() (*Transcript, *sqlgraph.CreateSpec) {
	var (
		_node = &Transcript{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transcript.Table, sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.VideoID(); ok {
		_spec.SetField(transcript.FieldVideoID, field.TypeString, value)
		_node.VideoID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(transcript.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.ChannelName(); ok {
		_spec.SetField(transcript.FieldChannelName, field.TypeString, value)
		_node.ChannelName = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(transcript.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Segments(); ok {
		_spec.SetField(transcript.FieldSegments, field.TypeJSON, value)
		_node.Segments = value
	}
	if value, ok := _c.mutation.FetchedAt(); ok {
		_spec.SetField(transcript.FieldFetchedAt, field.TypeTime, value)
		_node.FetchedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Transcript.Create().
//		SetVideoID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TranscriptUpsert) {
//			SetVideoID(v+v).
//		}).
//		Exec(ctx)
func (_c *TranscriptCreate) OnConflict(opts ...sql.ConflictOption) *TranscriptUpsertOne {
	_c.conflict = opts
	return &TranscriptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Transcript.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TranscriptCreate) OnConflictColumns(columns ...string) *TranscriptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TranscriptUpsertOne{
		create: _c,
	}
}

type (
	// TranscriptUpsertOne is the builder for "upsert"-ing
	//  one Transcript node.
	TranscriptUpsertOne struct {
		create *TranscriptCreate
	}

	// TranscriptUpsert is the "OnConflict" setter.
	TranscriptUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *TranscriptUpsert) SetTitle(v string) *TranscriptUpsert {
	u.Set(transcript.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateTitle() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldTitle)
	return u
}

// SetChannelName sets the "channel_name" field.
func (u *TranscriptUpsert) SetChannelName(v string) *TranscriptUpsert {
	u.Set(transcript.FieldChannelName, v)
	return u
}

// UpdateChannelName sets the "channel_name" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateChannelName() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldChannelName)
	return u
}

// SetDescription sets the "description" field.
func (u *TranscriptUpsert) SetDescription(v string) *TranscriptUpsert {
	u.Set(transcript.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateDescription() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *TranscriptUpsert) ClearDescription() *TranscriptUpsert {
	u.SetNull(transcript.FieldDescription)
	return u
}

// SetSegments sets the "segments" field.
func (u *TranscriptUpsert) SetSegments(v []models.TranscriptSegment) *TranscriptUpsert {
	u.Set(transcript.FieldSegments, v)
	return u
}

// UpdateSegments sets the "segments" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateSegments() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldSegments)
	return u
}

// SetFetchedAt sets the "fetched_at" field.
func (u *TranscriptUpsert) SetFetchedAt(v time.Time) *TranscriptUpsert {
	u.Set(transcript.FieldFetchedAt, v)
	return u
}

// UpdateFetchedAt sets the "fetched_at" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateFetchedAt() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldFetchedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Transcript.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TranscriptUpsertOne) UpdateNewValues() *TranscriptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.VideoID(); exists {
			s.SetIgnore(transcript.FieldVideoID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Transcript.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TranscriptUpsertOne) Ignore() *TranscriptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TranscriptUpsertOne) DoNothing() *TranscriptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TranscriptCreate.OnConflict
// documentation for more info.
func (u *TranscriptUpsertOne) Update(set func(*TranscriptUpsert)) *TranscriptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TranscriptUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *TranscriptUpsertOne) SetTitle(v string) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateTitle() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateTitle()
	})
}

// SetChannelName sets the "channel_name" field.
func (u *TranscriptUpsertOne) SetChannelName(v string) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetChannelName(v)
	})
}

// UpdateChannelName sets the "channel_name" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateChannelName() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateChannelName()
	})
}

// SetDescription sets the "description" field.
func (u *TranscriptUpsertOne) SetDescription(v string) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateDescription() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *TranscriptUpsertOne) ClearDescription() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearDescription()
	})
}

// SetSegments sets the "segments" field.
func (u *TranscriptUpsertOne) SetSegments(v []models.TranscriptSegment) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetSegments(v)
	})
}

// UpdateSegments sets the "segments" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateSegments() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateSegments()
	})
}

// SetFetchedAt sets the "fetched_at" field.
func (u *TranscriptUpsertOne) SetFetchedAt(v time.Time) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetFetchedAt(v)
	})
}

// UpdateFetchedAt sets the "fetched_at" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateFetchedAt() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateFetchedAt()
	})
}

// Exec executes the query.
func (u *TranscriptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TranscriptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TranscriptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TranscriptUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TranscriptUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TranscriptCreateBulk is the builder for creating many Transcript entities in bulk.
type TranscriptCreateBulk struct {
	config
	err      error
	builders []*TranscriptCreate
	conflict []sql.ConflictOption
}

// Save creates the Transcript entities in the database.
func (_c *TranscriptCreateBulk) Save(ctx context.Context) ([]*Transcript, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Transcript, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranscriptMutation)
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
func (_c *TranscriptCreateBulk) SaveX(ctx context.Context) []*Transcript {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Transcript.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TranscriptUpsert) {
//			SetVideoID(v+v).
//		}).
//		Exec(ctx)
func (_c *TranscriptCreateBulk) OnConflict(opts ...sql.ConflictOption) *TranscriptUpsertBulk {
	_c.conflict = opts
	return &TranscriptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Transcript.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TranscriptCreateBulk) OnConflictColumns(columns ...string) *TranscriptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TranscriptUpsertBulk{
		create: _c,
	}
}

// TranscriptUpsertBulk is the builder for "upsert"-ing
// a bulk of Transcript nodes.
type TranscriptUpsertBulk struct {
	create *TranscriptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Transcript.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TranscriptUpsertBulk) UpdateNewValues() *TranscriptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.VideoID(); exists {
				s.SetIgnore(transcript.FieldVideoID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Transcript.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TranscriptUpsertBulk) Ignore() *TranscriptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TranscriptUpsertBulk) DoNothing() *TranscriptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TranscriptCreateBulk.OnConflict
// documentation for more info.
func (u *TranscriptUpsertBulk) Update(set func(*TranscriptUpsert)) *TranscriptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TranscriptUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *TranscriptUpsertBulk) SetTitle(v string) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateTitle() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateTitle()
	})
}

// SetChannelName sets the "channel_name" field.
func (u *TranscriptUpsertBulk) SetChannelName(v string) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetChannelName(v)
	})
}

// UpdateChannelName sets the "channel_name" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateChannelName() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateChannelName()
	})
}

// SetDescription sets the "description" field.
func (u *TranscriptUpsertBulk) SetDescription(v string) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateDescription() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *TranscriptUpsertBulk) ClearDescription() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearDescription()
	})
}

// SetSegments sets the "segments" field.
func (u *TranscriptUpsertBulk) SetSegments(v []models.TranscriptSegment) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetSegments(v)
	})
}

// UpdateSegments sets the "segments" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateSegments() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateSegments()
	})
}

// SetFetchedAt sets the "fetched_at" field.
func (u *TranscriptUpsertBulk) SetFetchedAt(v time.Time) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetFetchedAt(v)
	})
}

// UpdateFetchedAt sets the "fetched_at" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateFetchedAt() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateFetchedAt()
	})
}

// Exec executes the query.
func (u *TranscriptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TranscriptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TranscriptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TranscriptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
