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
	"github.com/recapd/recapd/ent/slidefeedback"
)

// SlideFeedbackCreate is the builder for creating a SlideFeedback entity.
type SlideFeedbackCreate struct {
	config
	mutation *SlideFeedbackMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetVideoID sets the "video_id" field.
func (_c *SlideFeedbackCreate) SetVideoID(v string) *SlideFeedbackCreate {
	_c.mutation.SetVideoID(v)
	return _c
}

// SetSlideNumber sets the "slide_number" field.
func (_c *SlideFeedbackCreate) SetSlideNumber(v int) *SlideFeedbackCreate {
	_c.mutation.SetSlideNumber(v)
	return _c
}

// SetIsFirstFramePicked sets the "is_first_frame_picked" field.
func (_c *SlideFeedbackCreate) SetIsFirstFramePicked(v bool) *SlideFeedbackCreate {
	_c.mutation.SetIsFirstFramePicked(v)
	return _c
}

// SetNillableIsFirstFramePicked sets the "is_first_frame_picked" field if the given value is not nil.
func (_c *SlideFeedbackCreate) SetNillableIsFirstFramePicked(v *bool) *SlideFeedbackCreate {
	if v != nil {
		_c.SetIsFirstFramePicked(*v)
	}
	return _c
}

// SetIsLastFramePicked sets the "is_last_frame_picked" field.
func (_c *SlideFeedbackCreate) SetIsLastFramePicked(v bool) *SlideFeedbackCreate {
	_c.mutation.SetIsLastFramePicked(v)
	return _c
}

// SetNillableIsLastFramePicked sets the "is_last_frame_picked" field if the given value is not nil.
func (_c *SlideFeedbackCreate) SetNillableIsLastFramePicked(v *bool) *SlideFeedbackCreate {
	if v != nil {
		_c.SetIsLastFramePicked(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SlideFeedbackCreate) SetUpdatedAt(v time.Time) *SlideFeedbackCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SlideFeedbackCreate) SetNillableUpdatedAt(v *time.Time) *SlideFeedbackCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SlideFeedbackMutation object of the builder.
func (_c *SlideFeedbackCreate) Mutation() *SlideFeedbackMutation {
	return _c.mutation
}

// Save creates the SlideFeedback in the database.
func (_c *SlideFeedbackCreate) Save(ctx context.Context) (*SlideFeedback, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SlideFeedbackCreate) SaveX(ctx context.Context) *SlideFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SlideFeedbackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SlideFeedbackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SlideFeedbackCreate) defaults() {
	if _, ok := _c.mutation.IsFirstFramePicked(); !ok {
		v := slidefeedback.DefaultIsFirstFramePicked
		_c.mutation.SetIsFirstFramePicked(v)
	}
	if _, ok := _c.mutation.IsLastFramePicked(); !ok {
		v := slidefeedback.DefaultIsLastFramePicked
		_c.mutation.SetIsLastFramePicked(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := slidefeedback.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SlideFeedbackCreate) check() error {
	if _, ok := _c.mutation.VideoID(); !ok {
		return &ValidationError{Name: "video_id", err: errors.New(`ent: missing required field "SlideFeedback.video_id"`)}
	}
	if _, ok := _c.mutation.SlideNumber(); !ok {
		return &ValidationError{Name: "slide_number", err: errors.New(`ent: missing required field "SlideFeedback.slide_number"`)}
	}
	if _, ok := _c.mutation.IsFirstFramePicked(); !ok {
		return &ValidationError{Name: "is_first_frame_picked", err: errors.New(`ent: missing required field "SlideFeedback.is_first_frame_picked"`)}
	}
	if _, ok := _c.mutation.IsLastFramePicked(); !ok {
		return &ValidationError{Name: "is_last_frame_picked", err: errors.New(`ent: missing required field "SlideFeedback.is_last_frame_picked"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SlideFeedback.updated_at"`)}
	}
	return nil
}

func (_c *SlideFeedbackCreate) sqlSave(ctx context.Context) (*SlideFeedback, error) {
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

func (_c *SlideFeedbackCreate) createSpec() (*SlideFeedback, *sqlgraph.CreateSpec) {
	var (
		_node = &SlideFeedback{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(slidefeedback.Table, sqlgraph.NewFieldSpec(slidefeedback.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.VideoID(); ok {
		_spec.SetField(slidefeedback.FieldVideoID, field.TypeString, value)
		_node.VideoID = value
	}
	if value, ok := _c.mutation.SlideNumber(); ok {
		_spec.SetField(slidefeedback.FieldSlideNumber, field.TypeInt, value)
		_node.SlideNumber = value
	}
	if value, ok := _c.mutation.IsFirstFramePicked(); ok {
		_spec.SetField(slidefeedback.FieldIsFirstFramePicked, field.TypeBool, value)
		_node.IsFirstFramePicked = value
	}
	if value, ok := _c.mutation.IsLastFramePicked(); ok {
		_spec.SetField(slidefeedback.FieldIsLastFramePicked, field.TypeBool, value)
		_node.IsLastFramePicked = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(slidefeedback.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SlideFeedback.Create().
//		SetVideoID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SlideFeedbackUpsert) {
//			SetVideoID(v+v).
//		}).
//		Exec(ctx)
func (_c *SlideFeedbackCreate) OnConflict(opts ...sql.ConflictOption) *SlideFeedbackUpsertOne {
	_c.conflict = opts
	return &SlideFeedbackUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SlideFeedback.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SlideFeedbackCreate) OnConflictColumns(columns ...string) *SlideFeedbackUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SlideFeedbackUpsertOne{
		create: _c,
	}
}

type (
	// SlideFeedbackUpsertOne is the builder for "upsert"-ing
	//  one SlideFeedback node.
	SlideFeedbackUpsertOne struct {
		create *SlideFeedbackCreate
	}

	// SlideFeedbackUpsert is the "OnConflict" setter.
	SlideFeedbackUpsert struct {
		*sql.UpdateSet
	}
)

// SetIsFirstFramePicked sets the "is_first_frame_picked" field.
func (u *SlideFeedbackUpsert) SetIsFirstFramePicked(v bool) *SlideFeedbackUpsert {
	u.Set(slidefeedback.FieldIsFirstFramePicked, v)
	return u
}

// UpdateIsFirstFramePicked sets the "is_first_frame_picked" field to the value that was provided on create.
func (u *SlideFeedbackUpsert) UpdateIsFirstFramePicked() *SlideFeedbackUpsert {
	u.SetExcluded(slidefeedback.FieldIsFirstFramePicked)
	return u
}

// SetIsLastFramePicked sets the "is_last_frame_picked" field.
func (u *SlideFeedbackUpsert) SetIsLastFramePicked(v bool) *SlideFeedbackUpsert {
	u.Set(slidefeedback.FieldIsLastFramePicked, v)
	return u
}

// UpdateIsLastFramePicked sets the "is_last_frame_picked" field to the value that was provided on create.
func (u *SlideFeedbackUpsert) UpdateIsLastFramePicked() *SlideFeedbackUpsert {
	u.SetExcluded(slidefeedback.FieldIsLastFramePicked)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SlideFeedbackUpsert) SetUpdatedAt(v time.Time) *SlideFeedbackUpsert {
	u.Set(slidefeedback.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SlideFeedbackUpsert) UpdateUpdatedAt() *SlideFeedbackUpsert {
	u.SetExcluded(slidefeedback.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SlideFeedback.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SlideFeedbackUpsertOne) UpdateNewValues() *SlideFeedbackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.VideoID(); exists {
			s.SetIgnore(slidefeedback.FieldVideoID)
		}
		if _, exists := u.create.mutation.SlideNumber(); exists {
			s.SetIgnore(slidefeedback.FieldSlideNumber)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SlideFeedback.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SlideFeedbackUpsertOne) Ignore() *SlideFeedbackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SlideFeedbackUpsertOne) DoNothing() *SlideFeedbackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SlideFeedbackCreate.OnConflict
// documentation for more info.
func (u *SlideFeedbackUpsertOne) Update(set func(*SlideFeedbackUpsert)) *SlideFeedbackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SlideFeedbackUpsert{UpdateSet: update})
	}))
	return u
}

// SetIsFirstFramePicked sets the "is_first_frame_picked" field.
func (u *SlideFeedbackUpsertOne) SetIsFirstFramePicked(v bool) *SlideFeedbackUpsertOne {
	return u.Update(func(s *SlideFeedbackUpsert) {
		s.SetIsFirstFramePicked(v)
	})
}

// UpdateIsFirstFramePicked sets the "is_first_frame_picked" field to the value that was provided on create.
func (u *SlideFeedbackUpsertOne) UpdateIsFirstFramePicked() *SlideFeedbackUpsertOne {
	return u.Update(func(s *SlideFeedbackUpsert) {
		s.UpdateIsFirstFramePicked()
	})
}

// SetIsLastFramePicked sets the "is_last_frame_picked" field.
func (u *SlideFeedbackUpsertOne) SetIsLastFramePicked(v bool) *SlideFeedbackUpsertOne {
	return u.Update(func(s *SlideFeedbackUpsert) {
		s.SetIsLastFramePicked(v)
	})
}

// UpdateIsLastFramePicked sets the "is_last_frame_picked" field to the value that was provided on create.
func (u *SlideFeedbackUpsertOne) UpdateIsLastFramePicked() *SlideFeedbackUpsertOne {
	return u.Update(func(s *SlideFeedbackUpsert) {
		s.UpdateIsLastFramePicked()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SlideFeedbackUpsertOne) SetUpdatedAt(v time.Time) *SlideFeedbackUpsertOne {
	return u.Update(func(s *SlideFeedbackUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SlideFeedbackUpsertOne) UpdateUpdatedAt() *SlideFeedbackUpsertOne {
	return u.Update(func(s *SlideFeedbackUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SlideFeedbackUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SlideFeedbackCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SlideFeedbackUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SlideFeedbackUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SlideFeedbackUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SlideFeedbackCreateBulk is the builder for creating many SlideFeedback entities in bulk.
type SlideFeedbackCreateBulk struct {
	config
	err      error
	builders []*SlideFeedbackCreate
	conflict []sql.ConflictOption
}

// Save creates the SlideFeedback entities in the database.
func (_c *SlideFeedbackCreateBulk) Save(ctx context.Context) ([]*SlideFeedback, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SlideFeedback, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SlideFeedbackMutation)
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
func (_c *SlideFeedbackCreateBulk) SaveX(ctx context.Context) []*SlideFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SlideFeedbackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SlideFeedbackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SlideFeedback.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SlideFeedbackUpsert) {
//			SetVideoID(v+v).
//		}).
//		Exec(ctx)
func (_c *SlideFeedbackCreateBulk) OnConflict(opts ...sql.ConflictOption) *SlideFeedbackUpsertBulk {
	_c.conflict = opts
	return &SlideFeedbackUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SlideFeedback.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SlideFeedbackCreateBulk) OnConflictColumns(columns ...string) *SlideFeedbackUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SlideFeedbackUpsertBulk{
		create: _c,
	}
}

// SlideFeedbackUpsertBulk is the builder for "upsert"-ing
// a bulk of SlideFeedback nodes.
type SlideFeedbackUpsertBulk struct {
	create *SlideFeedbackCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SlideFeedback.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SlideFeedbackUpsertBulk) UpdateNewValues() *SlideFeedbackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.VideoID(); exists {
				s.SetIgnore(slidefeedback.FieldVideoID)
			}
			if _, exists := b.mutation.SlideNumber(); exists {
				s.SetIgnore(slidefeedback.FieldSlideNumber)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SlideFeedback.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SlideFeedbackUpsertBulk) Ignore() *SlideFeedbackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SlideFeedbackUpsertBulk) DoNothing() *SlideFeedbackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SlideFeedbackCreateBulk.OnConflict
// documentation for more info.
func (u *SlideFeedbackUpsertBulk) Update(set func(*SlideFeedbackUpsert)) *SlideFeedbackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SlideFeedbackUpsert{UpdateSet: update})
	}))
	return u
}

// SetIsFirstFramePicked sets the "is_first_frame_picked" field.
func (u *SlideFeedbackUpsertBulk) SetIsFirstFramePicked(v bool) *SlideFeedbackUpsertBulk {
	return u.Update(func(s *SlideFeedbackUpsert) {
		s.SetIsFirstFramePicked(v)
	})
}

// UpdateIsFirstFramePicked sets the "is_first_frame_picked" field to the value that was provided on create.
func (u *SlideFeedbackUpsertBulk) UpdateIsFirstFramePicked() *SlideFeedbackUpsertBulk {
	return u.Update(func(s *SlideFeedbackUpsert) {
		s.UpdateIsFirstFramePicked()
	})
}

// SetIsLastFramePicked sets the "is_last_frame_picked" field.
func (u *SlideFeedbackUpsertBulk) SetIsLastFramePicked(v bool) *SlideFeedbackUpsertBulk {
	return u.Update(func(s *SlideFeedbackUpsert) {
		s.SetIsLastFramePicked(v)
	})
}

// UpdateIsLastFramePicked sets the "is_last_frame_picked" field to the value that was provided on create.
func (u *SlideFeedbackUpsertBulk) UpdateIsLastFramePicked() *SlideFeedbackUpsertBulk {
	return u.Update(func(s *SlideFeedbackUpsert) {
		s.UpdateIsLastFramePicked()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SlideFeedbackUpsertBulk) SetUpdatedAt(v time.Time) *SlideFeedbackUpsertBulk {
	return u.Update(func(s *SlideFeedbackUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SlideFeedbackUpsertBulk) UpdateUpdatedAt() *SlideFeedbackUpsertBulk {
	return u.Update(func(s *SlideFeedbackUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SlideFeedbackUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SlideFeedbackCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SlideFeedbackCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SlideFeedbackUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
