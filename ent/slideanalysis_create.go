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
	"github.com/recapd/recapd/ent/slideanalysis"
)

// SlideAnalysisCreate is the builder for creating a SlideAnalysis entity.
type SlideAnalysisCreate struct {
	config
	mutation *SlideAnalysisMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetVideoID sets the "video_id" field.
func (_c *SlideAnalysisCreate) SetVideoID(v string) *SlideAnalysisCreate {
	_c.mutation.SetVideoID(v)
	return _c
}

// SetSlideNumber sets the "slide_number" field.
func (_c *SlideAnalysisCreate) SetSlideNumber(v int) *SlideAnalysisCreate {
	_c.mutation.SetSlideNumber(v)
	return _c
}

// SetFramePosition sets the "frame_position" field.
func (_c *SlideAnalysisCreate) SetFramePosition(v slideanalysis.FramePosition) *SlideAnalysisCreate {
	_c.mutation.SetFramePosition(v)
	return _c
}

// SetMarkdown sets the "markdown" field.
func (_c *SlideAnalysisCreate) SetMarkdown(v string) *SlideAnalysisCreate {
	_c.mutation.SetMarkdown(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *SlideAnalysisCreate) SetModel(v string) *SlideAnalysisCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *SlideAnalysisCreate) SetNillableModel(v *string) *SlideAnalysisCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SlideAnalysisCreate) SetCreatedAt(v time.Time) *SlideAnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SlideAnalysisCreate) SetNillableCreatedAt(v *time.Time) *SlideAnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SlideAnalysisCreate) SetUpdatedAt(v time.Time) *SlideAnalysisCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SlideAnalysisCreate) SetNillableUpdatedAt(v *time.Time) *SlideAnalysisCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SlideAnalysisMutation object of the builder.
func (_c *SlideAnalysisCreate) Mutation() *SlideAnalysisMutation {
	return _c.mutation
}

// Save creates the SlideAnalysis in the database.
func (_c *SlideAnalysisCreate) Save(ctx context.Context) (*SlideAnalysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SlideAnalysisCreate) SaveX(ctx context.Context) *SlideAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SlideAnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SlideAnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SlideAnalysisCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := slideanalysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := slideanalysis.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SlideAnalysisCreate) check() error {
	if _, ok := _c.mutation.VideoID(); !ok {
		return &ValidationError{Name: "video_id", err: errors.New(`ent: missing required field "SlideAnalysis.video_id"`)}
	}
	if _, ok := _c.mutation.SlideNumber(); !ok {
		return &ValidationError{Name: "slide_number", err: errors.New(`ent: missing required field "SlideAnalysis.slide_number"`)}
	}
	if _, ok := _c.mutation.FramePosition(); !ok {
		return &ValidationError{Name: "frame_position", err: errors.New(`ent: missing required field "SlideAnalysis.frame_position"`)}
	}
	if v, ok := _c.mutation.FramePosition(); ok {
		if err := slideanalysis.FramePositionValidator(v); err != nil {
			return &ValidationError{Name: "frame_position", err: fmt.Errorf(`ent: validator failed for field "SlideAnalysis.frame_position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Markdown(); !ok {
		return &ValidationError{Name: "markdown", err: errors.New(`ent: missing required field "SlideAnalysis.markdown"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SlideAnalysis.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SlideAnalysis.updated_at"`)}
	}
	return nil
}

func (_c *SlideAnalysisCreate) sqlSave(ctx context.Context) (*SlideAnalysis, error) {
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

func (_c *SlideAnalysisCreate) createSpec() (*SlideAnalysis, *sqlgraph.CreateSpec) {
	var (
		_node = &SlideAnalysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(slideanalysis.Table, sqlgraph.NewFieldSpec(slideanalysis.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.VideoID(); ok {
		_spec.SetField(slideanalysis.FieldVideoID, field.TypeString, value)
		_node.VideoID = value
	}
	if value, ok := _c.mutation.SlideNumber(); ok {
		_spec.SetField(slideanalysis.FieldSlideNumber, field.TypeInt, value)
		_node.SlideNumber = value
	}
	if value, ok := _c.mutation.FramePosition(); ok {
		_spec.SetField(slideanalysis.FieldFramePosition, field.TypeEnum, value)
		_node.FramePosition = value
	}
	if value, ok := _c.mutation.Markdown(); ok {
		_spec.SetField(slideanalysis.FieldMarkdown, field.TypeString, value)
		_node.Markdown = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(slideanalysis.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(slideanalysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(slideanalysis.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SlideAnalysis.Create().
//		SetVideoID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SlideAnalysisUpsert) {
//			SetVideoID(v+v).
//		}).
//		Exec(ctx)
func (_c *SlideAnalysisCreate) OnConflict(opts ...sql.ConflictOption) *SlideAnalysisUpsertOne {
	_c.conflict = opts
	return &SlideAnalysisUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SlideAnalysis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SlideAnalysisCreate) OnConflictColumns(columns ...string) *SlideAnalysisUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SlideAnalysisUpsertOne{
		create: _c,
	}
}

type (
	// SlideAnalysisUpsertOne is the builder for "upsert"-ing
	//  one SlideAnalysis node.
	SlideAnalysisUpsertOne struct {
		create *SlideAnalysisCreate
	}

	// SlideAnalysisUpsert is the "OnConflict" setter.
	SlideAnalysisUpsert struct {
		*sql.UpdateSet
	}
)

// SetMarkdown sets the "markdown" field.
func (u *SlideAnalysisUpsert) SetMarkdown(v string) *SlideAnalysisUpsert {
	u.Set(slideanalysis.FieldMarkdown, v)
	return u
}

// UpdateMarkdown sets the "markdown" field to the value that was provided on create.
func (u *SlideAnalysisUpsert) UpdateMarkdown() *SlideAnalysisUpsert {
	u.SetExcluded(slideanalysis.FieldMarkdown)
	return u
}

// SetModel sets the "model" field.
func (u *SlideAnalysisUpsert) SetModel(v string) *SlideAnalysisUpsert {
	u.Set(slideanalysis.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *SlideAnalysisUpsert) UpdateModel() *SlideAnalysisUpsert {
	u.SetExcluded(slideanalysis.FieldModel)
	return u
}

// ClearModel clears the value of the "model" field.
func (u *SlideAnalysisUpsert) ClearModel() *SlideAnalysisUpsert {
	u.SetNull(slideanalysis.FieldModel)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SlideAnalysisUpsert) SetUpdatedAt(v time.Time) *SlideAnalysisUpsert {
	u.Set(slideanalysis.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SlideAnalysisUpsert) UpdateUpdatedAt() *SlideAnalysisUpsert {
	u.SetExcluded(slideanalysis.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SlideAnalysis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SlideAnalysisUpsertOne) UpdateNewValues() *SlideAnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.VideoID(); exists {
			s.SetIgnore(slideanalysis.FieldVideoID)
		}
		if _, exists := u.create.mutation.SlideNumber(); exists {
			s.SetIgnore(slideanalysis.FieldSlideNumber)
		}
		if _, exists := u.create.mutation.FramePosition(); exists {
			s.SetIgnore(slideanalysis.FieldFramePosition)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(slideanalysis.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SlideAnalysis.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SlideAnalysisUpsertOne) Ignore() *SlideAnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SlideAnalysisUpsertOne) DoNothing() *SlideAnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SlideAnalysisCreate.OnConflict
// documentation for more info.
func (u *SlideAnalysisUpsertOne) Update(set func(*SlideAnalysisUpsert)) *SlideAnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SlideAnalysisUpsert{UpdateSet: update})
	}))
	return u
}

// SetMarkdown sets the "markdown" field.
func (u *SlideAnalysisUpsertOne) SetMarkdown(v string) *SlideAnalysisUpsertOne {
	return u.Update(func(s *SlideAnalysisUpsert) {
		s.SetMarkdown(v)
	})
}

// UpdateMarkdown sets the "markdown" field to the value that was provided on create.
func (u *SlideAnalysisUpsertOne) UpdateMarkdown() *SlideAnalysisUpsertOne {
	return u.Update(func(s *SlideAnalysisUpsert) {
		s.UpdateMarkdown()
	})
}

// SetModel sets the "model" field.
func (u *SlideAnalysisUpsertOne) SetModel(v string) *SlideAnalysisUpsertOne {
	return u.Update(func(s *SlideAnalysisUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *SlideAnalysisUpsertOne) UpdateModel() *SlideAnalysisUpsertOne {
	return u.Update(func(s *SlideAnalysisUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *SlideAnalysisUpsertOne) ClearModel() *SlideAnalysisUpsertOne {
	return u.Update(func(s *SlideAnalysisUpsert) {
		s.ClearModel()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SlideAnalysisUpsertOne) SetUpdatedAt(v time.Time) *SlideAnalysisUpsertOne {
	return u.Update(func(s *SlideAnalysisUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SlideAnalysisUpsertOne) UpdateUpdatedAt() *SlideAnalysisUpsertOne {
	return u.Update(func(s *SlideAnalysisUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SlideAnalysisUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SlideAnalysisCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SlideAnalysisUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SlideAnalysisUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SlideAnalysisUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SlideAnalysisCreateBulk is the builder for creating many SlideAnalysis entities in bulk.
type SlideAnalysisCreateBulk struct {
	config
	err      error
	builders []*SlideAnalysisCreate
	conflict []sql.ConflictOption
}

// Save creates the SlideAnalysis entities in the database.
func (_c *SlideAnalysisCreateBulk) Save(ctx context.Context) ([]*SlideAnalysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SlideAnalysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SlideAnalysisMutation)
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
func (_c *SlideAnalysisCreateBulk) SaveX(ctx context.Context) []*SlideAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SlideAnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SlideAnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SlideAnalysis.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SlideAnalysisUpsert) {
//			SetVideoID(v+v).
//		}).
//		Exec(ctx)
func (_c *SlideAnalysisCreateBulk) OnConflict(opts ...sql.ConflictOption) *SlideAnalysisUpsertBulk {
	_c.conflict = opts
	return &SlideAnalysisUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SlideAnalysis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SlideAnalysisCreateBulk) OnConflictColumns(columns ...string) *SlideAnalysisUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SlideAnalysisUpsertBulk{
		create: _c,
	}
}

// SlideAnalysisUpsertBulk is the builder for "upsert"-ing
// a bulk of SlideAnalysis nodes.
type SlideAnalysisUpsertBulk struct {
	create *SlideAnalysisCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SlideAnalysis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SlideAnalysisUpsertBulk) UpdateNewValues() *SlideAnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.VideoID(); exists {
				s.SetIgnore(slideanalysis.FieldVideoID)
			}
			if _, exists := b.mutation.SlideNumber(); exists {
				s.SetIgnore(slideanalysis.FieldSlideNumber)
			}
			if _, exists := b.mutation.FramePosition(); exists {
				s.SetIgnore(slideanalysis.FieldFramePosition)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(slideanalysis.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SlideAnalysis.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SlideAnalysisUpsertBulk) Ignore() *SlideAnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SlideAnalysisUpsertBulk) DoNothing() *SlideAnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SlideAnalysisCreateBulk.OnConflict
// documentation for more info.
func (u *SlideAnalysisUpsertBulk) Update(set func(*SlideAnalysisUpsert)) *SlideAnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SlideAnalysisUpsert{UpdateSet: update})
	}))
	return u
}

// SetMarkdown sets the "markdown" field.
func (u *SlideAnalysisUpsertBulk) SetMarkdown(v string) *SlideAnalysisUpsertBulk {
	return u.Update(func(s *SlideAnalysisUpsert) {
		s.SetMarkdown(v)
	})
}

// UpdateMarkdown sets the "markdown" field to the value that was provided on create.
func (u *SlideAnalysisUpsertBulk) UpdateMarkdown() *SlideAnalysisUpsertBulk {
	return u.Update(func(s *SlideAnalysisUpsert) {
		s.UpdateMarkdown()
	})
}

// SetModel sets the "model" field.
func (u *SlideAnalysisUpsertBulk) SetModel(v string) *SlideAnalysisUpsertBulk {
	return u.Update(func(s *SlideAnalysisUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *SlideAnalysisUpsertBulk) UpdateModel() *SlideAnalysisUpsertBulk {
	return u.Update(func(s *SlideAnalysisUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *SlideAnalysisUpsertBulk) ClearModel() *SlideAnalysisUpsertBulk {
	return u.Update(func(s *SlideAnalysisUpsert) {
		s.ClearModel()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SlideAnalysisUpsertBulk) SetUpdatedAt(v time.Time) *SlideAnalysisUpsertBulk {
	return u.Update(func(s *SlideAnalysisUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SlideAnalysisUpsertBulk) UpdateUpdatedAt() *SlideAnalysisUpsertBulk {
	return u.Update(func(s *SlideAnalysisUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SlideAnalysisUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SlideAnalysisCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SlideAnalysisCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SlideAnalysisUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
