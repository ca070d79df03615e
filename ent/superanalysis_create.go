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
	"github.com/recapd/recapd/ent/superanalysis"
)

// SuperAnalysisCreate is the builder for creating a SuperAnalysis entity.
type SuperAnalysisCreate struct {
	config
	mutation *SuperAnalysisMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetVideoID sets the "video_id" field.
func (_c *SuperAnalysisCreate) SetVideoID(v string) *SuperAnalysisCreate {
	_c.mutation.SetVideoID(v)
	return _c
}

// SetMarkdown sets the "markdown" field.
func (_c *SuperAnalysisCreate) SetMarkdown(v string) *SuperAnalysisCreate {
	_c.mutation.SetMarkdown(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *SuperAnalysisCreate) SetModel(v string) *SuperAnalysisCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *SuperAnalysisCreate) SetNillableModel(v *string) *SuperAnalysisCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SuperAnalysisCreate) SetCreatedAt(v time.Time) *SuperAnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SuperAnalysisCreate) SetNillableCreatedAt(v *time.Time) *SuperAnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SuperAnalysisCreate) SetUpdatedAt(v time.Time) *SuperAnalysisCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SuperAnalysisCreate) SetNillableUpdatedAt(v *time.Time) *SuperAnalysisCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SuperAnalysisMutation object of the builder.
func (_c *SuperAnalysisCreate) Mutation() *SuperAnalysisMutation {
	return _c.mutation
}

// Save creates the SuperAnalysis in the database.
func (_c *SuperAnalysisCreate) Save(ctx context.Context) (*SuperAnalysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SuperAnalysisCreate) SaveX(ctx context.Context) *SuperAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SuperAnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SuperAnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SuperAnalysisCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := superanalysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := superanalysis.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SuperAnalysisCreate) check() error {
	if _, ok := _c.mutation.VideoID(); !ok {
		return &ValidationError{Name: "video_id", err: errors.New(`ent: missing required field "SuperAnalysis.video_id"`)}
	}
	if _, ok := _c.mutation.Markdown(); !ok {
		return &ValidationError{Name: "markdown", err: errors.New(`ent: missing required field "SuperAnalysis.markdown"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SuperAnalysis.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SuperAnalysis.updated_at"`)}
	}
	return nil
}

func (_c *SuperAnalysisCreate) sqlSave(ctx context.Context) (*SuperAnalysis, error) {
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

func (_c *SuperAnalysisCreate) createSpec() (*SuperAnalysis, *sqlgraph.CreateSpec) {
	var (
		_node = &SuperAnalysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(superanalysis.Table, sqlgraph.NewFieldSpec(superanalysis.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.VideoID(); ok {
		_spec.SetField(superanalysis.FieldVideoID, field.TypeString, value)
		_node.VideoID = value
	}
	if value, ok := _c.mutation.Markdown(); ok {
		_spec.SetField(superanalysis.FieldMarkdown, field.TypeString, value)
		_node.Markdown = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(superanalysis.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(superanalysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(superanalysis.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SuperAnalysis.Create().
//		SetVideoID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SuperAnalysisUpsert) {
//			SetVideoID(v+v).
//		}).
//		Exec(ctx)
func (_c *SuperAnalysisCreate) OnConflict(opts ...sql.ConflictOption) *SuperAnalysisUpsertOne {
	_c.conflict = opts
	return &SuperAnalysisUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SuperAnalysis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SuperAnalysisCreate) OnConflictColumns(columns ...string) *SuperAnalysisUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SuperAnalysisUpsertOne{
		create: _c,
	}
}

type (
	// SuperAnalysisUpsertOne is the builder for "upsert"-ing
	//  one SuperAnalysis node.
	SuperAnalysisUpsertOne struct {
		create *SuperAnalysisCreate
	}

	// SuperAnalysisUpsert is the "OnConflict" setter.
	SuperAnalysisUpsert struct {
		*sql.UpdateSet
	}
)

// SetMarkdown sets the "markdown" field.
func (u *SuperAnalysisUpsert) SetMarkdown(v string) *SuperAnalysisUpsert {
	u.Set(superanalysis.FieldMarkdown, v)
	return u
}

// UpdateMarkdown sets the "markdown" field to the value that was provided on create.
func (u *SuperAnalysisUpsert) UpdateMarkdown() *SuperAnalysisUpsert {
	u.SetExcluded(superanalysis.FieldMarkdown)
	return u
}

// SetModel sets the "model" field.
func (u *SuperAnalysisUpsert) SetModel(v string) *SuperAnalysisUpsert {
	u.Set(superanalysis.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *SuperAnalysisUpsert) UpdateModel() *SuperAnalysisUpsert {
	u.SetExcluded(superanalysis.FieldModel)
	return u
}

// ClearModel clears the value of the "model" field.
func (u *SuperAnalysisUpsert) ClearModel() *SuperAnalysisUpsert {
	u.SetNull(superanalysis.FieldModel)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SuperAnalysisUpsert) SetUpdatedAt(v time.Time) *SuperAnalysisUpsert {
	u.Set(superanalysis.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SuperAnalysisUpsert) UpdateUpdatedAt() *SuperAnalysisUpsert {
	u.SetExcluded(superanalysis.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SuperAnalysis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SuperAnalysisUpsertOne) UpdateNewValues() *SuperAnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.VideoID(); exists {
			s.SetIgnore(superanalysis.FieldVideoID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(superanalysis.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SuperAnalysis.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SuperAnalysisUpsertOne) Ignore() *SuperAnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SuperAnalysisUpsertOne) DoNothing() *SuperAnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SuperAnalysisCreate.OnConflict
// documentation for more info.
func (u *SuperAnalysisUpsertOne) Update(set func(*SuperAnalysisUpsert)) *SuperAnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SuperAnalysisUpsert{UpdateSet: update})
	}))
	return u
}

// SetMarkdown sets the "markdown" field.
func (u *SuperAnalysisUpsertOne) SetMarkdown(v string) *SuperAnalysisUpsertOne {
	return u.Update(func(s *SuperAnalysisUpsert) {
		s.SetMarkdown(v)
	})
}

// UpdateMarkdown sets the "markdown" field to the value that was provided on create.
func (u *SuperAnalysisUpsertOne) UpdateMarkdown() *SuperAnalysisUpsertOne {
	return u.Update(func(s *SuperAnalysisUpsert) {
		s.UpdateMarkdown()
	})
}

// SetModel sets the "model" field.
func (u *SuperAnalysisUpsertOne) SetModel(v string) *SuperAnalysisUpsertOne {
	return u.Update(func(s *SuperAnalysisUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *SuperAnalysisUpsertOne) UpdateModel() *SuperAnalysisUpsertOne {
	return u.Update(func(s *SuperAnalysisUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *SuperAnalysisUpsertOne) ClearModel() *SuperAnalysisUpsertOne {
	return u.Update(func(s *SuperAnalysisUpsert) {
		s.ClearModel()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SuperAnalysisUpsertOne) SetUpdatedAt(v time.Time) *SuperAnalysisUpsertOne {
	return u.Update(func(s *SuperAnalysisUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SuperAnalysisUpsertOne) UpdateUpdatedAt() *SuperAnalysisUpsertOne {
	return u.Update(func(s *SuperAnalysisUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SuperAnalysisUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SuperAnalysisCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SuperAnalysisUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SuperAnalysisUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SuperAnalysisUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SuperAnalysisCreateBulk is the builder for creating many SuperAnalysis entities in bulk.
type SuperAnalysisCreateBulk struct {
	config
	err      error
	builders []*SuperAnalysisCreate
	conflict []sql.ConflictOption
}

// Save creates the SuperAnalysis entities in the database.
func (_c *SuperAnalysisCreateBulk) Save(ctx context.Context) ([]*SuperAnalysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SuperAnalysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SuperAnalysisMutation)
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
func (_c *SuperAnalysisCreateBulk) SaveX(ctx context.Context) []*SuperAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SuperAnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SuperAnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SuperAnalysis.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SuperAnalysisUpsert) {
//			SetVideoID(v+v).
//		}).
//		Exec(ctx)
func (_c *SuperAnalysisCreateBulk) OnConflict(opts ...sql.ConflictOption) *SuperAnalysisUpsertBulk {
	_c.conflict = opts
	return &SuperAnalysisUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SuperAnalysis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SuperAnalysisCreateBulk) OnConflictColumns(columns ...string) *SuperAnalysisUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SuperAnalysisUpsertBulk{
		create: _c,
	}
}

// SuperAnalysisUpsertBulk is the builder for "upsert"-ing
// a bulk of SuperAnalysis nodes.
type SuperAnalysisUpsertBulk struct {
	create *SuperAnalysisCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SuperAnalysis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SuperAnalysisUpsertBulk) UpdateNewValues() *SuperAnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.VideoID(); exists {
				s.SetIgnore(superanalysis.FieldVideoID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(superanalysis.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SuperAnalysis.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SuperAnalysisUpsertBulk) Ignore() *SuperAnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SuperAnalysisUpsertBulk) DoNothing() *SuperAnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SuperAnalysisCreateBulk.OnConflict
// documentation for more info.
func (u *SuperAnalysisUpsertBulk) Update(set func(*SuperAnalysisUpsert)) *SuperAnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SuperAnalysisUpsert{UpdateSet: update})
	}))
	return u
}

// SetMarkdown sets the "markdown" field.
func (u *SuperAnalysisUpsertBulk) SetMarkdown(v string) *SuperAnalysisUpsertBulk {
	return u.Update(func(s *SuperAnalysisUpsert) {
		s.SetMarkdown(v)
	})
}

// UpdateMarkdown sets the "markdown" field to the value that was provided on create.
func (u *SuperAnalysisUpsertBulk) UpdateMarkdown() *SuperAnalysisUpsertBulk {
	return u.Update(func(s *SuperAnalysisUpsert) {
		s.UpdateMarkdown()
	})
}

// SetModel sets the "model" field.
func (u *SuperAnalysisUpsertBulk) SetModel(v string) *SuperAnalysisUpsertBulk {
	return u.Update(func(s *SuperAnalysisUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *SuperAnalysisUpsertBulk) UpdateModel() *SuperAnalysisUpsertBulk {
	return u.Update(func(s *SuperAnalysisUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *SuperAnalysisUpsertBulk) ClearModel() *SuperAnalysisUpsertBulk {
	return u.Update(func(s *SuperAnalysisUpsert) {
		s.ClearModel()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SuperAnalysisUpsertBulk) SetUpdatedAt(v time.Time) *SuperAnalysisUpsertBulk {
	return u.Update(func(s *SuperAnalysisUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SuperAnalysisUpsertBulk) UpdateUpdatedAt() *SuperAnalysisUpsertBulk {
	return u.Update(func(s *SuperAnalysisUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SuperAnalysisUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SuperAnalysisCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SuperAnalysisCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SuperAnalysisUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
