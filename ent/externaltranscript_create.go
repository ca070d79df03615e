// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recapd/recapd/ent/externaltranscript"
)

// ExternalTranscriptCreate is the builder for creating a ExternalTranscript entity.
type ExternalTranscriptCreate struct {
	config
	mutation *ExternalTranscriptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (_c *ExternalTranscriptCreate) SetTitle(v string) *ExternalTranscriptCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ExternalTranscriptCreate) SetNillableTitle(v *string) *ExternalTranscriptCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *ExternalTranscriptCreate) SetContent(v string) *ExternalTranscriptCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExternalTranscriptCreate) SetCreatedAt(v time.Time) *ExternalTranscriptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExternalTranscriptCreate) SetNillableCreatedAt(v *time.Time) *ExternalTranscriptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExternalTranscriptCreate) SetID(v string) *ExternalTranscriptCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ExternalTranscriptMutation object of the builder.
func (_c *ExternalTranscriptCreate) Mutation() *ExternalTranscriptMutation {
	return _c.mutation
}

// Save creates the ExternalTranscript in the database.
func (_c *ExternalTranscriptCreate) Save(ctx context.Context) (*ExternalTranscript, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExternalTranscriptCreate) SaveX(ctx context.Context) *ExternalTranscript {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExternalTranscriptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExternalTranscriptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExternalTranscriptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := externaltranscript.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExternalTranscriptCreate) check() error {
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ExternalTranscript.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExternalTranscript.created_at"`)}
	}
	return nil
}

func (_c *ExternalTranscriptCreate) sqlSave(ctx context.Context) (*ExternalTranscript, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ExternalTranscript.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExternalTranscriptCreate) createSpec() (*ExternalTranscript, *sqlgraph.CreateSpec) {
	var (
		_node = &ExternalTranscript{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(externaltranscript.Table, sqlgraph.NewFieldSpec(externaltranscript.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(externaltranscript.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(externaltranscript.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(externaltranscript.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExternalTranscript.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExternalTranscriptUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *ExternalTranscriptCreate) OnConflict(opts ...sql.ConflictOption) *ExternalTranscriptUpsertOne {
	_c.conflict = opts
	return &ExternalTranscriptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExternalTranscript.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExternalTranscriptCreate) OnConflictColumns(columns ...string) *ExternalTranscriptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExternalTranscriptUpsertOne{
		create: _c,
	}
}

type (
	// ExternalTranscriptUpsertOne is the builder for "upsert"-ing
	//  one ExternalTranscript node.
	ExternalTranscriptUpsertOne struct {
		create *ExternalTranscriptCreate
	}

	// ExternalTranscriptUpsert is the "OnConflict" setter.
	ExternalTranscriptUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *ExternalTranscriptUpsert) SetTitle(v string) *ExternalTranscriptUpsert {
	u.Set(externaltranscript.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ExternalTranscriptUpsert) UpdateTitle() *ExternalTranscriptUpsert {
	u.SetExcluded(externaltranscript.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *ExternalTranscriptUpsert) ClearTitle() *ExternalTranscriptUpsert {
	u.SetNull(externaltranscript.FieldTitle)
	return u
}

// SetContent sets the "content" field.
func (u *ExternalTranscriptUpsert) SetContent(v string) *ExternalTranscriptUpsert {
	u.Set(externaltranscript.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ExternalTranscriptUpsert) UpdateContent() *ExternalTranscriptUpsert {
	u.SetExcluded(externaltranscript.FieldContent)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ExternalTranscript.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(externaltranscript.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExternalTranscriptUpsertOne) UpdateNewValues() *ExternalTranscriptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(externaltranscript.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(externaltranscript.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExternalTranscript.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExternalTranscriptUpsertOne) Ignore() *ExternalTranscriptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExternalTranscriptUpsertOne) DoNothing() *ExternalTranscriptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExternalTranscriptCreate.OnConflict
// documentation for more info.
func (u *ExternalTranscriptUpsertOne) Update(set func(*ExternalTranscriptUpsert)) *ExternalTranscriptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExternalTranscriptUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ExternalTranscriptUpsertOne) SetTitle(v string) *ExternalTranscriptUpsertOne {
	return u.Update(func(s *ExternalTranscriptUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ExternalTranscriptUpsertOne) UpdateTitle() *ExternalTranscriptUpsertOne {
	return u.Update(func(s *ExternalTranscriptUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *ExternalTranscriptUpsertOne) ClearTitle() *ExternalTranscriptUpsertOne {
	return u.Update(func(s *ExternalTranscriptUpsert) {
		s.ClearTitle()
	})
}

// SetContent sets the "content" field.
func (u *ExternalTranscriptUpsertOne) SetContent(v string) *ExternalTranscriptUpsertOne {
	return u.Update(func(s *ExternalTranscriptUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ExternalTranscriptUpsertOne) UpdateContent() *ExternalTranscriptUpsertOne {
	return u.Update(func(s *ExternalTranscriptUpsert) {
		s.UpdateContent()
	})
}

// Exec executes the query.
func (u *ExternalTranscriptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExternalTranscriptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExternalTranscriptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExternalTranscriptUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExternalTranscriptUpsertOne.ID is not supported by MySQL driver. Use ExternalTranscriptUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExternalTranscriptUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExternalTranscriptCreateBulk is the builder for creating many ExternalTranscript entities in bulk.
type ExternalTranscriptCreateBulk struct {
	config
	err      error
	builders []*ExternalTranscriptCreate
	conflict []sql.ConflictOption
}

// Save creates the ExternalTranscript entities in the database.
func (_c *ExternalTranscriptCreateBulk) Save(ctx context.Context) ([]*ExternalTranscript, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExternalTranscript, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExternalTranscriptMutation)
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
func (_c *ExternalTranscriptCreateBulk) SaveX(ctx context.Context) []*ExternalTranscript {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExternalTranscriptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExternalTranscriptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExternalTranscript.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExternalTranscriptUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *ExternalTranscriptCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExternalTranscriptUpsertBulk {
	_c.conflict = opts
	return &ExternalTranscriptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExternalTranscript.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExternalTranscriptCreateBulk) OnConflictColumns(columns ...string) *ExternalTranscriptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExternalTranscriptUpsertBulk{
		create: _c,
	}
}

// ExternalTranscriptUpsertBulk is the builder for "upsert"-ing
// a bulk of ExternalTranscript nodes.
type ExternalTranscriptUpsertBulk struct {
	create *ExternalTranscriptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExternalTranscript.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(externaltranscript.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExternalTranscriptUpsertBulk) UpdateNewValues() *ExternalTranscriptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(externaltranscript.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(externaltranscript.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExternalTranscript.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExternalTranscriptUpsertBulk) Ignore() *ExternalTranscriptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExternalTranscriptUpsertBulk) DoNothing() *ExternalTranscriptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExternalTranscriptCreateBulk.OnConflict
// documentation for more info.
func (u *ExternalTranscriptUpsertBulk) Update(set func(*ExternalTranscriptUpsert)) *ExternalTranscriptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExternalTranscriptUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ExternalTranscriptUpsertBulk) SetTitle(v string) *ExternalTranscriptUpsertBulk {
	return u.Update(func(s *ExternalTranscriptUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ExternalTranscriptUpsertBulk) UpdateTitle() *ExternalTranscriptUpsertBulk {
	return u.Update(func(s *ExternalTranscriptUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *ExternalTranscriptUpsertBulk) ClearTitle() *ExternalTranscriptUpsertBulk {
	return u.Update(func(s *ExternalTranscriptUpsert) {
		s.ClearTitle()
	})
}

// SetContent sets the "content" field.
func (u *ExternalTranscriptUpsertBulk) SetContent(v string) *ExternalTranscriptUpsertBulk {
	return u.Update(func(s *ExternalTranscriptUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ExternalTranscriptUpsertBulk) UpdateContent() *ExternalTranscriptUpsertBulk {
	return u.Update(func(s *ExternalTranscriptUpsert) {
		s.UpdateContent()
	})
}

// Exec executes the query.
func (u *ExternalTranscriptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExternalTranscriptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExternalTranscriptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExternalTranscriptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
