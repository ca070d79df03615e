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
	"github.com/recapd/recapd/ent/slideextraction"
)

// SlideExtractionCreate is the builder for creating a SlideExtraction entity.
type SlideExtractionCreate struct {
	config
	mutation *SlideExtractionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetVideoID sets the "video_id" field.
func (_c *SlideExtractionCreate) SetVideoID(v string) *SlideExtractionCreate {
	_c.mutation.SetVideoID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SlideExtractionCreate) SetStatus(v slideextraction.Status) *SlideExtractionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SlideExtractionCreate) SetNillableStatus(v *slideextraction.Status) *SlideExtractionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *SlideExtractionCreate) SetRunID(v string) *SlideExtractionCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *SlideExtractionCreate) SetNillableRunID(v *string) *SlideExtractionCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetTotalSlides sets the "total_slides" field.
func (_c *SlideExtractionCreate) SetTotalSlides(v int) *SlideExtractionCreate {
	_c.mutation.SetTotalSlides(v)
	return _c
}

// SetNillableTotalSlides sets the "total_slides" field if the given value is not nil.
func (_c *SlideExtractionCreate) SetNillableTotalSlides(v *int) *SlideExtractionCreate {
	if v != nil {
		_c.SetTotalSlides(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SlideExtractionCreate) SetErrorMessage(v string) *SlideExtractionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SlideExtractionCreate) SetNillableErrorMessage(v *string) *SlideExtractionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SlideExtractionCreate) SetCreatedAt(v time.Time) *SlideExtractionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SlideExtractionCreate) SetNillableCreatedAt(v *time.Time) *SlideExtractionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SlideExtractionCreate) SetUpdatedAt(v time.Time) *SlideExtractionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SlideExtractionCreate) SetNillableUpdatedAt(v *time.Time) *SlideExtractionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SlideExtractionMutation object of the builder.
func (_c *SlideExtractionCreate) Mutation() *SlideExtractionMutation {
	return _c.mutation
}

// Save creates the SlideExtraction in the database.
func (_c *SlideExtractionCreate) Save(ctx context.Context) (*SlideExtraction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SlideExtractionCreate) SaveX(ctx context.Context) *SlideExtraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SlideExtractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SlideExtractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SlideExtractionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := slideextraction.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalSlides(); !ok {
		v := slideextraction.DefaultTotalSlides
		_c.mutation.SetTotalSlides(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := slideextraction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := slideextraction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SlideExtractionCreate) check() error {
	if _, ok := _c.mutation.VideoID(); !ok {
		return &ValidationError{Name: "video_id", err: errors.New(`ent: missing required field "SlideExtraction.video_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SlideExtraction.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := slideextraction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SlideExtraction.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalSlides(); !ok {
		return &ValidationError{Name: "total_slides", err: errors.New(`ent: missing required field "SlideExtraction.total_slides"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SlideExtraction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SlideExtraction.updated_at"`)}
	}
	return nil
}

func (_c *SlideExtractionCreate) sqlSave(ctx context.Context) (*SlideExtraction, error) {
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

func (_c *SlideExtractionCreate) createSpec() (*SlideExtraction, *sqlgraph.CreateSpec) {
	var (
		_node = &SlideExtraction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(slideextraction.Table, sqlgraph.NewFieldSpec(slideextraction.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.VideoID(); ok {
		_spec.SetField(slideextraction.FieldVideoID, field.TypeString, value)
		_node.VideoID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(slideextraction.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(slideextraction.FieldRunID, field.TypeString, value)
		_node.RunID = &value
	}
	if value, ok := _c.mutation.TotalSlides(); ok {
		_spec.SetField(slideextraction.FieldTotalSlides, field.TypeInt, value)
		_node.TotalSlides = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(slideextraction.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(slideextraction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(slideextraction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SlideExtraction.Create().
//		SetVideoID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SlideExtractionUpsert) {
//			SetVideoID(v+v).
//		}).
//		Exec(ctx)
func (_c *SlideExtractionCreate) OnConflict(opts ...sql.ConflictOption) *SlideExtractionUpsertOne {
	_c.conflict = opts
	return &SlideExtractionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SlideExtraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SlideExtractionCreate) OnConflictColumns(columns ...string) *SlideExtractionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SlideExtractionUpsertOne{
		create: _c,
	}
}

type (
	// SlideExtractionUpsertOne is the builder for "upsert"-ing
	//  one SlideExtraction node.
	SlideExtractionUpsertOne struct {
		create *SlideExtractionCreate
	}

	// SlideExtractionUpsert is the "OnConflict" setter.
	SlideExtractionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *SlideExtractionUpsert) SetStatus(v slideextraction.Status) *SlideExtractionUpsert {
	u.Set(slideextraction.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SlideExtractionUpsert) UpdateStatus() *SlideExtractionUpsert {
	u.SetExcluded(slideextraction.FieldStatus)
	return u
}

// SetRunID sets the "run_id" field.
func (u *SlideExtractionUpsert) SetRunID(v string) *SlideExtractionUpsert {
	u.Set(slideextraction.FieldRunID, v)
	return u
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *SlideExtractionUpsert) UpdateRunID() *SlideExtractionUpsert {
	u.SetExcluded(slideextraction.FieldRunID)
	return u
}

// ClearRunID clears the value of the "run_id" field.
func (u *SlideExtractionUpsert) ClearRunID() *SlideExtractionUpsert {
	u.SetNull(slideextraction.FieldRunID)
	return u
}

// SetTotalSlides sets the "total_slides" field.
func (u *SlideExtractionUpsert) SetTotalSlides(v int) *SlideExtractionUpsert {
	u.Set(slideextraction.FieldTotalSlides, v)
	return u
}

// UpdateTotalSlides sets the "total_slides" field to the value that was provided on create.
func (u *SlideExtractionUpsert) UpdateTotalSlides() *SlideExtractionUpsert {
	u.SetExcluded(slideextraction.FieldTotalSlides)
	return u
}

// AddTotalSlides adds v to the "total_slides" field.
func (u *SlideExtractionUpsert) AddTotalSlides(v int) *SlideExtractionUpsert {
	u.Add(slideextraction.FieldTotalSlides, v)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *SlideExtractionUpsert) SetErrorMessage(v string) *SlideExtractionUpsert {
	u.Set(slideextraction.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SlideExtractionUpsert) UpdateErrorMessage() *SlideExtractionUpsert {
	u.SetExcluded(slideextraction.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SlideExtractionUpsert) ClearErrorMessage() *SlideExtractionUpsert {
	u.SetNull(slideextraction.FieldErrorMessage)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SlideExtractionUpsert) SetUpdatedAt(v time.Time) *SlideExtractionUpsert {
	u.Set(slideextraction.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SlideExtractionUpsert) UpdateUpdatedAt() *SlideExtractionUpsert {
	u.SetExcluded(slideextraction.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SlideExtraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SlideExtractionUpsertOne) UpdateNewValues() *SlideExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.VideoID(); exists {
			s.SetIgnore(slideextraction.FieldVideoID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(slideextraction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SlideExtraction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SlideExtractionUpsertOne) Ignore() *SlideExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SlideExtractionUpsertOne) DoNothing() *SlideExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SlideExtractionCreate.OnConflict
// documentation for more info.
func (u *SlideExtractionUpsertOne) Update(set func(*SlideExtractionUpsert)) *SlideExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SlideExtractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *SlideExtractionUpsertOne) SetStatus(v slideextraction.Status) *SlideExtractionUpsertOne {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SlideExtractionUpsertOne) UpdateStatus() *SlideExtractionUpsertOne {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.UpdateStatus()
	})
}

// SetRunID sets the "run_id" field.
func (u *SlideExtractionUpsertOne) SetRunID(v string) *SlideExtractionUpsertOne {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *SlideExtractionUpsertOne) UpdateRunID() *SlideExtractionUpsertOne {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.UpdateRunID()
	})
}

// ClearRunID clears the value of the "run_id" field.
func (u *SlideExtractionUpsertOne) ClearRunID() *SlideExtractionUpsertOne {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.ClearRunID()
	})
}

// SetTotalSlides sets the "total_slides" field.
func (u *SlideExtractionUpsertOne) SetTotalSlides(v int) *SlideExtractionUpsertOne {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.SetTotalSlides(v)
	})
}

// AddTotalSlides adds v to the "total_slides" field.
func (u *SlideExtractionUpsertOne) AddTotalSlides(v int) *SlideExtractionUpsertOne {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.AddTotalSlides(v)
	})
}

// UpdateTotalSlides sets the "total_slides" field to the value that was provided on create.
func (u *SlideExtractionUpsertOne) UpdateTotalSlides() *SlideExtractionUpsertOne {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.UpdateTotalSlides()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *SlideExtractionUpsertOne) SetErrorMessage(v string) *SlideExtractionUpsertOne {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SlideExtractionUpsertOne) UpdateErrorMessage() *SlideExtractionUpsertOne {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SlideExtractionUpsertOne) ClearErrorMessage() *SlideExtractionUpsertOne {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SlideExtractionUpsertOne) SetUpdatedAt(v time.Time) *SlideExtractionUpsertOne {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SlideExtractionUpsertOne) UpdateUpdatedAt() *SlideExtractionUpsertOne {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SlideExtractionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SlideExtractionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SlideExtractionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SlideExtractionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SlideExtractionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SlideExtractionCreateBulk is the builder for creating many SlideExtraction entities in bulk.
type SlideExtractionCreateBulk struct {
	config
	err      error
	builders []*SlideExtractionCreate
	conflict []sql.ConflictOption
}

// Save creates the SlideExtraction entities in the database.
func (_c *SlideExtractionCreateBulk) Save(ctx context.Context) ([]*SlideExtraction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SlideExtraction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SlideExtractionMutation)
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
func (_c *SlideExtractionCreateBulk) SaveX(ctx context.Context) []*SlideExtraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SlideExtractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SlideExtractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SlideExtraction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SlideExtractionUpsert) {
//			SetVideoID(v+v).
//		}).
//		Exec(ctx)
func (_c *SlideExtractionCreateBulk) OnConflict(opts ...sql.ConflictOption) *SlideExtractionUpsertBulk {
	_c.conflict = opts
	return &SlideExtractionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SlideExtraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SlideExtractionCreateBulk) OnConflictColumns(columns ...string) *SlideExtractionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SlideExtractionUpsertBulk{
		create: _c,
	}
}

// SlideExtractionUpsertBulk is the builder for "upsert"-ing
// a bulk of SlideExtraction nodes.
type SlideExtractionUpsertBulk struct {
	create *SlideExtractionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SlideExtraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SlideExtractionUpsertBulk) UpdateNewValues() *SlideExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.VideoID(); exists {
				s.SetIgnore(slideextraction.FieldVideoID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(slideextraction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SlideExtraction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SlideExtractionUpsertBulk) Ignore() *SlideExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SlideExtractionUpsertBulk) DoNothing() *SlideExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SlideExtractionCreateBulk.OnConflict
// documentation for more info.
func (u *SlideExtractionUpsertBulk) Update(set func(*SlideExtractionUpsert)) *SlideExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SlideExtractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *SlideExtractionUpsertBulk) SetStatus(v slideextraction.Status) *SlideExtractionUpsertBulk {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SlideExtractionUpsertBulk) UpdateStatus() *SlideExtractionUpsertBulk {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.UpdateStatus()
	})
}

// SetRunID sets the "run_id" field.
func (u *SlideExtractionUpsertBulk) SetRunID(v string) *SlideExtractionUpsertBulk {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.SetRunID(v)
	})
}

// UpdateRunID sets the "run_id" field to the value that was provided on create.
func (u *SlideExtractionUpsertBulk) UpdateRunID() *SlideExtractionUpsertBulk {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.UpdateRunID()
	})
}

// ClearRunID clears the value of the "run_id" field.
func (u *SlideExtractionUpsertBulk) ClearRunID() *SlideExtractionUpsertBulk {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.ClearRunID()
	})
}

// SetTotalSlides sets the "total_slides" field.
func (u *SlideExtractionUpsertBulk) SetTotalSlides(v int) *SlideExtractionUpsertBulk {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.SetTotalSlides(v)
	})
}

// AddTotalSlides adds v to the "total_slides" field.
func (u *SlideExtractionUpsertBulk) AddTotalSlides(v int) *SlideExtractionUpsertBulk {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.AddTotalSlides(v)
	})
}

// UpdateTotalSlides sets the "total_slides" field to the value that was provided on create.
func (u *SlideExtractionUpsertBulk) UpdateTotalSlides() *SlideExtractionUpsertBulk {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.UpdateTotalSlides()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *SlideExtractionUpsertBulk) SetErrorMessage(v string) *SlideExtractionUpsertBulk {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SlideExtractionUpsertBulk) UpdateErrorMessage() *SlideExtractionUpsertBulk {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SlideExtractionUpsertBulk) ClearErrorMessage() *SlideExtractionUpsertBulk {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SlideExtractionUpsertBulk) SetUpdatedAt(v time.Time) *SlideExtractionUpsertBulk {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SlideExtractionUpsertBulk) UpdateUpdatedAt() *SlideExtractionUpsertBulk {
	return u.Update(func(s *SlideExtractionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SlideExtractionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SlideExtractionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SlideExtractionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SlideExtractionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
