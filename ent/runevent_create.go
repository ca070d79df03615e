// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recapd/recapd/ent/runevent"
	"github.com/recapd/recapd/ent/workflowrun"
)

// RunEventCreate is the builder for creating a RunEvent entity.
type RunEventCreate struct {
	config
	mutation *RunEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRunID sets the "run_id" field.
func (_c *RunEventCreate) SetRunID(v string) *RunEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetIndex sets the "index" field.
func (_c *RunEventCreate) SetIndex(v int) *RunEventCreate {
	_c.mutation.SetIndex(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *RunEventCreate) SetKind(v runevent.Kind) *RunEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *RunEventCreate) SetStepID(v string) *RunEventCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableStepID(v *string) *RunEventCreate {
	if v != nil {
		_c.SetStepID(*v)
	}
	return _c
}

// SetCallOrdinal sets the "call_ordinal" field.
func (_c *RunEventCreate) SetCallOrdinal(v int) *RunEventCreate {
	_c.mutation.SetCallOrdinal(v)
	return _c
}

// SetNillableCallOrdinal sets the "call_ordinal" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableCallOrdinal(v *int) *RunEventCreate {
	if v != nil {
		_c.SetCallOrdinal(*v)
	}
	return _c
}

// SetNamespace sets the "namespace" field.
func (_c *RunEventCreate) SetNamespace(v string) *RunEventCreate {
	_c.mutation.SetNamespace(v)
	return _c
}

// SetNillableNamespace sets the "namespace" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableNamespace(v *string) *RunEventCreate {
	if v != nil {
		_c.SetNamespace(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *RunEventCreate) SetPayload(v json.RawMessage) *RunEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetRetriable sets the "retriable" field.
func (_c *RunEventCreate) SetRetriable(v bool) *RunEventCreate {
	_c.mutation.SetRetriable(v)
	return _c
}

// SetNillableRetriable sets the "retriable" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableRetriable(v *bool) *RunEventCreate {
	if v != nil {
		_c.SetRetriable(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunEventCreate) SetCreatedAt(v time.Time) *RunEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableCreatedAt(v *time.Time) *RunEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRun sets the "run" edge to the WorkflowRun entity.
func (_c *RunEventCreate) SetRun(v *WorkflowRun) *RunEventCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the RunEventMutation object of the builder.
func (_c *RunEventCreate) Mutation() *RunEventMutation {
	return _c.mutation
}

// Save creates the RunEvent in the database.
func (_c *RunEventCreate) Save(ctx context.Context) (*RunEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunEventCreate) SaveX(ctx context.Context) *RunEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := runevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunEventCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "RunEvent.run_id"`)}
	}
	if _, ok := _c.mutation.Index(); !ok {
		return &ValidationError{Name: "index", err: errors.New(`ent: missing required field "RunEvent.index"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "RunEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := runevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "RunEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RunEvent.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "RunEvent.run"`)}
	}
	return nil
}

func (_c *RunEventCreate) sqlSave(ctx context.Context) (*RunEvent, error) {
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

func (_c *RunEventCreate) createSpec() (*RunEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RunEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runevent.Table, sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Index(); ok {
		_spec.SetField(runevent.FieldIndex, field.TypeInt, value)
		_node.Index = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(runevent.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(runevent.FieldStepID, field.TypeString, value)
		_node.StepID = value
	}
	if value, ok := _c.mutation.CallOrdinal(); ok {
		_spec.SetField(runevent.FieldCallOrdinal, field.TypeInt, value)
		_node.CallOrdinal = value
	}
	if value, ok := _c.mutation.Namespace(); ok {
		_spec.SetField(runevent.FieldNamespace, field.TypeString, value)
		_node.Namespace = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(runevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Retriable(); ok {
		_spec.SetField(runevent.FieldRetriable, field.TypeBool, value)
		_node.Retriable = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(runevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   runevent.RunTable,
			Columns: []string{runevent.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RunEvent.Create().
//		SetRunID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunEventUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunEventCreate) OnConflict(opts ...sql.ConflictOption) *RunEventUpsertOne {
	_c.conflict = opts
	return &RunEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RunEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunEventCreate) OnConflictColumns(columns ...string) *RunEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunEventUpsertOne{
		create: _c,
	}
}

type (
	// RunEventUpsertOne is the builder for "upsert"-ing
	//  one RunEvent node.
	RunEventUpsertOne struct {
		create *RunEventCreate
	}

	// RunEventUpsert is the "OnConflict" setter.
	RunEventUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.RunEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RunEventUpsertOne) UpdateNewValues() *RunEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(runevent.FieldRunID)
		}
		if _, exists := u.create.mutation.Index(); exists {
			s.SetIgnore(runevent.FieldIndex)
		}
		if _, exists := u.create.mutation.Kind(); exists {
			s.SetIgnore(runevent.FieldKind)
		}
		if _, exists := u.create.mutation.StepID(); exists {
			s.SetIgnore(runevent.FieldStepID)
		}
		if _, exists := u.create.mutation.CallOrdinal(); exists {
			s.SetIgnore(runevent.FieldCallOrdinal)
		}
		if _, exists := u.create.mutation.Namespace(); exists {
			s.SetIgnore(runevent.FieldNamespace)
		}
		if _, exists := u.create.mutation.Payload(); exists {
			s.SetIgnore(runevent.FieldPayload)
		}
		if _, exists := u.create.mutation.Retriable(); exists {
			s.SetIgnore(runevent.FieldRetriable)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(runevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RunEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RunEventUpsertOne) Ignore() *RunEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunEventUpsertOne) DoNothing() *RunEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunEventCreate.OnConflict
// documentation for more info.
func (u *RunEventUpsertOne) Update(set func(*RunEventUpsert)) *RunEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunEventUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *RunEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RunEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RunEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RunEventCreateBulk is the builder for creating many RunEvent entities in bulk.
type RunEventCreateBulk struct {
	config
	err      error
	builders []*RunEventCreate
	conflict []sql.ConflictOption
}

// Save creates the RunEvent entities in the database.
func (_c *RunEventCreateBulk) Save(ctx context.Context) ([]*RunEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunEventMutation)
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
func (_c *RunEventCreateBulk) SaveX(ctx context.Context) []*RunEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RunEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunEventUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *RunEventUpsertBulk {
	_c.conflict = opts
	return &RunEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RunEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunEventCreateBulk) OnConflictColumns(columns ...string) *RunEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunEventUpsertBulk{
		create: _c,
	}
}

// RunEventUpsertBulk is the builder for "upsert"-ing
// a bulk of RunEvent nodes.
type RunEventUpsertBulk struct {
	create *RunEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RunEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RunEventUpsertBulk) UpdateNewValues() *RunEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(runevent.FieldRunID)
			}
			if _, exists := b.mutation.Index(); exists {
				s.SetIgnore(runevent.FieldIndex)
			}
			if _, exists := b.mutation.Kind(); exists {
				s.SetIgnore(runevent.FieldKind)
			}
			if _, exists := b.mutation.StepID(); exists {
				s.SetIgnore(runevent.FieldStepID)
			}
			if _, exists := b.mutation.CallOrdinal(); exists {
				s.SetIgnore(runevent.FieldCallOrdinal)
			}
			if _, exists := b.mutation.Namespace(); exists {
				s.SetIgnore(runevent.FieldNamespace)
			}
			if _, exists := b.mutation.Payload(); exists {
				s.SetIgnore(runevent.FieldPayload)
			}
			if _, exists := b.mutation.Retriable(); exists {
				s.SetIgnore(runevent.FieldRetriable)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(runevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RunEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RunEventUpsertBulk) Ignore() *RunEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunEventUpsertBulk) DoNothing() *RunEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunEventCreateBulk.OnConflict
// documentation for more info.
func (u *RunEventUpsertBulk) Update(set func(*RunEventUpsert)) *RunEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunEventUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *RunEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RunEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
