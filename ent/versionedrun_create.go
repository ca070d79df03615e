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
	"github.com/recapd/recapd/ent/versionedrun"
)

// VersionedRunCreate is the builder for creating a VersionedRun entity.
type VersionedRunCreate struct {
	config
	mutation *VersionedRunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetResourceKind sets the "resource_kind" field.
func (_c *VersionedRunCreate) SetResourceKind(v versionedrun.ResourceKind) *VersionedRunCreate {
	_c.mutation.SetResourceKind(v)
	return _c
}

// SetResourceID sets the "resource_id" field.
func (_c *VersionedRunCreate) SetResourceID(v string) *VersionedRunCreate {
	_c.mutation.SetResourceID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *VersionedRunCreate) SetVersion(v int) *VersionedRunCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *VersionedRunCreate) SetStatus(v versionedrun.Status) *VersionedRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *VersionedRunCreate) SetNillableStatus(v *versionedrun.Status) *VersionedRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetWorkflowRunID sets the "workflow_run_id" field.
func (_c *VersionedRunCreate) SetWorkflowRunID(v string) *VersionedRunCreate {
	_c.mutation.SetWorkflowRunID(v)
	return _c
}

// SetNillableWorkflowRunID sets the "workflow_run_id" field if the given value is not nil.
func (_c *VersionedRunCreate) SetNillableWorkflowRunID(v *string) *VersionedRunCreate {
	if v != nil {
		_c.SetWorkflowRunID(*v)
	}
	return _c
}

// SetNamespace sets the "namespace" field.
func (_c *VersionedRunCreate) SetNamespace(v string) *VersionedRunCreate {
	_c.mutation.SetNamespace(v)
	return _c
}

// SetNillableNamespace sets the "namespace" field if the given value is not nil.
func (_c *VersionedRunCreate) SetNillableNamespace(v *string) *VersionedRunCreate {
	if v != nil {
		_c.SetNamespace(*v)
	}
	return _c
}

// SetAdditionalInstructions sets the "additional_instructions" field.
func (_c *VersionedRunCreate) SetAdditionalInstructions(v string) *VersionedRunCreate {
	_c.mutation.SetAdditionalInstructions(v)
	return _c
}

// SetNillableAdditionalInstructions sets the "additional_instructions" field if the given value is not nil.
func (_c *VersionedRunCreate) SetNillableAdditionalInstructions(v *string) *VersionedRunCreate {
	if v != nil {
		_c.SetAdditionalInstructions(*v)
	}
	return _c
}

// SetResultJSON sets the "result_json" field.
func (_c *VersionedRunCreate) SetResultJSON(v json.RawMessage) *VersionedRunCreate {
	_c.mutation.SetResultJSON(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *VersionedRunCreate) SetErrorMessage(v string) *VersionedRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *VersionedRunCreate) SetNillableErrorMessage(v *string) *VersionedRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VersionedRunCreate) SetCreatedAt(v time.Time) *VersionedRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VersionedRunCreate) SetNillableCreatedAt(v *time.Time) *VersionedRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VersionedRunCreate) SetUpdatedAt(v time.Time) *VersionedRunCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VersionedRunCreate) SetNillableUpdatedAt(v *time.Time) *VersionedRunCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the VersionedRunMutation object of the builder.
func (_c *VersionedRunCreate) Mutation() *VersionedRunMutation {
	return _c.mutation
}

// Save creates the VersionedRun in the database.
func (_c *VersionedRunCreate) Save(ctx context.Context) (*VersionedRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VersionedRunCreate) SaveX(ctx context.Context) *VersionedRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VersionedRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VersionedRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VersionedRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := versionedrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := versionedrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := versionedrun.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VersionedRunCreate) check() error {
	if _, ok := _c.mutation.ResourceKind(); !ok {
		return &ValidationError{Name: "resource_kind", err: errors.New(`ent: missing required field "VersionedRun.resource_kind"`)}
	}
	if v, ok := _c.mutation.ResourceKind(); ok {
		if err := versionedrun.ResourceKindValidator(v); err != nil {
			return &ValidationError{Name: "resource_kind", err: fmt.Errorf(`ent: validator failed for field "VersionedRun.resource_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResourceID(); !ok {
		return &ValidationError{Name: "resource_id", err: errors.New(`ent: missing required field "VersionedRun.resource_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "VersionedRun.version"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "VersionedRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := versionedrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VersionedRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VersionedRun.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "VersionedRun.updated_at"`)}
	}
	return nil
}

func (_c *VersionedRunCreate) sqlSave(ctx context.Context) (*VersionedRun, error) {
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

func (_c *VersionedRunCreate) createSpec() (*VersionedRun, *sqlgraph.CreateSpec) {
	var (
		_node = &VersionedRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(versionedrun.Table, sqlgraph.NewFieldSpec(versionedrun.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.ResourceKind(); ok {
		_spec.SetField(versionedrun.FieldResourceKind, field.TypeEnum, value)
		_node.ResourceKind = value
	}
	if value, ok := _c.mutation.ResourceID(); ok {
		_spec.SetField(versionedrun.FieldResourceID, field.TypeString, value)
		_node.ResourceID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(versionedrun.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(versionedrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.WorkflowRunID(); ok {
		_spec.SetField(versionedrun.FieldWorkflowRunID, field.TypeString, value)
		_node.WorkflowRunID = &value
	}
	if value, ok := _c.mutation.Namespace(); ok {
		_spec.SetField(versionedrun.FieldNamespace, field.TypeString, value)
		_node.Namespace = value
	}
	if value, ok := _c.mutation.AdditionalInstructions(); ok {
		_spec.SetField(versionedrun.FieldAdditionalInstructions, field.TypeString, value)
		_node.AdditionalInstructions = value
	}
	if value, ok := _c.mutation.ResultJSON(); ok {
		_spec.SetField(versionedrun.FieldResultJSON, field.TypeJSON, value)
		_node.ResultJSON = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(versionedrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(versionedrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(versionedrun.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VersionedRun.Create().
//		SetResourceKind(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VersionedRunUpsert) {
//			SetResourceKind(v+v).
//		}).
//		Exec(ctx)
func (_c *VersionedRunCreate) OnConflict(opts ...sql.ConflictOption) *VersionedRunUpsertOne {
	_c.conflict = opts
	return &VersionedRunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VersionedRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VersionedRunCreate) OnConflictColumns(columns ...string) *VersionedRunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VersionedRunUpsertOne{
		create: _c,
	}
}

type (
	// VersionedRunUpsertOne is the builder for "upsert"-ing
	//  one VersionedRun node.
	VersionedRunUpsertOne struct {
		create *VersionedRunCreate
	}

	// VersionedRunUpsert is the "OnConflict" setter.
	VersionedRunUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *VersionedRunUpsert) SetStatus(v versionedrun.Status) *VersionedRunUpsert {
	u.Set(versionedrun.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *VersionedRunUpsert) UpdateStatus() *VersionedRunUpsert {
	u.SetExcluded(versionedrun.FieldStatus)
	return u
}

// SetWorkflowRunID sets the "workflow_run_id" field.
func (u *VersionedRunUpsert) SetWorkflowRunID(v string) *VersionedRunUpsert {
	u.Set(versionedrun.FieldWorkflowRunID, v)
	return u
}

// UpdateWorkflowRunID sets the "workflow_run_id" field to the value that was provided on create.
func (u *VersionedRunUpsert) UpdateWorkflowRunID() *VersionedRunUpsert {
	u.SetExcluded(versionedrun.FieldWorkflowRunID)
	return u
}

// ClearWorkflowRunID clears the value of the "workflow_run_id" field.
func (u *VersionedRunUpsert) ClearWorkflowRunID() *VersionedRunUpsert {
	u.SetNull(versionedrun.FieldWorkflowRunID)
	return u
}

// SetNamespace sets the "namespace" field.
func (u *VersionedRunUpsert) SetNamespace(v string) *VersionedRunUpsert {
	u.Set(versionedrun.FieldNamespace, v)
	return u
}

// UpdateNamespace sets the "namespace" field to the value that was provided on create.
func (u *VersionedRunUpsert) UpdateNamespace() *VersionedRunUpsert {
	u.SetExcluded(versionedrun.FieldNamespace)
	return u
}

// ClearNamespace clears the value of the "namespace" field.
func (u *VersionedRunUpsert) ClearNamespace() *VersionedRunUpsert {
	u.SetNull(versionedrun.FieldNamespace)
	return u
}

// SetAdditionalInstructions sets the "additional_instructions" field.
func (u *VersionedRunUpsert) SetAdditionalInstructions(v string) *VersionedRunUpsert {
	u.Set(versionedrun.FieldAdditionalInstructions, v)
	return u
}

// UpdateAdditionalInstructions sets the "additional_instructions" field to the value that was provided on create.
func (u *VersionedRunUpsert) UpdateAdditionalInstructions() *VersionedRunUpsert {
	u.SetExcluded(versionedrun.FieldAdditionalInstructions)
	return u
}

// ClearAdditionalInstructions clears the value of the "additional_instructions" field.
func (u *VersionedRunUpsert) ClearAdditionalInstructions() *VersionedRunUpsert {
	u.SetNull(versionedrun.FieldAdditionalInstructions)
	return u
}

// SetResultJSON sets the "result_json" field.
func (u *VersionedRunUpsert) SetResultJSON(v json.RawMessage) *VersionedRunUpsert {
	u.Set(versionedrun.FieldResultJSON, v)
	return u
}

// UpdateResultJSON sets the "result_json" field to the value that was provided on create.
func (u *VersionedRunUpsert) UpdateResultJSON() *VersionedRunUpsert {
	u.SetExcluded(versionedrun.FieldResultJSON)
	return u
}

// ClearResultJSON clears the value of the "result_json" field.
func (u *VersionedRunUpsert) ClearResultJSON() *VersionedRunUpsert {
	u.SetNull(versionedrun.FieldResultJSON)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *VersionedRunUpsert) SetErrorMessage(v string) *VersionedRunUpsert {
	u.Set(versionedrun.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *VersionedRunUpsert) UpdateErrorMessage() *VersionedRunUpsert {
	u.SetExcluded(versionedrun.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *VersionedRunUpsert) ClearErrorMessage() *VersionedRunUpsert {
	u.SetNull(versionedrun.FieldErrorMessage)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VersionedRunUpsert) SetUpdatedAt(v time.Time) *VersionedRunUpsert {
	u.Set(versionedrun.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VersionedRunUpsert) UpdateUpdatedAt() *VersionedRunUpsert {
	u.SetExcluded(versionedrun.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.VersionedRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *VersionedRunUpsertOne) UpdateNewValues() *VersionedRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ResourceKind(); exists {
			s.SetIgnore(versionedrun.FieldResourceKind)
		}
		if _, exists := u.create.mutation.ResourceID(); exists {
			s.SetIgnore(versionedrun.FieldResourceID)
		}
		if _, exists := u.create.mutation.Version(); exists {
			s.SetIgnore(versionedrun.FieldVersion)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(versionedrun.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VersionedRun.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VersionedRunUpsertOne) Ignore() *VersionedRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VersionedRunUpsertOne) DoNothing() *VersionedRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VersionedRunCreate.OnConflict
// documentation for more info.
func (u *VersionedRunUpsertOne) Update(set func(*VersionedRunUpsert)) *VersionedRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VersionedRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *VersionedRunUpsertOne) SetStatus(v versionedrun.Status) *VersionedRunUpsertOne {
	return u.Update(func(s *VersionedRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *VersionedRunUpsertOne) UpdateStatus() *VersionedRunUpsertOne {
	return u.Update(func(s *VersionedRunUpsert) {
		s.UpdateStatus()
	})
}

// SetWorkflowRunID sets the "workflow_run_id" field.
func (u *VersionedRunUpsertOne) SetWorkflowRunID(v string) *VersionedRunUpsertOne {
	return u.Update(func(s *VersionedRunUpsert) {
		s.SetWorkflowRunID(v)
	})
}

// UpdateWorkflowRunID sets the "workflow_run_id" field to the value that was provided on create.
func (u *VersionedRunUpsertOne) UpdateWorkflowRunID() *VersionedRunUpsertOne {
	return u.Update(func(s *VersionedRunUpsert) {
		s.UpdateWorkflowRunID()
	})
}

// ClearWorkflowRunID clears the value of the "workflow_run_id" field.
func (u *VersionedRunUpsertOne) ClearWorkflowRunID() *VersionedRunUpsertOne {
	return u.Update(func(s *VersionedRunUpsert) {
		s.ClearWorkflowRunID()
	})
}

// SetNamespace sets the "namespace" field.
func (u *VersionedRunUpsertOne) SetNamespace(v string) *VersionedRunUpsertOne {
	return u.Update(func(s *VersionedRunUpsert) {
		s.SetNamespace(v)
	})
}

// UpdateNamespace sets the "namespace" field to the value that was provided on create.
func (u *VersionedRunUpsertOne) UpdateNamespace() *VersionedRunUpsertOne {
	return u.Update(func(s *VersionedRunUpsert) {
		s.UpdateNamespace()
	})
}

// ClearNamespace clears the value of the "namespace" field.
func (u *VersionedRunUpsertOne) ClearNamespace() *VersionedRunUpsertOne {
	return u.Update(func(s *VersionedRunUpsert) {
		s.ClearNamespace()
	})
}

// SetAdditionalInstructions sets the "additional_instructions" field.
func (u *VersionedRunUpsertOne) SetAdditionalInstructions(v string) *VersionedRunUpsertOne {
	return u.Update(func(s *VersionedRunUpsert) {
		s.SetAdditionalInstructions(v)
	})
}

// UpdateAdditionalInstructions sets the "additional_instructions" field to the value that was provided on create.
func (u *VersionedRunUpsertOne) UpdateAdditionalInstructions() *VersionedRunUpsertOne {
	return u.Update(func(s *VersionedRunUpsert) {
		s.UpdateAdditionalInstructions()
	})
}

// ClearAdditionalInstructions clears the value of the "additional_instructions" field.
func (u *VersionedRunUpsertOne) ClearAdditionalInstructions() *VersionedRunUpsertOne {
	return u.Update(func(s *VersionedRunUpsert) {
		s.ClearAdditionalInstructions()
	})
}

// SetResultJSON sets the "result_json" field.
func (u *VersionedRunUpsertOne) SetResultJSON(v json.RawMessage) *VersionedRunUpsertOne {
	return u.Update(func(s *VersionedRunUpsert) {
		s.SetResultJSON(v)
	})
}

// UpdateResultJSON sets the "result_json" field to the value that was provided on create.
func (u *VersionedRunUpsertOne) UpdateResultJSON() *VersionedRunUpsertOne {
	return u.Update(func(s *VersionedRunUpsert) {
		s.UpdateResultJSON()
	})
}

// ClearResultJSON clears the value of the "result_json" field.
func (u *VersionedRunUpsertOne) ClearResultJSON() *VersionedRunUpsertOne {
	return u.Update(func(s *VersionedRunUpsert) {
		s.ClearResultJSON()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *VersionedRunUpsertOne) SetErrorMessage(v string) *VersionedRunUpsertOne {
	return u.Update(func(s *VersionedRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *VersionedRunUpsertOne) UpdateErrorMessage() *VersionedRunUpsertOne {
	return u.Update(func(s *VersionedRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *VersionedRunUpsertOne) ClearErrorMessage() *VersionedRunUpsertOne {
	return u.Update(func(s *VersionedRunUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VersionedRunUpsertOne) SetUpdatedAt(v time.Time) *VersionedRunUpsertOne {
	return u.Update(func(s *VersionedRunUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VersionedRunUpsertOne) UpdateUpdatedAt() *VersionedRunUpsertOne {
	return u.Update(func(s *VersionedRunUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *VersionedRunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VersionedRunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VersionedRunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VersionedRunUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VersionedRunUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VersionedRunCreateBulk is the builder for creating many VersionedRun entities in bulk.
type VersionedRunCreateBulk struct {
	config
	err      error
	builders []*VersionedRunCreate
	conflict []sql.ConflictOption
}

// Save creates the VersionedRun entities in the database.
func (_c *VersionedRunCreateBulk) Save(ctx context.Context) ([]*VersionedRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VersionedRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VersionedRunMutation)
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
func (_c *VersionedRunCreateBulk) SaveX(ctx context.Context) []*VersionedRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VersionedRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VersionedRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VersionedRun.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VersionedRunUpsert) {
//			SetResourceKind(v+v).
//		}).
//		Exec(ctx)
func (_c *VersionedRunCreateBulk) OnConflict(opts ...sql.ConflictOption) *VersionedRunUpsertBulk {
	_c.conflict = opts
	return &VersionedRunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VersionedRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VersionedRunCreateBulk) OnConflictColumns(columns ...string) *VersionedRunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VersionedRunUpsertBulk{
		create: _c,
	}
}

// VersionedRunUpsertBulk is the builder for "upsert"-ing
// a bulk of VersionedRun nodes.
type VersionedRunUpsertBulk struct {
	create *VersionedRunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.VersionedRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *VersionedRunUpsertBulk) UpdateNewValues() *VersionedRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ResourceKind(); exists {
				s.SetIgnore(versionedrun.FieldResourceKind)
			}
			if _, exists := b.mutation.ResourceID(); exists {
				s.SetIgnore(versionedrun.FieldResourceID)
			}
			if _, exists := b.mutation.Version(); exists {
				s.SetIgnore(versionedrun.FieldVersion)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(versionedrun.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VersionedRun.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VersionedRunUpsertBulk) Ignore() *VersionedRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VersionedRunUpsertBulk) DoNothing() *VersionedRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VersionedRunCreateBulk.OnConflict
// documentation for more info.
func (u *VersionedRunUpsertBulk) Update(set func(*VersionedRunUpsert)) *VersionedRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VersionedRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *VersionedRunUpsertBulk) SetStatus(v versionedrun.Status) *VersionedRunUpsertBulk {
	return u.Update(func(s *VersionedRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *VersionedRunUpsertBulk) UpdateStatus() *VersionedRunUpsertBulk {
	return u.Update(func(s *VersionedRunUpsert) {
		s.UpdateStatus()
	})
}

// SetWorkflowRunID sets the "workflow_run_id" field.
func (u *VersionedRunUpsertBulk) SetWorkflowRunID(v string) *VersionedRunUpsertBulk {
	return u.Update(func(s *VersionedRunUpsert) {
		s.SetWorkflowRunID(v)
	})
}

// UpdateWorkflowRunID sets the "workflow_run_id" field to the value that was provided on create.
func (u *VersionedRunUpsertBulk) UpdateWorkflowRunID() *VersionedRunUpsertBulk {
	return u.Update(func(s *VersionedRunUpsert) {
		s.UpdateWorkflowRunID()
	})
}

// ClearWorkflowRunID clears the value of the "workflow_run_id" field.
func (u *VersionedRunUpsertBulk) ClearWorkflowRunID() *VersionedRunUpsertBulk {
	return u.Update(func(s *VersionedRunUpsert) {
		s.ClearWorkflowRunID()
	})
}

// SetNamespace sets the "namespace" field.
func (u *VersionedRunUpsertBulk) SetNamespace(v string) *VersionedRunUpsertBulk {
	return u.Update(func(s *VersionedRunUpsert) {
		s.SetNamespace(v)
	})
}

// UpdateNamespace sets the "namespace" field to the value that was provided on create.
func (u *VersionedRunUpsertBulk) UpdateNamespace() *VersionedRunUpsertBulk {
	return u.Update(func(s *VersionedRunUpsert) {
		s.UpdateNamespace()
	})
}

// ClearNamespace clears the value of the "namespace" field.
func (u *VersionedRunUpsertBulk) ClearNamespace() *VersionedRunUpsertBulk {
	return u.Update(func(s *VersionedRunUpsert) {
		s.ClearNamespace()
	})
}

// SetAdditionalInstructions sets the "additional_instructions" field.
func (u *VersionedRunUpsertBulk) SetAdditionalInstructions(v string) *VersionedRunUpsertBulk {
	return u.Update(func(s *VersionedRunUpsert) {
		s.SetAdditionalInstructions(v)
	})
}

// UpdateAdditionalInstructions sets the "additional_instructions" field to the value that was provided on create.
func (u *VersionedRunUpsertBulk) UpdateAdditionalInstructions() *VersionedRunUpsertBulk {
	return u.Update(func(s *VersionedRunUpsert) {
		s.UpdateAdditionalInstructions()
	})
}

// ClearAdditionalInstructions clears the value of the "additional_instructions" field.
func (u *VersionedRunUpsertBulk) ClearAdditionalInstructions() *VersionedRunUpsertBulk {
	return u.Update(func(s *VersionedRunUpsert) {
		s.ClearAdditionalInstructions()
	})
}

// SetResultJSON sets the "result_json" field.
func (u *VersionedRunUpsertBulk) SetResultJSON(v json.RawMessage) *VersionedRunUpsertBulk {
	return u.Update(func(s *VersionedRunUpsert) {
		s.SetResultJSON(v)
	})
}

// UpdateResultJSON sets the "result_json" field to the value that was provided on create.
func (u *VersionedRunUpsertBulk) UpdateResultJSON() *VersionedRunUpsertBulk {
	return u.Update(func(s *VersionedRunUpsert) {
		s.UpdateResultJSON()
	})
}

// ClearResultJSON clears the value of the "result_json" field.
func (u *VersionedRunUpsertBulk) ClearResultJSON() *VersionedRunUpsertBulk {
	return u.Update(func(s *VersionedRunUpsert) {
		s.ClearResultJSON()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *VersionedRunUpsertBulk) SetErrorMessage(v string) *VersionedRunUpsertBulk {
	return u.Update(func(s *VersionedRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *VersionedRunUpsertBulk) UpdateErrorMessage() *VersionedRunUpsertBulk {
	return u.Update(func(s *VersionedRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *VersionedRunUpsertBulk) ClearErrorMessage() *VersionedRunUpsertBulk {
	return u.Update(func(s *VersionedRunUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VersionedRunUpsertBulk) SetUpdatedAt(v time.Time) *VersionedRunUpsertBulk {
	return u.Update(func(s *VersionedRunUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VersionedRunUpsertBulk) UpdateUpdatedAt() *VersionedRunUpsertBulk {
	return u.Update(func(s *VersionedRunUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *VersionedRunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the VersionedRunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VersionedRunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VersionedRunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
