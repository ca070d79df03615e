// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recapd/recapd/ent/runevent"
	"github.com/recapd/recapd/ent/workflowrun"
)

// WorkflowRunCreate is the builder for creating a WorkflowRun entity.
type WorkflowRunCreate struct {
	config
	mutation *WorkflowRunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkflowName sets the "workflow_name" field.
func (_c *WorkflowRunCreate) SetWorkflowName(v string) *WorkflowRunCreate {
	_c.mutation.SetWorkflowName(v)
	return _c
}

// SetArgs sets the "args" field.
func (_c *WorkflowRunCreate) SetArgs(v json.RawMessage) *WorkflowRunCreate {
	_c.mutation.SetArgs(v)
	return _c
}

// SetArgsDigest sets the "args_digest" field.
func (_c *WorkflowRunCreate) SetArgsDigest(v string) *WorkflowRunCreate {
	_c.mutation.SetArgsDigest(v)
	return _c
}

// SetState sets the "state" field.
func (_c *WorkflowRunCreate) SetState(v workflowrun.State) *WorkflowRunCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableState(v *workflowrun.State) *WorkflowRunCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *WorkflowRunCreate) SetErrorMessage(v string) *WorkflowRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableErrorMessage(v *string) *WorkflowRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *WorkflowRunCreate) SetResult(v json.RawMessage) *WorkflowRunCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *WorkflowRunCreate) SetCancelRequested(v bool) *WorkflowRunCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableCancelRequested(v *bool) *WorkflowRunCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetPauseRequested sets the "pause_requested" field.
func (_c *WorkflowRunCreate) SetPauseRequested(v bool) *WorkflowRunCreate {
	_c.mutation.SetPauseRequested(v)
	return _c
}

// SetNillablePauseRequested sets the "pause_requested" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillablePauseRequested(v *bool) *WorkflowRunCreate {
	if v != nil {
		_c.SetPauseRequested(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *WorkflowRunCreate) SetPodID(v string) *WorkflowRunCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillablePodID(v *string) *WorkflowRunCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *WorkflowRunCreate) SetLastHeartbeatAt(v time.Time) *WorkflowRunCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableLastHeartbeatAt(v *time.Time) *WorkflowRunCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetRecoveryAttempts sets the "recovery_attempts" field.
func (_c *WorkflowRunCreate) SetRecoveryAttempts(v int) *WorkflowRunCreate {
	_c.mutation.SetRecoveryAttempts(v)
	return _c
}

// SetNillableRecoveryAttempts sets the "recovery_attempts" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableRecoveryAttempts(v *int) *WorkflowRunCreate {
	if v != nil {
		_c.SetRecoveryAttempts(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowRunCreate) SetCreatedAt(v time.Time) *WorkflowRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableCreatedAt(v *time.Time) *WorkflowRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkflowRunCreate) SetUpdatedAt(v time.Time) *WorkflowRunCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableUpdatedAt(v *time.Time) *WorkflowRunCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *WorkflowRunCreate) SetStartedAt(v time.Time) *WorkflowRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableStartedAt(v *time.Time) *WorkflowRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *WorkflowRunCreate) SetCompletedAt(v time.Time) *WorkflowRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableCompletedAt(v *time.Time) *WorkflowRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowRunCreate) SetID(v string) *WorkflowRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_c *WorkflowRunCreate) AddEventIDs(ids ...int) *WorkflowRunCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_c *WorkflowRunCreate) AddEvents(v ...*RunEvent) *WorkflowRunCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the WorkflowRunMutation object of the builder.
func (_c *WorkflowRunCreate) Mutation() *WorkflowRunMutation {
	return _c.mutation
}

// Save creates the WorkflowRun in the database.
func (_c *WorkflowRunCreate) Save(ctx context.Context) (*WorkflowRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowRunCreate) SaveX(ctx context.Context) *WorkflowRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowRunCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := workflowrun.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := workflowrun.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
	if _, ok := _c.mutation.PauseRequested(); !ok {
		v := workflowrun.DefaultPauseRequested
		_c.mutation.SetPauseRequested(v)
	}
	if _, ok := _c.mutation.RecoveryAttempts(); !ok {
		v := workflowrun.DefaultRecoveryAttempts
		_c.mutation.SetRecoveryAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workflowrun.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowRunCreate) check() error {
	if _, ok := _c.mutation.WorkflowName(); !ok {
		return &ValidationError{Name: "workflow_name", err: errors.New(`ent: missing required field "WorkflowRun.workflow_name"`)}
	}
	if _, ok := _c.mutation.Args(); !ok {
		return &ValidationError{Name: "args", err: errors.New(`ent: missing required field "WorkflowRun.args"`)}
	}
	if _, ok := _c.mutation.ArgsDigest(); !ok {
		return &ValidationError{Name: "args_digest", err: errors.New(`ent: missing required field "WorkflowRun.args_digest"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "WorkflowRun.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := workflowrun.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "WorkflowRun.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "WorkflowRun.cancel_requested"`)}
	}
	if _, ok := _c.mutation.PauseRequested(); !ok {
		return &ValidationError{Name: "pause_requested", err: errors.New(`ent: missing required field "WorkflowRun.pause_requested"`)}
	}
	if _, ok := _c.mutation.RecoveryAttempts(); !ok {
		return &ValidationError{Name: "recovery_attempts", err: errors.New(`ent: missing required field "WorkflowRun.recovery_attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowRun.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkflowRun.updated_at"`)}
	}
	return nil
}

func (_c *WorkflowRunCreate) sqlSave(ctx context.Context) (*WorkflowRun, error) {
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
			return nil, fmt.Errorf("unexpected WorkflowRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowRunCreate) createSpec() (*WorkflowRun, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowrun.Table, sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkflowName(); ok {
		_spec.SetField(workflowrun.FieldWorkflowName, field.TypeString, value)
		_node.WorkflowName = value
	}
	if value, ok := _c.mutation.Args(); ok {
		_spec.SetField(workflowrun.FieldArgs, field.TypeJSON, value)
		_node.Args = value
	}
	if value, ok := _c.mutation.ArgsDigest(); ok {
		_spec.SetField(workflowrun.FieldArgsDigest, field.TypeString, value)
		_node.ArgsDigest = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(workflowrun.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(workflowrun.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(workflowrun.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := _c.mutation.PauseRequested(); ok {
		_spec.SetField(workflowrun.FieldPauseRequested, field.TypeBool, value)
		_node.PauseRequested = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(workflowrun.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(workflowrun.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.RecoveryAttempts(); ok {
		_spec.SetField(workflowrun.FieldRecoveryAttempts, field.TypeInt, value)
		_node.RecoveryAttempts = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowrun.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(workflowrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(workflowrun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowrun.EventsTable,
			Columns: []string{workflowrun.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkflowRun.Create().
//		SetWorkflowName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowRunUpsert) {
//			SetWorkflowName(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowRunCreate) OnConflict(opts ...sql.ConflictOption) *WorkflowRunUpsertOne {
	_c.conflict = opts
	return &WorkflowRunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkflowRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowRunCreate) OnConflictColumns(columns ...string) *WorkflowRunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowRunUpsertOne{
		create: _c,
	}
}

type (
	// WorkflowRunUpsertOne is the builder for "upsert"-ing
	//  one WorkflowRun node.
	WorkflowRunUpsertOne struct {
		create *WorkflowRunCreate
	}

	// WorkflowRunUpsert is the "OnConflict" setter.
	WorkflowRunUpsert struct {
		*sql.UpdateSet
	}
)

// SetState sets the "state" field.
func (u *WorkflowRunUpsert) SetState(v workflowrun.State) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdateState() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldState)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *WorkflowRunUpsert) SetErrorMessage(v string) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdateErrorMessage() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *WorkflowRunUpsert) ClearErrorMessage() *WorkflowRunUpsert {
	u.SetNull(workflowrun.FieldErrorMessage)
	return u
}

// SetResult sets the "result" field.
func (u *WorkflowRunUpsert) SetResult(v json.RawMessage) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdateResult() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldResult)
	return u
}

// ClearResult clears the value of the "result" field.
func (u *WorkflowRunUpsert) ClearResult() *WorkflowRunUpsert {
	u.SetNull(workflowrun.FieldResult)
	return u
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *WorkflowRunUpsert) SetCancelRequested(v bool) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldCancelRequested, v)
	return u
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdateCancelRequested() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldCancelRequested)
	return u
}

// SetPauseRequested sets the "pause_requested" field.
func (u *WorkflowRunUpsert) SetPauseRequested(v bool) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldPauseRequested, v)
	return u
}

// UpdatePauseRequested sets the "pause_requested" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdatePauseRequested() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldPauseRequested)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *WorkflowRunUpsert) SetPodID(v string) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdatePodID() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *WorkflowRunUpsert) ClearPodID() *WorkflowRunUpsert {
	u.SetNull(workflowrun.FieldPodID)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *WorkflowRunUpsert) SetLastHeartbeatAt(v time.Time) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdateLastHeartbeatAt() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *WorkflowRunUpsert) ClearLastHeartbeatAt() *WorkflowRunUpsert {
	u.SetNull(workflowrun.FieldLastHeartbeatAt)
	return u
}

// SetRecoveryAttempts sets the "recovery_attempts" field.
func (u *WorkflowRunUpsert) SetRecoveryAttempts(v int) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldRecoveryAttempts, v)
	return u
}

// UpdateRecoveryAttempts sets the "recovery_attempts" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdateRecoveryAttempts() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldRecoveryAttempts)
	return u
}

// AddRecoveryAttempts adds v to the "recovery_attempts" field.
func (u *WorkflowRunUpsert) AddRecoveryAttempts(v int) *WorkflowRunUpsert {
	u.Add(workflowrun.FieldRecoveryAttempts, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkflowRunUpsert) SetUpdatedAt(v time.Time) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdateUpdatedAt() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldUpdatedAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *WorkflowRunUpsert) SetStartedAt(v time.Time) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdateStartedAt() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *WorkflowRunUpsert) ClearStartedAt() *WorkflowRunUpsert {
	u.SetNull(workflowrun.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *WorkflowRunUpsert) SetCompletedAt(v time.Time) *WorkflowRunUpsert {
	u.Set(workflowrun.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *WorkflowRunUpsert) UpdateCompletedAt() *WorkflowRunUpsert {
	u.SetExcluded(workflowrun.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *WorkflowRunUpsert) ClearCompletedAt() *WorkflowRunUpsert {
	u.SetNull(workflowrun.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WorkflowRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workflowrun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkflowRunUpsertOne) UpdateNewValues() *WorkflowRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(workflowrun.FieldID)
		}
		if _, exists := u.create.mutation.WorkflowName(); exists {
			s.SetIgnore(workflowrun.FieldWorkflowName)
		}
		if _, exists := u.create.mutation.Args(); exists {
			s.SetIgnore(workflowrun.FieldArgs)
		}
		if _, exists := u.create.mutation.ArgsDigest(); exists {
			s.SetIgnore(workflowrun.FieldArgsDigest)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(workflowrun.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkflowRun.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkflowRunUpsertOne) Ignore() *WorkflowRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowRunUpsertOne) DoNothing() *WorkflowRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowRunCreate.OnConflict
// documentation for more info.
func (u *WorkflowRunUpsertOne) Update(set func(*WorkflowRunUpsert)) *WorkflowRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetState sets the "state" field.
func (u *WorkflowRunUpsertOne) SetState(v workflowrun.State) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdateState() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateState()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *WorkflowRunUpsertOne) SetErrorMessage(v string) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdateErrorMessage() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *WorkflowRunUpsertOne) ClearErrorMessage() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearErrorMessage()
	})
}

// SetResult sets the "result" field.
func (u *WorkflowRunUpsertOne) SetResult(v json.RawMessage) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdateResult() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *WorkflowRunUpsertOne) ClearResult() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearResult()
	})
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *WorkflowRunUpsertOne) SetCancelRequested(v bool) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetCancelRequested(v)
	})
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdateCancelRequested() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateCancelRequested()
	})
}

// SetPauseRequested sets the "pause_requested" field.
func (u *WorkflowRunUpsertOne) SetPauseRequested(v bool) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetPauseRequested(v)
	})
}

// UpdatePauseRequested sets the "pause_requested" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdatePauseRequested() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdatePauseRequested()
	})
}

// SetPodID sets the "pod_id" field.
func (u *WorkflowRunUpsertOne) SetPodID(v string) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdatePodID() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *WorkflowRunUpsertOne) ClearPodID() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *WorkflowRunUpsertOne) SetLastHeartbeatAt(v time.Time) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdateLastHeartbeatAt() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *WorkflowRunUpsertOne) ClearLastHeartbeatAt() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetRecoveryAttempts sets the "recovery_attempts" field.
func (u *WorkflowRunUpsertOne) SetRecoveryAttempts(v int) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetRecoveryAttempts(v)
	})
}

// AddRecoveryAttempts adds v to the "recovery_attempts" field.
func (u *WorkflowRunUpsertOne) AddRecoveryAttempts(v int) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.AddRecoveryAttempts(v)
	})
}

// UpdateRecoveryAttempts sets the "recovery_attempts" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdateRecoveryAttempts() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateRecoveryAttempts()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkflowRunUpsertOne) SetUpdatedAt(v time.Time) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdateUpdatedAt() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *WorkflowRunUpsertOne) SetStartedAt(v time.Time) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdateStartedAt() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *WorkflowRunUpsertOne) ClearStartedAt() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *WorkflowRunUpsertOne) SetCompletedAt(v time.Time) *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *WorkflowRunUpsertOne) UpdateCompletedAt() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *WorkflowRunUpsertOne) ClearCompletedAt() *WorkflowRunUpsertOne {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *WorkflowRunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowRunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowRunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkflowRunUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WorkflowRunUpsertOne.ID is not supported by MySQL driver. Use WorkflowRunUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkflowRunUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkflowRunCreateBulk is the builder for creating many WorkflowRun entities in bulk.
type WorkflowRunCreateBulk struct {
	config
	err      error
	builders []*WorkflowRunCreate
	conflict []sql.ConflictOption
}

// Save creates the WorkflowRun entities in the database.
func (_c *WorkflowRunCreateBulk) Save(ctx context.Context) ([]*WorkflowRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowRunMutation)
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
func (_c *WorkflowRunCreateBulk) SaveX(ctx context.Context) []*WorkflowRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkflowRun.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowRunUpsert) {
//			SetWorkflowName(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowRunCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkflowRunUpsertBulk {
	_c.conflict = opts
	return &WorkflowRunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkflowRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowRunCreateBulk) OnConflictColumns(columns ...string) *WorkflowRunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowRunUpsertBulk{
		create: _c,
	}
}

// WorkflowRunUpsertBulk is the builder for "upsert"-ing
// a bulk of WorkflowRun nodes.
type WorkflowRunUpsertBulk struct {
	create *WorkflowRunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WorkflowRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workflowrun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkflowRunUpsertBulk) UpdateNewValues() *WorkflowRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(workflowrun.FieldID)
			}
			if _, exists := b.mutation.WorkflowName(); exists {
				s.SetIgnore(workflowrun.FieldWorkflowName)
			}
			if _, exists := b.mutation.Args(); exists {
				s.SetIgnore(workflowrun.FieldArgs)
			}
			if _, exists := b.mutation.ArgsDigest(); exists {
				s.SetIgnore(workflowrun.FieldArgsDigest)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(workflowrun.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkflowRun.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkflowRunUpsertBulk) Ignore() *WorkflowRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowRunUpsertBulk) DoNothing() *WorkflowRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowRunCreateBulk.OnConflict
// documentation for more info.
func (u *WorkflowRunUpsertBulk) Update(set func(*WorkflowRunUpsert)) *WorkflowRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetState sets the "state" field.
func (u *WorkflowRunUpsertBulk) SetState(v workflowrun.State) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdateState() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateState()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *WorkflowRunUpsertBulk) SetErrorMessage(v string) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdateErrorMessage() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *WorkflowRunUpsertBulk) ClearErrorMessage() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearErrorMessage()
	})
}

// SetResult sets the "result" field.
func (u *WorkflowRunUpsertBulk) SetResult(v json.RawMessage) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdateResult() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *WorkflowRunUpsertBulk) ClearResult() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearResult()
	})
}

// SetCancelRequested sets the "cancel_requested" field.
func (u *WorkflowRunUpsertBulk) SetCancelRequested(v bool) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetCancelRequested(v)
	})
}

// UpdateCancelRequested sets the "cancel_requested" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdateCancelRequested() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateCancelRequested()
	})
}

// SetPauseRequested sets the "pause_requested" field.
func (u *WorkflowRunUpsertBulk) SetPauseRequested(v bool) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetPauseRequested(v)
	})
}

// UpdatePauseRequested sets the "pause_requested" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdatePauseRequested() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdatePauseRequested()
	})
}

// SetPodID sets the "pod_id" field.
func (u *WorkflowRunUpsertBulk) SetPodID(v string) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdatePodID() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *WorkflowRunUpsertBulk) ClearPodID() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *WorkflowRunUpsertBulk) SetLastHeartbeatAt(v time.Time) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdateLastHeartbeatAt() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *WorkflowRunUpsertBulk) ClearLastHeartbeatAt() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetRecoveryAttempts sets the "recovery_attempts" field.
func (u *WorkflowRunUpsertBulk) SetRecoveryAttempts(v int) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetRecoveryAttempts(v)
	})
}

// AddRecoveryAttempts adds v to the "recovery_attempts" field.
func (u *WorkflowRunUpsertBulk) AddRecoveryAttempts(v int) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.AddRecoveryAttempts(v)
	})
}

// UpdateRecoveryAttempts sets the "recovery_attempts" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdateRecoveryAttempts() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateRecoveryAttempts()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkflowRunUpsertBulk) SetUpdatedAt(v time.Time) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdateUpdatedAt() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *WorkflowRunUpsertBulk) SetStartedAt(v time.Time) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdateStartedAt() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *WorkflowRunUpsertBulk) ClearStartedAt() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *WorkflowRunUpsertBulk) SetCompletedAt(v time.Time) *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *WorkflowRunUpsertBulk) UpdateCompletedAt() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *WorkflowRunUpsertBulk) ClearCompletedAt() *WorkflowRunUpsertBulk {
	return u.Update(func(s *WorkflowRunUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *WorkflowRunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WorkflowRunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowRunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowRunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
