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
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/recapd/recapd/ent/predicate"
	"github.com/recapd/recapd/ent/runevent"
	"github.com/recapd/recapd/ent/workflowrun"
)

// WorkflowRunUpdate is the builder for updating WorkflowRun entities.
type WorkflowRunUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowRunMutation
}

// Where appends a list predicates to the WorkflowRunUpdate builder.
func (_u *WorkflowRunUpdate) Where(ps ...predicate.WorkflowRun) *WorkflowRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *WorkflowRunUpdate) SetState(v workflowrun.State) *WorkflowRunUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableState(v *workflowrun.State) *WorkflowRunUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowRunUpdate) SetErrorMessage(v string) *WorkflowRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableErrorMessage(v *string) *WorkflowRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowRunUpdate) ClearErrorMessage() *WorkflowRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResult sets the "result" field.
func (_u *WorkflowRunUpdate) SetResult(v json.RawMessage) *WorkflowRunUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *WorkflowRunUpdate) AppendResult(v json.RawMessage) *WorkflowRunUpdate {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *WorkflowRunUpdate) ClearResult() *WorkflowRunUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *WorkflowRunUpdate) SetCancelRequested(v bool) *WorkflowRunUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableCancelRequested(v *bool) *WorkflowRunUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetPauseRequested sets the "pause_requested" field.
func (_u *WorkflowRunUpdate) SetPauseRequested(v bool) *WorkflowRunUpdate {
	_u.mutation.SetPauseRequested(v)
	return _u
}

// SetNillablePauseRequested sets the "pause_requested" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillablePauseRequested(v *bool) *WorkflowRunUpdate {
	if v != nil {
		_u.SetPauseRequested(*v)
	}
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *WorkflowRunUpdate) SetPodID(v string) *WorkflowRunUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillablePodID(v *string) *WorkflowRunUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *WorkflowRunUpdate) ClearPodID() *WorkflowRunUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *WorkflowRunUpdate) SetLastHeartbeatAt(v time.Time) *WorkflowRunUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableLastHeartbeatAt(v *time.Time) *WorkflowRunUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *WorkflowRunUpdate) ClearLastHeartbeatAt() *WorkflowRunUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetRecoveryAttempts sets the "recovery_attempts" field.
func (_u *WorkflowRunUpdate) SetRecoveryAttempts(v int) *WorkflowRunUpdate {
	_u.mutation.ResetRecoveryAttempts()
	_u.mutation.SetRecoveryAttempts(v)
	return _u
}

// SetNillableRecoveryAttempts sets the "recovery_attempts" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableRecoveryAttempts(v *int) *WorkflowRunUpdate {
	if v != nil {
		_u.SetRecoveryAttempts(*v)
	}
	return _u
}

// AddRecoveryAttempts adds value to the "recovery_attempts" field.
func (_u *WorkflowRunUpdate) AddRecoveryAttempts(v int) *WorkflowRunUpdate {
	_u.mutation.AddRecoveryAttempts(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowRunUpdate) SetUpdatedAt(v time.Time) *WorkflowRunUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowRunUpdate) SetStartedAt(v time.Time) *WorkflowRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableStartedAt(v *time.Time) *WorkflowRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowRunUpdate) ClearStartedAt() *WorkflowRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowRunUpdate) SetCompletedAt(v time.Time) *WorkflowRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableCompletedAt(v *time.Time) *WorkflowRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowRunUpdate) ClearCompletedAt() *WorkflowRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_u *WorkflowRunUpdate) AddEventIDs(ids ...int) *WorkflowRunUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_u *WorkflowRunUpdate) AddEvents(v ...*RunEvent) *WorkflowRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the WorkflowRunMutation object of the builder.
func (_u *WorkflowRunUpdate) Mutation() *WorkflowRunMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the RunEvent entity.
func (_u *WorkflowRunUpdate) ClearEvents() *WorkflowRunUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to RunEvent entities by IDs.
func (_u *WorkflowRunUpdate) RemoveEventIDs(ids ...int) *WorkflowRunUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to RunEvent entities.
func (_u *WorkflowRunUpdate) RemoveEvents(v ...*RunEvent) *WorkflowRunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowRunUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowRunUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowRunUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := workflowrun.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "WorkflowRun.state": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowrun.Table, workflowrun.Columns, sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(workflowrun.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(workflowrun.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowrun.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(workflowrun.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(workflowrun.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PauseRequested(); ok {
		_spec.SetField(workflowrun.FieldPauseRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(workflowrun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(workflowrun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(workflowrun.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(workflowrun.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RecoveryAttempts(); ok {
		_spec.SetField(workflowrun.FieldRecoveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryAttempts(); ok {
		_spec.AddField(workflowrun.FieldRecoveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowrun.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflowrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflowrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowrun.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowRunUpdateOne is the builder for updating a single WorkflowRun entity.
type WorkflowRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowRunMutation
}

// SetState sets the "state" field.
func (_u *WorkflowRunUpdateOne) SetState(v workflowrun.State) *WorkflowRunUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableState(v *workflowrun.State) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowRunUpdateOne) SetErrorMessage(v string) *WorkflowRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableErrorMessage(v *string) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowRunUpdateOne) ClearErrorMessage() *WorkflowRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResult sets the "result" field.
func (_u *WorkflowRunUpdateOne) SetResult(v json.RawMessage) *WorkflowRunUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *WorkflowRunUpdateOne) AppendResult(v json.RawMessage) *WorkflowRunUpdateOne {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *WorkflowRunUpdateOne) ClearResult() *WorkflowRunUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *WorkflowRunUpdateOne) SetCancelRequested(v bool) *WorkflowRunUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableCancelRequested(v *bool) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetPauseRequested sets the "pause_requested" field.
func (_u *WorkflowRunUpdateOne) SetPauseRequested(v bool) *WorkflowRunUpdateOne {
	_u.mutation.SetPauseRequested(v)
	return _u
}

// SetNillablePauseRequested sets the "pause_requested" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillablePauseRequested(v *bool) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetPauseRequested(*v)
	}
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *WorkflowRunUpdateOne) SetPodID(v string) *WorkflowRunUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillablePodID(v *string) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *WorkflowRunUpdateOne) ClearPodID() *WorkflowRunUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *WorkflowRunUpdateOne) SetLastHeartbeatAt(v time.Time) *WorkflowRunUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *WorkflowRunUpdateOne) ClearLastHeartbeatAt() *WorkflowRunUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetRecoveryAttempts sets the "recovery_attempts" field.
func (_u *WorkflowRunUpdateOne) SetRecoveryAttempts(v int) *WorkflowRunUpdateOne {
	_u.mutation.ResetRecoveryAttempts()
	_u.mutation.SetRecoveryAttempts(v)
	return _u
}

// SetNillableRecoveryAttempts sets the "recovery_attempts" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableRecoveryAttempts(v *int) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetRecoveryAttempts(*v)
	}
	return _u
}

// AddRecoveryAttempts adds value to the "recovery_attempts" field.
func (_u *WorkflowRunUpdateOne) AddRecoveryAttempts(v int) *WorkflowRunUpdateOne {
	_u.mutation.AddRecoveryAttempts(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowRunUpdateOne) SetUpdatedAt(v time.Time) *WorkflowRunUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowRunUpdateOne) SetStartedAt(v time.Time) *WorkflowRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableStartedAt(v *time.Time) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowRunUpdateOne) ClearStartedAt() *WorkflowRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowRunUpdateOne) SetCompletedAt(v time.Time) *WorkflowRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableCompletedAt(v *time.Time) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowRunUpdateOne) ClearCompletedAt() *WorkflowRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_u *WorkflowRunUpdateOne) AddEventIDs(ids ...int) *WorkflowRunUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_u *WorkflowRunUpdateOne) AddEvents(v ...*RunEvent) *WorkflowRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the WorkflowRunMutation object of the builder.
func (_u *WorkflowRunUpdateOne) Mutation() *WorkflowRunMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the RunEvent entity.
func (_u *WorkflowRunUpdateOne) ClearEvents() *WorkflowRunUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to RunEvent entities by IDs.
func (_u *WorkflowRunUpdateOne) RemoveEventIDs(ids ...int) *WorkflowRunUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to RunEvent entities.
func (_u *WorkflowRunUpdateOne) RemoveEvents(v ...*RunEvent) *WorkflowRunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the WorkflowRunUpdate builder.
func (_u *WorkflowRunUpdateOne) Where(ps ...predicate.WorkflowRun) *WorkflowRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowRunUpdateOne) Select(field string, fields ...string) *WorkflowRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowRun entity.
func (_u *WorkflowRunUpdateOne) Save(ctx context.Context) (*WorkflowRun, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowRunUpdateOne) SaveX(ctx context.Context) *WorkflowRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowRunUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowRunUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := workflowrun.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "WorkflowRun.state": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowRunUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowrun.Table, workflowrun.Columns, sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowrun.FieldID)
		for _, f := range fields {
			if !workflowrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowrun.FieldID {
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
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(workflowrun.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(workflowrun.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowrun.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(workflowrun.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(workflowrun.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PauseRequested(); ok {
		_spec.SetField(workflowrun.FieldPauseRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(workflowrun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(workflowrun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(workflowrun.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(workflowrun.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RecoveryAttempts(); ok {
		_spec.SetField(workflowrun.FieldRecoveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryAttempts(); ok {
		_spec.AddField(workflowrun.FieldRecoveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowrun.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflowrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflowrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowrun.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkflowRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
