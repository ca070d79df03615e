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
	"github.com/recapd/recapd/ent/versionedrun"
)

// VersionedRunUpdate is the builder for updating VersionedRun entities.
type VersionedRunUpdate struct {
	config
	hooks    []Hook
	mutation *VersionedRunMutation
}

// Where appends a list predicates to the VersionedRunUpdate builder.
func (_u *VersionedRunUpdate) Where(ps ...predicate.VersionedRun) *VersionedRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *VersionedRunUpdate) SetStatus(v versionedrun.Status) *VersionedRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VersionedRunUpdate) SetNillableStatus(v *versionedrun.Status) *VersionedRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetWorkflowRunID sets the "workflow_run_id" field.
func (_u *VersionedRunUpdate) SetWorkflowRunID(v string) *VersionedRunUpdate {
	_u.mutation.SetWorkflowRunID(v)
	return _u
}

// SetNillableWorkflowRunID sets the "workflow_run_id" field if the given value is not nil.
func (_u *VersionedRunUpdate) SetNillableWorkflowRunID(v *string) *VersionedRunUpdate {
	if v != nil {
		_u.SetWorkflowRunID(*v)
	}
	return _u
}

// ClearWorkflowRunID clears the value of the "workflow_run_id" field.
func (_u *VersionedRunUpdate) ClearWorkflowRunID() *VersionedRunUpdate {
	_u.mutation.ClearWorkflowRunID()
	return _u
}

// SetNamespace sets the "namespace" field.
func (_u *VersionedRunUpdate) SetNamespace(v string) *VersionedRunUpdate {
	_u.mutation.SetNamespace(v)
	return _u
}

// SetNillableNamespace sets the "namespace" field if the given value is not nil.
func (_u *VersionedRunUpdate) SetNillableNamespace(v *string) *VersionedRunUpdate {
	if v != nil {
		_u.SetNamespace(*v)
	}
	return _u
}

// ClearNamespace clears the value of the "namespace" field.
func (_u *VersionedRunUpdate) ClearNamespace() *VersionedRunUpdate {
	_u.mutation.ClearNamespace()
	return _u
}

// SetAdditionalInstructions sets the "additional_instructions" field.
func (_u *VersionedRunUpdate) SetAdditionalInstructions(v string) *VersionedRunUpdate {
	_u.mutation.SetAdditionalInstructions(v)
	return _u
}

// SetNillableAdditionalInstructions sets the "additional_instructions" field if the given value is not nil.
func (_u *VersionedRunUpdate) SetNillableAdditionalInstructions(v *string) *VersionedRunUpdate {
	if v != nil {
		_u.SetAdditionalInstructions(*v)
	}
	return _u
}

// ClearAdditionalInstructions clears the value of the "additional_instructions" field.
func (_u *VersionedRunUpdate) ClearAdditionalInstructions() *VersionedRunUpdate {
	_u.mutation.ClearAdditionalInstructions()
	return _u
}

// SetResultJSON sets the "result_json" field.
func (_u *VersionedRunUpdate) SetResultJSON(v json.RawMessage) *VersionedRunUpdate {
	_u.mutation.SetResultJSON(v)
	return _u
}

// AppendResultJSON appends value to the "result_json" field.
func (_u *VersionedRunUpdate) AppendResultJSON(v json.RawMessage) *VersionedRunUpdate {
	_u.mutation.AppendResultJSON(v)
	return _u
}

// ClearResultJSON clears the value of the "result_json" field.
func (_u *VersionedRunUpdate) ClearResultJSON() *VersionedRunUpdate {
	_u.mutation.ClearResultJSON()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *VersionedRunUpdate) SetErrorMessage(v string) *VersionedRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *VersionedRunUpdate) SetNillableErrorMessage(v *string) *VersionedRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *VersionedRunUpdate) ClearErrorMessage() *VersionedRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VersionedRunUpdate) SetUpdatedAt(v time.Time) *VersionedRunUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the VersionedRunMutation object of the builder.
func (_u *VersionedRunUpdate) Mutation() *VersionedRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VersionedRunUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VersionedRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VersionedRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VersionedRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VersionedRunUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := versionedrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VersionedRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := versionedrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VersionedRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *VersionedRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(versionedrun.Table, versionedrun.Columns, sqlgraph.NewFieldSpec(versionedrun.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(versionedrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WorkflowRunID(); ok {
		_spec.SetField(versionedrun.FieldWorkflowRunID, field.TypeString, value)
	}
	if _u.mutation.WorkflowRunIDCleared() {
		_spec.ClearField(versionedrun.FieldWorkflowRunID, field.TypeString)
	}
	if value, ok := _u.mutation.Namespace(); ok {
		_spec.SetField(versionedrun.FieldNamespace, field.TypeString, value)
	}
	if _u.mutation.NamespaceCleared() {
		_spec.ClearField(versionedrun.FieldNamespace, field.TypeString)
	}
	if value, ok := _u.mutation.AdditionalInstructions(); ok {
		_spec.SetField(versionedrun.FieldAdditionalInstructions, field.TypeString, value)
	}
	if _u.mutation.AdditionalInstructionsCleared() {
		_spec.ClearField(versionedrun.FieldAdditionalInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.ResultJSON(); ok {
		_spec.SetField(versionedrun.FieldResultJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResultJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, versionedrun.FieldResultJSON, value)
		})
	}
	if _u.mutation.ResultJSONCleared() {
		_spec.ClearField(versionedrun.FieldResultJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(versionedrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(versionedrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(versionedrun.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{versionedrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VersionedRunUpdateOne is the builder for updating a single VersionedRun entity.
type VersionedRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VersionedRunMutation
}

// SetStatus sets the "status" field.
func (_u *VersionedRunUpdateOne) SetStatus(v versionedrun.Status) *VersionedRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VersionedRunUpdateOne) SetNillableStatus(v *versionedrun.Status) *VersionedRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetWorkflowRunID sets the "workflow_run_id" field.
func (_u *VersionedRunUpdateOne) SetWorkflowRunID(v string) *VersionedRunUpdateOne {
	_u.mutation.SetWorkflowRunID(v)
	return _u
}

// SetNillableWorkflowRunID sets the "workflow_run_id" field if the given value is not nil.
func (_u *VersionedRunUpdateOne) SetNillableWorkflowRunID(v *string) *VersionedRunUpdateOne {
	if v != nil {
		_u.SetWorkflowRunID(*v)
	}
	return _u
}

// ClearWorkflowRunID clears the value of the "workflow_run_id" field.
func (_u *VersionedRunUpdateOne) ClearWorkflowRunID() *VersionedRunUpdateOne {
	_u.mutation.ClearWorkflowRunID()
	return _u
}

// SetNamespace sets the "namespace" field.
func (_u *VersionedRunUpdateOne) SetNamespace(v string) *VersionedRunUpdateOne {
	_u.mutation.SetNamespace(v)
	return _u
}

// SetNillableNamespace sets the "namespace" field if the given value is not nil.
func (_u *VersionedRunUpdateOne) SetNillableNamespace(v *string) *VersionedRunUpdateOne {
	if v != nil {
		_u.SetNamespace(*v)
	}
	return _u
}

// ClearNamespace clears the value of the "namespace" field.
func (_u *VersionedRunUpdateOne) ClearNamespace() *VersionedRunUpdateOne {
	_u.mutation.ClearNamespace()
	return _u
}

// SetAdditionalInstructions sets the "additional_instructions" field.
func (_u *VersionedRunUpdateOne) SetAdditionalInstructions(v string) *VersionedRunUpdateOne {
	_u.mutation.SetAdditionalInstructions(v)
	return _u
}

// SetNillableAdditionalInstructions sets the "additional_instructions" field if the given value is not nil.
func (_u *VersionedRunUpdateOne) SetNillableAdditionalInstructions(v *string) *VersionedRunUpdateOne {
	if v != nil {
		_u.SetAdditionalInstructions(*v)
	}
	return _u
}

// ClearAdditionalInstructions clears the value of the "additional_instructions" field.
func (_u *VersionedRunUpdateOne) ClearAdditionalInstructions() *VersionedRunUpdateOne {
	_u.mutation.ClearAdditionalInstructions()
	return _u
}

// SetResultJSON sets the "result_json" field.
func (_u *VersionedRunUpdateOne) SetResultJSON(v json.RawMessage) *VersionedRunUpdateOne {
	_u.mutation.SetResultJSON(v)
	return _u
}

// AppendResultJSON appends value to the "result_json" field.
func (_u *VersionedRunUpdateOne) AppendResultJSON(v json.RawMessage) *VersionedRunUpdateOne {
	_u.mutation.AppendResultJSON(v)
	return _u
}

// ClearResultJSON clears the value of the "result_json" field.
func (_u *VersionedRunUpdateOne) ClearResultJSON() *VersionedRunUpdateOne {
	_u.mutation.ClearResultJSON()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *VersionedRunUpdateOne) SetErrorMessage(v string) *VersionedRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *VersionedRunUpdateOne) SetNillableErrorMessage(v *string) *VersionedRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *VersionedRunUpdateOne) ClearErrorMessage() *VersionedRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VersionedRunUpdateOne) SetUpdatedAt(v time.Time) *VersionedRunUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the VersionedRunMutation object of the builder.
func (_u *VersionedRunUpdateOne) Mutation() *VersionedRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the VersionedRunUpdate builder.
func (_u *VersionedRunUpdateOne) Where(ps ...predicate.VersionedRun) *VersionedRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VersionedRunUpdateOne) Select(field string, fields ...string) *VersionedRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VersionedRun entity.
func (_u *VersionedRunUpdateOne) Save(ctx context.Context) (*VersionedRun, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VersionedRunUpdateOne) SaveX(ctx context.Context) *VersionedRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VersionedRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VersionedRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VersionedRunUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := versionedrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VersionedRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := versionedrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VersionedRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *VersionedRunUpdateOne) sqlSave(ctx context.Context) (_node *VersionedRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(versionedrun.Table, versionedrun.Columns, sqlgraph.NewFieldSpec(versionedrun.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VersionedRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, versionedrun.FieldID)
		for _, f := range fields {
			if !versionedrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != versionedrun.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(versionedrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WorkflowRunID(); ok {
		_spec.SetField(versionedrun.FieldWorkflowRunID, field.TypeString, value)
	}
	if _u.mutation.WorkflowRunIDCleared() {
		_spec.ClearField(versionedrun.FieldWorkflowRunID, field.TypeString)
	}
	if value, ok := _u.mutation.Namespace(); ok {
		_spec.SetField(versionedrun.FieldNamespace, field.TypeString, value)
	}
	if _u.mutation.NamespaceCleared() {
		_spec.ClearField(versionedrun.FieldNamespace, field.TypeString)
	}
	if value, ok := _u.mutation.AdditionalInstructions(); ok {
		_spec.SetField(versionedrun.FieldAdditionalInstructions, field.TypeString, value)
	}
	if _u.mutation.AdditionalInstructionsCleared() {
		_spec.ClearField(versionedrun.FieldAdditionalInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.ResultJSON(); ok {
		_spec.SetField(versionedrun.FieldResultJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResultJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, versionedrun.FieldResultJSON, value)
		})
	}
	if _u.mutation.ResultJSONCleared() {
		_spec.ClearField(versionedrun.FieldResultJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(versionedrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(versionedrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(versionedrun.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &VersionedRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{versionedrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
