// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recapd/recapd/ent/externaltranscript"
	"github.com/recapd/recapd/ent/predicate"
	"github.com/recapd/recapd/ent/runevent"
	"github.com/recapd/recapd/ent/slide"
	"github.com/recapd/recapd/ent/slideanalysis"
	"github.com/recapd/recapd/ent/slideextraction"
	"github.com/recapd/recapd/ent/slidefeedback"
	"github.com/recapd/recapd/ent/superanalysis"
	"github.com/recapd/recapd/ent/transcript"
	"github.com/recapd/recapd/ent/versionedrun"
	"github.com/recapd/recapd/ent/workflowrun"
	"github.com/recapd/recapd/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExternalTranscript = "ExternalTranscript"
	TypeRunEvent           = "RunEvent"
	TypeSlide              = "Slide"
	TypeSlideAnalysis      = "SlideAnalysis"
	TypeSlideExtraction    = "SlideExtraction"
	TypeSlideFeedback      = "SlideFeedback"
	TypeSuperAnalysis      = "SuperAnalysis"
	TypeTranscript         = "Transcript"
	TypeVersionedRun       = "VersionedRun"
	TypeWorkflowRun        = "WorkflowRun"
)

// ExternalTranscriptMutation represents an operation that mutates the ExternalTranscript nodes in the graph.
type ExternalTranscriptMutation struct {
	config
	op            Op
	typ           string
	id            *string
	title         *string
	content       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ExternalTranscript, error)
	predicates    []predicate.ExternalTranscript
}

var _ ent.Mutation = (*ExternalTranscriptMutation)(nil)

// externaltranscriptOption allows management of the mutation configuration using functional options.
type externaltranscriptOption func(*ExternalTranscriptMutation)

// newExternalTranscriptMutation creates new mutation for the ExternalTranscript entity.
func newExternalTranscriptMutation(c config, op Op, opts ...externaltranscriptOption) *ExternalTranscriptMutation {
	m := &ExternalTranscriptMutation{
		config:        c,
		op:            op,
		typ:           TypeExternalTranscript,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExternalTranscriptID sets the ID field of the mutation.
func withExternalTranscriptID(id string) externaltranscriptOption {
	return func(m *ExternalTranscriptMutation) {
		var (
			err   error
			once  sync.Once
			value *ExternalTranscript
		)
		m.oldValue = func(ctx context.Context) (*ExternalTranscript, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExternalTranscript.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExternalTranscript sets the old ExternalTranscript of the mutation.
func withExternalTranscript(node *ExternalTranscript) externaltranscriptOption {
	return func(m *ExternalTranscriptMutation) {
		m.oldValue = func(context.Context) (*ExternalTranscript, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExternalTranscriptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExternalTranscriptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExternalTranscript entities.
func (m *ExternalTranscriptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExternalTranscriptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExternalTranscriptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExternalTranscript.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *ExternalTranscriptMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ExternalTranscriptMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ExternalTranscript entity.
// If the ExternalTranscript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalTranscriptMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ExternalTranscriptMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[externaltranscript.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ExternalTranscriptMutation) TitleCleared() bool {
	_, ok := m.clearedFields[externaltranscript.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ExternalTranscriptMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, externaltranscript.FieldTitle)
}

// SetContent sets the "content" field.
func (m *ExternalTranscriptMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ExternalTranscriptMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ExternalTranscript entity.
// If the ExternalTranscript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalTranscriptMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ExternalTranscriptMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExternalTranscriptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExternalTranscriptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExternalTranscript entity.
// If the ExternalTranscript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalTranscriptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExternalTranscriptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ExternalTranscriptMutation builder.
func (m *ExternalTranscriptMutation) Where(ps ...predicate.ExternalTranscript) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExternalTranscriptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExternalTranscriptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExternalTranscript, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExternalTranscriptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExternalTranscriptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExternalTranscript).
func (m *ExternalTranscriptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExternalTranscriptMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.title != nil {
		fields = append(fields, externaltranscript.FieldTitle)
	}
	if m.content != nil {
		fields = append(fields, externaltranscript.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, externaltranscript.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExternalTranscriptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case externaltranscript.FieldTitle:
		return m.Title()
	case externaltranscript.FieldContent:
		return m.Content()
	case externaltranscript.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExternalTranscriptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case externaltranscript.FieldTitle:
		return m.OldTitle(ctx)
	case externaltranscript.FieldContent:
		return m.OldContent(ctx)
	case externaltranscript.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExternalTranscript field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExternalTranscriptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case externaltranscript.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case externaltranscript.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case externaltranscript.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExternalTranscript field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExternalTranscriptMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExternalTranscriptMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExternalTranscriptMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExternalTranscript numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExternalTranscriptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(externaltranscript.FieldTitle) {
		fields = append(fields, externaltranscript.FieldTitle)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExternalTranscriptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExternalTranscriptMutation) ClearField(name string) error {
	switch name {
	case externaltranscript.FieldTitle:
		m.ClearTitle()
		return nil
	}
	return fmt.Errorf("unknown ExternalTranscript nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExternalTranscriptMutation) ResetField(name string) error {
	switch name {
	case externaltranscript.FieldTitle:
		m.ResetTitle()
		return nil
	case externaltranscript.FieldContent:
		m.ResetContent()
		return nil
	case externaltranscript.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExternalTranscript field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExternalTranscriptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExternalTranscriptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExternalTranscriptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExternalTranscriptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExternalTranscriptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExternalTranscriptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExternalTranscriptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExternalTranscript unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExternalTranscriptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExternalTranscript edge %s", name)
}

// RunEventMutation represents an operation that mutates the RunEvent nodes in the graph.
type RunEventMutation struct {
	config
	op              Op
	typ             string
	id              *int
	index           *int
	addindex        *int
	kind            *runevent.Kind
	step_id         *string
	call_ordinal    *int
	addcall_ordinal *int
	namespace       *string
	payload         *json.RawMessage
	appendpayload   json.RawMessage
	retriable       *bool
	created_at      *time.Time
	clearedFields   map[string]struct{}
	run             *string
	clearedrun      bool
	done            bool
	oldValue        func(context.Context) (*RunEvent, error)
	predicates      []predicate.RunEvent
}

var _ ent.Mutation = (*RunEventMutation)(nil)

// runeventOption allows management of the mutation configuration using functional options.
type runeventOption func(*RunEventMutation)

// newRunEventMutation creates new mutation for the RunEvent entity.
func newRunEventMutation(c config, op Op, opts ...runeventOption) *RunEventMutation {
	m := &RunEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRunEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunEventID sets the ID field of the mutation.
func withRunEventID(id int) runeventOption {
	return func(m *RunEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RunEvent
		)
		m.oldValue = func(ctx context.Context) (*RunEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunEvent sets the old RunEvent of the mutation.
func withRunEvent(node *RunEvent) runeventOption {
	return func(m *RunEventMutation) {
		m.oldValue = func(context.Context) (*RunEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *RunEventMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunEventMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunEventMutation) ResetRunID() {
	m.run = nil
}

// SetIndex sets the "index" field.
func (m *RunEventMutation) SetIndex(i int) {
	m.index = &i
	m.addindex = nil
}

// Index returns the value of the "index" field in the mutation.
func (m *RunEventMutation) Index() (r int, exists bool) {
	v := m.index
	if v == nil {
		return
	}
	return *v, true
}

// OldIndex returns the old "index" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndex: %w", err)
	}
	return oldValue.Index, nil
}

// AddIndex adds i to the "index" field.
func (m *RunEventMutation) AddIndex(i int) {
	if m.addindex != nil {
		*m.addindex += i
	} else {
		m.addindex = &i
	}
}

// AddedIndex returns the value that was added to the "index" field in this mutation.
func (m *RunEventMutation) AddedIndex() (r int, exists bool) {
	v := m.addindex
	if v == nil {
		return
	}
	return *v, true
}

// ResetIndex resets all changes to the "index" field.
func (m *RunEventMutation) ResetIndex() {
	m.index = nil
	m.addindex = nil
}

// SetKind sets the "kind" field.
func (m *RunEventMutation) SetKind(r runevent.Kind) {
	m.kind = &r
}

// Kind returns the value of the "kind" field in the mutation.
func (m *RunEventMutation) Kind() (r runevent.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldKind(ctx context.Context) (v runevent.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *RunEventMutation) ResetKind() {
	m.kind = nil
}

// SetStepID sets the "step_id" field.
func (m *RunEventMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *RunEventMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ClearStepID clears the value of the "step_id" field.
func (m *RunEventMutation) ClearStepID() {
	m.step_id = nil
	m.clearedFields[runevent.FieldStepID] = struct{}{}
}

// StepIDCleared returns if the "step_id" field was cleared in this mutation.
func (m *RunEventMutation) StepIDCleared() bool {
	_, ok := m.clearedFields[runevent.FieldStepID]
	return ok
}

// ResetStepID resets all changes to the "step_id" field.
func (m *RunEventMutation) ResetStepID() {
	m.step_id = nil
	delete(m.clearedFields, runevent.FieldStepID)
}

// SetCallOrdinal sets the "call_ordinal" field.
func (m *RunEventMutation) SetCallOrdinal(i int) {
	m.call_ordinal = &i
	m.addcall_ordinal = nil
}

// CallOrdinal returns the value of the "call_ordinal" field in the mutation.
func (m *RunEventMutation) CallOrdinal() (r int, exists bool) {
	v := m.call_ordinal
	if v == nil {
		return
	}
	return *v, true
}

// OldCallOrdinal returns the old "call_ordinal" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldCallOrdinal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallOrdinal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallOrdinal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallOrdinal: %w", err)
	}
	return oldValue.CallOrdinal, nil
}

// AddCallOrdinal adds i to the "call_ordinal" field.
func (m *RunEventMutation) AddCallOrdinal(i int) {
	if m.addcall_ordinal != nil {
		*m.addcall_ordinal += i
	} else {
		m.addcall_ordinal = &i
	}
}

// AddedCallOrdinal returns the value that was added to the "call_ordinal" field in this mutation.
func (m *RunEventMutation) AddedCallOrdinal() (r int, exists bool) {
	v := m.addcall_ordinal
	if v == nil {
		return
	}
	return *v, true
}

// ClearCallOrdinal clears the value of the "call_ordinal" field.
func (m *RunEventMutation) ClearCallOrdinal() {
	m.call_ordinal = nil
	m.addcall_ordinal = nil
	m.clearedFields[runevent.FieldCallOrdinal] = struct{}{}
}

// CallOrdinalCleared returns if the "call_ordinal" field was cleared in this mutation.
func (m *RunEventMutation) CallOrdinalCleared() bool {
	_, ok := m.clearedFields[runevent.FieldCallOrdinal]
	return ok
}

// ResetCallOrdinal resets all changes to the "call_ordinal" field.
func (m *RunEventMutation) ResetCallOrdinal() {
	m.call_ordinal = nil
	m.addcall_ordinal = nil
	delete(m.clearedFields, runevent.FieldCallOrdinal)
}

// SetNamespace sets the "namespace" field.
func (m *RunEventMutation) SetNamespace(s string) {
	m.namespace = &s
}

// Namespace returns the value of the "namespace" field in the mutation.
func (m *RunEventMutation) Namespace() (r string, exists bool) {
	v := m.namespace
	if v == nil {
		return
	}
	return *v, true
}

// OldNamespace returns the old "namespace" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldNamespace(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNamespace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNamespace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNamespace: %w", err)
	}
	return oldValue.Namespace, nil
}

// ClearNamespace clears the value of the "namespace" field.
func (m *RunEventMutation) ClearNamespace() {
	m.namespace = nil
	m.clearedFields[runevent.FieldNamespace] = struct{}{}
}

// NamespaceCleared returns if the "namespace" field was cleared in this mutation.
func (m *RunEventMutation) NamespaceCleared() bool {
	_, ok := m.clearedFields[runevent.FieldNamespace]
	return ok
}

// ResetNamespace resets all changes to the "namespace" field.
func (m *RunEventMutation) ResetNamespace() {
	m.namespace = nil
	delete(m.clearedFields, runevent.FieldNamespace)
}

// SetPayload sets the "payload" field.
func (m *RunEventMutation) SetPayload(jm json.RawMessage) {
	m.payload = &jm
	m.appendpayload = nil
}

// Payload returns the value of the "payload" field in the mutation.
func (m *RunEventMutation) Payload() (r json.RawMessage, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// AppendPayload adds jm to the "payload" field.
func (m *RunEventMutation) AppendPayload(jm json.RawMessage) {
	m.appendpayload = append(m.appendpayload, jm...)
}

// AppendedPayload returns the list of values that were appended to the "payload" field in this mutation.
func (m *RunEventMutation) AppendedPayload() (json.RawMessage, bool) {
	if len(m.appendpayload) == 0 {
		return nil, false
	}
	return m.appendpayload, true
}

// ClearPayload clears the value of the "payload" field.
func (m *RunEventMutation) ClearPayload() {
	m.payload = nil
	m.appendpayload = nil
	m.clearedFields[runevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *RunEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[runevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *RunEventMutation) ResetPayload() {
	m.payload = nil
	m.appendpayload = nil
	delete(m.clearedFields, runevent.FieldPayload)
}

// SetRetriable sets the "retriable" field.
func (m *RunEventMutation) SetRetriable(b bool) {
	m.retriable = &b
}

// Retriable returns the value of the "retriable" field in the mutation.
func (m *RunEventMutation) Retriable() (r bool, exists bool) {
	v := m.retriable
	if v == nil {
		return
	}
	return *v, true
}

// OldRetriable returns the old "retriable" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldRetriable(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetriable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetriable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetriable: %w", err)
	}
	return oldValue.Retriable, nil
}

// ClearRetriable clears the value of the "retriable" field.
func (m *RunEventMutation) ClearRetriable() {
	m.retriable = nil
	m.clearedFields[runevent.FieldRetriable] = struct{}{}
}

// RetriableCleared returns if the "retriable" field was cleared in this mutation.
func (m *RunEventMutation) RetriableCleared() bool {
	_, ok := m.clearedFields[runevent.FieldRetriable]
	return ok
}

// ResetRetriable resets all changes to the "retriable" field.
func (m *RunEventMutation) ResetRetriable() {
	m.retriable = nil
	delete(m.clearedFields, runevent.FieldRetriable)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the WorkflowRun entity.
func (m *RunEventMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[runevent.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the WorkflowRun entity was cleared.
func (m *RunEventMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RunEventMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RunEventMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RunEventMutation builder.
func (m *RunEventMutation) Where(ps ...predicate.RunEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunEvent).
func (m *RunEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.run != nil {
		fields = append(fields, runevent.FieldRunID)
	}
	if m.index != nil {
		fields = append(fields, runevent.FieldIndex)
	}
	if m.kind != nil {
		fields = append(fields, runevent.FieldKind)
	}
	if m.step_id != nil {
		fields = append(fields, runevent.FieldStepID)
	}
	if m.call_ordinal != nil {
		fields = append(fields, runevent.FieldCallOrdinal)
	}
	if m.namespace != nil {
		fields = append(fields, runevent.FieldNamespace)
	}
	if m.payload != nil {
		fields = append(fields, runevent.FieldPayload)
	}
	if m.retriable != nil {
		fields = append(fields, runevent.FieldRetriable)
	}
	if m.created_at != nil {
		fields = append(fields, runevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runevent.FieldRunID:
		return m.RunID()
	case runevent.FieldIndex:
		return m.Index()
	case runevent.FieldKind:
		return m.Kind()
	case runevent.FieldStepID:
		return m.StepID()
	case runevent.FieldCallOrdinal:
		return m.CallOrdinal()
	case runevent.FieldNamespace:
		return m.Namespace()
	case runevent.FieldPayload:
		return m.Payload()
	case runevent.FieldRetriable:
		return m.Retriable()
	case runevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runevent.FieldRunID:
		return m.OldRunID(ctx)
	case runevent.FieldIndex:
		return m.OldIndex(ctx)
	case runevent.FieldKind:
		return m.OldKind(ctx)
	case runevent.FieldStepID:
		return m.OldStepID(ctx)
	case runevent.FieldCallOrdinal:
		return m.OldCallOrdinal(ctx)
	case runevent.FieldNamespace:
		return m.OldNamespace(ctx)
	case runevent.FieldPayload:
		return m.OldPayload(ctx)
	case runevent.FieldRetriable:
		return m.OldRetriable(ctx)
	case runevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RunEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runevent.FieldIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndex(v)
		return nil
	case runevent.FieldKind:
		v, ok := value.(runevent.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case runevent.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case runevent.FieldCallOrdinal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallOrdinal(v)
		return nil
	case runevent.FieldNamespace:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNamespace(v)
		return nil
	case runevent.FieldPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case runevent.FieldRetriable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetriable(v)
		return nil
	case runevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RunEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunEventMutation) AddedFields() []string {
	var fields []string
	if m.addindex != nil {
		fields = append(fields, runevent.FieldIndex)
	}
	if m.addcall_ordinal != nil {
		fields = append(fields, runevent.FieldCallOrdinal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case runevent.FieldIndex:
		return m.AddedIndex()
	case runevent.FieldCallOrdinal:
		return m.AddedCallOrdinal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case runevent.FieldIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIndex(v)
		return nil
	case runevent.FieldCallOrdinal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCallOrdinal(v)
		return nil
	}
	return fmt.Errorf("unknown RunEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(runevent.FieldStepID) {
		fields = append(fields, runevent.FieldStepID)
	}
	if m.FieldCleared(runevent.FieldCallOrdinal) {
		fields = append(fields, runevent.FieldCallOrdinal)
	}
	if m.FieldCleared(runevent.FieldNamespace) {
		fields = append(fields, runevent.FieldNamespace)
	}
	if m.FieldCleared(runevent.FieldPayload) {
		fields = append(fields, runevent.FieldPayload)
	}
	if m.FieldCleared(runevent.FieldRetriable) {
		fields = append(fields, runevent.FieldRetriable)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunEventMutation) ClearField(name string) error {
	switch name {
	case runevent.FieldStepID:
		m.ClearStepID()
		return nil
	case runevent.FieldCallOrdinal:
		m.ClearCallOrdinal()
		return nil
	case runevent.FieldNamespace:
		m.ClearNamespace()
		return nil
	case runevent.FieldPayload:
		m.ClearPayload()
		return nil
	case runevent.FieldRetriable:
		m.ClearRetriable()
		return nil
	}
	return fmt.Errorf("unknown RunEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunEventMutation) ResetField(name string) error {
	switch name {
	case runevent.FieldRunID:
		m.ResetRunID()
		return nil
	case runevent.FieldIndex:
		m.ResetIndex()
		return nil
	case runevent.FieldKind:
		m.ResetKind()
		return nil
	case runevent.FieldStepID:
		m.ResetStepID()
		return nil
	case runevent.FieldCallOrdinal:
		m.ResetCallOrdinal()
		return nil
	case runevent.FieldNamespace:
		m.ResetNamespace()
		return nil
	case runevent.FieldPayload:
		m.ResetPayload()
		return nil
	case runevent.FieldRetriable:
		m.ResetRetriable()
		return nil
	case runevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RunEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, runevent.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runevent.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, runevent.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunEventMutation) EdgeCleared(name string) bool {
	switch name {
	case runevent.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunEventMutation) ClearEdge(name string) error {
	switch name {
	case runevent.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RunEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunEventMutation) ResetEdge(name string) error {
	switch name {
	case runevent.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RunEvent edge %s", name)
}

// SlideMutation represents an operation that mutates the Slide nodes in the graph.
type SlideMutation struct {
	config
	op                          Op
	typ                         string
	id                          *int
	video_id                    *string
	slide_number                *int
	addslide_number             *int
	start_seconds               *float64
	addstart_seconds            *float64
	end_seconds                 *float64
	addend_seconds              *float64
	first_image_url             *string
	first_source_uri            *string
	first_has_text              *bool
	first_text_confidence       *float64
	addfirst_text_confidence    *float64
	first_upload_error          *string
	first_duplicate_of_slide    *int
	addfirst_duplicate_of_slide *int
	first_duplicate_of_frame    *string
	last_image_url              *string
	last_source_uri             *string
	last_has_text               *bool
	last_text_confidence        *float64
	addlast_text_confidence     *float64
	last_upload_error           *string
	last_duplicate_of_slide     *int
	addlast_duplicate_of_slide  *int
	last_duplicate_of_frame     *string
	created_at                  *time.Time
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*Slide, error)
	predicates                  []predicate.Slide
}

var _ ent.Mutation = (*SlideMutation)(nil)

// slideOption allows management of the mutation configuration using functional options.
type slideOption func(*SlideMutation)

// newSlideMutation creates new mutation for the Slide entity.
func newSlideMutation(c config, op Op, opts ...slideOption) *SlideMutation {
	m := &SlideMutation{
		config:        c,
		op:            op,
		typ:           TypeSlide,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSlideID sets the ID field of the mutation.
func withSlideID(id int) slideOption {
	return func(m *SlideMutation) {
		var (
			err   error
			once  sync.Once
			value *Slide
		)
		m.oldValue = func(ctx context.Context) (*Slide, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Slide.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSlide sets the old Slide of the mutation.
func withSlide(node *Slide) slideOption {
	return func(m *SlideMutation) {
		m.oldValue = func(context.Context) (*Slide, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SlideMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SlideMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SlideMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SlideMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Slide.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVideoID sets the "video_id" field.
func (m *SlideMutation) SetVideoID(s string) {
	m.video_id = &s
}

// VideoID returns the value of the "video_id" field in the mutation.
func (m *SlideMutation) VideoID() (r string, exists bool) {
	v := m.video_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoID returns the old "video_id" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldVideoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoID: %w", err)
	}
	return oldValue.VideoID, nil
}

// ResetVideoID resets all changes to the "video_id" field.
func (m *SlideMutation) ResetVideoID() {
	m.video_id = nil
}

// SetSlideNumber sets the "slide_number" field.
func (m *SlideMutation) SetSlideNumber(i int) {
	m.slide_number = &i
	m.addslide_number = nil
}

// SlideNumber returns the value of the "slide_number" field in the mutation.
func (m *SlideMutation) SlideNumber() (r int, exists bool) {
	v := m.slide_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSlideNumber returns the old "slide_number" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldSlideNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlideNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlideNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlideNumber: %w", err)
	}
	return oldValue.SlideNumber, nil
}

// AddSlideNumber adds i to the "slide_number" field.
func (m *SlideMutation) AddSlideNumber(i int) {
	if m.addslide_number != nil {
		*m.addslide_number += i
	} else {
		m.addslide_number = &i
	}
}

// AddedSlideNumber returns the value that was added to the "slide_number" field in this mutation.
func (m *SlideMutation) AddedSlideNumber() (r int, exists bool) {
	v := m.addslide_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSlideNumber resets all changes to the "slide_number" field.
func (m *SlideMutation) ResetSlideNumber() {
	m.slide_number = nil
	m.addslide_number = nil
}

// SetStartSeconds sets the "start_seconds" field.
func (m *SlideMutation) SetStartSeconds(f float64) {
	m.start_seconds = &f
	m.addstart_seconds = nil
}

// StartSeconds returns the value of the "start_seconds" field in the mutation.
func (m *SlideMutation) StartSeconds() (r float64, exists bool) {
	v := m.start_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldStartSeconds returns the old "start_seconds" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldStartSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartSeconds: %w", err)
	}
	return oldValue.StartSeconds, nil
}

// AddStartSeconds adds f to the "start_seconds" field.
func (m *SlideMutation) AddStartSeconds(f float64) {
	if m.addstart_seconds != nil {
		*m.addstart_seconds += f
	} else {
		m.addstart_seconds = &f
	}
}

// AddedStartSeconds returns the value that was added to the "start_seconds" field in this mutation.
func (m *SlideMutation) AddedStartSeconds() (r float64, exists bool) {
	v := m.addstart_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartSeconds resets all changes to the "start_seconds" field.
func (m *SlideMutation) ResetStartSeconds() {
	m.start_seconds = nil
	m.addstart_seconds = nil
}

// SetEndSeconds sets the "end_seconds" field.
func (m *SlideMutation) SetEndSeconds(f float64) {
	m.end_seconds = &f
	m.addend_seconds = nil
}

// EndSeconds returns the value of the "end_seconds" field in the mutation.
func (m *SlideMutation) EndSeconds() (r float64, exists bool) {
	v := m.end_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldEndSeconds returns the old "end_seconds" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldEndSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndSeconds: %w", err)
	}
	return oldValue.EndSeconds, nil
}

// AddEndSeconds adds f to the "end_seconds" field.
func (m *SlideMutation) AddEndSeconds(f float64) {
	if m.addend_seconds != nil {
		*m.addend_seconds += f
	} else {
		m.addend_seconds = &f
	}
}

// AddedEndSeconds returns the value that was added to the "end_seconds" field in this mutation.
func (m *SlideMutation) AddedEndSeconds() (r float64, exists bool) {
	v := m.addend_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetEndSeconds resets all changes to the "end_seconds" field.
func (m *SlideMutation) ResetEndSeconds() {
	m.end_seconds = nil
	m.addend_seconds = nil
}

// SetFirstImageURL sets the "first_image_url" field.
func (m *SlideMutation) SetFirstImageURL(s string) {
	m.first_image_url = &s
}

// FirstImageURL returns the value of the "first_image_url" field in the mutation.
func (m *SlideMutation) FirstImageURL() (r string, exists bool) {
	v := m.first_image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstImageURL returns the old "first_image_url" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldFirstImageURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstImageURL: %w", err)
	}
	return oldValue.FirstImageURL, nil
}

// ClearFirstImageURL clears the value of the "first_image_url" field.
func (m *SlideMutation) ClearFirstImageURL() {
	m.first_image_url = nil
	m.clearedFields[slide.FieldFirstImageURL] = struct{}{}
}

// FirstImageURLCleared returns if the "first_image_url" field was cleared in this mutation.
func (m *SlideMutation) FirstImageURLCleared() bool {
	_, ok := m.clearedFields[slide.FieldFirstImageURL]
	return ok
}

// ResetFirstImageURL resets all changes to the "first_image_url" field.
func (m *SlideMutation) ResetFirstImageURL() {
	m.first_image_url = nil
	delete(m.clearedFields, slide.FieldFirstImageURL)
}

// SetFirstSourceURI sets the "first_source_uri" field.
func (m *SlideMutation) SetFirstSourceURI(s string) {
	m.first_source_uri = &s
}

// FirstSourceURI returns the value of the "first_source_uri" field in the mutation.
func (m *SlideMutation) FirstSourceURI() (r string, exists bool) {
	v := m.first_source_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSourceURI returns the old "first_source_uri" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldFirstSourceURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSourceURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSourceURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSourceURI: %w", err)
	}
	return oldValue.FirstSourceURI, nil
}

// ClearFirstSourceURI clears the value of the "first_source_uri" field.
func (m *SlideMutation) ClearFirstSourceURI() {
	m.first_source_uri = nil
	m.clearedFields[slide.FieldFirstSourceURI] = struct{}{}
}

// FirstSourceURICleared returns if the "first_source_uri" field was cleared in this mutation.
func (m *SlideMutation) FirstSourceURICleared() bool {
	_, ok := m.clearedFields[slide.FieldFirstSourceURI]
	return ok
}

// ResetFirstSourceURI resets all changes to the "first_source_uri" field.
func (m *SlideMutation) ResetFirstSourceURI() {
	m.first_source_uri = nil
	delete(m.clearedFields, slide.FieldFirstSourceURI)
}

// SetFirstHasText sets the "first_has_text" field.
func (m *SlideMutation) SetFirstHasText(b bool) {
	m.first_has_text = &b
}

// FirstHasText returns the value of the "first_has_text" field in the mutation.
func (m *SlideMutation) FirstHasText() (r bool, exists bool) {
	v := m.first_has_text
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstHasText returns the old "first_has_text" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldFirstHasText(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstHasText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstHasText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstHasText: %w", err)
	}
	return oldValue.FirstHasText, nil
}

// ResetFirstHasText resets all changes to the "first_has_text" field.
func (m *SlideMutation) ResetFirstHasText() {
	m.first_has_text = nil
}

// SetFirstTextConfidence sets the "first_text_confidence" field.
func (m *SlideMutation) SetFirstTextConfidence(f float64) {
	m.first_text_confidence = &f
	m.addfirst_text_confidence = nil
}

// FirstTextConfidence returns the value of the "first_text_confidence" field in the mutation.
func (m *SlideMutation) FirstTextConfidence() (r float64, exists bool) {
	v := m.first_text_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstTextConfidence returns the old "first_text_confidence" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldFirstTextConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstTextConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstTextConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstTextConfidence: %w", err)
	}
	return oldValue.FirstTextConfidence, nil
}

// AddFirstTextConfidence adds f to the "first_text_confidence" field.
func (m *SlideMutation) AddFirstTextConfidence(f float64) {
	if m.addfirst_text_confidence != nil {
		*m.addfirst_text_confidence += f
	} else {
		m.addfirst_text_confidence = &f
	}
}

// AddedFirstTextConfidence returns the value that was added to the "first_text_confidence" field in this mutation.
func (m *SlideMutation) AddedFirstTextConfidence() (r float64, exists bool) {
	v := m.addfirst_text_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearFirstTextConfidence clears the value of the "first_text_confidence" field.
func (m *SlideMutation) ClearFirstTextConfidence() {
	m.first_text_confidence = nil
	m.addfirst_text_confidence = nil
	m.clearedFields[slide.FieldFirstTextConfidence] = struct{}{}
}

// FirstTextConfidenceCleared returns if the "first_text_confidence" field was cleared in this mutation.
func (m *SlideMutation) FirstTextConfidenceCleared() bool {
	_, ok := m.clearedFields[slide.FieldFirstTextConfidence]
	return ok
}

// ResetFirstTextConfidence resets all changes to the "first_text_confidence" field.
func (m *SlideMutation) ResetFirstTextConfidence() {
	m.first_text_confidence = nil
	m.addfirst_text_confidence = nil
	delete(m.clearedFields, slide.FieldFirstTextConfidence)
}

// SetFirstUploadError sets the "first_upload_error" field.
func (m *SlideMutation) SetFirstUploadError(s string) {
	m.first_upload_error = &s
}

// FirstUploadError returns the value of the "first_upload_error" field in the mutation.
func (m *SlideMutation) FirstUploadError() (r string, exists bool) {
	v := m.first_upload_error
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstUploadError returns the old "first_upload_error" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldFirstUploadError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstUploadError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstUploadError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstUploadError: %w", err)
	}
	return oldValue.FirstUploadError, nil
}

// ClearFirstUploadError clears the value of the "first_upload_error" field.
func (m *SlideMutation) ClearFirstUploadError() {
	m.first_upload_error = nil
	m.clearedFields[slide.FieldFirstUploadError] = struct{}{}
}

// FirstUploadErrorCleared returns if the "first_upload_error" field was cleared in this mutation.
func (m *SlideMutation) FirstUploadErrorCleared() bool {
	_, ok := m.clearedFields[slide.FieldFirstUploadError]
	return ok
}

// ResetFirstUploadError resets all changes to the "first_upload_error" field.
func (m *SlideMutation) ResetFirstUploadError() {
	m.first_upload_error = nil
	delete(m.clearedFields, slide.FieldFirstUploadError)
}

// SetFirstDuplicateOfSlide sets the "first_duplicate_of_slide" field.
func (m *SlideMutation) SetFirstDuplicateOfSlide(i int) {
	m.first_duplicate_of_slide = &i
	m.addfirst_duplicate_of_slide = nil
}

// FirstDuplicateOfSlide returns the value of the "first_duplicate_of_slide" field in the mutation.
func (m *SlideMutation) FirstDuplicateOfSlide() (r int, exists bool) {
	v := m.first_duplicate_of_slide
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstDuplicateOfSlide returns the old "first_duplicate_of_slide" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldFirstDuplicateOfSlide(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstDuplicateOfSlide is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstDuplicateOfSlide requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstDuplicateOfSlide: %w", err)
	}
	return oldValue.FirstDuplicateOfSlide, nil
}

// AddFirstDuplicateOfSlide adds i to the "first_duplicate_of_slide" field.
func (m *SlideMutation) AddFirstDuplicateOfSlide(i int) {
	if m.addfirst_duplicate_of_slide != nil {
		*m.addfirst_duplicate_of_slide += i
	} else {
		m.addfirst_duplicate_of_slide = &i
	}
}

// AddedFirstDuplicateOfSlide returns the value that was added to the "first_duplicate_of_slide" field in this mutation.
func (m *SlideMutation) AddedFirstDuplicateOfSlide() (r int, exists bool) {
	v := m.addfirst_duplicate_of_slide
	if v == nil {
		return
	}
	return *v, true
}

// ClearFirstDuplicateOfSlide clears the value of the "first_duplicate_of_slide" field.
func (m *SlideMutation) ClearFirstDuplicateOfSlide() {
	m.first_duplicate_of_slide = nil
	m.addfirst_duplicate_of_slide = nil
	m.clearedFields[slide.FieldFirstDuplicateOfSlide] = struct{}{}
}

// FirstDuplicateOfSlideCleared returns if the "first_duplicate_of_slide" field was cleared in this mutation.
func (m *SlideMutation) FirstDuplicateOfSlideCleared() bool {
	_, ok := m.clearedFields[slide.FieldFirstDuplicateOfSlide]
	return ok
}

// ResetFirstDuplicateOfSlide resets all changes to the "first_duplicate_of_slide" field.
func (m *SlideMutation) ResetFirstDuplicateOfSlide() {
	m.first_duplicate_of_slide = nil
	m.addfirst_duplicate_of_slide = nil
	delete(m.clearedFields, slide.FieldFirstDuplicateOfSlide)
}

// SetFirstDuplicateOfFrame sets the "first_duplicate_of_frame" field.
func (m *SlideMutation) SetFirstDuplicateOfFrame(s string) {
	m.first_duplicate_of_frame = &s
}

// FirstDuplicateOfFrame returns the value of the "first_duplicate_of_frame" field in the mutation.
func (m *SlideMutation) FirstDuplicateOfFrame() (r string, exists bool) {
	v := m.first_duplicate_of_frame
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstDuplicateOfFrame returns the old "first_duplicate_of_frame" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldFirstDuplicateOfFrame(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstDuplicateOfFrame is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstDuplicateOfFrame requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstDuplicateOfFrame: %w", err)
	}
	return oldValue.FirstDuplicateOfFrame, nil
}

// ClearFirstDuplicateOfFrame clears the value of the "first_duplicate_of_frame" field.
func (m *SlideMutation) ClearFirstDuplicateOfFrame() {
	m.first_duplicate_of_frame = nil
	m.clearedFields[slide.FieldFirstDuplicateOfFrame] = struct{}{}
}

// FirstDuplicateOfFrameCleared returns if the "first_duplicate_of_frame" field was cleared in this mutation.
func (m *SlideMutation) FirstDuplicateOfFrameCleared() bool {
	_, ok := m.clearedFields[slide.FieldFirstDuplicateOfFrame]
	return ok
}

// ResetFirstDuplicateOfFrame resets all changes to the "first_duplicate_of_frame" field.
func (m *SlideMutation) ResetFirstDuplicateOfFrame() {
	m.first_duplicate_of_frame = nil
	delete(m.clearedFields, slide.FieldFirstDuplicateOfFrame)
}

// SetLastImageURL sets the "last_image_url" field.
func (m *SlideMutation) SetLastImageURL(s string) {
	m.last_image_url = &s
}

// LastImageURL returns the value of the "last_image_url" field in the mutation.
func (m *SlideMutation) LastImageURL() (r string, exists bool) {
	v := m.last_image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldLastImageURL returns the old "last_image_url" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldLastImageURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastImageURL: %w", err)
	}
	return oldValue.LastImageURL, nil
}

// ClearLastImageURL clears the value of the "last_image_url" field.
func (m *SlideMutation) ClearLastImageURL() {
	m.last_image_url = nil
	m.clearedFields[slide.FieldLastImageURL] = struct{}{}
}

// LastImageURLCleared returns if the "last_image_url" field was cleared in this mutation.
func (m *SlideMutation) LastImageURLCleared() bool {
	_, ok := m.clearedFields[slide.FieldLastImageURL]
	return ok
}

// ResetLastImageURL resets all changes to the "last_image_url" field.
func (m *SlideMutation) ResetLastImageURL() {
	m.last_image_url = nil
	delete(m.clearedFields, slide.FieldLastImageURL)
}

// SetLastSourceURI sets the "last_source_uri" field.
func (m *SlideMutation) SetLastSourceURI(s string) {
	m.last_source_uri = &s
}

// LastSourceURI returns the value of the "last_source_uri" field in the mutation.
func (m *SlideMutation) LastSourceURI() (r string, exists bool) {
	v := m.last_source_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSourceURI returns the old "last_source_uri" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldLastSourceURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSourceURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSourceURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSourceURI: %w", err)
	}
	return oldValue.LastSourceURI, nil
}

// ClearLastSourceURI clears the value of the "last_source_uri" field.
func (m *SlideMutation) ClearLastSourceURI() {
	m.last_source_uri = nil
	m.clearedFields[slide.FieldLastSourceURI] = struct{}{}
}

// LastSourceURICleared returns if the "last_source_uri" field was cleared in this mutation.
func (m *SlideMutation) LastSourceURICleared() bool {
	_, ok := m.clearedFields[slide.FieldLastSourceURI]
	return ok
}

// ResetLastSourceURI resets all changes to the "last_source_uri" field.
func (m *SlideMutation) ResetLastSourceURI() {
	m.last_source_uri = nil
	delete(m.clearedFields, slide.FieldLastSourceURI)
}

// SetLastHasText sets the "last_has_text" field.
func (m *SlideMutation) SetLastHasText(b bool) {
	m.last_has_text = &b
}

// LastHasText returns the value of the "last_has_text" field in the mutation.
func (m *SlideMutation) LastHasText() (r bool, exists bool) {
	v := m.last_has_text
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHasText returns the old "last_has_text" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldLastHasText(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHasText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHasText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHasText: %w", err)
	}
	return oldValue.LastHasText, nil
}

// ResetLastHasText resets all changes to the "last_has_text" field.
func (m *SlideMutation) ResetLastHasText() {
	m.last_has_text = nil
}

// SetLastTextConfidence sets the "last_text_confidence" field.
func (m *SlideMutation) SetLastTextConfidence(f float64) {
	m.last_text_confidence = &f
	m.addlast_text_confidence = nil
}

// LastTextConfidence returns the value of the "last_text_confidence" field in the mutation.
func (m *SlideMutation) LastTextConfidence() (r float64, exists bool) {
	v := m.last_text_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldLastTextConfidence returns the old "last_text_confidence" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldLastTextConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastTextConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastTextConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastTextConfidence: %w", err)
	}
	return oldValue.LastTextConfidence, nil
}

// AddLastTextConfidence adds f to the "last_text_confidence" field.
func (m *SlideMutation) AddLastTextConfidence(f float64) {
	if m.addlast_text_confidence != nil {
		*m.addlast_text_confidence += f
	} else {
		m.addlast_text_confidence = &f
	}
}

// AddedLastTextConfidence returns the value that was added to the "last_text_confidence" field in this mutation.
func (m *SlideMutation) AddedLastTextConfidence() (r float64, exists bool) {
	v := m.addlast_text_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastTextConfidence clears the value of the "last_text_confidence" field.
func (m *SlideMutation) ClearLastTextConfidence() {
	m.last_text_confidence = nil
	m.addlast_text_confidence = nil
	m.clearedFields[slide.FieldLastTextConfidence] = struct{}{}
}

// LastTextConfidenceCleared returns if the "last_text_confidence" field was cleared in this mutation.
func (m *SlideMutation) LastTextConfidenceCleared() bool {
	_, ok := m.clearedFields[slide.FieldLastTextConfidence]
	return ok
}

// ResetLastTextConfidence resets all changes to the "last_text_confidence" field.
func (m *SlideMutation) ResetLastTextConfidence() {
	m.last_text_confidence = nil
	m.addlast_text_confidence = nil
	delete(m.clearedFields, slide.FieldLastTextConfidence)
}

// SetLastUploadError sets the "last_upload_error" field.
func (m *SlideMutation) SetLastUploadError(s string) {
	m.last_upload_error = &s
}

// LastUploadError returns the value of the "last_upload_error" field in the mutation.
func (m *SlideMutation) LastUploadError() (r string, exists bool) {
	v := m.last_upload_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUploadError returns the old "last_upload_error" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldLastUploadError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUploadError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUploadError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUploadError: %w", err)
	}
	return oldValue.LastUploadError, nil
}

// ClearLastUploadError clears the value of the "last_upload_error" field.
func (m *SlideMutation) ClearLastUploadError() {
	m.last_upload_error = nil
	m.clearedFields[slide.FieldLastUploadError] = struct{}{}
}

// LastUploadErrorCleared returns if the "last_upload_error" field was cleared in this mutation.
func (m *SlideMutation) LastUploadErrorCleared() bool {
	_, ok := m.clearedFields[slide.FieldLastUploadError]
	return ok
}

// ResetLastUploadError resets all changes to the "last_upload_error" field.
func (m *SlideMutation) ResetLastUploadError() {
	m.last_upload_error = nil
	delete(m.clearedFields, slide.FieldLastUploadError)
}

// SetLastDuplicateOfSlide sets the "last_duplicate_of_slide" field.
func (m *SlideMutation) SetLastDuplicateOfSlide(i int) {
	m.last_duplicate_of_slide = &i
	m.addlast_duplicate_of_slide = nil
}

// LastDuplicateOfSlide returns the value of the "last_duplicate_of_slide" field in the mutation.
func (m *SlideMutation) LastDuplicateOfSlide() (r int, exists bool) {
	v := m.last_duplicate_of_slide
	if v == nil {
		return
	}
	return *v, true
}

// OldLastDuplicateOfSlide returns the old "last_duplicate_of_slide" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldLastDuplicateOfSlide(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastDuplicateOfSlide is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastDuplicateOfSlide requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastDuplicateOfSlide: %w", err)
	}
	return oldValue.LastDuplicateOfSlide, nil
}

// AddLastDuplicateOfSlide adds i to the "last_duplicate_of_slide" field.
func (m *SlideMutation) AddLastDuplicateOfSlide(i int) {
	if m.addlast_duplicate_of_slide != nil {
		*m.addlast_duplicate_of_slide += i
	} else {
		m.addlast_duplicate_of_slide = &i
	}
}

// AddedLastDuplicateOfSlide returns the value that was added to the "last_duplicate_of_slide" field in this mutation.
func (m *SlideMutation) AddedLastDuplicateOfSlide() (r int, exists bool) {
	v := m.addlast_duplicate_of_slide
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastDuplicateOfSlide clears the value of the "last_duplicate_of_slide" field.
func (m *SlideMutation) ClearLastDuplicateOfSlide() {
	m.last_duplicate_of_slide = nil
	m.addlast_duplicate_of_slide = nil
	m.clearedFields[slide.FieldLastDuplicateOfSlide] = struct{}{}
}

// LastDuplicateOfSlideCleared returns if the "last_duplicate_of_slide" field was cleared in this mutation.
func (m *SlideMutation) LastDuplicateOfSlideCleared() bool {
	_, ok := m.clearedFields[slide.FieldLastDuplicateOfSlide]
	return ok
}

// ResetLastDuplicateOfSlide resets all changes to the "last_duplicate_of_slide" field.
func (m *SlideMutation) ResetLastDuplicateOfSlide() {
	m.last_duplicate_of_slide = nil
	m.addlast_duplicate_of_slide = nil
	delete(m.clearedFields, slide.FieldLastDuplicateOfSlide)
}

// SetLastDuplicateOfFrame sets the "last_duplicate_of_frame" field.
func (m *SlideMutation) SetLastDuplicateOfFrame(s string) {
	m.last_duplicate_of_frame = &s
}

// LastDuplicateOfFrame returns the value of the "last_duplicate_of_frame" field in the mutation.
func (m *SlideMutation) LastDuplicateOfFrame() (r string, exists bool) {
	v := m.last_duplicate_of_frame
	if v == nil {
		return
	}
	return *v, true
}

// OldLastDuplicateOfFrame returns the old "last_duplicate_of_frame" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldLastDuplicateOfFrame(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastDuplicateOfFrame is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastDuplicateOfFrame requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastDuplicateOfFrame: %w", err)
	}
	return oldValue.LastDuplicateOfFrame, nil
}

// ClearLastDuplicateOfFrame clears the value of the "last_duplicate_of_frame" field.
func (m *SlideMutation) ClearLastDuplicateOfFrame() {
	m.last_duplicate_of_frame = nil
	m.clearedFields[slide.FieldLastDuplicateOfFrame] = struct{}{}
}

// LastDuplicateOfFrameCleared returns if the "last_duplicate_of_frame" field was cleared in this mutation.
func (m *SlideMutation) LastDuplicateOfFrameCleared() bool {
	_, ok := m.clearedFields[slide.FieldLastDuplicateOfFrame]
	return ok
}

// ResetLastDuplicateOfFrame resets all changes to the "last_duplicate_of_frame" field.
func (m *SlideMutation) ResetLastDuplicateOfFrame() {
	m.last_duplicate_of_frame = nil
	delete(m.clearedFields, slide.FieldLastDuplicateOfFrame)
}

// SetCreatedAt sets the "created_at" field.
func (m *SlideMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SlideMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Slide entity.
// If the Slide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SlideMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SlideMutation builder.
func (m *SlideMutation) Where(ps ...predicate.Slide) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SlideMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SlideMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Slide, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SlideMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SlideMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Slide).
func (m *SlideMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SlideMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.video_id != nil {
		fields = append(fields, slide.FieldVideoID)
	}
	if m.slide_number != nil {
		fields = append(fields, slide.FieldSlideNumber)
	}
	if m.start_seconds != nil {
		fields = append(fields, slide.FieldStartSeconds)
	}
	if m.end_seconds != nil {
		fields = append(fields, slide.FieldEndSeconds)
	}
	if m.first_image_url != nil {
		fields = append(fields, slide.FieldFirstImageURL)
	}
	if m.first_source_uri != nil {
		fields = append(fields, slide.FieldFirstSourceURI)
	}
	if m.first_has_text != nil {
		fields = append(fields, slide.FieldFirstHasText)
	}
	if m.first_text_confidence != nil {
		fields = append(fields, slide.FieldFirstTextConfidence)
	}
	if m.first_upload_error != nil {
		fields = append(fields, slide.FieldFirstUploadError)
	}
	if m.first_duplicate_of_slide != nil {
		fields = append(fields, slide.FieldFirstDuplicateOfSlide)
	}
	if m.first_duplicate_of_frame != nil {
		fields = append(fields, slide.FieldFirstDuplicateOfFrame)
	}
	if m.last_image_url != nil {
		fields = append(fields, slide.FieldLastImageURL)
	}
	if m.last_source_uri != nil {
		fields = append(fields, slide.FieldLastSourceURI)
	}
	if m.last_has_text != nil {
		fields = append(fields, slide.FieldLastHasText)
	}
	if m.last_text_confidence != nil {
		fields = append(fields, slide.FieldLastTextConfidence)
	}
	if m.last_upload_error != nil {
		fields = append(fields, slide.FieldLastUploadError)
	}
	if m.last_duplicate_of_slide != nil {
		fields = append(fields, slide.FieldLastDuplicateOfSlide)
	}
	if m.last_duplicate_of_frame != nil {
		fields = append(fields, slide.FieldLastDuplicateOfFrame)
	}
	if m.created_at != nil {
		fields = append(fields, slide.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SlideMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case slide.FieldVideoID:
		return m.VideoID()
	case slide.FieldSlideNumber:
		return m.SlideNumber()
	case slide.FieldStartSeconds:
		return m.StartSeconds()
	case slide.FieldEndSeconds:
		return m.EndSeconds()
	case slide.FieldFirstImageURL:
		return m.FirstImageURL()
	case slide.FieldFirstSourceURI:
		return m.FirstSourceURI()
	case slide.FieldFirstHasText:
		return m.FirstHasText()
	case slide.FieldFirstTextConfidence:
		return m.FirstTextConfidence()
	case slide.FieldFirstUploadError:
		return m.FirstUploadError()
	case slide.FieldFirstDuplicateOfSlide:
		return m.FirstDuplicateOfSlide()
	case slide.FieldFirstDuplicateOfFrame:
		return m.FirstDuplicateOfFrame()
	case slide.FieldLastImageURL:
		return m.LastImageURL()
	case slide.FieldLastSourceURI:
		return m.LastSourceURI()
	case slide.FieldLastHasText:
		return m.LastHasText()
	case slide.FieldLastTextConfidence:
		return m.LastTextConfidence()
	case slide.FieldLastUploadError:
		return m.LastUploadError()
	case slide.FieldLastDuplicateOfSlide:
		return m.LastDuplicateOfSlide()
	case slide.FieldLastDuplicateOfFrame:
		return m.LastDuplicateOfFrame()
	case slide.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SlideMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case slide.FieldVideoID:
		return m.OldVideoID(ctx)
	case slide.FieldSlideNumber:
		return m.OldSlideNumber(ctx)
	case slide.FieldStartSeconds:
		return m.OldStartSeconds(ctx)
	case slide.FieldEndSeconds:
		return m.OldEndSeconds(ctx)
	case slide.FieldFirstImageURL:
		return m.OldFirstImageURL(ctx)
	case slide.FieldFirstSourceURI:
		return m.OldFirstSourceURI(ctx)
	case slide.FieldFirstHasText:
		return m.OldFirstHasText(ctx)
	case slide.FieldFirstTextConfidence:
		return m.OldFirstTextConfidence(ctx)
	case slide.FieldFirstUploadError:
		return m.OldFirstUploadError(ctx)
	case slide.FieldFirstDuplicateOfSlide:
		return m.OldFirstDuplicateOfSlide(ctx)
	case slide.FieldFirstDuplicateOfFrame:
		return m.OldFirstDuplicateOfFrame(ctx)
	case slide.FieldLastImageURL:
		return m.OldLastImageURL(ctx)
	case slide.FieldLastSourceURI:
		return m.OldLastSourceURI(ctx)
	case slide.FieldLastHasText:
		return m.OldLastHasText(ctx)
	case slide.FieldLastTextConfidence:
		return m.OldLastTextConfidence(ctx)
	case slide.FieldLastUploadError:
		return m.OldLastUploadError(ctx)
	case slide.FieldLastDuplicateOfSlide:
		return m.OldLastDuplicateOfSlide(ctx)
	case slide.FieldLastDuplicateOfFrame:
		return m.OldLastDuplicateOfFrame(ctx)
	case slide.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Slide field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SlideMutation) SetField(name string, value ent.Value) error {
	switch name {
	case slide.FieldVideoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoID(v)
		return nil
	case slide.FieldSlideNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlideNumber(v)
		return nil
	case slide.FieldStartSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartSeconds(v)
		return nil
	case slide.FieldEndSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndSeconds(v)
		return nil
	case slide.FieldFirstImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstImageURL(v)
		return nil
	case slide.FieldFirstSourceURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSourceURI(v)
		return nil
	case slide.FieldFirstHasText:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstHasText(v)
		return nil
	case slide.FieldFirstTextConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstTextConfidence(v)
		return nil
	case slide.FieldFirstUploadError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstUploadError(v)
		return nil
	case slide.FieldFirstDuplicateOfSlide:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstDuplicateOfSlide(v)
		return nil
	case slide.FieldFirstDuplicateOfFrame:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstDuplicateOfFrame(v)
		return nil
	case slide.FieldLastImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastImageURL(v)
		return nil
	case slide.FieldLastSourceURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSourceURI(v)
		return nil
	case slide.FieldLastHasText:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHasText(v)
		return nil
	case slide.FieldLastTextConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastTextConfidence(v)
		return nil
	case slide.FieldLastUploadError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUploadError(v)
		return nil
	case slide.FieldLastDuplicateOfSlide:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastDuplicateOfSlide(v)
		return nil
	case slide.FieldLastDuplicateOfFrame:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastDuplicateOfFrame(v)
		return nil
	case slide.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Slide field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SlideMutation) AddedFields() []string {
	var fields []string
	if m.addslide_number != nil {
		fields = append(fields, slide.FieldSlideNumber)
	}
	if m.addstart_seconds != nil {
		fields = append(fields, slide.FieldStartSeconds)
	}
	if m.addend_seconds != nil {
		fields = append(fields, slide.FieldEndSeconds)
	}
	if m.addfirst_text_confidence != nil {
		fields = append(fields, slide.FieldFirstTextConfidence)
	}
	if m.addfirst_duplicate_of_slide != nil {
		fields = append(fields, slide.FieldFirstDuplicateOfSlide)
	}
	if m.addlast_text_confidence != nil {
		fields = append(fields, slide.FieldLastTextConfidence)
	}
	if m.addlast_duplicate_of_slide != nil {
		fields = append(fields, slide.FieldLastDuplicateOfSlide)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SlideMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case slide.FieldSlideNumber:
		return m.AddedSlideNumber()
	case slide.FieldStartSeconds:
		return m.AddedStartSeconds()
	case slide.FieldEndSeconds:
		return m.AddedEndSeconds()
	case slide.FieldFirstTextConfidence:
		return m.AddedFirstTextConfidence()
	case slide.FieldFirstDuplicateOfSlide:
		return m.AddedFirstDuplicateOfSlide()
	case slide.FieldLastTextConfidence:
		return m.AddedLastTextConfidence()
	case slide.FieldLastDuplicateOfSlide:
		return m.AddedLastDuplicateOfSlide()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SlideMutation) AddField(name string, value ent.Value) error {
	switch name {
	case slide.FieldSlideNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSlideNumber(v)
		return nil
	case slide.FieldStartSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartSeconds(v)
		return nil
	case slide.FieldEndSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndSeconds(v)
		return nil
	case slide.FieldFirstTextConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFirstTextConfidence(v)
		return nil
	case slide.FieldFirstDuplicateOfSlide:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFirstDuplicateOfSlide(v)
		return nil
	case slide.FieldLastTextConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastTextConfidence(v)
		return nil
	case slide.FieldLastDuplicateOfSlide:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastDuplicateOfSlide(v)
		return nil
	}
	return fmt.Errorf("unknown Slide numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SlideMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(slide.FieldFirstImageURL) {
		fields = append(fields, slide.FieldFirstImageURL)
	}
	if m.FieldCleared(slide.FieldFirstSourceURI) {
		fields = append(fields, slide.FieldFirstSourceURI)
	}
	if m.FieldCleared(slide.FieldFirstTextConfidence) {
		fields = append(fields, slide.FieldFirstTextConfidence)
	}
	if m.FieldCleared(slide.FieldFirstUploadError) {
		fields = append(fields, slide.FieldFirstUploadError)
	}
	if m.FieldCleared(slide.FieldFirstDuplicateOfSlide) {
		fields = append(fields, slide.FieldFirstDuplicateOfSlide)
	}
	if m.FieldCleared(slide.FieldFirstDuplicateOfFrame) {
		fields = append(fields, slide.FieldFirstDuplicateOfFrame)
	}
	if m.FieldCleared(slide.FieldLastImageURL) {
		fields = append(fields, slide.FieldLastImageURL)
	}
	if m.FieldCleared(slide.FieldLastSourceURI) {
		fields = append(fields, slide.FieldLastSourceURI)
	}
	if m.FieldCleared(slide.FieldLastTextConfidence) {
		fields = append(fields, slide.FieldLastTextConfidence)
	}
	if m.FieldCleared(slide.FieldLastUploadError) {
		fields = append(fields, slide.FieldLastUploadError)
	}
	if m.FieldCleared(slide.FieldLastDuplicateOfSlide) {
		fields = append(fields, slide.FieldLastDuplicateOfSlide)
	}
	if m.FieldCleared(slide.FieldLastDuplicateOfFrame) {
		fields = append(fields, slide.FieldLastDuplicateOfFrame)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SlideMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SlideMutation) ClearField(name string) error {
	switch name {
	case slide.FieldFirstImageURL:
		m.ClearFirstImageURL()
		return nil
	case slide.FieldFirstSourceURI:
		m.ClearFirstSourceURI()
		return nil
	case slide.FieldFirstTextConfidence:
		m.ClearFirstTextConfidence()
		return nil
	case slide.FieldFirstUploadError:
		m.ClearFirstUploadError()
		return nil
	case slide.FieldFirstDuplicateOfSlide:
		m.ClearFirstDuplicateOfSlide()
		return nil
	case slide.FieldFirstDuplicateOfFrame:
		m.ClearFirstDuplicateOfFrame()
		return nil
	case slide.FieldLastImageURL:
		m.ClearLastImageURL()
		return nil
	case slide.FieldLastSourceURI:
		m.ClearLastSourceURI()
		return nil
	case slide.FieldLastTextConfidence:
		m.ClearLastTextConfidence()
		return nil
	case slide.FieldLastUploadError:
		m.ClearLastUploadError()
		return nil
	case slide.FieldLastDuplicateOfSlide:
		m.ClearLastDuplicateOfSlide()
		return nil
	case slide.FieldLastDuplicateOfFrame:
		m.ClearLastDuplicateOfFrame()
		return nil
	}
	return fmt.Errorf("unknown Slide nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SlideMutation) ResetField(name string) error {
	switch name {
	case slide.FieldVideoID:
		m.ResetVideoID()
		return nil
	case slide.FieldSlideNumber:
		m.ResetSlideNumber()
		return nil
	case slide.FieldStartSeconds:
		m.ResetStartSeconds()
		return nil
	case slide.FieldEndSeconds:
		m.ResetEndSeconds()
		return nil
	case slide.FieldFirstImageURL:
		m.ResetFirstImageURL()
		return nil
	case slide.FieldFirstSourceURI:
		m.ResetFirstSourceURI()
		return nil
	case slide.FieldFirstHasText:
		m.ResetFirstHasText()
		return nil
	case slide.FieldFirstTextConfidence:
		m.ResetFirstTextConfidence()
		return nil
	case slide.FieldFirstUploadError:
		m.ResetFirstUploadError()
		return nil
	case slide.FieldFirstDuplicateOfSlide:
		m.ResetFirstDuplicateOfSlide()
		return nil
	case slide.FieldFirstDuplicateOfFrame:
		m.ResetFirstDuplicateOfFrame()
		return nil
	case slide.FieldLastImageURL:
		m.ResetLastImageURL()
		return nil
	case slide.FieldLastSourceURI:
		m.ResetLastSourceURI()
		return nil
	case slide.FieldLastHasText:
		m.ResetLastHasText()
		return nil
	case slide.FieldLastTextConfidence:
		m.ResetLastTextConfidence()
		return nil
	case slide.FieldLastUploadError:
		m.ResetLastUploadError()
		return nil
	case slide.FieldLastDuplicateOfSlide:
		m.ResetLastDuplicateOfSlide()
		return nil
	case slide.FieldLastDuplicateOfFrame:
		m.ResetLastDuplicateOfFrame()
		return nil
	case slide.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Slide field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SlideMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SlideMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SlideMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SlideMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SlideMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SlideMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SlideMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Slide unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SlideMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Slide edge %s", name)
}

// SlideAnalysisMutation represents an operation that mutates the SlideAnalysis nodes in the graph.
type SlideAnalysisMutation struct {
	config
	op              Op
	typ             string
	id              *int
	video_id        *string
	slide_number    *int
	addslide_number *int
	frame_position  *slideanalysis.FramePosition
	markdown        *string
	model           *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*SlideAnalysis, error)
	predicates      []predicate.SlideAnalysis
}

var _ ent.Mutation = (*SlideAnalysisMutation)(nil)

// slideanalysisOption allows management of the mutation configuration using functional options.
type slideanalysisOption func(*SlideAnalysisMutation)

// newSlideAnalysisMutation creates new mutation for the SlideAnalysis entity.
func newSlideAnalysisMutation(c config, op Op, opts ...slideanalysisOption) *SlideAnalysisMutation {
	m := &SlideAnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeSlideAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSlideAnalysisID sets the ID field of the mutation.
func withSlideAnalysisID(id int) slideanalysisOption {
	return func(m *SlideAnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *SlideAnalysis
		)
		m.oldValue = func(ctx context.Context) (*SlideAnalysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SlideAnalysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSlideAnalysis sets the old SlideAnalysis of the mutation.
func withSlideAnalysis(node *SlideAnalysis) slideanalysisOption {
	return func(m *SlideAnalysisMutation) {
		m.oldValue = func(context.Context) (*SlideAnalysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SlideAnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SlideAnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SlideAnalysisMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SlideAnalysisMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SlideAnalysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVideoID sets the "video_id" field.
func (m *SlideAnalysisMutation) SetVideoID(s string) {
	m.video_id = &s
}

// VideoID returns the value of the "video_id" field in the mutation.
func (m *SlideAnalysisMutation) VideoID() (r string, exists bool) {
	v := m.video_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoID returns the old "video_id" field's value of the SlideAnalysis entity.
// If the SlideAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideAnalysisMutation) OldVideoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoID: %w", err)
	}
	return oldValue.VideoID, nil
}

// ResetVideoID resets all changes to the "video_id" field.
func (m *SlideAnalysisMutation) ResetVideoID() {
	m.video_id = nil
}

// SetSlideNumber sets the "slide_number" field.
func (m *SlideAnalysisMutation) SetSlideNumber(i int) {
	m.slide_number = &i
	m.addslide_number = nil
}

// SlideNumber returns the value of the "slide_number" field in the mutation.
func (m *SlideAnalysisMutation) SlideNumber() (r int, exists bool) {
	v := m.slide_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSlideNumber returns the old "slide_number" field's value of the SlideAnalysis entity.
// If the SlideAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideAnalysisMutation) OldSlideNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlideNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlideNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlideNumber: %w", err)
	}
	return oldValue.SlideNumber, nil
}

// AddSlideNumber adds i to the "slide_number" field.
func (m *SlideAnalysisMutation) AddSlideNumber(i int) {
	if m.addslide_number != nil {
		*m.addslide_number += i
	} else {
		m.addslide_number = &i
	}
}

// AddedSlideNumber returns the value that was added to the "slide_number" field in this mutation.
func (m *SlideAnalysisMutation) AddedSlideNumber() (r int, exists bool) {
	v := m.addslide_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSlideNumber resets all changes to the "slide_number" field.
func (m *SlideAnalysisMutation) ResetSlideNumber() {
	m.slide_number = nil
	m.addslide_number = nil
}

// SetFramePosition sets the "frame_position" field.
func (m *SlideAnalysisMutation) SetFramePosition(sp slideanalysis.FramePosition) {
	m.frame_position = &sp
}

// FramePosition returns the value of the "frame_position" field in the mutation.
func (m *SlideAnalysisMutation) FramePosition() (r slideanalysis.FramePosition, exists bool) {
	v := m.frame_position
	if v == nil {
		return
	}
	return *v, true
}

// OldFramePosition returns the old "frame_position" field's value of the SlideAnalysis entity.
// If the SlideAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideAnalysisMutation) OldFramePosition(ctx context.Context) (v slideanalysis.FramePosition, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFramePosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFramePosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFramePosition: %w", err)
	}
	return oldValue.FramePosition, nil
}

// ResetFramePosition resets all changes to the "frame_position" field.
func (m *SlideAnalysisMutation) ResetFramePosition() {
	m.frame_position = nil
}

// SetMarkdown sets the "markdown" field.
func (m *SlideAnalysisMutation) SetMarkdown(s string) {
	m.markdown = &s
}

// Markdown returns the value of the "markdown" field in the mutation.
func (m *SlideAnalysisMutation) Markdown() (r string, exists bool) {
	v := m.markdown
	if v == nil {
		return
	}
	return *v, true
}

// OldMarkdown returns the old "markdown" field's value of the SlideAnalysis entity.
// If the SlideAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideAnalysisMutation) OldMarkdown(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarkdown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarkdown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarkdown: %w", err)
	}
	return oldValue.Markdown, nil
}

// ResetMarkdown resets all changes to the "markdown" field.
func (m *SlideAnalysisMutation) ResetMarkdown() {
	m.markdown = nil
}

// SetModel sets the "model" field.
func (m *SlideAnalysisMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *SlideAnalysisMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the SlideAnalysis entity.
// If the SlideAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideAnalysisMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *SlideAnalysisMutation) ClearModel() {
	m.model = nil
	m.clearedFields[slideanalysis.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *SlideAnalysisMutation) ModelCleared() bool {
	_, ok := m.clearedFields[slideanalysis.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *SlideAnalysisMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, slideanalysis.FieldModel)
}

// SetCreatedAt sets the "created_at" field.
func (m *SlideAnalysisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SlideAnalysisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SlideAnalysis entity.
// If the SlideAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideAnalysisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SlideAnalysisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SlideAnalysisMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SlideAnalysisMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SlideAnalysis entity.
// If the SlideAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideAnalysisMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SlideAnalysisMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SlideAnalysisMutation builder.
func (m *SlideAnalysisMutation) Where(ps ...predicate.SlideAnalysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SlideAnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SlideAnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SlideAnalysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SlideAnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SlideAnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SlideAnalysis).
func (m *SlideAnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SlideAnalysisMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.video_id != nil {
		fields = append(fields, slideanalysis.FieldVideoID)
	}
	if m.slide_number != nil {
		fields = append(fields, slideanalysis.FieldSlideNumber)
	}
	if m.frame_position != nil {
		fields = append(fields, slideanalysis.FieldFramePosition)
	}
	if m.markdown != nil {
		fields = append(fields, slideanalysis.FieldMarkdown)
	}
	if m.model != nil {
		fields = append(fields, slideanalysis.FieldModel)
	}
	if m.created_at != nil {
		fields = append(fields, slideanalysis.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, slideanalysis.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SlideAnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case slideanalysis.FieldVideoID:
		return m.VideoID()
	case slideanalysis.FieldSlideNumber:
		return m.SlideNumber()
	case slideanalysis.FieldFramePosition:
		return m.FramePosition()
	case slideanalysis.FieldMarkdown:
		return m.Markdown()
	case slideanalysis.FieldModel:
		return m.Model()
	case slideanalysis.FieldCreatedAt:
		return m.CreatedAt()
	case slideanalysis.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SlideAnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case slideanalysis.FieldVideoID:
		return m.OldVideoID(ctx)
	case slideanalysis.FieldSlideNumber:
		return m.OldSlideNumber(ctx)
	case slideanalysis.FieldFramePosition:
		return m.OldFramePosition(ctx)
	case slideanalysis.FieldMarkdown:
		return m.OldMarkdown(ctx)
	case slideanalysis.FieldModel:
		return m.OldModel(ctx)
	case slideanalysis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case slideanalysis.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SlideAnalysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SlideAnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case slideanalysis.FieldVideoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoID(v)
		return nil
	case slideanalysis.FieldSlideNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlideNumber(v)
		return nil
	case slideanalysis.FieldFramePosition:
		v, ok := value.(slideanalysis.FramePosition)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFramePosition(v)
		return nil
	case slideanalysis.FieldMarkdown:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarkdown(v)
		return nil
	case slideanalysis.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case slideanalysis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case slideanalysis.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SlideAnalysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SlideAnalysisMutation) AddedFields() []string {
	var fields []string
	if m.addslide_number != nil {
		fields = append(fields, slideanalysis.FieldSlideNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SlideAnalysisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case slideanalysis.FieldSlideNumber:
		return m.AddedSlideNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SlideAnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case slideanalysis.FieldSlideNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSlideNumber(v)
		return nil
	}
	return fmt.Errorf("unknown SlideAnalysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SlideAnalysisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(slideanalysis.FieldModel) {
		fields = append(fields, slideanalysis.FieldModel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SlideAnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SlideAnalysisMutation) ClearField(name string) error {
	switch name {
	case slideanalysis.FieldModel:
		m.ClearModel()
		return nil
	}
	return fmt.Errorf("unknown SlideAnalysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SlideAnalysisMutation) ResetField(name string) error {
	switch name {
	case slideanalysis.FieldVideoID:
		m.ResetVideoID()
		return nil
	case slideanalysis.FieldSlideNumber:
		m.ResetSlideNumber()
		return nil
	case slideanalysis.FieldFramePosition:
		m.ResetFramePosition()
		return nil
	case slideanalysis.FieldMarkdown:
		m.ResetMarkdown()
		return nil
	case slideanalysis.FieldModel:
		m.ResetModel()
		return nil
	case slideanalysis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case slideanalysis.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SlideAnalysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SlideAnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SlideAnalysisMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SlideAnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SlideAnalysisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SlideAnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SlideAnalysisMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SlideAnalysisMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SlideAnalysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SlideAnalysisMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SlideAnalysis edge %s", name)
}

// SlideExtractionMutation represents an operation that mutates the SlideExtraction nodes in the graph.
type SlideExtractionMutation struct {
	config
	op              Op
	typ             string
	id              *int
	video_id        *string
	status          *slideextraction.Status
	run_id          *string
	total_slides    *int
	addtotal_slides *int
	error_message   *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*SlideExtraction, error)
	predicates      []predicate.SlideExtraction
}

var _ ent.Mutation = (*SlideExtractionMutation)(nil)

// slideextractionOption allows management of the mutation configuration using functional options.
type slideextractionOption func(*SlideExtractionMutation)

// newSlideExtractionMutation creates new mutation for the SlideExtraction entity.
func newSlideExtractionMutation(c config, op Op, opts ...slideextractionOption) *SlideExtractionMutation {
	m := &SlideExtractionMutation{
		config:        c,
		op:            op,
		typ:           TypeSlideExtraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSlideExtractionID sets the ID field of the mutation.
func withSlideExtractionID(id int) slideextractionOption {
	return func(m *SlideExtractionMutation) {
		var (
			err   error
			once  sync.Once
			value *SlideExtraction
		)
		m.oldValue = func(ctx context.Context) (*SlideExtraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SlideExtraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSlideExtraction sets the old SlideExtraction of the mutation.
func withSlideExtraction(node *SlideExtraction) slideextractionOption {
	return func(m *SlideExtractionMutation) {
		m.oldValue = func(context.Context) (*SlideExtraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SlideExtractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SlideExtractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SlideExtractionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SlideExtractionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SlideExtraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVideoID sets the "video_id" field.
func (m *SlideExtractionMutation) SetVideoID(s string) {
	m.video_id = &s
}

// VideoID returns the value of the "video_id" field in the mutation.
func (m *SlideExtractionMutation) VideoID() (r string, exists bool) {
	v := m.video_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoID returns the old "video_id" field's value of the SlideExtraction entity.
// If the SlideExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideExtractionMutation) OldVideoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoID: %w", err)
	}
	return oldValue.VideoID, nil
}

// ResetVideoID resets all changes to the "video_id" field.
func (m *SlideExtractionMutation) ResetVideoID() {
	m.video_id = nil
}

// SetStatus sets the "status" field.
func (m *SlideExtractionMutation) SetStatus(s slideextraction.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SlideExtractionMutation) Status() (r slideextraction.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SlideExtraction entity.
// If the SlideExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideExtractionMutation) OldStatus(ctx context.Context) (v slideextraction.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SlideExtractionMutation) ResetStatus() {
	m.status = nil
}

// SetRunID sets the "run_id" field.
func (m *SlideExtractionMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *SlideExtractionMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the SlideExtraction entity.
// If the SlideExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideExtractionMutation) OldRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ClearRunID clears the value of the "run_id" field.
func (m *SlideExtractionMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[slideextraction.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *SlideExtractionMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[slideextraction.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *SlideExtractionMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, slideextraction.FieldRunID)
}

// SetTotalSlides sets the "total_slides" field.
func (m *SlideExtractionMutation) SetTotalSlides(i int) {
	m.total_slides = &i
	m.addtotal_slides = nil
}

// TotalSlides returns the value of the "total_slides" field in the mutation.
func (m *SlideExtractionMutation) TotalSlides() (r int, exists bool) {
	v := m.total_slides
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalSlides returns the old "total_slides" field's value of the SlideExtraction entity.
// If the SlideExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideExtractionMutation) OldTotalSlides(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalSlides is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalSlides requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalSlides: %w", err)
	}
	return oldValue.TotalSlides, nil
}

// AddTotalSlides adds i to the "total_slides" field.
func (m *SlideExtractionMutation) AddTotalSlides(i int) {
	if m.addtotal_slides != nil {
		*m.addtotal_slides += i
	} else {
		m.addtotal_slides = &i
	}
}

// AddedTotalSlides returns the value that was added to the "total_slides" field in this mutation.
func (m *SlideExtractionMutation) AddedTotalSlides() (r int, exists bool) {
	v := m.addtotal_slides
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalSlides resets all changes to the "total_slides" field.
func (m *SlideExtractionMutation) ResetTotalSlides() {
	m.total_slides = nil
	m.addtotal_slides = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *SlideExtractionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SlideExtractionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the SlideExtraction entity.
// If the SlideExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideExtractionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SlideExtractionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[slideextraction.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SlideExtractionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[slideextraction.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SlideExtractionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, slideextraction.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *SlideExtractionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SlideExtractionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SlideExtraction entity.
// If the SlideExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideExtractionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SlideExtractionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SlideExtractionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SlideExtractionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SlideExtraction entity.
// If the SlideExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideExtractionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SlideExtractionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SlideExtractionMutation builder.
func (m *SlideExtractionMutation) Where(ps ...predicate.SlideExtraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SlideExtractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SlideExtractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SlideExtraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SlideExtractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SlideExtractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SlideExtraction).
func (m *SlideExtractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SlideExtractionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.video_id != nil {
		fields = append(fields, slideextraction.FieldVideoID)
	}
	if m.status != nil {
		fields = append(fields, slideextraction.FieldStatus)
	}
	if m.run_id != nil {
		fields = append(fields, slideextraction.FieldRunID)
	}
	if m.total_slides != nil {
		fields = append(fields, slideextraction.FieldTotalSlides)
	}
	if m.error_message != nil {
		fields = append(fields, slideextraction.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, slideextraction.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, slideextraction.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SlideExtractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case slideextraction.FieldVideoID:
		return m.VideoID()
	case slideextraction.FieldStatus:
		return m.Status()
	case slideextraction.FieldRunID:
		return m.RunID()
	case slideextraction.FieldTotalSlides:
		return m.TotalSlides()
	case slideextraction.FieldErrorMessage:
		return m.ErrorMessage()
	case slideextraction.FieldCreatedAt:
		return m.CreatedAt()
	case slideextraction.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SlideExtractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case slideextraction.FieldVideoID:
		return m.OldVideoID(ctx)
	case slideextraction.FieldStatus:
		return m.OldStatus(ctx)
	case slideextraction.FieldRunID:
		return m.OldRunID(ctx)
	case slideextraction.FieldTotalSlides:
		return m.OldTotalSlides(ctx)
	case slideextraction.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case slideextraction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case slideextraction.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SlideExtraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SlideExtractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case slideextraction.FieldVideoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoID(v)
		return nil
	case slideextraction.FieldStatus:
		v, ok := value.(slideextraction.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case slideextraction.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case slideextraction.FieldTotalSlides:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalSlides(v)
		return nil
	case slideextraction.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case slideextraction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case slideextraction.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SlideExtraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SlideExtractionMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_slides != nil {
		fields = append(fields, slideextraction.FieldTotalSlides)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SlideExtractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case slideextraction.FieldTotalSlides:
		return m.AddedTotalSlides()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SlideExtractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case slideextraction.FieldTotalSlides:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalSlides(v)
		return nil
	}
	return fmt.Errorf("unknown SlideExtraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SlideExtractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(slideextraction.FieldRunID) {
		fields = append(fields, slideextraction.FieldRunID)
	}
	if m.FieldCleared(slideextraction.FieldErrorMessage) {
		fields = append(fields, slideextraction.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SlideExtractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SlideExtractionMutation) ClearField(name string) error {
	switch name {
	case slideextraction.FieldRunID:
		m.ClearRunID()
		return nil
	case slideextraction.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown SlideExtraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SlideExtractionMutation) ResetField(name string) error {
	switch name {
	case slideextraction.FieldVideoID:
		m.ResetVideoID()
		return nil
	case slideextraction.FieldStatus:
		m.ResetStatus()
		return nil
	case slideextraction.FieldRunID:
		m.ResetRunID()
		return nil
	case slideextraction.FieldTotalSlides:
		m.ResetTotalSlides()
		return nil
	case slideextraction.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case slideextraction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case slideextraction.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SlideExtraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SlideExtractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SlideExtractionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SlideExtractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SlideExtractionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SlideExtractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SlideExtractionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SlideExtractionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SlideExtraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SlideExtractionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SlideExtraction edge %s", name)
}

// SlideFeedbackMutation represents an operation that mutates the SlideFeedback nodes in the graph.
type SlideFeedbackMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	video_id              *string
	slide_number          *int
	addslide_number       *int
	is_first_frame_picked *bool
	is_last_frame_picked  *bool
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*SlideFeedback, error)
	predicates            []predicate.SlideFeedback
}

var _ ent.Mutation = (*SlideFeedbackMutation)(nil)

// slidefeedbackOption allows management of the mutation configuration using functional options.
type slidefeedbackOption func(*SlideFeedbackMutation)

// newSlideFeedbackMutation creates new mutation for the SlideFeedback entity.
func newSlideFeedbackMutation(c config, op Op, opts ...slidefeedbackOption) *SlideFeedbackMutation {
	m := &SlideFeedbackMutation{
		config:        c,
		op:            op,
		typ:           TypeSlideFeedback,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSlideFeedbackID sets the ID field of the mutation.
func withSlideFeedbackID(id int) slidefeedbackOption {
	return func(m *SlideFeedbackMutation) {
		var (
			err   error
			once  sync.Once
			value *SlideFeedback
		)
		m.oldValue = func(ctx context.Context) (*SlideFeedback, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SlideFeedback.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSlideFeedback sets the old SlideFeedback of the mutation.
func withSlideFeedback(node *SlideFeedback) slidefeedbackOption {
	return func(m *SlideFeedbackMutation) {
		m.oldValue = func(context.Context) (*SlideFeedback, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SlideFeedbackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SlideFeedbackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SlideFeedbackMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SlideFeedbackMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SlideFeedback.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVideoID sets the "video_id" field.
func (m *SlideFeedbackMutation) SetVideoID(s string) {
	m.video_id = &s
}

// VideoID returns the value of the "video_id" field in the mutation.
func (m *SlideFeedbackMutation) VideoID() (r string, exists bool) {
	v := m.video_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoID returns the old "video_id" field's value of the SlideFeedback entity.
// If the SlideFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideFeedbackMutation) OldVideoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoID: %w", err)
	}
	return oldValue.VideoID, nil
}

// ResetVideoID resets all changes to the "video_id" field.
func (m *SlideFeedbackMutation) ResetVideoID() {
	m.video_id = nil
}

// SetSlideNumber sets the "slide_number" field.
func (m *SlideFeedbackMutation) SetSlideNumber(i int) {
	m.slide_number = &i
	m.addslide_number = nil
}

// SlideNumber returns the value of the "slide_number" field in the mutation.
func (m *SlideFeedbackMutation) SlideNumber() (r int, exists bool) {
	v := m.slide_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSlideNumber returns the old "slide_number" field's value of the SlideFeedback entity.
// If the SlideFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideFeedbackMutation) OldSlideNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlideNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlideNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlideNumber: %w", err)
	}
	return oldValue.SlideNumber, nil
}

// AddSlideNumber adds i to the "slide_number" field.
func (m *SlideFeedbackMutation) AddSlideNumber(i int) {
	if m.addslide_number != nil {
		*m.addslide_number += i
	} else {
		m.addslide_number = &i
	}
}

// AddedSlideNumber returns the value that was added to the "slide_number" field in this mutation.
func (m *SlideFeedbackMutation) AddedSlideNumber() (r int, exists bool) {
	v := m.addslide_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSlideNumber resets all changes to the "slide_number" field.
func (m *SlideFeedbackMutation) ResetSlideNumber() {
	m.slide_number = nil
	m.addslide_number = nil
}

// SetIsFirstFramePicked sets the "is_first_frame_picked" field.
func (m *SlideFeedbackMutation) SetIsFirstFramePicked(b bool) {
	m.is_first_frame_picked = &b
}

// IsFirstFramePicked returns the value of the "is_first_frame_picked" field in the mutation.
func (m *SlideFeedbackMutation) IsFirstFramePicked() (r bool, exists bool) {
	v := m.is_first_frame_picked
	if v == nil {
		return
	}
	return *v, true
}

// OldIsFirstFramePicked returns the old "is_first_frame_picked" field's value of the SlideFeedback entity.
// If the SlideFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideFeedbackMutation) OldIsFirstFramePicked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsFirstFramePicked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsFirstFramePicked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsFirstFramePicked: %w", err)
	}
	return oldValue.IsFirstFramePicked, nil
}

// ResetIsFirstFramePicked resets all changes to the "is_first_frame_picked" field.
func (m *SlideFeedbackMutation) ResetIsFirstFramePicked() {
	m.is_first_frame_picked = nil
}

// SetIsLastFramePicked sets the "is_last_frame_picked" field.
func (m *SlideFeedbackMutation) SetIsLastFramePicked(b bool) {
	m.is_last_frame_picked = &b
}

// IsLastFramePicked returns the value of the "is_last_frame_picked" field in the mutation.
func (m *SlideFeedbackMutation) IsLastFramePicked() (r bool, exists bool) {
	v := m.is_last_frame_picked
	if v == nil {
		return
	}
	return *v, true
}

// OldIsLastFramePicked returns the old "is_last_frame_picked" field's value of the SlideFeedback entity.
// If the SlideFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideFeedbackMutation) OldIsLastFramePicked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsLastFramePicked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsLastFramePicked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsLastFramePicked: %w", err)
	}
	return oldValue.IsLastFramePicked, nil
}

// ResetIsLastFramePicked resets all changes to the "is_last_frame_picked" field.
func (m *SlideFeedbackMutation) ResetIsLastFramePicked() {
	m.is_last_frame_picked = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SlideFeedbackMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SlideFeedbackMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SlideFeedback entity.
// If the SlideFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlideFeedbackMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SlideFeedbackMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SlideFeedbackMutation builder.
func (m *SlideFeedbackMutation) Where(ps ...predicate.SlideFeedback) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SlideFeedbackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SlideFeedbackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SlideFeedback, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SlideFeedbackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SlideFeedbackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SlideFeedback).
func (m *SlideFeedbackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SlideFeedbackMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.video_id != nil {
		fields = append(fields, slidefeedback.FieldVideoID)
	}
	if m.slide_number != nil {
		fields = append(fields, slidefeedback.FieldSlideNumber)
	}
	if m.is_first_frame_picked != nil {
		fields = append(fields, slidefeedback.FieldIsFirstFramePicked)
	}
	if m.is_last_frame_picked != nil {
		fields = append(fields, slidefeedback.FieldIsLastFramePicked)
	}
	if m.updated_at != nil {
		fields = append(fields, slidefeedback.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SlideFeedbackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case slidefeedback.FieldVideoID:
		return m.VideoID()
	case slidefeedback.FieldSlideNumber:
		return m.SlideNumber()
	case slidefeedback.FieldIsFirstFramePicked:
		return m.IsFirstFramePicked()
	case slidefeedback.FieldIsLastFramePicked:
		return m.IsLastFramePicked()
	case slidefeedback.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SlideFeedbackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case slidefeedback.FieldVideoID:
		return m.OldVideoID(ctx)
	case slidefeedback.FieldSlideNumber:
		return m.OldSlideNumber(ctx)
	case slidefeedback.FieldIsFirstFramePicked:
		return m.OldIsFirstFramePicked(ctx)
	case slidefeedback.FieldIsLastFramePicked:
		return m.OldIsLastFramePicked(ctx)
	case slidefeedback.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SlideFeedback field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SlideFeedbackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case slidefeedback.FieldVideoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoID(v)
		return nil
	case slidefeedback.FieldSlideNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlideNumber(v)
		return nil
	case slidefeedback.FieldIsFirstFramePicked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsFirstFramePicked(v)
		return nil
	case slidefeedback.FieldIsLastFramePicked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsLastFramePicked(v)
		return nil
	case slidefeedback.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SlideFeedback field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SlideFeedbackMutation) AddedFields() []string {
	var fields []string
	if m.addslide_number != nil {
		fields = append(fields, slidefeedback.FieldSlideNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SlideFeedbackMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case slidefeedback.FieldSlideNumber:
		return m.AddedSlideNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SlideFeedbackMutation) AddField(name string, value ent.Value) error {
	switch name {
	case slidefeedback.FieldSlideNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSlideNumber(v)
		return nil
	}
	return fmt.Errorf("unknown SlideFeedback numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SlideFeedbackMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SlideFeedbackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SlideFeedbackMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SlideFeedback nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SlideFeedbackMutation) ResetField(name string) error {
	switch name {
	case slidefeedback.FieldVideoID:
		m.ResetVideoID()
		return nil
	case slidefeedback.FieldSlideNumber:
		m.ResetSlideNumber()
		return nil
	case slidefeedback.FieldIsFirstFramePicked:
		m.ResetIsFirstFramePicked()
		return nil
	case slidefeedback.FieldIsLastFramePicked:
		m.ResetIsLastFramePicked()
		return nil
	case slidefeedback.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SlideFeedback field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SlideFeedbackMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SlideFeedbackMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SlideFeedbackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SlideFeedbackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SlideFeedbackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SlideFeedbackMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SlideFeedbackMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SlideFeedback unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SlideFeedbackMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SlideFeedback edge %s", name)
}

// SuperAnalysisMutation represents an operation that mutates the SuperAnalysis nodes in the graph.
type SuperAnalysisMutation struct {
	config
	op            Op
	typ           string
	id            *int
	video_id      *string
	markdown      *string
	model         *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SuperAnalysis, error)
	predicates    []predicate.SuperAnalysis
}

var _ ent.Mutation = (*SuperAnalysisMutation)(nil)

// superanalysisOption allows management of the mutation configuration using functional options.
type superanalysisOption func(*SuperAnalysisMutation)

// newSuperAnalysisMutation creates new mutation for the SuperAnalysis entity.
func newSuperAnalysisMutation(c config, op Op, opts ...superanalysisOption) *SuperAnalysisMutation {
	m := &SuperAnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeSuperAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSuperAnalysisID sets the ID field of the mutation.
func withSuperAnalysisID(id int) superanalysisOption {
	return func(m *SuperAnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *SuperAnalysis
		)
		m.oldValue = func(ctx context.Context) (*SuperAnalysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SuperAnalysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSuperAnalysis sets the old SuperAnalysis of the mutation.
func withSuperAnalysis(node *SuperAnalysis) superanalysisOption {
	return func(m *SuperAnalysisMutation) {
		m.oldValue = func(context.Context) (*SuperAnalysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SuperAnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SuperAnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SuperAnalysisMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SuperAnalysisMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SuperAnalysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVideoID sets the "video_id" field.
func (m *SuperAnalysisMutation) SetVideoID(s string) {
	m.video_id = &s
}

// VideoID returns the value of the "video_id" field in the mutation.
func (m *SuperAnalysisMutation) VideoID() (r string, exists bool) {
	v := m.video_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoID returns the old "video_id" field's value of the SuperAnalysis entity.
// If the SuperAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuperAnalysisMutation) OldVideoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoID: %w", err)
	}
	return oldValue.VideoID, nil
}

// ResetVideoID resets all changes to the "video_id" field.
func (m *SuperAnalysisMutation) ResetVideoID() {
	m.video_id = nil
}

// SetMarkdown sets the "markdown" field.
func (m *SuperAnalysisMutation) SetMarkdown(s string) {
	m.markdown = &s
}

// Markdown returns the value of the "markdown" field in the mutation.
func (m *SuperAnalysisMutation) Markdown() (r string, exists bool) {
	v := m.markdown
	if v == nil {
		return
	}
	return *v, true
}

// OldMarkdown returns the old "markdown" field's value of the SuperAnalysis entity.
// If the SuperAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuperAnalysisMutation) OldMarkdown(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarkdown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarkdown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarkdown: %w", err)
	}
	return oldValue.Markdown, nil
}

// ResetMarkdown resets all changes to the "markdown" field.
func (m *SuperAnalysisMutation) ResetMarkdown() {
	m.markdown = nil
}

// SetModel sets the "model" field.
func (m *SuperAnalysisMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *SuperAnalysisMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the SuperAnalysis entity.
// If the SuperAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuperAnalysisMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *SuperAnalysisMutation) ClearModel() {
	m.model = nil
	m.clearedFields[superanalysis.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *SuperAnalysisMutation) ModelCleared() bool {
	_, ok := m.clearedFields[superanalysis.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *SuperAnalysisMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, superanalysis.FieldModel)
}

// SetCreatedAt sets the "created_at" field.
func (m *SuperAnalysisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SuperAnalysisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SuperAnalysis entity.
// If the SuperAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuperAnalysisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SuperAnalysisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SuperAnalysisMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SuperAnalysisMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SuperAnalysis entity.
// If the SuperAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuperAnalysisMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SuperAnalysisMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SuperAnalysisMutation builder.
func (m *SuperAnalysisMutation) Where(ps ...predicate.SuperAnalysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SuperAnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SuperAnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SuperAnalysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SuperAnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SuperAnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SuperAnalysis).
func (m *SuperAnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SuperAnalysisMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.video_id != nil {
		fields = append(fields, superanalysis.FieldVideoID)
	}
	if m.markdown != nil {
		fields = append(fields, superanalysis.FieldMarkdown)
	}
	if m.model != nil {
		fields = append(fields, superanalysis.FieldModel)
	}
	if m.created_at != nil {
		fields = append(fields, superanalysis.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, superanalysis.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SuperAnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case superanalysis.FieldVideoID:
		return m.VideoID()
	case superanalysis.FieldMarkdown:
		return m.Markdown()
	case superanalysis.FieldModel:
		return m.Model()
	case superanalysis.FieldCreatedAt:
		return m.CreatedAt()
	case superanalysis.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SuperAnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case superanalysis.FieldVideoID:
		return m.OldVideoID(ctx)
	case superanalysis.FieldMarkdown:
		return m.OldMarkdown(ctx)
	case superanalysis.FieldModel:
		return m.OldModel(ctx)
	case superanalysis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case superanalysis.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SuperAnalysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SuperAnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case superanalysis.FieldVideoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoID(v)
		return nil
	case superanalysis.FieldMarkdown:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarkdown(v)
		return nil
	case superanalysis.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case superanalysis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case superanalysis.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SuperAnalysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SuperAnalysisMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SuperAnalysisMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SuperAnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SuperAnalysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SuperAnalysisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(superanalysis.FieldModel) {
		fields = append(fields, superanalysis.FieldModel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SuperAnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SuperAnalysisMutation) ClearField(name string) error {
	switch name {
	case superanalysis.FieldModel:
		m.ClearModel()
		return nil
	}
	return fmt.Errorf("unknown SuperAnalysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SuperAnalysisMutation) ResetField(name string) error {
	switch name {
	case superanalysis.FieldVideoID:
		m.ResetVideoID()
		return nil
	case superanalysis.FieldMarkdown:
		m.ResetMarkdown()
		return nil
	case superanalysis.FieldModel:
		m.ResetModel()
		return nil
	case superanalysis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case superanalysis.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SuperAnalysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SuperAnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SuperAnalysisMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SuperAnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SuperAnalysisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SuperAnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SuperAnalysisMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SuperAnalysisMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SuperAnalysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SuperAnalysisMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SuperAnalysis edge %s", name)
}

// TranscriptMutation represents an operation that mutates the Transcript nodes in the graph.
type TranscriptMutation struct {
	config
	op             Op
	typ            string
	id             *int
	video_id       *string
	title          *string
	channel_name   *string
	description    *string
	segments       *[]models.TranscriptSegment
	appendsegments []models.TranscriptSegment
	fetched_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Transcript, error)
	predicates     []predicate.Transcript
}

var _ ent.Mutation = (*TranscriptMutation)(nil)

// transcriptOption allows management of the mutation configuration using functional options.
type transcriptOption func(*TranscriptMutation)

// newTranscriptMutation creates new mutation for the Transcript entity.
func newTranscriptMutation(c config, op Op, opts ...transcriptOption) *TranscriptMutation {
	m := &TranscriptMutation{
		config:        c,
		op:            op,
		typ:           TypeTranscript,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTranscriptID sets the ID field of the mutation.
func withTranscriptID(id int) transcriptOption {
	return func(m *TranscriptMutation) {
		var (
			err   error
			once  sync.Once
			value *Transcript
		)
		m.oldValue = func(ctx context.Context) (*Transcript, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Transcript.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTranscript sets the old Transcript of the mutation.
func withTranscript(node *Transcript) transcriptOption {
	return func(m *TranscriptMutation) {
		m.oldValue = func(context.Context) (*Transcript, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TranscriptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TranscriptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TranscriptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TranscriptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Transcript.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVideoID sets the "video_id" field.
func (m *TranscriptMutation) SetVideoID(s string) {
	m.video_id = &s
}

// VideoID returns the value of the "video_id" field in the mutation.
func (m *TranscriptMutation) VideoID() (r string, exists bool) {
	v := m.video_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoID returns the old "video_id" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldVideoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoID: %w", err)
	}
	return oldValue.VideoID, nil
}

// ResetVideoID resets all changes to the "video_id" field.
func (m *TranscriptMutation) ResetVideoID() {
	m.video_id = nil
}

// SetTitle sets the "title" field.
func (m *TranscriptMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TranscriptMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TranscriptMutation) ResetTitle() {
	m.title = nil
}

// SetChannelName sets the "channel_name" field.
func (m *TranscriptMutation) SetChannelName(s string) {
	m.channel_name = &s
}

// ChannelName returns the value of the "channel_name" field in the mutation.
func (m *TranscriptMutation) ChannelName() (r string, exists bool) {
	v := m.channel_name
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelName returns the old "channel_name" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldChannelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelName: %w", err)
	}
	return oldValue.ChannelName, nil
}

// ResetChannelName resets all changes to the "channel_name" field.
func (m *TranscriptMutation) ResetChannelName() {
	m.channel_name = nil
}

// SetDescription sets the "description" field.
func (m *TranscriptMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TranscriptMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TranscriptMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[transcript.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TranscriptMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[transcript.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TranscriptMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, transcript.FieldDescription)
}

// SetSegments sets the "segments" field.
func (m *TranscriptMutation) SetSegments(ms []models.TranscriptSegment) {
	m.segments = &ms
	m.appendsegments = nil
}

// Segments returns the value of the "segments" field in the mutation.
func (m *TranscriptMutation) Segments() (r []models.TranscriptSegment, exists bool) {
	v := m.segments
	if v == nil {
		return
	}
	return *v, true
}

// OldSegments returns the old "segments" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldSegments(ctx context.Context) (v []models.TranscriptSegment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSegments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSegments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSegments: %w", err)
	}
	return oldValue.Segments, nil
}

// AppendSegments adds ms to the "segments" field.
func (m *TranscriptMutation) AppendSegments(ms []models.TranscriptSegment) {
	m.appendsegments = append(m.appendsegments, ms...)
}

// AppendedSegments returns the list of values that were appended to the "segments" field in this mutation.
func (m *TranscriptMutation) AppendedSegments() ([]models.TranscriptSegment, bool) {
	if len(m.appendsegments) == 0 {
		return nil, false
	}
	return m.appendsegments, true
}

// ResetSegments resets all changes to the "segments" field.
func (m *TranscriptMutation) ResetSegments() {
	m.segments = nil
	m.appendsegments = nil
}

// SetFetchedAt sets the "fetched_at" field.
func (m *TranscriptMutation) SetFetchedAt(t time.Time) {
	m.fetched_at = &t
}

// FetchedAt returns the value of the "fetched_at" field in the mutation.
func (m *TranscriptMutation) FetchedAt() (r time.Time, exists bool) {
	v := m.fetched_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFetchedAt returns the old "fetched_at" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldFetchedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFetchedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFetchedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFetchedAt: %w", err)
	}
	return oldValue.FetchedAt, nil
}

// ResetFetchedAt resets all changes to the "fetched_at" field.
func (m *TranscriptMutation) ResetFetchedAt() {
	m.fetched_at = nil
}

// Where appends a list predicates to the TranscriptMutation builder.
func (m *TranscriptMutation) Where(ps ...predicate.Transcript) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TranscriptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TranscriptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Transcript, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TranscriptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TranscriptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Transcript).
func (m *TranscriptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TranscriptMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.video_id != nil {
		fields = append(fields, transcript.FieldVideoID)
	}
	if m.title != nil {
		fields = append(fields, transcript.FieldTitle)
	}
	if m.channel_name != nil {
		fields = append(fields, transcript.FieldChannelName)
	}
	if m.description != nil {
		fields = append(fields, transcript.FieldDescription)
	}
	if m.segments != nil {
		fields = append(fields, transcript.FieldSegments)
	}
	if m.fetched_at != nil {
		fields = append(fields, transcript.FieldFetchedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TranscriptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transcript.FieldVideoID:
		return m.VideoID()
	case transcript.FieldTitle:
		return m.Title()
	case transcript.FieldChannelName:
		return m.ChannelName()
	case transcript.FieldDescription:
		return m.Description()
	case transcript.FieldSegments:
		return m.Segments()
	case transcript.FieldFetchedAt:
		return m.FetchedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TranscriptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transcript.FieldVideoID:
		return m.OldVideoID(ctx)
	case transcript.FieldTitle:
		return m.OldTitle(ctx)
	case transcript.FieldChannelName:
		return m.OldChannelName(ctx)
	case transcript.FieldDescription:
		return m.OldDescription(ctx)
	case transcript.FieldSegments:
		return m.OldSegments(ctx)
	case transcript.FieldFetchedAt:
		return m.OldFetchedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Transcript field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transcript.FieldVideoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoID(v)
		return nil
	case transcript.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case transcript.FieldChannelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelName(v)
		return nil
	case transcript.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case transcript.FieldSegments:
		v, ok := value.([]models.TranscriptSegment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSegments(v)
		return nil
	case transcript.FieldFetchedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFetchedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Transcript field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TranscriptMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TranscriptMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Transcript numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TranscriptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transcript.FieldDescription) {
		fields = append(fields, transcript.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TranscriptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TranscriptMutation) ClearField(name string) error {
	switch name {
	case transcript.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Transcript nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TranscriptMutation) ResetField(name string) error {
	switch name {
	case transcript.FieldVideoID:
		m.ResetVideoID()
		return nil
	case transcript.FieldTitle:
		m.ResetTitle()
		return nil
	case transcript.FieldChannelName:
		m.ResetChannelName()
		return nil
	case transcript.FieldDescription:
		m.ResetDescription()
		return nil
	case transcript.FieldSegments:
		m.ResetSegments()
		return nil
	case transcript.FieldFetchedAt:
		m.ResetFetchedAt()
		return nil
	}
	return fmt.Errorf("unknown Transcript field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TranscriptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TranscriptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TranscriptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TranscriptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TranscriptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TranscriptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TranscriptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Transcript unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TranscriptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Transcript edge %s", name)
}

// VersionedRunMutation represents an operation that mutates the VersionedRun nodes in the graph.
type VersionedRunMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	resource_kind           *versionedrun.ResourceKind
	resource_id             *string
	version                 *int
	addversion              *int
	status                  *versionedrun.Status
	workflow_run_id         *string
	namespace               *string
	additional_instructions *string
	result_json             *json.RawMessage
	appendresult_json       json.RawMessage
	error_message           *string
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*VersionedRun, error)
	predicates              []predicate.VersionedRun
}

var _ ent.Mutation = (*VersionedRunMutation)(nil)

// versionedrunOption allows management of the mutation configuration using functional options.
type versionedrunOption func(*VersionedRunMutation)

// newVersionedRunMutation creates new mutation for the VersionedRun entity.
func newVersionedRunMutation(c config, op Op, opts ...versionedrunOption) *VersionedRunMutation {
	m := &VersionedRunMutation{
		config:        c,
		op:            op,
		typ:           TypeVersionedRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVersionedRunID sets the ID field of the mutation.
func withVersionedRunID(id int) versionedrunOption {
	return func(m *VersionedRunMutation) {
		var (
			err   error
			once  sync.Once
			value *VersionedRun
		)
		m.oldValue = func(ctx context.Context) (*VersionedRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VersionedRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVersionedRun sets the old VersionedRun of the mutation.
func withVersionedRun(node *VersionedRun) versionedrunOption {
	return func(m *VersionedRunMutation) {
		m.oldValue = func(context.Context) (*VersionedRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VersionedRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VersionedRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VersionedRunMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VersionedRunMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VersionedRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResourceKind sets the "resource_kind" field.
func (m *VersionedRunMutation) SetResourceKind(vk versionedrun.ResourceKind) {
	m.resource_kind = &vk
}

// ResourceKind returns the value of the "resource_kind" field in the mutation.
func (m *VersionedRunMutation) ResourceKind() (r versionedrun.ResourceKind, exists bool) {
	v := m.resource_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceKind returns the old "resource_kind" field's value of the VersionedRun entity.
// If the VersionedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionedRunMutation) OldResourceKind(ctx context.Context) (v versionedrun.ResourceKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceKind: %w", err)
	}
	return oldValue.ResourceKind, nil
}

// ResetResourceKind resets all changes to the "resource_kind" field.
func (m *VersionedRunMutation) ResetResourceKind() {
	m.resource_kind = nil
}

// SetResourceID sets the "resource_id" field.
func (m *VersionedRunMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *VersionedRunMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the VersionedRun entity.
// If the VersionedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionedRunMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *VersionedRunMutation) ResetResourceID() {
	m.resource_id = nil
}

// SetVersion sets the "version" field.
func (m *VersionedRunMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *VersionedRunMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the VersionedRun entity.
// If the VersionedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionedRunMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *VersionedRunMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *VersionedRunMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *VersionedRunMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetStatus sets the "status" field.
func (m *VersionedRunMutation) SetStatus(v versionedrun.Status) {
	m.status = &v
}

// Status returns the value of the "status" field in the mutation.
func (m *VersionedRunMutation) Status() (r versionedrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the VersionedRun entity.
// If the VersionedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionedRunMutation) OldStatus(ctx context.Context) (v versionedrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *VersionedRunMutation) ResetStatus() {
	m.status = nil
}

// SetWorkflowRunID sets the "workflow_run_id" field.
func (m *VersionedRunMutation) SetWorkflowRunID(s string) {
	m.workflow_run_id = &s
}

// WorkflowRunID returns the value of the "workflow_run_id" field in the mutation.
func (m *VersionedRunMutation) WorkflowRunID() (r string, exists bool) {
	v := m.workflow_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowRunID returns the old "workflow_run_id" field's value of the VersionedRun entity.
// If the VersionedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionedRunMutation) OldWorkflowRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowRunID: %w", err)
	}
	return oldValue.WorkflowRunID, nil
}

// ClearWorkflowRunID clears the value of the "workflow_run_id" field.
func (m *VersionedRunMutation) ClearWorkflowRunID() {
	m.workflow_run_id = nil
	m.clearedFields[versionedrun.FieldWorkflowRunID] = struct{}{}
}

// WorkflowRunIDCleared returns if the "workflow_run_id" field was cleared in this mutation.
func (m *VersionedRunMutation) WorkflowRunIDCleared() bool {
	_, ok := m.clearedFields[versionedrun.FieldWorkflowRunID]
	return ok
}

// ResetWorkflowRunID resets all changes to the "workflow_run_id" field.
func (m *VersionedRunMutation) ResetWorkflowRunID() {
	m.workflow_run_id = nil
	delete(m.clearedFields, versionedrun.FieldWorkflowRunID)
}

// SetNamespace sets the "namespace" field.
func (m *VersionedRunMutation) SetNamespace(s string) {
	m.namespace = &s
}

// Namespace returns the value of the "namespace" field in the mutation.
func (m *VersionedRunMutation) Namespace() (r string, exists bool) {
	v := m.namespace
	if v == nil {
		return
	}
	return *v, true
}

// OldNamespace returns the old "namespace" field's value of the VersionedRun entity.
// If the VersionedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionedRunMutation) OldNamespace(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNamespace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNamespace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNamespace: %w", err)
	}
	return oldValue.Namespace, nil
}

// ClearNamespace clears the value of the "namespace" field.
func (m *VersionedRunMutation) ClearNamespace() {
	m.namespace = nil
	m.clearedFields[versionedrun.FieldNamespace] = struct{}{}
}

// NamespaceCleared returns if the "namespace" field was cleared in this mutation.
func (m *VersionedRunMutation) NamespaceCleared() bool {
	_, ok := m.clearedFields[versionedrun.FieldNamespace]
	return ok
}

// ResetNamespace resets all changes to the "namespace" field.
func (m *VersionedRunMutation) ResetNamespace() {
	m.namespace = nil
	delete(m.clearedFields, versionedrun.FieldNamespace)
}

// SetAdditionalInstructions sets the "additional_instructions" field.
func (m *VersionedRunMutation) SetAdditionalInstructions(s string) {
	m.additional_instructions = &s
}

// AdditionalInstructions returns the value of the "additional_instructions" field in the mutation.
func (m *VersionedRunMutation) AdditionalInstructions() (r string, exists bool) {
	v := m.additional_instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldAdditionalInstructions returns the old "additional_instructions" field's value of the VersionedRun entity.
// If the VersionedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionedRunMutation) OldAdditionalInstructions(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdditionalInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdditionalInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdditionalInstructions: %w", err)
	}
	return oldValue.AdditionalInstructions, nil
}

// ClearAdditionalInstructions clears the value of the "additional_instructions" field.
func (m *VersionedRunMutation) ClearAdditionalInstructions() {
	m.additional_instructions = nil
	m.clearedFields[versionedrun.FieldAdditionalInstructions] = struct{}{}
}

// AdditionalInstructionsCleared returns if the "additional_instructions" field was cleared in this mutation.
func (m *VersionedRunMutation) AdditionalInstructionsCleared() bool {
	_, ok := m.clearedFields[versionedrun.FieldAdditionalInstructions]
	return ok
}

// ResetAdditionalInstructions resets all changes to the "additional_instructions" field.
func (m *VersionedRunMutation) ResetAdditionalInstructions() {
	m.additional_instructions = nil
	delete(m.clearedFields, versionedrun.FieldAdditionalInstructions)
}

// SetResultJSON sets the "result_json" field.
func (m *VersionedRunMutation) SetResultJSON(jm json.RawMessage) {
	m.result_json = &jm
	m.appendresult_json = nil
}

// ResultJSON returns the value of the "result_json" field in the mutation.
func (m *VersionedRunMutation) ResultJSON() (r json.RawMessage, exists bool) {
	v := m.result_json
	if v == nil {
		return
	}
	return *v, true
}

// OldResultJSON returns the old "result_json" field's value of the VersionedRun entity.
// If the VersionedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionedRunMutation) OldResultJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultJSON: %w", err)
	}
	return oldValue.ResultJSON, nil
}

// AppendResultJSON adds jm to the "result_json" field.
func (m *VersionedRunMutation) AppendResultJSON(jm json.RawMessage) {
	m.appendresult_json = append(m.appendresult_json, jm...)
}

// AppendedResultJSON returns the list of values that were appended to the "result_json" field in this mutation.
func (m *VersionedRunMutation) AppendedResultJSON() (json.RawMessage, bool) {
	if len(m.appendresult_json) == 0 {
		return nil, false
	}
	return m.appendresult_json, true
}

// ClearResultJSON clears the value of the "result_json" field.
func (m *VersionedRunMutation) ClearResultJSON() {
	m.result_json = nil
	m.appendresult_json = nil
	m.clearedFields[versionedrun.FieldResultJSON] = struct{}{}
}

// ResultJSONCleared returns if the "result_json" field was cleared in this mutation.
func (m *VersionedRunMutation) ResultJSONCleared() bool {
	_, ok := m.clearedFields[versionedrun.FieldResultJSON]
	return ok
}

// ResetResultJSON resets all changes to the "result_json" field.
func (m *VersionedRunMutation) ResetResultJSON() {
	m.result_json = nil
	m.appendresult_json = nil
	delete(m.clearedFields, versionedrun.FieldResultJSON)
}

// SetErrorMessage sets the "error_message" field.
func (m *VersionedRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *VersionedRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the VersionedRun entity.
// If the VersionedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionedRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *VersionedRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[versionedrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *VersionedRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[versionedrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *VersionedRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, versionedrun.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *VersionedRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VersionedRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VersionedRun entity.
// If the VersionedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionedRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VersionedRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VersionedRunMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VersionedRunMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the VersionedRun entity.
// If the VersionedRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionedRunMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VersionedRunMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the VersionedRunMutation builder.
func (m *VersionedRunMutation) Where(ps ...predicate.VersionedRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VersionedRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VersionedRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VersionedRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VersionedRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VersionedRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VersionedRun).
func (m *VersionedRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VersionedRunMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.resource_kind != nil {
		fields = append(fields, versionedrun.FieldResourceKind)
	}
	if m.resource_id != nil {
		fields = append(fields, versionedrun.FieldResourceID)
	}
	if m.version != nil {
		fields = append(fields, versionedrun.FieldVersion)
	}
	if m.status != nil {
		fields = append(fields, versionedrun.FieldStatus)
	}
	if m.workflow_run_id != nil {
		fields = append(fields, versionedrun.FieldWorkflowRunID)
	}
	if m.namespace != nil {
		fields = append(fields, versionedrun.FieldNamespace)
	}
	if m.additional_instructions != nil {
		fields = append(fields, versionedrun.FieldAdditionalInstructions)
	}
	if m.result_json != nil {
		fields = append(fields, versionedrun.FieldResultJSON)
	}
	if m.error_message != nil {
		fields = append(fields, versionedrun.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, versionedrun.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, versionedrun.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VersionedRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case versionedrun.FieldResourceKind:
		return m.ResourceKind()
	case versionedrun.FieldResourceID:
		return m.ResourceID()
	case versionedrun.FieldVersion:
		return m.Version()
	case versionedrun.FieldStatus:
		return m.Status()
	case versionedrun.FieldWorkflowRunID:
		return m.WorkflowRunID()
	case versionedrun.FieldNamespace:
		return m.Namespace()
	case versionedrun.FieldAdditionalInstructions:
		return m.AdditionalInstructions()
	case versionedrun.FieldResultJSON:
		return m.ResultJSON()
	case versionedrun.FieldErrorMessage:
		return m.ErrorMessage()
	case versionedrun.FieldCreatedAt:
		return m.CreatedAt()
	case versionedrun.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VersionedRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case versionedrun.FieldResourceKind:
		return m.OldResourceKind(ctx)
	case versionedrun.FieldResourceID:
		return m.OldResourceID(ctx)
	case versionedrun.FieldVersion:
		return m.OldVersion(ctx)
	case versionedrun.FieldStatus:
		return m.OldStatus(ctx)
	case versionedrun.FieldWorkflowRunID:
		return m.OldWorkflowRunID(ctx)
	case versionedrun.FieldNamespace:
		return m.OldNamespace(ctx)
	case versionedrun.FieldAdditionalInstructions:
		return m.OldAdditionalInstructions(ctx)
	case versionedrun.FieldResultJSON:
		return m.OldResultJSON(ctx)
	case versionedrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case versionedrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case versionedrun.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VersionedRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VersionedRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case versionedrun.FieldResourceKind:
		v, ok := value.(versionedrun.ResourceKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceKind(v)
		return nil
	case versionedrun.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case versionedrun.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case versionedrun.FieldStatus:
		v, ok := value.(versionedrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case versionedrun.FieldWorkflowRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowRunID(v)
		return nil
	case versionedrun.FieldNamespace:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNamespace(v)
		return nil
	case versionedrun.FieldAdditionalInstructions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdditionalInstructions(v)
		return nil
	case versionedrun.FieldResultJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultJSON(v)
		return nil
	case versionedrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case versionedrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case versionedrun.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VersionedRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VersionedRunMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, versionedrun.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VersionedRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case versionedrun.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VersionedRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case versionedrun.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown VersionedRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VersionedRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(versionedrun.FieldWorkflowRunID) {
		fields = append(fields, versionedrun.FieldWorkflowRunID)
	}
	if m.FieldCleared(versionedrun.FieldNamespace) {
		fields = append(fields, versionedrun.FieldNamespace)
	}
	if m.FieldCleared(versionedrun.FieldAdditionalInstructions) {
		fields = append(fields, versionedrun.FieldAdditionalInstructions)
	}
	if m.FieldCleared(versionedrun.FieldResultJSON) {
		fields = append(fields, versionedrun.FieldResultJSON)
	}
	if m.FieldCleared(versionedrun.FieldErrorMessage) {
		fields = append(fields, versionedrun.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VersionedRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VersionedRunMutation) ClearField(name string) error {
	switch name {
	case versionedrun.FieldWorkflowRunID:
		m.ClearWorkflowRunID()
		return nil
	case versionedrun.FieldNamespace:
		m.ClearNamespace()
		return nil
	case versionedrun.FieldAdditionalInstructions:
		m.ClearAdditionalInstructions()
		return nil
	case versionedrun.FieldResultJSON:
		m.ClearResultJSON()
		return nil
	case versionedrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown VersionedRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VersionedRunMutation) ResetField(name string) error {
	switch name {
	case versionedrun.FieldResourceKind:
		m.ResetResourceKind()
		return nil
	case versionedrun.FieldResourceID:
		m.ResetResourceID()
		return nil
	case versionedrun.FieldVersion:
		m.ResetVersion()
		return nil
	case versionedrun.FieldStatus:
		m.ResetStatus()
		return nil
	case versionedrun.FieldWorkflowRunID:
		m.ResetWorkflowRunID()
		return nil
	case versionedrun.FieldNamespace:
		m.ResetNamespace()
		return nil
	case versionedrun.FieldAdditionalInstructions:
		m.ResetAdditionalInstructions()
		return nil
	case versionedrun.FieldResultJSON:
		m.ResetResultJSON()
		return nil
	case versionedrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case versionedrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case versionedrun.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown VersionedRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VersionedRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VersionedRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VersionedRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VersionedRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VersionedRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VersionedRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VersionedRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown VersionedRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VersionedRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown VersionedRun edge %s", name)
}

// WorkflowRunMutation represents an operation that mutates the WorkflowRun nodes in the graph.
type WorkflowRunMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	workflow_name        *string
	args                 *json.RawMessage
	appendargs           json.RawMessage
	args_digest          *string
	state                *workflowrun.State
	error_message        *string
	result               *json.RawMessage
	appendresult         json.RawMessage
	cancel_requested     *bool
	pause_requested      *bool
	pod_id               *string
	last_heartbeat_at    *time.Time
	recovery_attempts    *int
	addrecovery_attempts *int
	created_at           *time.Time
	updated_at           *time.Time
	started_at           *time.Time
	completed_at         *time.Time
	clearedFields        map[string]struct{}
	events               map[int]struct{}
	removedevents        map[int]struct{}
	clearedevents        bool
	done                 bool
	oldValue             func(context.Context) (*WorkflowRun, error)
	predicates           []predicate.WorkflowRun
}

var _ ent.Mutation = (*WorkflowRunMutation)(nil)

// workflowrunOption allows management of the mutation configuration using functional options.
type workflowrunOption func(*WorkflowRunMutation)

// newWorkflowRunMutation creates new mutation for the WorkflowRun entity.
func newWorkflowRunMutation(c config, op Op, opts ...workflowrunOption) *WorkflowRunMutation {
	m := &WorkflowRunMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowRunID sets the ID field of the mutation.
func withWorkflowRunID(id string) workflowrunOption {
	return func(m *WorkflowRunMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowRun
		)
		m.oldValue = func(ctx context.Context) (*WorkflowRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowRun sets the old WorkflowRun of the mutation.
func withWorkflowRun(node *WorkflowRun) workflowrunOption {
	return func(m *WorkflowRunMutation) {
		m.oldValue = func(context.Context) (*WorkflowRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowRun entities.
func (m *WorkflowRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowName sets the "workflow_name" field.
func (m *WorkflowRunMutation) SetWorkflowName(s string) {
	m.workflow_name = &s
}

// WorkflowName returns the value of the "workflow_name" field in the mutation.
func (m *WorkflowRunMutation) WorkflowName() (r string, exists bool) {
	v := m.workflow_name
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowName returns the old "workflow_name" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldWorkflowName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowName: %w", err)
	}
	return oldValue.WorkflowName, nil
}

// ResetWorkflowName resets all changes to the "workflow_name" field.
func (m *WorkflowRunMutation) ResetWorkflowName() {
	m.workflow_name = nil
}

// SetArgs sets the "args" field.
func (m *WorkflowRunMutation) SetArgs(jm json.RawMessage) {
	m.args = &jm
	m.appendargs = nil
}

// Args returns the value of the "args" field in the mutation.
func (m *WorkflowRunMutation) Args() (r json.RawMessage, exists bool) {
	v := m.args
	if v == nil {
		return
	}
	return *v, true
}

// OldArgs returns the old "args" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldArgs(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArgs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArgs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArgs: %w", err)
	}
	return oldValue.Args, nil
}

// AppendArgs adds jm to the "args" field.
func (m *WorkflowRunMutation) AppendArgs(jm json.RawMessage) {
	m.appendargs = append(m.appendargs, jm...)
}

// AppendedArgs returns the list of values that were appended to the "args" field in this mutation.
func (m *WorkflowRunMutation) AppendedArgs() (json.RawMessage, bool) {
	if len(m.appendargs) == 0 {
		return nil, false
	}
	return m.appendargs, true
}

// ResetArgs resets all changes to the "args" field.
func (m *WorkflowRunMutation) ResetArgs() {
	m.args = nil
	m.appendargs = nil
}

// SetArgsDigest sets the "args_digest" field.
func (m *WorkflowRunMutation) SetArgsDigest(s string) {
	m.args_digest = &s
}

// ArgsDigest returns the value of the "args_digest" field in the mutation.
func (m *WorkflowRunMutation) ArgsDigest() (r string, exists bool) {
	v := m.args_digest
	if v == nil {
		return
	}
	return *v, true
}

// OldArgsDigest returns the old "args_digest" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldArgsDigest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArgsDigest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArgsDigest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArgsDigest: %w", err)
	}
	return oldValue.ArgsDigest, nil
}

// ResetArgsDigest resets all changes to the "args_digest" field.
func (m *WorkflowRunMutation) ResetArgsDigest() {
	m.args_digest = nil
}

// SetState sets the "state" field.
func (m *WorkflowRunMutation) SetState(w workflowrun.State) {
	m.state = &w
}

// State returns the value of the "state" field in the mutation.
func (m *WorkflowRunMutation) State() (r workflowrun.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldState(ctx context.Context) (v workflowrun.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *WorkflowRunMutation) ResetState() {
	m.state = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkflowRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkflowRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkflowRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workflowrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkflowRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkflowRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workflowrun.FieldErrorMessage)
}

// SetResult sets the "result" field.
func (m *WorkflowRunMutation) SetResult(jm json.RawMessage) {
	m.result = &jm
	m.appendresult = nil
}

// Result returns the value of the "result" field in the mutation.
func (m *WorkflowRunMutation) Result() (r json.RawMessage, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldResult(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// AppendResult adds jm to the "result" field.
func (m *WorkflowRunMutation) AppendResult(jm json.RawMessage) {
	m.appendresult = append(m.appendresult, jm...)
}

// AppendedResult returns the list of values that were appended to the "result" field in this mutation.
func (m *WorkflowRunMutation) AppendedResult() (json.RawMessage, bool) {
	if len(m.appendresult) == 0 {
		return nil, false
	}
	return m.appendresult, true
}

// ClearResult clears the value of the "result" field.
func (m *WorkflowRunMutation) ClearResult() {
	m.result = nil
	m.appendresult = nil
	m.clearedFields[workflowrun.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *WorkflowRunMutation) ResultCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *WorkflowRunMutation) ResetResult() {
	m.result = nil
	m.appendresult = nil
	delete(m.clearedFields, workflowrun.FieldResult)
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *WorkflowRunMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *WorkflowRunMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *WorkflowRunMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetPauseRequested sets the "pause_requested" field.
func (m *WorkflowRunMutation) SetPauseRequested(b bool) {
	m.pause_requested = &b
}

// PauseRequested returns the value of the "pause_requested" field in the mutation.
func (m *WorkflowRunMutation) PauseRequested() (r bool, exists bool) {
	v := m.pause_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldPauseRequested returns the old "pause_requested" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldPauseRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPauseRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPauseRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPauseRequested: %w", err)
	}
	return oldValue.PauseRequested, nil
}

// ResetPauseRequested resets all changes to the "pause_requested" field.
func (m *WorkflowRunMutation) ResetPauseRequested() {
	m.pause_requested = nil
}

// SetPodID sets the "pod_id" field.
func (m *WorkflowRunMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *WorkflowRunMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *WorkflowRunMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[workflowrun.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *WorkflowRunMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *WorkflowRunMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, workflowrun.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *WorkflowRunMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *WorkflowRunMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *WorkflowRunMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[workflowrun.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *WorkflowRunMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *WorkflowRunMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, workflowrun.FieldLastHeartbeatAt)
}

// SetRecoveryAttempts sets the "recovery_attempts" field.
func (m *WorkflowRunMutation) SetRecoveryAttempts(i int) {
	m.recovery_attempts = &i
	m.addrecovery_attempts = nil
}

// RecoveryAttempts returns the value of the "recovery_attempts" field in the mutation.
func (m *WorkflowRunMutation) RecoveryAttempts() (r int, exists bool) {
	v := m.recovery_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveryAttempts returns the old "recovery_attempts" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldRecoveryAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveryAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveryAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveryAttempts: %w", err)
	}
	return oldValue.RecoveryAttempts, nil
}

// AddRecoveryAttempts adds i to the "recovery_attempts" field.
func (m *WorkflowRunMutation) AddRecoveryAttempts(i int) {
	if m.addrecovery_attempts != nil {
		*m.addrecovery_attempts += i
	} else {
		m.addrecovery_attempts = &i
	}
}

// AddedRecoveryAttempts returns the value that was added to the "recovery_attempts" field in this mutation.
func (m *WorkflowRunMutation) AddedRecoveryAttempts() (r int, exists bool) {
	v := m.addrecovery_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecoveryAttempts resets all changes to the "recovery_attempts" field.
func (m *WorkflowRunMutation) ResetRecoveryAttempts() {
	m.recovery_attempts = nil
	m.addrecovery_attempts = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowRunMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowRunMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkflowRunMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *WorkflowRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *WorkflowRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *WorkflowRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[workflowrun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *WorkflowRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *WorkflowRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, workflowrun.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *WorkflowRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *WorkflowRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *WorkflowRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[workflowrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *WorkflowRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *WorkflowRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, workflowrun.FieldCompletedAt)
}

// AddEventIDs adds the "events" edge to the RunEvent entity by ids.
func (m *WorkflowRunMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the RunEvent entity.
func (m *WorkflowRunMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the RunEvent entity was cleared.
func (m *WorkflowRunMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the RunEvent entity by IDs.
func (m *WorkflowRunMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the RunEvent entity.
func (m *WorkflowRunMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *WorkflowRunMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *WorkflowRunMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the WorkflowRunMutation builder.
func (m *WorkflowRunMutation) Where(ps ...predicate.WorkflowRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowRun).
func (m *WorkflowRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowRunMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.workflow_name != nil {
		fields = append(fields, workflowrun.FieldWorkflowName)
	}
	if m.args != nil {
		fields = append(fields, workflowrun.FieldArgs)
	}
	if m.args_digest != nil {
		fields = append(fields, workflowrun.FieldArgsDigest)
	}
	if m.state != nil {
		fields = append(fields, workflowrun.FieldState)
	}
	if m.error_message != nil {
		fields = append(fields, workflowrun.FieldErrorMessage)
	}
	if m.result != nil {
		fields = append(fields, workflowrun.FieldResult)
	}
	if m.cancel_requested != nil {
		fields = append(fields, workflowrun.FieldCancelRequested)
	}
	if m.pause_requested != nil {
		fields = append(fields, workflowrun.FieldPauseRequested)
	}
	if m.pod_id != nil {
		fields = append(fields, workflowrun.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, workflowrun.FieldLastHeartbeatAt)
	}
	if m.recovery_attempts != nil {
		fields = append(fields, workflowrun.FieldRecoveryAttempts)
	}
	if m.created_at != nil {
		fields = append(fields, workflowrun.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflowrun.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, workflowrun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, workflowrun.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowrun.FieldWorkflowName:
		return m.WorkflowName()
	case workflowrun.FieldArgs:
		return m.Args()
	case workflowrun.FieldArgsDigest:
		return m.ArgsDigest()
	case workflowrun.FieldState:
		return m.State()
	case workflowrun.FieldErrorMessage:
		return m.ErrorMessage()
	case workflowrun.FieldResult:
		return m.Result()
	case workflowrun.FieldCancelRequested:
		return m.CancelRequested()
	case workflowrun.FieldPauseRequested:
		return m.PauseRequested()
	case workflowrun.FieldPodID:
		return m.PodID()
	case workflowrun.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case workflowrun.FieldRecoveryAttempts:
		return m.RecoveryAttempts()
	case workflowrun.FieldCreatedAt:
		return m.CreatedAt()
	case workflowrun.FieldUpdatedAt:
		return m.UpdatedAt()
	case workflowrun.FieldStartedAt:
		return m.StartedAt()
	case workflowrun.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowrun.FieldWorkflowName:
		return m.OldWorkflowName(ctx)
	case workflowrun.FieldArgs:
		return m.OldArgs(ctx)
	case workflowrun.FieldArgsDigest:
		return m.OldArgsDigest(ctx)
	case workflowrun.FieldState:
		return m.OldState(ctx)
	case workflowrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case workflowrun.FieldResult:
		return m.OldResult(ctx)
	case workflowrun.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case workflowrun.FieldPauseRequested:
		return m.OldPauseRequested(ctx)
	case workflowrun.FieldPodID:
		return m.OldPodID(ctx)
	case workflowrun.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case workflowrun.FieldRecoveryAttempts:
		return m.OldRecoveryAttempts(ctx)
	case workflowrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflowrun.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case workflowrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case workflowrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowrun.FieldWorkflowName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowName(v)
		return nil
	case workflowrun.FieldArgs:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArgs(v)
		return nil
	case workflowrun.FieldArgsDigest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArgsDigest(v)
		return nil
	case workflowrun.FieldState:
		v, ok := value.(workflowrun.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case workflowrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case workflowrun.FieldResult:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case workflowrun.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case workflowrun.FieldPauseRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPauseRequested(v)
		return nil
	case workflowrun.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case workflowrun.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case workflowrun.FieldRecoveryAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveryAttempts(v)
		return nil
	case workflowrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflowrun.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case workflowrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case workflowrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowRunMutation) AddedFields() []string {
	var fields []string
	if m.addrecovery_attempts != nil {
		fields = append(fields, workflowrun.FieldRecoveryAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflowrun.FieldRecoveryAttempts:
		return m.AddedRecoveryAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflowrun.FieldRecoveryAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecoveryAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowrun.FieldErrorMessage) {
		fields = append(fields, workflowrun.FieldErrorMessage)
	}
	if m.FieldCleared(workflowrun.FieldResult) {
		fields = append(fields, workflowrun.FieldResult)
	}
	if m.FieldCleared(workflowrun.FieldPodID) {
		fields = append(fields, workflowrun.FieldPodID)
	}
	if m.FieldCleared(workflowrun.FieldLastHeartbeatAt) {
		fields = append(fields, workflowrun.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(workflowrun.FieldStartedAt) {
		fields = append(fields, workflowrun.FieldStartedAt)
	}
	if m.FieldCleared(workflowrun.FieldCompletedAt) {
		fields = append(fields, workflowrun.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowRunMutation) ClearField(name string) error {
	switch name {
	case workflowrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case workflowrun.FieldResult:
		m.ClearResult()
		return nil
	case workflowrun.FieldPodID:
		m.ClearPodID()
		return nil
	case workflowrun.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case workflowrun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case workflowrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowRunMutation) ResetField(name string) error {
	switch name {
	case workflowrun.FieldWorkflowName:
		m.ResetWorkflowName()
		return nil
	case workflowrun.FieldArgs:
		m.ResetArgs()
		return nil
	case workflowrun.FieldArgsDigest:
		m.ResetArgsDigest()
		return nil
	case workflowrun.FieldState:
		m.ResetState()
		return nil
	case workflowrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case workflowrun.FieldResult:
		m.ResetResult()
		return nil
	case workflowrun.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case workflowrun.FieldPauseRequested:
		m.ResetPauseRequested()
		return nil
	case workflowrun.FieldPodID:
		m.ResetPodID()
		return nil
	case workflowrun.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case workflowrun.FieldRecoveryAttempts:
		m.ResetRecoveryAttempts()
		return nil
	case workflowrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflowrun.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case workflowrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case workflowrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.events != nil {
		edges = append(edges, workflowrun.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowrun.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedevents != nil {
		edges = append(edges, workflowrun.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflowrun.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevents {
		edges = append(edges, workflowrun.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowRunMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowrun.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowRunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkflowRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowRunMutation) ResetEdge(name string) error {
	switch name {
	case workflowrun.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun edge %s", name)
}
