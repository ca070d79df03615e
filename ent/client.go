// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/recapd/recapd/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recapd/recapd/ent/externaltranscript"
	"github.com/recapd/recapd/ent/runevent"
	"github.com/recapd/recapd/ent/slide"
	"github.com/recapd/recapd/ent/slideanalysis"
	"github.com/recapd/recapd/ent/slideextraction"
	"github.com/recapd/recapd/ent/slidefeedback"
	"github.com/recapd/recapd/ent/superanalysis"
	"github.com/recapd/recapd/ent/transcript"
	"github.com/recapd/recapd/ent/versionedrun"
	"github.com/recapd/recapd/ent/workflowrun"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExternalTranscript is the client for interacting with the ExternalTranscript builders.
	ExternalTranscript *ExternalTranscriptClient
	// RunEvent is the client for interacting with the RunEvent builders.
	RunEvent *RunEventClient
	// Slide is the client for interacting with the Slide builders.
	Slide *SlideClient
	// SlideAnalysis is the client for interacting with the SlideAnalysis builders.
	SlideAnalysis *SlideAnalysisClient
	// SlideExtraction is the client for interacting with the SlideExtraction builders.
	SlideExtraction *SlideExtractionClient
	// SlideFeedback is the client for interacting with the SlideFeedback builders.
	SlideFeedback *SlideFeedbackClient
	// SuperAnalysis is the client for interacting with the SuperAnalysis builders.
	SuperAnalysis *SuperAnalysisClient
	// Transcript is the client for interacting with the Transcript builders.
	Transcript *TranscriptClient
	// VersionedRun is the client for interacting with the VersionedRun builders.
	VersionedRun *VersionedRunClient
	// WorkflowRun is the client for interacting with the WorkflowRun builders.
	WorkflowRun *WorkflowRunClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExternalTranscript = NewExternalTranscriptClient(c.config)
	c.RunEvent = NewRunEventClient(c.config)
	c.Slide = NewSlideClient(c.config)
	c.SlideAnalysis = NewSlideAnalysisClient(c.config)
	c.SlideExtraction = NewSlideExtractionClient(c.config)
	c.SlideFeedback = NewSlideFeedbackClient(c.config)
	c.SuperAnalysis = NewSuperAnalysisClient(c.config)
	c.Transcript = NewTranscriptClient(c.config)
	c.VersionedRun = NewVersionedRunClient(c.config)
	c.WorkflowRun = NewWorkflowRunClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		ExternalTranscript: NewExternalTranscriptClient(cfg),
		RunEvent:           NewRunEventClient(cfg),
		Slide:              NewSlideClient(cfg),
		SlideAnalysis:      NewSlideAnalysisClient(cfg),
		SlideExtraction:    NewSlideExtractionClient(cfg),
		SlideFeedback:      NewSlideFeedbackClient(cfg),
		SuperAnalysis:      NewSuperAnalysisClient(cfg),
		Transcript:         NewTranscriptClient(cfg),
		VersionedRun:       NewVersionedRunClient(cfg),
		WorkflowRun:        NewWorkflowRunClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		ExternalTranscript: NewExternalTranscriptClient(cfg),
		RunEvent:           NewRunEventClient(cfg),
		Slide:              NewSlideClient(cfg),
		SlideAnalysis:      NewSlideAnalysisClient(cfg),
		SlideExtraction:    NewSlideExtractionClient(cfg),
		SlideFeedback:      NewSlideFeedbackClient(cfg),
		SuperAnalysis:      NewSuperAnalysisClient(cfg),
		Transcript:         NewTranscriptClient(cfg),
		VersionedRun:       NewVersionedRunClient(cfg),
		WorkflowRun:        NewWorkflowRunClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExternalTranscript.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.ExternalTranscript, c.RunEvent, c.Slide, c.SlideAnalysis, c.SlideExtraction,
		c.SlideFeedback, c.SuperAnalysis, c.Transcript, c.VersionedRun, c.WorkflowRun,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ExternalTranscript, c.RunEvent, c.Slide, c.SlideAnalysis, c.SlideExtraction,
		c.SlideFeedback, c.SuperAnalysis, c.Transcript, c.VersionedRun, c.WorkflowRun,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExternalTranscriptMutation:
		return c.ExternalTranscript.mutate(ctx, m)
	case *RunEventMutation:
		return c.RunEvent.mutate(ctx, m)
	case *SlideMutation:
		return c.Slide.mutate(ctx, m)
	case *SlideAnalysisMutation:
		return c.SlideAnalysis.mutate(ctx, m)
	case *SlideExtractionMutation:
		return c.SlideExtraction.mutate(ctx, m)
	case *SlideFeedbackMutation:
		return c.SlideFeedback.mutate(ctx, m)
	case *SuperAnalysisMutation:
		return c.SuperAnalysis.mutate(ctx, m)
	case *TranscriptMutation:
		return c.Transcript.mutate(ctx, m)
	case *VersionedRunMutation:
		return c.VersionedRun.mutate(ctx, m)
	case *WorkflowRunMutation:
		return c.WorkflowRun.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExternalTranscriptClient is a client for the ExternalTranscript schema.
type ExternalTranscriptClient struct {
	config
}

// NewExternalTranscriptClient returns a client for the ExternalTranscript from the given config.
func NewExternalTranscriptClient(c config) *ExternalTranscriptClient {
	return &ExternalTranscriptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `externaltranscript.Hooks(f(g(h())))`.
func (c *ExternalTranscriptClient) Use(hooks ...Hook) {
	c.hooks.ExternalTranscript = append(c.hooks.ExternalTranscript, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `externaltranscript.Intercept(f(g(h())))`.
func (c *ExternalTranscriptClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExternalTranscript = append(c.inters.ExternalTranscript, interceptors...)
}

// Create returns a builder for creating a ExternalTranscript entity.
func (c *ExternalTranscriptClient) Create() *ExternalTranscriptCreate {
	mutation := newExternalTranscriptMutation(c.config, OpCreate)
	return &ExternalTranscriptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExternalTranscript entities.
func (c *ExternalTranscriptClient) CreateBulk(builders ...*ExternalTranscriptCreate) *ExternalTranscriptCreateBulk {
	return &ExternalTranscriptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExternalTranscriptClient) MapCreateBulk(slice any, setFunc func(*ExternalTranscriptCreate, int)) *ExternalTranscriptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExternalTranscriptCreateBulk{err: fmt.Errorf("calling to ExternalTranscriptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExternalTranscriptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExternalTranscriptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExternalTranscript.
func (c *ExternalTranscriptClient) Update() *ExternalTranscriptUpdate {
	mutation := newExternalTranscriptMutation(c.config, OpUpdate)
	return &ExternalTranscriptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExternalTranscriptClient) UpdateOne(_m *ExternalTranscript) *ExternalTranscriptUpdateOne {
	mutation := newExternalTranscriptMutation(c.config, OpUpdateOne, withExternalTranscript(_m))
	return &ExternalTranscriptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExternalTranscriptClient) UpdateOneID(id string) *ExternalTranscriptUpdateOne {
	mutation := newExternalTranscriptMutation(c.config, OpUpdateOne, withExternalTranscriptID(id))
	return &ExternalTranscriptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExternalTranscript.
func (c *ExternalTranscriptClient) Delete() *ExternalTranscriptDelete {
	mutation := newExternalTranscriptMutation(c.config, OpDelete)
	return &ExternalTranscriptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExternalTranscriptClient) DeleteOne(_m *ExternalTranscript) *ExternalTranscriptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExternalTranscriptClient) DeleteOneID(id string) *ExternalTranscriptDeleteOne {
	builder := c.Delete().Where(externaltranscript.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExternalTranscriptDeleteOne{builder}
}

// Query returns a query builder for ExternalTranscript.
func (c *ExternalTranscriptClient) Query() *ExternalTranscriptQuery {
	return &ExternalTranscriptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExternalTranscript},
		inters: c.Interceptors(),
	}
}

// Get returns a ExternalTranscript entity by its id.
func (c *ExternalTranscriptClient) Get(ctx context.Context, id string) (*ExternalTranscript, error) {
	return c.Query().Where(externaltranscript.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExternalTranscriptClient) GetX(ctx context.Context, id string) *ExternalTranscript {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExternalTranscriptClient) Hooks() []Hook {
	return c.hooks.ExternalTranscript
}

// Interceptors returns the client interceptors.
func (c *ExternalTranscriptClient) Interceptors() []Interceptor {
	return c.inters.ExternalTranscript
}

func (c *ExternalTranscriptClient) mutate(ctx context.Context, m *ExternalTranscriptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExternalTranscriptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExternalTranscriptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExternalTranscriptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExternalTranscriptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExternalTranscript mutation op: %q", m.Op())
	}
}

// RunEventClient is a client for the RunEvent schema.
type RunEventClient struct {
	config
}

// NewRunEventClient returns a client for the RunEvent from the given config.
func NewRunEventClient(c config) *RunEventClient {
	return &RunEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runevent.Hooks(f(g(h())))`.
func (c *RunEventClient) Use(hooks ...Hook) {
	c.hooks.RunEvent = append(c.hooks.RunEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runevent.Intercept(f(g(h())))`.
func (c *RunEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunEvent = append(c.inters.RunEvent, interceptors...)
}

// Create returns a builder for creating a RunEvent entity.
func (c *RunEventClient) Create() *RunEventCreate {
	mutation := newRunEventMutation(c.config, OpCreate)
	return &RunEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunEvent entities.
func (c *RunEventClient) CreateBulk(builders ...*RunEventCreate) *RunEventCreateBulk {
	return &RunEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunEventClient) MapCreateBulk(slice any, setFunc func(*RunEventCreate, int)) *RunEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunEventCreateBulk{err: fmt.Errorf("calling to RunEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunEvent.
func (c *RunEventClient) Update() *RunEventUpdate {
	mutation := newRunEventMutation(c.config, OpUpdate)
	return &RunEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunEventClient) UpdateOne(_m *RunEvent) *RunEventUpdateOne {
	mutation := newRunEventMutation(c.config, OpUpdateOne, withRunEvent(_m))
	return &RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunEventClient) UpdateOneID(id int) *RunEventUpdateOne {
	mutation := newRunEventMutation(c.config, OpUpdateOne, withRunEventID(id))
	return &RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunEvent.
func (c *RunEventClient) Delete() *RunEventDelete {
	mutation := newRunEventMutation(c.config, OpDelete)
	return &RunEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunEventClient) DeleteOne(_m *RunEvent) *RunEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunEventClient) DeleteOneID(id int) *RunEventDeleteOne {
	builder := c.Delete().Where(runevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunEventDeleteOne{builder}
}

// Query returns a query builder for RunEvent.
func (c *RunEventClient) Query() *RunEventQuery {
	return &RunEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RunEvent entity by its id.
func (c *RunEventClient) Get(ctx context.Context, id int) (*RunEvent, error) {
	return c.Query().Where(runevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunEventClient) GetX(ctx context.Context, id int) *RunEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a RunEvent.
func (c *RunEventClient) QueryRun(_m *RunEvent) *WorkflowRunQuery {
	query := (&WorkflowRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runevent.Table, runevent.FieldID, id),
			sqlgraph.To(workflowrun.Table, workflowrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, runevent.RunTable, runevent.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunEventClient) Hooks() []Hook {
	return c.hooks.RunEvent
}

// Interceptors returns the client interceptors.
func (c *RunEventClient) Interceptors() []Interceptor {
	return c.inters.RunEvent
}

func (c *RunEventClient) mutate(ctx context.Context, m *RunEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunEvent mutation op: %q", m.Op())
	}
}

// SlideClient is a client for the Slide schema.
type SlideClient struct {
	config
}

// NewSlideClient returns a client for the Slide from the given config.
func NewSlideClient(c config) *SlideClient {
	return &SlideClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `slide.Hooks(f(g(h())))`.
func (c *SlideClient) Use(hooks ...Hook) {
	c.hooks.Slide = append(c.hooks.Slide, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `slide.Intercept(f(g(h())))`.
func (c *SlideClient) Intercept(interceptors ...Interceptor) {
	c.inters.Slide = append(c.inters.Slide, interceptors...)
}

// Create returns a builder for creating a Slide entity.
func (c *SlideClient) Create() *SlideCreate {
	mutation := newSlideMutation(c.config, OpCreate)
	return &SlideCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Slide entities.
func (c *SlideClient) CreateBulk(builders ...*SlideCreate) *SlideCreateBulk {
	return &SlideCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SlideClient) MapCreateBulk(slice any, setFunc func(*SlideCreate, int)) *SlideCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SlideCreateBulk{err: fmt.Errorf("calling to SlideClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SlideCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SlideCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Slide.
func (c *SlideClient) Update() *SlideUpdate {
	mutation := newSlideMutation(c.config, OpUpdate)
	return &SlideUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SlideClient) UpdateOne(_m *Slide) *SlideUpdateOne {
	mutation := newSlideMutation(c.config, OpUpdateOne, withSlide(_m))
	return &SlideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SlideClient) UpdateOneID(id int) *SlideUpdateOne {
	mutation := newSlideMutation(c.config, OpUpdateOne, withSlideID(id))
	return &SlideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Slide.
func (c *SlideClient) Delete() *SlideDelete {
	mutation := newSlideMutation(c.config, OpDelete)
	return &SlideDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SlideClient) DeleteOne(_m *Slide) *SlideDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SlideClient) DeleteOneID(id int) *SlideDeleteOne {
	builder := c.Delete().Where(slide.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SlideDeleteOne{builder}
}

// Query returns a query builder for Slide.
func (c *SlideClient) Query() *SlideQuery {
	return &SlideQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSlide},
		inters: c.Interceptors(),
	}
}

// Get returns a Slide entity by its id.
func (c *SlideClient) Get(ctx context.Context, id int) (*Slide, error) {
	return c.Query().Where(slide.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SlideClient) GetX(ctx context.Context, id int) *Slide {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SlideClient) Hooks() []Hook {
	return c.hooks.Slide
}

// Interceptors returns the client interceptors.
func (c *SlideClient) Interceptors() []Interceptor {
	return c.inters.Slide
}

func (c *SlideClient) mutate(ctx context.Context, m *SlideMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SlideCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SlideUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SlideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SlideDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Slide mutation op: %q", m.Op())
	}
}

// SlideAnalysisClient is a client for the SlideAnalysis schema.
type SlideAnalysisClient struct {
	config
}

// NewSlideAnalysisClient returns a client for the SlideAnalysis from the given config.
func NewSlideAnalysisClient(c config) *SlideAnalysisClient {
	return &SlideAnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `slideanalysis.Hooks(f(g(h())))`.
func (c *SlideAnalysisClient) Use(hooks ...Hook) {
	c.hooks.SlideAnalysis = append(c.hooks.SlideAnalysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `slideanalysis.Intercept(f(g(h())))`.
func (c *SlideAnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.SlideAnalysis = append(c.inters.SlideAnalysis, interceptors...)
}

// Create returns a builder for creating a SlideAnalysis entity.
func (c *SlideAnalysisClient) Create() *SlideAnalysisCreate {
	mutation := newSlideAnalysisMutation(c.config, OpCreate)
	return &SlideAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SlideAnalysis entities.
func (c *SlideAnalysisClient) CreateBulk(builders ...*SlideAnalysisCreate) *SlideAnalysisCreateBulk {
	return &SlideAnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SlideAnalysisClient) MapCreateBulk(slice any, setFunc func(*SlideAnalysisCreate, int)) *SlideAnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SlideAnalysisCreateBulk{err: fmt.Errorf("calling to SlideAnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SlideAnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SlideAnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SlideAnalysis.
func (c *SlideAnalysisClient) Update() *SlideAnalysisUpdate {
	mutation := newSlideAnalysisMutation(c.config, OpUpdate)
	return &SlideAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SlideAnalysisClient) UpdateOne(_m *SlideAnalysis) *SlideAnalysisUpdateOne {
	mutation := newSlideAnalysisMutation(c.config, OpUpdateOne, withSlideAnalysis(_m))
	return &SlideAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SlideAnalysisClient) UpdateOneID(id int) *SlideAnalysisUpdateOne {
	mutation := newSlideAnalysisMutation(c.config, OpUpdateOne, withSlideAnalysisID(id))
	return &SlideAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SlideAnalysis.
func (c *SlideAnalysisClient) Delete() *SlideAnalysisDelete {
	mutation := newSlideAnalysisMutation(c.config, OpDelete)
	return &SlideAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SlideAnalysisClient) DeleteOne(_m *SlideAnalysis) *SlideAnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SlideAnalysisClient) DeleteOneID(id int) *SlideAnalysisDeleteOne {
	builder := c.Delete().Where(slideanalysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SlideAnalysisDeleteOne{builder}
}

// Query returns a query builder for SlideAnalysis.
func (c *SlideAnalysisClient) Query() *SlideAnalysisQuery {
	return &SlideAnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSlideAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a SlideAnalysis entity by its id.
func (c *SlideAnalysisClient) Get(ctx context.Context, id int) (*SlideAnalysis, error) {
	return c.Query().Where(slideanalysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SlideAnalysisClient) GetX(ctx context.Context, id int) *SlideAnalysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SlideAnalysisClient) Hooks() []Hook {
	return c.hooks.SlideAnalysis
}

// Interceptors returns the client interceptors.
func (c *SlideAnalysisClient) Interceptors() []Interceptor {
	return c.inters.SlideAnalysis
}

func (c *SlideAnalysisClient) mutate(ctx context.Context, m *SlideAnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SlideAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SlideAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SlideAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SlideAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SlideAnalysis mutation op: %q", m.Op())
	}
}

// SlideExtractionClient is a client for the SlideExtraction schema.
type SlideExtractionClient struct {
	config
}

// NewSlideExtractionClient returns a client for the SlideExtraction from the given config.
func NewSlideExtractionClient(c config) *SlideExtractionClient {
	return &SlideExtractionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `slideextraction.Hooks(f(g(h())))`.
func (c *SlideExtractionClient) Use(hooks ...Hook) {
	c.hooks.SlideExtraction = append(c.hooks.SlideExtraction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `slideextraction.Intercept(f(g(h())))`.
func (c *SlideExtractionClient) Intercept(interceptors ...Interceptor) {
	c.inters.SlideExtraction = append(c.inters.SlideExtraction, interceptors...)
}

// Create returns a builder for creating a SlideExtraction entity.
func (c *SlideExtractionClient) Create() *SlideExtractionCreate {
	mutation := newSlideExtractionMutation(c.config, OpCreate)
	return &SlideExtractionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SlideExtraction entities.
func (c *SlideExtractionClient) CreateBulk(builders ...*SlideExtractionCreate) *SlideExtractionCreateBulk {
	return &SlideExtractionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SlideExtractionClient) MapCreateBulk(slice any, setFunc func(*SlideExtractionCreate, int)) *SlideExtractionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SlideExtractionCreateBulk{err: fmt.Errorf("calling to SlideExtractionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SlideExtractionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SlideExtractionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SlideExtraction.
func (c *SlideExtractionClient) Update() *SlideExtractionUpdate {
	mutation := newSlideExtractionMutation(c.config, OpUpdate)
	return &SlideExtractionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SlideExtractionClient) UpdateOne(_m *SlideExtraction) *SlideExtractionUpdateOne {
	mutation := newSlideExtractionMutation(c.config, OpUpdateOne, withSlideExtraction(_m))
	return &SlideExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SlideExtractionClient) UpdateOneID(id int) *SlideExtractionUpdateOne {
	mutation := newSlideExtractionMutation(c.config, OpUpdateOne, withSlideExtractionID(id))
	return &SlideExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SlideExtraction.
func (c *SlideExtractionClient) Delete() *SlideExtractionDelete {
	mutation := newSlideExtractionMutation(c.config, OpDelete)
	return &SlideExtractionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SlideExtractionClient) DeleteOne(_m *SlideExtraction) *SlideExtractionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SlideExtractionClient) DeleteOneID(id int) *SlideExtractionDeleteOne {
	builder := c.Delete().Where(slideextraction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SlideExtractionDeleteOne{builder}
}

// Query returns a query builder for SlideExtraction.
func (c *SlideExtractionClient) Query() *SlideExtractionQuery {
	return &SlideExtractionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSlideExtraction},
		inters: c.Interceptors(),
	}
}

// Get returns a SlideExtraction entity by its id.
func (c *SlideExtractionClient) Get(ctx context.Context, id int) (*SlideExtraction, error) {
	return c.Query().Where(slideextraction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SlideExtractionClient) GetX(ctx context.Context, id int) *SlideExtraction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SlideExtractionClient) Hooks() []Hook {
	return c.hooks.SlideExtraction
}

// Interceptors returns the client interceptors.
func (c *SlideExtractionClient) Interceptors() []Interceptor {
	return c.inters.SlideExtraction
}

func (c *SlideExtractionClient) mutate(ctx context.Context, m *SlideExtractionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SlideExtractionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SlideExtractionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SlideExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SlideExtractionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SlideExtraction mutation op: %q", m.Op())
	}
}

// SlideFeedbackClient is a client for the SlideFeedback schema.
type SlideFeedbackClient struct {
	config
}

// NewSlideFeedbackClient returns a client for the SlideFeedback from the given config.
func NewSlideFeedbackClient(c config) *SlideFeedbackClient {
	return &SlideFeedbackClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `slidefeedback.Hooks(f(g(h())))`.
func (c *SlideFeedbackClient) Use(hooks ...Hook) {
	c.hooks.SlideFeedback = append(c.hooks.SlideFeedback, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `slidefeedback.Intercept(f(g(h())))`.
func (c *SlideFeedbackClient) Intercept(interceptors ...Interceptor) {
	c.inters.SlideFeedback = append(c.inters.SlideFeedback, interceptors...)
}

// Create returns a builder for creating a SlideFeedback entity.
func (c *SlideFeedbackClient) Create() *SlideFeedbackCreate {
	mutation := newSlideFeedbackMutation(c.config, OpCreate)
	return &SlideFeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SlideFeedback entities.
func (c *SlideFeedbackClient) CreateBulk(builders ...*SlideFeedbackCreate) *SlideFeedbackCreateBulk {
	return &SlideFeedbackCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SlideFeedbackClient) MapCreateBulk(slice any, setFunc func(*SlideFeedbackCreate, int)) *SlideFeedbackCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SlideFeedbackCreateBulk{err: fmt.Errorf("calling to SlideFeedbackClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SlideFeedbackCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SlideFeedbackCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SlideFeedback.
func (c *SlideFeedbackClient) Update() *SlideFeedbackUpdate {
	mutation := newSlideFeedbackMutation(c.config, OpUpdate)
	return &SlideFeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SlideFeedbackClient) UpdateOne(_m *SlideFeedback) *SlideFeedbackUpdateOne {
	mutation := newSlideFeedbackMutation(c.config, OpUpdateOne, withSlideFeedback(_m))
	return &SlideFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SlideFeedbackClient) UpdateOneID(id int) *SlideFeedbackUpdateOne {
	mutation := newSlideFeedbackMutation(c.config, OpUpdateOne, withSlideFeedbackID(id))
	return &SlideFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SlideFeedback.
func (c *SlideFeedbackClient) Delete() *SlideFeedbackDelete {
	mutation := newSlideFeedbackMutation(c.config, OpDelete)
	return &SlideFeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SlideFeedbackClient) DeleteOne(_m *SlideFeedback) *SlideFeedbackDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SlideFeedbackClient) DeleteOneID(id int) *SlideFeedbackDeleteOne {
	builder := c.Delete().Where(slidefeedback.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SlideFeedbackDeleteOne{builder}
}

// Query returns a query builder for SlideFeedback.
func (c *SlideFeedbackClient) Query() *SlideFeedbackQuery {
	return &SlideFeedbackQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSlideFeedback},
		inters: c.Interceptors(),
	}
}

// Get returns a SlideFeedback entity by its id.
func (c *SlideFeedbackClient) Get(ctx context.Context, id int) (*SlideFeedback, error) {
	return c.Query().Where(slidefeedback.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SlideFeedbackClient) GetX(ctx context.Context, id int) *SlideFeedback {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SlideFeedbackClient) Hooks() []Hook {
	return c.hooks.SlideFeedback
}

// Interceptors returns the client interceptors.
func (c *SlideFeedbackClient) Interceptors() []Interceptor {
	return c.inters.SlideFeedback
}

func (c *SlideFeedbackClient) mutate(ctx context.Context, m *SlideFeedbackMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SlideFeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SlideFeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SlideFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SlideFeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SlideFeedback mutation op: %q", m.Op())
	}
}

// SuperAnalysisClient is a client for the SuperAnalysis schema.
type SuperAnalysisClient struct {
	config
}

// NewSuperAnalysisClient returns a client for the SuperAnalysis from the given config.
func NewSuperAnalysisClient(c config) *SuperAnalysisClient {
	return &SuperAnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `superanalysis.Hooks(f(g(h())))`.
func (c *SuperAnalysisClient) Use(hooks ...Hook) {
	c.hooks.SuperAnalysis = append(c.hooks.SuperAnalysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `superanalysis.Intercept(f(g(h())))`.
func (c *SuperAnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.SuperAnalysis = append(c.inters.SuperAnalysis, interceptors...)
}

// Create returns a builder for creating a SuperAnalysis entity.
func (c *SuperAnalysisClient) Create() *SuperAnalysisCreate {
	mutation := newSuperAnalysisMutation(c.config, OpCreate)
	return &SuperAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SuperAnalysis entities.
func (c *SuperAnalysisClient) CreateBulk(builders ...*SuperAnalysisCreate) *SuperAnalysisCreateBulk {
	return &SuperAnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SuperAnalysisClient) MapCreateBulk(slice any, setFunc func(*SuperAnalysisCreate, int)) *SuperAnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SuperAnalysisCreateBulk{err: fmt.Errorf("calling to SuperAnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SuperAnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SuperAnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SuperAnalysis.
func (c *SuperAnalysisClient) Update() *SuperAnalysisUpdate {
	mutation := newSuperAnalysisMutation(c.config, OpUpdate)
	return &SuperAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SuperAnalysisClient) UpdateOne(_m *SuperAnalysis) *SuperAnalysisUpdateOne {
	mutation := newSuperAnalysisMutation(c.config, OpUpdateOne, withSuperAnalysis(_m))
	return &SuperAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SuperAnalysisClient) UpdateOneID(id int) *SuperAnalysisUpdateOne {
	mutation := newSuperAnalysisMutation(c.config, OpUpdateOne, withSuperAnalysisID(id))
	return &SuperAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SuperAnalysis.
func (c *SuperAnalysisClient) Delete() *SuperAnalysisDelete {
	mutation := newSuperAnalysisMutation(c.config, OpDelete)
	return &SuperAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SuperAnalysisClient) DeleteOne(_m *SuperAnalysis) *SuperAnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SuperAnalysisClient) DeleteOneID(id int) *SuperAnalysisDeleteOne {
	builder := c.Delete().Where(superanalysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SuperAnalysisDeleteOne{builder}
}

// Query returns a query builder for SuperAnalysis.
func (c *SuperAnalysisClient) Query() *SuperAnalysisQuery {
	return &SuperAnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSuperAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a SuperAnalysis entity by its id.
func (c *SuperAnalysisClient) Get(ctx context.Context, id int) (*SuperAnalysis, error) {
	return c.Query().Where(superanalysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SuperAnalysisClient) GetX(ctx context.Context, id int) *SuperAnalysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SuperAnalysisClient) Hooks() []Hook {
	return c.hooks.SuperAnalysis
}

// Interceptors returns the client interceptors.
func (c *SuperAnalysisClient) Interceptors() []Interceptor {
	return c.inters.SuperAnalysis
}

func (c *SuperAnalysisClient) mutate(ctx context.Context, m *SuperAnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SuperAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SuperAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SuperAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SuperAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SuperAnalysis mutation op: %q", m.Op())
	}
}

// TranscriptClient is a client for the Transcript schema.
type TranscriptClient struct {
	config
}

// NewTranscriptClient returns a client for the Transcript from the given config.
func NewTranscriptClient(c config) *TranscriptClient {
	return &TranscriptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transcript.Hooks(f(g(h())))`.
func (c *TranscriptClient) Use(hooks ...Hook) {
	c.hooks.Transcript = append(c.hooks.Transcript, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transcript.Intercept(f(g(h())))`.
func (c *TranscriptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Transcript = append(c.inters.Transcript, interceptors...)
}

// Create returns a builder for creating a Transcript entity.
func (c *TranscriptClient) Create() *TranscriptCreate {
	mutation := newTranscriptMutation(c.config, OpCreate)
	return &TranscriptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Transcript entities.
func (c *TranscriptClient) CreateBulk(builders ...*TranscriptCreate) *TranscriptCreateBulk {
	return &TranscriptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TranscriptClient) MapCreateBulk(slice any, setFunc func(*TranscriptCreate, int)) *TranscriptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TranscriptCreateBulk{err: fmt.Errorf("calling to TranscriptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TranscriptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TranscriptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Transcript.
func (c *TranscriptClient) Update() *TranscriptUpdate {
	mutation := newTranscriptMutation(c.config, OpUpdate)
	return &TranscriptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TranscriptClient) UpdateOne(_m *Transcript) *TranscriptUpdateOne {
	mutation := newTranscriptMutation(c.config, OpUpdateOne, withTranscript(_m))
	return &TranscriptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TranscriptClient) UpdateOneID(id int) *TranscriptUpdateOne {
	mutation := newTranscriptMutation(c.config, OpUpdateOne, withTranscriptID(id))
	return &TranscriptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Transcript.
func (c *TranscriptClient) Delete() *TranscriptDelete {
	mutation := newTranscriptMutation(c.config, OpDelete)
	return &TranscriptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TranscriptClient) DeleteOne(_m *Transcript) *TranscriptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TranscriptClient) DeleteOneID(id int) *TranscriptDeleteOne {
	builder := c.Delete().Where(transcript.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TranscriptDeleteOne{builder}
}

// Query returns a query builder for Transcript.
func (c *TranscriptClient) Query() *TranscriptQuery {
	return &TranscriptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTranscript},
		inters: c.Interceptors(),
	}
}

// Get returns a Transcript entity by its id.
func (c *TranscriptClient) Get(ctx context.Context, id int) (*Transcript, error) {
	return c.Query().Where(transcript.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TranscriptClient) GetX(ctx context.Context, id int) *Transcript {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TranscriptClient) Hooks() []Hook {
	return c.hooks.Transcript
}

// Interceptors returns the client interceptors.
func (c *TranscriptClient) Interceptors() []Interceptor {
	return c.inters.Transcript
}

func (c *TranscriptClient) mutate(ctx context.Context, m *TranscriptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TranscriptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TranscriptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TranscriptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TranscriptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Transcript mutation op: %q", m.Op())
	}
}

// VersionedRunClient is a client for the VersionedRun schema.
type VersionedRunClient struct {
	config
}

// NewVersionedRunClient returns a client for the VersionedRun from the given config.
func NewVersionedRunClient(c config) *VersionedRunClient {
	return &VersionedRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `versionedrun.Hooks(f(g(h())))`.
func (c *VersionedRunClient) Use(hooks ...Hook) {
	c.hooks.VersionedRun = append(c.hooks.VersionedRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `versionedrun.Intercept(f(g(h())))`.
func (c *VersionedRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.VersionedRun = append(c.inters.VersionedRun, interceptors...)
}

// Create returns a builder for creating a VersionedRun entity.
func (c *VersionedRunClient) Create() *VersionedRunCreate {
	mutation := newVersionedRunMutation(c.config, OpCreate)
	return &VersionedRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VersionedRun entities.
func (c *VersionedRunClient) CreateBulk(builders ...*VersionedRunCreate) *VersionedRunCreateBulk {
	return &VersionedRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VersionedRunClient) MapCreateBulk(slice any, setFunc func(*VersionedRunCreate, int)) *VersionedRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VersionedRunCreateBulk{err: fmt.Errorf("calling to VersionedRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VersionedRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VersionedRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VersionedRun.
func (c *VersionedRunClient) Update() *VersionedRunUpdate {
	mutation := newVersionedRunMutation(c.config, OpUpdate)
	return &VersionedRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VersionedRunClient) UpdateOne(_m *VersionedRun) *VersionedRunUpdateOne {
	mutation := newVersionedRunMutation(c.config, OpUpdateOne, withVersionedRun(_m))
	return &VersionedRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VersionedRunClient) UpdateOneID(id int) *VersionedRunUpdateOne {
	mutation := newVersionedRunMutation(c.config, OpUpdateOne, withVersionedRunID(id))
	return &VersionedRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VersionedRun.
func (c *VersionedRunClient) Delete() *VersionedRunDelete {
	mutation := newVersionedRunMutation(c.config, OpDelete)
	return &VersionedRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VersionedRunClient) DeleteOne(_m *VersionedRun) *VersionedRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VersionedRunClient) DeleteOneID(id int) *VersionedRunDeleteOne {
	builder := c.Delete().Where(versionedrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VersionedRunDeleteOne{builder}
}

// Query returns a query builder for VersionedRun.
func (c *VersionedRunClient) Query() *VersionedRunQuery {
	return &VersionedRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVersionedRun},
		inters: c.Interceptors(),
	}
}

// Get returns a VersionedRun entity by its id.
func (c *VersionedRunClient) Get(ctx context.Context, id int) (*VersionedRun, error) {
	return c.Query().Where(versionedrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VersionedRunClient) GetX(ctx context.Context, id int) *VersionedRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VersionedRunClient) Hooks() []Hook {
	return c.hooks.VersionedRun
}

// Interceptors returns the client interceptors.
func (c *VersionedRunClient) Interceptors() []Interceptor {
	return c.inters.VersionedRun
}

func (c *VersionedRunClient) mutate(ctx context.Context, m *VersionedRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VersionedRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VersionedRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VersionedRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VersionedRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VersionedRun mutation op: %q", m.Op())
	}
}

// WorkflowRunClient is a client for the WorkflowRun schema.
type WorkflowRunClient struct {
	config
}

// NewWorkflowRunClient returns a client for the WorkflowRun from the given config.
func NewWorkflowRunClient(c config) *WorkflowRunClient {
	return &WorkflowRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowrun.Hooks(f(g(h())))`.
func (c *WorkflowRunClient) Use(hooks ...Hook) {
	c.hooks.WorkflowRun = append(c.hooks.WorkflowRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowrun.Intercept(f(g(h())))`.
func (c *WorkflowRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowRun = append(c.inters.WorkflowRun, interceptors...)
}

// Create returns a builder for creating a WorkflowRun entity.
func (c *WorkflowRunClient) Create() *WorkflowRunCreate {
	mutation := newWorkflowRunMutation(c.config, OpCreate)
	return &WorkflowRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowRun entities.
func (c *WorkflowRunClient) CreateBulk(builders ...*WorkflowRunCreate) *WorkflowRunCreateBulk {
	return &WorkflowRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowRunClient) MapCreateBulk(slice any, setFunc func(*WorkflowRunCreate, int)) *WorkflowRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowRunCreateBulk{err: fmt.Errorf("calling to WorkflowRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowRun.
func (c *WorkflowRunClient) Update() *WorkflowRunUpdate {
	mutation := newWorkflowRunMutation(c.config, OpUpdate)
	return &WorkflowRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowRunClient) UpdateOne(_m *WorkflowRun) *WorkflowRunUpdateOne {
	mutation := newWorkflowRunMutation(c.config, OpUpdateOne, withWorkflowRun(_m))
	return &WorkflowRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowRunClient) UpdateOneID(id string) *WorkflowRunUpdateOne {
	mutation := newWorkflowRunMutation(c.config, OpUpdateOne, withWorkflowRunID(id))
	return &WorkflowRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowRun.
func (c *WorkflowRunClient) Delete() *WorkflowRunDelete {
	mutation := newWorkflowRunMutation(c.config, OpDelete)
	return &WorkflowRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowRunClient) DeleteOne(_m *WorkflowRun) *WorkflowRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowRunClient) DeleteOneID(id string) *WorkflowRunDeleteOne {
	builder := c.Delete().Where(workflowrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowRunDeleteOne{builder}
}

// Query returns a query builder for WorkflowRun.
func (c *WorkflowRunClient) Query() *WorkflowRunQuery {
	return &WorkflowRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowRun},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowRun entity by its id.
func (c *WorkflowRunClient) Get(ctx context.Context, id string) (*WorkflowRun, error) {
	return c.Query().Where(workflowrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowRunClient) GetX(ctx context.Context, id string) *WorkflowRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvents queries the events edge of a WorkflowRun.
func (c *WorkflowRunClient) QueryEvents(_m *WorkflowRun) *RunEventQuery {
	query := (&RunEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowrun.Table, workflowrun.FieldID, id),
			sqlgraph.To(runevent.Table, runevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflowrun.EventsTable, workflowrun.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowRunClient) Hooks() []Hook {
	return c.hooks.WorkflowRun
}

// Interceptors returns the client interceptors.
func (c *WorkflowRunClient) Interceptors() []Interceptor {
	return c.inters.WorkflowRun
}

func (c *WorkflowRunClient) mutate(ctx context.Context, m *WorkflowRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowRun mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExternalTranscript, RunEvent, Slide, SlideAnalysis, SlideExtraction,
		SlideFeedback, SuperAnalysis, Transcript, VersionedRun, WorkflowRun []ent.Hook
	}
	inters struct {
		ExternalTranscript, RunEvent, Slide, SlideAnalysis, SlideExtraction,
		SlideFeedback, SuperAnalysis, Transcript, VersionedRun,
		WorkflowRun []ent.Interceptor
	}
)
