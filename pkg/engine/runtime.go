package engine

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/workflowrun"
	"github.com/recapd/recapd/pkg/config"
	"github.com/recapd/recapd/pkg/metrics"
)

// WorkflowFunc is a workflow body: it drives steps through the StepContext
// and returns the run's result, which must be JSON-serializable.
type WorkflowFunc func(sc *StepContext, args json.RawMessage) (any, error)

// Engine executes registered workflows as durable runs. Starting a run
// creates its row and seeds its log; the worker pool claims pending runs and
// drives them through Execute, which replays the trace so previously
// completed steps return instantly.
type Engine struct {
	client *ent.Client
	db     *stdsql.DB
	log    *Log
	cfg    *config.EngineConfig

	mu        sync.RWMutex
	workflows map[string]WorkflowFunc

	// flags tracks cooperative signals for runs executing on this pod.
	flagsMu sync.RWMutex
	flags   map[string]*Flags
}

// New creates an engine. Register workflows before starting the worker pool.
func New(client *ent.Client, db *stdsql.DB, log *Log, cfg *config.EngineConfig) *Engine {
	return &Engine{
		client:    client,
		db:        db,
		log:       log,
		cfg:       cfg,
		workflows: make(map[string]WorkflowFunc),
		flags:     make(map[string]*Flags),
	}
}

// Log returns the engine's event log.
func (e *Engine) Log() *Log { return e.log }

// Register adds a workflow under a stable name.
func (e *Engine) Register(name string, fn WorkflowFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.workflows[name] = fn
}

// lookup returns the registered function for a workflow name.
func (e *Engine) lookup(name string) (WorkflowFunc, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	fn, ok := e.workflows[name]
	return fn, ok
}

// Start allocates a run for the workflow, seeds its log, and leaves it
// pending for the worker pool. When an active run with the same workflow and
// args already exists (partial unique index on the digest), that run is
// returned instead with started=false.
func (e *Engine) Start(ctx context.Context, workflow string, args json.RawMessage) (run *ent.WorkflowRun, started bool, err error) {
	if _, ok := e.lookup(workflow); !ok {
		return nil, false, fmt.Errorf("%w: %s", ErrWorkflowNotRegistered, workflow)
	}

	digest := ArgsDigest(workflow, args)
	runID := uuid.New().String()

	run, err = e.client.WorkflowRun.Create().
		SetID(runID).
		SetWorkflowName(workflow).
		SetArgs(args).
		SetArgsDigest(digest).
		SetState(workflowrun.StatePending).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, ferr := e.findActive(ctx, workflow, digest)
			if ferr != nil {
				return nil, false, fmt.Errorf("failed to find active run after dedupe conflict: %w", ferr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to create run: %w", err)
	}

	seed, merr := json.Marshal(map[string]string{"args_digest": digest})
	if merr != nil {
		return nil, false, fmt.Errorf("failed to marshal seed payload: %w", merr)
	}
	if err := e.log.Append(ctx, &Event{
		RunID:   runID,
		Index:   0,
		Kind:    KindStepStarted,
		StepID:  StartStepID,
		Payload: seed,
	}); err != nil {
		return nil, false, fmt.Errorf("failed to seed run log: %w", err)
	}

	metrics.RunsStarted.WithLabelValues(workflow).Inc()
	slog.Info("Run started", "run_id", runID, "workflow", workflow)
	return run, true, nil
}

// findActive returns the non-terminal run matching (workflow, digest).
func (e *Engine) findActive(ctx context.Context, workflow, digest string) (*ent.WorkflowRun, error) {
	return e.client.WorkflowRun.Query().
		Where(
			workflowrun.WorkflowNameEQ(workflow),
			workflowrun.ArgsDigestEQ(digest),
			workflowrun.StateIn(workflowrun.StatePending, workflowrun.StateRunning, workflowrun.StatePaused),
		).
		Only(ctx)
}

// Execute drives a claimed run to its outcome: completed, failed, cancelled,
// paused (re-claimable after resume), or back to pending on shutdown.
// Called by the worker pool with the run already in state running.
func (e *Engine) Execute(ctx context.Context, run *ent.WorkflowRun, flags *Flags) {
	log := slog.With("run_id", run.ID, "workflow", run.WorkflowName)
	start := time.Now()

	e.trackFlags(run.ID, flags)
	defer e.untrackFlags(run.ID)

	fn, ok := e.lookup(run.WorkflowName)
	if !ok {
		e.finish(run, StateFailed, fmt.Sprintf("workflow %s is not registered on this pod", run.WorkflowName), nil)
		return
	}

	trace, err := e.log.Load(context.WithoutCancel(ctx), run.ID)
	if err != nil {
		log.Error("Failed to load run trace, re-queueing", "error", err)
		e.requeue(run)
		return
	}
	if len(trace) > 0 && IsTerminalState(terminalStateOf(trace[len(trace)-1])) {
		log.Warn("Claimed run already has a sealed log; reconciling row state")
		e.finish(run, terminalStateOf(trace[len(trace)-1]), "", nil)
		return
	}

	rs := newRunState(run.ID, e.log, trace, flags)
	sc := &StepContext{ctx: ctx, rs: rs}

	result, err := fn(sc, run.Args)
	switch {
	case err == nil:
		serialized, merr := json.Marshal(result)
		if merr != nil {
			e.seal(rs, StateFailed, fmt.Sprintf("workflow result is not serializable: %v", merr), nil)
			break
		}
		e.seal(rs, StateCompleted, "", serialized)
		metrics.RunDuration.WithLabelValues(run.WorkflowName).Observe(time.Since(start).Seconds())

	case errors.Is(err, errCancelRequested):
		e.seal(rs, StateCancelled, "cancelled by request", nil)

	case errors.Is(err, errPauseRequested):
		// Pause is not terminal: no seal, the log stays open and the run
		// resumes from the trace.
		e.setState(run.ID, StatePaused)
		log.Info("Run paused")

	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		e.seal(rs, StateFailed, fmt.Sprintf("run exceeded execution timeout of %s", e.cfg.RunTimeout), nil)

	case ctx.Err() != nil:
		// Pod shutdown: hand the run back for another worker to replay.
		log.Info("Execution interrupted by shutdown, re-queueing")
		e.requeue(run)

	default:
		e.seal(rs, StateFailed, err.Error(), nil)
	}
}

// seal writes the terminal event and the run row in one transaction. Uses a
// background-derived context: terminal bookkeeping must survive the run
// context being cancelled.
func (e *Engine) seal(rs *runState, state, message string, result json.RawMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	payload, err := json.Marshal(TerminalPayload{State: state, Result: result, Message: message})
	if err != nil {
		slog.Error("Failed to marshal terminal payload", "run_id", rs.runID, "error", err)
		payload = []byte(fmt.Sprintf(`{"state":%q}`, state))
	}

	rs.mu.Lock()
	index := rs.next
	rs.mu.Unlock()

	if err := e.log.Seal(ctx, &Event{
		RunID:   rs.runID,
		Index:   index,
		Kind:    KindRunTerminal,
		Payload: payload,
	}, message, result); err != nil {
		slog.Error("Failed to seal run", "run_id", rs.runID, "state", state, "error", err)
		return
	}

	run, err := e.client.WorkflowRun.Get(ctx, rs.runID)
	if err == nil {
		metrics.RunsFinished.WithLabelValues(run.WorkflowName, state).Inc()
	}
	slog.Info("Run finished", "run_id", rs.runID, "state", state)
}

// finish reconciles the run row to a terminal state without touching the log
// (used when the log is already sealed or the workflow cannot run at all).
func (e *Engine) finish(run *ent.WorkflowRun, state, message string, result json.RawMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := e.client.WorkflowRun.UpdateOneID(run.ID).
		SetState(workflowrun.State(state)).
		SetCompletedAt(time.Now())
	if message != "" {
		update = update.SetErrorMessage(message)
	}
	if len(result) > 0 {
		update = update.SetResult(result)
	}
	if err := update.Exec(ctx); err != nil {
		slog.Error("Failed to finish run row", "run_id", run.ID, "state", state, "error", err)
		return
	}
	metrics.RunsFinished.WithLabelValues(run.WorkflowName, state).Inc()
}

// requeue hands a run back to pending for another claim, without sealing.
func (e *Engine) requeue(run *ent.WorkflowRun) {
	e.setState(run.ID, StatePending)
}

// setState updates a non-terminal run row's state.
func (e *Engine) setState(runID, state string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := e.client.WorkflowRun.Update().
		Where(
			workflowrun.IDEQ(runID),
			workflowrun.StateNotIn(workflowrun.StateCompleted, workflowrun.StateFailed, workflowrun.StateCancelled),
		).
		SetState(workflowrun.State(state)).
		ClearPodID().
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to update run state", "run_id", runID, "state", state, "error", err)
	}
}

// trackFlags registers the cooperative-signal flags of a run executing on
// this pod so Cancel/Pause can reach it without a DB round trip.
func (e *Engine) trackFlags(runID string, flags *Flags) {
	e.flagsMu.Lock()
	defer e.flagsMu.Unlock()
	e.flags[runID] = flags
}

func (e *Engine) untrackFlags(runID string) {
	e.flagsMu.Lock()
	defer e.flagsMu.Unlock()
	delete(e.flags, runID)
}

// localFlags returns the flags of a run executing on this pod, if any.
func (e *Engine) localFlags(runID string) *Flags {
	e.flagsMu.RLock()
	defer e.flagsMu.RUnlock()
	return e.flags[runID]
}

// terminalStateOf extracts the state from a run_terminal event, or returns
// "" for any other event.
func terminalStateOf(ev *Event) string {
	if ev.Kind != KindRunTerminal {
		return ""
	}
	var p TerminalPayload
	if err := json.Unmarshal(ev.Payload, &p); err != nil {
		return ""
	}
	return p.State
}
