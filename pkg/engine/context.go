package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// stepKey is the memoization key: a step's stable id plus its zero-based
// occurrence count within the run.
type stepKey struct {
	id      string
	ordinal int
}

// stepRecord is the derived outcome of one (step_id, call_ordinal) pair.
// Exactly one of result/err is set for step outcomes; emits record presence
// only (both nil).
type stepRecord struct {
	result json.RawMessage
	err    *StepError
	isEmit bool
}

// Flags carries the cooperative cancel/pause signals for an executing run.
// The worker's heartbeat loop sets them from the run row; the step executor
// observes them between steps and between retry attempts. In-flight step
// bodies are not interrupted.
type Flags struct {
	cancel atomic.Bool
	pause  atomic.Bool
}

// RequestCancel marks the run for cooperative cancellation.
func (f *Flags) RequestCancel() { f.cancel.Store(true) }

// RequestPause marks the run for cooperative pause.
func (f *Flags) RequestPause() { f.pause.Store(true) }

// runState is the shared mutable state of one executing run: the trace
// loaded from the log, the append cursor, and per-step-id ordinal counters.
// The mutex serializes appends from parallel branches, preserving the
// single-writer invariant on the log.
type runState struct {
	runID string
	log   *Log
	flags *Flags

	mu       sync.Mutex
	next     int // next log index to append at
	records  map[stepKey]*stepRecord
	ordinals map[string]int
}

// newRunState derives the replay state from a loaded trace.
func newRunState(runID string, log *Log, trace []*Event, flags *Flags) *runState {
	rs := &runState{
		runID:    runID,
		log:      log,
		flags:    flags,
		next:     len(trace),
		records:  make(map[stepKey]*stepRecord),
		ordinals: make(map[string]int),
	}
	for _, ev := range trace {
		key := stepKey{id: ev.StepID, ordinal: ev.CallOrdinal}
		switch ev.Kind {
		case KindStepResult:
			rs.records[key] = &stepRecord{result: ev.Payload}
		case KindStepError:
			// Only fatal errors memoize; transient exhaustion re-executes
			// on recovery.
			if ev.Retriable != nil && !*ev.Retriable {
				var p struct {
					Message string `json:"message"`
				}
				_ = json.Unmarshal(ev.Payload, &p)
				rs.records[key] = &stepRecord{err: &StepError{
					StepID:      ev.StepID,
					CallOrdinal: ev.CallOrdinal,
					Message:     p.Message,
					Retriable:   false,
				}}
			}
		case KindEmit:
			rs.records[key] = &stepRecord{isEmit: true}
		}
	}
	return rs
}

// nextOrdinal assigns the zero-based occurrence count for a step id.
func (rs *runState) nextOrdinal(stepID string) int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	ord := rs.ordinals[stepID]
	rs.ordinals[stepID] = ord + 1
	return ord
}

// record returns the memoized outcome for a key, if any.
func (rs *runState) record(stepID string, ordinal int) (*stepRecord, bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rec, ok := rs.records[stepKey{id: stepID, ordinal: ordinal}]
	return rec, ok
}

// append writes one event at the cursor position and advances it. Serialized
// across parallel branches.
func (rs *runState) append(ctx context.Context, ev *Event) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	ev.RunID = rs.runID
	ev.Index = rs.next
	if err := rs.log.Append(ctx, ev); err != nil {
		return err
	}
	rs.next++
	return nil
}

// checkFlags returns the pending cooperative signal, if any.
func (rs *runState) checkFlags() error {
	if rs.flags == nil {
		return nil
	}
	if rs.flags.cancel.Load() {
		return errCancelRequested
	}
	if rs.flags.pause.Load() {
		return errPauseRequested
	}
	return nil
}

// StepContext is the handle a workflow function uses to invoke steps, emit
// client-visible events, and fan out parallel branches. Each parallel branch
// gets a derived context with its own step-id prefix so call ordinals stay
// well-defined per branch.
type StepContext struct {
	ctx       context.Context
	rs        *runState
	prefix    string
	namespace string

	groupMu sync.Mutex
	group   *errgroup.Group
}

// Context returns the run's execution context. Step bodies receive it (or a
// per-attempt child) directly.
func (sc *StepContext) Context() context.Context { return sc.ctx }

// RunID returns the engine run id.
func (sc *StepContext) RunID() string { return sc.rs.runID }

// WithNamespace returns a derived context whose emits carry the given
// sub-stream label.
func (sc *StepContext) WithNamespace(namespace string) *StepContext {
	return &StepContext{ctx: sc.ctx, rs: sc.rs, prefix: sc.prefix, namespace: namespace}
}

// child derives a branch context with a step-id prefix.
func (sc *StepContext) child(prefix string) *StepContext {
	return &StepContext{ctx: sc.ctx, rs: sc.rs, prefix: sc.prefix + prefix + "/", namespace: sc.namespace}
}

// Go starts a parallel branch under the given step-id prefix. Branches share
// the run's log through the serialized append cursor; each branch must use a
// distinct prefix. Join with Wait.
func (sc *StepContext) Go(prefix string, fn func(*StepContext) error) {
	sc.groupMu.Lock()
	if sc.group == nil {
		sc.group = &errgroup.Group{}
	}
	g := sc.group
	sc.groupMu.Unlock()

	branch := sc.child(prefix)
	g.Go(func() error { return fn(branch) })
}

// Wait joins all branches started with Go, returning the first error.
func (sc *StepContext) Wait() error {
	sc.groupMu.Lock()
	g := sc.group
	sc.group = nil
	sc.groupMu.Unlock()
	if g == nil {
		return nil
	}
	return g.Wait()
}

// Emit appends a client-visible event to the run's log under the context's
// namespace. Emits are part of the memoized trace: on replay an emit already
// in the log is not re-issued, so downstream readers never see duplicates.
func (sc *StepContext) Emit(payload any) error {
	return sc.emit(sc.prefix+"#emit", payload)
}

// Emitter returns an emit function bound to its own scope, for streaming
// step bodies that publish snapshots while running. A separate scope keeps
// the step's emit ordinals off the workflow-level counter, so replay stays
// aligned when the memoized step body is skipped.
func (sc *StepContext) Emitter(scope string) func(payload any) error {
	full := sc.prefix + scope + "#emit"
	return func(payload any) error {
		return sc.emit(full, payload)
	}
}

func (sc *StepContext) emit(scope string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal emit payload: %w", err)
	}
	ord := sc.rs.nextOrdinal(scope)
	if _, ok := sc.rs.record(scope, ord); ok {
		return nil // already in the log from a previous execution
	}
	return sc.rs.append(sc.ctx, &Event{
		Kind:        KindEmit,
		StepID:      scope,
		CallOrdinal: ord,
		Namespace:   sc.namespace,
		Payload:     raw,
	})
}

// Sleep is a memoized timer step: it waits the given duration once and
// returns instantly on replay.
func (sc *StepContext) Sleep(id string, d time.Duration) error {
	_, err := Step(sc, id, StepOptions{}, func(ctx context.Context) (time.Time, error) {
		select {
		case <-time.After(d):
			return time.Now(), nil
		case <-ctx.Done():
			return time.Time{}, ctx.Err()
		}
	})
	return err
}
