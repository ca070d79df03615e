package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/workflowrun"
)

// Get returns a run row by id.
func (e *Engine) Get(ctx context.Context, runID string) (*ent.WorkflowRun, error) {
	run, err := e.client.WorkflowRun.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to load run %s: %w", runID, err)
	}
	return run, nil
}

// Stream opens a live event feed over the run's log starting at startIndex,
// optionally filtered to one emit namespace. The channel closes after the
// terminal event or when ctx ends.
func (e *Engine) Stream(ctx context.Context, runID string, startIndex int, namespace string) (<-chan *Event, error) {
	if _, err := e.Get(ctx, runID); err != nil {
		return nil, err
	}
	return e.log.Read(ctx, runID, startIndex, namespace)
}

// Cancel requests cooperative cancellation of a run. The request is durable
// on the run row; if the run executes on this pod the in-memory flag is set
// immediately, otherwise the owning worker's heartbeat picks it up. Pending
// runs are cancelled directly without waiting for a claim.
func (e *Engine) Cancel(ctx context.Context, runID string) error {
	run, err := e.Get(ctx, runID)
	if err != nil {
		return err
	}
	if IsTerminalState(string(run.State)) {
		return ErrRunTerminal
	}

	if err := e.client.WorkflowRun.UpdateOneID(runID).
		SetCancelRequested(true).Exec(ctx); err != nil {
		return fmt.Errorf("failed to request cancellation of run %s: %w", runID, err)
	}
	if flags := e.localFlags(runID); flags != nil {
		flags.RequestCancel()
	}

	// A run nobody is executing never reaches a flag check; seal it here.
	if run.State == workflowrun.StatePending || run.State == workflowrun.StatePaused {
		n, err := e.client.WorkflowRun.Update().
			Where(
				workflowrun.IDEQ(runID),
				workflowrun.StateIn(workflowrun.StatePending, workflowrun.StatePaused),
			).
			SetState(workflowrun.StateCancelled).Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to cancel idle run %s: %w", runID, err)
		}
		if n > 0 {
			trace, lerr := e.log.Load(ctx, runID)
			if lerr != nil {
				return fmt.Errorf("failed to load trace of run %s: %w", runID, lerr)
			}
			rs := newRunState(runID, e.log, trace, nil)
			e.seal(rs, StateCancelled, "cancelled by request", nil)
		}
	}

	slog.Info("Cancellation requested", "run_id", runID)
	return nil
}

// Pause requests a cooperative pause. Only pending and running runs can
// pause; the run keeps its log open and resumes from the trace.
func (e *Engine) Pause(ctx context.Context, runID string) error {
	run, err := e.Get(ctx, runID)
	if err != nil {
		return err
	}
	if IsTerminalState(string(run.State)) {
		return ErrRunTerminal
	}
	if run.State == workflowrun.StatePaused {
		return nil
	}

	if err := e.client.WorkflowRun.UpdateOneID(runID).
		SetPauseRequested(true).Exec(ctx); err != nil {
		return fmt.Errorf("failed to request pause of run %s: %w", runID, err)
	}
	if flags := e.localFlags(runID); flags != nil {
		flags.RequestPause()
	}

	// A pending run pauses without ever being claimed.
	if run.State == workflowrun.StatePending {
		if _, err := e.client.WorkflowRun.Update().
			Where(workflowrun.IDEQ(runID), workflowrun.StateEQ(workflowrun.StatePending)).
			SetState(workflowrun.StatePaused).
			SetPauseRequested(false).Save(ctx); err != nil {
			return fmt.Errorf("failed to pause pending run %s: %w", runID, err)
		}
	}

	slog.Info("Pause requested", "run_id", runID)
	return nil
}

// Resume puts a paused run back in the claim queue. Replay of its trace
// fast-forwards past completed steps when a worker picks it up.
func (e *Engine) Resume(ctx context.Context, runID string) error {
	run, err := e.Get(ctx, runID)
	if err != nil {
		return err
	}
	if IsTerminalState(string(run.State)) {
		return ErrRunTerminal
	}
	if run.State != workflowrun.StatePaused {
		return fmt.Errorf("run %s is %s, only paused runs resume", runID, run.State)
	}

	if err := e.client.WorkflowRun.Update().
		Where(workflowrun.IDEQ(runID), workflowrun.StateEQ(workflowrun.StatePaused)).
		SetState(workflowrun.StatePending).
		SetPauseRequested(false).
		ClearPodID().Exec(ctx); err != nil {
		return fmt.Errorf("failed to resume run %s: %w", runID, err)
	}

	slog.Info("Run resumed", "run_id", runID)
	return nil
}

// List returns run rows, newest first, optionally filtered by workflow name
// and state.
func (e *Engine) List(ctx context.Context, workflow, state string, limit int) ([]*ent.WorkflowRun, error) {
	q := e.client.WorkflowRun.Query().
		Order(ent.Desc(workflowrun.FieldCreatedAt))
	if workflow != "" {
		q = q.Where(workflowrun.WorkflowNameEQ(workflow))
	}
	if state != "" {
		q = q.Where(workflowrun.StateEQ(workflowrun.State(state)))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	runs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}
