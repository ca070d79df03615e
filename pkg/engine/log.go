package engine

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/runevent"
	"github.com/recapd/recapd/pkg/events"
)

// idleRepollInterval is how often a live reader re-polls the run_events table
// while no notifications arrive. Covers notifications lost across listener
// reconnects and dropped by full subscriber buffers.
const idleRepollInterval = 2 * time.Second

// readBuffer is the capacity of reader channels returned by Read.
const readBuffer = 64

// Log is the per-run append-only event store. Appends go through a single
// transaction that inserts the row and fires pg_notify; reads replay history
// from the table and then tail live notifications via the Broker.
//
// Writers must set Event.Index from their trace cursor: the unique
// (run_id, index) constraint turns a crash-retry of an already-committed
// append into a detectable no-op.
type Log struct {
	client *ent.Client
	db     *stdsql.DB
	broker *events.Broker
}

// NewLog creates a Log over the given ent client, raw connection (for the
// append transaction), and broker.
func NewLog(client *ent.Client, db *stdsql.DB, broker *events.Broker) *Log {
	return &Log{client: client, db: db, broker: broker}
}

// Append persists one event at ev.Index and broadcasts it via NOTIFY in the
// same transaction. Returns ErrLogSealed when the log already holds a
// run_terminal event. An event already present at ev.Index with the same
// identity is treated as success (crash-retry idempotence).
func (l *Log) Append(ctx context.Context, ev *Event) error {
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin append transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := l.checkNotSealed(ctx, tx, ev); err != nil {
		return err
	}

	if err := insertEvent(ctx, tx, ev); err != nil {
		if isUniqueViolation(err) {
			return l.resolveConflict(ctx, ev)
		}
		return fmt.Errorf("failed to persist event: %w", err)
	}

	if err := l.notify(ctx, tx, ev); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// Seal appends the run_terminal event and marks the run row terminal in one
// transaction. No further appends succeed afterwards.
func (l *Log) Seal(ctx context.Context, ev *Event, errorMessage string, result json.RawMessage) error {
	if ev.Kind != KindRunTerminal {
		return fmt.Errorf("seal requires a run_terminal event, got %s", ev.Kind)
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}

	var terminal TerminalPayload
	if err := json.Unmarshal(ev.Payload, &terminal); err != nil {
		return fmt.Errorf("invalid terminal payload: %w", err)
	}
	if !IsTerminalState(terminal.State) {
		return fmt.Errorf("invalid terminal state %q", terminal.State)
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seal transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := l.checkNotSealed(ctx, tx, ev); err != nil {
		return err
	}

	if err := insertEvent(ctx, tx, ev); err != nil {
		if isUniqueViolation(err) {
			return l.resolveConflict(ctx, ev)
		}
		return fmt.Errorf("failed to persist terminal event: %w", err)
	}

	var msg any
	if errorMessage != "" {
		msg = errorMessage
	}
	var res any
	if len(result) > 0 {
		res = []byte(result)
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE workflow_runs
		 SET state = $2, error_message = $3, result = $4, completed_at = $5, updated_at = $5
		 WHERE run_id = $1 AND state NOT IN ('completed', 'failed', 'cancelled')`,
		ev.RunID, terminal.State, msg, res, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark run terminal: %w", err)
	}

	if err := l.notify(ctx, tx, ev); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seal transaction: %w", err)
	}
	return nil
}

// checkNotSealed verifies the event directly preceding ev.Index is not
// run_terminal. The terminal event is always last, so this is a full seal
// check for a writer appending at the head.
func (l *Log) checkNotSealed(ctx context.Context, tx *stdsql.Tx, ev *Event) error {
	if ev.Index == 0 {
		return nil
	}
	var kind string
	err := tx.QueryRowContext(ctx,
		`SELECT kind FROM run_events WHERE run_id = $1 AND "index" = $2`,
		ev.RunID, ev.Index-1).Scan(&kind)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return fmt.Errorf("append at index %d would leave a gap for run %s", ev.Index, ev.RunID)
		}
		return fmt.Errorf("failed to check log head: %w", err)
	}
	if EventKind(kind) == KindRunTerminal {
		return ErrLogSealed
	}
	return nil
}

// insertEvent writes the run_events row.
func insertEvent(ctx context.Context, tx *stdsql.Tx, ev *Event) error {
	var payload any
	if len(ev.Payload) > 0 {
		payload = []byte(ev.Payload)
	}
	var retriable any
	if ev.Retriable != nil {
		retriable = *ev.Retriable
	}
	_, err := tx.ExecContext(ctx,
		`INSERT INTO run_events (run_id, "index", kind, step_id, call_ordinal, namespace, payload, retriable, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		ev.RunID, ev.Index, string(ev.Kind), ev.StepID, ev.CallOrdinal, ev.Namespace,
		payload, retriable, ev.CreatedAt)
	return err
}

// notify broadcasts the envelope inside the transaction; pg_notify is
// transactional and fires at COMMIT.
func (l *Log) notify(ctx context.Context, tx *stdsql.Tx, ev *Event) error {
	eventJSON, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event for NOTIFY: %w", err)
	}
	envelope, err := events.EncodeEnvelope(ev.RunID, ev.Index, eventJSON)
	if err != nil {
		return fmt.Errorf("failed to encode NOTIFY envelope: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", events.RunChannel(ev.RunID), envelope); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// resolveConflict handles a unique violation on (run_id, index): a
// crash-retry of a committed append lands here. The retry succeeds when the
// stored event has the same identity; anything else is a single-writer
// violation.
func (l *Log) resolveConflict(ctx context.Context, ev *Event) error {
	existing, err := l.getEvent(ctx, ev.RunID, ev.Index)
	if err != nil {
		return fmt.Errorf("failed to inspect conflicting event: %w", err)
	}
	if existing.Kind == ev.Kind && existing.StepID == ev.StepID && existing.CallOrdinal == ev.CallOrdinal {
		slog.Debug("Append retry detected already-persisted event",
			"run_id", ev.RunID, "index", ev.Index, "kind", ev.Kind)
		return nil
	}
	return fmt.Errorf("concurrent append detected for run %s at index %d (have %s, want %s)",
		ev.RunID, ev.Index, existing.Kind, ev.Kind)
}

// Load returns the full event history of a run in index order.
func (l *Log) Load(ctx context.Context, runID string) ([]*Event, error) {
	return l.loadFrom(ctx, runID, 0)
}

// loadFrom returns events with index >= from in index order.
func (l *Log) loadFrom(ctx context.Context, runID string, from int) ([]*Event, error) {
	rows, err := l.client.RunEvent.Query().
		Where(runevent.RunIDEQ(runID), runevent.IndexGTE(from)).
		Order(ent.Asc(runevent.FieldIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events for run %s: %w", runID, err)
	}
	out := make([]*Event, len(rows))
	for i, row := range rows {
		out[i] = fromRow(row)
	}
	return out, nil
}

// getEvent fetches a single event by position.
func (l *Log) getEvent(ctx context.Context, runID string, index int) (*Event, error) {
	row, err := l.client.RunEvent.Query().
		Where(runevent.RunIDEQ(runID), runevent.IndexEQ(index)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return fromRow(row), nil
}

// Read returns a channel yielding the run's events from startIndex onward:
// history first, then live events, without duplicates or gaps across the
// boundary. The channel closes after run_terminal is delivered or ctx ends.
// A non-empty namespace filters emit events to that label; control events
// always pass.
func (l *Log) Read(ctx context.Context, runID string, startIndex int, namespace string) (<-chan *Event, error) {
	// Subscribe before replaying history so nothing appended in between is
	// missed; duplicates across the boundary are dropped by index.
	sub, err := l.broker.Subscribe(ctx, events.RunChannel(runID))
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to run channel: %w", err)
	}

	ch := make(chan *Event, readBuffer)
	go func() {
		defer close(ch)
		defer l.broker.Unsubscribe(sub)

		next := startIndex
		done, err := l.catchUp(ctx, runID, &next, namespace, ch)
		if err != nil || done {
			return
		}

		ticker := time.NewTicker(idleRepollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case payload := <-sub.C:
				var env events.Envelope
				if err := json.Unmarshal(payload, &env); err != nil {
					slog.Warn("Invalid NOTIFY envelope", "run_id", runID, "error", err)
					continue
				}
				if env.Index < next {
					continue // already delivered via history replay
				}
				if env.Index == next && !env.Truncated {
					var ev Event
					if err := json.Unmarshal(env.Event, &ev); err != nil {
						slog.Warn("Invalid event in NOTIFY envelope", "run_id", runID, "error", err)
						continue
					}
					if !deliver(ctx, ch, &ev, namespace) {
						return
					}
					next++
					if ev.Kind == KindRunTerminal {
						return
					}
					continue
				}
				// Gap or truncated payload: fetch the missing range.
				done, err := l.catchUp(ctx, runID, &next, namespace, ch)
				if err != nil || done {
					return
				}
			case <-ticker.C:
				done, err := l.catchUp(ctx, runID, &next, namespace, ch)
				if err != nil || done {
					return
				}
			}
		}
	}()
	return ch, nil
}

// catchUp streams table rows from *next onward, advancing the cursor.
// Returns done=true once run_terminal was delivered.
func (l *Log) catchUp(ctx context.Context, runID string, next *int, namespace string, ch chan<- *Event) (bool, error) {
	rows, err := l.loadFrom(ctx, runID, *next)
	if err != nil {
		slog.Error("Event catch-up query failed", "run_id", runID, "error", err)
		return false, err
	}
	for _, ev := range rows {
		if ev.Index != *next {
			return false, fmt.Errorf("event log gap for run %s: want %d, got %d", runID, *next, ev.Index)
		}
		if !deliver(ctx, ch, ev, namespace) {
			return true, nil
		}
		*next++
		if ev.Kind == KindRunTerminal {
			return true, nil
		}
	}
	return false, nil
}

// deliver sends one event applying the namespace filter. Returns false when
// ctx ended.
func deliver(ctx context.Context, ch chan<- *Event, ev *Event, namespace string) bool {
	if namespace != "" && ev.Kind == KindEmit && ev.Namespace != namespace {
		return true
	}
	select {
	case ch <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// fromRow converts a persisted row to the in-memory event.
func fromRow(row *ent.RunEvent) *Event {
	return &Event{
		RunID:       row.RunID,
		Index:       row.Index,
		Kind:        EventKind(row.Kind),
		StepID:      row.StepID,
		CallOrdinal: row.CallOrdinal,
		Namespace:   row.Namespace,
		Payload:     row.Payload,
		Retriable:   row.Retriable,
		CreatedAt:   row.CreatedAt,
	}
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
