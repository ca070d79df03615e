package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/workflowrun"
)

// ErrNoRunsAvailable is returned when no pending run can be claimed.
var ErrNoRunsAvailable = errors.New("no pending runs available")

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// WorkerHealth is one worker's health snapshot.
type WorkerHealth struct {
	ID            string       `json:"id"`
	Status        WorkerStatus `json:"status"`
	CurrentRunID  string       `json:"currentRunId,omitempty"`
	RunsProcessed int          `json:"runsProcessed"`
	LastActivity  time.Time    `json:"lastActivity"`
}

// Worker polls for pending runs, claims them with SKIP LOCKED, and executes
// them through the engine. The heartbeat loop keeps the run's row fresh for
// orphan detection and relays durable cancel/pause requests into the run's
// cooperative flags.
type Worker struct {
	id       string
	podID    string
	engine   *Engine
	pool     *WorkerPool
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentRunID  string
	runsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a pool worker.
func NewWorker(id, podID string, engine *Engine, pool *WorkerPool) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		engine:       engine,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish. Safe to call
// multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        w.status,
		CurrentRunID:  w.currentRunID,
		RunsProcessed: w.runsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoRunsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing run", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next pending run and executes it to an outcome.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	run, err := w.claimNextRun(ctx)
	if err != nil {
		return err
	}

	log := slog.With("run_id", run.ID, "worker_id", w.id, "workflow", run.WorkflowName)
	log.Info("Run claimed")

	w.setStatus(WorkerStatusWorking, run.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	runCtx, cancelRun := context.WithTimeout(ctx, w.engine.cfg.RunTimeout)
	defer cancelRun()

	flags := &Flags{}
	if run.CancelRequested {
		flags.RequestCancel()
	}
	if run.PauseRequested {
		flags.RequestPause()
	}

	heartbeatCtx, cancelHeartbeat := context.WithCancel(runCtx)
	defer cancelHeartbeat()
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.runHeartbeat(heartbeatCtx, run.ID, flags)
	}()

	w.engine.Execute(runCtx, run, flags)
	cancelHeartbeat()

	w.mu.Lock()
	w.runsProcessed++
	w.mu.Unlock()

	log.Info("Run processing finished")
	return nil
}

// claimNextRun atomically claims the oldest pending run using
// FOR UPDATE SKIP LOCKED, so concurrent workers never double-claim.
func (w *Worker) claimNextRun(ctx context.Context) (*ent.WorkflowRun, error) {
	tx, err := w.engine.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	run, err := tx.WorkflowRun.Query().
		Where(workflowrun.StateEQ(workflowrun.StatePending)).
		Order(ent.Asc(workflowrun.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoRunsAvailable
		}
		return nil, fmt.Errorf("failed to query pending run: %w", err)
	}

	now := time.Now()
	run, err = run.Update().
		SetState(workflowrun.StateRunning).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return run, nil
}

// runHeartbeat refreshes last_heartbeat_at for orphan detection and relays
// durable cancel/pause requests from the run row into the cooperative flags.
func (w *Worker) runHeartbeat(ctx context.Context, runID string, flags *Flags) {
	ticker := time.NewTicker(w.engine.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run, err := w.engine.client.WorkflowRun.UpdateOneID(runID).
				SetLastHeartbeatAt(time.Now()).
				Save(ctx)
			if err != nil {
				slog.Warn("Heartbeat update failed", "run_id", runID, "error", err)
				continue
			}
			if run.CancelRequested {
				flags.RequestCancel()
			}
			if run.PauseRequested {
				flags.RequestPause()
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.engine.cfg.PollInterval
	jitter := w.engine.cfg.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, runID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentRunID = runID
	w.lastActivity = time.Now()
}
