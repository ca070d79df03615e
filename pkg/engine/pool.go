package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/recapd/recapd/ent/workflowrun"
)

// PoolHealth is the worker pool's health snapshot, exposed on /health.
type PoolHealth struct {
	IsHealthy        bool           `json:"isHealthy"`
	DBReachable      bool           `json:"dbReachable"`
	DBError          string         `json:"dbError,omitempty"`
	PodID            string         `json:"podId"`
	ActiveWorkers    int            `json:"activeWorkers"`
	TotalWorkers     int            `json:"totalWorkers"`
	ActiveRuns       int            `json:"activeRuns"`
	QueueDepth       int            `json:"queueDepth"`
	WorkerStats      []WorkerHealth `json:"workerStats"`
	LastOrphanScan   time.Time      `json:"lastOrphanScan"`
	OrphansRecovered int            `json:"orphansRecovered"`
}

// WorkerPool manages the pod's run workers and the orphan detection loop.
type WorkerPool struct {
	podID    string
	engine   *Engine
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a worker pool over the engine.
func NewWorkerPool(podID string, engine *Engine) *WorkerPool {
	return &WorkerPool{
		podID:   podID,
		engine:  engine,
		workers: make([]*Worker, 0, engine.cfg.WorkerCount),
		stopCh:  make(chan struct{}),
	}
}

// Start spawns worker goroutines and the orphan detection background task.
// Safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.engine.cfg.WorkerCount)

	for i := 0; i < p.engine.cfg.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.engine, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them. The engine re-queues
// any run still executing when its context ends, so shutdown loses no work.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.engine.client.WorkflowRun.Query().
		Where(workflowrun.StateEQ(workflowrun.StatePending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	activeRuns, errA := p.engine.client.WorkflowRun.Query().
		Where(
			workflowrun.StateEQ(workflowrun.StateRunning),
			workflowrun.PodIDEQ(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active runs for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == WorkerStatusWorking {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active runs query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveRuns:       activeRuns,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}
