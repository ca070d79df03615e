package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/workflowrun"
	"github.com/recapd/recapd/pkg/metrics"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for runs whose worker stopped
// heartbeating. All pods run this independently; the operations are
// idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.engine.cfg.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running rows with stale heartbeats. An
// orphaned run goes back to pending so another worker replays its trace;
// once its recovery budget is spent it fails terminally instead.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.engine.cfg.OrphanThreshold)

	orphans, err := p.engine.client.WorkflowRun.Query().
		Where(
			workflowrun.StateEQ(workflowrun.StateRunning),
			workflowrun.LastHeartbeatAtNotNil(),
			workflowrun.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned runs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned runs", "count", len(orphans))

	recovered := 0
	for _, run := range orphans {
		if err := p.recoverOrphanedRun(ctx, run); err != nil {
			slog.Error("Failed to recover orphaned run",
				"run_id", run.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedRun re-queues one orphaned run, or fails it terminally when
// the recovery budget is exhausted. The state guard makes concurrent scans
// from multiple pods recover each orphan at most once.
func (p *WorkerPool) recoverOrphanedRun(ctx context.Context, run *ent.WorkflowRun) error {
	podID := "unknown"
	if run.PodID != nil {
		podID = *run.PodID
	}
	lastHeartbeat := "unknown"
	if run.LastHeartbeatAt != nil {
		lastHeartbeat = run.LastHeartbeatAt.Format(time.RFC3339)
	}
	log := slog.With("run_id", run.ID, "old_pod_id", podID)

	if run.RecoveryAttempts >= p.engine.cfg.MaxRecoveryAttempts {
		n, err := p.engine.client.WorkflowRun.Update().
			Where(workflowrun.IDEQ(run.ID), workflowrun.StateEQ(workflowrun.StateRunning)).
			SetState(workflowrun.StateFailed).Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to mark run as failed: %w", err)
		}
		if n > 0 {
			message := fmt.Sprintf("orphaned %d times, giving up: no heartbeat from pod %s since %s",
				run.RecoveryAttempts, podID, lastHeartbeat)
			trace, lerr := p.engine.log.Load(ctx, run.ID)
			if lerr != nil {
				return fmt.Errorf("failed to load trace for terminal seal: %w", lerr)
			}
			rs := newRunState(run.ID, p.engine.log, trace, nil)
			p.engine.seal(rs, StateFailed, message, nil)
			log.Warn("Orphaned run failed terminally", "recovery_attempts", run.RecoveryAttempts)
		}
		return nil
	}

	n, err := p.engine.client.WorkflowRun.Update().
		Where(workflowrun.IDEQ(run.ID), workflowrun.StateEQ(workflowrun.StateRunning)).
		SetState(workflowrun.StatePending).
		ClearPodID().
		ClearLastHeartbeatAt().
		AddRecoveryAttempts(1).Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to re-queue orphaned run: %w", err)
	}
	if n > 0 {
		metrics.OrphansRecovered.Inc()
		log.Warn("Orphaned run re-queued", "last_heartbeat", lastHeartbeat)
	}
	return nil
}

// RequeueStartupOrphans hands back runs this pod was executing when it last
// stopped. Replay makes the hand-back safe: a new claim fast-forwards past
// every step already in the log. Called once during startup, before the
// worker pool begins processing.
func RequeueStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	n, err := client.WorkflowRun.Update().
		Where(
			workflowrun.StateEQ(workflowrun.StateRunning),
			workflowrun.PodIDEQ(podID),
		).
		SetState(workflowrun.StatePending).
		ClearPodID().
		ClearLastHeartbeatAt().Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to re-queue startup orphans: %w", err)
	}
	if n > 0 {
		slog.Warn("Re-queued runs from previous pod instance", "pod_id", podID, "count", n)
	}
	return nil
}
