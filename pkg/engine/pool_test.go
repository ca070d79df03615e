package engine

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/workflowrun"
	"github.com/recapd/recapd/pkg/config"
	"github.com/recapd/recapd/pkg/events"
	"github.com/recapd/recapd/test/util"
)

// newTestEngineWithConfig builds an engine with test-friendly timings.
func newTestEngineWithConfig(t *testing.T, cfg *config.EngineConfig) (*Engine, *ent.Client) {
	t.Helper()
	entClient, db := util.SetupTestDatabase(t)
	log := NewLog(entClient, db, events.NewBroker())
	return New(entClient, db, log, cfg), entClient
}

func fastEngineConfig() *config.EngineConfig {
	cfg := config.DefaultEngineConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond
	cfg.PollIntervalJitter = 10 * time.Millisecond
	cfg.HeartbeatInterval = 100 * time.Millisecond
	cfg.OrphanDetectionInterval = time.Hour // scans triggered manually in tests
	return cfg
}

func TestWorkerPool_ClaimsAndExecutesPendingRun(t *testing.T) {
	eng, _ := newTestEngineWithConfig(t, fastEngineConfig())
	ctx := context.Background()

	eng.Register("analyze", func(sc *StepContext, args json.RawMessage) (any, error) {
		return Step(sc, "work", StepOptions{}, func(ctx context.Context) (string, error) {
			return "done", nil
		})
	})

	pool := NewWorkerPool("pod-test", eng)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	run, _, err := eng.Start(ctx, "analyze", json.RawMessage(`{}`))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		current, err := eng.Get(ctx, run.ID)
		return err == nil && current.State == workflowrun.StateCompleted
	}, 10*time.Second, 50*time.Millisecond)

	final, err := eng.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.JSONEq(t, `"done"`, string(final.Result))

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.Equal(t, "pod-test", health.PodID)
	assert.Equal(t, 2, health.TotalWorkers)
}

func TestWorkerPool_RecoversOrphanedRun(t *testing.T) {
	eng, client := newTestEngineWithConfig(t, fastEngineConfig())
	ctx := context.Background()
	eng.Register("analyze", func(sc *StepContext, args json.RawMessage) (any, error) { return nil, nil })

	run, _, err := eng.Start(ctx, "analyze", json.RawMessage(`{}`))
	require.NoError(t, err)

	// A run claimed by a pod that stopped heartbeating.
	stale := time.Now().Add(-time.Hour)
	require.NoError(t, client.WorkflowRun.UpdateOneID(run.ID).
		SetState(workflowrun.StateRunning).
		SetPodID("dead-pod").
		SetLastHeartbeatAt(stale).
		Exec(ctx))

	pool := NewWorkerPool("pod-test", eng)
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	recovered, err := eng.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StatePending, recovered.State)
	assert.Nil(t, recovered.PodID)
	assert.Equal(t, 1, recovered.RecoveryAttempts)

	health := pool.Health()
	assert.Equal(t, 1, health.OrphansRecovered)
	assert.False(t, health.LastOrphanScan.IsZero())
}

func TestWorkerPool_FailsRunAfterRecoveryBudget(t *testing.T) {
	cfg := fastEngineConfig()
	cfg.MaxRecoveryAttempts = 2
	eng, client := newTestEngineWithConfig(t, cfg)
	ctx := context.Background()
	eng.Register("analyze", func(sc *StepContext, args json.RawMessage) (any, error) { return nil, nil })

	run, _, err := eng.Start(ctx, "analyze", json.RawMessage(`{}`))
	require.NoError(t, err)

	require.NoError(t, client.WorkflowRun.UpdateOneID(run.ID).
		SetState(workflowrun.StateRunning).
		SetPodID("dead-pod").
		SetLastHeartbeatAt(time.Now().Add(-time.Hour)).
		SetRecoveryAttempts(2).
		Exec(ctx))

	pool := NewWorkerPool("pod-test", eng)
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	failed, err := eng.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StateFailed, failed.State)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, "giving up")

	// The log is sealed so nothing can append to the dead run.
	trace, err := eng.log.Load(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, StateFailed, terminalStateOf(trace[len(trace)-1]))
}

func TestWorkerPool_FreshHeartbeatIsNotOrphaned(t *testing.T) {
	eng, client := newTestEngineWithConfig(t, fastEngineConfig())
	ctx := context.Background()
	eng.Register("analyze", func(sc *StepContext, args json.RawMessage) (any, error) { return nil, nil })

	run, _, err := eng.Start(ctx, "analyze", json.RawMessage(`{}`))
	require.NoError(t, err)

	require.NoError(t, client.WorkflowRun.UpdateOneID(run.ID).
		SetState(workflowrun.StateRunning).
		SetPodID("live-pod").
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx))

	pool := NewWorkerPool("pod-test", eng)
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	still, err := eng.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StateRunning, still.State)
}

func TestRequeueStartupOrphans_ReclaimsOwnRuns(t *testing.T) {
	eng, client := newTestEngineWithConfig(t, fastEngineConfig())
	ctx := context.Background()
	eng.Register("analyze", func(sc *StepContext, args json.RawMessage) (any, error) { return nil, nil })

	mine, _, err := eng.Start(ctx, "analyze", json.RawMessage(`{"n":1}`))
	require.NoError(t, err)
	theirs, _, err := eng.Start(ctx, "analyze", json.RawMessage(`{"n":2}`))
	require.NoError(t, err)

	for id, pod := range map[string]string{mine.ID: "pod-a", theirs.ID: "pod-b"} {
		require.NoError(t, client.WorkflowRun.UpdateOneID(id).
			SetState(workflowrun.StateRunning).
			SetPodID(pod).
			SetLastHeartbeatAt(time.Now()).
			Exec(ctx))
	}

	require.NoError(t, RequeueStartupOrphans(ctx, client, "pod-a"))

	requeued, err := eng.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StatePending, requeued.State)
	assert.Nil(t, requeued.PodID)

	untouched, err := eng.Get(ctx, theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StateRunning, untouched.State)
	require.NotNil(t, untouched.PodID)
	assert.Equal(t, "pod-b", *untouched.PodID)
}
