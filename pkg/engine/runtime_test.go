package engine

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
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

// newTestEngine builds an engine over an isolated test schema.
func newTestEngine(t *testing.T) (*Engine, *ent.Client) {
	t.Helper()
	entClient, db := util.SetupTestDatabase(t)
	log := NewLog(entClient, db, events.NewBroker())
	return New(entClient, db, log, config.DefaultEngineConfig()), entClient
}

// claimRun moves a pending run to running the way a worker claim does.
func claimRun(t *testing.T, client *ent.Client, runID string) *ent.WorkflowRun {
	t.Helper()
	now := time.Now()
	run, err := client.WorkflowRun.UpdateOneID(runID).
		SetState(workflowrun.StateRunning).
		SetPodID("test-pod").
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(context.Background())
	require.NoError(t, err)
	return run
}

func TestEngine_StartSeedsLogAndDeduplicates(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()
	eng.Register("analyze", func(sc *StepContext, args json.RawMessage) (any, error) { return nil, nil })

	args := json.RawMessage(`{"videoId":"dQw4w9WgXcQ"}`)
	run, started, err := eng.Start(ctx, "analyze", args)
	require.NoError(t, err)
	assert.True(t, started)
	assert.Equal(t, workflowrun.StatePending, run.State)

	trace, err := eng.log.Load(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, trace, 1)
	assert.Equal(t, StartStepID, trace[0].StepID)

	// Same workflow and args while the first run is active: joined, not duplicated.
	dup, started, err := eng.Start(ctx, "analyze", args)
	require.NoError(t, err)
	assert.False(t, started)
	assert.Equal(t, run.ID, dup.ID)

	// Key order must not defeat the dedupe digest.
	dup2, started, err := eng.Start(ctx, "analyze", json.RawMessage(`{ "videoId" : "dQw4w9WgXcQ" }`))
	require.NoError(t, err)
	assert.False(t, started)
	assert.Equal(t, run.ID, dup2.ID)

	other, started, err := eng.Start(ctx, "analyze", json.RawMessage(`{"videoId":"jNQXAC9IVRw"}`))
	require.NoError(t, err)
	assert.True(t, started)
	assert.NotEqual(t, run.ID, other.ID)
}

func TestEngine_StartRejectsUnknownWorkflow(t *testing.T) {
	eng, _ := newTestEngine(t)
	_, _, err := eng.Start(context.Background(), "nope", nil)
	assert.ErrorIs(t, err, ErrWorkflowNotRegistered)
}

func TestEngine_ExecuteCompletesRun(t *testing.T) {
	eng, client := newTestEngine(t)
	ctx := context.Background()

	eng.Register("analyze", func(sc *StepContext, args json.RawMessage) (any, error) {
		var in struct {
			VideoID string `json:"videoId"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return nil, err
		}
		title, err := Step(sc, "fetch_title", StepOptions{}, func(ctx context.Context) (string, error) {
			return "Talk: " + in.VideoID, nil
		})
		if err != nil {
			return nil, err
		}
		if err := sc.Emit(map[string]string{"event": "result", "title": title}); err != nil {
			return nil, err
		}
		return map[string]string{"title": title}, nil
	})

	run, _, err := eng.Start(ctx, "analyze", json.RawMessage(`{"videoId":"dQw4w9WgXcQ"}`))
	require.NoError(t, err)
	eng.Execute(ctx, claimRun(t, client, run.ID), &Flags{})

	final, err := eng.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StateCompleted, final.State)
	assert.JSONEq(t, `{"title":"Talk: dQw4w9WgXcQ"}`, string(final.Result))

	trace, err := eng.log.Load(ctx, run.ID)
	require.NoError(t, err)
	last := trace[len(trace)-1]
	assert.Equal(t, KindRunTerminal, last.Kind)
	for i, ev := range trace {
		assert.Equal(t, i, ev.Index)
	}
}

func TestEngine_ExecuteFailsRunOnWorkflowError(t *testing.T) {
	eng, client := newTestEngine(t)
	ctx := context.Background()

	eng.Register("analyze", func(sc *StepContext, args json.RawMessage) (any, error) {
		return nil, errors.New("no en track available")
	})

	run, _, err := eng.Start(ctx, "analyze", json.RawMessage(`{}`))
	require.NoError(t, err)
	eng.Execute(ctx, claimRun(t, client, run.ID), &Flags{})

	final, err := eng.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StateFailed, final.State)
	require.NotNil(t, final.ErrorMessage)
	assert.Contains(t, *final.ErrorMessage, "no en track")

	trace, err := eng.log.Load(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, StateFailed, terminalStateOf(trace[len(trace)-1]))
}

func TestEngine_CrashRecoveryResumesFromTrace(t *testing.T) {
	eng, client := newTestEngine(t)
	ctx := context.Background()

	var fetchCalls, analyzeCalls atomic.Int32
	crashCtx, crash := context.WithCancel(ctx)

	eng.Register("analyze", func(sc *StepContext, args json.RawMessage) (any, error) {
		transcript, err := Step(sc, "fetch_transcript", StepOptions{}, func(ctx context.Context) (string, error) {
			fetchCalls.Add(1)
			return "hello world", nil
		})
		if err != nil {
			return nil, err
		}
		if fetchCalls.Load() == 1 {
			crash() // pod dies between steps on the first execution
		}
		summary, err := Step(sc, "analyze_transcript", StepOptions{}, func(ctx context.Context) (string, error) {
			analyzeCalls.Add(1)
			return "summary of " + transcript, nil
		})
		if err != nil {
			return nil, err
		}
		return map[string]string{"summary": summary}, nil
	})

	run, _, err := eng.Start(ctx, "analyze", json.RawMessage(`{}`))
	require.NoError(t, err)

	eng.Execute(crashCtx, claimRun(t, client, run.ID), &Flags{})

	// The interrupted run went back to pending with its trace intact.
	mid, err := eng.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StatePending, mid.State)

	eng.Execute(ctx, claimRun(t, client, run.ID), &Flags{})

	final, err := eng.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StateCompleted, final.State)
	assert.JSONEq(t, `{"summary":"summary of hello world"}`, string(final.Result))

	assert.Equal(t, int32(1), fetchCalls.Load(), "completed step must replay, not re-execute")
	assert.Equal(t, int32(1), analyzeCalls.Load())
}

func TestEngine_CancelRunningRunViaFlags(t *testing.T) {
	eng, client := newTestEngine(t)
	ctx := context.Background()

	flags := &Flags{}
	eng.Register("analyze", func(sc *StepContext, args json.RawMessage) (any, error) {
		if _, err := Step(sc, "first", StepOptions{}, func(ctx context.Context) (int, error) {
			flags.RequestCancel()
			return 1, nil
		}); err != nil {
			return nil, err
		}
		// The flag check before the next step observes the request.
		if _, err := Step(sc, "second", StepOptions{}, func(ctx context.Context) (int, error) {
			t.Fatal("step ran after cancellation")
			return 0, nil
		}); err != nil {
			return nil, err
		}
		return nil, nil
	})

	run, _, err := eng.Start(ctx, "analyze", json.RawMessage(`{}`))
	require.NoError(t, err)
	eng.Execute(ctx, claimRun(t, client, run.ID), flags)

	final, err := eng.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StateCancelled, final.State)

	trace, err := eng.log.Load(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, StateCancelled, terminalStateOf(trace[len(trace)-1]))
}

func TestEngine_CancelPendingRunSealsImmediately(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()
	eng.Register("analyze", func(sc *StepContext, args json.RawMessage) (any, error) { return nil, nil })

	run, _, err := eng.Start(ctx, "analyze", json.RawMessage(`{}`))
	require.NoError(t, err)

	require.NoError(t, eng.Cancel(ctx, run.ID))

	final, err := eng.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StateCancelled, final.State)

	trace, err := eng.log.Load(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, StateCancelled, terminalStateOf(trace[len(trace)-1]))

	// Terminal runs reject further control operations.
	assert.ErrorIs(t, eng.Cancel(ctx, run.ID), ErrRunTerminal)
	assert.ErrorIs(t, eng.Pause(ctx, run.ID), ErrRunTerminal)
	assert.ErrorIs(t, eng.Resume(ctx, run.ID), ErrRunTerminal)
}

func TestEngine_PauseAndResumeRoundTrip(t *testing.T) {
	eng, client := newTestEngine(t)
	ctx := context.Background()

	flags := &Flags{}
	var secondRuns atomic.Int32
	eng.Register("analyze", func(sc *StepContext, args json.RawMessage) (any, error) {
		if _, err := Step(sc, "first", StepOptions{}, func(ctx context.Context) (int, error) {
			flags.RequestPause()
			return 1, nil
		}); err != nil {
			return nil, err
		}
		if _, err := Step(sc, "second", StepOptions{}, func(ctx context.Context) (int, error) {
			secondRuns.Add(1)
			return 2, nil
		}); err != nil {
			return nil, err
		}
		return "done", nil
	})

	run, _, err := eng.Start(ctx, "analyze", json.RawMessage(`{}`))
	require.NoError(t, err)
	eng.Execute(ctx, claimRun(t, client, run.ID), flags)

	paused, err := eng.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StatePaused, paused.State)
	assert.Equal(t, int32(0), secondRuns.Load())

	require.NoError(t, eng.Resume(ctx, run.ID))
	resumed, err := eng.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StatePending, resumed.State)

	eng.Execute(ctx, claimRun(t, client, run.ID), &Flags{})
	final, err := eng.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StateCompleted, final.State)
	assert.Equal(t, int32(1), secondRuns.Load())
}

func TestEngine_PausePendingRunWithoutClaim(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()
	eng.Register("analyze", func(sc *StepContext, args json.RawMessage) (any, error) { return nil, nil })

	run, _, err := eng.Start(ctx, "analyze", json.RawMessage(`{}`))
	require.NoError(t, err)

	require.NoError(t, eng.Pause(ctx, run.ID))
	paused, err := eng.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StatePaused, paused.State)
}

func TestEngine_ParallelBranchesCompleteWithDenseLog(t *testing.T) {
	eng, client := newTestEngine(t)
	ctx := context.Background()

	eng.Register("process", func(sc *StepContext, args json.RawMessage) (any, error) {
		for _, name := range []string{"transcript", "analysis", "slides"} {
			branch := name
			sc.Go(branch, func(bsc *StepContext) error {
				v, err := Step(bsc, "work", StepOptions{}, func(ctx context.Context) (string, error) {
					return branch, nil
				})
				if err != nil {
					return err
				}
				return bsc.WithNamespace(branch).Emit(map[string]string{"event": "result", "value": v})
			})
		}
		if err := sc.Wait(); err != nil {
			return nil, err
		}
		return "ok", nil
	})

	run, _, err := eng.Start(ctx, "process", json.RawMessage(`{}`))
	require.NoError(t, err)
	eng.Execute(ctx, claimRun(t, client, run.ID), &Flags{})

	final, err := eng.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StateCompleted, final.State)

	trace, err := eng.log.Load(ctx, run.ID)
	require.NoError(t, err)
	// Seed + 3x(started, result, emit) + terminal.
	require.Len(t, trace, 11)
	namespaces := make(map[string]int)
	for i, ev := range trace {
		assert.Equal(t, i, ev.Index)
		if ev.Kind == KindEmit {
			namespaces[ev.Namespace]++
		}
	}
	assert.Equal(t, map[string]int{"transcript": 1, "analysis": 1, "slides": 1}, namespaces)
}

func TestEngine_StreamDeliversHistoryAndTerminal(t *testing.T) {
	eng, client := newTestEngine(t)
	ctx := context.Background()

	eng.Register("analyze", func(sc *StepContext, args json.RawMessage) (any, error) {
		if err := sc.Emit(map[string]string{"event": "result"}); err != nil {
			return nil, err
		}
		return "ok", nil
	})

	run, _, err := eng.Start(ctx, "analyze", json.RawMessage(`{}`))
	require.NoError(t, err)
	eng.Execute(ctx, claimRun(t, client, run.ID), &Flags{})

	ch, err := eng.Stream(ctx, run.ID, 0, "")
	require.NoError(t, err)
	got := collectEvents(t, ch, 5*time.Second)
	require.NotEmpty(t, got)
	assert.Equal(t, KindRunTerminal, got[len(got)-1].Kind)

	_, err = eng.Stream(ctx, "missing-run", 0, "")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestEngine_ListFiltersByWorkflowAndState(t *testing.T) {
	eng, client := newTestEngine(t)
	ctx := context.Background()
	eng.Register("a", func(sc *StepContext, args json.RawMessage) (any, error) { return nil, nil })
	eng.Register("b", func(sc *StepContext, args json.RawMessage) (any, error) { return nil, nil })

	runA, _, err := eng.Start(ctx, "a", json.RawMessage(`{"n":1}`))
	require.NoError(t, err)
	_, _, err = eng.Start(ctx, "b", json.RawMessage(`{"n":2}`))
	require.NoError(t, err)
	eng.Execute(ctx, claimRun(t, client, runA.ID), &Flags{})

	all, err := eng.List(ctx, "", "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyA, err := eng.List(ctx, "a", "", 0)
	require.NoError(t, err)
	require.Len(t, onlyA, 1)
	assert.Equal(t, runA.ID, onlyA[0].ID)

	completed, err := eng.List(ctx, "", StateCompleted, 0)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, runA.ID, completed[0].ID)
}
