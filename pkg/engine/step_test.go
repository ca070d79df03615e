package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStepContext builds an executable StepContext over a fresh run with an
// empty trace.
func newStepContext(t *testing.T) (*StepContext, *Log, string) {
	t.Helper()
	log, client := newTestLog(t)
	runID := createRun(t, client)
	sc := &StepContext{
		ctx: context.Background(),
		rs:  newRunState(runID, log, nil, &Flags{}),
	}
	return sc, log, runID
}

// replayContext reloads the run's trace into a fresh StepContext, simulating
// a crash-recovery re-execution.
func replayContext(t *testing.T, log *Log, runID string) *StepContext {
	t.Helper()
	trace, err := log.Load(context.Background(), runID)
	require.NoError(t, err)
	return &StepContext{
		ctx: context.Background(),
		rs:  newRunState(runID, log, trace, &Flags{}),
	}
}

func TestStep_RecordsStartAndResult(t *testing.T) {
	sc, log, runID := newStepContext(t)

	v, err := Step(sc, "fetch", StepOptions{}, func(ctx context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	trace, err := log.Load(context.Background(), runID)
	require.NoError(t, err)
	require.Len(t, trace, 2)
	assert.Equal(t, KindStepStarted, trace[0].Kind)
	assert.Equal(t, KindStepResult, trace[1].Kind)
	assert.Equal(t, "fetch", trace[0].StepID)
	assert.JSONEq(t, `42`, string(trace[1].Payload))
}

func TestStep_ReplaySkipsExecutedBody(t *testing.T) {
	sc, log, runID := newStepContext(t)

	var calls atomic.Int32
	body := func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "value", nil
	}

	v, err := Step(sc, "fetch", StepOptions{}, body)
	require.NoError(t, err)
	assert.Equal(t, "value", v)

	replay := replayContext(t, log, runID)
	v, err = Step(replay, "fetch", StepOptions{}, body)
	require.NoError(t, err)
	assert.Equal(t, "value", v)
	assert.Equal(t, int32(1), calls.Load(), "memoized step body must not re-execute")
}

func TestStep_CallOrdinalsSeparateRepeatedSteps(t *testing.T) {
	sc, log, runID := newStepContext(t)

	for i := 0; i < 3; i++ {
		want := i
		v, err := Step(sc, "poll", StepOptions{}, func(ctx context.Context) (int, error) {
			return want, nil
		})
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}

	// Replay returns each occurrence's own value, in order.
	replay := replayContext(t, log, runID)
	for i := 0; i < 3; i++ {
		v, err := Step(replay, "poll", StepOptions{}, func(ctx context.Context) (int, error) {
			t.Fatal("memoized occurrence re-executed")
			return 0, nil
		})
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

func TestStep_FatalErrorIsMemoized(t *testing.T) {
	sc, log, runID := newStepContext(t)

	var calls atomic.Int32
	_, err := Step(sc, "resolve", StepOptions{MaxRetries: 5}, func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "", Fatalf("video not found")
	})
	require.Error(t, err)
	assert.True(t, IsFatal(err))
	assert.Equal(t, int32(1), calls.Load(), "fatal errors must not retry")

	trace, lerr := log.Load(context.Background(), runID)
	require.NoError(t, lerr)
	last := trace[len(trace)-1]
	assert.Equal(t, KindStepError, last.Kind)
	require.NotNil(t, last.Retriable)
	assert.False(t, *last.Retriable)

	// Replay re-raises the recorded failure without running the body.
	replay := replayContext(t, log, runID)
	_, err = Step(replay, "resolve", StepOptions{}, func(ctx context.Context) (string, error) {
		t.Fatal("fatally failed step re-executed on replay")
		return "", nil
	})
	var se *StepError
	require.ErrorAs(t, err, &se)
	assert.False(t, se.Retriable)
	assert.Contains(t, se.Message, "video not found")
}

func TestStep_TransientExhaustionIsNotMemoized(t *testing.T) {
	sc, log, runID := newStepContext(t)

	var calls atomic.Int32
	body := func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "", errors.New("connection refused")
	}

	opts := StepOptions{MaxRetries: 1, InitialBackoff: time.Millisecond, MaxBackoff: time.Millisecond}
	_, err := Step(sc, "trigger", opts, body)
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())

	trace, lerr := log.Load(context.Background(), runID)
	require.NoError(t, lerr)
	last := trace[len(trace)-1]
	assert.Equal(t, KindStepError, last.Kind)
	require.NotNil(t, last.Retriable)
	assert.True(t, *last.Retriable)

	// Recovery executes the step again instead of replaying the failure.
	replay := replayContext(t, log, runID)
	v, err := Step(replay, "trigger", StepOptions{}, func(ctx context.Context) (string, error) {
		return "recovered", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "recovered", v)
}

func TestStep_RetriesTransientThenSucceeds(t *testing.T) {
	sc, _, _ := newStepContext(t)

	var calls atomic.Int32
	opts := StepOptions{MaxRetries: 3, InitialBackoff: time.Millisecond, MaxBackoff: time.Millisecond}
	v, err := Step(sc, "monitor", opts, func(ctx context.Context) (string, error) {
		if calls.Add(1) < 3 {
			return "", errors.New("not ready")
		}
		return "done", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "done", v)
	assert.Equal(t, int32(3), calls.Load())
}

func TestStep_AttemptTimeoutBoundsBody(t *testing.T) {
	sc, _, _ := newStepContext(t)

	opts := StepOptions{Timeout: 20 * time.Millisecond}
	start := time.Now()
	_, err := Step(sc, "slow", opts, func(ctx context.Context) (string, error) {
		select {
		case <-time.After(5 * time.Second):
			return "too late", nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestStep_CancelFlagStopsBeforeExecution(t *testing.T) {
	sc, log, runID := newStepContext(t)
	sc.rs.flags.RequestCancel()

	_, err := Step(sc, "fetch", StepOptions{}, func(ctx context.Context) (int, error) {
		t.Fatal("step body ran despite pending cancel")
		return 0, nil
	})
	assert.True(t, IsInterrupt(err))

	trace, lerr := log.Load(context.Background(), runID)
	require.NoError(t, lerr)
	assert.Empty(t, trace, "interrupted step must leave no log record")
}

func TestStep_PauseFlagStopsBetweenRetries(t *testing.T) {
	sc, _, _ := newStepContext(t)

	var calls atomic.Int32
	opts := StepOptions{MaxRetries: 10, InitialBackoff: time.Millisecond, MaxBackoff: time.Millisecond}
	_, err := Step(sc, "monitor", opts, func(ctx context.Context) (string, error) {
		if calls.Add(1) == 1 {
			sc.rs.flags.RequestPause()
		}
		return "", errors.New("not ready")
	})
	assert.True(t, IsInterrupt(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestEmit_ReplayDoesNotDuplicate(t *testing.T) {
	sc, log, runID := newStepContext(t)

	require.NoError(t, sc.Emit(map[string]string{"event": "meta"}))
	require.NoError(t, sc.Emit(map[string]string{"event": "result"}))

	replay := replayContext(t, log, runID)
	require.NoError(t, replay.Emit(map[string]string{"event": "meta"}))
	require.NoError(t, replay.Emit(map[string]string{"event": "result"}))
	require.NoError(t, replay.Emit(map[string]string{"event": "complete"}))

	trace, err := log.Load(context.Background(), runID)
	require.NoError(t, err)
	require.Len(t, trace, 3, "replayed emits must not append again")
	assert.JSONEq(t, `{"event":"complete"}`, string(trace[2].Payload))
}

func TestEmitter_ScopeKeepsStepEmitsOffWorkflowCounter(t *testing.T) {
	sc, log, runID := newStepContext(t)

	emitDelta := sc.Emitter("synthesize")
	require.NoError(t, emitDelta(map[string]string{"delta": "a"}))
	require.NoError(t, emitDelta(map[string]string{"delta": "ab"}))
	require.NoError(t, sc.Emit(map[string]string{"event": "complete"}))

	trace, err := log.Load(context.Background(), runID)
	require.NoError(t, err)
	require.Len(t, trace, 3)
	assert.Equal(t, "synthesize#emit", trace[0].StepID)
	assert.Equal(t, 0, trace[0].CallOrdinal)
	assert.Equal(t, 1, trace[1].CallOrdinal)
	assert.Equal(t, "#emit", trace[2].StepID)
	assert.Equal(t, 0, trace[2].CallOrdinal)
}

func TestWithNamespace_LabelsEmits(t *testing.T) {
	sc, log, runID := newStepContext(t)

	nsc := sc.WithNamespace("transcript")
	require.NoError(t, nsc.Emit(map[string]string{"event": "result"}))
	require.NoError(t, sc.Emit(map[string]string{"event": "complete"}))

	trace, err := log.Load(context.Background(), runID)
	require.NoError(t, err)
	require.Len(t, trace, 2)
	assert.Equal(t, "transcript", trace[0].Namespace)
	assert.Empty(t, trace[1].Namespace)
}

func TestGo_BranchesPrefixStepIDs(t *testing.T) {
	sc, log, runID := newStepContext(t)

	sc.Go("transcript", func(branch *StepContext) error {
		_, err := Step(branch, "fetch", StepOptions{}, func(ctx context.Context) (string, error) {
			return "t", nil
		})
		return err
	})
	sc.Go("analysis", func(branch *StepContext) error {
		_, err := Step(branch, "fetch", StepOptions{}, func(ctx context.Context) (string, error) {
			return "a", nil
		})
		return err
	})
	require.NoError(t, sc.Wait())

	trace, err := log.Load(context.Background(), runID)
	require.NoError(t, err)
	require.Len(t, trace, 4)

	stepIDs := make(map[string]bool)
	for i, ev := range trace {
		assert.Equal(t, i, ev.Index, "branch appends must stay dense")
		stepIDs[ev.StepID] = true
	}
	assert.True(t, stepIDs["transcript/fetch"])
	assert.True(t, stepIDs["analysis/fetch"])
}

func TestGo_WaitReturnsBranchError(t *testing.T) {
	sc, _, _ := newStepContext(t)

	sc.Go("ok", func(branch *StepContext) error { return nil })
	sc.Go("bad", func(branch *StepContext) error { return errors.New("branch failed") })

	err := sc.Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "branch failed")
}

func TestSleep_ReplaysInstantly(t *testing.T) {
	sc, log, runID := newStepContext(t)

	require.NoError(t, sc.Sleep("cooldown", 100*time.Millisecond))

	replay := replayContext(t, log, runID)
	start := time.Now()
	require.NoError(t, replay.Sleep("cooldown", 100*time.Millisecond))
	assert.Less(t, time.Since(start), 50*time.Millisecond, "memoized timer must not wait again")
}
