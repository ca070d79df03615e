package engine

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/workflowrun"
	"github.com/recapd/recapd/pkg/events"
	"github.com/recapd/recapd/test/util"
)

// newTestLog returns a Log over an isolated test schema plus the ent client
// for direct row assertions.
func newTestLog(t *testing.T) (*Log, *ent.Client) {
	t.Helper()
	entClient, db := util.SetupTestDatabase(t)
	return NewLog(entClient, db, events.NewBroker()), entClient
}

// createRun inserts a pending run row so run_events rows have their parent.
func createRun(t *testing.T, client *ent.Client) string {
	t.Helper()
	runID := uuid.New().String()
	args := json.RawMessage(`{"videoId":"dQw4w9WgXcQ"}`)
	_, err := client.WorkflowRun.Create().
		SetID(runID).
		SetWorkflowName("test_workflow").
		SetArgs(args).
		SetArgsDigest(ArgsDigest("test_workflow", args)).
		SetState(workflowrun.StatePending).
		Save(context.Background())
	require.NoError(t, err)
	return runID
}

func TestLog_AppendAndLoad(t *testing.T) {
	log, client := newTestLog(t)
	runID := createRun(t, client)
	ctx := context.Background()

	evs := []*Event{
		{RunID: runID, Index: 0, Kind: KindStepStarted, StepID: "fetch", CallOrdinal: 0},
		{RunID: runID, Index: 1, Kind: KindStepResult, StepID: "fetch", CallOrdinal: 0, Payload: json.RawMessage(`{"ok":true}`)},
		{RunID: runID, Index: 2, Kind: KindEmit, StepID: "#emit", CallOrdinal: 0, Namespace: "analysis", Payload: json.RawMessage(`{"delta":"x"}`)},
	}
	for _, ev := range evs {
		require.NoError(t, log.Append(ctx, ev))
	}

	loaded, err := log.Load(ctx, runID)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	for i, ev := range loaded {
		assert.Equal(t, i, ev.Index)
		assert.Equal(t, evs[i].Kind, ev.Kind)
		assert.Equal(t, evs[i].StepID, ev.StepID)
	}
	assert.Equal(t, "analysis", loaded[2].Namespace)
	assert.JSONEq(t, `{"delta":"x"}`, string(loaded[2].Payload))
}

func TestLog_AppendRejectsGap(t *testing.T) {
	log, client := newTestLog(t)
	runID := createRun(t, client)

	err := log.Append(context.Background(), &Event{
		RunID: runID, Index: 1, Kind: KindStepStarted, StepID: "fetch",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gap")
}

func TestLog_AppendRetryIsIdempotent(t *testing.T) {
	log, client := newTestLog(t)
	runID := createRun(t, client)
	ctx := context.Background()

	ev := &Event{RunID: runID, Index: 0, Kind: KindStepStarted, StepID: "fetch", CallOrdinal: 0}
	require.NoError(t, log.Append(ctx, ev))

	// A crash-retry re-appends the same identity at the same index.
	retry := &Event{RunID: runID, Index: 0, Kind: KindStepStarted, StepID: "fetch", CallOrdinal: 0}
	require.NoError(t, log.Append(ctx, retry))

	loaded, err := log.Load(ctx, runID)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestLog_AppendDetectsConcurrentWriter(t *testing.T) {
	log, client := newTestLog(t)
	runID := createRun(t, client)
	ctx := context.Background()

	require.NoError(t, log.Append(ctx, &Event{
		RunID: runID, Index: 0, Kind: KindStepStarted, StepID: "fetch", CallOrdinal: 0,
	}))

	err := log.Append(ctx, &Event{
		RunID: runID, Index: 0, Kind: KindStepStarted, StepID: "other", CallOrdinal: 0,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "concurrent append")
}

func TestLog_SealClosesTheLog(t *testing.T) {
	log, client := newTestLog(t)
	runID := createRun(t, client)
	ctx := context.Background()

	require.NoError(t, log.Append(ctx, &Event{
		RunID: runID, Index: 0, Kind: KindStepStarted, StepID: "fetch", CallOrdinal: 0,
	}))

	terminal, err := json.Marshal(TerminalPayload{State: StateCompleted, Result: json.RawMessage(`{"done":true}`)})
	require.NoError(t, err)
	require.NoError(t, log.Seal(ctx, &Event{
		RunID: runID, Index: 1, Kind: KindRunTerminal, Payload: terminal,
	}, "", json.RawMessage(`{"done":true}`)))

	err = log.Append(ctx, &Event{
		RunID: runID, Index: 2, Kind: KindEmit, StepID: "#emit", CallOrdinal: 0, Payload: json.RawMessage(`{}`),
	})
	assert.ErrorIs(t, err, ErrLogSealed)

	run, err := client.WorkflowRun.Get(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StateCompleted, run.State)
	assert.NotNil(t, run.CompletedAt)
}

func TestLog_SealRejectsInvalidState(t *testing.T) {
	log, client := newTestLog(t)
	runID := createRun(t, client)

	payload, err := json.Marshal(TerminalPayload{State: StateRunning})
	require.NoError(t, err)
	err = log.Seal(context.Background(), &Event{
		RunID: runID, Index: 0, Kind: KindRunTerminal, Payload: payload,
	}, "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid terminal state")
}

func TestLog_ReadReplaysHistoryUntilTerminal(t *testing.T) {
	log, client := newTestLog(t)
	runID := createRun(t, client)
	ctx := context.Background()

	require.NoError(t, log.Append(ctx, &Event{RunID: runID, Index: 0, Kind: KindStepStarted, StepID: "fetch"}))
	require.NoError(t, log.Append(ctx, &Event{RunID: runID, Index: 1, Kind: KindStepResult, StepID: "fetch", Payload: json.RawMessage(`1`)}))
	terminal, _ := json.Marshal(TerminalPayload{State: StateCompleted})
	require.NoError(t, log.Seal(ctx, &Event{RunID: runID, Index: 2, Kind: KindRunTerminal, Payload: terminal}, "", nil))

	ch, err := log.Read(ctx, runID, 0, "")
	require.NoError(t, err)

	got := collectEvents(t, ch, 5*time.Second)
	require.Len(t, got, 3)
	for i, ev := range got {
		assert.Equal(t, i, ev.Index)
	}
	assert.Equal(t, KindRunTerminal, got[2].Kind)
}

func TestLog_ReadFromStartIndex(t *testing.T) {
	log, client := newTestLog(t)
	runID := createRun(t, client)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, log.Append(ctx, &Event{
			RunID: runID, Index: i, Kind: KindEmit, StepID: "#emit", CallOrdinal: i,
			Payload: json.RawMessage(`{}`),
		}))
	}
	terminal, _ := json.Marshal(TerminalPayload{State: StateCompleted})
	require.NoError(t, log.Seal(ctx, &Event{RunID: runID, Index: 4, Kind: KindRunTerminal, Payload: terminal}, "", nil))

	ch, err := log.Read(ctx, runID, 2, "")
	require.NoError(t, err)

	got := collectEvents(t, ch, 5*time.Second)
	require.Len(t, got, 3)
	assert.Equal(t, 2, got[0].Index)
}

func TestLog_ReadNamespaceFilterKeepsControlEvents(t *testing.T) {
	log, client := newTestLog(t)
	runID := createRun(t, client)
	ctx := context.Background()

	require.NoError(t, log.Append(ctx, &Event{RunID: runID, Index: 0, Kind: KindStepStarted, StepID: "fetch"}))
	require.NoError(t, log.Append(ctx, &Event{RunID: runID, Index: 1, Kind: KindEmit, StepID: "a#emit", Namespace: "analysis", Payload: json.RawMessage(`{}`)}))
	require.NoError(t, log.Append(ctx, &Event{RunID: runID, Index: 2, Kind: KindEmit, StepID: "b#emit", Namespace: "slides", Payload: json.RawMessage(`{}`)}))
	require.NoError(t, log.Append(ctx, &Event{RunID: runID, Index: 3, Kind: KindStepResult, StepID: "fetch", Payload: json.RawMessage(`1`)}))
	terminal, _ := json.Marshal(TerminalPayload{State: StateCompleted})
	require.NoError(t, log.Seal(ctx, &Event{RunID: runID, Index: 4, Kind: KindRunTerminal, Payload: terminal}, "", nil))

	ch, err := log.Read(ctx, runID, 0, "analysis")
	require.NoError(t, err)

	got := collectEvents(t, ch, 5*time.Second)
	require.Len(t, got, 4)
	kinds := []EventKind{got[0].Kind, got[1].Kind, got[2].Kind, got[3].Kind}
	assert.Equal(t, []EventKind{KindStepStarted, KindEmit, KindStepResult, KindRunTerminal}, kinds)
	assert.Equal(t, "analysis", got[1].Namespace)
}

func TestLog_ReadTailsLiveAppends(t *testing.T) {
	log, client := newTestLog(t)
	runID := createRun(t, client)
	ctx := context.Background()

	require.NoError(t, log.Append(ctx, &Event{RunID: runID, Index: 0, Kind: KindStepStarted, StepID: "fetch"}))

	ch, err := log.Read(ctx, runID, 0, "")
	require.NoError(t, err)

	// Appends after the reader attached arrive via the idle re-poll even
	// without a live NOTIFY listener.
	require.NoError(t, log.Append(ctx, &Event{RunID: runID, Index: 1, Kind: KindStepResult, StepID: "fetch", Payload: json.RawMessage(`1`)}))
	terminal, _ := json.Marshal(TerminalPayload{State: StateCompleted})
	require.NoError(t, log.Seal(ctx, &Event{RunID: runID, Index: 2, Kind: KindRunTerminal, Payload: terminal}, "", nil))

	got := collectEvents(t, ch, 10*time.Second)
	require.Len(t, got, 3)
	assert.Equal(t, KindRunTerminal, got[2].Kind)
}

// collectEvents drains a read channel until it closes or the deadline passes.
func collectEvents(t *testing.T, ch <-chan *Event, timeout time.Duration) []*Event {
	t.Helper()
	var got []*Event
	deadline := time.After(timeout)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return got
			}
			got = append(got, ev)
		case <-deadline:
			t.Fatalf("timed out waiting for events, got %d so far", len(got))
		}
	}
}
