package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_CombinesAllSources(t *testing.T) {
	ctx := context.Background()

	a := make(chan *Event, 4)
	b := make(chan *Event, 4)
	for i := 0; i < 3; i++ {
		a <- &Event{RunID: "run-a", Index: i, Kind: KindEmit}
	}
	for i := 0; i < 2; i++ {
		b <- &Event{RunID: "run-b", Index: i, Kind: KindEmit}
	}
	close(a)
	close(b)

	merged := Merge(ctx, SourceStream{Name: "analysis", Events: a}, SourceStream{Name: "slides", Events: b})

	counts := map[string]int{}
	for tagged := range merged {
		counts[tagged.Source]++
	}
	assert.Equal(t, map[string]int{"analysis": 3, "slides": 2}, counts)
}

func TestMerge_OneSourceClosingDoesNotStopOthers(t *testing.T) {
	ctx := context.Background()

	failed := make(chan *Event)
	close(failed) // a failed run's stream closes immediately

	live := make(chan *Event, 1)
	merged := Merge(ctx, SourceStream{Name: "dead", Events: failed}, SourceStream{Name: "live", Events: live})

	live <- &Event{RunID: "run-live", Index: 0, Kind: KindEmit}

	select {
	case tagged, ok := <-merged:
		require.True(t, ok)
		assert.Equal(t, "live", tagged.Source)
		assert.Equal(t, 0, tagged.Event.Index)
	case <-time.After(time.Second):
		t.Fatal("merged stream stalled after a source closed")
	}

	close(live)
	_, ok := <-merged
	assert.False(t, ok, "merged channel must close once every source closed")
}

func TestMerge_ContextCancellationClosesOutput(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	never := make(chan *Event) // source that never produces
	merged := Merge(ctx, SourceStream{Name: "stuck", Events: never})

	cancel()

	select {
	case _, ok := <-merged:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("merged channel did not close on context cancellation")
	}
}

func TestMerge_NoSources(t *testing.T) {
	merged := Merge(context.Background())
	_, ok := <-merged
	assert.False(t, ok)
}
