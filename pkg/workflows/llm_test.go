package workflows

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/pkg/engine"
	"github.com/recapd/recapd/pkg/llm"
)

func chunkStream(chunks ...llm.Chunk) <-chan llm.Chunk {
	ch := make(chan llm.Chunk, len(chunks))
	for _, c := range chunks {
		ch <- c
	}
	close(ch)
	return ch
}

func TestCollectStructured_ReturnsLastSnapshot(t *testing.T) {
	var snapshots []string
	final, err := collectStructured(context.Background(), chunkStream(
		&llm.ObjectChunk{JSON: `{"a":`},
		&llm.ObjectChunk{JSON: `{"a":1}`},
		&llm.DoneChunk{},
	), func(s string) error {
		snapshots = append(snapshots, s)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, final)
	assert.Equal(t, []string{`{"a":`, `{"a":1}`}, snapshots)
}

func TestCollectStructured_EmptyStreamIsAnError(t *testing.T) {
	_, err := collectStructured(context.Background(), chunkStream(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without output")
}

func TestCollectStructured_ErrorChunkSeverity(t *testing.T) {
	_, err := collectStructured(context.Background(), chunkStream(
		&llm.ErrorChunk{Message: "rate limited", Retryable: true},
	), nil)
	require.Error(t, err)
	assert.False(t, engine.IsFatal(err))

	_, err = collectStructured(context.Background(), chunkStream(
		&llm.ErrorChunk{Message: "safety block", Retryable: false},
	), nil)
	require.Error(t, err)
	assert.True(t, engine.IsFatal(err))
}

func TestCollectStructured_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := collectStructured(ctx, make(chan llm.Chunk), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCollectText_AccumulatesDeltas(t *testing.T) {
	var deltas []string
	text, err := collectText(context.Background(), chunkStream(
		&llm.TextChunk{Content: "# Report"},
		&llm.TextChunk{Content: "\n\nbody"},
	), func(d string) error {
		deltas = append(deltas, d)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "# Report\n\nbody", text)
	assert.Equal(t, []string{"# Report", "\n\nbody"}, deltas)
}

func TestCollectText_EmptyStreamIsAnError(t *testing.T) {
	_, err := collectText(context.Background(), chunkStream(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without output")
}

func TestCollectText_NonRetryableErrorIsFatal(t *testing.T) {
	_, err := collectText(context.Background(), chunkStream(
		&llm.TextChunk{Content: "partial"},
		&llm.ErrorChunk{Message: "invalid image", Retryable: false},
	), nil)
	require.Error(t, err)
	assert.True(t, engine.IsFatal(err))
}
