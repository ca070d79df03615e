package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/ent/versionedrun"
	"github.com/recapd/recapd/pkg/engine"
)

type sseFrame struct {
	id   string
	data string
}

// parseSSE splits an event-stream body into its data frames, ignoring
// comments and event names.
func parseSSE(body string) []sseFrame {
	var frames []sseFrame
	for _, block := range strings.Split(body, "\n\n") {
		var frame sseFrame
		hasData := false
		for _, line := range strings.Split(block, "\n") {
			switch {
			case strings.HasPrefix(line, "id:"):
				frame.id = strings.TrimSpace(strings.TrimPrefix(line, "id:"))
			case strings.HasPrefix(line, "data:"):
				frame.data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
				hasData = true
			}
		}
		if hasData {
			frames = append(frames, frame)
		}
	}
	return frames
}

func TestStreamRun_ReplaysCompletedRun(t *testing.T) {
	ts := newTestServer(t)
	ts.engine.Register("chunked-summary", func(sc *engine.StepContext, args json.RawMessage) (any, error) {
		if err := sc.Emit(map[string]any{"type": "chunk", "text": "hello"}); err != nil {
			return nil, err
		}
		if err := sc.Emit(map[string]any{"type": "chunk", "text": "world"}); err != nil {
			return nil, err
		}
		return map[string]string{"summary": "ok"}, nil
	})
	runID := ts.runToCompletion(t, "chunked-summary", `{"videoId":"dQw4w9WgXcQ"}`)

	w := ts.do(t, http.MethodGet, "/api/v1/runs/"+runID+"/stream", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, runID, w.Header().Get(HeaderRunID))

	frames := parseSSE(w.Body.String())
	require.Len(t, frames, 2)
	assert.JSONEq(t, `{"type":"chunk","text":"hello"}`, frames[0].data)
	assert.JSONEq(t, `{"type":"chunk","text":"world"}`, frames[1].data)
	// Frame ids carry the log index so clients can reconnect where they left off.
	assert.Equal(t, "1", frames[0].id)
	assert.Equal(t, "2", frames[1].id)
	assert.NotContains(t, w.Body.String(), `"type":"error"`)
}

func TestStreamRun_FailedRunEndsWithErrorFrame(t *testing.T) {
	ts := newTestServer(t)
	ts.engine.Register("doomed", func(sc *engine.StepContext, args json.RawMessage) (any, error) {
		return nil, errors.New("llm exploded")
	})
	runID := ts.runToCompletion(t, "doomed", `{"videoId":"dQw4w9WgXcQ"}`)

	w := ts.do(t, http.MethodGet, "/api/v1/runs/"+runID+"/stream", nil)
	require.Equal(t, http.StatusOK, w.Code)

	frames := parseSSE(w.Body.String())
	require.Len(t, frames, 1)
	var errFrame struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(frames[0].data), &errFrame))
	assert.Equal(t, "error", errFrame.Type)
	assert.Contains(t, errFrame.Message, "llm exploded")
}

func TestStreamRun_StartIndexAndReconnectHeader(t *testing.T) {
	ts := newTestServer(t)
	ts.engine.Register("chunked-pair", func(sc *engine.StepContext, args json.RawMessage) (any, error) {
		if err := sc.Emit(map[string]any{"type": "chunk", "text": "first"}); err != nil {
			return nil, err
		}
		if err := sc.Emit(map[string]any{"type": "chunk", "text": "second"}); err != nil {
			return nil, err
		}
		return nil, nil
	})
	runID := ts.runToCompletion(t, "chunked-pair", `{"videoId":"dQw4w9WgXcQ"}`)

	skipped := ts.do(t, http.MethodGet, "/api/v1/runs/"+runID+"/stream?startIndex=2", nil)
	frames := parseSSE(skipped.Body.String())
	require.Len(t, frames, 1)
	assert.Contains(t, frames[0].data, "second")

	// Last-Event-ID resumes after the acknowledged index.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs/"+runID+"/stream", nil)
	req.Header.Set("Last-Event-ID", "1")
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	frames = parseSSE(rec.Body.String())
	require.Len(t, frames, 1)
	assert.Contains(t, frames[0].data, "second")

	// An explicit startIndex wins over the reconnect header.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/runs/"+runID+"/stream?startIndex=0", nil)
	req.Header.Set("Last-Event-ID", "1")
	rec = httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	assert.Len(t, parseSSE(rec.Body.String()), 2)
}

func TestStreamRun_InvalidStartIndex(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/api/v1/runs/some-run/stream?startIndex=banana", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStreamRun_UnknownRun(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/api/v1/runs/does-not-exist/stream", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStreamRun_NamespaceFilterAndSourceTagging(t *testing.T) {
	ts := newTestServer(t)
	ts.engine.Register("two-streams", func(sc *engine.StepContext, args json.RawMessage) (any, error) {
		if err := sc.WithNamespace("transcript").Emit(map[string]any{"type": "chunk", "text": "segment"}); err != nil {
			return nil, err
		}
		if err := sc.WithNamespace("analysis").Emit(map[string]any{"type": "chunk", "text": "insight"}); err != nil {
			return nil, err
		}
		return nil, nil
	})
	runID := ts.runToCompletion(t, "two-streams", `{"videoId":"dQw4w9WgXcQ"}`)

	// The unfiltered stream tags each frame with its sub-stream.
	full := ts.do(t, http.MethodGet, "/api/v1/runs/"+runID+"/stream", nil)
	frames := parseSSE(full.Body.String())
	require.Len(t, frames, 2)
	assert.JSONEq(t, `{"type":"chunk","text":"segment","source":"transcript"}`, frames[0].data)
	assert.JSONEq(t, `{"type":"chunk","text":"insight","source":"analysis"}`, frames[1].data)

	// Filtered streams carry only their namespace, untagged.
	filtered := ts.do(t, http.MethodGet, "/api/v1/runs/"+runID+"/stream?namespace=analysis", nil)
	frames = parseSSE(filtered.Body.String())
	require.Len(t, frames, 1)
	assert.JSONEq(t, `{"type":"chunk","text":"insight"}`, frames[0].data)
}

func TestStartAnalysis_CachedStreamsResultThenComplete(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	vr, err := ts.analyses.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	require.NoError(t, ts.analyses.Complete(ctx, vr.ID, json.RawMessage(`{"summary":"cached"}`)))

	w := ts.do(t, http.MethodPost, "/api/v1/videos/dQw4w9WgXcQ/analysis/start", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Empty(t, w.Header().Get(HeaderRunID), "cached responses have no backing run")

	frames := parseSSE(w.Body.String())
	require.Len(t, frames, 2)
	assert.Equal(t, "0", frames[0].id)
	assert.JSONEq(t, `{"type":"result","data":{"summary":"cached"}}`, frames[0].data)
	assert.Equal(t, "1", frames[1].id)
	assert.JSONEq(t, `{"type":"complete"}`, frames[1].data)
}
