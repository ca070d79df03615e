package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/ent/versionedrun"
)

func TestAnalysisStatus(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	missing := ts.do(t, http.MethodGet, "/api/v1/videos/dQw4w9WgXcQ/analysis/status", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)

	vr, err := ts.analyses.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	require.NoError(t, ts.analyses.AttachRun(ctx, vr.ID, "run-42", "analysis"))

	streaming := ts.do(t, http.MethodGet, "/api/v1/videos/dQw4w9WgXcQ/analysis/status", nil)
	require.Equal(t, http.StatusOK, streaming.Code)
	body := decodeBody(t, streaming)
	assert.Equal(t, "streaming", body["status"])
	assert.Equal(t, float64(1), body["version"])
	assert.Equal(t, "run-42", body["workflowRunId"])
	assert.Equal(t, "analysis", body["namespace"])

	require.NoError(t, ts.analyses.Complete(ctx, vr.ID, json.RawMessage(`{"summary":"done"}`)))
	completed := ts.do(t, http.MethodGet, "/api/v1/videos/dQw4w9WgXcQ/analysis/status", nil)
	require.Equal(t, http.StatusOK, completed.Code)
	body = decodeBody(t, completed)
	assert.Equal(t, "completed", body["status"])
	assert.Equal(t, float64(1), body["version"])
}

func TestAnalysisStatus_HidesClaimPlaceholder(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	vr, err := ts.analyses.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	require.NoError(t, ts.analyses.AttachRun(ctx, vr.ID, "claim-pending", ""))

	w := ts.do(t, http.MethodGet, "/api/v1/videos/dQw4w9WgXcQ/analysis/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "streaming", body["status"])
	_, present := body["workflowRunId"]
	assert.False(t, present, "placeholder run ids must not leak to clients")
}

func TestAnalysisVersions(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	empty := ts.do(t, http.MethodGet, "/api/v1/videos/dQw4w9WgXcQ/analysis/versions", nil)
	require.Equal(t, http.StatusOK, empty.Code)
	assert.Empty(t, decodeBody(t, empty)["versions"])

	v1, err := ts.analyses.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	require.NoError(t, ts.analyses.Complete(ctx, v1.ID, json.RawMessage(`{}`)))
	v2, err := ts.analyses.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "focus on demos")
	require.NoError(t, err)
	require.NoError(t, ts.analyses.Fail(ctx, v2.ID, "llm unavailable"))

	w := ts.do(t, http.MethodGet, "/api/v1/videos/dQw4w9WgXcQ/analysis/versions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	versions, ok := decodeBody(t, w)["versions"].([]any)
	require.True(t, ok)
	require.Len(t, versions, 2)
	newest, ok := versions[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), newest["version"])
	assert.Equal(t, "failed", newest["status"])
}

func TestResumeAnalysis_GoneWhenFinished(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	missing := ts.do(t, http.MethodGet, "/api/v1/videos/dQw4w9WgXcQ/analysis/resume", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)

	vr, err := ts.analyses.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	require.NoError(t, ts.analyses.Complete(ctx, vr.ID, json.RawMessage(`{"summary":"done"}`)))

	gone := ts.do(t, http.MethodGet, "/api/v1/videos/dQw4w9WgXcQ/analysis/resume", nil)
	assert.Equal(t, http.StatusGone, gone.Code)
	assert.Equal(t, true, decodeBody(t, gone)["completed"])
}

func TestSuperAnalysisStatus(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	missing := ts.do(t, http.MethodGet, "/api/v1/videos/dQw4w9WgXcQ/super-analysis/status", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)

	require.NoError(t, ts.analyses.SaveSuperAnalysis(ctx, "dQw4w9WgXcQ", "# Report", "gemini-2.5-pro"))

	w := ts.do(t, http.MethodGet, "/api/v1/videos/dQw4w9WgXcQ/super-analysis/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "completed", body["status"])
	assert.Equal(t, "gemini-2.5-pro", body["model"])
}

func TestSuperAnalysisStatus_FallsBackToVersionedRun(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	// No stored report yet, but a streaming super analysis version exists.
	_, err := ts.analyses.CreateStreamingVersion(ctx, versionedrun.ResourceKindSuper, "dQw4w9WgXcQ", "")
	require.NoError(t, err)

	w := ts.do(t, http.MethodGet, "/api/v1/videos/dQw4w9WgXcQ/super-analysis/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "streaming", decodeBody(t, w)["status"])
}
