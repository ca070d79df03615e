package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/pkg/coordinator"
)

func TestListRuns(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	_, _, err := ts.engine.Start(ctx, coordinator.WorkflowFetchTranscript, json.RawMessage(`{"videoId":"dQw4w9WgXcQ"}`))
	require.NoError(t, err)
	ts.runToCompletion(t, coordinator.WorkflowDynamicAnalysis, `{"videoId":"dQw4w9WgXcQ","version":1}`)

	all := ts.do(t, http.MethodGet, "/api/v1/runs", nil)
	require.Equal(t, http.StatusOK, all.Code)
	runs, ok := decodeBody(t, all)["runs"].([]any)
	require.True(t, ok)
	assert.Len(t, runs, 2)

	completed := ts.do(t, http.MethodGet, "/api/v1/runs?state=completed", nil)
	require.Equal(t, http.StatusOK, completed.Code)
	runs, _ = decodeBody(t, completed)["runs"].([]any)
	require.Len(t, runs, 1)
	row, ok := runs[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, coordinator.WorkflowDynamicAnalysis, row["workflowName"])
	assert.Equal(t, "completed", row["state"])

	byWorkflow := ts.do(t, http.MethodGet, "/api/v1/runs?workflow="+coordinator.WorkflowFetchTranscript, nil)
	require.Equal(t, http.StatusOK, byWorkflow.Code)
	runs, _ = decodeBody(t, byWorkflow)["runs"].([]any)
	assert.Len(t, runs, 1)

	badLimit := ts.do(t, http.MethodGet, "/api/v1/runs?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, badLimit.Code)
}

func TestGetRun(t *testing.T) {
	ts := newTestServer(t)

	runID := ts.runToCompletion(t, coordinator.WorkflowFetchTranscript, `{"videoId":"dQw4w9WgXcQ"}`)

	w := ts.do(t, http.MethodGet, "/api/v1/runs/"+runID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, runID, body["id"])
	assert.Equal(t, "completed", body["state"])
	assert.NotEmpty(t, body["completedAt"])

	missing := ts.do(t, http.MethodGet, "/api/v1/runs/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestRunControls(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	run, _, err := ts.engine.Start(ctx, coordinator.WorkflowFetchTranscript, json.RawMessage(`{"videoId":"dQw4w9WgXcQ"}`))
	require.NoError(t, err)

	paused := ts.do(t, http.MethodPost, "/api/v1/runs/"+run.ID+"/pause", nil)
	assert.Equal(t, http.StatusOK, paused.Code)

	resumed := ts.do(t, http.MethodPost, "/api/v1/runs/"+run.ID+"/resume", nil)
	assert.Equal(t, http.StatusOK, resumed.Code)

	cancelled := ts.do(t, http.MethodPost, "/api/v1/runs/"+run.ID+"/cancel", nil)
	assert.Equal(t, http.StatusOK, cancelled.Code)

	// The run is terminal now, further control calls conflict.
	again := ts.do(t, http.MethodPost, "/api/v1/runs/"+run.ID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, again.Code)
	assert.Equal(t, "run already finished", decodeBody(t, again)["error"])
}

func TestRunControls_UnknownRun(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/v1/runs/does-not-exist/cancel", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
