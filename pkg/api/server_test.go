package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/workflowrun"
	"github.com/recapd/recapd/pkg/config"
	"github.com/recapd/recapd/pkg/coordinator"
	"github.com/recapd/recapd/pkg/engine"
	"github.com/recapd/recapd/pkg/events"
	"github.com/recapd/recapd/pkg/services"
	"github.com/recapd/recapd/pkg/version"
	"github.com/recapd/recapd/test/util"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router      http.Handler
	engine      *engine.Engine
	coord       *coordinator.Coordinator
	transcripts *services.TranscriptService
	analyses    *services.AnalysisService
	slides      *services.SlideService
	client      *ent.Client
}

// newTestServer wires the full handler stack over a fresh schema. The worker
// pool is constructed but never started, so nothing claims runs in the
// background.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	log := engine.NewLog(client, db, events.NewBroker())
	eng := engine.New(client, db, log, config.DefaultEngineConfig())
	for _, name := range []string{
		coordinator.WorkflowFetchTranscript,
		coordinator.WorkflowDynamicAnalysis,
		coordinator.WorkflowSlideExtraction,
		coordinator.WorkflowPerSlideAnalysis,
		coordinator.WorkflowSuperAnalysis,
		coordinator.WorkflowProcess,
	} {
		eng.Register(name, func(sc *engine.StepContext, args json.RawMessage) (any, error) {
			return nil, nil
		})
	}

	transcripts := services.NewTranscriptService(client)
	analyses := services.NewAnalysisService(client)
	slides := services.NewSlideService(client)
	coord := coordinator.New(eng, transcripts, analyses, slides)

	cfg := config.DefaultServerConfig()
	cfg.CORSAllowedOrigins = []string{"https://app.example.com"}
	srv := NewServer(cfg, eng, coord, transcripts, analyses, slides, engine.NewWorkerPool("pod-api", eng))

	return &testServer{
		router:      srv.Router(),
		engine:      eng,
		coord:       coord,
		transcripts: transcripts,
		analyses:    analyses,
		slides:      slides,
		client:      client,
	}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// runToCompletion starts a run of an already registered workflow and executes
// it inline, the way a claimed worker slot would.
func (ts *testServer) runToCompletion(t *testing.T, workflow, args string) string {
	t.Helper()
	ctx := context.Background()
	run, _, err := ts.engine.Start(ctx, workflow, json.RawMessage(args))
	require.NoError(t, err)

	now := time.Now()
	claimed, err := ts.client.WorkflowRun.UpdateOneID(run.ID).
		SetState(workflowrun.StateRunning).
		SetPodID("pod-api").
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	require.NoError(t, err)

	ts.engine.Execute(ctx, claimed, &engine.Flags{})
	return run.ID
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestVideoRoutes_RejectMalformedVideoID(t *testing.T) {
	ts := newTestServer(t)

	for _, id := range []string{"short", "way-too-long-to-be-valid", "bad%20chars"} {
		w := ts.do(t, http.MethodGet, "/api/v1/videos/"+id+"/slides/status", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "video id %q", id)
		assert.Equal(t, "invalid video id", decodeBody(t, w)["error"])
	}
}

func TestHealth_UnstartedPoolIsUnhealthy(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "unhealthy", body["status"])
	assert.Contains(t, body["version"], version.AppName+"/")
}

func TestSecurityAndCORSHeaders(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/runs", nil)
	req.Header.Set("Origin", "https://app.example.com")
	preflight := httptest.NewRecorder()
	ts.router.ServeHTTP(preflight, req)
	assert.Equal(t, http.StatusNoContent, preflight.Code)
	assert.Equal(t, "https://app.example.com", preflight.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	denied := httptest.NewRecorder()
	ts.router.ServeHTTP(denied, req)
	assert.Empty(t, denied.Header().Get("Access-Control-Allow-Origin"))
}

func TestTranscripts_CreateAndGet(t *testing.T) {
	ts := newTestServer(t)

	created := ts.do(t, http.MethodPost, "/api/v1/transcripts", gin.H{
		"title":   "Weekly sync",
		"content": "we shipped the thing",
	})
	require.Equal(t, http.StatusCreated, created.Code)
	id, _ := decodeBody(t, created)["id"].(string)
	require.NotEmpty(t, id)

	got := ts.do(t, http.MethodGet, "/api/v1/transcripts/"+id, nil)
	require.Equal(t, http.StatusOK, got.Code)
	body := decodeBody(t, got)
	assert.Equal(t, "Weekly sync", body["title"])
	assert.Equal(t, "we shipped the thing", body["content"])

	missing := ts.do(t, http.MethodGet, "/api/v1/transcripts/nope", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestTranscripts_CreateRequiresContent(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/v1/transcripts", gin.H{"title": "no content"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSlidesStatus(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	missing := ts.do(t, http.MethodGet, "/api/v1/videos/dQw4w9WgXcQ/slides/status", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)

	claimed, _, err := ts.slides.ClaimExtraction(ctx, "dQw4w9WgXcQ", "claim-token-1")
	require.NoError(t, err)
	require.True(t, claimed)
	require.NoError(t, ts.slides.SetExtractionRun(ctx, "dQw4w9WgXcQ", "run-real"))

	w := ts.do(t, http.MethodGet, "/api/v1/videos/dQw4w9WgXcQ/slides/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "in_progress", body["status"])
	assert.Equal(t, "run-real", body["runId"])
}

func TestStartSlides_ConflictsWhileActiveOrDone(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	claimed, _, err := ts.slides.ClaimExtraction(ctx, "dQw4w9WgXcQ", "claim-token-1")
	require.NoError(t, err)
	require.True(t, claimed)
	require.NoError(t, ts.slides.SetExtractionRun(ctx, "dQw4w9WgXcQ", "run-active"))

	active := ts.do(t, http.MethodPost, "/api/v1/videos/dQw4w9WgXcQ/slides/start", nil)
	require.Equal(t, http.StatusConflict, active.Code)
	body := decodeBody(t, active)
	assert.Equal(t, "slide extraction already in progress", body["error"])
	assert.Equal(t, "run-active", body["runId"])

	require.NoError(t, ts.slides.UpsertSlide(ctx, services.SlideUpsert{
		VideoID:      "dQw4w9WgXcQ",
		SlideNumber:  0,
		StartSeconds: 0,
		EndSeconds:   12,
		First:        services.FrameData{SourceURI: "s3://frames/0-first.jpg"},
		Last:         services.FrameData{SourceURI: "s3://frames/0-last.jpg"},
	}))
	require.NoError(t, ts.slides.CompleteExtraction(ctx, "dQw4w9WgXcQ", 1))

	done := ts.do(t, http.MethodPost, "/api/v1/videos/dQw4w9WgXcQ/slides/start", nil)
	assert.Equal(t, http.StatusConflict, done.Code)
	assert.Equal(t, "slides already extracted", decodeBody(t, done)["error"])
}

func TestSetSlideFeedback(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	badNumber := ts.do(t, http.MethodPut, "/api/v1/videos/dQw4w9WgXcQ/slides/nan/feedback", gin.H{})
	assert.Equal(t, http.StatusBadRequest, badNumber.Code)

	missing := ts.do(t, http.MethodPut, "/api/v1/videos/dQw4w9WgXcQ/slides/3/feedback", gin.H{
		"isFirstFramePicked": true,
	})
	assert.Equal(t, http.StatusNotFound, missing.Code)

	claimed, _, err := ts.slides.ClaimExtraction(ctx, "dQw4w9WgXcQ", "claim-token-1")
	require.NoError(t, err)
	require.True(t, claimed)
	require.NoError(t, ts.slides.UpsertSlide(ctx, services.SlideUpsert{
		VideoID:      "dQw4w9WgXcQ",
		SlideNumber:  3,
		StartSeconds: 30,
		EndSeconds:   45,
		First:        services.FrameData{SourceURI: "s3://frames/3-first.jpg"},
		Last:         services.FrameData{SourceURI: "s3://frames/3-last.jpg"},
	}))

	ok := ts.do(t, http.MethodPut, "/api/v1/videos/dQw4w9WgXcQ/slides/3/feedback", gin.H{
		"isFirstFramePicked": true,
		"isLastFramePicked":  false,
	})
	assert.Equal(t, http.StatusNoContent, ok.Code)
}

func TestResumeSlides(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	missing := ts.do(t, http.MethodGet, "/api/v1/videos/dQw4w9WgXcQ/slides/resume", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)

	// A claim placeholder is not a streamable run yet.
	claimed, _, err := ts.slides.ClaimExtraction(ctx, "dQw4w9WgXcQ", "claim-abc")
	require.NoError(t, err)
	require.True(t, claimed)
	pending := ts.do(t, http.MethodGet, "/api/v1/videos/dQw4w9WgXcQ/slides/resume", nil)
	assert.Equal(t, http.StatusNotFound, pending.Code)

	require.NoError(t, ts.slides.FailExtraction(ctx, "dQw4w9WgXcQ", "frame service down"))
	failed := ts.do(t, http.MethodGet, "/api/v1/videos/dQw4w9WgXcQ/slides/resume", nil)
	assert.Equal(t, http.StatusGone, failed.Code)
	assert.Equal(t, false, decodeBody(t, failed)["completed"])

	claimed, _, err = ts.slides.ClaimExtraction(ctx, "dQw4w9WgXcQ", "claim-def")
	require.NoError(t, err)
	require.True(t, claimed)
	require.NoError(t, ts.slides.UpsertSlide(ctx, services.SlideUpsert{
		VideoID:      "dQw4w9WgXcQ",
		SlideNumber:  0,
		StartSeconds: 0,
		EndSeconds:   10,
		First:        services.FrameData{SourceURI: "s3://frames/0-first.jpg"},
		Last:         services.FrameData{SourceURI: "s3://frames/0-last.jpg"},
	}))
	require.NoError(t, ts.slides.CompleteExtraction(ctx, "dQw4w9WgXcQ", 1))
	done := ts.do(t, http.MethodGet, "/api/v1/videos/dQw4w9WgXcQ/slides/resume", nil)
	assert.Equal(t, http.StatusGone, done.Code)
	assert.Equal(t, true, decodeBody(t, done)["completed"])
}
