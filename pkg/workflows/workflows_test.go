package workflows

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/versionedrun"
	"github.com/recapd/recapd/ent/workflowrun"
	"github.com/recapd/recapd/pkg/config"
	"github.com/recapd/recapd/pkg/coordinator"
	"github.com/recapd/recapd/pkg/engine"
	"github.com/recapd/recapd/pkg/events"
	"github.com/recapd/recapd/pkg/llm"
	"github.com/recapd/recapd/pkg/models"
	"github.com/recapd/recapd/pkg/services"
	"github.com/recapd/recapd/pkg/transcriptapi"
	"github.com/recapd/recapd/test/util"
)

// fakeLLM answers Generate calls from a respond function and records every
// request.
type fakeLLM struct {
	mu      sync.Mutex
	calls   []*llm.Request
	respond func(req *llm.Request) []llm.Chunk
}

func (f *fakeLLM) Generate(_ context.Context, req *llm.Request) (<-chan llm.Chunk, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()

	var chunks []llm.Chunk
	if f.respond != nil {
		chunks = f.respond(req)
	}
	ch := make(chan llm.Chunk, len(chunks))
	for _, c := range chunks {
		ch <- c
	}
	close(ch)
	return ch, nil
}

func (f *fakeLLM) Close() error { return nil }

func (f *fakeLLM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeLLM) call(i int) *llm.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[i]
}

func structuredResponse(doc string) []llm.Chunk {
	return []llm.Chunk{
		&llm.ObjectChunk{JSON: doc},
		&llm.DoneChunk{},
	}
}

func textResponse(parts ...string) []llm.Chunk {
	chunks := make([]llm.Chunk, 0, len(parts)+1)
	for _, p := range parts {
		chunks = append(chunks, &llm.TextChunk{Content: p})
	}
	return append(chunks, &llm.DoneChunk{})
}

type wfFixture struct {
	deps        *Deps
	engine      *engine.Engine
	coord       *coordinator.Coordinator
	transcripts *services.TranscriptService
	analyses    *services.AnalysisService
	slides      *services.SlideService
	client      *ent.Client
	llm         *fakeLLM
}

// newWorkflowFixture wires the registered workflows over a fresh schema with
// a fake LLM. External HTTP clients are attached per test.
func newWorkflowFixture(t *testing.T) *wfFixture {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	log := engine.NewLog(client, db, events.NewBroker())
	eng := engine.New(client, db, log, config.DefaultEngineConfig())

	transcripts := services.NewTranscriptService(client)
	analyses := services.NewAnalysisService(client)
	slides := services.NewSlideService(client)
	coord := coordinator.New(eng, transcripts, analyses, slides)

	fake := &fakeLLM{}
	deps := &Deps{
		Client:      client,
		Transcripts: transcripts,
		Analyses:    analyses,
		Slides:      slides,
		LLM:         fake,
		LLMCfg:      config.DefaultLLMConfig(),
		Engine:      eng,
		Coordinator: coord,
	}
	Register(eng, deps)

	return &wfFixture{
		deps:        deps,
		engine:      eng,
		coord:       coord,
		transcripts: transcripts,
		analyses:    analyses,
		slides:      slides,
		client:      client,
		llm:         fake,
	}
}

// useTranscriptAPI points the transcript client at an in-process server.
func (f *wfFixture) useTranscriptAPI(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	f.deps.TranscriptAPI = transcriptapi.NewClient(&config.TranscriptAPIConfig{
		BaseURL: srv.URL,
		Token:   "test-token",
		Timeout: 10 * time.Second,
	})
}

// execRun starts a run and executes it inline, returning the terminal row.
func (f *wfFixture) execRun(t *testing.T, workflow, args string) *ent.WorkflowRun {
	t.Helper()
	ctx := context.Background()
	run, _, err := f.engine.Start(ctx, workflow, json.RawMessage(args))
	require.NoError(t, err)
	return f.execExisting(t, run.ID)
}

// execExisting claims and executes an already dispatched run.
func (f *wfFixture) execExisting(t *testing.T, runID string) *ent.WorkflowRun {
	t.Helper()
	ctx := context.Background()
	now := time.Now()
	claimed, err := f.client.WorkflowRun.UpdateOneID(runID).
		SetState(workflowrun.StateRunning).
		SetPodID("pod-wf").
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	require.NoError(t, err)

	f.engine.Execute(ctx, claimed, &engine.Flags{})

	final, err := f.engine.Get(ctx, runID)
	require.NoError(t, err)
	return final
}

// collectEmits returns a terminal run's emit events in log order.
func (f *wfFixture) collectEmits(t *testing.T, runID string) []*engine.Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stream, err := f.engine.Stream(ctx, runID, 0, "")
	require.NoError(t, err)

	var emits []*engine.Event
	for ev := range stream {
		if ev.Kind == engine.KindEmit {
			emits = append(emits, ev)
		}
	}
	return emits
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

// analysisEnvelope builds a valid structured-analysis response with the
// required sections plus any extras.
func analysisEnvelope(t *testing.T, extras map[string]any) string {
	t.Helper()
	schema := []map[string]string{
		{"key": "tldr", "description": "essence", "type": "string"},
		{"key": "detailed_summary", "description": "full summary", "type": "string"},
		{"key": "transcript_corrections", "description": "fixes", "type": "string[]"},
	}
	analysis := map[string]any{
		"tldr":                   "a talk about Go",
		"detailed_summary":       "## Summary\n\nGo things.",
		"transcript_corrections": []string{},
	}
	for k, v := range extras {
		schema = append(schema, map[string]string{"key": k, "description": k, "type": "string[]"})
		analysis[k] = v
	}
	return mustJSON(t, map[string]any{
		"reasoning": "the content is a conference talk",
		"schema":    schema,
		"analysis":  analysis,
	})
}

func seedTranscript(t *testing.T, f *wfFixture, videoID string) {
	t.Helper()
	_, err := f.transcripts.SaveFetched(context.Background(), videoID, "GopherCon Talk", "GopherCon", "", []models.TranscriptSegment{
		{Start: 0, End: 5, Text: "welcome everyone"},
		{Start: 5, End: 11, Text: "today we talk about Go"},
	})
	require.NoError(t, err)
}

func TestFetchTranscript_ServesFromCache(t *testing.T) {
	f := newWorkflowFixture(t)
	seedTranscript(t, f, "dQw4w9WgXcQ")
	f.useTranscriptAPI(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("cached transcript must not hit the external API")
	})

	run := f.execRun(t, coordinator.WorkflowFetchTranscript, `{"videoId":"dQw4w9WgXcQ"}`)
	assert.Equal(t, workflowrun.StateCompleted, run.State)
	assert.JSONEq(t, `{"title":"GopherCon Talk","channelName":"GopherCon"}`, string(run.Result))

	emits := f.collectEmits(t, run.ID)
	require.NotEmpty(t, emits)
	last := emits[len(emits)-1]
	assert.Contains(t, string(last.Payload), `"type":"complete"`)
	assert.Contains(t, string(last.Payload), "GopherCon Talk")
}

func TestFetchTranscript_FetchesAndPersists(t *testing.T) {
	f := newWorkflowFixture(t)
	calls := 0
	f.useTranscriptAPI(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/transcripts", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		fmt.Fprint(w, mustJSON(t, []transcriptapi.Video{{
			ID:          "dQw4w9WgXcQ",
			Title:       "Fetched Talk",
			ChannelName: "Chan",
			Tracks: []transcriptapi.Track{
				{Language: "de", Transcript: []models.TranscriptSegment{
					{Start: 0, End: 2, Text: "hallo"}, {Start: 2, End: 4, Text: "welt"}, {Start: 4, End: 6, Text: "tschuss"},
				}},
				{Language: "en", Transcript: []models.TranscriptSegment{
					{Start: 0, End: 3, Text: "hello world"},
				}},
			},
		}}))
	})

	run := f.execRun(t, coordinator.WorkflowFetchTranscript, `{"videoId":"dQw4w9WgXcQ"}`)
	assert.Equal(t, workflowrun.StateCompleted, run.State)
	assert.Equal(t, 1, calls)

	saved, err := f.transcripts.GetCached(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "Fetched Talk", saved.Title)
	// The English track wins even when another track is longer.
	require.Len(t, saved.Segments, 1)
	assert.Equal(t, "hello world", saved.Segments[0].Text)
}

func TestFetchTranscript_EmptyTranscriptIsFatal(t *testing.T) {
	f := newWorkflowFixture(t)
	calls := 0
	f.useTranscriptAPI(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `[{"id":"dQw4w9WgXcQ","title":"Silent","channelName":"Chan","tracks":[]}]`)
	})

	run := f.execRun(t, coordinator.WorkflowFetchTranscript, `{"videoId":"dQw4w9WgXcQ"}`)
	assert.Equal(t, workflowrun.StateFailed, run.State)
	require.NotNil(t, run.ErrorMessage)
	assert.Contains(t, *run.ErrorMessage, "no caption segments")
	assert.Equal(t, 1, calls, "fatal responses must not be retried")
}

func TestPickTrack(t *testing.T) {
	en := []models.TranscriptSegment{{Text: "hello"}}
	long := []models.TranscriptSegment{{Text: "a"}, {Text: "b"}}

	got := pickTrack(&transcriptapi.Video{Tracks: []transcriptapi.Track{
		{Language: "de", Transcript: long},
		{Language: "en", Transcript: en},
	}})
	assert.Equal(t, en, got)

	got = pickTrack(&transcriptapi.Video{Tracks: []transcriptapi.Track{
		{Language: "de", Transcript: long},
		{Language: "fr", Transcript: en},
	}})
	assert.Equal(t, long, got)

	assert.Empty(t, pickTrack(&transcriptapi.Video{}))
}

func TestDynamicAnalysis_CompletesVersionAndStreams(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()
	seedTranscript(t, f, "dQw4w9WgXcQ")

	partial := `{"reasoning":"the content is"`
	f.llm.respond = func(req *llm.Request) []llm.Chunk {
		return []llm.Chunk{
			&llm.ObjectChunk{JSON: partial},
			&llm.ObjectChunk{JSON: analysisEnvelope(t, map[string]any{"key_points": []string{"generics"}})},
			&llm.DoneChunk{},
		}
	}

	d, err := f.coord.StartAnalysis(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	run := f.execExisting(t, d.RunID)
	assert.Equal(t, workflowrun.StateCompleted, run.State)
	assert.JSONEq(t, `{"version":1}`, string(run.Result))

	require.Equal(t, 1, f.llm.callCount())
	req := f.llm.call(0)
	assert.Equal(t, f.deps.LLMCfg.AnalysisModel, req.Model)
	assert.NotEmpty(t, req.ResponseSchema)
	assert.Contains(t, req.UserPrompt, "[00:00:00] welcome everyone")

	vr, err := f.analyses.GetVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", 1)
	require.NoError(t, err)
	assert.Equal(t, versionedrun.StatusCompleted, vr.Status)
	var analysis models.DynamicAnalysis
	require.NoError(t, json.Unmarshal(vr.ResultJSON, &analysis))
	assert.Len(t, analysis.Schema, 4)
	assert.Equal(t, "tldr", analysis.Analysis[0].Key)

	var sawPartial, sawResult bool
	for _, ev := range f.collectEmits(t, run.ID) {
		if ev.StepID == "run_llm#emit" {
			sawPartial = true
			assert.Contains(t, string(ev.Payload), `"type":"partial"`)
		}
		if ev.StepID == "#emit" && string(ev.Payload) != "" {
			var probe struct {
				Type string `json:"type"`
			}
			require.NoError(t, json.Unmarshal(ev.Payload, &probe))
			if probe.Type == models.EventTypeResult {
				sawResult = true
			}
		}
	}
	assert.True(t, sawPartial, "partial snapshots must stream")
	assert.True(t, sawResult, "the finished analysis must stream as a result event")
}

func TestDynamicAnalysis_MalformedLLMOutputIsFatal(t *testing.T) {
	f := newWorkflowFixture(t)
	seedTranscript(t, f, "dQw4w9WgXcQ")
	f.llm.respond = func(req *llm.Request) []llm.Chunk {
		return structuredResponse(`{"this is not": "an envelope"`)
	}

	d, err := f.coord.StartAnalysis(context.Background(), versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	run := f.execExisting(t, d.RunID)
	assert.Equal(t, workflowrun.StateFailed, run.State)
	require.NotNil(t, run.ErrorMessage)
	assert.Contains(t, *run.ErrorMessage, "malformed analysis")
	assert.Equal(t, 1, f.llm.callCount(), "malformed output must not be retried")
}

func TestDynamicAnalysis_MissingTranscriptIsFatal(t *testing.T) {
	f := newWorkflowFixture(t)

	d, err := f.coord.StartAnalysis(context.Background(), versionedrun.ResourceKindVideo, "jNQXAC9IVRw", "")
	require.NoError(t, err)
	run := f.execExisting(t, d.RunID)
	assert.Equal(t, workflowrun.StateFailed, run.State)
	require.NotNil(t, run.ErrorMessage)
	assert.Contains(t, *run.ErrorMessage, "fetch it first")
	assert.Equal(t, 0, f.llm.callCount())
}

func TestPerSlideAnalysis_AnalyzesPickedFrames(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()
	seedSlides(t, f, "dQw4w9WgXcQ", true)
	require.NoError(t, f.slides.SetFeedback(ctx, "dQw4w9WgXcQ", 0, true, false))
	require.NoError(t, f.slides.SetFeedback(ctx, "dQw4w9WgXcQ", 1, false, true))

	f.llm.respond = func(req *llm.Request) []llm.Chunk {
		return textResponse("## Slide\n\n", "content")
	}

	d, err := f.coord.StartPerSlideAnalysis(ctx, "dQw4w9WgXcQ", nil)
	require.NoError(t, err)
	run := f.execExisting(t, d.RunID)
	assert.Equal(t, workflowrun.StateCompleted, run.State)
	assert.JSONEq(t, `{"analyzedCount":2,"failedCount":0,"totalCount":2}`, string(run.Result))

	require.Equal(t, 2, f.llm.callCount())
	assert.Equal(t, f.deps.LLMCfg.SlideModel, f.llm.call(0).Model)
	assert.NotEmpty(t, f.llm.call(0).ImageURL)

	md, err := f.slides.GetSlideAnalysis(ctx, "dQw4w9WgXcQ", 0, models.FrameFirst)
	require.NoError(t, err)
	assert.Equal(t, "## Slide\n\ncontent", md.Markdown)

	var namespaces []string
	for _, ev := range f.collectEmits(t, run.ID) {
		if ev.Namespace != "" {
			namespaces = append(namespaces, ev.Namespace)
		}
	}
	assert.Contains(t, namespaces, "0-first")
	assert.Contains(t, namespaces, "1-last")
}

func TestPerSlideAnalysis_FrameWithoutImageIsTolerated(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()
	seedSlides(t, f, "dQw4w9WgXcQ", false)
	require.NoError(t, f.slides.SetFeedback(ctx, "dQw4w9WgXcQ", 0, true, false))
	require.NoError(t, f.slides.SetFeedback(ctx, "dQw4w9WgXcQ", 1, false, true))

	f.llm.respond = func(req *llm.Request) []llm.Chunk {
		return textResponse("## Slide")
	}

	d, err := f.coord.StartPerSlideAnalysis(ctx, "dQw4w9WgXcQ", nil)
	require.NoError(t, err)
	run := f.execExisting(t, d.RunID)
	assert.Equal(t, workflowrun.StateCompleted, run.State)
	assert.JSONEq(t, `{"analyzedCount":1,"failedCount":1,"totalCount":2}`, string(run.Result))

	var errorEmits []string
	for _, ev := range f.collectEmits(t, run.ID) {
		if ev.Namespace == "1-last" {
			errorEmits = append(errorEmits, string(ev.Payload))
		}
	}
	require.NotEmpty(t, errorEmits)
	assert.Contains(t, errorEmits[len(errorEmits)-1], `"type":"error"`)
}

func TestSuperAnalysis_SynthesizesReport(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()
	seedTranscript(t, f, "dQw4w9WgXcQ")
	seedSlides(t, f, "dQw4w9WgXcQ", true)
	require.NoError(t, f.slides.SetFeedback(ctx, "dQw4w9WgXcQ", 0, true, false))
	require.NoError(t, f.slides.UpsertSlideAnalysis(ctx, "dQw4w9WgXcQ", 0, models.FrameFirst, "## Agenda", "gemini-2.5-flash"))

	vr, err := f.analyses.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	require.NoError(t, f.analyses.Complete(ctx, vr.ID, json.RawMessage(`{"tldr":"a talk"}`)))

	f.llm.respond = func(req *llm.Request) []llm.Chunk {
		return textResponse("# Full Report\n\n", "everything woven together")
	}

	d, err := f.coord.StartSuperAnalysis(ctx, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	run := f.execExisting(t, d.RunID)
	assert.Equal(t, workflowrun.StateCompleted, run.State)
	assert.JSONEq(t, `{"version":1}`, string(run.Result))

	require.Equal(t, 1, f.llm.callCount())
	req := f.llm.call(0)
	assert.Equal(t, f.deps.LLMCfg.SynthesisModel, req.Model)
	assert.Contains(t, req.UserPrompt, "## Transcript")
	assert.Contains(t, req.UserPrompt, "## Transcript analysis")
	assert.Contains(t, req.UserPrompt, "### Slide 0 (first frame")
	assert.Contains(t, req.UserPrompt, "## Agenda")

	sa, err := f.analyses.GetSuperAnalysis(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "# Full Report\n\neverything woven together", sa.Markdown)

	super, err := f.analyses.GetVersion(ctx, versionedrun.ResourceKindSuper, "dQw4w9WgXcQ", 1)
	require.NoError(t, err)
	assert.Equal(t, versionedrun.StatusCompleted, super.Status)
	assert.Contains(t, string(super.ResultJSON), "# Full Report")
}

func TestSuperAnalysis_CachedReportSkipsLLM(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()
	require.NoError(t, f.analyses.SaveSuperAnalysis(ctx, "dQw4w9WgXcQ", "# Existing Report", "gemini-2.5-pro"))

	args := mustJSON(t, coordinator.AnalysisArgs{
		ResourceKind: string(versionedrun.ResourceKindSuper),
		ResourceID:   "dQw4w9WgXcQ",
	})
	run := f.execRun(t, coordinator.WorkflowSuperAnalysis, args)
	assert.Equal(t, workflowrun.StateCompleted, run.State)
	assert.Contains(t, string(run.Result), `"cached":true`)
	assert.Equal(t, 0, f.llm.callCount())

	// The run still produced a completed version carrying the report.
	super, err := f.analyses.GetLatestCompleted(ctx, versionedrun.ResourceKindSuper, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Contains(t, string(super.ResultJSON), "# Existing Report")
}

func TestSuperAnalysis_FanOutFillsMissingAnalyses(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()
	seedTranscript(t, f, "dQw4w9WgXcQ")
	seedSlides(t, f, "dQw4w9WgXcQ", true)
	require.NoError(t, f.slides.SetFeedback(ctx, "dQw4w9WgXcQ", 0, true, false))
	require.NoError(t, f.slides.SetFeedback(ctx, "dQw4w9WgXcQ", 1, false, true))

	f.llm.respond = func(req *llm.Request) []llm.Chunk {
		if req.ImageURL != "" {
			return textResponse("## Slide content")
		}
		return textResponse("# Report")
	}

	d, err := f.coord.StartSuperAnalysis(ctx, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	run := f.execExisting(t, d.RunID)
	assert.Equal(t, workflowrun.StateCompleted, run.State)

	// Two frame analyses plus one synthesis call.
	assert.Equal(t, 3, f.llm.callCount())
	for _, pos := range []struct {
		slide int
		frame string
	}{{0, models.FrameFirst}, {1, models.FrameLast}} {
		_, err := f.slides.GetSlideAnalysis(ctx, "dQw4w9WgXcQ", pos.slide, pos.frame)
		assert.NoError(t, err)
	}

	var sawAggregate bool
	for _, ev := range f.collectEmits(t, run.ID) {
		if strings.Contains(string(ev.Payload), `"type":"slide_analysis_progress"`) {
			sawAggregate = true
		}
	}
	assert.True(t, sawAggregate, "fan-out must emit aggregate progress")
}

func TestProcess_RunsTranscriptAndAnalysis(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	// Slides already extracted: the pipeline runs without a slides sub-run.
	claimed, _, err := f.slides.ClaimExtraction(ctx, "dQw4w9WgXcQ", "claim-x")
	require.NoError(t, err)
	require.True(t, claimed)
	require.NoError(t, f.slides.UpsertSlide(ctx, services.SlideUpsert{
		VideoID: "dQw4w9WgXcQ", SlideNumber: 0, EndSeconds: 10,
		First: services.FrameData{SourceURI: "s3://frames/0-first.webp"},
		Last:  services.FrameData{SourceURI: "s3://frames/0-last.webp"},
	}))
	require.NoError(t, f.slides.CompleteExtraction(ctx, "dQw4w9WgXcQ", 1))

	f.useTranscriptAPI(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, mustJSON(t, []transcriptapi.Video{{
			ID: "dQw4w9WgXcQ", Title: "Piped Talk", ChannelName: "Chan",
			Tracks: []transcriptapi.Track{{Language: "en", Transcript: []models.TranscriptSegment{
				{Start: 0, End: 4, Text: "hello from the pipeline"},
			}}},
		}}))
	})
	f.llm.respond = func(req *llm.Request) []llm.Chunk {
		return structuredResponse(analysisEnvelope(t, nil))
	}

	d, err := f.coord.StartProcess(ctx, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	run := f.execExisting(t, d.RunID)
	assert.Equal(t, workflowrun.StateCompleted, run.State)
	assert.JSONEq(t, `{"videoId":"dQw4w9WgXcQ"}`, string(run.Result))

	emits := f.collectEmits(t, run.ID)
	require.NotEmpty(t, emits)
	assert.Contains(t, string(emits[0].Payload), `"type":"meta"`)

	sources := map[string]bool{}
	for _, ev := range emits {
		if ev.Namespace != "" {
			sources[ev.Namespace] = true
		}
	}
	assert.True(t, sources[models.SourceTranscript], "transcript sub-stream must be namespaced")
	assert.True(t, sources[models.SourceAnalysis], "analysis sub-stream must be namespaced")

	// The embedded analysis allocated and completed its own version.
	vr, err := f.analyses.GetLatestCompleted(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, 1, vr.Version)

	saved, err := f.transcripts.GetCached(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "Piped Talk", saved.Title)
}

func TestDynamicAnalysis_SelfAllocatedVersionInResult(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()
	seedTranscript(t, f, "dQw4w9WgXcQ")
	f.llm.respond = func(req *llm.Request) []llm.Chunk {
		return structuredResponse(analysisEnvelope(t, nil))
	}

	// No pre-created version row: the run allocates one itself.
	args := mustJSON(t, coordinator.AnalysisArgs{
		ResourceKind: string(versionedrun.ResourceKindVideo),
		ResourceID:   "dQw4w9WgXcQ",
	})
	run := f.execRun(t, coordinator.WorkflowDynamicAnalysis, args)
	assert.Equal(t, workflowrun.StateCompleted, run.State)
	assert.JSONEq(t, `{"version":1}`, string(run.Result))

	vr, err := f.analyses.GetVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", 1)
	require.NoError(t, err)
	assert.Equal(t, versionedrun.StatusCompleted, vr.Status)
}

// execPendingAsync waits for a pending run of the given workflow, claims it as
// a second worker, and executes it. Safe to call from a goroutine.
func (f *wfFixture) execPendingAsync(workflow string) error {
	ctx := context.Background()
	deadline := time.Now().Add(10 * time.Second)
	for {
		run, err := f.client.WorkflowRun.Query().
			Where(workflowrun.WorkflowNameEQ(workflow), workflowrun.StateEQ(workflowrun.StatePending)).
			Only(ctx)
		switch {
		case err == nil:
			now := time.Now()
			claimed, cerr := f.client.WorkflowRun.UpdateOneID(run.ID).
				SetState(workflowrun.StateRunning).
				SetPodID("pod-wf-2").
				SetStartedAt(now).
				SetLastHeartbeatAt(now).
				Save(ctx)
			if cerr != nil {
				return cerr
			}
			f.engine.Execute(ctx, claimed, &engine.Flags{})
			return nil
		case !ent.IsNotFound(err):
			return err
		case time.Now().After(deadline):
			return fmt.Errorf("no pending %s run appeared", workflow)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestProcess_ForwardsSlideEvents(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	f.useExtractor(t, extractorScript{
		jobID: "job-12",
		frames: []string{
			`{"status":"extracting","progress":0.5,"message":"Detecting slides"}`,
			`{"status":"completed","metadata_uri":"s3://private/manifests/dQw4w9WgXcQ.json"}`,
		},
	})
	f.useObjectStores(t, map[string][]byte{
		"manifests/dQw4w9WgXcQ.json": []byte(testManifest),
		"frames/f0a.webp":            []byte("frame-f0a"),
		"frames/f0b.webp":            []byte("frame-f0b"),
		"frames/f1a.webp":            []byte("frame-f1a"),
	})
	f.useTranscriptAPI(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, mustJSON(t, []transcriptapi.Video{{
			ID: "dQw4w9WgXcQ", Title: "Forwarded Talk", ChannelName: "Chan",
			Tracks: []transcriptapi.Track{{Language: "en", Transcript: []models.TranscriptSegment{
				{Start: 0, End: 4, Text: "hello"},
			}}},
		}}))
	})
	f.llm.respond = func(req *llm.Request) []llm.Chunk {
		return structuredResponse(analysisEnvelope(t, nil))
	}

	d, err := f.coord.StartProcess(ctx, "dQw4w9WgXcQ", "")
	require.NoError(t, err)

	// The slides sub-run is dispatched mid-execution; a second worker picks it
	// up while the parent forwards its stream.
	workerErr := make(chan error, 1)
	go func() { workerErr <- f.execPendingAsync(coordinator.WorkflowSlideExtraction) }()

	run := f.execExisting(t, d.RunID)
	require.NoError(t, <-workerErr)
	assert.Equal(t, workflowrun.StateCompleted, run.State)
	assert.Contains(t, string(run.Result), `"slidesRunId"`)

	var forwardedSlides int
	for _, ev := range f.collectEmits(t, run.ID) {
		if ev.Namespace == models.SourceSlides && strings.Contains(string(ev.Payload), `"type":"slide"`) {
			forwardedSlides++
		}
	}
	assert.Equal(t, 2, forwardedSlides, "slide events must reach the parent stream")
}

// seedSlides claims an extraction and stores two slides. With images, every
// frame carries an uploaded URL; without, slide 1 has upload failures.
func seedSlides(t *testing.T, f *wfFixture, videoID string, withImages bool) {
	t.Helper()
	ctx := context.Background()
	claimed, _, err := f.slides.ClaimExtraction(ctx, videoID, "claim-seed")
	require.NoError(t, err)
	require.True(t, claimed)

	frame := func(n int, pos string, ok bool) services.FrameData {
		data := services.FrameData{
			SourceURI: fmt.Sprintf("s3://frames/%d-%s.webp", n, pos),
			HasText:   true,
		}
		if ok {
			url := fmt.Sprintf("https://cdn.test/slides/%s/%d-%s.webp", videoID, n, pos)
			data.ImageURL = &url
		} else {
			msg := "failed to upload frame: connection reset"
			data.UploadError = &msg
		}
		return data
	}

	require.NoError(t, f.slides.UpsertSlide(ctx, services.SlideUpsert{
		VideoID: videoID, SlideNumber: 0, StartSeconds: 0, EndSeconds: 30,
		First: frame(0, models.FrameFirst, true),
		Last:  frame(0, models.FrameLast, true),
	}))
	require.NoError(t, f.slides.UpsertSlide(ctx, services.SlideUpsert{
		VideoID: videoID, SlideNumber: 1, StartSeconds: 30, EndSeconds: 60,
		First: frame(1, models.FrameFirst, withImages),
		Last:  frame(1, models.FrameLast, withImages),
	}))
	require.NoError(t, f.slides.CompleteExtraction(ctx, videoID, 2))
}

