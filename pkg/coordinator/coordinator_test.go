package coordinator

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/slideextraction"
	"github.com/recapd/recapd/ent/versionedrun"
	"github.com/recapd/recapd/ent/workflowrun"
	"github.com/recapd/recapd/pkg/config"
	"github.com/recapd/recapd/pkg/engine"
	"github.com/recapd/recapd/pkg/events"
	"github.com/recapd/recapd/pkg/services"
	"github.com/recapd/recapd/test/util"
)

type fixture struct {
	coord    *Coordinator
	engine   *engine.Engine
	analyses *services.AnalysisService
	slides   *services.SlideService
	client   *ent.Client
	db       *stdsql.DB
}

// newFixture wires a coordinator over a fresh schema, with no-op workflows
// registered under every dispatched name so engine.Start accepts them.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	log := engine.NewLog(client, db, events.NewBroker())
	eng := engine.New(client, db, log, config.DefaultEngineConfig())
	for _, name := range []string{
		WorkflowFetchTranscript,
		WorkflowDynamicAnalysis,
		WorkflowSlideExtraction,
		WorkflowPerSlideAnalysis,
		WorkflowSuperAnalysis,
		WorkflowProcess,
	} {
		eng.Register(name, func(sc *engine.StepContext, args json.RawMessage) (any, error) {
			return nil, nil
		})
	}

	transcripts := services.NewTranscriptService(client)
	analyses := services.NewAnalysisService(client)
	slides := services.NewSlideService(client)
	return &fixture{
		coord:    New(eng, transcripts, analyses, slides),
		engine:   eng,
		analyses: analyses,
		slides:   slides,
		client:   client,
		db:       db,
	}
}

func TestStartAnalysis_NewVersionStartsRun(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	d, err := f.coord.StartAnalysis(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	assert.Empty(t, d.Cached)
	assert.NotEmpty(t, d.RunID)
	assert.Equal(t, 1, d.Version)
	assert.False(t, d.Attached)

	// The version row carries the backing run.
	streaming, err := f.analyses.GetStreaming(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ")
	require.NoError(t, err)
	require.NotNil(t, streaming.WorkflowRunID)
	assert.Equal(t, d.RunID, *streaming.WorkflowRunID)

	run, err := f.engine.Get(ctx, d.RunID)
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StatePending, run.State)
}

func TestStartAnalysis_SecondDispatchAttaches(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.coord.StartAnalysis(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)

	second, err := f.coord.StartAnalysis(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	assert.True(t, second.Attached)
	assert.Equal(t, first.RunID, second.RunID)
	assert.Equal(t, first.Version, second.Version)
}

func TestStartAnalysis_CachedWithoutInstructions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	vr, err := f.analyses.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	require.NoError(t, f.analyses.Complete(ctx, vr.ID, json.RawMessage(`{"summary":"cached"}`)))

	d, err := f.coord.StartAnalysis(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"summary":"cached"}`, string(d.Cached))
	assert.Empty(t, d.RunID)
	assert.Equal(t, 1, d.Version)
}

func TestStartAnalysis_InstructionsBypassCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	vr, err := f.analyses.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	require.NoError(t, f.analyses.Complete(ctx, vr.ID, json.RawMessage(`{"summary":"cached"}`)))

	d, err := f.coord.StartAnalysis(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "focus on demos")
	require.NoError(t, err)
	assert.Empty(t, d.Cached)
	assert.NotEmpty(t, d.RunID)
	assert.Equal(t, 2, d.Version)
}

func TestDispatch_SelfHealsFailedBackingRun(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.coord.StartAnalysis(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)

	// The backing run fails without the version row catching up.
	require.NoError(t, f.client.WorkflowRun.UpdateOneID(first.RunID).
		SetState(workflowrun.StateFailed).
		SetErrorMessage("llm exploded").
		Exec(ctx))

	second, err := f.coord.StartAnalysis(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, 2, second.Version)

	healed, err := f.analyses.GetVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", 1)
	require.NoError(t, err)
	assert.Equal(t, versionedrun.StatusFailed, healed.Status)
	require.NotNil(t, healed.ErrorMessage)
	assert.Equal(t, "llm exploded", *healed.ErrorMessage)
}

func TestDispatch_ServesResultOfCompletedStreamingRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.coord.StartAnalysis(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)

	// Run completed and the artifact landed, but the status flip was lost.
	require.NoError(t, f.client.WorkflowRun.UpdateOneID(first.RunID).
		SetState(workflowrun.StateCompleted).
		Exec(ctx))
	streaming, err := f.analyses.GetStreaming(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ")
	require.NoError(t, err)
	require.NoError(t, f.client.VersionedRun.UpdateOneID(streaming.ID).
		SetResultJSON(json.RawMessage(`{"summary":"landed"}`)).
		Exec(ctx))

	d, err := f.coord.StartAnalysis(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"summary":"landed"}`, string(d.Cached))
}

func TestDispatch_UnattachedFreshRowAsksToRetry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// A concurrent dispatcher inserted the row but has not attached its run.
	_, err := f.analyses.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)

	_, err = f.coord.StartAnalysis(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "still being set up")
}

func TestDispatch_UnattachedStaleRowIsFailedAndReplaced(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	vr, err := f.analyses.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)

	// created_at is immutable through ent; backdate it directly.
	_, err = f.db.ExecContext(ctx,
		`UPDATE versioned_runs SET created_at = $1 WHERE id = $2`,
		time.Now().Add(-10*time.Minute), vr.ID)
	require.NoError(t, err)

	d, err := f.coord.StartAnalysis(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	assert.NotEmpty(t, d.RunID)
	assert.Equal(t, 2, d.Version)

	abandoned, err := f.analyses.GetVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", 1)
	require.NoError(t, err)
	assert.Equal(t, versionedrun.StatusFailed, abandoned.Status)
}

func TestStartSuperAnalysis_CacheAndRegenerate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	d, err := f.coord.StartSuperAnalysis(ctx, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	assert.NotEmpty(t, d.RunID, "no cached report yet, dispatch must start a run")

	require.NoError(t, f.analyses.SaveSuperAnalysis(ctx, "dQw4w9WgXcQ", "# Report", "gemini-1"))

	cached, err := f.coord.StartSuperAnalysis(ctx, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"markdown":"# Report"}`, string(cached.Cached))

	// Instructions force a regeneration attempt; the streaming row from the
	// first dispatch is still pending so the request attaches to it.
	regen, err := f.coord.StartSuperAnalysis(ctx, "dQw4w9WgXcQ", "make it shorter")
	require.NoError(t, err)
	assert.Empty(t, regen.Cached)
	assert.Equal(t, d.RunID, regen.RunID)
	assert.True(t, regen.Attached)
}

func TestStartTranscript_DedupesOntoActiveRun(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.coord.StartTranscript(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.False(t, first.Attached)

	second, err := f.coord.StartTranscript(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.True(t, second.Attached)
	assert.Equal(t, first.RunID, second.RunID)
}

func TestStartSlides_TwoPhaseClaim(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	d, err := f.coord.StartSlides(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.NotEmpty(t, d.RunID)
	assert.False(t, IsClaimToken(d.RunID), "dispatch must return the real run, not the placeholder")

	ex, err := f.slides.GetExtraction(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, slideextraction.StatusInProgress, ex.Status)
	require.NotNil(t, ex.RunID)
	assert.Equal(t, d.RunID, *ex.RunID)

	// A duplicate request gets the active run to attach to.
	_, err = f.coord.StartSlides(ctx, "dQw4w9WgXcQ")
	var active *SlidesActiveError
	require.ErrorAs(t, err, &active)
	assert.Equal(t, d.RunID, active.RunID)

	// Completed extraction refuses re-extraction.
	require.NoError(t, f.slides.UpsertSlide(ctx, services.SlideUpsert{
		VideoID: "dQw4w9WgXcQ", SlideNumber: 1,
		First: services.FrameData{SourceURI: "s3://frames/1f.png"},
		Last:  services.FrameData{SourceURI: "s3://frames/1l.png"},
	}))
	require.NoError(t, f.slides.CompleteExtraction(ctx, "dQw4w9WgXcQ", 1))
	_, err = f.coord.StartSlides(ctx, "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, ErrSlidesAlreadyExtracted)
}

func TestStartSlides_ReclaimAfterFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.coord.StartSlides(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	require.NoError(t, f.slides.FailExtraction(ctx, "dQw4w9WgXcQ", "extractor 503"))
	require.NoError(t, f.engine.Cancel(ctx, first.RunID))

	second, err := f.coord.StartSlides(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.NotEqual(t, first.RunID, second.RunID)

	ex, err := f.slides.GetExtraction(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, slideextraction.StatusInProgress, ex.Status)
	require.NotNil(t, ex.RunID)
	assert.Equal(t, second.RunID, *ex.RunID)
}

func TestStartPerSlideAnalysis_TargetsChangeTheRun(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	all, err := f.coord.StartPerSlideAnalysis(ctx, "dQw4w9WgXcQ", nil)
	require.NoError(t, err)

	// Same args dedupe; explicit targets are a different run.
	again, err := f.coord.StartPerSlideAnalysis(ctx, "dQw4w9WgXcQ", nil)
	require.NoError(t, err)
	assert.True(t, again.Attached)
	assert.Equal(t, all.RunID, again.RunID)

	targeted, err := f.coord.StartPerSlideAnalysis(ctx, "dQw4w9WgXcQ",
		json.RawMessage(`[{"slideNumber":1,"framePosition":"first"}]`))
	require.NoError(t, err)
	assert.NotEqual(t, all.RunID, targeted.RunID)
}

func TestResumeStreaming(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.coord.ResumeStreaming(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, services.ErrNotFound)

	started, err := f.coord.StartAnalysis(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)

	resumed, err := f.coord.ResumeStreaming(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, started.RunID, resumed.RunID)
	assert.True(t, resumed.Attached)
}

func TestIsClaimToken(t *testing.T) {
	assert.True(t, IsClaimToken("claim-3f2a"))
	assert.False(t, IsClaimToken("3f2a-claim"))
	assert.False(t, IsClaimToken(""))
}
