package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/versionedrun"
	"github.com/recapd/recapd/test/util"
)

func newAnalysisService(t *testing.T) (*AnalysisService, *ent.Client) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	return NewAnalysisService(client), client
}

func TestAnalysisService_VersionsAreMonotone(t *testing.T) {
	svc, _ := newAnalysisService(t)
	ctx := context.Background()

	v1, err := svc.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	assert.Equal(t, 1, v1.Version)
	require.NoError(t, svc.Complete(ctx, v1.ID, json.RawMessage(`{"summary":"v1"}`)))

	v2, err := svc.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "focus on demos")
	require.NoError(t, err)
	assert.Equal(t, 2, v2.Version)
	require.NoError(t, svc.Fail(ctx, v2.ID, "llm unavailable"))

	// Failed versions still consume their number.
	v3, err := svc.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	assert.Equal(t, 3, v3.Version)
}

func TestAnalysisService_SingleStreamingPerResource(t *testing.T) {
	svc, _ := newAnalysisService(t)
	ctx := context.Background()

	first, err := svc.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)

	_, err = svc.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// A different resource or kind is unaffected.
	_, err = svc.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "jNQXAC9IVRw", "")
	require.NoError(t, err)
	_, err = svc.CreateStreamingVersion(ctx, versionedrun.ResourceKindSuper, "dQw4w9WgXcQ", "")
	require.NoError(t, err)

	// Completing the streaming row frees the resource for the next attempt.
	require.NoError(t, svc.Complete(ctx, first.ID, json.RawMessage(`{}`)))
	next, err := svc.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	assert.Equal(t, 2, next.Version)
}

func TestAnalysisService_ConcurrentCreatesYieldOneStreaming(t *testing.T) {
	svc, _ := newAnalysisService(t)
	ctx := context.Background()

	const racers = 8
	var wg sync.WaitGroup
	results := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrAlreadyExists)
		}
	}
	assert.Equal(t, 1, winners)

	streaming, err := svc.GetStreaming(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, versionedrun.StatusStreaming, streaming.Status)
}

func TestAnalysisService_AttachRunAndGetStreaming(t *testing.T) {
	svc, _ := newAnalysisService(t)
	ctx := context.Background()

	vr, err := svc.CreateStreamingVersion(ctx, versionedrun.ResourceKindTranscript, "tr-1", "")
	require.NoError(t, err)
	require.NoError(t, svc.AttachRun(ctx, vr.ID, "run-123", "analysis"))

	streaming, err := svc.GetStreaming(ctx, versionedrun.ResourceKindTranscript, "tr-1")
	require.NoError(t, err)
	require.NotNil(t, streaming.WorkflowRunID)
	assert.Equal(t, "run-123", *streaming.WorkflowRunID)
	assert.Equal(t, "analysis", streaming.Namespace)

	_, err = svc.GetStreaming(ctx, versionedrun.ResourceKindTranscript, "tr-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnalysisService_GetVersionRepairsStuckStreaming(t *testing.T) {
	svc, client := newAnalysisService(t)
	ctx := context.Background()

	vr, err := svc.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)

	// A crash between writing the artifact and flipping the status leaves a
	// streaming row that already has its result.
	require.NoError(t, client.VersionedRun.UpdateOneID(vr.ID).
		SetResultJSON(json.RawMessage(`{"summary":"done"}`)).
		Exec(ctx))

	got, err := svc.GetVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", vr.Version)
	require.NoError(t, err)
	assert.Equal(t, versionedrun.StatusCompleted, got.Status)

	// The repair is durable, not just view-level.
	row, err := client.VersionedRun.Get(ctx, vr.ID)
	require.NoError(t, err)
	assert.Equal(t, versionedrun.StatusCompleted, row.Status)
}

func TestAnalysisService_GetLatestCompleted(t *testing.T) {
	svc, _ := newAnalysisService(t)
	ctx := context.Background()

	_, err := svc.GetLatestCompleted(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, ErrNotFound)

	v1, err := svc.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	require.NoError(t, svc.Complete(ctx, v1.ID, json.RawMessage(`{"summary":"first"}`)))

	v2, err := svc.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	require.NoError(t, svc.Complete(ctx, v2.ID, json.RawMessage(`{"summary":"second"}`)))

	v3, err := svc.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	require.NoError(t, svc.Fail(ctx, v3.ID, "boom"))

	latest, err := svc.GetLatestCompleted(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, 2, latest.Version)
	assert.JSONEq(t, `{"summary":"second"}`, string(latest.ResultJSON))
}

func TestAnalysisService_ListVersionsNewestFirst(t *testing.T) {
	svc, _ := newAnalysisService(t)
	ctx := context.Background()

	v1, err := svc.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "")
	require.NoError(t, err)
	require.NoError(t, svc.AttachRun(ctx, v1.ID, "run-1", ""))
	require.NoError(t, svc.Complete(ctx, v1.ID, json.RawMessage(`{}`)))

	v2, err := svc.CreateStreamingVersion(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ", "shorter please")
	require.NoError(t, err)
	require.NoError(t, svc.Fail(ctx, v2.ID, "llm unavailable"))

	infos, err := svc.ListVersions(ctx, versionedrun.ResourceKindVideo, "dQw4w9WgXcQ")
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, 2, infos[0].Version)
	assert.Equal(t, "failed", infos[0].Status)
	assert.Equal(t, "shorter please", infos[0].AdditionalInstructions)
	assert.Equal(t, "llm unavailable", infos[0].ErrorMessage)
	assert.False(t, infos[0].HasResult)
	assert.Equal(t, 1, infos[1].Version)
	assert.Equal(t, "completed", infos[1].Status)
	assert.Equal(t, "run-1", infos[1].WorkflowRunID)
	assert.True(t, infos[1].HasResult)
}

func TestAnalysisService_SuperAnalysisUpsert(t *testing.T) {
	svc, _ := newAnalysisService(t)
	ctx := context.Background()

	_, err := svc.GetSuperAnalysis(ctx, "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.SaveSuperAnalysis(ctx, "dQw4w9WgXcQ", "# Report v1", "gemini-1"))
	sa, err := svc.GetSuperAnalysis(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "# Report v1", sa.Markdown)

	require.NoError(t, svc.SaveSuperAnalysis(ctx, "dQw4w9WgXcQ", "# Report v2", "gemini-2"))
	sa, err = svc.GetSuperAnalysis(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "# Report v2", sa.Markdown)
	assert.Equal(t, "gemini-2", sa.Model)
}
