package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/pkg/models"
	"github.com/recapd/recapd/test/util"
)

func TestTranscriptService_SaveFetchedAndGetCached(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTranscriptService(client)
	ctx := context.Background()

	segments := []models.TranscriptSegment{
		{Start: 0, End: 4.5, Text: "welcome everyone"},
		{Start: 4.5, End: 9, Text: "today we talk about Go"},
	}
	saved, err := svc.SaveFetched(ctx, "dQw4w9WgXcQ", "GopherCon Talk", "GopherCon", "a talk", segments)
	require.NoError(t, err)
	assert.Equal(t, "GopherCon Talk", saved.Title)
	assert.Len(t, saved.Segments, 2)

	cached, err := svc.GetCached(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, cached.ID)
	assert.Equal(t, "today we talk about Go", cached.Segments[1].Text)
}

func TestTranscriptService_SaveFetchedUpsertsOnReplay(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTranscriptService(client)
	ctx := context.Background()

	segments := []models.TranscriptSegment{{Start: 0, End: 1, Text: "v1"}}
	_, err := svc.SaveFetched(ctx, "dQw4w9WgXcQ", "Title v1", "Chan", "", segments)
	require.NoError(t, err)

	updated, err := svc.SaveFetched(ctx, "dQw4w9WgXcQ", "Title v2", "Chan", "", segments)
	require.NoError(t, err)
	assert.Equal(t, "Title v2", updated.Title)

	n, err := client.Transcript.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTranscriptService_SaveFetchedRejectsEmptySegments(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTranscriptService(client)

	_, err := svc.SaveFetched(context.Background(), "dQw4w9WgXcQ", "Title", "Chan", "", nil)
	assert.True(t, IsValidationError(err))
}

func TestTranscriptService_GetCachedMiss(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTranscriptService(client)

	_, err := svc.GetCached(context.Background(), "jNQXAC9IVRw")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTranscriptService_ExternalRoundTrip(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTranscriptService(client)
	ctx := context.Background()

	created, err := svc.CreateExternal(ctx, "Meeting notes", "hello world transcript")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := svc.GetExternal(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Meeting notes", got.Title)
	assert.Equal(t, "hello world transcript", got.Content)

	_, err = svc.GetExternal(ctx, "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTranscriptService_CreateExternalRejectsBlankContent(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewTranscriptService(client)

	_, err := svc.CreateExternal(context.Background(), "Title", "   \n ")
	assert.True(t, IsValidationError(err))
}

func TestFormatSegments(t *testing.T) {
	out := FormatSegments([]models.TranscriptSegment{
		{Start: 0, Text: "intro"},
		{Start: 65, Text: "first point"},
		{Start: 3661, Text: "late point"},
	})
	assert.Equal(t, "[00:00:00] intro\n[00:01:05] first point\n[01:01:01] late point\n", out)
}

func TestFormatSegments_Empty(t *testing.T) {
	assert.Empty(t, FormatSegments(nil))
}
