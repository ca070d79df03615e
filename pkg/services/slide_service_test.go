package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/slideextraction"
	"github.com/recapd/recapd/pkg/models"
	"github.com/recapd/recapd/test/util"
)

func newSlideService(t *testing.T) (*SlideService, *ent.Client) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	return NewSlideService(client), client
}

func strPtr(s string) *string   { return &s }
func intPtr(i int) *int         { return &i }
func f64Ptr(f float64) *float64 { return &f }

func sampleSlide(videoID string, n int) SlideUpsert {
	return SlideUpsert{
		VideoID:      videoID,
		SlideNumber:  n,
		StartSeconds: float64(n * 30),
		EndSeconds:   float64(n*30 + 30),
		First: FrameData{
			ImageURL:       strPtr("https://cdn.example.com/first.png"),
			SourceURI:      "s3://frames/first.png",
			HasText:        true,
			TextConfidence: f64Ptr(0.92),
		},
		Last: FrameData{
			ImageURL:  strPtr("https://cdn.example.com/last.png"),
			SourceURI: "s3://frames/last.png",
			HasText:   false,
		},
	}
}

func TestSlideService_ClaimExtractionSingleWinner(t *testing.T) {
	svc, _ := newSlideService(t)
	ctx := context.Background()

	const racers = 6
	var wg sync.WaitGroup
	wins := make([]bool, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			won, _, err := svc.ClaimExtraction(ctx, "dQw4w9WgXcQ", "claim-token")
			require.NoError(t, err)
			wins[i] = won
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, won := range wins {
		if won {
			winners++
		}
	}
	assert.Equal(t, 1, winners)

	ex, err := svc.GetExtraction(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, slideextraction.StatusInProgress, ex.Status)
	require.NotNil(t, ex.RunID)
	assert.Equal(t, "claim-token", *ex.RunID)
}

func TestSlideService_ClaimExtractionReclaimableAfterFailure(t *testing.T) {
	svc, _ := newSlideService(t)
	ctx := context.Background()

	won, _, err := svc.ClaimExtraction(ctx, "dQw4w9WgXcQ", "claim-1")
	require.NoError(t, err)
	require.True(t, won)

	// In-progress extraction cannot be claimed again.
	won, ex, err := svc.ClaimExtraction(ctx, "dQw4w9WgXcQ", "claim-2")
	require.NoError(t, err)
	assert.False(t, won)
	require.NotNil(t, ex.RunID)
	assert.Equal(t, "claim-1", *ex.RunID)

	require.NoError(t, svc.FailExtraction(ctx, "dQw4w9WgXcQ", "extractor unavailable"))

	won, _, err = svc.ClaimExtraction(ctx, "dQw4w9WgXcQ", "claim-3")
	require.NoError(t, err)
	assert.True(t, won, "failed extractions must be retryable")
}

func TestSlideService_ExtractionLifecycle(t *testing.T) {
	svc, _ := newSlideService(t)
	ctx := context.Background()

	won, _, err := svc.ClaimExtraction(ctx, "dQw4w9WgXcQ", "claim-abc")
	require.NoError(t, err)
	require.True(t, won)

	require.NoError(t, svc.SetExtractionRun(ctx, "dQw4w9WgXcQ", "run-real"))
	require.NoError(t, svc.UpsertSlide(ctx, sampleSlide("dQw4w9WgXcQ", 1)))
	require.NoError(t, svc.UpsertSlide(ctx, sampleSlide("dQw4w9WgXcQ", 2)))
	require.NoError(t, svc.CompleteExtraction(ctx, "dQw4w9WgXcQ", 2))

	ex, err := svc.GetExtraction(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, slideextraction.StatusCompleted, ex.Status)
	assert.Equal(t, 2, ex.TotalSlides)
	require.NotNil(t, ex.RunID)
	assert.Equal(t, "run-real", *ex.RunID)
}

func TestSlideService_GetExtractionRepairsInProgressWithSlides(t *testing.T) {
	svc, _ := newSlideService(t)
	ctx := context.Background()

	won, _, err := svc.ClaimExtraction(ctx, "dQw4w9WgXcQ", "claim-abc")
	require.NoError(t, err)
	require.True(t, won)
	require.NoError(t, svc.UpsertSlide(ctx, sampleSlide("dQw4w9WgXcQ", 1)))

	// The completing write was lost; the read repairs it.
	ex, err := svc.GetExtraction(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, slideextraction.StatusCompleted, ex.Status)
	assert.Equal(t, 1, ex.TotalSlides)
}

func TestSlideService_GetExtractionRepairsCompletedWithoutSlides(t *testing.T) {
	svc, _ := newSlideService(t)
	ctx := context.Background()

	won, _, err := svc.ClaimExtraction(ctx, "dQw4w9WgXcQ", "claim-abc")
	require.NoError(t, err)
	require.True(t, won)
	require.NoError(t, svc.CompleteExtraction(ctx, "dQw4w9WgXcQ", 5))

	ex, err := svc.GetExtraction(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, slideextraction.StatusFailed, ex.Status)
	require.NotNil(t, ex.ErrorMessage)
	assert.Contains(t, *ex.ErrorMessage, "inconsistency")
}

func TestSlideService_GetExtractionFailsStaleInProgress(t *testing.T) {
	svc, client := newSlideService(t)
	ctx := context.Background()

	won, ex, err := svc.ClaimExtraction(ctx, "dQw4w9WgXcQ", "claim-abc")
	require.NoError(t, err)
	require.True(t, won)

	// Backdate the row past the stuck threshold.
	_, err = client.SlideExtraction.UpdateOneID(ex.ID).
		SetUpdatedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	repaired, err := svc.GetExtraction(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, slideextraction.StatusFailed, repaired.Status)
	require.NotNil(t, repaired.ErrorMessage)
	assert.Contains(t, *repaired.ErrorMessage, "timed out")
}

func TestSlideService_UpsertSlideIsIdempotent(t *testing.T) {
	svc, client := newSlideService(t)
	ctx := context.Background()

	in := sampleSlide("dQw4w9WgXcQ", 1)
	require.NoError(t, svc.UpsertSlide(ctx, in))

	in.First.ImageURL = strPtr("https://cdn.example.com/first-v2.png")
	require.NoError(t, svc.UpsertSlide(ctx, in))

	n, err := client.Slide.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	sl, err := svc.GetSlide(ctx, "dQw4w9WgXcQ", 1)
	require.NoError(t, err)
	require.NotNil(t, sl.FirstImageURL)
	assert.Equal(t, "https://cdn.example.com/first-v2.png", *sl.FirstImageURL)
}

func TestSlideService_UpsertSlideRejectsForwardDuplicateRef(t *testing.T) {
	svc, _ := newSlideService(t)

	in := sampleSlide("dQw4w9WgXcQ", 2)
	in.First.DuplicateOfSlide = intPtr(3)
	in.First.DuplicateOfFrame = strPtr(models.FrameFirst)
	err := svc.UpsertSlide(context.Background(), in)
	assert.True(t, IsValidationError(err), "duplicate references must point backwards")
}

func TestSlideService_FeedbackAndPickedTargets(t *testing.T) {
	svc, _ := newSlideService(t)
	ctx := context.Background()

	for n := 1; n <= 3; n++ {
		require.NoError(t, svc.UpsertSlide(ctx, sampleSlide("dQw4w9WgXcQ", n)))
	}

	require.NoError(t, svc.SetFeedback(ctx, "dQw4w9WgXcQ", 1, true, false))
	require.NoError(t, svc.SetFeedback(ctx, "dQw4w9WgXcQ", 2, true, true))
	require.NoError(t, svc.SetFeedback(ctx, "dQw4w9WgXcQ", 3, false, false))

	targets, err := svc.ListPickedTargets(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, []models.AnalysisTarget{
		{SlideNumber: 1, FramePosition: models.FrameFirst},
		{SlideNumber: 2, FramePosition: models.FrameFirst},
		{SlideNumber: 2, FramePosition: models.FrameLast},
	}, targets)

	// Re-submitting replaces the picks.
	require.NoError(t, svc.SetFeedback(ctx, "dQw4w9WgXcQ", 2, false, true))
	targets, err = svc.ListPickedTargets(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, []models.AnalysisTarget{
		{SlideNumber: 1, FramePosition: models.FrameFirst},
		{SlideNumber: 2, FramePosition: models.FrameLast},
	}, targets)
}

func TestSlideService_SetFeedbackRequiresSlide(t *testing.T) {
	svc, _ := newSlideService(t)
	err := svc.SetFeedback(context.Background(), "dQw4w9WgXcQ", 7, true, false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSlideService_SlideAnalysisUpsertAndGet(t *testing.T) {
	svc, _ := newSlideService(t)
	ctx := context.Background()

	require.NoError(t, svc.UpsertSlide(ctx, sampleSlide("dQw4w9WgXcQ", 1)))
	require.NoError(t, svc.UpsertSlideAnalysis(ctx, "dQw4w9WgXcQ", 1, models.FrameFirst, "# Slide 1", "gemini-1"))

	sa, err := svc.GetSlideAnalysis(ctx, "dQw4w9WgXcQ", 1, models.FrameFirst)
	require.NoError(t, err)
	assert.Equal(t, "# Slide 1", sa.Markdown)

	_, err = svc.GetSlideAnalysis(ctx, "dQw4w9WgXcQ", 1, models.FrameLast)
	assert.ErrorIs(t, err, ErrNotFound)

	// Regeneration overwrites in place.
	require.NoError(t, svc.UpsertSlideAnalysis(ctx, "dQw4w9WgXcQ", 1, models.FrameFirst, "# Slide 1 v2", "gemini-2"))
	sa, err = svc.GetSlideAnalysis(ctx, "dQw4w9WgXcQ", 1, models.FrameFirst)
	require.NoError(t, err)
	assert.Equal(t, "# Slide 1 v2", sa.Markdown)

	all, err := svc.ListSlideAnalyses(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSlideService_ListSlidesJoinsFeedbackAndAnalyses(t *testing.T) {
	svc, _ := newSlideService(t)
	ctx := context.Background()

	require.NoError(t, svc.UpsertSlide(ctx, sampleSlide("dQw4w9WgXcQ", 1)))
	require.NoError(t, svc.UpsertSlide(ctx, sampleSlide("dQw4w9WgXcQ", 2)))
	require.NoError(t, svc.SetFeedback(ctx, "dQw4w9WgXcQ", 1, true, false))
	require.NoError(t, svc.UpsertSlideAnalysis(ctx, "dQw4w9WgXcQ", 1, models.FrameFirst, "# One", "gemini-1"))

	details, err := svc.ListSlides(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	require.Len(t, details, 2)

	assert.Equal(t, 1, details[0].SlideNumber)
	assert.True(t, details[0].IsFirstFramePicked)
	assert.False(t, details[0].IsLastFramePicked)
	assert.Equal(t, "# One", details[0].Analyses[models.FrameFirst])
	assert.Equal(t, "https://cdn.example.com/first.png", details[0].First.ImageURL)

	assert.Equal(t, 2, details[1].SlideNumber)
	assert.False(t, details[1].IsFirstFramePicked)
	assert.Empty(t, details[1].Analyses)
}

func TestToSlideRecord_CarriesDuplicateMarkers(t *testing.T) {
	svc, _ := newSlideService(t)
	ctx := context.Background()

	require.NoError(t, svc.UpsertSlide(ctx, sampleSlide("dQw4w9WgXcQ", 1)))
	dup := sampleSlide("dQw4w9WgXcQ", 2)
	dup.Last.ImageURL = nil
	dup.Last.DuplicateOfSlide = intPtr(1)
	dup.Last.DuplicateOfFrame = strPtr(models.FrameFirst)
	require.NoError(t, svc.UpsertSlide(ctx, dup))

	sl, err := svc.GetSlide(ctx, "dQw4w9WgXcQ", 2)
	require.NoError(t, err)
	rec := ToSlideRecord(sl)
	assert.Empty(t, rec.Last.ImageURL)
	require.NotNil(t, rec.Last.DuplicateOfSlide)
	assert.Equal(t, 1, *rec.Last.DuplicateOfSlide)
	assert.Equal(t, models.FrameFirst, rec.Last.DuplicateOfFrame)
}
