package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/slide"
	"github.com/recapd/recapd/ent/slideanalysis"
	"github.com/recapd/recapd/ent/slideextraction"
	"github.com/recapd/recapd/ent/slidefeedback"
	"github.com/recapd/recapd/pkg/models"
)

// stuckExtractionThreshold is how long an in_progress extraction may sit
// without producing slides before reads fail it.
const stuckExtractionThreshold = 30 * time.Minute

// FrameData carries one frame's columns for a slide upsert.
type FrameData struct {
	ImageURL         *string
	SourceURI        string
	HasText          bool
	TextConfidence   *float64
	UploadError      *string
	DuplicateOfSlide *int
	DuplicateOfFrame *string
}

// SlideUpsert is the input for persisting one slide.
type SlideUpsert struct {
	VideoID      string
	SlideNumber  int
	StartSeconds float64
	EndSeconds   float64
	First        FrameData
	Last         FrameData
}

// SlideService manages extraction lifecycle rows, slides, frame feedback,
// and per-frame analyses.
type SlideService struct {
	client *ent.Client
}

// NewSlideService creates a new SlideService.
func NewSlideService(client *ent.Client) *SlideService {
	return &SlideService{client: client}
}

// GetExtraction returns a video's extraction row, applying read-repair for
// states a crash can leave behind:
//   - in_progress with slides persisted → completed (the finalizing write
//     was lost)
//   - completed with no slides → failed, data inconsistency
//   - in_progress with no slides and no progress for 30 minutes → failed
func (s *SlideService) GetExtraction(ctx context.Context, videoID string) (*ent.SlideExtraction, error) {
	ex, err := s.client.SlideExtraction.Query().
		Where(slideextraction.VideoIDEQ(videoID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get slide extraction: %w", err)
	}
	return s.repairExtraction(ctx, ex)
}

func (s *SlideService) repairExtraction(ctx context.Context, ex *ent.SlideExtraction) (*ent.SlideExtraction, error) {
	if ex.Status != slideextraction.StatusInProgress && ex.Status != slideextraction.StatusCompleted {
		return ex, nil
	}

	count, err := s.client.Slide.Query().
		Where(slide.VideoIDEQ(ex.VideoID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count slides: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch {
	case ex.Status == slideextraction.StatusInProgress && count > 0:
		slog.Warn("Repairing in-progress extraction that already has slides",
			"video_id", ex.VideoID, "slides", count)
		repaired, err := s.client.SlideExtraction.UpdateOneID(ex.ID).
			SetStatus(slideextraction.StatusCompleted).
			SetTotalSlides(count).
			Save(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to repair extraction: %w", err)
		}
		return repaired, nil

	case ex.Status == slideextraction.StatusCompleted && count == 0:
		slog.Warn("Repairing completed extraction with no slides", "video_id", ex.VideoID)
		repaired, err := s.client.SlideExtraction.UpdateOneID(ex.ID).
			SetStatus(slideextraction.StatusFailed).
			SetErrorMessage("slide data inconsistency: extraction completed but no slides stored").
			Save(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to repair extraction: %w", err)
		}
		return repaired, nil

	case ex.Status == slideextraction.StatusInProgress && time.Since(ex.UpdatedAt) > stuckExtractionThreshold:
		slog.Warn("Failing stale in-progress extraction", "video_id", ex.VideoID)
		repaired, err := s.client.SlideExtraction.UpdateOneID(ex.ID).
			SetStatus(slideextraction.StatusFailed).
			SetErrorMessage("extraction timed out: no progress for 30 minutes").
			Save(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to repair extraction: %w", err)
		}
		return repaired, nil
	}

	return ex, nil
}

// ClaimExtraction attempts to take ownership of a video's extraction. The
// row's run_id doubles as the claim: it is CAS-updated to the given token
// while the status moves to in_progress. Exactly one concurrent caller wins;
// losers get the current row back for attaching.
func (s *SlideService) ClaimExtraction(ctx context.Context, videoID, claimToken string) (bool, *ent.SlideExtraction, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Make sure the row exists; losers race straight past this.
	err := s.client.SlideExtraction.Create().
		SetVideoID(videoID).
		SetStatus(slideextraction.StatusIdle).
		OnConflictColumns(slideextraction.FieldVideoID).
		DoNothing().
		Exec(writeCtx)
	if err != nil && !ent.IsConstraintError(err) {
		return false, nil, fmt.Errorf("failed to ensure extraction row: %w", err)
	}

	n, err := s.client.SlideExtraction.Update().
		Where(
			slideextraction.VideoIDEQ(videoID),
			slideextraction.StatusIn(slideextraction.StatusIdle, slideextraction.StatusFailed),
		).
		SetStatus(slideextraction.StatusInProgress).
		SetRunID(claimToken).
		ClearErrorMessage().
		SetTotalSlides(0).Save(writeCtx)
	if err != nil {
		return false, nil, fmt.Errorf("failed to claim extraction: %w", err)
	}

	ex, err := s.GetExtraction(ctx, videoID)
	if err != nil {
		return false, nil, err
	}
	return n > 0, ex, nil
}

// SetExtractionRun replaces the claim token with the real engine run id.
func (s *SlideService) SetExtractionRun(ctx context.Context, videoID, runID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.SlideExtraction.Update().
		Where(slideextraction.VideoIDEQ(videoID)).
		SetRunID(runID).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to set extraction run: %w", err)
	}
	return nil
}

// CompleteExtraction finalizes a successful extraction.
func (s *SlideService) CompleteExtraction(ctx context.Context, videoID string, totalSlides int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.SlideExtraction.Update().
		Where(slideextraction.VideoIDEQ(videoID)).
		SetStatus(slideextraction.StatusCompleted).
		SetTotalSlides(totalSlides).
		ClearErrorMessage().
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to complete extraction: %w", err)
	}
	return nil
}

// FailExtraction marks an extraction as failed.
func (s *SlideService) FailExtraction(ctx context.Context, videoID, message string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.SlideExtraction.Update().
		Where(slideextraction.VideoIDEQ(videoID)).
		SetStatus(slideextraction.StatusFailed).
		SetErrorMessage(message).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to fail extraction: %w", err)
	}
	return nil
}

// UpsertSlide persists one slide, idempotently on (video_id, slide_number).
func (s *SlideService) UpsertSlide(ctx context.Context, in SlideUpsert) error {
	if in.First.DuplicateOfSlide != nil && *in.First.DuplicateOfSlide >= in.SlideNumber {
		return NewValidationError("First.DuplicateOfSlide", "must reference an earlier slide")
	}
	if in.Last.DuplicateOfSlide != nil && *in.Last.DuplicateOfSlide >= in.SlideNumber {
		return NewValidationError("Last.DuplicateOfSlide", "must reference an earlier slide")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.Slide.Create().
		SetVideoID(in.VideoID).
		SetSlideNumber(in.SlideNumber).
		SetStartSeconds(in.StartSeconds).
		SetEndSeconds(in.EndSeconds).
		SetFirstSourceURI(in.First.SourceURI).
		SetFirstHasText(in.First.HasText).
		SetNillableFirstImageURL(in.First.ImageURL).
		SetNillableFirstTextConfidence(in.First.TextConfidence).
		SetNillableFirstUploadError(in.First.UploadError).
		SetNillableFirstDuplicateOfSlide(in.First.DuplicateOfSlide).
		SetNillableFirstDuplicateOfFrame(in.First.DuplicateOfFrame).
		SetLastSourceURI(in.Last.SourceURI).
		SetLastHasText(in.Last.HasText).
		SetNillableLastImageURL(in.Last.ImageURL).
		SetNillableLastTextConfidence(in.Last.TextConfidence).
		SetNillableLastUploadError(in.Last.UploadError).
		SetNillableLastDuplicateOfSlide(in.Last.DuplicateOfSlide).
		SetNillableLastDuplicateOfFrame(in.Last.DuplicateOfFrame)

	err := create.
		OnConflictColumns(slide.FieldVideoID, slide.FieldSlideNumber).
		UpdateNewValues().
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to upsert slide %d: %w", in.SlideNumber, err)
	}
	return nil
}

// GetSlide returns one slide.
func (s *SlideService) GetSlide(ctx context.Context, videoID string, slideNumber int) (*ent.Slide, error) {
	sl, err := s.client.Slide.Query().
		Where(slide.VideoIDEQ(videoID), slide.SlideNumberEQ(slideNumber)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get slide: %w", err)
	}
	return sl, nil
}

// ListSlides returns a video's slides in order, joined with feedback picks
// and stored analyses.
func (s *SlideService) ListSlides(ctx context.Context, videoID string) ([]models.SlideDetail, error) {
	slides, err := s.client.Slide.Query().
		Where(slide.VideoIDEQ(videoID)).
		Order(ent.Asc(slide.FieldSlideNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list slides: %w", err)
	}

	feedback, err := s.client.SlideFeedback.Query().
		Where(slidefeedback.VideoIDEQ(videoID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list slide feedback: %w", err)
	}
	picks := make(map[int]*ent.SlideFeedback, len(feedback))
	for _, fb := range feedback {
		picks[fb.SlideNumber] = fb
	}

	analyses, err := s.client.SlideAnalysis.Query().
		Where(slideanalysis.VideoIDEQ(videoID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list slide analyses: %w", err)
	}
	markdown := make(map[int]map[string]string)
	for _, sa := range analyses {
		if markdown[sa.SlideNumber] == nil {
			markdown[sa.SlideNumber] = make(map[string]string)
		}
		markdown[sa.SlideNumber][string(sa.FramePosition)] = sa.Markdown
	}

	details := make([]models.SlideDetail, 0, len(slides))
	for _, sl := range slides {
		detail := models.SlideDetail{
			SlideRecord: ToSlideRecord(sl),
			Analyses:    markdown[sl.SlideNumber],
		}
		if fb, ok := picks[sl.SlideNumber]; ok {
			detail.IsFirstFramePicked = fb.IsFirstFramePicked
			detail.IsLastFramePicked = fb.IsLastFramePicked
		}
		details = append(details, detail)
	}
	return details, nil
}

// SetFeedback upserts the user's frame picks for one slide.
func (s *SlideService) SetFeedback(ctx context.Context, videoID string, slideNumber int, firstPicked, lastPicked bool) error {
	if _, err := s.GetSlide(ctx, videoID, slideNumber); err != nil {
		return err
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.SlideFeedback.Create().
		SetVideoID(videoID).
		SetSlideNumber(slideNumber).
		SetIsFirstFramePicked(firstPicked).
		SetIsLastFramePicked(lastPicked).
		OnConflictColumns(slidefeedback.FieldVideoID, slidefeedback.FieldSlideNumber).
		UpdateNewValues().
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to set slide feedback: %w", err)
	}
	return nil
}

// ListPickedTargets derives the analysis targets from the user's picks, in
// slide order with first before last.
func (s *SlideService) ListPickedTargets(ctx context.Context, videoID string) ([]models.AnalysisTarget, error) {
	feedback, err := s.client.SlideFeedback.Query().
		Where(slidefeedback.VideoIDEQ(videoID)).
		Order(ent.Asc(slidefeedback.FieldSlideNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list slide feedback: %w", err)
	}

	var targets []models.AnalysisTarget
	for _, fb := range feedback {
		if fb.IsFirstFramePicked {
			targets = append(targets, models.AnalysisTarget{SlideNumber: fb.SlideNumber, FramePosition: models.FrameFirst})
		}
		if fb.IsLastFramePicked {
			targets = append(targets, models.AnalysisTarget{SlideNumber: fb.SlideNumber, FramePosition: models.FrameLast})
		}
	}
	return targets, nil
}

// UpsertSlideAnalysis stores the markdown for one frame of one slide.
func (s *SlideService) UpsertSlideAnalysis(ctx context.Context, videoID string, slideNumber int, framePosition, markdown, model string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.SlideAnalysis.Create().
		SetVideoID(videoID).
		SetSlideNumber(slideNumber).
		SetFramePosition(slideanalysis.FramePosition(framePosition)).
		SetMarkdown(markdown).
		SetModel(model).
		OnConflictColumns(
			slideanalysis.FieldVideoID,
			slideanalysis.FieldSlideNumber,
			slideanalysis.FieldFramePosition,
		).
		UpdateNewValues().
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to upsert slide analysis: %w", err)
	}
	return nil
}

// GetSlideAnalysis returns the stored markdown for one frame, if any.
func (s *SlideService) GetSlideAnalysis(ctx context.Context, videoID string, slideNumber int, framePosition string) (*ent.SlideAnalysis, error) {
	sa, err := s.client.SlideAnalysis.Query().
		Where(
			slideanalysis.VideoIDEQ(videoID),
			slideanalysis.SlideNumberEQ(slideNumber),
			slideanalysis.FramePositionEQ(slideanalysis.FramePosition(framePosition)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get slide analysis: %w", err)
	}
	return sa, nil
}

// ListSlideAnalyses returns all stored frame analyses for a video.
func (s *SlideService) ListSlideAnalyses(ctx context.Context, videoID string) ([]*ent.SlideAnalysis, error) {
	analyses, err := s.client.SlideAnalysis.Query().
		Where(slideanalysis.VideoIDEQ(videoID)).
		Order(ent.Asc(slideanalysis.FieldSlideNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list slide analyses: %w", err)
	}
	return analyses, nil
}

// ToSlideRecord converts an ent row to the client-facing shape.
func ToSlideRecord(sl *ent.Slide) models.SlideRecord {
	rec := models.SlideRecord{
		VideoID:      sl.VideoID,
		SlideNumber:  sl.SlideNumber,
		StartSeconds: sl.StartSeconds,
		EndSeconds:   sl.EndSeconds,
		CreatedAt:    sl.CreatedAt,
		First: models.FrameRecord{
			SourceURI:      sl.FirstSourceURI,
			HasText:        sl.FirstHasText,
			TextConfidence: sl.FirstTextConfidence,
		},
		Last: models.FrameRecord{
			SourceURI:      sl.LastSourceURI,
			HasText:        sl.LastHasText,
			TextConfidence: sl.LastTextConfidence,
		},
	}
	if sl.FirstImageURL != nil {
		rec.First.ImageURL = *sl.FirstImageURL
	}
	if sl.FirstUploadError != nil {
		rec.First.UploadError = *sl.FirstUploadError
	}
	rec.First.DuplicateOfSlide = sl.FirstDuplicateOfSlide
	if sl.FirstDuplicateOfFrame != nil {
		rec.First.DuplicateOfFrame = *sl.FirstDuplicateOfFrame
	}
	if sl.LastImageURL != nil {
		rec.Last.ImageURL = *sl.LastImageURL
	}
	if sl.LastUploadError != nil {
		rec.Last.UploadError = *sl.LastUploadError
	}
	rec.Last.DuplicateOfSlide = sl.LastDuplicateOfSlide
	if sl.LastDuplicateOfFrame != nil {
		rec.Last.DuplicateOfFrame = *sl.LastDuplicateOfFrame
	}
	return rec
}
