package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/externaltranscript"
	"github.com/recapd/recapd/ent/transcript"
	"github.com/recapd/recapd/pkg/models"
)

// TranscriptService manages cached video transcripts and user-supplied
// external transcripts.
type TranscriptService struct {
	client *ent.Client
}

// NewTranscriptService creates a new TranscriptService.
func NewTranscriptService(client *ent.Client) *TranscriptService {
	return &TranscriptService{client: client}
}

// GetCached returns the cached transcript for a video.
func (s *TranscriptService) GetCached(ctx context.Context, videoID string) (*ent.Transcript, error) {
	t, err := s.client.Transcript.Query().
		Where(transcript.VideoIDEQ(videoID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cached transcript: %w", err)
	}
	return t, nil
}

// SaveFetched persists a transcript fetched from the external API. Upserts on
// video_id so the persisting step stays idempotent under replay.
func (s *TranscriptService) SaveFetched(ctx context.Context, videoID, title, channelName, description string, segments []models.TranscriptSegment) (*ent.Transcript, error) {
	if len(segments) == 0 {
		return nil, NewValidationError("Segments", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Transcript.Create().
		SetVideoID(videoID).
		SetTitle(title).
		SetChannelName(channelName).
		SetDescription(description).
		SetSegments(segments).
		SetFetchedAt(time.Now()).
		OnConflictColumns(transcript.FieldVideoID).
		UpdateNewValues().
		Exec(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to save transcript: %w", err)
	}

	return s.GetCached(ctx, videoID)
}

// CreateExternal stores a user-supplied transcript and returns its id.
func (s *TranscriptService) CreateExternal(ctx context.Context, title, content string) (*ent.ExternalTranscript, error) {
	if strings.TrimSpace(content) == "" {
		return nil, NewValidationError("Content", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t, err := s.client.ExternalTranscript.Create().
		SetID(uuid.New().String()).
		SetTitle(title).
		SetContent(content).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create external transcript: %w", err)
	}
	return t, nil
}

// GetExternal returns one external transcript.
func (s *TranscriptService) GetExternal(ctx context.Context, id string) (*ent.ExternalTranscript, error) {
	t, err := s.client.ExternalTranscript.Query().
		Where(externaltranscript.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get external transcript: %w", err)
	}
	return t, nil
}

// FormatSegments renders transcript segments as "[HH:MM:SS] text" lines, the
// form the analysis prompts consume.
func FormatSegments(segments []models.TranscriptSegment) string {
	var b strings.Builder
	for _, seg := range segments {
		total := int(seg.Start)
		fmt.Fprintf(&b, "[%02d:%02d:%02d] %s\n", total/3600, (total%3600)/60, total%60, seg.Text)
	}
	return b.String()
}
