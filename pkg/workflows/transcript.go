package workflows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/recapd/recapd/pkg/coordinator"
	"github.com/recapd/recapd/pkg/engine"
	"github.com/recapd/recapd/pkg/models"
	"github.com/recapd/recapd/pkg/services"
	"github.com/recapd/recapd/pkg/transcriptapi"
)

// transcriptResult is the run result of fetch-transcript.
type transcriptResult struct {
	Title       string `json:"title"`
	ChannelName string `json:"channelName"`
}

// fetchTranscript fetches and caches a video's transcript. The cache hit
// path never touches the external API.
func (d *Deps) fetchTranscript(sc *engine.StepContext, args json.RawMessage) (any, error) {
	var a coordinator.VideoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, engine.Fatalf("invalid args: %v", err)
	}
	if a.VideoID == "" {
		return nil, engine.Fatal(errors.New("videoId is required"))
	}

	if err := sc.Emit(models.ProgressEvent{Type: models.EventTypeProgress, Message: "Checking transcript cache", Progress: 10}); err != nil {
		return nil, err
	}

	cached, err := engine.Step(sc, "check_cache", engine.StepOptions{}, func(ctx context.Context) (*models.TranscriptData, error) {
		t, err := d.Transcripts.GetCached(ctx, a.VideoID)
		if errors.Is(err, services.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &models.TranscriptData{
			VideoID:     t.VideoID,
			Title:       t.Title,
			ChannelName: t.ChannelName,
			Description: t.Description,
			Segments:    t.Segments,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	if cached != nil {
		if err := sc.Emit(models.ProgressEvent{Type: models.EventTypeProgress, Message: "Transcript found in database, skipping API call...", Progress: 50}); err != nil {
			return nil, err
		}
		if err := sc.Emit(models.CompleteEvent{Type: models.EventTypeComplete, Title: cached.Title, ChannelName: cached.ChannelName}); err != nil {
			return nil, err
		}
		return transcriptResult{Title: cached.Title, ChannelName: cached.ChannelName}, nil
	}

	if err := sc.Emit(models.ProgressEvent{Type: models.EventTypeProgress, Message: "Fetching transcript from API", Progress: 20}); err != nil {
		return nil, err
	}

	fetched, err := engine.Step(sc, "fetch_remote", engine.StepOptions{MaxRetries: 3}, func(ctx context.Context) (*models.TranscriptData, error) {
		video, err := d.TranscriptAPI.Fetch(ctx, a.VideoID)
		if err != nil {
			return nil, err
		}
		segments := pickTrack(video)
		if len(segments) == 0 {
			return nil, engine.Fatalf("transcript for video %s has no caption segments", a.VideoID)
		}
		return &models.TranscriptData{
			VideoID:     a.VideoID,
			Title:       video.Title,
			ChannelName: video.ChannelName,
			Description: video.Description,
			Segments:    segments,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	if err := sc.Emit(models.ProgressEvent{Type: models.EventTypeProgress, Message: "Transcript fetched", Progress: 50}); err != nil {
		return nil, err
	}

	if _, err := engine.Step(sc, "persist", engine.StepOptions{MaxRetries: 2}, func(ctx context.Context) (bool, error) {
		_, err := d.Transcripts.SaveFetched(ctx, fetched.VideoID, fetched.Title, fetched.ChannelName, fetched.Description, fetched.Segments)
		if err != nil {
			return false, fmt.Errorf("failed to persist transcript: %w", err)
		}
		return true, nil
	}); err != nil {
		return nil, err
	}

	if err := sc.Emit(models.ProgressEvent{Type: models.EventTypeProgress, Message: "Transcript saved", Progress: 80}); err != nil {
		return nil, err
	}
	if err := sc.Emit(models.CompleteEvent{Type: models.EventTypeComplete, Title: fetched.Title, ChannelName: fetched.ChannelName}); err != nil {
		return nil, err
	}

	return transcriptResult{Title: fetched.Title, ChannelName: fetched.ChannelName}, nil
}

// pickTrack chooses the caption track to store: English when present,
// otherwise the one with the most segments.
func pickTrack(video *transcriptapi.Video) []models.TranscriptSegment {
	var best []models.TranscriptSegment
	for _, track := range video.Tracks {
		if track.Language == "en" && len(track.Transcript) > 0 {
			return track.Transcript
		}
		if len(track.Transcript) > len(best) {
			best = track.Transcript
		}
	}
	return best
}
