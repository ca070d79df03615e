package workflows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/recapd/recapd/pkg/coordinator"
	"github.com/recapd/recapd/pkg/engine"
	"github.com/recapd/recapd/pkg/extractor"
	"github.com/recapd/recapd/pkg/models"
	"github.com/recapd/recapd/pkg/services"
)

// slidesResult is the run result of slide-extraction.
type slidesResult struct {
	TotalSlides int `json:"totalSlides"`
}

// slideExtraction drives the external extractor and persists its output:
// trigger, follow the job stream, fetch the manifest, then upload frames and
// store slides. Every persisting action is idempotent (deterministic blob
// keys, upserts) so replay after a crash re-does only unfinished work.
func (d *Deps) slideExtraction(sc *engine.StepContext, args json.RawMessage) (any, error) {
	var a coordinator.VideoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, engine.Fatalf("invalid args: %v", err)
	}
	if a.VideoID == "" {
		return nil, engine.Fatal(errors.New("videoId is required"))
	}

	result, err := d.runSlideExtraction(sc, a.VideoID)
	if err != nil {
		if !engine.IsInterrupt(err) {
			failCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if ferr := d.Slides.FailExtraction(failCtx, a.VideoID, err.Error()); ferr != nil {
				slog.Error("Failed to record extraction failure", "video_id", a.VideoID, "error", ferr)
			}
			cancel()
		}
		return nil, err
	}
	return result, nil
}

func (d *Deps) runSlideExtraction(sc *engine.StepContext, videoID string) (any, error) {
	if err := sc.Emit(models.ProgressEvent{Type: models.EventTypeProgress, Status: "triggering", Message: "Starting slide extraction"}); err != nil {
		return nil, err
	}

	jobID, err := engine.Step(sc, "trigger_job", engine.StepOptions{MaxRetries: 3}, func(ctx context.Context) (string, error) {
		return d.Extractor.Trigger(ctx, videoID)
	})
	if err != nil {
		return nil, err
	}

	emitMonitor := sc.Emitter("monitor_job")
	manifestURI, err := engine.Step(sc, "monitor_job", engine.StepOptions{MaxRetries: 1, Timeout: d.Extractor.MonitorTimeout()}, func(ctx context.Context) (string, error) {
		return d.Extractor.Monitor(ctx, jobID, func(update extractor.JobUpdate) {
			ev := models.ProgressEvent{Type: models.EventTypeProgress, Status: update.Status, Message: update.Message}
			if update.Progress != nil {
				ev.Progress = int(*update.Progress * 100)
			}
			if err := emitMonitor(ev); err != nil {
				slog.Warn("Failed to forward extractor progress", "job_id", jobID, "error", err)
			}
		})
	})
	if err != nil {
		return nil, err
	}

	manifest, err := engine.Step(sc, "fetch_manifest", engine.StepOptions{MaxRetries: 3}, func(ctx context.Context) (*extractor.Manifest, error) {
		data, err := d.ObjectStore.Get(ctx, objectKeyFromURI(manifestURI))
		if err != nil {
			return nil, err
		}
		return extractor.ParseManifest(data)
	})
	if err != nil {
		return nil, err
	}

	emitSlide := sc.Emitter("process_slides")
	total, err := engine.Step(sc, "process_slides", engine.StepOptions{MaxRetries: 1}, func(ctx context.Context) (int, error) {
		return d.processSlides(ctx, videoID, manifest, emitSlide)
	})
	if err != nil {
		return nil, err
	}

	if _, err := engine.Step(sc, "finalize", engine.StepOptions{MaxRetries: 2}, func(ctx context.Context) (bool, error) {
		if err := d.Slides.CompleteExtraction(ctx, videoID, total); err != nil {
			return false, err
		}
		return true, nil
	}); err != nil {
		return nil, err
	}

	if err := sc.Emit(models.CompleteEvent{Type: models.EventTypeComplete}); err != nil {
		return nil, err
	}
	return slidesResult{TotalSlides: total}, nil
}

// processSlides persists one slide per static segment: frames are uploaded
// to the public blob store at deterministic keys and the row upserted. A
// frame that fails to upload is recorded on the row instead of failing the
// extraction.
func (d *Deps) processSlides(ctx context.Context, videoID string, manifest *extractor.Manifest, emit func(payload any) error) (int, error) {
	slideNumber := 0
	// Slide numbers count static segments only, so duplicate references keyed
	// by segment index must be translated to the slide that segment became.
	slideBySegment := make(map[int]int, len(manifest.Segments))
	for _, seg := range manifest.Segments {
		if seg.Kind != "static" {
			continue
		}

		upsert := services.SlideUpsert{
			VideoID:      videoID,
			SlideNumber:  slideNumber,
			StartSeconds: seg.StartSeconds,
			EndSeconds:   seg.EndSeconds,
			First:        d.processFrame(ctx, videoID, slideNumber, models.FrameFirst, seg.FirstFrame, slideBySegment),
			Last:         d.processFrame(ctx, videoID, slideNumber, models.FrameLast, seg.LastFrame, slideBySegment),
		}
		if err := d.Slides.UpsertSlide(ctx, upsert); err != nil {
			return 0, err
		}

		sl, err := d.Slides.GetSlide(ctx, videoID, slideNumber)
		if err != nil {
			return 0, err
		}
		if err := emit(models.SlideEvent{Type: models.EventTypeSlide, Slide: services.ToSlideRecord(sl)}); err != nil {
			return 0, err
		}
		slideBySegment[seg.Index] = slideNumber
		slideNumber++
	}
	return slideNumber, nil
}

// processFrame downloads and republishes one frame. Duplicate frames carry a
// reference to the original instead of their own upload.
func (d *Deps) processFrame(ctx context.Context, videoID string, slideNumber int, position string, frame *extractor.Frame, slideBySegment map[int]int) services.FrameData {
	data := services.FrameData{
		SourceURI:      frame.SourceURI,
		HasText:        frame.HasText,
		TextConfidence: &frame.TextConfidence,
	}
	if frame.DuplicateOf != nil {
		// Only segments that already produced an earlier slide can be
		// referenced; anything else gets its own upload.
		if original, ok := slideBySegment[frame.DuplicateOf.SegmentIndex]; ok {
			data.DuplicateOfSlide = &original
			data.DuplicateOfFrame = &frame.DuplicateOf.FramePosition
			return data
		}
	}

	blob, err := d.ObjectStore.Get(ctx, objectKeyFromURI(frame.SourceURI))
	if err != nil {
		msg := fmt.Sprintf("failed to download frame: %v", err)
		data.UploadError = &msg
		return data
	}

	key := fmt.Sprintf("slides/%s/%d-%s.webp", videoID, slideNumber, position)
	url, err := d.BlobStore.Put(ctx, key, "image/webp", blob)
	if err != nil {
		msg := fmt.Sprintf("failed to upload frame: %v", err)
		data.UploadError = &msg
		return data
	}
	data.ImageURL = &url
	return data
}

// objectKeyFromURI strips the scheme and bucket from s3://bucket/key style
// URIs; bare keys pass through.
func objectKeyFromURI(uri string) string {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return strings.TrimPrefix(uri, "/")
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return rest[i+1:]
	}
	return rest
}
