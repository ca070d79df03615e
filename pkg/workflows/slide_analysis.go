package workflows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/recapd/recapd/pkg/engine"
	"github.com/recapd/recapd/pkg/llm"
	"github.com/recapd/recapd/pkg/models"
	"github.com/recapd/recapd/pkg/services"
)

const slideSystemPrompt = `You are an expert at reading presentation slides. Given one slide image from a video, produce a faithful markdown rendition of its content: headings, bullet lists, tables, and code blocks as they appear, plus a short description of any diagram or chart. Transcribe text exactly; do not invent content that is not on the slide.`

// perSlideArgs are the run args of per-slide-analysis.
type perSlideArgs struct {
	VideoID string                  `json:"videoId"`
	Targets []models.AnalysisTarget `json:"targets,omitempty"`
}

// perSlideResult is the run result of per-slide-analysis.
type perSlideResult struct {
	AnalyzedCount int `json:"analyzedCount"`
	FailedCount   int `json:"failedCount"`
	TotalCount    int `json:"totalCount"`
}

// perSlideAnalysis renders each target frame into markdown with an
// image-bound LLM call. Targets come from the args or default to the user's
// picked frames. One frame failing permanently does not abort the rest.
func (d *Deps) perSlideAnalysis(sc *engine.StepContext, args json.RawMessage) (any, error) {
	var a perSlideArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, engine.Fatalf("invalid args: %v", err)
	}
	if a.VideoID == "" {
		return nil, engine.Fatal(errors.New("videoId is required"))
	}

	targets, err := engine.Step(sc, "load_targets", engine.StepOptions{}, func(ctx context.Context) ([]models.AnalysisTarget, error) {
		if len(a.Targets) > 0 {
			return a.Targets, nil
		}
		picked, err := d.Slides.ListPickedTargets(ctx, a.VideoID)
		if err != nil {
			return nil, err
		}
		if len(picked) == 0 {
			return nil, engine.Fatalf("no frames picked for video %s", a.VideoID)
		}
		return picked, nil
	})
	if err != nil {
		return nil, err
	}

	if err := sc.Emit(models.ProgressEvent{Type: models.EventTypeProgress, Phase: "analyzing", Message: fmt.Sprintf("Analyzing %d slide frames", len(targets))}); err != nil {
		return nil, err
	}

	result := perSlideResult{TotalCount: len(targets)}
	for _, target := range targets {
		if err := d.analyzeSlideFrame(sc, a.VideoID, target); err != nil {
			if !isFatalOutcome(err) {
				return nil, err
			}
			result.FailedCount++
			continue
		}
		result.AnalyzedCount++
	}
	if result.AnalyzedCount == 0 {
		return nil, engine.Fatalf("all %d frame analyses failed", result.TotalCount)
	}

	if err := sc.Emit(models.CompleteEvent{Type: models.EventTypeComplete, RunID: sc.RunID()}); err != nil {
		return nil, err
	}
	return result, nil
}

// analyzeSlideFrame runs one frame's analysis as a memoized step named after
// the target and streams its markdown under the target's namespace. The
// finished markdown is upserted inside the step so a replayed run does not
// re-bill the model.
func (d *Deps) analyzeSlideFrame(sc *engine.StepContext, videoID string, target models.AnalysisTarget) error {
	label := fmt.Sprintf("%d-%s", target.SlideNumber, target.FramePosition)
	nsc := sc.WithNamespace(label)
	stepID := "analyze_slide/" + label

	emitDelta := nsc.Emitter(stepID)
	markdown, err := engine.Step(sc, stepID, engine.StepOptions{MaxRetries: 2, Timeout: d.LLMCfg.RequestTimeout}, func(ctx context.Context) (string, error) {
		imageURL, err := d.resolveFrameImage(ctx, videoID, target)
		if err != nil {
			return "", err
		}

		stream, err := d.LLM.Generate(ctx, &llm.Request{
			Model:           d.LLMCfg.SlideModel,
			SystemPrompt:    slideSystemPrompt,
			UserPrompt:      fmt.Sprintf("Transcribe slide %d (%s frame) of this video into markdown.", target.SlideNumber, target.FramePosition),
			ImageURL:        imageURL,
			MaxOutputTokens: d.LLMCfg.MaxOutputTokens,
		})
		if err != nil {
			return "", err
		}
		md, err := collectText(ctx, stream, func(delta string) error {
			data, merr := json.Marshal(delta)
			if merr != nil {
				return merr
			}
			return emitDelta(models.PartialEvent{Type: models.EventTypePartial, Data: data})
		})
		if err != nil {
			return "", err
		}

		if err := d.Slides.UpsertSlideAnalysis(ctx, videoID, target.SlideNumber, target.FramePosition, md, d.LLMCfg.SlideModel); err != nil {
			return "", err
		}
		return md, nil
	})
	if err != nil {
		if isFatalOutcome(err) {
			if eerr := nsc.Emit(models.ErrorEvent{Type: models.EventTypeError, Message: err.Error()}); eerr != nil {
				return eerr
			}
		}
		return err
	}

	return nsc.Emit(models.SlideMarkdownEvent{
		Type:          models.EventTypeSlideMarkdown,
		SlideNumber:   target.SlideNumber,
		FramePosition: target.FramePosition,
		Markdown:      markdown,
	})
}

// resolveFrameImage returns the public URL of a target frame, following the
// duplicate reference to the original frame when present. A frame with no
// uploaded image cannot be analyzed.
func (d *Deps) resolveFrameImage(ctx context.Context, videoID string, target models.AnalysisTarget) (string, error) {
	sl, err := d.Slides.GetSlide(ctx, videoID, target.SlideNumber)
	if err != nil {
		return "", err
	}

	frame := frameOf(services.ToSlideRecord(sl), target.FramePosition)
	if frame.DuplicateOfSlide != nil {
		origin, err := d.Slides.GetSlide(ctx, videoID, *frame.DuplicateOfSlide)
		if err != nil {
			return "", err
		}
		pos := frame.DuplicateOfFrame
		if pos == "" {
			pos = target.FramePosition
		}
		frame = frameOf(services.ToSlideRecord(origin), pos)
	}
	if frame.ImageURL == "" {
		return "", engine.Fatalf("slide %d %s frame of video %s has no uploaded image", target.SlideNumber, target.FramePosition, videoID)
	}
	return frame.ImageURL, nil
}

// frameOf selects one frame record of a slide by position.
func frameOf(rec models.SlideRecord, position string) models.FrameRecord {
	if position == models.FrameLast {
		return rec.Last
	}
	return rec.First
}

// isFatalOutcome reports whether a step outcome is permanent: a fatal error
// from this execution or a memoized step_error replayed as non-retriable.
func isFatalOutcome(err error) bool {
	if engine.IsFatal(err) {
		return true
	}
	var se *engine.StepError
	return errors.As(err, &se) && !se.Retriable
}
