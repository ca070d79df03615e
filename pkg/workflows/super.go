package workflows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/recapd/recapd/ent/versionedrun"
	"github.com/recapd/recapd/pkg/coordinator"
	"github.com/recapd/recapd/pkg/engine"
	"github.com/recapd/recapd/pkg/llm"
	"github.com/recapd/recapd/pkg/models"
	"github.com/recapd/recapd/pkg/services"
)

const superSystemPrompt = `You are an expert technical writer. Given a video transcript, a structured analysis of it, and markdown renditions of the presented slides with their timing, synthesize one coherent markdown report of the video: weave the slide content into the narrative at the right points, reconcile the transcript against what the slides actually show, and keep every technical detail. Output markdown only.`

// superResult is the run result of super-analysis.
type superResult struct {
	Version int  `json:"version"`
	Cached  bool `json:"cached,omitempty"`
}

// superAnalysis synthesizes the combined report for a video. Missing
// per-slide analyses are produced first with a parallel fan-out; one frame
// failing permanently does not block synthesis as long as at least one
// succeeded.
func (d *Deps) superAnalysis(sc *engine.StepContext, args json.RawMessage) (any, error) {
	var a coordinator.AnalysisArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, engine.Fatalf("invalid args: %v", err)
	}
	if a.ResourceID == "" {
		return nil, engine.Fatal(errors.New("resourceId is required"))
	}
	videoID := a.ResourceID

	cached, err := engine.Step(sc, "check_cache", engine.StepOptions{}, func(ctx context.Context) (string, error) {
		if a.AdditionalInstructions != "" {
			return "", nil
		}
		sa, err := d.Analyses.GetSuperAnalysis(ctx, videoID)
		if errors.Is(err, services.ErrNotFound) {
			return "", nil
		}
		if err != nil {
			return "", err
		}
		return sa.Markdown, nil
	})
	if err != nil {
		return nil, err
	}

	versionID, err := engine.Step(sc, "bind_version", engine.StepOptions{MaxRetries: 2}, func(ctx context.Context) (int, error) {
		claimed, err := d.claimAnalysisVersion(ctx, sc.RunID(), versionedrun.ResourceKindSuper, a)
		return claimed.ID, err
	})
	if err != nil {
		return nil, err
	}

	if cached != "" {
		return d.finishSuper(sc, versionID, a.Version, cached, true)
	}

	picks, err := engine.Step(sc, "load_picks", engine.StepOptions{}, func(ctx context.Context) ([]models.AnalysisTarget, error) {
		targets, err := d.Slides.ListPickedTargets(ctx, videoID)
		if err != nil {
			return nil, err
		}
		if len(targets) == 0 {
			return nil, engine.Fatalf("no frames picked for video %s, pick slides first", videoID)
		}
		return targets, nil
	})
	if err != nil {
		return nil, err
	}

	if err := d.ensureSlideAnalyses(sc, videoID, picks); err != nil {
		return nil, err
	}

	prompt, err := engine.Step(sc, "load_context", engine.StepOptions{}, func(ctx context.Context) (string, error) {
		return d.buildSynthesisPrompt(ctx, videoID, a.AdditionalInstructions)
	})
	if err != nil {
		return nil, err
	}

	emitDelta := sc.Emitter("synthesize")
	markdown, err := engine.Step(sc, "synthesize", engine.StepOptions{MaxRetries: 2, Timeout: d.LLMCfg.RequestTimeout}, func(ctx context.Context) (string, error) {
		stream, err := d.LLM.Generate(ctx, &llm.Request{
			Model:           d.LLMCfg.SynthesisModel,
			SystemPrompt:    superSystemPrompt,
			UserPrompt:      prompt,
			MaxOutputTokens: d.LLMCfg.MaxOutputTokens,
		})
		if err != nil {
			return "", err
		}
		return collectText(ctx, stream, func(delta string) error {
			data, merr := json.Marshal(delta)
			if merr != nil {
				return merr
			}
			return emitDelta(models.PartialEvent{Type: models.EventTypePartial, Data: data})
		})
	})
	if err != nil {
		return nil, err
	}

	if _, err := engine.Step(sc, "persist", engine.StepOptions{MaxRetries: 2}, func(ctx context.Context) (bool, error) {
		if err := d.Analyses.SaveSuperAnalysis(ctx, videoID, markdown, d.LLMCfg.SynthesisModel); err != nil {
			return false, err
		}
		return true, nil
	}); err != nil {
		return nil, err
	}

	return d.finishSuper(sc, versionID, a.Version, markdown, false)
}

// finishSuper completes the version row and emits the terminal frames.
func (d *Deps) finishSuper(sc *engine.StepContext, versionID, version int, markdown string, cached bool) (any, error) {
	resultJSON, err := json.Marshal(map[string]string{"markdown": markdown})
	if err != nil {
		return nil, engine.Fatalf("report is not serializable: %v", err)
	}
	if _, err := engine.Step(sc, "complete_version", engine.StepOptions{MaxRetries: 2}, func(ctx context.Context) (bool, error) {
		if err := d.Analyses.Complete(ctx, versionID, resultJSON); err != nil {
			return false, err
		}
		return true, nil
	}); err != nil {
		return nil, err
	}

	if err := sc.Emit(models.ResultEvent{Type: models.EventTypeResult, Data: resultJSON}); err != nil {
		return nil, err
	}
	if err := sc.Emit(models.CompleteEvent{Type: models.EventTypeComplete, RunID: sc.RunID()}); err != nil {
		return nil, err
	}
	return superResult{Version: version, Cached: cached}, nil
}

// ensureSlideAnalyses fans out one branch per picked frame that has no stored
// analysis yet, emitting the aggregate progress after each branch settles.
// Permanent per-frame failures are tolerated while at least one frame ends up
// analyzed.
func (d *Deps) ensureSlideAnalyses(sc *engine.StepContext, videoID string, picks []models.AnalysisTarget) error {
	missing, err := engine.Step(sc, "ensure_slide_analyses", engine.StepOptions{}, func(ctx context.Context) ([]models.AnalysisTarget, error) {
		var out []models.AnalysisTarget
		for _, t := range picks {
			_, err := d.Slides.GetSlideAnalysis(ctx, videoID, t.SlideNumber, t.FramePosition)
			if errors.Is(err, services.ErrNotFound) {
				out = append(out, t)
				continue
			}
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	})
	if err != nil {
		return err
	}

	tracker := newFanoutTracker(picks, missing)
	for _, target := range missing {
		target := target
		label := fmt.Sprintf("%d-%s", target.SlideNumber, target.FramePosition)
		sc.Go("ensure/"+label, func(branch *engine.StepContext) error {
			aerr := d.analyzeSlideFrame(branch, videoID, target)
			if aerr != nil && !isFatalOutcome(aerr) {
				return aerr
			}
			return branch.Emit(tracker.settle(target, aerr))
		})
	}
	if err := sc.Wait(); err != nil {
		return err
	}

	if tracker.completedCount() == 0 {
		return engine.Fatalf("every picked frame of video %s failed analysis", videoID)
	}
	return nil
}

// fanoutTracker holds the aggregate status of the fan-out; settle is called
// from parallel branches.
type fanoutTracker struct {
	mu       sync.Mutex
	statuses []models.SlideAnalysisStatus
	index    map[string]int
}

func newFanoutTracker(picks, missing []models.AnalysisTarget) *fanoutTracker {
	pending := make(map[string]bool, len(missing))
	for _, t := range missing {
		pending[fmt.Sprintf("%d-%s", t.SlideNumber, t.FramePosition)] = true
	}

	ft := &fanoutTracker{index: make(map[string]int, len(picks))}
	for _, t := range picks {
		key := fmt.Sprintf("%d-%s", t.SlideNumber, t.FramePosition)
		status := "completed"
		if pending[key] {
			status = "pending"
		}
		ft.index[key] = len(ft.statuses)
		ft.statuses = append(ft.statuses, models.SlideAnalysisStatus{
			SlideNumber:   t.SlideNumber,
			FramePosition: t.FramePosition,
			Status:        status,
		})
	}
	return ft
}

// settle records one branch outcome and returns the aggregate event to emit.
func (ft *fanoutTracker) settle(target models.AnalysisTarget, err error) models.SlideAnalysisProgressEvent {
	ft.mu.Lock()
	defer ft.mu.Unlock()

	key := fmt.Sprintf("%d-%s", target.SlideNumber, target.FramePosition)
	if i, ok := ft.index[key]; ok {
		if err != nil {
			ft.statuses[i].Status = "failed"
			ft.statuses[i].Error = err.Error()
		} else {
			ft.statuses[i].Status = "completed"
		}
	}

	ev := models.SlideAnalysisProgressEvent{
		Type:       models.EventTypeSlideAnalysisProgress,
		Slides:     append([]models.SlideAnalysisStatus(nil), ft.statuses...),
		TotalCount: len(ft.statuses),
	}
	for _, s := range ft.statuses {
		if s.Status == "completed" {
			ev.CompletedCount++
		}
	}
	return ev
}

func (ft *fanoutTracker) completedCount() int {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	n := 0
	for _, s := range ft.statuses {
		if s.Status == "completed" {
			n++
		}
	}
	return n
}

// buildSynthesisPrompt assembles everything the synthesis model consumes:
// the formatted transcript, the latest completed dynamic analysis, and the
// per-slide markdown with timing.
func (d *Deps) buildSynthesisPrompt(ctx context.Context, videoID, instructions string) (string, error) {
	var b strings.Builder
	b.WriteString("Synthesize a complete report for this video.\n\n")
	if instructions != "" {
		b.WriteString("Additional instructions from the user:\n")
		b.WriteString(instructions)
		b.WriteString("\n\n")
	}

	t, err := d.Transcripts.GetCached(ctx, videoID)
	switch {
	case err == nil:
		b.WriteString("## Transcript\n\n")
		b.WriteString(services.FormatSegments(t.Segments))
		b.WriteString("\n")
	case !errors.Is(err, services.ErrNotFound):
		return "", err
	}

	latest, err := d.Analyses.GetLatestCompleted(ctx, versionedrun.ResourceKindVideo, videoID)
	switch {
	case err == nil:
		b.WriteString("## Transcript analysis\n\n```json\n")
		b.Write(latest.ResultJSON)
		b.WriteString("\n```\n\n")
	case !errors.Is(err, services.ErrNotFound):
		return "", err
	}

	details, err := d.Slides.ListSlides(ctx, videoID)
	if err != nil {
		return "", err
	}
	wrote := false
	for _, detail := range details {
		if len(detail.Analyses) == 0 {
			continue
		}
		if !wrote {
			b.WriteString("## Slides\n\n")
			wrote = true
		}
		for _, pos := range []string{models.FrameFirst, models.FrameLast} {
			md, ok := detail.Analyses[pos]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "### Slide %d (%s frame, %.0fs-%.0fs)\n\n%s\n\n",
				detail.SlideNumber, pos, detail.StartSeconds, detail.EndSeconds, md)
		}
	}
	if !wrote {
		return "", engine.Fatalf("no slide analyses available for video %s", videoID)
	}
	return b.String(), nil
}
