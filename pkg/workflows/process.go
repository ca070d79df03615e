package workflows

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/recapd/recapd/ent/versionedrun"
	"github.com/recapd/recapd/pkg/coordinator"
	"github.com/recapd/recapd/pkg/engine"
	"github.com/recapd/recapd/pkg/models"
)

// processArgs are the run args of the combined process workflow.
type processArgs struct {
	VideoID                string `json:"videoId"`
	AdditionalInstructions string `json:"additionalInstructions,omitempty"`
}

// processResult is the run result of the process workflow.
type processResult struct {
	VideoID     string `json:"videoId"`
	SlidesRunID string `json:"slidesRunId,omitempty"`
}

// process runs the full pipeline for a video in one attachable stream: slide
// extraction proceeds as its own run whose client events are forwarded into
// this log under the slides namespace, while the main branch fetches the
// transcript and analyzes it. Sub-streams are told apart by namespace.
func (d *Deps) process(sc *engine.StepContext, args json.RawMessage) (any, error) {
	var a processArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, engine.Fatalf("invalid args: %v", err)
	}
	if a.VideoID == "" {
		return nil, engine.Fatal(errors.New("videoId is required"))
	}

	slidesRunID, err := engine.Step(sc, "dispatch_slides", engine.StepOptions{MaxRetries: 2}, func(ctx context.Context) (string, error) {
		dispatch, err := d.Coordinator.StartSlides(ctx, a.VideoID)
		if err == nil {
			return dispatch.RunID, nil
		}
		var active *coordinator.SlidesActiveError
		if errors.As(err, &active) {
			return active.RunID, nil
		}
		if errors.Is(err, coordinator.ErrSlidesAlreadyExtracted) {
			return "", nil
		}
		return "", err
	})
	if err != nil {
		return nil, err
	}

	// The slides run id goes out before anything else so clients can attach
	// to the extraction stream independently.
	if err := sc.Emit(models.MetaEvent{Type: models.EventTypeMeta, SlidesRunID: slidesRunID}); err != nil {
		return nil, err
	}

	if slidesRunID != "" && slidesRunID != sc.RunID() {
		sc.Go("slides", func(branch *engine.StepContext) error {
			return d.forwardRunEvents(branch.WithNamespace(models.SourceSlides), slidesRunID)
		})
	}

	sc.Go("main", func(branch *engine.StepContext) error {
		transcriptArgs, err := json.Marshal(coordinator.VideoArgs{VideoID: a.VideoID})
		if err != nil {
			return engine.Fatalf("failed to marshal transcript args: %v", err)
		}
		if _, err := d.fetchTranscript(branch.WithNamespace(models.SourceTranscript), transcriptArgs); err != nil {
			return err
		}

		analysisArgs, err := json.Marshal(coordinator.AnalysisArgs{
			ResourceKind:           string(versionedrun.ResourceKindVideo),
			ResourceID:             a.VideoID,
			AdditionalInstructions: a.AdditionalInstructions,
		})
		if err != nil {
			return engine.Fatalf("failed to marshal analysis args: %v", err)
		}
		_, err = d.dynamicAnalysis(branch.WithNamespace(models.SourceAnalysis), analysisArgs)
		return err
	})

	if err := sc.Wait(); err != nil {
		return nil, err
	}
	return processResult{VideoID: a.VideoID, SlidesRunID: slidesRunID}, nil
}

// forwardRunEvents replays another run's client events into this run's log
// under the branch namespace. The sub-run stream is consumed through the
// engine's stream merger; forwarding is keyed by the source log's order, so
// a resumed parent skips everything it already copied and appends only the
// remainder.
func (d *Deps) forwardRunEvents(branch *engine.StepContext, runID string) error {
	stream, err := d.Engine.Stream(branch.Context(), runID, 0, "")
	if err != nil {
		if errors.Is(err, engine.ErrRunNotFound) {
			return branch.Emit(models.ErrorEvent{Type: models.EventTypeError, Message: "slide extraction run disappeared"})
		}
		return err
	}

	forward := branch.Emitter("forward")
	merged := engine.Merge(branch.Context(), engine.SourceStream{Name: models.SourceSlides, Events: stream})
	for tagged := range merged {
		ev := tagged.Event
		switch ev.Kind {
		case engine.KindEmit:
			if err := forward(ev.Payload); err != nil {
				return err
			}
		case engine.KindRunTerminal:
			var terminal engine.TerminalPayload
			if err := json.Unmarshal(ev.Payload, &terminal); err != nil {
				slog.Warn("Malformed terminal event on forwarded run", "run_id", runID, "error", err)
				return nil
			}
			if terminal.State != engine.StateCompleted {
				message := terminal.Message
				if message == "" {
					message = "slide extraction " + terminal.State
				}
				return branch.Emit(models.ErrorEvent{Type: models.EventTypeError, Message: message})
			}
			return nil
		}
	}
	return branch.Context().Err()
}
