// Package coordinator maps resource-level requests (videos, transcripts) to
// engine runs: serving cached artifacts without a run, attaching to the
// streaming attempt when one exists, and otherwise allocating a new version
// and starting the workflow.
package coordinator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/slideextraction"
	"github.com/recapd/recapd/ent/versionedrun"
	"github.com/recapd/recapd/ent/workflowrun"
	"github.com/recapd/recapd/pkg/engine"
	"github.com/recapd/recapd/pkg/services"
)

// Registered workflow names.
const (
	WorkflowFetchTranscript  = "fetch-transcript"
	WorkflowDynamicAnalysis  = "dynamic-analysis"
	WorkflowSlideExtraction  = "slide-extraction"
	WorkflowPerSlideAnalysis = "per-slide-analysis"
	WorkflowSuperAnalysis    = "super-analysis"
	WorkflowProcess          = "process"
)

// staleDispatchThreshold is how long a streaming version may sit without a
// backing run before dispatch fails it and starts over.
const staleDispatchThreshold = 2 * time.Minute

// claimTokenPrefix marks the placeholder run id held on a slide extraction
// row between the claim and the real run's creation.
const claimTokenPrefix = "claim-"

// IsClaimToken reports whether a slide extraction run id is still the claim
// placeholder rather than a streamable run.
func IsClaimToken(runID string) bool {
	return strings.HasPrefix(runID, claimTokenPrefix)
}

// ErrSlidesAlreadyExtracted is returned when slide extraction is requested
// for a video whose slides are already complete.
var ErrSlidesAlreadyExtracted = errors.New("slides already extracted")

// SlidesActiveError carries the run a duplicate slide-extraction request can
// attach to.
type SlidesActiveError struct {
	RunID string
}

func (e *SlidesActiveError) Error() string {
	return fmt.Sprintf("slide extraction already running (run %s)", e.RunID)
}

// AnalysisArgs is the argument payload of versioned analysis workflows.
type AnalysisArgs struct {
	ResourceKind           string `json:"resourceKind"`
	ResourceID             string `json:"resourceId"`
	Version                int    `json:"version"`
	AdditionalInstructions string `json:"additionalInstructions,omitempty"`
}

// VideoArgs is the argument payload of video-scoped workflows.
type VideoArgs struct {
	VideoID string `json:"videoId"`
}

// Dispatch is the outcome of a resource dispatch. Exactly one of Cached or
// RunID is meaningful: a cached artifact ends the request immediately, a run
// id means the caller streams.
type Dispatch struct {
	Cached    json.RawMessage
	RunID     string
	Namespace string
	Version   int
	Attached  bool
}

// Coordinator wires the dispatch algorithm over the engine and services.
type Coordinator struct {
	engine      *engine.Engine
	transcripts *services.TranscriptService
	analyses    *services.AnalysisService
	slides      *services.SlideService
}

// New creates a coordinator.
func New(eng *engine.Engine, transcripts *services.TranscriptService, analyses *services.AnalysisService, slides *services.SlideService) *Coordinator {
	return &Coordinator{
		engine:      eng,
		transcripts: transcripts,
		analyses:    analyses,
		slides:      slides,
	}
}

// StartTranscript starts (or dedupes onto) a fetch-transcript run. The
// cached-transcript fast path lives inside the workflow itself, so dispatch
// always yields a run; the args-digest unique index collapses concurrent
// starts onto one.
func (c *Coordinator) StartTranscript(ctx context.Context, videoID string) (*Dispatch, error) {
	args, err := json.Marshal(VideoArgs{VideoID: videoID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal args: %w", err)
	}
	run, started, err := c.engine.Start(ctx, WorkflowFetchTranscript, args)
	if err != nil {
		return nil, err
	}
	return &Dispatch{RunID: run.ID, Attached: !started}, nil
}

// StartAnalysis dispatches a dynamic analysis for a video or an external
// transcript. Without additional instructions a completed result is served
// from cache; instructions always produce a new version.
func (c *Coordinator) StartAnalysis(ctx context.Context, kind versionedrun.ResourceKind, resourceID, instructions string) (*Dispatch, error) {
	if instructions == "" {
		latest, err := c.analyses.GetLatestCompleted(ctx, kind, resourceID)
		if err == nil {
			return &Dispatch{Cached: latest.ResultJSON, Version: latest.Version}, nil
		}
		if !errors.Is(err, services.ErrNotFound) {
			return nil, err
		}
	}
	return c.dispatchVersioned(ctx, kind, resourceID, WorkflowDynamicAnalysis, instructions)
}

// StartSuperAnalysis dispatches the synthesized report for a video. The
// super_analyses table is the completed-result cache.
func (c *Coordinator) StartSuperAnalysis(ctx context.Context, videoID, instructions string) (*Dispatch, error) {
	if instructions == "" {
		if sa, err := c.analyses.GetSuperAnalysis(ctx, videoID); err == nil {
			cached, merr := json.Marshal(map[string]string{"markdown": sa.Markdown})
			if merr != nil {
				return nil, fmt.Errorf("failed to marshal cached report: %w", merr)
			}
			return &Dispatch{Cached: cached}, nil
		} else if !errors.Is(err, services.ErrNotFound) {
			return nil, err
		}
	}
	return c.dispatchVersioned(ctx, versionedrun.ResourceKindSuper, videoID, WorkflowSuperAnalysis, instructions)
}

// dispatchVersioned runs the versioned dispatch: attach to the streaming
// attempt when its run is alive, self-heal anomalies, otherwise allocate
// version max+1 and start the workflow. The streaming partial unique index
// makes concurrent dispatches race safely: losers attach to the winner.
func (c *Coordinator) dispatchVersioned(ctx context.Context, kind versionedrun.ResourceKind, resourceID, workflow, instructions string) (*Dispatch, error) {
	for attempt := 0; attempt < 3; attempt++ {
		streaming, err := c.analyses.GetStreaming(ctx, kind, resourceID)
		switch {
		case err == nil:
			d, retry, rerr := c.resolveStreaming(ctx, streaming)
			if rerr != nil {
				return nil, rerr
			}
			if !retry {
				return d, nil
			}
			continue

		case errors.Is(err, services.ErrNotFound):
			vr, cerr := c.analyses.CreateStreamingVersion(ctx, kind, resourceID, instructions)
			if errors.Is(cerr, services.ErrAlreadyExists) {
				continue // lost the race; attach on the next pass
			}
			if cerr != nil {
				return nil, cerr
			}
			return c.startVersioned(ctx, vr, workflow, instructions)

		default:
			return nil, err
		}
	}
	return nil, errors.New("dispatch kept racing with concurrent starts, giving up")
}

// startVersioned starts the engine run backing a freshly inserted version
// and writes the run id back onto the row.
func (c *Coordinator) startVersioned(ctx context.Context, vr *ent.VersionedRun, workflow, instructions string) (*Dispatch, error) {
	args, err := json.Marshal(AnalysisArgs{
		ResourceKind:           string(vr.ResourceKind),
		ResourceID:             vr.ResourceID,
		Version:                vr.Version,
		AdditionalInstructions: instructions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal args: %w", err)
	}

	run, _, err := c.engine.Start(ctx, workflow, args)
	if err != nil {
		if ferr := c.analyses.Fail(ctx, vr.ID, fmt.Sprintf("failed to start run: %v", err)); ferr != nil {
			slog.Error("Failed to mark unstartable version", "error", ferr)
		}
		return nil, err
	}
	if err := c.analyses.AttachRun(ctx, vr.ID, run.ID, ""); err != nil {
		return nil, err
	}
	return &Dispatch{RunID: run.ID, Version: vr.Version}, nil
}

// resolveStreaming inspects the engine run behind a streaming version:
// attach when alive, self-heal when the run ended without the version row
// catching up. retry=true means the caller should re-run the dispatch.
func (c *Coordinator) resolveStreaming(ctx context.Context, vr *ent.VersionedRun) (*Dispatch, bool, error) {
	if vr.WorkflowRunID == nil {
		// Inserted but never attached: the dispatcher crashed between the
		// two writes. Fresh rows are a concurrent dispatch mid-flight.
		if time.Since(vr.CreatedAt) < staleDispatchThreshold {
			return nil, false, fmt.Errorf("dispatch for %s %s is still being set up, retry shortly", vr.ResourceKind, vr.ResourceID)
		}
		slog.Warn("Failing streaming version with no backing run",
			"resource_kind", vr.ResourceKind, "resource_id", vr.ResourceID, "version", vr.Version)
		if err := c.analyses.Fail(ctx, vr.ID, "dispatch never started a run"); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}

	run, err := c.engine.Get(ctx, *vr.WorkflowRunID)
	if err != nil {
		if errors.Is(err, engine.ErrRunNotFound) {
			if ferr := c.analyses.Fail(ctx, vr.ID, "backing run no longer exists"); ferr != nil {
				return nil, false, ferr
			}
			return nil, true, nil
		}
		return nil, false, err
	}

	switch run.State {
	case workflowrun.StateCompleted:
		// Run finished but the version row is still streaming. If the result
		// landed, the read path repairs it; otherwise the completing write
		// was lost for good.
		repaired, rerr := c.analyses.GetVersion(ctx, vr.ResourceKind, vr.ResourceID, vr.Version)
		if rerr != nil {
			return nil, false, rerr
		}
		if repaired.Status == versionedrun.StatusCompleted {
			return &Dispatch{Cached: repaired.ResultJSON, Version: repaired.Version}, false, nil
		}
		slog.Warn("Failing streaming version whose run completed without a result",
			"resource_kind", vr.ResourceKind, "resource_id", vr.ResourceID, "version", vr.Version)
		if err := c.analyses.Fail(ctx, vr.ID, "run completed but produced no result"); err != nil {
			return nil, false, err
		}
		return nil, false, errors.New("previous attempt completed without a result; retry to dispatch a new version")

	case workflowrun.StateFailed, workflowrun.StateCancelled:
		message := string(run.State)
		if run.ErrorMessage != nil {
			message = *run.ErrorMessage
		}
		if err := c.analyses.Fail(ctx, vr.ID, message); err != nil {
			return nil, false, err
		}
		return nil, true, nil

	default: // pending, running, paused
		return &Dispatch{
			RunID:     *vr.WorkflowRunID,
			Namespace: vr.Namespace,
			Version:   vr.Version,
			Attached:  true,
		}, false, nil
	}
}

// StartSlides dispatches slide extraction through the two-phase claim. Only
// the caller whose placeholder lands on the row triggers the external
// extractor; losers get the active run to attach to, or
// ErrSlidesAlreadyExtracted when the work is done.
func (c *Coordinator) StartSlides(ctx context.Context, videoID string) (*Dispatch, error) {
	placeholder := claimTokenPrefix + uuid.New().String()

	claimed, ex, err := c.slides.ClaimExtraction(ctx, videoID, placeholder)
	if err != nil {
		return nil, err
	}
	if !claimed {
		if ex.Status == slideextraction.StatusCompleted {
			return nil, ErrSlidesAlreadyExtracted
		}
		active := &SlidesActiveError{}
		if ex.RunID != nil {
			active.RunID = *ex.RunID
		}
		return nil, active
	}

	args, err := json.Marshal(VideoArgs{VideoID: videoID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal args: %w", err)
	}
	run, _, err := c.engine.Start(ctx, WorkflowSlideExtraction, args)
	if err != nil {
		if ferr := c.slides.FailExtraction(ctx, videoID, fmt.Sprintf("failed to start run: %v", err)); ferr != nil {
			slog.Error("Failed to release extraction claim", "video_id", videoID, "error", ferr)
		}
		return nil, err
	}
	if err := c.slides.SetExtractionRun(ctx, videoID, run.ID); err != nil {
		return nil, err
	}
	return &Dispatch{RunID: run.ID}, nil
}

// StartPerSlideAnalysis starts (or dedupes onto) a per-slide-analysis run
// for the given targets; nil targets means the user's picked frames.
func (c *Coordinator) StartPerSlideAnalysis(ctx context.Context, videoID string, targets json.RawMessage) (*Dispatch, error) {
	payload := map[string]json.RawMessage{
		"videoId": json.RawMessage(fmt.Sprintf("%q", videoID)),
	}
	if len(targets) > 0 {
		payload["targets"] = targets
	}
	args, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal args: %w", err)
	}
	run, started, err := c.engine.Start(ctx, WorkflowPerSlideAnalysis, args)
	if err != nil {
		return nil, err
	}
	return &Dispatch{RunID: run.ID, Attached: !started}, nil
}

// StartProcess starts (or dedupes onto) the combined process run.
func (c *Coordinator) StartProcess(ctx context.Context, videoID, instructions string) (*Dispatch, error) {
	args, err := json.Marshal(struct {
		VideoID                string `json:"videoId"`
		AdditionalInstructions string `json:"additionalInstructions,omitempty"`
	}{VideoID: videoID, AdditionalInstructions: instructions})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal args: %w", err)
	}
	run, started, err := c.engine.Start(ctx, WorkflowProcess, args)
	if err != nil {
		return nil, err
	}
	return &Dispatch{RunID: run.ID, Attached: !started}, nil
}

// ResumeStreaming returns the attach handle for a resource's streaming
// attempt: the backing run id plus the namespace filter when the run is
// shared. ErrNotFound when nothing is streaming.
func (c *Coordinator) ResumeStreaming(ctx context.Context, kind versionedrun.ResourceKind, resourceID string) (*Dispatch, error) {
	vr, err := c.analyses.GetStreaming(ctx, kind, resourceID)
	if err != nil {
		return nil, err
	}
	d, retry, err := c.resolveStreaming(ctx, vr)
	if err != nil {
		return nil, err
	}
	if retry || d == nil || d.RunID == "" && d.Cached == nil {
		return nil, services.ErrNotFound
	}
	return d, nil
}
