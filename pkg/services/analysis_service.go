package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/superanalysis"
	"github.com/recapd/recapd/ent/versionedrun"
	"github.com/recapd/recapd/pkg/models"
)

// AnalysisService manages versioned analysis attempts and the synthesized
// super-analysis cache. A versioned run is the user-visible record of one
// attempt at producing a resource's artifact; the invariants are monotone
// versions per resource and at most one streaming row per resource, both
// enforced by unique indexes.
type AnalysisService struct {
	client *ent.Client
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(client *ent.Client) *AnalysisService {
	return &AnalysisService{client: client}
}

// CreateStreamingVersion allocates the next version for a resource and
// inserts it in streaming status. Returns ErrAlreadyExists when the resource
// already has a streaming attempt; callers attach to that one instead.
func (s *AnalysisService) CreateStreamingVersion(ctx context.Context, kind versionedrun.ResourceKind, resourceID, instructions string) (*ent.VersionedRun, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// The version-unique index can race with a concurrent allocation of the
	// same number; retry with a fresh max. The streaming partial index races
	// are terminal: someone else holds the resource.
	for attempt := 0; attempt < 3; attempt++ {
		version, err := s.nextVersion(writeCtx, kind, resourceID)
		if err != nil {
			return nil, err
		}

		vr, err := s.client.VersionedRun.Create().
			SetResourceKind(kind).
			SetResourceID(resourceID).
			SetVersion(version).
			SetStatus(versionedrun.StatusStreaming).
			SetAdditionalInstructions(instructions).
			Save(writeCtx)
		if err == nil {
			return vr, nil
		}
		if !ent.IsConstraintError(err) {
			return nil, fmt.Errorf("failed to create versioned run: %w", err)
		}
		if _, serr := s.GetStreaming(ctx, kind, resourceID); serr == nil {
			return nil, ErrAlreadyExists
		}
	}
	return nil, ErrAlreadyExists
}

// nextVersion returns max(version)+1 for a resource, starting at 1.
func (s *AnalysisService) nextVersion(ctx context.Context, kind versionedrun.ResourceKind, resourceID string) (int, error) {
	var rows []struct {
		Max int `json:"max"`
	}
	err := s.client.VersionedRun.Query().
		Where(
			versionedrun.ResourceKindEQ(kind),
			versionedrun.ResourceIDEQ(resourceID),
		).
		Aggregate(func(sel *sql.Selector) string {
			return sql.As(sql.Max(versionedrun.FieldVersion), "max")
		}).
		Scan(ctx, &rows)
	if err != nil {
		return 0, fmt.Errorf("failed to compute next version: %w", err)
	}
	if len(rows) == 0 {
		return 1, nil
	}
	return rows[0].Max + 1, nil
}

// GetStreaming returns the resource's streaming attempt, if any.
func (s *AnalysisService) GetStreaming(ctx context.Context, kind versionedrun.ResourceKind, resourceID string) (*ent.VersionedRun, error) {
	vr, err := s.client.VersionedRun.Query().
		Where(
			versionedrun.ResourceKindEQ(kind),
			versionedrun.ResourceIDEQ(resourceID),
			versionedrun.StatusEQ(versionedrun.StatusStreaming),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get streaming version: %w", err)
	}
	return vr, nil
}

// AttachRun records the backing engine run (and optional sub-stream
// namespace) on a versioned run.
func (s *AnalysisService) AttachRun(ctx context.Context, id int, runID, namespace string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.VersionedRun.UpdateOneID(id).
		SetWorkflowRunID(runID).
		SetNamespace(namespace).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to attach run to version: %w", err)
	}
	return nil
}

// Complete stores the final artifact and flips the version to completed.
func (s *AnalysisService) Complete(ctx context.Context, id int, result json.RawMessage) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.VersionedRun.UpdateOneID(id).
		SetStatus(versionedrun.StatusCompleted).
		SetResultJSON(result).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete version: %w", err)
	}
	return nil
}

// Fail flips the version to failed with an error message.
func (s *AnalysisService) Fail(ctx context.Context, id int, message string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.VersionedRun.UpdateOneID(id).
		SetStatus(versionedrun.StatusFailed).
		SetErrorMessage(message).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark version failed: %w", err)
	}
	return nil
}

// GetVersion returns one version of a resource, self-healing the anomaly of
// a streaming row that already carries its result (the completing write was
// interrupted between artifact and status).
func (s *AnalysisService) GetVersion(ctx context.Context, kind versionedrun.ResourceKind, resourceID string, version int) (*ent.VersionedRun, error) {
	vr, err := s.client.VersionedRun.Query().
		Where(
			versionedrun.ResourceKindEQ(kind),
			versionedrun.ResourceIDEQ(resourceID),
			versionedrun.VersionEQ(version),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get version: %w", err)
	}
	return s.repairStreaming(ctx, vr)
}

// GetLatestCompleted returns the newest completed version, if any.
func (s *AnalysisService) GetLatestCompleted(ctx context.Context, kind versionedrun.ResourceKind, resourceID string) (*ent.VersionedRun, error) {
	vr, err := s.client.VersionedRun.Query().
		Where(
			versionedrun.ResourceKindEQ(kind),
			versionedrun.ResourceIDEQ(resourceID),
			versionedrun.StatusEQ(versionedrun.StatusCompleted),
		).
		Order(ent.Desc(versionedrun.FieldVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest completed version: %w", err)
	}
	return vr, nil
}

// ListVersions returns all versions of a resource, newest first.
func (s *AnalysisService) ListVersions(ctx context.Context, kind versionedrun.ResourceKind, resourceID string) ([]models.VersionInfo, error) {
	rows, err := s.client.VersionedRun.Query().
		Where(
			versionedrun.ResourceKindEQ(kind),
			versionedrun.ResourceIDEQ(resourceID),
		).
		Order(ent.Desc(versionedrun.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}

	infos := make([]models.VersionInfo, 0, len(rows))
	for _, vr := range rows {
		repaired, rerr := s.repairStreaming(ctx, vr)
		if rerr != nil {
			return nil, rerr
		}
		info := models.VersionInfo{
			Version:                repaired.Version,
			Status:                 string(repaired.Status),
			AdditionalInstructions: repaired.AdditionalInstructions,
			HasResult:              len(repaired.ResultJSON) > 0,
			CreatedAt:              repaired.CreatedAt.Format(time.RFC3339),
		}
		if repaired.WorkflowRunID != nil {
			info.WorkflowRunID = *repaired.WorkflowRunID
		}
		if repaired.ErrorMessage != nil {
			info.ErrorMessage = *repaired.ErrorMessage
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// repairStreaming flips a streaming row that already has a result to
// completed. Reads self-heal this so clients never see a stuck version.
func (s *AnalysisService) repairStreaming(ctx context.Context, vr *ent.VersionedRun) (*ent.VersionedRun, error) {
	if vr.Status != versionedrun.StatusStreaming || len(vr.ResultJSON) == 0 {
		return vr, nil
	}

	slog.Warn("Repairing streaming version that already has a result",
		"resource_kind", vr.ResourceKind,
		"resource_id", vr.ResourceID,
		"version", vr.Version)

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	repaired, err := s.client.VersionedRun.UpdateOneID(vr.ID).
		SetStatus(versionedrun.StatusCompleted).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to repair streaming version: %w", err)
	}
	return repaired, nil
}

// GetSuperAnalysis returns the cached synthesized report for a video.
func (s *AnalysisService) GetSuperAnalysis(ctx context.Context, videoID string) (*ent.SuperAnalysis, error) {
	sa, err := s.client.SuperAnalysis.Query().
		Where(superanalysis.VideoIDEQ(videoID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get super analysis: %w", err)
	}
	return sa, nil
}

// SaveSuperAnalysis upserts the synthesized report for a video.
func (s *AnalysisService) SaveSuperAnalysis(ctx context.Context, videoID, markdown, model string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.SuperAnalysis.Create().
		SetVideoID(videoID).
		SetMarkdown(markdown).
		SetModel(model).
		OnConflictColumns(superanalysis.FieldVideoID).
		UpdateNewValues().
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to save super analysis: %w", err)
	}
	return nil
}
