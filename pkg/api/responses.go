package api

import (
	"encoding/json"
	"time"

	"github.com/recapd/recapd/ent"
)

// RunResponse is the JSON shape of a workflow run row.
type RunResponse struct {
	ID               string          `json:"id"`
	WorkflowName     string          `json:"workflowName"`
	State            string          `json:"state"`
	Result           json.RawMessage `json:"result,omitempty"`
	ErrorMessage     string          `json:"errorMessage,omitempty"`
	RecoveryAttempts int             `json:"recoveryAttempts"`
	CreatedAt        time.Time       `json:"createdAt"`
	StartedAt        *time.Time      `json:"startedAt,omitempty"`
	CompletedAt      *time.Time      `json:"completedAt,omitempty"`
}

func toRunResponse(run *ent.WorkflowRun) RunResponse {
	resp := RunResponse{
		ID:               run.ID,
		WorkflowName:     run.WorkflowName,
		State:            string(run.State),
		Result:           run.Result,
		RecoveryAttempts: run.RecoveryAttempts,
		CreatedAt:        run.CreatedAt,
		StartedAt:        run.StartedAt,
		CompletedAt:      run.CompletedAt,
	}
	if run.ErrorMessage != nil {
		resp.ErrorMessage = *run.ErrorMessage
	}
	return resp
}

// ExtractionResponse is the JSON shape of a slide extraction row.
type ExtractionResponse struct {
	VideoID      string    `json:"videoId"`
	Status       string    `json:"status"`
	RunID        string    `json:"runId,omitempty"`
	TotalSlides  int       `json:"totalSlides"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toExtractionResponse(ex *ent.SlideExtraction) ExtractionResponse {
	resp := ExtractionResponse{
		VideoID:     ex.VideoID,
		Status:      string(ex.Status),
		TotalSlides: ex.TotalSlides,
		UpdatedAt:   ex.UpdatedAt,
	}
	if ex.RunID != nil {
		resp.RunID = *ex.RunID
	}
	if ex.ErrorMessage != nil {
		resp.ErrorMessage = *ex.ErrorMessage
	}
	return resp
}

// AnalysisStatusResponse summarizes a resource's analysis state.
type AnalysisStatusResponse struct {
	Status        string `json:"status"` // streaming | completed | failed
	Version       int    `json:"version"`
	WorkflowRunID string `json:"workflowRunId,omitempty"`
	Namespace     string `json:"namespace,omitempty"`
}
