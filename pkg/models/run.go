package models

import "time"

// RunSummary is the JSON shape of an engine run in API responses.
type RunSummary struct {
	RunID        string     `json:"runId"`
	WorkflowName string     `json:"workflowName"`
	State        string     `json:"state"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	StartedAt    *time.Time `json:"startedAt,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}
