package models

import "encoding/json"

// Section kinds a dynamic-analysis schema entry may declare.
const (
	SectionKindString      = "string"
	SectionKindStringArray = "string[]"
	SectionKindObject      = "object"
)

// Required section keys every dynamic analysis must contain.
var RequiredSections = []string{"tldr", "detailed_summary", "transcript_corrections"}

// SchemaEntry is one key the LLM declared for its extraction schema.
type SchemaEntry struct {
	Key         string `json:"key"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// AnalysisSection is one extracted section as a tagged variant, the wire
// representation of the open analysis record.
type AnalysisSection struct {
	Key   string          `json:"key"`
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value"`
}

// DynamicAnalysis is the full LLM output for a dynamic-analysis run: the
// model's reasoning, the schema it declared, and the sections extracted
// against that schema.
type DynamicAnalysis struct {
	Reasoning string            `json:"reasoning"`
	Schema    []SchemaEntry     `json:"schema"`
	Analysis  []AnalysisSection `json:"analysis"`
}

// VersionInfo is one row of a version listing.
type VersionInfo struct {
	Version                int    `json:"version"`
	Status                 string `json:"status"`
	WorkflowRunID          string `json:"workflowRunId,omitempty"`
	AdditionalInstructions string `json:"additionalInstructions,omitempty"`
	HasResult              bool   `json:"hasResult"`
	ErrorMessage           string `json:"errorMessage,omitempty"`
	CreatedAt              string `json:"createdAt"`
}
