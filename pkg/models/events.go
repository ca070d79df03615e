package models

import "encoding/json"

// Client-visible event types carried in emit payloads and terminal frames.
// Every frame is a JSON object with a "type" field; merged sub-streams add
// a "source" field.
const (
	EventTypeProgress              = "progress"
	EventTypePartial               = "partial"
	EventTypeResult                = "result"
	EventTypeSlide                 = "slide"
	EventTypeSlideMarkdown         = "slide_markdown"
	EventTypeSlideAnalysisProgress = "slide_analysis_progress"
	EventTypeComplete              = "complete"
	EventTypeError                 = "error"
	EventTypeMeta                  = "meta"
)

// Merged sub-stream source labels (process workflow).
const (
	SourceTranscript = "transcript"
	SourceAnalysis   = "analysis"
	SourceSlides     = "slides"
)

// ProgressEvent reports phase/percentage milestones.
type ProgressEvent struct {
	Type     string `json:"type"`
	Source   string `json:"source,omitempty"`
	Phase    string `json:"phase,omitempty"`
	Status   string `json:"status,omitempty"`
	Message  string `json:"message,omitempty"`
	Progress int    `json:"progress,omitempty"`
}

// PartialEvent carries an incremental LLM object or text snapshot.
type PartialEvent struct {
	Type   string          `json:"type"`
	Source string          `json:"source,omitempty"`
	Data   json.RawMessage `json:"data"`
}

// ResultEvent carries the finished artifact of a streaming step.
type ResultEvent struct {
	Type   string          `json:"type"`
	Source string          `json:"source,omitempty"`
	Data   json.RawMessage `json:"data"`
}

// SlideEvent announces one persisted slide during extraction.
type SlideEvent struct {
	Type   string      `json:"type"`
	Source string      `json:"source,omitempty"`
	Slide  SlideRecord `json:"slide"`
}

// SlideMarkdownEvent carries a finished per-slide analysis.
type SlideMarkdownEvent struct {
	Type          string `json:"type"`
	Source        string `json:"source,omitempty"`
	SlideNumber   int    `json:"slideNumber"`
	FramePosition string `json:"framePosition"`
	Markdown      string `json:"markdown"`
}

// SlideAnalysisProgressEvent aggregates fan-out progress during
// super-analysis.
type SlideAnalysisProgressEvent struct {
	Type           string                `json:"type"`
	Source         string                `json:"source,omitempty"`
	Slides         []SlideAnalysisStatus `json:"slides"`
	CompletedCount int                   `json:"completedCount"`
	TotalCount     int                   `json:"totalCount"`
}

// SlideAnalysisStatus is one target's state within the aggregate.
type SlideAnalysisStatus struct {
	SlideNumber   int    `json:"slideNumber"`
	FramePosition string `json:"framePosition"`
	Status        string `json:"status"` // pending | completed | failed
	Error         string `json:"error,omitempty"`
}

// CompleteEvent closes a stream or sub-stream. Field presence depends on the
// workflow: transcript completion carries title/channel, analysis completion
// carries the run id.
type CompleteEvent struct {
	Type        string          `json:"type"`
	Source      string          `json:"source,omitempty"`
	Title       string          `json:"title,omitempty"`
	ChannelName string          `json:"channelName,omitempty"`
	RunID       string          `json:"runId,omitempty"`
	Data        json.RawMessage `json:"data,omitempty"`
}

// ErrorEvent is the terminal frame of a failed stream or sub-stream.
type ErrorEvent struct {
	Type    string `json:"type"`
	Source  string `json:"source,omitempty"`
	Message string `json:"message"`
}

// MetaEvent carries stream metadata, e.g. the slides run id at the start of a
// combined process stream so clients can reconnect to it independently.
type MetaEvent struct {
	Type        string `json:"type"`
	Source      string `json:"source,omitempty"`
	SlidesRunID string `json:"slidesRunId,omitempty"`
	RunID       string `json:"runId,omitempty"`
}
