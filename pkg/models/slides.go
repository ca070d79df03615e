package models

import "time"

// Frame positions sampled per static segment.
const (
	FrameFirst = "first"
	FrameLast  = "last"
)

// FrameRecord is the client-facing shape of one candidate frame.
type FrameRecord struct {
	ImageURL         string   `json:"imageUrl,omitempty"`
	SourceURI        string   `json:"sourceUri,omitempty"`
	HasText          bool     `json:"hasText"`
	TextConfidence   *float64 `json:"textConfidence,omitempty"`
	UploadError      string   `json:"uploadError,omitempty"`
	DuplicateOfSlide *int     `json:"duplicateOfSlide,omitempty"`
	DuplicateOfFrame string   `json:"duplicateOfFrame,omitempty"`
}

// SlideRecord is the client-facing shape of one slide.
type SlideRecord struct {
	VideoID      string      `json:"videoId"`
	SlideNumber  int         `json:"slideNumber"`
	StartSeconds float64     `json:"startSeconds"`
	EndSeconds   float64     `json:"endSeconds"`
	First        FrameRecord `json:"first"`
	Last         FrameRecord `json:"last"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// SlideDetail extends SlideRecord with feedback picks and any stored
// analyses, for slide listing responses.
type SlideDetail struct {
	SlideRecord
	IsFirstFramePicked bool              `json:"isFirstFramePicked"`
	IsLastFramePicked  bool              `json:"isLastFramePicked"`
	Analyses           map[string]string `json:"analyses,omitempty"` // frame position → markdown
}

// AnalysisTarget identifies one frame selected for per-slide analysis.
type AnalysisTarget struct {
	SlideNumber   int    `json:"slideNumber"`
	FramePosition string `json:"framePosition"`
}
