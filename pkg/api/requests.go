package api

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AnalysisStartRequest is the optional body of analysis dispatch endpoints.
type AnalysisStartRequest struct {
	AdditionalInstructions string `json:"additional_instructions"`
}

// PerSlideAnalysisRequest optionally narrows per-slide analysis to explicit
// targets; absent targets mean the user's picked frames.
type PerSlideAnalysisRequest struct {
	Targets json.RawMessage `json:"targets,omitempty"`
}

// CreateTranscriptRequest creates an external transcript.
type CreateTranscriptRequest struct {
	Title   string `json:"title"`
	Content string `json:"content" binding:"required"`
}

// SlideFeedbackRequest sets the picked flags of one slide's frames.
type SlideFeedbackRequest struct {
	IsFirstFramePicked bool `json:"isFirstFramePicked"`
	IsLastFramePicked  bool `json:"isLastFramePicked"`
}

// bindOptionalBody decodes an optional JSON body into dst; an empty body
// leaves dst zero-valued.
func bindOptionalBody(c *gin.Context, dst any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	return c.ShouldBindJSON(dst)
}

// queryInt parses an integer query parameter with a default.
func queryInt(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
