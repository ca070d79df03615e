package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/recapd/recapd/ent/slideextraction"
	"github.com/recapd/recapd/ent/versionedrun"
	"github.com/recapd/recapd/pkg/coordinator"
	"github.com/recapd/recapd/pkg/services"
)

// StartTranscript handles POST /videos/:videoID/transcript/start.
func (s *Server) StartTranscript(c *gin.Context) {
	d, err := s.coordinator.StartTranscript(c.Request.Context(), c.Param("videoID"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	start, ok := streamStartIndex(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startIndex"})
		return
	}
	s.streamRun(c, d.RunID, "", start)
}

// StartVideoAnalysis handles POST /videos/:videoID/analysis/start.
func (s *Server) StartVideoAnalysis(c *gin.Context) {
	s.startAnalysis(c, versionedrun.ResourceKindVideo, c.Param("videoID"))
}

// ResumeVideoAnalysis handles GET /videos/:videoID/analysis/resume.
func (s *Server) ResumeVideoAnalysis(c *gin.Context) {
	s.resumeAnalysis(c, versionedrun.ResourceKindVideo, c.Param("videoID"))
}

// VideoAnalysisStatus handles GET /videos/:videoID/analysis/status.
func (s *Server) VideoAnalysisStatus(c *gin.Context) {
	s.analysisStatus(c, versionedrun.ResourceKindVideo, c.Param("videoID"))
}

// VideoAnalysisVersions handles GET /videos/:videoID/analysis/versions.
func (s *Server) VideoAnalysisVersions(c *gin.Context) {
	s.analysisVersions(c, versionedrun.ResourceKindVideo, c.Param("videoID"))
}

// startAnalysis dispatches a dynamic analysis and streams it. A cached
// result streams as result+complete without starting a run.
func (s *Server) startAnalysis(c *gin.Context, kind versionedrun.ResourceKind, resourceID string) {
	var req AnalysisStartRequest
	if err := bindOptionalBody(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := s.coordinator.StartAnalysis(c.Request.Context(), kind, resourceID, req.AdditionalInstructions)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	s.streamDispatch(c, d)
}

// resumeAnalysis reattaches to a resource's streaming analysis. When nothing
// is streaming anymore the stream is gone: 410 tells the client whether a
// completed version exists to fetch instead.
func (s *Server) resumeAnalysis(c *gin.Context, kind versionedrun.ResourceKind, resourceID string) {
	d, err := s.coordinator.ResumeStreaming(c.Request.Context(), kind, resourceID)
	if err == nil {
		s.streamDispatch(c, d)
		return
	}
	if !errors.Is(err, services.ErrNotFound) {
		mapServiceError(c, err)
		return
	}

	_, lerr := s.analyses.GetLatestCompleted(c.Request.Context(), kind, resourceID)
	switch {
	case lerr == nil:
		c.JSON(http.StatusGone, gin.H{"completed": true})
	case errors.Is(lerr, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "no streaming analysis for this resource"})
	default:
		mapServiceError(c, lerr)
	}
}

// analysisStatus reports the streaming or latest completed version.
func (s *Server) analysisStatus(c *gin.Context, kind versionedrun.ResourceKind, resourceID string) {
	ctx := c.Request.Context()

	if vr, err := s.analyses.GetStreaming(ctx, kind, resourceID); err == nil {
		resp := AnalysisStatusResponse{
			Status:    string(vr.Status),
			Version:   vr.Version,
			Namespace: vr.Namespace,
		}
		if vr.WorkflowRunID != nil && !coordinator.IsClaimToken(*vr.WorkflowRunID) {
			resp.WorkflowRunID = *vr.WorkflowRunID
		}
		c.JSON(http.StatusOK, resp)
		return
	} else if !errors.Is(err, services.ErrNotFound) {
		mapServiceError(c, err)
		return
	}

	latest, err := s.analyses.GetLatestCompleted(ctx, kind, resourceID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, AnalysisStatusResponse{
		Status:  string(latest.Status),
		Version: latest.Version,
	})
}

// analysisVersions lists all versions of a resource, newest first.
func (s *Server) analysisVersions(c *gin.Context, kind versionedrun.ResourceKind, resourceID string) {
	versions, err := s.analyses.ListVersions(c.Request.Context(), kind, resourceID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"versions": versions})
}

// StartSlides handles POST /videos/:videoID/slides/start. Duplicate requests
// get 409 with the active run id.
func (s *Server) StartSlides(c *gin.Context) {
	d, err := s.coordinator.StartSlides(c.Request.Context(), c.Param("videoID"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	s.streamRun(c, d.RunID, "", 0)
}

// ResumeSlides handles GET /videos/:videoID/slides/resume.
func (s *Server) ResumeSlides(c *gin.Context) {
	ex, err := s.slides.GetExtraction(c.Request.Context(), c.Param("videoID"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	switch ex.Status {
	case slideextraction.StatusInProgress:
		if ex.RunID == nil || coordinator.IsClaimToken(*ex.RunID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "extraction run is still being set up"})
			return
		}
		start, ok := streamStartIndex(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startIndex"})
			return
		}
		s.streamRun(c, *ex.RunID, "", start)
	case slideextraction.StatusCompleted:
		c.JSON(http.StatusGone, gin.H{"completed": true})
	case slideextraction.StatusFailed:
		c.JSON(http.StatusGone, gin.H{"completed": false})
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "no extraction in progress"})
	}
}

// SlidesStatus handles GET /videos/:videoID/slides/status.
func (s *Server) SlidesStatus(c *gin.Context) {
	ex, err := s.slides.GetExtraction(c.Request.Context(), c.Param("videoID"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toExtractionResponse(ex))
}

// ListSlides handles GET /videos/:videoID/slides.
func (s *Server) ListSlides(c *gin.Context) {
	slides, err := s.slides.ListSlides(c.Request.Context(), c.Param("videoID"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slides": slides})
}

// SetSlideFeedback handles PUT /videos/:videoID/slides/:slideNumber/feedback.
func (s *Server) SetSlideFeedback(c *gin.Context) {
	slideNumber, err := strconv.Atoi(c.Param("slideNumber"))
	if err != nil || slideNumber < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slide number"})
		return
	}
	var req SlideFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.slides.SetFeedback(c.Request.Context(), c.Param("videoID"), slideNumber, req.IsFirstFramePicked, req.IsLastFramePicked); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// StartPerSlideAnalysis handles POST /videos/:videoID/slides/analysis/start.
func (s *Server) StartPerSlideAnalysis(c *gin.Context) {
	var req PerSlideAnalysisRequest
	if err := bindOptionalBody(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := s.coordinator.StartPerSlideAnalysis(c.Request.Context(), c.Param("videoID"), req.Targets)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	start, ok := streamStartIndex(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startIndex"})
		return
	}
	s.streamRun(c, d.RunID, "", start)
}

// StartSuperAnalysis handles POST /videos/:videoID/super-analysis/start.
func (s *Server) StartSuperAnalysis(c *gin.Context) {
	var req AnalysisStartRequest
	if err := bindOptionalBody(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := s.coordinator.StartSuperAnalysis(c.Request.Context(), c.Param("videoID"), req.AdditionalInstructions)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	s.streamDispatch(c, d)
}

// SuperAnalysisStatus handles GET /videos/:videoID/super-analysis/status.
func (s *Server) SuperAnalysisStatus(c *gin.Context) {
	ctx := c.Request.Context()
	videoID := c.Param("videoID")

	sa, err := s.analyses.GetSuperAnalysis(ctx, videoID)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":    "completed",
			"model":     sa.Model,
			"updatedAt": sa.UpdatedAt,
		})
		return
	}
	if !errors.Is(err, services.ErrNotFound) {
		mapServiceError(c, err)
		return
	}
	s.analysisStatus(c, versionedrun.ResourceKindSuper, videoID)
}

// StartProcess handles POST /videos/:videoID/process/start: the combined
// pipeline stream with sub-streams told apart by source.
func (s *Server) StartProcess(c *gin.Context) {
	var req AnalysisStartRequest
	if err := bindOptionalBody(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := s.coordinator.StartProcess(c.Request.Context(), c.Param("videoID"), req.AdditionalInstructions)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	start, ok := streamStartIndex(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startIndex"})
		return
	}
	s.streamRun(c, d.RunID, "", start)
}
