package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recapd/recapd/ent/versionedrun"
)

// CreateTranscript handles POST /transcripts: stores externally provided
// transcript text for later analysis.
func (s *Server) CreateTranscript(c *gin.Context) {
	var req CreateTranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := s.transcripts.CreateExternal(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": t.ID})
}

// GetTranscript handles GET /transcripts/:transcriptID.
func (s *Server) GetTranscript(c *gin.Context) {
	t, err := s.transcripts.GetExternal(c.Request.Context(), c.Param("transcriptID"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":        t.ID,
		"title":     t.Title,
		"content":   t.Content,
		"createdAt": t.CreatedAt,
	})
}

// StartTranscriptAnalysis handles POST /transcripts/:transcriptID/analysis/start.
func (s *Server) StartTranscriptAnalysis(c *gin.Context) {
	s.startAnalysis(c, versionedrun.ResourceKindTranscript, c.Param("transcriptID"))
}

// ResumeTranscriptAnalysis handles GET /transcripts/:transcriptID/analysis/resume.
func (s *Server) ResumeTranscriptAnalysis(c *gin.Context) {
	s.resumeAnalysis(c, versionedrun.ResourceKindTranscript, c.Param("transcriptID"))
}

// TranscriptAnalysisStatus handles GET /transcripts/:transcriptID/analysis/status.
func (s *Server) TranscriptAnalysisStatus(c *gin.Context) {
	s.analysisStatus(c, versionedrun.ResourceKindTranscript, c.Param("transcriptID"))
}

// TranscriptAnalysisVersions handles GET /transcripts/:transcriptID/analysis/versions.
func (s *Server) TranscriptAnalysisVersions(c *gin.Context) {
	s.analysisVersions(c, versionedrun.ResourceKindTranscript, c.Param("transcriptID"))
}
