package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListRuns handles GET /runs?workflow=&state=&limit=.
func (s *Server) ListRuns(c *gin.Context) {
	limit, ok := queryInt(c, "limit", 50)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	runs, err := s.engine.List(c.Request.Context(), c.Query("workflow"), c.Query("state"), limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	out := make([]RunResponse, 0, len(runs))
	for _, run := range runs {
		out = append(out, toRunResponse(run))
	}
	c.JSON(http.StatusOK, gin.H{"runs": out})
}

// GetRun handles GET /runs/:runID.
func (s *Server) GetRun(c *gin.Context) {
	run, err := s.engine.Get(c.Request.Context(), c.Param("runID"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRunResponse(run))
}

// StreamRun handles GET /runs/:runID/stream?startIndex=N&namespace=K: the
// low-level attach over any run's event log.
func (s *Server) StreamRun(c *gin.Context) {
	start, ok := streamStartIndex(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startIndex"})
		return
	}
	s.streamRun(c, c.Param("runID"), c.Query("namespace"), start)
}

// CancelRun handles POST /runs/:runID/cancel.
func (s *Server) CancelRun(c *gin.Context) {
	if err := s.engine.Cancel(c.Request.Context(), c.Param("runID")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancellation requested"})
}

// PauseRun handles POST /runs/:runID/pause.
func (s *Server) PauseRun(c *gin.Context) {
	if err := s.engine.Pause(c.Request.Context(), c.Param("runID")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "pause requested"})
}

// ResumeRun handles POST /runs/:runID/resume.
func (s *Server) ResumeRun(c *gin.Context) {
	if err := s.engine.Resume(c.Request.Context(), c.Param("runID")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "resumed"})
}
