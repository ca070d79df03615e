// Package api exposes the HTTP surface: workflow dispatch endpoints that
// stream run events over SSE, JSON status/listing endpoints, and run control.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/recapd/recapd/pkg/config"
	"github.com/recapd/recapd/pkg/coordinator"
	"github.com/recapd/recapd/pkg/engine"
	"github.com/recapd/recapd/pkg/services"
)

// Server holds the handler dependencies.
type Server struct {
	cfg         *config.ServerConfig
	engine      *engine.Engine
	coordinator *coordinator.Coordinator
	transcripts *services.TranscriptService
	analyses    *services.AnalysisService
	slides      *services.SlideService
	pool        *engine.WorkerPool
}

// NewServer creates the API server.
func NewServer(
	cfg *config.ServerConfig,
	eng *engine.Engine,
	coord *coordinator.Coordinator,
	transcripts *services.TranscriptService,
	analyses *services.AnalysisService,
	slides *services.SlideService,
	pool *engine.WorkerPool,
) *Server {
	return &Server{
		cfg:         cfg,
		engine:      eng,
		coordinator: coord,
		transcripts: transcripts,
		analyses:    analyses,
		slides:      slides,
		pool:        pool,
	}
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())
	r.Use(securityHeaders())
	r.Use(corsMiddleware(s.cfg.CORSAllowedOrigins))

	r.GET("/health", s.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")

	videos := v1.Group("/videos/:videoID", validateVideoID())
	videos.POST("/transcript/start", s.StartTranscript)
	videos.POST("/analysis/start", s.StartVideoAnalysis)
	videos.GET("/analysis/resume", s.ResumeVideoAnalysis)
	videos.GET("/analysis/status", s.VideoAnalysisStatus)
	videos.GET("/analysis/versions", s.VideoAnalysisVersions)
	videos.POST("/slides/start", s.StartSlides)
	videos.GET("/slides/resume", s.ResumeSlides)
	videos.GET("/slides/status", s.SlidesStatus)
	videos.GET("/slides", s.ListSlides)
	videos.PUT("/slides/:slideNumber/feedback", s.SetSlideFeedback)
	videos.POST("/slides/analysis/start", s.StartPerSlideAnalysis)
	videos.POST("/super-analysis/start", s.StartSuperAnalysis)
	videos.GET("/super-analysis/status", s.SuperAnalysisStatus)
	videos.POST("/process/start", s.StartProcess)

	transcripts := v1.Group("/transcripts")
	transcripts.POST("", s.CreateTranscript)
	transcripts.GET("/:transcriptID", s.GetTranscript)
	transcripts.POST("/:transcriptID/analysis/start", s.StartTranscriptAnalysis)
	transcripts.GET("/:transcriptID/analysis/resume", s.ResumeTranscriptAnalysis)
	transcripts.GET("/:transcriptID/analysis/status", s.TranscriptAnalysisStatus)
	transcripts.GET("/:transcriptID/analysis/versions", s.TranscriptAnalysisVersions)

	runs := v1.Group("/runs")
	runs.GET("", s.ListRuns)
	runs.GET("/:runID", s.GetRun)
	runs.GET("/:runID/stream", s.StreamRun)
	runs.POST("/:runID/cancel", s.CancelRun)
	runs.POST("/:runID/pause", s.PauseRun)
	runs.POST("/:runID/resume", s.ResumeRun)

	return r
}
