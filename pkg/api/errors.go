package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recapd/recapd/pkg/coordinator"
	"github.com/recapd/recapd/pkg/engine"
	"github.com/recapd/recapd/pkg/services"
)

// mapServiceError writes the HTTP error response for a service or engine
// layer error.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}

	var active *coordinator.SlidesActiveError
	if errors.As(err, &active) {
		c.JSON(http.StatusConflict, gin.H{
			"error": "slide extraction already in progress",
			"runId": active.RunID,
		})
		return
	}

	switch {
	case errors.Is(err, coordinator.ErrSlidesAlreadyExtracted):
		c.JSON(http.StatusConflict, gin.H{"error": "slides already extracted"})
	case errors.Is(err, services.ErrNotFound), errors.Is(err, engine.ErrRunNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, engine.ErrRunTerminal):
		c.JSON(http.StatusConflict, gin.H{"error": "run already finished"})
	default:
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
