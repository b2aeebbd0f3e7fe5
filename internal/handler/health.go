package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/board-pagination/internal/repository"
	"github.com/maxviazov/board-pagination/pkg/response"
)

// readyTimeout bounds the database ping so a stalled pool fails readiness
// instead of hanging the probe.
const readyTimeout = 2 * time.Second

type Pinger = repository.Pinger

// HealthHandler exposes liveness and readiness endpoints.
type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Liveness never touches the database.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// Readiness reports ready once the posts database answers a ping.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, response.ErrorPayload{
			Error:   "unavailable",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
