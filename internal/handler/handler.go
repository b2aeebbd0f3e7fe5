package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/board-pagination/internal/service"
	"github.com/rs/zerolog"
)

// Register mounts middleware and all public routes on the given engine.
func Register(r *gin.Engine, logger zerolog.Logger, repo Pinger, postSvc service.PostService) {
	r.Use(RequestID(), Recovery(logger), RequestLogger(logger))

	h := NewHealthHandler(repo)
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewPostHandler(postSvc).Register(api)
	}
}
