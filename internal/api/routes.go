package api

import (
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/youruser/combineapp/internal/compose"
)

// RegisterRoutes wires the HTTP surface onto r.
func RegisterRoutes(r *gin.Engine, pipeline *compose.Pipeline, logger *log.Logger) {
	h := &handlers{pipeline: pipeline, logger: logger}
	r.GET("/healthz", h.health)
	r.POST("/combine", h.combine)
}
