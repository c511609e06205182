package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/youruser/combineapp/internal/compose"
)

// combineRequest mirrors the POST /combine JSON body.
type combineRequest struct {
	Items []compose.Item `json:"items"`
}

type handlers struct {
	pipeline *compose.Pipeline
	logger   *log.Logger
}

// health is a liveness probe.
func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// combine fetches, captions and arranges the requested images and
// responds with the composite PNG. Request-caused failures come back as
// 400 with a JSON detail; anything unexpected is a 500.
func (h *handlers) combine(c *gin.Context) {
	var req combineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	png, err := h.pipeline.Combine(c.Request.Context(), req.Items)
	if err != nil {
		if compose.IsClient(err) {
			h.logger.Warn("rejected combine request", "code", compose.CodeOf(err), "err", err)
			c.JSON(http.StatusBadRequest, gin.H{
				"error": compose.UserMessage(err),
				"code":  string(compose.CodeOf(err)),
			})
			return
		}
		h.logger.Error("combine failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
