package api

import (
	"context"
	"net/http"
	"time"

	"plateshare-server/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const LivenessMessage = "PlateShare Server Is Running"

// Pinger checks that the configured store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// @Summary Liveness
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, LivenessMessage)
}

// @Summary Health check
// @Description Reports whether the store answers a ping.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} httperr.Response
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, httperr.CodeInternal, err, "Store unavailable", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}
