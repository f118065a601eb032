package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	storeKind      string
	analystEnabled bool
	startedAt      time.Time
}

func NewHealthHandler(storeKind string, analystEnabled bool) *HealthHandler {
	return &HealthHandler{
		storeKind:      storeKind,
		analystEnabled: analystEnabled,
		startedAt:      time.Now(),
	}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"time":          time.Now().UTC(),
		"uptime":        time.Since(h.startedAt).Round(time.Second).String(),
		"session_store": h.storeKind,
		"analyst":       h.analystEnabled,
	})
}
