package handlers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stitts-dev/courtside-intel/internal/api/middleware"
	"github.com/stitts-dev/courtside-intel/internal/services"
	"github.com/stitts-dev/courtside-intel/pkg/logger"
	"github.com/stitts-dev/courtside-intel/pkg/utils"
)

type AnalystHandler struct {
	analyst  *services.AnalystService
	sessions *services.SessionService
	logger   *logrus.Logger
}

func NewAnalystHandler(analyst *services.AnalystService, sessions *services.SessionService, logger *logrus.Logger) *AnalystHandler {
	return &AnalystHandler{
		analyst:  analyst,
		sessions: sessions,
		logger:   logger,
	}
}

type AskRequest struct {
	Message string `json:"message" binding:"required"`
}

// SendMessage streams the analyst's reply as server-sent events: "chunk" events carry text
// deltas, then a single "done", "cancelled" or "error" event closes the stream. Failures before
// the first chunk are returned as a regular error response.
func (h *AnalystHandler) SendMessage(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	id := c.Param("id")
	if _, err := h.sessions.Get(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !h.analyst.Enabled() {
		respondError(c, h.logger, services.ErrAnalystDisabled)
		return
	}

	streaming := false
	startStream := func() {
		if streaming {
			return
		}
		streaming = true
		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no")
	}

	reply, err := h.analyst.Send(c.Request.Context(), id, req.Message, func(chunk string) {
		startStream()
		c.SSEvent("chunk", gin.H{"content": chunk})
		c.Writer.Flush()
	})

	if c.Request.Context().Err() != nil {
		// Client hung up; nothing left to write to
		return
	}
	cancelled := errors.Is(err, context.Canceled)
	if err != nil && !streaming && !cancelled {
		if isServiceError(err) {
			respondError(c, h.logger, err)
			return
		}
		utils.SendBadGateway(c, "The analyst could not answer", err.Error())
		return
	}

	startStream()
	switch {
	case cancelled:
		c.SSEvent("cancelled", gin.H{"reply": reply})
	case err != nil:
		c.SSEvent("error", gin.H{"message": err.Error()})
	default:
		c.SSEvent("done", gin.H{"reply": reply})
	}
	c.Writer.Flush()
}

// Disconnect cancels the reply currently streaming for the session
func (h *AnalystHandler) Disconnect(c *gin.Context) {
	id := c.Param("id")
	cancelled := h.analyst.Disconnect(id)
	if cancelled {
		logger.WithRequestContext(c.GetString(middleware.RequestIDKey), id).Info("Analyst reply cancelled by client")
	}
	utils.SendSuccess(c, gin.H{"cancelled": cancelled})
}

// GetHistory returns the session's conversation with the analyst
func (h *AnalystHandler) GetHistory(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.sessions.Get(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	history := h.analyst.History(id)
	utils.SendSuccessWithMeta(c, history, &utils.Meta{Total: len(history)})
}
