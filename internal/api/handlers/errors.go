package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stitts-dev/courtside-intel/internal/providers"
	"github.com/stitts-dev/courtside-intel/internal/services"
	"github.com/stitts-dev/courtside-intel/pkg/utils"
)

// respondError maps service errors onto the response envelope
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		utils.SendNotFound(c, "Session not found")
	case errors.Is(err, services.ErrStaleResponse):
		utils.SendConflict(c, utils.ErrCodeStaleMatchup, "A newer game selection replaced this one")
	case errors.Is(err, services.ErrNoMatchup):
		utils.SendConflict(c, utils.ErrCodeConflict, "Select a game before changing the lineup")
	case errors.Is(err, services.ErrAnalystBusy):
		utils.SendConflict(c, utils.ErrCodeConflict, "The analyst is still answering the previous question")
	case errors.Is(err, services.ErrRateLimited):
		utils.SendTooManyRequests(c, "Too many analyst questions, try again shortly")
	case errors.Is(err, services.ErrAnalystDisabled):
		utils.SendUnavailable(c, "The analyst is not configured")
	case errors.Is(err, services.ErrAnalystUnavailable):
		utils.SendUnavailable(c, "The analyst is temporarily unavailable")
	case errors.Is(err, providers.ErrOpponentRequired):
		utils.SendValidationError(c, "Opponent is required", err.Error())
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to send
		c.Status(499)
	case errors.Is(err, context.DeadlineExceeded):
		utils.SendError(c, http.StatusGatewayTimeout, utils.NewAppError(utils.ErrCodeUpstreamFailure, "Timed out waiting for matchup data"))
	default:
		logger.WithError(err).WithField("path", c.Request.URL.Path).Error("Request failed")
		utils.SendInternalError(c, "Internal server error")
	}
}

// isServiceError reports whether err is one respondError maps to a specific status
func isServiceError(err error) bool {
	for _, target := range []error{
		services.ErrSessionNotFound, services.ErrStaleResponse, services.ErrNoMatchup,
		services.ErrAnalystBusy, services.ErrRateLimited, services.ErrAnalystDisabled,
		services.ErrAnalystUnavailable, providers.ErrOpponentRequired,
		context.Canceled, context.DeadlineExceeded,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
