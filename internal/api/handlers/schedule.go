package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stitts-dev/courtside-intel/internal/models"
	"github.com/stitts-dev/courtside-intel/internal/providers"
	"github.com/stitts-dev/courtside-intel/pkg/utils"
)

// ScheduleSource lists the season's games
type ScheduleSource interface {
	GetSchedule(ctx context.Context) ([]models.Game, error)
}

type ScheduleHandler struct {
	schedule ScheduleSource
	logger   *logrus.Logger
}

func NewScheduleHandler(schedule ScheduleSource, logger *logrus.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		schedule: schedule,
		logger:   logger,
	}
}

type gameResponse struct {
	models.Game
	LogoURL string `json:"logoUrl,omitempty"`
}

func toGameResponse(g models.Game) gameResponse {
	return gameResponse{Game: g, LogoURL: g.LogoURL()}
}

// GetSchedule returns the season schedule, optionally filtered by status
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	games, err := h.schedule.GetSchedule(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	status := models.GameStatus(c.Query("status"))
	switch status {
	case "", models.GameStatusUpcoming, models.GameStatusCompleted, models.GameStatusLive:
	default:
		utils.SendValidationError(c, "Invalid status filter", "status must be upcoming, completed or live")
		return
	}

	out := make([]gameResponse, 0, len(games))
	for _, g := range games {
		if status != "" && g.Status != status {
			continue
		}
		out = append(out, toGameResponse(g))
	}

	utils.SendSuccessWithMeta(c, out, &utils.Meta{Total: len(out)})
}

// GetNextGame returns the game the dashboard opens on
func (h *ScheduleHandler) GetNextGame(c *gin.Context) {
	games, err := h.schedule.GetSchedule(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	game, ok := providers.NextGame(games)
	if !ok {
		utils.SendNotFound(c, "No games scheduled")
		return
	}
	utils.SendSuccess(c, toGameResponse(game))
}
