package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stitts-dev/courtside-intel/internal/lineup"
	"github.com/stitts-dev/courtside-intel/internal/models"
	"github.com/stitts-dev/courtside-intel/internal/providers"
	"github.com/stitts-dev/courtside-intel/internal/services"
	"github.com/stitts-dev/courtside-intel/pkg/logger"
	"github.com/stitts-dev/courtside-intel/pkg/utils"
)

type SessionHandler struct {
	sessions *services.SessionService
	schedule ScheduleSource
	analyst  *services.AnalystService
	logger   *logrus.Logger
}

func NewSessionHandler(sessions *services.SessionService, schedule ScheduleSource, analyst *services.AnalystService, logger *logrus.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		schedule: schedule,
		analyst:  analyst,
		logger:   logger,
	}
}

// SelectGameRequest picks a scheduled game by id, or names an opponent for an ad-hoc matchup
type SelectGameRequest struct {
	GameID   string `json:"gameId"`
	Opponent string `json:"opponent"`
}

// CreateSession starts a new dashboard session. With ?open=next it also loads the next game.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()
	view, err := h.sessions.Create(ctx)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if c.Query("open") == "next" {
		games, err := h.schedule.GetSchedule(ctx)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		if game, ok := providers.NextGame(games); ok {
			if view, err = h.sessions.SelectGame(ctx, view.ID, game); err != nil {
				respondError(c, h.logger, err)
				return
			}
		}
	}

	utils.SendCreated(c, view)
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	view, err := h.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SendSuccessWithMeta(c, view, &utils.Meta{Generation: view.Generation})
}

// SelectGame loads the matchup for a game and resets the lineup to both teams' starters
func (h *SessionHandler) SelectGame(c *gin.Context) {
	var req SelectGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	ctx := c.Request.Context()
	var game models.Game
	switch {
	case req.GameID != "":
		games, err := h.schedule.GetSchedule(ctx)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		found, ok := providers.FindGame(games, req.GameID)
		if !ok {
			utils.SendNotFound(c, "Game not found")
			return
		}
		game = found
	case strings.TrimSpace(req.Opponent) != "":
		game = models.Game{Opponent: strings.TrimSpace(req.Opponent), Status: models.GameStatusUpcoming}
	default:
		utils.SendValidationError(c, "Either gameId or opponent is required", "")
		return
	}

	view, err := h.sessions.SelectGame(ctx, c.Param("id"), game)
	if err != nil {
		if isServiceError(err) {
			respondError(c, h.logger, err)
			return
		}
		logger.WithMatchupContext(c.Param("id"), game.ID, game.Opponent).WithError(err).Warn("Matchup load failed")
		utils.SendBadGateway(c, "Failed to load matchup", err.Error())
		return
	}
	utils.SendSuccessWithMeta(c, view, &utils.Meta{Generation: view.Generation})
}

// ApplyEvent feeds one lineup interaction to the session's simulator
func (h *SessionHandler) ApplyEvent(c *gin.Context) {
	var event lineup.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.SendValidationError(c, "Invalid event", err.Error())
		return
	}

	switch event.Type {
	case lineup.EventSelectSlot, lineup.EventClickBench, lineup.EventApplyPreset, lineup.EventClearSelection:
	default:
		utils.SendValidationError(c, "Unknown event type", string(event.Type))
		return
	}
	if event.Type != lineup.EventClearSelection && !event.Team.Valid() {
		utils.SendValidationError(c, "Invalid team", "team must be home or opponent")
		return
	}

	result, err := h.sessions.ApplyEvent(c.Request.Context(), c.Param("id"), event)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SendSuccess(c, result)
}

// DeleteSession ends a session along with its analyst conversation
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	id := c.Param("id")
	if err := h.sessions.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.analyst.Close(id)
	utils.SendSuccess(c, gin.H{"id": id, "deleted": true})
}
