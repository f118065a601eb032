package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stitts-dev/courtside-intel/internal/services"
	"github.com/stitts-dev/courtside-intel/pkg/utils"
)

type MatchupHandler struct {
	matchups services.MatchupSource
	logger   *logrus.Logger
}

func NewMatchupHandler(matchups services.MatchupSource, logger *logrus.Logger) *MatchupHandler {
	return &MatchupHandler{
		matchups: matchups,
		logger:   logger,
	}
}

// GetMatchup returns the scouting analysis against an opponent without touching any session
func (h *MatchupHandler) GetMatchup(c *gin.Context) {
	analysis, err := h.matchups.GetMatchupAnalysis(c.Request.Context(), c.Param("opponent"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SendSuccess(c, analysis)
}
