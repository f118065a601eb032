package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stitts-dev/courtside-intel/internal/api/handlers"
	"github.com/stitts-dev/courtside-intel/internal/api/middleware"
	"github.com/stitts-dev/courtside-intel/internal/providers"
	"github.com/stitts-dev/courtside-intel/internal/services"
	"github.com/stitts-dev/courtside-intel/pkg/config"
)

// NewRouter builds the HTTP surface: health, the versioned API and the websocket endpoint
func NewRouter(cfg *config.Config, logger *logrus.Logger, provider *providers.MatchupProvider, sessions *services.SessionService, analyst *services.AnalystService, hub *services.WebSocketHub) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.CorsOrigins))

	healthHandler := handlers.NewHealthHandler(cfg.SessionStore, analyst.Enabled())
	router.GET("/health", healthHandler.GetHealth)

	apiV1 := router.Group("/api/v1")
	SetupRoutes(apiV1, logger, provider, sessions, analyst)

	wsHandler := handlers.NewWebSocketHandler(hub, sessions, cfg.CorsOrigins, logger)
	router.GET("/ws", wsHandler.HandleWebSocket)

	for _, route := range router.Routes() {
		logger.WithFields(logrus.Fields{
			"method": route.Method,
			"path":   route.Path,
		}).Debug("Registered route")
	}

	return router
}

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, logger *logrus.Logger, provider *providers.MatchupProvider, sessions *services.SessionService, analyst *services.AnalystService) {
	scheduleHandler := handlers.NewScheduleHandler(provider, logger)
	matchupHandler := handlers.NewMatchupHandler(provider, logger)
	sessionHandler := handlers.NewSessionHandler(sessions, provider, analyst, logger)
	analystHandler := handlers.NewAnalystHandler(analyst, sessions, logger)

	// Schedule endpoints
	group.GET("/schedule", scheduleHandler.GetSchedule)
	group.GET("/schedule/next", scheduleHandler.GetNextGame)

	// Matchup endpoints
	group.GET("/matchups/:opponent", matchupHandler.GetMatchup)

	// Session endpoints
	group.POST("/sessions", sessionHandler.CreateSession)
	group.GET("/sessions/:id", sessionHandler.GetSession)
	group.DELETE("/sessions/:id", sessionHandler.DeleteSession)
	group.POST("/sessions/:id/game", sessionHandler.SelectGame)
	group.POST("/sessions/:id/events", sessionHandler.ApplyEvent)

	// Analyst endpoints
	group.GET("/sessions/:id/analyst", analystHandler.GetHistory)
	group.POST("/sessions/:id/analyst/messages", analystHandler.SendMessage)
	group.DELETE("/sessions/:id/analyst", analystHandler.Disconnect)
}
