package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stitts-dev/courtside-intel/internal/api/middleware"
	"github.com/stitts-dev/courtside-intel/internal/services"
	"github.com/stitts-dev/courtside-intel/pkg/logger"
	"github.com/stitts-dev/courtside-intel/pkg/utils"
)

type WebSocketHandler struct {
	hub      *services.WebSocketHub
	sessions *services.SessionService
	upgrader websocket.Upgrader
	logger   *logrus.Logger
}

func NewWebSocketHandler(hub *services.WebSocketHub, sessions *services.SessionService, allowedOrigins []string, logger *logrus.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub:      hub,
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return middleware.OriginAllowed(allowedOrigins, r.Header.Get("Origin"))
			},
		},
		logger: logger,
	}
}

// HandleWebSocket attaches a live view to a session. The first message is a welcome carrying the
// current session view; later messages follow every change to the session.
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		utils.SendValidationError(c, "session_id is required", "")
		return
	}
	view, err := h.sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WithError(err).Error("Failed to upgrade connection")
		return
	}

	data, err := json.Marshal(view)
	if err != nil {
		h.logger.WithError(err).Error("Failed to encode welcome message")
		conn.Close()
		return
	}
	welcome := services.WebSocketMessage{
		Type:      services.MessageWelcome,
		SessionID: sessionID,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
	if err := conn.WriteJSON(welcome); err != nil {
		h.logger.WithError(err).Error("Failed to send welcome message")
		conn.Close()
		return
	}

	client := services.NewClient(h.hub, conn, sessionID)
	if !h.hub.Register(client) {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		conn.Close()
		return
	}

	logger.WithSession(sessionID).WithField("views", h.hub.ClientCount(sessionID)).Info("Live view attached")

	go client.WritePump()
	go client.ReadPump()
}
