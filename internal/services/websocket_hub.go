package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 4096
)

// Message types pushed to dashboard views
const (
	MessageWelcome       = "welcome"
	MessageMatchupLoaded = "matchup_loaded"
	MessageLineupUpdated = "lineup_updated"
	MessageSessionClosed = "session_closed"
)

// WebSocketHub fans session updates out to the views watching that session
type WebSocketHub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
	logger     *logrus.Logger
}

// Client is one websocket connection bound to a session
type Client struct {
	hub       *WebSocketHub
	conn      *websocket.Conn
	send      chan []byte
	sessionID string
	mu        sync.RWMutex
	topics    map[string]bool
}

type WebSocketMessage struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// Subscription narrows which message types a client receives
type Subscription struct {
	Action string   `json:"action"` // "subscribe" or "unsubscribe"
	Topics []string `json:"topics"`
}

func NewWebSocketHub(logger *logrus.Logger) *WebSocketHub {
	return &WebSocketHub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run serves registrations until ctx is done, then drops every client
func (h *WebSocketHub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.WithField("session_id", client.sessionID).Debug("WebSocket client registered")

		case client := <-h.unregister:
			h.remove(client)
			h.logger.WithField("session_id", client.sessionID).Debug("WebSocket client unregistered")

		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Register adds a new client to the hub. It reports false once the hub has stopped.
func (h *WebSocketHub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client and closes its send channel
func (h *WebSocketHub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *WebSocketHub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
}

// CloseSession disconnects every client of the session and returns how many were dropped.
// Messages already queued for them are still written before the close frame.
func (h *WebSocketHub) CloseSession(sessionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	closed := 0
	for client := range h.clients {
		if client.sessionID != sessionID {
			continue
		}
		delete(h.clients, client)
		close(client.send)
		closed++
	}
	return closed
}

// ClientCount returns the number of views watching a session
func (h *WebSocketHub) ClientCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for client := range h.clients {
		if client.sessionID == sessionID {
			n++
		}
	}
	return n
}

// BroadcastToSession pushes a message to every client of the session subscribed to its type.
// Clients with a full buffer miss the message.
func (h *WebSocketHub) BroadcastToSession(sessionID string, messageType string, data interface{}) error {
	messageBytes, err := encodeMessage(sessionID, messageType, data)
	if err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if client.sessionID != sessionID || !client.IsSubscribedTo(messageType) {
			continue
		}
		select {
		case client.send <- messageBytes:
		default:
			h.logger.WithField("session_id", sessionID).Warn("WebSocket client buffer full, dropping message")
		}
	}

	return nil
}

func encodeMessage(sessionID string, messageType string, data interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(WebSocketMessage{
		Type:      messageType,
		SessionID: sessionID,
		Data:      jsonData,
		Timestamp: time.Now().UTC(),
	})
}

// NewClient creates a client subscribed to every message type
func NewClient(hub *WebSocketHub, conn *websocket.Conn, sessionID string) *Client {
	return &Client{
		hub:       hub,
		conn:      conn,
		send:      make(chan []byte, 256),
		sessionID: sessionID,
		topics:    map[string]bool{"*": true},
	}
}

func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var sub Subscription
		err := c.conn.ReadJSON(&sub)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.WithError(err).WithField("session_id", c.sessionID).Error("WebSocket read error")
			}
			break
		}
		c.applySubscription(sub)
	}
}

func (c *Client) applySubscription(sub Subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch sub.Action {
	case "subscribe":
		for _, topic := range sub.Topics {
			c.topics[topic] = true
		}
	case "unsubscribe":
		for _, topic := range sub.Topics {
			delete(c.topics, topic)
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current websocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// IsSubscribedTo reports whether the client wants a message type; "*" subscribes to all
func (c *Client) IsSubscribedTo(topic string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.topics[topic] || c.topics["*"]
}
