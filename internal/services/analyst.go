package services

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

var (
	ErrAnalystDisabled    = errors.New("analyst is not configured")
	ErrAnalystUnavailable = errors.New("analyst upstream is unavailable")
	ErrAnalystBusy        = errors.New("analyst is already answering for this session")
	ErrRateLimited        = errors.New("analyst rate limit exceeded")
)

const analystSystemPrompt = `You are a professional NBA analyst specializing in the %s.
You have deep knowledge of basketball statistics, player matchups, and team strategies.
Keep your answers concise, energetic, and focused on helping the user analyze the game.
If asked about stats, give specific numbers.`

type ChatMessage struct {
	Role    string `json:"role"` // "system", "user" or "assistant"
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type streamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// ChatStreamer sends a conversation and streams the reply
type ChatStreamer interface {
	StreamChat(ctx context.Context, messages []ChatMessage, onChunk func(string)) (string, error)
}

// AnalystClientConfig holds what the client needs from the environment
type AnalystClientConfig struct {
	APIKey           string
	BaseURL          string
	Model            string
	Timeout          time.Duration
	FailureThreshold int
	Title            string
}

// AnalystClient talks to an OpenAI-compatible chat completions endpoint in streaming mode
type AnalystClient struct {
	httpClient     *http.Client
	logger         *logrus.Logger
	apiKey         string
	baseURL        string
	model          string
	title          string
	circuitBreaker *gobreaker.CircuitBreaker
}

func NewAnalystClient(cfg AnalystClientConfig, logger *logrus.Logger) *AnalystClient {
	threshold := uint32(3)
	if cfg.FailureThreshold > 0 {
		threshold = uint32(cfg.FailureThreshold)
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "analyst-api",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			// The caller walking away says nothing about the upstream
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"circuit":    name,
				"from_state": from.String(),
				"to_state":   to.String(),
			}).Info("Analyst circuit breaker state changed")
		},
	})

	return &AnalystClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger:         logger,
		apiKey:         cfg.APIKey,
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		model:          cfg.Model,
		title:          cfg.Title,
		circuitBreaker: cb,
	}
}

// StreamChat posts the conversation and calls onChunk for every content delta as it arrives
func (c *AnalystClient) StreamChat(ctx context.Context, messages []ChatMessage, onChunk func(string)) (string, error) {
	result, err := c.circuitBreaker.Execute(func() (interface{}, error) {
		return c.stream(ctx, messages, onChunk)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: %v", ErrAnalystUnavailable, err)
		}
		return "", err
	}
	return result.(string), nil
}

func (c *AnalystClient) stream(ctx context.Context, messages []ChatMessage, onChunk func(string)) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	if c.title != "" {
		req.Header.Set("X-Title", c.title)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("analyst API error: %d %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	reply, err := ParseChatStream(resp.Body, onChunk)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return reply, ctxErr
		}
		return reply, err
	}
	return reply, nil
}

// ParseChatStream reads server-sent events until the stream ends or a [DONE] marker arrives.
// Lines that are not data lines and payloads that do not decode are skipped.
func ParseChatStream(r io.Reader, onChunk func(string)) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var reply strings.Builder
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "[DONE]" {
			break
		}

		var chunk streamChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			continue
		}
		if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == "" {
			continue
		}

		content := chunk.Choices[0].Delta.Content
		reply.WriteString(content)
		if onChunk != nil {
			onChunk(content)
		}
	}
	if err := scanner.Err(); err != nil {
		return reply.String(), fmt.Errorf("failed to read chat stream: %w", err)
	}
	return reply.String(), nil
}

// ChatSession is one analyst conversation. Only one reply streams at a time.
type ChatSession struct {
	mu       sync.Mutex
	messages []ChatMessage
	cancel   context.CancelFunc // non-nil while a reply is streaming
}

func NewChatSession(systemPrompt string) *ChatSession {
	return &ChatSession{
		messages: []ChatMessage{{Role: "system", Content: systemPrompt}},
	}
}

// SendMessage asks the analyst and streams the reply through onChunk. The exchange is added to
// the history only when the reply completes.
func (s *ChatSession) SendMessage(ctx context.Context, client ChatStreamer, text string, onChunk func(string)) (string, error) {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return "", ErrAnalystBusy
	}
	streamCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	outgoing := make([]ChatMessage, len(s.messages), len(s.messages)+1)
	copy(outgoing, s.messages)
	outgoing = append(outgoing, ChatMessage{Role: "user", Content: text})
	s.mu.Unlock()

	reply, err := client.StreamChat(streamCtx, outgoing, onChunk)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancel = nil
	cancel()
	if err != nil {
		return reply, err
	}
	s.messages = append(outgoing, ChatMessage{Role: "assistant", Content: reply})
	return reply, nil
}

// Disconnect cancels the reply in flight, if any
func (s *ChatSession) Disconnect() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel == nil {
		return false
	}
	s.cancel()
	return true
}

// History returns a copy of the conversation without the system prompt
func (s *ChatSession) History() []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]ChatMessage, 0, len(s.messages))
	for _, m := range s.messages {
		if m.Role != "system" {
			history = append(history, m)
		}
	}
	return history
}

// AnalystService keeps one conversation and one rate limiter per dashboard session
type AnalystService struct {
	client       ChatStreamer
	systemPrompt string
	perMinute    int
	logger       *logrus.Logger

	mu       sync.Mutex
	sessions map[string]*ChatSession
	limiters map[string]*rate.Limiter
}

// NewAnalystService creates the service. A nil client leaves the analyst disabled.
func NewAnalystService(client ChatStreamer, homeTeam string, perMinute int, logger *logrus.Logger) *AnalystService {
	return &AnalystService{
		client:       client,
		systemPrompt: fmt.Sprintf(analystSystemPrompt, teamLabel(homeTeam)),
		perMinute:    perMinute,
		logger:       logger,
		sessions:     make(map[string]*ChatSession),
		limiters:     make(map[string]*rate.Limiter),
	}
}

func teamLabel(homeTeam string) string {
	if homeTeam == "" || homeTeam == "Raptors" {
		return "Toronto Raptors"
	}
	return homeTeam
}

func (a *AnalystService) Enabled() bool {
	return a.client != nil
}

// Send asks the session's analyst a question
func (a *AnalystService) Send(ctx context.Context, sessionID string, text string, onChunk func(string)) (string, error) {
	if !a.Enabled() {
		return "", ErrAnalystDisabled
	}

	session, limiter := a.session(sessionID)
	if !limiter.Allow() {
		return "", ErrRateLimited
	}

	log := a.logger.WithField("session_id", sessionID)
	start := time.Now()
	reply, err := session.SendMessage(ctx, a.client, text, onChunk)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Analyst reply cancelled")
		} else if !errors.Is(err, ErrAnalystBusy) {
			log.WithError(err).Warn("Analyst reply failed")
		}
		return reply, err
	}

	log.WithFields(logrus.Fields{
		"reply_chars": len(reply),
		"duration":    time.Since(start).String(),
	}).Info("Analyst replied")
	return reply, nil
}

// Disconnect stops the session's reply in flight
func (a *AnalystService) Disconnect(sessionID string) bool {
	a.mu.Lock()
	session, ok := a.sessions[sessionID]
	a.mu.Unlock()
	if !ok {
		return false
	}
	return session.Disconnect()
}

// History returns the session's conversation so far
func (a *AnalystService) History(sessionID string) []ChatMessage {
	a.mu.Lock()
	session, ok := a.sessions[sessionID]
	a.mu.Unlock()
	if !ok {
		return []ChatMessage{}
	}
	return session.History()
}

// Close drops the session's conversation, cancelling any reply in flight
func (a *AnalystService) Close(sessionID string) {
	a.mu.Lock()
	session, ok := a.sessions[sessionID]
	delete(a.sessions, sessionID)
	delete(a.limiters, sessionID)
	a.mu.Unlock()
	if ok {
		session.Disconnect()
	}
}

// Prune drops the conversation and limiter of every session alive rejects, cancelling any reply
// still streaming for it. alive is called without holding the service lock.
func (a *AnalystService) Prune(alive func(id string) bool) int {
	a.mu.Lock()
	ids := make([]string, 0, len(a.sessions))
	for id := range a.sessions {
		ids = append(ids, id)
	}
	for id := range a.limiters {
		if _, ok := a.sessions[id]; !ok {
			ids = append(ids, id)
		}
	}
	a.mu.Unlock()

	pruned := 0
	for _, id := range ids {
		if alive(id) {
			continue
		}
		a.Close(id)
		pruned++
	}
	return pruned
}

func (a *AnalystService) session(sessionID string) (*ChatSession, *rate.Limiter) {
	a.mu.Lock()
	defer a.mu.Unlock()

	session, ok := a.sessions[sessionID]
	if !ok {
		session = NewChatSession(a.systemPrompt)
		a.sessions[sessionID] = session
	}
	limiter, ok := a.limiters[sessionID]
	if !ok {
		limiter = newPerMinuteLimiter(a.perMinute)
		a.limiters[sessionID] = limiter
	}
	return session, limiter
}

// newPerMinuteLimiter allows a burst of perMinute requests refilled evenly over a minute.
// A non-positive limit disables limiting.
func newPerMinuteLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
}
