package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stitts-dev/courtside-intel/internal/lineup"
	"github.com/stitts-dev/courtside-intel/internal/models"
)

var (
	// ErrStaleResponse is returned when a newer game selection superseded the one being loaded
	ErrStaleResponse = errors.New("matchup response superseded by a newer game selection")
	ErrNoMatchup     = errors.New("no matchup loaded for session")
)

// MatchupSource builds the analysis for an opponent
type MatchupSource interface {
	GetMatchupAnalysis(ctx context.Context, opponent string) (*models.MatchupAnalysis, error)
}

// Publisher pushes session updates to connected views
type Publisher interface {
	BroadcastToSession(sessionID string, messageType string, data interface{}) error
	// CloseSession disconnects every view of the session and returns how many there were
	CloseSession(sessionID string) int
}

// SessionView is what a dashboard renders for its session
type SessionView struct {
	ID         string                  `json:"id"`
	Game       *models.Game            `json:"game,omitempty"`
	Generation uint64                  `json:"generation"`
	Loading    bool                    `json:"loading"`
	Matchup    *models.MatchupAnalysis `json:"matchup,omitempty"`
	Lineup     *lineup.Snapshot        `json:"lineup,omitempty"`
	Presets    []string                `json:"homePresets"`
}

// EventResult is the outcome of one lineup interaction
type EventResult struct {
	Changed bool            `json:"changed"`
	Lineup  lineup.Snapshot `json:"lineup"`
}

// SessionService owns the lineup state of every dashboard session. Reads and writes of one
// session are serialised; matchup fetches run outside the lock and are reconciled by generation.
type SessionService struct {
	store     SessionStore
	matchups  MatchupSource
	publisher Publisher
	logger    *logrus.Logger
	now       func() time.Time

	mu    sync.Mutex
	locks map[string]*sessionLock
}

// sessionLock serialises one session. It lives in the map only while someone holds or waits on it.
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// NewSessionService creates the service. publisher may be nil.
func NewSessionService(store SessionStore, matchups MatchupSource, publisher Publisher, logger *logrus.Logger) *SessionService {
	return &SessionService{
		store:     store,
		matchups:  matchups,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
		locks:     make(map[string]*sessionLock),
	}
}

func (s *SessionService) lock(id string) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sessionLock{}
		s.locks[id] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.mu.Unlock()
	}
}

// Create starts an idle session with no game selected
func (s *SessionService) Create(ctx context.Context) (*SessionView, error) {
	now := s.now().UTC()
	record := &SessionRecord{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.WithField("session_id", record.ID).Info("Session created")
	return viewOf(record), nil
}

// Get returns the current view of a session
func (s *SessionService) Get(ctx context.Context, id string) (*SessionView, error) {
	record, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return viewOf(record), nil
}

// Delete drops a session and tells its views
func (s *SessionService) Delete(ctx context.Context, id string) error {
	unlock := s.lock(id)
	err := s.store.Delete(ctx, id)
	unlock()
	if err != nil {
		return err
	}

	s.publish(id, MessageSessionClosed, map[string]string{"id": id})
	views := 0
	if s.publisher != nil {
		views = s.publisher.CloseSession(id)
	}
	s.logger.WithFields(logrus.Fields{
		"session_id":   id,
		"views_closed": views,
	}).Info("Session deleted")
	return nil
}

// SelectGame switches the session to a game and loads its matchup. A selection that is overtaken
// by a later one before its fetch completes returns ErrStaleResponse and leaves the session alone.
func (s *SessionService) SelectGame(ctx context.Context, id string, game models.Game) (*SessionView, error) {
	generation, err := s.beginLoad(ctx, id, game)
	if err != nil {
		return nil, err
	}

	log := s.logger.WithFields(logrus.Fields{
		"session_id": id,
		"game_id":    game.ID,
		"opponent":   game.Opponent,
		"generation": generation,
	})

	analysis, fetchErr := s.matchups.GetMatchupAnalysis(ctx, game.Opponent)

	unlock := s.lock(id)
	defer unlock()

	// A cancelled request still has to reconcile, so the store is read without the request ctx.
	storeCtx := context.WithoutCancel(ctx)
	record, err := s.store.Get(storeCtx, id)
	if err != nil {
		return nil, err
	}
	if record.Generation != generation {
		log.WithField("latest_generation", record.Generation).Info("Discarding stale matchup response")
		return nil, ErrStaleResponse
	}

	record.Loading = false
	record.UpdatedAt = s.now().UTC()
	if fetchErr != nil {
		if err := s.store.Save(storeCtx, record); err != nil {
			return nil, fmt.Errorf("failed to save session: %w", err)
		}
		log.WithError(fetchErr).Warn("Matchup fetch failed")
		return nil, fmt.Errorf("failed to load matchup for %s: %w", game.Opponent, fetchErr)
	}

	record.Matchup = analysis
	record.State = lineup.NewState(analysis)
	if err := s.store.Save(storeCtx, record); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	view := viewOf(record)
	s.publish(id, MessageMatchupLoaded, view)
	log.Info("Matchup loaded")
	return view, nil
}

// beginLoad records the new selection and returns the generation the fetch must match
func (s *SessionService) beginLoad(ctx context.Context, id string, game models.Game) (uint64, error) {
	unlock := s.lock(id)
	defer unlock()

	record, err := s.store.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	record.Generation++
	record.Game = &game
	record.Matchup = nil
	record.State = lineup.State{}
	record.Loading = true
	record.UpdatedAt = s.now().UTC()

	if err := s.store.Save(ctx, record); err != nil {
		return 0, fmt.Errorf("failed to save session: %w", err)
	}
	return record.Generation, nil
}

// ApplyEvent runs one lineup interaction against the session's state
func (s *SessionService) ApplyEvent(ctx context.Context, id string, event lineup.Event) (*EventResult, error) {
	unlock := s.lock(id)
	defer unlock()

	record, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.Matchup == nil {
		return nil, ErrNoMatchup
	}

	next, changed := lineup.Apply(record.State, event)
	result := &EventResult{Changed: changed}
	if !changed {
		result.Lineup = lineup.TakeSnapshot(record.State)
		return result, nil
	}

	record.State = next
	record.UpdatedAt = s.now().UTC()
	if err := s.store.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	result.Lineup = lineup.TakeSnapshot(next)
	s.publish(id, MessageLineupUpdated, result.Lineup)

	s.logger.WithFields(logrus.Fields{
		"session_id": id,
		"event":      event.Type,
		"team":       event.Team,
	}).Debug("Lineup event applied")
	return result, nil
}

func (s *SessionService) publish(id string, messageType string, data interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.BroadcastToSession(id, messageType, data); err != nil {
		s.logger.WithError(err).WithField("session_id", id).Warn("Failed to publish session update")
	}
}

func viewOf(record *SessionRecord) *SessionView {
	view := &SessionView{
		ID:         record.ID,
		Game:       record.Game,
		Generation: record.Generation,
		Loading:    record.Loading,
		Matchup:    record.Matchup,
		Presets:    lineup.HomePresets,
	}
	if record.Matchup != nil {
		snapshot := lineup.TakeSnapshot(record.State)
		view.Lineup = &snapshot
	}
	return view
}
