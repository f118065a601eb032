package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stitts-dev/courtside-intel/internal/lineup"
	"github.com/stitts-dev/courtside-intel/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRecord is the ephemeral view state of one dashboard. Nothing in it outlives the store's
// TTL.
type SessionRecord struct {
	ID         string                  `json:"id"`
	Game       *models.Game            `json:"game,omitempty"`
	Matchup    *models.MatchupAnalysis `json:"matchup,omitempty"`
	State      lineup.State            `json:"state"`
	Generation uint64                  `json:"generation"`
	Loading    bool                    `json:"loading"`
	CreatedAt  time.Time               `json:"createdAt"`
	UpdatedAt  time.Time               `json:"updatedAt"`
}

// SessionStore keeps session records. Get and Save work on copies; callers never share a record
// with the store.
type SessionStore interface {
	Get(ctx context.Context, id string) (*SessionRecord, error)
	Save(ctx context.Context, record *SessionRecord) error
	Delete(ctx context.Context, id string) error
	// Exists reports whether a live record is stored without counting as an access
	Exists(ctx context.Context, id string) (bool, error)
}

type memoryEntry struct {
	data       []byte
	lastAccess time.Time
}

// MemorySessionStore holds sessions in process. Entries idle for longer than the TTL are removed
// by Sweep.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemorySessionStore) Get(ctx context.Context, id string) (*SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok || s.expired(entry) {
		return nil, ErrSessionNotFound
	}
	entry.lastAccess = s.now()
	s.sessions[id] = entry

	var record SessionRecord
	if err := json.Unmarshal(entry.data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session %s: %w", id, err)
	}
	return &record, nil
}

func (s *MemorySessionStore) Save(ctx context.Context, record *SessionRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", record.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[record.ID] = memoryEntry{data: data, lastAccess: s.now()}
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *MemorySessionStore) Exists(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	return ok && !s.expired(entry), nil
}

// Sweep drops idle sessions and returns how many were removed
func (s *MemorySessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, entry := range s.sessions {
		if s.expired(entry) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored sessions, expired or not
func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *MemorySessionStore) expired(entry memoryEntry) bool {
	return s.ttl > 0 && s.now().Sub(entry.lastAccess) > s.ttl
}

// RedisSessionStore keeps sessions as JSON values with a sliding TTL
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{
		client: client,
		ttl:    ttl,
	}
}

// SessionCacheKey is the redis key for a session
func SessionCacheKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*SessionRecord, error) {
	key := SessionCacheKey(id)
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session %s: %w", id, err)
	}

	var record SessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session %s: %w", id, err)
	}

	if s.ttl > 0 {
		if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
			return nil, fmt.Errorf("failed to refresh session %s: %w", id, err)
		}
	}
	return &record, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, record *SessionRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", record.ID, err)
	}
	if err := s.client.Set(ctx, SessionCacheKey(record.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session %s: %w", record.ID, err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	removed, err := s.client.Del(ctx, SessionCacheKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	if removed == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (s *RedisSessionStore) Exists(ctx context.Context, id string) (bool, error) {
	n, err := s.client.Exists(ctx, SessionCacheKey(id)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session %s: %w", id, err)
	}
	return n > 0, nil
}

// Sweep is a no-op: redis expires idle keys itself
func (s *RedisSessionStore) Sweep() int {
	return 0
}

// SessionAlive returns a check for whether a session is still stored. Lookup failures count as
// alive so a flaky store never drops state.
func SessionAlive(store SessionStore, timeout time.Duration) func(id string) bool {
	return func(id string) bool {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		ok, err := store.Exists(ctx, id)
		return err != nil || ok
	}
}
