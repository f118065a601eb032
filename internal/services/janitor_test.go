package services

import (
	"context"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (s *countingSweeper) Sweep() int {
	s.calls.Add(1)
	return 2
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestSessionJanitor_RunOnce(t *testing.T) {
	store := NewMemorySessionStore(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }
	require.NoError(t, store.Save(context.Background(), sampleRecord("old")))
	now = now.Add(2 * time.Minute)

	janitor := NewSessionJanitor(store, time.Minute, quietLogger())

	assert.Equal(t, 1, janitor.RunOnce())
	assert.Equal(t, 0, store.Len())
}

func TestSessionJanitor_StartRunsOnSchedule(t *testing.T) {
	sweeper := &countingSweeper{}
	janitor := NewSessionJanitor(sweeper, time.Second, quietLogger())

	require.NoError(t, janitor.Start())
	defer janitor.Stop()

	assert.Error(t, janitor.Start(), "starting twice is rejected")
	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 1 }, 5*time.Second, 50*time.Millisecond)
}

func TestSessionJanitor_RejectsNonPositiveInterval(t *testing.T) {
	janitor := NewSessionJanitor(&countingSweeper{}, 0, quietLogger())
	assert.Error(t, janitor.Start())
	janitor.Stop()
}

type recordingPruner struct {
	checked []string
}

func (p *recordingPruner) Prune(alive func(id string) bool) int {
	pruned := 0
	for _, id := range []string{"live", "dead"} {
		p.checked = append(p.checked, id)
		if !alive(id) {
			pruned++
		}
	}
	return pruned
}

func TestSessionJanitor_PrunesAfterSweep(t *testing.T) {
	pruner := &recordingPruner{}
	janitor := NewSessionJanitor(&countingSweeper{}, time.Minute, quietLogger()).
		Prune(func(id string) bool { return id == "live" }, pruner)

	assert.Equal(t, 2, janitor.RunOnce())
	assert.Equal(t, []string{"live", "dead"}, pruner.checked)
}

func TestSessionJanitor_DropsAnalystStateOfSweptSessions(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }
	require.NoError(t, store.Save(ctx, sampleRecord("expiring")))
	require.NoError(t, store.Save(ctx, sampleRecord("active")))

	analyst := NewAnalystService(&scriptedStreamer{reply: "ok"}, "Raptors", 5, quietLogger())
	for _, id := range []string{"expiring", "active"} {
		_, err := analyst.Send(ctx, id, "Who guards Edwards?", nil)
		require.NoError(t, err)
	}

	janitor := NewSessionJanitor(store, time.Minute, quietLogger()).
		Prune(SessionAlive(store, time.Second), analyst)

	now = now.Add(30 * time.Second)
	_, err := store.Get(ctx, "active")
	require.NoError(t, err)
	now = now.Add(45 * time.Second)

	assert.Equal(t, 1, janitor.RunOnce())
	assert.Empty(t, analyst.History("expiring"))
	assert.Len(t, analyst.History("active"), 2)

	analyst.mu.Lock()
	defer analyst.mu.Unlock()
	assert.Len(t, analyst.sessions, 1)
	assert.Len(t, analyst.limiters, 1)
}
