package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Sweeper drops expired entries and reports how many went
type Sweeper interface {
	Sweep() int
}

// Pruner drops per-session state kept outside the store once its session is gone
type Pruner interface {
	Prune(alive func(id string) bool) int
}

// SessionJanitor periodically sweeps idle sessions out of the store, then prunes what other
// services keep for sessions that no longer exist
type SessionJanitor struct {
	sweeper   Sweeper
	pruneMu   sync.RWMutex
	alive     func(id string) bool
	pruners   []Pruner
	logger    *logrus.Logger
	cron      *cron.Cron
	interval  time.Duration
	mu        sync.Mutex
	isRunning bool
}

func NewSessionJanitor(sweeper Sweeper, interval time.Duration, logger *logrus.Logger) *SessionJanitor {
	return &SessionJanitor{
		sweeper:  sweeper,
		logger:   logger,
		cron:     cron.New(),
		interval: interval,
	}
}

// Prune registers services to prune after every sweep. alive decides which sessions still exist.
func (j *SessionJanitor) Prune(alive func(id string) bool, pruners ...Pruner) *SessionJanitor {
	j.pruneMu.Lock()
	defer j.pruneMu.Unlock()
	j.alive = alive
	j.pruners = append(j.pruners, pruners...)
	return j
}

// Start schedules the sweep
func (j *SessionJanitor) Start() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.isRunning {
		return fmt.Errorf("session janitor is already running")
	}
	if j.interval <= 0 {
		return fmt.Errorf("session sweep interval must be positive, got %s", j.interval)
	}

	schedule := fmt.Sprintf("@every %s", j.interval.String())
	if _, err := j.cron.AddFunc(schedule, func() { j.RunOnce() }); err != nil {
		return fmt.Errorf("failed to schedule session sweep: %w", err)
	}

	j.cron.Start()
	j.isRunning = true

	j.logger.WithField("interval", j.interval.String()).Info("Session janitor started")
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish
func (j *SessionJanitor) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.isRunning {
		return
	}
	<-j.cron.Stop().Done()
	j.isRunning = false
	j.logger.Info("Session janitor stopped")
}

// RunOnce sweeps immediately and returns the number of sessions removed
func (j *SessionJanitor) RunOnce() int {
	removed := j.sweeper.Sweep()
	if removed > 0 {
		j.logger.WithField("removed", removed).Info("Swept idle sessions")
	}

	j.pruneMu.RLock()
	alive, pruners := j.alive, j.pruners
	j.pruneMu.RUnlock()

	if alive == nil {
		return removed
	}
	pruned := 0
	for _, p := range pruners {
		pruned += p.Prune(alive)
	}
	if pruned > 0 {
		j.logger.WithField("pruned", pruned).Info("Pruned state of expired sessions")
	}
	return removed
}
