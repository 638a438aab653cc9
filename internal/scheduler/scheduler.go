// Package scheduler drives the periodic refresh cycle: fetch, assemble,
// publish. The engine itself knows nothing about scheduling; it just gets a
// fresh series each tick.
package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"
)

// RefreshFunc runs one fetch-and-assemble cycle.
type RefreshFunc func(ctx context.Context) error

// Scheduler periodically invokes the refresh function. A paused scheduler
// keeps ticking but skips the work, so Resume takes effect on the next tick
// without rescheduling.
type Scheduler struct {
	scheduler *gocron.Scheduler
	refresh   RefreshFunc
	interval  time.Duration
	timeout   time.Duration
	paused    atomic.Bool
	log       zerolog.Logger
}

// New creates a Scheduler. timeout bounds each refresh cycle.
func New(interval, timeout time.Duration, refresh RefreshFunc, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		refresh:   refresh,
		interval:  interval,
		timeout:   timeout,
		log:       log.With().Str("component", "scheduler").Logger(),
	}
}

// Start schedules the periodic job, running the first cycle immediately, and
// starts the underlying scheduler in the background.
func (s *Scheduler) Start() error {
	_, err := s.scheduler.Every(s.interval).StartImmediately().Do(s.tick)
	if err != nil {
		return err
	}
	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// Pause makes subsequent ticks no-ops until Resume is called.
func (s *Scheduler) Pause() {
	s.paused.Store(true)
	s.log.Info().Msg("refresh paused")
}

// Resume re-enables refresh ticks.
func (s *Scheduler) Resume() {
	s.paused.Store(false)
	s.log.Info().Msg("refresh resumed")
}

// Paused reports whether ticks are currently skipped.
func (s *Scheduler) Paused() bool {
	return s.paused.Load()
}

// tick runs a single cycle. Failures are logged and dropped; the previous
// view stays published and the next tick tries again.
func (s *Scheduler) tick() {
	if s.paused.Load() {
		s.log.Debug().Msg("refresh skipped while paused")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.refresh(ctx); err != nil {
		s.log.Error().Err(err).Msg("refresh failed")
	}
}
