// Package sched runs the two background reset timers: a fixed interval
// and a daily wall-clock occurrence. Both feed the same full-state
// reset; overlap between them is harmless because a reset is a total
// overwrite, not a delta.
package sched

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tdiallo/suitoracle/internal/logging"
)

// resetInterval is the fixed-interval timer period.
const resetInterval = 2 * time.Hour

// dailyHour/dailyMinute is the daily reset wall-clock time in WAT.
const (
	dailyHour   = 0
	dailyMinute = 59
)

// postResetGuard is slept after a daily reset before recomputing the
// next occurrence, so a wake-up racing the target second cannot fire
// twice.
const postResetGuard = 60 * time.Second

// wat is West Africa Time, a fixed UTC+1 offset with no DST.
var wat = time.FixedZone("WAT", 60*60)

// Resetter clears all prediction state and returns how many pending
// predictions were dropped.
type Resetter interface {
	Reset() int
}

// Notifier delivers best-effort admin notifications.
type Notifier interface {
	NotifyAdmin(ctx context.Context, text string) error
}

// Scheduler owns the two reset timers. Both run for process lifetime;
// cancelling the context passed to Start tears them down.
type Scheduler struct {
	resetter Resetter
	notifier Notifier
	interval time.Duration
	now      func() time.Time // injectable for tests
	wg       sync.WaitGroup
}

// New creates a Scheduler resetting r and notifying via n. n may be
// nil to disable notifications.
func New(r Resetter, n Notifier) *Scheduler {
	return &Scheduler{
		resetter: r,
		notifier: n,
		interval: resetInterval,
		now:      time.Now,
	}
}

// Start launches both timer goroutines.
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		s.runInterval(ctx)
	}()
	go func() {
		defer s.wg.Done()
		s.runDaily(ctx)
	}()
}

// Wait blocks until both timer goroutines exit. Call after cancelling
// the context passed to Start.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) runInterval(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			logging.Info("periodic reset firing")
			s.reset(ctx)
		}
	}
}

func (s *Scheduler) runDaily(ctx context.Context) {
	for {
		next := NextDailyReset(s.now())
		wait := next.Sub(s.now())
		logging.Info("next daily reset scheduled", "at", next.Format(time.RFC3339), "in", wait.Round(time.Minute).String())

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		logging.Info("daily reset firing")
		s.reset(ctx)

		select {
		case <-ctx.Done():
			return
		case <-time.After(postResetGuard):
		}
	}
}

// reset clears all state and notifies the admin with the count of
// predictions dropped. Notification failure is logged only.
func (s *Scheduler) reset(ctx context.Context) {
	cleared := s.resetter.Reset()

	if s.notifier == nil {
		return
	}
	text := fmt.Sprintf("🔄 **Reset automatique effectué**\n\n%d prédictions effacées.", cleared)
	if err := s.notifier.NotifyAdmin(ctx, text); err != nil {
		logging.Error("failed to send reset notification", "err", err)
	}
}

// NextDailyReset returns the next daily reset instant strictly after
// now: today's occurrence if it is still ahead, otherwise tomorrow's.
func NextDailyReset(now time.Time) time.Time {
	local := now.In(wat)
	next := time.Date(local.Year(), local.Month(), local.Day(), dailyHour, dailyMinute, 0, 0, wat)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
