// Package scheduler runs the cache janitor on a fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"time"
)

const purgeTimeout = 5 * time.Minute

// Purger removes expired cache entries and reports how many it removed.
type Purger interface {
	PurgeExpired(ctx context.Context) int
}

type Scheduler struct {
	purger   Purger
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(purger Purger, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		purger:   purger,
		interval: interval,
		logger:   logger.With("component", "janitor"),
	}
}

// Start purges once immediately and then on every tick until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runPurge(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runPurge(ctx)
		}
	}
}

func (s *Scheduler) runPurge(ctx context.Context) {
	purgeCtx, cancel := context.WithTimeout(ctx, purgeTimeout)
	defer cancel()

	purged := s.purger.PurgeExpired(purgeCtx)
	s.logger.Debug("purge finished", "purged", purged)
}
