package scheduler

import (
	"context"
	"log/slog"
	"time"

	"content_syncer/internal/domain"
)

// Loader defines the interface for load-cycle operations.
type Loader interface {
	Load(ctx context.Context) (*domain.LoadStats, error)
}

type Scheduler struct {
	loader       Loader
	interval     time.Duration
	cycleTimeout time.Duration
	logger       *slog.Logger
}

func NewScheduler(loader Loader, interval, cycleTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		loader:       loader,
		interval:     interval,
		cycleTimeout: cycleTimeout,
		logger:       logger,
	}
}

// Start runs a load cycle immediately, then on every interval tick until the
// context is cancelled. Cycles never overlap: the next tick waits for the
// current cycle to finish.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runLoad(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runLoad(ctx)
		}
	}
}

func (s *Scheduler) runLoad(ctx context.Context) {
	loadCtx, cancel := context.WithTimeout(ctx, s.cycleTimeout)
	defer cancel()

	if _, err := s.loader.Load(loadCtx); err != nil {
		s.logger.Error("load cycle failed", "error", err)
	}
}
