package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

const DefaultSweepInterval = 5 * time.Second

type sweepTarget interface {
	ActiveMatchIDs(ctx context.Context) ([]string, error)
	Sweep(ctx context.Context, matchID string) error
}

// Sweeper - resolves stalled matches on the server so no client has to keep polling.
type Sweeper struct {
	logger *slog.Logger
	target sweepTarget

	interval time.Duration
	workers  int
}

func NewSweeper(logger *slog.Logger, target sweepTarget, interval time.Duration, workers int) *Sweeper {
	if workers <= 0 {
		workers = 1
	}

	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	return &Sweeper{
		logger:   logger.With("component", "sweeper"),
		target:   target,
		interval: interval,
		workers:  workers,
	}
}

// Run - sweeps every interval until ctx is done.
func (that *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(that.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := that.SweepOnce(ctx); err != nil {
				that.logger.Error("sweep failed", "error", err)
			}
		}
	}
}

// SweepOnce - one pass over the active matches; a failing match doesn't stop the others.
func (that *Sweeper) SweepOnce(ctx context.Context) error {
	ids, err := that.target.ActiveMatchIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list matches: %w", err)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(that.workers)

	for _, id := range ids {
		group.Go(func() error {
			if err := that.target.Sweep(groupCtx, id); err != nil {
				that.logger.Error("failed to sweep match", "match_id", id, "error", err)
			}

			return nil
		})
	}

	return group.Wait()
}
