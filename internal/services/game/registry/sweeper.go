package registry

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultSweepMinInterval is the shortest pause between sweeps.
	DefaultSweepMinInterval = time.Minute
	// DefaultSweepMaxInterval is the longest pause between sweeps.
	DefaultSweepMaxInterval = 2 * time.Minute
)

// SweepTarget is what the sweeper drives.
type SweepTarget interface {
	Sweep(ctx context.Context) (SweepResult, error)
}

// Sweeper periodically asks a SweepTarget to evict idle sessions. Pauses are
// drawn uniformly from [min, max] so replicas do not sweep in lockstep.
type Sweeper struct {
	target SweepTarget
	min    time.Duration
	max    time.Duration
	logger *zap.Logger
}

// NewSweeper creates a sweeper. Non-positive bounds fall back to defaults.
func NewSweeper(target SweepTarget, minInterval, maxInterval time.Duration, logger *zap.Logger) *Sweeper {
	if minInterval <= 0 {
		minInterval = DefaultSweepMinInterval
	}
	if maxInterval < minInterval {
		maxInterval = minInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sweeper{
		target: target,
		min:    minInterval,
		max:    maxInterval,
		logger: logger.Named("sweeper"),
	}
}

// Run sweeps until ctx ends and then returns nil. A failed sweep while ctx
// is still live is returned as an error.
func (s *Sweeper) Run(ctx context.Context) error {
	timer := time.NewTimer(s.next())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
			res, err := s.target.Sweep(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("sweep idle sessions: %w", err)
			}
			s.logger.Debug("sweep complete", zap.Int("lobbies", res.Lobbies), zap.Int("games", res.Games))
			timer.Reset(s.next())
		}
	}
}

func (s *Sweeper) next() time.Duration {
	spread := s.max - s.min
	if spread <= 0 {
		return s.min
	}
	return s.min + rand.N(spread+1)
}
