package booking

import (
	"context"
	"time"

	bookingRepo "fieldbook/database/repository/booking"
	"fieldbook/utils"

	"go.uber.org/zap"
)

// CompletionSweeper is the status reconciliation scheduler: on every tick
// it promotes active bookings whose end time has passed to completed.
// Each sweep is idempotent and only touches records matching the
// expired-and-active predicate at the instant it runs; a failed sweep is
// logged and retried on the next tick.
type CompletionSweeper struct {
	Repo     bookingRepo.BookingRepository
	Interval time.Duration

	// Now is the clock; overridable in tests. Defaults to time.Now UTC.
	Now func() time.Time
}

func (s *CompletionSweeper) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// Sweep runs one completion-promotion pass and returns how many bookings
// were transitioned.
func (s *CompletionSweeper) Sweep(ctx context.Context) (int64, error) {
	return s.Repo.CompleteExpired(ctx, s.now())
}

// Run executes sweeps on the configured interval until ctx is cancelled.
// It never blocks booking creation or update paths.
func (s *CompletionSweeper) Run(ctx context.Context) {
	logger := utils.GetLogger()

	interval := s.Interval
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Completion sweeper started", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("Completion sweeper shutdown signal received")
			return
		case <-ticker.C:
			count, err := s.Sweep(ctx)
			if err != nil {
				logger.Error("Completion sweep failed; will retry next tick", zap.Error(err))
				continue
			}
			if count > 0 {
				logger.Info("Marked bookings as completed", zap.Int64("count", count))
			}
		}
	}
}
