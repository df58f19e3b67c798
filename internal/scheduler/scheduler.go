package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type monthWarmer interface {
	WarmMonth(ctx context.Context, year, month int) ([]string, error)
}

// Scheduler keeps the disabled dates of the current and the next month
// fresh in the cache, so the public form rarely waits on the backend.
type Scheduler struct {
	warmer   monthWarmer
	interval time.Duration
	now      func() time.Time
	logger   logger.Logger
}

func New(
	warmer monthWarmer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		warmer:   warmer,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	s.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	now := s.now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	for _, m := range []time.Time{first, first.AddDate(0, 1, 0)} {
		if ctx.Err() != nil {
			return
		}
		dates, err := s.warmer.WarmMonth(ctx, m.Year(), int(m.Month()))
		if err != nil {
			s.logger.Error("failed to warm disabled dates",
				logger.Int("year", m.Year()),
				logger.Int("month", int(m.Month())),
				logger.String("error", err.Error()),
			)
			continue
		}
		s.logger.Debug("disabled dates warmed",
			logger.Int("year", m.Year()),
			logger.Int("month", int(m.Month())),
			logger.Int("count", len(dates)),
		)
	}
}
