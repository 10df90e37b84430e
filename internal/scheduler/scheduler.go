package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weather-emissions-dashboard/internal/weather"
)

// fetchTimeout bounds one location's refresh.
const fetchTimeout = 30 * time.Second

// Fetcher refreshes the stored report for a query.
type Fetcher interface {
	FetchAndStore(ctx context.Context, q weather.Query) error
}

// Sweeper drops expired cache entries.
type Sweeper interface {
	Sweep() int
}

// Scheduler periodically prefetches configured locations and sweeps caches.
type Scheduler struct {
	scheduler *gocron.Scheduler
	fetcher   Fetcher
	sweepers  []Sweeper
	locations []weather.Query
	interval  time.Duration
	logger    *slog.Logger
}

// New creates a new Scheduler. Both jobs run every interval.
func New(locations []weather.Query, interval time.Duration, fetcher Fetcher, logger *slog.Logger, sweepers ...Sweeper) *Scheduler {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		fetcher:   fetcher,
		sweepers:  sweepers,
		locations: locations,
		interval:  interval,
		logger:    logger.With("component", "scheduler"),
	}
}

// Start schedules the periodic jobs and starts the underlying scheduler.
// Jobs run once immediately.
func (s *Scheduler) Start() error {
	if len(s.locations) == 0 {
		s.logger.Info("no locations configured; prefetch disabled")
	} else {
		if _, err := s.scheduler.Every(s.interval).SingletonMode().Do(s.prefetch); err != nil {
			return err
		}
	}

	if len(s.sweepers) > 0 {
		if _, err := s.scheduler.Every(s.interval).SingletonMode().Do(s.sweep); err != nil {
			return err
		}
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

func (s *Scheduler) prefetch() {
	s.logger.Info("running weather prefetch job", "locations", len(s.locations))

	var wg sync.WaitGroup
	for _, q := range s.locations {
		q := q
		wg.Add(1)
		go func() {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
			defer cancel()

			if err := s.fetcher.FetchAndStore(ctx, q); err != nil {
				s.logger.Error("prefetch failed", "query", q.Key(), "error", err)
			}
		}()
	}
	wg.Wait()

	s.logger.Info("completed weather prefetch job")
}

func (s *Scheduler) sweep() {
	removed := 0
	for _, sw := range s.sweepers {
		removed += sw.Sweep()
	}
	s.logger.Debug("cache sweep finished", "removed", removed)
}
