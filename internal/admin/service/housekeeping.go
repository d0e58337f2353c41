package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/teamdesk/internal/admin/store"
)

// ViewEvictor closes view sessions that have not been used since cutoff.
type ViewEvictor interface {
	EvictIdle(cutoff time.Time) int
	Len() int
}

// HousekeepingService periodically prunes old activity records and evicts
// idle view sessions so neither grows without bound.
type HousekeepingService struct {
	Store    store.Store
	Views    ViewEvictor
	Logger   *slog.Logger
	Interval time.Duration

	// Retention is how long activity is kept. Zero keeps it forever.
	Retention time.Duration
	// IdleTTL is how long an unused view survives. Zero disables eviction.
	IdleTTL time.Duration

	now func() time.Time

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(
	st store.Store,
	views ViewEvictor,
	logger *slog.Logger,
	interval, retention, idleTTL time.Duration,
) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:     st,
		Views:     views,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		IdleTTL:   idleTTL,
		now:       time.Now,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts down the worker and blocks until any in-progress run finishes.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup runs each task independently; one failing does not stop the others.
func (s *HousekeepingService) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), s.Interval)
	defer cancel()

	now := s.now()
	s.Logger.Debug("starting housekeeping cleanup")

	var pruned int64
	if s.Store != nil && s.Retention > 0 {
		n, err := s.Store.Activity().DeleteActivityBefore(ctx, now.Add(-s.Retention))
		if err != nil {
			s.Logger.Error("failed to prune activity", "error", err)
		} else {
			pruned = n
		}
	}

	var evicted, live int
	if s.Views != nil {
		if s.IdleTTL > 0 {
			evicted = s.Views.EvictIdle(now.Add(-s.IdleTTL))
		}
		live = s.Views.Len()
	}

	s.Logger.Info("housekeeping cleanup completed",
		"activity_pruned", pruned,
		"views_evicted", evicted,
		"views_live", live,
	)
}
