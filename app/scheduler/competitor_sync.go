// Package scheduler
package scheduler

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	businessflow "github.com/rately/rately/business_flow"
	"gopkg.in/natefinch/lumberjack.v2"
)

// CompetitorSyncScheduler periodically scrapes competitor rates for all
// scrape-enabled hotels and folds them into the pricing history.
type CompetitorSyncScheduler struct {
	competitorFlow businessflow.CompetitorFlow
	logger         *log.Logger
	interval       time.Duration
	daysAhead      int
}

func NewCompetitorSyncScheduler(
	competitorFlow businessflow.CompetitorFlow,
	interval time.Duration,
	daysAhead int,
) *CompetitorSyncScheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	if daysAhead <= 0 {
		daysAhead = 7
	}

	s := &CompetitorSyncScheduler{
		competitorFlow: competitorFlow,
		interval:       interval,
		daysAhead:      daysAhead,
	}

	// Initialize scheduler-specific logger (to stdout and a rotating file)
	s.initSchedulerLogger()

	return s
}

// initSchedulerLogger configures a logger that writes to both stdout and a
// rotating file under data/ (or /data for containerized environments)
func (s *CompetitorSyncScheduler) initSchedulerLogger() {
	candidates := []string{
		filepath.Join("data"),
		"/data",
	}
	for _, dir := range candidates {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			continue
		}
		rotating := &lumberjack.Logger{
			Filename:   filepath.Join(dir, "competitor_sync.log"),
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		mw := io.MultiWriter(os.Stdout, rotating)
		// log.Logger is goroutine-safe; include timestamps with microseconds and UTC
		s.logger = log.New(mw, "competitor-sync ", log.LstdFlags|log.Lmicroseconds|log.LUTC)
		return
	}

	// Fallback to default stdout logger if no log directory is writable
	s.logger = log.Default()
	s.logger.Printf("competitor-sync: failed to initialize file logger, using stdout")
}

// Start launches the scheduler loop in a background goroutine and returns a stop function
func (s *CompetitorSyncScheduler) Start(parent context.Context) func() {
	ctx, cancel := context.WithCancel(parent)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.runOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.runOnce(ctx)
			}
		}
	}()

	return cancel
}

func (s *CompetitorSyncScheduler) runOnce(ctx context.Context) {
	start := time.Now()

	result, err := s.competitorFlow.SyncCompetitorPrices(ctx, s.daysAhead)
	if err != nil {
		s.logger.Printf("competitor-sync: sync failed: %v", err)
		return
	}

	s.logger.Printf("competitor-sync: synced %d hotels over %d dates (%d scrape errors) in %s",
		result.HotelsSynced, result.DatesCovered, result.ScrapeErrors, time.Since(start).Round(time.Millisecond))
}
