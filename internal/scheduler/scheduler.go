// Package scheduler provides cron-based scheduling for the month auto-close job.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/zerobudget/backend/internal/model"
	"github.com/zerobudget/backend/pkg/datetime"
)

// ArchiveCloser is the part of the archive service the scheduler drives.
type ArchiveCloser interface {
	CloseMonth(ctx context.Context, month *datetime.MonthKey) (*model.MonthlyArchive, error)
}

// Config holds the scheduler configuration
type Config struct {
	// Schedule is a cron expression for when to close the month (e.g., "5 0 1 * *")
	Schedule string
	// Timeout is the maximum duration for a close run
	Timeout time.Duration
	// Enabled determines if the scheduler should run
	Enabled bool
}

// DefaultConfig returns the default scheduler configuration
func DefaultConfig() Config {
	return Config{
		Schedule: "5 0 1 * *", // 00:05 on the 1st of each month
		Timeout:  time.Minute,
		Enabled:  false,
	}
}

// Scheduler closes the current ledger month on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	archive ArchiveCloser
	config  Config
	logger  *slog.Logger
	entryID cron.EntryID
}

// New creates a new Scheduler instance
func New(cfg Config, archive ArchiveCloser, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		cron:    cron.New(),
		archive: archive,
		config:  cfg,
		logger:  logger,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start() error {
	if !s.config.Enabled {
		s.logger.Info("Scheduler is disabled, skipping start")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.config.Schedule, func() {
		s.runCloseJob()
	})
	if err != nil {
		return err
	}

	s.entryID = entryID
	s.cron.Start()

	s.logger.Info("Scheduler started",
		slog.String("schedule", s.config.Schedule),
		slog.Duration("timeout", s.config.Timeout),
	)

	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("Stopping scheduler...")
	return s.cron.Stop()
}

// RunNow triggers an immediate close job (useful for manual triggers)
func (s *Scheduler) RunNow() {
	go s.runCloseJob()
}

// runCloseJob archives the current month and rolls settings forward.
func (s *Scheduler) runCloseJob() {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
	defer cancel()

	startTime := time.Now()
	s.logger.Info("Starting scheduled month close",
		slog.Time("start_time", startTime),
	)

	archive, err := s.archive.CloseMonth(ctx, nil)
	duration := time.Since(startTime)

	if err != nil {
		s.logger.Error("Month close failed",
			slog.String("error", err.Error()),
			slog.Duration("duration", duration),
		)
		return
	}

	s.logger.Info("Month close completed",
		slog.String("month", string(archive.Month)),
		slog.Duration("duration", duration),
	)
}

// GetNextRunTime returns the next scheduled run time
func (s *Scheduler) GetNextRunTime() time.Time {
	if s.entryID == 0 {
		return time.Time{}
	}
	entry := s.cron.Entry(s.entryID)
	return entry.Next
}

// IsRunning returns true if the scheduler is running
func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
