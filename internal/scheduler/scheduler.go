// Package scheduler drives periodic spool ingestion sweeps.
package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/challenge-tracker/internal/datasource"
	"github.com/yourusername/challenge-tracker/internal/metrics"
	"github.com/yourusername/challenge-tracker/internal/service"
)

// Scheduler manages the scheduled ingestion sweep job
type Scheduler struct {
	cron      *cron.Cron
	source    *datasource.FileSource
	engine    *service.Engine
	logger    *logrus.Logger
	mu        sync.RWMutex
	isRunning bool
	jobIDs    []cron.EntryID
}

// NewScheduler creates a new scheduler
func NewScheduler(source *datasource.FileSource, engine *service.Engine, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		source: source,
		engine: engine,
		logger: logger,
		jobIDs: make([]cron.EntryID, 0),
	}
}

// ScheduleSweeps schedules spool sweeps using a cron expression
// (robfig/cron syntax, including "@every 30s" descriptors)
func (s *Scheduler) ScheduleSweeps(cronExpression string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}

	entryID, err := s.cron.AddFunc(cronExpression, s.sweep)
	if err != nil {
		return fmt.Errorf("failed to add job: %w", err)
	}

	s.jobIDs = append(s.jobIDs, entryID)
	s.logger.WithField("schedule", cronExpression).Info("Scheduled spool sweeps")

	return nil
}

// Sweep runs one spool sweep immediately, outside the schedule. Used at
// startup so a restart picks up pending documents without waiting a tick.
func (s *Scheduler) Sweep() {
	s.sweep()
}

func (s *Scheduler) sweep() {
	metrics.RecordSpoolSweep()

	batch, err := s.source.Load()
	if err != nil {
		s.logger.WithError(err).Error("Spool sweep failed")
		return
	}
	if batch.Empty() {
		return
	}

	s.logger.WithFields(logrus.Fields{
		"rosters": len(batch.Rosters),
		"odds":    len(batch.Odds),
		"results": len(batch.Results),
	}).Debug("Applying spool batch")
	s.engine.ApplyBatch(batch)
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("scheduler is already running")
	}

	if len(s.jobIDs) == 0 {
		return fmt.Errorf("no jobs scheduled")
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.WithField("jobs", len(s.jobIDs)).Info("Scheduler started")

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running sweep
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}

	<-s.cron.Stop().Done()
	s.isRunning = false
	s.logger.Info("Scheduler stopped")

	return nil
}

// IsRunning returns whether the scheduler is currently running
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRun returns the time of the next scheduled sweep
func (s *Scheduler) GetNextRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning || len(s.jobIDs) == 0 {
		return time.Time{}
	}

	nextRun := time.Time{}
	for _, jobID := range s.jobIDs {
		entry := s.cron.Entry(jobID)
		if entry.Valid() {
			nextTime := entry.Next
			if nextRun.IsZero() || nextTime.Before(nextRun) {
				nextRun = nextTime
			}
		}
	}

	return nextRun
}
