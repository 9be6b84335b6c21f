package cleanup

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/wizzzeystore/wizzzey-api/internal/logger"
	"github.com/wizzzeystore/wizzzey-api/pkg/models"
)

// DefaultSchedule fires daily at 18:30 UTC (midnight IST).
const DefaultSchedule = "30 18 * * *"

// SchedulerConfig contains cleanup scheduler configuration.
type SchedulerConfig struct {
	// Schedule is a standard five-field cron expression, evaluated in UTC.
	// Default: "30 18 * * *".
	Schedule string
}

// Scheduler runs cleanup passes on a cron schedule. Start and Stop are
// idempotent and safe for concurrent use.
type Scheduler struct {
	service *Service
	cron    *cron.Cron
	expr    string

	mu      sync.Mutex
	entryID cron.EntryID
	active  bool
}

// NewScheduler creates a scheduler for the given service. The cron runner
// is pinned to UTC so the schedule does not drift with the host timezone.
func NewScheduler(service *Service, cfg SchedulerConfig) *Scheduler {
	if cfg.Schedule == "" {
		cfg.Schedule = DefaultSchedule
	}

	return &Scheduler{
		service: service,
		cron:    cron.New(cron.WithLocation(time.UTC)),
		expr:    cfg.Schedule,
	}
}

// Start registers the cleanup job and starts the cron runner. Calling Start
// on an active scheduler re-registers the job instead of duplicating it.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.cron.AddFunc(s.expr, func() {
		s.service.RunAsync(models.TriggerScheduled)
	})
	if err != nil {
		return fmt.Errorf("invalid cleanup schedule %q: %w", s.expr, err)
	}

	// Re-registering replaces the previous entry instead of stacking jobs.
	if s.active {
		s.cron.Remove(s.entryID)
	}
	s.entryID = id
	s.active = true

	// Start is a no-op on an already-running cron runner.
	s.cron.Start()

	next := s.cron.Entry(id).Next
	logger.Info("Cleanup scheduler started",
		logger.Schedule(s.expr),
		logger.NextRun(next))
	return nil
}

// Stop deactivates the schedule. No-op if the scheduler is not active.
// In-flight cleanup runs are not interrupted.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}

	s.cron.Remove(s.entryID)
	s.cron.Stop()
	s.active = false

	logger.Info("Cleanup scheduler stopped")
}

// Active reports whether the schedule is currently registered.
func (s *Scheduler) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// NextRun returns the next scheduled fire time, or nil when the scheduler
// is inactive.
func (s *Scheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil
	}

	next := s.cron.Entry(s.entryID).Next
	if next.IsZero() {
		return nil
	}
	return &next
}
