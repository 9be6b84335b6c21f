package cleanup

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/wizzzeystore/wizzzey-api/internal/logger"
	"github.com/wizzzeystore/wizzzey-api/internal/telemetry"
	"github.com/wizzzeystore/wizzzey-api/pkg/metrics"
	"github.com/wizzzeystore/wizzzey-api/pkg/models"
	"github.com/wizzzeystore/wizzzey-api/pkg/uploads"
)

// DefaultSentinelFile is the placeholder that keeps the upload directory in
// version control. It is never counted and never deleted.
const DefaultSentinelFile = ".gitkeep"

// DefaultRunTimeout caps background runs so a hung store cannot hold the
// run-lock forever.
const DefaultRunTimeout = 10 * time.Minute

// Store is the persistence surface the cleanup service needs: reference
// projections for the scan, a connectivity check, and run history.
// *store.GORMStore satisfies it.
type Store interface {
	RefSource
	Healthcheck(ctx context.Context) error
	CreateCleanupRun(ctx context.Context, run *models.CleanupRun) (string, error)
	LatestCleanupRun(ctx context.Context) (*models.CleanupRun, error)
}

// Config contains cleanup service configuration.
type Config struct {
	// SentinelFile is excluded from listings and never deleted.
	// Default: ".gitkeep".
	SentinelFile string

	// RunTimeout bounds background runs. Default: 10 minutes.
	RunTimeout time.Duration
}

// Stats holds statistics about one cleanup run.
type Stats struct {
	Trigger    models.CleanupTrigger
	Uploaded   int           // files in the upload store (sentinel excluded)
	Referenced int           // live filenames found in the database
	Orphans    int           // uploaded files with no reference
	Deleted    int           // orphans removed
	Failed     int           // orphan deletions that failed
	Duration   time.Duration // total run time
}

// Preview is a dry-run result: what a cleanup would do right now.
type Preview struct {
	Uploaded   int
	Referenced int
	Orphans    []string
}

// Status describes the service state for the status endpoint.
type Status struct {
	Running  bool
	LastRun  *time.Time
	Location string
}

// Service owns the cleanup pipeline: the run-lock, the scan/list/resolve/delete
// sequence, run history and metrics.
type Service struct {
	db      Store
	files   uploads.Store
	scanner *Scanner
	metrics *metrics.CleanupMetrics

	sentinel   string
	runTimeout time.Duration

	mu      sync.Mutex
	running bool
	lastRun *time.Time
}

// NewService creates a cleanup service. The metrics collector may be nil.
func NewService(db Store, files uploads.Store, m *metrics.CleanupMetrics, cfg Config) *Service {
	if cfg.SentinelFile == "" {
		cfg.SentinelFile = DefaultSentinelFile
	}
	if cfg.RunTimeout == 0 {
		cfg.RunTimeout = DefaultRunTimeout
	}

	return &Service{
		db:         db,
		files:      files,
		scanner:    NewScanner(db),
		metrics:    m,
		sentinel:   cfg.SentinelFile,
		runTimeout: cfg.RunTimeout,
	}
}

// Run executes one cleanup pass.
//
// If a run is already in flight the call is a no-op: it logs a warning and
// returns (nil, nil). There is no queueing and no retry; the next scheduled
// or manual trigger will pick up whatever this run missed.
func (s *Service) Run(ctx context.Context, trigger models.CleanupTrigger) (*Stats, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logger.Warn("Cleanup already in progress, skipping", logger.Trigger(string(trigger)))
		s.metrics.ObserveSkipped(string(trigger))
		return nil, nil
	}
	s.running = true
	s.mu.Unlock()

	start := time.Now()

	// The flag must clear on every exit path, including panics inside
	// collaborator code; otherwise the subsystem is dead until restart.
	defer func() {
		s.mu.Lock()
		s.running = false
		s.lastRun = &start
		s.mu.Unlock()
	}()

	ctx, span := telemetry.StartCleanupSpan(ctx, telemetry.SpanCleanupRun, string(trigger))
	defer span.End()

	logger.Info("Starting orphaned upload cleanup",
		logger.Trigger(string(trigger)),
		logger.Directory(s.files.Location()))

	stats, err := s.execute(ctx, trigger)
	duration := time.Since(start)

	if err != nil {
		telemetry.RecordError(ctx, err)
		logger.Error("Cleanup run failed",
			logger.Trigger(string(trigger)),
			logger.Err(err),
			logger.DurationMs(logger.Duration(start)))
		s.metrics.ObserveRun(metrics.RunObservation{
			Trigger:  string(trigger),
			Duration: duration,
			Err:      err,
		})
		s.recordRun(trigger, start, duration, nil, err)
		return nil, err
	}

	stats.Duration = duration

	telemetry.SetAttributes(ctx,
		telemetry.Uploaded(stats.Uploaded),
		telemetry.Referenced(stats.Referenced),
		telemetry.Orphans(stats.Orphans),
		telemetry.Deleted(stats.Deleted),
		telemetry.Failed(stats.Failed))

	logger.Info("Cleanup complete",
		logger.Trigger(string(trigger)),
		logger.Uploaded(stats.Uploaded),
		logger.Referenced(stats.Referenced),
		logger.Orphans(stats.Orphans),
		logger.Deleted(stats.Deleted),
		logger.Failed(stats.Failed),
		logger.DurationMs(logger.Duration(start)))

	s.metrics.ObserveRun(metrics.RunObservation{
		Trigger:    string(trigger),
		Duration:   duration,
		Uploaded:   stats.Uploaded,
		Referenced: stats.Referenced,
		Orphans:    stats.Orphans,
		Deleted:    stats.Deleted,
		Failed:     stats.Failed,
	})
	s.recordRun(trigger, start, duration, stats, nil)

	return stats, nil
}

// ManualRun executes a cleanup pass on behalf of an operator.
func (s *Service) ManualRun(ctx context.Context) (*Stats, error) {
	logger.Info("Manual cleanup requested")
	return s.Run(ctx, models.TriggerManual)
}

// RunAsync spawns a cleanup run in the background and returns immediately.
// Used by the HTTP trigger endpoint and the scheduler; the result is never
// delivered to the caller, only logged.
func (s *Service) RunAsync(trigger models.CleanupTrigger) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.runTimeout)
		defer cancel()

		// Run logs its own outcome.
		_, _ = s.Run(ctx, trigger)
	}()
}

// Preview reports what a run would delete right now, without deleting
// anything. Safe to call while a run is in flight.
func (s *Service) Preview(ctx context.Context) (*Preview, error) {
	ctx, span := telemetry.StartSpan(ctx, telemetry.SpanCleanupPreview)
	defer span.End()

	uploaded, referenced, err := s.gather(ctx)
	if err != nil {
		telemetry.RecordError(ctx, err)
		return nil, err
	}

	return &Preview{
		Uploaded:   len(uploaded),
		Referenced: len(referenced),
		Orphans:    ResolveOrphans(uploaded, referenced),
	}, nil
}

// Status returns the current service state.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := Status{
		Running:  s.running,
		Location: s.files.Location(),
	}
	if s.lastRun != nil {
		t := *s.lastRun
		status.LastRun = &t
	}
	return status
}

// LoadLastRun hydrates the last-run time from run history. Called once at
// startup so status reporting survives restarts.
func (s *Service) LoadLastRun(ctx context.Context) error {
	run, err := s.db.LatestCleanupRun(ctx)
	if err != nil {
		if errors.Is(err, models.ErrRunNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load cleanup history: %w", err)
	}

	s.mu.Lock()
	s.lastRun = &run.StartedAt
	s.mu.Unlock()
	return nil
}

// execute runs the pipeline: connectivity check, concurrent scan + list,
// resolve, delete.
func (s *Service) execute(ctx context.Context, trigger models.CleanupTrigger) (*Stats, error) {
	if err := s.db.Healthcheck(ctx); err != nil {
		return nil, fmt.Errorf("store unavailable: %w", err)
	}

	uploaded, referenced, err := s.gather(ctx)
	if err != nil {
		return nil, err
	}

	orphans := ResolveOrphans(uploaded, referenced)

	stats := &Stats{
		Trigger:    trigger,
		Uploaded:   len(uploaded),
		Referenced: len(referenced),
		Orphans:    len(orphans),
	}

	if len(orphans) == 0 {
		return stats, nil
	}

	logger.Info("Found orphaned files", logger.Orphans(len(orphans)))

	result := deleteOrphans(ctx, s.files, orphans)
	stats.Deleted = result.Deleted
	stats.Failed = len(result.Errors)

	if len(result.Errors) > 0 {
		logger.Warn("Some orphaned files could not be deleted",
			logger.Deleted(result.Deleted),
			logger.Failed(len(result.Errors)))
	}

	return stats, nil
}

// gather runs the reference scan and the upload listing concurrently. Both
// must succeed; the sentinel file is dropped from the uploaded set here.
func (s *Service) gather(ctx context.Context) (uploaded, referenced map[string]struct{}, err error) {
	var (
		wg      sync.WaitGroup
		refs    map[string]struct{}
		names   []string
		scanErr error
		listErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		refs, scanErr = s.scanner.Referenced(ctx)
	}()
	go func() {
		defer wg.Done()
		names, listErr = s.files.List(ctx)
	}()
	wg.Wait()

	if scanErr != nil {
		return nil, nil, scanErr
	}
	if listErr != nil {
		return nil, nil, listErr
	}

	uploaded = make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == s.sentinel {
			continue
		}
		uploaded[name] = struct{}{}
	}

	return uploaded, refs, nil
}

// recordRun persists the run row. Best-effort: a fresh short-lived context is
// used so a cancelled run context cannot lose the history record.
func (s *Service) recordRun(trigger models.CleanupTrigger, start time.Time, duration time.Duration, stats *Stats, runErr error) {
	run := &models.CleanupRun{
		Trigger:    string(trigger),
		StartedAt:  start,
		DurationMs: float64(duration.Microseconds()) / 1000.0,
	}
	if stats != nil {
		run.Uploaded = stats.Uploaded
		run.Referenced = stats.Referenced
		run.Orphans = stats.Orphans
		run.Deleted = stats.Deleted
		run.Failed = stats.Failed
	}
	if runErr != nil {
		run.Error = runErr.Error()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := s.db.CreateCleanupRun(ctx, run); err != nil {
		logger.Warn("Failed to record cleanup run", logger.Err(err))
	}
}
