package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label constants for cleanup metrics.
const (
	LabelTrigger = "trigger"
	LabelStatus  = "status"
)

// Status constants for cleanup runs.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
	StatusSkipped = "skipped"
)

// CleanupMetrics provides Prometheus metrics for orphaned-upload cleanup runs.
type CleanupMetrics struct {
	RunsTotal      *prometheus.CounterVec
	RunDuration    *prometheus.HistogramVec
	OrphansFound   prometheus.Counter
	OrphansDeleted prometheus.Counter
	DeleteFailures prometheus.Counter
	LastRunTime    prometheus.Gauge
	LastRunOrphans prometheus.Gauge
}

// RunObservation carries the outcome of one cleanup run.
type RunObservation struct {
	Trigger    string
	Duration   time.Duration
	Uploaded   int
	Referenced int
	Orphans    int
	Deleted    int
	Failed     int
	Err        error
}

// NewCleanupMetrics creates and registers cleanup metrics.
// Returns nil when reg is nil (metrics disabled); all methods on a nil
// receiver are no-ops.
func NewCleanupMetrics(reg prometheus.Registerer) *CleanupMetrics {
	if reg == nil {
		return nil
	}

	return &CleanupMetrics{
		RunsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wizzzey",
				Subsystem: "cleanup",
				Name:      "runs_total",
				Help:      "Total number of cleanup runs by trigger and status",
			},
			[]string{LabelTrigger, LabelStatus},
		),

		RunDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "wizzzey",
				Subsystem: "cleanup",
				Name:      "run_duration_milliseconds",
				Help:      "Duration of cleanup runs in milliseconds",
				Buckets:   []float64{10, 50, 100, 500, 1000, 5000, 10000, 30000, 60000},
			},
			[]string{LabelTrigger},
		),

		OrphansFound: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Namespace: "wizzzey",
				Subsystem: "cleanup",
				Name:      "orphans_found_total",
				Help:      "Total number of orphaned files detected",
			},
		),

		OrphansDeleted: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Namespace: "wizzzey",
				Subsystem: "cleanup",
				Name:      "orphans_deleted_total",
				Help:      "Total number of orphaned files deleted",
			},
		),

		DeleteFailures: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Namespace: "wizzzey",
				Subsystem: "cleanup",
				Name:      "delete_failures_total",
				Help:      "Total number of orphan deletions that failed",
			},
		),

		LastRunTime: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Namespace: "wizzzey",
				Subsystem: "cleanup",
				Name:      "last_run_timestamp_seconds",
				Help:      "Unix timestamp of the last completed cleanup run",
			},
		),

		LastRunOrphans: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Namespace: "wizzzey",
				Subsystem: "cleanup",
				Name:      "last_run_orphans",
				Help:      "Number of orphans found by the last cleanup run",
			},
		),
	}
}

// ObserveRun records the outcome of a completed (or failed) cleanup run.
func (m *CleanupMetrics) ObserveRun(o RunObservation) {
	if m == nil {
		return
	}

	status := StatusSuccess
	if o.Err != nil {
		status = StatusFailure
	}

	m.RunsTotal.WithLabelValues(o.Trigger, status).Inc()
	m.RunDuration.WithLabelValues(o.Trigger).Observe(float64(o.Duration.Milliseconds()))

	if o.Err != nil {
		return
	}

	m.OrphansFound.Add(float64(o.Orphans))
	m.OrphansDeleted.Add(float64(o.Deleted))
	m.DeleteFailures.Add(float64(o.Failed))
	m.LastRunTime.SetToCurrentTime()
	m.LastRunOrphans.Set(float64(o.Orphans))
}

// ObserveSkipped records a run that was skipped because another was in flight.
func (m *CleanupMetrics) ObserveSkipped(trigger string) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(trigger, StatusSkipped).Inc()
}
