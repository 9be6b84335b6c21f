package models

import "time"

// CleanupTrigger identifies what initiated a cleanup run.
type CleanupTrigger string

const (
	// TriggerManual marks a run started through the admin API.
	TriggerManual CleanupTrigger = "manual"
	// TriggerScheduled marks a run started by the cron scheduler.
	TriggerScheduled CleanupTrigger = "scheduled"
)

// CleanupRun records the outcome of a single orphaned-upload cleanup
// pass. The latest row backs the last-run field reported by the status
// endpoint, so history survives process restarts.
type CleanupRun struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Trigger    string    `gorm:"not null;size:50" json:"trigger"` // manual, scheduled
	StartedAt  time.Time `gorm:"not null;index" json:"started_at"`
	DurationMs float64   `json:"duration_ms"`
	Uploaded   int       `json:"uploaded"`
	Referenced int       `json:"referenced"`
	Orphans    int       `json:"orphans"`
	Deleted    int       `json:"deleted"`
	Failed     int       `json:"failed"`
	Error      string    `gorm:"type:text" json:"error,omitempty"` // run-level failure, empty on success
}

// TableName returns the table name for CleanupRun.
func (CleanupRun) TableName() string {
	return "cleanup_runs"
}

// Succeeded reports whether the run completed without a run-level error.
// Per-file deletion failures do not fail the run.
func (r *CleanupRun) Succeeded() bool {
	return r.Error == ""
}
