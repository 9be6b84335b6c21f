package apiclient

import (
	"time"
)

// CleanupTriggered is the acknowledgement returned when a cleanup run is
// started in the background.
type CleanupTriggered struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// CleanupStatus describes the cleanup subsystem's current state.
type CleanupStatus struct {
	IsRunning        bool       `json:"isRunning"`
	SchedulerActive  bool       `json:"schedulerActive"`
	LastRun          *time.Time `json:"lastRun"`
	NextScheduledRun *time.Time `json:"nextScheduledRun"`
	UploadsDirectory string     `json:"uploadsDirectory"`
}

// CleanupPreview reports what a cleanup run would do, without deleting
// anything.
type CleanupPreview struct {
	TotalFilesInUploads int       `json:"totalFilesInUploads"`
	ReferencedFiles     int       `json:"referencedFiles"`
	OrphanedFiles       int       `json:"orphanedFiles"`
	OrphanedFileList    []string  `json:"orphanedFileList"`
	Timestamp           time.Time `json:"timestamp"`
}

// SchedulerState is returned by the scheduler start/stop endpoints.
type SchedulerState struct {
	Message   string     `json:"message"`
	NextRun   *time.Time `json:"nextRun,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// TriggerCleanup starts a cleanup run in the background.
func (c *Client) TriggerCleanup() (*CleanupTriggered, error) {
	var resp CleanupTriggered
	if err := c.post("/api/v1/cleanup/trigger", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCleanupStatus returns the cleanup subsystem's current state.
func (c *Client) GetCleanupStatus() (*CleanupStatus, error) {
	var resp CleanupStatus
	if err := c.get("/api/v1/cleanup/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCleanupPreview computes which files a cleanup run would delete.
func (c *Client) GetCleanupPreview() (*CleanupPreview, error) {
	var resp CleanupPreview
	if err := c.get("/api/v1/cleanup/preview", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// StartScheduler starts the cleanup scheduler.
func (c *Client) StartScheduler() (*SchedulerState, error) {
	var resp SchedulerState
	if err := c.post("/api/v1/cleanup/scheduler/start", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// StopScheduler stops the cleanup scheduler.
func (c *Client) StopScheduler() (*SchedulerState, error) {
	var resp SchedulerState
	if err := c.post("/api/v1/cleanup/scheduler/stop", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
