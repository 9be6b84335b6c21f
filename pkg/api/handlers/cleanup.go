package handlers

import (
	"net/http"
	"time"

	"github.com/wizzzeystore/wizzzey-api/internal/logger"
	"github.com/wizzzeystore/wizzzey-api/pkg/cleanup"
	"github.com/wizzzeystore/wizzzey-api/pkg/models"
)

// CleanupHandler handles the orphaned-upload cleanup endpoints.
//
// All routes require an authenticated admin:
//   - POST /api/v1/cleanup/trigger: start a cleanup run in the background
//   - GET  /api/v1/cleanup/status: service and scheduler state
//   - GET  /api/v1/cleanup/preview: dry run, lists orphans without deleting
//   - POST /api/v1/cleanup/scheduler/start: enable the daily schedule
//   - POST /api/v1/cleanup/scheduler/stop: disable the daily schedule
type CleanupHandler struct {
	service   *cleanup.Service
	scheduler *cleanup.Scheduler
}

// NewCleanupHandler creates a new CleanupHandler.
func NewCleanupHandler(service *cleanup.Service, scheduler *cleanup.Scheduler) *CleanupHandler {
	return &CleanupHandler{
		service:   service,
		scheduler: scheduler,
	}
}

// TriggerData is the envelope data for POST /cleanup/trigger.
type TriggerData struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// StatusData is the envelope data for GET /cleanup/status.
type StatusData struct {
	IsRunning        bool       `json:"isRunning"`
	SchedulerActive  bool       `json:"schedulerActive"`
	LastRun          *time.Time `json:"lastRun"`
	NextScheduledRun *time.Time `json:"nextScheduledRun"`
	UploadsDirectory string     `json:"uploadsDirectory"`
}

// PreviewData is the envelope data for GET /cleanup/preview.
type PreviewData struct {
	TotalFilesInUploads int       `json:"totalFilesInUploads"`
	ReferencedFiles     int       `json:"referencedFiles"`
	OrphanedFiles       int       `json:"orphanedFiles"`
	OrphanedFileList    []string  `json:"orphanedFileList"`
	Timestamp           time.Time `json:"timestamp"`
}

// SchedulerData is the envelope data for the scheduler start/stop endpoints.
type SchedulerData struct {
	Message   string     `json:"message"`
	NextRun   *time.Time `json:"nextRun,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// Trigger handles POST /api/v1/cleanup/trigger.
//
// The run happens in the background; the response only acknowledges that it
// was initiated. If a run is already in progress the new one is skipped and
// this endpoint still answers OK, so clients cannot tell the difference —
// by then the files are being cleaned either way.
func (h *CleanupHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	h.service.RunAsync(models.TriggerManual)

	WriteOK(w, http.StatusAccepted, "Cleanup initiated", TriggerData{
		Message:   "Orphaned files cleanup initiated in background",
		Timestamp: time.Now().UTC(),
	})
}

// Status handles GET /api/v1/cleanup/status.
func (h *CleanupHandler) Status(w http.ResponseWriter, r *http.Request) {
	st := h.service.Status()

	WriteOK(w, http.StatusOK, "Cleanup status", StatusData{
		IsRunning:        st.Running,
		SchedulerActive:  h.scheduler.Active(),
		LastRun:          st.LastRun,
		NextScheduledRun: h.scheduler.NextRun(),
		UploadsDirectory: st.Location,
	})
}

// Preview handles GET /api/v1/cleanup/preview.
//
// Runs the scan and enumeration without deleting anything. Safe to call
// repeatedly; two consecutive previews with no writes in between return
// the same orphan list.
func (h *CleanupHandler) Preview(w http.ResponseWriter, r *http.Request) {
	pv, err := h.service.Preview(r.Context())
	if err != nil {
		logger.ErrorCtx(r.Context(), "Cleanup preview failed", logger.Err(err))
		InternalServerError(w, "Failed to compute cleanup preview")
		return
	}

	WriteOK(w, http.StatusOK, "Cleanup preview", PreviewData{
		TotalFilesInUploads: pv.Uploaded,
		ReferencedFiles:     pv.Referenced,
		OrphanedFiles:       len(pv.Orphans),
		OrphanedFileList:    pv.Orphans,
		Timestamp:           time.Now().UTC(),
	})
}

// StartScheduler handles POST /api/v1/cleanup/scheduler/start.
// Starting an already-active scheduler re-registers the job and answers OK.
func (h *CleanupHandler) StartScheduler(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduler.Start(); err != nil {
		logger.ErrorCtx(r.Context(), "Failed to start cleanup scheduler", logger.Err(err))
		InternalServerError(w, "Failed to start cleanup scheduler")
		return
	}

	WriteOK(w, http.StatusOK, "Scheduler started", SchedulerData{
		Message:   "Cleanup scheduler started",
		NextRun:   h.scheduler.NextRun(),
		Timestamp: time.Now().UTC(),
	})
}

// StopScheduler handles POST /api/v1/cleanup/scheduler/stop.
// Stopping an inactive scheduler is a no-op and answers OK.
func (h *CleanupHandler) StopScheduler(w http.ResponseWriter, r *http.Request) {
	h.scheduler.Stop()

	WriteOK(w, http.StatusOK, "Scheduler stopped", SchedulerData{
		Message:   "Cleanup scheduler stopped",
		Timestamp: time.Now().UTC(),
	})
}
