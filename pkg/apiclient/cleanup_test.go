package apiclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerCleanup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/cleanup/trigger", r.URL.Path)
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))

		writeEnvelope(w, http.StatusAccepted, "OK", "Cleanup process triggered", CleanupTriggered{
			Message:   "Cleanup process started in background",
			Timestamp: time.Now(),
		})
	}))
	defer server.Close()

	client := New(server.URL).WithToken("admin-token")
	resp, err := client.TriggerCleanup()
	require.NoError(t, err)
	assert.Equal(t, "Cleanup process started in background", resp.Message)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestTriggerCleanup_AlreadyRunning(t *testing.T) {
	// A trigger while a run is in flight is still accepted; the server skips
	// the overlapping run internally.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusAccepted, "OK", "Cleanup process triggered", CleanupTriggered{
			Message:   "Cleanup process started in background",
			Timestamp: time.Now(),
		})
	}))
	defer server.Close()

	client := New(server.URL).WithToken("admin-token")
	_, err := client.TriggerCleanup()
	require.NoError(t, err)
}

func TestGetCleanupStatus(t *testing.T) {
	lastRun := time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC)
	nextRun := time.Date(2024, 6, 2, 18, 30, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/cleanup/status", r.URL.Path)

		writeEnvelope(w, http.StatusOK, "OK", "Cleanup status retrieved", CleanupStatus{
			IsRunning:        false,
			SchedulerActive:  true,
			LastRun:          &lastRun,
			NextScheduledRun: &nextRun,
			UploadsDirectory: "/srv/wizzzey/uploads",
		})
	}))
	defer server.Close()

	client := New(server.URL).WithToken("admin-token")
	status, err := client.GetCleanupStatus()
	require.NoError(t, err)
	assert.False(t, status.IsRunning)
	assert.True(t, status.SchedulerActive)
	require.NotNil(t, status.LastRun)
	assert.Equal(t, lastRun, status.LastRun.UTC())
	require.NotNil(t, status.NextScheduledRun)
	assert.Equal(t, nextRun, status.NextScheduledRun.UTC())
	assert.Equal(t, "/srv/wizzzey/uploads", status.UploadsDirectory)
}

func TestGetCleanupStatus_NeverRun(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, "OK", "Cleanup status retrieved", CleanupStatus{
			IsRunning:        false,
			SchedulerActive:  false,
			UploadsDirectory: "/srv/wizzzey/uploads",
		})
	}))
	defer server.Close()

	client := New(server.URL).WithToken("admin-token")
	status, err := client.GetCleanupStatus()
	require.NoError(t, err)
	assert.Nil(t, status.LastRun)
	assert.Nil(t, status.NextScheduledRun)
}

func TestGetCleanupPreview(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/cleanup/preview", r.URL.Path)

		writeEnvelope(w, http.StatusOK, "OK", "Cleanup preview generated", CleanupPreview{
			TotalFilesInUploads: 10,
			ReferencedFiles:     7,
			OrphanedFiles:       3,
			OrphanedFileList:    []string{"a.png", "b.png", "c.png"},
			Timestamp:           time.Now(),
		})
	}))
	defer server.Close()

	client := New(server.URL).WithToken("admin-token")
	preview, err := client.GetCleanupPreview()
	require.NoError(t, err)
	assert.Equal(t, 10, preview.TotalFilesInUploads)
	assert.Equal(t, 7, preview.ReferencedFiles)
	assert.Equal(t, 3, preview.OrphanedFiles)
	assert.Equal(t, []string{"a.png", "b.png", "c.png"}, preview.OrphanedFileList)
}

func TestStartScheduler(t *testing.T) {
	nextRun := time.Date(2024, 6, 2, 18, 30, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/cleanup/scheduler/start", r.URL.Path)

		writeEnvelope(w, http.StatusOK, "OK", "Scheduler started", SchedulerState{
			Message:   "Cleanup scheduler started",
			NextRun:   &nextRun,
			Timestamp: time.Now(),
		})
	}))
	defer server.Close()

	client := New(server.URL).WithToken("admin-token")
	state, err := client.StartScheduler()
	require.NoError(t, err)
	assert.Equal(t, "Cleanup scheduler started", state.Message)
	require.NotNil(t, state.NextRun)
	assert.Equal(t, nextRun, state.NextRun.UTC())
}

func TestStopScheduler(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/cleanup/scheduler/stop", r.URL.Path)

		writeEnvelope(w, http.StatusOK, "OK", "Scheduler stopped", SchedulerState{
			Message:   "Cleanup scheduler stopped",
			Timestamp: time.Now(),
		})
	}))
	defer server.Close()

	client := New(server.URL).WithToken("admin-token")
	state, err := client.StopScheduler()
	require.NoError(t, err)
	assert.Equal(t, "Cleanup scheduler stopped", state.Message)
	assert.Nil(t, state.NextRun)
}

func TestCleanup_RequiresAdmin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusForbidden, "ERROR", "Admin access required", nil)
	}))
	defer server.Close()

	client := New(server.URL).WithToken("user-token")
	_, err := client.TriggerCleanup()
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.True(t, apiErr.IsAuthError())
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/health", r.URL.Path)

		writeEnvelope(w, http.StatusOK, "OK", "Service healthy", HealthStatus{
			Service:  "ok",
			Database: "ok",
			Uploads:  "ok",
		})
	}))
	defer server.Close()

	client := New(server.URL)
	health, err := client.Health()
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Service)
	assert.Equal(t, "ok", health.Database)
	assert.Equal(t, "ok", health.Uploads)
}
