package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/wizzzeystore/wizzzey-api/internal/logger"
	"github.com/wizzzeystore/wizzzey-api/pkg/store"
	"github.com/wizzzeystore/wizzzey-api/pkg/uploads"
)

// healthcheckTimeout bounds the store ping so a hung database cannot stall
// the probe past the kubelet's own timeout.
const healthcheckTimeout = 5 * time.Second

// HealthHandler handles GET /health.
//
// The endpoint is unauthenticated and doubles as liveness and readiness
// probe: it answers 200 when the process is up and the store responds,
// 503 otherwise.
type HealthHandler struct {
	store store.Store
	files uploads.Store
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(st store.Store, files uploads.Store) *HealthHandler {
	return &HealthHandler{store: st, files: files}
}

// HealthData is the envelope data for a healthy GET /health response.
type HealthData struct {
	Service  string `json:"service"`
	Database string `json:"database"`
	Uploads  string `json:"uploads"`
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		ServiceUnavailable(w, "Store not initialized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
	defer cancel()

	if err := h.store.Healthcheck(ctx); err != nil {
		logger.ErrorCtx(r.Context(), "Health check failed", logger.Err(err))
		ServiceUnavailable(w, "Database unreachable")
		return
	}

	data := HealthData{
		Service:  "wizzzey-api",
		Database: "up",
	}
	if h.files != nil {
		data.Uploads = h.files.Location()
	}

	WriteOK(w, http.StatusOK, "Service healthy", data)
}
