// Package api provides the admin REST API for the wizzzey back office.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/wizzzeystore/wizzzey-api/internal/logger"
	"github.com/wizzzeystore/wizzzey-api/internal/telemetry"
	"github.com/wizzzeystore/wizzzey-api/pkg/api/auth"
	"github.com/wizzzeystore/wizzzey-api/pkg/api/handlers"
	"github.com/wizzzeystore/wizzzey-api/pkg/api/middleware"
	"github.com/wizzzeystore/wizzzey-api/pkg/cleanup"
	"github.com/wizzzeystore/wizzzey-api/pkg/metrics"
	"github.com/wizzzeystore/wizzzey-api/pkg/store"
	"github.com/wizzzeystore/wizzzey-api/pkg/uploads"
)

// NewRouter creates and configures the chi router with all middleware and routes.
//
// The router is configured with:
//   - Request ID middleware for request tracking
//   - Real IP extraction for logging behind proxies
//   - Request logging via the internal logger
//   - Panic recovery
//   - 30 second request timeout
//
// Routes:
//   - GET /health: Liveness and store health (no auth)
//   - GET /metrics: Prometheus exposition (no auth, only when metrics enabled)
//   - POST /api/v1/auth/login: Credential login (no auth)
//   - POST /api/v1/auth/refresh: Token refresh (no auth)
//   - GET /api/v1/auth/me: Current user (JWT)
//   - /api/v1/cleanup/*: Cleanup management (JWT + admin)
func NewRouter(
	db store.Store,
	files uploads.Store,
	service *cleanup.Service,
	scheduler *cleanup.Scheduler,
	jwtService *auth.JWTService,
) *chi.Mux {
	r := chi.NewRouter()

	// Middleware stack (order matters)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	// Unknown routes and methods answer with the standard envelope too.
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		handlers.NotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		handlers.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	healthHandler := handlers.NewHealthHandler(db, files)
	authHandler := handlers.NewAuthHandler(db, jwtService)
	cleanupHandler := handlers.NewCleanupHandler(service, scheduler)

	// Health endpoint (no auth, used by k8s probes)
	r.Get("/health", healthHandler.Health)

	// Prometheus exposition (no auth; the bind address guards access)
	if metrics.IsEnabled() {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	// Root redirects to health for convenience
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/health", http.StatusMovedPermanently)
	})

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth endpoints
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.Refresh)

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(jwtService))

			r.Get("/auth/me", authHandler.Me)

			// Admin-only cleanup surface
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin())

				r.Route("/cleanup", func(r chi.Router) {
					r.Post("/trigger", cleanupHandler.Trigger)
					r.Get("/status", cleanupHandler.Status)
					r.Get("/preview", cleanupHandler.Preview)
					r.Post("/scheduler/start", cleanupHandler.StartScheduler)
					r.Post("/scheduler/stop", cleanupHandler.StopScheduler)
				})
			})
		})
	})

	return r
}

// isHealthPath returns true if the request path is a probe endpoint.
func isHealthPath(path string) bool {
	return path == "/health" || path == "/metrics"
}

// requestLogger is a custom middleware that logs requests using the internal logger.
//
// It logs:
//   - Request start (DEBUG level): method, path, remote addr
//   - Request completion (INFO level): method, path, status, duration
//   - Probe requests are logged at DEBUG level to reduce noise
//
// When tracing is enabled, each request also gets a server span carrying
// the method, path and final status code.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := chimiddleware.GetReqID(r.Context())

		logger.Debug("API request started",
			logger.RequestID(requestID),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.ClientIP(r.RemoteAddr),
		)

		ctx, span := telemetry.StartHTTPSpan(r.Context(), r.Method, r.URL.Path,
			telemetry.ClientIP(r.RemoteAddr))
		defer span.End()

		// Wrap response writer to capture status code
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(ctx))

		span.SetAttributes(telemetry.HTTPStatus(ww.Status()))

		logArgs := []any{
			logger.RequestID(requestID),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.Status(ww.Status()),
			logger.Bytes(ww.BytesWritten()),
			logger.DurationMs(logger.Duration(start)),
		}

		// Probe requests go to DEBUG to avoid polluting logs in k8s
		if isHealthPath(r.URL.Path) {
			logger.Debug("API request completed", logArgs...)
		} else {
			logger.Info("API request completed", logArgs...)
		}
	})
}
