package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wizzzeystore/wizzzey-api/internal/logger"
	"github.com/wizzzeystore/wizzzey-api/internal/telemetry"
	"github.com/wizzzeystore/wizzzey-api/pkg/api"
	"github.com/wizzzeystore/wizzzey-api/pkg/cleanup"
	"github.com/wizzzeystore/wizzzey-api/pkg/config"
	"github.com/wizzzeystore/wizzzey-api/pkg/metrics"
	"github.com/wizzzeystore/wizzzey-api/pkg/models"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Wizzzey API server",
	Long: `Start the Wizzzey API server with the specified configuration.

The server runs in the foreground until interrupted; use a process
supervisor (systemd, docker, etc.) to run it as a service.

Use --config to specify a custom configuration file, or it will use the
default location at $XDG_CONFIG_HOME/wizzzey/config.yaml.

Examples:
  # Start with default config
  wizzzey serve

  # Start with custom config file
  wizzzey serve --config /etc/wizzzey/config.yaml

  # Start with environment variable overrides
  WIZZZEY_LOGGING_LEVEL=DEBUG wizzzey serve`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.MustLoad(GetConfigFile())
	if err != nil {
		return err
	}

	// Initialize the structured logger
	if err := InitLogger(cfg); err != nil {
		return err
	}

	// Create cancellable context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry (if enabled)
	telemetryCfg := telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		ServiceName:    "wizzzey-api",
		ServiceVersion: Version,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		SampleRate:     cfg.Telemetry.SampleRate,
	}
	telemetryShutdown, err := telemetry.Init(ctx, telemetryCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := telemetryShutdown(ctx); err != nil {
			logger.Error("telemetry shutdown error", logger.Err(err))
		}
	}()

	// Initialize Pyroscope profiling (if enabled)
	profilingCfg := telemetry.ProfilingConfig{
		Enabled:        cfg.Telemetry.Profiling.Enabled,
		ServiceName:    "wizzzey-api",
		ServiceVersion: Version,
		Endpoint:       cfg.Telemetry.Profiling.Endpoint,
		ProfileTypes:   cfg.Telemetry.Profiling.ProfileTypes,
	}
	profilingShutdown, err := telemetry.InitProfiling(profilingCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize profiling: %w", err)
	}
	defer func() {
		if err := profilingShutdown(); err != nil {
			logger.Error("profiling shutdown error", logger.Err(err))
		}
	}()

	fmt.Println("Wizzzey API - E-commerce back-office server")
	logger.Info("Log level", "level", cfg.Logging.Level, "format", cfg.Logging.Format)
	logger.Info("Configuration loaded", "source", getConfigSource(GetConfigFile()))
	if telemetry.IsEnabled() {
		logger.Info("Telemetry enabled", "endpoint", cfg.Telemetry.Endpoint, "sample_rate", cfg.Telemetry.SampleRate)
	} else {
		logger.Info("Telemetry disabled")
	}
	if telemetry.IsProfilingEnabled() {
		logger.Info("Profiling enabled", "endpoint", cfg.Telemetry.Profiling.Endpoint, "profile_types", cfg.Telemetry.Profiling.ProfileTypes)
	} else {
		logger.Info("Profiling disabled")
	}

	// Initialize metrics (if enabled)
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		logger.Info("Metrics enabled", "endpoint", fmt.Sprintf("http://localhost:%d/metrics", cfg.API.Port))
	} else {
		logger.Info("Metrics collection disabled")
	}

	// Open the database and migrate the schema
	db, err := config.CreateStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("database close error", logger.Err(err))
		}
	}()
	logger.Info("Database ready", "type", cfg.Database.Type)

	// Ensure admin user exists (generates random password on first run)
	adminPassword, err := db.EnsureAdminUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to ensure admin user: %w", err)
	}
	if adminPassword != "" {
		logger.Info("Admin user created", "username", models.AdminUsername)
		fmt.Printf("\n*** IMPORTANT: Admin user created with password: %s ***\n", adminPassword)
		fmt.Println("Please save this password. It will not be shown again.")
		fmt.Println()
	}

	// Open the upload store (local directory or S3)
	files, err := config.CreateUploadStore(ctx, cfg)
	if err != nil {
		return err
	}
	logger.Info("Upload store ready", "location", files.Location())

	// Wire up the cleanup service; collectors are nil (no-op) when metrics
	// are disabled
	cleanupMetrics := metrics.NewCleanupMetrics(metrics.Registry())
	service := cleanup.NewService(db, files, cleanupMetrics, cfg.CleanupServiceConfig())

	// Restore last-run state from the run history so status survives restarts
	if err := service.LoadLastRun(ctx); err != nil {
		logger.Warn("Failed to load last cleanup run", logger.Err(err))
	}

	scheduler := cleanup.NewScheduler(service, cfg.SchedulerConfig())

	// Create API server before starting the scheduler so a bad JWT secret
	// fails fast
	apiServer, err := api.NewServer(cfg.API, db, files, service, scheduler)
	if err != nil {
		return fmt.Errorf("failed to create API server: %w", err)
	}

	if cfg.Cleanup.SchedulerAutostart() {
		if err := scheduler.Start(); err != nil {
			return fmt.Errorf("failed to start cleanup scheduler: %w", err)
		}
	} else {
		logger.Info("Cleanup scheduler disabled (start it via the admin API when needed)")
	}

	// Start API server in background
	serverDone := make(chan error, 1)
	go func() {
		serverDone <- apiServer.Start(ctx)
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Server is running. Press Ctrl+C to stop.")

	select {
	case <-sigChan:
		signal.Stop(sigChan)
		logger.Info("Shutdown signal received, initiating graceful shutdown")

		// Stop scheduling new runs first; an in-flight run finishes on its own
		scheduler.Stop()
		cancel()

		// Wait for server to shut down gracefully
		if err := <-serverDone; err != nil {
			logger.Error("Server shutdown error", logger.Err(err))
			return err
		}
		logger.Info("Server stopped gracefully")

	case err := <-serverDone:
		signal.Stop(sigChan)
		scheduler.Stop()
		if err != nil {
			logger.Error("Server error", logger.Err(err))
			return err
		}
		logger.Info("Server stopped")
	}

	return nil
}
