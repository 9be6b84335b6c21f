package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"

	"github.com/wizzzeystore/wizzzey-api/pkg/uploads"
)

// Validate checks the configuration for errors.
//
// Structural rules (ranges, enums, required fields) are driven by `validate`
// struct tags. Rules that span fields or need real parsers (cron expressions,
// backend-specific requirements) are checked explicitly.
//
// Validation does not mutate the configuration; normalization happens in
// ApplyDefaults.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return err
	}

	// Conditional requirements that tags cannot express.
	if cfg.Telemetry.Enabled && cfg.Telemetry.Endpoint == "" {
		return fmt.Errorf("telemetry is enabled but no endpoint is configured")
	}
	if cfg.Telemetry.Profiling.Enabled && cfg.Telemetry.Profiling.Endpoint == "" {
		return fmt.Errorf("profiling is enabled but no endpoint is configured")
	}

	if err := cfg.Database.Validate(); err != nil {
		return fmt.Errorf("invalid database configuration: %w", err)
	}

	if err := validateUploads(&cfg.Uploads); err != nil {
		return fmt.Errorf("invalid uploads configuration: %w", err)
	}

	if err := validateCleanup(&cfg.Cleanup); err != nil {
		return fmt.Errorf("invalid cleanup configuration: %w", err)
	}

	return nil
}

// validateUploads checks backend-specific upload storage requirements.
func validateUploads(cfg *uploads.Config) error {
	switch cfg.Backend {
	case uploads.BackendFilesystem:
		if cfg.Directory == "" {
			return fmt.Errorf("filesystem backend requires a directory")
		}
	case uploads.BackendS3:
		if cfg.S3.Bucket == "" {
			return fmt.Errorf("s3 backend requires a bucket")
		}
	default:
		return fmt.Errorf("unsupported backend: %q", cfg.Backend)
	}
	return nil
}

// validateCleanup checks that the cleanup schedule is a parseable cron
// expression, so a typo fails at startup instead of when the scheduler
// first arms.
func validateCleanup(cfg *CleanupConfig) error {
	if _, err := cron.ParseStandard(cfg.Schedule); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", cfg.Schedule, err)
	}
	return nil
}
