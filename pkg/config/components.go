package config

import (
	"context"
	"fmt"

	"github.com/wizzzeystore/wizzzey-api/pkg/cleanup"
	"github.com/wizzzeystore/wizzzey-api/pkg/store"
	"github.com/wizzzeystore/wizzzey-api/pkg/uploads"
)

// CreateStore opens the database described by the configuration and migrates
// the schema.
func CreateStore(cfg *Config) (*store.GORMStore, error) {
	st, err := store.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return st, nil
}

// CreateUploadStore creates the upload store described by the configuration.
// For the S3 backend this verifies bucket access, so it needs a context.
func CreateUploadStore(ctx context.Context, cfg *Config) (uploads.Store, error) {
	files, err := uploads.New(ctx, cfg.Uploads)
	if err != nil {
		return nil, fmt.Errorf("failed to open upload store: %w", err)
	}
	return files, nil
}

// CleanupServiceConfig converts the cleanup section into the service's
// configuration type.
func (c *Config) CleanupServiceConfig() cleanup.Config {
	return cleanup.Config{
		SentinelFile: c.Cleanup.SentinelFile,
		RunTimeout:   c.Cleanup.RunTimeout,
	}
}

// SchedulerConfig converts the cleanup section into the scheduler's
// configuration type.
func (c *Config) SchedulerConfig() cleanup.SchedulerConfig {
	return cleanup.SchedulerConfig{
		Schedule: c.Cleanup.Schedule,
	}
}
