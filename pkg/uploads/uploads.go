// Package uploads abstracts the storage that holds user-uploaded assets
// (product photos, brand logos, avatars and similar files).
//
// Uploads live in a single flat namespace addressed by filename. Two backends
// implement the same interface: a local directory (the default) and an S3
// bucket for deployments that serve assets from object storage. The cleanup
// subsystem only ever needs to enumerate and delete, so the interface stays
// deliberately small; serving and receiving uploads goes through the HTTP
// layer, not through this package.
package uploads

import (
	"context"
	"fmt"
)

// Store enumerates and deletes uploaded files.
//
// Implementations are safe for concurrent use.
type Store interface {
	// List returns the filenames of every stored upload. An unreadable
	// backend returns an error; callers treat that as fatal because a
	// partial listing would misclassify files.
	List(ctx context.Context) ([]string, error)

	// Delete removes a single upload by filename. Filenames must be bare
	// names without path separators.
	Delete(ctx context.Context, filename string) error

	// Location describes where uploads live (a directory path or bucket
	// URI), for status reporting and logs.
	Location() string
}

// BackendType identifies an upload storage backend.
type BackendType string

const (
	// BackendFilesystem stores uploads in a local directory.
	BackendFilesystem BackendType = "filesystem"

	// BackendS3 stores uploads in an S3 (or S3-compatible) bucket.
	BackendS3 BackendType = "s3"
)

// Config selects and configures an upload backend.
type Config struct {
	Backend   BackendType
	Directory string // filesystem backend
	S3        S3Config
}

// ApplyDefaults fills in missing configuration with default values.
func (c *Config) ApplyDefaults() {
	if c.Backend == "" {
		c.Backend = BackendFilesystem
	}
	if c.Backend == BackendFilesystem && c.Directory == "" {
		c.Directory = "uploads"
	}
}

// New creates the upload store described by the configuration.
func New(ctx context.Context, cfg Config) (Store, error) {
	cfg.ApplyDefaults()

	switch cfg.Backend {
	case BackendFilesystem:
		return NewFilesystemStore(cfg.Directory)
	case BackendS3:
		return NewS3Store(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unsupported upload backend: %s", cfg.Backend)
	}
}
