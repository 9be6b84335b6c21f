// Package store provides the persistence layer for the back-office API.
//
// This package implements the Store interface for managing catalog data
// (products, categories, brands), content posts, storefront settings,
// back-office users and cleanup run history.
//
// Two backends are supported:
//   - SQLite (single-node, default)
//   - PostgreSQL (HA-capable)
package store

import (
	"context"
	"time"

	"github.com/wizzzeystore/wizzzey-api/pkg/models"
)

// Store provides the persistence interface for the back-office API.
//
// Thread Safety: Implementations must be safe for concurrent use from
// multiple goroutines.
type Store interface {
	// ============================================
	// USER OPERATIONS
	// ============================================

	// GetUser returns a user by username.
	// Returns models.ErrUserNotFound if the user doesn't exist.
	GetUser(ctx context.Context, username string) (*models.User, error)

	// GetUserByID returns a user by their unique ID (UUID).
	// Returns models.ErrUserNotFound if no user has this ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// ListUsers returns all users.
	ListUsers(ctx context.Context) ([]*models.User, error)

	// CreateUser creates a new user.
	// The user ID will be generated if empty.
	// Returns the generated ID.
	// Returns models.ErrDuplicateUser if a user with the same username exists.
	CreateUser(ctx context.Context, user *models.User) (string, error)

	// DeleteUser deletes a user by username.
	// Returns models.ErrUserNotFound if the user doesn't exist.
	DeleteUser(ctx context.Context, username string) error

	// UpdatePassword updates a user's password hash.
	// Returns models.ErrUserNotFound if the user doesn't exist.
	UpdatePassword(ctx context.Context, username, passwordHash string) error

	// UpdateLastLogin updates the user's last login timestamp.
	// Returns models.ErrUserNotFound if the user doesn't exist.
	UpdateLastLogin(ctx context.Context, username string, timestamp time.Time) error

	// ValidateCredentials verifies login credentials. The identifier may be
	// a username or an email address.
	// Returns the user if credentials are valid.
	// Returns models.ErrInvalidCredentials if the credentials are invalid.
	// Returns models.ErrUserDisabled if the user account is disabled.
	ValidateCredentials(ctx context.Context, identifier, password string) (*models.User, error)

	// EnsureAdminUser ensures an admin user exists.
	// If no admin user exists, creates one with a generated password.
	// Returns the initial password if a new admin was created, empty string otherwise.
	// This should be called during server startup.
	EnsureAdminUser(ctx context.Context) (initialPassword string, err error)

	// ============================================
	// IMAGE REFERENCE PROJECTIONS
	// ============================================
	//
	// These listings load only the columns that can reference uploaded
	// files. The cleanup scanner walks them to build the referenced set.
	// Each returns every row of its collection; an error from any of
	// them must abort the scan.

	// ListProductImageRefs returns image and media columns for all products.
	ListProductImageRefs(ctx context.Context) ([]*models.Product, error)

	// ListCategoryImageRefs returns image, image-filename and media columns
	// for all categories.
	ListCategoryImageRefs(ctx context.Context) ([]*models.Category, error)

	// ListBrandImageRefs returns the logo column for all brands.
	ListBrandImageRefs(ctx context.Context) ([]*models.Brand, error)

	// ListUserAvatarRefs returns the avatar column for all users.
	ListUserAvatarRefs(ctx context.Context) ([]*models.User, error)

	// ListPostImageRefs returns featured image and media columns for all
	// blog posts.
	ListPostImageRefs(ctx context.Context) ([]*models.BlogPost, error)

	// ============================================
	// SETTINGS OPERATIONS
	// ============================================

	// GetAppSettings returns the storefront settings row.
	// Returns models.ErrSettingsNotFound if no settings row exists.
	GetAppSettings(ctx context.Context) (*models.AppSettings, error)

	// SaveAppSettings creates or updates the storefront settings row.
	SaveAppSettings(ctx context.Context, settings *models.AppSettings) error

	// ============================================
	// CLEANUP RUN OPERATIONS
	// ============================================

	// CreateCleanupRun records a finished cleanup run.
	// The ID will be generated if empty. Returns the generated ID.
	CreateCleanupRun(ctx context.Context, run *models.CleanupRun) (string, error)

	// LatestCleanupRun returns the most recent cleanup run by start time.
	// Returns models.ErrRunNotFound if no run has been recorded.
	LatestCleanupRun(ctx context.Context) (*models.CleanupRun, error)

	// ListCleanupRuns returns up to limit runs, newest first.
	ListCleanupRuns(ctx context.Context, limit int) ([]*models.CleanupRun, error)

	// ============================================
	// HEALTH & LIFECYCLE
	// ============================================

	// Healthcheck verifies the store is operational.
	// Returns an error if the store is not healthy.
	Healthcheck(ctx context.Context) error

	// Close closes the store and releases resources.
	Close() error
}
