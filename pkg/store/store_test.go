//go:build integration

package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/wizzzeystore/wizzzey-api/pkg/models"
)

// createTestStore creates an in-memory SQLite store for testing.
func createTestStore(t *testing.T) *GORMStore {
	t.Helper()
	store, err := New(&Config{
		Type: DatabaseTypeSQLite,
		SQLite: SQLiteConfig{
			Path: ":memory:",
		},
	})
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	return store
}

func TestNew(t *testing.T) {
	t.Run("default config uses sqlite", func(t *testing.T) {
		config := &Config{}
		config.ApplyDefaults()

		if config.Type != DatabaseTypeSQLite {
			t.Errorf("expected SQLite, got %s", config.Type)
		}
	})

	t.Run("invalid config returns error", func(t *testing.T) {
		config := &Config{
			Type: "invalid",
		}
		_, err := New(config)
		if err == nil {
			t.Error("expected error for invalid config")
		}
	})

	t.Run("creates in-memory store", func(t *testing.T) {
		store := createTestStore(t)
		defer store.Close()

		if store == nil {
			t.Error("expected non-nil store")
		}
	})
}

func TestUserOperations(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()

	t.Run("create user", func(t *testing.T) {
		user := &models.User{
			Username:     "testuser",
			PasswordHash: "hashed-password",
			Role:         "user",
		}

		id, err := store.CreateUser(ctx, user)
		if err != nil {
			t.Fatalf("failed to create user: %v", err)
		}
		if id == "" {
			t.Error("expected non-empty user ID")
		}
	})

	t.Run("duplicate user fails", func(t *testing.T) {
		user := &models.User{
			Username:     "testuser",
			PasswordHash: "hashed-password",
		}

		_, err := store.CreateUser(ctx, user)
		if !errors.Is(err, models.ErrDuplicateUser) {
			t.Errorf("expected ErrDuplicateUser, got %v", err)
		}
	})

	t.Run("get user", func(t *testing.T) {
		user, err := store.GetUser(ctx, "testuser")
		if err != nil {
			t.Fatalf("failed to get user: %v", err)
		}
		if user.Username != "testuser" {
			t.Errorf("expected username 'testuser', got %q", user.Username)
		}
	})

	t.Run("get user not found", func(t *testing.T) {
		_, err := store.GetUser(ctx, "nonexistent")
		if !errors.Is(err, models.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("list users", func(t *testing.T) {
		users, err := store.ListUsers(ctx)
		if err != nil {
			t.Fatalf("failed to list users: %v", err)
		}
		if len(users) < 1 {
			t.Error("expected at least 1 user")
		}
	})

	t.Run("update password", func(t *testing.T) {
		err := store.UpdatePassword(ctx, "testuser", "new-hash")
		if err != nil {
			t.Fatalf("failed to update password: %v", err)
		}

		user, _ := store.GetUser(ctx, "testuser")
		if user.PasswordHash != "new-hash" {
			t.Error("password hash was not updated")
		}
	})

	t.Run("update last login", func(t *testing.T) {
		now := time.Now()
		err := store.UpdateLastLogin(ctx, "testuser", now)
		if err != nil {
			t.Fatalf("failed to update last login: %v", err)
		}

		user, _ := store.GetUser(ctx, "testuser")
		if user.LastLogin == nil {
			t.Error("last login was not updated")
		}
	})

	t.Run("delete user", func(t *testing.T) {
		deleteUser := &models.User{
			Username:     "todelete",
			PasswordHash: "hash",
		}
		store.CreateUser(ctx, deleteUser)

		err := store.DeleteUser(ctx, "todelete")
		if err != nil {
			t.Fatalf("failed to delete user: %v", err)
		}

		_, err = store.GetUser(ctx, "todelete")
		if !errors.Is(err, models.ErrUserNotFound) {
			t.Error("user should not exist after deletion")
		}
	})

	t.Run("delete nonexistent user fails", func(t *testing.T) {
		err := store.DeleteUser(ctx, "nonexistent")
		if !errors.Is(err, models.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestValidateCredentials(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()

	// Create a user with a known bcrypt hash
	hash, _ := models.HashPassword("password123")
	user := &models.User{
		Username:     "authuser",
		PasswordHash: hash,
		Enabled:      true,
	}
	store.CreateUser(ctx, user)

	t.Run("valid credentials", func(t *testing.T) {
		validated, err := store.ValidateCredentials(ctx, "authuser", "password123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if validated.Username != "authuser" {
			t.Errorf("expected username 'authuser', got %q", validated.Username)
		}
	})

	t.Run("invalid password", func(t *testing.T) {
		_, err := store.ValidateCredentials(ctx, "authuser", "wrongpassword")
		if !errors.Is(err, models.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("nonexistent user returns invalid credentials", func(t *testing.T) {
		// Security: returns ErrInvalidCredentials (not ErrUserNotFound) to prevent user enumeration
		_, err := store.ValidateCredentials(ctx, "nonexistent", "password")
		if !errors.Is(err, models.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("valid credentials by email", func(t *testing.T) {
		withEmail := &models.User{
			Username:     "emailuser",
			Email:        "shop@wizzzey.store",
			PasswordHash: hash,
			Enabled:      true,
		}
		store.CreateUser(ctx, withEmail)

		validated, err := store.ValidateCredentials(ctx, "shop@wizzzey.store", "password123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if validated.Username != "emailuser" {
			t.Errorf("expected username 'emailuser', got %q", validated.Username)
		}
	})

	t.Run("disabled user", func(t *testing.T) {
		disabled := &models.User{
			Username:     "disableduser",
			PasswordHash: hash,
			Enabled:      true,
		}
		store.CreateUser(ctx, disabled)

		// The enabled column carries a DB default, so a zero-valued flag is
		// dropped from the INSERT. Disable with an explicit update instead.
		store.DB().Model(&models.User{}).Where("username = ?", "disableduser").Update("enabled", false)

		_, err := store.ValidateCredentials(ctx, "disableduser", "password123")
		if !errors.Is(err, models.ErrUserDisabled) {
			t.Errorf("expected ErrUserDisabled, got %v", err)
		}
	})
}

func TestImageRefProjections(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()
	db := store.DB()

	// Seed one row per collection, each carrying file references.
	product := &models.Product{
		ID:       "prod-1",
		Name:     "Blue Shirt",
		Slug:     "blue-shirt",
		ImageURL: "/uploads/shirt-main.jpg",
	}
	if err := product.SetMedia([]models.MediaItem{
		{URL: "/uploads/shirt-side.jpg", Type: "image"},
		{URL: "https://cdn.example.com/uploads/shirt-back.jpg", Type: "image"},
	}); err != nil {
		t.Fatalf("failed to set media: %v", err)
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}

	category := &models.Category{
		ID:            "cat-1",
		Name:          "Shirts",
		Slug:          "shirts",
		ImageURL:      "/uploads/cat-banner.jpg",
		ImageFilename: "cat-thumb.jpg",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	brand := &models.Brand{
		ID:      "brand-1",
		Name:    "Acme",
		LogoURL: "/uploads/acme-logo.png",
	}
	if err := db.Create(brand).Error; err != nil {
		t.Fatalf("failed to seed brand: %v", err)
	}

	avatarUser := &models.User{
		Username:     "avataruser",
		PasswordHash: "hash",
		AvatarURL:    "/uploads/avatar.png",
	}
	if _, err := store.CreateUser(ctx, avatarUser); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	post := &models.BlogPost{
		ID:               "post-1",
		Title:            "Summer Sale",
		Slug:             "summer-sale",
		FeaturedImageURL: "/uploads/sale-hero.jpg",
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("failed to seed post: %v", err)
	}

	t.Run("product refs include media JSON", func(t *testing.T) {
		products, err := store.ListProductImageRefs(ctx)
		if err != nil {
			t.Fatalf("failed to list product refs: %v", err)
		}
		if len(products) != 1 {
			t.Fatalf("expected 1 product, got %d", len(products))
		}
		if products[0].ImageURL != "/uploads/shirt-main.jpg" {
			t.Errorf("unexpected image URL %q", products[0].ImageURL)
		}

		media, err := products[0].GetMedia()
		if err != nil {
			t.Fatalf("failed to parse media: %v", err)
		}
		if len(media) != 2 {
			t.Errorf("expected 2 media items, got %d", len(media))
		}
	})

	t.Run("projection skips unrelated columns", func(t *testing.T) {
		products, err := store.ListProductImageRefs(ctx)
		if err != nil {
			t.Fatalf("failed to list product refs: %v", err)
		}
		if products[0].Name != "" {
			t.Errorf("expected name to be unloaded, got %q", products[0].Name)
		}
	})

	t.Run("category refs include both image fields", func(t *testing.T) {
		categories, err := store.ListCategoryImageRefs(ctx)
		if err != nil {
			t.Fatalf("failed to list category refs: %v", err)
		}
		if len(categories) != 1 {
			t.Fatalf("expected 1 category, got %d", len(categories))
		}
		if categories[0].ImageURL != "/uploads/cat-banner.jpg" {
			t.Errorf("unexpected image URL %q", categories[0].ImageURL)
		}
		if categories[0].ImageFilename != "cat-thumb.jpg" {
			t.Errorf("unexpected image filename %q", categories[0].ImageFilename)
		}
	})

	t.Run("brand refs", func(t *testing.T) {
		brands, err := store.ListBrandImageRefs(ctx)
		if err != nil {
			t.Fatalf("failed to list brand refs: %v", err)
		}
		if len(brands) != 1 || brands[0].LogoURL != "/uploads/acme-logo.png" {
			t.Errorf("unexpected brand refs: %+v", brands)
		}
	})

	t.Run("user avatar refs", func(t *testing.T) {
		users, err := store.ListUserAvatarRefs(ctx)
		if err != nil {
			t.Fatalf("failed to list avatar refs: %v", err)
		}
		found := false
		for _, u := range users {
			if u.AvatarURL == "/uploads/avatar.png" {
				found = true
			}
		}
		if !found {
			t.Error("expected avatar reference in projection")
		}
	})

	t.Run("post refs", func(t *testing.T) {
		posts, err := store.ListPostImageRefs(ctx)
		if err != nil {
			t.Fatalf("failed to list post refs: %v", err)
		}
		if len(posts) != 1 || posts[0].FeaturedImageURL != "/uploads/sale-hero.jpg" {
			t.Errorf("unexpected post refs: %+v", posts)
		}
	})
}

func TestAppSettings(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()

	t.Run("get before save returns not found", func(t *testing.T) {
		_, err := store.GetAppSettings(ctx)
		if !errors.Is(err, models.ErrSettingsNotFound) {
			t.Errorf("expected ErrSettingsNotFound, got %v", err)
		}
	})

	t.Run("save and get", func(t *testing.T) {
		settings := &models.AppSettings{
			StoreName:    "Wizzzey",
			StoreLogoURL: "/uploads/store-logo.png",
			HeroImageURL: "/uploads/hero.jpg",
		}
		if err := store.SaveAppSettings(ctx, settings); err != nil {
			t.Fatalf("failed to save settings: %v", err)
		}

		got, err := store.GetAppSettings(ctx)
		if err != nil {
			t.Fatalf("failed to get settings: %v", err)
		}
		if got.StoreLogoURL != "/uploads/store-logo.png" {
			t.Errorf("unexpected logo URL %q", got.StoreLogoURL)
		}
	})

	t.Run("save again updates singleton row", func(t *testing.T) {
		settings, _ := store.GetAppSettings(ctx)
		settings.HeroImageURL = "/uploads/hero-v2.jpg"
		if err := store.SaveAppSettings(ctx, settings); err != nil {
			t.Fatalf("failed to update settings: %v", err)
		}

		got, _ := store.GetAppSettings(ctx)
		if got.HeroImageURL != "/uploads/hero-v2.jpg" {
			t.Errorf("expected updated hero URL, got %q", got.HeroImageURL)
		}

		var count int64
		store.DB().Model(&models.AppSettings{}).Count(&count)
		if count != 1 {
			t.Errorf("expected a single settings row, got %d", count)
		}
	})
}

func TestCleanupRuns(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()

	t.Run("latest with no runs returns not found", func(t *testing.T) {
		_, err := store.LatestCleanupRun(ctx)
		if !errors.Is(err, models.ErrRunNotFound) {
			t.Errorf("expected ErrRunNotFound, got %v", err)
		}
	})

	t.Run("create run", func(t *testing.T) {
		run := &models.CleanupRun{
			Trigger:    string(models.TriggerManual),
			StartedAt:  time.Now().Add(-time.Hour),
			Uploaded:   10,
			Referenced: 7,
			Orphans:    3,
			Deleted:    3,
		}
		id, err := store.CreateCleanupRun(ctx, run)
		if err != nil {
			t.Fatalf("failed to create run: %v", err)
		}
		if id == "" {
			t.Error("expected non-empty run ID")
		}
	})

	t.Run("latest returns most recent", func(t *testing.T) {
		newer := &models.CleanupRun{
			Trigger:   string(models.TriggerScheduled),
			StartedAt: time.Now(),
			Orphans:   1,
			Deleted:   1,
		}
		if _, err := store.CreateCleanupRun(ctx, newer); err != nil {
			t.Fatalf("failed to create run: %v", err)
		}

		latest, err := store.LatestCleanupRun(ctx)
		if err != nil {
			t.Fatalf("failed to get latest run: %v", err)
		}
		if latest.Trigger != string(models.TriggerScheduled) {
			t.Errorf("expected scheduled run, got %q", latest.Trigger)
		}
	})

	t.Run("list respects limit", func(t *testing.T) {
		runs, err := store.ListCleanupRuns(ctx, 1)
		if err != nil {
			t.Fatalf("failed to list runs: %v", err)
		}
		if len(runs) != 1 {
			t.Errorf("expected 1 run, got %d", len(runs))
		}

		all, err := store.ListCleanupRuns(ctx, 0)
		if err != nil {
			t.Fatalf("failed to list runs: %v", err)
		}
		if len(all) != 2 {
			t.Errorf("expected 2 runs, got %d", len(all))
		}
	})
}

func TestEnsureAdminUser(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()

	t.Run("creates admin if not exists", func(t *testing.T) {
		password, err := store.EnsureAdminUser(ctx)
		if err != nil {
			t.Fatalf("failed to ensure admin user: %v", err)
		}
		if password == "" {
			t.Error("expected non-empty initial password")
		}

		user, err := store.GetUser(ctx, "admin")
		if err != nil {
			t.Fatalf("admin user should exist: %v", err)
		}
		if user.Role != "admin" {
			t.Errorf("expected admin role, got %q", user.Role)
		}
	})

	t.Run("second call returns empty password", func(t *testing.T) {
		password, err := store.EnsureAdminUser(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if password != "" {
			t.Error("expected empty password on second call")
		}
	})
}

func TestHealthcheck(t *testing.T) {
	store := createTestStore(t)
	defer store.Close()
	ctx := context.Background()

	err := store.Healthcheck(ctx)
	if err != nil {
		t.Errorf("healthcheck should pass: %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	t.Run("sqlite requires path", func(t *testing.T) {
		config := &Config{
			Type:   DatabaseTypeSQLite,
			SQLite: SQLiteConfig{Path: ""},
		}
		err := config.Validate()
		if err == nil {
			t.Error("expected error for empty sqlite path")
		}
	})

	t.Run("postgres requires host", func(t *testing.T) {
		config := &Config{
			Type: DatabaseTypePostgres,
			Postgres: PostgresConfig{
				Database: "test",
				User:     "test",
			},
		}
		err := config.Validate()
		if err == nil {
			t.Error("expected error for missing postgres host")
		}
	})

	t.Run("postgres requires database", func(t *testing.T) {
		config := &Config{
			Type: DatabaseTypePostgres,
			Postgres: PostgresConfig{
				Host: "localhost",
				User: "test",
			},
		}
		err := config.Validate()
		if err == nil {
			t.Error("expected error for missing postgres database")
		}
	})

	t.Run("postgres requires user", func(t *testing.T) {
		config := &Config{
			Type: DatabaseTypePostgres,
			Postgres: PostgresConfig{
				Host:     "localhost",
				Database: "test",
			},
		}
		err := config.Validate()
		if err == nil {
			t.Error("expected error for missing postgres user")
		}
	})
}

func TestPostgresDSN(t *testing.T) {
	config := PostgresConfig{
		Host:        "localhost",
		Port:        5432,
		Database:    "wizzzey",
		User:        "admin",
		Password:    "secret",
		SSLMode:     "require",
		SSLRootCert: "/path/to/cert",
	}

	dsn := config.DSN()

	if dsn == "" {
		t.Error("expected non-empty DSN")
	}
	if !strings.Contains(dsn, "host=localhost") {
		t.Error("DSN should contain host")
	}
	if !strings.Contains(dsn, "port=5432") {
		t.Error("DSN should contain port")
	}
	if !strings.Contains(dsn, "sslmode=require") {
		t.Error("DSN should contain sslmode")
	}
}
