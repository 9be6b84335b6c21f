package uploads

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// seedUploadDir creates a filesystem store over a temp directory pre-populated
// with the given filenames.
func seedUploadDir(t *testing.T, filenames ...string) *FilesystemStore {
	t.Helper()

	dir := t.TempDir()
	for _, name := range filenames {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("fake image data"), 0644); err != nil {
			t.Fatalf("failed to seed file %s: %v", name, err)
		}
	}

	store, err := NewFilesystemStore(dir)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestFilesystemStoreList(t *testing.T) {
	ctx := context.Background()

	t.Run("lists regular files", func(t *testing.T) {
		store := seedUploadDir(t, "a.jpg", "b.png", ".gitkeep")

		names, err := store.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(names) != 3 {
			t.Errorf("expected 3 files, got %d: %v", len(names), names)
		}
	})

	t.Run("skips subdirectories", func(t *testing.T) {
		store := seedUploadDir(t, "a.jpg")
		if err := os.Mkdir(filepath.Join(store.Location(), "thumbs"), 0755); err != nil {
			t.Fatalf("failed to create subdir: %v", err)
		}

		names, err := store.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(names) != 1 || names[0] != "a.jpg" {
			t.Errorf("expected only a.jpg, got %v", names)
		}
	})

	t.Run("empty directory lists nothing", func(t *testing.T) {
		store := seedUploadDir(t)

		names, err := store.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(names) != 0 {
			t.Errorf("expected empty listing, got %v", names)
		}
	})

	t.Run("unreadable directory returns error", func(t *testing.T) {
		store := seedUploadDir(t, "a.jpg")
		if err := os.RemoveAll(store.Location()); err != nil {
			t.Fatalf("failed to remove dir: %v", err)
		}

		_, err := store.List(ctx)
		if err == nil {
			t.Error("expected error for missing directory")
		}
	})

	t.Run("creates missing directory at construction", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "uploads")
		store, err := NewFilesystemStore(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		names, err := store.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(names) != 0 {
			t.Errorf("expected empty listing, got %v", names)
		}
	})
}

func TestFilesystemStoreDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes existing file", func(t *testing.T) {
		store := seedUploadDir(t, "a.jpg", "b.png")

		if err := store.Delete(ctx, "a.jpg"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		names, _ := store.List(ctx)
		if len(names) != 1 || names[0] != "b.png" {
			t.Errorf("expected only b.png to remain, got %v", names)
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		store := seedUploadDir(t)

		if err := store.Delete(ctx, "nope.jpg"); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		store := seedUploadDir(t, "a.jpg")

		for _, name := range []string{"../a.jpg", "sub/a.jpg", "", "."} {
			if err := store.Delete(ctx, name); err == nil {
				t.Errorf("expected error for filename %q", name)
			}
		}
	})
}

func TestFilesystemStoreLocation(t *testing.T) {
	store := seedUploadDir(t)

	if !filepath.IsAbs(store.Location()) {
		t.Errorf("expected absolute path, got %q", store.Location())
	}
}

func TestNewDefaultsToFilesystem(t *testing.T) {
	dir := t.TempDir()

	store, err := New(context.Background(), Config{Directory: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := store.(*FilesystemStore); !ok {
		t.Errorf("expected filesystem store, got %T", store)
	}
}
