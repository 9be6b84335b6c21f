package uploads

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemStore serves uploads from a local directory.
type FilesystemStore struct {
	dir string
}

// NewFilesystemStore creates a filesystem-backed upload store rooted at dir.
// The directory is created if it does not exist.
func NewFilesystemStore(dir string) (*FilesystemStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload directory: %w", err)
	}

	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &FilesystemStore{dir: abs}, nil
}

// List returns the names of all regular files in the upload directory.
// Subdirectories and special files are skipped.
func (f *FilesystemStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload directory %s: %w", f.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}

// Delete removes a single file from the upload directory.
func (f *FilesystemStore) Delete(ctx context.Context, filename string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Filenames come from List, but this is also an API boundary: reject
	// anything that would escape the upload directory.
	if filename == "" || filename == "." || filename == ".." || filename != filepath.Base(filename) {
		return fmt.Errorf("invalid upload filename: %q", filename)
	}

	if err := os.Remove(filepath.Join(f.dir, filename)); err != nil {
		return fmt.Errorf("failed to delete %s: %w", filename, err)
	}

	return nil
}

// Location returns the absolute path of the upload directory.
func (f *FilesystemStore) Location() string {
	return f.dir
}

var _ Store = (*FilesystemStore)(nil)
