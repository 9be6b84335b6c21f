package cleanup

import (
	"context"

	"github.com/wizzzeystore/wizzzey-api/internal/logger"
	"github.com/wizzzeystore/wizzzey-api/pkg/uploads"
)

// DeleteError records a single failed deletion.
type DeleteError struct {
	Filename string
	Err      error
}

// DeleteResult summarizes a deletion pass.
//
// Invariant: Deleted + len(Errors) == number of filenames attempted. A file
// is either deleted or accounted for in Errors, never silently dropped.
type DeleteResult struct {
	Deleted int
	Errors  []DeleteError
}

// deleteOrphans removes each named file from the upload store. Failures are
// isolated per file: one failed deletion is recorded and the rest proceed.
func deleteOrphans(ctx context.Context, store uploads.Store, names []string) DeleteResult {
	var result DeleteResult

	for _, name := range names {
		if err := store.Delete(ctx, name); err != nil {
			logger.Warn("Failed to delete orphaned file",
				logger.Filename(name),
				logger.Err(err))
			result.Errors = append(result.Errors, DeleteError{Filename: name, Err: err})
			continue
		}

		logger.Debug("Deleted orphaned file", logger.Filename(name))
		result.Deleted++
	}

	return result
}
