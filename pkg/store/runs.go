package store

import (
	"context"

	"github.com/wizzzeystore/wizzzey-api/pkg/models"
)

// ============================================
// CLEANUP RUN HISTORY
// ============================================

func (s *GORMStore) CreateCleanupRun(ctx context.Context, run *models.CleanupRun) (string, error) {
	return createWithID(s.db, ctx, run, func(r *models.CleanupRun, id string) { r.ID = id }, run.ID, models.ErrDuplicateRun)
}

// LatestCleanupRun returns the most recently started run, regardless of
// whether it was manual or scheduled.
func (s *GORMStore) LatestCleanupRun(ctx context.Context) (*models.CleanupRun, error) {
	var run models.CleanupRun
	if err := s.db.WithContext(ctx).Order("started_at DESC").First(&run).Error; err != nil {
		return nil, convertNotFoundError(err, models.ErrRunNotFound)
	}
	return &run, nil
}

func (s *GORMStore) ListCleanupRuns(ctx context.Context, limit int) ([]*models.CleanupRun, error) {
	var runs []*models.CleanupRun
	query := s.db.WithContext(ctx).Order("started_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}
