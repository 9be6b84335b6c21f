package store

import (
	"context"
	"time"

	"github.com/wizzzeystore/wizzzey-api/pkg/models"
)

// ============================================
// SETTINGS OPERATIONS
// ============================================

// appSettingsID is the primary key of the singleton settings row. Storefront
// settings are a single document, not a collection, so every save targets the
// same record.
const appSettingsID = "app-settings"

func (s *GORMStore) GetAppSettings(ctx context.Context) (*models.AppSettings, error) {
	return getByField[models.AppSettings](s.db, ctx, "id", appSettingsID, models.ErrSettingsNotFound)
}

func (s *GORMStore) SaveAppSettings(ctx context.Context, settings *models.AppSettings) error {
	settings.ID = appSettingsID
	settings.UpdatedAt = time.Now()
	return s.db.WithContext(ctx).Save(settings).Error
}
