package store

import (
	"context"

	"github.com/wizzzeystore/wizzzey-api/pkg/models"
)

// ============================================
// IMAGE REFERENCE PROJECTIONS
// ============================================
//
// Each projection selects only the columns that can hold an uploaded-file
// reference. The cleanup scanner walks every row of every collection, so
// pulling full records here would drag descriptions, prices and password
// hashes through memory for no reason.

func (s *GORMStore) ListProductImageRefs(ctx context.Context) ([]*models.Product, error) {
	return listFields[models.Product](s.db, ctx, "image_url", "media")
}

func (s *GORMStore) ListCategoryImageRefs(ctx context.Context) ([]*models.Category, error) {
	return listFields[models.Category](s.db, ctx, "image_url", "image_filename", "media")
}

func (s *GORMStore) ListBrandImageRefs(ctx context.Context) ([]*models.Brand, error) {
	return listFields[models.Brand](s.db, ctx, "logo_url")
}

func (s *GORMStore) ListUserAvatarRefs(ctx context.Context) ([]*models.User, error) {
	return listFields[models.User](s.db, ctx, "avatar_url")
}

func (s *GORMStore) ListPostImageRefs(ctx context.Context) ([]*models.BlogPost, error) {
	return listFields[models.BlogPost](s.db, ctx, "featured_image_url", "media")
}
