package cleanup

import (
	"context"
	"errors"
	"fmt"

	"github.com/wizzzeystore/wizzzey-api/pkg/models"
)

// RefSource is the read surface the scanner needs: one projection per
// collection that can reference uploaded files, plus the settings document.
// *store.GORMStore satisfies it.
type RefSource interface {
	ListProductImageRefs(ctx context.Context) ([]*models.Product, error)
	ListCategoryImageRefs(ctx context.Context) ([]*models.Category, error)
	ListBrandImageRefs(ctx context.Context) ([]*models.Brand, error)
	ListUserAvatarRefs(ctx context.Context) ([]*models.User, error)
	ListPostImageRefs(ctx context.Context) ([]*models.BlogPost, error)
	GetAppSettings(ctx context.Context) (*models.AppSettings, error)
}

// Scanner builds the set of filenames still referenced by the database.
type Scanner struct {
	source RefSource
}

// NewScanner creates a scanner over the given reference source.
func NewScanner(source RefSource) *Scanner {
	return &Scanner{source: source}
}

// Referenced returns the set of live filenames across every collection.
//
// The scan is fail-fast: any collection read or media parse error aborts the
// whole scan. A partial set would make live files look orphaned, and the
// caller would delete them.
func (s *Scanner) Referenced(ctx context.Context) (map[string]struct{}, error) {
	refs := make(map[string]struct{})

	products, err := s.source.ListProductImageRefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect product references: %w", err)
	}
	for _, p := range products {
		r, err := refsFromProduct(p)
		if err != nil {
			return nil, fmt.Errorf("failed to parse product media: %w", err)
		}
		addRefs(refs, r...)
	}

	categories, err := s.source.ListCategoryImageRefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect category references: %w", err)
	}
	for _, c := range categories {
		r, err := refsFromCategory(c)
		if err != nil {
			return nil, fmt.Errorf("failed to parse category media: %w", err)
		}
		addRefs(refs, r...)
	}

	brands, err := s.source.ListBrandImageRefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect brand references: %w", err)
	}
	for _, b := range brands {
		addRefs(refs, refsFromBrand(b)...)
	}

	settings, err := s.source.GetAppSettings(ctx)
	if err != nil && !errors.Is(err, models.ErrSettingsNotFound) {
		return nil, fmt.Errorf("failed to collect settings references: %w", err)
	}
	if settings != nil {
		addRefs(refs, refsFromSettings(settings)...)
	}

	users, err := s.source.ListUserAvatarRefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect avatar references: %w", err)
	}
	for _, u := range users {
		addRefs(refs, u.AvatarURL)
	}

	posts, err := s.source.ListPostImageRefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect post references: %w", err)
	}
	for _, p := range posts {
		r, err := refsFromPost(p)
		if err != nil {
			return nil, fmt.Errorf("failed to parse post media: %w", err)
		}
		addRefs(refs, r...)
	}

	return refs, nil
}

// addRefs extracts filenames from the given references and inserts the
// non-empty results into the set.
func addRefs(set map[string]struct{}, refs ...string) {
	for _, ref := range refs {
		if name := ExtractFilename(ref); name != "" {
			set[name] = struct{}{}
		}
	}
}

// refsFromProduct collects the primary image and every media URL.
func refsFromProduct(p *models.Product) ([]string, error) {
	media, err := p.GetMedia()
	if err != nil {
		return nil, err
	}

	refs := make([]string, 0, len(media)+1)
	refs = append(refs, p.ImageURL)
	for _, m := range media {
		refs = append(refs, m.URL)
	}
	return refs, nil
}

// refsFromCategory collects the primary image URL, the separately stored
// image filename, and every media URL. The two image fields are distinct
// references and both keep files alive.
func refsFromCategory(c *models.Category) ([]string, error) {
	media, err := c.GetMedia()
	if err != nil {
		return nil, err
	}

	refs := make([]string, 0, len(media)+2)
	refs = append(refs, c.ImageURL, c.ImageFilename)
	for _, m := range media {
		refs = append(refs, m.URL)
	}
	return refs, nil
}

func refsFromBrand(b *models.Brand) []string {
	return []string{b.LogoURL}
}

func refsFromSettings(s *models.AppSettings) []string {
	return []string{s.StoreLogoURL, s.HeroImageURL}
}

// refsFromPost collects the featured image and every media URL.
func refsFromPost(p *models.BlogPost) ([]string, error) {
	media, err := p.GetMedia()
	if err != nil {
		return nil, err
	}

	refs := make([]string, 0, len(media)+1)
	refs = append(refs, p.FeaturedImageURL)
	for _, m := range media {
		refs = append(refs, m.URL)
	}
	return refs, nil
}
