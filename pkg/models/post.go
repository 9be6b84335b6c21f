package models

import "time"

// BlogPost represents a content post published on the storefront.
type BlogPost struct {
	ID               string     `gorm:"primaryKey;size:36" json:"id"`
	Title            string     `gorm:"not null;size:255" json:"title"`
	Slug             string     `gorm:"uniqueIndex;size:255" json:"slug"`
	Body             string     `gorm:"type:text" json:"body,omitempty"`
	AuthorID         string     `gorm:"size:36;index" json:"author_id,omitempty"`
	FeaturedImageURL string     `gorm:"size:2048" json:"featured_image_url,omitempty"`
	Media            string     `gorm:"type:text" json:"-"` // JSON array of MediaItem
	Published        bool       `gorm:"default:false" json:"published"`
	PublishedAt      *time.Time `json:"published_at,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Parsed media gallery (not stored in DB)
	ParsedMedia []MediaItem `gorm:"-" json:"media,omitempty"`
}

// TableName returns the table name for BlogPost.
func (BlogPost) TableName() string {
	return "blog_posts"
}

// GetMedia returns the parsed media gallery.
func (p *BlogPost) GetMedia() ([]MediaItem, error) {
	if p.ParsedMedia != nil {
		return p.ParsedMedia, nil
	}
	items, err := unmarshalMedia(p.Media)
	if err != nil {
		return nil, err
	}
	p.ParsedMedia = items
	return items, nil
}

// SetMedia sets the media gallery from a slice.
func (p *BlogPost) SetMedia(items []MediaItem) error {
	blob, err := marshalMedia(items)
	if err != nil {
		return err
	}
	p.Media = blob
	p.ParsedMedia = items
	return nil
}
