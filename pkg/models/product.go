package models

import "time"

// Product represents a catalog item in the store.
//
// The primary image and the media gallery reference files in the uploads
// area. Those references are part of what the cleanup scanner walks to
// decide which uploaded files are still live.
type Product struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"not null;size:255" json:"name"`
	Slug        string    `gorm:"uniqueIndex;size:255" json:"slug"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Price       float64   `gorm:"not null" json:"price"`
	Stock       int       `gorm:"default:0" json:"stock"`
	CategoryID  string    `gorm:"size:36;index" json:"category_id,omitempty"`
	BrandID     string    `gorm:"size:36;index" json:"brand_id,omitempty"`
	ImageURL    string    `gorm:"size:2048" json:"image_url,omitempty"`
	Media       string    `gorm:"type:text" json:"-"` // JSON array of MediaItem
	Enabled     bool      `gorm:"default:true" json:"enabled"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Parsed media gallery (not stored in DB)
	ParsedMedia []MediaItem `gorm:"-" json:"media,omitempty"`
}

// TableName returns the table name for Product.
func (Product) TableName() string {
	return "products"
}

// GetMedia returns the parsed media gallery.
func (p *Product) GetMedia() ([]MediaItem, error) {
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
func (p *Product) SetMedia(items []MediaItem) error {
	blob, err := marshalMedia(items)
	if err != nil {
		return err
	}
	p.Media = blob
	p.ParsedMedia = items
	return nil
}
