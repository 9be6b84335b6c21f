package models

import "time"

// Category groups catalog items into a browsable hierarchy.
//
// A category carries two distinct image references: ImageURL is the
// display reference (URL or path), while ImageFilename is the stored
// filename recorded at upload time. Both are scanned during cleanup so
// a file stays protected even when only one of them is set.
type Category struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Name          string    `gorm:"not null;size:255" json:"name"`
	Slug          string    `gorm:"uniqueIndex;size:255" json:"slug"`
	Description   string    `gorm:"type:text" json:"description,omitempty"`
	ParentID      string    `gorm:"size:36;index" json:"parent_id,omitempty"`
	ImageURL      string    `gorm:"size:2048" json:"image_url,omitempty"`
	ImageFilename string    `gorm:"size:255" json:"image_filename,omitempty"`
	Media         string    `gorm:"type:text" json:"-"` // JSON array of MediaItem
	SortOrder     int       `gorm:"default:0" json:"sort_order"`
	Enabled       bool      `gorm:"default:true" json:"enabled"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Parsed media gallery (not stored in DB)
	ParsedMedia []MediaItem `gorm:"-" json:"media,omitempty"`
}

// TableName returns the table name for Category.
func (Category) TableName() string {
	return "categories"
}

// GetMedia returns the parsed media gallery.
func (c *Category) GetMedia() ([]MediaItem, error) {
	if c.ParsedMedia != nil {
		return c.ParsedMedia, nil
	}
	items, err := unmarshalMedia(c.Media)
	if err != nil {
		return nil, err
	}
	c.ParsedMedia = items
	return items, nil
}

// SetMedia sets the media gallery from a slice.
func (c *Category) SetMedia(items []MediaItem) error {
	blob, err := marshalMedia(items)
	if err != nil {
		return err
	}
	c.Media = blob
	c.ParsedMedia = items
	return nil
}
