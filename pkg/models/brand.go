package models

import "time"

// Brand represents a product manufacturer or label.
type Brand struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null;size:255" json:"name"`
	Slug        string    `gorm:"uniqueIndex;size:255" json:"slug"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	LogoURL     string    `gorm:"size:2048" json:"logo_url,omitempty"`
	Enabled     bool      `gorm:"default:true" json:"enabled"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName returns the table name for Brand.
func (Brand) TableName() string {
	return "brands"
}
