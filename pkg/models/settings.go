package models

import "time"

// AppSettings stores the storefront-wide configuration as a single row.
//
// StoreLogoURL and HeroImageURL point at uploaded files and are included
// in the cleanup scan.
type AppSettings struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	StoreName    string    `gorm:"size:255" json:"store_name"`
	StoreLogoURL string    `gorm:"size:2048" json:"store_logo_url,omitempty"`
	HeroImageURL string    `gorm:"size:2048" json:"hero_image_url,omitempty"`
	SupportEmail string    `gorm:"size:255" json:"support_email,omitempty"`
	Currency     string    `gorm:"size:8;default:USD" json:"currency"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName returns the table name for AppSettings.
func (AppSettings) TableName() string {
	return "app_settings"
}
