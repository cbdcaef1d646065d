package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GalleryItem is a single image in the public gallery.
type GalleryItem struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Src       string    `gorm:"not null" json:"src"`
	Alt       string    `gorm:"not null" json:"alt"`
	Caption   string    `gorm:"not null" json:"caption"`
	CreatedAt time.Time `json:"createdAt"`
}

func (g *GalleryItem) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
