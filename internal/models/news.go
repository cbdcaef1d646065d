package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultNewsColor is the accent color applied when a news item is created
// without one.
const DefaultNewsColor = "#FF6B35"

// News does not embed BaseModel: both timestamps are set once at creation
// and UpdatedAt is not refreshed on update. The front end relies on that, so
// autoUpdateTime is disabled deliberately.
type News struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Excerpt   string    `gorm:"not null" json:"excerpt"`
	Link      string    `gorm:"not null" json:"link"`
	Image     string    `json:"image"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Color == "" {
		n.Color = DefaultNewsColor
	}
	if n.UpdatedAt.IsZero() {
		n.UpdatedAt = time.Now()
	}
	return nil
}
