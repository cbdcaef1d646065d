package repositories

import (
	"greenroots_backend/internal/models"

	"gorm.io/gorm"
)

type GalleryRepository interface {
	Create(db *gorm.DB, item *models.GalleryItem) error
	FindAll(db *gorm.DB) ([]models.GalleryItem, error)
	DeleteByID(db *gorm.DB, id string) error
	DeleteAll(db *gorm.DB) error
}

type galleryRepository struct{}

func NewGalleryRepository() GalleryRepository {
	return &galleryRepository{}
}

func (r *galleryRepository) Create(db *gorm.DB, item *models.GalleryItem) error {
	return db.Create(item).Error
}

func (r *galleryRepository) FindAll(db *gorm.DB) ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	err := db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *galleryRepository) DeleteByID(db *gorm.DB, id string) error {
	return db.Where("id = ?", id).Delete(&models.GalleryItem{}).Error
}

// DeleteAll wipes the gallery table. Used by the seed tool.
func (r *galleryRepository) DeleteAll(db *gorm.DB) error {
	return db.Where("1 = 1").Delete(&models.GalleryItem{}).Error
}
