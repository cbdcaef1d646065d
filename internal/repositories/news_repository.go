package repositories

import (
	"errors"

	"greenroots_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNewsNotFound = errors.New("news item not found")

type NewsRepository interface {
	Create(db *gorm.DB, item *models.News) error
	FindByID(db *gorm.DB, id string) (*models.News, error)
	FindAll(db *gorm.DB) ([]models.News, error)
	Save(db *gorm.DB, item *models.News) error
	DeleteByID(db *gorm.DB, id string) error
}

type newsRepository struct{}

func NewNewsRepository() NewsRepository {
	return &newsRepository{}
}

func (r *newsRepository) Create(db *gorm.DB, item *models.News) error {
	return db.Create(item).Error
}

func (r *newsRepository) FindByID(db *gorm.DB, id string) (*models.News, error) {
	var item models.News
	err := db.First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *newsRepository) FindAll(db *gorm.DB) ([]models.News, error) {
	var items []models.News
	err := db.Order("created_at DESC").Find(&items).Error
	return items, err
}

// Save writes the full record back. UpdatedAt is left untouched: the model
// disables autoUpdateTime.
func (r *newsRepository) Save(db *gorm.DB, item *models.News) error {
	return db.Save(item).Error
}

func (r *newsRepository) DeleteByID(db *gorm.DB, id string) error {
	return db.Where("id = ?", id).Delete(&models.News{}).Error
}
