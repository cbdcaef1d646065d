package repositories

import (
	"errors"

	"greenroots_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository interface {
	Create(db *gorm.DB, project *models.Project) error
	FindByID(db *gorm.DB, id string) (*models.Project, error)
	FindAll(db *gorm.DB) ([]models.Project, error)
	Save(db *gorm.DB, project *models.Project) error
	DeleteByID(db *gorm.DB, id string) error
}

type projectRepository struct{}

func NewProjectRepository() ProjectRepository {
	return &projectRepository{}
}

func (r *projectRepository) Create(db *gorm.DB, project *models.Project) error {
	return db.Create(project).Error
}

func (r *projectRepository) FindByID(db *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	err := db.First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindAll(db *gorm.DB) ([]models.Project, error) {
	var projects []models.Project
	err := db.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *projectRepository) Save(db *gorm.DB, project *models.Project) error {
	return db.Save(project).Error
}

// DeleteByID is idempotent: deleting an id with no record is not an error.
func (r *projectRepository) DeleteByID(db *gorm.DB, id string) error {
	return db.Where("id = ?", id).Delete(&models.Project{}).Error
}
