package services

import (
	"greenroots_backend/internal/email"
	"greenroots_backend/internal/repositories"
	"greenroots_backend/internal/storage"
	"greenroots_backend/internal/validator"

	"gorm.io/gorm"
)

// ServiceContainer wires every service with its repositories and shared
// infrastructure. Built once at startup.
type ServiceContainer struct {
	Project ProjectService
	News    NewsService
	Gallery GalleryService
	Contact ContactService
}

func NewServiceContainer(db *gorm.DB, st storage.Storage, sender email.Sender, uploadCfg UploadConfig) *ServiceContainer {
	v := validator.New()
	uploads := NewUploadService(st, uploadCfg)

	return &ServiceContainer{
		Project: NewProjectService(db, repositories.NewProjectRepository(), uploads),
		News:    NewNewsService(db, repositories.NewNewsRepository(), uploads),
		Gallery: NewGalleryService(db, repositories.NewGalleryRepository(), uploads),
		Contact: NewContactService(sender, v),
	}
}
