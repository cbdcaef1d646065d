package services

import (
	"context"

	"greenroots_backend/internal/models"
	"greenroots_backend/internal/repositories"
	"greenroots_backend/internal/services/dto"
	"greenroots_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type GalleryService interface {
	ListGallery() ([]models.GalleryItem, error)
	CreateGalleryItem(ctx context.Context, req *dto.CreateGalleryRequest) (*models.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, id string) error
}

type galleryService struct {
	db          *gorm.DB
	galleryRepo repositories.GalleryRepository
	uploads     UploadService
}

func NewGalleryService(db *gorm.DB, galleryRepo repositories.GalleryRepository, uploads UploadService) GalleryService {
	return &galleryService{
		db:          db,
		galleryRepo: galleryRepo,
		uploads:     uploads,
	}
}

func (s *galleryService) ListGallery() ([]models.GalleryItem, error) {
	items, err := s.galleryRepo.FindAll(s.db)
	if err != nil {
		return nil, apperrors.Internal(err, "Failed to fetch gallery")
	}
	if items == nil {
		items = []models.GalleryItem{}
	}
	return items, nil
}

func (s *galleryService) CreateGalleryItem(ctx context.Context, req *dto.CreateGalleryRequest) (*models.GalleryItem, error) {
	if req.Alt == "" || req.Caption == "" {
		return nil, apperrors.NewBadRequestError("Alt text and caption are required")
	}
	if req.Src == nil {
		return nil, apperrors.NewBadRequestError("Image file is required")
	}

	srcPath, err := s.uploads.IngestOne(ctx, req.Src)
	if err != nil {
		return nil, err
	}

	item := &models.GalleryItem{
		Src:     srcPath,
		Alt:     req.Alt,
		Caption: req.Caption,
	}

	if err := s.galleryRepo.Create(s.db, item); err != nil {
		s.uploads.Cleanup(ctx, []string{srcPath})
		return nil, apperrors.Internal(err, "Failed to create gallery item")
	}

	return item, nil
}

// DeleteGalleryItem removes the record only; the image file stays on disk.
// Deleting an unknown id still succeeds.
func (s *galleryService) DeleteGalleryItem(ctx context.Context, id string) error {
	if err := s.galleryRepo.DeleteByID(s.db, id); err != nil {
		return apperrors.Internal(err, "Failed to delete gallery item")
	}
	return nil
}
