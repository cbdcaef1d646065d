package services

import (
	"context"

	"greenroots_backend/internal/models"
	"greenroots_backend/internal/repositories"
	"greenroots_backend/internal/services/dto"
	"greenroots_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type NewsService interface {
	ListNews() ([]models.News, error)
	CreateNews(ctx context.Context, req *dto.CreateNewsRequest) (*models.News, error)
	UpdateNews(ctx context.Context, id string, req *dto.UpdateNewsRequest) (*models.News, error)
	DeleteNews(ctx context.Context, id string) error
}

type newsService struct {
	db       *gorm.DB
	newsRepo repositories.NewsRepository
	uploads  UploadService
}

func NewNewsService(db *gorm.DB, newsRepo repositories.NewsRepository, uploads UploadService) NewsService {
	return &newsService{
		db:       db,
		newsRepo: newsRepo,
		uploads:  uploads,
	}
}

func (s *newsService) ListNews() ([]models.News, error) {
	items, err := s.newsRepo.FindAll(s.db)
	if err != nil {
		return nil, apperrors.Internal(err, "Failed to fetch news")
	}
	if items == nil {
		items = []models.News{}
	}
	return items, nil
}

func (s *newsService) CreateNews(ctx context.Context, req *dto.CreateNewsRequest) (*models.News, error) {
	if req.Title == "" || req.Excerpt == "" || req.Link == "" {
		return nil, apperrors.NewBadRequestError("Title, excerpt and link are required")
	}

	var imagePath string
	if req.Image != nil {
		var err error
		imagePath, err = s.uploads.IngestOne(ctx, req.Image)
		if err != nil {
			return nil, err
		}
	}

	item := &models.News{
		Title:   req.Title,
		Excerpt: req.Excerpt,
		Link:    req.Link,
		Image:   imagePath,
		Color:   req.Color,
	}

	if err := s.newsRepo.Create(s.db, item); err != nil {
		if imagePath != "" {
			s.uploads.Cleanup(ctx, []string{imagePath})
		}
		return nil, apperrors.Internal(err, "Failed to create news")
	}

	return item, nil
}

// UpdateNews overwrites the provided fields. A replaced image does not delete
// the previous file from disk, and UpdatedAt keeps its creation-time value.
func (s *newsService) UpdateNews(ctx context.Context, id string, req *dto.UpdateNewsRequest) (*models.News, error) {
	item, err := s.findNews(id)
	if err != nil {
		return nil, err
	}

	if req.Image != nil {
		imagePath, err := s.uploads.IngestOne(ctx, req.Image)
		if err != nil {
			return nil, err
		}
		item.Image = imagePath
	}

	if req.Title != "" {
		item.Title = req.Title
	}
	if req.Excerpt != "" {
		item.Excerpt = req.Excerpt
	}
	if req.Link != "" {
		item.Link = req.Link
	}
	if req.Color != "" {
		item.Color = req.Color
	}

	if err := s.newsRepo.Save(s.db, item); err != nil {
		return nil, apperrors.Internal(err, "Failed to update news")
	}

	return item, nil
}

// DeleteNews removes the record only; the image file stays on disk. Deleting
// an unknown id still succeeds.
func (s *newsService) DeleteNews(ctx context.Context, id string) error {
	if err := s.newsRepo.DeleteByID(s.db, id); err != nil {
		return apperrors.Internal(err, "Failed to delete news")
	}
	return nil
}

func (s *newsService) findNews(id string) (*models.News, error) {
	item, err := s.newsRepo.FindByID(s.db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNewsNotFound) {
			return nil, apperrors.NewNotFoundError("News not found")
		}
		return nil, apperrors.Internal(err, "Failed to fetch news")
	}
	return item, nil
}
