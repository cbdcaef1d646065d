package services

import (
	"context"

	"greenroots_backend/internal/logger"
	"greenroots_backend/internal/models"
	"greenroots_backend/internal/repositories"
	"greenroots_backend/internal/services/dto"
	"greenroots_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProjectService interface {
	ListProjects() ([]models.Project, error)
	CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, id string, req *dto.UpdateProjectRequest) (*models.Project, error)
	AppendImages(ctx context.Context, id string, req *dto.UpdateProjectRequest) (*models.Project, error)
	RemoveImage(ctx context.Context, id string, index int) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

type projectService struct {
	db          *gorm.DB
	projectRepo repositories.ProjectRepository
	uploads     UploadService
}

func NewProjectService(db *gorm.DB, projectRepo repositories.ProjectRepository, uploads UploadService) ProjectService {
	return &projectService{
		db:          db,
		projectRepo: projectRepo,
		uploads:     uploads,
	}
}

func (s *projectService) ListProjects() ([]models.Project, error) {
	projects, err := s.projectRepo.FindAll(s.db)
	if err != nil {
		return nil, apperrors.Internal(err, "Failed to fetch projects")
	}
	if projects == nil {
		// An empty list must serialize as [], not null.
		projects = []models.Project{}
	}
	return projects, nil
}

func (s *projectService) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*models.Project, error) {
	if req.Name == "" {
		return nil, apperrors.NewBadRequestError("Project name is required")
	}
	if req.Trees < 0 {
		return nil, apperrors.NewBadRequestError("Tree count must not be negative")
	}

	images, err := s.uploads.IngestMany(ctx, req.Images)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		Name:      req.Name,
		TreeCount: req.Trees,
		Images:    images,
	}

	if err := s.projectRepo.Create(s.db, project); err != nil {
		// The files are already on disk; roll them back best-effort.
		s.uploads.Cleanup(ctx, images)
		return nil, apperrors.Internal(err, "Failed to create project")
	}

	return project, nil
}

func (s *projectService) UpdateProject(ctx context.Context, id string, req *dto.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.findProject(id)
	if err != nil {
		return nil, err
	}

	newImages, err := s.uploads.IngestMany(ctx, req.Images)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		project.Name = req.Name
	}
	if req.Trees != nil {
		if *req.Trees < 0 {
			s.uploads.Cleanup(ctx, newImages)
			return nil, apperrors.NewBadRequestError("Tree count must not be negative")
		}
		project.TreeCount = *req.Trees
	}
	// New images are appended behind the existing list, never replacing it.
	project.Images = append(project.Images, newImages...)

	if err := s.projectRepo.Save(s.db, project); err != nil {
		s.uploads.Cleanup(ctx, newImages)
		return nil, apperrors.Internal(err, "Failed to update project")
	}

	return project, nil
}

func (s *projectService) AppendImages(ctx context.Context, id string, req *dto.UpdateProjectRequest) (*models.Project, error) {
	return s.UpdateProject(ctx, id, &dto.UpdateProjectRequest{Images: req.Images})
}

func (s *projectService) RemoveImage(ctx context.Context, id string, index int) (*models.Project, error) {
	project, err := s.findProject(id)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(project.Images) {
		return nil, apperrors.NewBadRequestError("Invalid image index")
	}

	s.uploads.Cleanup(ctx, []string{project.Images[index]})
	project.Images = append(project.Images[:index], project.Images[index+1:]...)

	if err := s.projectRepo.Save(s.db, project); err != nil {
		return nil, apperrors.Internal(err, "Failed to update project")
	}

	return project, nil
}

// DeleteProject removes the record and best-effort deletes its image files.
// Deleting an unknown id still succeeds.
func (s *projectService) DeleteProject(ctx context.Context, id string) error {
	project, err := s.projectRepo.FindByID(s.db, id)
	if err != nil && !apperrors.Is(err, repositories.ErrProjectNotFound) {
		return apperrors.Internal(err, "Failed to delete project")
	}

	if project != nil {
		s.uploads.Cleanup(ctx, project.Images)
	}

	if err := s.projectRepo.DeleteByID(s.db, id); err != nil {
		return apperrors.Internal(err, "Failed to delete project")
	}

	logger.CtxInfo(ctx, "project deleted", "project_id", id)
	return nil
}

func (s *projectService) findProject(id string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(s.db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NewNotFoundError("Project not found")
		}
		return nil, apperrors.Internal(err, "Failed to fetch project")
	}
	return project, nil
}
