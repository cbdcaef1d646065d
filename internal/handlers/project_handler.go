package handlers

import (
	"mime/multipart"
	"net/http"

	"greenroots_backend/internal/services"
	"greenroots_backend/internal/services/dto"
	"greenroots_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	*BaseHandler
	projectService services.ProjectService
}

func NewProjectHandler(base *BaseHandler, projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    base,
		projectService: projectService,
	}
}

func (h *ProjectHandler) RegisterRoutes(r *gin.RouterGroup) {
	projects := r.Group("/projects")
	{
		projects.GET("", h.ListProjects)
		projects.POST("", h.CreateProject)
		projects.PUT("/:id", h.UpdateProject)
		projects.PUT("/:id/images", h.AppendImages)
		projects.DELETE("/:id", h.DeleteProject)
		projects.DELETE("/:id/images/:imageIndex", h.RemoveImage)
	}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, http.StatusOK, projects)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	if !parseMultipart(c) {
		return
	}

	if c.PostForm("trees") == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Tree count is required"))
		return
	}
	trees, ok := FormInt(c, "trees", 0)
	if !ok {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Tree count must be an integer"))
		return
	}

	req := &dto.CreateProjectRequest{
		Name:   c.PostForm("name"),
		Trees:  trees,
		Images: formFiles(c, "images"),
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, http.StatusCreated, project)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	if !parseMultipart(c) {
		return
	}

	req := &dto.UpdateProjectRequest{
		Name:   c.PostForm("name"),
		Images: formFiles(c, "images"),
	}
	if raw := c.PostForm("trees"); raw != "" {
		trees, ok := FormInt(c, "trees", 0)
		if !ok {
			apperrors.HandleError(c, apperrors.NewBadRequestError("Tree count must be an integer"))
			return
		}
		req.Trees = &trees
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, http.StatusOK, project)
}

func (h *ProjectHandler) AppendImages(c *gin.Context) {
	if !parseMultipart(c) {
		return
	}

	req := &dto.UpdateProjectRequest{
		Images: formFiles(c, "images"),
	}

	project, err := h.projectService.AppendImages(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, http.StatusOK, project)
}

func (h *ProjectHandler) RemoveImage(c *gin.Context) {
	index, ok := h.ParseParamInt(c, "imageIndex")
	if !ok {
		return
	}

	project, err := h.projectService.RemoveImage(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, http.StatusOK, project)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projectService.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondMessage(c, http.StatusOK, "Project deleted")
}

// formFiles returns the uploaded files for a multipart field, or nil when the
// request carried none.
func formFiles(c *gin.Context, field string) []*multipart.FileHeader {
	form := c.Request.MultipartForm
	if form == nil {
		return nil
	}
	return form.File[field]
}
