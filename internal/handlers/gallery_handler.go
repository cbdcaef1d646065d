package handlers

import (
	"net/http"

	"greenroots_backend/internal/services"
	"greenroots_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	*BaseHandler
	galleryService services.GalleryService
}

func NewGalleryHandler(base *BaseHandler, galleryService services.GalleryService) *GalleryHandler {
	return &GalleryHandler{
		BaseHandler:    base,
		galleryService: galleryService,
	}
}

func (h *GalleryHandler) RegisterRoutes(r *gin.RouterGroup) {
	gallery := r.Group("/gallery")
	{
		gallery.GET("", h.ListGallery)
		gallery.POST("", h.CreateGalleryItem)
		gallery.DELETE("/:id", h.DeleteGalleryItem)
	}
}

func (h *GalleryHandler) ListGallery(c *gin.Context) {
	items, err := h.galleryService.ListGallery()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, http.StatusOK, items)
}

func (h *GalleryHandler) CreateGalleryItem(c *gin.Context) {
	if !parseMultipart(c) {
		return
	}

	req := &dto.CreateGalleryRequest{
		Alt:     c.PostForm("alt"),
		Caption: c.PostForm("caption"),
	}
	if fh, err := c.FormFile("src"); err == nil {
		req.Src = fh
	}

	item, err := h.galleryService.CreateGalleryItem(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, http.StatusCreated, item)
}

func (h *GalleryHandler) DeleteGalleryItem(c *gin.Context) {
	if err := h.galleryService.DeleteGalleryItem(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondMessage(c, http.StatusOK, "Gallery item deleted")
}
