package handlers

import (
	"net/http"

	"greenroots_backend/internal/services"
	"greenroots_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	*BaseHandler
	newsService services.NewsService
}

func NewNewsHandler(base *BaseHandler, newsService services.NewsService) *NewsHandler {
	return &NewsHandler{
		BaseHandler: base,
		newsService: newsService,
	}
}

func (h *NewsHandler) RegisterRoutes(r *gin.RouterGroup) {
	news := r.Group("/news")
	{
		news.GET("", h.ListNews)
		news.POST("", h.CreateNews)
		news.PUT("/:id", h.UpdateNews)
		news.DELETE("/:id", h.DeleteNews)
	}
}

func (h *NewsHandler) ListNews(c *gin.Context) {
	items, err := h.newsService.ListNews()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, http.StatusOK, items)
}

func (h *NewsHandler) CreateNews(c *gin.Context) {
	if !parseMultipart(c) {
		return
	}

	req := &dto.CreateNewsRequest{
		Title:   c.PostForm("title"),
		Excerpt: c.PostForm("excerpt"),
		Link:    c.PostForm("link"),
		Color:   c.PostForm("color"),
	}
	if fh, err := c.FormFile("image"); err == nil {
		req.Image = fh
	}

	item, err := h.newsService.CreateNews(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, http.StatusCreated, item)
}

func (h *NewsHandler) UpdateNews(c *gin.Context) {
	if !parseMultipart(c) {
		return
	}

	req := &dto.UpdateNewsRequest{
		Title:   c.PostForm("title"),
		Excerpt: c.PostForm("excerpt"),
		Link:    c.PostForm("link"),
		Color:   c.PostForm("color"),
	}
	if fh, err := c.FormFile("image"); err == nil {
		req.Image = fh
	}

	item, err := h.newsService.UpdateNews(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, http.StatusOK, item)
}

func (h *NewsHandler) DeleteNews(c *gin.Context) {
	if err := h.newsService.DeleteNews(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondMessage(c, http.StatusOK, "News deleted")
}
