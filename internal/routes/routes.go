package routes

import (
	"greenroots_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the API routes and the static uploads mount.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, uploadsDir string) {
	// Uploaded images are served directly from disk.
	ginRouter.Static("/uploads", uploadsDir)

	api := ginRouter.Group("/api")
	{
		appHandlers.Project.RegisterRoutes(api)
		appHandlers.News.RegisterRoutes(api)
		appHandlers.Gallery.RegisterRoutes(api)
		appHandlers.Contact.RegisterRoutes(api)
	}
}
