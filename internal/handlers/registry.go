package handlers

import (
	"greenroots_backend/internal/services"
	"greenroots_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Project *ProjectHandler
	News    *NewsHandler
	Gallery *GalleryHandler
	Contact *ContactHandler
}

func NewAppHandlers(sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		Project: NewProjectHandler(base, sc.Project),
		News:    NewNewsHandler(base, sc.News),
		Gallery: NewGalleryHandler(base, sc.Gallery),
		Contact: NewContactHandler(base, sc.Contact),
	}
}
