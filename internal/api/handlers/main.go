// filepath: internal/api/handlers/main.go
package handlers

import (
	"itemhub/internal/config"
	"itemhub/internal/services"
)

// Handlers provides a struct to hold shared dependencies for API handlers.
type Handlers struct {
	// Depend on interfaces, not concrete structs
	Catalog services.CatalogService
	Images  services.ImageService

	Cfg *config.Config
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(catalog services.CatalogService, images services.ImageService, cfg *config.Config) *Handlers {
	return &Handlers{
		Catalog: catalog,
		Images:  images,
		Cfg:     cfg,
	}
}
