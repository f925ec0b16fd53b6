// filepath: internal/services/interfaces.go
package services

import (
	"io"
	"itemhub/internal/models"
)

// CatalogService defines the interface for catalog operations.
type CatalogService interface {
	// AddItem validates the inputs, stores the image and writes the catalog
	// rows, returning the new item id.
	AddItem(name, category string, image []byte) (int64, error)
	GetItem(id int64) (*models.Item, error)
	ListItems() ([]models.Item, error)
	SearchItems(keyword string) ([]models.Item, error)
}

// ImageService defines the interface for image blob access.
type ImageService interface {
	Put(data []byte) (string, error)
	Open(name string) (io.ReadCloser, error)
}
