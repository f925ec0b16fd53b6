// filepath: internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"itemhub/internal/logging"
	"itemhub/internal/models"
	"itemhub/internal/repository"
	"itemhub/internal/shared"
)

// catalogService implements CatalogService on top of the catalog repository
// and the image store.
type catalogService struct {
	repo   repository.Catalog
	images ImageService
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repository.Catalog, images ImageService) CatalogService {
	return &catalogService{repo: repo, images: images}
}

// AddItem orchestrates an add-item request: validate, store the image,
// resolve-or-create the category and insert the item row in one transaction.
// Validation happens before any storage side effect. The blob write is not
// rolled back if the catalog write fails afterwards; orphaned blobs are
// acceptable and content addressing keeps retries idempotent.
func (s *catalogService) AddItem(name, category string, image []byte) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if category == "" {
		return 0, fmt.Errorf("%w: category is required", ErrValidation)
	}
	if len(image) == 0 {
		return 0, fmt.Errorf("%w: image is required", ErrValidation)
	}

	imageName, err := s.images.Put(image)
	if err != nil {
		return 0, fmt.Errorf("store image: %w", err)
	}

	id, err := s.repo.AddItem(name, category, imageName)
	if err != nil {
		if errors.Is(err, shared.ErrConstraint) {
			return 0, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return 0, fmt.Errorf("store item: %w", err)
	}

	logging.Log.Infof("Item received: name: %s, category: %s, image name: %s", name, category, imageName)
	return id, nil
}

// GetItem returns a single denormalized item.
func (s *catalogService) GetItem(id int64) (*models.Item, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: item id must be a positive integer", ErrValidation)
	}
	item, err := s.repo.GetItem(id)
	if err != nil {
		if errors.Is(err, shared.ErrItemNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// ListItems returns all items with their category names.
func (s *catalogService) ListItems() ([]models.Item, error) {
	return s.repo.ListItems()
}

// SearchItems returns items whose name contains the keyword.
func (s *catalogService) SearchItems(keyword string) ([]models.Item, error) {
	if keyword == "" {
		return nil, fmt.Errorf("%w: keyword is required", ErrValidation)
	}
	return s.repo.SearchItems(keyword)
}
