// filepath: internal/services/image_service.go
package services

import (
	"errors"
	"fmt"
	"io"
	"itemhub/internal/imagestore"
	"itemhub/internal/shared"
)

// imageService provides an injectable wrapper around the image store.
type imageService struct {
	store *imagestore.Store
}

// NewImageService creates a new ImageService.
func NewImageService(store *imagestore.Store) ImageService {
	return &imageService{store: store}
}

func (s *imageService) Put(data []byte) (string, error) {
	return s.store.Put(data)
}

// Open maps a malformed image name onto the service validation error so the
// handler layer only deals with the service taxonomy.
func (s *imageService) Open(name string) (io.ReadCloser, error) {
	r, err := s.store.Open(name)
	if err != nil {
		if errors.Is(err, shared.ErrInvalidName) {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return nil, err
	}
	return r, nil
}
