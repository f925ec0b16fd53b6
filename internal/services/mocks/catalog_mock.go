// filepath: internal/services/mocks/catalog_mock.go
package mocks

import (
	"itemhub/internal/models"
	"itemhub/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a testify mock of services.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

var _ services.CatalogService = (*MockCatalogService)(nil)

func (m *MockCatalogService) AddItem(name, category string, image []byte) (int64, error) {
	args := m.Called(name, category, image)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogService) GetItem(id int64) (*models.Item, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockCatalogService) ListItems() ([]models.Item, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockCatalogService) SearchItems(keyword string) ([]models.Item, error) {
	args := m.Called(keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Item), args.Error(1)
}
