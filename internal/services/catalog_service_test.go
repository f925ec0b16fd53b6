// filepath: internal/services/catalog_service_test.go
package services

import (
	"io"
	"itemhub/internal/models"
	"itemhub/internal/repository"
	"itemhub/internal/shared"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mocks are defined locally: the shared mocks package imports services and
// cannot be used from these in-package tests.

type mockCatalog struct {
	mock.Mock
}

var _ repository.Catalog = (*mockCatalog)(nil)

func (m *mockCatalog) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *mockCatalog) ResolveOrCreateCategory(name string) (int64, error) {
	args := m.Called(name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCatalog) InsertItem(name string, categoryID int64, imageName string) (int64, error) {
	args := m.Called(name, categoryID, imageName)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCatalog) AddItem(name, categoryName, imageName string) (int64, error) {
	args := m.Called(name, categoryName, imageName)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCatalog) GetItem(id int64) (*models.Item, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *mockCatalog) ListItems() ([]models.Item, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *mockCatalog) SearchItems(keyword string) ([]models.Item, error) {
	args := m.Called(keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Item), args.Error(1)
}

type mockImages struct {
	mock.Mock
}

var _ ImageService = (*mockImages)(nil)

func (m *mockImages) Put(data []byte) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}

func (m *mockImages) Open(name string) (io.ReadCloser, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func TestAddItemValidationPrecedesSideEffects(t *testing.T) {
	tests := []struct {
		name     string
		itemName string
		category string
		image    []byte
	}{
		{"Empty Name", "", "Stationery", []byte("img")},
		{"Empty Category", "Pen", "", []byte("img")},
		{"Empty Image", "Pen", "Stationery", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mockCatalog)
			images := new(mockImages)
			svc := NewCatalogService(repo, images)

			_, err := svc.AddItem(tc.itemName, tc.category, tc.image)
			assert.ErrorIs(t, err, ErrValidation)

			// No blob write and no store mutation may have happened.
			images.AssertNotCalled(t, "Put", mock.Anything)
			repo.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAddItemStoresImageThenRows(t *testing.T) {
	repo := new(mockCatalog)
	images := new(mockImages)
	svc := NewCatalogService(repo, images)

	payload := []byte("image bytes")
	images.On("Put", payload).Return("abc123.jpg", nil)
	repo.On("AddItem", "Pen", "Stationery", "abc123.jpg").Return(int64(7), nil)

	id, err := svc.AddItem("Pen", "Stationery", payload)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)

	images.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestAddItemMapsConstraintToConflict(t *testing.T) {
	repo := new(mockCatalog)
	images := new(mockImages)
	svc := NewCatalogService(repo, images)

	images.On("Put", mock.Anything).Return("abc123.jpg", nil)
	repo.On("AddItem", "Pen", "Stationery", "abc123.jpg").Return(int64(0), shared.ErrConstraint)

	_, err := svc.AddItem("Pen", "Stationery", []byte("img"))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestGetItemValidation(t *testing.T) {
	repo := new(mockCatalog)
	svc := NewCatalogService(repo, new(mockImages))

	_, err := svc.GetItem(0)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.GetItem(-3)
	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "GetItem", mock.Anything)
}

func TestGetItemNotFound(t *testing.T) {
	repo := new(mockCatalog)
	svc := NewCatalogService(repo, new(mockImages))

	repo.On("GetItem", int64(42)).Return(nil, shared.ErrItemNotFound)

	_, err := svc.GetItem(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchItemsEmptyKeyword(t *testing.T) {
	repo := new(mockCatalog)
	svc := NewCatalogService(repo, new(mockImages))

	_, err := svc.SearchItems("")
	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "SearchItems", mock.Anything)
}
