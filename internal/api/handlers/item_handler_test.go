// filepath: internal/api/handlers/item_handler_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"itemhub/internal/models"
	"itemhub/internal/services"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAddItemAPI(t *testing.T) {
	server, catalog, _, cleanup := setupTestAPI(t)
	defer cleanup()

	image := []byte("fake image bytes")
	catalog.On("AddItem", "Pen", "Stationery", image).Return(int64(1), nil)

	body, contentType := multipartItem(t, "Pen", "Stationery", image)
	resp, err := http.Post(server.URL+"/items", contentType, body)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var payload AddItemResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, int64(1), payload.ID)

	catalog.AssertExpectations(t)
}

func TestAddItemAPIValidation(t *testing.T) {
	server, catalog, _, cleanup := setupTestAPI(t)
	defer cleanup()

	catalog.On("AddItem", "", "Stationery", mock.Anything).
		Return(int64(0), fmt.Errorf("%w: name is required", services.ErrValidation))

	body, contentType := multipartItem(t, "", "Stationery", []byte("img"))
	resp, err := http.Post(server.URL+"/items", contentType, body)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAddItemAPIMissingImagePart(t *testing.T) {
	server, catalog, _, cleanup := setupTestAPI(t)
	defer cleanup()

	// Multipart body without an image part at all.
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	assert.NoError(t, writer.WriteField("name", "Pen"))
	assert.NoError(t, writer.WriteField("category", "Stationery"))
	writer.Close()

	resp, err := http.Post(server.URL+"/items", writer.FormDataContentType(), body)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	catalog.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetItemsAPI(t *testing.T) {
	server, catalog, _, cleanup := setupTestAPI(t)
	defer cleanup()

	catalog.On("ListItems").Return([]models.Item{
		{ID: 1, Name: "Pen", Category: "Stationery", ImageName: "aa.jpg"},
		{ID: 2, Name: "Mug", Category: "Kitchen", ImageName: "bb.jpg"},
	}, nil)

	resp, err := http.Get(server.URL + "/items")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload ItemsResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Len(t, payload.Items, 2)
	assert.Equal(t, "Stationery", payload.Items[0].Category)
}

func TestGetItemAPI(t *testing.T) {
	server, catalog, _, cleanup := setupTestAPI(t)
	defer cleanup()

	catalog.On("GetItem", int64(1)).
		Return(&models.Item{ID: 1, Name: "Pen", Category: "Stationery", ImageName: "aa.jpg"}, nil)

	resp, err := http.Get(server.URL + "/items/1")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var item models.Item
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&item))
	assert.Equal(t, "Pen", item.Name)
}

func TestGetItemAPINotFound(t *testing.T) {
	server, catalog, _, cleanup := setupTestAPI(t)
	defer cleanup()

	catalog.On("GetItem", int64(42)).Return(nil, services.ErrNotFound)

	resp, err := http.Get(server.URL + "/items/42")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetItemAPIMalformedID(t *testing.T) {
	server, catalog, _, cleanup := setupTestAPI(t)
	defer cleanup()

	resp, err := http.Get(server.URL + "/items/notanumber")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	catalog.AssertNotCalled(t, "GetItem", mock.Anything)
}

func TestSearchItemsAPI(t *testing.T) {
	server, catalog, _, cleanup := setupTestAPI(t)
	defer cleanup()

	catalog.On("SearchItems", "pen").Return([]models.Item{
		{ID: 1, Name: "Red Pen", Category: "Stationery", ImageName: "aa.jpg"},
	}, nil)

	resp, err := http.Get(server.URL + "/items/search?keyword=pen")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload ItemsResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Len(t, payload.Items, 1)
	assert.Equal(t, "Red Pen", payload.Items[0].Name)
}

func TestSearchItemsAPIEmptyKeyword(t *testing.T) {
	server, catalog, _, cleanup := setupTestAPI(t)
	defer cleanup()

	catalog.On("SearchItems", "").
		Return(nil, fmt.Errorf("%w: keyword is required", services.ErrValidation))

	resp, err := http.Get(server.URL + "/items/search?keyword=")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
