// filepath: internal/api/handlers/item_handler.go
package handlers

import (
	"errors"
	"fmt"
	"io"
	"itemhub/internal/logging"
	"itemhub/internal/services"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// Hello is a trivial liveness endpoint for the frontend.
func (h *Handlers) Hello(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Hello, world!"})
}

// AddItem handles POST /items. It accepts a multipart form with 'name',
// 'category' and 'image' parts and returns the new item id.
func (h *Handlers) AddItem(w http.ResponseWriter, r *http.Request) {
	maxMemory := h.Cfg.MaxUploadSizeBytes
	if maxMemory <= 0 {
		maxMemory = 8 << 20
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		logging.Log.Warnf("Failed to parse multipart form: %v", err)
		respondWithError(w, http.StatusBadRequest, "Failed to parse multipart form.")
		return
	}

	name := r.FormValue("name")
	category := r.FormValue("category")

	file, _, err := r.FormFile("image")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Missing 'image' part in multipart form.")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Failed to read 'image' part.")
		return
	}

	id, err := h.Catalog.AddItem(name, category, image)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			respondWithError(w, http.StatusBadRequest, err.Error())
		} else if errors.Is(err, services.ErrConflict) {
			respondWithError(w, http.StatusConflict, err.Error())
		} else {
			logging.Log.Errorf("AddItem: Unhandled error from CatalogService: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to create item.")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, AddItemResponse{
		ID:      id,
		Message: fmt.Sprintf("item received: name: %s, category: %s", name, category),
	})
}

// GetItems handles GET /items and returns all items with category names.
func (h *Handlers) GetItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Catalog.ListItems()
	if err != nil {
		logging.Log.Errorf("GetItems: Unhandled error from CatalogService: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to list items.")
		return
	}
	respondWithJSON(w, http.StatusOK, ItemsResponse{Items: items})
}

// GetItem handles GET /items/{id}.
func (h *Handlers) GetItem(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid item id format.")
		return
	}

	item, err := h.Catalog.GetItem(id)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			respondWithError(w, http.StatusBadRequest, err.Error())
		} else if errors.Is(err, services.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Item not found.")
		} else {
			logging.Log.Errorf("GetItem: Unhandled error from CatalogService: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to get item.")
		}
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

// SearchItems handles GET /items/search?keyword=...
func (h *Handlers) SearchItems(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")

	items, err := h.Catalog.SearchItems(keyword)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			respondWithError(w, http.StatusBadRequest, err.Error())
		} else {
			logging.Log.Errorf("SearchItems: Unhandled error from CatalogService: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to search items.")
		}
		return
	}
	respondWithJSON(w, http.StatusOK, ItemsResponse{Items: items})
}
