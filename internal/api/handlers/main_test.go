// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"bytes"
	"io"
	"itemhub/internal/config"
	"itemhub/internal/services/mocks"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// setupTestAPI wires the handlers with mocked services behind a test server.
func setupTestAPI(t *testing.T) (*httptest.Server, *mocks.MockCatalogService, *mocks.MockImageService, func()) {
	t.Helper()

	catalog := new(mocks.MockCatalogService)
	images := new(mocks.MockImageService)
	dummyCfg := &config.Config{}
	dummyCfg.ParseAndValidate()

	h := NewHandlers(catalog, images, dummyCfg)

	r := mux.NewRouter()
	r.HandleFunc("/items", h.AddItem).Methods("POST")
	r.HandleFunc("/items", h.GetItems).Methods("GET")
	r.HandleFunc("/items/search", h.SearchItems).Methods("GET")
	r.HandleFunc("/items/{id}", h.GetItem).Methods("GET")
	r.HandleFunc("/image/{image_name}", h.GetImage).Methods("GET")

	server := httptest.NewServer(r)

	cleanup := func() {
		server.Close()
	}

	return server, catalog, images, cleanup
}

// multipartItem builds a multipart body with name, category and image parts.
func multipartItem(t *testing.T, name, category string, image []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("name", name); err != nil {
		t.Fatalf("write name field: %v", err)
	}
	if err := writer.WriteField("category", category); err != nil {
		t.Fatalf("write category field: %v", err)
	}
	part, err := writer.CreateFormFile("image", "upload.jpg")
	if err != nil {
		t.Fatalf("create image part: %v", err)
	}
	if _, err := io.Copy(part, bytes.NewReader(image)); err != nil {
		t.Fatalf("write image part: %v", err)
	}
	writer.Close()

	return body, writer.FormDataContentType()
}
