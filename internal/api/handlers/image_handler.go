// filepath: internal/api/handlers/image_handler.go
package handlers

import (
	"errors"
	"io"
	"itemhub/internal/logging"
	"itemhub/internal/services"
	"net/http"

	"github.com/gorilla/mux"
)

// GetImage handles GET /image/{image_name}. A well-formed name that does not
// resolve to a stored blob is served as the default placeholder, never a 404.
func (h *Handlers) GetImage(w http.ResponseWriter, r *http.Request) {
	imageName := mux.Vars(r)["image_name"]

	reader, err := h.Images.Open(imageName)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			respondWithError(w, http.StatusBadRequest, err.Error())
		} else {
			logging.Log.Errorf("GetImage: Unhandled error from ImageService: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to read image.")
		}
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "image/jpeg")
	if _, err := io.Copy(w, reader); err != nil {
		logging.Log.Warnf("GetImage: Failed to stream image %s: %v", imageName, err)
	}
}
