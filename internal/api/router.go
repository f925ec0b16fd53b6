// filepath: internal/api/router.go
package api

import (
	"itemhub/internal/api/handlers"
	"itemhub/internal/config"
	"net/http"

	"github.com/gorilla/mux"
)

// SetupRouter configures the main router: middleware, catalog endpoints and
// the image endpoint.
func SetupRouter(h *handlers.Handlers, cfg *config.Config) *mux.Router {
	r := mux.NewRouter()

	r.Use(RequestLogger)
	r.Use(CORS(cfg.Server.FrontendOrigin))

	r.HandleFunc("/", h.Hello).Methods("GET")
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET")

	r.HandleFunc("/items", h.AddItem).Methods("POST")
	r.HandleFunc("/items", h.GetItems).Methods("GET")
	// Registered before /items/{id} so "search" is not captured as an id.
	r.HandleFunc("/items/search", h.SearchItems).Methods("GET")
	r.HandleFunc("/items/{id}", h.GetItem).Methods("GET")

	r.HandleFunc("/image/{image_name}", h.GetImage).Methods("GET")

	// Preflight requests for the frontend.
	r.PathPrefix("/").Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}
