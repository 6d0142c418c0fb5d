package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter registers every API route under /api. Uploaded product
// images are served statically from the upload directory.
func NewRouter(adherents *AdherentHandler, products *ProductHandler, uploadDir string) *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/adherents", adherents.Create).Methods("POST")
	api.HandleFunc("/adherents", adherents.List).Methods("GET")
	api.HandleFunc("/adherents/{id}", adherents.Get).Methods("GET")
	api.HandleFunc("/adherents/{id}", adherents.Update).Methods("PUT")
	api.HandleFunc("/adherents/{id}", adherents.Delete).Methods("DELETE")

	api.HandleFunc("/products", products.List).Methods("GET")
	api.HandleFunc("/products", products.Create).Methods("POST")
	api.PathPrefix("/products/uploads/").Handler(
		http.StripPrefix("/api/products/uploads/", http.FileServer(http.Dir(uploadDir))),
	)
	api.HandleFunc("/products/{id}", products.Update).Methods("PUT")
	api.HandleFunc("/products/{id}", products.Delete).Methods("DELETE")

	return router
}
