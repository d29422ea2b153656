package users

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes registers the browse and profile routes.
func RegisterUserRoutes(r *mux.Router, handler *UserHandler) {
	r.HandleFunc("/api/v1/catalog", handler.Catalog).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/users", handler.ListUsers).Methods(http.MethodGet)
	// "me" must be registered before the {id} pattern.
	r.HandleFunc("/api/v1/users/me", handler.Me).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/users/me", handler.UpdateMe).Methods(http.MethodPut)
	r.HandleFunc("/api/v1/users/{id}", handler.GetUser).Methods(http.MethodGet)
}
