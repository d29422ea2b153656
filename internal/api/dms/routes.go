package dms

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterDMRoutes registers all DM-related HTTP and WebSocket routes.
func RegisterDMRoutes(r *mux.Router, handler *DMHandler) {
	r.HandleFunc("/api/v1/dms/list", handler.ListConversations).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/dms/send", handler.SendMessage).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/dms/with/{userID}", handler.GetConversationWith).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/dms/{dmID}/messages", handler.GetMessages).Methods(http.MethodGet)
	r.HandleFunc("/ws/dms", handler.ServeWS).Methods(http.MethodGet)
}
