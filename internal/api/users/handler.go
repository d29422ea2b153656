package users

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/Vasu1712/hackmate-backend/internal/api/apperr"
	"github.com/Vasu1712/hackmate-backend/internal/middleware"
	"github.com/Vasu1712/hackmate-backend/internal/models"
)

var validate = validator.New()

// Directory is the slice of the store the profile endpoints use.
type Directory interface {
	GetUser(userID string) (models.User, bool)
	FilterUsers(f models.UserFilter) []models.User
	UpdateUser(user models.User) bool
	Catalog() models.Catalog
}

// UserHandler serves the browse and profile endpoints.
type UserHandler struct {
	Store Directory
	Log   zerolog.Logger
}

// ListUsers handles GET with optional filters: search, and repeatable skill,
// location and hackathon query parameters.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.UserFilter{
		Search:     q.Get("search"),
		Skills:     q["skill"],
		Locations:  q["location"],
		Hackathons: q["hackathon"],
	}

	users := h.Store.FilterUsers(filter)
	writeJSON(w, http.StatusOK, users)

	h.Log.Debug().Int("count", len(users)).Str("search", filter.Search).Msg("listed users")
}

// GetUser returns the profile for {id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	user, ok := h.Store.GetUser(userID)
	if !ok {
		apperr.Write(w, fmt.Errorf("%w: %s", apperr.ErrUserNotFound, userID))
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Me returns the current user's profile.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		apperr.Write(w, apperr.ErrNoCurrentUser)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateMe replaces the current user's whole profile with the request body.
// The id in the body, if any, is ignored.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.UserFrom(r.Context())
	if !ok {
		apperr.Write(w, apperr.ErrNoCurrentUser)
		return
	}

	var profile models.User
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		apperr.Write(w, fmt.Errorf("%w: %v", apperr.ErrInvalidBody, err))
		return
	}
	profile.ID = current.ID
	if err := validate.Struct(profile); err != nil {
		apperr.Write(w, err)
		return
	}

	if !h.Store.UpdateUser(profile) {
		apperr.Write(w, fmt.Errorf("%w: %s", apperr.ErrUserNotFound, current.ID))
		return
	}
	writeJSON(w, http.StatusOK, profile)

	h.Log.Info().Str("user_id", profile.ID).Msg("profile updated")
}

// Catalog returns the skill, location and hackathon vocabularies.
func (h *UserHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Catalog())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
