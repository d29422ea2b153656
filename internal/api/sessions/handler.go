package sessions

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/Vasu1712/hackmate-backend/internal/api/apperr"
	"github.com/Vasu1712/hackmate-backend/internal/models"
)

var validate = validator.New()

// Issuer signs session tokens.
type Issuer interface {
	Issue(userID string) (string, time.Time, error)
}

// UserLookup resolves the profile a session is opened for.
type UserLookup interface {
	GetUser(userID string) (models.User, bool)
}

// SessionHandler lets a client choose which profile it acts as.
type SessionHandler struct {
	Tokens Issuer
	Users  UserLookup
	Log    zerolog.Logger
}

type createRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
}

type createResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      models.User `json:"user"`
}

// Create issues a session token for an existing user.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.Write(w, fmt.Errorf("%w: %v", apperr.ErrInvalidBody, err))
		return
	}
	if err := validate.Struct(req); err != nil {
		apperr.Write(w, err)
		return
	}

	user, ok := h.Users.GetUser(req.UserID)
	if !ok {
		apperr.Write(w, fmt.Errorf("%w: %s", apperr.ErrUserNotFound, req.UserID))
		return
	}
	token, expiresAt, err := h.Tokens.Issue(user.ID)
	if err != nil {
		h.Log.Error().Err(err).Str("user_id", user.ID).Msg("issue session token")
		apperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(createResponse{Token: token, ExpiresAt: expiresAt, User: user})

	h.Log.Info().Str("user_id", user.ID).Msg("session opened")
}

// RegisterSessionRoutes registers the session route.
func RegisterSessionRoutes(r *mux.Router, handler *SessionHandler) {
	r.HandleFunc("/api/v1/session", handler.Create).Methods(http.MethodPost)
}
