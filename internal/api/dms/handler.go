package dms

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/Vasu1712/hackmate-backend/internal/api/apperr"
	"github.com/Vasu1712/hackmate-backend/internal/middleware"
	"github.com/Vasu1712/hackmate-backend/internal/models"
	"github.com/Vasu1712/hackmate-backend/internal/notify"
	"github.com/Vasu1712/hackmate-backend/internal/ws"
)

var validate = validator.New()

// Store is the slice of the conversation store the DM endpoints use.
type Store interface {
	GetUser(userID string) (models.User, bool)
	FindConversation(a, b string) (models.DMConversation, bool)
	GetConversation(dmID string) (models.DMConversation, bool)
	GetMessages(dmID string) []models.DMMessage
	SendMessage(senderID, receiverID, content string) (models.DMMessage, models.DMConversation)
	ListConversations(userID string) []models.ConversationSummary
}

type DMHandler struct {
	Store    Store
	Notifier notify.Notifier
	Hub      *ws.Hub
	Upgrader websocket.Upgrader
	Log      zerolog.Logger
}

type sendRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required,max=64"`
	Content    string `json:"content" validate:"required,max=4000"`
}

type sendResponse struct {
	Message      models.DMMessage      `json:"message"`
	Conversation models.DMConversation `json:"conversation"`
}

// GetConversationWith returns the conversation between the current user and {userID}.
func (h *DMHandler) GetConversationWith(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		apperr.Write(w, apperr.ErrNoCurrentUser)
		return
	}
	otherID := mux.Vars(r)["userID"]

	conv, ok := h.Store.FindConversation(user.ID, otherID)
	if !ok {
		apperr.Write(w, fmt.Errorf("%w: between %s and %s", apperr.ErrNotFound, user.ID, otherID))
		return
	}
	writeJSON(w, http.StatusOK, conv)
}

// ListConversations returns the current user's inbox, most recent first.
func (h *DMHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		apperr.Write(w, apperr.ErrNoCurrentUser)
		return
	}
	convs := h.Store.ListConversations(user.ID)
	writeJSON(w, http.StatusOK, convs)

	h.Log.Debug().Str("user_id", user.ID).Int("count", len(convs)).Msg("listed conversations")
}

// GetMessages returns the messages of {dmID} oldest first. An unknown id yields
// an empty list; a conversation the current user is not part of is forbidden.
func (h *DMHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		apperr.Write(w, apperr.ErrNoCurrentUser)
		return
	}
	dmID := mux.Vars(r)["dmID"]

	if conv, ok := h.Store.GetConversation(dmID); ok && !conv.Includes(user.ID) {
		apperr.Write(w, apperr.ErrNotParticipant)
		return
	}
	writeJSON(w, http.StatusOK, h.Store.GetMessages(dmID))
}

// SendMessage stores a message from the current user and notifies both participants.
func (h *DMHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		apperr.Write(w, apperr.ErrNoCurrentUser)
		return
	}

	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.Write(w, fmt.Errorf("%w: %v", apperr.ErrInvalidBody, err))
		return
	}
	if err := validateSend(user.ID, req); err != nil {
		apperr.Write(w, err)
		return
	}
	if _, ok := h.Store.GetUser(req.ReceiverID); !ok {
		apperr.Write(w, fmt.Errorf("%w: %s", apperr.ErrUserNotFound, req.ReceiverID))
		return
	}

	msg, conv := h.Store.SendMessage(user.ID, req.ReceiverID, req.Content)
	if err := h.Notifier.Notify(r.Context(), conv.Participants[:], notify.MessageSent(msg, conv)); err != nil {
		h.Log.Warn().Err(err).Str("dm_id", conv.ID).Msg("notify participants")
	}

	writeJSON(w, http.StatusCreated, sendResponse{Message: msg, Conversation: conv})
	h.Log.Info().Str("dm_id", conv.ID).Str("message_id", msg.ID).Str("sender_id", user.ID).Msg("message sent")
}

func validateSend(senderID string, req sendRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return apperr.ErrEmptyContent
	}
	if err := validate.Struct(req); err != nil {
		return err
	}
	if req.ReceiverID == senderID {
		return apperr.ErrSelfMessage
	}
	return nil
}

// ServeWS upgrades the request and streams the current user's message events.
func (h *DMHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		apperr.Write(w, apperr.ErrNoCurrentUser)
		return
	}

	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Warn().Err(err).Str("user_id", user.ID).Msg("websocket upgrade failed")
		return
	}
	client := ws.NewClient(user.ID, conn)
	if err := h.Hub.Attach(client); err != nil {
		if !errors.Is(err, ws.ErrHubStopped) {
			h.Log.Error().Err(err).Msg("attach websocket client")
		}
		_ = conn.Close()
		return
	}
	h.Log.Debug().Str("user_id", user.ID).Msg("websocket connected")

	go client.WritePump(h.Log)
	go client.ReadPump(h.Hub, h.Log)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
