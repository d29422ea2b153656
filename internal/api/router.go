package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/Vasu1712/hackmate-backend/internal/api/dms"
	"github.com/Vasu1712/hackmate-backend/internal/api/sessions"
	"github.com/Vasu1712/hackmate-backend/internal/api/users"
	"github.com/Vasu1712/hackmate-backend/internal/config"
	"github.com/Vasu1712/hackmate-backend/internal/middleware"
	"github.com/Vasu1712/hackmate-backend/internal/notify"
	"github.com/Vasu1712/hackmate-backend/internal/session"
	"github.com/Vasu1712/hackmate-backend/internal/storage/memory"
	"github.com/Vasu1712/hackmate-backend/internal/ws"
)

// Deps are the collaborators the HTTP surface is built from.
type Deps struct {
	Config   *config.Config
	Store    *memory.DMStore
	Sessions *session.Manager
	Hub      *ws.Hub
	Notifier notify.Notifier
	Log      zerolog.Logger
}

// NewRouter wires every route behind the CORS, request logging and current-user middleware.
func NewRouter(d Deps) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.CurrentUser(d.Sessions, d.Store, d.Config.AllowDefaultUser, d.Log))

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	sessions.RegisterSessionRoutes(r, &sessions.SessionHandler{
		Tokens: d.Sessions,
		Users:  d.Store,
		Log:    d.Log.With().Str("component", "sessions").Logger(),
	})
	users.RegisterUserRoutes(r, &users.UserHandler{
		Store: d.Store,
		Log:   d.Log.With().Str("component", "users").Logger(),
	})
	dms.RegisterDMRoutes(r, &dms.DMHandler{
		Store:    d.Store,
		Notifier: d.Notifier,
		Hub:      d.Hub,
		Upgrader: websocket.Upgrader{CheckOrigin: sameOrigin(d.Config.CORSAllowedOrigin)},
		Log:      d.Log.With().Str("component", "dms").Logger(),
	})

	var h http.Handler = r
	h = middleware.RequestLogger(d.Log)(h)
	h = middleware.CORS(d.Config.CORSAllowedOrigin, d.Log)(h)
	return h
}

// sameOrigin accepts upgrades without an Origin header (non-browser clients)
// or from the configured frontend origin.
func sameOrigin(allowed string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || allowed == "*" || origin == allowed
	}
}
