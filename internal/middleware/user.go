package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Vasu1712/hackmate-backend/internal/models"
)

type ctxKey struct{}

// UserDirectory resolves the user a request acts as.
type UserDirectory interface {
	GetUser(userID string) (models.User, bool)
	DefaultUser() (models.User, bool)
}

// TokenParser returns the user id carried by a session token.
type TokenParser interface {
	Parse(raw string) (string, error)
}

// WithUser returns a copy of ctx carrying user as the current user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// UserFrom returns the current user stored by CurrentUser.
func UserFrom(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(ctxKey{}).(models.User)
	return user, ok
}

// CurrentUser resolves the session token from the Authorization header or the
// "token" query parameter (browsers cannot set headers on websocket upgrades).
// A present but invalid token is rejected. Without a token the request proceeds
// as the default user when allowDefault is set, and anonymously otherwise.
func CurrentUser(tokens TokenParser, users UserDirectory, allowDefault bool, log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				if allowDefault {
					if user, ok := users.DefaultUser(); ok {
						r = r.WithContext(WithUser(r.Context(), user))
					}
				}
				next.ServeHTTP(w, r)
				return
			}

			userID, err := tokens.Parse(raw)
			if err != nil {
				log.Debug().Err(err).Str("path", r.URL.Path).Msg("rejected session token")
				http.Error(w, "Invalid session token", http.StatusUnauthorized)
				return
			}
			user, ok := users.GetUser(userID)
			if !ok {
				http.Error(w, "Session user no longer exists", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func bearerToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		scheme, token, found := strings.Cut(auth, " ")
		if found && strings.EqualFold(scheme, "bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	return r.URL.Query().Get("token")
}
