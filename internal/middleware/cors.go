package middleware

import (
	"net/http"

	"github.com/rs/zerolog"
)

// CORS allows the browser app served from allowedOrigin to call the API.
// It must wrap the router itself so preflight requests never reach route matching.
func CORS(allowedOrigin string, log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Access-Control-Allow-Headers, Authorization, X-Requested-With")
			w.Header().Set("Access-Control-Allow-Credentials", "true")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				log.Debug().Str("path", r.URL.Path).Msg("handled CORS preflight")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
