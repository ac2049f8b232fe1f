package middleware

import (
	"net/http"
	"strings"
)

// AccessTokenParam is the query parameter WebSocketQuery reads.
const AccessTokenParam = "access_token"

// WebSocketQuery copies the access_token query parameter into the Authorization
// header for requests under path. Browsers cannot set headers on a WebSocket
// upgrade, so hub clients pass the token in the URL instead. An existing
// Authorization header is left alone.
func WebSocketQuery(path string) func(http.Handler) http.Handler {
	prefix := strings.ToLower(path)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(strings.ToLower(r.URL.Path), prefix) || r.Header.Get("Authorization") != "" {
				next.ServeHTTP(w, r)
				return
			}
			token := r.URL.Query().Get(AccessTokenParam)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			r2 := r.Clone(r.Context())
			r2.Header.Set("Authorization", "Bearer "+token)
			next.ServeHTTP(w, r2)
		})
	}
}
