package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"aula/pkg/logger"
)

// BearerAuth rejects requests whose Authorization header does not carry the
// configured token. Wired only when an auth token is set.
func BearerAuth(token string, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

			if presented == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				log.Warn("Rejected unauthorized request",
					"request_id", RequestIDFromContext(r.Context()),
					"path", r.URL.Path,
					"method", r.Method,
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"code":"UNAUTHORIZED","message":"Missing or invalid credential"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
