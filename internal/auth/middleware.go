package auth

import (
	"net/http"
	"strings"

	"github.com/Huntitude/locallibrary/internal/httpx"
)

// Middleware authenticates bearer tokens and places the user identity in
// the request context.
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid credentials", nil)
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := ParseToken(secret, token)
			if err != nil {
				httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid credentials", nil)
				return
			}

			ctx := httpx.ContextWithUser(r.Context(), claims.Sub, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
