package middleware

import (
	"net/http"
	"strings"

	"zoo-ops/internal/platform/respond"
	"zoo-ops/internal/ports/auth"
)

// RequireAuth rejects anonymous requests with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Error(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole enforces a role set server-side, with the same predicate the
// UI uses for gating controls. The UI check is a convenience; this is the
// security boundary. Role sets are enumerated explicitly (no hierarchy).
func RequireRole(roles ...auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok || strings.TrimSpace(claims.UserID) == "" {
				respond.Error(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if !auth.HasRole(claims, roles...) {
				respond.Error(w, http.StatusForbidden, "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
