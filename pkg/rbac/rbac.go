// Package rbac provides role-based access guards for storefront routes.
package rbac

import (
	"net/http"
	"strings"

	"storefront/pkg/auth"
	"storefront/pkg/middleware"
	"storefront/pkg/response"
)

// HasRole returns middleware that allows access only to users with one of
// the given roles. Requires middleware.AuthRequired to have already run.
func HasRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := middleware.RoleFromCtx(r)
			if !ok || !allowed[role] {
				response.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Guest blocks requests that carry a valid bearer token (useful for
// login/register endpoints). It inspects the Authorization header itself
// since public routes run no auth middleware; invalid or absent tokens
// pass through.
func Guest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token != "" && token != header {
			if _, err := auth.ValidateToken(token); err == nil {
				response.Error(w, http.StatusConflict, "Already authenticated")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
