package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/role"
	"github.com/nimbus-hr/hrms-backend-go/internal/handler/http/response"
)

// RequirePermission checks the role claim against the resolved role
// definition. Wildcard grants ("*", "leave.*") are honored by the resolver.
func RequirePermission(roleService role.RoleService, permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}

			roleName, ok := claims["role"].(string)
			if !ok {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}

			if !roleService.RoleHasPermission(r.Context(), roleName, permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but role is '%s'", permission, roleName))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
