package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/nimbus-hr/hrms-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/role"
	"github.com/nimbus-hr/hrms-backend-go/internal/handler/http/response"
)

type scopeCtxKey struct{}

// AccessScope gates read endpoints of an area. Roles holding
// "<area>.view" or "<area>.manage" see everything; roles holding only
// "<area>.self" are restricted to rows of their own employee record,
// resolved from the token's email claim. Everyone else is rejected.
func AccessScope(roleService role.RoleService, employeeRepo employee.EmployeeRepository, area string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s.view' or '%s.self'", area, area))
				return
			}

			roleName, _ := claims["role"].(string)
			if roleService.RoleHasPermission(r.Context(), roleName, area+".view") ||
				roleService.RoleHasPermission(r.Context(), roleName, area+".manage") {
				next.ServeHTTP(w, r)
				return
			}

			if !roleService.RoleHasPermission(r.Context(), roleName, area+".self") {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s.view' or '%s.self', but role is '%s'", area, area, roleName))
				return
			}

			email, _ := claims["email"].(string)
			emp, err := employeeRepo.GetByEmail(r.Context(), email)
			if err != nil {
				response.InternalServerError(w, "An unexpected error occurred")
				return
			}
			if emp == nil {
				response.Forbidden(w, "No employee record is linked to this account")
				return
			}

			ctx := context.WithValue(r.Context(), scopeCtxKey{}, emp.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ScopedEmployeeID returns the employee id the request is restricted to,
// or nil when the caller has full access to the area.
func ScopedEmployeeID(ctx context.Context) *string {
	if id, ok := ctx.Value(scopeCtxKey{}).(string); ok {
		return &id
	}
	return nil
}
