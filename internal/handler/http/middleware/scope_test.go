package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbus-hr/hrms-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/role"
)

type fakeRoleService struct {
	role.RoleService
	perms map[string][]string
}

func (s *fakeRoleService) RoleHasPermission(ctx context.Context, roleName, permission string) bool {
	return role.PermissionMatches(s.perms[roleName], permission)
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	byEmail map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	if emp, ok := r.byEmail[email]; ok {
		return &emp, nil
	}
	return nil, nil
}

func requestWithClaims(t *testing.T, email, roleName string) *http.Request {
	t.Helper()
	tok := jwt.New()
	require.NoError(t, tok.Set("email", email))
	require.NoError(t, tok.Set("role", roleName))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return req.WithContext(jwtauth.NewContext(req.Context(), tok, nil))
}

func newScopeFixture() (*fakeRoleService, *fakeEmployeeRepo) {
	roles := &fakeRoleService{perms: map[string][]string{
		"HR":       {"attendance.view", "attendance.manage"},
		"Employee": {"attendance.self"},
		"Guest":    {},
	}}
	employees := &fakeEmployeeRepo{byEmail: map[string]employee.Employee{
		"asha@example.com": {ID: "emp-1", Email: "asha@example.com"},
	}}
	return roles, employees
}

func TestAccessScopeFullAccess(t *testing.T) {
	roles, employees := newScopeFixture()

	var captured *string
	handler := AccessScope(roles, employees, "attendance")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = ScopedEmployeeID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithClaims(t, "hr@example.com", "HR"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, captured)
}

func TestAccessScopeSelfRestricted(t *testing.T) {
	roles, employees := newScopeFixture()

	var captured *string
	handler := AccessScope(roles, employees, "attendance")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = ScopedEmployeeID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithClaims(t, "asha@example.com", "Employee"))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "emp-1", *captured)
}

func TestAccessScopeRejectsWithoutGrant(t *testing.T) {
	roles, employees := newScopeFixture()

	handler := AccessScope(roles, employees, "attendance")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithClaims(t, "guest@example.com", "Guest"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAccessScopeRejectsUnlinkedAccount(t *testing.T) {
	roles, employees := newScopeFixture()

	handler := AccessScope(roles, employees, "attendance")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithClaims(t, "ghost@example.com", "Employee"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequirePermission(t *testing.T) {
	roles, _ := newScopeFixture()

	handler := RequirePermission(roles, "attendance.manage")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithClaims(t, "hr@example.com", "HR"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithClaims(t, "asha@example.com", "Employee"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
