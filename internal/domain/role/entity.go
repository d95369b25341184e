package role

import (
	"strings"
	"time"
)

// Portal is the coarse access classification a role maps to.
const (
	PortalAdmin    = "Admin"
	PortalEmployee = "Employee"
)

type Role struct {
	ID          string
	Name        string
	Description *string
	Portal      string
	Permissions []string
	IsSystem    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Definition is the resolved view of a role: just what a permission check
// needs, whether the role came from storage or from the built-in defaults.
type Definition struct {
	Portal      string   `json:"portal"`
	Permissions []string `json:"permissions"`
	IsSystem    bool     `json:"is_system"`
}

// PermissionMatches reports whether a permission list grants permission.
// A list grants it when it contains the global "*", the exact string, or a
// wildcard for any dot-separated prefix, checked from the most specific
// prefix down: for "a.b.c" it tries "a.b.c.*", then "a.b.*", then "a.*".
// Permission strings are case-sensitive.
func PermissionMatches(permissions []string, permission string) bool {
	granted := make(map[string]struct{}, len(permissions))
	for _, p := range permissions {
		granted[p] = struct{}{}
	}

	if _, ok := granted["*"]; ok {
		return true
	}
	if _, ok := granted[permission]; ok {
		return true
	}

	parts := strings.Split(permission, ".")
	for idx := len(parts); idx >= 1; idx-- {
		wildcard := strings.Join(parts[:idx], ".") + ".*"
		if _, ok := granted[wildcard]; ok {
			return true
		}
	}
	return false
}
