package role

import "context"

// RoleService defines role management and permission resolution.
type RoleService interface {
	CreateRole(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	GetRole(ctx context.Context, id string) (RoleResponse, error)
	ListRoles(ctx context.Context) ([]RoleResponse, error)
	UpdateRole(ctx context.Context, req UpdateRoleRequest) (RoleResponse, error)
	DeleteRole(ctx context.Context, id string) error

	// GetRoleDefinition resolves a role name to its definition. Stored roles
	// win over built-ins; unknown names fall back to the built-in Employee
	// definition.
	GetRoleDefinition(ctx context.Context, roleName string) Definition

	// RoleHasPermission reports whether the resolved definition grants
	// permission, including wildcard grants.
	RoleHasPermission(ctx context.Context, roleName, permission string) bool

	// RolePortal returns the portal classification for a role name.
	RolePortal(ctx context.Context, roleName string) string

	// EmailsForPermission returns the emails of every employee whose role
	// grants permission, across stored and built-in roles.
	EmailsForPermission(ctx context.Context, permission string) ([]string, error)

	// SeedDefaults writes the built-in role definitions into storage without
	// overwriting existing rows. Called once at startup.
	SeedDefaults(ctx context.Context) error
}
