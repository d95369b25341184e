package role

import "context"

// RoleRepository defines data access methods for stored roles. Stored roles
// extend the built-in definitions; name lookup is case-insensitive.
type RoleRepository interface {
	Create(ctx context.Context, role Role) (Role, error)

	GetByID(ctx context.Context, id string) (Role, error)

	// GetByName retrieves a role by case-insensitive name match.
	// Returns nil (not an error) when no row matches.
	GetByName(ctx context.Context, name string) (*Role, error)

	List(ctx context.Context) ([]Role, error)

	Update(ctx context.Context, role Role) error

	Delete(ctx context.Context, id string) error

	// Seed inserts a built-in definition unless a role with the same name
	// already exists. Used at startup so stored rows stay the source of truth.
	Seed(ctx context.Context, role Role) error
}
