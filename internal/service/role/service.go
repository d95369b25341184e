package role

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nimbus-hr/hrms-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/role"
	"github.com/nimbus-hr/hrms-backend-go/internal/fixtures"
)

type RoleServiceImpl struct {
	roleRepo     role.RoleRepository
	employeeRepo employee.EmployeeRepository
}

func NewRoleService(roleRepo role.RoleRepository, employeeRepo employee.EmployeeRepository) role.RoleService {
	return &RoleServiceImpl{
		roleRepo:     roleRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *RoleServiceImpl) CreateRole(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	newRole := role.Role{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Portal:      req.Portal,
		Permissions: req.Permissions,
		IsSystem:    false,
	}
	if newRole.Permissions == nil {
		newRole.Permissions = []string{}
	}

	created, err := s.roleRepo.Create(ctx, newRole)
	if err != nil {
		return role.RoleResponse{}, err
	}
	return role.ToRoleResponse(created), nil
}

func (s *RoleServiceImpl) GetRole(ctx context.Context, id string) (role.RoleResponse, error) {
	r, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return role.RoleResponse{}, err
	}
	return role.ToRoleResponse(r), nil
}

func (s *RoleServiceImpl) ListRoles(ctx context.Context) ([]role.RoleResponse, error) {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]role.RoleResponse, 0, len(roles))
	for _, r := range roles {
		responses = append(responses, role.ToRoleResponse(r))
	}
	return responses, nil
}

func (s *RoleServiceImpl) UpdateRole(ctx context.Context, req role.UpdateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	existing, err := s.roleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return role.RoleResponse{}, err
	}
	if existing.IsSystem {
		return role.RoleResponse{}, role.ErrSystemRoleReadOnly
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Portal = req.Portal
	existing.Permissions = req.Permissions
	if existing.Permissions == nil {
		existing.Permissions = []string{}
	}

	if err := s.roleRepo.Update(ctx, existing); err != nil {
		return role.RoleResponse{}, err
	}

	updated, err := s.roleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return role.RoleResponse{}, err
	}
	return role.ToRoleResponse(updated), nil
}

func (s *RoleServiceImpl) DeleteRole(ctx context.Context, id string) error {
	existing, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.IsSystem {
		return role.ErrSystemRoleReadOnly
	}
	return s.roleRepo.Delete(ctx, id)
}

// GetRoleDefinition implements role.RoleService. Stored roles take precedence
// over the built-in definitions so deployments can reshape a built-in role by
// storing a row under the same name. Unknown names resolve to the Employee
// fallback, which keeps a mistyped role from silently granting admin access.
func (s *RoleServiceImpl) GetRoleDefinition(ctx context.Context, roleName string) role.Definition {
	if roleName != "" {
		stored, err := s.roleRepo.GetByName(ctx, roleName)
		if err != nil {
			slog.Warn("Role lookup failed, falling back to built-ins", "role", roleName, "error", err)
		} else if stored != nil {
			return role.Definition{
				Portal:      stored.Portal,
				Permissions: stored.Permissions,
				IsSystem:    stored.IsSystem,
			}
		}

		if def, ok := fixtures.DefaultRoleDefinitions[roleName]; ok {
			return def
		}
	}
	return fixtures.DefaultRoleDefinitions[fixtures.FallbackRoleName]
}

func (s *RoleServiceImpl) RoleHasPermission(ctx context.Context, roleName, permission string) bool {
	def := s.GetRoleDefinition(ctx, roleName)
	return role.PermissionMatches(def.Permissions, permission)
}

func (s *RoleServiceImpl) RolePortal(ctx context.Context, roleName string) string {
	return s.GetRoleDefinition(ctx, roleName).Portal
}

// EmailsForPermission implements role.RoleService. It collects every role name
// whose resolved definition grants permission, then asks the employee store
// for the emails of active employees holding those roles.
func (s *RoleServiceImpl) EmailsForPermission(ctx context.Context, permission string) ([]string, error) {
	granting := make(map[string]struct{})

	for name, def := range fixtures.DefaultRoleDefinitions {
		if role.PermissionMatches(def.Permissions, permission) {
			granting[name] = struct{}{}
		}
	}

	stored, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range stored {
		if role.PermissionMatches(r.Permissions, permission) {
			granting[r.Name] = struct{}{}
		} else {
			// A stored row overrides the built-in of the same name, including
			// revoking a grant the built-in carried.
			delete(granting, r.Name)
		}
	}

	if len(granting) == 0 {
		return []string{}, nil
	}

	names := make([]string, 0, len(granting))
	for name := range granting {
		names = append(names, name)
	}
	return s.employeeRepo.ListEmailsByRoles(ctx, names)
}

// SeedDefaults implements role.RoleService.
func (s *RoleServiceImpl) SeedDefaults(ctx context.Context) error {
	for name, def := range fixtures.DefaultRoleDefinitions {
		seed := role.Role{
			ID:          uuid.New().String(),
			Name:        name,
			Portal:      def.Portal,
			Permissions: def.Permissions,
			IsSystem:    true,
		}
		if err := s.roleRepo.Seed(ctx, seed); err != nil {
			return err
		}
	}
	slog.Info("Seeded built-in roles", "count", len(fixtures.DefaultRoleDefinitions), "version", fixtures.RoleDefaultsVersion)
	return nil
}
