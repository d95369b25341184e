package postgresql

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/role"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/database"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &roleRepositoryImpl{db: db}
}

// Create implements role.RoleRepository.
func (r *roleRepositoryImpl) Create(ctx context.Context, rl role.Role) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	if rl.ID == "" {
		rl.ID = uuid.New().String()
	}
	permissionsJSON, _ := json.Marshal(rl.Permissions)

	query := `
		INSERT INTO roles (id, name, description, portal, permissions, is_system, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		rl.ID, rl.Name, rl.Description, rl.Portal, permissionsJSON, rl.IsSystem,
	).Scan(&rl.CreatedAt, &rl.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return role.Role{}, role.ErrRoleNameExists
		}
		return role.Role{}, err
	}

	return rl, nil
}

// GetByID implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByID(ctx context.Context, id string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, description, portal, permissions, is_system, created_at, updated_at
		FROM roles
		WHERE id = $1
	`
	rl, err := scanRole(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return role.Role{}, role.ErrRoleNotFound
		}
		return role.Role{}, err
	}
	return rl, nil
}

// GetByName implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByName(ctx context.Context, name string) (*role.Role, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, description, portal, permissions, is_system, created_at, updated_at
		FROM roles
		WHERE LOWER(name) = LOWER($1)
	`
	rl, err := scanRole(q.QueryRow(ctx, query, name))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rl, nil
}

// List implements role.RoleRepository.
func (r *roleRepositoryImpl) List(ctx context.Context) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, description, portal, permissions, is_system, created_at, updated_at
		FROM roles
		ORDER BY is_system DESC, name
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []role.Role
	for rows.Next() {
		rl, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, rl)
	}
	return roles, rows.Err()
}

// Update implements role.RoleRepository.
func (r *roleRepositoryImpl) Update(ctx context.Context, rl role.Role) error {
	q := GetQuerier(ctx, r.db)

	permissionsJSON, _ := json.Marshal(rl.Permissions)

	query := `
		UPDATE roles
		SET name = $2, description = $3, portal = $4, permissions = $5, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, rl.ID, rl.Name, rl.Description, rl.Portal, permissionsJSON)
	if err != nil {
		if isUniqueViolation(err) {
			return role.ErrRoleNameExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}
	return nil
}

// Delete implements role.RoleRepository.
func (r *roleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}
	return nil
}

// Seed implements role.RoleRepository.
func (r *roleRepositoryImpl) Seed(ctx context.Context, rl role.Role) error {
	q := GetQuerier(ctx, r.db)

	permissionsJSON, _ := json.Marshal(rl.Permissions)

	query := `
		INSERT INTO roles (id, name, description, portal, permissions, is_system, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (name) DO NOTHING
	`
	_, err := q.Exec(ctx, query,
		uuid.New().String(), rl.Name, rl.Description, rl.Portal, permissionsJSON, rl.IsSystem,
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRole(row rowScanner) (role.Role, error) {
	var rl role.Role
	var permissionsJSON []byte

	err := row.Scan(
		&rl.ID, &rl.Name, &rl.Description, &rl.Portal,
		&permissionsJSON, &rl.IsSystem, &rl.CreatedAt, &rl.UpdatedAt,
	)
	if err != nil {
		return role.Role{}, err
	}

	if permissionsJSON != nil {
		json.Unmarshal(permissionsJSON, &rl.Permissions)
	}
	return rl, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
