package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) employee.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements employee.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, dept employee.Department) (employee.Department, error) {
	q := GetQuerier(ctx, r.db)

	if dept.ID == "" {
		dept.ID = uuid.New().String()
	}

	query := `
		INSERT INTO departments (id, name, manager_id, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query, dept.ID, dept.Name, dept.ManagerID, dept.Description).
		Scan(&dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Department{}, employee.ErrDepartmentNameExists
		}
		return employee.Department{}, err
	}
	return dept, nil
}

// GetByID implements employee.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Department, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT d.id, d.name, d.manager_id, d.description, d.created_at, d.updated_at,
			   m.first_name || ' ' || m.last_name AS manager_name,
			   (SELECT COUNT(*) FROM employees e WHERE e.department_id = d.id) AS employee_count
		FROM departments d
		LEFT JOIN employees m ON m.id = d.manager_id
		WHERE d.id = $1
	`
	var dept employee.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&dept.ID, &dept.Name, &dept.ManagerID, &dept.Description,
		&dept.CreatedAt, &dept.UpdatedAt, &dept.ManagerName, &dept.EmployeeCount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Department{}, employee.ErrDepartmentNotFound
		}
		return employee.Department{}, err
	}
	return dept, nil
}

// List implements employee.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]employee.Department, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT d.id, d.name, d.manager_id, d.description, d.created_at, d.updated_at,
			   m.first_name || ' ' || m.last_name AS manager_name,
			   (SELECT COUNT(*) FROM employees e WHERE e.department_id = d.id) AS employee_count
		FROM departments d
		LEFT JOIN employees m ON m.id = d.manager_id
		ORDER BY d.name
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []employee.Department
	for rows.Next() {
		var dept employee.Department
		err := rows.Scan(
			&dept.ID, &dept.Name, &dept.ManagerID, &dept.Description,
			&dept.CreatedAt, &dept.UpdatedAt, &dept.ManagerName, &dept.EmployeeCount,
		)
		if err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}
	return departments, rows.Err()
}

// Update implements employee.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, dept employee.Department) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE departments
		SET name = $2, manager_id = $3, description = $4, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, dept.ID, dept.Name, dept.ManagerID, dept.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.ErrDepartmentNameExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrDepartmentNotFound
	}
	return nil
}

// Delete implements employee.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrDepartmentNotFound
	}
	return nil
}
