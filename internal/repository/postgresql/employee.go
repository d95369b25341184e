package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.employee_code, e.first_name, e.last_name, e.email, e.phone_number,
	e.date_of_birth, e.hire_date, e.department_id, e.designation, e.role,
	e.salary, e.status, e.team_lead_id, e.address,
	e.emergency_contact_name, e.emergency_contact_phone,
	e.bank_account_number, e.bank_name, e.created_at, e.updated_at,
	d.name AS department_name`

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if emp.ID == "" {
		emp.ID = uuid.New().String()
	}

	query := `
		INSERT INTO employees (
			id, employee_code, first_name, last_name, email, phone_number,
			date_of_birth, hire_date, department_id, designation, role,
			salary, status, team_lead_id, address,
			emergency_contact_name, emergency_contact_phone,
			bank_account_number, bank_name, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, NOW(), NOW()
		) RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		emp.ID, emp.EmployeeCode, emp.FirstName, emp.LastName, emp.Email, emp.PhoneNumber,
		emp.DateOfBirth, emp.HireDate, emp.DepartmentID, emp.Designation, emp.Role,
		emp.Salary, emp.Status, emp.TeamLeadID, emp.Address,
		emp.EmergencyContactName, emp.EmergencyContactPhone,
		emp.BankAccountNumber, emp.BankName,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employeeUniqueError(err)
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

// employeeUniqueError maps a unique violation to the field that collided.
func employeeUniqueError(err error) error {
	if strings.Contains(err.Error(), "email") {
		return employee.ErrEmailExists
	}
	return employee.ErrEmployeeCodeExists
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1
	`
	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	emp.ManagerIDs, err = r.listManagerIDs(ctx, emp.ID)
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE LOWER(e.email) = LOWER($1)
	`
	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}

// GetByCode implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByCode(ctx context.Context, code string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.employee_code = $1
	`
	emp, err := scanEmployee(q.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.DepartmentID != nil {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", argIdx))
		args = append(args, *filter.DepartmentID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("e.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Role != nil {
		conditions = append(conditions, fmt.Sprintf("LOWER(e.role) = LOWER($%d)", argIdx))
		args = append(args, *filter.Role)
		argIdx++
	}
	if filter.Search != nil {
		conditions = append(conditions, fmt.Sprintf(
			"(e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.email ILIKE $%d OR e.employee_code ILIKE $%d)",
			argIdx, argIdx, argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees e WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE ` + where + `
		ORDER BY e.created_at DESC
	`
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}
	return employees, total, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE employees
		SET employee_code = $2, first_name = $3, last_name = $4, email = $5,
			phone_number = $6, date_of_birth = $7, hire_date = $8,
			department_id = $9, designation = $10, role = $11, salary = $12,
			status = $13, team_lead_id = $14, address = $15,
			emergency_contact_name = $16, emergency_contact_phone = $17,
			bank_account_number = $18, bank_name = $19, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		emp.ID, emp.EmployeeCode, emp.FirstName, emp.LastName, emp.Email,
		emp.PhoneNumber, emp.DateOfBirth, emp.HireDate,
		emp.DepartmentID, emp.Designation, emp.Role, emp.Salary,
		emp.Status, emp.TeamLeadID, emp.Address,
		emp.EmergencyContactName, emp.EmergencyContactPhone,
		emp.BankAccountNumber, emp.BankName,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return employeeUniqueError(err)
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// SetManagers implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetManagers(ctx context.Context, employeeID string, managerIDs []string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM employee_managers WHERE employee_id = $1`, employeeID); err != nil {
		return err
	}
	for _, managerID := range managerIDs {
		_, err := q.Exec(ctx,
			`INSERT INTO employee_managers (employee_id, manager_id) VALUES ($1, $2)`,
			employeeID, managerID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// ListEmailsByRoles implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListEmailsByRoles(ctx context.Context, roleNames []string) ([]string, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT email FROM employees
		WHERE LOWER(role) = ANY($1) AND status = 'Active'
	`
	lowered := make([]string, len(roleNames))
	for i, name := range roleNames {
		lowered[i] = strings.ToLower(name)
	}

	rows, err := q.Query(ctx, query, lowered)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}

// ListActiveIDs implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListActiveIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `SELECT id FROM employees WHERE status = 'Active'`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *employeeRepositoryImpl) listManagerIDs(ctx context.Context, employeeID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `SELECT manager_id FROM employee_managers WHERE employee_id = $1`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanEmployee(row rowScanner) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FirstName, &emp.LastName, &emp.Email, &emp.PhoneNumber,
		&emp.DateOfBirth, &emp.HireDate, &emp.DepartmentID, &emp.Designation, &emp.Role,
		&emp.Salary, &emp.Status, &emp.TeamLeadID, &emp.Address,
		&emp.EmergencyContactName, &emp.EmergencyContactPhone,
		&emp.BankAccountNumber, &emp.BankName, &emp.CreatedAt, &emp.UpdatedAt,
		&emp.DepartmentName,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}
