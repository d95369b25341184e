package employee

import "context"

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail matches email case-insensitively. Returns nil when no row
	// matches; used by biometric identity resolution.
	GetByEmail(ctx context.Context, email string) (*Employee, error)

	// GetByCode matches the employee code exactly. Returns nil when no row
	// matches.
	GetByCode(ctx context.Context, code string) (*Employee, error)

	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	Update(ctx context.Context, emp Employee) error

	Delete(ctx context.Context, id string) error

	// SetManagers replaces the manager set for an employee.
	SetManagers(ctx context.Context, employeeID string, managerIDs []string) error

	// ListEmailsByRoles returns emails of employees whose role name is in
	// roleNames. Backs the notification fan-out by permission.
	ListEmailsByRoles(ctx context.Context, roleNames []string) ([]string, error)

	// ListActiveIDs returns ids of all Active employees; used by the
	// absent-marking job.
	ListActiveIDs(ctx context.Context) ([]string, error)
}

// DepartmentRepository defines data access methods for departments.
type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
	Update(ctx context.Context, dept Department) error
	Delete(ctx context.Context, id string) error
}
