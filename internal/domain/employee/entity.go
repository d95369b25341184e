package employee

import "time"

// Employee status values
const (
	StatusActive     = "Active"
	StatusInactive   = "Inactive"
	StatusOnLeave    = "On Leave"
	StatusTerminated = "Terminated"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  *string
	DateOfBirth  *time.Time
	HireDate     time.Time
	DepartmentID *string
	Designation  string

	// Role is a free-text role name resolved against stored roles and the
	// built-in defaults by the role service.
	Role string

	Salary float64
	Status string

	// ManagerIDs is asymmetric: an employee can report to several managers
	// without any reverse edge.
	ManagerIDs []string
	TeamLeadID *string

	Address               *string
	EmergencyContactName  *string
	EmergencyContactPhone *string
	BankAccountNumber     *string
	BankName              *string
	CreatedAt             time.Time
	UpdatedAt             time.Time

	// Joined for responses
	DepartmentName *string
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type Department struct {
	ID          string
	Name        string
	ManagerID   *string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined for responses
	ManagerName   *string
	EmployeeCount int
}
