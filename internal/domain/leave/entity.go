package leave

import "time"

// Leave types
const (
	TypeSick      = "Sick"
	TypeCasual    = "Casual"
	TypeAnnual    = "Annual"
	TypeMaternity = "Maternity"
	TypePaternity = "Paternity"
	TypeUnpaid    = "Unpaid"
	TypeOther     = "Other"
)

// Leave request statuses
const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusCancelled = "Cancelled"
)

type LeaveRequest struct {
	ID              string
	EmployeeID      string
	LeaveType       string
	StartDate       time.Time
	EndDate         time.Time
	TotalDays       int
	Status          string
	Reason          string
	ApprovedByID    *string
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined for responses
	EmployeeName *string
}

// LeaveBalance tracks granted vs used days per employee, type and year.
type LeaveBalance struct {
	ID         string
	EmployeeID string
	LeaveType  string
	Balance    int
	Used       int
	Year       int
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for responses
	EmployeeName *string
}

func (b LeaveBalance) Available() int {
	return b.Balance - b.Used
}

type Holiday struct {
	ID          string
	Name        string
	Date        time.Time
	IsActive    bool
	Description *string
	CreatedAt   time.Time
}
