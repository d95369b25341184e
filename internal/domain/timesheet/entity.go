package timesheet

import "time"

// Timesheet statuses. Open -> Submitted -> Approved | Rejected.
const (
	StatusOpen      = "Open"
	StatusSubmitted = "Submitted"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
)

// Timesheet sources
const (
	SourceAttendance = "Attendance"
	SourceBiometric  = "Biometric"
	SourceManual     = "Manual"
)

// Timesheet is the derived record of hours worked, one row per employee
// per date. Hours are recomputed whenever the underlying attendance
// changes; whether status survives a recompute is a configuration choice.
type Timesheet struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	ClockInTime   *string
	ClockOutTime  *string
	WorkingHours  float64
	OvertimeHours float64
	Status        string
	Source        string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined for responses
	EmployeeName *string
}

// Overtime request statuses
const (
	OvertimeStatusPending  = "Pending"
	OvertimeStatusApproved = "Approved"
	OvertimeStatusRejected = "Rejected"
)

// OvertimeRequest is a manually submitted overtime claim with its own
// approval workflow, optionally linked to a timesheet.
type OvertimeRequest struct {
	ID           string
	EmployeeID   string
	TimesheetID  *string
	Date         time.Time
	Hours        float64
	Reason       *string
	Status       string
	ApprovedByID *string
	ApprovedAt   *time.Time
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined for responses
	EmployeeName *string
}
