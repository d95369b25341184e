package attendance

import "time"

// Attendance status values
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLeave   = "Leave"
	StatusHalfDay = "Half Day"
)

// Attendance is one row per employee per calendar day. Clock times are
// wall-clock times of day ("HH:MM:SS"); the date carries the day.
type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	ClockInTime  *string
	ClockOutTime *string
	WorkingHours float64
	Status       string
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined for responses
	EmployeeName *string
}

// Shift is a named work-schedule template.
type Shift struct {
	ID        string
	Name      string
	StartTime string
	EndTime   string
	// BreakDurationMinutes is subtracted from the shift span when computing
	// expected hours.
	BreakDurationMinutes int
	Description          *string
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// EmployeeShift assigns a shift to an employee for a date range. A nil
// EndDate means open-ended. At most one active assignment should cover a
// given employee and date; when several do, the most recently started wins.
type EmployeeShift struct {
	ID         string
	EmployeeID string
	ShiftID    string
	StartDate  time.Time
	EndDate    *time.Time
	IsActive   bool
	CreatedAt  time.Time

	// Joined for responses
	EmployeeName *string
	ShiftName    *string
	Shift        *Shift
}
