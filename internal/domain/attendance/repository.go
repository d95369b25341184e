package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate returns nil (not an error) when no row exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	Update(ctx context.Context, att Attendance) error

	Delete(ctx context.Context, id string) error

	// Upsert writes the (employee, date) row, inserting or overwriting the
	// clock times, working hours and status. Last writer wins.
	Upsert(ctx context.Context, att Attendance) (Attendance, error)
}

// ShiftRepository defines data access methods for shift templates.
type ShiftRepository interface {
	Create(ctx context.Context, shift Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	List(ctx context.Context, activeOnly bool) ([]Shift, error)
	Update(ctx context.Context, shift Shift) error
	Delete(ctx context.Context, id string) error
}

// EmployeeShiftRepository defines data access methods for shift assignments.
type EmployeeShiftRepository interface {
	Create(ctx context.Context, assignment EmployeeShift) (EmployeeShift, error)
	GetByID(ctx context.Context, id string) (EmployeeShift, error)
	List(ctx context.Context, employeeID *string) ([]EmployeeShift, error)
	Update(ctx context.Context, assignment EmployeeShift) error
	Delete(ctx context.Context, id string) error

	// GetActiveForDate returns the active assignment covering date for the
	// employee, preferring the most recent start date when several overlap.
	// Returns nil when none covers the date.
	GetActiveForDate(ctx context.Context, employeeID string, date time.Time) (*EmployeeShift, error)
}
