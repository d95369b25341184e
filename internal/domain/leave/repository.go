package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository defines data access methods for leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	Update(ctx context.Context, req LeaveRequest) error
	Delete(ctx context.Context, id string) error

	// HasApprovedLeaveOn reports whether the employee has an approved leave
	// covering the date; used by the absent-marking job.
	HasApprovedLeaveOn(ctx context.Context, employeeID string, date time.Time) (bool, error)
}

// LeaveBalanceRepository defines data access methods for leave balances.
type LeaveBalanceRepository interface {
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	GetByID(ctx context.Context, id string) (LeaveBalance, error)

	// GetForEmployee returns nil when no balance row exists for the
	// employee, type and year.
	GetForEmployee(ctx context.Context, employeeID, leaveType string, year int) (*LeaveBalance, error)

	List(ctx context.Context, employeeID *string, year *int) ([]LeaveBalance, error)
	Update(ctx context.Context, balance LeaveBalance) error
	Delete(ctx context.Context, id string) error
}

// HolidayRepository defines data access methods for the holiday calendar.
type HolidayRepository interface {
	Create(ctx context.Context, holiday Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)
	List(ctx context.Context, activeOnly bool) ([]Holiday, error)
	Update(ctx context.Context, holiday Holiday) error
	Delete(ctx context.Context, id string) error

	// IsHoliday reports whether date is an active holiday.
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}
