package timesheet

import (
	"context"
	"time"
)

// TimesheetRepository defines data access methods for derived timesheets.
type TimesheetRepository interface {
	GetByID(ctx context.Context, id string) (Timesheet, error)

	// GetByEmployeeAndDate returns nil (not an error) when no row exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Timesheet, error)

	List(ctx context.Context, filter TimesheetFilter) ([]Timesheet, int64, error)

	Create(ctx context.Context, ts Timesheet) (Timesheet, error)

	Update(ctx context.Context, ts Timesheet) error

	UpdateStatus(ctx context.Context, id string, status string) error

	Delete(ctx context.Context, id string) error
}

// OvertimeRepository defines data access methods for overtime requests.
type OvertimeRepository interface {
	Create(ctx context.Context, req OvertimeRequest) (OvertimeRequest, error)
	GetByID(ctx context.Context, id string) (OvertimeRequest, error)
	List(ctx context.Context, filter OvertimeFilter) ([]OvertimeRequest, int64, error)
	Update(ctx context.Context, req OvertimeRequest) error
	Delete(ctx context.Context, id string) error
}
