package timesheet

import (
	"context"

	"github.com/nimbus-hr/hrms-backend-go/internal/domain/attendance"
)

// TimesheetService defines timesheet derivation, the approval workflow and
// overtime requests.
type TimesheetService interface {
	// DeriveFromAttendance upserts the timesheet row for the attendance
	// record's (employee, date): working hours from the attendance data,
	// expected hours from the active shift assignment, overtime as the
	// excess. Status handling on existing rows follows the configured
	// recompute policy.
	DeriveFromAttendance(ctx context.Context, att attendance.Attendance, source string) (Timesheet, error)

	GetTimesheet(ctx context.Context, id string) (TimesheetResponse, error)
	ListTimesheets(ctx context.Context, filter TimesheetFilter) ([]TimesheetResponse, int64, error)
	DeleteTimesheet(ctx context.Context, id string) error

	SubmitTimesheet(ctx context.Context, id string) (TimesheetResponse, error)
	ApproveTimesheet(ctx context.Context, id string) (TimesheetResponse, error)
	RejectTimesheet(ctx context.Context, id string) (TimesheetResponse, error)

	CreateOvertimeRequest(ctx context.Context, req CreateOvertimeRequest) (OvertimeResponse, error)
	GetOvertimeRequest(ctx context.Context, id string) (OvertimeResponse, error)
	ListOvertimeRequests(ctx context.Context, filter OvertimeFilter) ([]OvertimeResponse, int64, error)
	ApproveOvertimeRequest(ctx context.Context, id string) (OvertimeResponse, error)
	RejectOvertimeRequest(ctx context.Context, req RejectOvertimeRequest) (OvertimeResponse, error)
	DeleteOvertimeRequest(ctx context.Context, id string) error
}
