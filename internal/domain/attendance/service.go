package attendance

import "context"

// AttendanceService defines business logic for attendance, shifts and
// shift assignments. Every attendance write re-derives the day's timesheet.
type AttendanceService interface {
	CreateAttendance(ctx context.Context, req UpsertAttendanceRequest) (AttendanceResponse, error)
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, int64, error)
	UpdateAttendance(ctx context.Context, req UpsertAttendanceRequest) (AttendanceResponse, error)
	DeleteAttendance(ctx context.Context, id string) error

	CreateShift(ctx context.Context, req UpsertShiftRequest) (ShiftResponse, error)
	GetShift(ctx context.Context, id string) (ShiftResponse, error)
	ListShifts(ctx context.Context, activeOnly bool) ([]ShiftResponse, error)
	UpdateShift(ctx context.Context, req UpsertShiftRequest) (ShiftResponse, error)
	DeleteShift(ctx context.Context, id string) error

	AssignShift(ctx context.Context, req UpsertEmployeeShiftRequest) (EmployeeShiftResponse, error)
	ListEmployeeShifts(ctx context.Context, employeeID *string) ([]EmployeeShiftResponse, error)
	UpdateEmployeeShift(ctx context.Context, req UpsertEmployeeShiftRequest) (EmployeeShiftResponse, error)
	DeleteEmployeeShift(ctx context.Context, id string) error
}
