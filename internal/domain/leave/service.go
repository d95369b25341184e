package leave

import "context"

// LeaveService defines the leave request workflow, balances and holidays.
type LeaveService interface {
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequest) (LeaveRequestResponse, error)
	GetLeaveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequestResponse, int64, error)
	ApproveLeaveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
	RejectLeaveRequest(ctx context.Context, req RejectLeaveRequest) (LeaveRequestResponse, error)
	CancelLeaveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)

	CreateLeaveBalance(ctx context.Context, req UpsertLeaveBalanceRequest) (LeaveBalanceResponse, error)
	ListLeaveBalances(ctx context.Context, employeeID *string, year *int) ([]LeaveBalanceResponse, error)
	UpdateLeaveBalance(ctx context.Context, req UpsertLeaveBalanceRequest) (LeaveBalanceResponse, error)

	CreateHoliday(ctx context.Context, req UpsertHolidayRequest) (HolidayResponse, error)
	ListHolidays(ctx context.Context, activeOnly bool) ([]HolidayResponse, error)
	UpdateHoliday(ctx context.Context, req UpsertHolidayRequest) (HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error
}
