package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request has already been processed")
	ErrInsufficientBalance   = errors.New("insufficient leave balance")
	ErrBalanceNotFound       = errors.New("leave balance not found")
	ErrBalanceExists         = errors.New("leave balance already exists for this employee, type and year")
	ErrHolidayNotFound       = errors.New("holiday not found")
)
