package timesheet

import "errors"

// Timesheet domain errors
var (
	ErrTimesheetNotFound        = errors.New("timesheet not found")
	ErrInvalidStatusTransition  = errors.New("invalid timesheet status transition")
	ErrOvertimeRequestNotFound  = errors.New("overtime request not found")
	ErrOvertimeAlreadyProcessed = errors.New("overtime request has already been approved or rejected")
)
