package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound    = errors.New("attendance record not found")
	ErrAttendanceExists      = errors.New("attendance already recorded for this employee and date")
	ErrShiftNotFound         = errors.New("shift not found")
	ErrEmployeeShiftNotFound = errors.New("employee shift assignment not found")
	ErrInvalidDateRange      = errors.New("end date must not be before start date")
)
