package timesheet

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/nimbus-hr/hrms-backend-go/internal/config"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/timesheet"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/validator"
)

type TimesheetServiceImpl struct {
	timesheetRepo timesheet.TimesheetRepository
	overtimeRepo  timesheet.OvertimeRepository
	shiftRepo     attendance.EmployeeShiftRepository
	cfg           config.TimesheetConfig
}

func NewTimesheetService(
	timesheetRepo timesheet.TimesheetRepository,
	overtimeRepo timesheet.OvertimeRepository,
	shiftRepo attendance.EmployeeShiftRepository,
	cfg config.TimesheetConfig,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		timesheetRepo: timesheetRepo,
		overtimeRepo:  overtimeRepo,
		shiftRepo:     shiftRepo,
		cfg:           cfg,
	}
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// clockSpanHours returns the hours between two "HH:MM:SS" clock times.
// An end at or before the start is treated as an overnight rollover into
// the next day.
func clockSpanHours(start, end string) float64 {
	st, err1 := time.Parse("15:04:05", start)
	en, err2 := time.Parse("15:04:05", end)
	if err1 != nil || err2 != nil {
		return 0
	}
	span := en.Sub(st)
	if span <= 0 {
		span += 24 * time.Hour
	}
	return span.Hours()
}

// expectedHoursFor resolves the expected working hours for an employee on a
// date: the active shift's span minus its break, or the configured default
// when no shift assignment covers the date.
func (s *TimesheetServiceImpl) expectedHoursFor(ctx context.Context, employeeID string, date time.Time) float64 {
	assignment, err := s.shiftRepo.GetActiveForDate(ctx, employeeID, date)
	if err != nil || assignment == nil || assignment.Shift == nil {
		return s.cfg.DefaultExpectedHours
	}

	shift := assignment.Shift
	span := clockSpanHours(shift.StartTime, shift.EndTime)
	if span == 0 {
		return s.cfg.DefaultExpectedHours
	}

	expected := span - float64(shift.BreakDurationMinutes)/60
	if expected < 0 {
		expected = 0
	}
	return round2(expected)
}

// DeriveFromAttendance implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) DeriveFromAttendance(ctx context.Context, att attendance.Attendance, source string) (timesheet.Timesheet, error) {
	// Attendance hours take precedence when already recorded, e.g. a
	// manual entry without clock times. Only recompute from the clocks
	// when the attendance row carries no hours of its own.
	working := round2(att.WorkingHours)
	if working == 0 && att.ClockInTime != nil && att.ClockOutTime != nil {
		working = round2(clockSpanHours(*att.ClockInTime, *att.ClockOutTime))
	}

	expected := s.expectedHoursFor(ctx, att.EmployeeID, att.Date)
	overtime := round2(working - expected)
	if overtime < 0 {
		overtime = 0
	}

	existing, err := s.timesheetRepo.GetByEmployeeAndDate(ctx, att.EmployeeID, att.Date)
	if err != nil {
		return timesheet.Timesheet{}, err
	}

	if existing == nil {
		ts := timesheet.Timesheet{
			ID:            uuid.New().String(),
			EmployeeID:    att.EmployeeID,
			Date:          att.Date,
			ClockInTime:   att.ClockInTime,
			ClockOutTime:  att.ClockOutTime,
			WorkingHours:  working,
			OvertimeHours: overtime,
			Notes:         att.Notes,
			Status:        timesheet.StatusOpen,
			Source:        source,
		}
		return s.timesheetRepo.Create(ctx, ts)
	}

	existing.ClockInTime = att.ClockInTime
	existing.ClockOutTime = att.ClockOutTime
	existing.WorkingHours = working
	existing.OvertimeHours = overtime
	existing.Notes = att.Notes
	existing.Source = source
	if !s.cfg.PreserveStatusOnRecompute {
		existing.Status = timesheet.StatusOpen
	}

	if err := s.timesheetRepo.Update(ctx, *existing); err != nil {
		return timesheet.Timesheet{}, err
	}
	return *existing, nil
}

func (s *TimesheetServiceImpl) GetTimesheet(ctx context.Context, id string) (timesheet.TimesheetResponse, error) {
	ts, err := s.timesheetRepo.GetByID(ctx, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	return timesheet.ToTimesheetResponse(ts), nil
}

func (s *TimesheetServiceImpl) ListTimesheets(ctx context.Context, filter timesheet.TimesheetFilter) ([]timesheet.TimesheetResponse, int64, error) {
	rows, total, err := s.timesheetRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]timesheet.TimesheetResponse, 0, len(rows))
	for _, ts := range rows {
		responses = append(responses, timesheet.ToTimesheetResponse(ts))
	}
	return responses, total, nil
}

func (s *TimesheetServiceImpl) DeleteTimesheet(ctx context.Context, id string) error {
	return s.timesheetRepo.Delete(ctx, id)
}

// transition moves a timesheet between workflow states, rejecting moves the
// workflow does not allow.
func (s *TimesheetServiceImpl) transition(ctx context.Context, id string, from []string, to string) (timesheet.TimesheetResponse, error) {
	ts, err := s.timesheetRepo.GetByID(ctx, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	if !validator.IsInSlice(ts.Status, from) {
		return timesheet.TimesheetResponse{}, timesheet.ErrInvalidStatusTransition
	}

	if err := s.timesheetRepo.UpdateStatus(ctx, id, to); err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	ts.Status = to
	return timesheet.ToTimesheetResponse(ts), nil
}

func (s *TimesheetServiceImpl) SubmitTimesheet(ctx context.Context, id string) (timesheet.TimesheetResponse, error) {
	return s.transition(ctx, id, []string{timesheet.StatusOpen, timesheet.StatusRejected}, timesheet.StatusSubmitted)
}

func (s *TimesheetServiceImpl) ApproveTimesheet(ctx context.Context, id string) (timesheet.TimesheetResponse, error) {
	return s.transition(ctx, id, []string{timesheet.StatusSubmitted}, timesheet.StatusApproved)
}

func (s *TimesheetServiceImpl) RejectTimesheet(ctx context.Context, id string) (timesheet.TimesheetResponse, error) {
	return s.transition(ctx, id, []string{timesheet.StatusSubmitted}, timesheet.StatusRejected)
}

func (s *TimesheetServiceImpl) CreateOvertimeRequest(ctx context.Context, req timesheet.CreateOvertimeRequest) (timesheet.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.OvertimeResponse{}, err
	}
	date, _ := validator.IsValidDate(req.Date)

	ot := timesheet.OvertimeRequest{
		ID:          uuid.New().String(),
		EmployeeID:  req.EmployeeID,
		TimesheetID: req.TimesheetID,
		Date:        date,
		Hours:       round2(req.Hours),
		Reason:      req.Reason,
		Status:      timesheet.OvertimeStatusPending,
	}

	created, err := s.overtimeRepo.Create(ctx, ot)
	if err != nil {
		return timesheet.OvertimeResponse{}, err
	}
	return timesheet.ToOvertimeResponse(created), nil
}

func (s *TimesheetServiceImpl) GetOvertimeRequest(ctx context.Context, id string) (timesheet.OvertimeResponse, error) {
	ot, err := s.overtimeRepo.GetByID(ctx, id)
	if err != nil {
		return timesheet.OvertimeResponse{}, err
	}
	return timesheet.ToOvertimeResponse(ot), nil
}

func (s *TimesheetServiceImpl) ListOvertimeRequests(ctx context.Context, filter timesheet.OvertimeFilter) ([]timesheet.OvertimeResponse, int64, error) {
	rows, total, err := s.overtimeRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]timesheet.OvertimeResponse, 0, len(rows))
	for _, ot := range rows {
		responses = append(responses, timesheet.ToOvertimeResponse(ot))
	}
	return responses, total, nil
}

// ApproveOvertimeRequest approves a pending request and folds the approved
// hours into the linked timesheet when one is attached.
func (s *TimesheetServiceImpl) ApproveOvertimeRequest(ctx context.Context, id string) (timesheet.OvertimeResponse, error) {
	ot, err := s.overtimeRepo.GetByID(ctx, id)
	if err != nil {
		return timesheet.OvertimeResponse{}, err
	}
	if ot.Status != timesheet.OvertimeStatusPending {
		return timesheet.OvertimeResponse{}, timesheet.ErrOvertimeAlreadyProcessed
	}

	now := time.Now()
	ot.Status = timesheet.OvertimeStatusApproved
	ot.ApprovedAt = &now
	if err := s.overtimeRepo.Update(ctx, ot); err != nil {
		return timesheet.OvertimeResponse{}, err
	}

	if ot.TimesheetID != nil {
		ts, err := s.timesheetRepo.GetByID(ctx, *ot.TimesheetID)
		if err == nil {
			ts.OvertimeHours = round2(ts.OvertimeHours + ot.Hours)
			_ = s.timesheetRepo.Update(ctx, ts)
		}
	}

	return timesheet.ToOvertimeResponse(ot), nil
}

func (s *TimesheetServiceImpl) RejectOvertimeRequest(ctx context.Context, req timesheet.RejectOvertimeRequest) (timesheet.OvertimeResponse, error) {
	ot, err := s.overtimeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return timesheet.OvertimeResponse{}, err
	}
	if ot.Status != timesheet.OvertimeStatusPending {
		return timesheet.OvertimeResponse{}, timesheet.ErrOvertimeAlreadyProcessed
	}

	ot.Status = timesheet.OvertimeStatusRejected
	ot.Notes = req.Notes
	if err := s.overtimeRepo.Update(ctx, ot); err != nil {
		return timesheet.OvertimeResponse{}, err
	}
	return timesheet.ToOvertimeResponse(ot), nil
}

func (s *TimesheetServiceImpl) DeleteOvertimeRequest(ctx context.Context, id string) error {
	return s.overtimeRepo.Delete(ctx, id)
}
