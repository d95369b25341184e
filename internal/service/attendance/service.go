package attendance

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/nimbus-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/timesheet"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo   attendance.AttendanceRepository
	shiftRepo        attendance.ShiftRepository
	employeeShift    attendance.EmployeeShiftRepository
	employeeRepo     employee.EmployeeRepository
	timesheetService timesheet.TimesheetService
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	shiftRepo attendance.ShiftRepository,
	employeeShift attendance.EmployeeShiftRepository,
	employeeRepo employee.EmployeeRepository,
	timesheetService timesheet.TimesheetService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo:   attendanceRepo,
		shiftRepo:        shiftRepo,
		employeeShift:    employeeShift,
		employeeRepo:     employeeRepo,
		timesheetService: timesheetService,
	}
}

// normalizeClock pads "HH:MM" inputs to "HH:MM:SS".
func normalizeClock(t *string) *string {
	if t == nil {
		return nil
	}
	if parsed, err := time.Parse("15:04", *t); err == nil {
		s := parsed.Format("15:04:05")
		return &s
	}
	return t
}

// workedHours computes the span between the clock times, rolling an end at
// or before the start over to the next day. Returns fallback when either
// clock is missing.
func workedHours(clockIn, clockOut *string, fallback float64) float64 {
	if clockIn == nil || clockOut == nil {
		return fallback
	}
	st, err1 := time.Parse("15:04:05", *clockIn)
	en, err2 := time.Parse("15:04:05", *clockOut)
	if err1 != nil || err2 != nil {
		return fallback
	}
	span := en.Sub(st)
	if span <= 0 {
		span += 24 * time.Hour
	}
	return math.Round(span.Hours()*100) / 100
}

func (s *AttendanceServiceImpl) buildAttendance(req attendance.UpsertAttendanceRequest) attendance.Attendance {
	date, _ := validator.IsValidDate(req.Date)
	clockIn := normalizeClock(req.ClockInTime)
	clockOut := normalizeClock(req.ClockOutTime)

	status := req.Status
	if status == "" {
		status = attendance.StatusPresent
	}

	return attendance.Attendance{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		Date:         date,
		ClockInTime:  clockIn,
		ClockOutTime: clockOut,
		WorkingHours: workedHours(clockIn, clockOut, req.WorkingHours),
		Status:       status,
		Notes:        req.Notes,
	}
}

// deriveTimesheet recomputes the day's timesheet after an attendance write.
// Derivation failures are logged rather than surfaced: the attendance write
// already happened.
func (s *AttendanceServiceImpl) deriveTimesheet(ctx context.Context, att attendance.Attendance) {
	if _, err := s.timesheetService.DeriveFromAttendance(ctx, att, timesheet.SourceAttendance); err != nil {
		slog.Error("Failed to derive timesheet from attendance", "employee_id", att.EmployeeID, "date", att.Date.Format("2006-01-02"), "error", err)
	}
}

func (s *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.UpsertAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att := s.buildAttendance(req)
	att.ID = uuid.New().String()

	created, err := s.attendanceRepo.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	s.deriveTimesheet(ctx, created)

	return attendance.ToAttendanceResponse(created), nil
}

func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToAttendanceResponse(att), nil
}

func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	rows, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(rows))
	for _, att := range rows {
		responses = append(responses, attendance.ToAttendanceResponse(att))
	}
	return responses, total, nil
}

func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpsertAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	existing, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att := s.buildAttendance(req)
	att.ID = existing.ID
	att.CreatedAt = existing.CreatedAt

	if err := s.attendanceRepo.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	s.deriveTimesheet(ctx, att)

	return attendance.ToAttendanceResponse(att), nil
}

func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

func (s *AttendanceServiceImpl) CreateShift(ctx context.Context, req attendance.UpsertShiftRequest) (attendance.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ShiftResponse{}, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	shift := attendance.Shift{
		ID:                   uuid.New().String(),
		Name:                 req.Name,
		StartTime:            *normalizeClock(&req.StartTime),
		EndTime:              *normalizeClock(&req.EndTime),
		BreakDurationMinutes: req.BreakDurationMinutes,
		Description:          req.Description,
		IsActive:             isActive,
	}

	created, err := s.shiftRepo.Create(ctx, shift)
	if err != nil {
		return attendance.ShiftResponse{}, err
	}
	return attendance.ToShiftResponse(created), nil
}

func (s *AttendanceServiceImpl) GetShift(ctx context.Context, id string) (attendance.ShiftResponse, error) {
	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.ShiftResponse{}, err
	}
	return attendance.ToShiftResponse(shift), nil
}

func (s *AttendanceServiceImpl) ListShifts(ctx context.Context, activeOnly bool) ([]attendance.ShiftResponse, error) {
	shifts, err := s.shiftRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.ShiftResponse, 0, len(shifts))
	for _, shift := range shifts {
		responses = append(responses, attendance.ToShiftResponse(shift))
	}
	return responses, nil
}

func (s *AttendanceServiceImpl) UpdateShift(ctx context.Context, req attendance.UpsertShiftRequest) (attendance.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ShiftResponse{}, err
	}

	existing, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.ShiftResponse{}, err
	}

	existing.Name = req.Name
	existing.StartTime = *normalizeClock(&req.StartTime)
	existing.EndTime = *normalizeClock(&req.EndTime)
	existing.BreakDurationMinutes = req.BreakDurationMinutes
	existing.Description = req.Description
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.shiftRepo.Update(ctx, existing); err != nil {
		return attendance.ShiftResponse{}, err
	}
	return attendance.ToShiftResponse(existing), nil
}

func (s *AttendanceServiceImpl) DeleteShift(ctx context.Context, id string) error {
	return s.shiftRepo.Delete(ctx, id)
}

func (s *AttendanceServiceImpl) AssignShift(ctx context.Context, req attendance.UpsertEmployeeShiftRequest) (attendance.EmployeeShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EmployeeShiftResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.EmployeeShiftResponse{}, err
	}
	if _, err := s.shiftRepo.GetByID(ctx, req.ShiftID); err != nil {
		return attendance.EmployeeShiftResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	assignment := attendance.EmployeeShift{
		ID:         uuid.New().String(),
		EmployeeID: req.EmployeeID,
		ShiftID:    req.ShiftID,
		StartDate:  startDate,
		IsActive:   true,
	}
	if req.EndDate != nil {
		end, _ := validator.IsValidDate(*req.EndDate)
		assignment.EndDate = &end
	}
	if req.IsActive != nil {
		assignment.IsActive = *req.IsActive
	}

	created, err := s.employeeShift.Create(ctx, assignment)
	if err != nil {
		return attendance.EmployeeShiftResponse{}, err
	}
	return attendance.ToEmployeeShiftResponse(created), nil
}

func (s *AttendanceServiceImpl) ListEmployeeShifts(ctx context.Context, employeeID *string) ([]attendance.EmployeeShiftResponse, error) {
	assignments, err := s.employeeShift.List(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.EmployeeShiftResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, attendance.ToEmployeeShiftResponse(a))
	}
	return responses, nil
}

func (s *AttendanceServiceImpl) UpdateEmployeeShift(ctx context.Context, req attendance.UpsertEmployeeShiftRequest) (attendance.EmployeeShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EmployeeShiftResponse{}, err
	}

	existing, err := s.employeeShift.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.EmployeeShiftResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	existing.EmployeeID = req.EmployeeID
	existing.ShiftID = req.ShiftID
	existing.StartDate = startDate
	existing.EndDate = nil
	if req.EndDate != nil {
		end, _ := validator.IsValidDate(*req.EndDate)
		existing.EndDate = &end
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.employeeShift.Update(ctx, existing); err != nil {
		return attendance.EmployeeShiftResponse{}, err
	}
	return attendance.ToEmployeeShiftResponse(existing), nil
}

func (s *AttendanceServiceImpl) DeleteEmployeeShift(ctx context.Context, id string) error {
	return s.employeeShift.Delete(ctx, id)
}
