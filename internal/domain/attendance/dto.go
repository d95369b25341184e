package attendance

import (
	"time"

	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/validator"
)

type AttendanceFilter struct {
	EmployeeID *string
	Status     *string
	Date       *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
}

func (f AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors
	for field, value := range map[string]*string{"date": f.Date, "start_date": f.StartDate, "end_date": f.EndDate} {
		if value == nil {
			continue
		}
		if _, ok := validator.IsValidDate(*value); !ok {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be YYYY-MM-DD"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpsertAttendanceRequest struct {
	ID           string  `json:"-"`
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	ClockInTime  *string `json:"clock_in_time"`
	ClockOutTime *string `json:"clock_out_time"`
	WorkingHours float64 `json:"working_hours"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes"`
}

func (r UpsertAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if r.ClockInTime != nil && !validator.IsValidTimeOfDay(*r.ClockInTime) {
		errs = append(errs, validator.ValidationError{Field: "clock_in_time", Message: "must be HH:MM or HH:MM:SS"})
	}
	if r.ClockOutTime != nil && !validator.IsValidTimeOfDay(*r.ClockOutTime) {
		errs = append(errs, validator.ValidationError{Field: "clock_out_time", Message: "must be HH:MM or HH:MM:SS"})
	}
	if r.WorkingHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "working_hours", Message: "must not be negative"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, []string{StatusPresent, StatusAbsent, StatusLeave, StatusHalfDay}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	ClockInTime  *string `json:"clock_in_time,omitempty"`
	ClockOutTime *string `json:"clock_out_time,omitempty"`
	WorkingHours float64 `json:"working_hours"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func ToAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date.Format("2006-01-02"),
		ClockInTime:  a.ClockInTime,
		ClockOutTime: a.ClockOutTime,
		WorkingHours: a.WorkingHours,
		Status:       a.Status,
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    a.UpdatedAt.Format(time.RFC3339),
	}
}

type UpsertShiftRequest struct {
	ID                   string  `json:"-"`
	Name                 string  `json:"name"`
	StartTime            string  `json:"start_time"`
	EndTime              string  `json:"end_time"`
	BreakDurationMinutes int     `json:"break_duration_minutes"`
	Description          *string `json:"description"`
	IsActive             *bool   `json:"is_active"`
}

func (r UpsertShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidTimeOfDay(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:MM or HH:MM:SS"})
	}
	if !validator.IsValidTimeOfDay(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:MM or HH:MM:SS"})
	}
	if r.BreakDurationMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "break_duration_minutes", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	StartTime            string  `json:"start_time"`
	EndTime              string  `json:"end_time"`
	BreakDurationMinutes int     `json:"break_duration_minutes"`
	Description          *string `json:"description,omitempty"`
	IsActive             bool    `json:"is_active"`
	CreatedAt            string  `json:"created_at"`
	UpdatedAt            string  `json:"updated_at"`
}

func ToShiftResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:                   s.ID,
		Name:                 s.Name,
		StartTime:            s.StartTime,
		EndTime:              s.EndTime,
		BreakDurationMinutes: s.BreakDurationMinutes,
		Description:          s.Description,
		IsActive:             s.IsActive,
		CreatedAt:            s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            s.UpdatedAt.Format(time.RFC3339),
	}
}

type UpsertEmployeeShiftRequest struct {
	ID         string  `json:"-"`
	EmployeeID string  `json:"employee_id"`
	ShiftID    string  `json:"shift_id"`
	StartDate  string  `json:"start_date"`
	EndDate    *string `json:"end_date"`
	IsActive   *bool   `json:"is_active"`
}

func (r UpsertEmployeeShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{Field: "shift_id", Message: "shift_id is required"})
	}
	start, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	if r.EndDate != nil {
		end, endOK := validator.IsValidDate(*r.EndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
		} else if ok && end.Before(start) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeShiftResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	ShiftID      string  `json:"shift_id"`
	ShiftName    *string `json:"shift_name,omitempty"`
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date,omitempty"`
	IsActive     bool    `json:"is_active"`
	CreatedAt    string  `json:"created_at"`
}

func ToEmployeeShiftResponse(a EmployeeShift) EmployeeShiftResponse {
	resp := EmployeeShiftResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		ShiftID:      a.ShiftID,
		ShiftName:    a.ShiftName,
		StartDate:    a.StartDate.Format("2006-01-02"),
		IsActive:     a.IsActive,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
	}
	if a.EndDate != nil {
		end := a.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}
