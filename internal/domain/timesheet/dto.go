package timesheet

import (
	"time"

	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/validator"
)

type TimesheetFilter struct {
	EmployeeID *string
	Status     *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
}

type OvertimeFilter struct {
	EmployeeID *string
	Status     *string
	Page       int
	Limit      int
}

type TimesheetResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	Date          string  `json:"date"`
	ClockInTime   *string `json:"clock_in_time,omitempty"`
	ClockOutTime  *string `json:"clock_out_time,omitempty"`
	WorkingHours  float64 `json:"working_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	Status        string  `json:"status"`
	Source        string  `json:"source"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func ToTimesheetResponse(t Timesheet) TimesheetResponse {
	return TimesheetResponse{
		ID:            t.ID,
		EmployeeID:    t.EmployeeID,
		EmployeeName:  t.EmployeeName,
		Date:          t.Date.Format("2006-01-02"),
		ClockInTime:   t.ClockInTime,
		ClockOutTime:  t.ClockOutTime,
		WorkingHours:  t.WorkingHours,
		OvertimeHours: t.OvertimeHours,
		Status:        t.Status,
		Source:        t.Source,
		Notes:         t.Notes,
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     t.UpdatedAt.Format(time.RFC3339),
	}
}

type CreateOvertimeRequest struct {
	EmployeeID  string  `json:"employee_id"`
	TimesheetID *string `json:"timesheet_id"`
	Date        string  `json:"date"`
	Hours       float64 `json:"hours"`
	Reason      *string `json:"reason"`
}

func (r CreateOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if r.Hours <= 0 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectOvertimeRequest struct {
	ID    string  `json:"-"`
	Notes *string `json:"notes"`
}

type OvertimeResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	TimesheetID  *string `json:"timesheet_id,omitempty"`
	Date         string  `json:"date"`
	Hours        float64 `json:"hours"`
	Reason       *string `json:"reason,omitempty"`
	Status       string  `json:"status"`
	ApprovedByID *string `json:"approved_by_id,omitempty"`
	ApprovedAt   *string `json:"approved_at,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func ToOvertimeResponse(o OvertimeRequest) OvertimeResponse {
	resp := OvertimeResponse{
		ID:           o.ID,
		EmployeeID:   o.EmployeeID,
		EmployeeName: o.EmployeeName,
		TimesheetID:  o.TimesheetID,
		Date:         o.Date.Format("2006-01-02"),
		Hours:        o.Hours,
		Reason:       o.Reason,
		Status:       o.Status,
		ApprovedByID: o.ApprovedByID,
		Notes:        o.Notes,
		CreatedAt:    o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    o.UpdatedAt.Format(time.RFC3339),
	}
	if o.ApprovedAt != nil {
		at := o.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &at
	}
	return resp
}
