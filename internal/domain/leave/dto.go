package leave

import (
	"time"

	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/validator"
)

var leaveTypes = []string{TypeSick, TypeCasual, TypeAnnual, TypeMaternity, TypePaternity, TypeUnpaid, TypeOther}

type LeaveRequestFilter struct {
	EmployeeID *string
	Status     *string
	LeaveType  *string
	Page       int
	Limit      int
}

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.LeaveType, leaveTypes) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "unknown leave type"})
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectLeaveRequest struct {
	ID              string  `json:"-"`
	RejectionReason *string `json:"rejection_reason"`
}

type LeaveRequestResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	LeaveType       string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	TotalDays       int     `json:"total_days"`
	Status          string  `json:"status"`
	Reason          string  `json:"reason"`
	ApprovedByID    *string `json:"approved_by_id,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

func ToLeaveRequestResponse(l LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:              l.ID,
		EmployeeID:      l.EmployeeID,
		EmployeeName:    l.EmployeeName,
		LeaveType:       l.LeaveType,
		StartDate:       l.StartDate.Format("2006-01-02"),
		EndDate:         l.EndDate.Format("2006-01-02"),
		TotalDays:       l.TotalDays,
		Status:          l.Status,
		Reason:          l.Reason,
		ApprovedByID:    l.ApprovedByID,
		RejectionReason: l.RejectionReason,
		CreatedAt:       l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       l.UpdatedAt.Format(time.RFC3339),
	}
}

type UpsertLeaveBalanceRequest struct {
	ID         string `json:"-"`
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	Balance    int    `json:"balance"`
	Used       int    `json:"used"`
	Year       int    `json:"year"`
}

func (r UpsertLeaveBalanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsInSlice(r.LeaveType, leaveTypes) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "unknown leave type"})
	}
	if r.Balance < 0 || r.Used < 0 {
		errs = append(errs, validator.ValidationError{Field: "balance", Message: "balance and used must not be negative"})
	}
	if r.Year < 2000 || r.Year > 2200 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveBalanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	LeaveType    string  `json:"leave_type"`
	Balance      int     `json:"balance"`
	Used         int     `json:"used"`
	Available    int     `json:"available"`
	Year         int     `json:"year"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func ToLeaveBalanceResponse(b LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		ID:           b.ID,
		EmployeeID:   b.EmployeeID,
		EmployeeName: b.EmployeeName,
		LeaveType:    b.LeaveType,
		Balance:      b.Balance,
		Used:         b.Used,
		Available:    b.Available(),
		Year:         b.Year,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}
}

type UpsertHolidayRequest struct {
	ID          string  `json:"-"`
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	IsActive    *bool   `json:"is_active"`
	Description *string `json:"description"`
}

func (r UpsertHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	IsActive    bool    `json:"is_active"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

func ToHolidayResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format("2006-01-02"),
		IsActive:    h.IsActive,
		Description: h.Description,
		CreatedAt:   h.CreatedAt.Format(time.RFC3339),
	}
}
