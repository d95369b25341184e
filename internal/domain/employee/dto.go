package employee

import (
	"time"

	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/validator"
)

type EmployeeFilter struct {
	DepartmentID *string
	Status       *string
	Role         *string
	Search       *string
	Page         int
	Limit        int
}

type CreateEmployeeRequest struct {
	EmployeeCode          string   `json:"employee_code"`
	FirstName             string   `json:"first_name"`
	LastName              string   `json:"last_name"`
	Email                 string   `json:"email"`
	PhoneNumber           *string  `json:"phone_number"`
	DateOfBirth           *string  `json:"date_of_birth"`
	HireDate              string   `json:"hire_date"`
	DepartmentID          *string  `json:"department_id"`
	Designation           string   `json:"designation"`
	Role                  string   `json:"role"`
	Salary                float64  `json:"salary"`
	Status                string   `json:"status"`
	ManagerIDs            []string `json:"manager_ids"`
	TeamLeadID            *string  `json:"team_lead_id"`
	Address               *string  `json:"address"`
	EmergencyContactName  *string  `json:"emergency_contact_name"`
	EmergencyContactPhone *string  `json:"emergency_contact_phone"`
	BankAccountNumber     *string  `json:"bank_account_number"`
	BankName              *string  `json:"bank_name"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "valid email is required"})
	}
	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "invalid employee code"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire date must be YYYY-MM-DD"})
	}
	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "date of birth must be YYYY-MM-DD"})
		}
	}
	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{Field: "designation", Message: "designation is required"})
	}
	if r.Salary < 0 {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, []string{StatusActive, StatusInactive, StatusOnLeave, StatusTerminated}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID string `json:"-"`
	CreateEmployeeRequest
}

type EmployeeResponse struct {
	ID             string   `json:"id"`
	EmployeeCode   string   `json:"employee_code"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	FullName       string   `json:"full_name"`
	Email          string   `json:"email"`
	PhoneNumber    *string  `json:"phone_number,omitempty"`
	DateOfBirth    *string  `json:"date_of_birth,omitempty"`
	HireDate       string   `json:"hire_date"`
	DepartmentID   *string  `json:"department_id,omitempty"`
	DepartmentName *string  `json:"department_name,omitempty"`
	Designation    string   `json:"designation"`
	Role           string   `json:"role"`
	Portal         string   `json:"portal,omitempty"`
	Salary         *float64 `json:"salary,omitempty"`
	Status         string   `json:"status"`
	ManagerIDs     []string `json:"manager_ids,omitempty"`
	TeamLeadID     *string  `json:"team_lead_id,omitempty"`
	Address        *string  `json:"address,omitempty"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             e.ID,
		EmployeeCode:   e.EmployeeCode,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		FullName:       e.FullName(),
		Email:          e.Email,
		PhoneNumber:    e.PhoneNumber,
		HireDate:       e.HireDate.Format("2006-01-02"),
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		Designation:    e.Designation,
		Role:           e.Role,
		Status:         e.Status,
		ManagerIDs:     e.ManagerIDs,
		TeamLeadID:     e.TeamLeadID,
		Address:        e.Address,
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      e.UpdatedAt.Format(time.RFC3339),
	}
	if e.DateOfBirth != nil {
		dob := e.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &dob
	}
	salary := e.Salary
	resp.Salary = &salary
	return resp
}

type CreateDepartmentRequest struct {
	Name        string  `json:"name"`
	ManagerID   *string `json:"manager_id"`
	Description *string `json:"description"`
}

func (r CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDepartmentRequest struct {
	ID string `json:"-"`
	CreateDepartmentRequest
}

type DepartmentResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	ManagerID     *string `json:"manager_id,omitempty"`
	ManagerName   *string `json:"manager_name,omitempty"`
	Description   *string `json:"description,omitempty"`
	EmployeeCount int     `json:"employee_count"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func ToDepartmentResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:            d.ID,
		Name:          d.Name,
		ManagerID:     d.ManagerID,
		ManagerName:   d.ManagerName,
		Description:   d.Description,
		EmployeeCount: d.EmployeeCount,
		CreatedAt:     d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     d.UpdatedAt.Format(time.RFC3339),
	}
}
