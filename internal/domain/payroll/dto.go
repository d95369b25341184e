package payroll

import (
	"time"

	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/validator"
)

type PayrollFilter struct {
	EmployeeID *string
	Status     *string
	Page       int
	Limit      int
}

type UpsertPayrollRequest struct {
	ID             string  `json:"-"`
	EmployeeID     string  `json:"employee_id"`
	PayPeriodStart string  `json:"pay_period_start"`
	PayPeriodEnd   string  `json:"pay_period_end"`
	BasicSalary    float64 `json:"basic_salary"`
	Allowances     float64 `json:"allowances"`
	Bonus          float64 `json:"bonus"`
	OvertimePay    float64 `json:"overtime_pay"`
	Deductions     float64 `json:"deductions"`
	Tax            float64 `json:"tax"`
	Insurance      float64 `json:"insurance"`
	Status         string  `json:"status"`
	PaymentDate    *string `json:"payment_date"`
	Notes          *string `json:"notes"`
}

func (r UpsertPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	start, startOK := validator.IsValidDate(r.PayPeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "pay_period_start", Message: "must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.PayPeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must be YYYY-MM-DD"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must not be before pay_period_start"})
	}
	if r.BasicSalary < 0 {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must not be negative"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, []string{StatusPending, StatusPaid, StatusUnpaid}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid status"})
	}
	if r.PaymentDate != nil {
		if _, ok := validator.IsValidDate(*r.PaymentDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	PayPeriodStart string  `json:"pay_period_start"`
	PayPeriodEnd   string  `json:"pay_period_end"`
	BasicSalary    float64 `json:"basic_salary"`
	Allowances     float64 `json:"allowances"`
	Bonus          float64 `json:"bonus"`
	OvertimePay    float64 `json:"overtime_pay"`
	Deductions     float64 `json:"deductions"`
	Tax            float64 `json:"tax"`
	Insurance      float64 `json:"insurance"`
	NetPay         float64 `json:"net_pay"`
	Status         string  `json:"status"`
	PaymentDate    *string `json:"payment_date,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func ToPayrollResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:             p.ID,
		EmployeeID:     p.EmployeeID,
		EmployeeName:   p.EmployeeName,
		PayPeriodStart: p.PayPeriodStart.Format("2006-01-02"),
		PayPeriodEnd:   p.PayPeriodEnd.Format("2006-01-02"),
		BasicSalary:    p.BasicSalary,
		Allowances:     p.Allowances,
		Bonus:          p.Bonus,
		OvertimePay:    p.OvertimePay,
		Deductions:     p.Deductions,
		Tax:            p.Tax,
		Insurance:      p.Insurance,
		NetPay:         p.NetPay,
		Status:         p.Status,
		Notes:          p.Notes,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
	if p.PaymentDate != nil {
		d := p.PaymentDate.Format("2006-01-02")
		resp.PaymentDate = &d
	}
	return resp
}

// PayslipResponse is the computed payslip for one payroll row. Rendering to
// PDF happens client-side; the API only serves the figures.
type PayslipResponse struct {
	Payroll         PayrollResponse `json:"payroll"`
	GrossPay        float64         `json:"gross_pay"`
	TotalDeductions float64         `json:"total_deductions"`
	GeneratedAt     string          `json:"generated_at"`
}
