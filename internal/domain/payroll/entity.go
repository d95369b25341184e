package payroll

import "time"

// Payroll statuses
const (
	StatusPending = "Pending"
	StatusPaid    = "Paid"
	StatusUnpaid  = "Unpaid"
)

// Payroll is one pay run per employee per period; (employee, period start,
// period end) is unique.
type Payroll struct {
	ID             string
	EmployeeID     string
	PayPeriodStart time.Time
	PayPeriodEnd   time.Time
	BasicSalary    float64
	Allowances     float64
	Bonus          float64
	OvertimePay    float64
	Deductions     float64
	Tax            float64
	Insurance      float64
	NetPay         float64
	Status         string
	PaymentDate    *time.Time
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined for responses
	EmployeeName *string
}

// NetPayAmount is gross pay minus total deductions.
func (p Payroll) NetPayAmount() float64 {
	gross := p.BasicSalary + p.Allowances + p.Bonus + p.OvertimePay
	return gross - (p.Deductions + p.Tax + p.Insurance)
}
