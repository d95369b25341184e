package payroll

import "context"

// PayrollService defines payroll run management and payslip computation.
type PayrollService interface {
	CreatePayroll(ctx context.Context, req UpsertPayrollRequest) (PayrollResponse, error)
	GetPayroll(ctx context.Context, id string) (PayrollResponse, error)
	ListPayrolls(ctx context.Context, filter PayrollFilter) ([]PayrollResponse, int64, error)
	UpdatePayroll(ctx context.Context, req UpsertPayrollRequest) (PayrollResponse, error)
	DeletePayroll(ctx context.Context, id string) error

	GetPayslip(ctx context.Context, id string) (PayslipResponse, error)
}
