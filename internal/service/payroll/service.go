package payroll

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/nimbus-hr/hrms-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/payroll"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/validator"
)

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
}

func NewPayrollService(payrollRepo payroll.PayrollRepository, employeeRepo employee.EmployeeRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func buildPayroll(req payroll.UpsertPayrollRequest) payroll.Payroll {
	start, _ := validator.IsValidDate(req.PayPeriodStart)
	end, _ := validator.IsValidDate(req.PayPeriodEnd)

	p := payroll.Payroll{
		ID:             req.ID,
		EmployeeID:     req.EmployeeID,
		PayPeriodStart: start,
		PayPeriodEnd:   end,
		BasicSalary:    req.BasicSalary,
		Allowances:     req.Allowances,
		Bonus:          req.Bonus,
		OvertimePay:    req.OvertimePay,
		Deductions:     req.Deductions,
		Tax:            req.Tax,
		Insurance:      req.Insurance,
		Status:         req.Status,
		Notes:          req.Notes,
	}
	if p.Status == "" {
		p.Status = payroll.StatusPending
	}
	if req.PaymentDate != nil {
		d, _ := validator.IsValidDate(*req.PaymentDate)
		p.PaymentDate = &d
	}
	// Net pay is always recomputed server-side.
	p.NetPay = round2(p.NetPayAmount())
	return p
}

func (s *PayrollServiceImpl) CreatePayroll(ctx context.Context, req payroll.UpsertPayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.PayrollResponse{}, err
	}

	p := buildPayroll(req)
	p.ID = uuid.New().String()

	created, err := s.payrollRepo.Create(ctx, p)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return payroll.ToPayrollResponse(created), nil
}

func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return payroll.ToPayrollResponse(p), nil
}

func (s *PayrollServiceImpl) ListPayrolls(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollResponse, int64, error) {
	rows, total, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(rows))
	for _, p := range rows {
		responses = append(responses, payroll.ToPayrollResponse(p))
	}
	return responses, total, nil
}

func (s *PayrollServiceImpl) UpdatePayroll(ctx context.Context, req payroll.UpsertPayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	existing, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	p := buildPayroll(req)
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt

	if err := s.payrollRepo.Update(ctx, p); err != nil {
		return payroll.PayrollResponse{}, err
	}
	return payroll.ToPayrollResponse(p), nil
}

func (s *PayrollServiceImpl) DeletePayroll(ctx context.Context, id string) error {
	return s.payrollRepo.Delete(ctx, id)
}

// GetPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	gross := round2(p.BasicSalary + p.Allowances + p.Bonus + p.OvertimePay)
	deductions := round2(p.Deductions + p.Tax + p.Insurance)

	return payroll.PayslipResponse{
		Payroll:         payroll.ToPayrollResponse(p),
		GrossPay:        gross,
		TotalDeductions: deductions,
		GeneratedAt:     time.Now().Format(time.RFC3339),
	}, nil
}
