package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/payroll"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `
	p.id, p.employee_id, p.pay_period_start, p.pay_period_end,
	p.basic_salary, p.allowances, p.bonus, p.overtime_pay,
	p.deductions, p.tax, p.insurance, p.net_pay,
	p.status, p.payment_date, p.notes, p.created_at, p.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name`

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payrolls (
			id, employee_id, pay_period_start, pay_period_end,
			basic_salary, allowances, bonus, overtime_pay,
			deductions, tax, insurance, net_pay,
			status, payment_date, notes, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			NOW(), NOW()
		) RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		p.ID, p.EmployeeID, p.PayPeriodStart, p.PayPeriodEnd,
		p.BasicSalary, p.Allowances, p.Bonus, p.OvertimePay,
		p.Deductions, p.Tax, p.Insurance, p.NetPay,
		p.Status, p.PaymentDate, p.Notes,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return payroll.Payroll{}, payroll.ErrPeriodExists
		}
		return payroll.Payroll{}, err
	}
	return p, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`
	p, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, err
	}
	return p, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM payrolls p WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE ` + where + `
		ORDER BY p.pay_period_start DESC, e.last_name
	`
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, 0, err
		}
		payrolls = append(payrolls, p)
	}
	return payrolls, total, rows.Err()
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Update(ctx context.Context, p payroll.Payroll) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE payrolls
		SET basic_salary = $2, allowances = $3, bonus = $4, overtime_pay = $5,
			deductions = $6, tax = $7, insurance = $8, net_pay = $9,
			status = $10, payment_date = $11, notes = $12, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		p.ID, p.BasicSalary, p.Allowances, p.Bonus, p.OvertimePay,
		p.Deductions, p.Tax, p.Insurance, p.NetPay,
		p.Status, p.PaymentDate, p.Notes,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}
	return nil
}

// Delete implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM payrolls WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}
	return nil
}

func scanPayroll(row rowScanner) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.PayPeriodStart, &p.PayPeriodEnd,
		&p.BasicSalary, &p.Allowances, &p.Bonus, &p.OvertimePay,
		&p.Deductions, &p.Tax, &p.Insurance, &p.NetPay,
		&p.Status, &p.PaymentDate, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName,
	)
	if err != nil {
		return payroll.Payroll{}, err
	}
	return p, nil
}
