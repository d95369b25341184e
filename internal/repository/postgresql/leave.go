package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/leave"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.total_days,
	l.status, l.reason, l.approved_by_id, l.rejection_reason, l.created_at, l.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name`

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, start_date, end_date, total_days,
			status, reason, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.LeaveType, req.StartDate, req.EndDate,
		req.TotalDays, req.Status, req.Reason,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`
	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return req, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("l.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("l.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.LeaveType != nil {
		conditions = append(conditions, fmt.Sprintf("l.leave_type = $%d", argIdx))
		args = append(args, *filter.LeaveType)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM leave_requests l WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE ` + where + `
		ORDER BY l.created_at DESC
	`
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}
	return requests, total, rows.Err()
}

// Update implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, req leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_requests
		SET leave_type = $2, start_date = $3, end_date = $4, total_days = $5,
			status = $6, reason = $7, approved_by_id = $8, rejection_reason = $9,
			updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		req.ID, req.LeaveType, req.StartDate, req.EndDate, req.TotalDays,
		req.Status, req.Reason, req.ApprovedByID, req.RejectionReason,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

// Delete implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

// HasApprovedLeaveOn implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) HasApprovedLeaveOn(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1 AND status = 'Approved'
			  AND start_date <= $2 AND end_date >= $2
		)
	`
	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func scanLeaveRequest(row rowScanner) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
		&req.TotalDays, &req.Status, &req.Reason, &req.ApprovedByID, &req.RejectionReason,
		&req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return req, nil
}

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

const leaveBalanceColumns = `
	b.id, b.employee_id, b.leave_type, b.balance, b.used, b.year, b.created_at, b.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name`

// Create implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	if balance.ID == "" {
		balance.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leave_balances (id, employee_id, leave_type, balance, used, year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		balance.ID, balance.EmployeeID, balance.LeaveType,
		balance.Balance, balance.Used, balance.Year,
	).Scan(&balance.CreatedAt, &balance.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return leave.LeaveBalance{}, leave.ErrBalanceExists
		}
		return leave.LeaveBalance{}, err
	}
	return balance, nil
}

// GetByID implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + leaveBalanceColumns + `
		FROM leave_balances b
		JOIN employees e ON e.id = b.employee_id
		WHERE b.id = $1
	`
	balance, err := scanLeaveBalance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}
	return balance, nil
}

// GetForEmployee implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetForEmployee(ctx context.Context, employeeID, leaveType string, year int) (*leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + leaveBalanceColumns + `
		FROM leave_balances b
		JOIN employees e ON e.id = b.employee_id
		WHERE b.employee_id = $1 AND b.leave_type = $2 AND b.year = $3
	`
	balance, err := scanLeaveBalance(q.QueryRow(ctx, query, employeeID, leaveType, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &balance, nil
}

// List implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) List(ctx context.Context, employeeID *string, year *int) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if employeeID != nil {
		conditions = append(conditions, fmt.Sprintf("b.employee_id = $%d", argIdx))
		args = append(args, *employeeID)
		argIdx++
	}
	if year != nil {
		conditions = append(conditions, fmt.Sprintf("b.year = $%d", argIdx))
		args = append(args, *year)
		argIdx++
	}

	query := `
		SELECT ` + leaveBalanceColumns + `
		FROM leave_balances b
		JOIN employees e ON e.id = b.employee_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY b.year DESC, b.leave_type
	`
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var balances []leave.LeaveBalance
	for rows.Next() {
		balance, err := scanLeaveBalance(rows)
		if err != nil {
			return nil, err
		}
		balances = append(balances, balance)
	}
	return balances, rows.Err()
}

// Update implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Update(ctx context.Context, balance leave.LeaveBalance) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_balances
		SET balance = $2, used = $3, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, balance.ID, balance.Balance, balance.Used)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}
	return nil
}

// Delete implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM leave_balances WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}
	return nil
}

func scanLeaveBalance(row rowScanner) (leave.LeaveBalance, error) {
	var balance leave.LeaveBalance
	err := row.Scan(
		&balance.ID, &balance.EmployeeID, &balance.LeaveType,
		&balance.Balance, &balance.Used, &balance.Year,
		&balance.CreatedAt, &balance.UpdatedAt, &balance.EmployeeName,
	)
	if err != nil {
		return leave.LeaveBalance{}, err
	}
	return balance, nil
}

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) leave.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements leave.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, holiday leave.Holiday) (leave.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	if holiday.ID == "" {
		holiday.ID = uuid.New().String()
	}

	query := `
		INSERT INTO holidays (id, name, date, is_active, description, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`
	err := q.QueryRow(ctx, query,
		holiday.ID, holiday.Name, holiday.Date, holiday.IsActive, holiday.Description,
	).Scan(&holiday.CreatedAt)
	if err != nil {
		return leave.Holiday{}, err
	}
	return holiday, nil
}

// GetByID implements leave.HolidayRepository.
func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, date, is_active, description, created_at
		FROM holidays
		WHERE id = $1
	`
	var holiday leave.Holiday
	err := q.QueryRow(ctx, query, id).Scan(
		&holiday.ID, &holiday.Name, &holiday.Date,
		&holiday.IsActive, &holiday.Description, &holiday.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Holiday{}, leave.ErrHolidayNotFound
		}
		return leave.Holiday{}, err
	}
	return holiday, nil
}

// List implements leave.HolidayRepository.
func (r *holidayRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]leave.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, date, is_active, description, created_at
		FROM holidays
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY date`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []leave.Holiday
	for rows.Next() {
		var holiday leave.Holiday
		err := rows.Scan(
			&holiday.ID, &holiday.Name, &holiday.Date,
			&holiday.IsActive, &holiday.Description, &holiday.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, holiday)
	}
	return holidays, rows.Err()
}

// Update implements leave.HolidayRepository.
func (r *holidayRepositoryImpl) Update(ctx context.Context, holiday leave.Holiday) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE holidays
		SET name = $2, date = $3, is_active = $4, description = $5
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		holiday.ID, holiday.Name, holiday.Date, holiday.IsActive, holiday.Description,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrHolidayNotFound
	}
	return nil
}

// Delete implements leave.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrHolidayNotFound
	}
	return nil
}

// IsHoliday implements leave.HolidayRepository.
func (r *holidayRepositoryImpl) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT EXISTS (SELECT 1 FROM holidays WHERE date = $1 AND is_active = TRUE)`
	var exists bool
	if err := q.QueryRow(ctx, query, date).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
