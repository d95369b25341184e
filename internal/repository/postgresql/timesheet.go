package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/timesheet"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/database"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

const timesheetColumns = `
	t.id, t.employee_id, t.date,
	to_char(t.clock_in_time, 'HH24:MI:SS') AS clock_in_time,
	to_char(t.clock_out_time, 'HH24:MI:SS') AS clock_out_time,
	t.working_hours, t.overtime_hours, t.status, t.source, t.notes,
	t.created_at, t.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name`

// GetByID implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.id = $1
	`
	ts, err := scanTimesheet(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, err
	}
	return ts, nil
}

// GetByEmployeeAndDate implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.employee_id = $1 AND t.date = $2
	`
	ts, err := scanTimesheet(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &ts, nil
}

// List implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) List(ctx context.Context, filter timesheet.TimesheetFilter) ([]timesheet.Timesheet, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("t.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("t.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("t.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("t.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM timesheets t WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets t
		JOIN employees e ON e.id = t.employee_id
		WHERE ` + where + `
		ORDER BY t.date DESC, e.last_name
	`
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var timesheets []timesheet.Timesheet
	for rows.Next() {
		ts, err := scanTimesheet(rows)
		if err != nil {
			return nil, 0, err
		}
		timesheets = append(timesheets, ts)
	}
	return timesheets, total, rows.Err()
}

// Create implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Create(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	if ts.ID == "" {
		ts.ID = uuid.New().String()
	}

	// The (employee_id, date) key makes concurrent derivations race on the
	// insert. ON CONFLICT resolves the race atomically, last writer wins.
	query := `
		INSERT INTO timesheets (
			id, employee_id, date, clock_in_time, clock_out_time,
			working_hours, overtime_hours, status, source, notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4::time, $5::time, $6, $7, $8, $9, $10, NOW(), NOW())
		ON CONFLICT (employee_id, date) DO UPDATE
		SET clock_in_time = EXCLUDED.clock_in_time,
			clock_out_time = EXCLUDED.clock_out_time,
			working_hours = EXCLUDED.working_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			source = EXCLUDED.source,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, status, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		ts.ID, ts.EmployeeID, ts.Date, ts.ClockInTime, ts.ClockOutTime,
		ts.WorkingHours, ts.OvertimeHours, ts.Status, ts.Source, ts.Notes,
	).Scan(&ts.ID, &ts.Status, &ts.CreatedAt, &ts.UpdatedAt)
	if err != nil {
		return timesheet.Timesheet{}, err
	}
	return ts, nil
}

// Update implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Update(ctx context.Context, ts timesheet.Timesheet) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE timesheets
		SET clock_in_time = $2::time, clock_out_time = $3::time,
			working_hours = $4, overtime_hours = $5, status = $6,
			source = $7, notes = $8, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		ts.ID, ts.ClockInTime, ts.ClockOutTime,
		ts.WorkingHours, ts.OvertimeHours, ts.Status, ts.Source, ts.Notes,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrTimesheetNotFound
	}
	return nil
}

// UpdateStatus implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) UpdateStatus(ctx context.Context, id string, status string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx,
		`UPDATE timesheets SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrTimesheetNotFound
	}
	return nil
}

// Delete implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM timesheets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrTimesheetNotFound
	}
	return nil
}

func scanTimesheet(row rowScanner) (timesheet.Timesheet, error) {
	var ts timesheet.Timesheet
	err := row.Scan(
		&ts.ID, &ts.EmployeeID, &ts.Date,
		&ts.ClockInTime, &ts.ClockOutTime,
		&ts.WorkingHours, &ts.OvertimeHours, &ts.Status, &ts.Source, &ts.Notes,
		&ts.CreatedAt, &ts.UpdatedAt, &ts.EmployeeName,
	)
	if err != nil {
		return timesheet.Timesheet{}, err
	}
	return ts, nil
}

type overtimeRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) timesheet.OvertimeRepository {
	return &overtimeRepositoryImpl{db: db}
}

const overtimeColumns = `
	o.id, o.employee_id, o.timesheet_id, o.date, o.hours, o.reason,
	o.status, o.approved_by_id, o.approved_at, o.notes, o.created_at, o.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name`

// Create implements timesheet.OvertimeRepository.
func (r *overtimeRepositoryImpl) Create(ctx context.Context, req timesheet.OvertimeRequest) (timesheet.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	query := `
		INSERT INTO overtime_requests (
			id, employee_id, timesheet_id, date, hours, reason, status, notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.TimesheetID, req.Date,
		req.Hours, req.Reason, req.Status, req.Notes,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return timesheet.OvertimeRequest{}, err
	}
	return req, nil
}

// GetByID implements timesheet.OvertimeRepository.
func (r *overtimeRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests o
		JOIN employees e ON e.id = o.employee_id
		WHERE o.id = $1
	`
	req, err := scanOvertime(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.OvertimeRequest{}, timesheet.ErrOvertimeRequestNotFound
		}
		return timesheet.OvertimeRequest{}, err
	}
	return req, nil
}

// List implements timesheet.OvertimeRepository.
func (r *overtimeRepositoryImpl) List(ctx context.Context, filter timesheet.OvertimeFilter) ([]timesheet.OvertimeRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("o.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("o.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM overtime_requests o WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests o
		JOIN employees e ON e.id = o.employee_id
		WHERE ` + where + `
		ORDER BY o.date DESC
	`
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []timesheet.OvertimeRequest
	for rows.Next() {
		req, err := scanOvertime(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}
	return requests, total, rows.Err()
}

// Update implements timesheet.OvertimeRepository.
func (r *overtimeRepositoryImpl) Update(ctx context.Context, req timesheet.OvertimeRequest) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE overtime_requests
		SET timesheet_id = $2, date = $3, hours = $4, reason = $5,
			status = $6, approved_by_id = $7, approved_at = $8, notes = $9,
			updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		req.ID, req.TimesheetID, req.Date, req.Hours, req.Reason,
		req.Status, req.ApprovedByID, req.ApprovedAt, req.Notes,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrOvertimeRequestNotFound
	}
	return nil
}

// Delete implements timesheet.OvertimeRepository.
func (r *overtimeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM overtime_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrOvertimeRequestNotFound
	}
	return nil
}

func scanOvertime(row rowScanner) (timesheet.OvertimeRequest, error) {
	var req timesheet.OvertimeRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.TimesheetID, &req.Date, &req.Hours, &req.Reason,
		&req.Status, &req.ApprovedByID, &req.ApprovedAt, &req.Notes,
		&req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
	)
	if err != nil {
		return timesheet.OvertimeRequest{}, err
	}
	return req, nil
}
