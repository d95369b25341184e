package postgresql

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) attendance.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// Create implements attendance.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, shift attendance.Shift) (attendance.Shift, error) {
	q := GetQuerier(ctx, r.db)

	if shift.ID == "" {
		shift.ID = uuid.New().String()
	}

	query := `
		INSERT INTO shifts (
			id, name, start_time, end_time, break_duration_minutes,
			description, is_active, created_at, updated_at
		) VALUES ($1, $2, $3::time, $4::time, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		shift.ID, shift.Name, shift.StartTime, shift.EndTime,
		shift.BreakDurationMinutes, shift.Description, shift.IsActive,
	).Scan(&shift.CreatedAt, &shift.UpdatedAt)
	if err != nil {
		return attendance.Shift{}, err
	}
	return shift, nil
}

// GetByID implements attendance.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Shift, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name,
			   to_char(start_time, 'HH24:MI:SS'), to_char(end_time, 'HH24:MI:SS'),
			   break_duration_minutes, description, is_active, created_at, updated_at
		FROM shifts
		WHERE id = $1
	`
	var shift attendance.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&shift.ID, &shift.Name, &shift.StartTime, &shift.EndTime,
		&shift.BreakDurationMinutes, &shift.Description, &shift.IsActive,
		&shift.CreatedAt, &shift.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Shift{}, attendance.ErrShiftNotFound
		}
		return attendance.Shift{}, err
	}
	return shift, nil
}

// List implements attendance.ShiftRepository.
func (r *shiftRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]attendance.Shift, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name,
			   to_char(start_time, 'HH24:MI:SS'), to_char(end_time, 'HH24:MI:SS'),
			   break_duration_minutes, description, is_active, created_at, updated_at
		FROM shifts
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []attendance.Shift
	for rows.Next() {
		var shift attendance.Shift
		err := rows.Scan(
			&shift.ID, &shift.Name, &shift.StartTime, &shift.EndTime,
			&shift.BreakDurationMinutes, &shift.Description, &shift.IsActive,
			&shift.CreatedAt, &shift.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}
	return shifts, rows.Err()
}

// Update implements attendance.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, shift attendance.Shift) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE shifts
		SET name = $2, start_time = $3::time, end_time = $4::time,
			break_duration_minutes = $5, description = $6, is_active = $7,
			updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		shift.ID, shift.Name, shift.StartTime, shift.EndTime,
		shift.BreakDurationMinutes, shift.Description, shift.IsActive,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrShiftNotFound
	}
	return nil
}

// Delete implements attendance.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrShiftNotFound
	}
	return nil
}

type employeeShiftRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeShiftRepository(db *database.DB) attendance.EmployeeShiftRepository {
	return &employeeShiftRepositoryImpl{db: db}
}

const employeeShiftColumns = `
	es.id, es.employee_id, es.shift_id, es.start_date, es.end_date, es.is_active, es.created_at,
	e.first_name || ' ' || e.last_name AS employee_name,
	s.name AS shift_name,
	s.id, s.name, to_char(s.start_time, 'HH24:MI:SS'), to_char(s.end_time, 'HH24:MI:SS'),
	s.break_duration_minutes, s.description, s.is_active, s.created_at, s.updated_at`

// Create implements attendance.EmployeeShiftRepository.
func (r *employeeShiftRepositoryImpl) Create(ctx context.Context, assignment attendance.EmployeeShift) (attendance.EmployeeShift, error) {
	q := GetQuerier(ctx, r.db)

	if assignment.ID == "" {
		assignment.ID = uuid.New().String()
	}

	query := `
		INSERT INTO employee_shifts (id, employee_id, shift_id, start_date, end_date, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`
	err := q.QueryRow(ctx, query,
		assignment.ID, assignment.EmployeeID, assignment.ShiftID,
		assignment.StartDate, assignment.EndDate, assignment.IsActive,
	).Scan(&assignment.CreatedAt)
	if err != nil {
		return attendance.EmployeeShift{}, err
	}
	return assignment, nil
}

// GetByID implements attendance.EmployeeShiftRepository.
func (r *employeeShiftRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.EmployeeShift, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + employeeShiftColumns + `
		FROM employee_shifts es
		JOIN employees e ON e.id = es.employee_id
		JOIN shifts s ON s.id = es.shift_id
		WHERE es.id = $1
	`
	assignment, err := scanEmployeeShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.EmployeeShift{}, attendance.ErrEmployeeShiftNotFound
		}
		return attendance.EmployeeShift{}, err
	}
	return assignment, nil
}

// List implements attendance.EmployeeShiftRepository.
func (r *employeeShiftRepositoryImpl) List(ctx context.Context, employeeID *string) ([]attendance.EmployeeShift, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + employeeShiftColumns + `
		FROM employee_shifts es
		JOIN employees e ON e.id = es.employee_id
		JOIN shifts s ON s.id = es.shift_id
	`
	args := []any{}
	if employeeID != nil {
		query += ` WHERE es.employee_id = $1`
		args = append(args, *employeeID)
	}
	query += ` ORDER BY es.start_date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []attendance.EmployeeShift
	for rows.Next() {
		assignment, err := scanEmployeeShift(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}
	return assignments, rows.Err()
}

// Update implements attendance.EmployeeShiftRepository.
func (r *employeeShiftRepositoryImpl) Update(ctx context.Context, assignment attendance.EmployeeShift) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE employee_shifts
		SET shift_id = $2, start_date = $3, end_date = $4, is_active = $5
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		assignment.ID, assignment.ShiftID, assignment.StartDate,
		assignment.EndDate, assignment.IsActive,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrEmployeeShiftNotFound
	}
	return nil
}

// Delete implements attendance.EmployeeShiftRepository.
func (r *employeeShiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM employee_shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrEmployeeShiftNotFound
	}
	return nil
}

// GetActiveForDate implements attendance.EmployeeShiftRepository.
func (r *employeeShiftRepositoryImpl) GetActiveForDate(ctx context.Context, employeeID string, date time.Time) (*attendance.EmployeeShift, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + employeeShiftColumns + `
		FROM employee_shifts es
		JOIN employees e ON e.id = es.employee_id
		JOIN shifts s ON s.id = es.shift_id
		WHERE es.employee_id = $1
		  AND es.is_active = TRUE
		  AND es.start_date <= $2
		  AND (es.end_date IS NULL OR es.end_date >= $2)
		ORDER BY es.start_date DESC
		LIMIT 1
	`
	assignment, err := scanEmployeeShift(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

func scanEmployeeShift(row rowScanner) (attendance.EmployeeShift, error) {
	var assignment attendance.EmployeeShift
	var shift attendance.Shift

	err := row.Scan(
		&assignment.ID, &assignment.EmployeeID, &assignment.ShiftID,
		&assignment.StartDate, &assignment.EndDate, &assignment.IsActive, &assignment.CreatedAt,
		&assignment.EmployeeName, &assignment.ShiftName,
		&shift.ID, &shift.Name, &shift.StartTime, &shift.EndTime,
		&shift.BreakDurationMinutes, &shift.Description, &shift.IsActive,
		&shift.CreatedAt, &shift.UpdatedAt,
	)
	if err != nil {
		return attendance.EmployeeShift{}, err
	}

	assignment.Shift = &shift
	return assignment, nil
}
