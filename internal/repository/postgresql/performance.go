package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/performance"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/database"
)

type kpiRepositoryImpl struct {
	db *database.DB
}

func NewKPIRepository(db *database.DB) performance.KPIRepository {
	return &kpiRepositoryImpl{db: db}
}

// Create implements performance.KPIRepository.
func (r *kpiRepositoryImpl) Create(ctx context.Context, kpi performance.KPI) (performance.KPI, error) {
	q := GetQuerier(ctx, r.db)

	if kpi.ID == "" {
		kpi.ID = uuid.New().String()
	}

	query := `
		INSERT INTO kpis (
			id, title, category, weight, description, is_active,
			department_id, related_role, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		kpi.ID, kpi.Title, kpi.Category, kpi.Weight, kpi.Description,
		kpi.IsActive, kpi.DepartmentID, kpi.RelatedRole,
	).Scan(&kpi.CreatedAt, &kpi.UpdatedAt)
	if err != nil {
		return performance.KPI{}, err
	}
	return kpi, nil
}

// GetByID implements performance.KPIRepository.
func (r *kpiRepositoryImpl) GetByID(ctx context.Context, id string) (performance.KPI, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, title, category, weight, description, is_active,
			   department_id, related_role, created_at, updated_at
		FROM kpis
		WHERE id = $1
	`
	kpi, err := scanKPI(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return performance.KPI{}, performance.ErrKPINotFound
		}
		return performance.KPI{}, err
	}
	return kpi, nil
}

// List implements performance.KPIRepository.
func (r *kpiRepositoryImpl) List(ctx context.Context, activeOnly bool, category *string) ([]performance.KPI, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if activeOnly {
		conditions = append(conditions, "is_active = TRUE")
	}
	if category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIdx))
		args = append(args, *category)
		argIdx++
	}

	query := `
		SELECT id, title, category, weight, description, is_active,
			   department_id, related_role, created_at, updated_at
		FROM kpis
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY is_active DESC, category, title
	`
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var kpis []performance.KPI
	for rows.Next() {
		kpi, err := scanKPI(rows)
		if err != nil {
			return nil, err
		}
		kpis = append(kpis, kpi)
	}
	return kpis, rows.Err()
}

// Update implements performance.KPIRepository.
func (r *kpiRepositoryImpl) Update(ctx context.Context, kpi performance.KPI) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE kpis
		SET title = $2, category = $3, weight = $4, description = $5,
			is_active = $6, department_id = $7, related_role = $8, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		kpi.ID, kpi.Title, kpi.Category, kpi.Weight, kpi.Description,
		kpi.IsActive, kpi.DepartmentID, kpi.RelatedRole,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return performance.ErrKPINotFound
	}
	return nil
}

// Delete implements performance.KPIRepository.
func (r *kpiRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM kpis WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return performance.ErrKPINotFound
	}
	return nil
}

// CountReviewItems implements performance.KPIRepository.
func (r *kpiRepositoryImpl) CountReviewItems(ctx context.Context, kpiID string) (int, error) {
	q := GetQuerier(ctx, r.db)
	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM performance_review_items WHERE kpi_id = $1`, kpiID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func scanKPI(row rowScanner) (performance.KPI, error) {
	var kpi performance.KPI
	err := row.Scan(
		&kpi.ID, &kpi.Title, &kpi.Category, &kpi.Weight, &kpi.Description,
		&kpi.IsActive, &kpi.DepartmentID, &kpi.RelatedRole,
		&kpi.CreatedAt, &kpi.UpdatedAt,
	)
	if err != nil {
		return performance.KPI{}, err
	}
	return kpi, nil
}

type evaluationPeriodRepositoryImpl struct {
	db *database.DB
}

func NewEvaluationPeriodRepository(db *database.DB) performance.EvaluationPeriodRepository {
	return &evaluationPeriodRepositoryImpl{db: db}
}

// Create implements performance.EvaluationPeriodRepository.
func (r *evaluationPeriodRepositoryImpl) Create(ctx context.Context, period performance.EvaluationPeriod) (performance.EvaluationPeriod, error) {
	q := GetQuerier(ctx, r.db)

	if period.ID == "" {
		period.ID = uuid.New().String()
	}

	query := `
		INSERT INTO evaluation_periods (id, name, period_type, start_date, end_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		period.ID, period.Name, period.PeriodType,
		period.StartDate, period.EndDate, period.Status,
	).Scan(&period.CreatedAt, &period.UpdatedAt)
	if err != nil {
		return performance.EvaluationPeriod{}, err
	}
	return period, nil
}

// GetByID implements performance.EvaluationPeriodRepository.
func (r *evaluationPeriodRepositoryImpl) GetByID(ctx context.Context, id string) (performance.EvaluationPeriod, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, period_type, start_date, end_date, status, created_at, updated_at
		FROM evaluation_periods
		WHERE id = $1
	`
	var period performance.EvaluationPeriod
	err := q.QueryRow(ctx, query, id).Scan(
		&period.ID, &period.Name, &period.PeriodType,
		&period.StartDate, &period.EndDate, &period.Status,
		&period.CreatedAt, &period.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return performance.EvaluationPeriod{}, performance.ErrPeriodNotFound
		}
		return performance.EvaluationPeriod{}, err
	}
	return period, nil
}

// List implements performance.EvaluationPeriodRepository.
func (r *evaluationPeriodRepositoryImpl) List(ctx context.Context, status *string) ([]performance.EvaluationPeriod, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, period_type, start_date, end_date, status, created_at, updated_at
		FROM evaluation_periods
	`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY start_date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []performance.EvaluationPeriod
	for rows.Next() {
		var period performance.EvaluationPeriod
		err := rows.Scan(
			&period.ID, &period.Name, &period.PeriodType,
			&period.StartDate, &period.EndDate, &period.Status,
			&period.CreatedAt, &period.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		periods = append(periods, period)
	}
	return periods, rows.Err()
}

// Update implements performance.EvaluationPeriodRepository.
func (r *evaluationPeriodRepositoryImpl) Update(ctx context.Context, period performance.EvaluationPeriod) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE evaluation_periods
		SET name = $2, period_type = $3, start_date = $4, end_date = $5,
			status = $6, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		period.ID, period.Name, period.PeriodType,
		period.StartDate, period.EndDate, period.Status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return performance.ErrPeriodNotFound
	}
	return nil
}

// Delete implements performance.EvaluationPeriodRepository.
func (r *evaluationPeriodRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM evaluation_periods WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return performance.ErrPeriodNotFound
	}
	return nil
}

type reviewRepositoryImpl struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) performance.ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

const reviewColumns = `
	r.id, r.employee_id, r.manager_id, r.period_id, r.status, r.total_score,
	r.final_comment, r.created_at, r.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name,
	p.name AS period_name`

// Create implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) Create(ctx context.Context, review performance.PerformanceReview) (performance.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	if review.ID == "" {
		review.ID = uuid.New().String()
	}

	query := `
		INSERT INTO performance_reviews (
			id, employee_id, manager_id, period_id, status, total_score,
			final_comment, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		review.ID, review.EmployeeID, review.ManagerID, review.PeriodID,
		review.Status, review.TotalScore, review.FinalComment,
	).Scan(&review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return performance.PerformanceReview{}, performance.ErrReviewExists
		}
		return performance.PerformanceReview{}, err
	}
	return review, nil
}

// GetByID implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) GetByID(ctx context.Context, id string) (performance.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + reviewColumns + `
		FROM performance_reviews r
		JOIN employees e ON e.id = r.employee_id
		JOIN evaluation_periods p ON p.id = r.period_id
		WHERE r.id = $1
	`
	review, err := scanReview(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return performance.PerformanceReview{}, performance.ErrReviewNotFound
		}
		return performance.PerformanceReview{}, err
	}

	review.Items, err = r.ListItems(ctx, review.ID)
	if err != nil {
		return performance.PerformanceReview{}, err
	}
	return review, nil
}

// GetByEmployeeAndPeriod implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) GetByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (*performance.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + reviewColumns + `
		FROM performance_reviews r
		JOIN employees e ON e.id = r.employee_id
		JOIN evaluation_periods p ON p.id = r.period_id
		WHERE r.employee_id = $1 AND r.period_id = $2
	`
	review, err := scanReview(q.QueryRow(ctx, query, employeeID, periodID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// List implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) List(ctx context.Context, employeeID *string, periodID *string) ([]performance.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if employeeID != nil {
		conditions = append(conditions, fmt.Sprintf("r.employee_id = $%d", argIdx))
		args = append(args, *employeeID)
		argIdx++
	}
	if periodID != nil {
		conditions = append(conditions, fmt.Sprintf("r.period_id = $%d", argIdx))
		args = append(args, *periodID)
		argIdx++
	}

	query := `
		SELECT ` + reviewColumns + `
		FROM performance_reviews r
		JOIN employees e ON e.id = r.employee_id
		JOIN evaluation_periods p ON p.id = r.period_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY r.created_at DESC
	`
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []performance.PerformanceReview
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

// Update implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) Update(ctx context.Context, review performance.PerformanceReview) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE performance_reviews
		SET manager_id = $2, status = $3, total_score = $4, final_comment = $5,
			updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		review.ID, review.ManagerID, review.Status, review.TotalScore, review.FinalComment,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return performance.ErrReviewNotFound
	}
	return nil
}

// Delete implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM performance_reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return performance.ErrReviewNotFound
	}
	return nil
}

// ReplaceItems implements performance.ReviewRepository. The delete and the
// inserts run in one transaction so a failed rewrite never leaves a review
// with a partial item set.
func (r *reviewRepositoryImpl) ReplaceItems(ctx context.Context, reviewID string, items []performance.ReviewItem) ([]performance.ReviewItem, error) {
	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(txCtx, `DELETE FROM performance_review_items WHERE review_id = $1`, reviewID); err != nil {
			return err
		}

		query := `
			INSERT INTO performance_review_items (id, review_id, kpi_id, score, comment, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		`
		for _, item := range items {
			_, err := q.Exec(txCtx, query, uuid.New().String(), reviewID, item.KPIID, item.Score, item.Comment)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.ListItems(ctx, reviewID)
}

// ListItems implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) ListItems(ctx context.Context, reviewID string) ([]performance.ReviewItem, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT i.id, i.review_id, i.kpi_id, i.score, i.comment, i.created_at, i.updated_at,
			   k.title AS kpi_title, k.weight AS kpi_weight
		FROM performance_review_items i
		JOIN kpis k ON k.id = i.kpi_id
		WHERE i.review_id = $1
		ORDER BY k.title
	`
	rows, err := q.Query(ctx, query, reviewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []performance.ReviewItem
	for rows.Next() {
		var item performance.ReviewItem
		err := rows.Scan(
			&item.ID, &item.ReviewID, &item.KPIID, &item.Score, &item.Comment,
			&item.CreatedAt, &item.UpdatedAt, &item.KPITitle, &item.KPIWeight,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanReview(row rowScanner) (performance.PerformanceReview, error) {
	var review performance.PerformanceReview
	err := row.Scan(
		&review.ID, &review.EmployeeID, &review.ManagerID, &review.PeriodID,
		&review.Status, &review.TotalScore, &review.FinalComment,
		&review.CreatedAt, &review.UpdatedAt,
		&review.EmployeeName, &review.PeriodName,
	)
	if err != nil {
		return performance.PerformanceReview{}, err
	}
	return review, nil
}
