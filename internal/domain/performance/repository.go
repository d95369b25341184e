package performance

import "context"

// KPIRepository defines data access for KPIs.
type KPIRepository interface {
	Create(ctx context.Context, kpi KPI) (KPI, error)
	GetByID(ctx context.Context, id string) (KPI, error)
	List(ctx context.Context, activeOnly bool, category *string) ([]KPI, error)
	Update(ctx context.Context, kpi KPI) error
	Delete(ctx context.Context, id string) error
	// CountReviewItems reports how many review items reference the KPI.
	CountReviewItems(ctx context.Context, kpiID string) (int, error)
}

// EvaluationPeriodRepository defines data access for evaluation periods.
type EvaluationPeriodRepository interface {
	Create(ctx context.Context, period EvaluationPeriod) (EvaluationPeriod, error)
	GetByID(ctx context.Context, id string) (EvaluationPeriod, error)
	List(ctx context.Context, status *string) ([]EvaluationPeriod, error)
	Update(ctx context.Context, period EvaluationPeriod) error
	Delete(ctx context.Context, id string) error
}

// ReviewRepository defines data access for performance reviews and
// their per-KPI items.
type ReviewRepository interface {
	Create(ctx context.Context, review PerformanceReview) (PerformanceReview, error)
	GetByID(ctx context.Context, id string) (PerformanceReview, error)
	// GetByEmployeeAndPeriod returns nil when no review exists.
	GetByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (*PerformanceReview, error)
	List(ctx context.Context, employeeID *string, periodID *string) ([]PerformanceReview, error)
	Update(ctx context.Context, review PerformanceReview) error
	Delete(ctx context.Context, id string) error

	// ReplaceItems swaps the review's item set atomically and returns
	// the stored items with KPI weights joined.
	ReplaceItems(ctx context.Context, reviewID string, items []ReviewItem) ([]ReviewItem, error)
	ListItems(ctx context.Context, reviewID string) ([]ReviewItem, error)
}
