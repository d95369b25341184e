package performance

import "context"

// PerformanceService covers KPI administration, evaluation periods,
// and employee reviews with weighted scoring.
type PerformanceService interface {
	CreateKPI(ctx context.Context, req UpsertKPIRequest) (KPIResponse, error)
	GetKPI(ctx context.Context, id string) (KPIResponse, error)
	ListKPIs(ctx context.Context, activeOnly bool, category *string) ([]KPIResponse, error)
	UpdateKPI(ctx context.Context, req UpsertKPIRequest) (KPIResponse, error)
	DeleteKPI(ctx context.Context, id string) error

	CreatePeriod(ctx context.Context, req UpsertPeriodRequest) (PeriodResponse, error)
	GetPeriod(ctx context.Context, id string) (PeriodResponse, error)
	ListPeriods(ctx context.Context, status *string) ([]PeriodResponse, error)
	UpdatePeriod(ctx context.Context, req UpsertPeriodRequest) (PeriodResponse, error)
	DeletePeriod(ctx context.Context, id string) error

	CreateReview(ctx context.Context, req UpsertReviewRequest) (ReviewResponse, error)
	GetReview(ctx context.Context, id string) (ReviewResponse, error)
	ListReviews(ctx context.Context, employeeID *string, periodID *string) ([]ReviewResponse, error)
	UpdateReview(ctx context.Context, req UpsertReviewRequest) (ReviewResponse, error)
	DeleteReview(ctx context.Context, id string) error
	// SubmitReview finalizes scores; a submitted review rejects edits.
	SubmitReview(ctx context.Context, id string) (ReviewResponse, error)
}
