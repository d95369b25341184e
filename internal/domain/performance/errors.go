package performance

import "errors"

var (
	ErrKPINotFound        = errors.New("kpi not found")
	ErrKPIInUse           = errors.New("kpi is referenced by review items")
	ErrPeriodNotFound     = errors.New("evaluation period not found")
	ErrPeriodClosed       = errors.New("evaluation period is closed")
	ErrReviewNotFound     = errors.New("performance review not found")
	ErrReviewExists       = errors.New("review already exists for employee and period")
	ErrReviewSubmitted    = errors.New("review has already been submitted")
	ErrDuplicateReviewKPI = errors.New("kpi scored more than once in review")
	ErrScoreOutOfRange    = errors.New("score must be between 0 and 100")
	ErrInvalidPeriodDates = errors.New("end date must not be before start date")
)
