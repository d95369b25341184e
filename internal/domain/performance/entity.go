package performance

import "time"

// KPI categories
const (
	CategoryGeneral     = "GENERAL"
	CategoryJobSpecific = "JOB_SPECIFIC"
	CategoryStrategic   = "STRATEGIC"
)

// KPI is a configurable measure scored within performance reviews.
// Weight drives the weighted average of the review's total score.
type KPI struct {
	ID           string
	Title        string
	Category     string
	Weight       float64
	Description  *string
	IsActive     bool
	DepartmentID *string
	RelatedRole  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Evaluation period types
const (
	PeriodMonthly   = "MONTHLY"
	PeriodQuarterly = "QUARTERLY"
	PeriodAnnual    = "ANNUAL"
)

// Evaluation period statuses
const (
	PeriodStatusDraft  = "DRAFT"
	PeriodStatusActive = "ACTIVE"
	PeriodStatusClosed = "CLOSED"
)

type EvaluationPeriod struct {
	ID         string
	Name       string
	PeriodType string
	StartDate  time.Time
	EndDate    time.Time
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Review statuses
const (
	ReviewStatusDraft     = "Draft"
	ReviewStatusSubmitted = "Submitted"
)

// PerformanceReview is a manager's review of one employee for one
// period. Unique per (employee, period).
type PerformanceReview struct {
	ID           string
	EmployeeID   string
	ManagerID    *string
	PeriodID     string
	Status       string
	TotalScore   float64
	FinalComment *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined for responses
	EmployeeName *string
	PeriodName   *string
	Items        []ReviewItem
}

// ReviewItem is a single KPI score within a review, 0-100.
// Unique per (review, kpi).
type ReviewItem struct {
	ID        string
	ReviewID  string
	KPIID     string
	Score     int
	Comment   *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	KPITitle  *string
	KPIWeight float64
}

// TotalScore computes the weighted average of item scores, using each
// item's KPI weight. Zero total weight scores zero.
func TotalScore(items []ReviewItem) float64 {
	var totalWeight, weightedSum float64
	for _, item := range items {
		totalWeight += item.KPIWeight
		weightedSum += float64(item.Score) * item.KPIWeight
	}
	if totalWeight == 0 {
		return 0
	}
	return round2(weightedSum / totalWeight)
}

func round2(v float64) float64 {
	if v < 0 {
		return -round2(-v)
	}
	return float64(int64(v*100+0.5)) / 100
}
