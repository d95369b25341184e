package performance

import (
	"time"

	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/validator"
)

type UpsertKPIRequest struct {
	ID           string   `json:"-"`
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	Weight       *float64 `json:"weight"`
	Description  *string  `json:"description"`
	IsActive     *bool    `json:"is_active"`
	DepartmentID *string  `json:"department_id"`
	RelatedRole  *string  `json:"related_role"`
}

func (r UpsertKPIRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if r.Category != "" && !validator.IsInSlice(r.Category, []string{CategoryGeneral, CategoryJobSpecific, CategoryStrategic}) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "invalid category"})
	}
	if r.Weight != nil && *r.Weight < 0 {
		errs = append(errs, validator.ValidationError{Field: "weight", Message: "weight must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type KPIResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Category     string  `json:"category"`
	Weight       float64 `json:"weight"`
	Description  *string `json:"description,omitempty"`
	IsActive     bool    `json:"is_active"`
	DepartmentID *string `json:"department_id,omitempty"`
	RelatedRole  *string `json:"related_role,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func ToKPIResponse(k KPI) KPIResponse {
	return KPIResponse{
		ID:           k.ID,
		Title:        k.Title,
		Category:     k.Category,
		Weight:       k.Weight,
		Description:  k.Description,
		IsActive:     k.IsActive,
		DepartmentID: k.DepartmentID,
		RelatedRole:  k.RelatedRole,
		CreatedAt:    k.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    k.UpdatedAt.Format(time.RFC3339),
	}
}

type UpsertPeriodRequest struct {
	ID         string `json:"-"`
	Name       string `json:"name"`
	PeriodType string `json:"period_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
}

func (r UpsertPeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.PeriodType != "" && !validator.IsInSlice(r.PeriodType, []string{PeriodMonthly, PeriodQuarterly, PeriodAnnual}) {
		errs = append(errs, validator.ValidationError{Field: "period_type", Message: "invalid period type"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, []string{PeriodStatusDraft, PeriodStatusActive, PeriodStatusClosed}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PeriodType string `json:"period_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func ToPeriodResponse(p EvaluationPeriod) PeriodResponse {
	return PeriodResponse{
		ID:         p.ID,
		Name:       p.Name,
		PeriodType: p.PeriodType,
		StartDate:  p.StartDate.Format("2006-01-02"),
		EndDate:    p.EndDate.Format("2006-01-02"),
		Status:     p.Status,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  p.UpdatedAt.Format(time.RFC3339),
	}
}

type ReviewItemRequest struct {
	KPIID   string  `json:"kpi_id"`
	Score   int     `json:"score"`
	Comment *string `json:"comment"`
}

type UpsertReviewRequest struct {
	ID           string              `json:"-"`
	EmployeeID   string              `json:"employee_id"`
	ManagerID    *string             `json:"manager_id"`
	PeriodID     string              `json:"period_id"`
	FinalComment *string             `json:"final_comment"`
	Items        []ReviewItemRequest `json:"items"`
}

func (r UpsertReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.PeriodID) {
		errs = append(errs, validator.ValidationError{Field: "period_id", Message: "period_id is required"})
	}
	seen := make(map[string]bool)
	for _, item := range r.Items {
		if validator.IsEmpty(item.KPIID) {
			errs = append(errs, validator.ValidationError{Field: "items", Message: "kpi_id is required on every item"})
			continue
		}
		if seen[item.KPIID] {
			errs = append(errs, validator.ValidationError{Field: "items", Message: "kpi " + item.KPIID + " scored more than once"})
		}
		seen[item.KPIID] = true
		if item.Score < 0 || item.Score > 100 {
			errs = append(errs, validator.ValidationError{Field: "items", Message: "score must be between 0 and 100"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewItemResponse struct {
	ID        string  `json:"id"`
	KPIID     string  `json:"kpi_id"`
	KPITitle  *string `json:"kpi_title,omitempty"`
	KPIWeight float64 `json:"kpi_weight"`
	Score     int     `json:"score"`
	Comment   *string `json:"comment,omitempty"`
}

type ReviewResponse struct {
	ID           string               `json:"id"`
	EmployeeID   string               `json:"employee_id"`
	EmployeeName *string              `json:"employee_name,omitempty"`
	ManagerID    *string              `json:"manager_id,omitempty"`
	PeriodID     string               `json:"period_id"`
	PeriodName   *string              `json:"period_name,omitempty"`
	Status       string               `json:"status"`
	TotalScore   float64              `json:"total_score"`
	FinalComment *string              `json:"final_comment,omitempty"`
	Items        []ReviewItemResponse `json:"items"`
	CreatedAt    string               `json:"created_at"`
	UpdatedAt    string               `json:"updated_at"`
}

func ToReviewResponse(rv PerformanceReview) ReviewResponse {
	items := make([]ReviewItemResponse, 0, len(rv.Items))
	for _, item := range rv.Items {
		items = append(items, ReviewItemResponse{
			ID:        item.ID,
			KPIID:     item.KPIID,
			KPITitle:  item.KPITitle,
			KPIWeight: item.KPIWeight,
			Score:     item.Score,
			Comment:   item.Comment,
		})
	}
	return ReviewResponse{
		ID:           rv.ID,
		EmployeeID:   rv.EmployeeID,
		EmployeeName: rv.EmployeeName,
		ManagerID:    rv.ManagerID,
		PeriodID:     rv.PeriodID,
		PeriodName:   rv.PeriodName,
		Status:       rv.Status,
		TotalScore:   rv.TotalScore,
		FinalComment: rv.FinalComment,
		Items:        items,
		CreatedAt:    rv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    rv.UpdatedAt.Format(time.RFC3339),
	}
}
