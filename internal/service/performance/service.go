package performance

import (
	"context"

	"github.com/google/uuid"

	"github.com/nimbus-hr/hrms-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/performance"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/validator"
)

type PerformanceServiceImpl struct {
	kpiRepo      performance.KPIRepository
	periodRepo   performance.EvaluationPeriodRepository
	reviewRepo   performance.ReviewRepository
	employeeRepo employee.EmployeeRepository
}

func NewPerformanceService(
	kpiRepo performance.KPIRepository,
	periodRepo performance.EvaluationPeriodRepository,
	reviewRepo performance.ReviewRepository,
	employeeRepo employee.EmployeeRepository,
) performance.PerformanceService {
	return &PerformanceServiceImpl{
		kpiRepo:      kpiRepo,
		periodRepo:   periodRepo,
		reviewRepo:   reviewRepo,
		employeeRepo: employeeRepo,
	}
}

func buildKPI(req performance.UpsertKPIRequest) performance.KPI {
	kpi := performance.KPI{
		ID:           req.ID,
		Title:        req.Title,
		Category:     req.Category,
		Weight:       1,
		Description:  req.Description,
		IsActive:     true,
		DepartmentID: req.DepartmentID,
		RelatedRole:  req.RelatedRole,
	}
	if kpi.Category == "" {
		kpi.Category = performance.CategoryGeneral
	}
	if req.Weight != nil {
		kpi.Weight = *req.Weight
	}
	if req.IsActive != nil {
		kpi.IsActive = *req.IsActive
	}
	return kpi
}

func (s *PerformanceServiceImpl) CreateKPI(ctx context.Context, req performance.UpsertKPIRequest) (performance.KPIResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.KPIResponse{}, err
	}

	kpi := buildKPI(req)
	kpi.ID = uuid.New().String()

	created, err := s.kpiRepo.Create(ctx, kpi)
	if err != nil {
		return performance.KPIResponse{}, err
	}
	return performance.ToKPIResponse(created), nil
}

func (s *PerformanceServiceImpl) GetKPI(ctx context.Context, id string) (performance.KPIResponse, error) {
	kpi, err := s.kpiRepo.GetByID(ctx, id)
	if err != nil {
		return performance.KPIResponse{}, err
	}
	return performance.ToKPIResponse(kpi), nil
}

func (s *PerformanceServiceImpl) ListKPIs(ctx context.Context, activeOnly bool, category *string) ([]performance.KPIResponse, error) {
	kpis, err := s.kpiRepo.List(ctx, activeOnly, category)
	if err != nil {
		return nil, err
	}

	responses := make([]performance.KPIResponse, 0, len(kpis))
	for _, kpi := range kpis {
		responses = append(responses, performance.ToKPIResponse(kpi))
	}
	return responses, nil
}

func (s *PerformanceServiceImpl) UpdateKPI(ctx context.Context, req performance.UpsertKPIRequest) (performance.KPIResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.KPIResponse{}, err
	}

	existing, err := s.kpiRepo.GetByID(ctx, req.ID)
	if err != nil {
		return performance.KPIResponse{}, err
	}

	kpi := buildKPI(req)
	kpi.ID = existing.ID
	kpi.CreatedAt = existing.CreatedAt

	if err := s.kpiRepo.Update(ctx, kpi); err != nil {
		return performance.KPIResponse{}, err
	}
	return performance.ToKPIResponse(kpi), nil
}

// DeleteKPI refuses to remove a KPI that has been scored; deactivate it
// instead so history stays intact.
func (s *PerformanceServiceImpl) DeleteKPI(ctx context.Context, id string) error {
	count, err := s.kpiRepo.CountReviewItems(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return performance.ErrKPIInUse
	}
	return s.kpiRepo.Delete(ctx, id)
}

func buildPeriod(req performance.UpsertPeriodRequest) performance.EvaluationPeriod {
	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	period := performance.EvaluationPeriod{
		ID:         req.ID,
		Name:       req.Name,
		PeriodType: req.PeriodType,
		StartDate:  start,
		EndDate:    end,
		Status:     req.Status,
	}
	if period.PeriodType == "" {
		period.PeriodType = performance.PeriodQuarterly
	}
	if period.Status == "" {
		period.Status = performance.PeriodStatusDraft
	}
	return period
}

func (s *PerformanceServiceImpl) CreatePeriod(ctx context.Context, req performance.UpsertPeriodRequest) (performance.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.PeriodResponse{}, err
	}

	period := buildPeriod(req)
	period.ID = uuid.New().String()

	created, err := s.periodRepo.Create(ctx, period)
	if err != nil {
		return performance.PeriodResponse{}, err
	}
	return performance.ToPeriodResponse(created), nil
}

func (s *PerformanceServiceImpl) GetPeriod(ctx context.Context, id string) (performance.PeriodResponse, error) {
	period, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		return performance.PeriodResponse{}, err
	}
	return performance.ToPeriodResponse(period), nil
}

func (s *PerformanceServiceImpl) ListPeriods(ctx context.Context, status *string) ([]performance.PeriodResponse, error) {
	periods, err := s.periodRepo.List(ctx, status)
	if err != nil {
		return nil, err
	}

	responses := make([]performance.PeriodResponse, 0, len(periods))
	for _, period := range periods {
		responses = append(responses, performance.ToPeriodResponse(period))
	}
	return responses, nil
}

func (s *PerformanceServiceImpl) UpdatePeriod(ctx context.Context, req performance.UpsertPeriodRequest) (performance.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.PeriodResponse{}, err
	}

	existing, err := s.periodRepo.GetByID(ctx, req.ID)
	if err != nil {
		return performance.PeriodResponse{}, err
	}

	period := buildPeriod(req)
	period.ID = existing.ID
	period.CreatedAt = existing.CreatedAt

	if err := s.periodRepo.Update(ctx, period); err != nil {
		return performance.PeriodResponse{}, err
	}
	return performance.ToPeriodResponse(period), nil
}

func (s *PerformanceServiceImpl) DeletePeriod(ctx context.Context, id string) error {
	return s.periodRepo.Delete(ctx, id)
}

// writeItems stores the review's item set and recomputes the weighted
// total from the stored items, whose KPI weights come back joined.
func (s *PerformanceServiceImpl) writeItems(ctx context.Context, review *performance.PerformanceReview, items []performance.ReviewItemRequest) error {
	drafts := make([]performance.ReviewItem, 0, len(items))
	for _, item := range items {
		if _, err := s.kpiRepo.GetByID(ctx, item.KPIID); err != nil {
			return err
		}
		drafts = append(drafts, performance.ReviewItem{
			ID:       uuid.New().String(),
			ReviewID: review.ID,
			KPIID:    item.KPIID,
			Score:    item.Score,
			Comment:  item.Comment,
		})
	}

	stored, err := s.reviewRepo.ReplaceItems(ctx, review.ID, drafts)
	if err != nil {
		return err
	}

	review.Items = stored
	review.TotalScore = performance.TotalScore(stored)
	return s.reviewRepo.Update(ctx, *review)
}

func (s *PerformanceServiceImpl) CreateReview(ctx context.Context, req performance.UpsertReviewRequest) (performance.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.ReviewResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return performance.ReviewResponse{}, err
	}

	period, err := s.periodRepo.GetByID(ctx, req.PeriodID)
	if err != nil {
		return performance.ReviewResponse{}, err
	}
	if period.Status == performance.PeriodStatusClosed {
		return performance.ReviewResponse{}, performance.ErrPeriodClosed
	}

	existing, err := s.reviewRepo.GetByEmployeeAndPeriod(ctx, req.EmployeeID, req.PeriodID)
	if err != nil {
		return performance.ReviewResponse{}, err
	}
	if existing != nil {
		return performance.ReviewResponse{}, performance.ErrReviewExists
	}

	review := performance.PerformanceReview{
		ID:           uuid.New().String(),
		EmployeeID:   req.EmployeeID,
		ManagerID:    req.ManagerID,
		PeriodID:     req.PeriodID,
		Status:       performance.ReviewStatusDraft,
		FinalComment: req.FinalComment,
	}

	created, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	if err := s.writeItems(ctx, &created, req.Items); err != nil {
		return performance.ReviewResponse{}, err
	}
	return performance.ToReviewResponse(created), nil
}

func (s *PerformanceServiceImpl) GetReview(ctx context.Context, id string) (performance.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return performance.ReviewResponse{}, err
	}
	return performance.ToReviewResponse(review), nil
}

func (s *PerformanceServiceImpl) ListReviews(ctx context.Context, employeeID *string, periodID *string) ([]performance.ReviewResponse, error) {
	reviews, err := s.reviewRepo.List(ctx, employeeID, periodID)
	if err != nil {
		return nil, err
	}

	responses := make([]performance.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, performance.ToReviewResponse(review))
	}
	return responses, nil
}

func (s *PerformanceServiceImpl) UpdateReview(ctx context.Context, req performance.UpsertReviewRequest) (performance.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.ReviewResponse{}, err
	}

	review, err := s.reviewRepo.GetByID(ctx, req.ID)
	if err != nil {
		return performance.ReviewResponse{}, err
	}
	if review.Status == performance.ReviewStatusSubmitted {
		return performance.ReviewResponse{}, performance.ErrReviewSubmitted
	}

	review.ManagerID = req.ManagerID
	review.FinalComment = req.FinalComment

	if err := s.writeItems(ctx, &review, req.Items); err != nil {
		return performance.ReviewResponse{}, err
	}
	return performance.ToReviewResponse(review), nil
}

func (s *PerformanceServiceImpl) DeleteReview(ctx context.Context, id string) error {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if review.Status == performance.ReviewStatusSubmitted {
		return performance.ErrReviewSubmitted
	}
	return s.reviewRepo.Delete(ctx, id)
}

// SubmitReview implements performance.PerformanceService.
func (s *PerformanceServiceImpl) SubmitReview(ctx context.Context, id string) (performance.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return performance.ReviewResponse{}, err
	}
	if review.Status == performance.ReviewStatusSubmitted {
		return performance.ReviewResponse{}, performance.ErrReviewSubmitted
	}

	review.Status = performance.ReviewStatusSubmitted
	review.TotalScore = performance.TotalScore(review.Items)
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return performance.ReviewResponse{}, err
	}
	return performance.ToReviewResponse(review), nil
}
