package hrops

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nimbus-hr/hrms-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/hrops"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/validator"
)

type HROpsServiceImpl struct {
	taskRepo     hrops.OnboardingTaskRepository
	assetRepo    hrops.AssetRepository
	policyRepo   hrops.PolicyRepository
	employeeRepo employee.EmployeeRepository
}

func NewHROpsService(
	taskRepo hrops.OnboardingTaskRepository,
	assetRepo hrops.AssetRepository,
	policyRepo hrops.PolicyRepository,
	employeeRepo employee.EmployeeRepository,
) hrops.HROpsService {
	return &HROpsServiceImpl{
		taskRepo:     taskRepo,
		assetRepo:    assetRepo,
		policyRepo:   policyRepo,
		employeeRepo: employeeRepo,
	}
}

func buildTask(req hrops.UpsertOnboardingTaskRequest) hrops.OnboardingTask {
	task := hrops.OnboardingTask{
		ID:          req.ID,
		EmployeeID:  req.EmployeeID,
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Status:      req.Status,
		Notes:       req.Notes,
	}
	if task.AssignedTo == "" {
		task.AssignedTo = hrops.TaskOwnerHR
	}
	if task.Status == "" {
		task.Status = hrops.TaskStatusPending
	}
	if req.DueDate != nil {
		due, _ := validator.IsValidDate(*req.DueDate)
		task.DueDate = &due
	}
	return task
}

func (s *HROpsServiceImpl) CreateTask(ctx context.Context, req hrops.UpsertOnboardingTaskRequest) (hrops.OnboardingTaskResponse, error) {
	if err := req.Validate(); err != nil {
		return hrops.OnboardingTaskResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return hrops.OnboardingTaskResponse{}, err
	}

	task := buildTask(req)
	task.ID = uuid.New().String()
	if task.Status == hrops.TaskStatusCompleted {
		now := time.Now()
		task.CompletedAt = &now
	}

	created, err := s.taskRepo.Create(ctx, task)
	if err != nil {
		return hrops.OnboardingTaskResponse{}, err
	}
	return hrops.ToOnboardingTaskResponse(created), nil
}

func (s *HROpsServiceImpl) GetTask(ctx context.Context, id string) (hrops.OnboardingTaskResponse, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return hrops.OnboardingTaskResponse{}, err
	}
	return hrops.ToOnboardingTaskResponse(task), nil
}

func (s *HROpsServiceImpl) ListTasks(ctx context.Context, employeeID *string, status *string) ([]hrops.OnboardingTaskResponse, error) {
	tasks, err := s.taskRepo.List(ctx, employeeID, status)
	if err != nil {
		return nil, err
	}

	responses := make([]hrops.OnboardingTaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, hrops.ToOnboardingTaskResponse(task))
	}
	return responses, nil
}

func (s *HROpsServiceImpl) UpdateTask(ctx context.Context, req hrops.UpsertOnboardingTaskRequest) (hrops.OnboardingTaskResponse, error) {
	if err := req.Validate(); err != nil {
		return hrops.OnboardingTaskResponse{}, err
	}

	existing, err := s.taskRepo.GetByID(ctx, req.ID)
	if err != nil {
		return hrops.OnboardingTaskResponse{}, err
	}

	task := buildTask(req)
	task.ID = existing.ID
	task.CreatedAt = existing.CreatedAt
	task.CompletedAt = existing.CompletedAt

	// Track when a task first reaches Completed.
	if task.Status == hrops.TaskStatusCompleted && existing.Status != hrops.TaskStatusCompleted {
		now := time.Now()
		task.CompletedAt = &now
	}
	if task.Status != hrops.TaskStatusCompleted {
		task.CompletedAt = nil
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return hrops.OnboardingTaskResponse{}, err
	}
	return hrops.ToOnboardingTaskResponse(task), nil
}

func (s *HROpsServiceImpl) DeleteTask(ctx context.Context, id string) error {
	return s.taskRepo.Delete(ctx, id)
}

func buildAsset(req hrops.UpsertAssetRequest) hrops.Asset {
	asset := hrops.Asset{
		ID:           req.ID,
		AssetType:    req.AssetType,
		AssetTag:     req.AssetTag,
		SerialNumber: req.SerialNumber,
		Model:        req.Model,
		Status:       req.Status,
		Notes:        req.Notes,
	}
	if asset.Status == "" {
		asset.Status = hrops.AssetStatusAvailable
	}
	if req.PurchaseDate != nil {
		d, _ := validator.IsValidDate(*req.PurchaseDate)
		asset.PurchaseDate = &d
	}
	return asset
}

func (s *HROpsServiceImpl) CreateAsset(ctx context.Context, req hrops.UpsertAssetRequest) (hrops.AssetResponse, error) {
	if err := req.Validate(); err != nil {
		return hrops.AssetResponse{}, err
	}

	asset := buildAsset(req)
	asset.ID = uuid.New().String()

	created, err := s.assetRepo.Create(ctx, asset)
	if err != nil {
		return hrops.AssetResponse{}, err
	}
	return hrops.ToAssetResponse(created), nil
}

func (s *HROpsServiceImpl) GetAsset(ctx context.Context, id string) (hrops.AssetResponse, error) {
	asset, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		return hrops.AssetResponse{}, err
	}
	return hrops.ToAssetResponse(asset), nil
}

func (s *HROpsServiceImpl) ListAssets(ctx context.Context, status *string, assetType *string) ([]hrops.AssetResponse, error) {
	assets, err := s.assetRepo.List(ctx, status, assetType)
	if err != nil {
		return nil, err
	}

	responses := make([]hrops.AssetResponse, 0, len(assets))
	for _, asset := range assets {
		responses = append(responses, hrops.ToAssetResponse(asset))
	}
	return responses, nil
}

func (s *HROpsServiceImpl) UpdateAsset(ctx context.Context, req hrops.UpsertAssetRequest) (hrops.AssetResponse, error) {
	if err := req.Validate(); err != nil {
		return hrops.AssetResponse{}, err
	}

	existing, err := s.assetRepo.GetByID(ctx, req.ID)
	if err != nil {
		return hrops.AssetResponse{}, err
	}

	asset := buildAsset(req)
	asset.ID = existing.ID
	asset.CreatedAt = existing.CreatedAt

	if err := s.assetRepo.Update(ctx, asset); err != nil {
		return hrops.AssetResponse{}, err
	}
	return hrops.ToAssetResponse(asset), nil
}

func (s *HROpsServiceImpl) DeleteAsset(ctx context.Context, id string) error {
	return s.assetRepo.Delete(ctx, id)
}

// AssignAsset implements hrops.HROpsService. Only Available assets can be
// handed over; the open assignment row is the source of truth for who holds
// the asset.
func (s *HROpsServiceImpl) AssignAsset(ctx context.Context, req hrops.AssignAssetRequest) (hrops.AssetResponse, error) {
	asset, err := s.assetRepo.GetByID(ctx, req.AssetID)
	if err != nil {
		return hrops.AssetResponse{}, err
	}
	if asset.Status != hrops.AssetStatusAvailable {
		return hrops.AssetResponse{}, hrops.ErrAssetNotAvailable
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return hrops.AssetResponse{}, err
	}

	assignment := hrops.AssetAssignment{
		ID:         uuid.New().String(),
		AssetID:    asset.ID,
		EmployeeID: emp.ID,
		AssignedAt: time.Now(),
		Notes:      req.Notes,
	}
	if _, err := s.assetRepo.CreateAssignment(ctx, assignment); err != nil {
		return hrops.AssetResponse{}, err
	}

	asset.Status = hrops.AssetStatusAssigned
	if err := s.assetRepo.Update(ctx, asset); err != nil {
		return hrops.AssetResponse{}, err
	}

	asset.AssignedToID = &emp.ID
	fullName := emp.FullName()
	asset.AssignedToName = &fullName
	return hrops.ToAssetResponse(asset), nil
}

// ReturnAsset closes the open assignment and makes the asset available
// again.
func (s *HROpsServiceImpl) ReturnAsset(ctx context.Context, req hrops.ReturnAssetRequest) (hrops.AssetResponse, error) {
	asset, err := s.assetRepo.GetByID(ctx, req.AssetID)
	if err != nil {
		return hrops.AssetResponse{}, err
	}

	open, err := s.assetRepo.GetOpenAssignment(ctx, asset.ID)
	if err != nil {
		return hrops.AssetResponse{}, err
	}
	if open == nil {
		return hrops.AssetResponse{}, hrops.ErrAssetNotAssigned
	}

	now := time.Now()
	open.ReturnedAt = &now
	open.ReturnCondition = req.ReturnCondition
	if err := s.assetRepo.CloseAssignment(ctx, *open); err != nil {
		return hrops.AssetResponse{}, err
	}

	asset.Status = hrops.AssetStatusAvailable
	if err := s.assetRepo.Update(ctx, asset); err != nil {
		return hrops.AssetResponse{}, err
	}

	asset.AssignedToID = nil
	asset.AssignedToName = nil
	return hrops.ToAssetResponse(asset), nil
}

func buildPolicy(req hrops.UpsertPolicyRequest) hrops.Policy {
	effective, _ := validator.IsValidDate(req.EffectiveDate)
	policy := hrops.Policy{
		ID:            req.ID,
		Title:         req.Title,
		Content:       req.Content,
		Version:       req.Version,
		EffectiveDate: effective,
		IsActive:      true,
		RequireAck:    true,
		CreatedByID:   req.CreatedByID,
	}
	if policy.Version == "" {
		policy.Version = "1.0"
	}
	if req.IsActive != nil {
		policy.IsActive = *req.IsActive
	}
	if req.RequireAck != nil {
		policy.RequireAck = *req.RequireAck
	}
	return policy
}

func (s *HROpsServiceImpl) CreatePolicy(ctx context.Context, req hrops.UpsertPolicyRequest) (hrops.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return hrops.PolicyResponse{}, err
	}

	policy := buildPolicy(req)
	policy.ID = uuid.New().String()

	created, err := s.policyRepo.Create(ctx, policy)
	if err != nil {
		return hrops.PolicyResponse{}, err
	}
	return hrops.ToPolicyResponse(created), nil
}

func (s *HROpsServiceImpl) GetPolicy(ctx context.Context, id string) (hrops.PolicyResponse, error) {
	policy, err := s.policyRepo.GetByID(ctx, id)
	if err != nil {
		return hrops.PolicyResponse{}, err
	}
	return hrops.ToPolicyResponse(policy), nil
}

func (s *HROpsServiceImpl) ListPolicies(ctx context.Context, activeOnly bool) ([]hrops.PolicyResponse, error) {
	policies, err := s.policyRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]hrops.PolicyResponse, 0, len(policies))
	for _, policy := range policies {
		responses = append(responses, hrops.ToPolicyResponse(policy))
	}
	return responses, nil
}

func (s *HROpsServiceImpl) UpdatePolicy(ctx context.Context, req hrops.UpsertPolicyRequest) (hrops.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return hrops.PolicyResponse{}, err
	}

	existing, err := s.policyRepo.GetByID(ctx, req.ID)
	if err != nil {
		return hrops.PolicyResponse{}, err
	}

	policy := buildPolicy(req)
	policy.ID = existing.ID
	policy.CreatedAt = existing.CreatedAt
	policy.CreatedByID = existing.CreatedByID

	if err := s.policyRepo.Update(ctx, policy); err != nil {
		return hrops.PolicyResponse{}, err
	}
	return hrops.ToPolicyResponse(policy), nil
}

func (s *HROpsServiceImpl) DeletePolicy(ctx context.Context, id string) error {
	return s.policyRepo.Delete(ctx, id)
}

// AcknowledgePolicy records an employee's acknowledgment. One row per
// (policy, employee); repeats are rejected.
func (s *HROpsServiceImpl) AcknowledgePolicy(ctx context.Context, req hrops.AcknowledgePolicyRequest) (hrops.PolicyAcknowledgmentResponse, error) {
	if _, err := s.policyRepo.GetByID(ctx, req.PolicyID); err != nil {
		return hrops.PolicyAcknowledgmentResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return hrops.PolicyAcknowledgmentResponse{}, err
	}

	existing, err := s.policyRepo.GetAcknowledgment(ctx, req.PolicyID, req.EmployeeID)
	if err != nil {
		return hrops.PolicyAcknowledgmentResponse{}, err
	}
	if existing != nil {
		return hrops.PolicyAcknowledgmentResponse{}, hrops.ErrAlreadyAcknowledged
	}

	status := req.Status
	if status == "" {
		status = hrops.AckStatusAcknowledged
	}

	ack := hrops.PolicyAcknowledgment{
		ID:             uuid.New().String(),
		PolicyID:       req.PolicyID,
		EmployeeID:     req.EmployeeID,
		Status:         status,
		Comment:        req.Comment,
		AcknowledgedAt: time.Now(),
	}

	created, err := s.policyRepo.CreateAcknowledgment(ctx, ack)
	if err != nil {
		return hrops.PolicyAcknowledgmentResponse{}, err
	}
	return hrops.ToPolicyAcknowledgmentResponse(created), nil
}

func (s *HROpsServiceImpl) ListAcknowledgments(ctx context.Context, policyID string) ([]hrops.PolicyAcknowledgmentResponse, error) {
	acks, err := s.policyRepo.ListAcknowledgments(ctx, policyID)
	if err != nil {
		return nil, err
	}

	responses := make([]hrops.PolicyAcknowledgmentResponse, 0, len(acks))
	for _, ack := range acks {
		responses = append(responses, hrops.ToPolicyAcknowledgmentResponse(ack))
	}
	return responses, nil
}
