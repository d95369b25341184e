package hrops

import (
	"time"

	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/validator"
)

type UpsertOnboardingTaskRequest struct {
	ID          string  `json:"-"`
	EmployeeID  string  `json:"employee_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	AssignedTo  string  `json:"assigned_to"`
	DueDate     *string `json:"due_date"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes"`
}

func (r UpsertOnboardingTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if r.AssignedTo != "" && !validator.IsInSlice(r.AssignedTo, []string{TaskOwnerHR, TaskOwnerEmployee}) {
		errs = append(errs, validator.ValidationError{Field: "assigned_to", Message: "must be HR or Employee"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, []string{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid status"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OnboardingTaskResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	AssignedTo   string  `json:"assigned_to"`
	DueDate      *string `json:"due_date,omitempty"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes,omitempty"`
	CompletedAt  *string `json:"completed_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func ToOnboardingTaskResponse(t OnboardingTask) OnboardingTaskResponse {
	resp := OnboardingTaskResponse{
		ID:           t.ID,
		EmployeeID:   t.EmployeeID,
		EmployeeName: t.EmployeeName,
		Title:        t.Title,
		Description:  t.Description,
		AssignedTo:   t.AssignedTo,
		Status:       t.Status,
		Notes:        t.Notes,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    t.UpdatedAt.Format(time.RFC3339),
	}
	if t.DueDate != nil {
		d := t.DueDate.Format("2006-01-02")
		resp.DueDate = &d
	}
	if t.CompletedAt != nil {
		at := t.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &at
	}
	return resp
}

type UpsertAssetRequest struct {
	ID           string  `json:"-"`
	AssetType    string  `json:"asset_type"`
	AssetTag     string  `json:"asset_tag"`
	SerialNumber *string `json:"serial_number"`
	Model        *string `json:"model"`
	Status       string  `json:"status"`
	PurchaseDate *string `json:"purchase_date"`
	Notes        *string `json:"notes"`
}

func (r UpsertAssetRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.AssetType, []string{AssetTypeLaptop, AssetTypePhone, AssetTypeAccessCard, AssetTypeMonitor, AssetTypeOther}) {
		errs = append(errs, validator.ValidationError{Field: "asset_type", Message: "unknown asset type"})
	}
	if validator.IsEmpty(r.AssetTag) {
		errs = append(errs, validator.ValidationError{Field: "asset_tag", Message: "asset tag is required"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, []string{AssetStatusAvailable, AssetStatusAssigned, AssetStatusRepair, AssetStatusRetired}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid status"})
	}
	if r.PurchaseDate != nil {
		if _, ok := validator.IsValidDate(*r.PurchaseDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "purchase_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignAssetRequest struct {
	AssetID    string  `json:"-"`
	EmployeeID string  `json:"employee_id"`
	Notes      *string `json:"notes"`
}

type ReturnAssetRequest struct {
	AssetID         string  `json:"-"`
	ReturnCondition *string `json:"return_condition"`
}

type AssetResponse struct {
	ID             string  `json:"id"`
	AssetType      string  `json:"asset_type"`
	AssetTag       string  `json:"asset_tag"`
	SerialNumber   *string `json:"serial_number,omitempty"`
	Model          *string `json:"model,omitempty"`
	Status         string  `json:"status"`
	PurchaseDate   *string `json:"purchase_date,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	AssignedToID   *string `json:"assigned_to_id,omitempty"`
	AssignedToName *string `json:"assigned_to_name,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func ToAssetResponse(a Asset) AssetResponse {
	resp := AssetResponse{
		ID:             a.ID,
		AssetType:      a.AssetType,
		AssetTag:       a.AssetTag,
		SerialNumber:   a.SerialNumber,
		Model:          a.Model,
		Status:         a.Status,
		Notes:          a.Notes,
		AssignedToID:   a.AssignedToID,
		AssignedToName: a.AssignedToName,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      a.UpdatedAt.Format(time.RFC3339),
	}
	if a.PurchaseDate != nil {
		d := a.PurchaseDate.Format("2006-01-02")
		resp.PurchaseDate = &d
	}
	return resp
}

type UpsertPolicyRequest struct {
	ID            string  `json:"-"`
	Title         string  `json:"title"`
	Content       string  `json:"content"`
	Version       string  `json:"version"`
	EffectiveDate string  `json:"effective_date"`
	IsActive      *bool   `json:"is_active"`
	RequireAck    *bool   `json:"require_ack"`
	CreatedByID   *string `json:"created_by_id"`
}

func (r UpsertPolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{Field: "content", Message: "content is required"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AcknowledgePolicyRequest struct {
	PolicyID   string  `json:"-"`
	EmployeeID string  `json:"employee_id"`
	Status     string  `json:"status"`
	Comment    *string `json:"comment"`
}

type PolicyResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	Version       string `json:"version"`
	EffectiveDate string `json:"effective_date"`
	IsActive      bool   `json:"is_active"`
	RequireAck    bool   `json:"require_ack"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

func ToPolicyResponse(p Policy) PolicyResponse {
	return PolicyResponse{
		ID:            p.ID,
		Title:         p.Title,
		Content:       p.Content,
		Version:       p.Version,
		EffectiveDate: p.EffectiveDate.Format("2006-01-02"),
		IsActive:      p.IsActive,
		RequireAck:    p.RequireAck,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
	}
}

type PolicyAcknowledgmentResponse struct {
	ID             string  `json:"id"`
	PolicyID       string  `json:"policy_id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	Status         string  `json:"status"`
	Comment        *string `json:"comment,omitempty"`
	AcknowledgedAt string  `json:"acknowledged_at"`
}

func ToPolicyAcknowledgmentResponse(a PolicyAcknowledgment) PolicyAcknowledgmentResponse {
	return PolicyAcknowledgmentResponse{
		ID:             a.ID,
		PolicyID:       a.PolicyID,
		EmployeeID:     a.EmployeeID,
		EmployeeName:   a.EmployeeName,
		Status:         a.Status,
		Comment:        a.Comment,
		AcknowledgedAt: a.AcknowledgedAt.Format(time.RFC3339),
	}
}
