package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/hrops"
	"github.com/nimbus-hr/hrms-backend-go/internal/handler/http/response"
)

type HROpsHandler interface {
	CreateTask(w http.ResponseWriter, r *http.Request)
	GetTask(w http.ResponseWriter, r *http.Request)
	ListTasks(w http.ResponseWriter, r *http.Request)
	UpdateTask(w http.ResponseWriter, r *http.Request)
	DeleteTask(w http.ResponseWriter, r *http.Request)

	CreateAsset(w http.ResponseWriter, r *http.Request)
	GetAsset(w http.ResponseWriter, r *http.Request)
	ListAssets(w http.ResponseWriter, r *http.Request)
	UpdateAsset(w http.ResponseWriter, r *http.Request)
	DeleteAsset(w http.ResponseWriter, r *http.Request)
	AssignAsset(w http.ResponseWriter, r *http.Request)
	ReturnAsset(w http.ResponseWriter, r *http.Request)

	CreatePolicy(w http.ResponseWriter, r *http.Request)
	GetPolicy(w http.ResponseWriter, r *http.Request)
	ListPolicies(w http.ResponseWriter, r *http.Request)
	UpdatePolicy(w http.ResponseWriter, r *http.Request)
	DeletePolicy(w http.ResponseWriter, r *http.Request)
	AcknowledgePolicy(w http.ResponseWriter, r *http.Request)
	ListAcknowledgments(w http.ResponseWriter, r *http.Request)
}

type hrOpsHandlerImpl struct {
	hrOpsService hrops.HROpsService
}

func NewHROpsHandler(hrOpsService hrops.HROpsService) HROpsHandler {
	return &hrOpsHandlerImpl{
		hrOpsService: hrOpsService,
	}
}

// CreateTask implements HROpsHandler.
func (h *hrOpsHandlerImpl) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req hrops.UpsertOnboardingTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.hrOpsService.CreateTask(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Onboarding task created successfully", result)
}

// GetTask implements HROpsHandler.
func (h *hrOpsHandlerImpl) GetTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.hrOpsService.GetTask(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListTasks implements HROpsHandler.
func (h *hrOpsHandlerImpl) ListTasks(w http.ResponseWriter, r *http.Request) {
	results, err := h.hrOpsService.ListTasks(r.Context(), queryString(r, "employee_id"), queryString(r, "status"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateTask implements HROpsHandler.
func (h *hrOpsHandlerImpl) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req hrops.UpsertOnboardingTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.hrOpsService.UpdateTask(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Onboarding task updated successfully", result)
}

// DeleteTask implements HROpsHandler.
func (h *hrOpsHandlerImpl) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.hrOpsService.DeleteTask(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Onboarding task deleted successfully", nil)
}

// CreateAsset implements HROpsHandler.
func (h *hrOpsHandlerImpl) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req hrops.UpsertAssetRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.hrOpsService.CreateAsset(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Asset created successfully", result)
}

// GetAsset implements HROpsHandler.
func (h *hrOpsHandlerImpl) GetAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.hrOpsService.GetAsset(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListAssets implements HROpsHandler.
func (h *hrOpsHandlerImpl) ListAssets(w http.ResponseWriter, r *http.Request) {
	results, err := h.hrOpsService.ListAssets(r.Context(), queryString(r, "status"), queryString(r, "asset_type"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateAsset implements HROpsHandler.
func (h *hrOpsHandlerImpl) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	var req hrops.UpsertAssetRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.hrOpsService.UpdateAsset(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asset updated successfully", result)
}

// DeleteAsset implements HROpsHandler.
func (h *hrOpsHandlerImpl) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.hrOpsService.DeleteAsset(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asset deleted successfully", nil)
}

// AssignAsset implements HROpsHandler.
func (h *hrOpsHandlerImpl) AssignAsset(w http.ResponseWriter, r *http.Request) {
	var req hrops.AssignAssetRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AssetID = chi.URLParam(r, "id")

	result, err := h.hrOpsService.AssignAsset(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asset assigned successfully", result)
}

// ReturnAsset implements HROpsHandler.
func (h *hrOpsHandlerImpl) ReturnAsset(w http.ResponseWriter, r *http.Request) {
	var req hrops.ReturnAssetRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AssetID = chi.URLParam(r, "id")

	result, err := h.hrOpsService.ReturnAsset(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asset returned successfully", result)
}

// CreatePolicy implements HROpsHandler.
func (h *hrOpsHandlerImpl) CreatePolicy(w http.ResponseWriter, r *http.Request) {
	var req hrops.UpsertPolicyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.hrOpsService.CreatePolicy(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Policy created successfully", result)
}

// GetPolicy implements HROpsHandler.
func (h *hrOpsHandlerImpl) GetPolicy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.hrOpsService.GetPolicy(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPolicies implements HROpsHandler.
func (h *hrOpsHandlerImpl) ListPolicies(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	results, err := h.hrOpsService.ListPolicies(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdatePolicy implements HROpsHandler.
func (h *hrOpsHandlerImpl) UpdatePolicy(w http.ResponseWriter, r *http.Request) {
	var req hrops.UpsertPolicyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.hrOpsService.UpdatePolicy(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Policy updated successfully", result)
}

// DeletePolicy implements HROpsHandler.
func (h *hrOpsHandlerImpl) DeletePolicy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.hrOpsService.DeletePolicy(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Policy deleted successfully", nil)
}

// AcknowledgePolicy implements HROpsHandler.
func (h *hrOpsHandlerImpl) AcknowledgePolicy(w http.ResponseWriter, r *http.Request) {
	var req hrops.AcknowledgePolicyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.PolicyID = chi.URLParam(r, "id")

	result, err := h.hrOpsService.AcknowledgePolicy(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Policy acknowledged successfully", result)
}

// ListAcknowledgments implements HROpsHandler.
func (h *hrOpsHandlerImpl) ListAcknowledgments(w http.ResponseWriter, r *http.Request) {
	policyID := chi.URLParam(r, "id")

	results, err := h.hrOpsService.ListAcknowledgments(r.Context(), policyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
