package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/recruitment"
	"github.com/nimbus-hr/hrms-backend-go/internal/handler/http/response"
)

type RecruitmentHandler interface {
	CreatePosting(w http.ResponseWriter, r *http.Request)
	GetPosting(w http.ResponseWriter, r *http.Request)
	ListPostings(w http.ResponseWriter, r *http.Request)
	UpdatePosting(w http.ResponseWriter, r *http.Request)
	DeletePosting(w http.ResponseWriter, r *http.Request)

	CreateApplication(w http.ResponseWriter, r *http.Request)
	GetApplication(w http.ResponseWriter, r *http.Request)
	ListApplications(w http.ResponseWriter, r *http.Request)
	UpdateApplication(w http.ResponseWriter, r *http.Request)
	DeleteApplication(w http.ResponseWriter, r *http.Request)

	CreateIntegration(w http.ResponseWriter, r *http.Request)
	GetIntegration(w http.ResponseWriter, r *http.Request)
	ListIntegrations(w http.ResponseWriter, r *http.Request)
	UpdateIntegration(w http.ResponseWriter, r *http.Request)
	DeleteIntegration(w http.ResponseWriter, r *http.Request)

	Webhook(w http.ResponseWriter, r *http.Request)
}

type recruitmentHandlerImpl struct {
	recruitmentService recruitment.RecruitmentService
}

func NewRecruitmentHandler(recruitmentService recruitment.RecruitmentService) RecruitmentHandler {
	return &recruitmentHandlerImpl{
		recruitmentService: recruitmentService,
	}
}

// CreatePosting implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) CreatePosting(w http.ResponseWriter, r *http.Request) {
	var req recruitment.UpsertPostingRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.recruitmentService.CreatePosting(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job posting created successfully", result)
}

// GetPosting implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) GetPosting(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.recruitmentService.GetPosting(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPostings implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) ListPostings(w http.ResponseWriter, r *http.Request) {
	results, err := h.recruitmentService.ListPostings(r.Context(), queryString(r, "status"), queryString(r, "department_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdatePosting implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) UpdatePosting(w http.ResponseWriter, r *http.Request) {
	var req recruitment.UpsertPostingRequest

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

	result, err := h.recruitmentService.UpdatePosting(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job posting updated successfully", result)
}

// DeletePosting implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) DeletePosting(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.recruitmentService.DeletePosting(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job posting deleted successfully", nil)
}

// CreateApplication implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var req recruitment.UpsertApplicationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.recruitmentService.CreateApplication(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Application created successfully", result)
}

// GetApplication implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) GetApplication(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.recruitmentService.GetApplication(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListApplications implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) ListApplications(w http.ResponseWriter, r *http.Request) {
	filter := recruitment.ApplicationFilter{
		JobPostingID: queryString(r, "job_posting_id"),
		Status:       queryString(r, "status"),
		Provider:     queryString(r, "provider"),
	}

	results, err := h.recruitmentService.ListApplications(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateApplication implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	var req recruitment.UpsertApplicationRequest

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

	result, err := h.recruitmentService.UpdateApplication(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Application updated successfully", result)
}

// DeleteApplication implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.recruitmentService.DeleteApplication(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Application deleted successfully", nil)
}

// CreateIntegration implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) CreateIntegration(w http.ResponseWriter, r *http.Request) {
	var req recruitment.UpsertIntegrationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.recruitmentService.CreateIntegration(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Integration created successfully", result)
}

// GetIntegration implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) GetIntegration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.recruitmentService.GetIntegration(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListIntegrations implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) ListIntegrations(w http.ResponseWriter, r *http.Request) {
	results, err := h.recruitmentService.ListIntegrations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateIntegration implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) UpdateIntegration(w http.ResponseWriter, r *http.Request) {
	var req recruitment.UpsertIntegrationRequest

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

	result, err := h.recruitmentService.UpdateIntegration(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Integration updated successfully", result)
}

// DeleteIntegration implements RecruitmentHandler.
func (h *recruitmentHandlerImpl) DeleteIntegration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.recruitmentService.DeleteIntegration(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Integration deleted successfully", nil)
}

// Webhook implements RecruitmentHandler. Providers authenticate with the
// integration token in the X-Integration-Token header or the token query
// parameter; there is no session auth on this route.
func (h *recruitmentHandlerImpl) Webhook(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")

	token := r.Header.Get("X-Integration-Token")
	if token == "" {
		token = r.URL.Query().Get("token")
	}

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		slog.Error("Failed to decode webhook payload", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.recruitmentService.IngestWebhook(r.Context(), provider, token, payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
