package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/performance"
	"github.com/nimbus-hr/hrms-backend-go/internal/handler/http/response"
)

type PerformanceHandler interface {
	CreateKPI(w http.ResponseWriter, r *http.Request)
	GetKPI(w http.ResponseWriter, r *http.Request)
	ListKPIs(w http.ResponseWriter, r *http.Request)
	UpdateKPI(w http.ResponseWriter, r *http.Request)
	DeleteKPI(w http.ResponseWriter, r *http.Request)

	CreatePeriod(w http.ResponseWriter, r *http.Request)
	GetPeriod(w http.ResponseWriter, r *http.Request)
	ListPeriods(w http.ResponseWriter, r *http.Request)
	UpdatePeriod(w http.ResponseWriter, r *http.Request)
	DeletePeriod(w http.ResponseWriter, r *http.Request)

	CreateReview(w http.ResponseWriter, r *http.Request)
	GetReview(w http.ResponseWriter, r *http.Request)
	ListReviews(w http.ResponseWriter, r *http.Request)
	UpdateReview(w http.ResponseWriter, r *http.Request)
	DeleteReview(w http.ResponseWriter, r *http.Request)
	SubmitReview(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	performanceService performance.PerformanceService
}

func NewPerformanceHandler(performanceService performance.PerformanceService) PerformanceHandler {
	return &performanceHandlerImpl{
		performanceService: performanceService,
	}
}

// CreateKPI implements PerformanceHandler.
func (h *performanceHandlerImpl) CreateKPI(w http.ResponseWriter, r *http.Request) {
	var req performance.UpsertKPIRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.performanceService.CreateKPI(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "KPI created successfully", result)
}

// GetKPI implements PerformanceHandler.
func (h *performanceHandlerImpl) GetKPI(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.performanceService.GetKPI(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListKPIs implements PerformanceHandler.
func (h *performanceHandlerImpl) ListKPIs(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	results, err := h.performanceService.ListKPIs(r.Context(), activeOnly, queryString(r, "category"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateKPI implements PerformanceHandler.
func (h *performanceHandlerImpl) UpdateKPI(w http.ResponseWriter, r *http.Request) {
	var req performance.UpsertKPIRequest

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

	result, err := h.performanceService.UpdateKPI(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "KPI updated successfully", result)
}

// DeleteKPI implements PerformanceHandler.
func (h *performanceHandlerImpl) DeleteKPI(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.performanceService.DeleteKPI(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "KPI deleted successfully", nil)
}

// CreatePeriod implements PerformanceHandler.
func (h *performanceHandlerImpl) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	var req performance.UpsertPeriodRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.performanceService.CreatePeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Evaluation period created successfully", result)
}

// GetPeriod implements PerformanceHandler.
func (h *performanceHandlerImpl) GetPeriod(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.performanceService.GetPeriod(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPeriods implements PerformanceHandler.
func (h *performanceHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	results, err := h.performanceService.ListPeriods(r.Context(), queryString(r, "status"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdatePeriod implements PerformanceHandler.
func (h *performanceHandlerImpl) UpdatePeriod(w http.ResponseWriter, r *http.Request) {
	var req performance.UpsertPeriodRequest

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

	result, err := h.performanceService.UpdatePeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Evaluation period updated successfully", result)
}

// DeletePeriod implements PerformanceHandler.
func (h *performanceHandlerImpl) DeletePeriod(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.performanceService.DeletePeriod(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Evaluation period deleted successfully", nil)
}

// CreateReview implements PerformanceHandler.
func (h *performanceHandlerImpl) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req performance.UpsertReviewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.performanceService.CreateReview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Performance review created successfully", result)
}

// GetReview implements PerformanceHandler.
func (h *performanceHandlerImpl) GetReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.performanceService.GetReview(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListReviews implements PerformanceHandler.
func (h *performanceHandlerImpl) ListReviews(w http.ResponseWriter, r *http.Request) {
	results, err := h.performanceService.ListReviews(r.Context(), queryString(r, "employee_id"), queryString(r, "period_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateReview implements PerformanceHandler.
func (h *performanceHandlerImpl) UpdateReview(w http.ResponseWriter, r *http.Request) {
	var req performance.UpsertReviewRequest

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

	result, err := h.performanceService.UpdateReview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review updated successfully", result)
}

// DeleteReview implements PerformanceHandler.
func (h *performanceHandlerImpl) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.performanceService.DeleteReview(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review deleted successfully", nil)
}

// SubmitReview implements PerformanceHandler.
func (h *performanceHandlerImpl) SubmitReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.performanceService.SubmitReview(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review submitted successfully", result)
}
