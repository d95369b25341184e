package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/biometric"
	"github.com/nimbus-hr/hrms-backend-go/internal/handler/http/response"
)

type BiometricHandler interface {
	CreateIntegration(w http.ResponseWriter, r *http.Request)
	GetIntegration(w http.ResponseWriter, r *http.Request)
	ListIntegrations(w http.ResponseWriter, r *http.Request)
	UpdateIntegration(w http.ResponseWriter, r *http.Request)
	DeleteIntegration(w http.ResponseWriter, r *http.Request)
	TestIntegration(w http.ResponseWriter, r *http.Request)
	QueueSync(w http.ResponseWriter, r *http.Request)
	ListPunches(w http.ResponseWriter, r *http.Request)
	Webhook(w http.ResponseWriter, r *http.Request)
}

type biometricHandlerImpl struct {
	biometricService biometric.BiometricService
}

func NewBiometricHandler(biometricService biometric.BiometricService) BiometricHandler {
	return &biometricHandlerImpl{
		biometricService: biometricService,
	}
}

// CreateIntegration implements BiometricHandler.
func (h *biometricHandlerImpl) CreateIntegration(w http.ResponseWriter, r *http.Request) {
	var req biometric.UpsertIntegrationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.biometricService.CreateIntegration(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Integration created successfully", result)
}

// GetIntegration implements BiometricHandler.
func (h *biometricHandlerImpl) GetIntegration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.biometricService.GetIntegration(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListIntegrations implements BiometricHandler.
func (h *biometricHandlerImpl) ListIntegrations(w http.ResponseWriter, r *http.Request) {
	results, err := h.biometricService.ListIntegrations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateIntegration implements BiometricHandler.
func (h *biometricHandlerImpl) UpdateIntegration(w http.ResponseWriter, r *http.Request) {
	var req biometric.UpsertIntegrationRequest

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

	result, err := h.biometricService.UpdateIntegration(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Integration updated successfully", result)
}

// DeleteIntegration implements BiometricHandler.
func (h *biometricHandlerImpl) DeleteIntegration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.biometricService.DeleteIntegration(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Integration deleted successfully", nil)
}

// TestIntegration implements BiometricHandler.
func (h *biometricHandlerImpl) TestIntegration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.biometricService.TestIntegration(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Integration test passed", nil)
}

// QueueSync implements BiometricHandler.
func (h *biometricHandlerImpl) QueueSync(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.biometricService.QueueSync(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sync queued", nil)
}

// ListPunches implements BiometricHandler.
func (h *biometricHandlerImpl) ListPunches(w http.ResponseWriter, r *http.Request) {
	filter := biometric.PunchFilter{
		IntegrationID: queryString(r, "integration_id"),
		EmployeeID:    queryString(r, "employee_id"),
	}
	filter.Page, filter.Limit = queryPagination(r)

	results, total, err := h.biometricService.ListPunches(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, pageMeta(filter.Page, filter.Limit, total))
}

// Webhook implements BiometricHandler. Devices authenticate with the
// integration token in the X-Webhook-Token header or the token query
// parameter; there is no session auth on this route.
func (h *biometricHandlerImpl) Webhook(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("X-Webhook-Token")
	if token == "" {
		token = r.URL.Query().Get("token")
	}

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		slog.Error("Failed to decode webhook payload", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.biometricService.IngestWebhook(r.Context(), token, payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
