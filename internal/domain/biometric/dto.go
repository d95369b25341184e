package biometric

import (
	"time"

	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/validator"
)

// PunchDraft is a normalized punch candidate extracted from a vendor
// payload. EmployeeID stays nil when the identifier did not resolve.
type PunchDraft struct {
	EmployeeID         *string
	EmployeeIdentifier *string
	PunchTime          time.Time
	Direction          *string
	RawPayload         map[string]any
}

type PunchFilter struct {
	IntegrationID *string
	EmployeeID    *string
	Page          int
	Limit         int
}

type UpsertIntegrationRequest struct {
	ID             string         `json:"-"`
	Provider       string         `json:"provider"`
	DisplayName    string         `json:"display_name"`
	ConnectionType string         `json:"connection_type"`
	BaseURL        *string        `json:"base_url"`
	DeviceID       *string        `json:"device_id"`
	Credentials    map[string]any `json:"credentials"`
	DataMapping    *DataMapping   `json:"data_mapping"`
	IsActive       *bool          `json:"is_active"`
	AutoSync       *bool          `json:"auto_sync"`
}

func (r UpsertIntegrationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DisplayName) {
		errs = append(errs, validator.ValidationError{Field: "display_name", Message: "display name is required"})
	}
	if !validator.IsInSlice(r.Provider, []string{ProviderZKTeco, ProviderESSL, ProviderBioStar, ProviderSuprema, ProviderGeneric}) {
		errs = append(errs, validator.ValidationError{Field: "provider", Message: "unknown provider"})
	}
	if !validator.IsInSlice(r.ConnectionType, []string{ConnectionWebhook, ConnectionPolling}) {
		errs = append(errs, validator.ValidationError{Field: "connection_type", Message: "connection type must be Webhook or Polling"})
	}
	if r.DataMapping != nil && r.DataMapping.EmployeeIdentifierType != "" &&
		!validator.IsInSlice(r.DataMapping.EmployeeIdentifierType, []string{IdentifierTypeEmail, IdentifierTypeEmployeeID}) {
		errs = append(errs, validator.ValidationError{Field: "data_mapping.employee_identifier_type", Message: "must be email or employee_id"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type IntegrationResponse struct {
	ID             string       `json:"id"`
	Provider       string       `json:"provider"`
	DisplayName    string       `json:"display_name"`
	ConnectionType string       `json:"connection_type"`
	BaseURL        *string      `json:"base_url,omitempty"`
	DeviceID       *string      `json:"device_id,omitempty"`
	DataMapping    *DataMapping `json:"data_mapping,omitempty"`
	// WebhookToken is only populated on creation; listing endpoints omit it.
	WebhookToken    string  `json:"webhook_token,omitempty"`
	IsActive        bool    `json:"is_active"`
	AutoSync        bool    `json:"auto_sync"`
	LastSyncAt      *string `json:"last_sync_at,omitempty"`
	LastSyncStatus  *string `json:"last_sync_status,omitempty"`
	LastSyncMessage *string `json:"last_sync_message,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

func ToIntegrationResponse(i Integration, includeToken bool) IntegrationResponse {
	resp := IntegrationResponse{
		ID:              i.ID,
		Provider:        i.Provider,
		DisplayName:     i.DisplayName,
		ConnectionType:  i.ConnectionType,
		BaseURL:         i.BaseURL,
		DeviceID:        i.DeviceID,
		DataMapping:     i.DataMapping,
		IsActive:        i.IsActive,
		AutoSync:        i.AutoSync,
		LastSyncStatus:  i.LastSyncStatus,
		LastSyncMessage: i.LastSyncMessage,
		CreatedAt:       i.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       i.UpdatedAt.Format(time.RFC3339),
	}
	if includeToken {
		resp.WebhookToken = i.WebhookToken
	}
	if i.LastSyncAt != nil {
		at := i.LastSyncAt.Format(time.RFC3339)
		resp.LastSyncAt = &at
	}
	return resp
}

type PunchResponse struct {
	ID                 string         `json:"id"`
	IntegrationID      string         `json:"integration_id"`
	EmployeeID         *string        `json:"employee_id,omitempty"`
	EmployeeName       *string        `json:"employee_name,omitempty"`
	EmployeeIdentifier *string        `json:"employee_identifier,omitempty"`
	DeviceID           *string        `json:"device_id,omitempty"`
	PunchTime          string         `json:"punch_time"`
	Direction          *string        `json:"direction,omitempty"`
	RawPayload         map[string]any `json:"raw_payload,omitempty"`
	CreatedAt          string         `json:"created_at"`
}

func ToPunchResponse(p Punch) PunchResponse {
	return PunchResponse{
		ID:                 p.ID,
		IntegrationID:      p.IntegrationID,
		EmployeeID:         p.EmployeeID,
		EmployeeName:       p.EmployeeName,
		EmployeeIdentifier: p.EmployeeIdentifier,
		DeviceID:           p.DeviceID,
		PunchTime:          p.PunchTime.Format(time.RFC3339),
		Direction:          p.Direction,
		RawPayload:         p.RawPayload,
		CreatedAt:          p.CreatedAt.Format(time.RFC3339),
	}
}

type WebhookResult struct {
	Created int `json:"created"`
}
