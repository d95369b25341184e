package biometric

import (
	"strings"
	"time"
)

// Integration providers
const (
	ProviderZKTeco  = "ZKTeco"
	ProviderESSL    = "eSSL"
	ProviderBioStar = "BioStar"
	ProviderSuprema = "Suprema"
	ProviderGeneric = "Generic"
)

// Connection types
const (
	ConnectionWebhook = "Webhook"
	ConnectionPolling = "Polling"
)

// Sync statuses recorded after ingestion attempts
const (
	SyncStatusSuccess = "Success"
	SyncStatusQueued  = "Queued"
	SyncStatusFailed  = "Failed"
)

// DataMapping names the JSON paths a vendor payload stores punch fields
// under. Paths are dotted object paths ("data.employee.badge_no"). Empty
// fields fall back to the conventional defaults.
type DataMapping struct {
	EmployeeIdentifierField string `json:"employee_identifier_field,omitempty"`
	EmployeeIdentifierType  string `json:"employee_identifier_type,omitempty"`
	TimestampField          string `json:"timestamp_field,omitempty"`
	DirectionField          string `json:"direction_field,omitempty"`
}

// Identifier types for employee resolution
const (
	IdentifierTypeEmail      = "email"
	IdentifierTypeEmployeeID = "employee_id"
)

type Integration struct {
	ID             string
	Provider       string
	DisplayName    string
	ConnectionType string
	BaseURL        *string
	DeviceID       *string
	Credentials    map[string]any
	DataMapping    *DataMapping
	// WebhookToken is the per-integration shared secret devices present on
	// callbacks. Generated server-side; rotates only by recreation.
	WebhookToken    string
	IsActive        bool
	AutoSync        bool
	LastSyncAt      *time.Time
	LastSyncStatus  *string
	LastSyncMessage *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Punch is one raw punch event as delivered by a device. Rows are
// immutable once created; unresolved identities are kept with a nil
// EmployeeID for later auditing.
type Punch struct {
	ID                 string
	IntegrationID      string
	EmployeeID         *string
	EmployeeIdentifier *string
	DeviceID           *string
	PunchTime          time.Time
	Direction          *string
	RawPayload         map[string]any
	CreatedAt          time.Time

	// Joined for responses
	EmployeeName *string
}

// FieldPath is a parsed dotted object path. Lookup walks JSON objects
// segment by segment; a miss at any level yields nil rather than an error.
type FieldPath []string

func ParseFieldPath(path string) FieldPath {
	if path == "" {
		return nil
	}
	return FieldPath(strings.Split(path, "."))
}

// Lookup resolves the path against a decoded JSON value.
func (p FieldPath) Lookup(value any) any {
	if len(p) == 0 {
		return nil
	}
	current := value
	for _, segment := range p {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = obj[segment]
	}
	return current
}
