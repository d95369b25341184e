package biometric

import (
	"context"
	"time"
)

// IntegrationRepository defines data access methods for device integrations.
type IntegrationRepository interface {
	Create(ctx context.Context, integration Integration) (Integration, error)

	GetByID(ctx context.Context, id string) (Integration, error)

	// GetByWebhookToken matches active integrations only. Returns nil when
	// no active integration carries the token.
	GetByWebhookToken(ctx context.Context, token string) (*Integration, error)

	List(ctx context.Context) ([]Integration, error)

	Update(ctx context.Context, integration Integration) error

	Delete(ctx context.Context, id string) error

	// RecordSync updates the last-sync bookkeeping fields.
	RecordSync(ctx context.Context, id string, at time.Time, status, message string) error

	// ListQueuedPolling returns active polling integrations whose last sync
	// status is Queued; consumed by the polling cron job.
	ListQueuedPolling(ctx context.Context) ([]Integration, error)
}

// PunchRepository defines data access methods for raw punches.
type PunchRepository interface {
	Create(ctx context.Context, punch Punch) (Punch, error)

	List(ctx context.Context, filter PunchFilter) ([]Punch, int64, error)

	// ListByEmployeeAndDay returns all punches for the employee whose punch
	// time falls on the given local calendar day, ordered by punch time.
	ListByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) ([]Punch, error)
}
