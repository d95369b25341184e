package biometric

import "context"

// BiometricService defines device integration management and webhook
// ingestion. Ingestion is best-effort: malformed punch candidates are
// dropped, never surfaced as errors.
type BiometricService interface {
	CreateIntegration(ctx context.Context, req UpsertIntegrationRequest) (IntegrationResponse, error)
	GetIntegration(ctx context.Context, id string) (IntegrationResponse, error)
	ListIntegrations(ctx context.Context) ([]IntegrationResponse, error)
	UpdateIntegration(ctx context.Context, req UpsertIntegrationRequest) (IntegrationResponse, error)
	DeleteIntegration(ctx context.Context, id string) error

	// TestIntegration verifies stored credentials exist.
	TestIntegration(ctx context.Context, id string) error

	// QueueSync marks a polling integration for the next sync run.
	QueueSync(ctx context.Context, id string) error

	ListPunches(ctx context.Context, filter PunchFilter) ([]PunchResponse, int64, error)

	// IngestWebhook authenticates the token, normalizes the payload,
	// persists the punches and re-derives attendance for every resolved
	// employee. Returns the number of punches created.
	IngestWebhook(ctx context.Context, token string, payload map[string]any) (WebhookResult, error)
}
