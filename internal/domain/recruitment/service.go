package recruitment

import "context"

// RecruitmentService covers job postings, applications, provider
// integrations, and the inbound candidate webhook.
type RecruitmentService interface {
	CreatePosting(ctx context.Context, req UpsertPostingRequest) (PostingResponse, error)
	GetPosting(ctx context.Context, id string) (PostingResponse, error)
	ListPostings(ctx context.Context, status *string, departmentID *string) ([]PostingResponse, error)
	UpdatePosting(ctx context.Context, req UpsertPostingRequest) (PostingResponse, error)
	DeletePosting(ctx context.Context, id string) error

	CreateApplication(ctx context.Context, req UpsertApplicationRequest) (ApplicationResponse, error)
	GetApplication(ctx context.Context, id string) (ApplicationResponse, error)
	ListApplications(ctx context.Context, filter ApplicationFilter) ([]ApplicationResponse, error)
	UpdateApplication(ctx context.Context, req UpsertApplicationRequest) (ApplicationResponse, error)
	DeleteApplication(ctx context.Context, id string) error

	CreateIntegration(ctx context.Context, req UpsertIntegrationRequest) (IntegrationResponse, error)
	GetIntegration(ctx context.Context, id string) (IntegrationResponse, error)
	ListIntegrations(ctx context.Context) ([]IntegrationResponse, error)
	UpdateIntegration(ctx context.Context, req UpsertIntegrationRequest) (IntegrationResponse, error)
	DeleteIntegration(ctx context.Context, id string) error

	// IngestWebhook authenticates the provider token, extracts the
	// candidate from the raw payload, and creates an application.
	// Replays with the same (provider, external_id) return Duplicate.
	IngestWebhook(ctx context.Context, providerSegment, token string, payload map[string]any) (WebhookResult, error)
}
