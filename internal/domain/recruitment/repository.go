package recruitment

import "context"

// PostingRepository defines data access for job postings.
type PostingRepository interface {
	Create(ctx context.Context, posting JobPosting) (JobPosting, error)
	GetByID(ctx context.Context, id string) (JobPosting, error)
	List(ctx context.Context, status *string, departmentID *string) ([]JobPosting, error)
	Update(ctx context.Context, posting JobPosting) error
	Delete(ctx context.Context, id string) error
}

// ApplicationRepository defines data access for applications.
type ApplicationRepository interface {
	Create(ctx context.Context, application Application) (Application, error)
	GetByID(ctx context.Context, id string) (Application, error)
	// GetByProviderAndExternalID returns nil when no application with
	// that provider identity exists.
	GetByProviderAndExternalID(ctx context.Context, provider, externalID string) (*Application, error)
	List(ctx context.Context, filter ApplicationFilter) ([]Application, error)
	Update(ctx context.Context, application Application) error
	Delete(ctx context.Context, id string) error
}

// IntegrationRepository defines data access for provider integrations
// and their posting links.
type IntegrationRepository interface {
	Create(ctx context.Context, integration Integration) (Integration, error)
	GetByID(ctx context.Context, id string) (Integration, error)
	// GetByProviderAndToken matches active integrations only and
	// returns nil on miss.
	GetByProviderAndToken(ctx context.Context, provider, token string) (*Integration, error)
	List(ctx context.Context) ([]Integration, error)
	Update(ctx context.Context, integration Integration) error
	Delete(ctx context.Context, id string) error

	UpsertPostingLink(ctx context.Context, link PostingLink) (PostingLink, error)
	// GetPostingLinkByExternalJobID returns nil on miss.
	GetPostingLinkByExternalJobID(ctx context.Context, integrationID, externalJobID string) (*PostingLink, error)
	ListPostingLinks(ctx context.Context, jobPostingID string) ([]PostingLink, error)
}
