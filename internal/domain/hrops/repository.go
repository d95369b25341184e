package hrops

import "context"

// OnboardingTaskRepository defines data access for onboarding tasks.
type OnboardingTaskRepository interface {
	Create(ctx context.Context, task OnboardingTask) (OnboardingTask, error)
	GetByID(ctx context.Context, id string) (OnboardingTask, error)
	List(ctx context.Context, employeeID *string, status *string) ([]OnboardingTask, error)
	Update(ctx context.Context, task OnboardingTask) error
	Delete(ctx context.Context, id string) error
}

// AssetRepository defines data access for assets and their handover log.
type AssetRepository interface {
	Create(ctx context.Context, asset Asset) (Asset, error)
	GetByID(ctx context.Context, id string) (Asset, error)
	List(ctx context.Context, status *string, assetType *string) ([]Asset, error)
	Update(ctx context.Context, asset Asset) error
	Delete(ctx context.Context, id string) error

	CreateAssignment(ctx context.Context, assignment AssetAssignment) (AssetAssignment, error)
	// GetOpenAssignment returns the current unreturned assignment, or nil.
	GetOpenAssignment(ctx context.Context, assetID string) (*AssetAssignment, error)
	CloseAssignment(ctx context.Context, assignment AssetAssignment) error
	ListAssignments(ctx context.Context, assetID *string, employeeID *string) ([]AssetAssignment, error)
}

// PolicyRepository defines data access for policies and acknowledgments.
type PolicyRepository interface {
	Create(ctx context.Context, policy Policy) (Policy, error)
	GetByID(ctx context.Context, id string) (Policy, error)
	List(ctx context.Context, activeOnly bool) ([]Policy, error)
	Update(ctx context.Context, policy Policy) error
	Delete(ctx context.Context, id string) error

	CreateAcknowledgment(ctx context.Context, ack PolicyAcknowledgment) (PolicyAcknowledgment, error)
	// GetAcknowledgment returns nil when the employee has not acknowledged
	// the policy.
	GetAcknowledgment(ctx context.Context, policyID, employeeID string) (*PolicyAcknowledgment, error)
	ListAcknowledgments(ctx context.Context, policyID string) ([]PolicyAcknowledgment, error)
}
