package hrops

import "context"

// HROpsService groups onboarding tasks, asset tracking, and company
// policy acknowledgments.
type HROpsService interface {
	CreateTask(ctx context.Context, req UpsertOnboardingTaskRequest) (OnboardingTaskResponse, error)
	GetTask(ctx context.Context, id string) (OnboardingTaskResponse, error)
	ListTasks(ctx context.Context, employeeID *string, status *string) ([]OnboardingTaskResponse, error)
	UpdateTask(ctx context.Context, req UpsertOnboardingTaskRequest) (OnboardingTaskResponse, error)
	DeleteTask(ctx context.Context, id string) error

	CreateAsset(ctx context.Context, req UpsertAssetRequest) (AssetResponse, error)
	GetAsset(ctx context.Context, id string) (AssetResponse, error)
	ListAssets(ctx context.Context, status *string, assetType *string) ([]AssetResponse, error)
	UpdateAsset(ctx context.Context, req UpsertAssetRequest) (AssetResponse, error)
	DeleteAsset(ctx context.Context, id string) error
	AssignAsset(ctx context.Context, req AssignAssetRequest) (AssetResponse, error)
	ReturnAsset(ctx context.Context, req ReturnAssetRequest) (AssetResponse, error)

	CreatePolicy(ctx context.Context, req UpsertPolicyRequest) (PolicyResponse, error)
	GetPolicy(ctx context.Context, id string) (PolicyResponse, error)
	ListPolicies(ctx context.Context, activeOnly bool) ([]PolicyResponse, error)
	UpdatePolicy(ctx context.Context, req UpsertPolicyRequest) (PolicyResponse, error)
	DeletePolicy(ctx context.Context, id string) error
	AcknowledgePolicy(ctx context.Context, req AcknowledgePolicyRequest) (PolicyAcknowledgmentResponse, error)
	ListAcknowledgments(ctx context.Context, policyID string) ([]PolicyAcknowledgmentResponse, error)
}
