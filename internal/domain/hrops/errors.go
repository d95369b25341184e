package hrops

import "errors"

// HR operations domain errors
var (
	ErrTaskNotFound        = errors.New("onboarding task not found")
	ErrAssetNotFound       = errors.New("asset not found")
	ErrAssetTagExists      = errors.New("asset tag already exists")
	ErrAssetNotAvailable   = errors.New("asset is not available for assignment")
	ErrAssetNotAssigned    = errors.New("asset is not currently assigned")
	ErrPolicyNotFound      = errors.New("policy not found")
	ErrAlreadyAcknowledged = errors.New("policy already acknowledged by this employee")
)
