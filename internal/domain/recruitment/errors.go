package recruitment

import "errors"

var (
	ErrPostingNotFound      = errors.New("job posting not found")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrIntegrationNotFound  = errors.New("recruitment integration not found")
	ErrUnknownProvider      = errors.New("unknown recruitment provider")
	ErrInvalidWebhookToken  = errors.New("invalid integration token")
	ErrCandidateEmailNeeded = errors.New("candidate email is required")
	ErrPostingNotResolvable = errors.New("job posting not found for payload")
	ErrAlreadyHired         = errors.New("application already linked to a hired employee")
)
