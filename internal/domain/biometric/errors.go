package biometric

import "errors"

// Biometric domain errors
var (
	ErrIntegrationNotFound = errors.New("biometric integration not found")
	ErrInvalidWebhookToken = errors.New("invalid webhook token")
	ErrNoPunchRecords      = errors.New("no punch records found in payload")
	ErrNoCredentials       = errors.New("no credentials stored for this integration")
	ErrNotPollingType      = errors.New("sync is available only for polling integrations")
)
