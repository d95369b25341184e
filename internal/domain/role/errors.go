package role

import "errors"

// Role domain errors
var (
	ErrRoleNotFound       = errors.New("role not found")
	ErrRoleNameExists     = errors.New("role name already exists")
	ErrSystemRoleReadOnly = errors.New("system roles cannot be modified or deleted")
)
