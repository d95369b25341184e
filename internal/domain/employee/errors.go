package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmailExists          = errors.New("email already registered")
	ErrEmployeeCodeExists   = errors.New("employee code already exists")
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrDepartmentNameExists = errors.New("department name already exists")
	ErrSelfReference        = errors.New("employee cannot manage or lead themselves")
)
