package role

import (
	"time"

	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/validator"
)

type CreateRoleRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Portal      string   `json:"portal"`
	Permissions []string `json:"permissions"`
}

func (r CreateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsInSlice(r.Portal, []string{PortalAdmin, PortalEmployee}) {
		errs = append(errs, validator.ValidationError{Field: "portal", Message: "portal must be Admin or Employee"})
	}
	for _, p := range r.Permissions {
		if validator.IsEmpty(p) {
			errs = append(errs, validator.ValidationError{Field: "permissions", Message: "permissions must not contain empty entries"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRoleRequest struct {
	ID          string   `json:"-"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Portal      string   `json:"portal"`
	Permissions []string `json:"permissions"`
}

func (r UpdateRoleRequest) Validate() error {
	return CreateRoleRequest{
		Name:        r.Name,
		Description: r.Description,
		Portal:      r.Portal,
		Permissions: r.Permissions,
	}.Validate()
}

type RoleResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Portal      string   `json:"portal"`
	Permissions []string `json:"permissions"`
	IsSystem    bool     `json:"is_system"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func ToRoleResponse(r Role) RoleResponse {
	return RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Portal:      r.Portal,
		Permissions: r.Permissions,
		IsSystem:    r.IsSystem,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}
