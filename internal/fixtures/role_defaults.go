package fixtures

import (
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/role"
)

// RoleDefaultsVersion is bumped whenever the built-in definitions change,
// so drifted seed data can be spotted in the field.
const RoleDefaultsVersion = 1

// DefaultRoleDefinitions are the built-in roles every deployment starts
// with. They are seeded into the roles table at startup and double as the
// resolver fallback for role names that have no stored row.
var DefaultRoleDefinitions = map[string]role.Definition{
	"Admin": {
		Portal:      role.PortalAdmin,
		Permissions: []string{"*"},
		IsSystem:    true,
	},
	"HR": {
		Portal: role.PortalAdmin,
		Permissions: []string{
			"portal.admin",
			"dashboard.view",
			"employees.view",
			"employees.manage",
			"employees.view_salary",
			"employees.view_bank",
			"org_chart.view",
			"onboarding.view",
			"onboarding.manage",
			"assets.view",
			"assets.manage",
			"policies.view",
			"policies.manage",
			"leave.view",
			"leave.manage",
			"attendance.view",
			"attendance.manage",
			"timesheet.view",
			"timesheet.manage",
			"overtime.view",
			"overtime.manage",
			"payroll.view",
			"payroll.manage",
			"claims.view",
			"claims.manage",
			"performance.view",
			"performance.manage",
			"recruitment.view",
			"recruitment.manage",
			"settings.view",
			"settings.manage",
			"roles.manage",
		},
		IsSystem: true,
	},
	"Employee": {
		Portal: role.PortalEmployee,
		Permissions: []string{
			"portal.employee",
			"dashboard.view",
			"employees.self_view",
			"onboarding.self",
			"assets.self",
			"policies.self",
			"leave.self",
			"attendance.self",
			"timesheet.self",
			"overtime.self",
			"payroll.self",
			"claims.self",
		},
		IsSystem: true,
	},
	// Managers are employees with direct reports. They stay in the Employee
	// portal but get team performance capabilities on top.
	"Manager": {
		Portal: role.PortalEmployee,
		Permissions: []string{
			"portal.employee",
			"dashboard.view",
			"employees.self_view",
			"onboarding.self",
			"assets.self",
			"policies.self",
			"leave.self",
			"attendance.self",
			"timesheet.self",
			"overtime.self",
			"payroll.self",
			"claims.self",
			"performance.view",
			"performance.manage",
		},
		IsSystem: true,
	},
}

// FallbackRoleName is the definition unknown role names resolve to.
const FallbackRoleName = "Employee"
