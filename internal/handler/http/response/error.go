package response

import (
	"errors"
	"net/http"

	"github.com/nimbus-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/biometric"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/hrops"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/leave"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/payroll"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/performance"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/recruitment"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/role"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/timesheet"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Role domain errors
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")
	case errors.Is(err, role.ErrRoleNameExists):
		Conflict(w, "Role name already exists")
	case errors.Is(err, role.ErrSystemRoleReadOnly):
		Forbidden(w, "System roles cannot be modified or deleted")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, employee.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, employee.ErrSelfReference):
		BadRequest(w, "Employee cannot manage or lead themselves", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceExists):
		Conflict(w, "Attendance already recorded for this employee and date")
	case errors.Is(err, attendance.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, attendance.ErrEmployeeShiftNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Biometric domain errors
	case errors.Is(err, biometric.ErrIntegrationNotFound):
		NotFound(w, "Biometric integration not found")
	case errors.Is(err, biometric.ErrInvalidWebhookToken):
		Forbidden(w, "Invalid token.")
	case errors.Is(err, biometric.ErrNoPunchRecords):
		BadRequest(w, "No punch records found.", nil)
	case errors.Is(err, biometric.ErrNoCredentials):
		BadRequest(w, "No credentials stored for this integration", nil)
	case errors.Is(err, biometric.ErrNotPollingType):
		BadRequest(w, "Sync is available only for polling integrations", nil)

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")
	case errors.Is(err, timesheet.ErrInvalidStatusTransition):
		Conflict(w, "Invalid timesheet status transition")
	case errors.Is(err, timesheet.ErrOvertimeRequestNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, timesheet.ErrOvertimeAlreadyProcessed):
		Conflict(w, "Overtime request already processed")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrBalanceExists):
		Conflict(w, "Leave balance already exists for this employee, type and year")
	case errors.Is(err, leave.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPeriodExists):
		Conflict(w, "Payroll already exists for this employee and period")

	// HR operations domain errors
	case errors.Is(err, hrops.ErrTaskNotFound):
		NotFound(w, "Onboarding task not found")
	case errors.Is(err, hrops.ErrAssetNotFound):
		NotFound(w, "Asset not found")
	case errors.Is(err, hrops.ErrAssetTagExists):
		Conflict(w, "Asset tag already exists")
	case errors.Is(err, hrops.ErrAssetNotAvailable):
		Conflict(w, "Asset is not available for assignment")
	case errors.Is(err, hrops.ErrAssetNotAssigned):
		Conflict(w, "Asset is not currently assigned")
	case errors.Is(err, hrops.ErrPolicyNotFound):
		NotFound(w, "Policy not found")
	case errors.Is(err, hrops.ErrAlreadyAcknowledged):
		Conflict(w, "Policy already acknowledged by this employee")

	// Performance domain errors
	case errors.Is(err, performance.ErrKPINotFound):
		NotFound(w, "KPI not found")
	case errors.Is(err, performance.ErrKPIInUse):
		Conflict(w, "KPI has been scored in reviews; deactivate it instead")
	case errors.Is(err, performance.ErrPeriodNotFound):
		NotFound(w, "Evaluation period not found")
	case errors.Is(err, performance.ErrPeriodClosed):
		Conflict(w, "Evaluation period is closed")
	case errors.Is(err, performance.ErrReviewNotFound):
		NotFound(w, "Performance review not found")
	case errors.Is(err, performance.ErrReviewExists):
		Conflict(w, "A review already exists for this employee and period")
	case errors.Is(err, performance.ErrReviewSubmitted):
		Conflict(w, "Submitted reviews cannot be modified")
	case errors.Is(err, performance.ErrDuplicateReviewKPI):
		BadRequest(w, "A KPI was scored more than once", nil)
	case errors.Is(err, performance.ErrScoreOutOfRange):
		BadRequest(w, "Scores must be between 0 and 100", nil)
	case errors.Is(err, performance.ErrInvalidPeriodDates):
		BadRequest(w, "End date must not be before start date", nil)

	// Recruitment domain errors
	case errors.Is(err, recruitment.ErrPostingNotFound):
		NotFound(w, "Job posting not found")
	case errors.Is(err, recruitment.ErrApplicationNotFound):
		NotFound(w, "Application not found")
	case errors.Is(err, recruitment.ErrIntegrationNotFound):
		NotFound(w, "Integration not found")
	case errors.Is(err, recruitment.ErrUnknownProvider):
		BadRequest(w, "Unknown provider.", nil)
	case errors.Is(err, recruitment.ErrInvalidWebhookToken):
		Forbidden(w, "Invalid integration token.")
	case errors.Is(err, recruitment.ErrCandidateEmailNeeded):
		BadRequest(w, "Candidate email is required.", nil)
	case errors.Is(err, recruitment.ErrPostingNotResolvable):
		BadRequest(w, "Job posting not found.", nil)
	case errors.Is(err, recruitment.ErrAlreadyHired):
		Conflict(w, "Application is already linked to a hired employee")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
