package leave

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nimbus-hr/hrms-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/leave"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/role"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/email"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRequestRepository
	balanceRepo  leave.LeaveBalanceRepository
	holidayRepo  leave.HolidayRepository
	employeeRepo employee.EmployeeRepository
	roleService  role.RoleService
	emailService email.EmailService
}

func NewLeaveService(
	leaveRepo leave.LeaveRequestRepository,
	balanceRepo leave.LeaveBalanceRepository,
	holidayRepo leave.HolidayRepository,
	employeeRepo employee.EmployeeRepository,
	roleService role.RoleService,
	emailService email.EmailService,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		balanceRepo:  balanceRepo,
		holidayRepo:  holidayRepo,
		employeeRepo: employeeRepo,
		roleService:  roleService,
		emailService: emailService,
	}
}

func (s *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	// Total days are inclusive of both endpoints.
	totalDays := int(end.Sub(start).Hours()/24) + 1

	request := leave.LeaveRequest{
		ID:         uuid.New().String(),
		EmployeeID: req.EmployeeID,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		TotalDays:  totalDays,
		Status:     leave.StatusPending,
		Reason:     req.Reason,
	}

	balance, err := s.balanceRepo.GetForEmployee(ctx, req.EmployeeID, req.LeaveType, start.Year())
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if balance != nil && balance.Available() < totalDays {
		return leave.LeaveRequestResponse{}, leave.ErrInsufficientBalance
	}

	created, err := s.leaveRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	s.notifyApprovers(ctx, emp, created)

	return leave.ToLeaveRequestResponse(created), nil
}

// notifyApprovers emails everyone whose role can manage leave. Notification
// failure never fails the request.
func (s *LeaveServiceImpl) notifyApprovers(ctx context.Context, emp employee.Employee, request leave.LeaveRequest) {
	recipients, err := s.roleService.EmailsForPermission(ctx, "leave.manage")
	if err != nil {
		slog.Warn("Failed to resolve leave approvers", "error", err)
		return
	}
	if len(recipients) == 0 {
		return
	}
	if err := s.emailService.SendLeaveRequested(recipients, emp.FullName(), request.LeaveType,
		request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02"), request.TotalDays); err != nil {
		slog.Warn("Failed to send leave request notification", "leave_request_id", request.ID, "error", err)
	}
}

func (s *LeaveServiceImpl) notifyEmployee(ctx context.Context, request leave.LeaveRequest) {
	emp, err := s.employeeRepo.GetByID(ctx, request.EmployeeID)
	if err != nil {
		slog.Warn("Failed to load employee for leave notification", "employee_id", request.EmployeeID, "error", err)
		return
	}
	if err := s.emailService.SendLeaveDecision(emp.Email, emp.FullName(), request.LeaveType, request.Status, request.RejectionReason); err != nil {
		slog.Warn("Failed to send leave decision notification", "leave_request_id", request.ID, "error", err)
	}
}

func (s *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.ToLeaveRequestResponse(request), nil
}

func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, int64, error) {
	rows, total, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(rows))
	for _, request := range rows {
		responses = append(responses, leave.ToLeaveRequestResponse(request))
	}
	return responses, total, nil
}

// ApproveLeaveRequest approves a pending request and charges the employee's
// balance for the year the leave starts in.
func (s *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	balance, err := s.balanceRepo.GetForEmployee(ctx, request.EmployeeID, request.LeaveType, request.StartDate.Year())
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if balance != nil {
		if balance.Available() < request.TotalDays {
			return leave.LeaveRequestResponse{}, leave.ErrInsufficientBalance
		}
		balance.Used += request.TotalDays
		if err := s.balanceRepo.Update(ctx, *balance); err != nil {
			return leave.LeaveRequestResponse{}, err
		}
	}

	request.Status = leave.StatusApproved
	if err := s.leaveRepo.Update(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	s.notifyEmployee(ctx, request)

	return leave.ToLeaveRequestResponse(request), nil
}

func (s *LeaveServiceImpl) RejectLeaveRequest(ctx context.Context, req leave.RejectLeaveRequest) (leave.LeaveRequestResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	request.Status = leave.StatusRejected
	request.RejectionReason = req.RejectionReason
	if err := s.leaveRepo.Update(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	s.notifyEmployee(ctx, request)

	return leave.ToLeaveRequestResponse(request), nil
}

// CancelLeaveRequest cancels a request. Approved leave returns the charged
// days to the balance.
func (s *LeaveServiceImpl) CancelLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.Status == leave.StatusCancelled || request.Status == leave.StatusRejected {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	if request.Status == leave.StatusApproved {
		balance, err := s.balanceRepo.GetForEmployee(ctx, request.EmployeeID, request.LeaveType, request.StartDate.Year())
		if err != nil {
			return leave.LeaveRequestResponse{}, err
		}
		if balance != nil {
			balance.Used -= request.TotalDays
			if balance.Used < 0 {
				balance.Used = 0
			}
			if err := s.balanceRepo.Update(ctx, *balance); err != nil {
				return leave.LeaveRequestResponse{}, err
			}
		}
	}

	request.Status = leave.StatusCancelled
	if err := s.leaveRepo.Update(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.ToLeaveRequestResponse(request), nil
}

func (s *LeaveServiceImpl) CreateLeaveBalance(ctx context.Context, req leave.UpsertLeaveBalanceRequest) (leave.LeaveBalanceResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveBalanceResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveBalanceResponse{}, err
	}

	balance := leave.LeaveBalance{
		ID:         uuid.New().String(),
		EmployeeID: req.EmployeeID,
		LeaveType:  req.LeaveType,
		Balance:    req.Balance,
		Used:       req.Used,
		Year:       req.Year,
	}

	created, err := s.balanceRepo.Create(ctx, balance)
	if err != nil {
		return leave.LeaveBalanceResponse{}, err
	}
	return leave.ToLeaveBalanceResponse(created), nil
}

func (s *LeaveServiceImpl) ListLeaveBalances(ctx context.Context, employeeID *string, year *int) ([]leave.LeaveBalanceResponse, error) {
	balances, err := s.balanceRepo.List(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveBalanceResponse, 0, len(balances))
	for _, balance := range balances {
		responses = append(responses, leave.ToLeaveBalanceResponse(balance))
	}
	return responses, nil
}

func (s *LeaveServiceImpl) UpdateLeaveBalance(ctx context.Context, req leave.UpsertLeaveBalanceRequest) (leave.LeaveBalanceResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveBalanceResponse{}, err
	}

	existing, err := s.balanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveBalanceResponse{}, err
	}

	existing.Balance = req.Balance
	existing.Used = req.Used

	if err := s.balanceRepo.Update(ctx, existing); err != nil {
		return leave.LeaveBalanceResponse{}, err
	}
	return leave.ToLeaveBalanceResponse(existing), nil
}

func (s *LeaveServiceImpl) CreateHoliday(ctx context.Context, req leave.UpsertHolidayRequest) (leave.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.HolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	holiday := leave.Holiday{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Date:        date,
		IsActive:    true,
		Description: req.Description,
	}
	if req.IsActive != nil {
		holiday.IsActive = *req.IsActive
	}

	created, err := s.holidayRepo.Create(ctx, holiday)
	if err != nil {
		return leave.HolidayResponse{}, err
	}
	return leave.ToHolidayResponse(created), nil
}

func (s *LeaveServiceImpl) ListHolidays(ctx context.Context, activeOnly bool) ([]leave.HolidayResponse, error) {
	holidays, err := s.holidayRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.HolidayResponse, 0, len(holidays))
	for _, holiday := range holidays {
		responses = append(responses, leave.ToHolidayResponse(holiday))
	}
	return responses, nil
}

func (s *LeaveServiceImpl) UpdateHoliday(ctx context.Context, req leave.UpsertHolidayRequest) (leave.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.HolidayResponse{}, err
	}

	existing, err := s.holidayRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.HolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	existing.Name = req.Name
	existing.Date = date
	existing.Description = req.Description
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.holidayRepo.Update(ctx, existing); err != nil {
		return leave.HolidayResponse{}, err
	}
	return leave.ToHolidayResponse(existing), nil
}

func (s *LeaveServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}
