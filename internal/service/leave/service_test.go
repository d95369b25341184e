package leave

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbus-hr/hrms-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/leave"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/role"
)

type fakeLeaveRepo struct {
	leave.LeaveRequestRepository
	requests map[string]leave.LeaveRequest
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (r *fakeLeaveRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.requests[req.ID] = req
	return req, nil
}

func (r *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (r *fakeLeaveRepo) Update(ctx context.Context, req leave.LeaveRequest) error {
	r.requests[req.ID] = req
	return nil
}

type fakeBalanceRepo struct {
	leave.LeaveBalanceRepository
	balance *leave.LeaveBalance
}

func (r *fakeBalanceRepo) GetForEmployee(ctx context.Context, employeeID, leaveType string, year int) (*leave.LeaveBalance, error) {
	if r.balance == nil {
		return nil, nil
	}
	copied := *r.balance
	return &copied, nil
}

func (r *fakeBalanceRepo) Update(ctx context.Context, balance leave.LeaveBalance) error {
	r.balance = &balance
	return nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id, FirstName: "Asha", LastName: "Rao", Email: "asha@example.com"}, nil
}

type fakeRoleService struct {
	role.RoleService
	approverEmails []string
}

func (s *fakeRoleService) EmailsForPermission(ctx context.Context, permission string) ([]string, error) {
	return s.approverEmails, nil
}

type fakeEmailService struct {
	requestedTo []string
	decisions   []string
}

func (s *fakeEmailService) SendLeaveRequested(to []string, employeeName, leaveType, startDate, endDate string, totalDays int) error {
	s.requestedTo = to
	return nil
}

func (s *fakeEmailService) SendLeaveDecision(to string, employeeName, leaveType, status string, reason *string) error {
	s.decisions = append(s.decisions, status)
	return nil
}

func newTestLeaveService(balance *leave.LeaveBalance) (leave.LeaveService, *fakeLeaveRepo, *fakeBalanceRepo, *fakeEmailService) {
	leaveRepo := newFakeLeaveRepo()
	balanceRepo := &fakeBalanceRepo{balance: balance}
	emails := &fakeEmailService{}
	svc := NewLeaveService(
		leaveRepo,
		balanceRepo,
		nil,
		&fakeEmployeeRepo{},
		&fakeRoleService{approverEmails: []string{"hr@example.com"}},
		emails,
	)
	return svc, leaveRepo, balanceRepo, emails
}

func TestCreateLeaveRequestCountsDaysInclusive(t *testing.T) {
	svc, _, _, emails := newTestLeaveService(nil)

	resp, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeAnnual,
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-06",
		Reason:     "Family trip",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, resp.TotalDays)
	assert.Equal(t, leave.StatusPending, resp.Status)
	assert.Equal(t, []string{"hr@example.com"}, emails.requestedTo)
}

func TestCreateLeaveRequestSingleDay(t *testing.T) {
	svc, _, _, _ := newTestLeaveService(nil)

	resp, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeSick,
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-02",
		Reason:     "Fever",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalDays)
}

func TestCreateLeaveRequestInsufficientBalance(t *testing.T) {
	svc, _, _, _ := newTestLeaveService(&leave.LeaveBalance{
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeAnnual,
		Balance:    10,
		Used:       8,
		Year:       2026,
	})

	_, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeAnnual,
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-06",
		Reason:     "Family trip",
	})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
}

func TestApproveLeaveRequestChargesBalance(t *testing.T) {
	svc, _, balanceRepo, emails := newTestLeaveService(&leave.LeaveBalance{
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeAnnual,
		Balance:    10,
		Year:       2026,
	})

	created, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeAnnual,
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-04",
		Reason:     "Family trip",
	})
	require.NoError(t, err)

	approved, err := svc.ApproveLeaveRequest(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, leave.StatusApproved, approved.Status)
	assert.Equal(t, 3, balanceRepo.balance.Used)
	assert.Equal(t, []string{leave.StatusApproved}, emails.decisions)

	// A processed request cannot be approved again.
	_, err = svc.ApproveLeaveRequest(context.Background(), created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}

func TestRejectLeaveRequestKeepsBalance(t *testing.T) {
	svc, _, balanceRepo, _ := newTestLeaveService(&leave.LeaveBalance{
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeAnnual,
		Balance:    10,
		Year:       2026,
	})

	created, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeAnnual,
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-04",
		Reason:     "Family trip",
	})
	require.NoError(t, err)

	reason := "Sprint deadline"
	rejected, err := svc.RejectLeaveRequest(context.Background(), leave.RejectLeaveRequest{
		ID:              created.ID,
		RejectionReason: &reason,
	})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusRejected, rejected.Status)
	assert.Equal(t, 0, balanceRepo.balance.Used)
}

func TestCancelApprovedLeaveRefundsBalance(t *testing.T) {
	svc, _, balanceRepo, _ := newTestLeaveService(&leave.LeaveBalance{
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeAnnual,
		Balance:    10,
		Year:       2026,
	})

	created, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeAnnual,
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-04",
		Reason:     "Family trip",
	})
	require.NoError(t, err)

	_, err = svc.ApproveLeaveRequest(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, 3, balanceRepo.balance.Used)

	cancelled, err := svc.CancelLeaveRequest(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, leave.StatusCancelled, cancelled.Status)
	assert.Equal(t, 0, balanceRepo.balance.Used)

	// Cancelled requests stay cancelled.
	_, err = svc.CancelLeaveRequest(context.Background(), created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}

func TestCreateLeaveRequestValidation(t *testing.T) {
	svc, _, _, _ := newTestLeaveService(nil)

	_, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  "Sabbatical",
		StartDate:  "2026-03-06",
		EndDate:    "2026-03-02",
		Reason:     "",
	})
	require.Error(t, err)
}
