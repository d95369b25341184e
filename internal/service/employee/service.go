package employee

import (
	"context"

	"github.com/google/uuid"

	"github.com/nimbus-hr/hrms-backend-go/internal/domain/employee"
	"github.com/nimbus-hr/hrms-backend-go/internal/domain/role"
	"github.com/nimbus-hr/hrms-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo employee.DepartmentRepository
	roleService    role.RoleService
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo employee.DepartmentRepository,
	roleService role.RoleService,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		roleService:    roleService,
	}
}

func (s *EmployeeServiceImpl) buildEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	hireDate, _ := validator.IsValidDate(req.HireDate)

	emp := employee.Employee{
		EmployeeCode:          req.EmployeeCode,
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Email:                 req.Email,
		PhoneNumber:           req.PhoneNumber,
		HireDate:              hireDate,
		DepartmentID:          req.DepartmentID,
		Designation:           req.Designation,
		Role:                  req.Role,
		Salary:                req.Salary,
		Status:                req.Status,
		ManagerIDs:            req.ManagerIDs,
		TeamLeadID:            req.TeamLeadID,
		Address:               req.Address,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		BankAccountNumber:     req.BankAccountNumber,
		BankName:              req.BankName,
	}
	if emp.Role == "" {
		emp.Role = "Employee"
	}
	if emp.Status == "" {
		emp.Status = employee.StatusActive
	}
	if req.DateOfBirth != nil {
		dob, _ := validator.IsValidDate(*req.DateOfBirth)
		emp.DateOfBirth = &dob
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.Employee{}, err
		}
	}
	return emp, nil
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.buildEmployee(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	emp.ID = uuid.New().String()

	if containsID(emp.ManagerIDs, emp.ID) || (emp.TeamLeadID != nil && *emp.TeamLeadID == emp.ID) {
		return employee.EmployeeResponse{}, employee.ErrSelfReference
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if len(emp.ManagerIDs) > 0 {
		if err := s.employeeRepo.SetManagers(ctx, created.ID, emp.ManagerIDs); err != nil {
			return employee.EmployeeResponse{}, err
		}
		created.ManagerIDs = emp.ManagerIDs
	}

	return s.withPortal(ctx, employee.ToEmployeeResponse(created)), nil
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.withPortal(ctx, employee.ToEmployeeResponse(emp)), nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, int64, error) {
	rows, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(rows))
	for _, emp := range rows {
		responses = append(responses, s.withPortal(ctx, employee.ToEmployeeResponse(emp)))
	}
	return responses, total, nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.buildEmployee(ctx, req.CreateEmployeeRequest)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	emp.ID = existing.ID
	emp.CreatedAt = existing.CreatedAt

	if containsID(emp.ManagerIDs, emp.ID) || (emp.TeamLeadID != nil && *emp.TeamLeadID == emp.ID) {
		return employee.EmployeeResponse{}, employee.ErrSelfReference
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := s.employeeRepo.SetManagers(ctx, emp.ID, emp.ManagerIDs); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.GetByID(ctx, emp.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.withPortal(ctx, employee.ToEmployeeResponse(updated)), nil
}

func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

// withPortal annotates the response with the portal the employee's role
// resolves to.
func (s *EmployeeServiceImpl) withPortal(ctx context.Context, resp employee.EmployeeResponse) employee.EmployeeResponse {
	resp.Portal = s.roleService.RolePortal(ctx, resp.Role)
	return resp
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func (s *EmployeeServiceImpl) CreateDepartment(ctx context.Context, req employee.CreateDepartmentRequest) (employee.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.DepartmentResponse{}, err
	}

	dept := employee.Department{
		ID:          uuid.New().String(),
		Name:        req.Name,
		ManagerID:   req.ManagerID,
		Description: req.Description,
	}
	if req.ManagerID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.ManagerID); err != nil {
			return employee.DepartmentResponse{}, err
		}
	}

	created, err := s.departmentRepo.Create(ctx, dept)
	if err != nil {
		return employee.DepartmentResponse{}, err
	}
	return employee.ToDepartmentResponse(created), nil
}

func (s *EmployeeServiceImpl) GetDepartment(ctx context.Context, id string) (employee.DepartmentResponse, error) {
	dept, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return employee.DepartmentResponse{}, err
	}
	return employee.ToDepartmentResponse(dept), nil
}

func (s *EmployeeServiceImpl) ListDepartments(ctx context.Context) ([]employee.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, employee.ToDepartmentResponse(dept))
	}
	return responses, nil
}

func (s *EmployeeServiceImpl) UpdateDepartment(ctx context.Context, req employee.UpdateDepartmentRequest) (employee.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.DepartmentResponse{}, err
	}

	existing, err := s.departmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.DepartmentResponse{}, err
	}
	if req.ManagerID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.ManagerID); err != nil {
			return employee.DepartmentResponse{}, err
		}
	}

	existing.Name = req.Name
	existing.ManagerID = req.ManagerID
	existing.Description = req.Description

	if err := s.departmentRepo.Update(ctx, existing); err != nil {
		return employee.DepartmentResponse{}, err
	}

	updated, err := s.departmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.DepartmentResponse{}, err
	}
	return employee.ToDepartmentResponse(updated), nil
}

func (s *EmployeeServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.departmentRepo.Delete(ctx, id)
}
