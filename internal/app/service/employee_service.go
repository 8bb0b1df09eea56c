package service

import (
	"context"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/domain"

	"go.uber.org/zap"
)

// ErrSelfManager is returned when an employee is chosen as their own manager.
var ErrSelfManager = apperror.New(apperror.CodeValidation, "Employee cannot be their own manager")

// CreateEmployeeInput ids are only required to be positive; their existence is
// left to the store.
type CreateEmployeeInput struct {
	FirstName string
	LastName  string
	RoleID    int64
	ManagerID *int64
}

type EmployeeService struct {
	Repo   domain.EmployeeRepo
	Logger *zap.Logger
}

func NewEmployeeService(repo domain.EmployeeRepo, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{Repo: repo, Logger: logger}
}

func (s *EmployeeService) GetAllEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.Repo.GetAllEmployees(ctx)
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (domain.Employee, error) {
	firstName, err := normalizeRequiredString(input.FirstName, "first name")
	if err != nil {
		return domain.Employee{}, err
	}
	lastName, err := normalizeRequiredString(input.LastName, "last name")
	if err != nil {
		return domain.Employee{}, err
	}
	if input.RoleID <= 0 {
		return domain.Employee{}, apperror.New(apperror.CodeValidation, "role id must be a positive number")
	}
	if input.ManagerID != nil && *input.ManagerID <= 0 {
		return domain.Employee{}, apperror.New(apperror.CodeValidation, "manager id must be a positive number")
	}

	employee := domain.Employee{
		FirstName: firstName,
		LastName:  lastName,
		RoleID:    input.RoleID,
		ManagerID: input.ManagerID,
	}
	id, err := s.Repo.CreateEmployee(ctx, employee)
	if err != nil {
		return domain.Employee{}, err
	}
	employee.ID = id

	s.Logger.Info("employee created", zap.Int64("employee_id", id))
	return employee, nil
}

func (s *EmployeeService) UpdateEmployeeRole(ctx context.Context, employeeID, roleID int64) error {
	if err := s.Repo.UpdateEmployeeRole(ctx, employeeID, roleID); err != nil {
		return err
	}
	s.Logger.Info("employee role updated", zap.Int64("employee_id", employeeID), zap.Int64("role_id", roleID))
	return nil
}

// UpdateEmployeeManager writes nothing when employeeID equals managerID.
func (s *EmployeeService) UpdateEmployeeManager(ctx context.Context, employeeID, managerID int64) error {
	if employeeID == managerID {
		return ErrSelfManager
	}
	if err := s.Repo.UpdateEmployeeManager(ctx, employeeID, managerID); err != nil {
		return err
	}
	s.Logger.Info("employee manager updated", zap.Int64("employee_id", employeeID), zap.Int64("manager_id", managerID))
	return nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteEmployee(ctx, id); err != nil {
		return err
	}
	s.Logger.Info("employee removed", zap.Int64("employee_id", id))
	return nil
}
