package service

import (
	"context"

	"employee-tracker/internal/domain"

	"github.com/stretchr/testify/mock"
)

type mockDepartmentRepo struct{ mock.Mock }

func (m *mockDepartmentRepo) GetAllDepartments(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	departments, _ := args.Get(0).([]domain.Department)
	return departments, args.Error(1)
}

func (m *mockDepartmentRepo) CreateDepartment(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDepartmentRepo) DeleteDepartment(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockRoleRepo struct{ mock.Mock }

func (m *mockRoleRepo) GetAllRoles(ctx context.Context) ([]domain.Role, error) {
	args := m.Called(ctx)
	roles, _ := args.Get(0).([]domain.Role)
	return roles, args.Error(1)
}

func (m *mockRoleRepo) CreateRole(ctx context.Context, r domain.Role) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRoleRepo) DeleteRole(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockEmployeeRepo struct{ mock.Mock }

func (m *mockEmployeeRepo) GetAllEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	employees, _ := args.Get(0).([]domain.Employee)
	return employees, args.Error(1)
}

func (m *mockEmployeeRepo) CreateEmployee(ctx context.Context, e domain.Employee) (int64, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEmployeeRepo) UpdateEmployeeRole(ctx context.Context, employeeID, roleID int64) error {
	return m.Called(ctx, employeeID, roleID).Error(0)
}

func (m *mockEmployeeRepo) UpdateEmployeeManager(ctx context.Context, employeeID, managerID int64) error {
	return m.Called(ctx, employeeID, managerID).Error(0)
}

func (m *mockEmployeeRepo) DeleteEmployee(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockReportRepo struct{ mock.Mock }

func (m *mockReportRepo) ListEmployeeDetails(ctx context.Context) ([]domain.EmployeeDetail, error) {
	args := m.Called(ctx)
	details, _ := args.Get(0).([]domain.EmployeeDetail)
	return details, args.Error(1)
}

func (m *mockReportRepo) ListRoleDetails(ctx context.Context) ([]domain.RoleDetail, error) {
	args := m.Called(ctx)
	details, _ := args.Get(0).([]domain.RoleDetail)
	return details, args.Error(1)
}

func (m *mockReportRepo) ListEmployeesByDepartment(ctx context.Context) ([]domain.EmployeeDepartment, error) {
	args := m.Called(ctx)
	listing, _ := args.Get(0).([]domain.EmployeeDepartment)
	return listing, args.Error(1)
}

func (m *mockReportRepo) ListDepartmentBudgets(ctx context.Context) ([]domain.DepartmentBudget, error) {
	args := m.Called(ctx)
	budgets, _ := args.Get(0).([]domain.DepartmentBudget)
	return budgets, args.Error(1)
}
