package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateDepartment_TrimsAndStores(t *testing.T) {
	repo := &mockDepartmentRepo{}
	repo.On("CreateDepartment", mock.Anything, "Engineering").Return(int64(4), nil)
	svc := NewDepartmentService(repo, zap.NewNop())

	department, err := svc.CreateDepartment(context.Background(), "  Engineering ")

	require.NoError(t, err)
	assert.Equal(t, domain.Department{ID: 4, Name: "Engineering"}, department)
	repo.AssertExpectations(t)
}

func TestCreateDepartment_RejectsBlankAndLongNames(t *testing.T) {
	repo := &mockDepartmentRepo{}
	svc := NewDepartmentService(repo, zap.NewNop())

	_, err := svc.CreateDepartment(context.Background(), "   ")
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.CreateDepartment(context.Background(), strings.Repeat("x", 31))
	assert.True(t, apperror.IsValidation(err))

	repo.AssertNotCalled(t, "CreateDepartment", mock.Anything, mock.Anything)
}

func TestCreateRole(t *testing.T) {
	repo := &mockRoleRepo{}
	departmentID := int64(2)
	repo.On("CreateRole", mock.Anything, domain.Role{Title: "Engineer", Salary: 120000, DepartmentID: &departmentID}).
		Return(int64(7), nil)
	svc := NewRoleService(repo, zap.NewNop())

	role, err := svc.CreateRole(context.Background(), CreateRoleInput{
		Title:        "Engineer",
		Salary:       120000,
		DepartmentID: &departmentID,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), role.ID)
	repo.AssertExpectations(t)
}

func TestCreateRole_RejectsNegativeSalary(t *testing.T) {
	repo := &mockRoleRepo{}
	svc := NewRoleService(repo, zap.NewNop())

	_, err := svc.CreateRole(context.Background(), CreateRoleInput{Title: "Intern", Salary: -1})

	assert.True(t, apperror.IsValidation(err))
	repo.AssertNotCalled(t, "CreateRole", mock.Anything, mock.Anything)
}

func TestCreateEmployee(t *testing.T) {
	repo := &mockEmployeeRepo{}
	managerID := int64(1)
	repo.On("CreateEmployee", mock.Anything, domain.Employee{
		FirstName: "Ada", LastName: "Lovelace", RoleID: 2, ManagerID: &managerID,
	}).Return(int64(9), nil)
	svc := NewEmployeeService(repo, zap.NewNop())

	employee, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		FirstName: "Ada", LastName: "Lovelace", RoleID: 2, ManagerID: &managerID,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9), employee.ID)
	assert.Equal(t, "Ada Lovelace", employee.FullName())
	repo.AssertExpectations(t)
}

func TestCreateEmployee_Validation(t *testing.T) {
	repo := &mockEmployeeRepo{}
	svc := NewEmployeeService(repo, zap.NewNop())
	ctx := context.Background()
	zero := int64(0)

	inputs := []CreateEmployeeInput{
		{FirstName: "", LastName: "Lovelace", RoleID: 2},
		{FirstName: "Ada", LastName: " ", RoleID: 2},
		{FirstName: "Ada", LastName: "Lovelace", RoleID: 0},
		{FirstName: "Ada", LastName: "Lovelace", RoleID: 2, ManagerID: &zero},
	}
	for _, input := range inputs {
		_, err := svc.CreateEmployee(ctx, input)
		assert.True(t, apperror.IsValidation(err), "input %+v", input)
	}
	repo.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything)
}

func TestUpdateEmployeeManager_SelfIsRejectedWithoutWrite(t *testing.T) {
	repo := &mockEmployeeRepo{}
	svc := NewEmployeeService(repo, zap.NewNop())

	for _, id := range []int64{1, 2, 42} {
		err := svc.UpdateEmployeeManager(context.Background(), id, id)
		assert.ErrorIs(t, err, ErrSelfManager)
	}
	repo.AssertNotCalled(t, "UpdateEmployeeManager", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateEmployeeManager(t *testing.T) {
	repo := &mockEmployeeRepo{}
	repo.On("UpdateEmployeeManager", mock.Anything, int64(2), int64(1)).Return(nil)
	svc := NewEmployeeService(repo, zap.NewNop())

	require.NoError(t, svc.UpdateEmployeeManager(context.Background(), 2, 1))
	repo.AssertExpectations(t)
}

func TestUpdateEmployeeRole_PropagatesStoreError(t *testing.T) {
	repo := &mockEmployeeRepo{}
	boom := errors.New("lost connection")
	repo.On("UpdateEmployeeRole", mock.Anything, int64(2), int64(5)).Return(boom)
	svc := NewEmployeeService(repo, zap.NewNop())

	err := svc.UpdateEmployeeRole(context.Background(), 2, 5)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, apperror.CodeInternal, apperror.GetCode(err))
}

func TestDeletes(t *testing.T) {
	ctx := context.Background()

	departments := &mockDepartmentRepo{}
	departments.On("DeleteDepartment", mock.Anything, int64(3)).Return(nil)
	require.NoError(t, NewDepartmentService(departments, zap.NewNop()).DeleteDepartment(ctx, 3))

	roles := &mockRoleRepo{}
	roles.On("DeleteRole", mock.Anything, int64(4)).Return(nil)
	require.NoError(t, NewRoleService(roles, zap.NewNop()).DeleteRole(ctx, 4))

	employees := &mockEmployeeRepo{}
	employees.On("DeleteEmployee", mock.Anything, int64(5)).Return(nil)
	require.NoError(t, NewEmployeeService(employees, zap.NewNop()).DeleteEmployee(ctx, 5))

	departments.AssertExpectations(t)
	roles.AssertExpectations(t)
	employees.AssertExpectations(t)
}

func TestSnapshot(t *testing.T) {
	reports := &mockReportRepo{}
	departments := &mockDepartmentRepo{}
	reports.On("ListEmployeeDetails", mock.Anything).Return([]domain.EmployeeDetail{{ID: 1}}, nil)
	reports.On("ListRoleDetails", mock.Anything).Return([]domain.RoleDetail{{ID: 1}, {ID: 2}}, nil)
	departments.On("GetAllDepartments", mock.Anything).Return([]domain.Department{{ID: 1, Name: "Sales"}}, nil)
	reports.On("ListDepartmentBudgets", mock.Anything).Return([]domain.DepartmentBudget{{ID: 1, Budget: 10}}, nil)

	snap, err := NewReportService(reports, departments).Snapshot(context.Background())

	require.NoError(t, err)
	assert.Len(t, snap.Employees, 1)
	assert.Len(t, snap.Roles, 2)
	assert.Len(t, snap.Departments, 1)
	assert.Len(t, snap.Budgets, 1)
}

func TestSnapshot_StopsOnError(t *testing.T) {
	reports := &mockReportRepo{}
	boom := errors.New("boom")
	reports.On("ListEmployeeDetails", mock.Anything).Return(nil, boom)

	_, err := NewReportService(reports, &mockDepartmentRepo{}).Snapshot(context.Background())

	assert.ErrorIs(t, err, boom)
	reports.AssertNotCalled(t, "ListRoleDetails", mock.Anything)
}
