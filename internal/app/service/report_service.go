package service

import (
	"context"

	"employee-tracker/internal/domain"
)

// Snapshot holds every listing at one point in time.
type Snapshot struct {
	Employees   []domain.EmployeeDetail
	Roles       []domain.RoleDetail
	Departments []domain.Department
	Budgets     []domain.DepartmentBudget
}

type ReportService struct {
	Repo        domain.ReportRepo
	Departments domain.DepartmentRepo
}

func NewReportService(repo domain.ReportRepo, departments domain.DepartmentRepo) *ReportService {
	return &ReportService{Repo: repo, Departments: departments}
}

func (s *ReportService) EmployeeDetails(ctx context.Context) ([]domain.EmployeeDetail, error) {
	return s.Repo.ListEmployeeDetails(ctx)
}

func (s *ReportService) RoleDetails(ctx context.Context) ([]domain.RoleDetail, error) {
	return s.Repo.ListRoleDetails(ctx)
}

func (s *ReportService) EmployeesByDepartment(ctx context.Context) ([]domain.EmployeeDepartment, error) {
	return s.Repo.ListEmployeesByDepartment(ctx)
}

func (s *ReportService) DepartmentBudgets(ctx context.Context) ([]domain.DepartmentBudget, error) {
	return s.Repo.ListDepartmentBudgets(ctx)
}

func (s *ReportService) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	var err error
	if snap.Employees, err = s.Repo.ListEmployeeDetails(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Roles, err = s.Repo.ListRoleDetails(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Departments, err = s.Departments.GetAllDepartments(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Budgets, err = s.Repo.ListDepartmentBudgets(ctx); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
