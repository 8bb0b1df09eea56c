package service

import (
	"context"
	"math"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/domain"

	"go.uber.org/zap"
)

type CreateRoleInput struct {
	Title  string
	Salary float64
	// DepartmentID nil stores the role without a department.
	DepartmentID *int64
}

type RoleService struct {
	Repo   domain.RoleRepo
	Logger *zap.Logger
}

func NewRoleService(repo domain.RoleRepo, logger *zap.Logger) *RoleService {
	return &RoleService{Repo: repo, Logger: logger}
}

func (s *RoleService) GetAllRoles(ctx context.Context) ([]domain.Role, error) {
	return s.Repo.GetAllRoles(ctx)
}

func (s *RoleService) CreateRole(ctx context.Context, input CreateRoleInput) (domain.Role, error) {
	title, err := normalizeRequiredString(input.Title, "role title")
	if err != nil {
		return domain.Role{}, err
	}
	if input.Salary < 0 || math.IsNaN(input.Salary) || math.IsInf(input.Salary, 0) {
		return domain.Role{}, apperror.New(apperror.CodeValidation, "salary must be a non-negative number")
	}

	role := domain.Role{
		Title:        title,
		Salary:       input.Salary,
		DepartmentID: input.DepartmentID,
	}
	id, err := s.Repo.CreateRole(ctx, role)
	if err != nil {
		return domain.Role{}, err
	}
	role.ID = id

	s.Logger.Info("role created", zap.Int64("role_id", id), zap.String("title", title))
	return role, nil
}

// DeleteRole does not check for employees still holding the role.
func (s *RoleService) DeleteRole(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteRole(ctx, id); err != nil {
		return err
	}
	s.Logger.Info("role removed", zap.Int64("role_id", id))
	return nil
}
