package service

import (
	"context"

	"employee-tracker/internal/domain"

	"go.uber.org/zap"
)

type DepartmentService struct {
	Repo   domain.DepartmentRepo
	Logger *zap.Logger
}

func NewDepartmentService(repo domain.DepartmentRepo, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{Repo: repo, Logger: logger}
}

func (s *DepartmentService) GetAllDepartments(ctx context.Context) ([]domain.Department, error) {
	return s.Repo.GetAllDepartments(ctx)
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, name string) (domain.Department, error) {
	name, err := normalizeRequiredString(name, "department name")
	if err != nil {
		return domain.Department{}, err
	}

	id, err := s.Repo.CreateDepartment(ctx, name)
	if err != nil {
		return domain.Department{}, err
	}

	s.Logger.Info("department created", zap.Int64("department_id", id), zap.String("name", name))
	return domain.Department{ID: id, Name: name}, nil
}

// DeleteDepartment does not check for roles still pointing at the department.
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteDepartment(ctx, id); err != nil {
		return err
	}
	s.Logger.Info("department removed", zap.Int64("department_id", id))
	return nil
}
