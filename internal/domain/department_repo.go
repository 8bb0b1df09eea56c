package domain

import "context"

type DepartmentRepo interface {
	GetAllDepartments(ctx context.Context) ([]Department, error)
	CreateDepartment(ctx context.Context, name string) (int64, error)
	DeleteDepartment(ctx context.Context, id int64) error
}

type Department struct {
	ID   int64
	Name string
}
