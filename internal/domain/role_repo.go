package domain

import "context"

type RoleRepo interface {
	GetAllRoles(ctx context.Context) ([]Role, error)
	CreateRole(ctx context.Context, r Role) (int64, error)
	DeleteRole(ctx context.Context, id int64) error
}

// Role.DepartmentID is nil when the role was stored without a department.
type Role struct {
	ID           int64
	Title        string
	Salary       float64
	DepartmentID *int64
}
