package domain

import "context"

// ReportRepo serves the read-only joined listings.
type ReportRepo interface {
	ListEmployeeDetails(ctx context.Context) ([]EmployeeDetail, error)
	ListRoleDetails(ctx context.Context) ([]RoleDetail, error)
	ListEmployeesByDepartment(ctx context.Context) ([]EmployeeDepartment, error)
	ListDepartmentBudgets(ctx context.Context) ([]DepartmentBudget, error)
}

type EmployeeDetail struct {
	ID         int64
	FirstName  string
	LastName   string
	Title      string
	Department string
	Salary     float64
}

type RoleDetail struct {
	ID         int64
	Title      string
	Department string
}

// EmployeeDepartment.Department is empty for employees whose role or
// department no longer exists.
type EmployeeDepartment struct {
	FirstName  string
	LastName   string
	Department string
}

type DepartmentBudget struct {
	ID         int64
	Department string
	Budget     float64
}
