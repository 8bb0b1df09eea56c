package domain

import "context"

type EmployeeRepo interface {
	GetAllEmployees(ctx context.Context) ([]Employee, error)
	CreateEmployee(ctx context.Context, e Employee) (int64, error)
	UpdateEmployeeRole(ctx context.Context, employeeID, roleID int64) error
	UpdateEmployeeManager(ctx context.Context, employeeID, managerID int64) error
	DeleteEmployee(ctx context.Context, id int64) error
}

// Employee mirrors a row of the employee table. RoleID is 0 when the
// referenced role has been removed.
type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	RoleID    int64
	ManagerID *int64
}

// FullName is the "first last" label shown in selection lists.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
