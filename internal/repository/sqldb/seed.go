package sqldb

import (
	"context"
	"database/sql"

	"employee-tracker/internal/domain"

	"go.uber.org/zap"
)

type seedRole struct {
	title      string
	salary     float64
	department int
}

type seedEmployee struct {
	first, last string
	role        int
	manager     int // index into seedEmployees, -1 for none
}

var (
	seedDepartments = []string{"Sales", "Engineering", "Finance", "Legal"}

	seedRoles = []seedRole{
		{"Sales Lead", 100000, 0},
		{"Salesperson", 80000, 0},
		{"Lead Engineer", 150000, 1},
		{"Software Engineer", 120000, 1},
		{"Account Manager", 160000, 2},
		{"Accountant", 125000, 2},
		{"Legal Team Lead", 250000, 3},
		{"Lawyer", 190000, 3},
	}

	seedEmployees = []seedEmployee{
		{"John", "Doe", 0, -1},
		{"Mike", "Chan", 1, 0},
		{"Ashley", "Rodriguez", 2, -1},
		{"Kevin", "Tupik", 3, 2},
		{"Kunal", "Singh", 4, -1},
		{"Malia", "Brown", 5, 4},
		{"Sarah", "Lourd", 6, -1},
		{"Tom", "Allen", 7, 6},
	}
)

// Seed inserts the sample organization. Ids assigned by the store are carried
// forward, so it works on a database that already holds rows.
func Seed(ctx context.Context, db *sql.DB, dialect Dialect, logger *zap.Logger) error {
	departments := NewDepartmentRepo(db, dialect, logger)
	roles := NewRoleRepo(db, dialect, logger)
	employees := NewEmployeeRepo(db, dialect, logger)

	departmentIDs := make([]int64, len(seedDepartments))
	for i, name := range seedDepartments {
		id, err := departments.CreateDepartment(ctx, name)
		if err != nil {
			return err
		}
		departmentIDs[i] = id
	}

	roleIDs := make([]int64, len(seedRoles))
	for i, r := range seedRoles {
		departmentID := departmentIDs[r.department]
		id, err := roles.CreateRole(ctx, domain.Role{Title: r.title, Salary: r.salary, DepartmentID: &departmentID})
		if err != nil {
			return err
		}
		roleIDs[i] = id
	}

	employeeIDs := make([]int64, len(seedEmployees))
	for i, e := range seedEmployees {
		employee := domain.Employee{FirstName: e.first, LastName: e.last, RoleID: roleIDs[e.role]}
		if e.manager >= 0 {
			managerID := employeeIDs[e.manager]
			employee.ManagerID = &managerID
		}
		id, err := employees.CreateEmployee(ctx, employee)
		if err != nil {
			return err
		}
		employeeIDs[i] = id
	}

	logger.Info("sample data seeded",
		zap.Int("departments", len(departmentIDs)),
		zap.Int("roles", len(roleIDs)),
		zap.Int("employees", len(employeeIDs)),
	)
	return nil
}
