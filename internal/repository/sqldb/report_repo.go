package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"employee-tracker/internal/domain"

	"go.uber.org/zap"
)

const (
	employeeDetailsQuery = `SELECT employee.id,
       employee.first_name,
       employee.last_name,
       role.title,
       department.department_name AS department,
       role.salary
FROM employee
JOIN role ON role.id = employee.role_id
JOIN department ON department.id = role.department_id
ORDER BY employee.id ASC`

	roleDetailsQuery = `SELECT role.id, role.title, department.department_name AS department
FROM role
INNER JOIN department ON role.department_id = department.id`

	employeesByDepartmentQuery = `SELECT employee.first_name,
       employee.last_name,
       department.department_name AS department
FROM employee
LEFT JOIN role ON employee.role_id = role.id
LEFT JOIN department ON role.department_id = department.id`

	departmentBudgetsQuery = `SELECT role.department_id AS id,
       department.department_name AS department,
       SUM(role.salary) AS budget
FROM role
INNER JOIN department ON role.department_id = department.id
GROUP BY role.department_id, department.department_name`
)

type ReportRepo struct {
	conn
	logger *zap.Logger
}

func NewReportRepo(db *sql.DB, dialect Dialect, logger *zap.Logger) *ReportRepo {
	return &ReportRepo{conn: conn{db: db, dialect: dialect}, logger: logger}
}

func (r *ReportRepo) ListEmployeeDetails(ctx context.Context) ([]domain.EmployeeDetail, error) {
	rows, err := r.query(ctx, employeeDetailsQuery)
	if err != nil {
		return nil, fmt.Errorf("query employee details: %w", err)
	}
	defer rows.Close()

	var details []domain.EmployeeDetail
	for rows.Next() {
		var d domain.EmployeeDetail
		if err := rows.Scan(&d.ID, &d.FirstName, &d.LastName, &d.Title, &d.Department, &d.Salary); err != nil {
			return nil, fmt.Errorf("scan employee detail: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *ReportRepo) ListRoleDetails(ctx context.Context) ([]domain.RoleDetail, error) {
	rows, err := r.query(ctx, roleDetailsQuery)
	if err != nil {
		return nil, fmt.Errorf("query role details: %w", err)
	}
	defer rows.Close()

	var details []domain.RoleDetail
	for rows.Next() {
		var d domain.RoleDetail
		if err := rows.Scan(&d.ID, &d.Title, &d.Department); err != nil {
			return nil, fmt.Errorf("scan role detail: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *ReportRepo) ListEmployeesByDepartment(ctx context.Context) ([]domain.EmployeeDepartment, error) {
	rows, err := r.query(ctx, employeesByDepartmentQuery)
	if err != nil {
		return nil, fmt.Errorf("query employees by department: %w", err)
	}
	defer rows.Close()

	var listing []domain.EmployeeDepartment
	for rows.Next() {
		var e domain.EmployeeDepartment
		var department sql.NullString
		if err := rows.Scan(&e.FirstName, &e.LastName, &department); err != nil {
			return nil, fmt.Errorf("scan employee department: %w", err)
		}
		e.Department = department.String
		listing = append(listing, e)
	}
	return listing, rows.Err()
}

func (r *ReportRepo) ListDepartmentBudgets(ctx context.Context) ([]domain.DepartmentBudget, error) {
	rows, err := r.query(ctx, departmentBudgetsQuery)
	if err != nil {
		return nil, fmt.Errorf("query department budgets: %w", err)
	}
	defer rows.Close()

	var budgets []domain.DepartmentBudget
	for rows.Next() {
		var b domain.DepartmentBudget
		if err := rows.Scan(&b.ID, &b.Department, &b.Budget); err != nil {
			return nil, fmt.Errorf("scan department budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}
