package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"employee-tracker/internal/domain"

	"go.uber.org/zap"
)

type EmployeeRepo struct {
	conn
	logger *zap.Logger
}

func NewEmployeeRepo(db *sql.DB, dialect Dialect, logger *zap.Logger) *EmployeeRepo {
	return &EmployeeRepo{conn: conn{db: db, dialect: dialect}, logger: logger}
}

func (r *EmployeeRepo) GetAllEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.query(ctx, `SELECT id, first_name, last_name, role_id, manager_id FROM employee`)
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		var roleID, managerID sql.NullInt64
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &roleID, &managerID); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		e.RoleID = roleID.Int64
		e.ManagerID = idPointer(managerID)
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *EmployeeRepo) CreateEmployee(ctx context.Context, e domain.Employee) (int64, error) {
	id, err := r.insert(ctx,
		`INSERT INTO employee (first_name, last_name, role_id, manager_id) VALUES (?, ?, ?, ?)`,
		e.FirstName, e.LastName, e.RoleID, nullableID(e.ManagerID),
	)
	if err != nil {
		return 0, fmt.Errorf("insert employee: %w", err)
	}
	r.logger.Debug("employee inserted", zap.Int64("employee_id", id), zap.Int64("role_id", e.RoleID))
	return id, nil
}

func (r *EmployeeRepo) UpdateEmployeeRole(ctx context.Context, employeeID, roleID int64) error {
	if err := r.exec(ctx, `UPDATE employee SET role_id = ? WHERE id = ?`, roleID, employeeID); err != nil {
		return fmt.Errorf("update employee role: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) UpdateEmployeeManager(ctx context.Context, employeeID, managerID int64) error {
	if err := r.exec(ctx, `UPDATE employee SET manager_id = ? WHERE id = ?`, managerID, employeeID); err != nil {
		return fmt.Errorf("update employee manager: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) DeleteEmployee(ctx context.Context, id int64) error {
	if err := r.exec(ctx, `DELETE FROM employee WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	r.logger.Debug("employee deleted", zap.Int64("employee_id", id))
	return nil
}
