package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/domain"

	"go.uber.org/zap"
)

type DepartmentRepo struct {
	conn
	logger *zap.Logger
}

func NewDepartmentRepo(db *sql.DB, dialect Dialect, logger *zap.Logger) *DepartmentRepo {
	return &DepartmentRepo{conn: conn{db: db, dialect: dialect}, logger: logger}
}

func (r *DepartmentRepo) GetAllDepartments(ctx context.Context) ([]domain.Department, error) {
	rows, err := r.query(ctx, `SELECT department.id, department.department_name FROM department`)
	if err != nil {
		return nil, fmt.Errorf("query departments: %w", err)
	}
	defer rows.Close()

	var departments []domain.Department
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func (r *DepartmentRepo) CreateDepartment(ctx context.Context, name string) (int64, error) {
	id, err := r.insert(ctx, `INSERT INTO department (department_name) VALUES (?)`, name)
	if isUniqueViolation(err) {
		return 0, apperror.New(apperror.CodeConflict, fmt.Sprintf("department %q already exists", name))
	}
	if err != nil {
		return 0, fmt.Errorf("insert department: %w", err)
	}
	r.logger.Debug("department inserted", zap.Int64("department_id", id), zap.String("name", name))
	return id, nil
}

func (r *DepartmentRepo) DeleteDepartment(ctx context.Context, id int64) error {
	if err := r.exec(ctx, `DELETE FROM department WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	r.logger.Debug("department deleted", zap.Int64("department_id", id))
	return nil
}
