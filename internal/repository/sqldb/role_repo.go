package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"employee-tracker/internal/domain"

	"go.uber.org/zap"
)

type RoleRepo struct {
	conn
	logger *zap.Logger
}

func NewRoleRepo(db *sql.DB, dialect Dialect, logger *zap.Logger) *RoleRepo {
	return &RoleRepo{conn: conn{db: db, dialect: dialect}, logger: logger}
}

func (r *RoleRepo) GetAllRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.query(ctx, `SELECT role.id, role.title, role.salary, role.department_id FROM role`)
	if err != nil {
		return nil, fmt.Errorf("query roles: %w", err)
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		var departmentID sql.NullInt64
		if err := rows.Scan(&role.ID, &role.Title, &role.Salary, &departmentID); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		role.DepartmentID = idPointer(departmentID)
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *RoleRepo) CreateRole(ctx context.Context, role domain.Role) (int64, error) {
	id, err := r.insert(ctx,
		`INSERT INTO role (title, salary, department_id) VALUES (?, ?, ?)`,
		role.Title, role.Salary, nullableID(role.DepartmentID),
	)
	if err != nil {
		return 0, fmt.Errorf("insert role: %w", err)
	}
	r.logger.Debug("role inserted", zap.Int64("role_id", id), zap.String("title", role.Title))
	return id, nil
}

func (r *RoleRepo) DeleteRole(ctx context.Context, id int64) error {
	if err := r.exec(ctx, `DELETE FROM role WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	r.logger.Debug("role deleted", zap.Int64("role_id", id))
	return nil
}
