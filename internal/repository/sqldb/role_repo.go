package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"employee-tracker/internal/domain"
)

type RoleRepo struct {
	db *sql.DB
}

func NewRoleRepo(db *sql.DB) *RoleRepo {
	return &RoleRepo{db: db}
}

func (r *RoleRepo) GetAllRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, salary, department_id FROM role ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select roles: %w", err)
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Title, &role.Salary, &role.DepartmentID); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select roles: %w", err)
	}
	return roles, nil
}

func (r *RoleRepo) GetRoleViews(ctx context.Context) ([]domain.RoleView, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.id, r.title, d.name, r.salary
		FROM role r
		JOIN department d ON d.id = r.department_id
		ORDER BY r.id`)
	if err != nil {
		return nil, fmt.Errorf("select role views: %w", err)
	}
	defer rows.Close()

	var views []domain.RoleView
	for rows.Next() {
		var v domain.RoleView
		if err := rows.Scan(&v.ID, &v.Title, &v.Department, &v.Salary); err != nil {
			return nil, fmt.Errorf("scan role view: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select role views: %w", err)
	}
	return views, nil
}

func (r *RoleRepo) CreateRole(ctx context.Context, role domain.NewRole) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO role (title, salary, department_id) VALUES ($1, $2, $3) RETURNING id`,
		role.Title,
		role.Salary,
		role.DepartmentID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert role: %w", err)
	}
	return id, nil
}
