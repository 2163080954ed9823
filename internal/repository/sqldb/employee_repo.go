package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"employee-tracker/internal/domain"
)

type EmployeeRepo struct {
	db *sql.DB
}

func NewEmployeeRepo(db *sql.DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

func (r *EmployeeRepo) GetAllEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, first_name, last_name, role_id, manager_id FROM employee ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select employees: %w", err)
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var (
			e         domain.Employee
			managerID sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.RoleID, &managerID); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		if managerID.Valid {
			id := managerID.Int64
			e.ManagerID = &id
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select employees: %w", err)
	}
	return employees, nil
}

// GetEmployeeViews left-joins the manager so employees without one are
// still listed, with an empty Manager.
func (r *EmployeeRepo) GetEmployeeViews(ctx context.Context) ([]domain.EmployeeView, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.id, e.first_name, e.last_name, r.title, d.name, r.salary,
		       m.first_name || ' ' || m.last_name
		FROM employee e
		JOIN role r ON r.id = e.role_id
		JOIN department d ON d.id = r.department_id
		LEFT JOIN employee m ON m.id = e.manager_id
		ORDER BY e.id`)
	if err != nil {
		return nil, fmt.Errorf("select employee views: %w", err)
	}
	defer rows.Close()

	var views []domain.EmployeeView
	for rows.Next() {
		var (
			v       domain.EmployeeView
			manager sql.NullString
		)
		if err := rows.Scan(&v.ID, &v.FirstName, &v.LastName, &v.Title, &v.Department, &v.Salary, &manager); err != nil {
			return nil, fmt.Errorf("scan employee view: %w", err)
		}
		v.Manager = manager.String
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select employee views: %w", err)
	}
	return views, nil
}

func (r *EmployeeRepo) CreateEmployee(ctx context.Context, e domain.NewEmployee) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO employee (first_name, last_name, role_id, manager_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		e.FirstName,
		e.LastName,
		e.RoleID,
		e.ManagerID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert employee: %w", err)
	}
	return id, nil
}

func (r *EmployeeRepo) UpdateEmployeeRole(ctx context.Context, employeeID, roleID int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE employee SET role_id = $1 WHERE id = $2`,
		roleID,
		employeeID,
	)
	if err != nil {
		return fmt.Errorf("update employee role: %w", err)
	}
	return nil
}
