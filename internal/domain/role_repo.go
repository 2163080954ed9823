package domain

import "context"

type Role struct {
	ID           int64
	Title        string
	Salary       float64
	DepartmentID int64
}

// RoleView is a role joined with its department, as listed to the user.
type RoleView struct {
	ID         int64
	Title      string
	Department string
	Salary     float64
}

// NewRole carries user input as typed. Salary stays text so the database,
// not the application, decides whether it is a valid number.
type NewRole struct {
	Title        string
	Salary       string
	DepartmentID int64
}

type RoleRepo interface {
	GetAllRoles(ctx context.Context) ([]Role, error)
	GetRoleViews(ctx context.Context) ([]RoleView, error)
	CreateRole(ctx context.Context, r NewRole) (int64, error)
}
