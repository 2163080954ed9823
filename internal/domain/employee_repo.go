package domain

import "context"

type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	RoleID    int64
	ManagerID *int64
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// EmployeeView is an employee joined with role, department and manager.
// Manager is empty when the employee reports to no one.
type EmployeeView struct {
	ID         int64
	FirstName  string
	LastName   string
	Title      string
	Department string
	Salary     float64
	Manager    string
}

type NewEmployee struct {
	FirstName string
	LastName  string
	RoleID    int64
	ManagerID *int64
}

type EmployeeRepo interface {
	GetAllEmployees(ctx context.Context) ([]Employee, error)
	GetEmployeeViews(ctx context.Context) ([]EmployeeView, error)
	CreateEmployee(ctx context.Context, e NewEmployee) (int64, error)
	UpdateEmployeeRole(ctx context.Context, employeeID, roleID int64) error
}
