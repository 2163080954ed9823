package service

import (
	"context"

	"employee-tracker/internal/domain"
)

type EmployeeService struct {
	Repo domain.EmployeeRepo
}

func NewEmployeeService(repo domain.EmployeeRepo) *EmployeeService {
	return &EmployeeService{Repo: repo}
}

func (s *EmployeeService) GetAllEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.Repo.GetAllEmployees(ctx)
}

func (s *EmployeeService) GetEmployeeViews(ctx context.Context) ([]domain.EmployeeView, error) {
	return s.Repo.GetEmployeeViews(ctx)
}

func (s *EmployeeService) AddEmployee(ctx context.Context, e domain.NewEmployee) (int64, error) {
	return s.Repo.CreateEmployee(ctx, e)
}

func (s *EmployeeService) UpdateEmployeeRole(ctx context.Context, employeeID, roleID int64) error {
	return s.Repo.UpdateEmployeeRole(ctx, employeeID, roleID)
}

// EmployeeChoices lists every employee as a selectable entry.
func (s *EmployeeService) EmployeeChoices(ctx context.Context) ([]domain.Choice, error) {
	employees, err := s.Repo.GetAllEmployees(ctx)
	if err != nil {
		return nil, err
	}
	return EmployeeChoices(employees), nil
}

// ManagerChoices is EmployeeChoices plus a trailing "None".
func (s *EmployeeService) ManagerChoices(ctx context.Context) ([]domain.Choice, error) {
	employees, err := s.Repo.GetAllEmployees(ctx)
	if err != nil {
		return nil, err
	}
	return ManagerChoices(employees), nil
}
