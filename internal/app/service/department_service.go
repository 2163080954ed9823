package service

import (
	"context"

	"employee-tracker/internal/domain"
)

type DepartmentService struct {
	Repo domain.DepartmentRepo
}

func NewDepartmentService(repo domain.DepartmentRepo) *DepartmentService {
	return &DepartmentService{Repo: repo}
}

func (s *DepartmentService) GetAllDepartments(ctx context.Context) ([]domain.Department, error) {
	return s.Repo.GetAllDepartments(ctx)
}

func (s *DepartmentService) AddDepartment(ctx context.Context, name string) (int64, error) {
	return s.Repo.CreateDepartment(ctx, name)
}

func (s *DepartmentService) DepartmentChoices(ctx context.Context) ([]domain.Choice, error) {
	departments, err := s.Repo.GetAllDepartments(ctx)
	if err != nil {
		return nil, err
	}
	return DepartmentChoices(departments), nil
}
