package service

import (
	"context"

	"employee-tracker/internal/domain"
)

type RoleService struct {
	Repo domain.RoleRepo
}

func NewRoleService(repo domain.RoleRepo) *RoleService {
	return &RoleService{Repo: repo}
}

func (s *RoleService) GetRoleViews(ctx context.Context) ([]domain.RoleView, error) {
	return s.Repo.GetRoleViews(ctx)
}

func (s *RoleService) AddRole(ctx context.Context, r domain.NewRole) (int64, error) {
	return s.Repo.CreateRole(ctx, r)
}

func (s *RoleService) RoleChoices(ctx context.Context) ([]domain.Choice, error) {
	roles, err := s.Repo.GetAllRoles(ctx)
	if err != nil {
		return nil, err
	}
	return RoleChoices(roles), nil
}
