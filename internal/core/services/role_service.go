package services

import (
	"context"

	"github.com/claimstack/expense_claims_app/internal/core/domain"
	portsrepo "github.com/claimstack/expense_claims_app/internal/core/ports/repositories"
)

// RoleService exposes the fixed role reference data.
type RoleService struct {
	roleRepo portsrepo.RoleRepository
}

func NewRoleService(roleRepo portsrepo.RoleRepository) *RoleService {
	return &RoleService{roleRepo: roleRepo}
}

func (s *RoleService) ListRoles(ctx context.Context) portsrepo.ReadResult[[]domain.Role] {
	return s.roleRepo.ListRoles(ctx)
}

func (s *RoleService) GetRoleByID(ctx context.Context, roleID int) portsrepo.ReadResult[*domain.Role] {
	return s.roleRepo.FindRoleByID(ctx, roleID)
}
