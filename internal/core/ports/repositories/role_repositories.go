package repositories

import (
	"context"

	"github.com/claimstack/expense_claims_app/internal/core/domain"
)

// RoleRepository reads the fixed role set. Roles are reference data; there
// are no write operations.
type RoleRepository interface {
	ListRoles(ctx context.Context) ReadResult[[]domain.Role]
	FindRoleByID(ctx context.Context, roleID int) ReadResult[*domain.Role]
}
