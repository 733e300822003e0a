package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/claimstack/expense_claims_app/internal/core/domain"
	portsrepo "github.com/claimstack/expense_claims_app/internal/core/ports/repositories"
	"github.com/claimstack/expense_claims_app/internal/fallback"
	"github.com/claimstack/expense_claims_app/internal/models"
)

// Procedure names are stable identifiers shared with the migrations; they
// must not change without a corresponding data-migration step.
const (
	procGetRoles    = "SELECT * FROM get_roles()"
	procGetRoleByID = "SELECT * FROM get_role_by_id($1)"
)

type RoleRepository struct {
	g *Gateway
}

func NewRoleRepository(g *Gateway) *RoleRepository {
	return &RoleRepository{g: g}
}

var _ portsrepo.RoleRepository = (*RoleRepository)(nil)

func scanRole(rows pgx.Rows) (domain.Role, error) {
	var m models.Role
	if err := rows.Scan(&m.RoleID, &m.RoleName, &m.Description); err != nil {
		return domain.Role{}, err
	}
	return domain.Role{
		RoleID:      m.RoleID,
		RoleName:    m.RoleName,
		Description: m.Description,
	}, nil
}

func (r *RoleRepository) ListRoles(ctx context.Context) portsrepo.ReadResult[[]domain.Role] {
	return readList(ctx, r.g, "GetRoles", procGetRoles, nil, scanRole, (*fallback.Snapshot).Roles)
}

func (r *RoleRepository) FindRoleByID(ctx context.Context, roleID int) portsrepo.ReadResult[*domain.Role] {
	return readOne(ctx, r.g, "GetRoleById", procGetRoleByID, []any{roleID}, scanRole,
		func(s *fallback.Snapshot) *domain.Role { return s.RoleByID(roleID) })
}
