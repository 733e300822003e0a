package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/claimstack/expense_claims_app/internal/core/domain"
	portsrepo "github.com/claimstack/expense_claims_app/internal/core/ports/repositories"
	"github.com/claimstack/expense_claims_app/internal/fallback"
	"github.com/claimstack/expense_claims_app/internal/models"
)

const (
	procGetUsers    = "SELECT * FROM get_users($1)"
	procGetUserByID = "SELECT * FROM get_user_by_id($1)"
	procCreateUser  = "SELECT create_user($1, $2, $3, $4)"
	procUpdateUser  = "SELECT update_user($1, $2, $3, $4, $5, $6)"
	procDeleteUser  = "SELECT delete_user($1)"
)

type UserRepository struct {
	g *Gateway
}

func NewUserRepository(g *Gateway) *UserRepository {
	return &UserRepository{g: g}
}

var _ portsrepo.UserRepository = (*UserRepository)(nil)

func scanUser(rows pgx.Rows) (domain.User, error) {
	var m models.User
	err := rows.Scan(
		&m.UserID,
		&m.UserName,
		&m.Email,
		&m.RoleID,
		&m.RoleName,
		&m.ManagerID,
		&m.ManagerName,
		&m.IsActive,
		&m.CreatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	return toDomainUser(m), nil
}

func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:      m.UserID,
		UserName:    m.UserName,
		Email:       m.Email,
		RoleID:      m.RoleID,
		RoleName:    m.RoleName,
		ManagerID:   m.ManagerID,
		ManagerName: m.ManagerName,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *UserRepository) ListUsers(ctx context.Context, activeOnly bool) portsrepo.ReadResult[[]domain.User] {
	return readList(ctx, r.g, "GetUsers", procGetUsers, []any{activeOnly}, scanUser, (*fallback.Snapshot).Users)
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID int) portsrepo.ReadResult[*domain.User] {
	return readOne(ctx, r.g, "GetUserById", procGetUserByID, []any{userID}, scanUser,
		func(s *fallback.Snapshot) *domain.User { return s.UserByID(userID) })
}

func (r *UserRepository) CreateUser(ctx context.Context, user domain.NewUser) (int, error) {
	id, err := r.g.callScalar(ctx, "CreateUser", procCreateUser,
		user.UserName, user.Email, user.RoleID, user.ManagerID)
	return int(id), err
}

func (r *UserRepository) UpdateUser(ctx context.Context, userID int, user domain.UserUpdate) (int64, error) {
	return r.g.callScalar(ctx, "UpdateUser", procUpdateUser,
		userID, user.UserName, user.Email, user.RoleID, user.ManagerID, user.IsActive)
}

func (r *UserRepository) DeleteUser(ctx context.Context, userID int) (int64, error) {
	return r.g.callScalar(ctx, "DeleteUser", procDeleteUser, userID)
}
