package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/claimstack/expense_claims_app/internal/apperrors"
	"github.com/claimstack/expense_claims_app/internal/core/domain"
	portsrepo "github.com/claimstack/expense_claims_app/internal/core/ports/repositories"
	"github.com/claimstack/expense_claims_app/internal/dto"
)

type UserService struct {
	userRepo portsrepo.UserRepository
}

func NewUserService(userRepo portsrepo.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context, activeOnly bool) portsrepo.ReadResult[[]domain.User] {
	return s.userRepo.ListUsers(ctx, activeOnly)
}

func (s *UserService) GetUserByID(ctx context.Context, userID int) portsrepo.ReadResult[*domain.User] {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (int, error) {
	if err := validateUserFields(req.UserName, req.Email, req.RoleID); err != nil {
		return 0, err
	}
	id, err := s.userRepo.CreateUser(ctx, domain.NewUser{
		UserName:  strings.TrimSpace(req.UserName),
		Email:     strings.TrimSpace(req.Email),
		RoleID:    req.RoleID,
		ManagerID: req.ManagerID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

func (s *UserService) UpdateUser(ctx context.Context, userID int, req dto.UpdateUserRequest) error {
	if err := validateUserFields(req.UserName, req.Email, req.RoleID); err != nil {
		return err
	}
	rows, err := s.userRepo.UpdateUser(ctx, userID, domain.UserUpdate{
		UserName:  strings.TrimSpace(req.UserName),
		Email:     strings.TrimSpace(req.Email),
		RoleID:    req.RoleID,
		ManagerID: req.ManagerID,
		IsActive:  req.IsActive,
	})
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user %d: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID int) error {
	rows, err := s.userRepo.DeleteUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user %d: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}

func validateUserFields(userName, email string, roleID int) error {
	if strings.TrimSpace(userName) == "" {
		return fmt.Errorf("%w: user name must not be blank", apperrors.ErrValidation)
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email must not be blank", apperrors.ErrValidation)
	}
	if roleID <= 0 {
		return fmt.Errorf("%w: roleId must reference an existing role", apperrors.ErrValidation)
	}
	return nil
}
