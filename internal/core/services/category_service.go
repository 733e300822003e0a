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

type CategoryService struct {
	categoryRepo portsrepo.CategoryRepository
}

func NewCategoryService(categoryRepo portsrepo.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) ListCategories(ctx context.Context, activeOnly bool) portsrepo.ReadResult[[]domain.ExpenseCategory] {
	return s.categoryRepo.ListCategories(ctx, activeOnly)
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, categoryID int) portsrepo.ReadResult[*domain.ExpenseCategory] {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

func (s *CategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (int, error) {
	name := strings.TrimSpace(req.CategoryName)
	if name == "" {
		return 0, fmt.Errorf("%w: category name must not be blank", apperrors.ErrValidation)
	}
	id, err := s.categoryRepo.CreateCategory(ctx, domain.NewCategory{CategoryName: name})
	if err != nil {
		return 0, fmt.Errorf("failed to create category: %w", err)
	}
	return id, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID int, req dto.UpdateCategoryRequest) error {
	name := strings.TrimSpace(req.CategoryName)
	if name == "" {
		return fmt.Errorf("%w: category name must not be blank", apperrors.ErrValidation)
	}
	rows, err := s.categoryRepo.UpdateCategory(ctx, categoryID, domain.CategoryUpdate{
		CategoryName: name,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("category %d: %w", categoryID, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteCategory deactivates the category rather than removing it.
func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID int) error {
	rows, err := s.categoryRepo.DeleteCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("category %d: %w", categoryID, apperrors.ErrNotFound)
	}
	return nil
}
